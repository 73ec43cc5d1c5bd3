// Package cli provides the command-line interface for enigforce.
//
// Copyright (c) 2025 David Duarte
// Licensed under the MIT License
package cli

import (
	"github.com/spf13/cobra"

	"github.com/mdelacour/enigforce"
)

var rootCmd = &cobra.Command{
	Use:   "enigforce",
	Short: "An Enigma machine simulator and brute-force key-search engine",
	Long: `enigforce simulates the historical Enigma cipher machine and brute-forces
unknown parts of its configuration (rotor choice, rotor start positions,
reflector, plug-board) against one or more plaintext cribs.

Examples:
  echo "Hello world" | enigforce encipher -r "I:A II:B III:C" -p "AB CD" C
  cat ciphertext.txt | enigforce force -r "I:A II:! III:!" -p 0 --crib-start Hello C`,
	Version: enigforce.GetVersion(),
}

// Execute runs the root command and handles errors.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.AddCommand(encipherCmd)
	rootCmd.AddCommand(forceCmd)
}
