// Package cli provides the encipher command for the enigforce CLI.
//
// Copyright (c) 2025 David Duarte
// Licensed under the MIT License
package cli

import (
	"bufio"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/mdelacour/enigforce/internal/message"
	"github.com/mdelacour/enigforce/pkg/machine"
)

var encipherCmd = &cobra.Command{
	Use:   "encipher <reflector-id>",
	Short: "Encipher plaintext read line-by-line from stdin",
	Long: `Encipher reads plaintext from standard input, one line at a time, and
writes the corresponding ciphertext to standard output. The machine is
built once and keeps stepping across lines, exactly like feeding a
continuous message through a real Enigma one line at a time.

Examples:
  echo "Hello world" | enigforce encipher -r "I:A II:B III:C" C
  echo "Hello world" | enigforce encipher -r "I:A II:B III:C" -p "AB CD" C`,
	Args: cobra.ExactArgs(1),
	RunE: runEncipher,
}

func init() {
	encipherCmd.Flags().StringSliceP("rotor-ids", "r", nil, "rotor specs, space-separated id:start (e.g. I:A II:B III:C)")
	encipherCmd.Flags().StringP("plug-map", "p", "", "plug pairs, space-separated (e.g. AB CD)")
}

func runEncipher(cmd *cobra.Command, args []string) error {
	reflID, err := parseReflectorSpec(args[0])
	if err != nil {
		return fmt.Errorf("reflector id: %w", err)
	}
	if reflID == nil {
		return fmt.Errorf("reflector id: encipher requires a known reflector, got %q", args[0])
	}

	rotorSpecs, err := cmd.Flags().GetStringSlice("rotor-ids")
	if err != nil {
		return err
	}
	rotorConfigs, err := parseRotorConfigs(rotorSpecs)
	if err != nil {
		return fmt.Errorf("rotor ids: %w", err)
	}

	plugSpec, err := cmd.Flags().GetString("plug-map")
	if err != nil {
		return err
	}
	pairs, err := parsePlugPairs(plugSpec)
	if err != nil {
		return fmt.Errorf("plug map: %w", err)
	}

	rotors := make([]machine.RotorConfig, len(rotorConfigs))
	for i, rc := range rotorConfigs {
		rotors[i] = machine.RotorConfig{ID: rc.ID, Start: rc.Start}
	}

	state := machine.NewState(pairs, rotors, *reflID)
	m, err := machine.New(state)
	if err != nil {
		return fmt.Errorf("building machine: %w", err)
	}

	scanner := bufio.NewScanner(os.Stdin)
	writer := bufio.NewWriter(os.Stdout)
	defer writer.Flush()

	for scanner.Scan() {
		line := m.Consume(message.FromString(scanner.Text()))
		if _, err := fmt.Fprintln(writer, line.String()); err != nil {
			return err
		}
	}
	return scanner.Err()
}
