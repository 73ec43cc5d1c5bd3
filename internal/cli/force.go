// Package cli provides the force command for the enigforce CLI.
//
// Copyright (c) 2025 David Duarte
// Licensed under the MIT License
package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/mdelacour/enigforce/internal/message"
	"github.com/mdelacour/enigforce/internal/reflector"
	"github.com/mdelacour/enigforce/pkg/machine"
	"github.com/mdelacour/enigforce/pkg/search"
)

var forceCmd = &cobra.Command{
	Use:   "force <reflector-id>",
	Short: "Brute-force unknown machine settings against ciphertext and a crib",
	Long: `Force reads ciphertext from standard input and searches every
combination of the machine settings left unknown (marked "!") against
one or more cribs, printing every MachineState that matches along with
its decoded plaintext.

At least one of --crib-start, --crib-end, or --crib-contains must be
given; otherwise force exits with status 1.

Examples:
  cat ciphertext.txt | enigforce force -r "I:A II:! III:!" -p 0 --crib-start Hello C
  cat ciphertext.txt | enigforce force -r "I II III" -p 2..=4 --crib-contains secret !`,
	Args: cobra.ExactArgs(1),
	RunE: runForce,
}

func init() {
	forceCmd.Flags().StringSliceP("rotor-ids", "r", nil, "rotor specs, space-separated id:start, \"!\" for unknown (e.g. I:A II:! III:!)")
	forceCmd.Flags().StringP("plug-map", "p", "", "plug pairs (\"AB CD\"), a count (\"4\"), or a range (\"2..6\" or \"2..=6\")")
	forceCmd.Flags().String("crib-start", "", "plaintext the decoded message must start with")
	forceCmd.Flags().String("crib-end", "", "plaintext the decoded message must end with")
	forceCmd.Flags().String("crib-contains", "", "plaintext the decoded message must contain")
	forceCmd.Flags().IntP("workers", "w", 0, "number of parallel search workers (default: number of CPUs)")
}

func runForce(cmd *cobra.Command, args []string) error {
	reflID, err := parseReflectorSpec(args[0])
	if err != nil {
		return fmt.Errorf("reflector id: %w", err)
	}

	rotorSpecs, err := cmd.Flags().GetStringSlice("rotor-ids")
	if err != nil {
		return err
	}
	rotorSlots, err := parseRotorSpecs(rotorSpecs)
	if err != nil {
		return fmt.Errorf("rotor ids: %w", err)
	}

	plugSpec, err := cmd.Flags().GetString("plug-map")
	if err != nil {
		return err
	}
	plugOpts, err := parsePlugSpec(plugSpec)
	if err != nil {
		return fmt.Errorf("plug map: %w", err)
	}

	cribStart, _ := cmd.Flags().GetString("crib-start")
	cribEnd, _ := cmd.Flags().GetString("crib-end")
	cribContains, _ := cmd.Flags().GetString("crib-contains")
	if cribStart == "" && cribEnd == "" && cribContains == "" {
		fmt.Fprintln(cmd.ErrOrStderr(), "force: at least one of --crib-start, --crib-end, or --crib-contains is required")
		os.Exit(1)
	}

	var crib search.Crib
	if cribStart != "" {
		crib.Start = message.FromString(cribStart)
	}
	if cribEnd != "" {
		crib.End = message.FromString(cribEnd)
	}
	if cribContains != "" {
		crib.Contains = message.FromString(cribContains)
	}

	ciphertext, err := io.ReadAll(os.Stdin)
	if err != nil {
		return fmt.Errorf("reading stdin: %w", err)
	}

	var reflectors []reflector.ID
	if reflID != nil {
		reflectors = []reflector.ID{*reflID}
	}

	q := search.Query{
		Plugs:      plugOpts,
		Reflectors: reflectors,
		Rotors:     rotorSlots,
		Input:      message.FromString(string(ciphertext)),
		Crib:       crib,
	}

	workers, err := cmd.Flags().GetInt("workers")
	if err != nil {
		return err
	}

	results, err := search.Run(context.Background(), q, workers)
	if err != nil {
		return fmt.Errorf("search: %w", err)
	}

	writer := bufio.NewWriter(cmd.OutOrStdout())
	defer writer.Flush()

	fmt.Fprintf(writer, "%d match(es)\n", len(results))
	for _, state := range results {
		m, err := machine.New(state)
		if err != nil {
			return fmt.Errorf("rebuilding matched machine: %w", err)
		}
		plaintext := m.Consume(q.Input)
		fmt.Fprintf(writer, "%s\n  %s\n", state.String(), plaintext.String())
	}
	return nil
}
