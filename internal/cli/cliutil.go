// Package cli provides the command-line interface for enigforce:
// encipher, which runs a fully-known machine over stdin, and force,
// which brute-forces whatever parts of a MachineState the user left
// unknown against a crib.
//
// Copyright (c) 2025 David Duarte
// Licensed under the MIT License
package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/mdelacour/enigforce/internal/letter"
	"github.com/mdelacour/enigforce/internal/plugboard"
	"github.com/mdelacour/enigforce/internal/reflector"
	"github.com/mdelacour/enigforce/internal/rotor"
	"github.com/mdelacour/enigforce/pkg/search"
)

// rotorConfigSpec is the fully-known analogue of search.RotorSlot, used
// by the encipher command where every axis must be pinned down.
type rotorConfigSpec struct {
	ID    rotor.ID
	Start letter.Letter
}

// parseRotorSpecs parses a space-separated list of rotor specs, one per
// rotor slot, in order. Each spec is "id[:start]", where id is a roman
// numeral (I..V) or "!" for unknown, and start is a single letter or
// "!" for unknown. An element of specs may itself hold several
// space-separated specs (as a quoted -r value does).
func parseRotorSpecs(specs []string) ([]search.RotorSlot, error) {
	specs = strings.Fields(strings.Join(specs, " "))
	slots := make([]search.RotorSlot, len(specs))
	for i, spec := range specs {
		idPart, startPart, hasStart := strings.Cut(spec, ":")

		var slot search.RotorSlot
		if idPart != "!" {
			id, err := rotor.ParseID(idPart)
			if err != nil {
				return nil, fmt.Errorf("rotor %d: %w", i, err)
			}
			slot.ID = &id
		}
		if hasStart && startPart != "!" {
			start, err := letter.Parse(startPart)
			if err != nil {
				return nil, fmt.Errorf("rotor %d: %w", i, err)
			}
			slot.Start = &start
		}
		slots[i] = slot
	}
	return slots, nil
}

// parseRotorConfigs parses the same spec list as parseRotorSpecs, but
// rejects any "!" unknown marker: encipher needs every axis pinned.
func parseRotorConfigs(specs []string) ([]rotorConfigSpec, error) {
	specs = strings.Fields(strings.Join(specs, " "))
	slots, err := parseRotorSpecs(specs)
	if err != nil {
		return nil, err
	}
	configs := make([]rotorConfigSpec, len(slots))
	for i, s := range slots {
		if s.ID == nil || s.Start == nil {
			return nil, fmt.Errorf("rotor %d (%q): encipher requires a known id and start", i, specs[i])
		}
		configs[i] = rotorConfigSpec{ID: *s.ID, Start: *s.Start}
	}
	return configs, nil
}

// parseReflectorSpec parses a positional reflector-id argument: "A",
// "B", "C", or "!" for unknown (try every reflector).
func parseReflectorSpec(spec string) (*reflector.ID, error) {
	if spec == "!" {
		return nil, nil
	}
	id, err := reflector.ParseID(spec)
	if err != nil {
		return nil, err
	}
	return &id, nil
}

// parsePlugPairs parses an explicit plug-map flag value ("AB CD") into
// concrete pairs, for the encipher command, which cannot leave the
// plugboard unknown. An empty spec means no plugs.
func parsePlugPairs(spec string) ([]plugboard.Pair, error) {
	spec = strings.TrimSpace(spec)
	if spec == "" {
		return nil, nil
	}

	fields := strings.Fields(spec)
	pairs := make([]plugboard.Pair, len(fields))
	for i, f := range fields {
		if len(f) != 2 {
			return nil, fmt.Errorf("plug pair %q must be exactly two letters", f)
		}
		a, err := letter.Parse(string(f[0]))
		if err != nil {
			return nil, fmt.Errorf("plug pair %q: %w", f, err)
		}
		b, err := letter.Parse(string(f[1]))
		if err != nil {
			return nil, fmt.Errorf("plug pair %q: %w", f, err)
		}
		pairs[i] = plugboard.Pair{a, b}
	}
	if !plugboard.Valid(pairs) {
		return nil, fmt.Errorf("plug map %q reuses a letter across pairs", spec)
	}
	return pairs, nil
}

// parsePlugSpec parses the plug-map flag value: either explicit pairs
// ("AB CD"), a single count ("4"), or a range ("2..6", max exclusive,
// or "2..=6", max inclusive).
func parsePlugSpec(spec string) (search.PlugOptions, error) {
	spec = strings.TrimSpace(spec)
	if spec == "" {
		return search.KnownPlugs{}, nil
	}

	if strings.Contains(spec, "..") {
		min, max, inclusive, err := parseCountRange(spec)
		if err != nil {
			return nil, err
		}
		if inclusive {
			return search.PlugCountRangeInclusive{Min: min, Max: max}, nil
		}
		return search.PlugCountRange{Min: min, Max: max}, nil
	}

	if n, err := strconv.Atoi(spec); err == nil {
		return search.PlugCountRangeInclusive{Min: n, Max: n}, nil
	}

	fields := strings.Fields(spec)
	pairs := make([]plugboard.Pair, len(fields))
	for i, f := range fields {
		if len(f) != 2 {
			return nil, fmt.Errorf("plug pair %q must be exactly two letters", f)
		}
		a, err := letter.Parse(string(f[0]))
		if err != nil {
			return nil, fmt.Errorf("plug pair %q: %w", f, err)
		}
		b, err := letter.Parse(string(f[1]))
		if err != nil {
			return nil, fmt.Errorf("plug pair %q: %w", f, err)
		}
		pairs[i] = plugboard.Pair{a, b}
	}
	if !plugboard.Valid(pairs) {
		return nil, fmt.Errorf("plug map %q reuses a letter across pairs", spec)
	}
	return search.KnownPlugs{Pairs: pairs}, nil
}

// parseCountRange parses a count-range expression, "a..b" (max
// exclusive) or "a..=b" (max inclusive).
func parseCountRange(spec string) (min, max int, inclusive bool, err error) {
	inclusive = strings.Contains(spec, "..=")
	sep := ".."
	if inclusive {
		sep = "..="
	}

	parts := strings.SplitN(spec, sep, 2)
	if len(parts) != 2 {
		return 0, 0, false, fmt.Errorf("range %q must look like a..b or a..=b", spec)
	}

	min, err = strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil {
		return 0, 0, false, fmt.Errorf("range %q: invalid lower bound: %w", spec, err)
	}
	max, err = strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil {
		return 0, 0, false, fmt.Errorf("range %q: invalid upper bound: %w", spec, err)
	}
	return min, max, inclusive, nil
}
