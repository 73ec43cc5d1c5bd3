// Package machine provides the Enigma machine simulator: an immutable
// starting configuration (MachineState) and the mutable, steppable
// runtime instance built from it (Machine).
//
// Copyright (c) 2025 David Duarte
// Licensed under the MIT License
package machine

import (
	"fmt"
	"sort"
	"strings"

	"github.com/mdelacour/enigforce/internal/letter"
	"github.com/mdelacour/enigforce/internal/plugboard"
	"github.com/mdelacour/enigforce/internal/reflector"
	"github.com/mdelacour/enigforce/internal/rotor"
)

// RotorConfig names one rotor's identity and its starting position.
type RotorConfig struct {
	ID    rotor.ID
	Start letter.Letter
}

// MachineState is an immutable description of a starting
// configuration: the plug-board pairs, the ordered rotor list (with
// starting positions), and the reflector identity. Two machines built
// from equal MachineState values produce identical output.
type MachineState struct {
	Plugs     []plugboard.Pair
	Rotors    []RotorConfig
	Reflector reflector.ID
}

// NewState builds a MachineState. Plug pairs are copied defensively,
// each pair's two letters are ordered low-then-high, and the pair list
// is sorted, so that Equal treats any permutation of the same pair set
// (written in either letter order) as identical.
func NewState(plugs []plugboard.Pair, rotors []RotorConfig, refl reflector.ID) MachineState {
	plugsCopy := make([]plugboard.Pair, len(plugs))
	copy(plugsCopy, plugs)
	for i, p := range plugsCopy {
		if p[0] > p[1] {
			plugsCopy[i] = plugboard.Pair{p[1], p[0]}
		}
	}
	sort.Slice(plugsCopy, func(i, j int) bool {
		if plugsCopy[i][0] != plugsCopy[j][0] {
			return plugsCopy[i][0] < plugsCopy[j][0]
		}
		return plugsCopy[i][1] < plugsCopy[j][1]
	})

	rotorsCopy := make([]RotorConfig, len(rotors))
	copy(rotorsCopy, rotors)

	return MachineState{
		Plugs:     plugsCopy,
		Rotors:    rotorsCopy,
		Reflector: refl,
	}
}

// Equal reports whether two states describe the same configuration.
func (s MachineState) Equal(o MachineState) bool {
	if s.Reflector != o.Reflector {
		return false
	}
	if len(s.Rotors) != len(o.Rotors) {
		return false
	}
	for i := range s.Rotors {
		if s.Rotors[i] != o.Rotors[i] {
			return false
		}
	}
	if len(s.Plugs) != len(o.Plugs) {
		return false
	}
	for i := range s.Plugs {
		if s.Plugs[i] != o.Plugs[i] {
			return false
		}
	}
	return true
}

// String renders the state the way the `force` subcommand reports a
// match: reflector id, then rotor ids with starting positions, then
// plug pairs.
func (s MachineState) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s", s.Reflector)

	if len(s.Rotors) > 0 {
		b.WriteString(" --rotor-ids")
		for _, r := range s.Rotors {
			fmt.Fprintf(&b, " %s:%s", r.ID, r.Start)
		}
	}

	if len(s.Plugs) > 0 {
		b.WriteString(" --plug-map")
		for _, p := range s.Plugs {
			fmt.Fprintf(&b, " %s%s", p[0], p[1])
		}
	}

	return b.String()
}
