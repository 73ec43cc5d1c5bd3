// Package rotor provides the rotor component of the Enigma machine. A
// rotor performs a substitution permutation that shifts with its
// rotational position, and signals turnover to drive the stepping of
// its neighbour.
//
// Copyright (c) 2025 David Duarte
// Licensed under the MIT License
package rotor

import (
	"fmt"

	"github.com/mdelacour/enigforce/internal/letter"
)

// ID identifies one of the five historical rotor wirings.
type ID int

const (
	I ID = iota
	II
	III
	IV
	V
)

// IDs returns all rotor identities, in order.
func IDs() []ID {
	return []ID{I, II, III, IV, V}
}

func (id ID) String() string {
	switch id {
	case I:
		return "I"
	case II:
		return "II"
	case III:
		return "III"
	case IV:
		return "IV"
	case V:
		return "V"
	default:
		return fmt.Sprintf("ID(%d)", int(id))
	}
}

// ParseID parses a rotor identity from its roman-numeral name.
func ParseID(s string) (ID, error) {
	switch s {
	case "I":
		return I, nil
	case "II":
		return II, nil
	case "III":
		return III, nil
	case "IV":
		return IV, nil
	case "V":
		return V, nil
	default:
		return 0, fmt.Errorf("rotor: unknown id %q", s)
	}
}

// Historical rotor wirings, given as the output letter for each input
// letter A..Z in order, and the single-letter turnover position for
// each rotor: the position a rotor steps onto as it carries its left
// neighbour (historically rotor I carries as it moves from Q to R).
const (
	wiringI   = "EKMFLGDQVZNTOWYHXUSPAIBRCJ"
	wiringII  = "AJDKSIRUXBLHWTMCQGZNPYFVOE"
	wiringIII = "BDFHJLCPRTXVZNYEIWGAKMUSQO"
	wiringIV  = "ESOVPZJAYQUIRHXLNFTGKDCMWB"
	wiringV   = "VZBRGITYUPSDNHLXAWMJQOFECK"
)

var turnover = map[ID]letter.Letter{
	I:   letter.R,
	II:  letter.F,
	III: letter.W,
	IV:  letter.K,
	V:   letter.A,
}

// Rotor carries a hardcoded forward/inverse permutation, a set of
// turnover positions, its current position, and whether it is allowed
// to double-step (true only for middle rotors in a 3+ rotor stack).
type Rotor struct {
	id            ID
	forward       [letter.Count]letter.Letter
	backward      [letter.Count]letter.Letter
	turnovers     map[letter.Letter]bool
	pos           letter.Letter
	canDoubleStep bool
}

// New builds a rotor with the given identity, starting position, and
// double-step eligibility.
func New(id ID, start letter.Letter, canDoubleStep bool) (*Rotor, error) {
	var wiring string
	switch id {
	case I:
		wiring = wiringI
	case II:
		wiring = wiringII
	case III:
		wiring = wiringIII
	case IV:
		wiring = wiringIV
	case V:
		wiring = wiringV
	default:
		return nil, fmt.Errorf("rotor: unknown id %v", id)
	}

	r := &Rotor{
		id:            id,
		pos:           start,
		canDoubleStep: canDoubleStep,
		turnovers:     map[letter.Letter]bool{turnover[id]: true},
	}

	runes := []rune(wiring)
	if len(runes) != letter.Count {
		return nil, fmt.Errorf("rotor: wiring for %v has length %d, want %d", id, len(runes), letter.Count)
	}

	used := [letter.Count]bool{}
	for i, ch := range runes {
		out, _, ok := letter.FromChar(ch)
		if !ok {
			return nil, fmt.Errorf("rotor: invalid character %q in wiring for %v", ch, id)
		}
		if used[out] {
			return nil, fmt.Errorf("rotor: duplicate output %v in wiring for %v", out, id)
		}
		used[out] = true
		in := letter.Letter(i)
		r.forward[in] = out
		r.backward[out] = in
	}

	return r, nil
}

// ID returns the rotor's identity.
func (r *Rotor) ID() ID {
	return r.id
}

// Position returns the rotor's current position.
func (r *Rotor) Position() letter.Letter {
	return r.pos
}

// CanDoubleStep reports whether this rotor is eligible to double-step.
func (r *Rotor) CanDoubleStep() bool {
	return r.canDoubleStep
}

// CharIn performs the forward substitution: a signal entering from the
// keyboard/plugboard side.
func (r *Rotor) CharIn(c letter.Letter) letter.Letter {
	out := r.forward[c.AddLetter(r.pos)]
	return out.SubLetter(r.pos)
}

// CharOut performs the backward substitution: a signal returning from
// the reflector side.
func (r *Rotor) CharOut(c letter.Letter) letter.Letter {
	out := r.backward[c.AddLetter(r.pos)]
	return out.SubLetter(r.pos)
}

// atTurnover reports whether pos is one of this rotor's turnover
// positions.
func (r *Rotor) atTurnover(pos letter.Letter) bool {
	return r.turnovers[pos]
}

// Step advances the rotor by one position, reporting whether the new
// position is a turnover position (ie this rotor just carried over,
// so its left neighbour should step too).
func (r *Rotor) Step() bool {
	r.pos = r.pos.Add(1)
	return r.atTurnover(r.pos)
}

// Unstep retracts the rotor by one position, reporting whether the
// pre-decrement position was a turnover position (ie the caller is
// undoing a carry).
func (r *Rotor) Unstep() bool {
	wasTurnover := r.atTurnover(r.pos)
	r.pos = r.pos.Sub(1)
	return wasTurnover
}

// DoubleStep conditionally advances the rotor: it fires only if the
// rotor can double-step and its *next* position would be a turnover
// position. This models the historical double-stepping anomaly of the
// middle rotor.
func (r *Rotor) DoubleStep() bool {
	if !r.canDoubleStep || !r.atTurnover(r.pos.Add(1)) {
		return false
	}
	r.pos = r.pos.Add(1)
	return true
}

// DoubleUnstep is the symmetric retraction of DoubleStep: it retracts
// only if the rotor can double-step and its *current* position is a
// turnover position.
func (r *Rotor) DoubleUnstep() bool {
	if !r.canDoubleStep || !r.atTurnover(r.pos) {
		return false
	}
	r.pos = r.pos.Sub(1)
	return true
}

// SetPosition overrides the rotor's current position.
func (r *Rotor) SetPosition(pos letter.Letter) {
	r.pos = pos
}

// Clone returns a copy of r.
func (r *Rotor) Clone() *Rotor {
	clone := *r
	clone.turnovers = make(map[letter.Letter]bool, len(r.turnovers))
	for k, v := range r.turnovers {
		clone.turnovers[k] = v
	}
	return &clone
}
