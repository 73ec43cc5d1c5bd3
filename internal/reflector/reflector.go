// Package reflector provides the reflector (Umkehrwalze) component of
// the Enigma machine. A reflector is a fixed involution with no
// self-mapped letters: if A maps to B, then B maps back to A, and no
// letter maps to itself.
//
// Copyright (c) 2025 David Duarte
// Licensed under the MIT License
package reflector

import (
	"fmt"

	"github.com/mdelacour/enigforce/internal/letter"
)

// ID identifies one of the three historical reflector wirings.
type ID int

const (
	A ID = iota
	B
	C
)

// IDs returns all reflector identities, in order.
func IDs() []ID {
	return []ID{A, B, C}
}

func (id ID) String() string {
	switch id {
	case A:
		return "A"
	case B:
		return "B"
	case C:
		return "C"
	default:
		return fmt.Sprintf("ID(%d)", int(id))
	}
}

// ParseID parses a reflector identity from its letter name.
func ParseID(s string) (ID, error) {
	switch s {
	case "A":
		return A, nil
	case "B":
		return B, nil
	case "C":
		return C, nil
	default:
		return 0, fmt.Errorf("reflector: unknown id %q", s)
	}
}

// Historical reflector wirings, given as the output letter for each
// input letter A..Z in order.
const (
	wiringA = "EJMZALYXVBWFCRQUONTSPIKHGD"
	wiringB = "YRUHQSLDPXNGOKMIEBFZCWVJAT"
	wiringC = "FVPJIAOYEDRZXWGCTKUQSBNMHL"
)

// Reflector is an involution on Letter with no fixed points.
type Reflector struct {
	id      ID
	mapping [letter.Count]letter.Letter
}

// New builds the reflector for the given identity.
func New(id ID) (*Reflector, error) {
	var wiring string
	switch id {
	case A:
		wiring = wiringA
	case B:
		wiring = wiringB
	case C:
		wiring = wiringC
	default:
		return nil, fmt.Errorf("reflector: unknown id %v", id)
	}

	r := &Reflector{id: id}
	runes := []rune(wiring)
	if len(runes) != letter.Count {
		return nil, fmt.Errorf("reflector: wiring for %v has length %d, want %d", id, len(runes), letter.Count)
	}

	for i, ch := range runes {
		out, _, ok := letter.FromChar(ch)
		if !ok {
			return nil, fmt.Errorf("reflector: invalid character %q in wiring for %v", ch, id)
		}
		in := letter.Letter(i)
		if out == in {
			return nil, fmt.Errorf("reflector: %v maps to itself in wiring for %v", in, id)
		}
		r.mapping[in] = out
	}

	for i := 0; i < letter.Count; i++ {
		l := letter.Letter(i)
		if r.mapping[r.mapping[l]] != l {
			return nil, fmt.Errorf("reflector: non-reciprocal mapping for %v at %v", id, l)
		}
	}

	return r, nil
}

// ID returns the reflector's identity.
func (r *Reflector) ID() ID {
	return r.id
}

// Reflect returns the letter l reflects to.
func (r *Reflector) Reflect(l letter.Letter) letter.Letter {
	return r.mapping[l]
}

// Clone returns a copy of r.
func (r *Reflector) Clone() *Reflector {
	clone := &Reflector{id: r.id}
	clone.mapping = r.mapping
	return clone
}
