// Package plugboard provides the plugboard (Steckerbrett) component of
// the Enigma machine. It implements reciprocal character swapping over
// the fixed 26-letter alphabet.
//
// Copyright (c) 2025 David Duarte
// Licensed under the MIT License
package plugboard

import (
	"fmt"

	"github.com/mdelacour/enigforce/internal/letter"
)

// Pair is an unordered pair of letters wired together on the board.
type Pair [2]letter.Letter

// PlugBoard is a bijection on Letter defined by a set of unordered
// pairs: every letter appears in at most one pair, and letters not in
// any pair map to themselves.
type PlugBoard struct {
	mapping [letter.Count]letter.Letter
}

// New builds a plug-board from a list of pairs. Construction fails if
// any letter appears in more than one pair.
func New(pairs []Pair) (*PlugBoard, error) {
	pb := &PlugBoard{}
	for i := range pb.mapping {
		pb.mapping[i] = letter.Letter(i)
	}

	used := make(map[letter.Letter]bool, len(pairs)*2)
	for _, p := range pairs {
		a, b := p[0], p[1]
		if a == b {
			return nil, fmt.Errorf("plugboard: cannot pair %s with itself", a)
		}
		if used[a] {
			return nil, fmt.Errorf("plugboard: letter %s is already paired", a)
		}
		if used[b] {
			return nil, fmt.Errorf("plugboard: letter %s is already paired", b)
		}
		used[a] = true
		used[b] = true
		pb.mapping[a] = b
		pb.mapping[b] = a
	}

	return pb, nil
}

// Map applies the plug-board mapping to a letter.
func (pb *PlugBoard) Map(l letter.Letter) letter.Letter {
	return pb.mapping[l]
}

// Pairs returns the configured pairs, each reported once.
func (pb *PlugBoard) Pairs() []Pair {
	var pairs []Pair
	seen := make(map[letter.Letter]bool, letter.Count)
	for i := 0; i < letter.Count; i++ {
		l := letter.Letter(i)
		if seen[l] {
			continue
		}
		if other := pb.mapping[l]; other != l {
			pairs = append(pairs, Pair{l, other})
			seen[l] = true
			seen[other] = true
		}
	}
	return pairs
}

// Clone returns a deep copy of pb.
func (pb *PlugBoard) Clone() *PlugBoard {
	clone := &PlugBoard{}
	clone.mapping = pb.mapping
	return clone
}

// Valid reports whether pairs describes a legal plug-board
// configuration (no letter used twice), without allocating a
// PlugBoard. Used by the search engine's hot enumeration path to skip
// invalid plug combinations cheaply.
func Valid(pairs []Pair) bool {
	var used [letter.Count]bool
	for _, p := range pairs {
		a, b := p[0], p[1]
		if a == b || used[a] || used[b] {
			return false
		}
		used[a] = true
		used[b] = true
	}
	return true
}
