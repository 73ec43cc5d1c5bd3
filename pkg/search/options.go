// Package search implements the brute-force key-search engine: lazily
// enumerating candidate MachineStates across plugs, reflector, rotor
// ids, and rotor positions, and testing each against a crib.
//
// Copyright (c) 2025 David Duarte
// Licensed under the MIT License
package search

import (
	"github.com/mdelacour/enigforce/internal/plugboard"
)

// PlugOptions describes what is known about the plugboard for a
// search: either its exact pairs, or a count (or range of counts) of
// unknown pairs to enumerate.
type PlugOptions interface {
	isPlugOptions()
}

// KnownPlugs pins the plugboard to exactly these pairs.
type KnownPlugs struct {
	Pairs []plugboard.Pair
}

func (KnownPlugs) isPlugOptions() {}

// PlugCountRange enumerates every valid plug combination whose pair
// count falls in [Min, Max).
type PlugCountRange struct {
	Min, Max int
}

func (PlugCountRange) isPlugOptions() {}

// PlugCountRangeInclusive enumerates every valid plug combination whose
// pair count falls in [Min, Max].
type PlugCountRangeInclusive struct {
	Min, Max int
}

func (PlugCountRangeInclusive) isPlugOptions() {}
