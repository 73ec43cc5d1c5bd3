package search

import (
	"github.com/mdelacour/enigforce/internal/letter"
	"github.com/mdelacour/enigforce/internal/plugboard"
	"github.com/mdelacour/enigforce/internal/reflector"
	"github.com/mdelacour/enigforce/internal/rotor"
	"github.com/mdelacour/enigforce/pkg/machine"
)

// RotorSlot describes what is known about one rotor position in the
// search: a nil ID or Start means "try every possibility" along that
// axis.
type RotorSlot struct {
	ID    *rotor.ID
	Start *letter.Letter
}

func (s RotorSlot) idCandidates() []rotor.ID {
	if s.ID != nil {
		return []rotor.ID{*s.ID}
	}
	return rotor.IDs()
}

func (s RotorSlot) startCandidates() []letter.Letter {
	if s.Start != nil {
		return []letter.Letter{*s.Start}
	}
	return letter.All()
}

// Enumerator lazily walks every MachineState implied by a set of
// PlugOptions, a set of candidate reflectors, and a list of RotorSlots,
// in the order: plugs outermost, then reflector, then rotor ids, then
// rotor positions innermost. It is a plain cursor struct, not a
// recursive generator, so the full search space is never materialised.
type Enumerator struct {
	plugs  *plugStream
	refIDs []reflector.ID

	rotorIDLists  [][]rotor.ID
	rotorPosLists [][]letter.Letter
	numRotors     int

	dims []int

	currentPlugs []plugboard.Pair
	inner        *cartesianCursor
}

// NewEnumerator builds an Enumerator over the given search space.
func NewEnumerator(plugOpts PlugOptions, refIDs []reflector.ID, rotors []RotorSlot) *Enumerator {
	e := &Enumerator{
		plugs:     newPlugStream(plugOpts),
		refIDs:    refIDs,
		numRotors: len(rotors),
	}

	e.rotorIDLists = make([][]rotor.ID, len(rotors))
	e.rotorPosLists = make([][]letter.Letter, len(rotors))

	dims := make([]int, 0, 1+2*len(rotors))
	dims = append(dims, len(refIDs))
	for i, slot := range rotors {
		e.rotorIDLists[i] = slot.idCandidates()
		dims = append(dims, len(e.rotorIDLists[i]))
	}
	for i, slot := range rotors {
		e.rotorPosLists[i] = slot.startCandidates()
		dims = append(dims, len(e.rotorPosLists[i]))
	}
	e.dims = dims

	return e
}

// Next returns the next candidate MachineState, or ok=false once every
// combination has been produced.
func (e *Enumerator) Next() (machine.MachineState, bool) {
	for {
		if e.inner == nil || e.inner.Done() {
			pairs, ok := e.plugs.Next()
			if !ok {
				return machine.MachineState{}, false
			}
			e.currentPlugs = pairs
			e.inner = newCartesianCursor(e.dims)
			if e.inner.Done() {
				// This plug combination has no reflector/rotor
				// combinations to pair it with (a zero-length axis);
				// try the next plug combination.
				continue
			}
		}

		idx := e.inner.Current()
		e.inner.Advance()

		return e.decode(idx), true
	}
}

func (e *Enumerator) decode(idx []int) machine.MachineState {
	refIdx := idx[0]
	rotorIDIdx := idx[1 : 1+e.numRotors]
	rotorPosIdx := idx[1+e.numRotors:]

	rotors := make([]machine.RotorConfig, e.numRotors)
	for i := 0; i < e.numRotors; i++ {
		rotors[i] = machine.RotorConfig{
			ID:    e.rotorIDLists[i][rotorIDIdx[i]],
			Start: e.rotorPosLists[i][rotorPosIdx[i]],
		}
	}

	return machine.NewState(e.currentPlugs, rotors, e.refIDs[refIdx])
}
