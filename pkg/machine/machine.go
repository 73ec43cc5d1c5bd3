package machine

import (
	"fmt"

	"github.com/mdelacour/enigforce/internal/letter"
	"github.com/mdelacour/enigforce/internal/message"
	"github.com/mdelacour/enigforce/internal/plugboard"
	"github.com/mdelacour/enigforce/internal/reflector"
	"github.com/mdelacour/enigforce/internal/rotor"
)

// Machine is a mutable, steppable Enigma machine built from a
// MachineState. Only the middle rotors (not the first or the last) are
// eligible to double-step, matching the historical mechanical anomaly.
type Machine struct {
	initial   MachineState
	plugboard *plugboard.PlugBoard
	rotors    []*rotor.Rotor
	reflector *reflector.Reflector
	steps     int
}

// New builds a Machine from a starting state.
func New(state MachineState) (*Machine, error) {
	if len(state.Rotors) == 0 {
		return nil, fmt.Errorf("machine: at least one rotor is required")
	}

	pb, err := plugboard.New(state.Plugs)
	if err != nil {
		return nil, fmt.Errorf("machine: %w", err)
	}

	refl, err := reflector.New(state.Reflector)
	if err != nil {
		return nil, fmt.Errorf("machine: %w", err)
	}

	rotors := make([]*rotor.Rotor, len(state.Rotors))
	for i, rc := range state.Rotors {
		canDoubleStep := i > 0 && i < len(state.Rotors)-1
		r, err := rotor.New(rc.ID, rc.Start, canDoubleStep)
		if err != nil {
			return nil, fmt.Errorf("machine: rotor %d: %w", i, err)
		}
		rotors[i] = r
	}

	return &Machine{
		initial:   state,
		plugboard: pb,
		rotors:    rotors,
		reflector: refl,
	}, nil
}

// StartingState returns the configuration the machine was built from.
func (m *Machine) StartingState() MachineState {
	return m.initial
}

// Step advances the rotors by one position, applying the
// double-stepping anomaly: stepping begins at the rightmost rotor and
// propagates leftward as long as each rotor reports a carry, falling
// back to a conditional DoubleStep once the carry chain breaks.
func (m *Machine) Step() {
	doSingleStep := true
	for i := len(m.rotors) - 1; i >= 0; i-- {
		if doSingleStep {
			doSingleStep = m.rotors[i].Step()
		} else {
			doSingleStep = m.rotors[i].DoubleStep()
		}
	}
	m.steps++
}

// Unstep retracts the rotors by one position, the exact inverse of Step.
func (m *Machine) Unstep() {
	doSingleStep := true
	for i := len(m.rotors) - 1; i >= 0; i-- {
		if doSingleStep {
			doSingleStep = m.rotors[i].Unstep()
		} else {
			doSingleStep = m.rotors[i].DoubleUnstep()
		}
	}
	m.steps--
}

// encipherChar steps the machine, then passes a single letter through
// plugboard -> rotors (right to left, "char in") -> reflector -> rotors
// (left to right, "char out") -> plugboard.
func (m *Machine) encipherChar(c message.Char) message.Char {
	if !c.IsLetter {
		return c
	}

	m.Step()

	l := m.plugboard.Map(c.L)
	for i := len(m.rotors) - 1; i >= 0; i-- {
		l = m.rotors[i].CharIn(l)
	}
	l = m.reflector.Reflect(l)
	for i := 0; i < len(m.rotors); i++ {
		l = m.rotors[i].CharOut(l)
	}
	l = m.plugboard.Map(l)

	return message.NewLetter(l, c.Upper)
}

// Encipher enciphers a single character (letter or pass-through) and
// reports whether it was a letter the machine actually touched.
func (m *Machine) Encipher(c message.Char) (message.Char, bool) {
	if !c.IsLetter {
		return c, false
	}
	return m.encipherChar(c), true
}

// Consume enciphers an entire message, in order.
func (m *Machine) Consume(input message.Message) message.Message {
	out := make(message.Message, len(input))
	for i, c := range input {
		out[i] = m.encipherChar(c)
	}
	return out
}

// TryConsume reports whether input enciphers to expectedOutput, without
// allocating the full output. It first returns false, without stepping,
// if any aligned pair of input and expected letters is literally equal,
// since an Enigma machine never enciphers a letter to itself.
//
// Regardless of the outcome, the machine is left wherever the
// comparison stopped; it is not reset to its starting position.
func (m *Machine) TryConsume(input, expectedOutput message.Message) bool {
	n := len(input)
	if len(expectedOutput) < n {
		n = len(expectedOutput)
	}

	for i := 0; i < n; i++ {
		in := input[i]
		if in.IsLetter && in == expectedOutput[i] {
			return false
		}
	}

	for i := 0; i < n; i++ {
		if m.encipherChar(input[i]) != expectedOutput[i] {
			return false
		}
	}
	return true
}

// JumpForwards advances the machine's rotor positions as if skipped had
// been enciphered, without producing output.
func (m *Machine) JumpForwards(skipped message.Message) {
	for _, c := range skipped {
		if c.IsLetter {
			m.Step()
		}
	}
}

// JumpBackwards retracts the machine's rotor positions as if skipped
// had been un-enciphered, without producing output.
func (m *Machine) JumpBackwards(skipped message.Message) {
	for _, c := range skipped {
		if c.IsLetter {
			m.Unstep()
		}
	}
}

// Reset returns the machine to its starting rotor positions.
func (m *Machine) Reset() {
	for m.steps < 0 {
		m.Step()
	}
	for m.steps > 0 {
		m.Unstep()
	}
}

// CurrentState returns a MachineState describing the machine's current
// rotor positions (not its starting positions).
func (m *Machine) CurrentState() MachineState {
	rotors := make([]RotorConfig, len(m.rotors))
	for i, r := range m.rotors {
		rotors[i] = RotorConfig{ID: r.ID(), Start: r.Position()}
	}
	return NewState(m.plugboard.Pairs(), rotors, m.reflector.ID())
}

// Clone returns an independent deep copy of m, including its current
// (possibly stepped) rotor positions.
func (m *Machine) Clone() (*Machine, error) {
	clone := &Machine{
		initial: m.initial,
		steps:   m.steps,
	}

	clone.plugboard = m.plugboard.Clone()
	clone.reflector = m.reflector.Clone()

	clone.rotors = make([]*rotor.Rotor, len(m.rotors))
	for i, r := range m.rotors {
		clone.rotors[i] = r.Clone()
	}

	return clone, nil
}

// NewEnigmaM3 builds the canonical three-rotor Wehrmacht/Luftwaffe
// Enigma I configuration: rotors chosen from I-V, reflector B or C, an
// arbitrary plugboard, and arbitrary starting positions.
func NewEnigmaM3(rotorIDs [3]rotor.ID, rotorStarts [3]letter.Letter, reflID reflector.ID, plugs []plugboard.Pair) (*Machine, error) {
	rotors := make([]RotorConfig, 3)
	for i := range rotors {
		rotors[i] = RotorConfig{ID: rotorIDs[i], Start: rotorStarts[i]}
	}
	return New(NewState(plugs, rotors, reflID))
}
