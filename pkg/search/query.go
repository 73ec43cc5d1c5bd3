package search

import (
	"github.com/mdelacour/enigforce/internal/message"
	"github.com/mdelacour/enigforce/internal/reflector"
)

// Query describes one brute-force search: the plugboard options, the
// candidate reflectors, the candidate rotor slots, the ciphertext to
// search over, and the crib the decoded plaintext must satisfy.
type Query struct {
	Plugs      PlugOptions
	Reflectors []reflector.ID // nil/empty means "try every reflector"
	Rotors     []RotorSlot
	Input      message.Message
	Crib       Crib
}

func (q Query) reflectorCandidates() []reflector.ID {
	if len(q.Reflectors) > 0 {
		return q.Reflectors
	}
	return reflector.IDs()
}
