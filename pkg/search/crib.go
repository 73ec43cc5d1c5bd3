package search

import (
	"github.com/mdelacour/enigforce/internal/message"
	"github.com/mdelacour/enigforce/pkg/machine"
)

// Crib is a set of optional constraints the decoded plaintext must
// satisfy. A nil field means that constraint is not checked. Checks run
// cheapest-first: start, then end, then contains, so a non-match is
// rejected with as little stepping as possible.
type Crib struct {
	Start    message.Message
	End      message.Message
	Contains message.Message
}

// matches reports whether m, freshly built at its starting state,
// decodes input to something consistent with c. m is left wherever the
// last check stopped; callers that need it at its starting state again
// should call m.Reset().
func (c Crib) matches(m *machine.Machine, input message.Message) bool {
	if c.Start != nil {
		if !m.TryConsume(input, c.Start) {
			return false
		}
		m.Reset()
	}

	if c.End != nil {
		n := len(c.End)
		if n > len(input) {
			return false
		}
		tail := input[len(input)-n:]
		m.JumpForwards(input[:len(input)-n])
		if !m.TryConsume(tail, c.End) {
			return false
		}
		m.Reset()
	}

	if c.Contains != nil {
		n := len(c.Contains)
		if n > len(input) {
			return false
		}
		found := false
		// Inclusive bound: a crib of length n can start as late as
		// position len(input)-n, which must itself be checked.
		for i := 0; i <= len(input)-n; i++ {
			m.JumpForwards(input[:i])
			if m.TryConsume(input[i:i+n], c.Contains) {
				found = true
				break
			}
			m.Reset()
		}
		if !found {
			return false
		}
	}

	return true
}
