package search

import (
	"github.com/mdelacour/enigforce/internal/letter"
	"github.com/mdelacour/enigforce/internal/plugboard"
)

// allPlugPairs returns the C(26,2) = 325 unordered letter pairs that
// could be wired together on the plugboard.
func allPlugPairs() []plugboard.Pair {
	all := letter.All()
	pairs := make([]plugboard.Pair, 0, 325)
	for i := 0; i < len(all); i++ {
		for j := i + 1; j < len(all); j++ {
			pairs = append(pairs, plugboard.Pair{all[i], all[j]})
		}
	}
	return pairs
}

// cartesianCursor walks the cartesian product of n dimensions as an
// explicit odometer: the last dimension advances fastest. It holds no
// closures, only plain index state, so it can be paused, inspected, and
// resumed across calls.
type cartesianCursor struct {
	dims      []int
	idx       []int
	exhausted bool
}

// newCartesianCursor builds a cursor over the product of the given
// dimension sizes. A zero-size dimension (no candidates along one
// axis) makes the whole product empty.
func newCartesianCursor(dims []int) *cartesianCursor {
	c := &cartesianCursor{dims: dims, idx: make([]int, len(dims))}
	for _, d := range dims {
		if d <= 0 {
			c.exhausted = true
			break
		}
	}
	return c
}

// Done reports whether the cursor has no current value.
func (c *cartesianCursor) Done() bool {
	return c.exhausted
}

// Current returns the index tuple at the cursor's current position.
// Only valid when Done() is false.
func (c *cartesianCursor) Current() []int {
	out := make([]int, len(c.idx))
	copy(out, c.idx)
	return out
}

// Advance moves the cursor to the next index tuple, reporting whether
// one exists.
func (c *cartesianCursor) Advance() bool {
	if c.exhausted {
		return false
	}
	for i := len(c.dims) - 1; i >= 0; i-- {
		c.idx[i]++
		if c.idx[i] < c.dims[i] {
			return true
		}
		c.idx[i] = 0
	}
	c.exhausted = true
	return false
}

// combinationCursor walks every k-element subset of {0, ..., n-1}, in
// increasing index order, as an explicit cursor rather than a
// recursive generator.
type combinationCursor struct {
	n, k      int
	idx       []int
	exhausted bool
}

// newCombinationCursor builds a cursor over all k-combinations of n
// items. k == 0 yields exactly one combination: the empty set.
func newCombinationCursor(n, k int) *combinationCursor {
	if k < 0 || k > n {
		return &combinationCursor{n: n, k: k, exhausted: true}
	}
	idx := make([]int, k)
	for i := range idx {
		idx[i] = i
	}
	return &combinationCursor{n: n, k: k, idx: idx}
}

func (c *combinationCursor) Done() bool {
	return c.exhausted
}

// Current returns the current combination as a set of indices into the
// n-item universe.
func (c *combinationCursor) Current() []int {
	out := make([]int, len(c.idx))
	copy(out, c.idx)
	return out
}

// Advance moves to the lexicographically next combination.
func (c *combinationCursor) Advance() bool {
	if c.exhausted {
		return false
	}
	if c.k == 0 {
		c.exhausted = true
		return false
	}
	i := c.k - 1
	for i >= 0 && c.idx[i] == c.n-c.k+i {
		i--
	}
	if i < 0 {
		c.exhausted = true
		return false
	}
	c.idx[i]++
	for j := i + 1; j < c.k; j++ {
		c.idx[j] = c.idx[j-1] + 1
	}
	return true
}
