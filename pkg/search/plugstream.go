package search

import "github.com/mdelacour/enigforce/internal/plugboard"

// plugStream lazily yields every plug combination implied by a
// PlugOptions value, skipping any combination that reuses a letter
// across pairs (not a legal plugboard) without ever materialising the
// full combination list. For a count-based option, plug-pair
// combinations for C(26,2)=325 candidate pairs are only ever generated
// k at a time, on demand.
type plugStream struct {
	known     []plugboard.Pair
	knownSent bool

	pool   []plugboard.Pair
	counts []int
	countI int
	combo  *combinationCursor
}

func newPlugStream(opts PlugOptions) *plugStream {
	switch o := opts.(type) {
	case KnownPlugs:
		return &plugStream{known: o.Pairs}
	case PlugCountRange:
		var counts []int
		for c := o.Min; c < o.Max; c++ {
			counts = append(counts, c)
		}
		return newCountedPlugStream(counts)
	case PlugCountRangeInclusive:
		var counts []int
		for c := o.Min; c <= o.Max; c++ {
			counts = append(counts, c)
		}
		return newCountedPlugStream(counts)
	default:
		return &plugStream{knownSent: true}
	}
}

func newCountedPlugStream(counts []int) *plugStream {
	ps := &plugStream{pool: allPlugPairs(), counts: counts}
	ps.startCount()
	return ps
}

func (ps *plugStream) startCount() {
	if ps.countI < len(ps.counts) {
		ps.combo = newCombinationCursor(len(ps.pool), ps.counts[ps.countI])
	} else {
		ps.combo = nil
	}
}

// Next returns the next valid plug combination, or ok=false once the
// stream is exhausted.
func (ps *plugStream) Next() (pairs []plugboard.Pair, ok bool) {
	if ps.pool == nil {
		if ps.knownSent {
			return nil, false
		}
		ps.knownSent = true
		out := make([]plugboard.Pair, len(ps.known))
		copy(out, ps.known)
		return out, true
	}

	for {
		if ps.combo == nil {
			return nil, false
		}
		if ps.combo.Done() {
			// This count has no valid combinations at all (e.g. k
			// exceeds the pool size); move on to the next count.
			ps.countI++
			ps.startCount()
			continue
		}

		idx := ps.combo.Current()
		hasMore := ps.combo.Advance()
		if !hasMore {
			ps.countI++
			ps.startCount()
		}

		candidate := make([]plugboard.Pair, len(idx))
		for i, pi := range idx {
			candidate[i] = ps.pool[pi]
		}

		if plugboard.Valid(candidate) {
			return candidate, true
		}
		// Invalid (a letter was reused across chosen pairs): the
		// combo/countI state has already advanced above, so loop
		// around to try the next candidate.
	}
}
