package search

import (
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/mdelacour/enigforce/internal/message"
	"github.com/mdelacour/enigforce/pkg/machine"
)

// Run performs a parallel brute-force search over q's candidate space,
// returning every MachineState whose decoded plaintext satisfies the
// crib. A single producer goroutine drives the (necessarily
// sequential) Enumerator and fans candidates out over a channel; each
// worker keeps its own local result buffer and only touches shared
// state by sending its buffer once, at the end, onto a results
// channel — the same work-stealing-friendly shape as a channel-fed
// worker pool, without any shared mutable state mid-search.
//
// workers <= 0 defaults to runtime.NumCPU(). Run returns early if ctx
// is cancelled, along with whatever matches had already been found.
func Run(ctx context.Context, q Query, workers int) ([]machine.MachineState, error) {
	if workers <= 0 {
		workers = runtime.NumCPU()
	}

	enumerator := NewEnumerator(q.Plugs, q.reflectorCandidates(), q.Rotors)

	candidates := make(chan machine.MachineState, workers*4)
	results := make(chan []machine.MachineState, workers)

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		defer close(candidates)
		for {
			state, ok := enumerator.Next()
			if !ok {
				return nil
			}
			select {
			case candidates <- state:
			case <-gctx.Done():
				return gctx.Err()
			}
		}
	})

	for w := 0; w < workers; w++ {
		g.Go(func() error {
			var local []machine.MachineState
			for {
				select {
				case state, ok := <-candidates:
					if !ok {
						results <- local
						return nil
					}
					if matchCandidate(state, q.Input, q.Crib) {
						local = append(local, state)
					}
				case <-gctx.Done():
					results <- local
					return gctx.Err()
				}
			}
		})
	}

	err := g.Wait()
	close(results)

	var matches []machine.MachineState
	for local := range results {
		matches = append(matches, local...)
	}

	if err != nil && err != context.Canceled {
		return matches, err
	}
	return matches, nil
}

// matchCandidate builds a fresh machine for state and tests it against
// the crib over input.
func matchCandidate(state machine.MachineState, input message.Message, crib Crib) bool {
	m, err := machine.New(state)
	if err != nil {
		return false
	}
	return crib.matches(m, input)
}
