package jacobi

import (
	"fmt"

	"github.com/san-kum/stencilbench/internal/compute"
	"github.com/san-kum/stencilbench/internal/grid"
)

// State tracks the run lifecycle of a Solver. There is no transition out
// of Done; a new run needs a new buffer pair.
type State int

const (
	Uninitialized State = iota
	Initialized
	Running
	Done
)

func (s State) String() string {
	switch s {
	case Uninitialized:
		return "uninitialized"
	case Initialized:
		return "initialized"
	case Running:
		return "running"
	case Done:
		return "done"
	}
	return "unknown"
}

// Solver drives Jacobi iterations over a seeded buffer pair. One Step is
// one full pass: the strategy partitions the row space, Sweep reads the
// current buffer and writes the next one, and the buffers swap identity
// once the pass barrier has been reached. Reading an unmodified prior
// iterate for every cell is what makes this Jacobi rather than
// Gauss-Seidel.
type Solver[T grid.Elem] struct {
	pair  *grid.Pair[T]
	strat compute.Strategy
	state State
	steps int
}

func New[T grid.Elem](pair *grid.Pair[T], strat compute.Strategy) *Solver[T] {
	return &Solver[T]{pair: pair, strat: strat, state: Initialized}
}

func (s *Solver[T]) State() State { return s.state }
func (s *Solver[T]) Steps() int   { return s.steps }

// Step performs a single pass. Valid until the solver is Done.
func (s *Solver[T]) Step() error {
	if s.state == Done {
		return fmt.Errorf("solver is done; a new run requires a new buffer pair")
	}
	s.state = Running

	cur, next := s.pair.Cur(), s.pair.Next()
	s.strat.Run(cur.N(), func(lo, hi int) {
		Sweep(cur, next, lo, hi)
	})

	s.pair.Swap()
	s.steps++
	return nil
}

// Run performs exactly iters passes and transitions to Done. iters == 0
// leaves the seeded state as the final state.
func (s *Solver[T]) Run(iters int) error {
	if iters < 0 {
		return fmt.Errorf("iteration count must be nonnegative, got %d", iters)
	}
	if s.state == Done {
		return fmt.Errorf("solver is done; a new run requires a new buffer pair")
	}

	for t := 0; t < iters; t++ {
		if err := s.Step(); err != nil {
			return err
		}
	}

	s.state = Done
	return nil
}

// Final returns the buffer holding the most recently written result (the
// seeded buffer when no pass has run).
func (s *Solver[T]) Final() *grid.Grid[T] {
	return s.pair.Cur()
}
