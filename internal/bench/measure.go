package bench

import (
	"time"

	"github.com/san-kum/stencilbench/internal/precision"
)

// LatticeUpdates is the useful work of a run: only interior cells count,
// boundary cells are copied, not recomputed.
func LatticeUpdates(n, m, iters int) int64 {
	return int64(n-2) * int64(m-2) * int64(iters)
}

// Measure wraps exactly the iteration loop in a wall-clock timer and fills
// in the timing and throughput fields of the result. Allocation and
// seeding happen before loop is called and are not measured.
func Measure(backend string, p precision.Tag, n, m, iters int, loop func() error) (Result, error) {
	start := time.Now()
	err := loop()
	elapsed := time.Since(start)
	if err != nil {
		return Result{}, err
	}

	res := Result{
		Backend:   backend,
		Precision: p,
		N:         n,
		M:         m,
		Iters:     iters,
		RuntimeMS: float64(elapsed.Nanoseconds()) / 1e6,
	}

	elapsedUS := float64(elapsed.Nanoseconds()) / 1e3
	if work := LatticeUpdates(n, m, iters); work > 0 && elapsedUS > 0 {
		res.MLUPS = float64(work) / elapsedUS
	}
	return res, nil
}
