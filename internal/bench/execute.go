package bench

import (
	"fmt"

	"github.com/x448/float16"

	"github.com/san-kum/stencilbench/internal/compute"
	"github.com/san-kum/stencilbench/internal/grid"
	"github.com/san-kum/stencilbench/internal/jacobi"
	"github.com/san-kum/stencilbench/internal/precision"
)

// Params is the immutable per-run configuration, supplied once at run
// start. Precision selection changes only numeric width, never any other
// aspect of the run.
type Params struct {
	Backend   string
	Precision precision.Tag
	N, M      int
	Iters     int
	Boundary  float64
	Workers   int
}

func (p Params) validate() error {
	if p.N < 3 || p.M < 3 {
		return fmt.Errorf("grid must be at least 3x3, got %dx%d", p.N, p.M)
	}
	if p.Iters < 0 {
		return fmt.Errorf("iteration count must be nonnegative, got %d", p.Iters)
	}
	return nil
}

// Execute runs one benchmark: allocate and seed a buffer pair, run the
// iteration loop under the wall clock, and report the result record along
// with the final grid widened to float64 for error scoring. RelError is
// left at 0; the caller scores against a reference where one applies.
func Execute(p Params) (Result, []float64, error) {
	if err := p.validate(); err != nil {
		return Result{}, nil, err
	}

	strat, err := compute.Get(p.Backend)
	if err != nil {
		return Result{}, nil, err
	}
	if !strat.Available() {
		return Result{}, nil, fmt.Errorf("backend %s is not available in this build", p.Backend)
	}
	if !strat.Supports(p.Precision) {
		return Result{}, nil, fmt.Errorf("precision %s is not implemented on backend %s", p.Precision, p.Backend)
	}
	if cpu, ok := strat.(*compute.CPU); ok {
		cpu.SetWorkers(p.Workers)
	}
	defer strat.Cleanup()

	switch p.Precision {
	case precision.F64:
		return execute[float64](p, strat)
	case precision.F32:
		return execute[float32](p, strat)
	case precision.F16:
		return execute[float16.Float16](p, strat)
	default:
		return Result{}, nil, fmt.Errorf("unknown precision: %q", p.Precision)
	}
}

func execute[T grid.Elem](p Params, strat compute.Strategy) (Result, []float64, error) {
	pair, err := grid.NewPair[T](p.N, p.M)
	if err != nil {
		return Result{}, nil, err
	}
	pair.Seed(p.Boundary)

	solver := jacobi.New(pair, strat)
	res, err := Measure(strat.Name(), p.Precision, p.N, p.M, p.Iters, func() error {
		return solver.Run(p.Iters)
	})
	if err != nil {
		return Result{}, nil, err
	}
	return res, solver.Final().Float64s(), nil
}

// Reference produces the ground-truth final grid for p: the f64 run of the
// same backend and shape, or of the serial backend when the requested one
// has no f64 kernel (the hardware pipeline is f32 only). Timing of the
// reference run is discarded.
func Reference(p Params) ([]float64, error) {
	q := p
	q.Precision = precision.F64
	if strat, err := compute.Get(q.Backend); err != nil || !strat.Available() || !strat.Supports(precision.F64) {
		q.Backend = "serial"
	}
	_, final, err := Execute(q)
	return final, err
}
