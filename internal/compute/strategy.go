package compute

import (
	"fmt"

	"github.com/san-kum/stencilbench/internal/precision"
)

// Strategy applies one kernel pass over a partitioned row index space.
// Run must invoke pass for disjoint half-open ranges covering [0, rows)
// exactly once each and return only after every range has completed: the
// return is the barrier between Jacobi passes. Strategies never change
// numeric results; they only choose how the row space is partitioned.
type Strategy interface {
	Name() string
	Available() bool
	Supports(p precision.Tag) bool
	Run(rows int, pass func(lo, hi int))
	Cleanup()
}

// Get resolves a backend token. Unknown names are a configuration error.
func Get(name string) (Strategy, error) {
	switch name {
	case "serial":
		return NewSerial(), nil
	case "cpu":
		return NewCPU(0), nil
	case "fpga":
		return NewFPGA(), nil
	case "cuda":
		return NewCUDA(), nil
	default:
		return nil, fmt.Errorf("unknown backend: %q (want one of %v)", name, Names())
	}
}

func Names() []string {
	return []string{"cpu", "cuda", "fpga", "serial"}
}

// AutoSelect prefers the device backend when it is available, else the
// multi-threaded CPU backend.
func AutoSelect() Strategy {
	cuda := NewCUDA()
	if cuda.Available() {
		return cuda
	}
	return NewCPU(0)
}
