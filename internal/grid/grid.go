package grid

import (
	"fmt"
	"math"

	"github.com/x448/float16"
)

// Elem is the set of scalar types a grid can store. Half-precision cells
// are stored as raw binary16 bits.
type Elem interface {
	float32 | float64 | float16.Float16
}

// Grid is a rectangular N x M field stored row-major in a flat slice.
// Row 0, row N-1, column 0 and column M-1 are boundary cells; everything
// else is interior.
type Grid[T Elem] struct {
	n, m int
	data []T
}

// New allocates a zeroed grid. Both dimensions must be at least 3 so that
// at least one interior cell exists.
func New[T Elem](n, m int) (*Grid[T], error) {
	if n < 3 || m < 3 {
		return nil, fmt.Errorf("grid must be at least 3x3, got %dx%d", n, m)
	}
	if m != 0 && n > math.MaxInt/m {
		return nil, fmt.Errorf("grid %dx%d exceeds addressable size", n, m)
	}
	return &Grid[T]{n: n, m: m, data: make([]T, n*m)}, nil
}

func (g *Grid[T]) N() int    { return g.n }
func (g *Grid[T]) M() int    { return g.m }
func (g *Grid[T]) Data() []T { return g.data }

func (g *Grid[T]) At(i, j int) T     { return g.data[i*g.m+j] }
func (g *Grid[T]) Set(i, j int, v T) { g.data[i*g.m+j] = v }

// Row returns the backing slice for row i.
func (g *Grid[T]) Row(i int) []T { return g.data[i*g.m : (i+1)*g.m] }

func (g *Grid[T]) Clone() *Grid[T] {
	c := &Grid[T]{n: g.n, m: g.m, data: make([]T, len(g.data))}
	copy(c.data, g.data)
	return c
}

// Seed zeroes the grid and assigns v to every cell of row 0, the fixed
// Dirichlet boundary used by all benchmark runs.
func (g *Grid[T]) Seed(v float64) {
	var zero T
	for i := range g.data {
		g.data[i] = zero
	}
	top := FromFloat64[T](v)
	for j := 0; j < g.m; j++ {
		g.data[j] = top
	}
}

// Float64s returns the whole field widened to float64, row-major. Used for
// cross-precision error computation and checksums only; it never feeds back
// into kernel arithmetic.
func (g *Grid[T]) Float64s() []float64 {
	out := make([]float64, len(g.data))
	switch d := any(g.data).(type) {
	case []float64:
		copy(out, d)
	case []float32:
		for i, v := range d {
			out[i] = float64(v)
		}
	case []float16.Float16:
		for i, v := range d {
			out[i] = float64(v.Float32())
		}
	}
	return out
}

// FromFloat64 rounds v to the scalar type T.
func FromFloat64[T Elem](v float64) T {
	var zero T
	switch any(zero).(type) {
	case float64:
		return any(v).(T)
	case float32:
		return any(float32(v)).(T)
	default:
		return any(float16.Fromfloat32(float32(v))).(T)
	}
}
