package jacobi

import (
	"github.com/x448/float16"

	"github.com/san-kum/stencilbench/internal/grid"
)

// Sweep applies one Jacobi pass over rows [lo, hi) of src into dst. Every
// interior cell becomes the mean of its four neighbors read from src;
// boundary cells are copied through unchanged, which keeps the Dirichlet
// edge values fixed for the whole run. src and dst must be distinct
// storage of identical shape; src is never written.
//
// All neighbor reads, the sum and the 0.25 multiplier use the grid's
// declared scalar type. Half precision is the exception forced by the
// representation: binary16 has no native arithmetic, so each operand is
// widened to float32, combined, and the result rounded back to binary16
// before the store.
func Sweep[T grid.Elem](src, dst *grid.Grid[T], lo, hi int) {
	n, m := src.N(), src.M()
	switch s := any(src.Data()).(type) {
	case []float64:
		sweepFloat(s, any(dst.Data()).([]float64), n, m, lo, hi)
	case []float32:
		sweepFloat(s, any(dst.Data()).([]float32), n, m, lo, hi)
	case []float16.Float16:
		sweepHalf(s, any(dst.Data()).([]float16.Float16), n, m, lo, hi)
	}
}

func sweepFloat[T float32 | float64](src, dst []T, n, m, lo, hi int) {
	for i := lo; i < hi; i++ {
		row := i * m
		if i == 0 || i == n-1 {
			copy(dst[row:row+m], src[row:row+m])
			continue
		}
		dst[row] = src[row]
		for j := 1; j < m-1; j++ {
			idx := row + j
			dst[idx] = T(0.25) * (src[idx-m] + src[idx+m] + src[idx-1] + src[idx+1])
		}
		dst[row+m-1] = src[row+m-1]
	}
}

func sweepHalf(src, dst []float16.Float16, n, m, lo, hi int) {
	for i := lo; i < hi; i++ {
		row := i * m
		if i == 0 || i == n-1 {
			copy(dst[row:row+m], src[row:row+m])
			continue
		}
		dst[row] = src[row]
		for j := 1; j < m-1; j++ {
			idx := row + j
			up := src[idx-m].Float32()
			down := src[idx+m].Float32()
			left := src[idx-1].Float32()
			right := src[idx+1].Float32()
			dst[idx] = float16.Fromfloat32(0.25 * (up + down + left + right))
		}
		dst[row+m-1] = src[row+m-1]
	}
}
