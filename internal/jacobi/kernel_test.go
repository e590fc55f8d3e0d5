package jacobi

import (
	"testing"

	"github.com/x448/float16"

	"github.com/san-kum/stencilbench/internal/grid"
)

func seededPair[T grid.Elem](t *testing.T, n, m int) *grid.Pair[T] {
	t.Helper()
	pair, err := grid.NewPair[T](n, m)
	if err != nil {
		t.Fatalf("NewPair failed: %v", err)
	}
	pair.Seed(1.0)
	return pair
}

func TestSweepSixBySix(t *testing.T) {
	pair := seededPair[float64](t, 6, 6)
	src, dst := pair.Cur(), pair.Next()

	Sweep(src, dst, 0, 6)

	// Interior cells adjacent to the hot top edge pick up a quarter of it.
	for j := 1; j <= 4; j++ {
		if got := dst.At(1, j); got != 0.25 {
			t.Errorf("cell (1,%d) = %v, want 0.25", j, got)
		}
	}
	// Deeper interior is still cold after one pass.
	for i := 2; i <= 4; i++ {
		for j := 1; j <= 4; j++ {
			if got := dst.At(i, j); got != 0 {
				t.Errorf("cell (%d,%d) = %v, want 0", i, j, got)
			}
		}
	}
	// Boundary cells are copied through, never recomputed.
	for j := 0; j < 6; j++ {
		if dst.At(0, j) != 1.0 {
			t.Errorf("top boundary cell (0,%d) = %v, want 1", j, dst.At(0, j))
		}
		if dst.At(5, j) != 0 {
			t.Errorf("bottom boundary cell (5,%d) = %v, want 0", j, dst.At(5, j))
		}
	}
	for i := 1; i < 5; i++ {
		if dst.At(i, 0) != 0 || dst.At(i, 5) != 0 {
			t.Errorf("side boundary of row %d modified", i)
		}
	}
}

func TestSweepMinimalGrids(t *testing.T) {
	// Smallest shapes exercise the neighbor index arithmetic at the edges.
	for _, shape := range []struct{ n, m int }{{4, 4}, {3, 3}, {3, 8}, {8, 3}} {
		pair := seededPair[float64](t, shape.n, shape.m)
		src, dst := pair.Cur(), pair.Next()

		Sweep(src, dst, 0, shape.n)

		for j := 1; j < shape.m-1; j++ {
			if got := dst.At(1, j); got != 0.25 {
				t.Errorf("%dx%d cell (1,%d) = %v, want 0.25", shape.n, shape.m, j, got)
			}
		}
		for i := 2; i < shape.n-1; i++ {
			for j := 1; j < shape.m-1; j++ {
				if got := dst.At(i, j); got != 0 {
					t.Errorf("%dx%d cell (%d,%d) = %v, want 0", shape.n, shape.m, i, j, got)
				}
			}
		}
	}
}

func TestSweepLeavesSourceUntouched(t *testing.T) {
	pair := seededPair[float64](t, 5, 5)
	src, dst := pair.Cur(), pair.Next()
	before := src.Clone()

	Sweep(src, dst, 0, 5)

	for i := range src.Data() {
		if src.Data()[i] != before.Data()[i] {
			t.Fatalf("source cell %d modified during sweep", i)
		}
	}
}

func TestSweepRowRangesCompose(t *testing.T) {
	// Sweeping disjoint row ranges must equal one full sweep.
	full := seededPair[float64](t, 8, 8)
	split := seededPair[float64](t, 8, 8)

	Sweep(full.Cur(), full.Next(), 0, 8)
	Sweep(split.Cur(), split.Next(), 0, 3)
	Sweep(split.Cur(), split.Next(), 3, 5)
	Sweep(split.Cur(), split.Next(), 5, 8)

	a, b := full.Next().Data(), split.Next().Data()
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("cell %d differs between full and split sweeps: %v vs %v", i, a[i], b[i])
		}
	}
}

func TestSweepFloat32(t *testing.T) {
	pair := seededPair[float32](t, 4, 4)
	Sweep(pair.Cur(), pair.Next(), 0, 4)

	if got := pair.Next().At(1, 1); got != 0.25 {
		t.Errorf("f32 cell (1,1) = %v, want 0.25", got)
	}
	if got := pair.Next().At(2, 1); got != 0 {
		t.Errorf("f32 cell (2,1) = %v, want 0", got)
	}
}

func TestSweepHalf(t *testing.T) {
	pair := seededPair[float16.Float16](t, 4, 4)
	Sweep(pair.Cur(), pair.Next(), 0, 4)

	// 0.25 is exactly representable in binary16.
	if got := pair.Next().At(1, 1).Float32(); got != 0.25 {
		t.Errorf("f16 cell (1,1) = %v, want 0.25", got)
	}
	if got := pair.Next().At(0, 0).Float32(); got != 1.0 {
		t.Errorf("f16 boundary cell (0,0) = %v, want 1", got)
	}
}
