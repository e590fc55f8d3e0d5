package bench

import (
	"math"
	"strings"
	"testing"
	"time"

	"github.com/san-kum/stencilbench/internal/precision"
)

func TestLatticeUpdates(t *testing.T) {
	tests := []struct {
		n, m, iters int
		want        int64
	}{
		{6, 6, 1, 16},
		{4, 4, 1, 4},
		{3, 3, 10, 10},
		{64, 64, 100, 62 * 62 * 100},
		{1024, 1024, 500, 1022 * 1022 * 500},
	}

	for _, tt := range tests {
		if got := LatticeUpdates(tt.n, tt.m, tt.iters); got != tt.want {
			t.Errorf("LatticeUpdates(%d,%d,%d) = %d, want %d", tt.n, tt.m, tt.iters, got, tt.want)
		}
	}
}

func TestLatticeUpdatesScaling(t *testing.T) {
	// Doubling both dimensions roughly quadruples interior work.
	small := LatticeUpdates(64, 64, 100)
	large := LatticeUpdates(128, 128, 100)

	ratio := float64(large) / float64(small)
	if ratio < 3.9 || ratio > 4.3 {
		t.Errorf("work ratio for doubled dimensions = %.3f, want ~4", ratio)
	}
}

func TestResultCSV(t *testing.T) {
	r := Result{
		Backend:   "cpu",
		Precision: precision.F32,
		N:         1024,
		M:         1024,
		Iters:     500,
		RuntimeMS: 1234.5678,
		MLUPS:     423.1,
		RelError:  3.25e-7,
	}

	want := "cpu,f32,1024,1024,500,1234.568,423.100,3.2500e-07"
	if got := r.CSV(); got != want {
		t.Errorf("CSV() = %q, want %q", got, want)
	}

	fields := r.Fields()
	if len(fields) != len(FieldNames()) {
		t.Fatalf("Fields() has %d entries, header has %d", len(fields), len(FieldNames()))
	}
	if joined := strings.Join(fields, ","); joined != want {
		t.Errorf("joined Fields() = %q, want %q", joined, want)
	}
}

func TestMeasure(t *testing.T) {
	res, err := Measure("cpu", precision.F64, 66, 66, 10, func() error {
		time.Sleep(2 * time.Millisecond)
		return nil
	})
	if err != nil {
		t.Fatalf("Measure failed: %v", err)
	}

	if res.RuntimeMS < 2 {
		t.Errorf("runtime = %.3f ms, want >= 2", res.RuntimeMS)
	}
	if res.MLUPS <= 0 {
		t.Errorf("mlups = %v, want > 0", res.MLUPS)
	}
	if res.RelError != 0 {
		t.Errorf("rel error = %v, want 0 before scoring", res.RelError)
	}
}

func TestMeasureZeroIters(t *testing.T) {
	res, err := Measure("cpu", precision.F64, 8, 8, 0, func() error { return nil })
	if err != nil {
		t.Fatalf("Measure failed: %v", err)
	}
	if res.MLUPS != 0 {
		t.Errorf("mlups for zero work = %v, want 0", res.MLUPS)
	}
}

func field(n, m int, fill func(i, j int) float64) []float64 {
	out := make([]float64, n*m)
	for i := 0; i < n; i++ {
		for j := 0; j < m; j++ {
			out[i*m+j] = fill(i, j)
		}
	}
	return out
}

func TestRelError(t *testing.T) {
	const n, m = 6, 6
	ref := field(n, m, func(i, j int) float64 { return float64(i + j) })

	t.Run("identical grids", func(t *testing.T) {
		if got := RelError(ref, ref, n, m); got != 0 {
			t.Errorf("RelError = %v, want 0", got)
		}
	})

	t.Run("boundary differences are excluded", func(t *testing.T) {
		got := make([]float64, len(ref))
		copy(got, ref)
		got[0] = 99
		got[n*m-1] = -99
		if e := RelError(got, ref, n, m); e != 0 {
			t.Errorf("RelError = %v, want 0 for boundary-only difference", e)
		}
	})

	t.Run("known interior perturbation", func(t *testing.T) {
		got := make([]float64, len(ref))
		copy(got, ref)
		got[1*m+1] += 1.0

		var den float64
		for i := 1; i < n-1; i++ {
			for j := 1; j < m-1; j++ {
				den += ref[i*m+j] * ref[i*m+j]
			}
		}
		want := math.Sqrt(1.0 / den)
		if e := RelError(got, ref, n, m); math.Abs(e-want) > 1e-15 {
			t.Errorf("RelError = %v, want %v", e, want)
		}
	})

	t.Run("zero reference falls back to absolute norm", func(t *testing.T) {
		zero := field(n, m, func(i, j int) float64 { return 0 })
		got := make([]float64, len(zero))
		got[2*m+2] = 3.0
		if e := RelError(got, zero, n, m); e != 3.0 {
			t.Errorf("RelError = %v, want 3", e)
		}
	})
}

func TestExecuteValidation(t *testing.T) {
	base := Params{Backend: "serial", Precision: precision.F64, N: 8, M: 8, Iters: 2, Boundary: 1.0}

	tests := []struct {
		name   string
		mutate func(*Params)
	}{
		{"rows too small", func(p *Params) { p.N = 2 }},
		{"cols too small", func(p *Params) { p.M = 1 }},
		{"negative iters", func(p *Params) { p.Iters = -3 }},
		{"unknown backend", func(p *Params) { p.Backend = "tpu" }},
		{"unavailable backend", func(p *Params) { p.Backend = "cuda" }},
		{"precision not implemented", func(p *Params) { p.Backend = "fpga"; p.Precision = precision.F64 }},
		{"unknown precision", func(p *Params) { p.Precision = "f8" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := base
			tt.mutate(&p)
			if _, _, err := Execute(p); err == nil {
				t.Error("expected error, got nil")
			}
		})
	}
}

func TestExecute(t *testing.T) {
	params := Params{Backend: "serial", Precision: precision.F64, N: 16, M: 16, Iters: 10, Boundary: 1.0}

	res, final, err := Execute(params)
	if err != nil {
		t.Fatalf("Execute failed: %v", err)
	}

	if res.Backend != "serial" || res.Precision != precision.F64 {
		t.Errorf("record identity fields wrong: %+v", res)
	}
	if res.N != 16 || res.M != 16 || res.Iters != 10 {
		t.Errorf("record shape fields wrong: %+v", res)
	}
	if len(final) != 16*16 {
		t.Fatalf("final grid has %d cells, want 256", len(final))
	}
	if final[0] != 1.0 {
		t.Errorf("top boundary = %v, want 1", final[0])
	}
	if final[1*16+1] <= 0 {
		t.Errorf("interior cell (1,1) = %v, want > 0 after 10 iterations", final[1*16+1])
	}
}

func TestReferenceMatchesF64Run(t *testing.T) {
	params := Params{Backend: "serial", Precision: precision.F32, N: 12, M: 12, Iters: 20, Boundary: 1.0}

	ref, err := Reference(params)
	if err != nil {
		t.Fatalf("Reference failed: %v", err)
	}

	p64 := params
	p64.Precision = precision.F64
	_, want, err := Execute(p64)
	if err != nil {
		t.Fatalf("Execute failed: %v", err)
	}

	for i := range want {
		if ref[i] != want[i] {
			t.Fatalf("reference cell %d = %v, want %v", i, ref[i], want[i])
		}
	}
}

func TestReferenceFallsBackForFPGA(t *testing.T) {
	// The hardware pipeline has no f64 kernel; the reference must come from
	// the serial backend with identical shape and seeding.
	params := Params{Backend: "fpga", Precision: precision.F32, N: 10, M: 10, Iters: 15, Boundary: 1.0}

	ref, err := Reference(params)
	if err != nil {
		t.Fatalf("Reference failed: %v", err)
	}

	serial := Params{Backend: "serial", Precision: precision.F64, N: 10, M: 10, Iters: 15, Boundary: 1.0}
	_, want, err := Execute(serial)
	if err != nil {
		t.Fatalf("Execute failed: %v", err)
	}

	for i := range want {
		if ref[i] != want[i] {
			t.Fatalf("reference cell %d = %v, want %v", i, ref[i], want[i])
		}
	}
}
