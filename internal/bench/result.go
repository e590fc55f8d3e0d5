package bench

import (
	"fmt"
	"strconv"

	"github.com/san-kum/stencilbench/internal/precision"
)

// Result is the one structured record a run produces after its iteration
// loop completes. RelError is 0 for a reference run.
type Result struct {
	Backend   string
	Precision precision.Tag
	N, M      int
	Iters     int
	RuntimeMS float64
	MLUPS     float64
	RelError  float64
}

// CSV renders the record in the fixed field order consumed by the sweep
// and aggregation tooling:
//
//	backend,precision,N,M,iters,runtime_ms,mlups,rel_error
func (r Result) CSV() string {
	return fmt.Sprintf("%s,%s,%d,%d,%d,%.3f,%.3f,%.4e",
		r.Backend, r.Precision, r.N, r.M, r.Iters, r.RuntimeMS, r.MLUPS, r.RelError)
}

// Fields renders the record as CSV fields in the same order as CSV.
func (r Result) Fields() []string {
	return []string{
		r.Backend,
		r.Precision.String(),
		strconv.Itoa(r.N),
		strconv.Itoa(r.M),
		strconv.Itoa(r.Iters),
		strconv.FormatFloat(r.RuntimeMS, 'f', 3, 64),
		strconv.FormatFloat(r.MLUPS, 'f', 3, 64),
		strconv.FormatFloat(r.RelError, 'e', 4, 64),
	}
}

// FieldNames is the header row matching Fields.
func FieldNames() []string {
	return []string{"backend", "precision", "N", "M", "iters", "runtime_ms", "mlups", "rel_error"}
}
