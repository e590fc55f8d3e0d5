package compute

import "github.com/san-kum/stencilbench/internal/precision"

// FPGA emulates the pipelined hardware kernel: rows stream through a single
// worker in order, one row per initiation, one pass per invocation. The
// hardware kernel is single precision only, so every other tag is rejected
// as not implemented rather than silently widened or narrowed.
type FPGA struct{}

func NewFPGA() *FPGA { return &FPGA{} }

func (f *FPGA) Name() string                  { return "fpga" }
func (f *FPGA) Available() bool               { return true }
func (f *FPGA) Supports(p precision.Tag) bool { return p == precision.F32 }
func (f *FPGA) Cleanup()                      {}

func (f *FPGA) Run(rows int, pass func(lo, hi int)) {
	for i := 0; i < rows; i++ {
		pass(i, i+1)
	}
}
