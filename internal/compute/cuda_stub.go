//go:build !cuda

package compute

import "github.com/san-kum/stencilbench/internal/precision"

// CUDA is the device backend. Without the cuda build tag it reports
// unavailable; selecting it is then a configuration error. Run still has
// defined behavior (serial pass) so a stub is never numerically wrong.
type CUDA struct{}

func NewCUDA() *CUDA { return &CUDA{} }

func (c *CUDA) Name() string    { return "cuda" }
func (c *CUDA) Available() bool { return false }
func (c *CUDA) Cleanup()        {}

func (c *CUDA) Supports(p precision.Tag) bool {
	return p == precision.F64 || p == precision.F32
}

func (c *CUDA) Run(rows int, pass func(lo, hi int)) {
	pass(0, rows)
}
