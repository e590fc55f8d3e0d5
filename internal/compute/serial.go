package compute

import "github.com/san-kum/stencilbench/internal/precision"

// Serial runs the whole pass on the calling goroutine. It is the reference
// strategy the parallel ones are tested against.
type Serial struct{}

func NewSerial() *Serial { return &Serial{} }

func (s *Serial) Name() string                  { return "serial" }
func (s *Serial) Available() bool               { return true }
func (s *Serial) Supports(p precision.Tag) bool { return p.Bits() != 0 }
func (s *Serial) Cleanup()                      {}

func (s *Serial) Run(rows int, pass func(lo, hi int)) {
	pass(0, rows)
}
