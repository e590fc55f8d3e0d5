package compute

import (
	"runtime"
	"sync"

	"github.com/san-kum/stencilbench/internal/precision"
)

// Grids below this row count run serially; goroutine startup costs more
// than the pass itself.
const minParallelRows = 16

// CPU partitions the row space into static contiguous chunks, one per
// worker, and joins them with a WaitGroup before returning. No two workers
// ever write the same row, so no locking is needed.
type CPU struct {
	workers int
}

func NewCPU(workers int) *CPU {
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	return &CPU{workers: workers}
}

func (c *CPU) Name() string                  { return "cpu" }
func (c *CPU) Available() bool               { return true }
func (c *CPU) Supports(p precision.Tag) bool { return p.Bits() != 0 }
func (c *CPU) Cleanup()                      {}

func (c *CPU) SetWorkers(workers int) {
	if workers > 0 {
		c.workers = workers
	}
}

func (c *CPU) Run(rows int, pass func(lo, hi int)) {
	if rows < minParallelRows || c.workers == 1 {
		pass(0, rows)
		return
	}

	chunkSize := (rows + c.workers - 1) / c.workers

	var wg sync.WaitGroup
	for w := 0; w < c.workers; w++ {
		start := w * chunkSize
		if start >= rows {
			break
		}
		end := start + chunkSize
		if end > rows {
			end = rows
		}

		wg.Add(1)
		go func(lo, hi int) {
			defer wg.Done()
			pass(lo, hi)
		}(start, end)
	}

	wg.Wait()
}
