package sweep

import (
	"fmt"

	"github.com/san-kum/stencilbench/internal/bench"
	"github.com/san-kum/stencilbench/internal/config"
	"github.com/san-kum/stencilbench/internal/precision"
	"github.com/san-kum/stencilbench/internal/results"
)

// Runner executes the cross product of a sweep configuration and appends
// every result record to the configured CSV file. The f64 reference grid
// for each (backend, shape) is computed once and reused to score all
// precisions and repeats of that configuration.
type Runner struct {
	cfg  *config.Config
	refs map[string][]float64
}

func New(cfg *config.Config) *Runner {
	return &Runner{cfg: cfg, refs: make(map[string][]float64)}
}

func (r *Runner) Run() ([]bench.Result, error) {
	if err := r.cfg.Validate(); err != nil {
		return nil, err
	}

	var all []bench.Result
	for _, backend := range r.cfg.Backends {
		for _, size := range r.cfg.Sizes {
			for _, tok := range r.cfg.Precisions {
				tag, err := precision.Parse(tok)
				if err != nil {
					return nil, err
				}
				for rep := 0; rep < r.cfg.Repeats; rep++ {
					res, err := r.runOne(backend, size, tag)
					if err != nil {
						return nil, err
					}
					all = append(all, res)
				}
			}
		}
	}

	if err := results.NewWriter(r.cfg.Output).Append(all); err != nil {
		return nil, err
	}
	return all, nil
}

func (r *Runner) runOne(backend string, size int, tag precision.Tag) (bench.Result, error) {
	params := bench.Params{
		Backend:   backend,
		Precision: tag,
		N:         size,
		M:         size,
		Iters:     r.cfg.Iters,
		Boundary:  r.cfg.Boundary,
		Workers:   r.cfg.Threads,
	}

	res, final, err := bench.Execute(params)
	if err != nil {
		return bench.Result{}, err
	}

	ref, err := r.reference(params)
	if err != nil {
		return bench.Result{}, err
	}
	res.RelError = bench.RelError(final, ref, size, size)
	return res, nil
}

func (r *Runner) reference(params bench.Params) ([]float64, error) {
	key := fmt.Sprintf("%s/%dx%d/%d", params.Backend, params.N, params.M, params.Iters)
	if ref, ok := r.refs[key]; ok {
		return ref, nil
	}
	ref, err := bench.Reference(params)
	if err != nil {
		return nil, err
	}
	r.refs[key] = ref
	return ref, nil
}
