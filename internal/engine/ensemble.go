package engine

import (
	"sync"

	"github.com/san-kum/stochlab/internal/rng"
)

// Ensemble runs the same parameters across independent seeds, one
// goroutine and one entropy source per run, so no sequences correlate.
type Ensemble struct {
	runs      int
	seedStart int64
}

func NewEnsemble(runs int, seedStart int64) *Ensemble {
	return &Ensemble{runs: runs, seedStart: seedStart}
}

func (e *Ensemble) Run(p Params) ([]*Result, error) {
	results := make([]*Result, e.runs)
	errs := make([]error, e.runs)

	var wg sync.WaitGroup
	for i := 0; i < e.runs; i++ {
		wg.Add(1)
		go func(idx int) {
			defer wg.Done()
			src := rng.New(e.seedStart + int64(idx))
			results[idx], errs[idx] = New().Run(p, src)
		}(i)
	}
	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}
	return results, nil
}
