package metrics

import (
	"math"

	"github.com/san-kum/stochlab/internal/engine"
)

// RealizedVol is the annualized population standard deviation of log
// returns of the displayed values.
type RealizedVol struct {
	dt      float64
	prev    float64
	started bool
	returns []float64
}

func NewRealizedVol(dt float64) *RealizedVol {
	return &RealizedVol{dt: dt}
}

func (r *RealizedVol) Name() string { return "realized_vol" }

func (r *RealizedVol) Observe(pt engine.PathPoint) {
	if r.started && r.prev > 0 && pt.Value > 0 {
		r.returns = append(r.returns, math.Log(pt.Value/r.prev))
	}
	r.prev = pt.Value
	r.started = true
}

func (r *RealizedVol) Value() float64 {
	n := len(r.returns)
	if n == 0 || r.dt <= 0 {
		return 0
	}
	mean := 0.0
	for _, lr := range r.returns {
		mean += lr
	}
	mean /= float64(n)

	varSum := 0.0
	for _, lr := range r.returns {
		d := lr - mean
		varSum += d * d
	}
	return math.Sqrt(varSum/float64(n)) / math.Sqrt(r.dt)
}

func (r *RealizedVol) Reset() {
	r.prev = 0
	r.started = false
	r.returns = nil
}
