package process

import (
	"math"

	"github.com/san-kum/stochlab/internal/rng"
)

// Lognormal is the exact-discretization geometric Brownian motion step.
type Lognormal struct {
	drift float64
	vol   float64
}

func NewLognormal(c Coeffs) *Lognormal {
	return &Lognormal{drift: c.Drift, vol: c.Volatility}
}

func (l *Lognormal) Step(level, shock, dt float64) float64 {
	exponent := (l.drift-0.5*l.vol*l.vol)*dt + l.vol*math.Sqrt(dt)*shock
	return level * math.Exp(exponent)
}

// JumpLognormal compounds the lognormal step with a Merton-style jump.
// Arrival uses the Bernoulli approximation to a Poisson process: at most
// one jump per step, with probability intensity*dt. The approximation is
// only accurate for small dt.
type JumpLognormal struct {
	base      *Lognormal
	intensity float64
	mean      float64
	vol       float64
	src       *rng.Source
}

func NewJumpLognormal(c Coeffs, src *rng.Source) *JumpLognormal {
	return &JumpLognormal{
		base:      NewLognormal(c),
		intensity: c.JumpIntensity,
		mean:      c.JumpMean,
		vol:       c.JumpVolatility,
		src:       src,
	}
}

func (j *JumpLognormal) Step(level, shock, dt float64) float64 {
	next := j.base.Step(level, shock, dt)
	if j.src.Uniform() < j.intensity*dt {
		// jump size draws its own independent normal
		next *= math.Exp(j.mean + j.vol*j.src.Norm())
	}
	return next
}
