package process

import (
	"fmt"
	"sort"

	"github.com/san-kum/stochlab/internal/rng"
)

// Kind identifies one of the six evolution rules.
type Kind string

const (
	GBM               Kind = "gbm"
	JumpDiffusion     Kind = "jump_diffusion"
	MeanReversion     Kind = "mean_reversion"
	SqrtMeanReversion Kind = "sqrt_mean_reversion"
	Equilibrium       Kind = "equilibrium"
	Structural        Kind = "structural"
)

// Coeffs are the per-run coefficients a process is built from. Drift is
// the effective drift after asset-class carry adjustments.
type Coeffs struct {
	Drift      float64
	Volatility float64

	// mean reversion
	Speed  float64
	Target float64

	// jump process
	JumpIntensity  float64
	JumpMean       float64
	JumpVolatility float64
}

// Process advances the raw underlying level by one step.
type Process interface {
	Step(level, shock, dt float64) float64
}

var factories = map[Kind]func(Coeffs, *rng.Source) Process{
	GBM:               func(c Coeffs, _ *rng.Source) Process { return NewLognormal(c) },
	JumpDiffusion:     func(c Coeffs, src *rng.Source) Process { return NewJumpLognormal(c, src) },
	MeanReversion:     func(c Coeffs, _ *rng.Source) Process { return NewLinearReverting(c) },
	SqrtMeanReversion: func(c Coeffs, _ *rng.Source) Process { return NewSquareRootReverting(c) },
	Equilibrium:       func(c Coeffs, _ *rng.Source) Process { return NewDriftingReverting(c) },
	Structural:        func(c Coeffs, _ *rng.Source) Process { return NewDriftingReverting(c) },
}

// New builds the process for kind. src is consumed only by kinds that
// draw extra variates of their own (jump arrivals and sizes).
func New(kind Kind, c Coeffs, src *rng.Source) (Process, error) {
	fn, ok := factories[kind]
	if !ok {
		return nil, fmt.Errorf("unknown process model: %s", kind)
	}
	return fn(c, src), nil
}

func Parse(s string) (Kind, error) {
	k := Kind(s)
	if _, ok := factories[k]; !ok {
		return "", fmt.Errorf("unknown process model: %s", s)
	}
	return k, nil
}

// Kinds lists the registered model names in sorted order.
func Kinds() []Kind {
	names := make([]Kind, 0, len(factories))
	for k := range factories {
		names = append(names, k)
	}
	sort.Slice(names, func(i, j int) bool { return names[i] < names[j] })
	return names
}
