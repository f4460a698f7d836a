package engine

import (
	"time"

	"github.com/san-kum/stochlab/internal/market"
	"github.com/san-kum/stochlab/internal/pricing"
	"github.com/san-kum/stochlab/internal/process"
)

// ReversionParams drive the mean-reverting model variants.
type ReversionParams struct {
	Speed  float64 `json:"speed"`
	Target float64 `json:"target"`
}

// JumpParams drive the jump-diffusion variant.
type JumpParams struct {
	Intensity  float64 `json:"intensity"`
	Mean       float64 `json:"mean"`
	Volatility float64 `json:"volatility"`
}

// DerivativeTerms describe the contract priced along option and
// swaption paths. Call selects call vs put for options and payer vs
// receiver for swaptions.
type DerivativeTerms struct {
	Strike     float64 `json:"strike"`
	Call       bool    `json:"call"`
	ImpliedVol float64 `json:"implied_vol"`
	Expiry     float64 `json:"expiry"`
	RiskFree   float64 `json:"risk_free"`
}

// Params fully describe one run. They are expected pre-validated and
// pre-defaulted by the caller; the engine checks only the structural
// invariants listed in errors.go.
type Params struct {
	Model   process.Kind      `json:"model"`
	Asset   market.AssetClass `json:"asset"`
	Initial float64           `json:"initial"`
	Steps   int               `json:"steps"`
	Dt      float64           `json:"dt"`
	Start   time.Time         `json:"start"`

	Drift      float64 `json:"drift"`
	Volatility float64 `json:"volatility"`

	Reversion  ReversionParams    `json:"reversion"`
	Jump       JumpParams         `json:"jump"`
	Adjust     market.Adjustments `json:"adjustments"`
	Derivative DerivativeTerms    `json:"derivative"`

	// Correlations maps named factors to coefficients; their clamped
	// sum is the aggregate correlation to the benchmark proxy.
	Correlations map[string]float64 `json:"correlations"`
}

// Validate checks the structural invariants. Model names are checked by
// the process registry at build time.
func (p Params) Validate() error {
	if p.Dt <= 0 {
		return ErrStepSize
	}
	if p.Steps < 1 {
		return ErrStepCount
	}
	if p.Volatility < 0 {
		return ErrVolatility
	}
	if _, err := market.Parse(string(p.Asset)); err != nil {
		return ErrUnknownAsset
	}
	return nil
}

// PathPoint is one step of a synthesized path. Field names and order
// are stable; the export layer serializes them positionally.
type PathPoint struct {
	Index           int             `json:"index"`
	Date            time.Time       `json:"date"`
	Value           float64         `json:"value"`
	Underlying      float64         `json:"underlying"`
	Secondary       float64         `json:"secondary,omitempty"`
	PERatio         float64         `json:"pe_ratio,omitempty"`
	ForwardEarnings float64         `json:"forward_earnings,omitempty"`
	Benchmark       float64         `json:"benchmark"`
	Greeks          *pricing.Greeks `json:"greeks,omitempty"`
}

// Summary holds descriptive statistics over the displayed values.
type Summary struct {
	Min    float64 `json:"min"`
	Max    float64 `json:"max"`
	Mean   float64 `json:"mean"`
	StdDev float64 `json:"stddev"`
}

// Result is the complete outcome of one run: echoed parameters, the
// ordered path (steps+1 points), summary statistics, and any attached
// metric values. Immutable once returned.
type Result struct {
	Params  Params             `json:"params"`
	Path    []PathPoint        `json:"path"`
	Summary Summary            `json:"summary"`
	Metrics map[string]float64 `json:"metrics,omitempty"`
}

// Metric observes every path point of a run and reduces them to one
// value, in insertion order.
type Metric interface {
	Name() string
	Observe(pt PathPoint)
	Value() float64
	Reset()
}
