package engine

import (
	"math"

	"github.com/san-kum/stochlab/internal/market"
	"github.com/san-kum/stochlab/internal/pricing"
	"github.com/san-kum/stochlab/internal/process"
	"github.com/san-kum/stochlab/internal/rng"
)

// tradingDays sets the period of the deterministic seasonal component.
const tradingDays = 252.0

type Engine struct {
	metrics []Metric
}

func New() *Engine {
	return &Engine{metrics: make([]Metric, 0)}
}

func (e *Engine) AddMetric(m Metric) { e.metrics = append(e.metrics, m) }

// Run synthesizes one path from p, drawing all entropy from src. The
// run always completes once validation passes; numerical edges are
// handled by flooring, never by aborting.
func (e *Engine) Run(p Params, src *rng.Source) (*Result, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}

	coeffs := process.Coeffs{
		Drift:          market.EffectiveDrift(p.Asset, p.Drift, p.Derivative.RiskFree, p.Adjust),
		Volatility:     p.Volatility,
		Speed:          p.Reversion.Speed,
		Target:         p.Reversion.Target,
		JumpIntensity:  p.Jump.Intensity,
		JumpMean:       p.Jump.Mean,
		JumpVolatility: p.Jump.Volatility,
	}
	proc, err := process.New(p.Model, coeffs, src)
	if err != nil {
		return nil, err
	}

	rho := rng.AggregateCorrelation(p.Correlations)

	for _, m := range e.metrics {
		m.Reset()
	}

	path := make([]PathPoint, 0, p.Steps+1)
	state := p.Initial
	bench := p.Initial

	for i := 0; i <= p.Steps; i++ {
		pt := e.point(p, i, state, bench)
		path = append(path, pt)
		for _, m := range e.metrics {
			m.Observe(pt)
		}

		zm := src.Norm()
		zi := src.Norm()
		za := rng.Couple(rho, zm, zi)

		bench = market.BenchmarkStep(bench, zm, p.Dt)
		state = proc.Step(state, za, p.Dt)
	}

	res := &Result{
		Params:  p,
		Path:    path,
		Summary: summarize(path),
	}
	if len(e.metrics) > 0 {
		res.Metrics = make(map[string]float64, len(e.metrics))
		for _, m := range e.metrics {
			res.Metrics[m.Name()] = m.Value()
		}
	}
	return res, nil
}

// point applies the asset-class display transform to the raw state.
func (e *Engine) point(p Params, i int, state, bench float64) PathPoint {
	pt := PathPoint{
		Index:      i,
		Date:       p.Start.AddDate(0, 0, i),
		Underlying: state,
		Benchmark:  bench,
	}

	seasonal := 0.0
	if market.Seasonal(p.Asset) {
		seasonal = math.Sin(2*math.Pi*float64(i)/tradingDays) * p.Adjust.SeasonalAmplitude
	}

	switch p.Asset {
	case market.Option:
		q := pricing.BlackScholes(state, p.Derivative.Strike, e.remaining(p, i),
			p.Derivative.RiskFree, p.Derivative.ImpliedVol, p.Derivative.Call)
		pt.Value = q.Price
		pt.Secondary = p.Derivative.Strike
		g := q.Greeks
		pt.Greeks = &g
	case market.Swaption:
		q := pricing.BlackSwaption(state, p.Derivative.Strike, e.remaining(p, i),
			p.Derivative.RiskFree, p.Derivative.ImpliedVol, p.Derivative.Call)
		pt.Value = q.Price
		pt.Secondary = p.Derivative.Strike
		g := q.Greeks
		pt.Greeks = &g
	case market.Equity, market.EquityIndex:
		pt.Value = state
		pt.PERatio, pt.ForwardEarnings = market.EquityFundamentals(state, p.Adjust)
	case market.CreditDefaultSwap:
		pt.Value = state
		pt.Secondary = p.Adjust.CreditSpread
	default:
		pt.Value = state + seasonal
	}
	return pt
}

// remaining is the time to expiry at step i, floored so pricing stays
// defined as expiry approaches.
func (e *Engine) remaining(p Params, i int) float64 {
	return math.Max(p.Derivative.Expiry-float64(i)*p.Dt, pricing.MinExpiry)
}
