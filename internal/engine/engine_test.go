package engine_test

import (
	"math"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/stochlab/internal/engine"
	"github.com/san-kum/stochlab/internal/market"
	"github.com/san-kum/stochlab/internal/pricing"
	"github.com/san-kum/stochlab/internal/process"
	"github.com/san-kum/stochlab/internal/rng"
)

var start = time.Date(2026, 1, 5, 0, 0, 0, 0, time.UTC)

func baseParams() engine.Params {
	return engine.Params{
		Model:      process.GBM,
		Asset:      market.Equity,
		Initial:    100,
		Steps:      10,
		Dt:         1.0 / 252,
		Start:      start,
		Drift:      0,
		Volatility: 0,
	}
}

type countingMetric struct {
	observed int
	last     float64
}

func (c *countingMetric) Name() string { return "count" }
func (c *countingMetric) Observe(pt engine.PathPoint) {
	c.observed++
	c.last = pt.Value
}
func (c *countingMetric) Value() float64 { return float64(c.observed) }
func (c *countingMetric) Reset()         { c.observed = 0 }

var _ = Describe("Run", func() {
	It("returns steps+1 points in step order with consecutive dates", func() {
		p := baseParams()
		p.Steps = 25

		res, err := engine.New().Run(p, rng.New(1))
		Expect(err).NotTo(HaveOccurred())
		Expect(res.Path).To(HaveLen(26))

		for i, pt := range res.Path {
			Expect(pt.Index).To(Equal(i))
			Expect(pt.Date).To(Equal(start.AddDate(0, 0, i)))
		}
	})

	It("produces a flat path under zero drift and volatility", func() {
		res, err := engine.New().Run(baseParams(), rng.New(42))
		Expect(err).NotTo(HaveOccurred())

		for _, pt := range res.Path {
			Expect(pt.Value).To(Equal(100.0))
			Expect(pt.Underlying).To(Equal(100.0))
		}
		Expect(res.Summary.Min).To(Equal(100.0))
		Expect(res.Summary.Max).To(Equal(100.0))
		Expect(res.Summary.Mean).To(Equal(100.0))
		Expect(res.Summary.StdDev).To(BeZero())
	})

	It("echoes the input parameters", func() {
		p := baseParams()
		p.Correlations = map[string]float64{"broad_market": 0.4}

		res, err := engine.New().Run(p, rng.New(7))
		Expect(err).NotTo(HaveOccurred())
		Expect(res.Params.Model).To(Equal(process.GBM))
		Expect(res.Params.Correlations).To(HaveKeyWithValue("broad_market", 0.4))
	})

	It("keeps the square-root mean-reverting level non-negative", func() {
		p := baseParams()
		p.Model = process.SqrtMeanReversion
		p.Asset = market.InterestRate
		p.Initial = 0.04
		p.Steps = 2000
		p.Volatility = 0.05
		p.Reversion = engine.ReversionParams{Speed: 3, Target: 0.04}

		for _, seed := range []int64{1, 2, 3} {
			res, err := engine.New().Run(p, rng.New(seed))
			Expect(err).NotTo(HaveOccurred())
			for _, pt := range res.Path {
				Expect(pt.Underlying).To(BeNumerically(">=", 0), "step %d", pt.Index)
			}
		}
	})

	It("starts the benchmark proxy at the initial level", func() {
		p := baseParams()
		res, err := engine.New().Run(p, rng.New(9))
		Expect(err).NotTo(HaveOccurred())
		Expect(res.Path[0].Benchmark).To(Equal(100.0))
	})

	It("observes every point with attached metrics", func() {
		p := baseParams()
		m := &countingMetric{}
		e := engine.New()
		e.AddMetric(m)

		res, err := e.Run(p, rng.New(5))
		Expect(err).NotTo(HaveOccurred())
		Expect(res.Metrics).To(HaveKeyWithValue("count", 11.0))
		Expect(m.last).To(Equal(100.0))
	})

	Describe("validation", func() {
		It("rejects a non-positive step size", func() {
			p := baseParams()
			p.Dt = 0
			_, err := engine.New().Run(p, rng.New(1))
			Expect(err).To(MatchError(engine.ErrStepSize))
		})

		It("rejects fewer than one step", func() {
			p := baseParams()
			p.Steps = 0
			_, err := engine.New().Run(p, rng.New(1))
			Expect(err).To(MatchError(engine.ErrStepCount))
		})

		It("rejects negative volatility", func() {
			p := baseParams()
			p.Volatility = -0.1
			_, err := engine.New().Run(p, rng.New(1))
			Expect(err).To(MatchError(engine.ErrVolatility))
		})

		It("rejects an unknown asset class", func() {
			p := baseParams()
			p.Asset = "real_estate"
			_, err := engine.New().Run(p, rng.New(1))
			Expect(err).To(MatchError(engine.ErrUnknownAsset))
		})

		It("rejects an unknown model", func() {
			p := baseParams()
			p.Model = "heston"
			_, err := engine.New().Run(p, rng.New(1))
			Expect(err).To(HaveOccurred())
		})
	})
})

var _ = Describe("display transforms", func() {
	It("adds the seasonal shift to displayed commodity values only", func() {
		p := baseParams()
		p.Asset = market.Commodity
		p.Steps = 100
		p.Adjust.SeasonalAmplitude = 5

		res, err := engine.New().Run(p, rng.New(1))
		Expect(err).NotTo(HaveOccurred())
		for i, pt := range res.Path {
			want := 100 + math.Sin(2*math.Pi*float64(i)/252)*5
			Expect(pt.Value).To(BeNumerically("~", want, 1e-9))
			Expect(pt.Underlying).To(Equal(100.0))
		}
	})

	It("derives equity fundamentals from the price level", func() {
		p := baseParams()
		p.Adjust.PERatio = 20
		p.Adjust.EarningsGrowth = 0.05

		res, err := engine.New().Run(p, rng.New(1))
		Expect(err).NotTo(HaveOccurred())
		pt := res.Path[0]
		Expect(pt.PERatio).To(Equal(20.0))
		Expect(pt.ForwardEarnings).To(BeNumerically("~", 100.0/20*1.05, 1e-12))
	})

	It("carries the credit spread as the secondary value for CDS paths", func() {
		p := baseParams()
		p.Model = process.MeanReversion
		p.Asset = market.CreditDefaultSwap
		p.Initial = 0.012
		p.Reversion = engine.ReversionParams{Speed: 1, Target: 0.012}
		p.Adjust.CreditSpread = 0.012

		res, err := engine.New().Run(p, rng.New(1))
		Expect(err).NotTo(HaveOccurred())
		Expect(res.Path[0].Secondary).To(Equal(0.012))
	})
})

var _ = Describe("derivative paths", func() {
	optionParams := func() engine.Params {
		p := baseParams()
		p.Asset = market.Option
		p.Steps = 10
		p.Derivative = engine.DerivativeTerms{
			Strike:     100,
			Call:       true,
			ImpliedVol: 0.2,
			Expiry:     10.0 / 252,
			RiskFree:   0.05,
		}
		return p
	}

	It("prices each point with Black-Scholes and attaches Greeks", func() {
		p := optionParams()
		res, err := engine.New().Run(p, rng.New(1))
		Expect(err).NotTo(HaveOccurred())

		first := res.Path[0]
		want := pricing.BlackScholes(100, 100, 10.0/252, 0.05, 0.2, true)
		Expect(first.Value).To(BeNumerically("~", want.Price, 1e-12))
		Expect(first.Greeks).NotTo(BeNil())
		Expect(first.Greeks.Delta).To(BeNumerically("~", want.Greeks.Delta, 1e-12))
		Expect(first.Secondary).To(Equal(100.0))
	})

	It("collapses to intrinsic value when expiry is reached", func() {
		p := optionParams()
		res, err := engine.New().Run(p, rng.New(1))
		Expect(err).NotTo(HaveOccurred())

		last := res.Path[len(res.Path)-1]
		intrinsic := math.Max(0, last.Underlying-100)
		Expect(last.Value).To(BeNumerically("~", intrinsic, 1e-9))
		Expect(last.Greeks.Vega).To(BeZero())
		Expect(last.Greeks.Theta).To(BeZero())
		Expect(last.Greeks.Rho).To(BeZero())
	})

	It("prices swaption paths with the Black model", func() {
		p := baseParams()
		p.Model = process.MeanReversion
		p.Asset = market.Swaption
		p.Initial = 0.04
		p.Volatility = 0.005
		p.Reversion = engine.ReversionParams{Speed: 1.5, Target: 0.04}
		p.Derivative = engine.DerivativeTerms{
			Strike:     0.04,
			Call:       true,
			ImpliedVol: 0.25,
			Expiry:     1.0,
			RiskFree:   0.03,
		}

		res, err := engine.New().Run(p, rng.New(1))
		Expect(err).NotTo(HaveOccurred())

		first := res.Path[0]
		want := pricing.BlackSwaption(0.04, 0.04, 1.0, 0.03, 0.25, true)
		Expect(first.Value).To(BeNumerically("~", want.Price, 1e-12))
		Expect(first.Greeks).NotTo(BeNil())
		Expect(first.Greeks.Rho).To(BeNumerically("~", -1.0*want.Price, 1e-9))
	})
})

var _ = Describe("Ensemble", func() {
	It("runs independent seeds in parallel", func() {
		p := baseParams()
		p.Volatility = 0.2
		p.Drift = 0.05

		results, err := engine.NewEnsemble(8, 1000).Run(p)
		Expect(err).NotTo(HaveOccurred())
		Expect(results).To(HaveLen(8))

		terminal := map[float64]bool{}
		for _, res := range results {
			Expect(res.Path).To(HaveLen(11))
			terminal[res.Path[len(res.Path)-1].Value] = true
		}
		Expect(len(terminal)).To(BeNumerically(">", 1))
	})

	It("propagates validation errors", func() {
		p := baseParams()
		p.Dt = -1
		_, err := engine.NewEnsemble(2, 1).Run(p)
		Expect(err).To(MatchError(engine.ErrStepSize))
	})
})
