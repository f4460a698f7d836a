package config

import (
	"fmt"
	"math"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/san-kum/stochlab/internal/engine"
	"github.com/san-kum/stochlab/internal/market"
	"github.com/san-kum/stochlab/internal/process"
)

const (
	DefaultInitial    = 100.0
	DefaultSteps      = 252
	DefaultDt         = 1.0 / 252
	DefaultDrift      = 0.05
	DefaultVolatility = 0.2
	DefaultRiskFree   = 0.03
)

// Scenario is the external, defaultable description of a run. All
// defaulting and clamping happens here; the engine receives a fully
// populated Params value.
type Scenario struct {
	Model      string  `yaml:"model"`
	Asset      string  `yaml:"asset"`
	Initial    float64 `yaml:"initial"`
	Steps      int     `yaml:"steps"`
	Dt         float64 `yaml:"dt"`
	Start      string  `yaml:"start"` // YYYY-MM-DD, empty = today
	Drift      float64 `yaml:"drift"`
	Volatility float64 `yaml:"volatility"`
	Seed       int64   `yaml:"seed"`

	Reversion    ReversionConfig    `yaml:"reversion"`
	Jump         JumpConfig         `yaml:"jump"`
	Adjustments  AdjustConfig       `yaml:"adjustments"`
	Derivative   DerivativeConfig   `yaml:"derivative"`
	Correlations map[string]float64 `yaml:"correlations"`
}

type ReversionConfig struct {
	Speed  float64 `yaml:"speed"`
	Target float64 `yaml:"target"`
}

type JumpConfig struct {
	Intensity  float64 `yaml:"intensity"`
	Mean       float64 `yaml:"mean"`
	Volatility float64 `yaml:"volatility"`
}

type AdjustConfig struct {
	DividendYield     float64 `yaml:"dividend_yield"`
	DomesticRate      float64 `yaml:"domestic_rate"`
	ForeignRate       float64 `yaml:"foreign_rate"`
	StorageCost       float64 `yaml:"storage_cost"`
	ConvenienceYield  float64 `yaml:"convenience_yield"`
	SeasonalAmplitude float64 `yaml:"seasonal_amplitude"`
	CreditSpread      float64 `yaml:"credit_spread"`
	PERatio           float64 `yaml:"pe_ratio"`
	EarningsGrowth    float64 `yaml:"earnings_growth"`
}

type DerivativeConfig struct {
	Strike     float64 `yaml:"strike"`
	Call       bool    `yaml:"call"`
	ImpliedVol float64 `yaml:"implied_vol"`
	Expiry     float64 `yaml:"expiry"`
	RiskFree   float64 `yaml:"risk_free"`
}

func DefaultScenario() *Scenario {
	return &Scenario{
		Model:      string(process.GBM),
		Asset:      string(market.Equity),
		Initial:    DefaultInitial,
		Steps:      DefaultSteps,
		Dt:         DefaultDt,
		Drift:      DefaultDrift,
		Volatility: DefaultVolatility,
		Derivative: DerivativeConfig{
			Strike:     DefaultInitial,
			Call:       true,
			ImpliedVol: DefaultVolatility,
			Expiry:     1.0,
			RiskFree:   DefaultRiskFree,
		},
	}
}

func Load(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	sc := DefaultScenario()
	if err := yaml.Unmarshal(data, sc); err != nil {
		return nil, err
	}
	return sc, nil
}

func Save(path string, sc *Scenario) error {
	data, err := yaml.Marshal(sc)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Params builds the fully populated engine parameters. Out-of-range
// values that a boundary collaborator may hand over (a scenario
// translator, a form) are clamped here, not in the engine.
func (sc *Scenario) Params() (engine.Params, error) {
	model, err := process.Parse(sc.Model)
	if err != nil {
		return engine.Params{}, err
	}
	asset, err := market.Parse(sc.Asset)
	if err != nil {
		return engine.Params{}, err
	}

	start := time.Now().Truncate(24 * time.Hour)
	if sc.Start != "" {
		start, err = time.Parse("2006-01-02", sc.Start)
		if err != nil {
			return engine.Params{}, fmt.Errorf("invalid start date: %w", err)
		}
	}

	correlations := make(map[string]float64, len(sc.Correlations))
	for name, c := range sc.Correlations {
		correlations[name] = math.Max(-1, math.Min(1, c))
	}

	return engine.Params{
		Model:      model,
		Asset:      asset,
		Initial:    sc.Initial,
		Steps:      sc.Steps,
		Dt:         sc.Dt,
		Start:      start,
		Drift:      sc.Drift,
		Volatility: math.Max(0, sc.Volatility),
		Reversion: engine.ReversionParams{
			Speed:  sc.Reversion.Speed,
			Target: sc.Reversion.Target,
		},
		Jump: engine.JumpParams{
			Intensity:  math.Max(0, sc.Jump.Intensity),
			Mean:       sc.Jump.Mean,
			Volatility: math.Max(0, sc.Jump.Volatility),
		},
		Adjust: market.Adjustments{
			DividendYield:     sc.Adjustments.DividendYield,
			DomesticRate:      sc.Adjustments.DomesticRate,
			ForeignRate:       sc.Adjustments.ForeignRate,
			StorageCost:       sc.Adjustments.StorageCost,
			ConvenienceYield:  sc.Adjustments.ConvenienceYield,
			SeasonalAmplitude: sc.Adjustments.SeasonalAmplitude,
			CreditSpread:      sc.Adjustments.CreditSpread,
			PERatio:           sc.Adjustments.PERatio,
			EarningsGrowth:    sc.Adjustments.EarningsGrowth,
		},
		Derivative: engine.DerivativeTerms{
			Strike:     sc.Derivative.Strike,
			Call:       sc.Derivative.Call,
			ImpliedVol: sc.Derivative.ImpliedVol,
			Expiry:     sc.Derivative.Expiry,
			RiskFree:   sc.Derivative.RiskFree,
		},
		Correlations: correlations,
	}, nil
}
