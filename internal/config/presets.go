package config

import "sort"

// Presets are named starting scenarios per model, in the spirit of
// chart templates: pick one, then override individual fields.
var Presets = map[string]map[string]*Scenario{
	"gbm": {
		"bull": {
			Model: "gbm", Asset: "equity", Initial: 100, Steps: 252, Dt: 1.0 / 252,
			Drift: 0.12, Volatility: 0.18,
			Adjustments:  AdjustConfig{DividendYield: 0.015, PERatio: 22, EarningsGrowth: 0.08},
			Correlations: map[string]float64{"broad_market": 0.7},
		},
		"calm": {
			Model: "gbm", Asset: "equity_index", Initial: 4500, Steps: 252, Dt: 1.0 / 252,
			Drift: 0.06, Volatility: 0.10,
			Correlations: map[string]float64{"broad_market": 0.95},
		},
		"fx_carry": {
			Model: "gbm", Asset: "fx", Initial: 1.08, Steps: 252, Dt: 1.0 / 252,
			Drift: 0, Volatility: 0.08,
			Adjustments: AdjustConfig{DomesticRate: 0.05, ForeignRate: 0.02},
		},
	},
	"jump_diffusion": {
		"crash": {
			Model: "jump_diffusion", Asset: "equity", Initial: 100, Steps: 252, Dt: 1.0 / 252,
			Drift: 0.08, Volatility: 0.2,
			Jump:         JumpConfig{Intensity: 1.5, Mean: -0.08, Volatility: 0.1},
			Correlations: map[string]float64{"broad_market": 0.6},
		},
		"crypto": {
			Model: "jump_diffusion", Asset: "crypto", Initial: 60000, Steps: 365, Dt: 1.0 / 365,
			Drift: 0.2, Volatility: 0.6,
			Jump: JumpConfig{Intensity: 4, Mean: 0, Volatility: 0.15},
		},
	},
	"mean_reversion": {
		"rates": {
			Model: "mean_reversion", Asset: "interest_rate", Initial: 0.04, Steps: 504, Dt: 1.0 / 252,
			Volatility: 0.01,
			Reversion:  ReversionConfig{Speed: 1.2, Target: 0.035},
		},
		"spreads": {
			Model: "mean_reversion", Asset: "cds", Initial: 0.015, Steps: 252, Dt: 1.0 / 252,
			Volatility:  0.004,
			Reversion:   ReversionConfig{Speed: 2.0, Target: 0.012},
			Adjustments: AdjustConfig{CreditSpread: 0.012},
		},
	},
	"sqrt_mean_reversion": {
		"rates": {
			Model: "sqrt_mean_reversion", Asset: "interest_rate", Initial: 0.04, Steps: 504, Dt: 1.0 / 252,
			Volatility: 0.05,
			Reversion:  ReversionConfig{Speed: 1.5, Target: 0.045},
		},
	},
	"equilibrium": {
		"inflation": {
			Model: "equilibrium", Asset: "inflation", Initial: 0.032, Steps: 504, Dt: 1.0 / 252,
			Drift: -0.002, Volatility: 0.004,
			Reversion:   ReversionConfig{Speed: 0.8, Target: 0.02},
			Adjustments: AdjustConfig{SeasonalAmplitude: 0.003},
		},
		"gdp": {
			Model: "equilibrium", Asset: "gdp_growth", Initial: 0.021, Steps: 252, Dt: 1.0 / 252,
			Volatility:  0.006,
			Reversion:   ReversionConfig{Speed: 0.5, Target: 0.025},
			Adjustments: AdjustConfig{SeasonalAmplitude: 0.004},
		},
	},
	"structural": {
		"unemployment": {
			Model: "structural", Asset: "unemployment", Initial: 0.042, Steps: 504, Dt: 1.0 / 252,
			Volatility: 0.003,
			Reversion:  ReversionConfig{Speed: 0.6, Target: 0.045},
		},
	},
}

func GetPreset(model, name string) *Scenario {
	group, ok := Presets[model]
	if !ok {
		return nil
	}
	return group[name]
}

func ListPresets(model string) []string {
	group, ok := Presets[model]
	if !ok {
		return nil
	}
	names := make([]string, 0, len(group))
	for name := range group {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
