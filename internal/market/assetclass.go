package market

import "fmt"

// AssetClass selects the domain-specific adjustments applied around the
// raw stochastic state: carry corrections to the drift, seasonal display
// shifts, derived fundamentals, and derivative pricing.
type AssetClass string

const (
	Equity            AssetClass = "equity"
	EquityIndex       AssetClass = "equity_index"
	Bond              AssetClass = "bond"
	InterestRate      AssetClass = "interest_rate"
	FX                AssetClass = "fx"
	Commodity         AssetClass = "commodity"
	Crypto            AssetClass = "crypto"
	Option            AssetClass = "option"
	Swaption          AssetClass = "swaption"
	Future            AssetClass = "future"
	CreditDefaultSwap AssetClass = "cds"
	Inflation         AssetClass = "inflation"
	GDPGrowth         AssetClass = "gdp_growth"
	Unemployment      AssetClass = "unemployment"
)

// All lists every asset class in a stable order.
func All() []AssetClass {
	return []AssetClass{
		Equity, EquityIndex, Bond, InterestRate, FX, Commodity, Crypto,
		Option, Swaption, Future, CreditDefaultSwap, Inflation, GDPGrowth,
		Unemployment,
	}
}

func Parse(s string) (AssetClass, error) {
	for _, c := range All() {
		if string(c) == s {
			return c, nil
		}
	}
	return "", fmt.Errorf("unknown asset class: %s", s)
}

// Adjustments hold the asset-class-specific inputs. Only the fields
// relevant to the selected class are read; the rest are ignored.
type Adjustments struct {
	DividendYield     float64
	DomesticRate      float64
	ForeignRate       float64
	StorageCost       float64
	ConvenienceYield  float64
	SeasonalAmplitude float64
	CreditSpread      float64
	PERatio           float64
	EarningsGrowth    float64
}

// EffectiveDrift applies the class-specific carry adjustment to the raw
// drift. Derived once per run.
func EffectiveDrift(class AssetClass, drift, riskFree float64, adj Adjustments) float64 {
	switch class {
	case Equity, EquityIndex:
		return drift - adj.DividendYield
	case FX:
		// covered interest rate parity
		return drift + adj.DomesticRate - adj.ForeignRate
	case Commodity:
		return drift + adj.StorageCost - adj.ConvenienceYield
	case Future:
		return riskFree - adj.DividendYield
	case Unemployment:
		return 0
	default:
		return drift
	}
}

// Seasonal reports whether the class carries a deterministic seasonal
// component in its displayed value. The shift never feeds back into the
// underlying state.
func Seasonal(class AssetClass) bool {
	switch class {
	case Commodity, Inflation, GDPGrowth:
		return true
	default:
		return false
	}
}

// Derivative reports whether the class is priced through the analytic
// pricer at every step.
func Derivative(class AssetClass) bool {
	return class == Option || class == Swaption
}

// EquityFundamentals derives the display-only fundamental fields for
// equity-like classes from the current price level.
func EquityFundamentals(price float64, adj Adjustments) (peRatio, forwardEarnings float64) {
	if adj.PERatio <= 0 {
		return 0, 0
	}
	earnings := price / adj.PERatio
	return adj.PERatio, earnings * (1 + adj.EarningsGrowth)
}
