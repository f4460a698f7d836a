package market

import "math"

// The benchmark proxy is a generic market factor every run can be
// correlated against. Its parameters are fixed and deliberately not
// user-configurable.
const (
	BenchmarkDrift      = 0.06
	BenchmarkVolatility = 0.15
)

// BenchmarkStep advances the proxy one lognormal step using the market
// shock drawn for the current step.
func BenchmarkStep(level, shock, dt float64) float64 {
	drift := (BenchmarkDrift - 0.5*BenchmarkVolatility*BenchmarkVolatility) * dt
	return level * math.Exp(drift+BenchmarkVolatility*math.Sqrt(dt)*shock)
}
