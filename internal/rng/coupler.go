package rng

import "math"

// Couple combines a market shock and an idiosyncratic shock into a
// single standard normal with correlation rho to the market shock
// (one-factor Gaussian copula). rho must already lie in [-1, 1].
func Couple(rho, market, idio float64) float64 {
	return rho*market + math.Sqrt(1-rho*rho)*idio
}

// AggregateCorrelation reduces named factor coefficients to one
// aggregate coefficient, clamped to [-1, 1]. It is derived once per
// run, not per step.
func AggregateCorrelation(factors map[string]float64) float64 {
	sum := 0.0
	for _, c := range factors {
		sum += c
	}
	return math.Max(-1, math.Min(1, sum))
}
