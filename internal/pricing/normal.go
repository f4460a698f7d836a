package pricing

import "math"

// stdNormCDF is the Abramowitz-Stegun 26.2.17 rational polynomial
// approximation of the standard normal cumulative distribution,
// accurate to about 7.5e-8.
func stdNormCDF(x float64) float64 {
	if x < 0 {
		return 1 - stdNormCDF(-x)
	}
	k := 1 / (1 + 0.2316419*x)
	poly := k * (0.319381530 + k*(-0.356563782+k*(1.781477937+k*(-1.821255978+k*1.330274429))))
	return 1 - stdNormPDF(x)*poly
}

func stdNormPDF(x float64) float64 {
	return math.Exp(-0.5*x*x) / math.Sqrt(2*math.Pi)
}
