package pricing

import "math"

// BlackScholes prices a European option and its Greeks in closed form.
// expiry is in years and is floored at MinExpiry; at the floor the
// quote degenerates to intrinsic value with a 0/1 delta and zero for
// the remaining sensitivities. Inputs are assumed pre-validated by the
// caller (positive strike, positive volatility away from the floor).
func BlackScholes(spot, strike, expiry, rate, vol float64, call bool) Quote {
	t := math.Max(expiry, MinExpiry)
	if t <= MinExpiry {
		return expiredOption(spot, strike, call)
	}

	sqrtT := math.Sqrt(t)
	d1 := (math.Log(spot/strike) + (rate+0.5*vol*vol)*t) / (vol * sqrtT)
	d2 := d1 - vol*sqrtT
	disc := math.Exp(-rate * t)

	q := Quote{}
	q.Greeks.Gamma = stdNormPDF(d1) / (spot * vol * sqrtT)
	q.Greeks.Vega = spot * stdNormPDF(d1) * sqrtT

	if call {
		q.Price = spot*stdNormCDF(d1) - strike*disc*stdNormCDF(d2)
		q.Greeks.Delta = stdNormCDF(d1)
		q.Greeks.Theta = -spot*stdNormPDF(d1)*vol/(2*sqrtT) - rate*strike*disc*stdNormCDF(d2)
		q.Greeks.Rho = strike * t * disc * stdNormCDF(d2)
	} else {
		q.Price = strike*disc*stdNormCDF(-d2) - spot*stdNormCDF(-d1)
		q.Greeks.Delta = stdNormCDF(d1) - 1
		q.Greeks.Theta = -spot*stdNormPDF(d1)*vol/(2*sqrtT) + rate*strike*disc*stdNormCDF(-d2)
		q.Greeks.Rho = -strike * t * disc * stdNormCDF(-d2)
	}
	return q
}

func expiredOption(spot, strike float64, call bool) Quote {
	q := Quote{}
	if call {
		q.Price = math.Max(0, spot-strike)
		if spot > strike {
			q.Greeks.Delta = 1
		}
	} else {
		q.Price = math.Max(0, strike-spot)
		if spot < strike {
			q.Greeks.Delta = -1
		}
	}
	return q
}
