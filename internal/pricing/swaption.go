package pricing

import "math"

// swapTenor is the fixed underlying swap length assumed by the
// simplified annuity factor.
const swapTenor = 5.0

// BlackSwaption prices a European payer or receiver swaption on a
// fixed 5-year underlying swap under Black's lognormal-forward model.
// Two deliberate simplifications: the annuity is the flat factor
// (1 - e^{-5r})/r rather than a full annuity curve, and rho is the
// duration proxy -expiry*price rather than a rate-sensitivity
// recomputation. forward and strike are swap rates.
func BlackSwaption(forward, strike, expiry, rate, vol float64, payer bool) Quote {
	t := math.Max(expiry, MinExpiry)
	if t <= MinExpiry {
		return expiredSwaption(forward, strike, payer)
	}

	annuity := swapTenor
	if math.Abs(rate) > 1e-12 {
		annuity = (1 - math.Exp(-swapTenor*rate)) / rate
	}

	sqrtT := math.Sqrt(t)
	d1 := (math.Log(forward/strike) + 0.5*vol*vol*t) / (vol * sqrtT)
	d2 := d1 - vol*sqrtT

	q := Quote{}
	q.Greeks.Gamma = annuity * stdNormPDF(d1) / (forward * vol * sqrtT)
	q.Greeks.Vega = annuity * forward * stdNormPDF(d1) * sqrtT
	q.Greeks.Theta = -annuity * forward * stdNormPDF(d1) * vol / (2 * sqrtT)

	if payer {
		q.Price = annuity * (forward*stdNormCDF(d1) - strike*stdNormCDF(d2))
		q.Greeks.Delta = annuity * stdNormCDF(d1)
	} else {
		q.Price = annuity * (strike*stdNormCDF(-d2) - forward*stdNormCDF(-d1))
		q.Greeks.Delta = annuity * (stdNormCDF(d1) - 1)
	}
	q.Greeks.Rho = -t * q.Price
	return q
}

func expiredSwaption(forward, strike float64, payer bool) Quote {
	q := Quote{}
	if payer {
		q.Price = math.Max(0, forward-strike)
		if forward > strike {
			q.Greeks.Delta = 1
		}
	} else {
		q.Price = math.Max(0, strike-forward)
		if forward < strike {
			q.Greeks.Delta = -1
		}
	}
	return q
}
