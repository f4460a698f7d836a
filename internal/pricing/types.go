package pricing

// MinExpiry is the floor applied to time-to-expiry. At the floor a
// contract is treated as expired and priced at intrinsic value.
const MinExpiry = 1e-8

// Greeks are the five standard price sensitivities.
type Greeks struct {
	Delta float64 `json:"delta"`
	Gamma float64 `json:"gamma"`
	Vega  float64 `json:"vega"`
	Theta float64 `json:"theta"`
	Rho   float64 `json:"rho"`
}

// Quote is an analytic price together with its sensitivities.
type Quote struct {
	Price  float64 `json:"price"`
	Greeks Greeks  `json:"greeks"`
}
