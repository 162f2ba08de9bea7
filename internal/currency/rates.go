package currency

import "broker-commission/internal/money"

// DefaultRates converts US dollars into pounds.
func DefaultRates() money.Rates {
	return money.NewRates(map[string]float64{"$": 0.8})
}
