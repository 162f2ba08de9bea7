package commission

import (
	"broker-commission/internal/currency"
	"broker-commission/internal/interfaces"
	"broker-commission/internal/money"
)

func New(scheme Scheme, rates money.Rates, home string) interfaces.Calculator {
	if home == "" {
		home = currency.DefaultHome
	}
	return &calculator{
		scheme:     scheme,
		normalizer: currency.NewNormalizer(rates, home),
		home:       home,
	}
}

// Default uses the built-in scheme and currency table.
func Default() interfaces.Calculator {
	return New(DefaultScheme(), currency.DefaultRates(), currency.DefaultHome)
}
