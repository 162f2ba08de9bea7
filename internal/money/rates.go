package money

import (
	"sort"

	"github.com/shopspring/decimal"
)

// Rates converts a foreign currency symbol into the home currency. The table
// is copied on construction and never mutated afterwards.
type Rates struct {
	bySymbol map[string]decimal.Decimal
}

func NewRates(rates map[string]float64) Rates {
	m := make(map[string]decimal.Decimal, len(rates))
	for sym, r := range rates {
		m[sym] = decimal.NewFromFloat(r)
	}
	return Rates{bySymbol: m}
}

func (r Rates) Lookup(symbol string) (decimal.Decimal, bool) {
	rate, ok := r.bySymbol[symbol]
	return rate, ok
}

func (r Rates) Len() int { return len(r.bySymbol) }

// Symbols returns the known symbols in sorted order.
func (r Rates) Symbols() []string {
	out := make([]string, 0, len(r.bySymbol))
	for sym := range r.bySymbol {
		out = append(out, sym)
	}
	sort.Strings(out)
	return out
}
