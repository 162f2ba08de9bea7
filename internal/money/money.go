// Package money holds currency-tagged decimal amounts and the symbol-prefixed
// text form they take in commission files ("£103133.02", "$474584.18").
package money

import (
	"errors"
	"fmt"
	"unicode/utf8"

	"github.com/shopspring/decimal"
)

// ErrInvalidAmount is returned when a prefixed value cannot be parsed.
var ErrInvalidAmount = errors.New("invalid money value")

const nanBody = "NaN"

// Money is an amount tagged with a single currency symbol. A NaN value is the
// result of converting from a currency with no known rate; it survives
// addition and never compares above a threshold.
type Money struct {
	Symbol string
	Amount decimal.Decimal
	NaN    bool
}

func New(symbol string, amount decimal.Decimal) Money {
	return Money{Symbol: symbol, Amount: amount}
}

func FromInt(symbol string, amount int64) Money {
	return Money{Symbol: symbol, Amount: decimal.NewFromInt(amount)}
}

func NaN(symbol string) Money {
	return Money{Symbol: symbol, NaN: true}
}

// Parse splits a value into its leading symbol and decimal body.
func Parse(s string) (Money, error) {
	if s == "" {
		return Money{}, fmt.Errorf("%w: empty value", ErrInvalidAmount)
	}
	symbol := SymbolOf(s)
	if symbol == "" {
		return Money{}, fmt.Errorf("%w: %q does not start with a currency symbol", ErrInvalidAmount, s)
	}
	body := s[len(symbol):]
	if body == "" {
		return Money{}, fmt.Errorf("%w: %q has no amount", ErrInvalidAmount, s)
	}
	if body == nanBody {
		return NaN(symbol), nil
	}
	amount, err := decimal.NewFromString(body)
	if err != nil {
		return Money{}, fmt.Errorf("%w: %q: %v", ErrInvalidAmount, s, err)
	}
	if amount.IsNegative() {
		return Money{}, fmt.Errorf("%w: %q is negative", ErrInvalidAmount, s)
	}
	return Money{Symbol: symbol, Amount: amount}, nil
}

// SymbolOf returns the leading symbol of a prefixed value, or "" when there is none.
func SymbolOf(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError && size <= 1 {
		return ""
	}
	return s[:size]
}

// String renders the symbol followed by the amount with trailing zeros trimmed.
func (m Money) String() string {
	if m.NaN {
		return m.Symbol + nanBody
	}
	return m.Symbol + m.Amount.String()
}

// Fixed renders the amount with exactly places decimals.
func (m Money) Fixed(places int32) string {
	if m.NaN {
		return m.Symbol + nanBody
	}
	return m.Symbol + m.Amount.StringFixed(places)
}

func (m Money) IsHome(home string) bool {
	return m.Symbol == home
}

// Add sums two amounts. The result keeps the receiver's symbol and o's symbol
// is not checked; callers mixing currencies must convert first.
func (m Money) Add(o Money) Money {
	if m.NaN || o.NaN {
		return NaN(m.Symbol)
	}
	return Money{Symbol: m.Symbol, Amount: m.Amount.Add(o.Amount)}
}

// Convert multiplies by rate, rounds to 2 places and re-tags with home.
func (m Money) Convert(rate decimal.Decimal, home string) Money {
	if m.NaN {
		return NaN(home)
	}
	return Money{Symbol: home, Amount: m.Amount.Mul(rate).Round(2)}
}

// GreaterThan reports whether m exceeds v. NaN is never greater.
func (m Money) GreaterThan(v decimal.Decimal) bool {
	return !m.NaN && m.Amount.GreaterThan(v)
}

// UnmarshalCSV lets gocsv bind money columns directly.
func (m *Money) UnmarshalCSV(s string) error {
	v, err := Parse(s)
	if err != nil {
		return err
	}
	*m = v
	return nil
}

func (m Money) MarshalCSV() (string, error) {
	return m.String(), nil
}
