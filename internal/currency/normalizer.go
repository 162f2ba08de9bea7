// Package currency rewrites foreign-currency case values into the home currency.
package currency

import (
	"context"
	"strings"

	"broker-commission/internal/csvtable"
	"broker-commission/internal/interfaces"
	"broker-commission/internal/money"
	"broker-commission/internal/types"
)

// DefaultHome is the symbol every output value is expressed in.
const DefaultHome = "£"

type Normalizer struct {
	rates  money.Rates
	home   string
	column string
}

var _ interfaces.Normalizer = (*Normalizer)(nil)

func NewNormalizer(rates money.Rates, home string) *Normalizer {
	if home == "" {
		home = DefaultHome
	}
	return &Normalizer{rates: rates, home: home, column: types.ColCaseValue}
}

func (n *Normalizer) Normalize(_ context.Context, cases types.Table) (types.Table, error) {
	return NormalizeColumn(cases, n.column, n.rates, n.home)
}

// Normalize converts the CaseValue column of cases into the home currency.
func Normalize(cases types.Table, rates money.Rates, home string) (types.Table, error) {
	return NormalizeColumn(cases, types.ColCaseValue, rates, home)
}

// NormalizeColumn returns a new table in which every value of column carries
// the home symbol. Values already in the home currency are copied verbatim.
// A symbol missing from rates yields home+"NaN" rather than an error.
func NormalizeColumn(table types.Table, column string, rates money.Rates, home string) (types.Table, error) {
	if err := csvtable.Require(table, column); err != nil {
		return nil, err
	}
	idx := table.ColumnIndex(column)

	out := table.Clone()
	for i, row := range out[1:] {
		value := row[idx]
		if strings.HasPrefix(value, home) {
			continue
		}
		rate, ok := rates.Lookup(money.SymbolOf(value))
		if !ok && value != "" {
			row[idx] = money.NaN(home).String()
			continue
		}
		m, err := money.Parse(value)
		if err != nil {
			return nil, &types.FormatError{Line: i + 2, Column: idx + 1, Field: column, Err: err}
		}
		row[idx] = m.Convert(rate, home).Fixed(2)
	}
	return out, nil
}

// CountNaN reports how many values of column are NaN after normalization.
func CountNaN(table types.Table, column, home string) int {
	idx := table.ColumnIndex(column)
	if idx < 0 {
		return 0
	}
	n := 0
	for _, row := range table.Rows() {
		if row[idx] == money.NaN(home).String() {
			n++
		}
	}
	return n
}

// CountUnconvertible reports how many values of column would normalize to NaN
// under rates: a foreign symbol without a rate, or an explicit NaN amount.
func CountUnconvertible(table types.Table, column string, rates money.Rates, home string) int {
	idx := table.ColumnIndex(column)
	if idx < 0 {
		return 0
	}
	n := 0
	for _, row := range table.Rows() {
		value := row[idx]
		if value == "" {
			continue
		}
		sym := money.SymbolOf(value)
		if _, ok := rates.Lookup(sym); !ok && sym != home {
			n++
			continue
		}
		if m, err := money.Parse(value); err == nil && m.NaN {
			n++
		}
	}
	return n
}
