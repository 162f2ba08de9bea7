package money

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	tests := []struct {
		in     string
		symbol string
		amount string
		nan    bool
	}{
		{"£103133.02", "£", "103133.02", false},
		{"$474584.18", "$", "474584.18", false},
		{"£125", "£", "125", false},
		{"£0", "£", "0", false},
		{"£NaN", "£", "0", true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			m, err := Parse(tt.in)
			require.NoError(t, err)
			require.Equal(t, tt.symbol, m.Symbol)
			require.Equal(t, tt.nan, m.NaN)
			if !tt.nan {
				require.True(t, m.Amount.Equal(decimal.RequireFromString(tt.amount)), "amount %s", m.Amount)
			}
		})
	}
}

func TestParseRejectsMalformed(t *testing.T) {
	for _, in := range []string{"", "£", "£abc", "£-5", "£1,000", "£ 100", "£100 ", "£\t5"} {
		_, err := Parse(in)
		require.Error(t, err, in)
		require.True(t, errors.Is(err, ErrInvalidAmount), in)
	}
}

func TestStringTrimsAndFixedPads(t *testing.T) {
	m, err := Parse("£100.00")
	require.NoError(t, err)
	require.Equal(t, "£100", m.String())
	require.Equal(t, "£100.00", m.Fixed(2))

	require.Equal(t, "£NaN", NaN("£").String())
	require.Equal(t, "£NaN", NaN("£").Fixed(2))
}

func TestConvert(t *testing.T) {
	m, err := Parse("$474584.18")
	require.NoError(t, err)

	got := m.Convert(decimal.NewFromFloat(0.8), "£")
	require.Equal(t, "£379667.34", got.Fixed(2))

	whole, err := Parse("$100")
	require.NoError(t, err)
	require.Equal(t, "£80.00", whole.Convert(decimal.NewFromFloat(0.8), "£").Fixed(2))
}

func TestAddPropagatesNaN(t *testing.T) {
	a := FromInt("£", 125)
	b := FromInt("£", 60)
	require.Equal(t, "£185", a.Add(b).String())
	require.True(t, a.Add(NaN("£")).NaN)
	require.True(t, NaN("£").Add(a).NaN)
}

func TestGreaterThan(t *testing.T) {
	require.True(t, FromInt("£", 10).GreaterThan(decimal.NewFromInt(9)))
	require.False(t, FromInt("£", 9).GreaterThan(decimal.NewFromInt(9)))
	require.False(t, NaN("£").GreaterThan(decimal.Zero))
}

func TestRatesAreCopied(t *testing.T) {
	src := map[string]float64{"$": 0.8}
	rates := NewRates(src)
	src["$"] = 2
	src["€"] = 0.9

	rate, ok := rates.Lookup("$")
	require.True(t, ok)
	require.Equal(t, "0.8", rate.String())
	_, ok = rates.Lookup("€")
	require.False(t, ok)
	require.Equal(t, []string{"$"}, rates.Symbols())
}
