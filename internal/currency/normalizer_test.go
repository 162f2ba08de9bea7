package currency

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"broker-commission/internal/money"
	"broker-commission/internal/types"
)

var header = types.Row{types.ColBrokerName, types.ColCaseID, types.ColCaseValue}

func TestNormalize(t *testing.T) {
	cases := types.Table{
		header,
		{"Emma", "1", "£103133.02"},
		{"Stacy", "3379", "$474584.18"},
		{"Tom", "5", "$100"},
	}
	got, err := Normalize(cases, DefaultRates(), DefaultHome)
	require.NoError(t, err)
	require.Equal(t, types.Table{
		header,
		{"Emma", "1", "£103133.02"},
		{"Stacy", "3379", "£379667.34"},
		{"Tom", "5", "£80.00"},
	}, got)

	// input is not modified
	require.Equal(t, "$474584.18", cases[2][2])
}

func TestNormalizeIsIdempotent(t *testing.T) {
	cases := types.Table{
		header,
		{"Stacy", "3379", "$474584.18"},
		{"Dave", "7", "$532231.95"},
		{"Ella", "3", "€10"},
	}
	once, err := Normalize(cases, DefaultRates(), DefaultHome)
	require.NoError(t, err)
	twice, err := Normalize(once, DefaultRates(), DefaultHome)
	require.NoError(t, err)
	require.Equal(t, once, twice)
}

func TestNormalizeUnknownSymbol(t *testing.T) {
	cases := types.Table{header, {"Ella", "3", "€638271.61"}, {"Mike", "4", "¥oops"}}
	got, err := Normalize(cases, DefaultRates(), DefaultHome)
	require.NoError(t, err)
	require.Equal(t, "£NaN", got[1][2])
	require.Equal(t, "£NaN", got[2][2])
	require.Equal(t, 2, CountNaN(got, types.ColCaseValue, DefaultHome))
	require.Equal(t, 2, CountUnconvertible(cases, types.ColCaseValue, DefaultRates(), DefaultHome))
}

func TestNormalizeKeepsHeaderAndOtherColumns(t *testing.T) {
	cases := types.Table{
		{types.ColCaseValue, "Note", types.ColBrokerName},
		{"$10", "$ is fine here", "Emma"},
	}
	got, err := Normalize(cases, DefaultRates(), DefaultHome)
	require.NoError(t, err)
	require.Equal(t, cases[0], got[0])
	require.Equal(t, types.Row{"£8.00", "$ is fine here", "Emma"}, got[1])
}

func TestNormalizeMalformedKnownSymbol(t *testing.T) {
	_, err := Normalize(types.Table{header, {"Emma", "1", "£1"}, {"Tom", "2", "$1,000"}}, DefaultRates(), DefaultHome)
	require.Error(t, err)

	var fe *types.FormatError
	require.True(t, errors.As(err, &fe))
	require.Equal(t, 3, fe.Line)
	require.Equal(t, 3, fe.Column)
	require.Equal(t, types.ColCaseValue, fe.Field)
	require.True(t, errors.Is(err, money.ErrInvalidAmount))
}

func TestNormalizeMissingColumn(t *testing.T) {
	_, err := Normalize(types.Table{{"BrokerName"}, {"Emma"}}, DefaultRates(), DefaultHome)
	require.True(t, errors.Is(err, types.ErrFormat))
}

func TestNormalizerCustomHome(t *testing.T) {
	n := NewNormalizer(money.NewRates(map[string]float64{"£": 1.25}), "$")
	got, err := n.Normalize(context.Background(), types.Table{header, {"Emma", "1", "£80"}, {"Tom", "2", "$5"}})
	require.NoError(t, err)
	require.Equal(t, "$100.00", got[1][2])
	require.Equal(t, "$5", got[2][2])
}

func TestNormalizeRejectsPaddedAmount(t *testing.T) {
	_, err := Normalize(types.Table{header, {"Tom", "2", "$ 100"}}, DefaultRates(), DefaultHome)
	require.ErrorIs(t, err, types.ErrFormat)
	require.ErrorIs(t, err, money.ErrInvalidAmount)
}
