package commission

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"broker-commission/internal/money"
	"broker-commission/internal/types"
)

var caseHeader = types.Row{types.ColBrokerName, types.ColCaseID, types.ColCaseValue}

func TestGenerate(t *testing.T) {
	cases := types.Table{
		caseHeader,
		{"David", "2", "£607947.84"},
		{"Dave", "7", "$532231.95"},
		{"Emma", "1", "£103133.02"},
		{"Mike", "4", "£50"},
	}

	tests := []struct {
		structure types.BonusStructure
		want      types.Table
	}{
		{
			structure: types.BonusNone,
			want: types.Table{
				{"BrokerName", "CaseId", "BaseCommission"},
				{"David", "2", "£125"},
				{"Dave", "7", "£125"},
				{"Emma", "1", "£125"},
				{"Mike", "4", "£125"},
			},
		},
		{
			structure: types.BonusStructure1,
			want: types.Table{
				{"BrokerName", "CaseId", "BaseCommission", "BonusCommission"},
				{"David", "2", "£125", "£500"},
				{"Dave", "7", "£125", "£320"},
				{"Emma", "1", "£125", "£0"},
				{"Mike", "4", "£125", "£0"},
			},
		},
		{
			structure: types.BonusStructure2,
			want: types.Table{
				{"BrokerName", "CaseId", "BaseCommission", "BonusCommission"},
				{"David", "2", "£125", "£570"},
				{"Dave", "7", "£125", "£350"},
				{"Emma", "1", "£125", "£0"},
				{"Mike", "4", "£125", "£0"},
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.structure.String(), func(t *testing.T) {
			got, err := Generate(cases, tt.structure)
			require.NoError(t, err)
			require.Equal(t, tt.want, got)
		})
	}
}

func TestGenerateLeavesInputUntouched(t *testing.T) {
	cases := types.Table{caseHeader, {"Stacy", "3379", "$474584.18"}}
	_, err := Generate(cases, types.BonusStructure2)
	require.NoError(t, err)
	require.Equal(t, "$474584.18", cases[1][2])
}

func TestGenerateHeaderOnly(t *testing.T) {
	got, err := Generate(types.Table{caseHeader}, types.BonusStructure1)
	require.NoError(t, err)
	require.Equal(t, types.Table{{"BrokerName", "CaseId", "BaseCommission", "BonusCommission"}}, got)
}

func TestGenerateUnknownCurrencyEarnsBaseOnly(t *testing.T) {
	cases := types.Table{caseHeader, {"Ella", "3", "€638271.61"}}
	got, err := Generate(cases, types.BonusStructure2)
	require.NoError(t, err)
	require.Equal(t, types.Row{"Ella", "3", "£125", "£0"}, got[1])
}

func TestGenerateMissingColumn(t *testing.T) {
	_, err := Generate(types.Table{{"BrokerName", "CaseId"}, {"Emma", "1"}}, types.BonusNone)
	require.Error(t, err)
	require.True(t, errors.Is(err, types.ErrFormat))
}

func TestGenerateMalformedValue(t *testing.T) {
	_, err := Generate(types.Table{caseHeader, {"Emma", "1", "£lots"}}, types.BonusStructure1)
	require.Error(t, err)

	var fe *types.FormatError
	require.True(t, errors.As(err, &fe))
	require.Equal(t, 2, fe.Line)
	require.True(t, errors.Is(err, money.ErrInvalidAmount))
}

func TestGenerateWithCustomScheme(t *testing.T) {
	scheme := Scheme{
		Base:      200,
		BonusUnit: 5,
		Tiers:     []Tier{NewTier(1000, 100), NewTier(5000, 1000)},
	}
	calc := New(scheme, money.NewRates(map[string]float64{"$": 0.5}), "£")

	got, err := calc.Generate(context.Background(), types.Table{caseHeader, {"Ann", "9", "$12000"}}, types.BonusStructure2)
	require.NoError(t, err)
	// $12000 -> £6000: tier one pays 50*5, tier two pays 1*5
	require.Equal(t, types.Row{"Ann", "9", "£200", "£255"}, got[1])
}

func TestGenerateHugeCaseValue(t *testing.T) {
	got, err := Generate(types.Table{caseHeader, {"Ann", "1", "£1000000000000000000000000"}}, types.BonusStructure1)
	require.NoError(t, err)
	require.Equal(t, types.Row{"Ann", "1", "£125", "£999999999999999999900"}, got[1])
}
