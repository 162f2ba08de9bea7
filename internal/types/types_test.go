package types

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseBonusStructure(t *testing.T) {
	tests := map[string]BonusStructure{
		"":           BonusNone,
		"none":       BonusNone,
		"basic":      BonusNone,
		"structure1": BonusStructure1,
		"bonus1":     BonusStructure1,
		"2":          BonusStructure2,
		"Structure2": BonusStructure2,
	}
	for in, want := range tests {
		got, err := ParseBonusStructure(in)
		require.NoError(t, err, in)
		require.Equal(t, want, got, in)
	}

	_, err := ParseBonusStructure("structure3")
	require.Error(t, err)
}

func TestBonusStructureTiers(t *testing.T) {
	require.Equal(t, 0, BonusNone.Tiers())
	require.Equal(t, 1, BonusStructure1.Tiers())
	require.Equal(t, 2, BonusStructure2.Tiers())
	require.Equal(t, "structure2", BonusStructure2.String())
}

func TestTableHelpers(t *testing.T) {
	table := Table{{"BrokerName", "CaseId"}, {"Emma", "1"}}
	require.Equal(t, 1, table.ColumnIndex("CaseId"))
	require.Equal(t, -1, table.ColumnIndex("CaseValue"))
	require.Equal(t, []Row{{"Emma", "1"}}, table.Rows())
	require.Nil(t, Table{{"BrokerName"}}.Rows())

	clone := table.Clone()
	clone[1][0] = "Mike"
	require.Equal(t, "Emma", table[1][0])
}

func TestFormatError(t *testing.T) {
	inner := errors.New("bad amount")
	err := fmt.Errorf("read cases: %w", &FormatError{Line: 3, Column: 2, Field: "CaseValue", Err: inner})

	require.ErrorIs(t, err, ErrFormat)
	require.ErrorIs(t, err, inner)

	var fe *FormatError
	require.ErrorAs(t, err, &fe)
	require.Equal(t, 3, fe.Line)
	require.Contains(t, err.Error(), "line 3")
}
