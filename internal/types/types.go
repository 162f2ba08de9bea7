package types

import (
	"fmt"
	"strings"

	"broker-commission/internal/money"
)

// Column names used by the case, commission and summary files.
const (
	ColBrokerName      = "BrokerName"
	ColCaseID          = "CaseId"
	ColCaseValue       = "CaseValue"
	ColBaseCommission  = "BaseCommission"
	ColBonusCommission = "BonusCommission"
	ColTotalCommission = "TotalCommission"
)

// Row is one line of a table, positionally aligned to the header.
type Row []string

// Table is a header row followed by data rows. Row 0 is always the header.
type Table []Row

func (t Table) Header() Row {
	if len(t) == 0 {
		return nil
	}
	return t[0]
}

// Rows returns the data rows (everything after the header).
func (t Table) Rows() []Row {
	if len(t) < 2 {
		return nil
	}
	return t[1:]
}

// ColumnIndex returns the position of name in the header, or -1.
func (t Table) ColumnIndex(name string) int {
	for i, col := range t.Header() {
		if col == name {
			return i
		}
	}
	return -1
}

// Clone returns a deep copy so that stages never share backing arrays.
func (t Table) Clone() Table {
	if t == nil {
		return nil
	}
	out := make(Table, len(t))
	for i, row := range t {
		out[i] = append(Row(nil), row...)
	}
	return out
}

type BonusStructure int

const (
	BonusNone BonusStructure = iota
	BonusStructure1
	BonusStructure2
)

// Tiers is how many bonus tiers the structure accumulates.
func (b BonusStructure) Tiers() int {
	return int(b)
}

func (b BonusStructure) String() string {
	switch b {
	case BonusNone:
		return "none"
	case BonusStructure1:
		return "structure1"
	case BonusStructure2:
		return "structure2"
	default:
		return fmt.Sprintf("structure(%d)", int(b))
	}
}

// ParseBonusStructure accepts the names produced by String plus a few aliases.
func ParseBonusStructure(s string) (BonusStructure, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "none", "basic", "0":
		return BonusNone, nil
	case "structure1", "bonus1", "1":
		return BonusStructure1, nil
	case "structure2", "bonus2", "2":
		return BonusStructure2, nil
	}
	return BonusNone, fmt.Errorf("unknown bonus structure %q", s)
}

// CaseRecord is one brokered case as read from the cases file.
type CaseRecord struct {
	BrokerName string      `csv:"BrokerName"`
	CaseID     string      `csv:"CaseId"`
	CaseValue  money.Money `csv:"CaseValue"`
}

// CommissionRecord is one line of a generated commission file. BonusCommission
// is zero-valued when the file was produced without a bonus structure.
type CommissionRecord struct {
	BrokerName      string      `csv:"BrokerName"`
	CaseID          string      `csv:"CaseId"`
	BaseCommission  money.Money `csv:"BaseCommission"`
	BonusCommission money.Money `csv:"BonusCommission"`
}
