package commission

import (
	"context"
	"fmt"

	"broker-commission/internal/csvtable"
	"broker-commission/internal/money"
	"broker-commission/internal/types"
)

// Summarize groups commission rows by broker, in first-seen order, and sums
// base plus bonus. A table without a BonusCommission column sums base only.
// Totals are not padded to a fixed number of decimals. Every amount must carry
// the home symbol.
func (c *calculator) Summarize(_ context.Context, commissions types.Table) (types.Table, error) {
	if err := csvtable.Require(commissions, types.ColBrokerName, types.ColBaseCommission); err != nil {
		return nil, err
	}

	var records []types.CommissionRecord
	if err := csvtable.Unmarshal(commissions, &records); err != nil {
		return nil, fmt.Errorf("read commissions: %w", err)
	}

	totals := map[string]money.Money{}
	var order []string
	for i, rec := range records {
		if err := c.checkHome(i+2, types.ColBaseCommission, rec.BaseCommission); err != nil {
			return nil, err
		}
		if err := c.checkHome(i+2, types.ColBonusCommission, rec.BonusCommission); err != nil {
			return nil, err
		}
		total, seen := totals[rec.BrokerName]
		if !seen {
			total = money.FromInt(c.home, 0)
			order = append(order, rec.BrokerName)
		}
		totals[rec.BrokerName] = total.Add(rec.BaseCommission).Add(rec.BonusCommission)
	}

	out := make(types.Table, 0, len(order)+1)
	out = append(out, types.Row{types.ColBrokerName, types.ColTotalCommission})
	for _, name := range order {
		out = append(out, types.Row{name, totals[name].String()})
	}
	return out, nil
}

// checkHome rejects amounts in another currency. Money.Add keeps the
// receiver's symbol, so a foreign amount would otherwise be summed as home.
// An absent bonus column binds to a zero value with no symbol.
func (c *calculator) checkHome(line int, column string, m money.Money) error {
	if m.Symbol == "" || m.IsHome(c.home) {
		return nil
	}
	return &types.FormatError{
		Line:   line,
		Field:  column,
		Reason: fmt.Sprintf("amount %s is not in home currency %s", m, c.home),
	}
}

// Summarize runs the default calculator's summary.
func Summarize(commissions types.Table) (types.Table, error) {
	return Default().Summarize(context.Background(), commissions)
}
