package commission

import (
	"context"
	"fmt"

	"broker-commission/internal/csvtable"
	"broker-commission/internal/interfaces"
	"broker-commission/internal/logger"
	"broker-commission/internal/money"
	"broker-commission/internal/types"
)

type calculator struct {
	scheme     Scheme
	normalizer interfaces.Normalizer
	home       string
}

// Generate normalizes case values into the home currency and emits one
// commission row per case. With BonusNone the BonusCommission column is left
// out entirely.
func (c *calculator) Generate(ctx context.Context, cases types.Table, structure types.BonusStructure) (types.Table, error) {
	tiers, err := c.scheme.tiersFor(structure)
	if err != nil {
		return nil, err
	}
	if err := csvtable.Require(cases, types.ColBrokerName, types.ColCaseID, types.ColCaseValue); err != nil {
		return nil, err
	}

	normalized, err := c.normalizer.Normalize(ctx, cases)
	if err != nil {
		return nil, fmt.Errorf("normalize case values: %w", err)
	}

	var records []types.CaseRecord
	if err := csvtable.Unmarshal(normalized, &records); err != nil {
		return nil, fmt.Errorf("read cases: %w", err)
	}

	withBonus := structure != types.BonusNone
	header := types.Row{types.ColBrokerName, types.ColCaseID, types.ColBaseCommission}
	if withBonus {
		header = append(header, types.ColBonusCommission)
	}

	base := money.FromInt(c.home, c.scheme.Base)
	out := make(types.Table, 0, len(records)+1)
	out = append(out, header)
	for _, rec := range records {
		row := types.Row{rec.BrokerName, rec.CaseID, base.String()}
		if withBonus {
			bonus := money.New(c.home, c.scheme.Bonus(rec.CaseValue, tiers))
			row = append(row, bonus.String())
			logger.Payout(ctx, rec.BrokerName, rec.CaseID, base.String(), bonus.String())
		} else {
			logger.Payout(ctx, rec.BrokerName, rec.CaseID, base.String(), "")
		}
		out = append(out, row)
	}
	return out, nil
}

// Generate runs the default scheme, rates and home currency.
func Generate(cases types.Table, structure types.BonusStructure) (types.Table, error) {
	return Default().Generate(context.Background(), cases, structure)
}
