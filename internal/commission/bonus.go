package commission

import (
	"math"

	"github.com/shopspring/decimal"

	"broker-commission/internal/money"
	"broker-commission/internal/types"
)

var maxBonus = decimal.NewFromInt(math.MaxInt64)

// CalculateBonus parses a prefixed case value and returns the bonus for one
// tier using the default bonus unit. Values at or below threshold earn nothing;
// partial progress towards the next target is not paid. A bonus too large for
// int64 is reported as an error.
func CalculateBonus(caseValue string, threshold, target int64) (int64, error) {
	value, err := money.Parse(caseValue)
	if err != nil {
		return 0, err
	}
	tier := Tier{Threshold: decimal.NewFromInt(threshold), Target: decimal.NewFromInt(target)}
	bonus := tierBonus(value, tier, DefaultBonusUnit)
	if bonus.GreaterThan(maxBonus) {
		return 0, &types.FormatError{Field: types.ColCaseValue, Reason: "bonus for " + caseValue + " exceeds int64 range"}
	}
	return bonus.IntPart(), nil
}

func tierBonus(value money.Money, tier Tier, unit int64) decimal.Decimal {
	if !value.GreaterThan(tier.Threshold) || !tier.Target.IsPositive() {
		return decimal.Zero
	}
	steps := value.Amount.Sub(tier.Threshold).Div(tier.Target).Floor()
	return steps.Mul(decimal.NewFromInt(unit))
}

// Bonus sums the tier bonuses for value across tiers. The sum stays a decimal
// so arbitrarily large case values cannot wrap.
func (s Scheme) Bonus(value money.Money, tiers []Tier) decimal.Decimal {
	total := decimal.Zero
	for _, tier := range tiers {
		total = total.Add(tierBonus(value, tier, s.BonusUnit))
	}
	return total
}
