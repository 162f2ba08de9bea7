package commission

import (
	"fmt"

	"github.com/shopspring/decimal"

	"broker-commission/internal/types"
)

// Default amounts, all in home-currency units.
const (
	DefaultBaseCommission = 125
	DefaultBonusUnit      = 10

	Threshold1 = 100000
	Target1    = 10000
	Threshold2 = 250000
	Target2    = 50000
)

// Tier pays one bonus unit for every whole Target by which a case value
// exceeds Threshold.
type Tier struct {
	Threshold decimal.Decimal
	Target    decimal.Decimal
}

func NewTier(threshold, target float64) Tier {
	return Tier{Threshold: decimal.NewFromFloat(threshold), Target: decimal.NewFromFloat(target)}
}

// Scheme is the full payout plan: a flat base per case plus cumulative bonus
// tiers. Structure N pays the sum of the first N tiers.
type Scheme struct {
	Base      int64
	BonusUnit int64
	Tiers     []Tier
}

func DefaultScheme() Scheme {
	return Scheme{
		Base:      DefaultBaseCommission,
		BonusUnit: DefaultBonusUnit,
		Tiers: []Tier{
			NewTier(Threshold1, Target1),
			NewTier(Threshold2, Target2),
		},
	}
}

// tiersFor returns the tiers a structure accumulates.
func (s Scheme) tiersFor(structure types.BonusStructure) ([]Tier, error) {
	n := structure.Tiers()
	if n < 0 || n > len(s.Tiers) {
		return nil, fmt.Errorf("bonus %s needs %d tiers, scheme has %d", structure, n, len(s.Tiers))
	}
	return s.Tiers[:n], nil
}
