package commissionobs

import (
	"context"
	"time"

	"broker-commission/internal/currency"
	"broker-commission/internal/interfaces"
	"broker-commission/internal/logger"
	"broker-commission/internal/money"
	"broker-commission/internal/trace"
	"broker-commission/internal/types"
)

type observableCalculator struct {
	calc  interfaces.Calculator
	rates money.Rates
	home  string
}

var _ interfaces.Calculator = (*observableCalculator)(nil)

// Wrap decorates calc with spans and logs. rates and home are only used to
// count case values that cannot be converted.
func Wrap(calc interfaces.Calculator, rates money.Rates, home string) interfaces.Calculator {
	if home == "" {
		home = currency.DefaultHome
	}
	return &observableCalculator{
		calc:  calc,
		rates: rates,
		home:  home,
	}
}

func (oc *observableCalculator) Generate(ctx context.Context, cases types.Table, structure types.BonusStructure) (types.Table, error) {
	ctx, span := trace.StartSpan(ctx, "commission.Generate")
	defer span.End()

	start := time.Now()

	logger.InfoSkip(ctx, 1, "Generating commissions",
		"structure", structure.String(),
		"cases", len(cases.Rows()),
	)

	if n := currency.CountUnconvertible(cases, types.ColCaseValue, oc.rates, oc.home); n > 0 {
		logger.WarnSkip(ctx, 1, "Case values without a conversion rate",
			"structure", structure.String(),
			"nan_cases", n,
		)
	}

	out, err := oc.calc.Generate(ctx, cases, structure)
	if err != nil {
		logger.ErrorWithErrSkip(ctx, 1, "Commission generation failed", err,
			"structure", structure.String(),
			"duration_ms", time.Since(start).Milliseconds(),
		)
		return nil, err
	}

	logger.InfoSkip(ctx, 1, "Commissions generated",
		"structure", structure.String(),
		"rows", len(out.Rows()),
		"duration_ms", time.Since(start).Milliseconds(),
	)
	return out, nil
}

func (oc *observableCalculator) Summarize(ctx context.Context, commissions types.Table) (types.Table, error) {
	ctx, span := trace.StartSpan(ctx, "commission.Summarize")
	defer span.End()

	start := time.Now()

	out, err := oc.calc.Summarize(ctx, commissions)
	if err != nil {
		logger.ErrorWithErrSkip(ctx, 1, "Commission summary failed", err,
			"rows", len(commissions.Rows()),
			"duration_ms", time.Since(start).Milliseconds(),
		)
		return nil, err
	}

	if n := currency.CountNaN(out, types.ColTotalCommission, oc.home); n > 0 {
		logger.WarnSkip(ctx, 1, "Broker totals are NaN",
			"brokers", n,
		)
	}

	logger.InfoSkip(ctx, 1, "Commission summary generated",
		"commissions", len(commissions.Rows()),
		"brokers", len(out.Rows()),
		"duration_ms", time.Since(start).Milliseconds(),
	)
	return out, nil
}
