package calculation

import (
	"github.com/fpgo/finance-projector/internal/domain"
	"github.com/fpgo/finance-projector/pkg/money"
)

// ProjectNetWorth projects every asset and liability in a snapshot
// independently, nets them per month, and returns the trajectory. Recurring
// cash flows accumulate as uninvested cash on the asset side: the snapshot's
// monthly net cash flow is treated as a zero-growth balance so that income
// and expense changes move the trajectory without implying an investment
// decision.
func ProjectNetWorth(snapshot *domain.Snapshot, months int) (*domain.NetWorthProjection, error) {
	if err := snapshot.Validate(); err != nil {
		return nil, err
	}
	if err := validateProjectionMonths(months); err != nil {
		return nil, err
	}

	proj := &domain.NetWorthProjection{
		AssetSeries:     make(map[string][]money.Cents, len(snapshot.Assets)+1),
		LiabilitySeries: make(map[string][]money.Cents, len(snapshot.Liabilities)),
	}
	proj.Points = make([]domain.NetWorthPoint, months)

	// Monthly totals accumulate from the validated slices, not the series
	// maps, so every entity contributes exactly once.
	addAssetSeries := func(name string, series []money.Cents) {
		proj.AssetSeries[name] = series
		for m, b := range series {
			proj.Points[m].AssetsCents += b
		}
	}

	for _, a := range snapshot.Assets {
		addAssetSeries(a.Name, Project(a.BalanceCents, a.Growth, months))
		proj.StartNetWorth += a.BalanceCents
	}
	if flow := snapshot.MonthlyNetCashFlowCents(); flow != 0 {
		addAssetSeries(domain.CashFlowSeriesName, Project(0, domain.GrowthAssumption{MonthlyContributionCents: flow}, months))
	}
	for _, l := range snapshot.Liabilities {
		series := projectLiability(l, months)
		proj.LiabilitySeries[l.Name] = series
		for m, b := range series {
			proj.Points[m].LiabilitiesCents += b
		}
		proj.StartNetWorth -= l.BalanceCents
	}

	for m := range proj.Points {
		proj.Points[m].Month = m + 1
		proj.Points[m].NetWorthCents = proj.Points[m].AssetsCents - proj.Points[m].LiabilitiesCents
	}
	proj.TerminalNetWorth = proj.Points[months-1].NetWorthCents
	return proj, nil
}

// projectLiability rolls a liability forward: interest accrues on the
// balance, the fixed payment reduces it, and the balance floors at zero once
// paid off.
func projectLiability(l domain.Liability, months int) []money.Cents {
	factor := one.Add(money.MonthlyRate(l.AnnualRatePercent))
	balances := make([]money.Cents, months)
	balance := l.BalanceCents
	for i := 0; i < months; i++ {
		if balance > 0 {
			balance = money.MulRate(balance, factor) - l.MonthlyPaymentCents
			if balance < 0 {
				balance = 0
			}
		}
		balances[i] = balance
	}
	return balances
}

func validateProjectionMonths(months int) error {
	ve := &domain.ValidationError{}
	maxMonths := domain.MaxHorizonYears * 12
	if months < 1 || months > maxMonths {
		ve.Add("months", "must be within [1, %d], got %d", maxMonths, months)
	}
	return ve.OrNil()
}
