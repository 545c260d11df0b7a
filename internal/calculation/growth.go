package calculation

import (
	"github.com/fpgo/finance-projector/internal/domain"
	"github.com/fpgo/finance-projector/pkg/money"
)

// Project compounds a balance forward month by month under a growth
// assumption and returns the period-end balances. Each period the balance
// grows by the monthly rate (rounded to cents) and then receives the
// contribution, which may be negative for a drawdown. Zero and negative
// rates are valid.
//
// Every forward projection in the engine (net worth, comparator investment
// sides, goal search) runs through this function, so they all share the same
// rounding behavior.
func Project(initial money.Cents, assumption domain.GrowthAssumption, periods int) []money.Cents {
	if periods <= 0 {
		return nil
	}
	factor := one.Add(money.MonthlyRate(assumption.AnnualRatePercent))
	balances := make([]money.Cents, periods)
	balance := initial
	for i := 0; i < periods; i++ {
		balance = money.MulRate(balance, factor) + assumption.MonthlyContributionCents
		balances[i] = balance
	}
	return balances
}
