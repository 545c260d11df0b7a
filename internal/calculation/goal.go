package calculation

import (
	"time"

	"github.com/fpgo/finance-projector/internal/domain"
	"github.com/fpgo/finance-projector/pkg/dateutil"
	"github.com/fpgo/finance-projector/pkg/money"
	"github.com/shopspring/decimal"
)

// GoalSearchCapMonths bounds the months-to-goal search. A goal the
// trajectory cannot reach within this horizon is reported as not reachable,
// which is a valid financial answer rather than an error.
const GoalSearchCapMonths = 600

// EvaluateGoal derives a goal's progress, projected completion, and, when
// the goal is off track against its target date, the monthly contribution
// that would hit the target exactly on time. asOf anchors date arithmetic so
// results are reproducible; nothing reads the wall clock.
func EvaluateGoal(goal domain.Goal, monthlyNetCashFlowCents money.Cents, assumedReturnPercent decimal.Decimal, asOf time.Time) (*domain.GoalProgressSummary, error) {
	if err := goal.Validate(); err != nil {
		return nil, err
	}

	summary := &domain.GoalProgressSummary{
		SearchCapMonths: GoalSearchCapMonths,
		ProgressPercent: goal.CurrentAmountCents.Decimal().
			Div(goal.TargetAmountCents.Decimal()).
			Mul(decimal.NewFromInt(100)),
	}

	monthsToTarget := 0
	if goal.TargetDate != nil {
		monthsToTarget = dateutil.MonthsBetween(asOf, *goal.TargetDate)
	}

	if goal.CurrentAmountCents >= goal.TargetAmountCents {
		summary.Reachable = true
		summary.OnTrack = true
		completion := asOf
		summary.ProjectedCompletion = &completion
		return summary, nil
	}

	summary.MonthsToGoal = monthsToGoal(goal, monthlyNetCashFlowCents, assumedReturnPercent)
	summary.Reachable = summary.MonthsToGoal > 0

	if summary.Reachable {
		completion := dateutil.AddMonths(asOf, summary.MonthsToGoal)
		summary.ProjectedCompletion = &completion
		if goal.TargetDate == nil {
			summary.OnTrack = true
		} else {
			summary.OnTrack = summary.MonthsToGoal <= monthsToTarget
		}
	}

	if !summary.OnTrack && goal.TargetDate != nil {
		summary.MonthlySavingsNeededCents = requiredContribution(goal, assumedReturnPercent, monthsToTarget)
	}
	return summary, nil
}

// monthsToGoal returns the first month the projected balance reaches the
// target, or 0 when the search cap is exhausted.
func monthsToGoal(goal domain.Goal, contribution money.Cents, returnPercent decimal.Decimal) int {
	factor := one.Add(money.MonthlyRate(returnPercent))
	balance := goal.CurrentAmountCents
	for m := 1; m <= GoalSearchCapMonths; m++ {
		balance = money.MulRate(balance, factor) + contribution
		if balance >= goal.TargetAmountCents {
			return m
		}
	}
	return 0
}

// requiredContribution inverts the annuity formula for the payment term:
// the monthly contribution c such that current*g^m + c*(g^m-1)/r equals the
// target after m months, where g is the monthly growth factor. A past-due
// or immediate target date degenerates to the remaining gap.
func requiredContribution(goal domain.Goal, returnPercent decimal.Decimal, months int) money.Cents {
	gap := goal.TargetAmountCents - goal.CurrentAmountCents
	if months <= 0 {
		return gap
	}
	rate := money.MonthlyRate(returnPercent)
	if rate.IsZero() {
		return money.RoundDecimal(gap.Decimal().Div(decimal.NewFromInt(int64(months))))
	}
	growth := one.Add(rate).Pow(decimal.NewFromInt(int64(months)))
	futureCurrent := goal.CurrentAmountCents.Decimal().Mul(growth)
	annuityFactor := growth.Sub(one).Div(rate)
	needed := goal.TargetAmountCents.Decimal().Sub(futureCurrent).Div(annuityFactor)
	if needed.IsNegative() {
		return 0
	}
	return money.RoundDecimal(needed)
}
