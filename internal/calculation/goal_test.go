package calculation

import (
	"errors"
	"testing"
	"time"

	"github.com/fpgo/finance-projector/internal/domain"
	"github.com/fpgo/finance-projector/pkg/money"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var goalAsOf = time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)

func datePtr(t time.Time) *time.Time { return &t }

func TestEvaluateGoalStalledTrajectory(t *testing.T) {
	// Halfway to the target with no savings and no return: the goal is not
	// reachable, and hitting the 24-month deadline needs round(500000/24).
	target := goalAsOf.AddDate(2, 0, 0)
	goal := domain.Goal{
		Name:               "house fund",
		TargetAmountCents:  1000000,
		CurrentAmountCents: 500000,
		TargetDate:         datePtr(target),
	}
	summary, err := EvaluateGoal(goal, 0, decimal.Zero, goalAsOf)
	require.NoError(t, err)

	assert.Equal(t, "50", summary.ProgressPercent.String())
	assert.False(t, summary.Reachable)
	assert.False(t, summary.OnTrack)
	assert.Nil(t, summary.ProjectedCompletion)
	assert.Equal(t, GoalSearchCapMonths, summary.SearchCapMonths)
	assert.Equal(t, money.Cents(20833), summary.MonthlySavingsNeededCents)
}

func TestEvaluateGoalOnTrack(t *testing.T) {
	target := goalAsOf.AddDate(0, 12, 0)
	goal := domain.Goal{
		Name:               "emergency fund",
		TargetAmountCents:  1200000,
		CurrentAmountCents: 0,
		TargetDate:         datePtr(target),
	}
	// 120000 a month covers 1200000 in exactly 10 months.
	summary, err := EvaluateGoal(goal, 120000, decimal.Zero, goalAsOf)
	require.NoError(t, err)

	assert.True(t, summary.Reachable)
	assert.Equal(t, 10, summary.MonthsToGoal)
	assert.True(t, summary.OnTrack)
	require.NotNil(t, summary.ProjectedCompletion)
	assert.Equal(t, goalAsOf.AddDate(0, 10, 0), *summary.ProjectedCompletion)
	assert.Equal(t, money.Cents(0), summary.MonthlySavingsNeededCents)
}

func TestEvaluateGoalOffTrack(t *testing.T) {
	target := goalAsOf.AddDate(0, 6, 0)
	goal := domain.Goal{
		Name:               "vacation",
		TargetAmountCents:  600000,
		CurrentAmountCents: 0,
		TargetDate:         datePtr(target),
	}
	// Reachable in 12 months, but the deadline is 6 months out.
	summary, err := EvaluateGoal(goal, 50000, decimal.Zero, goalAsOf)
	require.NoError(t, err)

	assert.True(t, summary.Reachable)
	assert.Equal(t, 12, summary.MonthsToGoal)
	assert.False(t, summary.OnTrack)
	assert.Equal(t, money.Cents(100000), summary.MonthlySavingsNeededCents)
}

func TestEvaluateGoalAlreadyMet(t *testing.T) {
	goal := domain.Goal{
		Name:               "done",
		TargetAmountCents:  100000,
		CurrentAmountCents: 150000,
	}
	summary, err := EvaluateGoal(goal, 0, decimal.Zero, goalAsOf)
	require.NoError(t, err)

	assert.True(t, summary.Reachable)
	assert.True(t, summary.OnTrack)
	assert.Equal(t, 0, summary.MonthsToGoal)
	require.NotNil(t, summary.ProjectedCompletion)
	assert.Equal(t, goalAsOf, *summary.ProjectedCompletion)
	assert.Equal(t, "150", summary.ProgressPercent.String())
}

func TestEvaluateGoalNoDeadline(t *testing.T) {
	goal := domain.Goal{
		Name:               "open ended",
		TargetAmountCents:  1000000,
		CurrentAmountCents: 0,
	}
	summary, err := EvaluateGoal(goal, 100000, decimal.Zero, goalAsOf)
	require.NoError(t, err)

	assert.True(t, summary.Reachable)
	assert.Equal(t, 10, summary.MonthsToGoal)
	assert.True(t, summary.OnTrack, "a goal without a deadline is on track whenever it is reachable")
	assert.Equal(t, money.Cents(0), summary.MonthlySavingsNeededCents)
}

func TestEvaluateGoalGrowthOnly(t *testing.T) {
	// No contributions, 12% return: 1% monthly compounding doubles the
	// balance in roughly 70 months.
	goal := domain.Goal{
		Name:               "compound",
		TargetAmountCents:  2000000,
		CurrentAmountCents: 1000000,
	}
	summary, err := EvaluateGoal(goal, 0, decimal.NewFromInt(12), goalAsOf)
	require.NoError(t, err)

	assert.True(t, summary.Reachable)
	assert.Equal(t, 70, summary.MonthsToGoal)
}

func TestEvaluateGoalRequiredContributionWithReturn(t *testing.T) {
	// Deadline 12 months out, 12% return, starting from zero. The inverted
	// annuity gives 1000000 / ((1.01^12 - 1) / 0.01) = 78848.79, rounded.
	target := goalAsOf.AddDate(0, 12, 0)
	goal := domain.Goal{
		Name:               "timed",
		TargetAmountCents:  1000000,
		CurrentAmountCents: 0,
		TargetDate:         datePtr(target),
	}
	summary, err := EvaluateGoal(goal, 0, decimal.NewFromInt(12), goalAsOf)
	require.NoError(t, err)

	assert.False(t, summary.Reachable)
	assert.False(t, summary.OnTrack)
	assert.Equal(t, money.Cents(78849), summary.MonthlySavingsNeededCents)
}

func TestEvaluateGoalPastDueDeadline(t *testing.T) {
	// A deadline at or before asOf degenerates to the remaining gap.
	goal := domain.Goal{
		Name:               "overdue",
		TargetAmountCents:  500000,
		CurrentAmountCents: 200000,
		TargetDate:         datePtr(goalAsOf.AddDate(0, -3, 0)),
	}
	summary, err := EvaluateGoal(goal, 0, decimal.Zero, goalAsOf)
	require.NoError(t, err)

	assert.False(t, summary.OnTrack)
	assert.Equal(t, money.Cents(300000), summary.MonthlySavingsNeededCents)
}

func TestEvaluateGoalValidation(t *testing.T) {
	tests := []struct {
		name string
		goal domain.Goal
	}{
		{"zero target", domain.Goal{TargetAmountCents: 0}},
		{"negative target", domain.Goal{TargetAmountCents: -100}},
		{"negative current", domain.Goal{TargetAmountCents: 100, CurrentAmountCents: -1}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := EvaluateGoal(tt.goal, 0, decimal.Zero, goalAsOf)
			require.Error(t, err)
			var ve *domain.ValidationError
			assert.True(t, errors.As(err, &ve), "want ValidationError, got %T", err)
		})
	}
}

func TestEvaluateGoalDeterministic(t *testing.T) {
	goal := domain.Goal{
		Name:               "repeat",
		TargetAmountCents:  5000000,
		CurrentAmountCents: 1234567,
		TargetDate:         datePtr(goalAsOf.AddDate(3, 0, 0)),
	}
	a, err := EvaluateGoal(goal, 75000, decimal.NewFromFloat(6.5), goalAsOf)
	require.NoError(t, err)
	b, err := EvaluateGoal(goal, 75000, decimal.NewFromFloat(6.5), goalAsOf)
	require.NoError(t, err)
	assert.Equal(t, a, b)
}
