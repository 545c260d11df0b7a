package domain

import (
	"time"

	"github.com/fpgo/finance-projector/pkg/money"
	"github.com/shopspring/decimal"
)

// Goal is a savings target, optionally with a deadline.
type Goal struct {
	Name               string      `yaml:"name" json:"name"`
	TargetAmountCents  money.Cents `yaml:"target_amount_cents" json:"targetAmountCents"`
	CurrentAmountCents money.Cents `yaml:"current_amount_cents" json:"currentAmountCents"`
	TargetDate         *time.Time  `yaml:"target_date" json:"targetDate"`
}

// Validate checks the goal's fields.
func (g Goal) Validate() error {
	ve := &ValidationError{}
	if g.TargetAmountCents <= 0 {
		ve.Add("target_amount_cents", "must be positive, got %d", g.TargetAmountCents)
	}
	if g.CurrentAmountCents < 0 {
		ve.Add("current_amount_cents", "must not be negative, got %d", g.CurrentAmountCents)
	}
	return ve.OrNil()
}

// GoalProgressSummary reports where a goal stands under the current
// contribution trajectory. An unreachable goal is a valid answer, not an
// error: Reachable is false and MonthsToGoal is meaningless.
type GoalProgressSummary struct {
	ProgressPercent           decimal.Decimal `json:"progressPercent"`
	Reachable                 bool            `json:"reachable"`
	MonthsToGoal              int             `json:"monthsToGoal"`
	SearchCapMonths           int             `json:"searchCapMonths"`
	ProjectedCompletion       *time.Time      `json:"projectedCompletion"`
	OnTrack                   bool            `json:"onTrack"`
	MonthlySavingsNeededCents money.Cents     `json:"monthlySavingsNeededCents"`
}
