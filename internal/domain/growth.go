package domain

import (
	"github.com/fpgo/finance-projector/pkg/money"
	"github.com/shopspring/decimal"
)

// GrowthAssumption drives compound growth of a balance. Compounding is
// monthly; the contribution lands at the end of each period and may be
// negative for a drawdown.
type GrowthAssumption struct {
	AnnualRatePercent        decimal.Decimal `yaml:"annual_rate_percent" json:"annualRatePercent"`
	MonthlyContributionCents money.Cents     `yaml:"monthly_contribution_cents" json:"monthlyContributionCents"`
}
