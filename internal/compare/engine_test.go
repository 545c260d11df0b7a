package compare

import (
	"context"
	"testing"
	"time"

	"github.com/fpgo/finance-projector/internal/calculation"
	"github.com/fpgo/finance-projector/internal/domain"
	"github.com/fpgo/finance-projector/internal/scenario"
	"github.com/fpgo/finance-projector/pkg/money"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func centsPtr(c money.Cents) *money.Cents { return &c }

func baseSnapshot() *domain.Snapshot {
	return &domain.Snapshot{
		AsOf: time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC),
		Assets: []domain.Asset{
			{
				Name:         "brokerage",
				BalanceCents: 10000000,
				Growth: domain.GrowthAssumption{
					AnnualRatePercent:        decimal.NewFromInt(7),
					MonthlyContributionCents: 100000,
				},
			},
		},
		Liabilities: []domain.Liability{
			{
				Name:                "car loan",
				BalanceCents:        2000000,
				AnnualRatePercent:   decimal.NewFromInt(6),
				MonthlyPaymentCents: 40000,
			},
		},
		CashFlows: []domain.CashFlow{
			{Name: "salary", MonthlyAmountCents: 500000},
			{Name: "expenses", MonthlyAmountCents: -450000},
		},
	}
}

func testScenarios() []scenario.Scenario {
	return []scenario.Scenario{
		{
			Name: "save more",
			Overrides: []scenario.Override{
				&scenario.AssetOverride{AssetName: "brokerage", MonthlyContributionCents: centsPtr(200000)},
			},
		},
		{
			Name: "stop saving",
			Overrides: []scenario.Override{
				&scenario.AssetOverride{AssetName: "brokerage", MonthlyContributionCents: centsPtr(0)},
			},
		},
	}
}

func TestCompareRanksScenarios(t *testing.T) {
	engine := NewCompareEngine(calculation.NewCalculationEngine())
	set, err := engine.Compare(context.Background(), baseSnapshot(), testScenarios(), 10)
	require.NoError(t, err)

	require.Len(t, set.AlternativeResults, 2)
	assert.Equal(t, "base", set.BaseResult.ScenarioName)
	assert.Equal(t, 10, set.HorizonYears)

	saveMore := set.AlternativeResults[0]
	stopSaving := set.AlternativeResults[1]

	assert.Greater(t, saveMore.TerminalNetWorthCents, set.BaseResult.TerminalNetWorthCents)
	assert.Less(t, stopSaving.TerminalNetWorthCents, set.BaseResult.TerminalNetWorthCents)
	assert.Equal(t, "save more", set.BestScenario)

	assert.Positive(t, int64(saveMore.TerminalDeltaCents))
	assert.Negative(t, int64(stopSaving.TerminalDeltaCents))
	assert.Equal(t, 1, saveMore.OvertakeMonth, "a bigger contribution pulls ahead immediately")
	assert.Equal(t, 0, stopSaving.OvertakeMonth, "a smaller contribution never pulls ahead")
}

func TestCompareDeltaPercent(t *testing.T) {
	engine := NewCompareEngine(calculation.NewCalculationEngine())
	set, err := engine.Compare(context.Background(), baseSnapshot(), testScenarios(), 5)
	require.NoError(t, err)

	for _, alt := range set.AlternativeResults {
		expected := alt.TerminalDeltaCents.Decimal().
			Div(money.Abs(set.BaseResult.TerminalNetWorthCents).Decimal()).
			Mul(decimal.NewFromInt(100))
		assert.True(t, alt.TerminalDeltaPercent.Equal(expected), "scenario %s", alt.ScenarioName)
	}
}

func TestCompareIdenticalScenarioIsNeutral(t *testing.T) {
	engine := NewCompareEngine(calculation.NewCalculationEngine())
	scenarios := []scenario.Scenario{{Name: "no change"}}
	set, err := engine.Compare(context.Background(), baseSnapshot(), scenarios, 10)
	require.NoError(t, err)

	alt := set.AlternativeResults[0]
	assert.Equal(t, money.Cents(0), alt.TerminalDeltaCents)
	assert.Equal(t, 0, alt.OvertakeMonth)
	assert.Equal(t, "base", set.BestScenario, "ties go to the base")
}

func TestCompareNoScenarios(t *testing.T) {
	engine := NewCompareEngine(calculation.NewCalculationEngine())
	set, err := engine.Compare(context.Background(), baseSnapshot(), nil, 10)
	require.NoError(t, err)

	assert.Empty(t, set.AlternativeResults)
	assert.Equal(t, "base", set.BestScenario)
}

func TestCompareLeavesBaseUntouched(t *testing.T) {
	base := baseSnapshot()
	before := base.DeepCopy()

	engine := NewCompareEngine(calculation.NewCalculationEngine())
	_, err := engine.Compare(context.Background(), base, testScenarios(), 10)
	require.NoError(t, err)
	assert.Equal(t, before, base)
}

func TestCompareInvalidHorizon(t *testing.T) {
	engine := NewCompareEngine(calculation.NewCalculationEngine())
	for _, years := range []int{0, -1, domain.MaxHorizonYears + 1} {
		_, err := engine.Compare(context.Background(), baseSnapshot(), nil, years)
		require.Error(t, err, "horizon %d", years)
	}
}

func TestCompareBrokenScenario(t *testing.T) {
	engine := NewCompareEngine(calculation.NewCalculationEngine())
	scenarios := []scenario.Scenario{
		{
			Name: "bad target",
			Overrides: []scenario.Override{
				&scenario.AssetOverride{AssetName: "no such asset"},
			},
		},
	}
	_, err := engine.Compare(context.Background(), baseSnapshot(), scenarios, 10)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "bad target")
}

func TestCompareCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	engine := NewCompareEngine(calculation.NewCalculationEngine())
	_, err := engine.Compare(ctx, baseSnapshot(), testScenarios(), 10)
	require.ErrorIs(t, err, context.Canceled)
}
