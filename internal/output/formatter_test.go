package output

import (
	"encoding/csv"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/fpgo/finance-projector/internal/calculation"
	"github.com/fpgo/finance-projector/internal/domain"
	"github.com/fpgo/finance-projector/pkg/money"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testSchedule(t *testing.T) *domain.AmortizationSchedule {
	t.Helper()
	schedule, err := calculation.BuildSchedule(domain.LoanTerms{
		PrincipalCents:    30000000,
		AnnualRatePercent: decimal.NewFromFloat(6.0),
		TermMonths:        360,
		StartDate:         time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
	}, nil)
	require.NoError(t, err)
	return schedule
}

func TestScheduleFormatTable(t *testing.T) {
	out := (&ScheduleFormatter{Every: 12}).FormatTable(testSchedule(t))

	assert.Contains(t, out, "AMORTIZATION SCHEDULE")
	assert.Contains(t, out, "$1798.65")
	assert.Contains(t, out, "Periods: 360")
	// Annual sampling keeps the table short: ~30 data rows, not 360.
	lines := strings.Count(out, "\n")
	assert.Less(t, lines, 50)
	assert.Contains(t, out, "2025-02-01", "first entry always shown")
}

func TestScheduleFormatTableEveryZeroShowsAll(t *testing.T) {
	out := (&ScheduleFormatter{}).FormatTable(testSchedule(t))
	assert.Greater(t, strings.Count(out, "\n"), 360)
}

func TestScheduleFormatCSV(t *testing.T) {
	schedule := testSchedule(t)
	out, err := (&ScheduleFormatter{Every: 12}).FormatCSV(schedule)
	require.NoError(t, err)

	records, err := csv.NewReader(strings.NewReader(out)).ReadAll()
	require.NoError(t, err)

	// CSV ignores sampling: header plus every entry, amounts in raw cents.
	require.Len(t, records, 361)
	assert.Equal(t, "Payment Number", records[0][0])
	assert.Equal(t, "1", records[1][0])
	assert.Equal(t, "30000000", records[1][2])
	assert.Equal(t, "150000", records[1][5])
}

func TestTaxFormatTable(t *testing.T) {
	maxCents := money.Cents(1000000)
	result, err := calculation.ComputeTax(1500000, []domain.TaxBracket{
		{MinCents: 0, MaxCents: &maxCents, RatePercent: decimal.NewFromInt(10)},
		{MinCents: 1000000, MaxCents: nil, RatePercent: decimal.NewFromInt(20)},
	})
	require.NoError(t, err)

	out := (&TaxFormatter{}).FormatTable(result)
	assert.Contains(t, out, "TAX BRACKET BREAKDOWN")
	assert.Contains(t, out, "Taxable income: $15000.00")
	assert.Contains(t, out, "Total tax: $2000.00")
	assert.Contains(t, out, "Marginal rate: 20.0%")
	assert.Contains(t, out, "Effective rate: 13.33%")
}

func TestGoalFormatTable(t *testing.T) {
	completion := time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC)
	reachable := &domain.GoalProgressSummary{
		ProgressPercent:     decimal.NewFromInt(50),
		Reachable:           true,
		MonthsToGoal:        10,
		ProjectedCompletion: &completion,
		OnTrack:             true,
	}
	out := (&GoalFormatter{}).FormatTable("house fund", reachable)
	assert.Contains(t, out, "GOAL: house fund")
	assert.Contains(t, out, "Progress: 50.0%")
	assert.Contains(t, out, "Months to goal: 10")
	assert.Contains(t, out, "Projected completion: 2026-04-01")
	assert.Contains(t, out, "On track: true")

	stalled := &domain.GoalProgressSummary{
		ProgressPercent:           decimal.NewFromInt(50),
		SearchCapMonths:           600,
		MonthlySavingsNeededCents: 20833,
	}
	out = (&GoalFormatter{}).FormatTable("house fund", stalled)
	assert.Contains(t, out, "Not reachable within 600 months")
	assert.Contains(t, out, "Monthly savings needed: $208.33")
	assert.NotContains(t, out, "Months to goal")
}

func TestComparisonFormatMortgageVsInvest(t *testing.T) {
	result, err := calculation.CompareMortgageVsInvest(domain.MortgageVsInvestInput{
		Loan: domain.LoanTerms{
			PrincipalCents:    30000000,
			AnnualRatePercent: decimal.NewFromFloat(6.0),
			TermMonths:        360,
		},
		ExtraMonthlyPaymentCents: 50000,
		ExpectedReturnPercent:    decimal.NewFromInt(7),
		CapitalGainsTaxPercent:   decimal.NewFromInt(15),
		HorizonYears:             10,
	})
	require.NoError(t, err)

	out := (&ComparisonFormatter{}).FormatMortgageVsInvest(result)
	assert.Contains(t, out, "PAY EXTRA VS INVEST THE DIFFERENCE")
	assert.Contains(t, out, "Winner over 10 years:")
	assert.Contains(t, out, "360 baseline")
}

func TestComparisonFormatRentVsBuy(t *testing.T) {
	result, err := calculation.CompareRentVsBuy(domain.BuyParams{
		HomePriceCents:          50000000,
		DownPaymentCents:        10000000,
		MortgageRatePercent:     decimal.NewFromFloat(6.0),
		TermMonths:              360,
		PropertyTaxRatePercent:  decimal.NewFromFloat(1.0),
		AppreciationRatePercent: decimal.NewFromFloat(3.0),
	}, domain.RentParams{
		MonthlyRentCents:        250000,
		AnnualIncreasePercent:   decimal.NewFromFloat(3.0),
		InvestmentReturnPercent: decimal.NewFromFloat(7.0),
	}, 10)
	require.NoError(t, err)

	out := (&ComparisonFormatter{}).FormatRentVsBuy(result)
	assert.Contains(t, out, "RENT VS BUY")
	assert.Contains(t, out, "Winner over 10 years:")
}

func TestFormatJSON(t *testing.T) {
	schedule := testSchedule(t)
	out, err := FormatJSON(schedule)
	require.NoError(t, err)

	var decoded domain.AmortizationSchedule
	require.NoError(t, json.Unmarshal([]byte(out), &decoded))
	assert.Equal(t, schedule.MonthlyPaymentCents, decoded.MonthlyPaymentCents)
	assert.Len(t, decoded.Entries, 360)
}
