// Package output renders calculator results for the console, CSV, and
// JSON. This is the only layer that converts integer cents into dollar
// strings; calculators never see formatted values.
package output

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/fpgo/finance-projector/internal/domain"
)

// FormatJSON renders any result value as indented JSON.
func FormatJSON(v any) (string, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// ScheduleFormatter renders amortization schedules.
type ScheduleFormatter struct {
	// Every includes only every Nth entry in the console table (plus the
	// final entry). Zero renders all entries.
	Every int
}

// FormatTable renders the schedule as a console table.
func (sf *ScheduleFormatter) FormatTable(s *domain.AmortizationSchedule) string {
	var sb strings.Builder
	sb.WriteString("AMORTIZATION SCHEDULE\n")
	sb.WriteString(strings.Repeat("=", 96) + "\n")
	sb.WriteString(fmt.Sprintf("Monthly payment: %s   Periods: %d   Total interest: %s\n",
		s.MonthlyPaymentCents.Format(), s.PayoffMonths, s.TotalInterestCents.Format()))
	sb.WriteString(strings.Repeat("-", 96) + "\n")
	sb.WriteString(fmt.Sprintf("%5s %12s %12s %12s %12s %12s %12s %12s\n",
		"#", "Date", "Begin", "Payment", "Principal", "Interest", "End", "Cum Int"))

	step := sf.Every
	if step < 1 {
		step = 1
	}
	for i, e := range s.Entries {
		if i%step != 0 && i != len(s.Entries)-1 {
			continue
		}
		sb.WriteString(fmt.Sprintf("%5d %12s %12s %12s %12s %12s %12s %12s\n",
			e.PaymentNumber,
			e.PaymentDate.Format("2006-01-02"),
			e.BeginningBalanceCents.String(),
			e.ScheduledPaymentCents.String(),
			e.PrincipalCents.String(),
			e.InterestCents.String(),
			e.EndingBalanceCents.String(),
			e.CumulativeInterestCents.String()))
	}
	sb.WriteString(strings.Repeat("=", 96) + "\n")
	return sb.String()
}

// FormatCSV renders the full schedule as CSV, amounts in integer cents.
func (sf *ScheduleFormatter) FormatCSV(s *domain.AmortizationSchedule) (string, error) {
	var sb strings.Builder
	writer := csv.NewWriter(&sb)

	header := []string{
		"Payment Number", "Payment Date", "Beginning Balance (cents)",
		"Scheduled Payment (cents)", "Principal (cents)", "Interest (cents)",
		"Ending Balance (cents)", "Cumulative Principal (cents)", "Cumulative Interest (cents)",
	}
	if err := writer.Write(header); err != nil {
		return "", err
	}
	for _, e := range s.Entries {
		row := []string{
			strconv.Itoa(e.PaymentNumber),
			e.PaymentDate.Format("2006-01-02"),
			strconv.FormatInt(int64(e.BeginningBalanceCents), 10),
			strconv.FormatInt(int64(e.ScheduledPaymentCents), 10),
			strconv.FormatInt(int64(e.PrincipalCents), 10),
			strconv.FormatInt(int64(e.InterestCents), 10),
			strconv.FormatInt(int64(e.EndingBalanceCents), 10),
			strconv.FormatInt(int64(e.CumulativePrincipalCents), 10),
			strconv.FormatInt(int64(e.CumulativeInterestCents), 10),
		}
		if err := writer.Write(row); err != nil {
			return "", err
		}
	}
	writer.Flush()
	if err := writer.Error(); err != nil {
		return "", err
	}
	return sb.String(), nil
}

// TaxFormatter renders progressive tax breakdowns.
type TaxFormatter struct{}

// FormatTable renders the breakdown as a console table.
func (tf *TaxFormatter) FormatTable(r *domain.TaxResult) string {
	var sb strings.Builder
	sb.WriteString("TAX BRACKET BREAKDOWN\n")
	sb.WriteString(strings.Repeat("=", 72) + "\n")
	sb.WriteString(fmt.Sprintf("Taxable income: %s\n", r.TaxableIncomeCents.Format()))
	sb.WriteString(strings.Repeat("-", 72) + "\n")
	sb.WriteString(fmt.Sprintf("%14s %14s %8s %14s %14s\n", "From", "To", "Rate", "Taxed", "Tax"))
	for _, b := range r.PerBracket {
		to := "-"
		if b.MaxCents != nil {
			to = b.MaxCents.String()
		}
		sb.WriteString(fmt.Sprintf("%14s %14s %7s%% %14s %14s\n",
			b.MinCents.String(), to, b.RatePercent.StringFixed(1),
			b.TaxedAmountCents.String(), b.TaxInBracketCents.String()))
	}
	sb.WriteString(strings.Repeat("-", 72) + "\n")
	sb.WriteString(fmt.Sprintf("Total tax: %s   Marginal rate: %s%%   Effective rate: %s%%\n",
		r.TotalTaxCents.Format(), r.MarginalRatePercent.StringFixed(1), r.EffectiveRatePercent.StringFixed(2)))
	sb.WriteString(strings.Repeat("=", 72) + "\n")
	return sb.String()
}

// GoalFormatter renders goal progress summaries.
type GoalFormatter struct{}

// FormatTable renders the summary for the console.
func (gf *GoalFormatter) FormatTable(name string, s *domain.GoalProgressSummary) string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("GOAL: %s\n", name))
	sb.WriteString(strings.Repeat("-", 56) + "\n")
	sb.WriteString(fmt.Sprintf("Progress: %s%%\n", s.ProgressPercent.StringFixed(1)))
	if s.Reachable {
		sb.WriteString(fmt.Sprintf("Months to goal: %d\n", s.MonthsToGoal))
		if s.ProjectedCompletion != nil {
			sb.WriteString(fmt.Sprintf("Projected completion: %s\n", s.ProjectedCompletion.Format("2006-01-02")))
		}
	} else {
		sb.WriteString(fmt.Sprintf("Not reachable within %d months at the current trajectory\n", s.SearchCapMonths))
	}
	sb.WriteString(fmt.Sprintf("On track: %t\n", s.OnTrack))
	if s.MonthlySavingsNeededCents > 0 {
		sb.WriteString(fmt.Sprintf("Monthly savings needed: %s\n", s.MonthlySavingsNeededCents.Format()))
	}
	return sb.String()
}

// ComparisonFormatter renders the two strategy comparators.
type ComparisonFormatter struct{}

// FormatMortgageVsInvest renders the pay-extra vs invest series and summary.
func (cf *ComparisonFormatter) FormatMortgageVsInvest(r *domain.MortgageVsInvestResult) string {
	var sb strings.Builder
	sb.WriteString("PAY EXTRA VS INVEST THE DIFFERENCE\n")
	sb.WriteString(strings.Repeat("=", 88) + "\n")
	sb.WriteString(fmt.Sprintf("%5s %15s %15s %15s %15s %15s\n",
		"Year", "Interest Saved", "Equity Lead", "Pay-Extra Value", "Invest (net)", "Net Advantage"))
	for _, y := range r.Years {
		sb.WriteString(fmt.Sprintf("%5d %15s %15s %15s %15s %15s\n",
			y.Year,
			y.InterestSavedCents.String(),
			y.EquityLeadCents.String(),
			y.PayExtraValueCents.String(),
			y.InvestAfterTaxCents.String(),
			y.NetAdvantageCents.String()))
	}
	sb.WriteString(strings.Repeat("-", 88) + "\n")
	s := r.Summary
	sb.WriteString(fmt.Sprintf("Payoff: %d months with extra vs %d baseline; interest saved %s\n",
		s.ModifiedPayoffMonths, s.BaselinePayoffMonths, s.InterestSavedCents.Format()))
	sb.WriteString(fmt.Sprintf("Winner over %d years: %s (net advantage %s)\n",
		s.HorizonYears, s.Winner, s.NetAdvantageCents.Format()))
	sb.WriteString(strings.Repeat("=", 88) + "\n")
	return sb.String()
}

// FormatRentVsBuy renders the rent-vs-buy series and summary.
func (cf *ComparisonFormatter) FormatRentVsBuy(r *domain.RentVsBuyResult) string {
	var sb strings.Builder
	sb.WriteString("RENT VS BUY\n")
	sb.WriteString(strings.Repeat("=", 88) + "\n")
	sb.WriteString(fmt.Sprintf("%5s %15s %15s %15s %15s %15s\n",
		"Year", "Home Value", "Buy Equity", "Buy Cost", "Rent Portfolio", "Net Advantage"))
	for _, y := range r.Years {
		sb.WriteString(fmt.Sprintf("%5d %15s %15s %15s %15s %15s\n",
			y.Year,
			y.HomeValueCents.String(),
			y.BuyEquityCents.String(),
			y.BuyCumulativeCostCents.String(),
			y.RentPortfolioCents.String(),
			y.NetAdvantageCents.String()))
	}
	sb.WriteString(strings.Repeat("-", 88) + "\n")
	s := r.Summary
	if s.BreakEvenYear > 0 {
		sb.WriteString(fmt.Sprintf("Break-even in year %d\n", s.BreakEvenYear))
	} else {
		sb.WriteString("No break-even within the horizon\n")
	}
	sb.WriteString(fmt.Sprintf("Winner over %d years: %s (terminal advantage %s)\n",
		s.HorizonYears, s.Winner, s.TerminalAdvantageCents.Format()))
	sb.WriteString(strings.Repeat("=", 88) + "\n")
	return sb.String()
}
