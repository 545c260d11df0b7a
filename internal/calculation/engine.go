package calculation

import (
	"time"

	"github.com/fpgo/finance-projector/internal/domain"
	"github.com/fpgo/finance-projector/pkg/money"
	"github.com/shopspring/decimal"
)

// CalculationEngine fronts the pure calculators for the orchestration layer
// (CLI, scenario comparison). It holds no state between calls, every method
// delegates to a pure function, so concurrent invocations need no
// coordination. The logger exists for diagnostics only and defaults to a
// no-op.
type CalculationEngine struct {
	Logger Logger
}

// NewCalculationEngine creates an engine with a no-op logger.
func NewCalculationEngine() *CalculationEngine {
	return &CalculationEngine{Logger: NopLogger{}}
}

// SetLogger sets the engine logger. A nil logger restores the no-op default.
func (ce *CalculationEngine) SetLogger(l Logger) {
	if l == nil {
		ce.Logger = NopLogger{}
		return
	}
	ce.Logger = l
}

// BuildSchedule generates a loan amortization schedule.
func (ce *CalculationEngine) BuildSchedule(loan domain.LoanTerms, mods *domain.PaymentModification) (*domain.AmortizationSchedule, error) {
	schedule, err := BuildSchedule(loan, mods)
	if err != nil {
		ce.Logger.Errorf("schedule build failed: %v", err)
		return nil, err
	}
	ce.Logger.Debugf("built schedule: %d periods, payment %s, total interest %s",
		schedule.PayoffMonths, schedule.MonthlyPaymentCents, schedule.TotalInterestCents)
	return schedule, nil
}

// ComputeTax runs the progressive bracket walk.
func (ce *CalculationEngine) ComputeTax(incomeCents money.Cents, brackets []domain.TaxBracket) (*domain.TaxResult, error) {
	result, err := ComputeTax(incomeCents, brackets)
	if err != nil {
		ce.Logger.Errorf("tax computation failed: %v", err)
		return nil, err
	}
	ce.Logger.Debugf("computed tax: income %s, total %s, marginal %s%%",
		incomeCents, result.TotalTaxCents, result.MarginalRatePercent)
	return result, nil
}

// ProjectNetWorth projects a snapshot's net-worth trajectory.
func (ce *CalculationEngine) ProjectNetWorth(snapshot *domain.Snapshot, months int) (*domain.NetWorthProjection, error) {
	proj, err := ProjectNetWorth(snapshot, months)
	if err != nil {
		ce.Logger.Errorf("net worth projection failed: %v", err)
		return nil, err
	}
	ce.Logger.Debugf("projected net worth: %d months, %s -> %s",
		months, proj.StartNetWorth, proj.TerminalNetWorth)
	return proj, nil
}

// CompareMortgageVsInvest runs the pay-extra vs invest comparison.
func (ce *CalculationEngine) CompareMortgageVsInvest(in domain.MortgageVsInvestInput) (*domain.MortgageVsInvestResult, error) {
	result, err := CompareMortgageVsInvest(in)
	if err != nil {
		ce.Logger.Errorf("mortgage-vs-invest comparison failed: %v", err)
		return nil, err
	}
	ce.Logger.Debugf("mortgage-vs-invest: %d years, winner %s, net advantage %s",
		in.HorizonYears, result.Summary.Winner, result.Summary.NetAdvantageCents)
	return result, nil
}

// CompareRentVsBuy runs the ownership-vs-renting comparison.
func (ce *CalculationEngine) CompareRentVsBuy(buy domain.BuyParams, rent domain.RentParams, horizonYears int) (*domain.RentVsBuyResult, error) {
	result, err := CompareRentVsBuy(buy, rent, horizonYears)
	if err != nil {
		ce.Logger.Errorf("rent-vs-buy comparison failed: %v", err)
		return nil, err
	}
	ce.Logger.Debugf("rent-vs-buy: %d years, winner %s, break-even year %d",
		horizonYears, result.Summary.Winner, result.Summary.BreakEvenYear)
	return result, nil
}

// EvaluateGoal derives goal progress under the current trajectory.
func (ce *CalculationEngine) EvaluateGoal(goal domain.Goal, monthlyNetCashFlowCents money.Cents, assumedReturnPercent decimal.Decimal, asOf time.Time) (*domain.GoalProgressSummary, error) {
	summary, err := EvaluateGoal(goal, monthlyNetCashFlowCents, assumedReturnPercent, asOf)
	if err != nil {
		ce.Logger.Errorf("goal evaluation failed: %v", err)
		return nil, err
	}
	ce.Logger.Debugf("goal %q: progress %s%%, reachable %t, on track %t",
		goal.Name, summary.ProgressPercent.StringFixed(1), summary.Reachable, summary.OnTrack)
	return summary, nil
}
