package domain

import (
	"time"

	"github.com/fpgo/finance-projector/pkg/money"
	"github.com/shopspring/decimal"
)

// LoanTerms describes a fixed-rate amortizing loan.
type LoanTerms struct {
	PrincipalCents    money.Cents     `yaml:"principal_cents" json:"principalCents"`
	AnnualRatePercent decimal.Decimal `yaml:"annual_rate_percent" json:"annualRatePercent"`
	TermMonths        int             `yaml:"term_months" json:"termMonths"`
	StartDate         time.Time       `yaml:"start_date" json:"startDate"`
}

// Validate checks the loan terms, returning every violated constraint.
func (lt LoanTerms) Validate() error {
	ve := &ValidationError{}
	if lt.PrincipalCents < 0 {
		ve.Add("principal_cents", "must not be negative, got %d", lt.PrincipalCents)
	}
	if lt.TermMonths <= 0 {
		ve.Add("term_months", "must be positive, got %d", lt.TermMonths)
	}
	if lt.AnnualRatePercent.IsNegative() {
		ve.Add("annual_rate_percent", "must not be negative, got %s", lt.AnnualRatePercent)
	}
	return ve.OrNil()
}

// PaymentModification alters a loan's payment plan: a recurring extra
// principal payment, a single lump-sum payment, or a biweekly cadence (26
// half payments per year, roughly one extra monthly payment annually).
type PaymentModification struct {
	ExtraMonthlyPaymentCents money.Cents `yaml:"extra_monthly_payment_cents" json:"extraMonthlyPaymentCents"`
	OneTimePaymentCents      money.Cents `yaml:"one_time_payment_cents" json:"oneTimePaymentCents"`
	OneTimePaymentMonth      int         `yaml:"one_time_payment_month" json:"oneTimePaymentMonth"`
	UseBiweekly              bool        `yaml:"use_biweekly" json:"useBiweekly"`
}

// Validate checks the modification against the loan's term.
func (pm PaymentModification) Validate(termMonths int) error {
	ve := &ValidationError{}
	if pm.ExtraMonthlyPaymentCents < 0 {
		ve.Add("extra_monthly_payment_cents", "must not be negative, got %d", pm.ExtraMonthlyPaymentCents)
	}
	if pm.OneTimePaymentCents < 0 {
		ve.Add("one_time_payment_cents", "must not be negative, got %d", pm.OneTimePaymentCents)
	}
	if pm.OneTimePaymentCents > 0 && (pm.OneTimePaymentMonth < 1 || pm.OneTimePaymentMonth > termMonths) {
		ve.Add("one_time_payment_month", "must be within [1, %d], got %d", termMonths, pm.OneTimePaymentMonth)
	}
	return ve.OrNil()
}

// IsZero reports whether the modification changes nothing.
func (pm PaymentModification) IsZero() bool {
	return pm.ExtraMonthlyPaymentCents == 0 && pm.OneTimePaymentCents == 0 && !pm.UseBiweekly
}

// AmortizationEntry is one period of a loan payoff schedule.
//
// Invariant: BeginningBalanceCents - PrincipalCents == EndingBalanceCents
// exactly, and the final entry's EndingBalanceCents is zero.
type AmortizationEntry struct {
	PaymentNumber            int         `json:"paymentNumber"`
	PaymentDate              time.Time   `json:"paymentDate"`
	BeginningBalanceCents    money.Cents `json:"beginningBalanceCents"`
	ScheduledPaymentCents    money.Cents `json:"scheduledPaymentCents"`
	PrincipalCents           money.Cents `json:"principalCents"`
	InterestCents            money.Cents `json:"interestCents"`
	EndingBalanceCents       money.Cents `json:"endingBalanceCents"`
	CumulativePrincipalCents money.Cents `json:"cumulativePrincipalCents"`
	CumulativeInterestCents  money.Cents `json:"cumulativeInterestCents"`
}

// AmortizationSchedule is the full payoff schedule for a loan plus derived
// totals.
type AmortizationSchedule struct {
	Entries             []AmortizationEntry `json:"entries"`
	MonthlyPaymentCents money.Cents         `json:"monthlyPaymentCents"`
	TotalInterestCents  money.Cents         `json:"totalInterestCents"`
	PayoffMonths        int                 `json:"payoffMonths"`
}

// FinalEntry returns the last schedule entry, or nil for an empty schedule.
func (s *AmortizationSchedule) FinalEntry() *AmortizationEntry {
	if len(s.Entries) == 0 {
		return nil
	}
	return &s.Entries[len(s.Entries)-1]
}

// BalanceAfter returns the remaining balance after n payments. n of zero
// returns the original balance; n beyond the schedule returns zero.
func (s *AmortizationSchedule) BalanceAfter(n int) money.Cents {
	if len(s.Entries) == 0 || n <= 0 {
		if len(s.Entries) > 0 {
			return s.Entries[0].BeginningBalanceCents
		}
		return 0
	}
	if n >= len(s.Entries) {
		return 0
	}
	return s.Entries[n-1].EndingBalanceCents
}

// CumulativeInterestAfter returns interest paid through the first n payments.
func (s *AmortizationSchedule) CumulativeInterestAfter(n int) money.Cents {
	if len(s.Entries) == 0 || n <= 0 {
		return 0
	}
	if n >= len(s.Entries) {
		n = len(s.Entries)
	}
	return s.Entries[n-1].CumulativeInterestCents
}
