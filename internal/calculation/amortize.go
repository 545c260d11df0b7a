package calculation

import (
	"fmt"

	"github.com/fpgo/finance-projector/internal/domain"
	"github.com/fpgo/finance-projector/pkg/dateutil"
	"github.com/fpgo/finance-projector/pkg/money"
	"github.com/shopspring/decimal"
)

// scheduleSafetyFactor bounds the amortization loop at this multiple of the
// nominal term. A schedule that has not reached zero by then does not
// amortize and is reported as a CalculationError, never truncated.
const scheduleSafetyFactor = 2

var (
	one         = decimal.NewFromInt(1)
	biweeklyNum = decimal.NewFromInt(26)
	biweeklyDen = decimal.NewFromInt(24)
)

// MonthlyPayment computes the level monthly payment for a loan via the
// amortizing-annuity formula. A zero-rate loan pays principal/term.
func MonthlyPayment(loan domain.LoanTerms) money.Cents {
	if loan.PrincipalCents == 0 {
		return 0
	}
	principal := loan.PrincipalCents.Decimal()
	if loan.AnnualRatePercent.IsZero() {
		return money.RoundDecimal(principal.Div(decimal.NewFromInt(int64(loan.TermMonths))))
	}
	rate := money.MonthlyRate(loan.AnnualRatePercent)
	pow := one.Add(rate).Pow(decimal.NewFromInt(int64(loan.TermMonths)))
	payment := principal.Mul(rate).Mul(pow).Div(pow.Sub(one))
	return money.RoundDecimal(payment)
}

// BuildSchedule generates the period-by-period payoff schedule for a loan,
// optionally altered by a PaymentModification. A nil or zero modification
// yields the standard level schedule with exactly TermMonths entries.
//
// Rounding reconciliation: iterative per-period rounding can leave a
// residual of a few cents at the nominal end of an unmodified schedule. The
// entire residual is folded into the final period's principal (and its
// scheduled payment), so the sum of principal across entries always equals
// the loan principal exactly and the final balance is exactly zero.
func BuildSchedule(loan domain.LoanTerms, mods *domain.PaymentModification) (*domain.AmortizationSchedule, error) {
	if err := loan.Validate(); err != nil {
		return nil, err
	}
	modified := mods != nil && !mods.IsZero()
	if mods != nil {
		if err := mods.Validate(loan.TermMonths); err != nil {
			return nil, err
		}
	}

	payment := MonthlyPayment(loan)
	if modified && mods.UseBiweekly {
		// 26 half payments per year spread across the monthly grid:
		// payment/2 * 26/12 = payment * 26/24.
		payment = money.RoundDecimal(payment.Decimal().Mul(biweeklyNum).Div(biweeklyDen))
	}

	monthlyRate := money.MonthlyRate(loan.AnnualRatePercent)
	maxPeriods := scheduleSafetyFactor * loan.TermMonths
	entries := make([]domain.AmortizationEntry, 0, loan.TermMonths)

	balance := loan.PrincipalCents
	var cumPrincipal, cumInterest money.Cents

	for n := 1; balance > 0; n++ {
		if n > maxPeriods {
			return nil, &CalculationError{
				Op: "build_schedule",
				Reason: fmt.Sprintf("balance of %d cents remains after %d periods (%dx the %d-month term); modification inputs do not amortize the loan",
					balance, maxPeriods, scheduleSafetyFactor, loan.TermMonths),
			}
		}

		interest := money.MulRate(balance, monthlyRate)
		scheduled := payment
		principal := payment - interest
		if modified {
			principal += mods.ExtraMonthlyPaymentCents
			if n == mods.OneTimePaymentMonth {
				principal += mods.OneTimePaymentCents
			}
		}

		// Final period: clamp overpayment to the remaining balance, and for
		// an unmodified schedule fold any rounding residual into the last
		// nominal period so the schedule is exactly TermMonths long.
		if principal >= balance || (!modified && n == loan.TermMonths) {
			principal = balance
			scheduled = principal + interest
		}

		ending := balance - principal
		cumPrincipal += principal
		cumInterest += interest
		entries = append(entries, domain.AmortizationEntry{
			PaymentNumber:            n,
			PaymentDate:              dateutil.PaymentDate(loan.StartDate, n),
			BeginningBalanceCents:    balance,
			ScheduledPaymentCents:    scheduled,
			PrincipalCents:           principal,
			InterestCents:            interest,
			EndingBalanceCents:       ending,
			CumulativePrincipalCents: cumPrincipal,
			CumulativeInterestCents:  cumInterest,
		})
		balance = ending
	}

	return &domain.AmortizationSchedule{
		Entries:             entries,
		MonthlyPaymentCents: payment,
		TotalInterestCents:  cumInterest,
		PayoffMonths:        len(entries),
	}, nil
}
