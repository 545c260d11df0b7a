package calculation

import (
	"github.com/fpgo/finance-projector/internal/domain"
	"github.com/fpgo/finance-projector/pkg/money"
	"github.com/shopspring/decimal"
)

// CompareMortgageVsInvest runs the pay-extra-principal vs invest-the-
// difference comparison year by year.
//
// Side A applies the extra payment to the loan. Its position is measured as
// after-tax interest saved against the unmodified baseline, plus the equity
// lead over the baseline balance, plus a portfolio: once side A's loan is
// paid off, the freed payment capacity (scheduled payment plus extra while
// the baseline schedule still runs, the extra alone afterwards) flows into
// the same investment vehicle as side B, so the two sides converge
// structurally instead of leaving a gap after payoff.
//
// Side B invests the extra amount every month at the expected return.
// Unrealized gains are taxed once at the capital-gains rate when valued, so
// each year point carries the after-tax liquidation value.
func CompareMortgageVsInvest(in domain.MortgageVsInvestInput) (*domain.MortgageVsInvestResult, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}

	baseline, err := BuildSchedule(in.Loan, nil)
	if err != nil {
		return nil, &CalculationError{Op: "compare_mortgage_invest", Reason: "baseline schedule failed", Cause: err}
	}
	modified := baseline
	if in.ExtraMonthlyPaymentCents > 0 {
		modified, err = BuildSchedule(in.Loan, &domain.PaymentModification{
			ExtraMonthlyPaymentCents: in.ExtraMonthlyPaymentCents,
		})
		if err != nil {
			return nil, &CalculationError{Op: "compare_mortgage_invest", Reason: "pay-extra schedule failed", Cause: err}
		}
	}

	growth := one.Add(money.MonthlyRate(in.ExpectedReturnPercent))
	capGainsRate := money.RateFromPercent(in.CapitalGainsTaxPercent)
	marginalRate := money.RateFromPercent(in.MarginalTaxRatePercent)
	months := in.HorizonYears * 12

	var investPortfolio, investContrib money.Cents
	var payExtraPortfolio, payExtraContrib money.Cents

	years := make([]domain.ComparisonYearPoint, 0, in.HorizonYears)
	for m := 1; m <= months; m++ {
		investPortfolio = money.MulRate(investPortfolio, growth) + in.ExtraMonthlyPaymentCents
		investContrib += in.ExtraMonthlyPaymentCents

		payExtraPortfolio = money.MulRate(payExtraPortfolio, growth)
		if m > modified.PayoffMonths {
			freed := in.ExtraMonthlyPaymentCents
			if m <= baseline.PayoffMonths {
				freed += modified.MonthlyPaymentCents
			}
			payExtraPortfolio += freed
			payExtraContrib += freed
		}

		if m%12 != 0 {
			continue
		}
		year := m / 12

		interestSaved := baseline.CumulativeInterestAfter(m) - modified.CumulativeInterestAfter(m)
		if in.MortgageInterestDeductible {
			// Paying down the loan forfeits the deduction on the avoided
			// interest; net out its marginal-rate value.
			interestSaved -= money.MulRate(interestSaved, marginalRate)
		}
		equityLead := baseline.BalanceAfter(m) - modified.BalanceAfter(m)

		payExtraValue := interestSaved + equityLead + afterTaxValue(payExtraPortfolio, payExtraContrib, capGainsRate)
		investAfterTax := afterTaxValue(investPortfolio, investContrib, capGainsRate)

		extraPrincipal := in.ExtraMonthlyPaymentCents * money.Cents(min(m, modified.PayoffMonths))
		years = append(years, domain.ComparisonYearPoint{
			Year:                       year,
			PayExtraContributionsCents: extraPrincipal + payExtraContrib,
			InterestSavedCents:         interestSaved,
			EquityLeadCents:            equityLead,
			PayExtraPortfolioCents:     payExtraPortfolio,
			PayExtraValueCents:         payExtraValue,
			InvestContributionsCents:   investContrib,
			InvestPortfolioCents:       investPortfolio,
			InvestAfterTaxCents:        investAfterTax,
			NetAdvantageCents:          investAfterTax - payExtraValue,
		})
	}

	final := years[len(years)-1]
	summary := domain.MortgageVsInvestSummary{
		HorizonYears:             in.HorizonYears,
		BaselinePayoffMonths:     baseline.PayoffMonths,
		ModifiedPayoffMonths:     modified.PayoffMonths,
		BaselineInterestCents:    baseline.TotalInterestCents,
		ModifiedInterestCents:    modified.TotalInterestCents,
		InterestSavedCents:       baseline.TotalInterestCents - modified.TotalInterestCents,
		FinalPayExtraValueCents:  final.PayExtraValueCents,
		FinalInvestAfterTaxCents: final.InvestAfterTaxCents,
		NetAdvantageCents:        final.NetAdvantageCents,
		Winner:                   winnerLabel(final.NetAdvantageCents, "invest", "pay_extra"),
	}

	return &domain.MortgageVsInvestResult{Years: years, Summary: summary}, nil
}

// afterTaxValue taxes unrealized gains once at the capital-gains rate,
// as if the portfolio were liquidated at that point.
func afterTaxValue(balance, contributions money.Cents, capGainsRate decimal.Decimal) money.Cents {
	gains := balance - contributions
	if gains <= 0 {
		return balance
	}
	return balance - money.MulRate(gains, capGainsRate)
}

func winnerLabel(netAdvantage money.Cents, positive, negative string) string {
	switch {
	case netAdvantage > 0:
		return positive
	case netAdvantage < 0:
		return negative
	default:
		return "tie"
	}
}
