package calculation

import (
	"github.com/fpgo/finance-projector/internal/domain"
	"github.com/fpgo/finance-projector/pkg/money"
)

// CompareRentVsBuy runs the own-vs-rent comparison year by year.
//
// The buy side amortizes the mortgage, pays carrying costs (property tax,
// insurance, maintenance as annual rates of the projected home value), and
// holds equity of home value minus remaining balance. The rent side pays an
// annually escalating rent and invests the cash-flow delta against owning
// (the upfront down payment and closing costs plus each month's cost
// differential) at the configured return. A month where renting costs more
// than owning draws the differential back out of the portfolio.
func CompareRentVsBuy(buy domain.BuyParams, rent domain.RentParams, horizonYears int) (*domain.RentVsBuyResult, error) {
	ve := &domain.ValidationError{}
	for _, err := range []error{buy.Validate(), rent.Validate(), domain.ValidateHorizon(horizonYears)} {
		if sub, ok := err.(*domain.ValidationError); ok && err != nil {
			ve.Errors = append(ve.Errors, sub.Errors...)
		}
	}
	if err := ve.OrNil(); err != nil {
		return nil, err
	}

	loan := domain.LoanTerms{
		PrincipalCents:    buy.HomePriceCents - buy.DownPaymentCents,
		AnnualRatePercent: buy.MortgageRatePercent,
		TermMonths:        buy.TermMonths,
	}
	schedule, err := BuildSchedule(loan, nil)
	if err != nil {
		return nil, &CalculationError{Op: "compare_rent_buy", Reason: "buy-side mortgage schedule failed", Cause: err}
	}

	appreciation := one.Add(money.MonthlyRate(buy.AppreciationRatePercent))
	carryingRate := money.MonthlyRate(buy.PropertyTaxRatePercent.
		Add(buy.InsuranceRatePercent).
		Add(buy.MaintenanceRatePercent))
	investGrowth := one.Add(money.MonthlyRate(rent.InvestmentReturnPercent))
	rentEscalation := one.Add(money.RateFromPercent(rent.AnnualIncreasePercent))

	months := horizonYears * 12
	homeValue := buy.HomePriceCents
	portfolio := buy.DownPaymentCents + buy.ClosingCostsCents
	monthlyRent := rent.MonthlyRentCents
	var buyCumCost, rentCumCost money.Cents

	years := make([]domain.RentVsBuyYearPoint, 0, horizonYears)
	for m := 1; m <= months; m++ {
		homeValue = money.MulRate(homeValue, appreciation)
		carrying := money.MulRate(homeValue, carryingRate)

		var mortgagePayment money.Cents
		if m <= len(schedule.Entries) {
			mortgagePayment = schedule.Entries[m-1].ScheduledPaymentCents
		}
		ownCost := mortgagePayment + carrying
		buyCumCost += ownCost
		rentCumCost += monthlyRent

		// The renter banks whatever owning would have cost beyond rent.
		delta := ownCost - monthlyRent
		portfolio = money.MulRate(portfolio, investGrowth) + delta

		if m%12 == 0 {
			equity := homeValue - schedule.BalanceAfter(m)
			years = append(years, domain.RentVsBuyYearPoint{
				Year:                    m / 12,
				HomeValueCents:          homeValue,
				MortgageBalanceCents:    schedule.BalanceAfter(m),
				BuyEquityCents:          equity,
				BuyCumulativeCostCents:  buyCumCost,
				RentPortfolioCents:      portfolio,
				RentCumulativeCostCents: rentCumCost,
				NetAdvantageCents:       equity - portfolio,
			})
			monthlyRent = money.MulRate(monthlyRent, rentEscalation)
		}
	}

	final := years[len(years)-1]
	summary := domain.RentVsBuySummary{
		HorizonYears:           horizonYears,
		BreakEvenYear:          breakEvenYear(years),
		TerminalAdvantageCents: final.NetAdvantageCents,
		Winner:                 winnerLabel(final.NetAdvantageCents, "buy", "rent"),
	}

	return &domain.RentVsBuyResult{Years: years, Summary: summary}, nil
}

// breakEvenYear returns the first year the net advantage changes sign
// relative to the first year, or 0 when it never flips.
func breakEvenYear(years []domain.RentVsBuyYearPoint) int {
	if len(years) == 0 {
		return 0
	}
	firstSign := sign(years[0].NetAdvantageCents)
	if firstSign == 0 {
		return 0
	}
	for _, y := range years[1:] {
		if s := sign(y.NetAdvantageCents); s != 0 && s != firstSign {
			return y.Year
		}
	}
	return 0
}

func sign(c money.Cents) int {
	switch {
	case c > 0:
		return 1
	case c < 0:
		return -1
	default:
		return 0
	}
}
