package domain

import (
	"github.com/fpgo/finance-projector/pkg/money"
	"github.com/shopspring/decimal"
)

// Horizon bounds for every comparator. Callers cap work through the horizon
// parameter; there is no cancellation below this layer.
const (
	MinHorizonYears = 1
	MaxHorizonYears = 30
)

// ValidateHorizon checks a comparison horizon in years.
func ValidateHorizon(years int) error {
	ve := &ValidationError{}
	if years < MinHorizonYears || years > MaxHorizonYears {
		ve.Add("horizon_years", "must be within [%d, %d], got %d", MinHorizonYears, MaxHorizonYears, years)
	}
	return ve.OrNil()
}

// MortgageVsInvestInput parameterizes the pay-extra vs invest comparison.
type MortgageVsInvestInput struct {
	Loan                       LoanTerms       `yaml:"loan" json:"loan"`
	ExtraMonthlyPaymentCents   money.Cents     `yaml:"extra_monthly_payment_cents" json:"extraMonthlyPaymentCents"`
	ExpectedReturnPercent      decimal.Decimal `yaml:"expected_return_percent" json:"expectedReturnPercent"`
	CapitalGainsTaxPercent     decimal.Decimal `yaml:"capital_gains_tax_percent" json:"capitalGainsTaxPercent"`
	HorizonYears               int             `yaml:"horizon_years" json:"horizonYears"`
	MortgageInterestDeductible bool            `yaml:"mortgage_interest_deductible" json:"mortgageInterestDeductible"`
	MarginalTaxRatePercent     decimal.Decimal `yaml:"marginal_tax_rate_percent" json:"marginalTaxRatePercent"`
}

// Validate checks the comparison input as a whole.
func (in MortgageVsInvestInput) Validate() error {
	ve := &ValidationError{}
	if err := in.Loan.Validate(); err != nil {
		if sub, ok := err.(*ValidationError); ok {
			ve.Errors = append(ve.Errors, sub.Errors...)
		}
	}
	if in.ExtraMonthlyPaymentCents < 0 {
		ve.Add("extra_monthly_payment_cents", "must not be negative, got %d", in.ExtraMonthlyPaymentCents)
	}
	if in.CapitalGainsTaxPercent.IsNegative() {
		ve.Add("capital_gains_tax_percent", "must not be negative, got %s", in.CapitalGainsTaxPercent)
	}
	if in.MortgageInterestDeductible && in.MarginalTaxRatePercent.IsNegative() {
		ve.Add("marginal_tax_rate_percent", "must not be negative, got %s", in.MarginalTaxRatePercent)
	}
	if err := ValidateHorizon(in.HorizonYears); err != nil {
		if sub, ok := err.(*ValidationError); ok {
			ve.Errors = append(ve.Errors, sub.Errors...)
		}
	}
	return ve.OrNil()
}

// ComparisonYearPoint is one year of a two-sided strategy comparison. Side A
// is "pay extra principal"; side B is "invest the difference". NetAdvantage
// is B's after-tax value minus A's interest-saved-plus-equity position: a
// positive figure means investing wins through that year.
type ComparisonYearPoint struct {
	Year int `json:"year"`

	PayExtraContributionsCents money.Cents `json:"payExtraContributionsCents"`
	InterestSavedCents         money.Cents `json:"interestSavedCents"`
	EquityLeadCents            money.Cents `json:"equityLeadCents"`
	PayExtraPortfolioCents     money.Cents `json:"payExtraPortfolioCents"`
	PayExtraValueCents         money.Cents `json:"payExtraValueCents"`

	InvestContributionsCents money.Cents `json:"investContributionsCents"`
	InvestPortfolioCents     money.Cents `json:"investPortfolioCents"`
	InvestAfterTaxCents      money.Cents `json:"investAfterTaxCents"`

	NetAdvantageCents money.Cents `json:"netAdvantageCents"`
}

// MortgageVsInvestSummary aggregates the comparison's terminal state.
type MortgageVsInvestSummary struct {
	HorizonYears             int         `json:"horizonYears"`
	BaselinePayoffMonths     int         `json:"baselinePayoffMonths"`
	ModifiedPayoffMonths     int         `json:"modifiedPayoffMonths"`
	BaselineInterestCents    money.Cents `json:"baselineInterestCents"`
	ModifiedInterestCents    money.Cents `json:"modifiedInterestCents"`
	InterestSavedCents       money.Cents `json:"interestSavedCents"`
	FinalPayExtraValueCents  money.Cents `json:"finalPayExtraValueCents"`
	FinalInvestAfterTaxCents money.Cents `json:"finalInvestAfterTaxCents"`
	NetAdvantageCents        money.Cents `json:"netAdvantageCents"`
	Winner                   string      `json:"winner"`
}

// MortgageVsInvestResult is the yearly series plus summary.
type MortgageVsInvestResult struct {
	Years   []ComparisonYearPoint   `json:"years"`
	Summary MortgageVsInvestSummary `json:"summary"`
}

// BuyParams describes the ownership side of a rent-vs-buy comparison.
// The *RatePercent fields are annual rates applied to the projected home
// value.
type BuyParams struct {
	HomePriceCents          money.Cents     `yaml:"home_price_cents" json:"homePriceCents"`
	DownPaymentCents        money.Cents     `yaml:"down_payment_cents" json:"downPaymentCents"`
	ClosingCostsCents       money.Cents     `yaml:"closing_costs_cents" json:"closingCostsCents"`
	MortgageRatePercent     decimal.Decimal `yaml:"mortgage_rate_percent" json:"mortgageRatePercent"`
	TermMonths              int             `yaml:"term_months" json:"termMonths"`
	PropertyTaxRatePercent  decimal.Decimal `yaml:"property_tax_rate_percent" json:"propertyTaxRatePercent"`
	InsuranceRatePercent    decimal.Decimal `yaml:"insurance_rate_percent" json:"insuranceRatePercent"`
	MaintenanceRatePercent  decimal.Decimal `yaml:"maintenance_rate_percent" json:"maintenanceRatePercent"`
	AppreciationRatePercent decimal.Decimal `yaml:"appreciation_rate_percent" json:"appreciationRatePercent"`
}

// Validate checks the buy-side parameters.
func (bp BuyParams) Validate() error {
	ve := &ValidationError{}
	if bp.HomePriceCents <= 0 {
		ve.Add("home_price_cents", "must be positive, got %d", bp.HomePriceCents)
	}
	if bp.DownPaymentCents < 0 {
		ve.Add("down_payment_cents", "must not be negative, got %d", bp.DownPaymentCents)
	}
	if bp.DownPaymentCents > bp.HomePriceCents {
		ve.Add("down_payment_cents", "must not exceed home price (%d), got %d", bp.HomePriceCents, bp.DownPaymentCents)
	}
	if bp.ClosingCostsCents < 0 {
		ve.Add("closing_costs_cents", "must not be negative, got %d", bp.ClosingCostsCents)
	}
	if bp.TermMonths <= 0 {
		ve.Add("term_months", "must be positive, got %d", bp.TermMonths)
	}
	if bp.MortgageRatePercent.IsNegative() {
		ve.Add("mortgage_rate_percent", "must not be negative, got %s", bp.MortgageRatePercent)
	}
	for _, r := range []struct {
		field string
		rate  decimal.Decimal
	}{
		{"property_tax_rate_percent", bp.PropertyTaxRatePercent},
		{"insurance_rate_percent", bp.InsuranceRatePercent},
		{"maintenance_rate_percent", bp.MaintenanceRatePercent},
	} {
		if r.rate.IsNegative() {
			ve.Add(r.field, "must not be negative, got %s", r.rate)
		}
	}
	return ve.OrNil()
}

// RentParams describes the renting side of a rent-vs-buy comparison.
type RentParams struct {
	MonthlyRentCents        money.Cents     `yaml:"monthly_rent_cents" json:"monthlyRentCents"`
	AnnualIncreasePercent   decimal.Decimal `yaml:"annual_increase_percent" json:"annualIncreasePercent"`
	InvestmentReturnPercent decimal.Decimal `yaml:"investment_return_percent" json:"investmentReturnPercent"`
}

// Validate checks the rent-side parameters.
func (rp RentParams) Validate() error {
	ve := &ValidationError{}
	if rp.MonthlyRentCents <= 0 {
		ve.Add("monthly_rent_cents", "must be positive, got %d", rp.MonthlyRentCents)
	}
	return ve.OrNil()
}

// RentVsBuyYearPoint is one year of the ownership-vs-renting comparison.
// NetAdvantage is the buy position minus the rent position: positive means
// buying is ahead through that year.
type RentVsBuyYearPoint struct {
	Year int `json:"year"`

	HomeValueCents         money.Cents `json:"homeValueCents"`
	MortgageBalanceCents   money.Cents `json:"mortgageBalanceCents"`
	BuyEquityCents         money.Cents `json:"buyEquityCents"`
	BuyCumulativeCostCents money.Cents `json:"buyCumulativeCostCents"`

	RentPortfolioCents      money.Cents `json:"rentPortfolioCents"`
	RentCumulativeCostCents money.Cents `json:"rentCumulativeCostCents"`

	NetAdvantageCents money.Cents `json:"netAdvantageCents"`
}

// RentVsBuySummary aggregates the rent-vs-buy outcome. BreakEvenYear is the
// first year the sign of the net advantage flips, or zero when it never
// does.
type RentVsBuySummary struct {
	HorizonYears           int         `json:"horizonYears"`
	BreakEvenYear          int         `json:"breakEvenYear"`
	TerminalAdvantageCents money.Cents `json:"terminalAdvantageCents"`
	Winner                 string      `json:"winner"`
}

// RentVsBuyResult is the yearly series plus summary.
type RentVsBuyResult struct {
	Years   []RentVsBuyYearPoint `json:"years"`
	Summary RentVsBuySummary     `json:"summary"`
}
