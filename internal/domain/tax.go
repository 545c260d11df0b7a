package domain

import (
	"github.com/fpgo/finance-projector/pkg/money"
	"github.com/shopspring/decimal"
)

// TaxBracket is one band of a progressive tax table. MaxCents of nil marks
// the unbounded top bracket, legal only in the last position.
type TaxBracket struct {
	MinCents    money.Cents     `yaml:"min_cents" json:"minCents"`
	MaxCents    *money.Cents    `yaml:"max_cents" json:"maxCents"`
	RatePercent decimal.Decimal `yaml:"rate_percent" json:"ratePercent"`
}

// ValidateBrackets checks that a bracket table is ordered ascending,
// partitions [0, inf) with no gaps or overlaps, and keeps the unbounded
// bracket last. A malformed table is an input failure, never silently
// corrected.
func ValidateBrackets(brackets []TaxBracket) error {
	ve := &ValidationError{}
	if len(brackets) == 0 {
		ve.Add("brackets", "at least one bracket is required")
		return ve.OrNil()
	}
	if brackets[0].MinCents != 0 {
		ve.Add("brackets[0].min_cents", "first bracket must start at 0, got %d", brackets[0].MinCents)
	}
	for i, b := range brackets {
		if b.RatePercent.IsNegative() {
			ve.Add("brackets", "bracket %d rate must not be negative, got %s", i, b.RatePercent)
		}
		last := i == len(brackets)-1
		if b.MaxCents == nil {
			if !last {
				ve.Add("brackets", "bracket %d is unbounded but not last", i)
			}
			continue
		}
		if *b.MaxCents <= b.MinCents {
			ve.Add("brackets", "bracket %d max (%d) must exceed min (%d)", i, *b.MaxCents, b.MinCents)
		}
		if !last && brackets[i+1].MinCents != *b.MaxCents {
			ve.Add("brackets", "bracket %d ends at %d but bracket %d starts at %d", i, *b.MaxCents, i+1, brackets[i+1].MinCents)
		}
		if last {
			ve.Add("brackets", "last bracket must be unbounded (max_cents omitted)")
		}
	}
	return ve.OrNil()
}

// TaxBracketInfo reports the tax attributable to income falling inside a
// single bracket.
type TaxBracketInfo struct {
	MinCents          money.Cents     `json:"minCents"`
	MaxCents          *money.Cents    `json:"maxCents"`
	RatePercent       decimal.Decimal `json:"ratePercent"`
	TaxedAmountCents  money.Cents     `json:"taxedAmountCents"`
	TaxInBracketCents money.Cents     `json:"taxInBracketCents"`
}

// TaxResult is the full progressive-tax breakdown for one income figure.
type TaxResult struct {
	TaxableIncomeCents   money.Cents      `json:"taxableIncomeCents"`
	TotalTaxCents        money.Cents      `json:"totalTaxCents"`
	MarginalRatePercent  decimal.Decimal  `json:"marginalRatePercent"`
	EffectiveRatePercent decimal.Decimal  `json:"effectiveRatePercent"`
	PerBracket           []TaxBracketInfo `json:"perBracket"`
}
