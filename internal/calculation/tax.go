package calculation

import (
	"github.com/fpgo/finance-projector/internal/domain"
	"github.com/fpgo/finance-projector/pkg/money"
	"github.com/shopspring/decimal"
)

// ComputeTax walks a progressive bracket table and returns the total tax,
// marginal rate, effective rate, and a per-bracket breakdown. The sum of the
// per-bracket amounts always equals the total. Income at or below zero
// produces an all-zero result.
func ComputeTax(incomeCents money.Cents, brackets []domain.TaxBracket) (*domain.TaxResult, error) {
	if err := domain.ValidateBrackets(brackets); err != nil {
		return nil, err
	}

	result := &domain.TaxResult{
		TaxableIncomeCents:   incomeCents,
		MarginalRatePercent:  decimal.Zero,
		EffectiveRatePercent: decimal.Zero,
	}
	if incomeCents <= 0 {
		return result, nil
	}

	for _, b := range brackets {
		if incomeCents <= b.MinCents {
			break
		}
		upper := incomeCents
		if b.MaxCents != nil {
			upper = money.Min(incomeCents, *b.MaxCents)
		}
		taxed := upper - b.MinCents
		tax := money.MulRate(taxed, money.RateFromPercent(b.RatePercent))

		result.PerBracket = append(result.PerBracket, domain.TaxBracketInfo{
			MinCents:          b.MinCents,
			MaxCents:          b.MaxCents,
			RatePercent:       b.RatePercent,
			TaxedAmountCents:  taxed,
			TaxInBracketCents: tax,
		})
		result.TotalTaxCents += tax

		// The bracket holding the topmost dollar sets the marginal rate.
		if b.MaxCents == nil || incomeCents <= *b.MaxCents {
			result.MarginalRatePercent = b.RatePercent
		}
	}

	result.EffectiveRatePercent = result.TotalTaxCents.Decimal().
		Div(incomeCents.Decimal()).
		Mul(decimal.NewFromInt(100))
	return result, nil
}
