// Package money provides integer-cent monetary arithmetic with a single
// deterministic rounding rule shared by every calculator.
package money

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Cents is a monetary amount in integer minor units. All engine math is
// performed on Cents; floating-point dollars never appear inside the engine.
type Cents int64

var (
	hundred = decimal.NewFromInt(100)
	twelve  = decimal.NewFromInt(12)
)

// RateFromPercent converts a percent-as-number (7.25 for 7.25%) to a
// multiplicative rate (0.0725).
func RateFromPercent(percent decimal.Decimal) decimal.Decimal {
	return percent.Div(hundred)
}

// MonthlyRate converts an annual percent-as-number to a monthly
// multiplicative rate (annual/12/100).
func MonthlyRate(annualPercent decimal.Decimal) decimal.Decimal {
	return annualPercent.Div(twelve).Div(hundred)
}

// MulRate multiplies an amount by a rate and rounds to the nearest cent,
// half away from zero. This is the engine's only rounding rule; every
// calculator routes rate multiplication through it so that identical inputs
// always produce identical cents.
func MulRate(c Cents, rate decimal.Decimal) Cents {
	return Cents(decimal.NewFromInt(int64(c)).Mul(rate).Round(0).IntPart())
}

// RoundDecimal rounds a decimal cent amount to whole cents, half away from
// zero. Used where a calculator derives cents from a closed-form formula
// (level payments, required contributions) rather than a rate product.
func RoundDecimal(d decimal.Decimal) Cents {
	return Cents(d.Round(0).IntPart())
}

// Decimal returns the amount as a decimal number of cents.
func (c Cents) Decimal() decimal.Decimal {
	return decimal.NewFromInt(int64(c))
}

// Dollars returns the amount as a decimal number of dollars. Presentation
// only; calculators never consume this.
func (c Cents) Dollars() decimal.Decimal {
	return decimal.New(int64(c), -2)
}

// String formats the amount as a plain dollar string, e.g. "1234.56".
func (c Cents) String() string {
	return c.Dollars().StringFixed(2)
}

// Format formats the amount for display with a currency symbol.
func (c Cents) Format() string {
	if c < 0 {
		return fmt.Sprintf("-$%s", (-c).Dollars().StringFixed(2))
	}
	return "$" + c.Dollars().StringFixed(2)
}

// Min returns the smaller of two amounts.
func Min(a, b Cents) Cents {
	if a < b {
		return a
	}
	return b
}

// Max returns the larger of two amounts.
func Max(a, b Cents) Cents {
	if a > b {
		return a
	}
	return b
}

// Abs returns the absolute value of the amount.
func Abs(c Cents) Cents {
	if c < 0 {
		return -c
	}
	return c
}
