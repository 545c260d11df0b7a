// Package scenario defines composable snapshot overrides. A scenario is a
// named list of overrides applied to a base snapshot before projection,
// which is how "what if" comparisons (raise the savings rate, pay the car
// off, drop an income stream) are expressed.
package scenario

import (
	"fmt"

	"github.com/fpgo/finance-projector/internal/domain"
	"github.com/fpgo/finance-projector/pkg/money"
	"github.com/shopspring/decimal"
)

// Override transforms a snapshot in one predictable way. Implementations
// never mutate the input; Apply returns a modified copy. Overrides are
// strongly typed per target entity; there is no string-keyed field
// coercion; unknown fields fail at configuration parse time.
type Override interface {
	// Name returns a short identifier for diagnostics, e.g. "asset:brokerage".
	Name() string

	// Validate checks the override against the base snapshot without
	// applying it.
	Validate(base *domain.Snapshot) error

	// Apply returns a new snapshot with the override applied.
	Apply(base *domain.Snapshot) (*domain.Snapshot, error)
}

// Scenario is a named set of overrides applied in order.
type Scenario struct {
	Name      string
	Overrides []Override
}

// Apply runs a sequence of overrides against a base snapshot, each receiving
// the output of the previous one. The base snapshot is never modified.
func Apply(base *domain.Snapshot, overrides []Override) (*domain.Snapshot, error) {
	if base == nil {
		return nil, fmt.Errorf("base snapshot cannot be nil")
	}
	current := base.DeepCopy()
	for i, ov := range overrides {
		if ov == nil {
			return nil, fmt.Errorf("override at index %d is nil", i)
		}
		if err := ov.Validate(current); err != nil {
			return nil, &OverrideError{Override: ov.Name(), Reason: "validation failed", Err: err}
		}
		next, err := ov.Apply(current)
		if err != nil {
			return nil, &OverrideError{Override: ov.Name(), Reason: "apply failed", Err: err}
		}
		current = next
	}
	return current, nil
}

// OverrideError reports a failed override application.
type OverrideError struct {
	Override string
	Reason   string
	Err      error
}

func (e *OverrideError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("override %s: %s: %v", e.Override, e.Reason, e.Err)
	}
	return fmt.Sprintf("override %s: %s", e.Override, e.Reason)
}

func (e *OverrideError) Unwrap() error {
	return e.Err
}

// AssetOverride retargets one asset's balance, growth rate, or monthly
// contribution. Nil fields are left untouched.
type AssetOverride struct {
	AssetName                string
	BalanceCents             *money.Cents
	AnnualRatePercent        *decimal.Decimal
	MonthlyContributionCents *money.Cents
}

func (o *AssetOverride) Name() string { return "asset:" + o.AssetName }

func (o *AssetOverride) Validate(base *domain.Snapshot) error {
	if o.BalanceCents != nil && *o.BalanceCents < 0 {
		return fmt.Errorf("balance must not be negative, got %d", *o.BalanceCents)
	}
	if findAsset(base, o.AssetName) < 0 {
		return fmt.Errorf("asset %q not found in snapshot", o.AssetName)
	}
	return nil
}

func (o *AssetOverride) Apply(base *domain.Snapshot) (*domain.Snapshot, error) {
	next := base.DeepCopy()
	i := findAsset(next, o.AssetName)
	if i < 0 {
		return nil, fmt.Errorf("asset %q not found in snapshot", o.AssetName)
	}
	if o.BalanceCents != nil {
		next.Assets[i].BalanceCents = *o.BalanceCents
	}
	if o.AnnualRatePercent != nil {
		next.Assets[i].Growth.AnnualRatePercent = *o.AnnualRatePercent
	}
	if o.MonthlyContributionCents != nil {
		next.Assets[i].Growth.MonthlyContributionCents = *o.MonthlyContributionCents
	}
	return next, nil
}

// LiabilityOverride retargets one liability's balance, rate, or payment.
type LiabilityOverride struct {
	LiabilityName       string
	BalanceCents        *money.Cents
	AnnualRatePercent   *decimal.Decimal
	MonthlyPaymentCents *money.Cents
}

func (o *LiabilityOverride) Name() string { return "liability:" + o.LiabilityName }

func (o *LiabilityOverride) Validate(base *domain.Snapshot) error {
	if o.BalanceCents != nil && *o.BalanceCents < 0 {
		return fmt.Errorf("balance must not be negative, got %d", *o.BalanceCents)
	}
	if o.MonthlyPaymentCents != nil && *o.MonthlyPaymentCents < 0 {
		return fmt.Errorf("payment must not be negative, got %d", *o.MonthlyPaymentCents)
	}
	if findLiability(base, o.LiabilityName) < 0 {
		return fmt.Errorf("liability %q not found in snapshot", o.LiabilityName)
	}
	return nil
}

func (o *LiabilityOverride) Apply(base *domain.Snapshot) (*domain.Snapshot, error) {
	next := base.DeepCopy()
	i := findLiability(next, o.LiabilityName)
	if i < 0 {
		return nil, fmt.Errorf("liability %q not found in snapshot", o.LiabilityName)
	}
	if o.BalanceCents != nil {
		next.Liabilities[i].BalanceCents = *o.BalanceCents
	}
	if o.AnnualRatePercent != nil {
		next.Liabilities[i].AnnualRatePercent = *o.AnnualRatePercent
	}
	if o.MonthlyPaymentCents != nil {
		next.Liabilities[i].MonthlyPaymentCents = *o.MonthlyPaymentCents
	}
	return next, nil
}

// CashFlowOverride retargets one recurring cash flow's monthly amount.
type CashFlowOverride struct {
	CashFlowName       string
	MonthlyAmountCents *money.Cents
}

func (o *CashFlowOverride) Name() string { return "cash_flow:" + o.CashFlowName }

func (o *CashFlowOverride) Validate(base *domain.Snapshot) error {
	if findCashFlow(base, o.CashFlowName) < 0 {
		return fmt.Errorf("cash flow %q not found in snapshot", o.CashFlowName)
	}
	return nil
}

func (o *CashFlowOverride) Apply(base *domain.Snapshot) (*domain.Snapshot, error) {
	next := base.DeepCopy()
	i := findCashFlow(next, o.CashFlowName)
	if i < 0 {
		return nil, fmt.Errorf("cash flow %q not found in snapshot", o.CashFlowName)
	}
	if o.MonthlyAmountCents != nil {
		next.CashFlows[i].MonthlyAmountCents = *o.MonthlyAmountCents
	}
	return next, nil
}

func findAsset(s *domain.Snapshot, name string) int {
	for i := range s.Assets {
		if s.Assets[i].Name == name {
			return i
		}
	}
	return -1
}

func findLiability(s *domain.Snapshot, name string) int {
	for i := range s.Liabilities {
		if s.Liabilities[i].Name == name {
			return i
		}
	}
	return -1
}

func findCashFlow(s *domain.Snapshot, name string) int {
	for i := range s.CashFlows {
		if s.CashFlows[i].Name == name {
			return i
		}
	}
	return -1
}
