package domain

import (
	"time"

	"github.com/fpgo/finance-projector/pkg/money"
	"github.com/shopspring/decimal"
)

// Asset is a growing balance: investment account, property, cash reserve.
type Asset struct {
	Name         string           `yaml:"name" json:"name"`
	BalanceCents money.Cents      `yaml:"balance_cents" json:"balanceCents"`
	Growth       GrowthAssumption `yaml:"growth" json:"growth"`
}

// Liability is an owed balance that accrues interest and is paid down by a
// fixed monthly payment. The projected balance never drops below zero.
type Liability struct {
	Name                string          `yaml:"name" json:"name"`
	BalanceCents        money.Cents     `yaml:"balance_cents" json:"balanceCents"`
	AnnualRatePercent   decimal.Decimal `yaml:"annual_rate_percent" json:"annualRatePercent"`
	MonthlyPaymentCents money.Cents     `yaml:"monthly_payment_cents" json:"monthlyPaymentCents"`
}

// CashFlowSeriesName keys the accumulated-cash-flow series in a net-worth
// projection's asset series. The name is reserved; no asset may use it.
const CashFlowSeriesName = "net cash flow"

// CashFlow is a recurring monthly amount: positive for income, negative for
// an expense.
type CashFlow struct {
	Name               string      `yaml:"name" json:"name"`
	MonthlyAmountCents money.Cents `yaml:"monthly_amount_cents" json:"monthlyAmountCents"`
}

// Snapshot is a household's financial position at a point in time. It is the
// base input for net-worth projections and scenario comparisons; calculators
// never mutate it.
type Snapshot struct {
	AsOf        time.Time   `yaml:"as_of" json:"asOf"`
	Assets      []Asset     `yaml:"assets" json:"assets"`
	Liabilities []Liability `yaml:"liabilities" json:"liabilities"`
	CashFlows   []CashFlow  `yaml:"cash_flows" json:"cashFlows"`
}

// DeepCopy returns an independent copy of the snapshot. Scenario overrides
// apply to copies so the base snapshot survives a multi-scenario comparison
// untouched.
func (s *Snapshot) DeepCopy() *Snapshot {
	cp := &Snapshot{AsOf: s.AsOf}
	cp.Assets = make([]Asset, len(s.Assets))
	copy(cp.Assets, s.Assets)
	cp.Liabilities = make([]Liability, len(s.Liabilities))
	copy(cp.Liabilities, s.Liabilities)
	cp.CashFlows = make([]CashFlow, len(s.CashFlows))
	copy(cp.CashFlows, s.CashFlows)
	return cp
}

// MonthlyNetCashFlowCents sums all recurring cash flows.
func (s *Snapshot) MonthlyNetCashFlowCents() money.Cents {
	var total money.Cents
	for _, cf := range s.CashFlows {
		total += cf.MonthlyAmountCents
	}
	return total
}

// Validate checks every entity in the snapshot. Entity names must be unique
// within their kind: projections key per-entity series by name and scenario
// overrides target entities by name, so a duplicate is ambiguous input, not
// something to resolve silently.
func (s *Snapshot) Validate() error {
	ve := &ValidationError{}
	assetNames := make(map[string]bool, len(s.Assets))
	for i, a := range s.Assets {
		if a.Name == "" {
			ve.Add("assets", "asset %d: name is required", i)
		} else if assetNames[a.Name] {
			ve.Add("assets", "asset %d: duplicate name %q", i, a.Name)
		}
		assetNames[a.Name] = true
		if a.Name == CashFlowSeriesName {
			ve.Add("assets", "asset %d: name %q is reserved for the cash-flow series", i, a.Name)
		}
		if a.BalanceCents < 0 {
			ve.Add("assets", "asset %d (%s): balance must not be negative, got %d", i, a.Name, a.BalanceCents)
		}
	}
	liabilityNames := make(map[string]bool, len(s.Liabilities))
	for i, l := range s.Liabilities {
		if l.Name == "" {
			ve.Add("liabilities", "liability %d: name is required", i)
		} else if liabilityNames[l.Name] {
			ve.Add("liabilities", "liability %d: duplicate name %q", i, l.Name)
		}
		liabilityNames[l.Name] = true
		if l.BalanceCents < 0 {
			ve.Add("liabilities", "liability %d (%s): balance must not be negative, got %d", i, l.Name, l.BalanceCents)
		}
		if l.AnnualRatePercent.IsNegative() {
			ve.Add("liabilities", "liability %d (%s): rate must not be negative, got %s", i, l.Name, l.AnnualRatePercent)
		}
		if l.MonthlyPaymentCents < 0 {
			ve.Add("liabilities", "liability %d (%s): payment must not be negative, got %d", i, l.Name, l.MonthlyPaymentCents)
		}
	}
	cashFlowNames := make(map[string]bool, len(s.CashFlows))
	for i, cf := range s.CashFlows {
		if cf.Name == "" {
			ve.Add("cash_flows", "cash flow %d: name is required", i)
		} else if cashFlowNames[cf.Name] {
			ve.Add("cash_flows", "cash flow %d: duplicate name %q", i, cf.Name)
		}
		cashFlowNames[cf.Name] = true
	}
	return ve.OrNil()
}

// NetWorthPoint is one month of a projected net-worth trajectory.
type NetWorthPoint struct {
	Month            int         `json:"month"`
	AssetsCents      money.Cents `json:"assetsCents"`
	LiabilitiesCents money.Cents `json:"liabilitiesCents"`
	NetWorthCents    money.Cents `json:"netWorthCents"`
}

// NetWorthProjection is the netted monthly trajectory plus the per-entity
// series it was derived from.
type NetWorthProjection struct {
	Points           []NetWorthPoint          `json:"points"`
	AssetSeries      map[string][]money.Cents `json:"assetSeries"`
	LiabilitySeries  map[string][]money.Cents `json:"liabilitySeries"`
	StartNetWorth    money.Cents              `json:"startNetWorthCents"`
	TerminalNetWorth money.Cents              `json:"terminalNetWorthCents"`
}
