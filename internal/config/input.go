package config

import (
	"fmt"
	"os"

	"github.com/fpgo/finance-projector/internal/domain"
	"github.com/fpgo/finance-projector/internal/scenario"
	"github.com/fpgo/finance-projector/pkg/money"
	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

// Configuration is the full YAML input: the household snapshot, a tax
// table, named loans, goals, and scenario definitions. Every section is
// optional except the pieces a given command needs.
type Configuration struct {
	Snapshot    domain.Snapshot     `yaml:"snapshot"`
	TaxBrackets []domain.TaxBracket `yaml:"tax_brackets"`
	Loans       []NamedLoan         `yaml:"loans"`
	Goals       []GoalSpec          `yaml:"goals"`
	Scenarios   []ScenarioSpec      `yaml:"scenarios"`

	MortgageVsInvest *domain.MortgageVsInvestInput `yaml:"mortgage_vs_invest"`
	RentVsBuy        *RentVsBuySpec                `yaml:"rent_vs_buy"`
}

// NamedLoan pairs loan terms with an optional payment modification.
type NamedLoan struct {
	Name         string                      `yaml:"name"`
	Terms        domain.LoanTerms            `yaml:"terms"`
	Modification *domain.PaymentModification `yaml:"modification"`
}

// GoalSpec pairs a goal with its projection assumption.
type GoalSpec struct {
	Goal                 domain.Goal     `yaml:"goal"`
	AssumedReturnPercent decimal.Decimal `yaml:"assumed_return_percent"`
}

// RentVsBuySpec bundles both sides of a rent-vs-buy comparison.
type RentVsBuySpec struct {
	Buy          domain.BuyParams  `yaml:"buy"`
	Rent         domain.RentParams `yaml:"rent"`
	HorizonYears int               `yaml:"horizon_years"`
}

// ScenarioSpec is the YAML form of a scenario: a name and a list of tagged
// override specs.
type ScenarioSpec struct {
	Name      string         `yaml:"name"`
	Overrides []OverrideSpec `yaml:"overrides"`
}

// OverrideSpec is the on-disk form of one override. Target selects the
// variant; the value fields that apply depend on the target and any field
// that does not belong to the target is rejected at resolve time rather
// than coerced.
type OverrideSpec struct {
	Target string `yaml:"target"` // asset | liability | cash_flow
	Name   string `yaml:"name"`

	BalanceCents             *money.Cents     `yaml:"balance_cents"`
	AnnualRatePercent        *decimal.Decimal `yaml:"annual_rate_percent"`
	MonthlyContributionCents *money.Cents     `yaml:"monthly_contribution_cents"`
	MonthlyPaymentCents      *money.Cents     `yaml:"monthly_payment_cents"`
	MonthlyAmountCents       *money.Cents     `yaml:"monthly_amount_cents"`
}

// Resolve converts the spec into its strongly-typed override variant.
func (spec OverrideSpec) Resolve() (scenario.Override, error) {
	if spec.Name == "" {
		return nil, fmt.Errorf("override name is required")
	}
	switch spec.Target {
	case "asset":
		if spec.MonthlyPaymentCents != nil || spec.MonthlyAmountCents != nil {
			return nil, fmt.Errorf("asset override %q: monthly_payment_cents and monthly_amount_cents do not apply to assets", spec.Name)
		}
		return &scenario.AssetOverride{
			AssetName:                spec.Name,
			BalanceCents:             spec.BalanceCents,
			AnnualRatePercent:        spec.AnnualRatePercent,
			MonthlyContributionCents: spec.MonthlyContributionCents,
		}, nil
	case "liability":
		if spec.MonthlyContributionCents != nil || spec.MonthlyAmountCents != nil {
			return nil, fmt.Errorf("liability override %q: monthly_contribution_cents and monthly_amount_cents do not apply to liabilities", spec.Name)
		}
		return &scenario.LiabilityOverride{
			LiabilityName:       spec.Name,
			BalanceCents:        spec.BalanceCents,
			AnnualRatePercent:   spec.AnnualRatePercent,
			MonthlyPaymentCents: spec.MonthlyPaymentCents,
		}, nil
	case "cash_flow":
		if spec.BalanceCents != nil || spec.AnnualRatePercent != nil || spec.MonthlyContributionCents != nil || spec.MonthlyPaymentCents != nil {
			return nil, fmt.Errorf("cash flow override %q: only monthly_amount_cents applies to cash flows", spec.Name)
		}
		return &scenario.CashFlowOverride{
			CashFlowName:       spec.Name,
			MonthlyAmountCents: spec.MonthlyAmountCents,
		}, nil
	default:
		return nil, fmt.Errorf("override %q: unknown target %q (want asset, liability, or cash_flow)", spec.Name, spec.Target)
	}
}

// ResolveScenario converts a scenario spec into a resolved scenario.
// Resolution happens once at load time; calculators only ever see the typed
// variants.
func (ss ScenarioSpec) ResolveScenario() (scenario.Scenario, error) {
	sc := scenario.Scenario{Name: ss.Name}
	if ss.Name == "" {
		return sc, fmt.Errorf("scenario name is required")
	}
	for i, spec := range ss.Overrides {
		ov, err := spec.Resolve()
		if err != nil {
			return sc, fmt.Errorf("scenario %s override %d: %w", ss.Name, i, err)
		}
		sc.Overrides = append(sc.Overrides, ov)
	}
	return sc, nil
}

// InputParser handles parsing of input configuration files.
type InputParser struct{}

// NewInputParser creates a new input parser.
func NewInputParser() *InputParser {
	return &InputParser{}
}

// LoadFromFile loads and validates a configuration from a YAML file.
func (ip *InputParser) LoadFromFile(filename string) (*Configuration, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", filename, err)
	}
	return ip.Parse(data)
}

// Parse unmarshals and validates configuration bytes.
func (ip *InputParser) Parse(data []byte) (*Configuration, error) {
	var config Configuration
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}
	if err := ip.ValidateConfiguration(&config); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}
	return &config, nil
}

// ValidateConfiguration runs every section's validation gate before any
// calculator sees the data.
func (ip *InputParser) ValidateConfiguration(config *Configuration) error {
	if err := config.Snapshot.Validate(); err != nil {
		return fmt.Errorf("snapshot: %w", err)
	}
	if len(config.TaxBrackets) > 0 {
		if err := domain.ValidateBrackets(config.TaxBrackets); err != nil {
			return fmt.Errorf("tax_brackets: %w", err)
		}
	}
	for i, loan := range config.Loans {
		if loan.Name == "" {
			return fmt.Errorf("loans[%d]: name is required", i)
		}
		if err := loan.Terms.Validate(); err != nil {
			return fmt.Errorf("loan %s: %w", loan.Name, err)
		}
		if loan.Modification != nil {
			if err := loan.Modification.Validate(loan.Terms.TermMonths); err != nil {
				return fmt.Errorf("loan %s modification: %w", loan.Name, err)
			}
		}
	}
	for i, gs := range config.Goals {
		if err := gs.Goal.Validate(); err != nil {
			return fmt.Errorf("goals[%d] (%s): %w", i, gs.Goal.Name, err)
		}
	}
	for _, ss := range config.Scenarios {
		if _, err := ss.ResolveScenario(); err != nil {
			return err
		}
	}
	if config.MortgageVsInvest != nil {
		if err := config.MortgageVsInvest.Validate(); err != nil {
			return fmt.Errorf("mortgage_vs_invest: %w", err)
		}
	}
	if config.RentVsBuy != nil {
		if err := config.RentVsBuy.Buy.Validate(); err != nil {
			return fmt.Errorf("rent_vs_buy.buy: %w", err)
		}
		if err := config.RentVsBuy.Rent.Validate(); err != nil {
			return fmt.Errorf("rent_vs_buy.rent: %w", err)
		}
		if err := domain.ValidateHorizon(config.RentVsBuy.HorizonYears); err != nil {
			return fmt.Errorf("rent_vs_buy: %w", err)
		}
	}
	return nil
}

// ResolvedScenarios resolves every scenario spec. Validation has already
// checked resolvability, so errors here indicate a caller mutating the
// configuration after load.
func (c *Configuration) ResolvedScenarios() ([]scenario.Scenario, error) {
	scenarios := make([]scenario.Scenario, 0, len(c.Scenarios))
	for _, ss := range c.Scenarios {
		sc, err := ss.ResolveScenario()
		if err != nil {
			return nil, err
		}
		scenarios = append(scenarios, sc)
	}
	return scenarios, nil
}

// FindLoan returns the named loan, or nil.
func (c *Configuration) FindLoan(name string) *NamedLoan {
	for i := range c.Loans {
		if c.Loans[i].Name == name {
			return &c.Loans[i]
		}
	}
	return nil
}
