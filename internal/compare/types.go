package compare

import (
	"github.com/fpgo/finance-projector/internal/domain"
	"github.com/fpgo/finance-projector/pkg/money"
	"github.com/shopspring/decimal"
)

// ScenarioResult is one scenario's projection plus metrics derived against
// the base scenario.
type ScenarioResult struct {
	ScenarioName string                     `json:"scenarioName"`
	Projection   *domain.NetWorthProjection `json:"projection"`

	StartNetWorthCents    money.Cents `json:"startNetWorthCents"`
	TerminalNetWorthCents money.Cents `json:"terminalNetWorthCents"`

	// Comparison to base
	TerminalDeltaCents   money.Cents     `json:"terminalDeltaCents"`
	TerminalDeltaPercent decimal.Decimal `json:"terminalDeltaPercent"`
	// OvertakeMonth is the first month this scenario's net worth exceeds
	// the base's, or 0 when it never does.
	OvertakeMonth int `json:"overtakeMonth"`
}

func newScenarioResult(name string, proj *domain.NetWorthProjection) ScenarioResult {
	return ScenarioResult{
		ScenarioName:          name,
		Projection:            proj,
		StartNetWorthCents:    proj.StartNetWorth,
		TerminalNetWorthCents: proj.TerminalNetWorth,
	}
}

// compareAgainst fills the base-relative metrics.
func (sr *ScenarioResult) compareAgainst(base *ScenarioResult) {
	sr.TerminalDeltaCents = sr.TerminalNetWorthCents - base.TerminalNetWorthCents
	if base.TerminalNetWorthCents != 0 {
		sr.TerminalDeltaPercent = sr.TerminalDeltaCents.Decimal().
			Div(money.Abs(base.TerminalNetWorthCents).Decimal()).
			Mul(decimal.NewFromInt(100))
	}
	for i, p := range sr.Projection.Points {
		if p.NetWorthCents > base.Projection.Points[i].NetWorthCents {
			sr.OvertakeMonth = p.Month
			break
		}
	}
}

// ComparisonSet is a full multi-scenario comparison.
type ComparisonSet struct {
	HorizonYears       int              `json:"horizonYears"`
	BaseResult         *ScenarioResult  `json:"baseResult"`
	AlternativeResults []ScenarioResult `json:"alternativeResults"`
	BestScenario       string           `json:"bestScenario"`
}

func (cs *ComparisonSet) bestScenarioName() string {
	best := cs.BaseResult.ScenarioName
	bestValue := cs.BaseResult.TerminalNetWorthCents
	for _, alt := range cs.AlternativeResults {
		if alt.TerminalNetWorthCents > bestValue {
			best = alt.ScenarioName
			bestValue = alt.TerminalNetWorthCents
		}
	}
	return best
}
