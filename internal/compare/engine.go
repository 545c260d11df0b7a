package compare

import (
	"context"
	"fmt"

	"github.com/fpgo/finance-projector/internal/calculation"
	"github.com/fpgo/finance-projector/internal/domain"
	"github.com/fpgo/finance-projector/internal/scenario"
)

// CompareEngine orchestrates multi-scenario net-worth comparison: the base
// snapshot is projected as-is, then each scenario's overrides are applied to
// a copy and projected under identical assumptions. Scenario runs are
// independent pure computations, so a comparison of N scenarios is N+1
// projections with no shared state.
type CompareEngine struct {
	CalcEngine *calculation.CalculationEngine
}

// NewCompareEngine creates a new comparison engine.
func NewCompareEngine(calcEngine *calculation.CalculationEngine) *CompareEngine {
	return &CompareEngine{CalcEngine: calcEngine}
}

// Compare projects the base snapshot and every scenario over the horizon and
// derives per-scenario metrics against the base. The context bounds only the
// outer loop; individual projections are not cancellable and are instead
// bounded by the validated horizon.
func (ce *CompareEngine) Compare(ctx context.Context, base *domain.Snapshot, scenarios []scenario.Scenario, horizonYears int) (*ComparisonSet, error) {
	if err := domain.ValidateHorizon(horizonYears); err != nil {
		return nil, err
	}
	months := horizonYears * 12

	baseProj, err := ce.CalcEngine.ProjectNetWorth(base, months)
	if err != nil {
		return nil, fmt.Errorf("failed to project base snapshot: %w", err)
	}
	baseResult := newScenarioResult("base", baseProj)

	alternatives := make([]ScenarioResult, 0, len(scenarios))
	for _, sc := range scenarios {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}

		modified, err := scenario.Apply(base, sc.Overrides)
		if err != nil {
			return nil, fmt.Errorf("failed to build scenario %s: %w", sc.Name, err)
		}
		proj, err := ce.CalcEngine.ProjectNetWorth(modified, months)
		if err != nil {
			return nil, fmt.Errorf("failed to project scenario %s: %w", sc.Name, err)
		}

		result := newScenarioResult(sc.Name, proj)
		result.compareAgainst(&baseResult)
		alternatives = append(alternatives, result)
	}

	set := &ComparisonSet{
		HorizonYears:       horizonYears,
		BaseResult:         &baseResult,
		AlternativeResults: alternatives,
	}
	set.BestScenario = set.bestScenarioName()
	return set, nil
}
