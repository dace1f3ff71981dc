package calculation

import (
	"context"
	"fmt"

	"github.com/planwise/nestegg/internal/domain"
)

// Engine runs projections for a plan's base case and its scenarios. Runs are
// pure computations over the inputs it is handed: the engine performs no I/O
// inside the year loop and never mutates the plan, so callers that snapshot
// a plan may fan runs out concurrently themselves.
type Engine struct {
	Logger Logger
}

// NewEngine creates a projection engine with a no-op logger.
func NewEngine() *Engine {
	return &Engine{Logger: NopLogger{}}
}

// SetLogger sets the logger for the engine. If nil is provided, a no-op
// logger is used.
func (e *Engine) SetLogger(l Logger) {
	if l == nil {
		e.Logger = NopLogger{}
		return
	}
	e.Logger = l
}

// RunPlan projects the base case and every scenario of a plan over the
// plan's single frozen window, so all series are index-aligned for direct
// comparison. Any fault aborts the whole call; prior-computed series are
// discarded rather than returned partially.
func (e *Engine) RunPlan(ctx context.Context, plan *domain.Plan) (*domain.PlanComparison, error) {
	window, err := ProjectionWindow(plan)
	if err != nil {
		return nil, err
	}
	e.Logger.Debugf("plan %q: window %d..%d, retirement %d", plan.Name, window.StartYear, window.EndYear, window.RetirementYear)

	base, err := Resolve(&plan.BaseFacts, nil)
	if err != nil {
		return nil, err
	}
	baseSeries, err := Project(plan, base, window, "base")
	if err != nil {
		return nil, fmt.Errorf("base case: %w", err)
	}

	comparison := &domain.PlanComparison{
		PlanName:       plan.Name,
		StartYear:      window.StartYear,
		RetirementYear: window.RetirementYear,
		EndYear:        window.EndYear,
		Base:           baseSeries,
		Scenarios:      make([]domain.ProjectionSeries, 0, len(plan.Scenarios)),
	}

	for i := range plan.Scenarios {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		series, err := e.RunScenario(ctx, plan, &plan.Scenarios[i], window)
		if err != nil {
			return nil, err
		}
		comparison.Scenarios = append(comparison.Scenarios, series)
	}
	return comparison, nil
}

// RunScenario resolves one scenario against the plan's base facts and
// projects it over the given window.
func (e *Engine) RunScenario(_ context.Context, plan *domain.Plan, scenario *domain.Scenario, window Window) (domain.ProjectionSeries, error) {
	es, err := Resolve(&plan.BaseFacts, scenario)
	if err != nil {
		return domain.ProjectionSeries{}, err
	}
	series, err := Project(plan, es, window, scenario.Name)
	if err != nil {
		return domain.ProjectionSeries{}, fmt.Errorf("scenario %q: %w", scenario.Name, err)
	}
	series.Color = scenario.Color
	e.Logger.Debugf("scenario %q: final nest egg %s", scenario.Name, series.FinalNestEgg().StringFixed(2))
	return series, nil
}
