package calculation

import (
	"fmt"

	"github.com/planwise/nestegg/internal/domain"
	"github.com/planwise/nestegg/pkg/dateutil"
)

// Project runs one full projection over the window: it seeds the start-year
// balances from each entity's stored value, then advances year by year
// through the end year inclusive, threading each year's output balances into
// the next. The result is a pure function of its inputs, and its length is
// always end - start + 1.
func Project(plan *domain.Plan, es *EffectiveEntitySet, window Window, name string) (domain.ProjectionSeries, error) {
	if err := validateEntitySet(es); err != nil {
		return domain.ProjectionSeries{}, err
	}

	ref := plan.Household.Person(plan.ReferencePerson)
	if ref == nil {
		return domain.ProjectionSeries{}, fmt.Errorf("reference_person %d not in household: %w", plan.ReferencePerson, ErrIncompleteEntity)
	}
	// A scenario may override the retirement age, shifting when spending
	// starts; the window itself stays frozen.
	retirementYear := dateutil.YearForAge(ref.BirthDate, es.Assumptions.RetirementAge(plan.ReferencePerson))

	ctx := yearContext{
		es:             es,
		household:      &plan.Household,
		retirementYear: retirementYear,
	}

	series := domain.ProjectionSeries{
		Name:  name,
		Years: make([]domain.YearResult, 0, window.Years()),
	}
	balances := seedBalances(es)
	for year := window.StartYear; year <= window.EndYear; year++ {
		ctx.applyFlows = year > window.StartYear
		var result domain.YearResult
		balances, result = advance(balances, ctx, year)
		series.Years = append(series.Years, result)
	}
	return series, nil
}

// validateEntitySet fail-fast checks every entity before the year loop: a
// malformed record aborts the run up front rather than mid-iteration, so a
// projection either completes in full or produces nothing.
func validateEntitySet(es *EffectiveEntitySet) error {
	for _, a := range es.Assets {
		if err := ValidateGrowthConfig(a.Growth, "asset", a.ID); err != nil {
			return err
		}
	}
	for _, f := range es.Flows {
		if f.Type != domain.FlowInflow && f.Type != domain.FlowOutflow {
			return fmt.Errorf("flow %d: type %q: %w", f.ID, f.Type, ErrIncompleteEntity)
		}
		if f.StartYear <= 0 {
			return fmt.Errorf("flow %d: start_year missing: %w", f.ID, ErrIncompleteEntity)
		}
		if f.EndYear != nil && *f.EndYear < f.StartYear {
			return fmt.Errorf("flow %d: end_year %d before start_year %d: %w", f.ID, *f.EndYear, f.StartYear, ErrIncompleteEntity)
		}
	}
	for _, r := range es.IncomeStreams {
		if r.Owner != domain.Person1 && r.Owner != domain.Person2 {
			return fmt.Errorf("income stream %d: owner %d: %w", r.ID, r.Owner, ErrIncompleteEntity)
		}
		if r.StartAge <= 0 {
			return fmt.Errorf("income stream %d: start_age missing: %w", r.ID, ErrIncompleteEntity)
		}
		if r.EndAge != nil && *r.EndAge < r.StartAge {
			return fmt.Errorf("income stream %d: end_age %d before start_age %d: %w", r.ID, *r.EndAge, r.StartAge, ErrIncompleteEntity)
		}
		if err := ValidateGrowthConfig(r.Growth, "income stream", r.ID); err != nil {
			return err
		}
	}
	return nil
}
