package calculation

import (
	"fmt"

	"github.com/planwise/nestegg/internal/domain"
	"github.com/planwise/nestegg/pkg/dateutil"
)

// Window is a plan's fixed projection range. StartYear is the frozen plan
// creation year; it is never recomputed from the current date, so every
// projection derived from the plan starts on the same tick.
type Window struct {
	StartYear      int
	RetirementYear int
	EndYear        int
}

// Years returns the number of projected years, start through end inclusive.
func (w Window) Years() int {
	return dateutil.YearsBetween(w.StartYear, w.EndYear)
}

// ProjectionWindow resolves a plan's window from its frozen creation year,
// the reference person's retirement age, and the final-age selector. The
// window must satisfy start < retirement < end.
func ProjectionWindow(plan *domain.Plan) (Window, error) {
	if plan.PlanCreationYear <= 0 {
		return Window{}, fmt.Errorf("plan %q: plan_creation_year missing: %w", plan.Name, ErrIncompleteEntity)
	}

	ref := plan.Household.Person(plan.ReferencePerson)
	if ref == nil {
		return Window{}, fmt.Errorf("plan %q: reference_person %d not in household: %w", plan.Name, plan.ReferencePerson, ErrIncompleteEntity)
	}
	retirementAge := plan.BaseFacts.RetirementAge(plan.ReferencePerson)
	if retirementAge <= 0 {
		return Window{}, fmt.Errorf("plan %q: retirement age for person %d missing: %w", plan.Name, plan.ReferencePerson, ErrIncompleteEntity)
	}

	final := plan.Household.Person(plan.BaseFacts.FinalAgeSelector)
	if final == nil {
		return Window{}, fmt.Errorf("plan %q: final_age_selector %d not in household: %w", plan.Name, plan.BaseFacts.FinalAgeSelector, ErrIncompleteEntity)
	}
	finalAge := plan.BaseFacts.FinalAge(plan.BaseFacts.FinalAgeSelector)
	if finalAge <= 0 {
		return Window{}, fmt.Errorf("plan %q: final age for person %d missing: %w", plan.Name, plan.BaseFacts.FinalAgeSelector, ErrIncompleteEntity)
	}

	w := Window{
		StartYear:      plan.PlanCreationYear,
		RetirementYear: dateutil.YearForAge(ref.BirthDate, retirementAge),
		EndYear:        dateutil.YearForAge(final.BirthDate, finalAge),
	}

	if w.RetirementYear <= w.StartYear {
		return Window{}, fmt.Errorf("plan %q: retirement year %d not after start year %d: %w", plan.Name, w.RetirementYear, w.StartYear, ErrInvalidWindow)
	}
	if w.EndYear <= w.RetirementYear {
		return Window{}, fmt.Errorf("plan %q: end year %d not after retirement year %d: %w", plan.Name, w.EndYear, w.RetirementYear, ErrInvalidWindow)
	}
	return w, nil
}
