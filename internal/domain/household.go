package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Person selectors used by reference_person, final_age_selector, and
// income stream owners. A plan always has person 1; person 2 is optional.
const (
	Person1 = 1
	Person2 = 2
)

// Person is one member of a household.
type Person struct {
	FirstName string    `yaml:"first_name" json:"first_name"`
	LastName  string    `yaml:"last_name" json:"last_name"`
	BirthDate time.Time `yaml:"birth_date" json:"birth_date"`
}

// Household holds up to two persons. Birth dates may be edited after plan
// creation, but a plan's frozen start year is never recomputed from them.
type Household struct {
	Name    string  `yaml:"name" json:"name"`
	Person1 Person  `yaml:"person1" json:"person1"`
	Person2 *Person `yaml:"person2,omitempty" json:"person2,omitempty"`
}

// Person returns the selected household member, or nil when the selector
// names a person the household does not have.
func (h *Household) Person(selector int) *Person {
	switch selector {
	case Person1:
		return &h.Person1
	case Person2:
		return h.Person2
	default:
		return nil
	}
}

// Plan is one financial plan for a household. PlanCreationYear is frozen at
// creation and anchors the projection window for the base case and every
// scenario; it is never recomputed from the current date.
type Plan struct {
	Name             string     `yaml:"name" json:"name"`
	PlanCreationYear int        `yaml:"plan_creation_year" json:"plan_creation_year"`
	ReferencePerson  int        `yaml:"reference_person" json:"reference_person"`
	Household        Household  `yaml:"household" json:"household"`
	BaseFacts        BaseFacts  `yaml:"base_facts" json:"base_facts"`
	Scenarios        []Scenario `yaml:"scenarios,omitempty" json:"scenarios,omitempty"`
}

// BaseFacts are the plan-level, non-scenario financial inputs. There is
// deliberately no retirement spending here; spending exists only on
// scenarios.
type BaseFacts struct {
	DefaultGrowthRate decimal.Decimal `yaml:"default_growth_rate" json:"default_growth_rate"`
	InflationRate     decimal.Decimal `yaml:"inflation_rate" json:"inflation_rate"`
	RetirementAge1    int             `yaml:"retirement_age_1" json:"retirement_age_1"`
	RetirementAge2    int             `yaml:"retirement_age_2,omitempty" json:"retirement_age_2,omitempty"`
	FinalAge1         int             `yaml:"final_age_1" json:"final_age_1"`
	FinalAge2         int             `yaml:"final_age_2,omitempty" json:"final_age_2,omitempty"`
	FinalAgeSelector  int             `yaml:"final_age_selector" json:"final_age_selector"`

	Assets         []Asset                  `yaml:"assets,omitempty" json:"assets,omitempty"`
	Liabilities    []Liability              `yaml:"liabilities,omitempty" json:"liabilities,omitempty"`
	ScheduledFlows []ScheduledFlow          `yaml:"scheduled_flows,omitempty" json:"scheduled_flows,omitempty"`
	IncomeStreams  []RetirementIncomeStream `yaml:"income_streams,omitempty" json:"income_streams,omitempty"`
}

// RetirementAge returns the configured retirement age for the selected person.
func (bf *BaseFacts) RetirementAge(selector int) int {
	if selector == Person2 {
		return bf.RetirementAge2
	}
	return bf.RetirementAge1
}

// FinalAge returns the configured final age for the selected person.
func (bf *BaseFacts) FinalAge(selector int) int {
	if selector == Person2 {
		return bf.FinalAge2
	}
	return bf.FinalAge1
}

// GrowthType selects how an asset or income stream grows year over year.
type GrowthType string

const (
	GrowthDefault  GrowthType = "default"
	GrowthOverride GrowthType = "override"
	GrowthStepwise GrowthType = "stepwise"
)

// RateInterval is one stepwise period. A nil EndYear leaves the interval open
// through the projection's final year.
type RateInterval struct {
	StartYear int             `yaml:"start_year" json:"start_year"`
	EndYear   *int            `yaml:"end_year,omitempty" json:"end_year,omitempty"`
	Rate      decimal.Decimal `yaml:"rate" json:"rate"`
}

// Contains reports whether the interval covers the given year.
func (ri RateInterval) Contains(year int) bool {
	return ri.StartYear <= year && (ri.EndYear == nil || year <= *ri.EndYear)
}

// GrowthConfig is one of DEFAULT, OVERRIDE(rate), or STEPWISE(intervals).
// Stepwise intervals must be non-overlapping and chronologically ordered;
// years not covered by any interval fall back to the default rate.
type GrowthConfig struct {
	Type      GrowthType      `yaml:"type" json:"type"`
	Rate      decimal.Decimal `yaml:"rate,omitempty" json:"rate,omitempty"`
	Intervals []RateInterval  `yaml:"intervals,omitempty" json:"intervals,omitempty"`
}

// Clone returns a structural copy sharing no pointers with the original.
func (gc *GrowthConfig) Clone() *GrowthConfig {
	if gc == nil {
		return nil
	}
	out := &GrowthConfig{Type: gc.Type, Rate: gc.Rate}
	if gc.Intervals != nil {
		out.Intervals = make([]RateInterval, len(gc.Intervals))
		for i, iv := range gc.Intervals {
			out.Intervals[i] = RateInterval{StartYear: iv.StartYear, Rate: iv.Rate}
			if iv.EndYear != nil {
				end := *iv.EndYear
				out.Intervals[i].EndYear = &end
			}
		}
	}
	return out
}

// Asset is a growing holding. Its value is as of plan creation; a nil Growth
// config means the plan default rate applies.
type Asset struct {
	ID               int             `yaml:"id" json:"id"`
	Name             string          `yaml:"name" json:"name"`
	Owner            string          `yaml:"owner,omitempty" json:"owner,omitempty"`
	Value            decimal.Decimal `yaml:"value" json:"value"`
	IncludeInNestEgg bool            `yaml:"include_in_nest_egg" json:"include_in_nest_egg"`
	Growth           *GrowthConfig   `yaml:"growth,omitempty" json:"growth,omitempty"`
}

// Clone returns a structural copy sharing no pointers with the original.
func (a Asset) Clone() Asset {
	a.Growth = a.Growth.Clone()
	return a
}

// Liability is a debt. A nil InterestRate means the value is static: it is
// carried forward unchanged unless a scenario overrides it. Liabilities never
// carry a growth config; assets never carry an interest rate.
type Liability struct {
	ID               int              `yaml:"id" json:"id"`
	Name             string           `yaml:"name" json:"name"`
	Owner            string           `yaml:"owner,omitempty" json:"owner,omitempty"`
	Value            decimal.Decimal  `yaml:"value" json:"value"`
	InterestRate     *decimal.Decimal `yaml:"interest_rate,omitempty" json:"interest_rate,omitempty"`
	IncludeInNestEgg bool             `yaml:"include_in_nest_egg" json:"include_in_nest_egg"`
}

// Clone returns a structural copy sharing no pointers with the original.
func (l Liability) Clone() Liability {
	if l.InterestRate != nil {
		rate := *l.InterestRate
		l.InterestRate = &rate
	}
	return l
}

// FlowType distinguishes scheduled inflows from outflows.
type FlowType string

const (
	FlowInflow  FlowType = "inflow"
	FlowOutflow FlowType = "outflow"
)

// ScheduledFlow is a recurring annual cash movement bounded by calendar
// years. A nil EndYear runs the flow through the plan's end year. When
// ApplyInflation is set the amount compounds at the inflation rate from the
// flow's start year.
type ScheduledFlow struct {
	ID             int             `yaml:"id" json:"id"`
	Name           string          `yaml:"name" json:"name"`
	Type           FlowType        `yaml:"type" json:"type"`
	AnnualAmount   decimal.Decimal `yaml:"annual_amount" json:"annual_amount"`
	StartYear      int             `yaml:"start_year" json:"start_year"`
	EndYear        *int            `yaml:"end_year,omitempty" json:"end_year,omitempty"`
	ApplyInflation bool            `yaml:"apply_inflation" json:"apply_inflation"`
}

// Clone returns a structural copy sharing no pointers with the original.
func (f ScheduledFlow) Clone() ScheduledFlow {
	if f.EndYear != nil {
		end := *f.EndYear
		f.EndYear = &end
	}
	return f
}

// ActiveIn reports whether the flow applies in the given year.
func (f *ScheduledFlow) ActiveIn(year int) bool {
	return f.StartYear <= year && (f.EndYear == nil || year <= *f.EndYear)
}

// RetirementIncomeStream is an age-gated income source such as Social
// Security or a pension. Owner selects the household person whose age drives
// the start/end gating. A nil EndAge runs the stream for life. The optional
// Growth config mirrors Asset and, when present, escalates the income amount
// instead of the inflation toggle.
type RetirementIncomeStream struct {
	ID               int             `yaml:"id" json:"id"`
	Name             string          `yaml:"name" json:"name"`
	Owner            int             `yaml:"owner" json:"owner"`
	AnnualIncome     decimal.Decimal `yaml:"annual_income" json:"annual_income"`
	StartAge         int             `yaml:"start_age" json:"start_age"`
	EndAge           *int            `yaml:"end_age,omitempty" json:"end_age,omitempty"`
	ApplyInflation   bool            `yaml:"apply_inflation" json:"apply_inflation"`
	IncludeInNestEgg bool            `yaml:"include_in_nest_egg" json:"include_in_nest_egg"`
	Growth           *GrowthConfig   `yaml:"growth,omitempty" json:"growth,omitempty"`
}

// Clone returns a structural copy sharing no pointers with the original.
func (r RetirementIncomeStream) Clone() RetirementIncomeStream {
	if r.EndAge != nil {
		end := *r.EndAge
		r.EndAge = &end
	}
	r.Growth = r.Growth.Clone()
	return r
}
