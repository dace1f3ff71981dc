package domain

import (
	"github.com/shopspring/decimal"
)

// Scenario is an override layer on a plan's BaseFacts. Evaluating a scenario
// never mutates BaseFacts: the effective entity set is computed freshly from
// (BaseFacts, Overrides) on every run.
type Scenario struct {
	ID          int                 `yaml:"id" json:"id"`
	Name        string              `yaml:"name" json:"name"`
	Color       string              `yaml:"color,omitempty" json:"color,omitempty"`
	Assumptions ScenarioAssumptions `yaml:"assumptions" json:"assumptions"`
	Overrides   []Override          `yaml:"overrides,omitempty" json:"overrides,omitempty"`
}

// ScenarioAssumptions patch the plan-level assumptions field by field; a nil
// field inherits the BaseFacts value. AnnualRetirementSpending exists only
// here; base facts carry no spending.
type ScenarioAssumptions struct {
	RetirementAge1           *int             `yaml:"retirement_age_1,omitempty" json:"retirement_age_1,omitempty"`
	RetirementAge2           *int             `yaml:"retirement_age_2,omitempty" json:"retirement_age_2,omitempty"`
	DefaultGrowthRate        *decimal.Decimal `yaml:"default_growth_rate,omitempty" json:"default_growth_rate,omitempty"`
	InflationRate            *decimal.Decimal `yaml:"inflation_rate,omitempty" json:"inflation_rate,omitempty"`
	AnnualRetirementSpending *decimal.Decimal `yaml:"annual_retirement_spending,omitempty" json:"annual_retirement_spending,omitempty"`
}

// TargetKind names the entity collection an override patches.
type TargetKind string

const (
	TargetAsset     TargetKind = "asset"
	TargetLiability TargetKind = "liability"
	TargetFlow      TargetKind = "flow"
	TargetIncome    TargetKind = "income"
)

// Override is a single patch against one BaseFacts entity: either a
// field/value change or a removal of the target from the effective set.
// Overrides apply in list order with last-writer-wins per (entity, field);
// a removal wins over any value override on the same entity regardless of
// position.
type Override struct {
	Target   TargetKind `yaml:"target" json:"target"`
	TargetID int        `yaml:"target_id" json:"target_id"`
	Remove   bool       `yaml:"remove,omitempty" json:"remove,omitempty"`
	Field    string     `yaml:"field,omitempty" json:"field,omitempty"`
	Value    string     `yaml:"value,omitempty" json:"value,omitempty"`
}

// Legally overridable fields per target kind. Resolution rejects any field
// name outside the kind's set.
const (
	FieldValue            = "value"
	FieldInterestRate     = "interest_rate"
	FieldIncludeInNestEgg = "include_in_nest_egg"
	FieldAnnualAmount     = "annual_amount"
	FieldStartYear        = "start_year"
	FieldEndYear          = "end_year"
	FieldApplyInflation   = "apply_inflation"
	FieldAnnualIncome     = "annual_income"
	FieldStartAge         = "start_age"
	FieldEndAge           = "end_age"
)
