package config

import (
	"fmt"
	"os"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"

	"github.com/planwise/nestegg/internal/domain"
)

// InputParser handles parsing of plan input files
type InputParser struct{}

// NewInputParser creates a new input parser
func NewInputParser() *InputParser {
	return &InputParser{}
}

// LoadFromFile loads a plan document from a YAML file
func (ip *InputParser) LoadFromFile(filename string) (*domain.Plan, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", filename, err)
	}
	return ip.Load(data)
}

// Load parses and validates a plan document
func (ip *InputParser) Load(data []byte) (*domain.Plan, error) {
	var plan domain.Plan
	if err := yaml.Unmarshal(data, &plan); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if err := ip.ValidatePlan(&plan); err != nil {
		return nil, fmt.Errorf("plan validation failed: %w", err)
	}
	return &plan, nil
}

// ValidatePlan validates the loaded plan document. Window ordering and
// override integrity are the engine's concern; this catches records that are
// malformed at the boundary.
func (ip *InputParser) ValidatePlan(plan *domain.Plan) error {
	if plan.PlanCreationYear <= 0 {
		return fmt.Errorf("plan_creation_year is required")
	}
	if plan.Household.Person1.BirthDate.IsZero() {
		return fmt.Errorf("person1 birth date is required")
	}
	if plan.Household.Person2 != nil && plan.Household.Person2.BirthDate.IsZero() {
		return fmt.Errorf("person2 birth date is required")
	}
	if plan.ReferencePerson != domain.Person1 && plan.ReferencePerson != domain.Person2 {
		return fmt.Errorf("reference_person must be 1 or 2, got %d", plan.ReferencePerson)
	}
	if plan.ReferencePerson == domain.Person2 && plan.Household.Person2 == nil {
		return fmt.Errorf("reference_person is 2 but household has no second person")
	}

	if err := ip.validateBaseFacts(&plan.BaseFacts); err != nil {
		return err
	}

	for i := range plan.Scenarios {
		if err := ip.validateScenario(i, &plan.Scenarios[i]); err != nil {
			return err
		}
	}
	return nil
}

func (ip *InputParser) validateBaseFacts(bf *domain.BaseFacts) error {
	if err := validateRate(bf.DefaultGrowthRate, "default_growth_rate"); err != nil {
		return err
	}
	if err := validateRate(bf.InflationRate, "inflation_rate"); err != nil {
		return err
	}
	if bf.FinalAgeSelector != domain.Person1 && bf.FinalAgeSelector != domain.Person2 {
		return fmt.Errorf("final_age_selector must be 1 or 2, got %d", bf.FinalAgeSelector)
	}

	seen := make(map[string]bool)
	for _, a := range bf.Assets {
		if err := requireUniqueID(seen, "asset", a.ID); err != nil {
			return err
		}
		if a.Value.IsNegative() {
			return fmt.Errorf("asset %d: value cannot be negative", a.ID)
		}
	}
	seen = make(map[string]bool)
	for _, l := range bf.Liabilities {
		if err := requireUniqueID(seen, "liability", l.ID); err != nil {
			return err
		}
		if l.Value.IsNegative() {
			return fmt.Errorf("liability %d: value cannot be negative", l.ID)
		}
	}
	seen = make(map[string]bool)
	for _, f := range bf.ScheduledFlows {
		if err := requireUniqueID(seen, "flow", f.ID); err != nil {
			return err
		}
		if f.AnnualAmount.IsNegative() {
			return fmt.Errorf("flow %d: annual_amount cannot be negative", f.ID)
		}
	}
	seen = make(map[string]bool)
	for _, r := range bf.IncomeStreams {
		if err := requireUniqueID(seen, "income stream", r.ID); err != nil {
			return err
		}
		if r.AnnualIncome.IsNegative() {
			return fmt.Errorf("income stream %d: annual_income cannot be negative", r.ID)
		}
	}
	return nil
}

func (ip *InputParser) validateScenario(index int, sc *domain.Scenario) error {
	if sc.Name == "" {
		return fmt.Errorf("scenario %d: name is required", index)
	}
	if sc.Assumptions.AnnualRetirementSpending != nil && sc.Assumptions.AnnualRetirementSpending.IsNegative() {
		return fmt.Errorf("scenario %q: annual_retirement_spending cannot be negative", sc.Name)
	}
	for i, ov := range sc.Overrides {
		switch ov.Target {
		case domain.TargetAsset, domain.TargetLiability, domain.TargetFlow, domain.TargetIncome:
		default:
			return fmt.Errorf("scenario %q: override %d: unknown target %q", sc.Name, i, ov.Target)
		}
		if !ov.Remove && ov.Field == "" {
			return fmt.Errorf("scenario %q: override %d: field is required unless remove is set", sc.Name, i)
		}
	}
	return nil
}

func requireUniqueID(seen map[string]bool, kind string, id int) error {
	if id <= 0 {
		return fmt.Errorf("%s id must be positive, got %d", kind, id)
	}
	key := fmt.Sprintf("%s/%d", kind, id)
	if seen[key] {
		return fmt.Errorf("duplicate %s id %d", kind, id)
	}
	seen[key] = true
	return nil
}

func validateRate(rate decimal.Decimal, name string) error {
	if rate.LessThan(decimal.NewFromInt(-1)) || rate.GreaterThan(decimal.NewFromInt(1)) {
		return fmt.Errorf("%s must be between -1 and 1, got %s", name, rate)
	}
	return nil
}
