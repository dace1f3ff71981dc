package calculation

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/planwise/nestegg/internal/domain"
)

// EffectiveAssumptions are the plan-level assumptions after scenario
// patching. AnnualRetirementSpending is zero for the base case; it only
// exists on scenarios.
type EffectiveAssumptions struct {
	DefaultGrowthRate        decimal.Decimal
	InflationRate            decimal.Decimal
	RetirementAge1           int
	RetirementAge2           int
	AnnualRetirementSpending decimal.Decimal
}

// RetirementAge returns the effective retirement age for the selected person.
func (ea *EffectiveAssumptions) RetirementAge(selector int) int {
	if selector == domain.Person2 {
		return ea.RetirementAge2
	}
	return ea.RetirementAge1
}

// EffectiveEntitySet is the entity collection a projection runs against:
// the same shape as BaseFacts' collections, but owned by the run. It shares
// no mutable state with the BaseFacts it was resolved from.
type EffectiveEntitySet struct {
	Assets        []domain.Asset
	Liabilities   []domain.Liability
	Flows         []domain.ScheduledFlow
	IncomeStreams []domain.RetirementIncomeStream
	Assumptions   EffectiveAssumptions
}

// Resolve computes the effective entity set for a scenario, or for the base
// case when scenario is nil. It starts from a structural copy of the base
// collections and applies overrides in list order: removals delete the
// target, value patches are last-writer-wins per (entity, field), and a
// patch against a removed entity is inert since removal always wins. An
// override whose target id never existed in the base facts is a dangling
// reference.
func Resolve(base *domain.BaseFacts, scenario *domain.Scenario) (*EffectiveEntitySet, error) {
	es := &EffectiveEntitySet{
		Assets:        make([]domain.Asset, 0, len(base.Assets)),
		Liabilities:   make([]domain.Liability, 0, len(base.Liabilities)),
		Flows:         make([]domain.ScheduledFlow, 0, len(base.ScheduledFlows)),
		IncomeStreams: make([]domain.RetirementIncomeStream, 0, len(base.IncomeStreams)),
		Assumptions: EffectiveAssumptions{
			DefaultGrowthRate: base.DefaultGrowthRate,
			InflationRate:     base.InflationRate,
			RetirementAge1:    base.RetirementAge1,
			RetirementAge2:    base.RetirementAge2,
		},
	}
	for _, a := range base.Assets {
		es.Assets = append(es.Assets, a.Clone())
	}
	for _, l := range base.Liabilities {
		es.Liabilities = append(es.Liabilities, l.Clone())
	}
	for _, f := range base.ScheduledFlows {
		es.Flows = append(es.Flows, f.Clone())
	}
	for _, r := range base.IncomeStreams {
		es.IncomeStreams = append(es.IncomeStreams, r.Clone())
	}

	if scenario == nil {
		return es, nil
	}

	sa := scenario.Assumptions
	if sa.DefaultGrowthRate != nil {
		es.Assumptions.DefaultGrowthRate = *sa.DefaultGrowthRate
	}
	if sa.InflationRate != nil {
		es.Assumptions.InflationRate = *sa.InflationRate
	}
	if sa.RetirementAge1 != nil {
		es.Assumptions.RetirementAge1 = *sa.RetirementAge1
	}
	if sa.RetirementAge2 != nil {
		es.Assumptions.RetirementAge2 = *sa.RetirementAge2
	}
	if sa.AnnualRetirementSpending != nil {
		es.Assumptions.AnnualRetirementSpending = *sa.AnnualRetirementSpending
	}

	if err := es.applyOverrides(scenario.Overrides); err != nil {
		return nil, fmt.Errorf("scenario %q: %w", scenario.Name, err)
	}
	return es, nil
}

func (es *EffectiveEntitySet) applyOverrides(overrides []domain.Override) error {
	type key struct {
		kind domain.TargetKind
		id   int
	}
	known := make(map[key]bool)
	for _, a := range es.Assets {
		known[key{domain.TargetAsset, a.ID}] = true
	}
	for _, l := range es.Liabilities {
		known[key{domain.TargetLiability, l.ID}] = true
	}
	for _, f := range es.Flows {
		known[key{domain.TargetFlow, f.ID}] = true
	}
	for _, r := range es.IncomeStreams {
		known[key{domain.TargetIncome, r.ID}] = true
	}

	removed := make(map[key]bool)
	for _, ov := range overrides {
		k := key{ov.Target, ov.TargetID}
		if !known[k] {
			return fmt.Errorf("%s %d: %w", ov.Target, ov.TargetID, ErrDanglingOverride)
		}
		if ov.Remove {
			if !removed[k] {
				removed[k] = true
				es.remove(ov.Target, ov.TargetID)
			}
			continue
		}
		if removed[k] {
			// Removal dominates; the patch is discarded with the entity.
			continue
		}
		if err := es.patch(ov); err != nil {
			return err
		}
	}
	return nil
}

func (es *EffectiveEntitySet) remove(kind domain.TargetKind, id int) {
	switch kind {
	case domain.TargetAsset:
		for i, a := range es.Assets {
			if a.ID == id {
				es.Assets = append(es.Assets[:i], es.Assets[i+1:]...)
				return
			}
		}
	case domain.TargetLiability:
		for i, l := range es.Liabilities {
			if l.ID == id {
				es.Liabilities = append(es.Liabilities[:i], es.Liabilities[i+1:]...)
				return
			}
		}
	case domain.TargetFlow:
		for i, f := range es.Flows {
			if f.ID == id {
				es.Flows = append(es.Flows[:i], es.Flows[i+1:]...)
				return
			}
		}
	case domain.TargetIncome:
		for i, r := range es.IncomeStreams {
			if r.ID == id {
				es.IncomeStreams = append(es.IncomeStreams[:i], es.IncomeStreams[i+1:]...)
				return
			}
		}
	}
}

func (es *EffectiveEntitySet) patch(ov domain.Override) error {
	switch ov.Target {
	case domain.TargetAsset:
		return es.patchAsset(ov)
	case domain.TargetLiability:
		return es.patchLiability(ov)
	case domain.TargetFlow:
		return es.patchFlow(ov)
	case domain.TargetIncome:
		return es.patchIncome(ov)
	default:
		return fmt.Errorf("target kind %q: %w", ov.Target, ErrDanglingOverride)
	}
}

func (es *EffectiveEntitySet) patchAsset(ov domain.Override) error {
	a := es.asset(ov.TargetID)
	switch ov.Field {
	case domain.FieldValue:
		v, err := coerceDecimal(ov)
		if err != nil {
			return err
		}
		a.Value = v
	case domain.FieldIncludeInNestEgg:
		b, err := coerceBool(ov)
		if err != nil {
			return err
		}
		a.IncludeInNestEgg = b
	default:
		return fmt.Errorf("asset %d: field %q: %w", ov.TargetID, ov.Field, ErrUnknownOverrideField)
	}
	return nil
}

func (es *EffectiveEntitySet) patchLiability(ov domain.Override) error {
	l := es.liability(ov.TargetID)
	switch ov.Field {
	case domain.FieldValue:
		v, err := coerceDecimal(ov)
		if err != nil {
			return err
		}
		l.Value = v
	case domain.FieldInterestRate:
		v, err := coerceDecimal(ov)
		if err != nil {
			return err
		}
		l.InterestRate = &v
	case domain.FieldIncludeInNestEgg:
		b, err := coerceBool(ov)
		if err != nil {
			return err
		}
		l.IncludeInNestEgg = b
	default:
		return fmt.Errorf("liability %d: field %q: %w", ov.TargetID, ov.Field, ErrUnknownOverrideField)
	}
	return nil
}

func (es *EffectiveEntitySet) patchFlow(ov domain.Override) error {
	f := es.flow(ov.TargetID)
	switch ov.Field {
	case domain.FieldAnnualAmount:
		v, err := coerceDecimal(ov)
		if err != nil {
			return err
		}
		f.AnnualAmount = v
	case domain.FieldStartYear:
		y, err := coerceInt(ov)
		if err != nil {
			return err
		}
		f.StartYear = y
	case domain.FieldEndYear:
		y, err := coerceInt(ov)
		if err != nil {
			return err
		}
		f.EndYear = &y
	case domain.FieldApplyInflation:
		b, err := coerceBool(ov)
		if err != nil {
			return err
		}
		f.ApplyInflation = b
	default:
		return fmt.Errorf("flow %d: field %q: %w", ov.TargetID, ov.Field, ErrUnknownOverrideField)
	}
	return nil
}

func (es *EffectiveEntitySet) patchIncome(ov domain.Override) error {
	r := es.income(ov.TargetID)
	switch ov.Field {
	case domain.FieldAnnualIncome:
		v, err := coerceDecimal(ov)
		if err != nil {
			return err
		}
		r.AnnualIncome = v
	case domain.FieldStartAge:
		a, err := coerceInt(ov)
		if err != nil {
			return err
		}
		r.StartAge = a
	case domain.FieldEndAge:
		a, err := coerceInt(ov)
		if err != nil {
			return err
		}
		r.EndAge = &a
	case domain.FieldApplyInflation:
		b, err := coerceBool(ov)
		if err != nil {
			return err
		}
		r.ApplyInflation = b
	case domain.FieldIncludeInNestEgg:
		b, err := coerceBool(ov)
		if err != nil {
			return err
		}
		r.IncludeInNestEgg = b
	default:
		return fmt.Errorf("income stream %d: field %q: %w", ov.TargetID, ov.Field, ErrUnknownOverrideField)
	}
	return nil
}

func (es *EffectiveEntitySet) asset(id int) *domain.Asset {
	for i := range es.Assets {
		if es.Assets[i].ID == id {
			return &es.Assets[i]
		}
	}
	return nil
}

func (es *EffectiveEntitySet) liability(id int) *domain.Liability {
	for i := range es.Liabilities {
		if es.Liabilities[i].ID == id {
			return &es.Liabilities[i]
		}
	}
	return nil
}

func (es *EffectiveEntitySet) flow(id int) *domain.ScheduledFlow {
	for i := range es.Flows {
		if es.Flows[i].ID == id {
			return &es.Flows[i]
		}
	}
	return nil
}

func (es *EffectiveEntitySet) income(id int) *domain.RetirementIncomeStream {
	for i := range es.IncomeStreams {
		if es.IncomeStreams[i].ID == id {
			return &es.IncomeStreams[i]
		}
	}
	return nil
}

func coerceDecimal(ov domain.Override) (decimal.Decimal, error) {
	v, err := decimal.NewFromString(strings.TrimSpace(ov.Value))
	if err != nil {
		return decimal.Zero, fmt.Errorf("%s %d: field %q: value %q is not numeric: %w",
			ov.Target, ov.TargetID, ov.Field, ov.Value, ErrIncompleteEntity)
	}
	return v, nil
}

func coerceInt(ov domain.Override) (int, error) {
	v, err := coerceDecimal(ov)
	if err != nil {
		return 0, err
	}
	if !v.IsInteger() {
		return 0, fmt.Errorf("%s %d: field %q: value %q is not a whole year: %w",
			ov.Target, ov.TargetID, ov.Field, ov.Value, ErrIncompleteEntity)
	}
	return int(v.IntPart()), nil
}

// Truth tokens accepted for boolean override values.
var truthTokens = map[string]bool{
	"true": true, "t": true, "yes": true, "y": true, "1": true, "on": true,
	"false": false, "f": false, "no": false, "n": false, "0": false, "off": false,
}

func coerceBool(ov domain.Override) (bool, error) {
	b, ok := truthTokens[strings.ToLower(strings.TrimSpace(ov.Value))]
	if !ok {
		return false, fmt.Errorf("%s %d: field %q: value %q is not a boolean token: %w",
			ov.Target, ov.TargetID, ov.Field, ov.Value, ErrIncompleteEntity)
	}
	return b, nil
}
