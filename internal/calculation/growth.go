package calculation

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/planwise/nestegg/internal/domain"
)

// EffectiveRate answers "what rate applies to this entity in this year".
// DEFAULT (or no config at all) yields the default rate, OVERRIDE yields its
// fixed rate for every year, and STEPWISE yields the rate of the interval
// containing the year with uncovered years falling back to the default rate.
func EffectiveRate(cfg *domain.GrowthConfig, year int, defaultRate decimal.Decimal) decimal.Decimal {
	if cfg == nil {
		return defaultRate
	}
	switch cfg.Type {
	case domain.GrowthOverride:
		return cfg.Rate
	case domain.GrowthStepwise:
		for _, iv := range cfg.Intervals {
			if iv.Contains(year) {
				return iv.Rate
			}
		}
		return defaultRate
	default:
		return defaultRate
	}
}

// ValidateGrowthConfig checks a config at construction time, before any year
// loop runs. Stepwise intervals must be chronologically non-decreasing and
// pairwise non-overlapping; an open-ended interval is only legal in last
// position.
func ValidateGrowthConfig(cfg *domain.GrowthConfig, entity string, id int) error {
	if cfg == nil {
		return nil
	}
	switch cfg.Type {
	case domain.GrowthDefault, domain.GrowthOverride:
		return nil
	case domain.GrowthStepwise:
		for i, iv := range cfg.Intervals {
			if iv.EndYear != nil && *iv.EndYear < iv.StartYear {
				return fmt.Errorf("%s %d: interval %d ends (%d) before it starts (%d): %w",
					entity, id, i, *iv.EndYear, iv.StartYear, ErrOverlappingIntervals)
			}
			if i == 0 {
				continue
			}
			prev := cfg.Intervals[i-1]
			if iv.StartYear < prev.StartYear {
				return fmt.Errorf("%s %d: interval %d starts (%d) before interval %d (%d): %w",
					entity, id, i, iv.StartYear, i-1, prev.StartYear, ErrOverlappingIntervals)
			}
			if prev.EndYear == nil || *prev.EndYear >= iv.StartYear {
				return fmt.Errorf("%s %d: intervals %d and %d overlap: %w",
					entity, id, i-1, i, ErrOverlappingIntervals)
			}
		}
		return nil
	default:
		return fmt.Errorf("%s %d: growth type %q: %w", entity, id, cfg.Type, ErrIncompleteEntity)
	}
}
