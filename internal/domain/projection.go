package domain

import (
	"github.com/shopspring/decimal"
)

// YearResult is one year-end snapshot of a projection.
type YearResult struct {
	Year       int             `json:"year"`
	AgePerson1 int             `json:"age_person1"`
	AgePerson2 int             `json:"age_person2,omitempty"`
	NestEgg    decimal.Decimal `json:"nest_egg"`
	NetWorth   decimal.Decimal `json:"net_worth"`
}

// ProjectionSeries is the ordered year-by-year output of one projection run:
// one entry per year of the window, start through end inclusive.
type ProjectionSeries struct {
	Name  string       `json:"name"`
	Color string       `json:"color,omitempty"`
	Years []YearResult `json:"years"`
}

// ValueForYear returns the nest egg value for a calendar year, or zero when
// the year is outside the series.
func (ps *ProjectionSeries) ValueForYear(year int) decimal.Decimal {
	for _, yr := range ps.Years {
		if yr.Year == year {
			return yr.NestEgg
		}
	}
	return decimal.Zero
}

// FinalNestEgg returns the nest egg value of the last projected year.
func (ps *ProjectionSeries) FinalNestEgg() decimal.Decimal {
	if len(ps.Years) == 0 {
		return decimal.Zero
	}
	return ps.Years[len(ps.Years)-1].NestEgg
}

// DepletionYear returns the first year the nest egg is zero or negative and
// true, or zero and false when the nest egg survives the full window.
func (ps *ProjectionSeries) DepletionYear() (int, bool) {
	for _, yr := range ps.Years {
		if yr.NestEgg.LessThanOrEqual(decimal.Zero) {
			return yr.Year, true
		}
	}
	return 0, false
}

// PlanComparison holds the base-case series and one series per scenario, all
// computed over the identical window so they are index-aligned for charting.
type PlanComparison struct {
	PlanName       string             `json:"plan_name"`
	StartYear      int                `json:"start_year"`
	RetirementYear int                `json:"retirement_year"`
	EndYear        int                `json:"end_year"`
	Base           ProjectionSeries   `json:"base"`
	Scenarios      []ProjectionSeries `json:"scenarios"`
}

// AllSeries returns the base series followed by every scenario series.
func (pc *PlanComparison) AllSeries() []ProjectionSeries {
	out := make([]ProjectionSeries, 0, 1+len(pc.Scenarios))
	out = append(out, pc.Base)
	out = append(out, pc.Scenarios...)
	return out
}
