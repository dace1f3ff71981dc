package calculation

import (
	"github.com/shopspring/decimal"

	"github.com/planwise/nestegg/internal/domain"
	"github.com/planwise/nestegg/pkg/dateutil"
	money "github.com/planwise/nestegg/pkg/decimal"
)

// Balances is the portfolio state threaded from one projection year to the
// next: one balance per asset and liability, plus two pooled cash balances
// accumulated by flows, income, and spending. Cash that counts toward the
// nest egg is kept apart from cash that only counts toward net worth; both
// pools grow at the default rate, the "remaining balance" of the growth step.
type Balances struct {
	Assets       map[int]decimal.Decimal
	Liabilities  map[int]decimal.Decimal
	NestEggCash  decimal.Decimal
	NetWorthCash decimal.Decimal
}

// seedBalances builds year-zero state directly from each entity's stored
// value. No flows, income, or spending apply to the seed; the seed year's
// growth and interest steps still run.
func seedBalances(es *EffectiveEntitySet) Balances {
	b := Balances{
		Assets:      make(map[int]decimal.Decimal, len(es.Assets)),
		Liabilities: make(map[int]decimal.Decimal, len(es.Liabilities)),
	}
	for _, a := range es.Assets {
		b.Assets[a.ID] = a.Value
	}
	for _, l := range es.Liabilities {
		b.Liabilities[l.ID] = l.Value
	}
	return b
}

func (b Balances) clone() Balances {
	out := Balances{
		Assets:       make(map[int]decimal.Decimal, len(b.Assets)),
		Liabilities:  make(map[int]decimal.Decimal, len(b.Liabilities)),
		NestEggCash:  b.NestEggCash,
		NetWorthCash: b.NetWorthCash,
	}
	for id, v := range b.Assets {
		out.Assets[id] = v
	}
	for id, v := range b.Liabilities {
		out.Liabilities[id] = v
	}
	return out
}

// yearContext carries the per-run inputs the transition function needs
// beyond the balances themselves.
type yearContext struct {
	es             *EffectiveEntitySet
	household      *domain.Household
	retirementYear int
	applyFlows     bool // false for the seed year
}

// advance executes one projection year in the fixed operation order:
//  1. scheduled inflows   (inflation-adjusted per flow toggle)
//  2. scheduled outflows  (same handling)
//  3. retirement income   (age-gated, escalated per stream config)
//  4. retirement spending (scenario-only, from retirement year on)
//  5. asset growth        (effective rate per asset, once)
//  6. liability interest  (fixed rate per liability, once; no rate = static)
//  7. year-end totals
//
// The input balances are never mutated; a full new state is returned.
func advance(prior Balances, ctx yearContext, year int) (Balances, domain.YearResult) {
	b := prior.clone()
	assumptions := ctx.es.Assumptions

	if ctx.applyFlows {
		// Steps 1 and 2: scheduled flows.
		for _, f := range ctx.es.Flows {
			if !f.ActiveIn(year) {
				continue
			}
			amount := f.AnnualAmount
			if f.ApplyInflation {
				amount = money.CompoundAdjust(amount, assumptions.InflationRate, year-f.StartYear)
			}
			if f.Type == domain.FlowOutflow {
				b.NestEggCash = b.NestEggCash.Sub(amount)
			} else {
				b.NestEggCash = b.NestEggCash.Add(amount)
			}
		}

		// Step 3: retirement income.
		for _, r := range ctx.es.IncomeStreams {
			amount, active := incomeForYear(&r, ctx, year)
			if !active {
				continue
			}
			if r.IncludeInNestEgg {
				b.NestEggCash = b.NestEggCash.Add(amount)
			} else {
				b.NetWorthCash = b.NetWorthCash.Add(amount)
			}
		}

		// Step 4: retirement spending, always inflation-adjusted from the
		// retirement year, drawn from the nest egg only.
		if !assumptions.AnnualRetirementSpending.IsZero() && year >= ctx.retirementYear {
			spend := money.CompoundAdjust(assumptions.AnnualRetirementSpending, assumptions.InflationRate, year-ctx.retirementYear)
			b.NestEggCash = b.NestEggCash.Sub(spend)
		}
	}

	// Step 5: growth, compounded once against the post-step-4 balances.
	// Assets grow at their own effective rate; the pooled cash is the
	// remaining balance and grows at the default rate.
	for _, a := range ctx.es.Assets {
		rate := EffectiveRate(a.Growth, year, assumptions.DefaultGrowthRate)
		b.Assets[a.ID] = money.ApplyAnnualRate(b.Assets[a.ID], rate)
	}
	if !b.NestEggCash.IsZero() {
		b.NestEggCash = money.ApplyAnnualRate(b.NestEggCash, assumptions.DefaultGrowthRate)
	}
	if !b.NetWorthCash.IsZero() {
		b.NetWorthCash = money.ApplyAnnualRate(b.NetWorthCash, assumptions.DefaultGrowthRate)
	}

	// Step 6: liability interest. No configured rate means the balance is
	// carried forward unchanged.
	for _, l := range ctx.es.Liabilities {
		if l.InterestRate == nil {
			continue
		}
		b.Liabilities[l.ID] = money.ApplyAnnualRate(b.Liabilities[l.ID], *l.InterestRate)
	}

	// Step 7: year-end totals.
	result := domain.YearResult{
		Year:       year,
		AgePerson1: dateutil.AgeForYear(ctx.household.Person1.BirthDate, year),
		NestEgg:    b.NestEggCash,
		NetWorth:   b.NestEggCash.Add(b.NetWorthCash),
	}
	if ctx.household.Person2 != nil {
		result.AgePerson2 = dateutil.AgeForYear(ctx.household.Person2.BirthDate, year)
	}
	for _, a := range ctx.es.Assets {
		v := b.Assets[a.ID]
		result.NetWorth = result.NetWorth.Add(v)
		if a.IncludeInNestEgg {
			result.NestEgg = result.NestEgg.Add(v)
		}
	}
	for _, l := range ctx.es.Liabilities {
		v := b.Liabilities[l.ID]
		result.NetWorth = result.NetWorth.Sub(v)
		if l.IncludeInNestEgg {
			result.NestEgg = result.NestEgg.Sub(v)
		}
	}

	return b, result
}

// incomeForYear returns the escalated income amount for a stream in a year,
// and whether the stream is active at the owner's age that year. Exactly one
// escalation treatment applies per year: the stream's effective growth rate
// when it carries an OVERRIDE or STEPWISE config, else the inflation rate
// when the inflation toggle is set, else the amount stays flat.
func incomeForYear(r *domain.RetirementIncomeStream, ctx yearContext, year int) (decimal.Decimal, bool) {
	owner := ctx.household.Person(r.Owner)
	if owner == nil {
		return decimal.Zero, false
	}
	startYear := dateutil.YearForAge(owner.BirthDate, r.StartAge)
	if year < startYear {
		return decimal.Zero, false
	}
	if r.EndAge != nil && year > dateutil.YearForAge(owner.BirthDate, *r.EndAge) {
		return decimal.Zero, false
	}

	assumptions := ctx.es.Assumptions
	escalating := r.Growth != nil && r.Growth.Type != domain.GrowthDefault
	if !escalating && !r.ApplyInflation {
		return r.AnnualIncome, true
	}
	if !escalating {
		return money.CompoundAdjust(r.AnnualIncome, assumptions.InflationRate, year-startYear), true
	}

	// Stepwise rates can differ per year, so escalate year by year from the
	// stream's start.
	amount := r.AnnualIncome
	for y := startYear + 1; y <= year; y++ {
		rate := EffectiveRate(r.Growth, y, assumptions.DefaultGrowthRate)
		amount = amount.Mul(decimal.NewFromInt(1).Add(rate))
	}
	return amount.Round(2), true
}
