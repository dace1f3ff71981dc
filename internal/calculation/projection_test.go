package calculation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/planwise/nestegg/internal/domain"
)

func TestProjectBaseCase(t *testing.T) {
	plan := newTestPlan()
	window, err := ProjectionWindow(plan)
	require.NoError(t, err)
	es, err := Resolve(&plan.BaseFacts, nil)
	require.NoError(t, err)

	series, err := Project(plan, es, window, "base")
	require.NoError(t, err)

	require.Len(t, series.Years, 11)
	assert.Equal(t, 2025, series.Years[0].Year)
	assert.Equal(t, 2035, series.Years[10].Year)
	assert.Equal(t, 60, series.Years[0].AgePerson1)
	assert.Equal(t, 70, series.Years[10].AgePerson1)

	// 500k at 6%, compounded once per year with cent rounding.
	assert.Equal(t, "530000.00", series.ValueForYear(2025).StringFixed(2))
	assert.Equal(t, "561800.00", series.ValueForYear(2026).StringFixed(2))
	assert.Equal(t, "669112.79", series.ValueForYear(2029).StringFixed(2))
	assert.Equal(t, "709259.56", series.ValueForYear(2030).StringFixed(2))
}

func TestProjectSpendingScenario(t *testing.T) {
	plan := newTestPlan()
	window, err := ProjectionWindow(plan)
	require.NoError(t, err)

	scenario := &domain.Scenario{
		Name: "Spend in retirement",
		Assumptions: domain.ScenarioAssumptions{
			AnnualRetirementSpending: decp("20000"),
		},
	}
	es, err := Resolve(&plan.BaseFacts, scenario)
	require.NoError(t, err)

	series, err := Project(plan, es, window, scenario.Name)
	require.NoError(t, err)

	// Untouched until retirement, then (prior - 20000) grown at 6%.
	assert.Equal(t, "669112.79", series.ValueForYear(2029).StringFixed(2))
	assert.Equal(t, "688059.56", series.ValueForYear(2030).StringFixed(2))
}

func TestProjectEarlierRetirementShiftsSpending(t *testing.T) {
	plan := newTestPlan()
	window, err := ProjectionWindow(plan)
	require.NoError(t, err)

	scenario := &domain.Scenario{
		Name: "Retire at 63",
		Assumptions: domain.ScenarioAssumptions{
			RetirementAge1:           intp(63),
			AnnualRetirementSpending: decp("20000"),
		},
	}
	es, err := Resolve(&plan.BaseFacts, scenario)
	require.NoError(t, err)

	series, err := Project(plan, es, window, scenario.Name)
	require.NoError(t, err)

	// The window stays frozen at 2025..2035; only the spending onset moves.
	require.Len(t, series.Years, 11)
	base := dec("595508") // 500k after two 6% years
	wantFirstSpend := base.Sub(dec("20000")).Mul(dec("1.06"))
	assert.Equal(t, wantFirstSpend.StringFixed(2), series.ValueForYear(2028).StringFixed(2))
}

func TestProjectDeterminism(t *testing.T) {
	plan := newTestPlan()
	plan.BaseFacts.Liabilities = []domain.Liability{
		{ID: 1, Name: "Mortgage", Value: dec("150000"), InterestRate: decp("0.04"), IncludeInNestEgg: true},
	}
	plan.BaseFacts.ScheduledFlows = []domain.ScheduledFlow{
		{ID: 1, Name: "Savings", Type: domain.FlowInflow, AnnualAmount: dec("12000"), StartYear: 2026, EndYear: intp(2029), ApplyInflation: true},
	}
	window, err := ProjectionWindow(plan)
	require.NoError(t, err)

	run := func() domain.ProjectionSeries {
		es, err := Resolve(&plan.BaseFacts, nil)
		require.NoError(t, err)
		series, err := Project(plan, es, window, "base")
		require.NoError(t, err)
		return series
	}

	first := run()
	second := run()
	require.Len(t, second.Years, len(first.Years))
	for i := range first.Years {
		assert.Equal(t, first.Years[i].Year, second.Years[i].Year)
		assert.Equal(t, first.Years[i].NestEgg.StringFixed(2), second.Years[i].NestEgg.StringFixed(2))
		assert.Equal(t, first.Years[i].NetWorth.StringFixed(2), second.Years[i].NetWorth.StringFixed(2))
	}
}

func TestProjectValidatesUpFront(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*domain.BaseFacts)
		wantErr error
	}{
		{
			name: "bad flow type",
			mutate: func(bf *domain.BaseFacts) {
				bf.ScheduledFlows = []domain.ScheduledFlow{
					{ID: 1, Type: "transfer", AnnualAmount: dec("1000"), StartYear: 2026},
				}
			},
			wantErr: ErrIncompleteEntity,
		},
		{
			name: "flow end before start",
			mutate: func(bf *domain.BaseFacts) {
				bf.ScheduledFlows = []domain.ScheduledFlow{
					{ID: 1, Type: domain.FlowInflow, AnnualAmount: dec("1000"), StartYear: 2030, EndYear: intp(2026)},
				}
			},
			wantErr: ErrIncompleteEntity,
		},
		{
			name: "income stream without owner",
			mutate: func(bf *domain.BaseFacts) {
				bf.IncomeStreams = []domain.RetirementIncomeStream{
					{ID: 1, AnnualIncome: dec("30000"), StartAge: 67},
				}
			},
			wantErr: ErrIncompleteEntity,
		},
		{
			name: "overlapping asset intervals",
			mutate: func(bf *domain.BaseFacts) {
				bf.Assets[0].Growth = &domain.GrowthConfig{
					Type: domain.GrowthStepwise,
					Intervals: []domain.RateInterval{
						{StartYear: 2025, EndYear: intp(2030), Rate: dec("0.05")},
						{StartYear: 2028, EndYear: intp(2032), Rate: dec("0.04")},
					},
				}
			},
			wantErr: ErrOverlappingIntervals,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			plan := newTestPlan()
			tt.mutate(&plan.BaseFacts)
			window, err := ProjectionWindow(plan)
			require.NoError(t, err)
			es, err := Resolve(&plan.BaseFacts, nil)
			require.NoError(t, err)

			_, err = Project(plan, es, window, "base")
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestProjectStepwiseAssetGrowth(t *testing.T) {
	plan := newTestPlan()
	plan.BaseFacts.Assets[0].Growth = &domain.GrowthConfig{
		Type: domain.GrowthStepwise,
		Intervals: []domain.RateInterval{
			{StartYear: 2026, EndYear: intp(2027), Rate: dec("0.10")},
		},
	}
	window, err := ProjectionWindow(plan)
	require.NoError(t, err)
	es, err := Resolve(&plan.BaseFacts, nil)
	require.NoError(t, err)

	series, err := Project(plan, es, window, "base")
	require.NoError(t, err)

	// 2025 uses the default 6%, 2026-2027 the 10% interval, then default again.
	assert.Equal(t, "530000.00", series.ValueForYear(2025).StringFixed(2))
	assert.Equal(t, "583000.00", series.ValueForYear(2026).StringFixed(2))
	assert.Equal(t, "641300.00", series.ValueForYear(2027).StringFixed(2))
	assert.Equal(t, "679778.00", series.ValueForYear(2028).StringFixed(2))
}
