package calculation

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/planwise/nestegg/internal/domain"
)

func dec(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

func decp(s string) *decimal.Decimal {
	d := dec(s)
	return &d
}

func intp(v int) *int {
	return &v
}

// newTestPlan builds a one-person plan created in 2025, retiring at 65 in
// 2030, projected through age 70 (2035), holding a single 500k asset growing
// at the 6% default rate.
func newTestPlan() *domain.Plan {
	return &domain.Plan{
		Name:             "Test Plan",
		PlanCreationYear: 2025,
		ReferencePerson:  domain.Person1,
		Household: domain.Household{
			Name: "Test Household",
			Person1: domain.Person{
				FirstName: "Avery",
				LastName:  "Jordan",
				BirthDate: time.Date(1965, 3, 15, 0, 0, 0, 0, time.UTC),
			},
		},
		BaseFacts: domain.BaseFacts{
			DefaultGrowthRate: dec("0.06"),
			InflationRate:     dec("0.02"),
			RetirementAge1:    65,
			FinalAge1:         70,
			FinalAgeSelector:  domain.Person1,
			Assets: []domain.Asset{
				{ID: 1, Name: "Brokerage", Value: dec("500000"), IncludeInNestEgg: true},
			},
		},
	}
}
