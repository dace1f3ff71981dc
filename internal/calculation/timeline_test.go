package calculation

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/planwise/nestegg/internal/domain"
)

func TestProjectionWindow(t *testing.T) {
	t.Run("resolves from creation year and ages", func(t *testing.T) {
		plan := newTestPlan()
		w, err := ProjectionWindow(plan)
		require.NoError(t, err)
		assert.Equal(t, 2025, w.StartYear)
		assert.Equal(t, 2030, w.RetirementYear)
		assert.Equal(t, 2035, w.EndYear)
		assert.Equal(t, 11, w.Years())
	})

	t.Run("final age selector picks person 2", func(t *testing.T) {
		plan := newTestPlan()
		plan.Household.Person2 = &domain.Person{
			FirstName: "Morgan",
			BirthDate: time.Date(1970, 6, 1, 0, 0, 0, 0, time.UTC),
		}
		plan.BaseFacts.FinalAge2 = 90
		plan.BaseFacts.FinalAgeSelector = domain.Person2
		w, err := ProjectionWindow(plan)
		require.NoError(t, err)
		assert.Equal(t, 2060, w.EndYear)
	})

	t.Run("retirement at or before start is invalid", func(t *testing.T) {
		plan := newTestPlan()
		plan.BaseFacts.RetirementAge1 = 60 // retirement year == 2025
		_, err := ProjectionWindow(plan)
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrInvalidWindow)
	})

	t.Run("end at or before retirement is invalid", func(t *testing.T) {
		plan := newTestPlan()
		plan.BaseFacts.FinalAge1 = 65 // end year == retirement year
		_, err := ProjectionWindow(plan)
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrInvalidWindow)
	})

	t.Run("missing creation year", func(t *testing.T) {
		plan := newTestPlan()
		plan.PlanCreationYear = 0
		_, err := ProjectionWindow(plan)
		assert.ErrorIs(t, err, ErrIncompleteEntity)
	})

	t.Run("reference person not in household", func(t *testing.T) {
		plan := newTestPlan()
		plan.ReferencePerson = domain.Person2
		_, err := ProjectionWindow(plan)
		assert.ErrorIs(t, err, ErrIncompleteEntity)
	})

	t.Run("missing retirement age", func(t *testing.T) {
		plan := newTestPlan()
		plan.BaseFacts.RetirementAge1 = 0
		_, err := ProjectionWindow(plan)
		assert.ErrorIs(t, err, ErrIncompleteEntity)
	})
}
