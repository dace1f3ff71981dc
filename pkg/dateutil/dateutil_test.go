package dateutil

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestAgeForYear(t *testing.T) {
	tests := []struct {
		name     string
		dob      time.Time
		year     int
		expected int
	}{
		{
			name:     "Mid-year birthday still counts for the whole year",
			dob:      time.Date(1990, 6, 15, 0, 0, 0, 0, time.UTC),
			year:     2025,
			expected: 35,
		},
		{
			name:     "December birthday",
			dob:      time.Date(1960, 12, 31, 0, 0, 0, 0, time.UTC),
			year:     2025,
			expected: 65,
		},
		{
			name:     "Birth year itself",
			dob:      time.Date(2000, 3, 1, 0, 0, 0, 0, time.UTC),
			year:     2000,
			expected: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, AgeForYear(tt.dob, tt.year))
		})
	}
}

func TestYearForAge(t *testing.T) {
	dob := time.Date(1965, 4, 20, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, 2030, YearForAge(dob, 65))
	assert.Equal(t, 1965, YearForAge(dob, 0))
}

func TestYearForAgeRoundTrips(t *testing.T) {
	dob := time.Date(1972, 9, 3, 0, 0, 0, 0, time.UTC)
	for age := 0; age <= 100; age += 10 {
		year := YearForAge(dob, age)
		assert.Equal(t, age, AgeForYear(dob, year))
	}
}

func TestYearsBetween(t *testing.T) {
	assert.Equal(t, 1, YearsBetween(2025, 2025))
	assert.Equal(t, 8, YearsBetween(2025, 2032))
	assert.Equal(t, 0, YearsBetween(2032, 2025))
}

func TestYearsToAges(t *testing.T) {
	dob := time.Date(1970, 1, 1, 0, 0, 0, 0, time.UTC)
	ages := YearsToAges(dob, 2025, 2027)
	assert.Len(t, ages, 3)
	assert.Equal(t, 55, ages[2025])
	assert.Equal(t, 57, ages[2027])
}

func TestDaysInYear(t *testing.T) {
	assert.Equal(t, 366, DaysInYear(2024))
	assert.Equal(t, 365, DaysInYear(2025))
	assert.Equal(t, 365, DaysInYear(1900)) // century, not leap
	assert.Equal(t, 366, DaysInYear(2000))
}
