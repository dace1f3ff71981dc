package dateutil

import (
	"time"
)

// All projection math uses whole-year semantics: every financial event occurs
// at the start of a year, and a person's age in a year is the year difference
// only. Birth dates are stored as full dates; ages and years drive the math.

// AgeForYear returns the age a person reaches in the given calendar year.
func AgeForYear(dob time.Time, year int) int {
	return year - dob.Year()
}

// YearForAge returns the calendar year in which a person reaches the target age.
func YearForAge(dob time.Time, age int) int {
	return dob.Year() + age
}

// YearsBetween returns the number of years between two years, inclusive.
// Returns 0 when the range is empty.
func YearsBetween(startYear, endYear int) int {
	if endYear < startYear {
		return 0
	}
	return endYear - startYear + 1
}

// YearsToAges maps each year in [startYear, endYear] to the age reached that year.
func YearsToAges(dob time.Time, startYear, endYear int) map[int]int {
	ages := make(map[int]int, YearsBetween(startYear, endYear))
	for year := startYear; year <= endYear; year++ {
		ages[year] = AgeForYear(dob, year)
	}
	return ages
}

// IsLeapYear checks if a year is a leap year
func IsLeapYear(year int) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}

// DaysInYear returns the number of days in a given year
func DaysInYear(year int) int {
	if IsLeapYear(year) {
		return 366
	}
	return 365
}
