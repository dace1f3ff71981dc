package decimal

import (
	"github.com/shopspring/decimal"
)

// Money represents a monetary amount with proper financial precision
type Money struct {
	decimal.Decimal
}

// NewMoney creates a new Money instance from a float64
func NewMoney(value float64) Money {
	return Money{decimal.NewFromFloat(value)}
}

// NewMoneyFromDecimal creates a new Money instance from a decimal.Decimal
func NewMoneyFromDecimal(d decimal.Decimal) Money {
	return Money{d}
}

// NewMoneyFromString creates a new Money instance from a string
func NewMoneyFromString(value string) (Money, error) {
	d, err := decimal.NewFromString(value)
	if err != nil {
		return Money{}, err
	}
	return Money{d}, nil
}

// Round rounds the money amount to cents
func (m Money) Round() Money {
	return Money{m.Decimal.Round(2)}
}

// Add adds another Money amount
func (m Money) Add(other Money) Money {
	return Money{m.Decimal.Add(other.Decimal)}
}

// Sub subtracts another Money amount
func (m Money) Sub(other Money) Money {
	return Money{m.Decimal.Sub(other.Decimal)}
}

// Mul multiplies by a decimal factor
func (m Money) Mul(factor decimal.Decimal) Money {
	return Money{m.Decimal.Mul(factor)}
}

// IsZero checks if the amount is zero
func (m Money) IsZero() bool {
	return m.Decimal.IsZero()
}

// IsNegative checks if the amount is negative
func (m Money) IsNegative() bool {
	return m.Decimal.IsNegative()
}

// Zero returns a zero Money amount
func Zero() Money {
	return Money{decimal.Zero}
}

// String returns the string representation with cent precision
func (m Money) String() string {
	return m.Decimal.StringFixed(2)
}

// Format formats the money amount with proper currency formatting
func (m Money) Format() string {
	return "$" + m.String()
}

// ApplyAnnualRate grows an amount by one year of the given rate and rounds
// the result to cents. Growth and interest use the same formula:
// amount * (1 + rate).
func ApplyAnnualRate(amount, rate decimal.Decimal) decimal.Decimal {
	return amount.Mul(decimal.NewFromInt(1).Add(rate)).Round(2)
}

// CompoundAdjust compounds an amount by the given rate over a number of whole
// years and rounds to cents. Zero or negative years returns the amount
// unchanged. Used for inflation-adjusting scheduled amounts from their start
// year to the projection year.
func CompoundAdjust(amount, rate decimal.Decimal, years int) decimal.Decimal {
	if years <= 0 {
		return amount
	}
	factor := decimal.NewFromInt(1).Add(rate).Pow(decimal.NewFromInt(int64(years)))
	return amount.Mul(factor).Round(2)
}
