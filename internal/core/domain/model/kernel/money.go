package kernel

import (
	"fmt"

	"dentallab/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// Money is a non-negative monetary amount. It wraps shopspring/decimal so
// price arithmetic never drifts the way float64 does.
//
// The zero value is a valid amount of 0.
type Money struct {
	amount decimal.Decimal
}

// NewMoney validates that amount is not negative.
func NewMoney(amount decimal.Decimal) (Money, error) {
	if amount.IsNegative() {
		return Money{}, errs.NewValueIsInvalidErrorWithCause(
			"amount is invalid", fmt.Errorf("%s is negative", amount.String()))
	}
	return Money{amount: amount}, nil
}

// MustMoney parses a decimal literal. It panics on bad input and is meant
// for constants and tests.
func MustMoney(s string) Money {
	m, err := NewMoney(decimal.RequireFromString(s))
	if err != nil {
		panic(err)
	}
	return m
}

// MoneyFromFloat converts a float amount (as received over JSON) to Money.
func MoneyFromFloat(f float64) (Money, error) {
	return NewMoney(decimal.NewFromFloat(f))
}

func (m Money) Decimal() decimal.Decimal {
	return m.amount
}

// Float64 returns the amount as a float for transport encodings.
func (m Money) Float64() float64 {
	f, _ := m.amount.Float64()
	return f
}

// Times multiplies by a quantity.
func (m Money) Times(quantity int) Money {
	return Money{amount: m.amount.Mul(decimal.NewFromInt(int64(quantity)))}
}

// Minus subtracts other. It fails when the result would be negative.
func (m Money) Minus(other Money) (Money, error) {
	if m.amount.LessThan(other.amount) {
		return Money{}, errs.NewValueIsOutOfRangeError("discount", other.amount.String(), "0", m.amount.String())
	}
	return Money{amount: m.amount.Sub(other.amount)}, nil
}

func (m Money) IsEqual(other Money) bool {
	return m.amount.Equal(other.amount)
}

func (m Money) String() string {
	return m.amount.StringFixed(2)
}
