package models

import "github.com/shopspring/decimal"

// Amount columns are decimal(12,2) with CHECK (amount > 0).
const (
	AmountScale         = 2
	AmountIntegerDigits = 10
)

var maxAmount = decimal.New(1, AmountIntegerDigits)

// ValidAmount reports whether d is positive and can be stored in an amount
// column without rounding or overflow.
func ValidAmount(d decimal.Decimal) bool {
	return d.IsPositive() && d.Equal(d.Round(AmountScale)) && d.LessThan(maxAmount)
}
