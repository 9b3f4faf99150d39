package export

import (
	"github.com/shopspring/decimal"

	"cashtrackr/internal/models"
)

// Spent sums the expenses recorded against a budget.
func Spent(b models.Budget) decimal.Decimal {
	total := decimal.Zero
	for _, e := range b.Expenses {
		total = total.Add(e.Amount)
	}
	return total
}
