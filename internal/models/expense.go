package models

import "github.com/shopspring/decimal"

// Expense represents a single spend recorded against a budget
type Expense struct {
	Base
	BudgetID uint            `gorm:"not null;index" json:"budget_id"`
	Name     string          `gorm:"size:100;not null" json:"name"`
	Amount   decimal.Decimal `gorm:"type:decimal(12,2);not null;check:amount > 0" json:"amount"`
}
