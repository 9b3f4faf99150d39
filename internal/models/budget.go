package models

import "github.com/shopspring/decimal"

// Budget represents a spending plan owned by a single user
type Budget struct {
	Base
	UserID uint            `gorm:"not null;index" json:"user_id"`
	Name   string          `gorm:"size:100;not null" json:"name"`
	Amount decimal.Decimal `gorm:"type:decimal(12,2);not null;check:amount > 0" json:"amount"`

	// Relationships
	Expenses []Expense `gorm:"foreignKey:BudgetID;constraint:OnDelete:CASCADE" json:"expenses"`
}
