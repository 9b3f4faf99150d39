package services

import (
	"errors"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	apperrors "cashtrackr/internal/errors"
	"cashtrackr/internal/models"
)

// expenseService handles expenses recorded against a budget.
type expenseService struct {
	db *gorm.DB
}

// NewExpenseService creates a new ExpenseServicer.
func NewExpenseService(db *gorm.DB) ExpenseServicer {
	return &expenseService{db: db}
}

// CreateExpense records an expense under budgetID.
func (s *expenseService) CreateExpense(budgetID uint, name string, amount decimal.Decimal) (*models.Expense, error) {
	if name == "" || !models.ValidAmount(amount) {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "name is required and amount must be greater than 0 with at most 2 decimal places")
	}

	expense := &models.Expense{
		BudgetID: budgetID,
		Name:     name,
		Amount:   amount,
	}

	if err := s.db.Create(expense).Error; err != nil {
		if errors.Is(err, gorm.ErrForeignKeyViolated) {
			return nil, apperrors.ErrBudgetNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	return expense, nil
}

// GetBudgetExpenses lists the expenses of a budget, oldest first.
func (s *expenseService) GetBudgetExpenses(budgetID uint) ([]models.Expense, error) {
	expenses := []models.Expense{}
	if err := s.db.Where("budget_id = ?", budgetID).Order("created_at ASC").Order("id ASC").Find(&expenses).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return expenses, nil
}

// GetExpenseByID returns an expense only if it belongs to budgetID.
func (s *expenseService) GetExpenseByID(budgetID, expenseID uint) (*models.Expense, error) {
	var expense models.Expense
	if err := s.db.Where("id = ? AND budget_id = ?", expenseID, budgetID).First(&expense).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrExpenseNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &expense, nil
}

// UpdateExpense replaces the expense's name and amount.
func (s *expenseService) UpdateExpense(expense *models.Expense, name string, amount decimal.Decimal) (*models.Expense, error) {
	if name == "" || !models.ValidAmount(amount) {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "name is required and amount must be greater than 0 with at most 2 decimal places")
	}

	expense.Name = name
	expense.Amount = amount

	if err := s.db.Model(expense).Select("Name", "Amount").Updates(expense).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	return expense, nil
}

// DeleteExpense removes a single expense.
func (s *expenseService) DeleteExpense(expense *models.Expense) error {
	if err := s.db.Delete(expense).Error; err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return nil
}
