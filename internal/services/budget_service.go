package services

import (
	"errors"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	apperrors "cashtrackr/internal/errors"
	"cashtrackr/internal/models"
	"cashtrackr/internal/pagination"
)

// budgetService handles budget-related business logic.
type budgetService struct {
	db *gorm.DB
}

// NewBudgetService creates a new BudgetServicer.
func NewBudgetService(db *gorm.DB) BudgetServicer {
	return &budgetService{db: db}
}

// CreateBudget creates a new budget owned by userID.
func (s *budgetService) CreateBudget(userID uint, name string, amount decimal.Decimal) (*models.Budget, error) {
	if name == "" || !models.ValidAmount(amount) {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "name is required and amount must be greater than 0 with at most 2 decimal places")
	}

	budget := &models.Budget{
		UserID:   userID,
		Name:     name,
		Amount:   amount,
		Expenses: []models.Expense{},
	}

	if err := s.db.Create(budget).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	return budget, nil
}

// GetUserBudgets returns a page of the user's budgets, newest first.
func (s *budgetService) GetUserBudgets(userID uint, page pagination.PageRequest) (*pagination.PageResponse[models.Budget], error) {
	page.Normalize()

	base := s.db.Model(&models.Budget{}).Where("user_id = ?", userID).Session(&gorm.Session{})

	var totalItems int64
	if err := base.Count(&totalItems).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	var budgets []models.Budget
	if err := base.Preload("Expenses").
		Order("created_at DESC").Order("id DESC").
		Scopes(pagination.Paginate(page)).
		Find(&budgets).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	result := pagination.NewPageResponse(budgets, page, totalItems)
	return &result, nil
}

// GetAllUserBudgets returns every budget of the user with its expenses.
func (s *budgetService) GetAllUserBudgets(userID uint) ([]models.Budget, error) {
	var budgets []models.Budget
	if err := s.db.Preload("Expenses").
		Where("user_id = ?", userID).
		Order("created_at DESC").Order("id DESC").
		Find(&budgets).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return budgets, nil
}

// GetBudgetByID returns a budget with its expenses regardless of owner.
func (s *budgetService) GetBudgetByID(budgetID uint) (*models.Budget, error) {
	var budget models.Budget
	if err := s.db.Preload("Expenses").First(&budget, budgetID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrBudgetNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	if budget.Expenses == nil {
		budget.Expenses = []models.Expense{}
	}
	return &budget, nil
}

// UpdateBudget replaces the budget's name and amount.
func (s *budgetService) UpdateBudget(budget *models.Budget, name string, amount decimal.Decimal) (*models.Budget, error) {
	if name == "" || !models.ValidAmount(amount) {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "name is required and amount must be greater than 0 with at most 2 decimal places")
	}

	budget.Name = name
	budget.Amount = amount

	if err := s.db.Model(budget).Select("Name", "Amount").Updates(budget).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	return budget, nil
}

// DeleteBudget deletes a budget together with its expenses.
func (s *budgetService) DeleteBudget(budget *models.Budget) error {
	if err := s.db.Select("Expenses").Delete(budget).Error; err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return nil
}
