package services

import (
	"context"

	"github.com/shopspring/decimal"

	"cashtrackr/internal/models"
	"cashtrackr/internal/pagination"
)

// UserServicer defines the contract for account lifecycle and credential checks.
type UserServicer interface {
	CreateAccount(ctx context.Context, name, email, password string) (*models.User, error)
	ConfirmAccount(token string) error
	AttemptLogin(email, password string) (*models.User, error)
	ForgotPassword(ctx context.Context, email string) error
	ValidateToken(token string) error
	ResetPassword(token, password string) error
	GetUserByID(id uint) (*models.User, error)
	UpdatePassword(userID uint, currentPassword, newPassword string) error
	CheckPassword(userID uint, password string) error
}

// BudgetServicer defines the contract for budget-related business logic.
// Ownership is enforced before these methods are reached; lookups by ID are
// not scoped to a user.
type BudgetServicer interface {
	CreateBudget(userID uint, name string, amount decimal.Decimal) (*models.Budget, error)
	GetUserBudgets(userID uint, page pagination.PageRequest) (*pagination.PageResponse[models.Budget], error)
	GetAllUserBudgets(userID uint) ([]models.Budget, error)
	GetBudgetByID(budgetID uint) (*models.Budget, error)
	UpdateBudget(budget *models.Budget, name string, amount decimal.Decimal) (*models.Budget, error)
	DeleteBudget(budget *models.Budget) error
}

// ExpenseServicer defines the contract for expenses nested under a budget.
type ExpenseServicer interface {
	CreateExpense(budgetID uint, name string, amount decimal.Decimal) (*models.Expense, error)
	GetBudgetExpenses(budgetID uint) ([]models.Expense, error)
	GetExpenseByID(budgetID, expenseID uint) (*models.Expense, error)
	UpdateExpense(expense *models.Expense, name string, amount decimal.Decimal) (*models.Expense, error)
	DeleteExpense(expense *models.Expense) error
}

// AuditEvent describes a single mutation worth recording.
type AuditEvent struct {
	UserID       uint
	Action       string
	ResourceType string
	ResourceID   uint
	IPAddress    string
	Changes      map[string]any
}

// AuditServicer defines the contract for audit logging.
type AuditServicer interface {
	Log(event AuditEvent)
}
