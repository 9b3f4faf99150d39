package middleware

import (
	"github.com/gin-gonic/gin"

	apperrors "cashtrackr/internal/errors"
	"cashtrackr/internal/models"
	"cashtrackr/internal/services"
)

const (
	budgetKey  = "budget"
	expenseKey = "expense"
)

// BudgetGate resolves the budget named by the budgetId parameter and checks
// that it belongs to the authenticated user. It must run after ValidateID
// and HandleInputErrors.
func BudgetGate(budgets services.BudgetServicer) gin.HandlerFunc {
	return func(c *gin.Context) {
		budget, err := budgets.GetBudgetByID(ParamID(c, "budgetId"))
		if err != nil {
			abortWithError(c, err)
			return
		}

		identity, err := CurrentUser(c)
		if err != nil {
			abortWithError(c, err)
			return
		}
		if budget.UserID != identity.ID {
			abortWithError(c, apperrors.ErrAccessDenied)
			return
		}

		c.Set(budgetKey, budget)
		c.Next()
	}
}

// ExpenseGate resolves the expense named by the expenseId parameter within
// the budget already resolved by BudgetGate.
func ExpenseGate(expenses services.ExpenseServicer) gin.HandlerFunc {
	return func(c *gin.Context) {
		budget, err := CurrentBudget(c)
		if err != nil {
			abortWithError(c, err)
			return
		}

		expense, err := expenses.GetExpenseByID(budget.ID, ParamID(c, "expenseId"))
		if err != nil {
			abortWithError(c, err)
			return
		}

		c.Set(expenseKey, expense)
		c.Next()
	}
}

// CurrentBudget returns the budget resolved by BudgetGate.
func CurrentBudget(c *gin.Context) (*models.Budget, error) {
	v, ok := c.Get(budgetKey)
	if !ok {
		return nil, apperrors.ErrBudgetNotFound
	}
	budget, ok := v.(*models.Budget)
	if !ok {
		return nil, apperrors.ErrBudgetNotFound
	}
	return budget, nil
}

// CurrentExpense returns the expense resolved by ExpenseGate.
func CurrentExpense(c *gin.Context) (*models.Expense, error) {
	v, ok := c.Get(expenseKey)
	if !ok {
		return nil, apperrors.ErrExpenseNotFound
	}
	expense, ok := v.(*models.Expense)
	if !ok {
		return nil, apperrors.ErrExpenseNotFound
	}
	return expense, nil
}
