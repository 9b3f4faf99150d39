package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"cashtrackr/internal/middleware"
	"cashtrackr/internal/services"
)

// ExpenseHandler handles expenses nested under a budget.
type ExpenseHandler struct {
	expenseService services.ExpenseServicer
	auditService   services.AuditServicer
}

// NewExpenseHandler creates a new ExpenseHandler.
func NewExpenseHandler(expenseService services.ExpenseServicer, auditService services.AuditServicer) *ExpenseHandler {
	return &ExpenseHandler{expenseService: expenseService, auditService: auditService}
}

// ExpenseRequest represents the payload for creating or replacing an expense.
type ExpenseRequest struct {
	Name   string          `json:"name" binding:"required,max=100"`
	Amount decimal.Decimal `json:"amount" binding:"required,gt=0,money" swaggertype:"number"`
}

// GetExpenses lists the expenses of a budget.
// @Summary     List expenses
// @Tags        expenses
// @Produce     json
// @Security    BearerAuth
// @Param       budgetId path int true "Budget ID"
// @Success     200 {array}  models.Expense "Expenses"
// @Failure     401 {object} ErrorResponse "Unauthorized or not the owner"
// @Failure     404 {object} ErrorResponse "Budget not found"
// @Router      /budgets/{budgetId}/expenses [get]
func (h *ExpenseHandler) GetExpenses(c *gin.Context) {
	budget, err := middleware.CurrentBudget(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	expenses, err := h.expenseService.GetBudgetExpenses(budget.ID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"expenses": expenses})
}

// CreateExpense records an expense against the resolved budget.
// @Summary     Create an expense
// @Tags        expenses
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       budgetId path int            true "Budget ID"
// @Param       request  body ExpenseRequest true "Expense details"
// @Success     201 {object} models.Expense "Expense created"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized or not the owner"
// @Failure     404 {object} ErrorResponse "Budget not found"
// @Router      /budgets/{budgetId}/expenses [post]
func (h *ExpenseHandler) CreateExpense(c *gin.Context) {
	budget, err := middleware.CurrentBudget(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	req, err := requestBody[ExpenseRequest](c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	expense, err := h.expenseService.CreateExpense(budget.ID, req.Name, req.Amount)
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(services.AuditEvent{
		UserID:       budget.UserID,
		Action:       "CREATE_EXPENSE",
		ResourceType: "expense",
		ResourceID:   expense.ID,
		IPAddress:    c.ClientIP(),
		Changes:      map[string]any{"budget_id": budget.ID, "name": req.Name, "amount": req.Amount.String()},
	})

	c.JSON(http.StatusCreated, gin.H{"expense": expense})
}

// GetExpense returns the expense resolved by the ownership gate.
// @Summary     Get expense by ID
// @Tags        expenses
// @Produce     json
// @Security    BearerAuth
// @Param       budgetId  path int true "Budget ID"
// @Param       expenseId path int true "Expense ID"
// @Success     200 {object} models.Expense "Expense"
// @Failure     400 {object} ErrorResponse "Invalid ID"
// @Failure     401 {object} ErrorResponse "Unauthorized or not the owner"
// @Failure     404 {object} ErrorResponse "Budget or expense not found"
// @Router      /budgets/{budgetId}/expenses/{expenseId} [get]
func (h *ExpenseHandler) GetExpense(c *gin.Context) {
	expense, err := middleware.CurrentExpense(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"expense": expense})
}

// UpdateExpense replaces the name and amount of an expense.
// @Summary     Update expense
// @Tags        expenses
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       budgetId  path int            true "Budget ID"
// @Param       expenseId path int            true "Expense ID"
// @Param       request   body ExpenseRequest true "Expense details"
// @Success     200 {object} models.Expense "Updated expense"
// @Failure     400 {object} ErrorResponse "Invalid input or ID"
// @Failure     401 {object} ErrorResponse "Unauthorized or not the owner"
// @Failure     404 {object} ErrorResponse "Budget or expense not found"
// @Router      /budgets/{budgetId}/expenses/{expenseId} [put]
func (h *ExpenseHandler) UpdateExpense(c *gin.Context) {
	expense, err := middleware.CurrentExpense(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	req, err := requestBody[ExpenseRequest](c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	updated, err := h.expenseService.UpdateExpense(expense, req.Name, req.Amount)
	if err != nil {
		respondWithError(c, err)
		return
	}

	userID, _ := getUserID(c)
	h.auditService.Log(services.AuditEvent{
		UserID:       userID,
		Action:       "UPDATE_EXPENSE",
		ResourceType: "expense",
		ResourceID:   expense.ID,
		IPAddress:    c.ClientIP(),
		Changes:      map[string]any{"name": req.Name, "amount": req.Amount.String()},
	})

	c.JSON(http.StatusOK, gin.H{"expense": updated})
}

// DeleteExpense removes an expense.
// @Summary     Delete expense
// @Tags        expenses
// @Produce     json
// @Security    BearerAuth
// @Param       budgetId  path int true "Budget ID"
// @Param       expenseId path int true "Expense ID"
// @Success     200 {object} MessageResponse "Expense deleted"
// @Failure     400 {object} ErrorResponse "Invalid ID"
// @Failure     401 {object} ErrorResponse "Unauthorized or not the owner"
// @Failure     404 {object} ErrorResponse "Budget or expense not found"
// @Router      /budgets/{budgetId}/expenses/{expenseId} [delete]
func (h *ExpenseHandler) DeleteExpense(c *gin.Context) {
	expense, err := middleware.CurrentExpense(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	if err := h.expenseService.DeleteExpense(expense); err != nil {
		respondWithError(c, err)
		return
	}

	userID, _ := getUserID(c)
	h.auditService.Log(services.AuditEvent{
		UserID:       userID,
		Action:       "DELETE_EXPENSE",
		ResourceType: "expense",
		ResourceID:   expense.ID,
		IPAddress:    c.ClientIP(),
	})

	c.JSON(http.StatusOK, gin.H{"message": "Expense deleted"})
}
