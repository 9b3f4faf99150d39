package handlers

import (
	"bytes"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	apperrors "cashtrackr/internal/errors"
	"cashtrackr/internal/export"
	"cashtrackr/internal/middleware"
	"cashtrackr/internal/pagination"
	"cashtrackr/internal/services"
)

// BudgetHandler handles budget-related requests.
type BudgetHandler struct {
	budgetService services.BudgetServicer
	auditService  services.AuditServicer
}

// NewBudgetHandler creates a new BudgetHandler.
func NewBudgetHandler(budgetService services.BudgetServicer, auditService services.AuditServicer) *BudgetHandler {
	return &BudgetHandler{budgetService: budgetService, auditService: auditService}
}

// BudgetRequest represents the payload for creating or replacing a budget.
type BudgetRequest struct {
	Name   string          `json:"name" binding:"required,max=100"`
	Amount decimal.Decimal `json:"amount" binding:"required,gt=0,money" swaggertype:"number"`
}

// CreateBudget handles the creation of a new budget.
// @Summary     Create a budget
// @Tags        budgets
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       request body BudgetRequest true "Budget details"
// @Success     201 {object} models.Budget "Budget created"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /budgets [post]
func (h *BudgetHandler) CreateBudget(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	req, err := requestBody[BudgetRequest](c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	budget, err := h.budgetService.CreateBudget(userID, req.Name, req.Amount)
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(services.AuditEvent{
		UserID:       userID,
		Action:       "CREATE_BUDGET",
		ResourceType: "budget",
		ResourceID:   budget.ID,
		IPAddress:    c.ClientIP(),
		Changes:      map[string]any{"name": req.Name, "amount": req.Amount.String()},
	})

	c.JSON(http.StatusCreated, gin.H{"budget": budget})
}

// GetBudgets handles listing budgets for the authenticated user. The list is
// paginated: without page_size only the newest 20 budgets are returned, and
// total_items/total_pages tell the client how many remain.
// @Summary     Get budgets
// @Description Get a paginated list of the user's budgets, newest first. page defaults to 1 and page_size to 20 (at most 100). Use total_items and total_pages to fetch the rest.
// @Tags        budgets
// @Produce     json
// @Security    BearerAuth
// @Param       page      query int false "Page number (default 1)"
// @Param       page_size query int false "Items per page (default 20, max 100)"
// @Success     200 {object} pagination.PageResponse[models.Budget] "Paginated budgets"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /budgets [get]
func (h *BudgetHandler) GetBudgets(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var page pagination.PageRequest
	if err := c.ShouldBindQuery(&page); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, "page and page_size must be positive integers"))
		return
	}

	result, err := h.budgetService.GetUserBudgets(userID, page)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// ExportBudgets streams the user's budgets and expenses as an xlsx workbook.
// @Summary     Export budgets
// @Tags        budgets
// @Produce     application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Security    BearerAuth
// @Success     200 {file} file "Workbook"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /budgets/export [get]
func (h *BudgetHandler) ExportBudgets(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	budgets, err := h.budgetService.GetAllUserBudgets(userID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var buf bytes.Buffer
	if err := export.WriteBudgets(&buf, budgets); err != nil {
		respondWithError(c, apperrors.Wrap(apperrors.ErrInternalServer, err))
		return
	}

	filename := fmt.Sprintf("budgets_%s.xlsx", time.Now().Format("20060102"))
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, export.ContentType, buf.Bytes())
}

// GetBudget returns the budget resolved by the ownership gate.
// @Summary     Get budget by ID
// @Description Get a budget with its expenses
// @Tags        budgets
// @Produce     json
// @Security    BearerAuth
// @Param       budgetId path int true "Budget ID"
// @Success     200 {object} models.Budget "Budget details"
// @Failure     400 {object} ErrorResponse "Invalid budget ID"
// @Failure     401 {object} ErrorResponse "Unauthorized or not the owner"
// @Failure     404 {object} ErrorResponse "Budget not found"
// @Router      /budgets/{budgetId} [get]
func (h *BudgetHandler) GetBudget(c *gin.Context) {
	budget, err := middleware.CurrentBudget(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"budget": budget})
}

// UpdateBudget replaces the name and amount of a budget.
// @Summary     Update budget
// @Tags        budgets
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       budgetId path int           true "Budget ID"
// @Param       request  body BudgetRequest true "Budget details"
// @Success     200 {object} models.Budget "Updated budget"
// @Failure     400 {object} ErrorResponse "Invalid input or budget ID"
// @Failure     401 {object} ErrorResponse "Unauthorized or not the owner"
// @Failure     404 {object} ErrorResponse "Budget not found"
// @Router      /budgets/{budgetId} [put]
func (h *BudgetHandler) UpdateBudget(c *gin.Context) {
	budget, err := middleware.CurrentBudget(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	req, err := requestBody[BudgetRequest](c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	updated, err := h.budgetService.UpdateBudget(budget, req.Name, req.Amount)
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(services.AuditEvent{
		UserID:       budget.UserID,
		Action:       "UPDATE_BUDGET",
		ResourceType: "budget",
		ResourceID:   budget.ID,
		IPAddress:    c.ClientIP(),
		Changes:      map[string]any{"name": req.Name, "amount": req.Amount.String()},
	})

	c.JSON(http.StatusOK, gin.H{"budget": updated})
}

// DeleteBudget deletes a budget and its expenses.
// @Summary     Delete budget
// @Tags        budgets
// @Produce     json
// @Security    BearerAuth
// @Param       budgetId path int true "Budget ID"
// @Success     200 {object} MessageResponse "Budget deleted"
// @Failure     400 {object} ErrorResponse "Invalid budget ID"
// @Failure     401 {object} ErrorResponse "Unauthorized or not the owner"
// @Failure     404 {object} ErrorResponse "Budget not found"
// @Router      /budgets/{budgetId} [delete]
func (h *BudgetHandler) DeleteBudget(c *gin.Context) {
	budget, err := middleware.CurrentBudget(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	if err := h.budgetService.DeleteBudget(budget); err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(services.AuditEvent{
		UserID:       budget.UserID,
		Action:       "DELETE_BUDGET",
		ResourceType: "budget",
		ResourceID:   budget.ID,
		IPAddress:    c.ClientIP(),
	})

	c.JSON(http.StatusOK, gin.H{"message": "Budget deleted"})
}
