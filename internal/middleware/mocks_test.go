package middleware

import (
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"cashtrackr/internal/models"
	"cashtrackr/internal/pagination"
	"cashtrackr/internal/services"
	"cashtrackr/internal/validator"
)

func init() {
	gin.SetMode(gin.TestMode)
	validator.Register()
}

// --- mock services ---

type mockUserService struct {
	services.UserServicer
	getUserByIDFn func(id uint) (*models.User, error)
}

func (m *mockUserService) GetUserByID(id uint) (*models.User, error) {
	if m.getUserByIDFn != nil {
		return m.getUserByIDFn(id)
	}
	return &models.User{Base: models.Base{ID: id}, Name: "Test", Email: "test@example.com"}, nil
}

type mockBudgetService struct {
	getBudgetByIDFn func(budgetID uint) (*models.Budget, error)
}

func (m *mockBudgetService) CreateBudget(uint, string, decimal.Decimal) (*models.Budget, error) {
	return &models.Budget{}, nil
}

func (m *mockBudgetService) GetUserBudgets(uint, pagination.PageRequest) (*pagination.PageResponse[models.Budget], error) {
	resp := pagination.NewPageResponse([]models.Budget{}, pagination.PageRequest{}, 0)
	return &resp, nil
}

func (m *mockBudgetService) GetAllUserBudgets(uint) ([]models.Budget, error) {
	return []models.Budget{}, nil
}

func (m *mockBudgetService) GetBudgetByID(budgetID uint) (*models.Budget, error) {
	if m.getBudgetByIDFn != nil {
		return m.getBudgetByIDFn(budgetID)
	}
	return &models.Budget{Base: models.Base{ID: budgetID}}, nil
}

func (m *mockBudgetService) UpdateBudget(b *models.Budget, _ string, _ decimal.Decimal) (*models.Budget, error) {
	return b, nil
}

func (m *mockBudgetService) DeleteBudget(*models.Budget) error { return nil }

var _ services.BudgetServicer = (*mockBudgetService)(nil)

type mockExpenseService struct {
	getExpenseByIDFn func(budgetID, expenseID uint) (*models.Expense, error)
}

func (m *mockExpenseService) CreateExpense(uint, string, decimal.Decimal) (*models.Expense, error) {
	return &models.Expense{}, nil
}

func (m *mockExpenseService) GetBudgetExpenses(uint) ([]models.Expense, error) {
	return []models.Expense{}, nil
}

func (m *mockExpenseService) GetExpenseByID(budgetID, expenseID uint) (*models.Expense, error) {
	if m.getExpenseByIDFn != nil {
		return m.getExpenseByIDFn(budgetID, expenseID)
	}
	return &models.Expense{Base: models.Base{ID: expenseID}, BudgetID: budgetID}, nil
}

func (m *mockExpenseService) UpdateExpense(e *models.Expense, _ string, _ decimal.Decimal) (*models.Expense, error) {
	return e, nil
}

func (m *mockExpenseService) DeleteExpense(*models.Expense) error { return nil }

var _ services.ExpenseServicer = (*mockExpenseService)(nil)

// --- test helpers ---

func injectIdentity(id uint) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(identityKey, Identity{ID: id, Name: "Test", Email: "test@example.com"})
		c.Next()
	}
}

func doRequest(r *gin.Engine, method, path, body string, headers map[string]string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func parseJSON(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var result map[string]interface{}
	if err := json.Unmarshal(rec.Body.Bytes(), &result); err != nil {
		t.Fatalf("failed to parse JSON response: %v\nbody: %s", err, rec.Body.String())
	}
	return result
}

func assertErrorCode(t *testing.T, result map[string]interface{}, code string) {
	t.Helper()
	errObj, ok := result["error"].(map[string]interface{})
	if !ok {
		t.Fatalf("expected error object in response, got: %v", result)
	}
	if errObj["code"] != code {
		t.Errorf("expected error code %q, got %q", code, errObj["code"])
	}
}

