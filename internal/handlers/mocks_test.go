package handlers

import (
	"context"
	"encoding/json"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"cashtrackr/internal/middleware"
	"cashtrackr/internal/models"
	"cashtrackr/internal/pagination"
	"cashtrackr/internal/services"
	"cashtrackr/internal/validator"
)

func init() {
	gin.SetMode(gin.TestMode)
	validator.Register()
}

const testSecret = "handler-test-secret"

// --- mock services ---

type mockUserService struct {
	createAccountFn  func(name, email, password string) (*models.User, error)
	confirmAccountFn func(token string) error
	attemptLoginFn   func(email, password string) (*models.User, error)
	forgotPasswordFn func(email string) error
	validateTokenFn  func(token string) error
	resetPasswordFn  func(token, password string) error
	getUserByIDFn    func(id uint) (*models.User, error)
	updatePasswordFn func(userID uint, current, next string) error
	checkPasswordFn  func(userID uint, password string) error
}

func (m *mockUserService) CreateAccount(_ context.Context, name, email, password string) (*models.User, error) {
	if m.createAccountFn != nil {
		return m.createAccountFn(name, email, password)
	}
	return &models.User{Name: name, Email: email}, nil
}

func (m *mockUserService) ConfirmAccount(token string) error {
	if m.confirmAccountFn != nil {
		return m.confirmAccountFn(token)
	}
	return nil
}

func (m *mockUserService) AttemptLogin(email, password string) (*models.User, error) {
	if m.attemptLoginFn != nil {
		return m.attemptLoginFn(email, password)
	}
	return &models.User{Base: models.Base{ID: 1}, Email: email, Confirmed: true}, nil
}

func (m *mockUserService) ForgotPassword(_ context.Context, email string) error {
	if m.forgotPasswordFn != nil {
		return m.forgotPasswordFn(email)
	}
	return nil
}

func (m *mockUserService) ValidateToken(token string) error {
	if m.validateTokenFn != nil {
		return m.validateTokenFn(token)
	}
	return nil
}

func (m *mockUserService) ResetPassword(token, password string) error {
	if m.resetPasswordFn != nil {
		return m.resetPasswordFn(token, password)
	}
	return nil
}

func (m *mockUserService) GetUserByID(id uint) (*models.User, error) {
	if m.getUserByIDFn != nil {
		return m.getUserByIDFn(id)
	}
	return &models.User{Base: models.Base{ID: id}, Name: "Test", Email: "test@example.com", Confirmed: true}, nil
}

func (m *mockUserService) UpdatePassword(userID uint, current, next string) error {
	if m.updatePasswordFn != nil {
		return m.updatePasswordFn(userID, current, next)
	}
	return nil
}

func (m *mockUserService) CheckPassword(userID uint, password string) error {
	if m.checkPasswordFn != nil {
		return m.checkPasswordFn(userID, password)
	}
	return nil
}

var _ services.UserServicer = (*mockUserService)(nil)

type mockBudgetService struct {
	createBudgetFn      func(userID uint, name string, amount decimal.Decimal) (*models.Budget, error)
	getUserBudgetsFn    func(userID uint, page pagination.PageRequest) (*pagination.PageResponse[models.Budget], error)
	getAllUserBudgetsFn func(userID uint) ([]models.Budget, error)
	getBudgetByIDFn     func(budgetID uint) (*models.Budget, error)
	updateBudgetFn      func(budget *models.Budget, name string, amount decimal.Decimal) (*models.Budget, error)
	deleteBudgetFn      func(budget *models.Budget) error
}

func (m *mockBudgetService) CreateBudget(userID uint, name string, amount decimal.Decimal) (*models.Budget, error) {
	if m.createBudgetFn != nil {
		return m.createBudgetFn(userID, name, amount)
	}
	return &models.Budget{Base: models.Base{ID: 1}, UserID: userID, Name: name, Amount: amount, Expenses: []models.Expense{}}, nil
}

func (m *mockBudgetService) GetUserBudgets(userID uint, page pagination.PageRequest) (*pagination.PageResponse[models.Budget], error) {
	if m.getUserBudgetsFn != nil {
		return m.getUserBudgetsFn(userID, page)
	}
	page.Normalize()
	resp := pagination.NewPageResponse([]models.Budget{}, page, 0)
	return &resp, nil
}

func (m *mockBudgetService) GetAllUserBudgets(userID uint) ([]models.Budget, error) {
	if m.getAllUserBudgetsFn != nil {
		return m.getAllUserBudgetsFn(userID)
	}
	return []models.Budget{}, nil
}

func (m *mockBudgetService) GetBudgetByID(budgetID uint) (*models.Budget, error) {
	if m.getBudgetByIDFn != nil {
		return m.getBudgetByIDFn(budgetID)
	}
	return &models.Budget{Base: models.Base{ID: budgetID}, UserID: 1, Name: "Groceries", Amount: decimal.NewFromInt(300), Expenses: []models.Expense{}}, nil
}

func (m *mockBudgetService) UpdateBudget(budget *models.Budget, name string, amount decimal.Decimal) (*models.Budget, error) {
	if m.updateBudgetFn != nil {
		return m.updateBudgetFn(budget, name, amount)
	}
	budget.Name = name
	budget.Amount = amount
	return budget, nil
}

func (m *mockBudgetService) DeleteBudget(budget *models.Budget) error {
	if m.deleteBudgetFn != nil {
		return m.deleteBudgetFn(budget)
	}
	return nil
}

var _ services.BudgetServicer = (*mockBudgetService)(nil)

type mockExpenseService struct {
	createExpenseFn     func(budgetID uint, name string, amount decimal.Decimal) (*models.Expense, error)
	getBudgetExpensesFn func(budgetID uint) ([]models.Expense, error)
	getExpenseByIDFn    func(budgetID, expenseID uint) (*models.Expense, error)
	updateExpenseFn     func(expense *models.Expense, name string, amount decimal.Decimal) (*models.Expense, error)
	deleteExpenseFn     func(expense *models.Expense) error
}

func (m *mockExpenseService) CreateExpense(budgetID uint, name string, amount decimal.Decimal) (*models.Expense, error) {
	if m.createExpenseFn != nil {
		return m.createExpenseFn(budgetID, name, amount)
	}
	return &models.Expense{Base: models.Base{ID: 1}, BudgetID: budgetID, Name: name, Amount: amount}, nil
}

func (m *mockExpenseService) GetBudgetExpenses(budgetID uint) ([]models.Expense, error) {
	if m.getBudgetExpensesFn != nil {
		return m.getBudgetExpensesFn(budgetID)
	}
	return []models.Expense{}, nil
}

func (m *mockExpenseService) GetExpenseByID(budgetID, expenseID uint) (*models.Expense, error) {
	if m.getExpenseByIDFn != nil {
		return m.getExpenseByIDFn(budgetID, expenseID)
	}
	return &models.Expense{Base: models.Base{ID: expenseID}, BudgetID: budgetID, Name: "Milk", Amount: decimal.NewFromInt(5)}, nil
}

func (m *mockExpenseService) UpdateExpense(expense *models.Expense, name string, amount decimal.Decimal) (*models.Expense, error) {
	if m.updateExpenseFn != nil {
		return m.updateExpenseFn(expense, name, amount)
	}
	expense.Name = name
	expense.Amount = amount
	return expense, nil
}

func (m *mockExpenseService) DeleteExpense(expense *models.Expense) error {
	if m.deleteExpenseFn != nil {
		return m.deleteExpenseFn(expense)
	}
	return nil
}

var _ services.ExpenseServicer = (*mockExpenseService)(nil)

type mockAuditService struct {
	mu     sync.Mutex
	events []services.AuditEvent
}

func (m *mockAuditService) Log(event services.AuditEvent) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.events = append(m.events, event)
}

func (m *mockAuditService) actions() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]string, 0, len(m.events))
	for _, e := range m.events {
		out = append(out, e.Action)
	}
	return out
}

// --- helpers ---

func newIssuer() *middleware.TokenIssuer {
	return middleware.NewTokenIssuer(testSecret, time.Hour)
}

// bearer returns an Authorization header for userID signed by issuer.
func bearer(t *testing.T, issuer *middleware.TokenIssuer, userID uint) map[string]string {
	t.Helper()
	token, err := issuer.GenerateToken(&models.User{Base: models.Base{ID: userID}, Email: "test@example.com"})
	if err != nil {
		t.Fatalf("failed to sign token: %v", err)
	}
	return map[string]string{"Authorization": "Bearer " + token}
}

func doRequest(r *gin.Engine, method, path, body string, headers map[string]string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func parseJSON(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var result map[string]interface{}
	if err := json.Unmarshal(w.Body.Bytes(), &result); err != nil {
		t.Fatalf("failed to parse JSON response: %v\nbody: %s", err, w.Body.String())
	}
	return result
}

func assertErrorCode(t *testing.T, w *httptest.ResponseRecorder, expectedStatus int, expectedCode string) {
	t.Helper()
	if w.Code != expectedStatus {
		t.Errorf("expected status %d, got %d\nbody: %s", expectedStatus, w.Code, w.Body.String())
	}
	body := parseJSON(t, w)
	errObj, ok := body["error"].(map[string]interface{})
	if !ok {
		t.Fatalf("expected error object in response, got: %v", body)
	}
	if errObj["code"] != expectedCode {
		t.Errorf("expected error code %q, got %q", expectedCode, errObj["code"])
	}
}

// errorDetails returns the field names reported in an INVALID_INPUT response.
func errorDetails(t *testing.T, w *httptest.ResponseRecorder) []string {
	t.Helper()
	body := parseJSON(t, w)
	errObj, _ := body["error"].(map[string]interface{})
	details, _ := errObj["details"].([]interface{})
	fields := make([]string, 0, len(details))
	for _, d := range details {
		if m, ok := d.(map[string]interface{}); ok {
			fields = append(fields, m["field"].(string))
		}
	}
	return fields
}
