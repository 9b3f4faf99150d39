package integration

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"cashtrackr/internal/logger"
	"cashtrackr/internal/middleware"
	"cashtrackr/internal/models"
	"cashtrackr/internal/router"
	"cashtrackr/internal/services"
	"cashtrackr/internal/testutil"
	"cashtrackr/internal/validator"
)

// testApp holds the full application stack for integration tests.
type testApp struct {
	DB     *gorm.DB
	Mail   *testutil.MailRecorder
	Router *gin.Engine
}

func init() {
	gin.SetMode(gin.TestMode)
	logger.Init("test")
	validator.Register()
}

// setupApp creates a full application stack backed by an isolated in-memory SQLite.
func setupApp(t *testing.T) *testApp {
	return setupAppWithLimit(t, 1000)
}

func setupAppWithLimit(t *testing.T, authPerMinute int) *testApp {
	t.Helper()

	db := testutil.SetupTestDB(t)
	t.Cleanup(func() { testutil.TeardownTestDB(t, db) })
	mail := &testutil.MailRecorder{}

	engine, err := router.New(router.Dependencies{
		Users:       services.NewUserService(db, mail),
		Budgets:     services.NewBudgetService(db),
		Expenses:    services.NewExpenseService(db),
		Audit:       services.NewAuditService(db),
		Issuer:      middleware.NewTokenIssuer("integration-secret", time.Hour),
		AuthLimiter: middleware.NewRateLimiter(authPerMinute),
	})
	if err != nil {
		t.Fatalf("failed to build router: %v", err)
	}

	return &testApp{DB: db, Mail: mail, Router: engine}
}

// request makes an HTTP request to the test router and returns the recorder.
func (app *testApp) request(method, path, body, token string) *httptest.ResponseRecorder {
	headers := map[string]string{}
	if token != "" {
		headers["Authorization"] = "Bearer " + token
	}
	return app.requestWithHeaders(method, path, body, headers)
}

func (app *testApp) requestWithHeaders(method, path, body string, headers map[string]string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	rec := httptest.NewRecorder()
	app.Router.ServeHTTP(rec, req)
	return rec
}

// parseJSON parses the response body into a map.
func parseJSON(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var result map[string]interface{}
	if err := json.Unmarshal(rec.Body.Bytes(), &result); err != nil {
		t.Fatalf("failed to parse JSON: %v\nbody: %s", err, rec.Body.String())
	}
	return result
}

func expectStatus(t *testing.T, rec *httptest.ResponseRecorder, status int) {
	t.Helper()
	if rec.Code != status {
		t.Fatalf("expected %d, got %d: %s", status, rec.Code, rec.Body.String())
	}
}

func expectError(t *testing.T, rec *httptest.ResponseRecorder, status int, code string) {
	t.Helper()
	expectStatus(t, rec, status)
	errObj, _ := parseJSON(t, rec)["error"].(map[string]interface{})
	if errObj["code"] != code {
		t.Fatalf("expected error code %s, got %v", code, errObj["code"])
	}
}

// pendingToken returns the code currently stored for email.
func (app *testApp) pendingToken(t *testing.T, email string) string {
	t.Helper()
	var user models.User
	if err := app.DB.Where("email = ?", strings.ToLower(email)).First(&user).Error; err != nil {
		t.Fatalf("user %s not found: %v", email, err)
	}
	if user.Token == nil {
		t.Fatalf("user %s has no pending token", email)
	}
	return *user.Token
}

// createAccount registers an account and returns the emailed confirmation code.
func (app *testApp) createAccount(t *testing.T, name, email, password string) string {
	t.Helper()
	body := fmt.Sprintf(`{"name":%q,"email":%q,"password":%q}`, name, email, password)
	expectStatus(t, app.request(http.MethodPost, "/api/auth/create-account", body, ""), http.StatusCreated)

	token := app.pendingToken(t, email)
	msg, ok := app.Mail.Last()
	if !ok || !strings.Contains(msg.HTML, token) {
		t.Fatalf("expected confirmation email with code %s", token)
	}
	return token
}

// login logs in and returns the session token.
func (app *testApp) login(t *testing.T, email, password string) string {
	t.Helper()
	body := fmt.Sprintf(`{"email":%q,"password":%q}`, email, password)
	rec := app.request(http.MethodPost, "/api/auth/login", body, "")
	expectStatus(t, rec, http.StatusOK)
	return parseJSON(t, rec)["token"].(string)
}

// signUp creates, confirms and logs in a user, returning the session token.
func (app *testApp) signUp(t *testing.T, email string) string {
	t.Helper()
	code := app.createAccount(t, "Test User", email, "password123")
	expectStatus(t, app.request(http.MethodPost, "/api/auth/confirm-account", fmt.Sprintf(`{"token":%q}`, code), ""), http.StatusOK)
	return app.login(t, email, "password123")
}

// createBudget creates a budget and returns its ID.
func (app *testApp) createBudget(t *testing.T, token, name, amount string) int {
	t.Helper()
	rec := app.request(http.MethodPost, "/api/budgets", fmt.Sprintf(`{"name":%q,"amount":%s}`, name, amount), token)
	expectStatus(t, rec, http.StatusCreated)
	budget := parseJSON(t, rec)["budget"].(map[string]interface{})
	return int(budget["id"].(float64))
}

// createExpense creates an expense in budgetID and returns its ID.
func (app *testApp) createExpense(t *testing.T, token string, budgetID int, name, amount string) int {
	t.Helper()
	path := fmt.Sprintf("/api/budgets/%d/expenses", budgetID)
	rec := app.request(http.MethodPost, path, fmt.Sprintf(`{"name":%q,"amount":%s}`, name, amount), token)
	expectStatus(t, rec, http.StatusCreated)
	expense := parseJSON(t, rec)["expense"].(map[string]interface{})
	return int(expense["id"].(float64))
}
