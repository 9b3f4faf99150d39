package integration

import (
	"fmt"
	"net/http"
	"testing"
)

func TestExpenseLifecycle(t *testing.T) {
	app := setupApp(t)
	token := app.signUp(t, "ana@example.com")
	budgetID := app.createBudget(t, token, "Groceries", "300")

	id := app.createExpense(t, token, budgetID, "Milk", "4.50")
	app.createExpense(t, token, budgetID, "Bread", "2")
	path := fmt.Sprintf("/api/budgets/%d/expenses/%d", budgetID, id)

	rec := app.request(http.MethodGet, fmt.Sprintf("/api/budgets/%d/expenses", budgetID), "", token)
	expectStatus(t, rec, http.StatusOK)
	if expenses := parseJSON(t, rec)["expenses"].([]interface{}); len(expenses) != 2 {
		t.Errorf("expected 2 expenses, got %d", len(expenses))
	}

	rec = app.request(http.MethodGet, fmt.Sprintf("/api/budgets/%d", budgetID), "", token)
	expectStatus(t, rec, http.StatusOK)
	budget := parseJSON(t, rec)["budget"].(map[string]interface{})
	if expenses := budget["expenses"].([]interface{}); len(expenses) != 2 {
		t.Errorf("expected budget to embed 2 expenses, got %d", len(expenses))
	}

	rec = app.request(http.MethodPut, path, `{"name":"Oat milk","amount":5.25}`, token)
	expectStatus(t, rec, http.StatusOK)
	expense := parseJSON(t, rec)["expense"].(map[string]interface{})
	if expense["name"] != "Oat milk" || expense["amount"] != "5.25" {
		t.Errorf("unexpected expense %v", expense)
	}

	expectStatus(t, app.request(http.MethodDelete, path, "", token), http.StatusOK)
	expectError(t, app.request(http.MethodGet, path, "", token), http.StatusNotFound, "EXPENSE_NOT_FOUND")
}

func TestExpenseValidation(t *testing.T) {
	app := setupApp(t)
	token := app.signUp(t, "ana@example.com")
	budgetID := app.createBudget(t, token, "Groceries", "300")
	path := fmt.Sprintf("/api/budgets/%d/expenses", budgetID)

	expectError(t, app.request(http.MethodPost, path, `{"name":"Milk","amount":0}`, token), http.StatusBadRequest, "INVALID_INPUT")
	expectError(t, app.request(http.MethodPost, path, `{"amount":3}`, token), http.StatusBadRequest, "INVALID_INPUT")
	expectError(t, app.request(http.MethodPost, path, `{"name":"Gum","amount":0.001}`, token), http.StatusBadRequest, "INVALID_INPUT")
	expectError(t, app.request(http.MethodPost, path, `{"name":"Yacht","amount":"123456789012345"}`, token), http.StatusBadRequest, "INVALID_INPUT")
}

func TestExpenseFromAnotherBudget(t *testing.T) {
	app := setupApp(t)
	token := app.signUp(t, "ana@example.com")
	food := app.createBudget(t, token, "Food", "300")
	travel := app.createBudget(t, token, "Travel", "900")
	id := app.createExpense(t, token, food, "Milk", "4")

	rec := app.request(http.MethodGet, fmt.Sprintf("/api/budgets/%d/expenses/%d", travel, id), "", token)
	expectError(t, rec, http.StatusNotFound, "EXPENSE_NOT_FOUND")
}
