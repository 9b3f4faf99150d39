package testutil

import (
	"fmt"
	"sync/atomic"
	"testing"

	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"cashtrackr/internal/models"
)

// TestPassword is the plaintext password of every fixture user.
const TestPassword = "password123"

// counter provides unique values across fixtures within a test run.
var counter atomic.Int64

func nextID() int64 {
	return counter.Add(1)
}

// CreateTestUser creates a confirmed user with a hashed password and unique email.
func CreateTestUser(t *testing.T, db *gorm.DB) *models.User {
	t.Helper()
	email := fmt.Sprintf("user%d@test.com", nextID())
	return CreateTestUserWithEmail(t, db, email)
}

// CreateTestUserWithEmail creates a confirmed user with the given email.
func CreateTestUserWithEmail(t *testing.T, db *gorm.DB, email string) *models.User {
	t.Helper()
	return createUser(t, db, email, true, nil)
}

// CreateUnconfirmedUser creates a user holding a pending token.
func CreateUnconfirmedUser(t *testing.T, db *gorm.DB, token string) *models.User {
	t.Helper()
	email := fmt.Sprintf("pending%d@test.com", nextID())
	return createUser(t, db, email, false, &token)
}

func createUser(t *testing.T, db *gorm.DB, email string, confirmed bool, token *string) *models.User {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte(TestPassword), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("failed to hash password: %v", err)
	}

	user := &models.User{
		Name:      "Test User",
		Email:     email,
		Password:  string(hash),
		Confirmed: confirmed,
		Token:     token,
	}
	if err := db.Create(user).Error; err != nil {
		t.Fatalf("failed to create test user: %v", err)
	}
	return user
}

// CreateTestBudget creates a budget of 1000.00 owned by userID.
func CreateTestBudget(t *testing.T, db *gorm.DB, userID uint) *models.Budget {
	t.Helper()

	budget := &models.Budget{
		UserID: userID,
		Name:   fmt.Sprintf("Test Budget %d", nextID()),
		Amount: decimal.NewFromInt(1000),
	}
	if err := db.Create(budget).Error; err != nil {
		t.Fatalf("failed to create test budget: %v", err)
	}
	return budget
}

// CreateTestExpense creates an expense of the given amount under budgetID.
func CreateTestExpense(t *testing.T, db *gorm.DB, budgetID uint, amount int64) *models.Expense {
	t.Helper()

	expense := &models.Expense{
		BudgetID: budgetID,
		Name:     fmt.Sprintf("Test Expense %d", nextID()),
		Amount:   decimal.NewFromInt(amount),
	}
	if err := db.Create(expense).Error; err != nil {
		t.Fatalf("failed to create test expense: %v", err)
	}
	return expense
}
