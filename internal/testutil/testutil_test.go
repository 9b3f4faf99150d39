package testutil_test

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	apperrors "cashtrackr/internal/errors"
	"cashtrackr/internal/mailer"
	"cashtrackr/internal/models"
	"cashtrackr/internal/testutil"
)

func TestSetupTestDB(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, db)

	var count int64
	for _, table := range []string{"users", "budgets", "expenses", "audit_logs"} {
		if err := db.Table(table).Count(&count).Error; err != nil {
			t.Errorf("table %q should exist after migration: %v", table, err)
		}
	}
}

// The test schema carries the same constraints as the SQL migrations, so
// they hold even for writes that skip the services.
func TestSetupTestDB_Constraints(t *testing.T) {
	t.Run("positive_amounts", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		user := testutil.CreateTestUser(t, db)
		budget := testutil.CreateTestBudget(t, db, user.ID)

		for _, amount := range []decimal.Decimal{decimal.Zero, decimal.NewFromInt(-3)} {
			if err := db.Create(&models.Budget{UserID: user.ID, Name: "Bad", Amount: amount}).Error; err == nil {
				t.Errorf("expected budget amount %s to be rejected", amount)
			}
			if err := db.Create(&models.Expense{BudgetID: budget.ID, Name: "Bad", Amount: amount}).Error; err == nil {
				t.Errorf("expected expense amount %s to be rejected", amount)
			}
		}
	})

	t.Run("unique_email", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		testutil.CreateTestUserWithEmail(t, db, "taken@test.com")

		err := db.Create(&models.User{Name: "Copy", Email: "taken@test.com", Password: "x"}).Error
		if !errors.Is(err, gorm.ErrDuplicatedKey) {
			t.Errorf("expected ErrDuplicatedKey, got %v", err)
		}
	})

	t.Run("expense_needs_budget", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)

		err := db.Create(&models.Expense{BudgetID: 99999, Name: "Orphan", Amount: decimal.NewFromInt(1)}).Error
		if err == nil {
			t.Error("expected an expense without a budget to be rejected")
		}
	})

	t.Run("budget_delete_cascades", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		user := testutil.CreateTestUser(t, db)
		budget := testutil.CreateTestBudget(t, db, user.ID)
		testutil.CreateTestExpense(t, db, budget.ID, 10)
		testutil.CreateTestExpense(t, db, budget.ID, 20)

		if err := db.Exec("DELETE FROM budgets WHERE id = ?", budget.ID).Error; err != nil {
			t.Fatalf("failed to delete budget: %v", err)
		}

		var remaining int64
		db.Model(&models.Expense{}).Where("budget_id = ?", budget.ID).Count(&remaining)
		if remaining != 0 {
			t.Errorf("expected expenses to be removed with their budget, found %d", remaining)
		}
	})
}

func TestSetupTestDB_Isolated(t *testing.T) {
	db1 := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, db1)
	db2 := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, db2)

	testutil.CreateTestUser(t, db1)

	var count int64
	db2.Model(&models.User{}).Count(&count)
	if count != 0 {
		t.Errorf("expected databases to be isolated, found %d users", count)
	}
}

func TestFixtures(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, db)

	user := testutil.CreateTestUser(t, db)
	if user.ID == 0 {
		t.Fatal("user should have a non-zero ID")
	}
	if !user.Confirmed {
		t.Error("expected fixture user to be confirmed")
	}

	pending := testutil.CreateUnconfirmedUser(t, db, "123456")
	if pending.Confirmed || pending.Token == nil || *pending.Token != "123456" {
		t.Errorf("expected unconfirmed user with token, got %+v", pending)
	}

	budget := testutil.CreateTestBudget(t, db, user.ID)
	if budget.Amount.IntPart() != 1000 {
		t.Errorf("expected budget amount 1000, got %s", budget.Amount)
	}

	expense := testutil.CreateTestExpense(t, db, budget.ID, 25)
	if expense.BudgetID != budget.ID {
		t.Errorf("expected expense under budget %d, got %d", budget.ID, expense.BudgetID)
	}
}

func TestMailRecorder(t *testing.T) {
	rec := &testutil.MailRecorder{}
	if _, ok := rec.Last(); ok {
		t.Fatal("expected no messages")
	}

	_ = rec.Send(context.Background(), mailer.Message{To: "a@test.com"})
	if msg, ok := rec.Last(); !ok || msg.To != "a@test.com" {
		t.Errorf("expected recorded message, got %+v", msg)
	}

	rec.Err = errors.New("smtp down")
	if err := rec.Send(context.Background(), mailer.Message{}); err == nil {
		t.Error("expected configured error")
	}
	if len(rec.Sent()) != 1 {
		t.Errorf("expected 1 message, got %d", len(rec.Sent()))
	}
}

func TestAssertAppError(t *testing.T) {
	err := apperrors.WithMessage(apperrors.ErrBudgetNotFound, "custom message")
	testutil.AssertAppError(t, err, "BUDGET_NOT_FOUND")
}

func TestAssertNoError(t *testing.T) {
	testutil.AssertNoError(t, nil)
}
