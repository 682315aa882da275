package testutil_test

import (
	"testing"

	"pondo/internal/errors"
	"pondo/internal/testutil"
)

func TestSetupTestDB(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, db)

	// Verify all tables exist by doing a simple count query on each model.
	var count int64
	for _, table := range []string{"users", "budget_inputs", "expenses", "budget_transfers", "budget_master", "audit_logs"} {
		if err := db.Table(table).Count(&count).Error; err != nil {
			t.Errorf("table %q should exist after migration: %v", table, err)
		}
	}
}

func TestFixtures(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, db)

	user := testutil.CreateTestUser(t, db)
	if user.ID == "" {
		t.Fatal("user should have a generated ID")
	}

	input := testutil.CreateTestBudgetInput(t, db, "Travelling Expenses", "Camiguin", "CPBI", 1000)
	if input.ProposedAmount != 1000 {
		t.Errorf("expected proposed amount 1000, got %v", input.ProposedAmount)
	}

	expense := testutil.CreateTestExpense(t, db, "Travelling Expenses", "Camiguin", "CPBI", 400)
	if expense.ExpenseAmount != 400 {
		t.Errorf("expected expense amount 400, got %v", expense.ExpenseAmount)
	}

	transfer := testutil.CreateTestTransfer(t, db,
		"Travelling Expenses", "Camiguin", "CPBI",
		"Training Expenses", "Bukidnon", "FIES", 50)
	if transfer.Amount != 50 {
		t.Errorf("expected transfer amount 50, got %v", transfer.Amount)
	}

	master := testutil.CreateTestBudgetMaster(t, db, "Travelling Expenses", "Camiguin", "CPBI", 15000)
	if master.AllocatedAmount != 15000 {
		t.Errorf("expected allocated amount 15000, got %v", master.AllocatedAmount)
	}
}

func TestAssertAppError(t *testing.T) {
	err := errors.WithMessage(errors.ErrBudgetInputNotFound, "custom message")
	testutil.AssertAppError(t, err, "BUDGET_INPUT_NOT_FOUND")
}

func TestAssertNoError(t *testing.T) {
	testutil.AssertNoError(t, nil)
}
