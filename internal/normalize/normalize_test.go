package normalize

import (
	"math"
	"testing"

	"pondo/internal/report"
	"pondo/internal/testutil"
	"pondo/internal/uuid"
)

func f(v float64) *float64 { return &v }

func TestBudgetInputNormalization(t *testing.T) {
	t.Run("valid_row_passes_through", func(t *testing.T) {
		row := BudgetInput(RawBudgetInput{
			ID:                  "row-1",
			ObjectOfExpenditure: "Travelling Expenses",
			Province:            "Camiguin",
			BudgetCode:          "CPBI",
			ProposedAmount:      f(1500),
		})

		if row.ID != "row-1" {
			t.Errorf("id = %q, want row-1", row.ID)
		}
		if row.ObjectOfExpenditure != "Travelling Expenses" || row.Province != "Camiguin" || row.BudgetCode != "CPBI" {
			t.Errorf("triple altered: %+v", row)
		}
		if row.ProposedAmount != 1500 {
			t.Errorf("amount = %v, want 1500", row.ProposedAmount)
		}
		if row.Draft {
			t.Error("normalized rows are never drafts")
		}
	})

	t.Run("off_catalog_values_blanked_not_dropped", func(t *testing.T) {
		row := BudgetInput(RawBudgetInput{
			ID:                  "row-2",
			ObjectOfExpenditure: "Atlantis Expenses",
			Province:            "Atlantis",
			BudgetCode:          "XYZ",
			ProposedAmount:      f(100),
		})

		if row.ObjectOfExpenditure != "" || row.Province != "" || row.BudgetCode != "" {
			t.Errorf("off-catalog values must be blanked, got %+v", row)
		}
		// The row itself survives with its amount.
		if row.ProposedAmount != 100 {
			t.Errorf("amount = %v, want 100", row.ProposedAmount)
		}
	})

	t.Run("legacy_amount_fallback", func(t *testing.T) {
		row := BudgetInput(RawBudgetInput{ID: "row-3", Amount: f(250)})
		if row.ProposedAmount != 250 {
			t.Errorf("amount = %v, want legacy fallback 250", row.ProposedAmount)
		}
	})

	t.Run("current_field_wins_over_legacy", func(t *testing.T) {
		row := BudgetInput(RawBudgetInput{ID: "row-4", ProposedAmount: f(10), Amount: f(99)})
		if row.ProposedAmount != 10 {
			t.Errorf("amount = %v, want 10", row.ProposedAmount)
		}
	})

	t.Run("non_finite_amount_coerced_to_zero", func(t *testing.T) {
		row := BudgetInput(RawBudgetInput{ID: "row-5", ProposedAmount: f(math.NaN()), Amount: f(math.Inf(1))})
		if row.ProposedAmount != 0 {
			t.Errorf("amount = %v, want 0", row.ProposedAmount)
		}
	})

	t.Run("missing_id_gets_generated", func(t *testing.T) {
		row := BudgetInput(RawBudgetInput{})
		if !uuid.IsValid(row.ID) {
			t.Errorf("generated id %q is not a valid UUID", row.ID)
		}
	})
}

func TestExpenseNormalization(t *testing.T) {
	row := Expense(RawExpense{
		ID:                  "exp-1",
		ObjectOfExpenditure: "Training Expenses",
		Province:            "Bukidnon",
		BudgetCode:          "FIES",
		Amount:              f(42),
	})

	if row.ExpenseAmount != 42 {
		t.Errorf("amount = %v, want legacy fallback 42", row.ExpenseAmount)
	}
	if row.Draft {
		t.Error("normalized rows are never drafts")
	}
}

func TestValidateBudgetInput(t *testing.T) {
	valid := report.BudgetInputRow{
		ObjectOfExpenditure: "Travelling Expenses",
		Province:            "Camiguin",
		BudgetCode:          "CPBI",
		ProposedAmount:      100,
	}

	t.Run("valid", func(t *testing.T) {
		testutil.AssertNoError(t, ValidateBudgetInput(valid))
	})

	t.Run("missing_object", func(t *testing.T) {
		row := valid
		row.ObjectOfExpenditure = ""
		err := ValidateBudgetInput(row)
		testutil.AssertAppError(t, err, "VALIDATION_FAILED")
		if err.Error() != "Object of Expenditures is required." {
			t.Errorf("message = %q", err.Error())
		}
	})

	t.Run("missing_province", func(t *testing.T) {
		row := valid
		row.Province = ""
		err := ValidateBudgetInput(row)
		testutil.AssertAppError(t, err, "VALIDATION_FAILED")
		if err.Error() != "Province is required." {
			t.Errorf("message = %q", err.Error())
		}
	})

	t.Run("missing_code", func(t *testing.T) {
		row := valid
		row.BudgetCode = ""
		err := ValidateBudgetInput(row)
		testutil.AssertAppError(t, err, "VALIDATION_FAILED")
		if err.Error() != "Budget Code is required." {
			t.Errorf("message = %q", err.Error())
		}
	})

	t.Run("negative_amount", func(t *testing.T) {
		row := valid
		row.ProposedAmount = -1
		err := ValidateBudgetInput(row)
		testutil.AssertAppError(t, err, "VALIDATION_FAILED")
		if err.Error() != "Proposed Amount cannot be negative." {
			t.Errorf("message = %q", err.Error())
		}
	})

	t.Run("nan_amount", func(t *testing.T) {
		row := valid
		row.ProposedAmount = math.NaN()
		err := ValidateBudgetInput(row)
		testutil.AssertAppError(t, err, "VALIDATION_FAILED")
		if err.Error() != "Proposed Amount must be a number." {
			t.Errorf("message = %q", err.Error())
		}
	})
}

func TestValidateExpense(t *testing.T) {
	row := report.ExpenseRow{
		ObjectOfExpenditure: "Training Expenses",
		Province:            "Bukidnon",
		BudgetCode:          "FIES",
		ExpenseAmount:       -5,
	}
	err := ValidateExpense(row)
	testutil.AssertAppError(t, err, "VALIDATION_FAILED")
	if err.Error() != "Expense Amount cannot be negative." {
		t.Errorf("message = %q", err.Error())
	}
}
