// Package normalize converts raw persisted records into validated rows for
// the aggregation engine, and holds the validation rules applied before a
// row may be saved. Normalization never errors: enum values outside the
// catalogs are blanked (never substituted), amounts are coerced to a
// finite number or zero, and the result is always a non-draft row —
// drafts exist only client-side and are never produced from stored data.
package normalize

import (
	"math"

	"pondo/internal/catalog"
	apperrors "pondo/internal/errors"
	"pondo/internal/report"
	"pondo/internal/uuid"
)

// RawBudgetInput is the wire/storage shape of a budget input before
// normalization. Amount fields are pointers so a missing field is
// distinguishable from zero.
type RawBudgetInput struct {
	ID                  string   `json:"id"`
	ObjectOfExpenditure string   `json:"object_of_expenditure"`
	Province            string   `json:"province"`
	BudgetCode          string   `json:"budget_code"`
	ProposedAmount      *float64 `json:"proposed_amount"`
	// Amount is the legacy field name some persisted shapes used.
	Amount *float64 `json:"amount"`
}

// RawExpense is the wire/storage shape of an expense before normalization.
type RawExpense struct {
	ID                  string   `json:"id"`
	ObjectOfExpenditure string   `json:"object_of_expenditure"`
	Province            string   `json:"province"`
	BudgetCode          string   `json:"budget_code"`
	ExpenseAmount       *float64 `json:"expense_amount"`
	// Amount is the legacy field name some persisted shapes used.
	Amount *float64 `json:"amount"`
}

// BudgetInput normalizes a raw budget input record.
func BudgetInput(raw RawBudgetInput) report.BudgetInputRow {
	return report.BudgetInputRow{
		ID:                  idOrNew(raw.ID),
		ObjectOfExpenditure: memberOrBlank(catalog.ObjectsOfExpenditure, raw.ObjectOfExpenditure),
		Province:            memberOrBlank(catalog.Provinces, raw.Province),
		BudgetCode:          memberOrBlank(catalog.BudgetCodes, raw.BudgetCode),
		ProposedAmount:      amount(raw.ProposedAmount, raw.Amount),
		Draft:               false,
	}
}

// Expense normalizes a raw expense record.
func Expense(raw RawExpense) report.ExpenseRow {
	return report.ExpenseRow{
		ID:                  idOrNew(raw.ID),
		ObjectOfExpenditure: memberOrBlank(catalog.ObjectsOfExpenditure, raw.ObjectOfExpenditure),
		Province:            memberOrBlank(catalog.Provinces, raw.Province),
		BudgetCode:          memberOrBlank(catalog.BudgetCodes, raw.BudgetCode),
		ExpenseAmount:       amount(raw.ExpenseAmount, raw.Amount),
		Draft:               false,
	}
}

// ValidateBudgetInput applies the pre-save rules. It returns nil when the
// row may be persisted.
func ValidateBudgetInput(row report.BudgetInputRow) error {
	if err := validateLine(row.ObjectOfExpenditure, row.Province, row.BudgetCode); err != nil {
		return err
	}
	return validateAmount(row.ProposedAmount, "Proposed Amount")
}

// ValidateExpense applies the pre-save rules for expenses.
func ValidateExpense(row report.ExpenseRow) error {
	if err := validateLine(row.ObjectOfExpenditure, row.Province, row.BudgetCode); err != nil {
		return err
	}
	return validateAmount(row.ExpenseAmount, "Expense Amount")
}

func validateLine(object, province, code string) error {
	if !catalog.ObjectsOfExpenditure.Contains(object) {
		return apperrors.WithMessage(apperrors.ErrValidationFailed, "Object of Expenditures is required.")
	}
	if !catalog.Provinces.Contains(province) {
		return apperrors.WithMessage(apperrors.ErrValidationFailed, "Province is required.")
	}
	if !catalog.BudgetCodes.Contains(code) {
		return apperrors.WithMessage(apperrors.ErrValidationFailed, "Budget Code is required.")
	}
	return nil
}

func validateAmount(v float64, field string) error {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return apperrors.WithMessage(apperrors.ErrValidationFailed, field+" must be a number.")
	}
	if v < 0 {
		return apperrors.WithMessage(apperrors.ErrValidationFailed, field+" cannot be negative.")
	}
	return nil
}

// amount picks the current field, falling back to the legacy field, and
// coerces the result to a finite number or zero.
func amount(current, legacy *float64) float64 {
	if current != nil && isFinite(*current) {
		return *current
	}
	if legacy != nil && isFinite(*legacy) {
		return *legacy
	}
	return 0
}

func isFinite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}

func idOrNew(id string) string {
	if id == "" {
		return uuid.New()
	}
	return id
}

func memberOrBlank(c catalog.Catalog, v string) string {
	if c.Contains(v) {
		return v
	}
	return ""
}
