package models

// Expense is an actual spend recorded against a budget line. Unlike
// BudgetInput, expenses are keyed by id (the client may hold a stable id
// for a row it created), so several expenses can share one line.
type Expense struct {
	Base
	ObjectOfExpenditure string  `gorm:"not null;index:idx_expenses_line" json:"object_of_expenditure"`
	Province            string  `gorm:"not null;index:idx_expenses_line" json:"province"`
	BudgetCode          string  `gorm:"not null;index:idx_expenses_line" json:"budget_code"`
	ExpenseAmount       float64 `gorm:"not null;default:0" json:"expense_amount"`
}
