package models

// BudgetInput is a proposed allocation for a budget line. Rows are unique
// by the (object, province, code) triple; saves upsert on that key.
type BudgetInput struct {
	Base
	ObjectOfExpenditure string  `gorm:"not null;uniqueIndex:idx_budget_inputs_line" json:"object_of_expenditure"`
	Province            string  `gorm:"not null;uniqueIndex:idx_budget_inputs_line" json:"province"`
	BudgetCode          string  `gorm:"not null;uniqueIndex:idx_budget_inputs_line" json:"budget_code"`
	ProposedAmount      float64 `gorm:"not null;default:0" json:"proposed_amount"`
}
