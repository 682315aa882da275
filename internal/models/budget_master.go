package models

// BudgetMaster is a reference allocation carried over from the legacy
// system. Read-only; category drill-down reports iterate these rows to
// decide which lines to show.
type BudgetMaster struct {
	Base
	ObjectOfExpenditure string  `gorm:"not null;index" json:"object_of_expenditure"`
	Province            string  `gorm:"not null" json:"province"`
	BudgetCode          string  `gorm:"not null" json:"budget_code"`
	AllocatedAmount     float64 `gorm:"not null;default:0" json:"allocated_amount"`
}

// TableName keeps the historical table name.
func (BudgetMaster) TableName() string { return "budget_master" }
