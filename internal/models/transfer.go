package models

// Transfer reallocates funds between two budget lines. Transfers adjust
// computed effective allocations only; they never modify the proposed
// amounts persisted in budget_inputs.
type Transfer struct {
	Base
	FromObject   string  `gorm:"not null" json:"from_object"`
	FromProvince string  `gorm:"not null" json:"from_province"`
	FromBudget   string  `gorm:"not null" json:"from_budget"`
	ToObject     string  `gorm:"not null" json:"to_object"`
	ToProvince   string  `gorm:"not null" json:"to_province"`
	ToBudget     string  `gorm:"not null" json:"to_budget"`
	Amount       float64 `gorm:"not null" json:"amount"`
}

// TableName keeps the historical table name.
func (Transfer) TableName() string { return "budget_transfers" }
