package report

// LineKey identifies a budget line: the ordered triple of expenditure
// category, province, and budget code. It is a value type and is used
// directly as a map key, so grouping never depends on a separator
// character staying out of the catalog values.
type LineKey struct {
	ObjectOfExpenditure string `json:"object_of_expenditure"`
	Province            string `json:"province"`
	BudgetCode          string `json:"budget_code"`
}

// Display joins the triple with sep for human-readable output such as
// exported documents. Callers should check the catalogs with
// VerifySeparatorFree before relying on the joined form being unambiguous.
func (k LineKey) Display(sep string) string {
	return k.ObjectOfExpenditure + sep + k.Province + sep + k.BudgetCode
}

// BudgetInputRow is a proposed allocation against a budget line.
type BudgetInputRow struct {
	ID                  string  `json:"id"`
	ObjectOfExpenditure string  `json:"object_of_expenditure"`
	Province            string  `json:"province"`
	BudgetCode          string  `json:"budget_code"`
	ProposedAmount      float64 `json:"proposed_amount"`
	Draft               bool    `json:"is_draft"`
}

// Key returns the row's budget line.
func (r BudgetInputRow) Key() LineKey {
	return LineKey{r.ObjectOfExpenditure, r.Province, r.BudgetCode}
}

// ExpenseRow is an actual spend recorded against a budget line. Expenses
// are keyed by ID, so several rows can legitimately share one line.
type ExpenseRow struct {
	ID                  string  `json:"id"`
	ObjectOfExpenditure string  `json:"object_of_expenditure"`
	Province            string  `json:"province"`
	BudgetCode          string  `json:"budget_code"`
	ExpenseAmount       float64 `json:"expense_amount"`
	Draft               bool    `json:"is_draft"`
}

// Key returns the row's budget line.
func (r ExpenseRow) Key() LineKey {
	return LineKey{r.ObjectOfExpenditure, r.Province, r.BudgetCode}
}

// TransferRow reallocates funds from one budget line to another. It only
// ever adjusts computed effective allocations, never the persisted
// proposed amounts.
type TransferRow struct {
	From   LineKey `json:"from"`
	To     LineKey `json:"to"`
	Amount float64 `json:"amount"`
}
