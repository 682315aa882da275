package services

import (
	"context"

	"pondo/internal/models"
	"pondo/internal/normalize"
	"pondo/internal/pagination"
	"pondo/internal/report"
)

// UserServicer defines the contract for user-related business logic.
type UserServicer interface {
	CreateUser(email, password, firstName, lastName string) (*models.User, error)
	GetUserByEmail(email string) (*models.User, error)
	GetUserByID(id string) (*models.User, error)
	AttemptLogin(email, password string) (*models.User, error)
	StoreRefreshTokenHash(userID, tokenHash string) error
	GetRefreshTokenHash(userID string) (string, error)
	ClearRefreshToken(userID string) error
}

// BudgetInputServicer defines the contract for proposed-allocation rows.
// Saves upsert on the (object, province, code) triple and return the
// persisted copy so the caller can replace its draft.
type BudgetInputServicer interface {
	List(ctx context.Context, page pagination.PageRequest) (*pagination.PageResponse[models.BudgetInput], error)
	ListAll(ctx context.Context) ([]models.BudgetInput, error)
	Save(ctx context.Context, raw normalize.RawBudgetInput) (*models.BudgetInput, error)
	Delete(ctx context.Context, object, province, code, id string) error
}

// ExpenseServicer defines the contract for expense rows, keyed by id.
type ExpenseServicer interface {
	List(ctx context.Context, page pagination.PageRequest, category string) (*pagination.PageResponse[models.Expense], error)
	ListAll(ctx context.Context) ([]models.Expense, error)
	Save(ctx context.Context, raw normalize.RawExpense) (*models.Expense, error)
	Delete(ctx context.Context, object, province, code, id string) error
	Import(ctx context.Context, raws []normalize.RawExpense) ([]models.Expense, error)
}

// TransferServicer defines the contract for budget-line transfers.
type TransferServicer interface {
	List(ctx context.Context) ([]models.Transfer, error)
	Create(ctx context.Context, from, to report.LineKey, amount float64) (*models.Transfer, error)
}

// BudgetMasterServicer exposes the legacy reference allocations.
type BudgetMasterServicer interface {
	List(ctx context.Context, category string) ([]models.BudgetMaster, error)
}

// CodeSummary is one budget code's reconciled totals. Allocated is the
// effective allocation (net of transfers).
type CodeSummary struct {
	BudgetCode string        `json:"budget_code"`
	Allocated  float64       `json:"allocated"`
	Spent      float64       `json:"spent"`
	Remaining  float64       `json:"remaining"`
	Status     report.Status `json:"status"`
}

// LineSummary is one budget line's reconciled totals.
type LineSummary struct {
	ObjectOfExpenditure string        `json:"object_of_expenditure"`
	Province            string        `json:"province"`
	BudgetCode          string        `json:"budget_code"`
	Allocated           float64       `json:"allocated"`
	Spent               float64       `json:"spent"`
	Remaining           float64       `json:"remaining"`
	Status              report.Status `json:"status"`
}

// SummaryReport is the overview page's payload: per-code totals plus the
// category list filtered by the fuzzy search query.
type SummaryReport struct {
	Codes      []CodeSummary `json:"codes"`
	Categories []string      `json:"categories"`
}

// CategoryReport is the category drill-down: one line per reference
// allocation for the category, plus that category's expense rows.
type CategoryReport struct {
	Category string           `json:"category"`
	Lines    []LineSummary    `json:"lines"`
	Expenses []models.Expense `json:"expenses"`
}

// BudgetLineReport is the (category, budget code) drill-down: one row per
// province in catalog order.
type BudgetLineReport struct {
	Category   string        `json:"category"`
	BudgetCode string        `json:"budget_code"`
	Provinces  []LineSummary `json:"provinces"`
}

// ReportServicer runs the aggregation engine over the current row sets.
type ReportServicer interface {
	Summary(ctx context.Context, query string) (*SummaryReport, error)
	CategoryDetail(ctx context.Context, category string) (*CategoryReport, error)
	BudgetLine(ctx context.Context, category, budgetCode string) (*BudgetLineReport, error)
	Aggregate(ctx context.Context) (*report.Summary, error)
}

// ExportServicer renders downloadable documents from the same aggregation
// outputs the reports serve; the numbers can never diverge.
type ExportServicer interface {
	Workbook(ctx context.Context) ([]byte, error)
	Excel(ctx context.Context) ([]byte, error)
}

// AuditServicer defines the contract for audit logging.
type AuditServicer interface {
	Log(userID, action, resourceType, resourceID, ipAddress string, changes map[string]interface{})
}
