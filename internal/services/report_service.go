package services

import (
	"context"

	"pondo/internal/catalog"
	apperrors "pondo/internal/errors"
	"pondo/internal/models"
	"pondo/internal/normalize"
	"pondo/internal/report"
)

// reportService runs the aggregation engine over the current row sets. It
// always loads the complete collections: the engine's totals are only
// correct over the whole data set.
type reportService struct {
	budgetInputs BudgetInputServicer
	expenses     ExpenseServicer
	transfers    TransferServicer
	budgetMaster BudgetMasterServicer
}

// NewReportService creates a new ReportServicer.
func NewReportService(
	budgetInputs BudgetInputServicer,
	expenses ExpenseServicer,
	transfers TransferServicer,
	budgetMaster BudgetMasterServicer,
) ReportServicer {
	return &reportService{
		budgetInputs: budgetInputs,
		expenses:     expenses,
		transfers:    transfers,
		budgetMaster: budgetMaster,
	}
}

// Aggregate loads every row collection, normalizes the stored records, and
// returns the engine's summary. Stored rows get the same normalization as
// any other loaded data, so values that drifted outside the catalogs are
// blanked rather than trusted.
func (s *reportService) Aggregate(ctx context.Context) (*report.Summary, error) {
	inputs, err := s.budgetInputs.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	expenses, err := s.expenses.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	transfers, err := s.transfers.List(ctx)
	if err != nil {
		return nil, err
	}

	inputRows := make([]report.BudgetInputRow, 0, len(inputs))
	for _, bi := range inputs {
		amt := bi.ProposedAmount
		inputRows = append(inputRows, normalize.BudgetInput(normalize.RawBudgetInput{
			ID:                  bi.ID,
			ObjectOfExpenditure: bi.ObjectOfExpenditure,
			Province:            bi.Province,
			BudgetCode:          bi.BudgetCode,
			ProposedAmount:      &amt,
		}))
	}

	expenseRows := make([]report.ExpenseRow, 0, len(expenses))
	for _, e := range expenses {
		amt := e.ExpenseAmount
		expenseRows = append(expenseRows, normalize.Expense(normalize.RawExpense{
			ID:                  e.ID,
			ObjectOfExpenditure: e.ObjectOfExpenditure,
			Province:            e.Province,
			BudgetCode:          e.BudgetCode,
			ExpenseAmount:       &amt,
		}))
	}

	transferRows := make([]report.TransferRow, 0, len(transfers))
	for _, t := range transfers {
		transferRows = append(transferRows, report.TransferRow{
			From:   report.LineKey{ObjectOfExpenditure: t.FromObject, Province: t.FromProvince, BudgetCode: t.FromBudget},
			To:     report.LineKey{ObjectOfExpenditure: t.ToObject, Province: t.ToProvince, BudgetCode: t.ToBudget},
			Amount: t.Amount,
		})
	}

	return report.Aggregate(inputRows, expenseRows, transferRows), nil
}

// Summary builds the overview payload: every budget code's reconciled
// totals in catalog order, plus the category list narrowed by the fuzzy
// search query. An empty query matches every category.
func (s *reportService) Summary(ctx context.Context, query string) (*SummaryReport, error) {
	summary, err := s.Aggregate(ctx)
	if err != nil {
		return nil, err
	}

	codes := make([]CodeSummary, 0, catalog.BudgetCodes.Len())
	for _, code := range summary.Codes() {
		codes = append(codes, CodeSummary{
			BudgetCode: code,
			Allocated:  summary.EffectiveAllocatedCode(code),
			Spent:      summary.SpentByCode[code],
			Remaining:  summary.RemainingCode(code),
			Status:     summary.CodeStatus(code),
		})
	}

	categories := make([]string, 0, catalog.ObjectsOfExpenditure.Len())
	for _, category := range catalog.ObjectsOfExpenditure.Values() {
		if report.Matches(category, query) {
			categories = append(categories, category)
		}
	}

	return &SummaryReport{Codes: codes, Categories: categories}, nil
}

// CategoryDetail builds the category drill-down. The lines shown are the
// category's reference allocations from budget_master; the figures on them
// come from the live aggregation, not the reference amounts.
func (s *reportService) CategoryDetail(ctx context.Context, category string) (*CategoryReport, error) {
	if category == "" {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "category is required")
	}
	if !catalog.ObjectsOfExpenditure.Contains(category) {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "unknown expenditure category")
	}

	summary, err := s.Aggregate(ctx)
	if err != nil {
		return nil, err
	}
	masterRows, err := s.budgetMaster.List(ctx, category)
	if err != nil {
		return nil, err
	}
	expenses, err := s.expenses.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	lines := make([]LineSummary, 0, len(masterRows))
	for _, m := range masterRows {
		key := report.LineKey{
			ObjectOfExpenditure: m.ObjectOfExpenditure,
			Province:            m.Province,
			BudgetCode:          m.BudgetCode,
		}
		lines = append(lines, lineSummary(summary, key))
	}

	categoryExpenses := make([]models.Expense, 0)
	for _, e := range expenses {
		if e.ObjectOfExpenditure == category {
			categoryExpenses = append(categoryExpenses, e)
		}
	}

	return &CategoryReport{
		Category: category,
		Lines:    lines,
		Expenses: categoryExpenses,
	}, nil
}

// BudgetLine builds the (category, budget code) drill-down: one row per
// province in catalog order, zero-valued where nothing happened.
func (s *reportService) BudgetLine(ctx context.Context, category, budgetCode string) (*BudgetLineReport, error) {
	if category == "" || budgetCode == "" {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "category and budget are required")
	}
	if !catalog.ObjectsOfExpenditure.Contains(category) {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "unknown expenditure category")
	}
	if !catalog.BudgetCodes.Contains(budgetCode) {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "unknown budget code")
	}

	summary, err := s.Aggregate(ctx)
	if err != nil {
		return nil, err
	}

	provinces := make([]LineSummary, 0, catalog.Provinces.Len())
	for _, province := range catalog.Provinces.Values() {
		key := report.LineKey{
			ObjectOfExpenditure: category,
			Province:            province,
			BudgetCode:          budgetCode,
		}
		provinces = append(provinces, lineSummary(summary, key))
	}

	return &BudgetLineReport{
		Category:   category,
		BudgetCode: budgetCode,
		Provinces:  provinces,
	}, nil
}

func lineSummary(s *report.Summary, k report.LineKey) LineSummary {
	return LineSummary{
		ObjectOfExpenditure: k.ObjectOfExpenditure,
		Province:            k.Province,
		BudgetCode:          k.BudgetCode,
		Allocated:           s.EffectiveAllocatedLine(k),
		Spent:               s.SpentByLine[k],
		Remaining:           s.RemainingLine(k),
		Status:              s.LineStatus(k),
	}
}
