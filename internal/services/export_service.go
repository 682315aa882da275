package services

import (
	"bytes"
	"context"
	"fmt"
	"html/template"

	"github.com/xuri/excelize/v2"

	apperrors "pondo/internal/errors"
	"pondo/internal/report"
)

// exportService renders downloadable documents from the aggregation
// engine's output. Both formats are built from the same Summary a report
// request would see, so exported numbers always match the screen.
type exportService struct {
	reports   ReportServicer
	transfers TransferServicer
}

// NewExportService creates a new ExportServicer.
func NewExportService(reports ReportServicer, transfers TransferServicer) ExportServicer {
	return &exportService{reports: reports, transfers: transfers}
}

// workbookTemplate renders the spreadsheet-compatible HTML document the
// legacy export produced: a per-code summary table, a per-line detail
// table, and the transfer log. Spreadsheet applications open it as a
// workbook.
var workbookTemplate = template.Must(template.New("workbook").Parse(`<html>
<head><meta charset="utf-8"><title>Budget Workbook</title></head>
<body>
<table border="1">
<tr><th colspan="5">Budget Summary</th></tr>
<tr><th>Budget Code</th><th>Allocated</th><th>Spent</th><th>Remaining</th><th>Status</th></tr>
{{range .Codes}}<tr><td>{{.BudgetCode}}</td><td>{{printf "%.2f" .Allocated}}</td><td>{{printf "%.2f" .Spent}}</td><td>{{printf "%.2f" .Remaining}}</td><td>{{.Status}}</td></tr>
{{end}}</table>
<br>
<table border="1">
<tr><th colspan="7">Budget Lines</th></tr>
<tr><th>Object of Expenditures</th><th>Province</th><th>Budget Code</th><th>Allocated</th><th>Spent</th><th>Remaining</th><th>Status</th></tr>
{{range .Lines}}<tr><td>{{.ObjectOfExpenditure}}</td><td>{{.Province}}</td><td>{{.BudgetCode}}</td><td>{{printf "%.2f" .Allocated}}</td><td>{{printf "%.2f" .Spent}}</td><td>{{printf "%.2f" .Remaining}}</td><td>{{.Status}}</td></tr>
{{end}}</table>
<br>
<table border="1">
<tr><th colspan="3">Transfer Log</th></tr>
<tr><th>From</th><th>To</th><th>Amount</th></tr>
{{range .Transfers}}<tr><td>{{.From}}</td><td>{{.To}}</td><td>{{printf "%.2f" .Amount}}</td></tr>
{{end}}</table>
</body>
</html>
`))

type transferLogRow struct {
	From   string
	To     string
	Amount float64
}

type workbookData struct {
	Codes     []CodeSummary
	Lines     []LineSummary
	Transfers []transferLogRow
}

// Workbook renders the HTML workbook export.
func (s *exportService) Workbook(ctx context.Context) ([]byte, error) {
	codes, lines, err := s.tables(ctx)
	if err != nil {
		return nil, err
	}
	log, err := s.transferLog(ctx)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if err := workbookTemplate.Execute(&buf, workbookData{Codes: codes, Lines: lines, Transfers: log}); err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return buf.Bytes(), nil
}

// Excel renders the xlsx export: a Summary sheet with one row per budget
// code, a Budget Lines sheet with one row per touched line, and a
// Transfers sheet with the transfer log.
func (s *exportService) Excel(ctx context.Context) ([]byte, error) {
	codes, lines, err := s.tables(ctx)
	if err != nil {
		return nil, err
	}
	log, err := s.transferLog(ctx)
	if err != nil {
		return nil, err
	}

	f := excelize.NewFile()
	defer f.Close()

	headerStyle, _ := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 12, Color: "FFFFFF"},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"4F81BD"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
	})
	totalStyle, _ := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Size: 11},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"FFC000"}, Pattern: 1},
	})

	summarySheet := "Summary"
	f.SetSheetName("Sheet1", summarySheet)
	f.SetColWidth(summarySheet, "A", "A", 45)
	f.SetColWidth(summarySheet, "B", "D", 14)
	f.SetColWidth(summarySheet, "E", "E", 16)

	summaryHeaders := []string{"Budget Code", "Allocated", "Spent", "Remaining", "Status"}
	for i, header := range summaryHeaders {
		cell := fmt.Sprintf("%c1", 'A'+i)
		f.SetCellValue(summarySheet, cell, header)
		f.SetCellStyle(summarySheet, cell, cell, headerStyle)
	}

	var totalAllocated, totalSpent float64
	for i, code := range codes {
		row := i + 2
		f.SetCellValue(summarySheet, fmt.Sprintf("A%d", row), code.BudgetCode)
		f.SetCellValue(summarySheet, fmt.Sprintf("B%d", row), code.Allocated)
		f.SetCellValue(summarySheet, fmt.Sprintf("C%d", row), code.Spent)
		f.SetCellValue(summarySheet, fmt.Sprintf("D%d", row), code.Remaining)
		f.SetCellValue(summarySheet, fmt.Sprintf("E%d", row), string(code.Status))
		totalAllocated += code.Allocated
		totalSpent += code.Spent
	}

	totalRow := len(codes) + 2
	f.SetCellValue(summarySheet, fmt.Sprintf("A%d", totalRow), "Total")
	f.SetCellValue(summarySheet, fmt.Sprintf("B%d", totalRow), totalAllocated)
	f.SetCellValue(summarySheet, fmt.Sprintf("C%d", totalRow), totalSpent)
	f.SetCellValue(summarySheet, fmt.Sprintf("D%d", totalRow), totalAllocated-totalSpent)
	f.SetCellStyle(summarySheet, fmt.Sprintf("A%d", totalRow), fmt.Sprintf("E%d", totalRow), totalStyle)

	linesSheet := "Budget Lines"
	if _, err := f.NewSheet(linesSheet); err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	f.SetColWidth(linesSheet, "A", "A", 40)
	f.SetColWidth(linesSheet, "B", "B", 18)
	f.SetColWidth(linesSheet, "C", "C", 45)
	f.SetColWidth(linesSheet, "D", "F", 14)
	f.SetColWidth(linesSheet, "G", "G", 16)

	lineHeaders := []string{"Object of Expenditures", "Province", "Budget Code", "Allocated", "Spent", "Remaining", "Status"}
	for i, header := range lineHeaders {
		cell := fmt.Sprintf("%c1", 'A'+i)
		f.SetCellValue(linesSheet, cell, header)
		f.SetCellStyle(linesSheet, cell, cell, headerStyle)
	}

	for i, line := range lines {
		row := i + 2
		f.SetCellValue(linesSheet, fmt.Sprintf("A%d", row), line.ObjectOfExpenditure)
		f.SetCellValue(linesSheet, fmt.Sprintf("B%d", row), line.Province)
		f.SetCellValue(linesSheet, fmt.Sprintf("C%d", row), line.BudgetCode)
		f.SetCellValue(linesSheet, fmt.Sprintf("D%d", row), line.Allocated)
		f.SetCellValue(linesSheet, fmt.Sprintf("E%d", row), line.Spent)
		f.SetCellValue(linesSheet, fmt.Sprintf("F%d", row), line.Remaining)
		f.SetCellValue(linesSheet, fmt.Sprintf("G%d", row), string(line.Status))
	}

	transfersSheet := "Transfers"
	if _, err := f.NewSheet(transfersSheet); err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	f.SetColWidth(transfersSheet, "A", "B", 60)
	f.SetColWidth(transfersSheet, "C", "C", 14)

	transferHeaders := []string{"From", "To", "Amount"}
	for i, header := range transferHeaders {
		cell := fmt.Sprintf("%c1", 'A'+i)
		f.SetCellValue(transfersSheet, cell, header)
		f.SetCellStyle(transfersSheet, cell, cell, headerStyle)
	}

	for i, tr := range log {
		row := i + 2
		f.SetCellValue(transfersSheet, fmt.Sprintf("A%d", row), tr.From)
		f.SetCellValue(transfersSheet, fmt.Sprintf("B%d", row), tr.To)
		f.SetCellValue(transfersSheet, fmt.Sprintf("C%d", row), tr.Amount)
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return buf.Bytes(), nil
}

// tables computes the two export tables from one aggregation pass.
func (s *exportService) tables(ctx context.Context) ([]CodeSummary, []LineSummary, error) {
	summary, err := s.reports.Aggregate(ctx)
	if err != nil {
		return nil, nil, err
	}

	codes := make([]CodeSummary, 0, len(summary.Codes()))
	for _, code := range summary.Codes() {
		codes = append(codes, CodeSummary{
			BudgetCode: code,
			Allocated:  summary.EffectiveAllocatedCode(code),
			Spent:      summary.SpentByCode[code],
			Remaining:  summary.RemainingCode(code),
			Status:     summary.CodeStatus(code),
		})
	}

	lines := make([]LineSummary, 0)
	for _, key := range summary.Lines() {
		lines = append(lines, lineSummary(summary, key))
	}
	return codes, lines, nil
}

// transferLog lists the recorded transfers with each endpoint joined for
// display the way the legacy export printed them.
func (s *exportService) transferLog(ctx context.Context) ([]transferLogRow, error) {
	transfers, err := s.transfers.List(ctx)
	if err != nil {
		return nil, err
	}

	log := make([]transferLogRow, 0, len(transfers))
	for _, t := range transfers {
		from := report.LineKey{ObjectOfExpenditure: t.FromObject, Province: t.FromProvince, BudgetCode: t.FromBudget}
		to := report.LineKey{ObjectOfExpenditure: t.ToObject, Province: t.ToProvince, BudgetCode: t.ToBudget}
		log = append(log, transferLogRow{
			From:   from.Display(" / "),
			To:     to.Display(" / "),
			Amount: t.Amount,
		})
	}
	return log, nil
}
