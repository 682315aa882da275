package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"pondo/internal/services"
)

// ReportHandler serves the aggregation engine's reports.
type ReportHandler struct {
	reportService       services.ReportServicer
	budgetMasterService services.BudgetMasterServicer
}

// NewReportHandler creates a new ReportHandler.
func NewReportHandler(reportService services.ReportServicer, budgetMasterService services.BudgetMasterServicer) *ReportHandler {
	return &ReportHandler{reportService: reportService, budgetMasterService: budgetMasterService}
}

// Summary returns the overview report
// @Summary     Budget summary
// @Description Per-code allocated/spent/remaining totals plus the category list filtered by a fuzzy search query
// @Tags        reports
// @Produce     json
// @Security    BearerAuth
// @Param       q query string false "Fuzzy category search"
// @Success     200 {object} services.SummaryReport "Summary"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /reports/summary [get]
func (h *ReportHandler) Summary(c *gin.Context) {
	summary, err := h.reportService.Summary(c.Request.Context(), c.Query("q"))
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, summary)
}

// Category returns the category drill-down
// @Summary     Category detail
// @Description Reconciled figures for one expenditure category's reference lines, plus its expenses
// @Tags        reports
// @Produce     json
// @Security    BearerAuth
// @Param       category query string true "Expenditure category"
// @Success     200 {object} services.CategoryReport "Category detail"
// @Failure     400 {object} ErrorResponse "Missing or unknown category"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /reports/category [get]
func (h *ReportHandler) Category(c *gin.Context) {
	detail, err := h.reportService.CategoryDetail(c.Request.Context(), c.Query("category"))
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, detail)
}

// BudgetLine returns the (category, budget code) drill-down
// @Summary     Budget line detail
// @Description Per-province reconciled figures for one category and budget code
// @Tags        reports
// @Produce     json
// @Security    BearerAuth
// @Param       category query string true "Expenditure category"
// @Param       budget query string true "Budget code"
// @Success     200 {object} services.BudgetLineReport "Budget line detail"
// @Failure     400 {object} ErrorResponse "Missing or unknown parameters"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /reports/budget-line [get]
func (h *ReportHandler) BudgetLine(c *gin.Context) {
	detail, err := h.reportService.BudgetLine(c.Request.Context(), c.Query("category"), c.Query("budget"))
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, detail)
}

// BudgetMaster returns the reference allocations
// @Summary     List reference allocations
// @Description Legacy reference allocations, optionally filtered by category
// @Tags        reports
// @Produce     json
// @Security    BearerAuth
// @Param       category query string false "Expenditure category filter"
// @Success     200 {array} models.BudgetMaster "Reference allocations"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /budget-master [get]
func (h *ReportHandler) BudgetMaster(c *gin.Context) {
	rows, err := h.budgetMasterService.List(c.Request.Context(), c.Query("category"))
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, rows)
}
