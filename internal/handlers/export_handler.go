package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"pondo/internal/services"
)

// ExportHandler serves downloadable documents built from the aggregation
// engine's output.
type ExportHandler struct {
	exportService services.ExportServicer
}

// NewExportHandler creates a new ExportHandler.
func NewExportHandler(exportService services.ExportServicer) *ExportHandler {
	return &ExportHandler{exportService: exportService}
}

// Workbook downloads the HTML workbook
// @Summary     Export HTML workbook
// @Description Download the budget summary and line tables as a spreadsheet-compatible HTML document
// @Tags        export
// @Produce     html
// @Security    BearerAuth
// @Success     200 {string} string "Workbook document"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /export/workbook [get]
func (h *ExportHandler) Workbook(c *gin.Context) {
	doc, err := h.exportService.Workbook(c.Request.Context())
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.Header("Content-Disposition", `attachment; filename="budget-workbook.xls"`)
	c.Data(http.StatusOK, "application/vnd.ms-excel", doc)
}

// Excel downloads the xlsx export
// @Summary     Export xlsx workbook
// @Description Download the budget summary and line tables as an xlsx file
// @Tags        export
// @Produce     octet-stream
// @Security    BearerAuth
// @Success     200 {string} string "xlsx file"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /export/xlsx [get]
func (h *ExportHandler) Excel(c *gin.Context) {
	doc, err := h.exportService.Excel(c.Request.Context())
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.Header("Content-Disposition", `attachment; filename="budget-workbook.xlsx"`)
	c.Data(http.StatusOK, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", doc)
}
