package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "pondo/internal/errors"
	"pondo/internal/report"
	"pondo/internal/services"
)

// TransferHandler handles budget-line transfer requests.
type TransferHandler struct {
	transferService services.TransferServicer
	auditService    services.AuditServicer
}

// NewTransferHandler creates a new TransferHandler.
func NewTransferHandler(transferService services.TransferServicer, auditService services.AuditServicer) *TransferHandler {
	return &TransferHandler{transferService: transferService, auditService: auditService}
}

// CreateTransferRequest represents the request payload for creating a transfer.
type CreateTransferRequest struct {
	FromObject   string  `json:"from_object" binding:"required,object_of_expenditure"`
	FromProvince string  `json:"from_province" binding:"required,province"`
	FromBudget   string  `json:"from_budget" binding:"required,budget_code"`
	ToObject     string  `json:"to_object" binding:"required,object_of_expenditure"`
	ToProvince   string  `json:"to_province" binding:"required,province"`
	ToBudget     string  `json:"to_budget" binding:"required,budget_code"`
	Amount       float64 `json:"amount" binding:"required,gt=0"`
}

// List retrieves transfers
// @Summary     List transfers
// @Description Get all budget-line transfers
// @Tags        transfers
// @Produce     json
// @Security    BearerAuth
// @Success     200 {array} models.Transfer "Transfers"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /transfers [get]
func (h *TransferHandler) List(c *gin.Context) {
	transfers, err := h.transferService.List(c.Request.Context())
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, transfers)
}

// Create records a transfer
// @Summary     Create a transfer
// @Description Move allocation between two budget lines without changing stored amounts
// @Tags        transfers
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       request body CreateTransferRequest true "Transfer details"
// @Success     201 {object} models.Transfer "Transfer created"
// @Failure     400 {object} ErrorResponse "Invalid or same-line transfer"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     502 {object} ErrorResponse "Record store rejected the save"
// @Router      /transfers [post]
func (h *TransferHandler) Create(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req CreateTransferRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	from := report.LineKey{ObjectOfExpenditure: req.FromObject, Province: req.FromProvince, BudgetCode: req.FromBudget}
	to := report.LineKey{ObjectOfExpenditure: req.ToObject, Province: req.ToProvince, BudgetCode: req.ToBudget}

	transfer, err := h.transferService.Create(c.Request.Context(), from, to, req.Amount)
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(userID, "CREATE_TRANSFER", "transfer", transfer.ID, c.ClientIP(),
		map[string]interface{}{
			"from":   from.Display(" / "),
			"to":     to.Display(" / "),
			"amount": req.Amount,
		})

	c.JSON(http.StatusCreated, transfer)
}
