package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "pondo/internal/errors"
	"pondo/internal/normalize"
	"pondo/internal/pagination"
	"pondo/internal/services"
)

// BudgetInputHandler handles proposed-allocation requests.
type BudgetInputHandler struct {
	budgetInputService services.BudgetInputServicer
	auditService       services.AuditServicer
}

// NewBudgetInputHandler creates a new BudgetInputHandler.
func NewBudgetInputHandler(budgetInputService services.BudgetInputServicer, auditService services.AuditServicer) *BudgetInputHandler {
	return &BudgetInputHandler{budgetInputService: budgetInputService, auditService: auditService}
}

// DeleteLineRequest identifies the row to delete. A complete triple takes
// precedence over the id.
type DeleteLineRequest struct {
	ObjectOfExpenditure string `form:"object_of_expenditure"`
	Province            string `form:"province"`
	BudgetCode          string `form:"budget_code"`
	ID                  string `form:"id"`
}

// List retrieves budget inputs
// @Summary     List budget inputs
// @Description Get a paginated list of proposed allocations
// @Tags        budget-inputs
// @Produce     json
// @Security    BearerAuth
// @Param       page query int false "Page number"
// @Param       page_size query int false "Items per page"
// @Success     200 {object} pagination.PageResponse[models.BudgetInput] "Budget inputs"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /budget-inputs [get]
func (h *BudgetInputHandler) List(c *gin.Context) {
	var page pagination.PageRequest
	if err := c.ShouldBindQuery(&page); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	response, err := h.budgetInputService.List(c.Request.Context(), page)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, response)
}

// Save upserts a budget input
// @Summary     Save a budget input
// @Description Upsert a proposed allocation on its (object, province, code) triple
// @Tags        budget-inputs
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       request body normalize.RawBudgetInput true "Budget input row"
// @Success     200 {object} models.BudgetInput "Persisted row"
// @Failure     400 {object} ErrorResponse "Row failed validation"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     502 {object} ErrorResponse "Record store rejected the save"
// @Failure     503 {object} ErrorResponse "Record store not configured"
// @Failure     504 {object} ErrorResponse "Save timed out"
// @Router      /budget-inputs [put]
func (h *BudgetInputHandler) Save(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var raw normalize.RawBudgetInput
	if err := c.ShouldBindJSON(&raw); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	input, err := h.budgetInputService.Save(c.Request.Context(), raw)
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(userID, "SAVE_BUDGET_INPUT", "budget_input", input.ID, c.ClientIP(),
		map[string]interface{}{
			"object_of_expenditure": input.ObjectOfExpenditure,
			"province":              input.Province,
			"budget_code":           input.BudgetCode,
			"proposed_amount":       input.ProposedAmount,
		})

	c.JSON(http.StatusOK, input)
}

// Delete removes a budget input
// @Summary     Delete a budget input
// @Description Delete by the full budget line when given, otherwise by id
// @Tags        budget-inputs
// @Produce     json
// @Security    BearerAuth
// @Param       object_of_expenditure query string false "Expenditure category"
// @Param       province query string false "Province"
// @Param       budget_code query string false "Budget code"
// @Param       id query string false "Row id"
// @Success     204 "Deleted"
// @Failure     400 {object} ErrorResponse "Neither a full line nor an id given"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Budget input not found"
// @Router      /budget-inputs [delete]
func (h *BudgetInputHandler) Delete(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req DeleteLineRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	if err := h.budgetInputService.Delete(c.Request.Context(),
		req.ObjectOfExpenditure, req.Province, req.BudgetCode, req.ID); err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(userID, "DELETE_BUDGET_INPUT", "budget_input", req.ID, c.ClientIP(),
		map[string]interface{}{
			"object_of_expenditure": req.ObjectOfExpenditure,
			"province":              req.Province,
			"budget_code":           req.BudgetCode,
		})

	c.Status(http.StatusNoContent)
}
