package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "pondo/internal/errors"
	"pondo/internal/normalize"
	"pondo/internal/pagination"
	"pondo/internal/services"
)

// ExpenseHandler handles expense requests.
type ExpenseHandler struct {
	expenseService services.ExpenseServicer
	auditService   services.AuditServicer
}

// NewExpenseHandler creates a new ExpenseHandler.
func NewExpenseHandler(expenseService services.ExpenseServicer, auditService services.AuditServicer) *ExpenseHandler {
	return &ExpenseHandler{expenseService: expenseService, auditService: auditService}
}

// ListExpensesRequest holds the list query parameters.
type ListExpensesRequest struct {
	pagination.PageRequest
	Category string `form:"category"`
}

// ImportExpensesRequest carries a batch of legacy-shaped expense records.
type ImportExpensesRequest struct {
	Expenses []normalize.RawExpense `json:"expenses" binding:"required"`
}

// List retrieves expenses
// @Summary     List expenses
// @Description Get a paginated list of expenses, optionally filtered by category
// @Tags        expenses
// @Produce     json
// @Security    BearerAuth
// @Param       page query int false "Page number"
// @Param       page_size query int false "Items per page"
// @Param       category query string false "Expenditure category filter"
// @Success     200 {object} pagination.PageResponse[models.Expense] "Expenses"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /expenses [get]
func (h *ExpenseHandler) List(c *gin.Context) {
	var req ListExpensesRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	response, err := h.expenseService.List(c.Request.Context(), req.PageRequest, req.Category)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, response)
}

// Save upserts an expense
// @Summary     Save an expense
// @Description Upsert an expense on its id
// @Tags        expenses
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       request body normalize.RawExpense true "Expense row"
// @Success     200 {object} models.Expense "Persisted row"
// @Failure     400 {object} ErrorResponse "Row failed validation"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     502 {object} ErrorResponse "Record store rejected the save"
// @Failure     503 {object} ErrorResponse "Record store not configured"
// @Failure     504 {object} ErrorResponse "Save timed out"
// @Router      /expenses [put]
func (h *ExpenseHandler) Save(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var raw normalize.RawExpense
	if err := c.ShouldBindJSON(&raw); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	expense, err := h.expenseService.Save(c.Request.Context(), raw)
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(userID, "SAVE_EXPENSE", "expense", expense.ID, c.ClientIP(),
		map[string]interface{}{
			"object_of_expenditure": expense.ObjectOfExpenditure,
			"province":              expense.Province,
			"budget_code":           expense.BudgetCode,
			"expense_amount":        expense.ExpenseAmount,
		})

	c.JSON(http.StatusOK, expense)
}

// Delete removes expenses
// @Summary     Delete expenses
// @Description Delete every expense on a budget line, or one expense by id
// @Tags        expenses
// @Produce     json
// @Security    BearerAuth
// @Param       object_of_expenditure query string false "Expenditure category"
// @Param       province query string false "Province"
// @Param       budget_code query string false "Budget code"
// @Param       id query string false "Row id"
// @Success     204 "Deleted"
// @Failure     400 {object} ErrorResponse "Neither a full line nor an id given"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Expense not found"
// @Router      /expenses [delete]
func (h *ExpenseHandler) Delete(c *gin.Context) {
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

	if err := h.expenseService.Delete(c.Request.Context(),
		req.ObjectOfExpenditure, req.Province, req.BudgetCode, req.ID); err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(userID, "DELETE_EXPENSE", "expense", req.ID, c.ClientIP(),
		map[string]interface{}{
			"object_of_expenditure": req.ObjectOfExpenditure,
			"province":              req.Province,
			"budget_code":           req.BudgetCode,
		})

	c.Status(http.StatusNoContent)
}

// Import persists a batch of legacy records
// @Summary     Import expenses
// @Description Import legacy-shaped expense records in one batch
// @Tags        expenses
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       request body ImportExpensesRequest true "Legacy expense records"
// @Success     200 {array} models.Expense "Imported rows"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     502 {object} ErrorResponse "Record store rejected the import"
// @Router      /expenses/import [post]
func (h *ExpenseHandler) Import(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req ImportExpensesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	expenses, err := h.expenseService.Import(c.Request.Context(), req.Expenses)
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(userID, "IMPORT_EXPENSES", "expense", "", c.ClientIP(),
		map[string]interface{}{"count": len(expenses)})

	c.JSON(http.StatusOK, expenses)
}
