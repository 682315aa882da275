package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"pondo/internal/catalog"
)

// CatalogHandler serves the fixed enumerations clients build their
// dropdowns from.
type CatalogHandler struct{}

// NewCatalogHandler creates a new CatalogHandler.
func NewCatalogHandler() *CatalogHandler {
	return &CatalogHandler{}
}

// CatalogResponse lists every catalog in display order.
type CatalogResponse struct {
	Provinces            []string `json:"provinces"`
	ObjectsOfExpenditure []string `json:"objects_of_expenditure"`
	BudgetCodes          []string `json:"budget_codes"`
}

// Get returns the catalogs
// @Summary     Get catalogs
// @Description Provinces, expenditure categories, and budget codes in display order
// @Tags        catalogs
// @Produce     json
// @Success     200 {object} CatalogResponse "Catalogs"
// @Router      /catalogs [get]
func (h *CatalogHandler) Get(c *gin.Context) {
	c.JSON(http.StatusOK, CatalogResponse{
		Provinces:            catalog.Provinces.Values(),
		ObjectsOfExpenditure: catalog.ObjectsOfExpenditure.Values(),
		BudgetCodes:          catalog.BudgetCodes.Values(),
	})
}
