// Package validator provides custom validation functions for Gin's binding engine.
package validator

import (
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"pondo/internal/catalog"
)

// Register registers all custom validators with the Gin binding engine.
func Register() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		_ = v.RegisterValidation("province", validateProvince)
		_ = v.RegisterValidation("object_of_expenditure", validateObjectOfExpenditure)
		_ = v.RegisterValidation("budget_code", validateBudgetCode)
	}
}

func validateProvince(fl validator.FieldLevel) bool {
	return catalog.Provinces.Contains(fl.Field().String())
}

func validateObjectOfExpenditure(fl validator.FieldLevel) bool {
	return catalog.ObjectsOfExpenditure.Contains(fl.Field().String())
}

func validateBudgetCode(fl validator.FieldLevel) bool {
	return catalog.BudgetCodes.Contains(fl.Field().String())
}
