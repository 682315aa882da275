package services

import (
	"context"

	"gorm.io/gorm"

	apperrors "pondo/internal/errors"
	"pondo/internal/models"
)

// budgetMasterService exposes the legacy reference allocations. The table
// is seeded by migration and read-only at runtime.
type budgetMasterService struct {
	db *gorm.DB
}

// NewBudgetMasterService creates a new BudgetMasterServicer.
func NewBudgetMasterService(db *gorm.DB) BudgetMasterServicer {
	return &budgetMasterService{db: db}
}

// List retrieves reference allocations, optionally filtered to one
// expenditure category, in insertion order.
func (s *budgetMasterService) List(ctx context.Context, category string) ([]models.BudgetMaster, error) {
	query := s.db.WithContext(ctx).Order("created_at ASC")
	if category != "" {
		query = query.Where("object_of_expenditure = ?", category)
	}

	var rows []models.BudgetMaster
	if err := query.Find(&rows).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return rows, nil
}
