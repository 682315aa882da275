package services

import (
	"context"

	"gorm.io/gorm"

	"pondo/internal/catalog"
	apperrors "pondo/internal/errors"
	"pondo/internal/gateway"
	"pondo/internal/models"
	"pondo/internal/report"
)

// transferService handles budget-line transfers. A transfer moves
// allocation between two lines in the computed view only; the proposed
// amounts stored in budget_inputs never change.
type transferService struct {
	db *gorm.DB
	gw *gateway.Gateway
}

// NewTransferService creates a new TransferServicer.
func NewTransferService(db *gorm.DB, gw *gateway.Gateway) TransferServicer {
	return &transferService{db: db, gw: gw}
}

// List retrieves all transfers in insertion order.
func (s *transferService) List(ctx context.Context) ([]models.Transfer, error) {
	var transfers []models.Transfer
	if err := s.db.WithContext(ctx).Order("created_at ASC").Find(&transfers).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return transfers, nil
}

// Create validates and records a transfer between two budget lines.
func (s *transferService) Create(ctx context.Context, from, to report.LineKey, amount float64) (*models.Transfer, error) {
	if err := validateTransferLine(from, "source"); err != nil {
		return nil, err
	}
	if err := validateTransferLine(to, "destination"); err != nil {
		return nil, err
	}
	if from == to {
		return nil, apperrors.ErrSameLineTransfer
	}
	if amount <= 0 {
		return nil, apperrors.WithMessage(apperrors.ErrValidationFailed, "Transfer Amount must be greater than zero.")
	}

	transfer := models.Transfer{
		FromObject:   from.ObjectOfExpenditure,
		FromProvince: from.Province,
		FromBudget:   from.BudgetCode,
		ToObject:     to.ObjectOfExpenditure,
		ToProvince:   to.Province,
		ToBudget:     to.BudgetCode,
		Amount:       amount,
	}

	err := s.gw.Do(ctx, func(tx *gorm.DB) error {
		return tx.Create(&transfer).Error
	})
	if err != nil {
		return nil, err
	}
	return &transfer, nil
}

func validateTransferLine(k report.LineKey, side string) error {
	if !catalog.ObjectsOfExpenditure.Contains(k.ObjectOfExpenditure) {
		return apperrors.WithMessage(apperrors.ErrValidationFailed, "Object of Expenditures is required for the "+side+" line.")
	}
	if !catalog.Provinces.Contains(k.Province) {
		return apperrors.WithMessage(apperrors.ErrValidationFailed, "Province is required for the "+side+" line.")
	}
	if !catalog.BudgetCodes.Contains(k.BudgetCode) {
		return apperrors.WithMessage(apperrors.ErrValidationFailed, "Budget Code is required for the "+side+" line.")
	}
	return nil
}
