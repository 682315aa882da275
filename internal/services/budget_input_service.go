package services

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	apperrors "pondo/internal/errors"
	"pondo/internal/gateway"
	"pondo/internal/models"
	"pondo/internal/normalize"
	"pondo/internal/pagination"
)

// budgetInputService handles proposed-allocation rows. Reads go straight
// to the database; writes go through the persistence gateway so they get
// the timeout/retry/classification treatment.
type budgetInputService struct {
	db *gorm.DB
	gw *gateway.Gateway
}

// NewBudgetInputService creates a new BudgetInputServicer.
func NewBudgetInputService(db *gorm.DB, gw *gateway.Gateway) BudgetInputServicer {
	return &budgetInputService{db: db, gw: gw}
}

// List retrieves a paginated list of budget inputs.
func (s *budgetInputService) List(ctx context.Context, page pagination.PageRequest) (*pagination.PageResponse[models.BudgetInput], error) {
	page.Defaults()

	var totalItems int64
	if err := s.db.WithContext(ctx).Model(&models.BudgetInput{}).Count(&totalItems).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	var inputs []models.BudgetInput
	if err := s.db.WithContext(ctx).
		Scopes(pagination.Paginate(page)).
		Order("created_at ASC").
		Find(&inputs).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	response := pagination.NewPageResponse(inputs, page.Page, page.PageSize, totalItems)
	return &response, nil
}

// ListAll retrieves every budget input in insertion order. The aggregation
// engine needs the full set; pagination would change the totals.
func (s *budgetInputService) ListAll(ctx context.Context) ([]models.BudgetInput, error) {
	var inputs []models.BudgetInput
	if err := s.db.WithContext(ctx).Order("created_at ASC").Find(&inputs).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return inputs, nil
}

// Save normalizes, validates, and upserts a budget input on its
// (object, province, code) triple, then returns the persisted copy so the
// caller can replace whatever draft it was holding.
func (s *budgetInputService) Save(ctx context.Context, raw normalize.RawBudgetInput) (*models.BudgetInput, error) {
	row := normalize.BudgetInput(raw)
	if err := normalize.ValidateBudgetInput(row); err != nil {
		return nil, err
	}

	input := models.BudgetInput{
		Base:                models.Base{ID: row.ID},
		ObjectOfExpenditure: row.ObjectOfExpenditure,
		Province:            row.Province,
		BudgetCode:          row.BudgetCode,
		ProposedAmount:      row.ProposedAmount,
	}

	err := s.gw.Do(ctx, func(tx *gorm.DB) error {
		return tx.Clauses(clause.OnConflict{
			Columns: []clause.Column{
				{Name: "object_of_expenditure"},
				{Name: "province"},
				{Name: "budget_code"},
			},
			DoUpdates: clause.AssignmentColumns([]string{"proposed_amount", "updated_at"}),
		}).Create(&input).Error
	})
	if err != nil {
		return nil, err
	}

	// Reload by triple: on conflict the row keeps its original id, not the
	// one the caller sent.
	var saved models.BudgetInput
	if err := s.db.WithContext(ctx).
		Where("object_of_expenditure = ? AND province = ? AND budget_code = ?",
			row.ObjectOfExpenditure, row.Province, row.BudgetCode).
		First(&saved).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &saved, nil
}

// Delete removes a budget input. A complete triple deletes by the line's
// conflict key; otherwise the id is used. Rows that were never persisted
// simply are not found.
func (s *budgetInputService) Delete(ctx context.Context, object, province, code, id string) error {
	byTriple := object != "" && province != "" && code != ""
	if !byTriple && id == "" {
		return apperrors.WithMessage(apperrors.ErrInvalidInput, "either the full budget line or an id is required")
	}

	return s.gw.Do(ctx, func(tx *gorm.DB) error {
		var result *gorm.DB
		if byTriple {
			result = tx.Where("object_of_expenditure = ? AND province = ? AND budget_code = ?",
				object, province, code).
				Delete(&models.BudgetInput{})
		} else {
			result = tx.Where("id = ?", id).Delete(&models.BudgetInput{})
		}
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return apperrors.ErrBudgetInputNotFound
		}
		return nil
	})
}
