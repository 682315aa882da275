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

// expenseService handles expense rows. Unlike budget inputs, expenses
// upsert on id, so one budget line can carry any number of them.
type expenseService struct {
	db *gorm.DB
	gw *gateway.Gateway
}

// NewExpenseService creates a new ExpenseServicer.
func NewExpenseService(db *gorm.DB, gw *gateway.Gateway) ExpenseServicer {
	return &expenseService{db: db, gw: gw}
}

// List retrieves a paginated list of expenses, optionally filtered to one
// expenditure category.
func (s *expenseService) List(ctx context.Context, page pagination.PageRequest, category string) (*pagination.PageResponse[models.Expense], error) {
	page.Defaults()

	query := s.db.WithContext(ctx).Model(&models.Expense{})
	if category != "" {
		query = query.Where("object_of_expenditure = ?", category)
	}

	var totalItems int64
	if err := query.Count(&totalItems).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	var expenses []models.Expense
	if err := query.
		Scopes(pagination.Paginate(page)).
		Order("created_at ASC").
		Find(&expenses).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	response := pagination.NewPageResponse(expenses, page.Page, page.PageSize, totalItems)
	return &response, nil
}

// ListAll retrieves every expense in insertion order for aggregation.
func (s *expenseService) ListAll(ctx context.Context) ([]models.Expense, error) {
	var expenses []models.Expense
	if err := s.db.WithContext(ctx).Order("created_at ASC").Find(&expenses).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return expenses, nil
}

// Save normalizes, validates, and upserts an expense on its id, then
// returns the persisted copy.
func (s *expenseService) Save(ctx context.Context, raw normalize.RawExpense) (*models.Expense, error) {
	row := normalize.Expense(raw)
	if err := normalize.ValidateExpense(row); err != nil {
		return nil, err
	}

	expense := models.Expense{
		Base:                models.Base{ID: row.ID},
		ObjectOfExpenditure: row.ObjectOfExpenditure,
		Province:            row.Province,
		BudgetCode:          row.BudgetCode,
		ExpenseAmount:       row.ExpenseAmount,
	}

	err := s.gw.Do(ctx, func(tx *gorm.DB) error {
		return tx.Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "id"}},
			DoUpdates: clause.AssignmentColumns([]string{
				"object_of_expenditure", "province", "budget_code",
				"expense_amount", "updated_at",
			}),
		}).Create(&expense).Error
	})
	if err != nil {
		return nil, err
	}

	var saved models.Expense
	if err := s.db.WithContext(ctx).Where("id = ?", row.ID).First(&saved).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &saved, nil
}

// Delete removes an expense. A complete triple deletes every expense on
// that line; otherwise the id is used.
func (s *expenseService) Delete(ctx context.Context, object, province, code, id string) error {
	byTriple := object != "" && province != "" && code != ""
	if !byTriple && id == "" {
		return apperrors.WithMessage(apperrors.ErrInvalidInput, "either the full budget line or an id is required")
	}

	return s.gw.Do(ctx, func(tx *gorm.DB) error {
		var result *gorm.DB
		if byTriple {
			result = tx.Where("object_of_expenditure = ? AND province = ? AND budget_code = ?",
				object, province, code).
				Delete(&models.Expense{})
		} else {
			result = tx.Where("id = ?", id).Delete(&models.Expense{})
		}
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return apperrors.ErrExpenseNotFound
		}
		return nil
	})
}

// Import persists a batch of legacy-shaped expense records. Records are
// normalized the way loaded data is (off-catalog values blanked, legacy
// amount field honored, amounts coerced) but not validated: legacy rows
// with blank fields still count toward spend and must survive the import.
func (s *expenseService) Import(ctx context.Context, raws []normalize.RawExpense) ([]models.Expense, error) {
	if len(raws) == 0 {
		return []models.Expense{}, nil
	}

	expenses := make([]models.Expense, 0, len(raws))
	for _, raw := range raws {
		row := normalize.Expense(raw)
		expenses = append(expenses, models.Expense{
			Base:                models.Base{ID: row.ID},
			ObjectOfExpenditure: row.ObjectOfExpenditure,
			Province:            row.Province,
			BudgetCode:          row.BudgetCode,
			ExpenseAmount:       row.ExpenseAmount,
		})
	}

	err := s.gw.Do(ctx, func(tx *gorm.DB) error {
		return tx.Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "id"}},
			DoUpdates: clause.AssignmentColumns([]string{
				"object_of_expenditure", "province", "budget_code",
				"expense_amount", "updated_at",
			}),
		}).Create(&expenses).Error
	})
	if err != nil {
		return nil, err
	}
	return expenses, nil
}
