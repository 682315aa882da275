package handlers

import (
	"context"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"

	"pondo/internal/catalog"
	apperrors "pondo/internal/errors"
	"pondo/internal/models"
	"pondo/internal/report"
	"pondo/internal/services"
)

type mockReportService struct {
	summaryFn        func(ctx context.Context, query string) (*services.SummaryReport, error)
	categoryDetailFn func(ctx context.Context, category string) (*services.CategoryReport, error)
	budgetLineFn     func(ctx context.Context, category, budgetCode string) (*services.BudgetLineReport, error)
	aggregateFn      func(ctx context.Context) (*report.Summary, error)
}

var _ services.ReportServicer = (*mockReportService)(nil)

func (m *mockReportService) Summary(ctx context.Context, query string) (*services.SummaryReport, error) {
	if m.summaryFn != nil {
		return m.summaryFn(ctx, query)
	}
	return &services.SummaryReport{}, nil
}

func (m *mockReportService) CategoryDetail(ctx context.Context, category string) (*services.CategoryReport, error) {
	if m.categoryDetailFn != nil {
		return m.categoryDetailFn(ctx, category)
	}
	return &services.CategoryReport{}, nil
}

func (m *mockReportService) BudgetLine(ctx context.Context, category, budgetCode string) (*services.BudgetLineReport, error) {
	if m.budgetLineFn != nil {
		return m.budgetLineFn(ctx, category, budgetCode)
	}
	return &services.BudgetLineReport{}, nil
}

func (m *mockReportService) Aggregate(ctx context.Context) (*report.Summary, error) {
	if m.aggregateFn != nil {
		return m.aggregateFn(ctx)
	}
	return nil, nil
}

type mockBudgetMasterService struct {
	listFn func(ctx context.Context, category string) ([]models.BudgetMaster, error)
}

var _ services.BudgetMasterServicer = (*mockBudgetMasterService)(nil)

func (m *mockBudgetMasterService) List(ctx context.Context, category string) ([]models.BudgetMaster, error) {
	if m.listFn != nil {
		return m.listFn(ctx, category)
	}
	return []models.BudgetMaster{}, nil
}

func setupReportRouter(handler *ReportHandler) *gin.Engine {
	r := gin.New()
	r.GET("/reports/summary", injectUserID("user-1"), handler.Summary)
	r.GET("/reports/category", injectUserID("user-1"), handler.Category)
	r.GET("/reports/budget-line", injectUserID("user-1"), handler.BudgetLine)
	r.GET("/budget-master", injectUserID("user-1"), handler.BudgetMaster)
	return r
}

func TestReportHandler_Summary(t *testing.T) {
	t.Run("passes the search query through", func(t *testing.T) {
		var gotQuery string
		svc := &mockReportService{
			summaryFn: func(_ context.Context, query string) (*services.SummaryReport, error) {
				gotQuery = query
				return &services.SummaryReport{
					Codes:      []services.CodeSummary{{BudgetCode: "CPBI", Allocated: 100}},
					Categories: []string{"Office Supplies Expenses"},
				}, nil
			},
		}
		handler := NewReportHandler(svc, &mockBudgetMasterService{})
		r := setupReportRouter(handler)

		rec := doRequest(r, "GET", "/reports/summary?q=ose", "")

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
		}
		if gotQuery != "ose" {
			t.Errorf("query = %q, want ose", gotQuery)
		}
		result := parseJSON(t, rec)
		codes := result["codes"].([]interface{})
		if len(codes) != 1 {
			t.Errorf("expected 1 code, got %d", len(codes))
		}
	})
}

func TestReportHandler_Category(t *testing.T) {
	t.Run("returns 400 without a category", func(t *testing.T) {
		svc := &mockReportService{
			categoryDetailFn: func(_ context.Context, category string) (*services.CategoryReport, error) {
				if category == "" {
					return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "category is required")
				}
				return &services.CategoryReport{Category: category}, nil
			},
		}
		handler := NewReportHandler(svc, &mockBudgetMasterService{})
		r := setupReportRouter(handler)

		rec := doRequest(r, "GET", "/reports/category", "")

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
		assertErrorCode(t, parseJSON(t, rec), "INVALID_INPUT")
	})

	t.Run("returns the detail", func(t *testing.T) {
		svc := &mockReportService{
			categoryDetailFn: func(_ context.Context, category string) (*services.CategoryReport, error) {
				return &services.CategoryReport{Category: category}, nil
			},
		}
		handler := NewReportHandler(svc, &mockBudgetMasterService{})
		r := setupReportRouter(handler)

		rec := doRequest(r, "GET", "/reports/category?category=Travelling+Expenses", "")

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", rec.Code)
		}
		result := parseJSON(t, rec)
		if result["category"] != "Travelling Expenses" {
			t.Errorf("category = %v", result["category"])
		}
	})
}

func TestReportHandler_BudgetLine(t *testing.T) {
	var gotCategory, gotCode string
	svc := &mockReportService{
		budgetLineFn: func(_ context.Context, category, budgetCode string) (*services.BudgetLineReport, error) {
			gotCategory, gotCode = category, budgetCode
			return &services.BudgetLineReport{Category: category, BudgetCode: budgetCode}, nil
		},
	}
	handler := NewReportHandler(svc, &mockBudgetMasterService{})
	r := setupReportRouter(handler)

	rec := doRequest(r, "GET", "/reports/budget-line?category=Travelling+Expenses&budget=CPBI", "")

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	if gotCategory != "Travelling Expenses" || gotCode != "CPBI" {
		t.Errorf("service got (%q, %q)", gotCategory, gotCode)
	}
}

func TestReportHandler_BudgetMaster(t *testing.T) {
	svc := &mockBudgetMasterService{
		listFn: func(_ context.Context, category string) ([]models.BudgetMaster, error) {
			return []models.BudgetMaster{
				{Base: models.Base{ID: "bm-1"}, ObjectOfExpenditure: category},
			}, nil
		},
	}
	handler := NewReportHandler(&mockReportService{}, svc)
	r := setupReportRouter(handler)

	rec := doRequest(r, "GET", "/budget-master?category=Travelling+Expenses", "")

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestCatalogHandler_Get(t *testing.T) {
	handler := NewCatalogHandler()
	r := gin.New()
	r.GET("/catalogs", handler.Get)

	rec := doRequest(r, "GET", "/catalogs", "")

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	result := parseJSON(t, rec)
	provinces := result["provinces"].([]interface{})
	if len(provinces) != catalog.Provinces.Len() {
		t.Errorf("expected %d provinces, got %d", catalog.Provinces.Len(), len(provinces))
	}
	codes := result["budget_codes"].([]interface{})
	if len(codes) != catalog.BudgetCodes.Len() {
		t.Errorf("expected %d budget codes, got %d", catalog.BudgetCodes.Len(), len(codes))
	}
}
