package integration

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"pondo/internal/gateway"
	"pondo/internal/handlers"
	"pondo/internal/logger"
	"pondo/internal/middleware"
	"pondo/internal/models"
	"pondo/internal/services"
	"pondo/internal/validator"
)

// testApp holds the full application stack for integration tests.
type testApp struct {
	DB     *gorm.DB
	Router *gin.Engine
}

// dbCounter ensures each test gets a unique in-memory database.
var dbCounter atomic.Int64

func init() {
	gin.SetMode(gin.TestMode)
	logger.Init("test")
	validator.Register()
}

// setupIsolatedDB creates an isolated in-memory SQLite database for a single test.
func setupIsolatedDB(t *testing.T) *gorm.DB {
	t.Helper()

	n := dbCounter.Add(1)
	dsn := fmt.Sprintf("file:testdb%d?mode=memory&cache=shared", n)
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}

	allModels := []interface{}{
		&models.User{},
		&models.BudgetInput{},
		&models.Expense{},
		&models.Transfer{},
		&models.BudgetMaster{},
		&models.AuditLog{},
	}
	if err := db.AutoMigrate(allModels...); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	return db
}

// setupApp creates a full application stack backed by an isolated in-memory SQLite.
func setupApp(t *testing.T) *testApp {
	t.Helper()

	db := setupIsolatedDB(t)

	// Services
	gw := gateway.New(db, time.Second, time.Millisecond)
	userService := services.NewUserService(db)
	auditService := services.NewAuditService(db)
	budgetInputService := services.NewBudgetInputService(db, gw)
	expenseService := services.NewExpenseService(db, gw)
	transferService := services.NewTransferService(db, gw)
	budgetMasterService := services.NewBudgetMasterService(db)
	reportService := services.NewReportService(budgetInputService, expenseService, transferService, budgetMasterService)
	exportService := services.NewExportService(reportService, transferService)

	// Handlers
	authHandler := handlers.NewAuthHandler(userService, auditService)
	catalogHandler := handlers.NewCatalogHandler()
	budgetInputHandler := handlers.NewBudgetInputHandler(budgetInputService, auditService)
	expenseHandler := handlers.NewExpenseHandler(expenseService, auditService)
	transferHandler := handlers.NewTransferHandler(transferService, auditService)
	reportHandler := handlers.NewReportHandler(reportService, budgetMasterService)
	exportHandler := handlers.NewExportHandler(exportService)

	// Router
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.ErrorHandler())

	v1 := router.Group("/api/v1")

	// Public routes
	auth := v1.Group("/auth")
	auth.POST("/register", authHandler.Register)
	auth.POST("/login", authHandler.Login)
	auth.POST("/refresh", authHandler.Refresh)

	v1.GET("/catalogs", catalogHandler.Get)

	// Protected routes
	protected := v1.Group("/")
	protected.Use(middleware.AuthMiddleware())

	protected.POST("/auth/logout", authHandler.Logout)
	protected.GET("/auth/profile", authHandler.GetProfile)

	budgetInputs := protected.Group("/budget-inputs")
	budgetInputs.GET("", budgetInputHandler.List)
	budgetInputs.PUT("", budgetInputHandler.Save)
	budgetInputs.DELETE("", budgetInputHandler.Delete)

	expenses := protected.Group("/expenses")
	expenses.GET("", expenseHandler.List)
	expenses.PUT("", expenseHandler.Save)
	expenses.DELETE("", expenseHandler.Delete)
	expenses.POST("/import", expenseHandler.Import)

	transfers := protected.Group("/transfers")
	transfers.GET("", transferHandler.List)
	transfers.POST("", transferHandler.Create)

	protected.GET("/budget-master", reportHandler.BudgetMaster)

	reports := protected.Group("/reports")
	reports.GET("/summary", reportHandler.Summary)
	reports.GET("/category", reportHandler.Category)
	reports.GET("/budget-line", reportHandler.BudgetLine)

	export := protected.Group("/export")
	export.GET("/workbook", exportHandler.Workbook)
	export.GET("/xlsx", exportHandler.Excel)

	return &testApp{DB: db, Router: router}
}

// request makes an HTTP request to the test router and returns the recorder.
func (app *testApp) request(method, path, body, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	app.Router.ServeHTTP(rec, req)
	return rec
}

// parseJSON parses the response body into a map.
func parseJSON(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var result map[string]interface{}
	if err := json.Unmarshal(rec.Body.Bytes(), &result); err != nil {
		t.Fatalf("failed to parse JSON: %v\nbody: %s", err, rec.Body.String())
	}
	return result
}

// registerUser registers a new user and returns the access token, refresh token, and user ID.
func (app *testApp) registerUser(t *testing.T, email, password string) (accessToken, refreshToken, userID string) {
	t.Helper()
	body := fmt.Sprintf(`{"email":%q,"password":%q,"first_name":"Test","last_name":"User"}`, email, password)
	rec := app.request("POST", "/api/v1/auth/register", body, "")
	if rec.Code != http.StatusCreated {
		t.Fatalf("register failed: %d %s", rec.Code, rec.Body.String())
	}
	result := parseJSON(t, rec)
	user := result["user"].(map[string]interface{})
	return result["access_token"].(string), result["refresh_token"].(string), user["id"].(string)
}

// loginUser logs in and returns the access and refresh tokens.
func (app *testApp) loginUser(t *testing.T, email, password string) (accessToken, refreshToken string) {
	t.Helper()
	body := fmt.Sprintf(`{"email":%q,"password":%q}`, email, password)
	rec := app.request("POST", "/api/v1/auth/login", body, "")
	if rec.Code != http.StatusOK {
		t.Fatalf("login failed: %d %s", rec.Code, rec.Body.String())
	}
	result := parseJSON(t, rec)
	return result["access_token"].(string), result["refresh_token"].(string)
}
