package main

import (
	"fmt"
	"net/http"
	"os"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"pondo/internal/config"
	"pondo/internal/database"
	"pondo/internal/gateway"
	"pondo/internal/handlers"
	"pondo/internal/logger"
	"pondo/internal/middleware"
	"pondo/internal/services"
	"pondo/internal/validator"

	_ "pondo/internal/docs" // Import swagger docs
)

// @title           Pondo API
// @version         1.0
// @description     Pondo is a provincial budget tracking service: proposed allocations, expenses, and transfers per budget line, reconciled into allocated/spent/remaining reports and spreadsheet exports.
// @termsOfService  http://swagger.io/terms/

// @host      localhost:8080
// @BasePath  /api/v1

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

func main() {
	// Initialize logger (use ENV var if available, default to development)
	logger.Init(os.Getenv("ENV"))
	defer logger.Sync()

	if err := run(); err != nil {
		logger.Get().Fatalf("Fatal error: %v", err)
	}
}

func run() error {
	log := logger.Get()

	// Load configuration
	appConfig, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	// Register custom binding validators
	validator.Register()

	// Initialize database configuration
	dbConfig, err := database.NewConfig()
	if err != nil {
		return fmt.Errorf("failed to load database configuration: %w", err)
	}

	// Create database manager
	dbManager, err := database.NewManager(dbConfig)
	if err != nil {
		return fmt.Errorf("failed to create database manager: %w", err)
	}

	// Run migrations
	if err := dbManager.Migrate(); err != nil {
		return fmt.Errorf("failed to run database migrations: %w", err)
	}

	// Initialize services
	db := dbManager.DB()
	gw := gateway.New(db, appConfig.SaveTimeout, appConfig.SaveRetryBackoff)
	userService := services.NewUserService(db)
	auditService := services.NewAuditService(db)
	budgetInputService := services.NewBudgetInputService(db, gw)
	expenseService := services.NewExpenseService(db, gw)
	transferService := services.NewTransferService(db, gw)
	budgetMasterService := services.NewBudgetMasterService(db)
	reportService := services.NewReportService(budgetInputService, expenseService, transferService, budgetMasterService)
	exportService := services.NewExportService(reportService, transferService)

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(userService, auditService)
	catalogHandler := handlers.NewCatalogHandler()
	budgetInputHandler := handlers.NewBudgetInputHandler(budgetInputService, auditService)
	expenseHandler := handlers.NewExpenseHandler(expenseService, auditService)
	transferHandler := handlers.NewTransferHandler(transferService, auditService)
	reportHandler := handlers.NewReportHandler(reportService, budgetMasterService)
	exportHandler := handlers.NewExportHandler(exportService)

	// Initialize Gin router
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestLogging())
	router.Use(middleware.ErrorHandler())

	// CORS middleware
	router.Use(func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	})

	// Swagger documentation
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Health check endpoint
	router.GET("/api/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// API v1 group
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

	// Budget input routes
	budgetInputs := protected.Group("/budget-inputs")
	budgetInputs.GET("", budgetInputHandler.List)
	budgetInputs.PUT("", budgetInputHandler.Save)
	budgetInputs.DELETE("", budgetInputHandler.Delete)

	// Expense routes
	expenses := protected.Group("/expenses")
	expenses.GET("", expenseHandler.List)
	expenses.PUT("", expenseHandler.Save)
	expenses.DELETE("", expenseHandler.Delete)
	expenses.POST("/import", expenseHandler.Import)

	// Transfer routes
	transfers := protected.Group("/transfers")
	transfers.GET("", transferHandler.List)
	transfers.POST("", transferHandler.Create)

	// Reference allocations
	protected.GET("/budget-master", reportHandler.BudgetMaster)

	// Report routes
	reports := protected.Group("/reports")
	reports.GET("/summary", reportHandler.Summary)
	reports.GET("/category", reportHandler.Category)
	reports.GET("/budget-line", reportHandler.BudgetLine)

	// Export routes
	export := protected.Group("/export")
	export.GET("/workbook", exportHandler.Workbook)
	export.GET("/xlsx", exportHandler.Excel)

	log.Infof("Starting Pondo backend server on port %s", appConfig.Port)
	log.Infof("Swagger documentation available at http://localhost:%s/swagger/index.html", appConfig.Port)
	return router.Run(":" + appConfig.Port)
}
