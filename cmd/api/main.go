package main

import (
	"context"
	"log"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/fwahome/dukapos/internal/application/service"
	"github.com/fwahome/dukapos/internal/config"
	"github.com/fwahome/dukapos/internal/domain/enum"
	"github.com/fwahome/dukapos/internal/infrastructure/database"
	"github.com/fwahome/dukapos/internal/infrastructure/repository"
	"github.com/fwahome/dukapos/internal/presentation/http/handler"
	"github.com/fwahome/dukapos/internal/presentation/http/routes"
	"github.com/fwahome/dukapos/pkg/utils"
)

func main() {
	// Load configuration
	cfg := config.Load()

	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Open the embedded store
	db, err := database.NewSQLiteDB(&cfg.Database)
	if err != nil {
		log.Fatalf("Failed to open database: %v", err)
	}

	if err := database.AutoMigrate(db); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	if err := database.SeedDefaultData(db); err != nil {
		log.Printf("Warning: Failed to seed default data: %v", err)
	}

	// Initialize JWT manager
	jwtManager := utils.NewJWTManager(
		cfg.JWT.Secret,
		cfg.JWT.ExpiryHours,
		cfg.JWT.RefreshExpiryHours,
	)

	// Initialize repositories
	userRepo := repository.NewUserRepository(db)
	productRepo := repository.NewProductRepository(db)
	supplierRepo := repository.NewSupplierRepository(db)
	saleRepo := repository.NewSaleRepository(db)
	settingsRepo := repository.NewSettingsRepository(db)
	notificationRepo := repository.NewNotificationRepository(db)
	idempotencyRepo := repository.NewIdempotencyRepository(db)
	backupRepo := repository.NewBackupRepository(db)

	// Initialize services
	authService := service.NewAuthService(userRepo, jwtManager)
	productService := service.NewProductService(productRepo, supplierRepo)
	supplierService := service.NewSupplierService(supplierRepo, productRepo)
	settingsService := service.NewSettingsService(settingsRepo)
	notificationService := service.NewNotificationService(notificationRepo)
	cartService := service.NewCartService(service.NewCartStore(), productRepo)
	checkoutService := service.NewCheckoutService(cartService, saleRepo, productRepo, settingsService, notificationService)
	saleService := service.NewSaleService(saleRepo)
	reportService := service.NewReportService(saleRepo, enum.ReportAnchor(cfg.Report.Anchor))
	dashboardService := service.NewDashboardService(productRepo, saleRepo)
	backupService := service.NewBackupService(backupRepo, notificationService)

	// Initialize handlers
	handlers := &routes.Handlers{
		Auth:         handler.NewAuthHandler(authService),
		Product:      handler.NewProductHandler(productService),
		Supplier:     handler.NewSupplierHandler(supplierService),
		Cart:         handler.NewCartHandler(cartService, checkoutService),
		Sale:         handler.NewSaleHandler(saleService),
		Report:       handler.NewReportHandler(reportService),
		Dashboard:    handler.NewDashboardHandler(dashboardService),
		Settings:     handler.NewSettingsHandler(settingsService),
		Notification: handler.NewNotificationHandler(notificationService),
		Backup:       handler.NewBackupHandler(backupService),
	}

	// Purge expired idempotency keys in the background
	go func() {
		ticker := time.NewTicker(time.Hour)
		defer ticker.Stop()
		for range ticker.C {
			if err := idempotencyRepo.DeleteExpired(context.Background()); err != nil {
				log.Printf("Warning: Failed to purge expired idempotency keys: %v", err)
			}
		}
	}()

	// Setup routes
	router := routes.Setup(handlers, &routes.Deps{
		JWTManager:      jwtManager,
		Cfg:             cfg,
		IdempotencyRepo: idempotencyRepo,
	})

	port := cfg.App.Port
	if port == "" {
		port = "8080"
	}

	log.Printf("Starting %s server on port %s...", cfg.App.Name, port)
	log.Printf("Environment: %s", cfg.App.Env)

	if err := router.Run(":" + port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
