package routes

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/fwahome/dukapos/internal/config"
	domainRepo "github.com/fwahome/dukapos/internal/domain/repository"
	"github.com/fwahome/dukapos/internal/presentation/http/handler"
	"github.com/fwahome/dukapos/internal/presentation/http/middleware"
	"github.com/fwahome/dukapos/pkg/utils"
)

// Handlers holds all the HTTP handlers used for route registration.
type Handlers struct {
	Auth         *handler.AuthHandler
	Product      *handler.ProductHandler
	Supplier     *handler.SupplierHandler
	Cart         *handler.CartHandler
	Sale         *handler.SaleHandler
	Report       *handler.ReportHandler
	Dashboard    *handler.DashboardHandler
	Settings     *handler.SettingsHandler
	Notification *handler.NotificationHandler
	Backup       *handler.BackupHandler
}

// Deps holds shared dependencies needed by the routes.
type Deps struct {
	JWTManager      *utils.JWTManager
	Cfg             *config.Config
	IdempotencyRepo domainRepo.IdempotencyRepository
}

// Setup creates the Gin router and registers all routes.
func Setup(h *Handlers, deps *Deps) *gin.Engine {
	router := gin.New()

	// Global middleware
	router.Use(gin.Recovery())
	router.Use(middleware.LoggerMiddleware())
	router.Use(middleware.CORSMiddleware(&deps.Cfg.CORS))

	// Health check endpoint
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "ok",
			"service": deps.Cfg.App.Name,
		})
	})

	v1 := router.Group("/api/v1")
	{
		// Public routes
		auth := v1.Group("/auth")
		{
			auth.POST("/login", h.Auth.Login)
			auth.POST("/refresh", h.Auth.Refresh)
		}

		// Protected routes
		protected := v1.Group("")
		protected.Use(middleware.AuthMiddleware(deps.JWTManager))

		rateLimiter := middleware.NewClientRateLimiter(middleware.RateLimiterConfig{
			RequestsPerSecond: float64(deps.Cfg.RateLimit.Requests) / float64(deps.Cfg.RateLimit.Duration),
			BurstSize:         deps.Cfg.RateLimit.Requests,
			CleanupInterval:   5 * time.Minute,
			EntryTTL:          10 * time.Minute,
		})
		protected.Use(rateLimiter.Middleware())

		registerProtectedRoutes(protected, h, deps)
	}

	return router
}

func registerProtectedRoutes(protected *gin.RouterGroup, h *Handlers, deps *Deps) {
	// Products
	products := protected.Group("/products")
	{
		products.GET("", h.Product.List)
		products.GET("/low-stock", h.Product.LowStock)
		products.GET("/:id", h.Product.Get)
		products.POST("", h.Product.Create)
		products.PUT("/:id", h.Product.Update)
		products.DELETE("/:id", h.Product.Delete)
	}

	// Suppliers
	suppliers := protected.Group("/suppliers")
	{
		suppliers.GET("", h.Supplier.List)
		suppliers.GET("/:id", h.Supplier.Get)
		suppliers.POST("", h.Supplier.Create)
		suppliers.PUT("/:id", h.Supplier.Update)
		suppliers.DELETE("/:id", h.Supplier.Delete)
	}

	// Carts and checkout
	carts := protected.Group("/carts")
	{
		carts.POST("", h.Cart.Create)
		carts.GET("/:id", h.Cart.Get)
		carts.DELETE("/:id", h.Cart.Clear)
		carts.POST("/:id/items", h.Cart.AddItem)
		carts.PUT("/:id/items", h.Cart.SetQuantity)
		carts.DELETE("/:id/items/:productId", h.Cart.RemoveItem)
		// Checkout must carry an Idempotency-Key so a replay returns the
		// original sale instead of committing a second one
		carts.POST("/:id/checkout",
			middleware.IdempotencyRequired(deps.IdempotencyRepo),
			h.Cart.Checkout)
	}

	// Sales (read-only)
	sales := protected.Group("/sales")
	{
		sales.GET("", h.Sale.List)
		sales.GET("/:id", h.Sale.Get)
	}

	// Reports
	reports := protected.Group("/reports")
	{
		reports.GET("/sales", h.Report.Sales)
		reports.GET("/top-products", h.Report.TopProducts)
	}

	// Dashboard
	protected.GET("/dashboard", h.Dashboard.Summary)

	// Settings
	settings := protected.Group("/settings")
	{
		settings.GET("", h.Settings.List)
		settings.GET("/:key", h.Settings.Get)
		settings.PUT("/:key", h.Settings.Update)
	}

	// Notifications
	notifications := protected.Group("/notifications")
	{
		notifications.GET("", h.Notification.List)
		notifications.GET("/unread-count", h.Notification.UnreadCount)
		notifications.POST("/read", h.Notification.MarkAllRead)
	}

	// Backup
	backup := protected.Group("/backup")
	{
		backup.GET("", h.Backup.Export)
		backup.POST("/restore", h.Backup.Restore)
	}
}
