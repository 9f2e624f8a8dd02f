package routes

import (
	"github.com/appdotbuilder/pos-system-9aa7/internal/application/service"
	"github.com/appdotbuilder/pos-system-9aa7/internal/config"
	"github.com/appdotbuilder/pos-system-9aa7/internal/domain/enum"
	"github.com/appdotbuilder/pos-system-9aa7/internal/domain/repository"
	"github.com/appdotbuilder/pos-system-9aa7/internal/presentation/http/handler"
	"github.com/appdotbuilder/pos-system-9aa7/internal/presentation/http/middleware"
	"github.com/appdotbuilder/pos-system-9aa7/pkg/utils"
	"github.com/gin-gonic/gin"
)

// Dependencies holds everything the router needs
type Dependencies struct {
	Config          *config.Config
	JWTManager      *utils.JWTManager
	AuthService     *service.AuthService
	ProductService  *service.ProductService
	SaleService     *service.SaleService
	ReportService   *service.ReportService
	IdempotencyRepo repository.IdempotencyRepository
}

// Setup builds the router with all middleware and routes registered
func Setup(deps *Dependencies) *gin.Engine {
	if !deps.Config.App.Debug {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.RequestLogger())
	router.Use(middleware.CORSMiddleware(&deps.Config.CORS))

	authHandler := handler.NewAuthHandler(deps.AuthService)
	productHandler := handler.NewProductHandler(deps.ProductService)
	posHandler := handler.NewPOSHandler(deps.ProductService)
	saleHandler := handler.NewSaleHandler(deps.SaleService)
	dashboardHandler := handler.NewDashboardHandler(deps.ReportService)

	// Public routes
	router.GET("/health-check", handler.HealthCheck)

	auth := router.Group("/auth")
	{
		auth.POST("/login", authHandler.Login)
		auth.POST("/refresh", authHandler.RefreshToken)
	}

	// Authenticated routes
	protected := router.Group("")
	protected.Use(middleware.AuthMiddleware(deps.JWTManager))
	protected.Use(middleware.RateLimiter(&deps.Config.RateLimit))
	{
		protected.GET("/profile", authHandler.GetProfile)
		protected.GET("/dashboard", dashboardHandler.GetStats)
	}

	// Sale processing requires the process-sales capability
	selling := protected.Group("")
	selling.Use(middleware.RequireCapability(enum.CapProcessSales))
	{
		selling.GET("/pos", posHandler.GetCatalog)

		sales := selling.Group("/sales")
		{
			sales.POST("", middleware.Idempotency(deps.IdempotencyRepo), saleHandler.Create)
			sales.GET("", saleHandler.List)
			sales.GET("/:id", saleHandler.Get)
			sales.POST("/:id/cancel", saleHandler.Cancel)
			sales.POST("/:id/refund", saleHandler.Refund)
		}
	}

	// Catalog management requires the manage-products capability
	products := protected.Group("/products")
	products.Use(middleware.RequireCapability(enum.CapManageProducts))
	{
		products.GET("", productHandler.List)
		products.POST("", productHandler.Create)
		products.GET("/low-stock", productHandler.GetLowStock)
		products.GET("/:id", productHandler.Get)
		products.PUT("/:id", productHandler.Update)
		products.DELETE("/:id", productHandler.Delete)
		products.POST("/:id/reduce-stock", productHandler.ReduceStock)
	}

	return router
}
