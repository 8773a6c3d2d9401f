package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"invoicing-api/internal/middleware"
	"invoicing-api/internal/models"
	"invoicing-api/internal/services"
)

// RouterConfig holds configuration for setting up routes
type RouterConfig struct {
	InvoiceService       services.InvoiceService
	CompanyService       services.CompanyService
	UserService          services.UserService
	TaxCalculatorService services.TaxCalculatorService
	AuthService          *middleware.AuthService
	Errors               *ErrorMapper
	Logger               *logrus.Logger

	// Health reports whether the backing store is reachable
	Health func(ctx context.Context) error
}

// MiddlewareConfig holds the settings of the global middleware chain
type MiddlewareConfig struct {
	AllowedOrigins    []string
	RateLimitEnabled  bool
	RequestsPerSecond float64
	Burst             int
	MaxBodyBytes      int64
	Logger            *logrus.Logger
}

// SetupRoutes configures all API routes
func SetupRoutes(router *gin.Engine, config *RouterConfig) {
	if config.Logger == nil {
		config.Logger = logrus.StandardLogger()
	}
	if config.Errors == nil {
		config.Errors = NewErrorMapper(config.Logger)
	}

	invoiceHandler := NewInvoiceHandler(config.InvoiceService, config.Errors)
	companyHandler := NewCompanyHandler(config.CompanyService, config.Errors)
	userHandler := NewUserHandler(config.UserService, config.Errors)
	authHandler := NewAuthHandler(config.AuthService, config.UserService, config.Errors)
	taxHandler := NewTaxCalculatorHandler(config.TaxCalculatorService, config.Errors, config.Logger)

	// Swagger documentation
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	router.GET("/health", func(c *gin.Context) {
		if config.Health != nil {
			if err := config.Health(c.Request.Context()); err != nil {
				config.Logger.WithError(err).Warn("Health check failed")
				c.JSON(http.StatusServiceUnavailable, gin.H{
					"status":  "unhealthy",
					"service": "invoicing-api",
				})
				return
			}
		}
		c.JSON(http.StatusOK, gin.H{
			"status":  "healthy",
			"service": "invoicing-api",
			"version": "1.0.0",
		})
	})

	api := router.Group("/api")
	{
		api.GET("/tax/:taxId", taxHandler.GetTaxCalculation)

		auth := api.Group("/auth")
		{
			auth.POST("/login", authHandler.Login)
			auth.POST("/refresh", authHandler.RefreshToken)
			auth.GET("/me", middleware.Authentication(config.AuthService), authHandler.GetCurrentUser)
		}

		users := api.Group("/users")
		{
			users.POST("", userHandler.Register)

			protected := users.Group("")
			protected.Use(middleware.Authentication(config.AuthService))
			{
				protected.GET("", middleware.Authorization(models.RoleAdmin), userHandler.ListUsers)
				protected.GET("/:id", userHandler.GetUser)
				protected.DELETE("/:id", middleware.Authorization(models.RoleAdmin), userHandler.DeleteUser)
			}
		}

		// Protected API routes
		protected := api.Group("")
		protected.Use(middleware.Authentication(config.AuthService))
		{
			invoices := protected.Group("/invoices")
			{
				invoices.GET("", invoiceHandler.ListInvoices)
				invoices.POST("", invoiceHandler.CreateInvoice)
				invoices.GET("/:id", invoiceHandler.GetInvoice)
				invoices.PUT("/:id", invoiceHandler.UpdateInvoice)
				invoices.DELETE("/:id", invoiceHandler.DeleteInvoice)
				invoices.GET("/:id/pdf", invoiceHandler.GetInvoicePDF)
			}

			companies := protected.Group("/companies")
			{
				companies.GET("", companyHandler.ListCompanies)
				companies.POST("", companyHandler.CreateCompany)
				companies.GET("/tax/:taxId", companyHandler.GetCompanyByTaxID)
				companies.GET("/:id", companyHandler.GetCompany)
				companies.PUT("/:id", companyHandler.UpdateCompany)
				companies.DELETE("/:id", companyHandler.DeleteCompany)
			}
		}
	}
}

// SetupMiddleware configures global middleware
func SetupMiddleware(router *gin.Engine, config *MiddlewareConfig) {
	logger := config.Logger
	if logger == nil {
		logger = logrus.StandardLogger()
	}

	router.Use(middleware.RequestID())
	router.Use(middleware.Recovery())
	router.Use(middleware.StructuredLogger(logger))

	// CORS runs before routing so preflight requests to any path are answered
	router.Use(middleware.CORS(config.AllowedOrigins))
	router.Use(middleware.SecurityHeaders())

	if config.MaxBodyBytes > 0 {
		router.Use(middleware.RequestSizeLimit(config.MaxBodyBytes))
	}
	router.Use(middleware.ContentTypeValidation("application/json"))

	if config.RateLimitEnabled {
		router.Use(middleware.RateLimiter(config.RequestsPerSecond, config.Burst))
	}

	router.Use(middleware.AuditLogger(logger))
}
