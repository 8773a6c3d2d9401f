package server

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	_ "invoicing-api/docs" // registers the swagger description
	"invoicing-api/internal/adapters/pdf"
	"invoicing-api/internal/adapters/storage"
	"invoicing-api/internal/config"
	"invoicing-api/internal/database"
	"invoicing-api/internal/handlers"
	"invoicing-api/internal/middleware"
	"invoicing-api/internal/repositories"
	"invoicing-api/internal/repositories/sqlstore"
	"invoicing-api/internal/services"
)

const maxRequestBodyBytes = 10 << 20

// Container holds all application dependencies
type Container struct {
	Config      *config.Config
	Logger      *logrus.Logger
	Services    *services.ServiceContainer
	AuthService *middleware.AuthService
	Errors      *handlers.ErrorMapper
	Files       storage.FileStorage

	// Internal dependencies
	db    *database.ConnectionManager
	store *sqlstore.Store
}

// NewContainer creates a new dependency injection container
func NewContainer(cfg *config.Config) (*Container, error) {
	logger := NewLogger(cfg.Log)

	rates, err := cfg.Tax.Rates()
	if err != nil {
		return nil, err
	}

	db := database.NewConnectionManager(&database.ConnectionConfig{
		Driver:          cfg.Database.Driver,
		DSN:             cfg.Database.ConnectionString,
		MaxOpenConns:    cfg.Database.MaxOpenConns,
		MaxIdleConns:    cfg.Database.MaxIdleConns,
		ConnMaxLifetime: cfg.Database.ConnMaxLifetime,
		AutoMigrate:     cfg.Database.AutoMigrate,
		Logger:          logger,
	})
	if err := db.Connect(); err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	files, err := storage.CreateFromConfig(&storage.StorageConfig{
		Type:     cfg.Storage.Type,
		BasePath: cfg.Storage.LocalPath,
	})
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create file storage: %w", err)
	}

	store := sqlstore.NewStore(db.DB(), sqlstore.DialectFor(db.Driver()), logger)

	serviceContainer, err := services.NewServiceContainer(store, &services.ServiceConfig{
		TaxRates: rates,
		Renderer: pdf.NewDefaultRenderer(),
		Files:    files,
		Logger:   logger,
	})
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create service container: %w", err)
	}

	authService := middleware.NewAuthService(&middleware.AuthConfig{
		JWTSecret:     cfg.JWT.Secret,
		TokenDuration: cfg.JWT.TokenDuration(),
		Issuer:        cfg.JWT.Issuer,
	})

	errs := handlers.NewErrorMapper(logger).
		WithStatus(services.ErrCompanyNotFound, cfg.Errors.TaxNotFoundStatus)

	logger.WithFields(logrus.Fields{
		"environment": cfg.Environment,
		"db_driver":   cfg.Database.Driver,
		"storage":     cfg.Storage.Type,
	}).Info("Container initialized")

	return &Container{
		Config:      cfg,
		Logger:      logger,
		Services:    serviceContainer,
		AuthService: authService,
		Errors:      errs,
		Files:       files,
		db:          db,
		store:       store,
	}, nil
}

// NewLogger builds the application logger and applies the same settings to the
// standard logrus logger used by the middleware
func NewLogger(cfg config.LogConfig) *logrus.Logger {
	level, err := logrus.ParseLevel(cfg.Level)
	if err != nil {
		level = logrus.InfoLevel
	}

	var formatter logrus.Formatter = &logrus.JSONFormatter{}
	if strings.EqualFold(cfg.Format, "text") {
		formatter = &logrus.TextFormatter{FullTimestamp: true}
	}

	logger := logrus.New()
	logger.SetOutput(os.Stdout)
	logger.SetLevel(level)
	logger.SetFormatter(formatter)

	logrus.SetLevel(level)
	logrus.SetFormatter(formatter)
	return logger
}

// Router builds the gin engine with the middleware chain and all routes
func (c *Container) Router() *gin.Engine {
	if c.Config.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	handlers.SetupMiddleware(router, &handlers.MiddlewareConfig{
		AllowedOrigins:    c.Config.CORS.AllowedOrigins,
		RateLimitEnabled:  c.Config.RateLimit.Enabled,
		RequestsPerSecond: c.Config.RateLimit.RequestsPerSecond,
		Burst:             c.Config.RateLimit.Burst,
		MaxBodyBytes:      maxRequestBodyBytes,
		Logger:            c.Logger,
	})
	handlers.SetupRoutes(router, &handlers.RouterConfig{
		InvoiceService:       c.Services.InvoiceService,
		CompanyService:       c.Services.CompanyService,
		UserService:          c.Services.UserService,
		TaxCalculatorService: c.Services.TaxCalculatorService,
		AuthService:          c.AuthService,
		Errors:               c.Errors,
		Logger:               c.Logger,
		Health:               c.Health,
	})
	return router
}

// Repositories returns the repository manager backing the services
func (c *Container) Repositories() repositories.RepositoryManager {
	return c.store
}

// Health checks the database connection
func (c *Container) Health(ctx context.Context) error {
	return c.db.HealthCheck(ctx)
}

// Close cleans up all resources
func (c *Container) Close() error {
	if c.db != nil {
		if err := c.db.Close(); err != nil {
			return fmt.Errorf("failed to close database: %w", err)
		}
	}
	return nil
}
