package services

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"invoicing-api/internal/adapters/pdf"
	"invoicing-api/internal/adapters/storage"
	"invoicing-api/internal/models"
	"invoicing-api/internal/repositories"
)

// ServiceContainer holds all service instances
type ServiceContainer struct {
	InvoiceService       InvoiceService
	CompanyService       CompanyService
	UserService          UserService
	TaxCalculatorService TaxCalculatorService
}

// ServiceConfig holds configuration for services
type ServiceConfig struct {
	TaxRates   models.TaxRates
	BcryptCost int
	Renderer   pdf.InvoiceRenderer
	Files      storage.FileStorage
	Logger     *logrus.Logger
}

// NewServiceContainer creates a new service container with all services
func NewServiceContainer(repos repositories.RepositoryManager, config *ServiceConfig) (*ServiceContainer, error) {
	if repos == nil {
		return nil, fmt.Errorf("repository manager cannot be nil")
	}

	if config == nil {
		config = &ServiceConfig{TaxRates: models.DefaultTaxRates()}
	}
	if err := config.TaxRates.Validate(); err != nil {
		return nil, fmt.Errorf("invalid tax rates: %w", err)
	}
	if config.Renderer == nil {
		config.Renderer = pdf.NewDefaultRenderer()
	}
	if config.Files == nil {
		config.Files = storage.NewMemoryFileStorage()
	}
	if config.Logger == nil {
		config.Logger = logrus.StandardLogger()
	}

	return &ServiceContainer{
		InvoiceService:       NewInvoiceService(repos, config.Renderer, config.Files, config.Logger),
		CompanyService:       NewCompanyService(repos),
		UserService:          NewUserService(repos, config.BcryptCost),
		TaxCalculatorService: NewTaxCalculatorService(repos, config.TaxRates),
	}, nil
}
