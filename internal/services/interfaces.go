package services

import (
	"context"

	"invoicing-api/internal/dto"
	"invoicing-api/internal/models"
	"invoicing-api/internal/repositories"
)

// InvoiceService defines invoice business operations
type InvoiceService interface {
	ListInvoices(ctx context.Context, filter repositories.InvoiceFilter) ([]dto.InvoiceDto, error)
	GetInvoice(ctx context.Context, id string) (*dto.InvoiceDto, error)
	CreateInvoice(ctx context.Context, req *dto.InvoiceDto) (*dto.InvoiceDto, error)
	UpdateInvoice(ctx context.Context, id string, req *dto.InvoiceDto) (*dto.InvoiceDto, error)
	DeleteInvoice(ctx context.Context, id string) error

	// RenderInvoicePDF renders the invoice and archives the document in file storage
	RenderInvoicePDF(ctx context.Context, id string) ([]byte, error)
}

// CompanyService defines company business operations
type CompanyService interface {
	ListCompanies(ctx context.Context) ([]dto.CompanyDto, error)
	GetCompany(ctx context.Context, id string) (*dto.CompanyDto, error)
	GetCompanyByTaxID(ctx context.Context, taxID string) (*dto.CompanyDto, error)
	CreateCompany(ctx context.Context, req *dto.CompanyDto) (*dto.CompanyDto, error)
	UpdateCompany(ctx context.Context, id string, req *dto.CompanyDto) (*dto.CompanyDto, error)
	DeleteCompany(ctx context.Context, id string) error
}

// UserService defines account operations
type UserService interface {
	Register(ctx context.Context, req *dto.CreateUserRequest) (*dto.UserDto, error)
	GetUser(ctx context.Context, id string) (*dto.UserDto, error)
	ListUsers(ctx context.Context) ([]dto.UserDto, error)
	DeleteUser(ctx context.Context, id string) error

	// Authenticate checks credentials and returns the matching user
	Authenticate(ctx context.Context, username, password string) (*models.User, error)
}

// TaxCalculatorService computes the yearly tax settlement of a company
type TaxCalculatorService interface {
	GetTaxCalculation(ctx context.Context, taxID string) (*dto.TaxCalculation, error)
}
