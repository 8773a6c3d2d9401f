package repositories

import (
	"context"

	"invoicing-api/internal/models"

	"github.com/google/uuid"
)

// BaseRepository defines common CRUD operations for all repositories
type BaseRepository[T any] interface {
	// Create creates a new entity
	Create(ctx context.Context, entity *T) error

	// GetByID retrieves an entity by its ID
	GetByID(ctx context.Context, id uuid.UUID) (*T, error)

	// Update updates an existing entity
	Update(ctx context.Context, entity *T) error

	// Delete deletes an entity by its ID
	Delete(ctx context.Context, id uuid.UUID) error

	// Count returns the total number of entities
	Count(ctx context.Context) (int64, error)
}

// CompanyRepository defines operations specific to company management
type CompanyRepository interface {
	BaseRepository[models.Company]

	// GetByTaxID retrieves a company by its tax identification number
	GetByTaxID(ctx context.Context, taxID string) (*models.Company, error)

	// List returns all companies ordered by name
	List(ctx context.Context) ([]models.Company, error)
}

// InvoiceFilter narrows invoice listings. Empty fields do not filter.
type InvoiceFilter struct {
	// CompanyTaxID matches invoices where the company is either seller or buyer
	CompanyTaxID string
	SellerTaxID  string
	BuyerTaxID   string
}

// InvoiceRepository defines operations specific to invoice management.
// Invoices are stored together with their entries; companies must already exist.
type InvoiceRepository interface {
	BaseRepository[models.Invoice]

	// GetByNumber retrieves an invoice by its number
	GetByNumber(ctx context.Context, number string) (*models.Invoice, error)

	// List returns invoices matching the filter ordered by date and number
	List(ctx context.Context, filter InvoiceFilter) ([]models.Invoice, error)
}

// UserRepository defines operations specific to user management
type UserRepository interface {
	BaseRepository[models.User]

	// GetByUsername retrieves a user by username
	GetByUsername(ctx context.Context, username string) (*models.User, error)

	// List returns all users ordered by username
	List(ctx context.Context) ([]models.User, error)
}
