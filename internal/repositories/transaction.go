package repositories

import (
	"context"
)

// TransactionManager runs a unit of work atomically.
// Repositories called with the context passed to fn take part in the transaction.
type TransactionManager interface {
	WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}

// RepositoryManager provides access to all repositories and transaction management
type RepositoryManager interface {
	TransactionManager

	Companies() CompanyRepository
	Invoices() InvoiceRepository
	Users() UserRepository

	// Health checks the health of the underlying connection
	Health(ctx context.Context) error
}
