package sqlstore

import (
	"context"
	"database/sql"

	"invoicing-api/internal/repositories"

	"github.com/sirupsen/logrus"
)

// Store implements repositories.RepositoryManager over one *sql.DB
type Store struct {
	db        *sql.DB
	companies *CompanyRepository
	invoices  *InvoiceRepository
	users     *UserRepository
	tx        *TransactionManager
}

var _ repositories.RepositoryManager = (*Store)(nil)

// NewStore wires all repositories to db
func NewStore(db *sql.DB, dialect Dialect, logger *logrus.Logger) *Store {
	if logger == nil {
		logger = logrus.New()
	}
	return &Store{
		db:        db,
		companies: NewCompanyRepository(db, dialect, logger),
		invoices:  NewInvoiceRepository(db, dialect, logger),
		users:     NewUserRepository(db, dialect, logger),
		tx:        NewTransactionManager(db, logger),
	}
}

// Companies returns the company repository
func (s *Store) Companies() repositories.CompanyRepository { return s.companies }

// Invoices returns the invoice repository
func (s *Store) Invoices() repositories.InvoiceRepository { return s.invoices }

// Users returns the user repository
func (s *Store) Users() repositories.UserRepository { return s.users }

// WithTransaction executes fn within a transaction
func (s *Store) WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return s.tx.WithTransaction(ctx, fn)
}

// Health pings the database
func (s *Store) Health(ctx context.Context) error {
	return s.db.PingContext(ctx)
}
