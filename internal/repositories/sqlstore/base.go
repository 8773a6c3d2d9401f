package sqlstore

import (
	"context"
	"database/sql"
	"time"

	"invoicing-api/internal/repositories"

	"github.com/sirupsen/logrus"
)

// querier is satisfied by both *sql.DB and *sql.Tx
type querier interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// BaseRepository provides query execution, logging and transaction lookup
// shared by all repositories
type BaseRepository struct {
	db      *sql.DB
	dialect Dialect
	table   string
	logger  *logrus.Logger
}

// NewBaseRepository creates a new base repository
func NewBaseRepository(db *sql.DB, dialect Dialect, table string, logger *logrus.Logger) *BaseRepository {
	if logger == nil {
		logger = logrus.New()
	}
	return &BaseRepository{
		db:      db,
		dialect: dialect,
		table:   table,
		logger:  logger,
	}
}

// conn returns the transaction bound to ctx, or the pool
func (r *BaseRepository) conn(ctx context.Context) querier {
	if tx, ok := txFromContext(ctx); ok {
		return tx
	}
	return r.db
}

// Count returns the number of rows in the table
func (r *BaseRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	row := r.executeQueryRow(ctx, "count", "SELECT COUNT(*) FROM "+r.table)
	if err := row.Scan(&count); err != nil {
		return 0, repositories.NewRepositoryError("count", r.table, "", err)
	}
	return count, nil
}

// logQuery logs a query with its execution time
func (r *BaseRepository) logQuery(operation string, query string, duration time.Duration, err error) {
	fields := logrus.Fields{
		"operation": operation,
		"table":     r.table,
		"query":     query,
		"duration":  duration,
	}

	if err != nil && err != sql.ErrNoRows {
		fields["error"] = err.Error()
		r.logger.WithFields(fields).Error("Query failed")
	} else {
		r.logger.WithFields(fields).Debug("Query executed")
	}
}

// executeQuery executes a query and logs the result
func (r *BaseRepository) executeQuery(ctx context.Context, operation, query string, args ...any) (*sql.Rows, error) {
	query = r.dialect.Rebind(query)
	start := time.Now()
	rows, err := r.conn(ctx).QueryContext(ctx, query, args...)
	r.logQuery(operation, query, time.Since(start), err)

	if err != nil {
		return nil, repositories.NewRepositoryError(operation, r.table, "", err)
	}
	return rows, nil
}

// executeQueryRow executes a single-row query and logs the result
func (r *BaseRepository) executeQueryRow(ctx context.Context, operation, query string, args ...any) *sql.Row {
	query = r.dialect.Rebind(query)
	start := time.Now()
	row := r.conn(ctx).QueryRowContext(ctx, query, args...)
	r.logQuery(operation, query, time.Since(start), row.Err())
	return row
}

// executeExec executes a non-query statement and logs the result.
// The raw driver error is returned so callers can classify constraint violations.
func (r *BaseRepository) executeExec(ctx context.Context, operation, query string, args ...any) (sql.Result, error) {
	query = r.dialect.Rebind(query)
	start := time.Now()
	result, err := r.conn(ctx).ExecContext(ctx, query, args...)
	r.logQuery(operation, query, time.Since(start), err)
	return result, err
}

// checkRowsAffected turns an update or delete that touched nothing into a not found error
func (r *BaseRepository) checkRowsAffected(result sql.Result, entity, operation, id string) error {
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return repositories.NewRepositoryError(operation, entity, id, err)
	}
	if rowsAffected == 0 {
		return repositories.NotFoundError(entity, id)
	}
	return nil
}
