package sqlstore

import (
	"context"
	"database/sql"
	"errors"

	"invoicing-api/internal/models"
	"invoicing-api/internal/repositories"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

const companyColumns = `id, tax_identification_number, name, address,
	pension_insurance, health_insurance, created_at, updated_at`

// CompanyRepository implements repositories.CompanyRepository
type CompanyRepository struct {
	*BaseRepository
}

// NewCompanyRepository creates a new company repository
func NewCompanyRepository(db *sql.DB, dialect Dialect, logger *logrus.Logger) *CompanyRepository {
	return &CompanyRepository{
		BaseRepository: NewBaseRepository(db, dialect, "companies", logger),
	}
}

// Create creates a new company
func (r *CompanyRepository) Create(ctx context.Context, company *models.Company) error {
	if err := company.Validate(); err != nil {
		return repositories.ValidationError("company", company.ID.String(), err)
	}

	query := `
		INSERT INTO companies (` + companyColumns + `)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`

	_, err := r.executeExec(ctx, "create", query,
		company.ID,
		company.TaxIdentificationNumber,
		company.Name,
		company.Address,
		company.PensionInsurance,
		company.HealthInsurance,
		company.CreatedAt,
		company.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return repositories.DuplicateError("company", "tax identification number", company.TaxIdentificationNumber)
		}
		return repositories.NewRepositoryError("create", "company", company.ID.String(), err)
	}
	return nil
}

// GetByID retrieves a company by ID
func (r *CompanyRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Company, error) {
	query := `SELECT ` + companyColumns + ` FROM companies WHERE id = ?`
	return r.getOne(ctx, "get_by_id", id.String(), query, id)
}

// GetByTaxID retrieves a company by its tax identification number
func (r *CompanyRepository) GetByTaxID(ctx context.Context, taxID string) (*models.Company, error) {
	query := `SELECT ` + companyColumns + ` FROM companies WHERE tax_identification_number = ?`
	return r.getOne(ctx, "get_by_tax_id", taxID, query, taxID)
}

func (r *CompanyRepository) getOne(ctx context.Context, op, key, query string, arg any) (*models.Company, error) {
	company, err := scanCompany(r.executeQueryRow(ctx, op, query, arg))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, repositories.NotFoundError("company", key)
		}
		return nil, repositories.NewRepositoryError(op, "company", key, err)
	}
	return company, nil
}

// Update updates an existing company
func (r *CompanyRepository) Update(ctx context.Context, company *models.Company) error {
	if err := company.Validate(); err != nil {
		return repositories.ValidationError("company", company.ID.String(), err)
	}

	company.UpdateTimestamp()

	query := `
		UPDATE companies
		SET tax_identification_number = ?, name = ?, address = ?,
			pension_insurance = ?, health_insurance = ?, updated_at = ?
		WHERE id = ?`

	result, err := r.executeExec(ctx, "update", query,
		company.TaxIdentificationNumber,
		company.Name,
		company.Address,
		company.PensionInsurance,
		company.HealthInsurance,
		company.UpdatedAt,
		company.ID,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return repositories.DuplicateError("company", "tax identification number", company.TaxIdentificationNumber)
		}
		return repositories.NewRepositoryError("update", "company", company.ID.String(), err)
	}
	return r.checkRowsAffected(result, "company", "update", company.ID.String())
}

// Delete deletes a company. Companies referenced by invoices cannot be deleted.
func (r *CompanyRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result, err := r.executeExec(ctx, "delete", `DELETE FROM companies WHERE id = ?`, id)
	if err != nil {
		if isForeignKeyViolation(err) {
			return repositories.ConstraintError("company", "referenced by invoices", err)
		}
		return repositories.NewRepositoryError("delete", "company", id.String(), err)
	}
	return r.checkRowsAffected(result, "company", "delete", id.String())
}

// List returns all companies ordered by name
func (r *CompanyRepository) List(ctx context.Context) ([]models.Company, error) {
	rows, err := r.executeQuery(ctx, "list", `SELECT `+companyColumns+` FROM companies ORDER BY name, tax_identification_number`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	companies := []models.Company{}
	for rows.Next() {
		company, err := scanCompany(rows)
		if err != nil {
			return nil, repositories.NewRepositoryError("list", "company", "", err)
		}
		companies = append(companies, *company)
	}
	if err := rows.Err(); err != nil {
		return nil, repositories.NewRepositoryError("list", "company", "", err)
	}
	return companies, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanCompany(row rowScanner) (*models.Company, error) {
	c := &models.Company{}
	err := row.Scan(
		&c.ID,
		&c.TaxIdentificationNumber,
		&c.Name,
		&c.Address,
		&c.PensionInsurance,
		&c.HealthInsurance,
		&c.CreatedAt,
		&c.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return c, nil
}
