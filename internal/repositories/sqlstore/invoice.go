package sqlstore

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"invoicing-api/internal/models"
	"invoicing-api/internal/repositories"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

const invoiceSelect = `
	SELECT i.id, i.number, i.date, i.created_at, i.updated_at,
		s.id, s.tax_identification_number, s.name, s.address,
		s.pension_insurance, s.health_insurance, s.created_at, s.updated_at,
		b.id, b.tax_identification_number, b.name, b.address,
		b.pension_insurance, b.health_insurance, b.created_at, b.updated_at
	FROM invoices i
	JOIN companies s ON s.id = i.seller_id
	JOIN companies b ON b.id = i.buyer_id`

// InvoiceRepository implements repositories.InvoiceRepository.
// Entries live in invoice_entries and are always written and read with their invoice.
type InvoiceRepository struct {
	*BaseRepository
	tx *TransactionManager
}

// NewInvoiceRepository creates a new invoice repository
func NewInvoiceRepository(db *sql.DB, dialect Dialect, logger *logrus.Logger) *InvoiceRepository {
	return &InvoiceRepository{
		BaseRepository: NewBaseRepository(db, dialect, "invoices", logger),
		tx:             NewTransactionManager(db, logger),
	}
}

// Create stores an invoice and its entries
func (r *InvoiceRepository) Create(ctx context.Context, invoice *models.Invoice) error {
	if err := invoice.Validate(); err != nil {
		return repositories.ValidationError("invoice", invoice.ID.String(), err)
	}
	invoice.Renumber()

	return r.tx.WithTransaction(ctx, func(ctx context.Context) error {
		query := `
			INSERT INTO invoices (id, number, date, seller_id, buyer_id, created_at, updated_at)
			VALUES (?, ?, ?, ?, ?, ?, ?)`

		_, err := r.executeExec(ctx, "create", query,
			invoice.ID,
			invoice.Number,
			invoice.Date,
			invoice.Seller.ID,
			invoice.Buyer.ID,
			invoice.CreatedAt,
			invoice.UpdatedAt,
		)
		if err != nil {
			return r.classify("create", invoice, err)
		}
		return r.insertEntries(ctx, invoice)
	})
}

// GetByID retrieves an invoice with companies and entries
func (r *InvoiceRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Invoice, error) {
	return r.getOne(ctx, "get_by_id", id.String(), invoiceSelect+` WHERE i.id = ?`, id)
}

// GetByNumber retrieves an invoice by its number
func (r *InvoiceRepository) GetByNumber(ctx context.Context, number string) (*models.Invoice, error) {
	return r.getOne(ctx, "get_by_number", number, invoiceSelect+` WHERE i.number = ?`, number)
}

func (r *InvoiceRepository) getOne(ctx context.Context, op, key, query string, arg any) (*models.Invoice, error) {
	invoice, err := scanInvoice(r.executeQueryRow(ctx, op, query, arg))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, repositories.NotFoundError("invoice", key)
		}
		return nil, repositories.NewRepositoryError(op, "invoice", key, err)
	}

	invoices := []models.Invoice{*invoice}
	if err := r.loadEntries(ctx, invoices); err != nil {
		return nil, err
	}
	return &invoices[0], nil
}

// Update replaces an invoice and all of its entries
func (r *InvoiceRepository) Update(ctx context.Context, invoice *models.Invoice) error {
	if err := invoice.Validate(); err != nil {
		return repositories.ValidationError("invoice", invoice.ID.String(), err)
	}
	invoice.UpdateTimestamp()
	invoice.Renumber()

	return r.tx.WithTransaction(ctx, func(ctx context.Context) error {
		query := `
			UPDATE invoices
			SET number = ?, date = ?, seller_id = ?, buyer_id = ?, updated_at = ?
			WHERE id = ?`

		result, err := r.executeExec(ctx, "update", query,
			invoice.Number,
			invoice.Date,
			invoice.Seller.ID,
			invoice.Buyer.ID,
			invoice.UpdatedAt,
			invoice.ID,
		)
		if err != nil {
			return r.classify("update", invoice, err)
		}
		if err := r.checkRowsAffected(result, "invoice", "update", invoice.ID.String()); err != nil {
			return err
		}

		if _, err := r.executeExec(ctx, "delete_entries", `DELETE FROM invoice_entries WHERE invoice_id = ?`, invoice.ID); err != nil {
			return repositories.NewRepositoryError("update", "invoice", invoice.ID.String(), err)
		}
		return r.insertEntries(ctx, invoice)
	})
}

// Delete deletes an invoice and its entries
func (r *InvoiceRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.tx.WithTransaction(ctx, func(ctx context.Context) error {
		if _, err := r.executeExec(ctx, "delete_entries", `DELETE FROM invoice_entries WHERE invoice_id = ?`, id); err != nil {
			return repositories.NewRepositoryError("delete", "invoice", id.String(), err)
		}
		result, err := r.executeExec(ctx, "delete", `DELETE FROM invoices WHERE id = ?`, id)
		if err != nil {
			return repositories.NewRepositoryError("delete", "invoice", id.String(), err)
		}
		return r.checkRowsAffected(result, "invoice", "delete", id.String())
	})
}

// List returns invoices matching the filter ordered by date and number
func (r *InvoiceRepository) List(ctx context.Context, filter repositories.InvoiceFilter) ([]models.Invoice, error) {
	var (
		conditions []string
		args       []any
	)
	if filter.CompanyTaxID != "" {
		conditions = append(conditions, "(s.tax_identification_number = ? OR b.tax_identification_number = ?)")
		args = append(args, filter.CompanyTaxID, filter.CompanyTaxID)
	}
	if filter.SellerTaxID != "" {
		conditions = append(conditions, "s.tax_identification_number = ?")
		args = append(args, filter.SellerTaxID)
	}
	if filter.BuyerTaxID != "" {
		conditions = append(conditions, "b.tax_identification_number = ?")
		args = append(args, filter.BuyerTaxID)
	}

	query := invoiceSelect
	if len(conditions) > 0 {
		query += " WHERE " + strings.Join(conditions, " AND ")
	}
	query += " ORDER BY i.date, i.number"

	rows, err := r.executeQuery(ctx, "list", query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	invoices := []models.Invoice{}
	for rows.Next() {
		invoice, err := scanInvoice(rows)
		if err != nil {
			return nil, repositories.NewRepositoryError("list", "invoice", "", err)
		}
		invoices = append(invoices, *invoice)
	}
	if err := rows.Err(); err != nil {
		return nil, repositories.NewRepositoryError("list", "invoice", "", err)
	}

	if err := r.loadEntries(ctx, invoices); err != nil {
		return nil, err
	}
	return invoices, nil
}

func (r *InvoiceRepository) insertEntries(ctx context.Context, invoice *models.Invoice) error {
	query := `
		INSERT INTO invoice_entries (
			id, invoice_id, position, description, quantity, net_price,
			vat_value, vat_rate, car_registration_number, car_personal_use
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`

	for _, e := range invoice.Entries {
		var regNumber sql.NullString
		var personalUse sql.NullBool
		if e.Car != nil {
			regNumber = sql.NullString{String: e.Car.RegistrationNumber, Valid: true}
			personalUse = sql.NullBool{Bool: e.Car.PersonalUse, Valid: true}
		}

		_, err := r.executeExec(ctx, "create_entry", query,
			e.ID,
			e.InvoiceID,
			e.Position,
			e.Description,
			e.Quantity,
			e.NetPrice,
			e.VatValue,
			string(e.VatRate),
			regNumber,
			personalUse,
		)
		if err != nil {
			if isUniqueViolation(err) {
				return repositories.DuplicateError("invoice entry", "id", e.ID.String())
			}
			return repositories.NewRepositoryError("create_entry", "invoice", invoice.ID.String(), err)
		}
	}
	return nil
}

// loadEntries fills the entries of all given invoices with a single query
func (r *InvoiceRepository) loadEntries(ctx context.Context, invoices []models.Invoice) error {
	if len(invoices) == 0 {
		return nil
	}

	index := make(map[uuid.UUID]int, len(invoices))
	args := make([]any, 0, len(invoices))
	for i := range invoices {
		invoices[i].Entries = []models.InvoiceEntry{}
		index[invoices[i].ID] = i
		args = append(args, invoices[i].ID)
	}

	query := `
		SELECT id, invoice_id, position, description, quantity, net_price,
			vat_value, vat_rate, car_registration_number, car_personal_use
		FROM invoice_entries
		WHERE invoice_id IN (?` + strings.Repeat(", ?", len(args)-1) + `)
		ORDER BY invoice_id, position`

	rows, err := r.executeQuery(ctx, "list_entries", query, args...)
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var (
			e           models.InvoiceEntry
			vatRate     string
			regNumber   sql.NullString
			personalUse sql.NullBool
		)
		err := rows.Scan(
			&e.ID,
			&e.InvoiceID,
			&e.Position,
			&e.Description,
			&e.Quantity,
			&e.NetPrice,
			&e.VatValue,
			&vatRate,
			&regNumber,
			&personalUse,
		)
		if err != nil {
			return repositories.NewRepositoryError("list_entries", "invoice", "", err)
		}
		e.VatRate = models.Vat(vatRate)
		if regNumber.Valid {
			e.Car = &models.Car{RegistrationNumber: regNumber.String, PersonalUse: personalUse.Bool}
		}

		i := index[e.InvoiceID]
		invoices[i].Entries = append(invoices[i].Entries, e)
	}
	if err := rows.Err(); err != nil {
		return repositories.NewRepositoryError("list_entries", "invoice", "", err)
	}
	return nil
}

func (r *InvoiceRepository) classify(op string, invoice *models.Invoice, err error) error {
	switch {
	case isUniqueViolation(err):
		return repositories.DuplicateError("invoice", "number", invoice.Number)
	case isForeignKeyViolation(err):
		return repositories.ConstraintError("invoice", "unknown company", err)
	default:
		return repositories.NewRepositoryError(op, "invoice", invoice.ID.String(), err)
	}
}

func scanInvoice(row rowScanner) (*models.Invoice, error) {
	inv := &models.Invoice{}
	s, b := &inv.Seller, &inv.Buyer
	err := row.Scan(
		&inv.ID, &inv.Number, &inv.Date, &inv.CreatedAt, &inv.UpdatedAt,
		&s.ID, &s.TaxIdentificationNumber, &s.Name, &s.Address,
		&s.PensionInsurance, &s.HealthInsurance, &s.CreatedAt, &s.UpdatedAt,
		&b.ID, &b.TaxIdentificationNumber, &b.Name, &b.Address,
		&b.PensionInsurance, &b.HealthInsurance, &b.CreatedAt, &b.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return inv, nil
}
