package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"invoicing-api/internal/adapters/pdf"
	"invoicing-api/internal/adapters/storage"
	"invoicing-api/internal/dto"
	"invoicing-api/internal/mappers"
	"invoicing-api/internal/models"
	"invoicing-api/internal/repositories"
)

// invoiceService implements the InvoiceService interface
type invoiceService struct {
	repos     repositories.RepositoryManager
	mapper    mappers.InvoiceMapper
	renderer  pdf.InvoiceRenderer
	files     storage.FileStorage
	validator *Validator
	logger    *logrus.Logger
}

// NewInvoiceService creates a new invoice service instance
func NewInvoiceService(
	repos repositories.RepositoryManager,
	renderer pdf.InvoiceRenderer,
	files storage.FileStorage,
	logger *logrus.Logger,
) InvoiceService {
	return &invoiceService{
		repos:     repos,
		mapper:    mappers.NewInvoiceMapper(),
		renderer:  renderer,
		files:     files,
		validator: NewValidator(),
		logger:    logger,
	}
}

// InvoicePDFKey is the storage key of an invoice's rendered document
func InvoicePDFKey(id uuid.UUID) string {
	return "invoices/" + id.String() + ".pdf"
}

// ListInvoices returns invoices matching the filter
func (s *invoiceService) ListInvoices(ctx context.Context, filter repositories.InvoiceFilter) ([]dto.InvoiceDto, error) {
	invoices, err := s.repos.Invoices().List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list invoices: %w", err)
	}
	return s.mapper.ToDtos(invoices), nil
}

// GetInvoice retrieves an invoice by ID
func (s *invoiceService) GetInvoice(ctx context.Context, id string) (*dto.InvoiceDto, error) {
	invoice, err := s.get(ctx, id)
	if err != nil {
		return nil, err
	}
	out := s.mapper.ToDto(*invoice)
	return &out, nil
}

func (s *invoiceService) get(ctx context.Context, id string) (*models.Invoice, error) {
	invoiceID, err := parseID("id", id)
	if err != nil {
		return nil, err
	}
	invoice, err := s.repos.Invoices().GetByID(ctx, invoiceID)
	if err != nil {
		return nil, fmt.Errorf("failed to get invoice: %w", err)
	}
	return invoice, nil
}

// CreateInvoice stores a new invoice, creating or refreshing its companies
func (s *invoiceService) CreateInvoice(ctx context.Context, req *dto.InvoiceDto) (*dto.InvoiceDto, error) {
	invoice, err := s.prepare(req)
	if err != nil {
		return nil, err
	}
	invoice.ID = uuid.New()
	invoice.CreatedAt = time.Now().UTC()
	invoice.UpdatedAt = invoice.CreatedAt
	for i := range invoice.Entries {
		invoice.Entries[i].ID = uuid.Nil
	}
	invoice.Renumber()

	err = s.repos.WithTransaction(ctx, func(ctx context.Context) error {
		if err := s.attachCompanies(ctx, invoice); err != nil {
			return err
		}
		return s.repos.Invoices().Create(ctx, invoice)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create invoice: %w", err)
	}

	out := s.mapper.ToDto(*invoice)
	return &out, nil
}

// UpdateInvoice replaces an invoice and its entries
func (s *invoiceService) UpdateInvoice(ctx context.Context, id string, req *dto.InvoiceDto) (*dto.InvoiceDto, error) {
	existing, err := s.get(ctx, id)
	if err != nil {
		return nil, err
	}

	invoice, err := s.prepare(req)
	if err != nil {
		return nil, err
	}
	invoice.ID = existing.ID
	invoice.CreatedAt = existing.CreatedAt
	invoice.UpdateTimestamp()
	for i := range invoice.Entries {
		invoice.Entries[i].ID = uuid.Nil
	}
	invoice.Renumber()

	err = s.repos.WithTransaction(ctx, func(ctx context.Context) error {
		if err := s.attachCompanies(ctx, invoice); err != nil {
			return err
		}
		return s.repos.Invoices().Update(ctx, invoice)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to update invoice: %w", err)
	}

	// the archived document no longer matches
	s.discardPDF(ctx, invoice.ID)

	out := s.mapper.ToDto(*invoice)
	return &out, nil
}

// DeleteInvoice deletes an invoice and its archived document
func (s *invoiceService) DeleteInvoice(ctx context.Context, id string) error {
	invoiceID, err := parseID("id", id)
	if err != nil {
		return err
	}
	if err := s.repos.Invoices().Delete(ctx, invoiceID); err != nil {
		return fmt.Errorf("failed to delete invoice: %w", err)
	}
	s.discardPDF(ctx, invoiceID)
	return nil
}

// RenderInvoicePDF renders the invoice and archives it under InvoicePDFKey.
// An archival failure is logged; the document is still returned.
func (s *invoiceService) RenderInvoicePDF(ctx context.Context, id string) ([]byte, error) {
	invoice, err := s.get(ctx, id)
	if err != nil {
		return nil, err
	}

	data, err := s.renderer.Render(ctx, invoice)
	if err != nil {
		return nil, fmt.Errorf("failed to render invoice: %w", err)
	}

	key := InvoicePDFKey(invoice.ID)
	err = s.files.Store(ctx, key, data, &storage.StoreOptions{ContentType: "application/pdf", Overwrite: true})
	if err != nil {
		s.logger.WithFields(logrus.Fields{
			"invoice_id": invoice.ID,
			"key":        key,
			"error":      err.Error(),
		}).Warn("Failed to archive invoice PDF")
	}

	return data, nil
}

// prepare validates the request and maps it to a model with computed VAT values
func (s *invoiceService) prepare(req *dto.InvoiceDto) (*models.Invoice, error) {
	if req == nil {
		return nil, invalidField("invoice", "is required")
	}
	if err := s.validator.Struct(req); err != nil {
		return nil, err
	}

	invoice := s.mapper.ToEntity(*req)
	if invoice.Date.IsZero() {
		now := time.Now().UTC()
		invoice.Date = time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	}
	invoice.Seller.Sanitize()
	invoice.Buyer.Sanitize()

	for i := range invoice.Entries {
		e := &invoice.Entries[i]
		if e.VatValue.IsZero() && e.VatRate.IsValid() {
			e.VatValue = e.NetPrice.Mul(e.VatRate.Rate()).Round(2)
		}
	}

	if err := invoice.Validate(); err != nil {
		return nil, fromModelError(err)
	}
	return &invoice, nil
}

// attachCompanies replaces the invoice parties with their stored records
func (s *invoiceService) attachCompanies(ctx context.Context, invoice *models.Invoice) error {
	seller, err := s.upsertCompany(ctx, invoice.Seller)
	if err != nil {
		return err
	}
	buyer, err := s.upsertCompany(ctx, invoice.Buyer)
	if err != nil {
		return err
	}
	invoice.Seller = *seller
	invoice.Buyer = *buyer
	return nil
}

// upsertCompany finds a company by tax id, refreshing its name and address,
// or creates it. Insurance amounts of known companies are left untouched.
func (s *invoiceService) upsertCompany(ctx context.Context, c models.Company) (*models.Company, error) {
	companies := s.repos.Companies()

	existing, err := companies.GetByTaxID(ctx, c.TaxIdentificationNumber)
	switch {
	case err == nil:
		if existing.Name != c.Name || existing.Address != c.Address {
			existing.Name = c.Name
			existing.Address = c.Address
			existing.UpdateTimestamp()
			if err := companies.Update(ctx, existing); err != nil {
				return nil, err
			}
		}
		return existing, nil
	case repositories.IsNotFound(err):
		created := models.NewCompany(c.TaxIdentificationNumber, c.Name, c.Address)
		created.PensionInsurance = c.PensionInsurance
		created.HealthInsurance = c.HealthInsurance
		if err := companies.Create(ctx, created); err != nil {
			return nil, err
		}
		return created, nil
	default:
		return nil, err
	}
}

func (s *invoiceService) discardPDF(ctx context.Context, id uuid.UUID) {
	key := InvoicePDFKey(id)
	if err := s.files.Delete(ctx, key); err != nil && !storage.IsNotFound(err) {
		s.logger.WithFields(logrus.Fields{
			"invoice_id": id,
			"key":        key,
			"error":      err.Error(),
		}).Warn("Failed to remove archived invoice PDF")
	}
}
