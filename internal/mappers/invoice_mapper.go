// Package mappers converts between persisted models and their wire DTOs.
// Every mapper is a pure, stateless value: ToEntity(ToDto(x)) equals x on
// every field both shapes declare, and ToDto(ToEntity(y)) equals y.
package mappers

import (
	"invoicing-api/internal/dto"
	"invoicing-api/internal/models"
)

// InvoiceMapper converts invoices between their persisted and wire forms
type InvoiceMapper struct {
	companies CompanyMapper
}

// NewInvoiceMapper returns the invoice mapper
func NewInvoiceMapper() InvoiceMapper {
	return InvoiceMapper{}
}

// ToDto maps an invoice, its companies and entries to the wire form
func (m InvoiceMapper) ToDto(invoice models.Invoice) dto.InvoiceDto {
	return dto.InvoiceDto{
		ID:             invoice.ID,
		Number:         invoice.Number,
		Date:           dto.NewDate(invoice.Date),
		Seller:         m.companies.ToDto(invoice.Seller),
		Buyer:          m.companies.ToDto(invoice.Buyer),
		InvoiceEntries: m.entriesToDto(invoice.Entries),
	}
}

// ToEntity maps a wire invoice to a model. Entries are owned by the invoice
// and numbered in their wire order; timestamps are left zero.
func (m InvoiceMapper) ToEntity(d dto.InvoiceDto) models.Invoice {
	return models.Invoice{
		ID:      d.ID,
		Number:  d.Number,
		Date:    d.Date.Time,
		Seller:  m.companies.ToEntity(d.Seller),
		Buyer:   m.companies.ToEntity(d.Buyer),
		Entries: m.entriesToEntity(d),
	}
}

// ToDtos maps a slice of invoices
func (m InvoiceMapper) ToDtos(invoices []models.Invoice) []dto.InvoiceDto {
	out := make([]dto.InvoiceDto, 0, len(invoices))
	for _, inv := range invoices {
		out = append(out, m.ToDto(inv))
	}
	return out
}

func (m InvoiceMapper) entriesToDto(entries []models.InvoiceEntry) []dto.InvoiceEntryDto {
	if entries == nil {
		return nil
	}
	out := make([]dto.InvoiceEntryDto, len(entries))
	for i, e := range entries {
		out[i] = dto.InvoiceEntryDto{
			ID:          e.ID,
			Description: e.Description,
			Quantity:    e.Quantity,
			NetPrice:    e.NetPrice,
			VatValue:    e.VatValue,
			VatRate:     string(e.VatRate),
		}
		if e.Car != nil {
			out[i].Car = &dto.CarDto{
				RegistrationNumber: e.Car.RegistrationNumber,
				PersonalUse:        e.Car.PersonalUse,
			}
		}
	}
	return out
}

func (m InvoiceMapper) entriesToEntity(d dto.InvoiceDto) []models.InvoiceEntry {
	if d.InvoiceEntries == nil {
		return nil
	}
	out := make([]models.InvoiceEntry, len(d.InvoiceEntries))
	for i, e := range d.InvoiceEntries {
		out[i] = models.InvoiceEntry{
			ID:          e.ID,
			InvoiceID:   d.ID,
			Position:    i,
			Description: e.Description,
			Quantity:    e.Quantity,
			NetPrice:    e.NetPrice,
			VatValue:    e.VatValue,
			VatRate:     models.Vat(e.VatRate),
		}
		if e.Car != nil {
			out[i].Car = &models.Car{
				RegistrationNumber: e.Car.RegistrationNumber,
				PersonalUse:        e.Car.PersonalUse,
			}
		}
	}
	return out
}
