package models

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Car is attached to an entry when the cost concerns a vehicle.
// Personal use limits the deductible VAT.
type Car struct {
	RegistrationNumber string `json:"registration_number" db:"car_registration_number"`
	PersonalUse        bool   `json:"personal_use" db:"car_personal_use"`
}

// InvoiceEntry is one line of an invoice
type InvoiceEntry struct {
	ID          uuid.UUID       `json:"id" db:"id"`
	InvoiceID   uuid.UUID       `json:"invoice_id" db:"invoice_id"`
	Position    int             `json:"position" db:"position"`
	Description string          `json:"description" db:"description"`
	Quantity    decimal.Decimal `json:"quantity" db:"quantity"`
	NetPrice    decimal.Decimal `json:"net_price" db:"net_price"`
	VatValue    decimal.Decimal `json:"vat_value" db:"vat_value"`
	VatRate     Vat             `json:"vat_rate" db:"vat_rate"`
	Car         *Car            `json:"car,omitempty"`
}

// Invoice is an invoice issued by Seller to Buyer
type Invoice struct {
	ID        uuid.UUID      `json:"id" db:"id"`
	Number    string         `json:"number" db:"number"`
	Date      time.Time      `json:"date" db:"date"`
	Seller    Company        `json:"seller"`
	Buyer     Company        `json:"buyer"`
	Entries   []InvoiceEntry `json:"entries"`
	CreatedAt time.Time      `json:"created_at" db:"created_at"`
	UpdatedAt time.Time      `json:"updated_at" db:"updated_at"`
}

// NewInvoice creates a new invoice with generated ID and timestamps
func NewInvoice(number string, date time.Time, seller, buyer Company) *Invoice {
	now := time.Now().UTC()
	return &Invoice{
		ID:        uuid.New(),
		Number:    number,
		Date:      date,
		Seller:    seller,
		Buyer:     buyer,
		Entries:   []InvoiceEntry{},
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// AddEntry appends an entry and computes its VAT value from the rate
func (i *Invoice) AddEntry(description string, quantity, netPrice decimal.Decimal, rate Vat, car *Car) *InvoiceEntry {
	entry := InvoiceEntry{
		ID:          uuid.New(),
		InvoiceID:   i.ID,
		Position:    len(i.Entries),
		Description: description,
		Quantity:    quantity,
		NetPrice:    netPrice,
		VatValue:    netPrice.Mul(rate.Rate()).Round(2),
		VatRate:     rate,
		Car:         car,
	}
	i.Entries = append(i.Entries, entry)
	return &i.Entries[len(i.Entries)-1]
}

// Validate validates the invoice and its entries
func (i *Invoice) Validate() error {
	if err := ValidateRequired(i.Number, "number"); err != nil {
		return err
	}
	if i.Date.IsZero() {
		return &ValidationError{Field: "date", Message: "date is required"}
	}
	if err := i.Seller.Validate(); err != nil {
		return fmt.Errorf("seller: %w", err)
	}
	if err := i.Buyer.Validate(); err != nil {
		return fmt.Errorf("buyer: %w", err)
	}
	if i.Seller.TaxIdentificationNumber == i.Buyer.TaxIdentificationNumber {
		return &ValidationError{
			Field:   "buyer",
			Message: "seller and buyer must be different companies",
			Value:   i.Buyer.TaxIdentificationNumber,
		}
	}
	if len(i.Entries) == 0 {
		return &ValidationError{Field: "entries", Message: "invoice must have at least one entry"}
	}
	for idx := range i.Entries {
		if err := i.Entries[idx].Validate(); err != nil {
			return fmt.Errorf("entry %d: %w", idx, err)
		}
	}
	return nil
}

// Validate validates a single entry
func (e *InvoiceEntry) Validate() error {
	if err := ValidateRequired(e.Description, "description"); err != nil {
		return err
	}
	if !e.Quantity.IsPositive() {
		return &ValidationError{Field: "quantity", Message: "quantity must be greater than 0", Value: e.Quantity.String()}
	}
	if err := ValidateNonNegative(e.NetPrice, "net_price"); err != nil {
		return err
	}
	if err := ValidateNonNegative(e.VatValue, "vat_value"); err != nil {
		return err
	}
	if !e.VatRate.IsValid() {
		return &ValidationError{Field: "vat_rate", Message: "unknown vat rate", Value: string(e.VatRate)}
	}
	if e.Car != nil {
		return ValidateRequired(e.Car.RegistrationNumber, "car.registration_number")
	}
	return nil
}

// GrossPrice returns net price plus VAT
func (e *InvoiceEntry) GrossPrice() decimal.Decimal {
	return e.NetPrice.Add(e.VatValue)
}

// NetTotal sums the net prices of all entries
func (i *Invoice) NetTotal() decimal.Decimal {
	total := decimal.Zero
	for _, e := range i.Entries {
		total = total.Add(e.NetPrice)
	}
	return total
}

// VatTotal sums the VAT values of all entries
func (i *Invoice) VatTotal() decimal.Decimal {
	total := decimal.Zero
	for _, e := range i.Entries {
		total = total.Add(e.VatValue)
	}
	return total
}

// GrossTotal returns NetTotal plus VatTotal
func (i *Invoice) GrossTotal() decimal.Decimal {
	return i.NetTotal().Add(i.VatTotal())
}

// Renumber assigns invoice ownership and positions to entries, generating missing IDs
func (i *Invoice) Renumber() {
	for idx := range i.Entries {
		if i.Entries[idx].ID == uuid.Nil {
			i.Entries[idx].ID = uuid.New()
		}
		i.Entries[idx].InvoiceID = i.ID
		i.Entries[idx].Position = idx
	}
}

// UpdateTimestamp updates the UpdatedAt timestamp
func (i *Invoice) UpdateTimestamp() {
	i.UpdatedAt = time.Now().UTC()
}
