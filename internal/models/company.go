package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Company is a party on an invoice, identified by its tax identification number
type Company struct {
	ID                      uuid.UUID       `json:"id" db:"id"`
	TaxIdentificationNumber string          `json:"tax_identification_number" db:"tax_identification_number"`
	Name                    string          `json:"name" db:"name"`
	Address                 string          `json:"address" db:"address"`
	PensionInsurance        decimal.Decimal `json:"pension_insurance" db:"pension_insurance"`
	HealthInsurance         decimal.Decimal `json:"health_insurance" db:"health_insurance"`
	CreatedAt               time.Time       `json:"created_at" db:"created_at"`
	UpdatedAt               time.Time       `json:"updated_at" db:"updated_at"`
}

// NewCompany creates a new company with generated ID and timestamps
func NewCompany(taxID, name, address string) *Company {
	now := time.Now().UTC()
	return &Company{
		ID:                      uuid.New(),
		TaxIdentificationNumber: taxID,
		Name:                    name,
		Address:                 address,
		PensionInsurance:        decimal.Zero,
		HealthInsurance:         decimal.Zero,
		CreatedAt:               now,
		UpdatedAt:               now,
	}
}

// Validate validates the company data
func (c *Company) Validate() error {
	if err := ValidateRequired(c.TaxIdentificationNumber, "tax_identification_number"); err != nil {
		return err
	}
	if err := ValidateStringLength(c.TaxIdentificationNumber, "tax_identification_number", 0, 32); err != nil {
		return err
	}
	if err := ValidateRequired(c.Name, "name"); err != nil {
		return err
	}
	if err := ValidateStringLength(c.Name, "name", 0, 255); err != nil {
		return err
	}
	if err := ValidateNonNegative(c.PensionInsurance, "pension_insurance"); err != nil {
		return err
	}
	return ValidateNonNegative(c.HealthInsurance, "health_insurance")
}

// Sanitize trims user supplied text fields
func (c *Company) Sanitize() {
	c.TaxIdentificationNumber = SanitizeString(c.TaxIdentificationNumber)
	c.Name = SanitizeString(c.Name)
	c.Address = SanitizeString(c.Address)
}

// UpdateTimestamp updates the UpdatedAt timestamp
func (c *Company) UpdateTimestamp() {
	c.UpdatedAt = time.Now().UTC()
}
