package dto

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CompanyDto is the wire form of a company
type CompanyDto struct {
	ID                      uuid.UUID       `json:"id" swaggertype:"string" format:"uuid"`
	TaxIdentificationNumber string          `json:"taxIdentificationNumber" validate:"required,max=32" example:"123-456-78-90"`
	Name                    string          `json:"name" validate:"required,max=255" example:"Future Collars Sp. z o.o."`
	Address                 string          `json:"address" validate:"max=500" example:"ul. Prosta 1, 00-001 Warszawa"`
	PensionInsurance        decimal.Decimal `json:"pensionInsurance" swaggertype:"string" example:"1328.24"`
	HealthInsurance         decimal.Decimal `json:"healthInsurance" swaggertype:"string" example:"458.34"`
}

// CarDto is the wire form of a car attached to an invoice entry
type CarDto struct {
	RegistrationNumber string `json:"registrationNumber" validate:"required,max=16" example:"WX 12345"`
	PersonalUse        bool   `json:"personalUse"`
}

// InvoiceEntryDto is the wire form of an invoice line
type InvoiceEntryDto struct {
	ID          uuid.UUID       `json:"id" swaggertype:"string" format:"uuid"`
	Description string          `json:"description" validate:"required,max=500" example:"Laptop"`
	Quantity    decimal.Decimal `json:"quantity" swaggertype:"string" example:"1"`
	NetPrice    decimal.Decimal `json:"netPrice" swaggertype:"string" example:"5000.00"`
	VatValue    decimal.Decimal `json:"vatValue" swaggertype:"string" example:"1150.00"`
	VatRate     string          `json:"vatRate" validate:"required,oneof=VAT_23 VAT_8 VAT_5 VAT_0 VAT_ZW" example:"VAT_23"`
	Car         *CarDto         `json:"car,omitempty" validate:"omitempty"`
}

// InvoiceDto is the wire form of an invoice
type InvoiceDto struct {
	ID             uuid.UUID         `json:"id" swaggertype:"string" format:"uuid"`
	Number         string            `json:"number" validate:"required,max=64" example:"2021/05/0001"`
	Date           Date              `json:"date" swaggertype:"string" format:"date" example:"2021-05-01"`
	Seller         CompanyDto        `json:"seller" validate:"required"`
	Buyer          CompanyDto        `json:"buyer" validate:"required"`
	InvoiceEntries []InvoiceEntryDto `json:"invoiceEntries" validate:"required,min=1,dive"`
}
