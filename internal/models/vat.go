package models

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Vat is a VAT rate category applied to an invoice entry
type Vat string

const (
	Vat23 Vat = "VAT_23"
	Vat8  Vat = "VAT_8"
	Vat5  Vat = "VAT_5"
	Vat0  Vat = "VAT_0"
	VatZW Vat = "VAT_ZW"
)

var vatRates = map[Vat]decimal.Decimal{
	Vat23: decimal.RequireFromString("0.23"),
	Vat8:  decimal.RequireFromString("0.08"),
	Vat5:  decimal.RequireFromString("0.05"),
	Vat0:  decimal.Zero,
	VatZW: decimal.Zero,
}

// AllVatRates lists the supported categories in display order
func AllVatRates() []Vat {
	return []Vat{Vat23, Vat8, Vat5, Vat0, VatZW}
}

// IsValid reports whether v is a known category
func (v Vat) IsValid() bool {
	_, ok := vatRates[v]
	return ok
}

// Rate returns the fractional rate, zero for exempt (ZW) and unknown categories
func (v Vat) Rate() decimal.Decimal {
	return vatRates[v]
}

// Percent returns the rate formatted for display, e.g. "23%" or "zw"
func (v Vat) Percent() string {
	if v == VatZW {
		return "zw"
	}
	return v.Rate().Shift(2).String() + "%"
}

// ParseVat converts a string to a Vat category
func ParseVat(s string) (Vat, error) {
	v := Vat(s)
	if !v.IsValid() {
		return "", &ValidationError{
			Field:   "vat_rate",
			Message: fmt.Sprintf("unknown vat rate: %s", s),
			Value:   s,
		}
	}
	return v, nil
}
