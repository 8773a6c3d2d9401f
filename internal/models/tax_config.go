package models

import (
	"errors"

	"github.com/shopspring/decimal"
)

// TaxRates holds the rates used to compute a company's yearly tax settlement.
// HealthInsuranceRate and HealthInsuranceDeductibleRate are percentages of the
// assessment base; only their ratio matters for the deductible share.
type TaxRates struct {
	IncomeTaxRate                 decimal.Decimal
	HealthInsuranceRate           decimal.Decimal
	HealthInsuranceDeductibleRate decimal.Decimal
	PersonalCarVatDeductible      decimal.Decimal
}

// DefaultTaxRates returns the Polish flat-tax rates: 19% income tax, 9% health
// insurance of which 7.75 points are deductible, and half of the VAT on a car in
// personal use.
func DefaultTaxRates() TaxRates {
	return TaxRates{
		IncomeTaxRate:                 decimal.RequireFromString("0.19"),
		HealthInsuranceRate:           decimal.NewFromInt(9),
		HealthInsuranceDeductibleRate: decimal.RequireFromString("7.75"),
		PersonalCarVatDeductible:      decimal.RequireFromString("0.5"),
	}
}

// Validate checks the rates are usable
func (r TaxRates) Validate() error {
	one := decimal.NewFromInt(1)
	if r.IncomeTaxRate.IsNegative() || r.IncomeTaxRate.GreaterThan(one) {
		return errors.New("income tax rate must be between 0 and 1")
	}
	if !r.HealthInsuranceRate.IsPositive() {
		return errors.New("health insurance rate must be positive")
	}
	if r.HealthInsuranceDeductibleRate.IsNegative() || r.HealthInsuranceDeductibleRate.GreaterThan(r.HealthInsuranceRate) {
		return errors.New("deductible health insurance rate must be between 0 and the health insurance rate")
	}
	if r.PersonalCarVatDeductible.IsNegative() || r.PersonalCarVatDeductible.GreaterThan(one) {
		return errors.New("personal car vat deductible share must be between 0 and 1")
	}
	return nil
}
