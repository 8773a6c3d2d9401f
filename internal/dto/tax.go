package dto

import "github.com/shopspring/decimal"

// TaxCalculation is the yearly settlement of a company identified by its tax id
type TaxCalculation struct {
	Income                                       decimal.Decimal `json:"income" swaggertype:"string"`
	Costs                                        decimal.Decimal `json:"costs" swaggertype:"string"`
	IncomeMinusCosts                             decimal.Decimal `json:"incomeMinusCosts" swaggertype:"string"`
	CollectedVat                                 decimal.Decimal `json:"collectedVat" swaggertype:"string"`
	PaidVat                                      decimal.Decimal `json:"paidVat" swaggertype:"string"`
	VatToReturn                                  decimal.Decimal `json:"vatToReturn" swaggertype:"string"`
	PensionInsurance                             decimal.Decimal `json:"pensionInsurance" swaggertype:"string"`
	IncomeMinusCostsMinusPensionInsurance        decimal.Decimal `json:"incomeMinusCostsMinusPensionInsurance" swaggertype:"string"`
	IncomeMinusCostsMinusPensionInsuranceRounded decimal.Decimal `json:"incomeMinusCostsMinusPensionInsuranceRounded" swaggertype:"string"`
	IncomeTax                                    decimal.Decimal `json:"incomeTax" swaggertype:"string"`
	HealthInsurance                              decimal.Decimal `json:"healthInsurance" swaggertype:"string"`
	HealthInsuranceToSubtract                    decimal.Decimal `json:"healthInsuranceToSubtract" swaggertype:"string"`
	IncomeTaxMinusHealthInsurance                decimal.Decimal `json:"incomeTaxMinusHealthInsurance" swaggertype:"string"`
	FinalIncomeTax                               decimal.Decimal `json:"finalIncomeTax" swaggertype:"string"`
}
