package services

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"invoicing-api/internal/dto"
	"invoicing-api/internal/repositories"
)

func TestTaxCalculatorService_GetTaxCalculation(t *testing.T) {
	env := setupServices(t)
	ctx := context.Background()

	company := companyDto("111-111-11-11", "Tax Payer")
	company.PensionInsurance = decimal.RequireFromString("514.57")
	company.HealthInsurance = decimal.RequireFromString("319.94")
	_, err := env.services.CompanyService.CreateCompany(ctx, &company)
	require.NoError(t, err)

	partner := companyDto("222-222-22-22", "Partner")

	// sold for 1000 net
	_, err = env.services.InvoiceService.CreateInvoice(ctx, &dto.InvoiceDto{
		Number:         "S/1",
		Date:           dto.Date{},
		Seller:         company,
		Buyer:          partner,
		InvoiceEntries: []dto.InvoiceEntryDto{entryDto("Consulting", "1000", "VAT_23", nil)},
	})
	require.NoError(t, err)

	// bought for 100 net and fuel for a car in personal use
	_, err = env.services.InvoiceService.CreateInvoice(ctx, &dto.InvoiceDto{
		Number: "P/1",
		Seller: partner,
		Buyer:  company,
		InvoiceEntries: []dto.InvoiceEntryDto{
			entryDto("Paper", "100", "VAT_23", nil),
			entryDto("Fuel", "200", "VAT_8", &dto.CarDto{RegistrationNumber: "WX 1", PersonalUse: true}),
		},
	})
	require.NoError(t, err)

	got, err := env.services.TaxCalculatorService.GetTaxCalculation(ctx, "111-111-11-11")
	require.NoError(t, err)

	assertDecimal(t, "1000", got.Income, "income")
	assertDecimal(t, "308", got.Costs, "costs")
	assertDecimal(t, "692", got.IncomeMinusCosts, "incomeMinusCosts")
	assertDecimal(t, "230", got.CollectedVat, "collectedVat")
	assertDecimal(t, "31", got.PaidVat, "paidVat")
	assertDecimal(t, "199", got.VatToReturn, "vatToReturn")
	assertDecimal(t, "514.57", got.PensionInsurance, "pensionInsurance")
	assertDecimal(t, "177.43", got.IncomeMinusCostsMinusPensionInsurance, "base")
	assertDecimal(t, "177", got.IncomeMinusCostsMinusPensionInsuranceRounded, "baseRounded")
	assertDecimal(t, "33.63", got.IncomeTax, "incomeTax")
	assertDecimal(t, "319.94", got.HealthInsurance, "healthInsurance")
	assertDecimal(t, "275.50", got.HealthInsuranceToSubtract, "healthInsuranceToSubtract")
	assertDecimal(t, "-241.87", got.IncomeTaxMinusHealthInsurance, "incomeTaxMinusHealthInsurance")
	assertDecimal(t, "-241", got.FinalIncomeTax, "finalIncomeTax")
}

func TestTaxCalculatorService_CompanyWithoutInvoices(t *testing.T) {
	env := setupServices(t)
	ctx := context.Background()

	company := companyDto("333", "Idle")
	_, err := env.services.CompanyService.CreateCompany(ctx, &company)
	require.NoError(t, err)

	got, err := env.services.TaxCalculatorService.GetTaxCalculation(ctx, " 333 ")
	require.NoError(t, err)
	assert.True(t, got.Income.IsZero())
	assert.True(t, got.FinalIncomeTax.IsZero())
}

func TestTaxCalculatorService_Errors(t *testing.T) {
	env := setupServices(t)
	ctx := context.Background()

	_, err := env.services.TaxCalculatorService.GetTaxCalculation(ctx, "missing")
	assert.ErrorIs(t, err, ErrCompanyNotFound)
	assert.ErrorIs(t, err, repositories.ErrNotFound)
	assert.Equal(t, "company with tax id missing not found", err.Error())

	_, err = env.services.TaxCalculatorService.GetTaxCalculation(ctx, "  ")
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestRoundHalfDown(t *testing.T) {
	tests := []struct {
		in     string
		places int32
		want   string
	}{
		{in: "2.5", places: 0, want: "2"},
		{in: "2.51", places: 0, want: "3"},
		{in: "2.49", places: 0, want: "2"},
		{in: "-2.5", places: 0, want: "-2"},
		{in: "-2.6", places: 0, want: "-3"},
		{in: "1.005", places: 2, want: "1"},
		{in: "1.006", places: 2, want: "1.01"},
		{in: "7", places: 2, want: "7"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got := roundHalfDown(decimal.RequireFromString(tt.in), tt.places)
			assert.True(t, decimal.RequireFromString(tt.want).Equal(got), "got %s", got)
		})
	}
}
