package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"invoicing-api/internal/dto"
	"invoicing-api/internal/models"
	"invoicing-api/internal/repositories"
)

// taxCalculatorService implements TaxCalculatorService
type taxCalculatorService struct {
	companies repositories.CompanyRepository
	invoices  repositories.InvoiceRepository
	rates     models.TaxRates
}

// NewTaxCalculatorService creates a tax calculator using the given rates
func NewTaxCalculatorService(repos repositories.RepositoryManager, rates models.TaxRates) TaxCalculatorService {
	return &taxCalculatorService{
		companies: repos.Companies(),
		invoices:  repos.Invoices(),
		rates:     rates,
	}
}

// GetTaxCalculation sums the invoices of the company identified by taxID and
// derives the income tax due.
func (s *taxCalculatorService) GetTaxCalculation(ctx context.Context, taxID string) (*dto.TaxCalculation, error) {
	taxID = strings.TrimSpace(taxID)
	if taxID == "" {
		return nil, invalidField("taxId", "is required")
	}

	company, err := s.companies.GetByTaxID(ctx, taxID)
	if err != nil {
		if repositories.IsNotFound(err) {
			return nil, &CompanyNotFoundError{TaxID: taxID}
		}
		return nil, fmt.Errorf("failed to get company: %w", err)
	}

	invoices, err := s.invoices.List(ctx, repositories.InvoiceFilter{CompanyTaxID: taxID})
	if err != nil {
		return nil, fmt.Errorf("failed to list invoices: %w", err)
	}

	return s.calculate(company, invoices), nil
}

func (s *taxCalculatorService) calculate(company *models.Company, invoices []models.Invoice) *dto.TaxCalculation {
	income, costs := decimal.Zero, decimal.Zero
	collectedVat, paidVat := decimal.Zero, decimal.Zero

	for _, invoice := range invoices {
		for _, entry := range invoice.Entries {
			if invoice.Seller.TaxIdentificationNumber == company.TaxIdentificationNumber {
				income = income.Add(entry.NetPrice)
				collectedVat = collectedVat.Add(entry.VatValue)
			}
			if invoice.Buyer.TaxIdentificationNumber == company.TaxIdentificationNumber {
				deductible := entry.VatValue
				if entry.Car != nil && entry.Car.PersonalUse {
					deductible = entry.VatValue.Mul(s.rates.PersonalCarVatDeductible)
					// the non-deductible VAT part becomes a cost
					costs = costs.Add(entry.VatValue.Sub(deductible))
				}
				costs = costs.Add(entry.NetPrice)
				paidVat = paidVat.Add(deductible)
			}
		}
	}

	incomeMinusCosts := income.Sub(costs)
	pension := company.PensionInsurance
	base := incomeMinusCosts.Sub(pension)
	baseRounded := roundHalfDown(base, 0)
	incomeTax := roundHalfDown(baseRounded.Mul(s.rates.IncomeTaxRate), 2)
	health := company.HealthInsurance
	healthToSubtract := roundHalfDown(
		health.Mul(s.rates.HealthInsuranceDeductibleRate).Div(s.rates.HealthInsuranceRate), 2)
	incomeTaxMinusHealth := incomeTax.Sub(healthToSubtract)

	return &dto.TaxCalculation{
		Income:                                income,
		Costs:                                 costs,
		IncomeMinusCosts:                      incomeMinusCosts,
		CollectedVat:                          collectedVat,
		PaidVat:                               paidVat,
		VatToReturn:                           collectedVat.Sub(paidVat),
		PensionInsurance:                      pension,
		IncomeMinusCostsMinusPensionInsurance: base,
		IncomeMinusCostsMinusPensionInsuranceRounded: baseRounded,
		IncomeTax:                     incomeTax,
		HealthInsurance:               health,
		HealthInsuranceToSubtract:     healthToSubtract,
		IncomeTaxMinusHealthInsurance: incomeTaxMinusHealth,
		FinalIncomeTax:                incomeTaxMinusHealth.Truncate(0),
	}
}

// roundHalfDown rounds to the nearest neighbour, ties toward zero
func roundHalfDown(d decimal.Decimal, places int32) decimal.Decimal {
	down := d.RoundDown(places)
	half := decimal.New(5, -(places + 1))
	if d.Sub(down).Abs().GreaterThan(half) {
		return d.RoundUp(places)
	}
	return down
}
