package mappers

import (
	"invoicing-api/internal/dto"
	"invoicing-api/internal/models"
)

// CompanyMapper converts companies between their persisted and wire forms
type CompanyMapper struct{}

// ToDto maps a company to its wire form
func (CompanyMapper) ToDto(company models.Company) dto.CompanyDto {
	return dto.CompanyDto{
		ID:                      company.ID,
		TaxIdentificationNumber: company.TaxIdentificationNumber,
		Name:                    company.Name,
		Address:                 company.Address,
		PensionInsurance:        company.PensionInsurance,
		HealthInsurance:         company.HealthInsurance,
	}
}

// ToEntity maps a wire company to a model. Timestamps are left zero.
func (CompanyMapper) ToEntity(d dto.CompanyDto) models.Company {
	return models.Company{
		ID:                      d.ID,
		TaxIdentificationNumber: d.TaxIdentificationNumber,
		Name:                    d.Name,
		Address:                 d.Address,
		PensionInsurance:        d.PensionInsurance,
		HealthInsurance:         d.HealthInsurance,
	}
}

// ToDtos maps a slice of companies
func (m CompanyMapper) ToDtos(companies []models.Company) []dto.CompanyDto {
	out := make([]dto.CompanyDto, 0, len(companies))
	for _, c := range companies {
		out = append(out, m.ToDto(c))
	}
	return out
}
