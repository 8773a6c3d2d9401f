package services

import (
	"context"
	"fmt"
	"strings"

	"invoicing-api/internal/dto"
	"invoicing-api/internal/mappers"
	"invoicing-api/internal/models"
	"invoicing-api/internal/repositories"
)

// companyService implements the CompanyService interface
type companyService struct {
	companies repositories.CompanyRepository
	mapper    mappers.CompanyMapper
	validator *Validator
}

// NewCompanyService creates a new company service instance
func NewCompanyService(repos repositories.RepositoryManager) CompanyService {
	return &companyService{
		companies: repos.Companies(),
		validator: NewValidator(),
	}
}

// ListCompanies returns all companies ordered by name
func (s *companyService) ListCompanies(ctx context.Context) ([]dto.CompanyDto, error) {
	companies, err := s.companies.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list companies: %w", err)
	}
	return s.mapper.ToDtos(companies), nil
}

// GetCompany retrieves a company by ID
func (s *companyService) GetCompany(ctx context.Context, id string) (*dto.CompanyDto, error) {
	company, err := s.get(ctx, id)
	if err != nil {
		return nil, err
	}
	out := s.mapper.ToDto(*company)
	return &out, nil
}

// GetCompanyByTaxID retrieves a company by its tax identification number
func (s *companyService) GetCompanyByTaxID(ctx context.Context, taxID string) (*dto.CompanyDto, error) {
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
	out := s.mapper.ToDto(*company)
	return &out, nil
}

// CreateCompany creates a new company
func (s *companyService) CreateCompany(ctx context.Context, req *dto.CompanyDto) (*dto.CompanyDto, error) {
	if req == nil {
		return nil, invalidField("company", "is required")
	}
	if err := s.validator.Struct(req); err != nil {
		return nil, err
	}

	company := models.NewCompany(req.TaxIdentificationNumber, req.Name, req.Address)
	company.PensionInsurance = req.PensionInsurance
	company.HealthInsurance = req.HealthInsurance
	company.Sanitize()
	if err := company.Validate(); err != nil {
		return nil, fromModelError(err)
	}

	if err := s.companies.Create(ctx, company); err != nil {
		return nil, fmt.Errorf("failed to create company: %w", err)
	}

	out := s.mapper.ToDto(*company)
	return &out, nil
}

// UpdateCompany replaces the editable fields of a company
func (s *companyService) UpdateCompany(ctx context.Context, id string, req *dto.CompanyDto) (*dto.CompanyDto, error) {
	if req == nil {
		return nil, invalidField("company", "is required")
	}
	if err := s.validator.Struct(req); err != nil {
		return nil, err
	}

	company, err := s.get(ctx, id)
	if err != nil {
		return nil, err
	}

	company.TaxIdentificationNumber = req.TaxIdentificationNumber
	company.Name = req.Name
	company.Address = req.Address
	company.PensionInsurance = req.PensionInsurance
	company.HealthInsurance = req.HealthInsurance
	company.Sanitize()
	company.UpdateTimestamp()
	if err := company.Validate(); err != nil {
		return nil, fromModelError(err)
	}

	if err := s.companies.Update(ctx, company); err != nil {
		return nil, fmt.Errorf("failed to update company: %w", err)
	}

	out := s.mapper.ToDto(*company)
	return &out, nil
}

// DeleteCompany deletes a company that no invoice references
func (s *companyService) DeleteCompany(ctx context.Context, id string) error {
	companyID, err := parseID("id", id)
	if err != nil {
		return err
	}
	if err := s.companies.Delete(ctx, companyID); err != nil {
		return fmt.Errorf("failed to delete company: %w", err)
	}
	return nil
}

func (s *companyService) get(ctx context.Context, id string) (*models.Company, error) {
	companyID, err := parseID("id", id)
	if err != nil {
		return nil, err
	}
	company, err := s.companies.GetByID(ctx, companyID)
	if err != nil {
		return nil, fmt.Errorf("failed to get company: %w", err)
	}
	return company, nil
}
