package services

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"invoicing-api/internal/repositories"
)

func TestCompanyService_CRUD(t *testing.T) {
	env := setupServices(t)
	ctx := context.Background()
	svc := env.services.CompanyService

	req := companyDto(" 123 ", "  Acme  ")
	created, err := svc.CreateCompany(ctx, &req)
	require.NoError(t, err)
	assert.Equal(t, "123", created.TaxIdentificationNumber)
	assert.Equal(t, "Acme", created.Name)

	byTax, err := svc.GetCompanyByTaxID(ctx, "123")
	require.NoError(t, err)
	assert.Equal(t, created.ID, byTax.ID)

	update := companyDto("123", "Acme Updated")
	update.HealthInsurance = decimal.RequireFromString("319.94")
	updated, err := svc.UpdateCompany(ctx, created.ID.String(), &update)
	require.NoError(t, err)
	assert.Equal(t, "Acme Updated", updated.Name)

	byID, err := svc.GetCompany(ctx, created.ID.String())
	require.NoError(t, err)
	assertDecimal(t, "319.94", byID.HealthInsurance, "healthInsurance")

	list, err := svc.ListCompanies(ctx)
	require.NoError(t, err)
	assert.Len(t, list, 1)

	require.NoError(t, svc.DeleteCompany(ctx, created.ID.String()))
	_, err = svc.GetCompany(ctx, created.ID.String())
	assert.ErrorIs(t, err, repositories.ErrNotFound)
}

func TestCompanyService_Errors(t *testing.T) {
	env := setupServices(t)
	ctx := context.Background()
	svc := env.services.CompanyService

	req := companyDto("123", "Acme")
	_, err := svc.CreateCompany(ctx, &req)
	require.NoError(t, err)

	_, err = svc.CreateCompany(ctx, &req)
	assert.ErrorIs(t, err, repositories.ErrDuplicateEntry)

	_, err = svc.GetCompanyByTaxID(ctx, "999")
	assert.ErrorIs(t, err, ErrCompanyNotFound)

	missingName := companyDto("456", "")
	_, err = svc.CreateCompany(ctx, &missingName)
	assert.ErrorIs(t, err, ErrInvalidInput)

	negative := companyDto("456", "Neg")
	negative.PensionInsurance = decimal.NewFromInt(-1)
	_, err = svc.CreateCompany(ctx, &negative)
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = svc.UpdateCompany(ctx, uuid.NewString(), &req)
	assert.ErrorIs(t, err, repositories.ErrNotFound)

	_, err = svc.GetCompany(ctx, "bad")
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestCompanyService_DeleteReferenced(t *testing.T) {
	env := setupServices(t)
	ctx := context.Background()

	_, err := env.services.InvoiceService.CreateInvoice(ctx, sampleInvoiceDto("R/1"))
	require.NoError(t, err)

	seller, err := env.services.CompanyService.GetCompanyByTaxID(ctx, "123-456-78-90")
	require.NoError(t, err)

	err = env.services.CompanyService.DeleteCompany(ctx, seller.ID.String())
	assert.ErrorIs(t, err, repositories.ErrConstraint)
}
