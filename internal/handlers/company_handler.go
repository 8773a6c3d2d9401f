package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"invoicing-api/internal/dto"
	"invoicing-api/internal/services"
)

// CompanyHandler handles company-related HTTP requests
type CompanyHandler struct {
	companyService services.CompanyService
	errors         *ErrorMapper
}

// NewCompanyHandler creates a new company handler
func NewCompanyHandler(companyService services.CompanyService, errors *ErrorMapper) *CompanyHandler {
	return &CompanyHandler{companyService: companyService, errors: errors}
}

// ListCompanies godoc
// @Summary List companies
// @Tags company-controller
// @Produce json
// @Security BearerAuth
// @Success 200 {array} dto.CompanyDto
// @Failure 401 {object} middleware.ErrorResponse
// @Router /companies [get]
func (h *CompanyHandler) ListCompanies(c *gin.Context) {
	companies, err := h.companyService.ListCompanies(c.Request.Context())
	if err != nil {
		h.errors.Respond(c, err)
		return
	}
	c.JSON(http.StatusOK, companies)
}

// GetCompany godoc
// @Summary Get a company
// @Tags company-controller
// @Produce json
// @Security BearerAuth
// @Param id path string true "Company ID" format(uuid)
// @Success 200 {object} dto.CompanyDto
// @Failure 404 {object} middleware.ErrorResponse
// @Router /companies/{id} [get]
func (h *CompanyHandler) GetCompany(c *gin.Context) {
	company, err := h.companyService.GetCompany(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.errors.Respond(c, err)
		return
	}
	c.JSON(http.StatusOK, company)
}

// GetCompanyByTaxID godoc
// @Summary Find a company by tax identification number
// @Tags company-controller
// @Produce json
// @Security BearerAuth
// @Param taxId path string true "Tax identification number"
// @Success 200 {object} dto.CompanyDto
// @Failure 404 {object} middleware.ErrorResponse
// @Router /companies/tax/{taxId} [get]
func (h *CompanyHandler) GetCompanyByTaxID(c *gin.Context) {
	company, err := h.companyService.GetCompanyByTaxID(c.Request.Context(), c.Param("taxId"))
	if err != nil {
		h.errors.Respond(c, err)
		return
	}
	c.JSON(http.StatusOK, company)
}

// CreateCompany godoc
// @Summary Add a company
// @Tags company-controller
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param company body dto.CompanyDto true "Company"
// @Success 201 {object} dto.CompanyDto
// @Failure 400 {object} middleware.ErrorResponse
// @Failure 409 {object} middleware.ErrorResponse
// @Router /companies [post]
func (h *CompanyHandler) CreateCompany(c *gin.Context) {
	var req dto.CompanyDto
	if err := c.ShouldBindJSON(&req); err != nil {
		h.errors.bindError(c, err)
		return
	}

	company, err := h.companyService.CreateCompany(c.Request.Context(), &req)
	if err != nil {
		h.errors.Respond(c, err)
		return
	}
	c.JSON(http.StatusCreated, company)
}

// UpdateCompany godoc
// @Summary Update a company
// @Tags company-controller
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Company ID" format(uuid)
// @Param company body dto.CompanyDto true "Company"
// @Success 200 {object} dto.CompanyDto
// @Failure 400 {object} middleware.ErrorResponse
// @Failure 404 {object} middleware.ErrorResponse
// @Failure 409 {object} middleware.ErrorResponse
// @Router /companies/{id} [put]
func (h *CompanyHandler) UpdateCompany(c *gin.Context) {
	var req dto.CompanyDto
	if err := c.ShouldBindJSON(&req); err != nil {
		h.errors.bindError(c, err)
		return
	}

	company, err := h.companyService.UpdateCompany(c.Request.Context(), c.Param("id"), &req)
	if err != nil {
		h.errors.Respond(c, err)
		return
	}
	c.JSON(http.StatusOK, company)
}

// DeleteCompany godoc
// @Summary Delete a company
// @Description Companies referenced by invoices cannot be deleted
// @Tags company-controller
// @Security BearerAuth
// @Param id path string true "Company ID" format(uuid)
// @Success 204
// @Failure 404 {object} middleware.ErrorResponse
// @Failure 409 {object} middleware.ErrorResponse
// @Router /companies/{id} [delete]
func (h *CompanyHandler) DeleteCompany(c *gin.Context) {
	if err := h.companyService.DeleteCompany(c.Request.Context(), c.Param("id")); err != nil {
		h.errors.Respond(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
