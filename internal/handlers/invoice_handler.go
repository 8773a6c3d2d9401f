package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"invoicing-api/internal/dto"
	"invoicing-api/internal/repositories"
	"invoicing-api/internal/services"
)

// InvoiceHandler handles invoice-related HTTP requests
type InvoiceHandler struct {
	invoiceService services.InvoiceService
	errors         *ErrorMapper
}

// NewInvoiceHandler creates a new invoice handler
func NewInvoiceHandler(invoiceService services.InvoiceService, errors *ErrorMapper) *InvoiceHandler {
	return &InvoiceHandler{invoiceService: invoiceService, errors: errors}
}

// ListInvoices godoc
// @Summary List invoices
// @Description Lists invoices ordered by date and number, optionally narrowed to a company
// @Tags invoice-controller
// @Produce json
// @Security BearerAuth
// @Param taxId query string false "Invoices where the company is seller or buyer"
// @Param sellerTaxId query string false "Invoices issued by the company"
// @Param buyerTaxId query string false "Invoices received by the company"
// @Success 200 {array} dto.InvoiceDto
// @Failure 401 {object} middleware.ErrorResponse
// @Failure 500 {object} middleware.ErrorResponse
// @Router /invoices [get]
func (h *InvoiceHandler) ListInvoices(c *gin.Context) {
	filter := repositories.InvoiceFilter{
		CompanyTaxID: c.Query("taxId"),
		SellerTaxID:  c.Query("sellerTaxId"),
		BuyerTaxID:   c.Query("buyerTaxId"),
	}

	invoices, err := h.invoiceService.ListInvoices(c.Request.Context(), filter)
	if err != nil {
		h.errors.Respond(c, err)
		return
	}
	c.JSON(http.StatusOK, invoices)
}

// GetInvoice godoc
// @Summary Get an invoice
// @Tags invoice-controller
// @Produce json
// @Security BearerAuth
// @Param id path string true "Invoice ID" format(uuid)
// @Success 200 {object} dto.InvoiceDto
// @Failure 400 {object} middleware.ErrorResponse
// @Failure 404 {object} middleware.ErrorResponse
// @Router /invoices/{id} [get]
func (h *InvoiceHandler) GetInvoice(c *gin.Context) {
	invoice, err := h.invoiceService.GetInvoice(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.errors.Respond(c, err)
		return
	}
	c.JSON(http.StatusOK, invoice)
}

// CreateInvoice godoc
// @Summary Add an invoice
// @Description Stores the invoice; seller and buyer are matched by tax identification number and created when unknown
// @Tags invoice-controller
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param invoice body dto.InvoiceDto true "Invoice"
// @Success 201 {object} dto.InvoiceDto
// @Failure 400 {object} middleware.ErrorResponse
// @Failure 409 {object} middleware.ErrorResponse
// @Router /invoices [post]
func (h *InvoiceHandler) CreateInvoice(c *gin.Context) {
	var req dto.InvoiceDto
	if err := c.ShouldBindJSON(&req); err != nil {
		h.errors.bindError(c, err)
		return
	}

	invoice, err := h.invoiceService.CreateInvoice(c.Request.Context(), &req)
	if err != nil {
		h.errors.Respond(c, err)
		return
	}
	c.JSON(http.StatusCreated, invoice)
}

// UpdateInvoice godoc
// @Summary Replace an invoice
// @Tags invoice-controller
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Invoice ID" format(uuid)
// @Param invoice body dto.InvoiceDto true "Invoice"
// @Success 200 {object} dto.InvoiceDto
// @Failure 400 {object} middleware.ErrorResponse
// @Failure 404 {object} middleware.ErrorResponse
// @Failure 409 {object} middleware.ErrorResponse
// @Router /invoices/{id} [put]
func (h *InvoiceHandler) UpdateInvoice(c *gin.Context) {
	var req dto.InvoiceDto
	if err := c.ShouldBindJSON(&req); err != nil {
		h.errors.bindError(c, err)
		return
	}

	invoice, err := h.invoiceService.UpdateInvoice(c.Request.Context(), c.Param("id"), &req)
	if err != nil {
		h.errors.Respond(c, err)
		return
	}
	c.JSON(http.StatusOK, invoice)
}

// DeleteInvoice godoc
// @Summary Delete an invoice
// @Tags invoice-controller
// @Security BearerAuth
// @Param id path string true "Invoice ID" format(uuid)
// @Success 204
// @Failure 404 {object} middleware.ErrorResponse
// @Router /invoices/{id} [delete]
func (h *InvoiceHandler) DeleteInvoice(c *gin.Context) {
	if err := h.invoiceService.DeleteInvoice(c.Request.Context(), c.Param("id")); err != nil {
		h.errors.Respond(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// GetInvoicePDF godoc
// @Summary Download an invoice as PDF
// @Tags invoice-controller
// @Produce application/pdf
// @Security BearerAuth
// @Param id path string true "Invoice ID" format(uuid)
// @Success 200 {file} file
// @Failure 404 {object} middleware.ErrorResponse
// @Router /invoices/{id}/pdf [get]
func (h *InvoiceHandler) GetInvoicePDF(c *gin.Context) {
	id := c.Param("id")
	data, err := h.invoiceService.RenderInvoicePDF(c.Request.Context(), id)
	if err != nil {
		h.errors.Respond(c, err)
		return
	}

	c.Header("Content-Disposition", `attachment; filename="invoice-`+id+`.pdf"`)
	c.Data(http.StatusOK, "application/pdf", data)
}
