package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"invoicing-api/internal/services"
)

// TaxCalculatorHandler serves yearly tax settlements
type TaxCalculatorHandler struct {
	taxCalculatorService services.TaxCalculatorService
	errors               *ErrorMapper
	logger               *logrus.Logger
}

// NewTaxCalculatorHandler creates a new tax calculator handler
func NewTaxCalculatorHandler(service services.TaxCalculatorService, errors *ErrorMapper, logger *logrus.Logger) *TaxCalculatorHandler {
	return &TaxCalculatorHandler{
		taxCalculatorService: service,
		errors:               errors,
		logger:               logger,
	}
}

// GetTaxCalculation godoc
// @Summary Calculate taxes
// @Description Calculates income, costs, VAT and income tax of the company with the given tax identification number
// @Tags tax-calculator-controller
// @Produce json
// @Param taxId path string true "Tax identification number"
// @Success 200 {object} dto.TaxCalculation
// @Failure 400 {object} middleware.ErrorResponse
// @Failure 404 {object} middleware.ErrorResponse
// @Failure 500 {object} middleware.ErrorResponse
// @Router /tax/{taxId} [get]
func (h *TaxCalculatorHandler) GetTaxCalculation(c *gin.Context) {
	taxID := c.Param("taxId")
	h.logger.WithField("tax_id", taxID).Debug("Getting tax calculation")

	result, err := h.taxCalculatorService.GetTaxCalculation(c.Request.Context(), taxID)
	if err != nil {
		h.errors.Respond(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}
