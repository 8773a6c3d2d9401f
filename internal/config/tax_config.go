package config

import (
	"fmt"

	"invoicing-api/internal/models"

	"github.com/shopspring/decimal"
	"github.com/spf13/viper"
)

// TaxSystemConfig holds the configurable tax rates in their textual form
type TaxSystemConfig struct {
	IncomeRate               string
	HealthRate               string
	HealthDeductibleRate     string
	PersonalCarVatDeductible string
}

func loadTaxSystemConfig(v *viper.Viper) TaxSystemConfig {
	return TaxSystemConfig{
		IncomeRate:               v.GetString("TAX_INCOME_RATE"),
		HealthRate:               v.GetString("TAX_HEALTH_RATE"),
		HealthDeductibleRate:     v.GetString("TAX_HEALTH_DEDUCTIBLE_RATE"),
		PersonalCarVatDeductible: v.GetString("TAX_PERSONAL_CAR_VAT_DEDUCTIBLE"),
	}
}

// Rates parses the configured values, falling back to the defaults for empty ones
func (c TaxSystemConfig) Rates() (models.TaxRates, error) {
	rates := models.DefaultTaxRates()

	fields := []struct {
		name  string
		value string
		dst   *decimal.Decimal
	}{
		{"TAX_INCOME_RATE", c.IncomeRate, &rates.IncomeTaxRate},
		{"TAX_HEALTH_RATE", c.HealthRate, &rates.HealthInsuranceRate},
		{"TAX_HEALTH_DEDUCTIBLE_RATE", c.HealthDeductibleRate, &rates.HealthInsuranceDeductibleRate},
		{"TAX_PERSONAL_CAR_VAT_DEDUCTIBLE", c.PersonalCarVatDeductible, &rates.PersonalCarVatDeductible},
	}
	for _, f := range fields {
		if f.value == "" {
			continue
		}
		d, err := decimal.NewFromString(f.value)
		if err != nil {
			return models.TaxRates{}, fmt.Errorf("invalid %s: %w", f.name, err)
		}
		*f.dst = d
	}

	if err := rates.Validate(); err != nil {
		return models.TaxRates{}, fmt.Errorf("invalid tax configuration: %w", err)
	}
	return rates, nil
}
