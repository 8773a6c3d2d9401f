package config

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTaxSystemConfigRates(t *testing.T) {
	tests := []struct {
		name    string
		config  TaxSystemConfig
		wantErr string
	}{
		{
			name:   "empty values fall back to defaults",
			config: TaxSystemConfig{},
		},
		{
			name:   "overrides only the given rate",
			config: TaxSystemConfig{IncomeRate: "0.12"},
		},
		{
			name:   "car share of one",
			config: TaxSystemConfig{PersonalCarVatDeductible: "1"},
		},
		{
			name:    "income rate is not a decimal",
			config:  TaxSystemConfig{IncomeRate: "abc"},
			wantErr: "invalid TAX_INCOME_RATE",
		},
		{
			name:    "car share is not a decimal",
			config:  TaxSystemConfig{PersonalCarVatDeductible: "half"},
			wantErr: "invalid TAX_PERSONAL_CAR_VAT_DEDUCTIBLE",
		},
		{
			name:    "deductible part above the health rate",
			config:  TaxSystemConfig{HealthRate: "5", HealthDeductibleRate: "7.75"},
			wantErr: "invalid tax configuration",
		},
		{
			name:    "negative income rate",
			config:  TaxSystemConfig{IncomeRate: "-0.1"},
			wantErr: "invalid tax configuration",
		},
		{
			name:    "zero health rate",
			config:  TaxSystemConfig{HealthRate: "0", HealthDeductibleRate: "0"},
			wantErr: "invalid tax configuration",
		},
	}

	defaults, err := TaxSystemConfig{}.Rates()
	require.NoError(t, err)

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rates, err := tt.config.Rates()
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
				return
			}
			require.NoError(t, err)

			expect := func(raw string, fallback decimal.Decimal) decimal.Decimal {
				if raw == "" {
					return fallback
				}
				return decimal.RequireFromString(raw)
			}
			assert.True(t, rates.IncomeTaxRate.Equal(expect(tt.config.IncomeRate, defaults.IncomeTaxRate)))
			assert.True(t, rates.HealthInsuranceRate.Equal(expect(tt.config.HealthRate, defaults.HealthInsuranceRate)))
			assert.True(t, rates.HealthInsuranceDeductibleRate.Equal(expect(tt.config.HealthDeductibleRate, defaults.HealthInsuranceDeductibleRate)))
			assert.True(t, rates.PersonalCarVatDeductible.Equal(expect(tt.config.PersonalCarVatDeductible, defaults.PersonalCarVatDeductible)))
		})
	}
}

func TestLoadTaxSystemConfig(t *testing.T) {
	v := viper.New()
	v.Set("TAX_INCOME_RATE", "0.17")
	v.Set("TAX_HEALTH_RATE", "4.9")

	cfg := loadTaxSystemConfig(v)
	assert.Equal(t, TaxSystemConfig{IncomeRate: "0.17", HealthRate: "4.9"}, cfg)

	_, err := cfg.Rates()
	assert.Error(t, err, "deductible default exceeds the configured health rate")
}
