package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("PORT", "")
	cfg := Load()

	assert.Equal(t, "", cfg.Port)
	assert.Equal(t, "0.65", cfg.CompanyDriverMileRate)
	assert.False(t, cfg.SettlementRequireInvoicePaid)
	assert.Equal(t, 25, cfg.DBMaxOpenConns)
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("SETTLEMENT_REQUIRE_INVOICE_PAID", "true")
	t.Setenv("COMPANY_DRIVER_MILE_RATE", "0.70")
	t.Setenv("DB_MAX_OPEN_CONNS", "not-a-number")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://ops.example.com, ,https://admin.example.com")

	cfg := Load()

	assert.True(t, cfg.SettlementRequireInvoicePaid)
	assert.Equal(t, "0.70", cfg.CompanyDriverMileRate)
	assert.Equal(t, 25, cfg.DBMaxOpenConns)
	assert.Equal(t, []string{"https://ops.example.com", "https://admin.example.com"}, cfg.CORSAllowedOrigins)
}
