package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setRequired(t *testing.T) {
	t.Helper()
	t.Setenv("DB_DSN", "postgres://estimator@localhost/estimator")
	t.Setenv("JWT_ACCESS_SECRET", "secret")
}

func TestLoadDefaults(t *testing.T) {
	t.Chdir(t.TempDir())
	setRequired(t)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "development", cfg.Environment)
	assert.Equal(t, "0.0.0.0", cfg.HTTP.Host)
	assert.Equal(t, 7090, cfg.HTTP.Port)
	assert.Equal(t, []string{"*"}, cfg.HTTP.CORSAllowedOrigins)
	assert.Equal(t, 30*time.Minute, cfg.DB.ConnMaxLifetime)
	assert.Equal(t, 7*24*time.Hour, cfg.Redis.DraftTTL)
	assert.Equal(t, 500.0, cfg.Pricing.MinimumCharge)
	assert.Equal(t, 8.25, cfg.Pricing.POTaxPercent)
	assert.False(t, cfg.Email.Enabled)
	assert.Equal(t, "gemini-2.0-flash", cfg.Gemini.Model)
}

func TestLoadOverrides(t *testing.T) {
	t.Chdir(t.TempDir())
	setRequired(t)
	t.Setenv("APP_ENV", "production")
	t.Setenv("HTTP_PORT", "8080")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://a.test, https://b.test")
	t.Setenv("DRAFT_TTL", "48h")
	t.Setenv("PRICING_MINIMUM_CHARGE", "750")
	t.Setenv("EMAIL_ENABLED", "true")
	t.Setenv("EMAIL_FROM", "quotes@sparkle.test")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "production", cfg.Environment)
	assert.Equal(t, 8080, cfg.HTTP.Port)
	assert.Equal(t, []string{"https://a.test", "https://b.test"}, cfg.HTTP.CORSAllowedOrigins)
	assert.Equal(t, 48*time.Hour, cfg.Redis.DraftTTL)
	assert.Equal(t, 750.0, cfg.Pricing.MinimumCharge)
	assert.True(t, cfg.Email.Enabled)
}

func TestLoadValidation(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
		want string
	}{
		{"missing dsn", map[string]string{"DB_DSN": ""}, "DB_DSN is required"},
		{"missing secret", map[string]string{"JWT_ACCESS_SECRET": ""}, "JWT_ACCESS_SECRET is required"},
		{"email without sender", map[string]string{"EMAIL_ENABLED": "true"}, "EMAIL_FROM is required"},
		{"crm without location", map[string]string{"GHL_API_KEY": "k"}, "GHL_LOCATION_ID is required"},
		{"tax out of range", map[string]string{"PO_TAX_PERCENT": "120"}, "PO_TAX_PERCENT"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Chdir(t.TempDir())
			setRequired(t)
			for k, v := range tt.env {
				t.Setenv(k, v)
			}

			_, err := Load()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestParseList(t *testing.T) {
	assert.Nil(t, parseList("  "))
	assert.Equal(t, []string{"a", "b"}, parseList("a, ,b,"))
}
