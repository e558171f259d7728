package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	cfg := Load()

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "resend", cfg.EmailProvider)
	assert.Equal(t, "SehatPlus <notifications@sehatplus.pk>", cfg.PrimarySender)
	assert.Equal(t, "SehatPlus <onboarding@resend.dev>", cfg.FallbackSender)
	assert.Equal(t, "admin@sehatplus.pk", cfg.AdminEmail)
	assert.Equal(t, 7, cfg.VoucherValidityDays)
	assert.Equal(t, 5*time.Minute, cfg.CacheTTL)
	assert.Equal(t, 15*time.Second, cfg.EmailTimeout)
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("EMAIL_PROVIDER", "sendgrid")
	t.Setenv("VOUCHER_VALIDITY_DAYS", "14")
	t.Setenv("PROVIDER_CACHE_TTL", "30s")

	cfg := Load()
	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, "sendgrid", cfg.EmailProvider)
	assert.Equal(t, 14, cfg.VoucherValidityDays)
	assert.Equal(t, 30*time.Second, cfg.CacheTTL)
}

func TestBadValuesFallBackToDefaults(t *testing.T) {
	t.Setenv("VOUCHER_VALIDITY_DAYS", "a week")
	t.Setenv("PROVIDER_CACHE_TTL", "soon")

	cfg := Load()
	assert.Equal(t, 7, cfg.VoucherValidityDays)
	assert.Equal(t, 5*time.Minute, cfg.CacheTTL)
}
