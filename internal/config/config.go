package config

import (
	"os"
	"strconv"
	"time"
)

// Config holds application configuration
type Config struct {
	Port          string
	Env           string
	LogLevel      string
	LogFormat     string
	DatabaseURL   string
	RedisAddr     string
	RedisPassword string
	CacheTTL      time.Duration

	// Email delivery
	EmailProvider      string // "resend", "sendgrid" or "stub"
	ResendAPIKey       string
	ResendBaseURL      string
	SendGridAPIKey     string
	PrimarySender      string
	FallbackSender     string
	AdminEmail         string
	PlatformName       string
	SupportPhone       string
	EmailTimeout       time.Duration
	CORSAllowedOrigins string

	// Lab voucher
	VoucherValidityDays int
}

// Load reads configuration from environment variables
func Load() *Config {
	return &Config{
		Port:          getEnv("PORT", "8080"),
		Env:           getEnv("ENV", "development"),
		LogLevel:      getEnv("LOG_LEVEL", "info"),
		LogFormat:     getEnv("LOG_FORMAT", "json"),
		DatabaseURL:   getEnv("DATABASE_URL", ""),
		RedisAddr:     getEnv("REDIS_ADDR", ""),
		RedisPassword: getEnv("REDIS_PASSWORD", ""),
		CacheTTL:      getEnvAsDuration("PROVIDER_CACHE_TTL", 5*time.Minute),

		EmailProvider:      getEnv("EMAIL_PROVIDER", "resend"),
		ResendAPIKey:       getEnv("RESEND_API_KEY", ""),
		ResendBaseURL:      getEnv("RESEND_BASE_URL", ""),
		SendGridAPIKey:     getEnv("SENDGRID_API_KEY", ""),
		PrimarySender:      getEnv("PRIMARY_SENDER", "SehatPlus <notifications@sehatplus.pk>"),
		FallbackSender:     getEnv("FALLBACK_SENDER", "SehatPlus <onboarding@resend.dev>"),
		AdminEmail:         getEnv("ADMIN_EMAIL", "admin@sehatplus.pk"),
		PlatformName:       getEnv("PLATFORM_NAME", "SehatPlus"),
		SupportPhone:       getEnv("SUPPORT_PHONE", "+92 300 0000000"),
		EmailTimeout:       getEnvAsDuration("EMAIL_TIMEOUT", 15*time.Second),
		CORSAllowedOrigins: getEnv("CORS_ALLOWED_ORIGINS", "*"),

		VoucherValidityDays: getEnvAsInt("VOUCHER_VALIDITY_DAYS", 7),
	}
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvAsInt retrieves an environment variable as an integer or returns a default value
func getEnvAsInt(key string, defaultValue int) int {
	valueStr := getEnv(key, "")
	if value, err := strconv.Atoi(valueStr); err == nil {
		return value
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	valueStr := getEnv(key, "")
	if valueStr == "" {
		return defaultValue
	}
	if value, err := time.ParseDuration(valueStr); err == nil {
		return value
	}
	return defaultValue
}
