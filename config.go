package main

import (
	"os"
	"strings"
)

// Config holds all configuration for the storefront service. A missing
// Stripe secret disables session creation only; the catalog stays up.
type Config struct {
	Port                 string
	Env                  string
	StripeSecretKey      string
	StripePublishableKey string
	StripeWebhookKey     string
	AppBaseURL           string
	RedisURL             string
}

// LoadConfig reads configuration from environment variables.
func LoadConfig() *Config {
	return &Config{
		Port:                 getEnv("PORT", "5000"),
		Env:                  getEnv("APP_ENV", "development"),
		StripeSecretKey:      os.Getenv("STRIPE_SECRET_KEY"),
		StripePublishableKey: os.Getenv("STRIPE_PUBLISHABLE_KEY"),
		StripeWebhookKey:     os.Getenv("STRIPE_WEBHOOK_SECRET"),
		AppBaseURL:           strings.TrimRight(getEnv("APP_BASE_URL", "http://localhost:5000"), "/"),
		RedisURL:             os.Getenv("REDIS_URL"),
	}
}

func getEnv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}
