package config

import (
	"os"
)

type ResendConfig struct {
	APIKey string
	// FromAddress must belong to a domain verified with Resend.
	FromAddress string
	ToAddress   string
}

type StripeConfig struct {
	SecretKey string
}

type Config struct {
	Port           string
	SiteURL        string
	AllowedOrigins string
	Resend         ResendConfig
	Stripe         StripeConfig
}

func LoadConfig() *Config {
	cfg := &Config{}

	cfg.Port = getEnv("PORT", "8080")
	cfg.SiteURL = getEnv("SITE_URL", "https://wow5050.org")
	cfg.AllowedOrigins = getEnv("ALLOWED_ORIGINS", "https://wow5050.org, https://www.wow5050.org, http://localhost:5173")

	cfg.Resend.APIKey = os.Getenv("RESEND_API_KEY")
	cfg.Resend.FromAddress = getEnv("CONTACT_FROM_ADDRESS", "Website Contact <contact@wow5050.org>")
	cfg.Resend.ToAddress = getEnv("CONTACT_TO_ADDRESS", "toussaint.systemdevelopment@gmail.com")

	cfg.Stripe.SecretKey = os.Getenv("STRIPE_SECRET_KEY")

	return cfg
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
