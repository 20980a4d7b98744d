package config

import (
	"fmt"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Env             string
	HTTPAddr        string
	MongoURI        string
	MongoDatabase   string
	JWTSecret       string
	TokenTTL        time.Duration
	CORSOrigins     []string
	CORSAllowCreds  bool
	CookieName      string
	CookieDomain    string
	CookiePath      string
	CookieSecure    bool
	CookieSameSite  http.SameSite
	StripeSecretKey string
	PaymentCurrency string
}

func Load() (*Config, error) {
	_ = godotenv.Load()

	env := getEnv("APP_ENV", "development")
	production := strings.EqualFold(env, "production")

	cookieSecure := strings.EqualFold(getEnv("TOKEN_COOKIE_SECURE", ""), "true")
	if getEnv("TOKEN_COOKIE_SECURE", "") == "" {
		cookieSecure = production
	}

	// The cross-site front end needs SameSite=None (with Secure) in
	// production; local development keeps Strict.
	sameSiteDefault := "strict"
	if production {
		sameSiteDefault = "none"
	}

	cfg := &Config{
		Env:             env,
		HTTPAddr:        getEnv("HTTP_ADDR", ":5000"),
		MongoURI:        getEnv("MONGO_URI", ""),
		MongoDatabase:   getEnv("MONGO_DATABASE", "CareCamp_DB"),
		JWTSecret:       getEnv("JWT_SECRET", ""),
		TokenTTL:        mustDuration(getEnv("TOKEN_TTL", "720h")),
		CORSOrigins:     splitCSV(getEnv("CORS_ORIGINS", "http://localhost:5173")),
		CORSAllowCreds:  strings.EqualFold(getEnv("CORS_ALLOW_CREDENTIALS", "true"), "true"),
		CookieName:      getEnv("TOKEN_COOKIE_NAME", "token"),
		CookieDomain:    getEnv("TOKEN_COOKIE_DOMAIN", ""),
		CookiePath:      getEnv("TOKEN_COOKIE_PATH", "/"),
		CookieSecure:    cookieSecure,
		CookieSameSite:  parseSameSite(getEnv("TOKEN_COOKIE_SAMESITE", sameSiteDefault)),
		StripeSecretKey: getEnv("STRIPE_SECRET_KEY", ""),
		PaymentCurrency: strings.ToLower(getEnv("PAYMENT_CURRENCY", "usd")),
	}

	if cfg.MongoURI == "" {
		return nil, fmt.Errorf("MONGO_URI is required")
	}
	if cfg.JWTSecret == "" {
		return nil, fmt.Errorf("JWT_SECRET is required")
	}
	if cfg.StripeSecretKey == "" {
		return nil, fmt.Errorf("STRIPE_SECRET_KEY is required")
	}
	if cfg.TokenTTL <= 0 {
		return nil, fmt.Errorf("TOKEN_TTL must be a positive duration")
	}
	if containsWildcard(cfg.CORSOrigins) && cfg.CORSAllowCreds {
		return nil, fmt.Errorf("CORS_ALLOW_CREDENTIALS cannot be true with a wildcard origin")
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if val, ok := os.LookupEnv(key); ok {
		return val
	}
	return fallback
}

func mustDuration(value string) time.Duration {
	d, err := time.ParseDuration(value)
	if err != nil {
		return 0
	}
	return d
}

func splitCSV(value string) []string {
	parts := strings.Split(value, ",")
	results := make([]string, 0, len(parts))
	for _, part := range parts {
		trimmed := strings.TrimSpace(part)
		if trimmed != "" {
			results = append(results, trimmed)
		}
	}
	return results
}

func containsWildcard(values []string) bool {
	for _, value := range values {
		if value == "*" {
			return true
		}
	}
	return false
}

func parseSameSite(value string) http.SameSite {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "none":
		return http.SameSiteNoneMode
	case "lax":
		return http.SameSiteLaxMode
	default:
		return http.SameSiteStrictMode
	}
}
