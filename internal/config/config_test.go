package config

import (
	"net/http"
	"testing"
)

func setRequired(t *testing.T) {
	t.Setenv("MONGO_URI", "mongodb://localhost:27017")
	t.Setenv("JWT_SECRET", "test-secret")
	t.Setenv("STRIPE_SECRET_KEY", "sk_test_123")
}

func TestLoad_Defaults(t *testing.T) {
	setRequired(t)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}

	if cfg.HTTPAddr != ":5000" {
		t.Fatalf("expected default addr :5000, got %q", cfg.HTTPAddr)
	}
	if cfg.MongoDatabase != "CareCamp_DB" {
		t.Fatalf("expected default database CareCamp_DB, got %q", cfg.MongoDatabase)
	}
	if cfg.CookieName != "token" {
		t.Fatalf("expected default cookie name token, got %q", cfg.CookieName)
	}
	if cfg.TokenTTL.Hours() != 720 {
		t.Fatalf("expected 720h token ttl, got %v", cfg.TokenTTL)
	}
	if len(cfg.CORSOrigins) != 1 || cfg.CORSOrigins[0] != "http://localhost:5173" {
		t.Fatalf("unexpected default origins: %v", cfg.CORSOrigins)
	}
	if cfg.PaymentCurrency != "usd" {
		t.Fatalf("expected default currency usd, got %q", cfg.PaymentCurrency)
	}
}

func TestLoad_MissingRequired(t *testing.T) {
	t.Setenv("MONGO_URI", "")
	t.Setenv("JWT_SECRET", "test-secret")
	t.Setenv("STRIPE_SECRET_KEY", "sk_test_123")
	if _, err := Load(); err == nil {
		t.Fatalf("expected error when MONGO_URI missing")
	}

	t.Setenv("MONGO_URI", "mongodb://localhost:27017")
	t.Setenv("JWT_SECRET", "")
	if _, err := Load(); err == nil {
		t.Fatalf("expected error when JWT_SECRET missing")
	}

	t.Setenv("JWT_SECRET", "test-secret")
	t.Setenv("STRIPE_SECRET_KEY", "")
	if _, err := Load(); err == nil {
		t.Fatalf("expected error when STRIPE_SECRET_KEY missing")
	}
}

func TestLoad_CookieDefaultsByEnv(t *testing.T) {
	setRequired(t)

	t.Setenv("APP_ENV", "development")
	cfg, err := Load()
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if cfg.CookieSecure {
		t.Fatalf("expected insecure cookie in development")
	}
	if cfg.CookieSameSite != http.SameSiteStrictMode {
		t.Fatalf("expected SameSite=Strict in development, got %v", cfg.CookieSameSite)
	}

	t.Setenv("APP_ENV", "production")
	cfg, err = Load()
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if !cfg.CookieSecure {
		t.Fatalf("expected secure cookie in production")
	}
	if cfg.CookieSameSite != http.SameSiteNoneMode {
		t.Fatalf("expected SameSite=None in production, got %v", cfg.CookieSameSite)
	}
}

func TestLoad_WildcardWithCredentials(t *testing.T) {
	setRequired(t)
	t.Setenv("CORS_ORIGINS", "*")
	t.Setenv("CORS_ALLOW_CREDENTIALS", "true")

	if _, err := Load(); err == nil {
		t.Fatalf("expected error for wildcard origin with credentials")
	}
}

func TestLoad_BadTokenTTL(t *testing.T) {
	setRequired(t)
	t.Setenv("TOKEN_TTL", "not-a-duration")

	if _, err := Load(); err == nil {
		t.Fatalf("expected error for malformed TOKEN_TTL")
	}
}
