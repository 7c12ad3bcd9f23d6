package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all application configuration loaded from environment
// variables. It is the single source of truth for runtime parameters.
type Config struct {
	Port      string
	Env       string
	JWTSecret string

	Backend  BackendConfig
	Redis    RedisConfig
	Session  SessionConfig
	Google   GoogleConfig
	Razorpay RazorpayConfig
	Checkout CheckoutConfig
	Worker   WorkerConfig
	CORS     CORSConfig
}

// BackendConfig points at the external commerce REST API.
type BackendConfig struct {
	BaseURL string
	Timeout time.Duration
}

// RedisConfig contains Redis connection parameters.
type RedisConfig struct {
	Host     string
	Port     string
	Password string
	DB       int
}

// SessionConfig controls gateway session lifetime.
type SessionConfig struct {
	TTL time.Duration
}

// GoogleConfig contains the OAuth client used to verify Google ID tokens.
// Google sign-in is disabled when ClientID is empty.
type GoogleConfig struct {
	ClientID string
}

// RazorpayConfig contains payment-gateway verification secrets. Local
// signature checks are skipped when KeySecret is empty.
type RazorpayConfig struct {
	KeyID         string
	KeySecret     string
	WebhookSecret string
}

// CheckoutConfig contains shipping-fee rules.
type CheckoutConfig struct {
	FreeShippingThreshold float64
	ShippingFee           float64
}

// WorkerConfig contains interval configuration for background workers.
type WorkerConfig struct {
	CatalogSyncInterval time.Duration
}

// CORSConfig lists the origins allowed to call the gateway.
type CORSConfig struct {
	AllowedOrigins []string
}

// Load reads configuration from environment variables. If a .env file
// exists in the working directory, it will be loaded first. It returns a
// populated Config or an error with a human-friendly message.
func Load() (*Config, error) {
	// Load .env if present; ignore error if file is missing so that
	// production environments relying solely on real environment variables
	// keep working.
	_ = godotenv.Load()

	cfg := &Config{}

	// Server
	cfg.Port = getEnv("PORT", "8080")
	cfg.Env = getEnv("ENV", "development")
	cfg.JWTSecret = getEnv("JWT_SECRET", "")

	// Commerce backend
	cfg.Backend = BackendConfig{
		BaseURL: getEnv("COMMERCE_BASE_URL", ""),
	}
	var err error
	if cfg.Backend.Timeout, err = parseDurationEnv("COMMERCE_TIMEOUT", "30s"); err != nil {
		return nil, fmt.Errorf("invalid COMMERCE_TIMEOUT: %w", err)
	}

	// Redis
	cfg.Redis = RedisConfig{
		Host:     getEnv("REDIS_HOST", "redis"),
		Port:     getEnv("REDIS_PORT", "6379"),
		Password: getEnv("REDIS_PASSWORD", ""),
		DB:       getEnvInt("REDIS_DB", 0),
	}

	// Sessions
	if cfg.Session.TTL, err = parseDurationEnv("SESSION_TTL", "720h"); err != nil {
		return nil, fmt.Errorf("invalid SESSION_TTL: %w", err)
	}

	// Google sign-in
	cfg.Google = GoogleConfig{
		ClientID: getEnv("GOOGLE_CLIENT_ID", ""),
	}

	// Razorpay
	cfg.Razorpay = RazorpayConfig{
		KeyID:         getEnv("RAZORPAY_KEY_ID", ""),
		KeySecret:     getEnv("RAZORPAY_KEY_SECRET", ""),
		WebhookSecret: getEnv("RAZORPAY_WEBHOOK_SECRET", ""),
	}

	// Checkout
	cfg.Checkout = CheckoutConfig{
		FreeShippingThreshold: getEnvFloat("FREE_SHIPPING_THRESHOLD", 999),
		ShippingFee:           getEnvFloat("SHIPPING_FEE", 98),
	}

	// Workers
	if cfg.Worker.CatalogSyncInterval, err = parseDurationEnv("CATALOG_SYNC_INTERVAL", "15m"); err != nil {
		return nil, fmt.Errorf("invalid CATALOG_SYNC_INTERVAL: %w", err)
	}

	// CORS
	cfg.CORS = CORSConfig{
		AllowedOrigins: splitEnv("CORS_ALLOWED_ORIGINS", "http://localhost:3000"),
	}

	if cfg.Backend.BaseURL == "" {
		return nil, errors.New("COMMERCE_BASE_URL must be set")
	}
	if cfg.JWTSecret == "" {
		return nil, errors.New("JWT_SECRET must be set for session tokens")
	}

	return cfg, nil
}

// getEnv returns the value of an environment variable or a default if empty.
func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

// getEnvInt returns the value of an environment variable as an integer or a
// default if empty/invalid.
func getEnvInt(key string, def int) int {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	i, err := strconv.Atoi(v)
	if err != nil {
		return def
	}
	return i
}

// getEnvFloat returns the value of an environment variable as a float or a
// default if empty/invalid.
func getEnvFloat(key string, def float64) float64 {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return def
	}
	return f
}

// splitEnv reads a comma-separated environment variable.
func splitEnv(key, def string) []string {
	raw := getEnv(key, def)
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}

// parseDurationEnv reads an environment variable and parses it as
// time.Duration. If the variable is empty, it falls back to the provided
// default value.
func parseDurationEnv(key, def string) (time.Duration, error) {
	raw := getEnv(key, def)
	d, err := time.ParseDuration(raw)
	if err != nil {
		return 0, err
	}
	if d < 0 {
		return 0, fmt.Errorf("duration must be >= 0")
	}
	return d, nil
}
