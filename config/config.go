package config

import (
	"log"
	"os"
	"strconv"
	"strings"
)

// Config holds application configuration loaded from environment variables.
// Provide sane defaults for local development.
type Config struct {
	AppName string
	Env     string // development, staging, production
	Port    string
	GinMode string

	// Auth
	AuthTokens string // comma-separated static bearer token allow-set

	// CORS
	CORSAllowedOrigins string // comma-separated

	// HTTP access log toggle
	HTTPLogEnabled bool

	// Per-IP rate limiting (off by default)
	RateLimitEnabled bool
	RateLimitRPS     float64
	RateLimitBurst   float64
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getbool(key string, def bool) bool {
	if v := os.Getenv(key); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			log.Printf("invalid boolean for %s: %v, using default %v", key, err, def)
			return def
		}
		return b
	}
	return def
}

func getfloat(key string, def float64) float64 {
	if v := os.Getenv(key); v != "" {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			log.Printf("invalid float for %s: %v, using default %v", key, err, def)
			return def
		}
		return f
	}
	return def
}

// Load loads configuration from environment variables
func Load() *Config {
	return &Config{
		AppName: getenv("APP_NAME", "taskflow-api"),
		Env:     getenv("APP_ENV", "development"),
		Port:    getenv("PORT", "3000"),
		GinMode: getenv("GIN_MODE", "release"),

		AuthTokens: getenv("AUTH_TOKENS", "test-token-123,admin-token-456"),

		CORSAllowedOrigins: getenv("CORS_ALLOWED_ORIGINS", ""),

		HTTPLogEnabled: getbool("HTTP_LOG_ENABLED", true),

		RateLimitEnabled: getbool("RATE_LIMIT_ENABLED", false),
		RateLimitRPS:     getfloat("RATE_LIMIT_RPS", 50),
		RateLimitBurst:   getfloat("RATE_LIMIT_BURST", 100),
	}
}

// IsProduction reports whether the app runs in production mode.
// Production suppresses internal diagnostics in 5xx responses.
func (c *Config) IsProduction() bool {
	return c.Env == "production"
}

func splitCSV(s string) []string {
	parts := strings.Split(s, ",")
	res := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			res = append(res, p)
		}
	}
	return res
}

// TokenList returns the bearer token allow-set as a slice
func (c *Config) TokenList() []string {
	return splitCSV(c.AuthTokens)
}

// CORSOrigins returns the allowed origins as slice
func (c *Config) CORSOrigins() []string {
	return splitCSV(c.CORSAllowedOrigins)
}
