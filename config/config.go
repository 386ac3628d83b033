// Package config provides configuration management for the storefront cart.
package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// Config holds the complete application configuration.
type Config struct {
	Server   ServerConfig
	Log      LogConfig
	Cart     CartConfig
	Catalog  CatalogConfig
	Session  SessionConfig
	Database DatabaseConfig
}

// ServerConfig holds HTTP server configuration.
type ServerConfig struct {
	Port            string
	RateLimit       int
	RateWindow      time.Duration
	CORSOrigins     []string
	SwaggerUser     string
	SwaggerPass     string
	ShutdownTimeout time.Duration
}

// LogConfig holds logger configuration.
type LogConfig struct {
	Level  string
	Pretty bool
}

// CartConfig holds cart store, persistence and pricing configuration.
type CartConfig struct {
	// StorageDir is where the cart slot file lives. Empty keeps the cart in memory only.
	StorageDir string
	// StorageKey names the slot the cart is stored under.
	StorageKey string
	// AsyncPersistence moves slot writes off the mutation path.
	AsyncPersistence bool
	// SizedCategories are the category ids priced by size.
	SizedCategories []int
	// SpecialCategory is the category id of premium flavors.
	SpecialCategory int
}

// CatalogConfig holds product catalog configuration.
type CatalogConfig struct {
	CacheSize int
	CacheTTL  time.Duration
	SeedFile  string
	Timeout   time.Duration
}

// SessionConfig holds shopper session token configuration.
type SessionConfig struct {
	Enabled bool
	Secret  string
	Issuer  string
	TTL     time.Duration
}

// DatabaseConfig holds MongoDB configuration.
type DatabaseConfig struct {
	URI          string
	DatabaseName string
	Enabled      bool
	// CircuitBreaker configuration
	CircuitBreakerFailureThreshold int
	CircuitBreakerSuccessThreshold int
	CircuitBreakerTimeout          time.Duration
}

// Load creates a Config from environment variables.
func Load() Config {
	return Config{
		Server: ServerConfig{
			Port:            getEnv("PORT", "8080"),
			RateLimit:       getEnvInt("RATE_LIMIT", 100),
			RateWindow:      getEnvDuration("RATE_WINDOW", time.Minute),
			CORSOrigins:     parseCORSOrigins(os.Getenv("CORS_ORIGINS")),
			SwaggerUser:     getEnv("SWAGGER_USER", ""),
			SwaggerPass:     getEnv("SWAGGER_PASS", ""),
			ShutdownTimeout: getEnvDuration("SHUTDOWN_TIMEOUT", 10*time.Second),
		},
		Log: LogConfig{
			Level:  getEnv("LOG_LEVEL", "info"),
			Pretty: getEnvBool("LOG_PRETTY", false),
		},
		Cart: CartConfig{
			StorageDir:       getEnv("CART_STORAGE_DIR", ""),
			StorageKey:       getEnv("CART_STORAGE_KEY", "storefront:cart"),
			AsyncPersistence: getEnvBool("CART_ASYNC_PERSISTENCE", false),
			SizedCategories:  parseIntSlice(os.Getenv("CART_SIZED_CATEGORIES")),
			SpecialCategory:  getEnvInt("CART_SPECIAL_CATEGORY", 0),
		},
		Catalog: CatalogConfig{
			CacheSize: getEnvInt("CATALOG_CACHE_SIZE", 1000),
			CacheTTL:  getEnvDuration("CATALOG_CACHE_TTL", 5*time.Minute),
			SeedFile:  getEnv("CATALOG_SEED_FILE", ""),
			Timeout:   getEnvDuration("CATALOG_TIMEOUT", 3*time.Second),
		},
		Session: SessionConfig{
			Enabled: getEnvBool("SESSION_ENABLED", false),
			Secret:  getEnv("SESSION_SECRET", ""),
			Issuer:  getEnv("SESSION_ISSUER", "storefront"),
			TTL:     getEnvDuration("SESSION_TTL", time.Hour),
		},
		Database: DatabaseConfig{
			URI:                            getEnv("MONGODB_URI", "mongodb://localhost:27017"),
			DatabaseName:                   getEnv("MONGODB_DATABASE", "storefront"),
			Enabled:                        getEnvBool("MONGODB_ENABLED", false),
			CircuitBreakerFailureThreshold: getEnvInt("CIRCUIT_BREAKER_FAILURE_THRESHOLD", 5),
			CircuitBreakerSuccessThreshold: getEnvInt("CIRCUIT_BREAKER_SUCCESS_THRESHOLD", 2),
			CircuitBreakerTimeout:          getEnvDuration("CIRCUIT_BREAKER_TIMEOUT", 30*time.Second),
		},
	}
}

func getEnv(key, defaultValue string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return defaultValue
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return defaultValue
}

func parseIntSlice(s string) []int {
	if s == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	result := make([]int, 0, len(parts))
	for _, p := range parts {
		if v, err := strconv.Atoi(strings.TrimSpace(p)); err == nil && v > 0 {
			result = append(result, v)
		}
	}
	return result
}

func parseCORSOrigins(s string) []string {
	// Default origins for local development
	defaults := []string{
		"http://localhost:3000",
		"http://127.0.0.1:3000",
	}
	if s == "" {
		return defaults
	}
	parts := strings.Split(s, ",")
	result := make([]string, 0, len(parts)+len(defaults))
	result = append(result, defaults...)
	for _, p := range parts {
		if origin := strings.TrimSpace(p); origin != "" {
			result = append(result, origin)
		}
	}
	return result
}
