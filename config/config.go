// Package config provides configuration management for the move-labels service.
package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds the complete application configuration.
type Config struct {
	Server   ServerConfig
	Cache    CacheConfig
	Auth     AuthConfig
	Database DatabaseConfig
	Labels   LabelsConfig
	Log      LogConfig
}

// ServerConfig holds HTTP server configuration.
type ServerConfig struct {
	Port           string
	ReadTimeout    time.Duration
	WriteTimeout   time.Duration
	IdleTimeout    time.Duration
	RequestTimeout time.Duration
	// ShutdownTimeout bounds how long in-flight exports may finish on exit.
	ShutdownTimeout time.Duration
	RateLimit       int
	RateWindow      time.Duration
	ExportLimit     int
	CORSOrigins     []string
	SwaggerUser     string
	SwaggerPass     string
}

// CacheConfig holds the label size cache configuration.
type CacheConfig struct {
	Size int
	TTL  time.Duration
}

// AuthConfig holds session configuration.
type AuthConfig struct {
	Enabled       bool
	JWTSecretKey  string
	SessionTTL    time.Duration
	CookieName    string
	SecureCookie  bool
	AdminUsername string
	AdminPassword string
	// ExportAPIKeys admits export clients without a session. Empty disables keys.
	ExportAPIKeys map[string]bool
}

// DatabaseConfig holds MongoDB configuration.
type DatabaseConfig struct {
	URI          string
	DatabaseName string
	LogsTTL      time.Duration
	Enabled      bool
	// CircuitBreaker configuration
	CircuitBreakerFailureThreshold int
	CircuitBreakerSuccessThreshold int
	CircuitBreakerTimeout          time.Duration
}

// LabelsConfig holds label rendering defaults.
type LabelsConfig struct {
	BaseURL           string
	VercelURL         string
	DefaultDPI        int
	PreviewDPI        int
	DefaultTemplate   string
	RenderTimeout     time.Duration
	RoomAbbreviations string
}

// LogConfig holds logger settings.
type LogConfig struct {
	Level  string
	Pretty bool
}

// Load creates a Config from environment variables. A .env file in the
// working directory, when present, is read first without overriding
// variables already set.
func Load() Config {
	_ = godotenv.Load()

	return Config{
		Server: ServerConfig{
			Port:            getEnv("PORT", "8080"),
			ReadTimeout:     getEnvDuration("SERVER_READ_TIMEOUT", 15*time.Second),
			WriteTimeout:    getEnvDuration("SERVER_WRITE_TIMEOUT", 60*time.Second),
			IdleTimeout:     getEnvDuration("SERVER_IDLE_TIMEOUT", 60*time.Second),
			RequestTimeout:  getEnvDuration("REQUEST_TIMEOUT", 30*time.Second),
			ShutdownTimeout: getEnvDuration("SHUTDOWN_TIMEOUT", 10*time.Second),
			RateLimit:       getEnvInt("RATE_LIMIT", 100),
			RateWindow:      getEnvDuration("RATE_WINDOW", time.Minute),
			ExportLimit:     getEnvInt("EXPORT_RATE_LIMIT", 20),
			CORSOrigins:     parseCORSOrigins(os.Getenv("CORS_ORIGINS")),
			SwaggerUser:     getEnv("SWAGGER_USER", ""),
			SwaggerPass:     getEnv("SWAGGER_PASS", ""),
		},
		Cache: CacheConfig{
			Size: getEnvInt("CACHE_SIZE", 256),
			TTL:  getEnvDuration("CACHE_TTL", 5*time.Minute),
		},
		Auth: AuthConfig{
			Enabled:       getEnvBool("AUTH_ENABLED", true),
			JWTSecretKey:  getEnv("SESSION_SECRET", "change-me-session-secret"),
			SessionTTL:    getEnvDuration("SESSION_TTL", 7*24*time.Hour),
			CookieName:    getEnv("SESSION_COOKIE", "move_session"),
			SecureCookie:  getEnvBool("SESSION_SECURE_COOKIE", false),
			AdminUsername: getEnv("ADMIN_USERNAME", "admin"),
			AdminPassword: getEnv("ADMIN_PASSWORD", "move1234"),
			ExportAPIKeys: parseAPIKeys(os.Getenv("EXPORT_API_KEYS")),
		},
		Database: DatabaseConfig{
			URI:                            getEnv("MONGODB_URI", "mongodb://localhost:27017"),
			DatabaseName:                   getEnv("MONGODB_DATABASE", "move_labels"),
			LogsTTL:                        getEnvDuration("MONGODB_LOGS_TTL", 30*24*time.Hour),
			Enabled:                        getEnvBool("MONGODB_ENABLED", true),
			CircuitBreakerFailureThreshold: getEnvInt("CIRCUIT_BREAKER_FAILURE_THRESHOLD", 5),
			CircuitBreakerSuccessThreshold: getEnvInt("CIRCUIT_BREAKER_SUCCESS_THRESHOLD", 2),
			CircuitBreakerTimeout:          getEnvDuration("CIRCUIT_BREAKER_TIMEOUT", 30*time.Second),
		},
		Labels: LabelsConfig{
			BaseURL:           strings.TrimRight(os.Getenv("APP_BASE_URL"), "/"),
			VercelURL:         os.Getenv("VERCEL_URL"),
			DefaultDPI:        getEnvInt("LABEL_DPI", 300),
			PreviewDPI:        getEnvInt("LABEL_PREVIEW_DPI", 96),
			DefaultTemplate:   getEnv("LABEL_TEMPLATE", "standard_inventory"),
			RenderTimeout:     getEnvDuration("LABEL_RENDER_TIMEOUT", 20*time.Second),
			RoomAbbreviations: os.Getenv("ROOM_ABBREVIATIONS"),
		},
		Log: LogConfig{
			Level:  getEnv("LOG_LEVEL", "info"),
			Pretty: getEnvBool("LOG_PRETTY", false),
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

func parseAPIKeys(s string) map[string]bool {
	keys := make(map[string]bool)
	for _, p := range strings.Split(s, ",") {
		if key := strings.TrimSpace(p); key != "" {
			keys[key] = true
		}
	}
	return keys
}

func parseCORSOrigins(s string) []string {
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
