package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the application
type Config struct {
	Server     ServerConfig
	Upstream   UpstreamConfig
	Search     SearchConfig
	PostgreSQL PostgreSQLConfig
	Logging    LoggingConfig
}

// ServerConfig holds server configuration
type ServerConfig struct {
	Port           int
	Host           string
	GinMode        string
	AllowedOrigins string
	AllowedMethods string
	AllowedHeaders string
}

// UpstreamConfig holds the remote listings API configuration
type UpstreamConfig struct {
	BaseURL         string
	APIKey          string
	APIHost         string
	Timeout         time.Duration
	AutoCompleteTTL time.Duration
}

// SearchConfig holds search and filter configuration
type SearchConfig struct {
	Path               string // path the search page commits to
	DefaultHitsPerPage int
	MaxHitsPerPage     int
	Debounce           time.Duration // location autocomplete debounce
	FeaturedLocation   string        // location the home page strips are scoped to
}

// PostgreSQLConfig holds the optional search-log database
// configuration; the server runs fully without it
type PostgreSQLConfig struct {
	DSN                string
	Host               string
	Port               int
	User               string
	Password           string
	Database           string
	SSLMode            string
	MaxConnections     int
	MaxIdleConnections int
	Enabled            bool
}

// LoggingConfig holds logging configuration
type LoggingConfig struct {
	Level string
}

// Load reads configuration from environment variables
func Load() (*Config, error) {
	// Try to load .env file (optional)
	_ = godotenv.Load()

	cfg := &Config{
		Server: ServerConfig{
			Port:           getEnvAsInt("SERVER_PORT", 8080),
			Host:           getEnv("SERVER_HOST", "0.0.0.0"),
			GinMode:        getEnv("GIN_MODE", "release"),
			AllowedOrigins: getEnv("CORS_ALLOWED_ORIGINS", "*"),
			AllowedMethods: getEnv("CORS_ALLOWED_METHODS", "GET,POST,OPTIONS"),
			AllowedHeaders: getEnv("CORS_ALLOWED_HEADERS", "Content-Type,Authorization"),
		},
		Upstream: UpstreamConfig{
			BaseURL:         getEnv("LISTINGS_API_BASE", "https://bayut.p.rapidapi.com"),
			APIKey:          getEnv("LISTINGS_API_KEY", ""),
			APIHost:         getEnv("LISTINGS_API_HOST", "bayut.p.rapidapi.com"),
			Timeout:         getEnvAsDuration("LISTINGS_API_TIMEOUT", 10*time.Second),
			AutoCompleteTTL: getEnvAsDuration("AUTOCOMPLETE_CACHE_TTL", 5*time.Minute),
		},
		Search: SearchConfig{
			Path:               getEnv("SEARCH_PATH", "/search"),
			DefaultHitsPerPage: getEnvAsInt("SEARCH_DEFAULT_HITS", 24),
			MaxHitsPerPage:     getEnvAsInt("SEARCH_MAX_HITS", 50),
			Debounce:           getEnvAsDuration("AUTOCOMPLETE_DEBOUNCE", 500*time.Millisecond),
			FeaturedLocation:   getEnv("FEATURED_LOCATION", "5002"),
		},
		PostgreSQL: PostgreSQLConfig{
			DSN:                getEnv("DATABASE_URL", getEnv("PG_DSN", "")),
			Host:               getEnv("PG_HOST", "localhost"),
			Port:               getEnvAsInt("PG_PORT", 5432),
			User:               getEnv("PG_USER", "postgres"),
			Password:           getEnv("PG_PASSWORD", ""),
			Database:           getEnv("PG_DATABASE", "estatehub"),
			SSLMode:            getEnv("PG_SSLMODE", "disable"),
			MaxConnections:     getEnvAsInt("PG_MAX_CONNECTIONS", 25),
			MaxIdleConnections: getEnvAsInt("PG_MAX_IDLE_CONNECTIONS", 5),
		},
		Logging: LoggingConfig{
			Level: getEnv("LOG_LEVEL", "info"),
		},
	}

	cfg.PostgreSQL.Enabled = cfg.PostgreSQL.DSN != "" || getEnv("PG_PASSWORD", "") != ""

	return cfg, nil
}

// GetPostgreSQLDSN returns PostgreSQL connection string
func (c *Config) GetPostgreSQLDSN() string {
	if c.PostgreSQL.DSN != "" {
		return c.PostgreSQL.DSN
	}

	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.PostgreSQL.Host,
		c.PostgreSQL.Port,
		c.PostgreSQL.User,
		c.PostgreSQL.Password,
		c.PostgreSQL.Database,
		c.PostgreSQL.SSLMode,
	)
}

// Helper functions

func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func getEnvAsInt(key string, defaultValue int) int {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		log.Printf("Warning: Invalid integer value for %s, using default %d", key, defaultValue)
		return defaultValue
	}
	return value
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := time.ParseDuration(valueStr)
	if err != nil {
		log.Printf("Warning: Invalid duration value for %s, using default %s", key, defaultValue)
		return defaultValue
	}
	return value
}
