package config

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	TranslateAppend  = "append"
	TranslateReplace = "replace"
)

type Config struct {
	// Environment
	GoEnv string `env:"GO_ENV" default:"development"`

	// HTTP
	HTTPHost string `env:"HTTP_HOST" default:"127.0.0.1"`
	HTTPPort int    `env:"HTTP_PORT" default:"5000"`

	// Database
	DBDriver    string `env:"DB_DRIVER" default:"sqlite"`
	Database    string `env:"DATABASE" default:"instance/flaskr.sqlite"`
	DatabaseURL string `env:"DATABASE_URL"`
	SeedCSV     string `env:"SEED_CSV" default:"tcc_ceds_music.csv"`

	// Sessions
	SecretKey  string        `env:"SECRET_KEY" default:"dev"`
	SessionTTL time.Duration `env:"SESSION_TTL" default:"24h"`

	// Token denylist (in-process when empty)
	RedisURL string `env:"REDIS_URL"`

	// Translation backend
	TranslateAPIURL  string        `env:"TRANSLATE_API_URL" default:"https://api.mymemory.translated.net"`
	TranslateFrom    string        `env:"TRANSLATE_FROM" default:"de"`
	TranslateMode    string        `env:"TRANSLATE_MODE" default:"append"`
	TranslateTimeout time.Duration `env:"TRANSLATE_TIMEOUT" default:"15s"`
	TranslateRate    int           `env:"TRANSLATE_RATE" default:"5"`

	// Monitoring
	PrometheusEnabled bool `env:"PROMETHEUS_ENABLED" default:"false"`

	// Logging
	LogLevel  string `env:"LOG_LEVEL" default:"info"`
	LogFormat string `env:"LOG_FORMAT" default:"text"`
}

// LoadConfig loads configuration from environment variables, after merging
// the given .env file into the environment when it exists.
func LoadConfig(envFile string) (*Config, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil {
			if !os.IsNotExist(err) {
				return nil, fmt.Errorf("load %s: %w", envFile, err)
			}
			// a missing .env is fine, the process environment still applies
			slog.Debug("No .env file found", "path", envFile)
		}
	}

	config := &Config{}

	loadEnvString(&config.GoEnv, "GO_ENV", "development")

	loadEnvString(&config.HTTPHost, "HTTP_HOST", "127.0.0.1")
	if err := loadEnvInt(&config.HTTPPort, "HTTP_PORT", 5000); err != nil {
		return nil, err
	}

	loadEnvString(&config.DBDriver, "DB_DRIVER", "sqlite")
	loadEnvString(&config.Database, "DATABASE", "instance/flaskr.sqlite")
	loadEnvString(&config.DatabaseURL, "DATABASE_URL", "")
	loadEnvString(&config.SeedCSV, "SEED_CSV", "tcc_ceds_music.csv")

	loadEnvString(&config.SecretKey, "SECRET_KEY", "dev")
	if err := loadEnvDuration(&config.SessionTTL, "SESSION_TTL", 24*time.Hour); err != nil {
		return nil, err
	}

	loadEnvString(&config.RedisURL, "REDIS_URL", "")

	loadEnvString(&config.TranslateAPIURL, "TRANSLATE_API_URL", "https://api.mymemory.translated.net")
	loadEnvString(&config.TranslateFrom, "TRANSLATE_FROM", "de")
	loadEnvString(&config.TranslateMode, "TRANSLATE_MODE", TranslateAppend)
	if err := loadEnvDuration(&config.TranslateTimeout, "TRANSLATE_TIMEOUT", 15*time.Second); err != nil {
		return nil, err
	}
	if err := loadEnvInt(&config.TranslateRate, "TRANSLATE_RATE", 5); err != nil {
		return nil, err
	}

	if err := loadEnvBool(&config.PrometheusEnabled, "PROMETHEUS_ENABLED", false); err != nil {
		return nil, err
	}

	loadEnvString(&config.LogLevel, "LOG_LEVEL", "info")
	loadEnvString(&config.LogFormat, "LOG_FORMAT", "text")

	return config, nil
}

// Helper functions for type conversion and validation
func loadEnvString(target *string, key, defaultValue string) {
	if value := os.Getenv(key); value != "" {
		*target = value
	} else {
		*target = defaultValue
	}
}

func loadEnvInt(target *int, key string, defaultValue int) error {
	if value := os.Getenv(key); value != "" {
		parsed, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("invalid integer value for %s: %v", key, err)
		}
		*target = parsed
	} else {
		*target = defaultValue
	}
	return nil
}

func loadEnvBool(target *bool, key string, defaultValue bool) error {
	if value := os.Getenv(key); value != "" {
		parsed, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("invalid boolean value for %s: %v", key, err)
		}
		*target = parsed
	} else {
		*target = defaultValue
	}
	return nil
}

func loadEnvDuration(target *time.Duration, key string, defaultValue time.Duration) error {
	if value := os.Getenv(key); value != "" {
		parsed, err := time.ParseDuration(value)
		if err != nil {
			return fmt.Errorf("invalid duration value for %s: %v", key, err)
		}
		*target = parsed
	} else {
		*target = defaultValue
	}
	return nil
}

// Validate performs validation on the loaded configuration
func (c *Config) Validate() error {
	var errors []string

	if c.HTTPPort < 1 || c.HTTPPort > 65535 {
		errors = append(errors, "HTTP_PORT must be between 1 and 65535")
	}

	switch c.DBDriver {
	case "sqlite":
		if c.Database == "" {
			errors = append(errors, "DATABASE must be set when DB_DRIVER is sqlite")
		}
	case "postgres":
		if c.DatabaseURL == "" {
			errors = append(errors, "DATABASE_URL must be set when DB_DRIVER is postgres")
		}
	default:
		errors = append(errors, "DB_DRIVER must be one of: sqlite, postgres")
	}

	if c.TranslateMode != TranslateAppend && c.TranslateMode != TranslateReplace {
		errors = append(errors, "TRANSLATE_MODE must be one of: append, replace")
	}
	if c.TranslateRate < 1 {
		errors = append(errors, "TRANSLATE_RATE must be at least 1")
	}

	validLogLevels := []string{"debug", "info", "warn", "error"}
	if !contains(validLogLevels, c.LogLevel) {
		errors = append(errors, fmt.Sprintf("LOG_LEVEL must be one of: %s", strings.Join(validLogLevels, ", ")))
	}

	validLogFormats := []string{"text", "json"}
	if !contains(validLogFormats, c.LogFormat) {
		errors = append(errors, fmt.Sprintf("LOG_FORMAT must be one of: %s", strings.Join(validLogFormats, ", ")))
	}

	if c.IsProduction() && c.SecretKey == "dev" {
		errors = append(errors, "SECRET_KEY must be changed in production")
	}

	if len(errors) > 0 {
		return fmt.Errorf("configuration validation failed: %s", strings.Join(errors, "; "))
	}

	return nil
}

// IsDevelopment returns true if the application is running in development mode
func (c *Config) IsDevelopment() bool {
	return c.GoEnv == "development"
}

// IsProduction returns true if the application is running in production mode
func (c *Config) IsProduction() bool {
	return c.GoEnv == "production"
}

// ListenAddr returns the host:port the HTTP server binds to.
func (c *Config) ListenAddr() string {
	return fmt.Sprintf("%s:%d", c.HTTPHost, c.HTTPPort)
}

// Helper function to check if slice contains a string
func contains(slice []string, item string) bool {
	for _, s := range slice {
		if s == item {
			return true
		}
	}
	return false
}
