// Package config loads the yclists server configuration from a YAML file,
// .env files and environment variables.
package config

import (
	"fmt"
	"strings"
	"time"
)

// DefaultConfigPath is used when neither --config nor CONFIG_PATH is given.
const DefaultConfigPath = "config.yml"

// Environment names.
const (
	EnvDevelopment = "development"
	EnvProduction  = "production"
)

// Config holds all configuration for the server.
type Config struct {
	Service ServiceConfig `yaml:"service"`
	Dataset DatasetConfig `yaml:"dataset"`
	Query   QueryConfig   `yaml:"query"`
	Logging LoggingConfig `yaml:"logging"`
	CORS    CORSConfig    `yaml:"cors"`
}

// ServiceConfig holds service-level configuration.
type ServiceConfig struct {
	Name        string `yaml:"name"`
	Version     string `yaml:"version"`
	Port        int    `yaml:"port" env:"PORT"`
	Debug       bool   `yaml:"debug" env:"YC_DEBUG"`
	Environment string `yaml:"environment" env:"APP_ENV,NODE_ENV"`
}

// DatasetConfig describes where company records are loaded from.
// URL takes precedence over Path when both are set.
type DatasetConfig struct {
	Path       string        `yaml:"path" env:"YC_DATA_PATH"`
	URL        string        `yaml:"url" env:"YC_DATA_URL"`
	Timeout    time.Duration `yaml:"timeout" env:"YC_DATA_TIMEOUT"`
	MaxRetries int           `yaml:"max_retries" env:"YC_DATA_MAX_RETRIES"`
}

// QueryConfig bounds result pages.
type QueryConfig struct {
	DefaultPageSize int `yaml:"default_page_size" env:"YC_DEFAULT_PAGE_SIZE"`
	MaxPageSize     int `yaml:"max_page_size" env:"YC_MAX_PAGE_SIZE"`
}

// LoggingConfig holds logging configuration.
type LoggingConfig struct {
	Level  string `yaml:"level" env:"LOG_LEVEL"`
	Format string `yaml:"format" env:"LOG_FORMAT"`
}

// CORSConfig holds CORS configuration for the HTTP transport.
type CORSConfig struct {
	Enabled          bool     `yaml:"enabled" env:"CORS_ENABLED"`
	AllowedOrigins   []string `yaml:"allowed_origins" env:"CORS_ORIGINS"`
	AllowedMethods   []string `yaml:"allowed_methods"`
	AllowedHeaders   []string `yaml:"allowed_headers"`
	AllowCredentials bool     `yaml:"allow_credentials"`
	MaxAge           int      `yaml:"max_age"`
}

// Load reads the config at path (missing file allowed), applies env
// overrides and defaults, and validates the result.
func Load(path string) (*Config, error) {
	cfg, err := loadFile(path, setDefaults)
	if err != nil {
		return nil, err
	}

	if validateErr := cfg.Validate(); validateErr != nil {
		return nil, fmt.Errorf("invalid configuration: %w", validateErr)
	}

	return cfg, nil
}

// Default returns a configuration built only from defaults.
func Default() *Config {
	cfg := &Config{}
	setDefaults(cfg)
	return cfg
}

// IsProduction reports whether the service runs in production.
func (c *Config) IsProduction() bool {
	return strings.EqualFold(c.Service.Environment, EnvProduction)
}

func setDefaults(cfg *Config) {
	if cfg.Service.Name == "" {
		cfg.Service.Name = "yc-lists"
	}
	if cfg.Service.Version == "" {
		cfg.Service.Version = "1.0.0"
	}
	if cfg.Service.Port == 0 {
		cfg.Service.Port = 5000
	}
	if cfg.Service.Environment == "" {
		cfg.Service.Environment = EnvDevelopment
	}

	if cfg.Dataset.Path == "" && cfg.Dataset.URL == "" {
		cfg.Dataset.Path = "data/yc.json"
	}
	if cfg.Dataset.Timeout == 0 {
		cfg.Dataset.Timeout = 30 * time.Second
	}
	if cfg.Dataset.MaxRetries == 0 {
		cfg.Dataset.MaxRetries = 3
	}

	if cfg.Query.DefaultPageSize == 0 {
		cfg.Query.DefaultPageSize = 50
	}
	if cfg.Query.MaxPageSize == 0 {
		cfg.Query.MaxPageSize = 500
	}

	if cfg.Logging.Level == "" {
		cfg.Logging.Level = "info"
		if cfg.Service.Debug {
			cfg.Logging.Level = "debug"
		}
	}
	if cfg.Logging.Format == "" {
		cfg.Logging.Format = "json"
	}

	if len(cfg.CORS.AllowedOrigins) == 0 {
		cfg.CORS.AllowedOrigins = []string{"*"}
	}
	if len(cfg.CORS.AllowedMethods) == 0 {
		cfg.CORS.AllowedMethods = []string{"GET", "POST", "OPTIONS"}
	}
	if len(cfg.CORS.AllowedHeaders) == 0 {
		cfg.CORS.AllowedHeaders = []string{"Content-Type", "Authorization", "Mcp-Session-Id"}
	}
	if cfg.CORS.MaxAge == 0 {
		cfg.CORS.MaxAge = 86400
	}
}

// Validate validates the configuration.
func (c *Config) Validate() error {
	if err := validatePort("service.port", c.Service.Port); err != nil {
		return err
	}
	if c.Dataset.Path == "" && c.Dataset.URL == "" {
		return &ValidationError{Field: "dataset", Message: "path or url is required"}
	}
	if c.Dataset.URL != "" && !strings.HasPrefix(c.Dataset.URL, "http://") && !strings.HasPrefix(c.Dataset.URL, "https://") {
		return &ValidationError{Field: "dataset.url", Message: "must be an http or https URL"}
	}
	if c.Dataset.Timeout < 0 {
		return &ValidationError{Field: "dataset.timeout", Message: "must not be negative"}
	}
	if c.Dataset.MaxRetries < 0 {
		return &ValidationError{Field: "dataset.max_retries", Message: "must not be negative"}
	}
	if c.Query.MaxPageSize < 1 {
		return &ValidationError{Field: "query.max_page_size", Message: "must be greater than 0"}
	}
	if c.Query.DefaultPageSize < 1 || c.Query.DefaultPageSize > c.Query.MaxPageSize {
		return &ValidationError{
			Field:   "query.default_page_size",
			Message: fmt.Sprintf("must be between 1 and %d", c.Query.MaxPageSize),
		}
	}
	if err := validateLogLevel(c.Logging.Level); err != nil {
		return err
	}
	return validateLogFormat(c.Logging.Format)
}
