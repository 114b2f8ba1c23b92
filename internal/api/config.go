// Package api serves the MCP endpoint and operational routes over HTTP
// using gin.
package api

import (
	"time"

	"github.com/mieltoinc/yclistdedalus/internal/config"
)

// Default timeout values for the HTTP server.
const (
	DefaultReadTimeout     = 30 * time.Second
	DefaultWriteTimeout    = 60 * time.Second
	DefaultIdleTimeout     = 120 * time.Second
	DefaultShutdownTimeout = 30 * time.Second
	DefaultMaxBodyBytes    = 1 << 20
)

// Config holds the HTTP server configuration.
type Config struct {
	Port  int
	Debug bool

	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	IdleTimeout     time.Duration
	ShutdownTimeout time.Duration

	// MaxBodyBytes bounds a POST /mcp payload.
	MaxBodyBytes int64

	CORS config.CORSConfig

	ServiceName    string
	ServiceVersion string
}

// NewConfig derives the HTTP server configuration from the service config.
func NewConfig(cfg *config.Config) Config {
	c := Config{
		Port:           cfg.Service.Port,
		Debug:          cfg.Service.Debug,
		CORS:           cfg.CORS,
		ServiceName:    cfg.Service.Name,
		ServiceVersion: cfg.Service.Version,
	}
	c.SetDefaults()
	return c
}

// SetDefaults fills unset timeouts and limits.
func (c *Config) SetDefaults() {
	if c.ReadTimeout == 0 {
		c.ReadTimeout = DefaultReadTimeout
	}
	if c.WriteTimeout == 0 {
		c.WriteTimeout = DefaultWriteTimeout
	}
	if c.IdleTimeout == 0 {
		c.IdleTimeout = DefaultIdleTimeout
	}
	if c.ShutdownTimeout == 0 {
		c.ShutdownTimeout = DefaultShutdownTimeout
	}
	if c.MaxBodyBytes == 0 {
		c.MaxBodyBytes = DefaultMaxBodyBytes
	}
	if c.ServiceVersion == "" {
		c.ServiceVersion = "1.0.0"
	}
}
