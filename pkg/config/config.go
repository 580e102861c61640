// Package config holds runtime configuration for the WFO parser tools.
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"github.com/quantfold/wfo-parser/pkg/dates"
)

// ServerConfig configures the web shell around the parsing core.
type ServerConfig struct {
	ListenAddr       string
	LogDir           string
	DownloadTTL      time.Duration
	MaxUploadBytes   int64
	DefaultDateOrder dates.Order
}

// NewDefaultServerConfig returns the built-in defaults.
func NewDefaultServerConfig() *ServerConfig {
	return &ServerConfig{
		ListenAddr:       ":8000",
		LogDir:           "logs",
		DownloadTTL:      15 * time.Minute,
		MaxUploadBytes:   8 << 20,
		DefaultDateOrder: dates.OrderAuto,
	}
}

// LoadServerConfig loads configuration from an optional .env file and the
// process environment. Environment values override defaults; a missing env
// file is not an error.
func LoadServerConfig(envFile string) (*ServerConfig, error) {
	if envFile != "" {
		if _, err := os.Stat(envFile); err == nil {
			if err := godotenv.Load(envFile); err != nil {
				return nil, fmt.Errorf("failed to load env file %s: %w", envFile, err)
			}
		}
	}

	cfg := NewDefaultServerConfig()
	if v := os.Getenv("WFO_LISTEN_ADDR"); v != "" {
		cfg.ListenAddr = v
	}
	if v := os.Getenv("WFO_LOG_DIR"); v != "" {
		cfg.LogDir = v
	}
	if v := os.Getenv("WFO_DOWNLOAD_TTL"); v != "" {
		ttl, err := time.ParseDuration(v)
		if err != nil {
			return nil, fmt.Errorf("invalid WFO_DOWNLOAD_TTL %q: %w", v, err)
		}
		cfg.DownloadTTL = ttl
	}
	if v := os.Getenv("WFO_MAX_UPLOAD_BYTES"); v != "" {
		n, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid WFO_MAX_UPLOAD_BYTES %q: %w", v, err)
		}
		cfg.MaxUploadBytes = n
	}
	if v := os.Getenv("WFO_DATE_ORDER"); v != "" {
		cfg.DefaultDateOrder = dates.ParseOrder(v)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}
	return cfg, nil
}

// Validate checks the configuration for usable values.
func (c *ServerConfig) Validate() error {
	if c.ListenAddr == "" {
		return fmt.Errorf("listen address must not be empty")
	}
	if c.DownloadTTL <= 0 {
		return fmt.Errorf("download TTL must be positive, got %v", c.DownloadTTL)
	}
	if c.MaxUploadBytes <= 0 {
		return fmt.Errorf("max upload size must be positive, got %d", c.MaxUploadBytes)
	}
	return nil
}
