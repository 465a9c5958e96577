package config

import (
	"fmt"
	"os"

	"xbrlgate/pkg/formatting"
	"xbrlgate/pkg/middleware"
)

const (
	EnvAPIBasePath      = "XBRLGATE_API_BASE_PATH"
	EnvAPIMaxUploadSize = "XBRLGATE_API_MAX_UPLOAD_SIZE"
)

var corsEnv = &middleware.CORSEnv{
	Enabled:        "XBRLGATE_CORS_ENABLED",
	Origins:        "XBRLGATE_CORS_ORIGINS",
	AllowedMethods: "XBRLGATE_CORS_ALLOWED_METHODS",
	AllowedHeaders: "XBRLGATE_CORS_ALLOWED_HEADERS",
	MaxAge:         "XBRLGATE_CORS_MAX_AGE",
}

// APIConfig holds API routing, upload, and CORS settings.
type APIConfig struct {
	BasePath      string                `toml:"base_path"`
	MaxUploadSize string                `toml:"max_upload_size"`
	CORS          middleware.CORSConfig `toml:"cors"`
}

// MaxUploadSizeBytes returns the configured upload limit as a byte count.
func (c *APIConfig) MaxUploadSizeBytes() int64 {
	size, err := formatting.ParseBytes(c.MaxUploadSize)
	if err != nil {
		return 100 * 1024 * 1024 // 100MB fallback
	}
	return size
}

// Finalize applies defaults, environment variable overrides, and the
// nested CORS finalization.
func (c *APIConfig) Finalize() error {
	c.loadDefaults()
	c.loadEnv()

	if err := c.CORS.Finalize(corsEnv); err != nil {
		return fmt.Errorf("cors: %w", err)
	}
	return c.validate()
}

// Merge overwrites non-zero fields from overlay across nested configs.
func (c *APIConfig) Merge(overlay *APIConfig) {
	if overlay.BasePath != "" {
		c.BasePath = overlay.BasePath
	}
	if overlay.MaxUploadSize != "" {
		c.MaxUploadSize = overlay.MaxUploadSize
	}
	c.CORS.Merge(&overlay.CORS)
}

func (c *APIConfig) loadDefaults() {
	if c.BasePath == "" {
		c.BasePath = "/api"
	}
	if c.MaxUploadSize == "" {
		// taxonomy packages run large; EBA full packages exceed 50MB
		c.MaxUploadSize = "100MB"
	}
}

func (c *APIConfig) loadEnv() {
	if v := os.Getenv(EnvAPIBasePath); v != "" {
		c.BasePath = v
	}
	if v := os.Getenv(EnvAPIMaxUploadSize); v != "" {
		c.MaxUploadSize = v
	}
}

func (c *APIConfig) validate() error {
	if _, err := formatting.ParseBytes(c.MaxUploadSize); err != nil {
		return fmt.Errorf("invalid max_upload_size: %w", err)
	}
	return nil
}
