package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

const (
	EnvEngineEndpoints     = "XBRLGATE_ENGINE_ENDPOINTS"
	EnvEngineProbeTimeout  = "XBRLGATE_ENGINE_PROBE_TIMEOUT"
	EnvEngineSubmitTimeout = "XBRLGATE_ENGINE_SUBMIT_TIMEOUT"
	EnvEngineJobCacheSize  = "XBRLGATE_ENGINE_JOB_CACHE_SIZE"
)

// EngineConfig holds remote validation engine parameters: the candidate
// endpoints tried during discovery and the request ceilings.
type EngineConfig struct {
	Endpoints     []string `toml:"endpoints"`
	ProbeTimeout  string   `toml:"probe_timeout"`
	SubmitTimeout string   `toml:"submit_timeout"`
	JobCacheSize  int      `toml:"job_cache_size"`
}

// ProbeTimeoutDuration returns ProbeTimeout as a time.Duration.
func (c *EngineConfig) ProbeTimeoutDuration() time.Duration {
	d, _ := time.ParseDuration(c.ProbeTimeout)
	return d
}

// SubmitTimeoutDuration returns SubmitTimeout as a time.Duration.
func (c *EngineConfig) SubmitTimeoutDuration() time.Duration {
	d, _ := time.ParseDuration(c.SubmitTimeout)
	return d
}

// Finalize applies defaults, environment variable overrides, and validation.
func (c *EngineConfig) Finalize() error {
	c.loadDefaults()
	c.loadEnv()
	return c.validate()
}

// Merge overwrites non-zero fields from overlay.
func (c *EngineConfig) Merge(overlay *EngineConfig) {
	if overlay.Endpoints != nil {
		c.Endpoints = overlay.Endpoints
	}
	if overlay.ProbeTimeout != "" {
		c.ProbeTimeout = overlay.ProbeTimeout
	}
	if overlay.SubmitTimeout != "" {
		c.SubmitTimeout = overlay.SubmitTimeout
	}
	if overlay.JobCacheSize != 0 {
		c.JobCacheSize = overlay.JobCacheSize
	}
}

func (c *EngineConfig) loadDefaults() {
	if len(c.Endpoints) == 0 {
		c.Endpoints = []string{"http://localhost:5000"}
	}
	if c.ProbeTimeout == "" {
		c.ProbeTimeout = "5s"
	}
	if c.SubmitTimeout == "" {
		// engine validations legitimately run for minutes
		c.SubmitTimeout = "10m"
	}
	if c.JobCacheSize == 0 {
		c.JobCacheSize = 256
	}
}

func (c *EngineConfig) loadEnv() {
	if v := os.Getenv(EnvEngineEndpoints); v != "" {
		endpoints := strings.Split(v, ",")
		c.Endpoints = make([]string, 0, len(endpoints))
		for _, endpoint := range endpoints {
			if trimmed := strings.TrimSpace(endpoint); trimmed != "" {
				c.Endpoints = append(c.Endpoints, trimmed)
			}
		}
	}
	if v := os.Getenv(EnvEngineProbeTimeout); v != "" {
		c.ProbeTimeout = v
	}
	if v := os.Getenv(EnvEngineSubmitTimeout); v != "" {
		c.SubmitTimeout = v
	}
	if v := os.Getenv(EnvEngineJobCacheSize); v != "" {
		if size, err := strconv.Atoi(v); err == nil {
			c.JobCacheSize = size
		}
	}
}

func (c *EngineConfig) validate() error {
	if len(c.Endpoints) == 0 {
		return fmt.Errorf("at least one engine endpoint is required")
	}
	if _, err := time.ParseDuration(c.ProbeTimeout); err != nil {
		return fmt.Errorf("invalid probe_timeout: %w", err)
	}
	if _, err := time.ParseDuration(c.SubmitTimeout); err != nil {
		return fmt.Errorf("invalid submit_timeout: %w", err)
	}
	if c.JobCacheSize < 1 {
		return fmt.Errorf("invalid job_cache_size: %d", c.JobCacheSize)
	}
	return nil
}
