package config

import (
	"errors"
	"fmt"
	"os"
	"time"
)

const (
	APIKeyTypeDemo = "demo"
	APIKeyTypePro  = "pro"
)

// CoingeckoConfig configures access to the upstream CoinGecko API
type CoingeckoConfig struct {
	// APIKeyEnv names the environment variable holding the API key
	APIKeyEnv string `yaml:"api_key_env"`

	// APIKeyType is either "demo" or "pro" and selects header and base URL
	APIKeyType string `yaml:"api_key_type"`

	// APIKey is resolved from APIKeyEnv at load time, never read from the file
	APIKey string `yaml:"-"`

	OverridePublicURL string `yaml:"override_public_url"`
	OverrideProURL    string `yaml:"override_pro_url"`

	ConnectionTimeout time.Duration `yaml:"connection_timeout"`
	RequestTimeout    time.Duration `yaml:"request_timeout"`

	// MaxRetries is the total number of attempts per request. 1 disables retries.
	MaxRetries   int           `yaml:"max_retries"`
	RetryBackoff time.Duration `yaml:"retry_backoff"`

	// RateLimit paces outgoing requests. Zero RPM disables pacing.
	RateLimit RateLimit `yaml:"rate_limit"`
}

// RateLimit represents a simple rpm + burst pair
type RateLimit struct {
	RateLimitPerMinute int `yaml:"rate_limit_per_minute"`
	Burst              int `yaml:"burst"`
}

// GetDefaultCoingeckoConfig returns default upstream settings
func GetDefaultCoingeckoConfig() CoingeckoConfig {
	return CoingeckoConfig{
		APIKeyEnv:         "CG_API_KEY",
		APIKeyType:        APIKeyTypeDemo,
		ConnectionTimeout: 10 * time.Second,
		RequestTimeout:    30 * time.Second,
		MaxRetries:        1,
		RetryBackoff:      time.Second,
	}
}

// ResolveAPIKey reads the key from the configured environment variable.
// An absent key is left empty; the upstream rejects such requests.
func (c *CoingeckoConfig) ResolveAPIKey() {
	if c.APIKeyEnv == "" {
		return
	}
	c.APIKey = os.Getenv(c.APIKeyEnv)
}

func (c *CoingeckoConfig) Validate() error {
	if c.APIKeyType != APIKeyTypeDemo && c.APIKeyType != APIKeyTypePro {
		return fmt.Errorf("api_key_type must be %q or %q, got %q", APIKeyTypeDemo, APIKeyTypePro, c.APIKeyType)
	}
	if c.MaxRetries < 1 {
		return errors.New("max_retries must be at least 1")
	}
	if c.RequestTimeout <= 0 {
		return errors.New("request_timeout must be positive")
	}
	if c.RateLimit.RateLimitPerMinute < 0 || c.RateLimit.Burst < 0 {
		return errors.New("rate_limit values must not be negative")
	}
	return nil
}
