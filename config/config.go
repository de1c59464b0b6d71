package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/rs/zerolog/log"
	"gopkg.in/yaml.v3"
)

type Config struct {
	Server    ServerConfig    `yaml:"server"`
	Logging   LoggingConfig   `yaml:"logging"`
	Coingecko CoingeckoConfig `yaml:"coingecko"`
	Dashboard DashboardConfig `yaml:"dashboard"`
	Sessions  SessionsConfig  `yaml:"sessions"`
}

// ServerConfig configures the HTTP listener
type ServerConfig struct {
	Port string `yaml:"port"`
}

// LoggingConfig configures the zerolog output
type LoggingConfig struct {
	Level      string `yaml:"level"`
	TimeFormat string `yaml:"time_format"`
	Pretty     bool   `yaml:"pretty"`
}

// DefaultConfig returns a configuration that works without a config file
func DefaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Port: "8080",
		},
		Logging: LoggingConfig{
			Level:      "info",
			TimeFormat: "2006-01-02T15:04:05Z07:00",
		},
		Coingecko: GetDefaultCoingeckoConfig(),
		Dashboard: GetDefaultDashboardConfig(),
		Sessions:  GetDefaultSessionsConfig(),
	}
}

// LoadConfig reads the YAML file at path over the defaults.
// A missing file is not an error: the defaults are used as is.
func LoadConfig(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	switch {
	case errors.Is(err, os.ErrNotExist):
		log.Warn().Str("path", path).Msg("Config file not found, using defaults")
	case err != nil:
		return nil, fmt.Errorf("read config %s: %w", path, err)
	default:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config %s: %w", path, err)
		}
	}

	cfg.Coingecko.ResolveAPIKey()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks cross-field constraints
func (c *Config) Validate() error {
	if c.Server.Port == "" {
		return errors.New("server.port must not be empty")
	}
	if err := c.Coingecko.Validate(); err != nil {
		return fmt.Errorf("coingecko: %w", err)
	}
	if err := c.Dashboard.Validate(); err != nil {
		return fmt.Errorf("dashboard: %w", err)
	}
	if err := c.Sessions.Validate(); err != nil {
		return fmt.Errorf("sessions: %w", err)
	}
	return nil
}
