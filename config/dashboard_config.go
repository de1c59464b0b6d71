package config

import (
	"errors"
	"fmt"
	"time"
)

// DashboardConfig configures a single dashboard view
type DashboardConfig struct {
	// TrendingRefreshInterval is the trending-coins poll period
	TrendingRefreshInterval time.Duration `yaml:"trending_refresh_interval"`

	// DefaultTimeFrame is the initial chart lookback in days (7, 14 or 30)
	DefaultTimeFrame int `yaml:"default_time_frame"`

	// DefaultChartType is the initial chart type (line, area or bar)
	DefaultChartType string `yaml:"default_chart_type"`

	// TopMoversLimit caps the gainers and losers lists
	TopMoversLimit int `yaml:"top_movers_limit"`

	// DetailTimeout bounds one chart + coin info load
	DetailTimeout time.Duration `yaml:"detail_timeout"`
}

// SessionsConfig configures the lifetime of dashboard sessions
type SessionsConfig struct {
	// IdleTimeout tears a session down after this long without access
	IdleTimeout time.Duration `yaml:"idle_timeout"`

	// CleanupInterval is how often expired sessions are swept.
	// Should be less than IdleTimeout.
	CleanupInterval time.Duration `yaml:"cleanup_interval"`
}

// GetDefaultDashboardConfig returns the dashboard defaults
func GetDefaultDashboardConfig() DashboardConfig {
	return DashboardConfig{
		TrendingRefreshInterval: 60 * time.Second,
		DefaultTimeFrame:        7,
		DefaultChartType:        "line",
		TopMoversLimit:          5,
		DetailTimeout:           45 * time.Second,
	}
}

// GetDefaultSessionsConfig returns the session store defaults
func GetDefaultSessionsConfig() SessionsConfig {
	return SessionsConfig{
		IdleTimeout:     30 * time.Minute,
		CleanupInterval: time.Minute,
	}
}

func (c *DashboardConfig) Validate() error {
	if c.TrendingRefreshInterval <= 0 {
		return errors.New("trending_refresh_interval must be positive")
	}
	switch c.DefaultTimeFrame {
	case 7, 14, 30:
	default:
		return fmt.Errorf("default_time_frame must be 7, 14 or 30, got %d", c.DefaultTimeFrame)
	}
	switch c.DefaultChartType {
	case "line", "area", "bar":
	default:
		return fmt.Errorf("default_chart_type must be line, area or bar, got %q", c.DefaultChartType)
	}
	if c.TopMoversLimit <= 0 {
		return errors.New("top_movers_limit must be positive")
	}
	if c.DetailTimeout <= 0 {
		return errors.New("detail_timeout must be positive")
	}
	return nil
}

func (c *SessionsConfig) Validate() error {
	if c.IdleTimeout <= 0 {
		return errors.New("idle_timeout must be positive")
	}
	if c.CleanupInterval <= 0 {
		return errors.New("cleanup_interval must be positive")
	}
	return nil
}
