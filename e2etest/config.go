package e2etest

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/status-im/market-dashboard/config"
)

// createTestConfig writes a test configuration and returns the path to the file
func createTestConfig(mockURL string) (string, error) {
	tempDir, err := os.MkdirTemp("", "market-dashboard-test")
	if err != nil {
		return "", err
	}

	configContent := fmt.Sprintf(`
server:
  port: "0"                          # overridden by PORT in tests

logging:
  level: warn

coingecko:
  api_key_env: MARKET_DASHBOARD_E2E_NO_KEY  # unset, so the public URL is used
  override_public_url: %q
  connection_timeout: 2s
  request_timeout: 5s
  max_retries: 1

dashboard:
  trending_refresh_interval: 1h      # tests drive refreshes through retry
  default_time_frame: 7
  default_chart_type: line
  top_movers_limit: 2
  detail_timeout: 5s

sessions:
  idle_timeout: 10m
  cleanup_interval: 1m
`, mockURL)

	configPath := filepath.Join(tempDir, "config.yaml")
	if err := os.WriteFile(configPath, []byte(configContent), 0644); err != nil {
		os.RemoveAll(tempDir)
		return "", err
	}

	return configPath, nil
}

// cleanupTestConfig removes the temporary configuration directory
func cleanupTestConfig(configPath string) {
	if configPath != "" {
		os.RemoveAll(filepath.Dir(configPath))
	}
}

// loadTestConfig creates and loads the test configuration
func loadTestConfig(mockURL string) (*config.Config, string, error) {
	configPath, err := createTestConfig(mockURL)
	if err != nil {
		return nil, "", err
	}

	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		cleanupTestConfig(configPath)
		return nil, "", err
	}

	return cfg, configPath, nil
}
