package e2etest

import (
	"fmt"
	"net"
	"os"
	"path/filepath"
	"strconv"

	"github.com/status-im/market-dashboard/config"
)

// createTestConfig writes a config file pointing every CoinGecko URL at mockURL
func createTestConfig(mockURL string) (string, error) {
	tempDir, err := os.MkdirTemp("", "market-dashboard-test")
	if err != nil {
		return "", err
	}

	configContent := `
server:
  port: "8080"

log:
  level: warn

cache:
  go_cache:
    default_expiration: 60s
    stale_retention: 1m
    cleanup_interval: 1m
    enabled: true

coingecko_markets:
  currency: usd
  per_page: 100
  max_per_page: 250
  page: 1
  price_change_percentage: ["1h", "24h", "7d", "30d"]
  ttl: 60s

coingecko_market_chart:
  currency: usd
  default_days: 30
  max_days: 365
  interval: daily
  ttl: 60s

coingecko_coins:
  build_on_start: true
  refresh_interval: 24h

api_keys:
  demo:
    rate_limit_per_minute: 6000
    burst: 50
  nokey:
    rate_limit_per_minute: 6000
    burst: 50

tokens_file: "%s"

override_coingecko_public_url: "%s"
override_coingecko_pro_url: "%s"
`

	tokensFilePath := filepath.Join(tempDir, "tokens.json")
	tokensContent := `{"api_tokens": [], "demo_api_tokens": ["test-demo-key"]}`
	if err := os.WriteFile(tokensFilePath, []byte(tokensContent), 0644); err != nil {
		os.RemoveAll(tempDir)
		return "", err
	}

	configPath := filepath.Join(tempDir, "config.yaml")
	content := fmt.Sprintf(configContent, tokensFilePath, mockURL, mockURL)
	if err := os.WriteFile(configPath, []byte(content), 0644); err != nil {
		os.RemoveAll(tempDir)
		return "", err
	}

	return configPath, nil
}

// loadTestConfig creates and loads test configuration
func loadTestConfig(mockURL string) (*config.Config, string, error) {
	configPath, err := createTestConfig(mockURL)
	if err != nil {
		return nil, "", err
	}

	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		os.RemoveAll(filepath.Dir(configPath))
		return nil, "", err
	}

	return cfg, configPath, nil
}

// cleanupTestConfig removes the temporary directory with configuration
func cleanupTestConfig(configPath string) {
	os.RemoveAll(filepath.Dir(configPath))
}

// freePort asks the kernel for an unused TCP port
func freePort() (string, error) {
	listener, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		return "", err
	}
	defer listener.Close()
	return strconv.Itoa(listener.Addr().(*net.TCPAddr).Port), nil
}
