package coingecko_common

import (
	"context"
	"encoding/json"
	"fmt"
	"sync/atomic"

	"github.com/rs/zerolog/log"

	"github.com/status-im/market-dashboard/config"
)

// APIClient performs GET requests against one CoinGecko deployment
// (public or pro, depending on the configured key) and decodes JSON.
type APIClient struct {
	name            string
	baseURL         string
	apiKey          APIKey
	httpClient      *HTTPClientWithRetries
	successfulFetch atomic.Bool
}

// NewAPIClient creates a client whose requests are reported under serviceName
func NewAPIClient(cfg config.CoingeckoConfig, serviceName string, pacer *RequestPacer) *APIClient {
	retryOpts := DefaultRetryOptions()
	retryOpts.LogPrefix = "CoinGecko-" + serviceName
	retryOpts.MaxRetries = cfg.MaxRetries
	retryOpts.BaseBackoff = cfg.RetryBackoff
	retryOpts.ConnectionTimeout = cfg.ConnectionTimeout
	retryOpts.RequestTimeout = cfg.RequestTimeout

	apiKey := APIKeyFromConfig(cfg)

	return &APIClient{
		name:       serviceName,
		baseURL:    GetApiBaseUrl(cfg, apiKey.Type),
		apiKey:     apiKey,
		httpClient: NewHTTPClientWithRetries(retryOpts, NewHttpRequestMetricsWriter(serviceName), pacer),
	}
}

// NewRequestBuilder returns a builder for apiPath with the API key applied
func (c *APIClient) NewRequestBuilder(apiPath string) *CoingeckoRequestBuilder {
	return NewCoingeckoRequestBuilder(c.baseURL, apiPath).WithApiKey(c.apiKey)
}

// GetJSON executes the request built by rb and decodes the body into out
func (c *APIClient) GetJSON(ctx context.Context, rb *CoingeckoRequestBuilder, out interface{}) error {
	req, err := rb.Build(ctx)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}

	body, duration, err := c.httpClient.ExecuteRequest(req)
	if err != nil {
		return err
	}

	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("decode %s response: %w", c.name, err)
	}

	log.Debug().
		Str("service", c.name).
		Str("path", req.URL.Path).
		Dur("duration", duration).
		Msg("CoinGecko request succeeded")

	c.successfulFetch.Store(true)
	return nil
}

// Healthy reports whether at least one request has succeeded
func (c *APIClient) Healthy() bool {
	return c.successfulFetch.Load()
}

// BaseURL returns the base URL requests are sent to
func (c *APIClient) BaseURL() string {
	return c.baseURL
}
