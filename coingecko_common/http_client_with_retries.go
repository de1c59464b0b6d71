package coingecko_common

import (
	"context"
	"errors"
	"fmt"
	"io"
	"math/rand"
	"net"
	"net/http"
	"time"

	"github.com/rs/zerolog/log"
)

// IHttpStatusHandler is an interface for handling HTTP request statuses
//
//go:generate mockgen -destination=mocks/http_status_handler.go . IHttpStatusHandler
type IHttpStatusHandler interface {
	// OnRequest handles a request with its status result
	OnRequest(status string)
	// OnRetry handles retry events
	OnRetry()
}

// Request statuses reported to IHttpStatusHandler
const (
	StatusSuccess     = "success"
	StatusError       = "error"
	StatusRateLimited = "rate_limited"
	StatusCanceled    = "canceled"
)

// RetryOptions configures retry behavior for HTTP requests
type RetryOptions struct {
	// MaxRetries is the total number of attempts; 1 means no retry
	MaxRetries        int
	BaseBackoff       time.Duration
	LogPrefix         string
	ConnectionTimeout time.Duration // Timeout for establishing connection
	RequestTimeout    time.Duration // Total request timeout including reading response
}

// DefaultRetryOptions returns default retry options.
// Requests are attempted once; recovery is left to the user.
func DefaultRetryOptions() RetryOptions {
	return RetryOptions{
		MaxRetries:        1,
		BaseBackoff:       1000 * time.Millisecond,
		LogPrefix:         "HTTP",
		ConnectionTimeout: 10 * time.Second,
		RequestTimeout:    30 * time.Second,
	}
}

// HTTPClientWithRetries wraps an HTTP Client with retry capabilities
type HTTPClientWithRetries struct {
	Client        *http.Client
	Opts          RetryOptions
	StatusHandler IHttpStatusHandler
	Pacer         *RequestPacer
}

// NewHTTPClientWithRetries creates a new HTTP Client with retry capabilities
func NewHTTPClientWithRetries(opts RetryOptions, handler IHttpStatusHandler, pacer *RequestPacer) *HTTPClientWithRetries {
	client := &http.Client{
		Timeout: opts.RequestTimeout,
		Transport: &http.Transport{
			DialContext: (&net.Dialer{
				Timeout: opts.ConnectionTimeout,
			}).DialContext,
		},
	}

	if opts.MaxRetries < 1 {
		opts.MaxRetries = 1
	}

	return &HTTPClientWithRetries{
		Client:        client,
		Opts:          opts,
		StatusHandler: handler,
		Pacer:         pacer,
	}
}

// SetStatusHandler sets the status handler for this Client
func (c *HTTPClientWithRetries) SetStatusHandler(handler IHttpStatusHandler) {
	c.StatusHandler = handler
}

// ExecuteRequest executes an HTTP request and returns the body of a 2xx response.
// Non-2xx responses come back as *HTTPStatusError.
func (c *HTTPClientWithRetries) ExecuteRequest(req *http.Request) ([]byte, time.Duration, error) {
	var lastErr error
	ctx := req.Context()

	for attempt := 0; attempt < c.Opts.MaxRetries; attempt++ {
		if attempt > 0 {
			c.onRetry()
			backoffDuration := calculateBackoffWithJitter(c.Opts.BaseBackoff, attempt)
			log.Warn().
				Str("client", c.Opts.LogPrefix).
				Int("attempt", attempt).
				Err(lastErr).
				Dur("backoff", backoffDuration).
				Msg("Retrying request")

			select {
			case <-ctx.Done():
				c.onRequest(StatusCanceled)
				return nil, 0, ctx.Err()
			case <-time.After(backoffDuration):
			}
		}

		if err := c.Pacer.Wait(ctx); err != nil {
			c.onRequest(StatusCanceled)
			return nil, 0, fmt.Errorf("request pacer wait failed: %w", err)
		}

		requestStart := time.Now()
		resp, err := c.Client.Do(req)
		requestDuration := time.Since(requestStart)
		if err != nil {
			if errors.Is(err, context.Canceled) {
				c.onRequest(StatusCanceled)
				return nil, requestDuration, err
			}
			lastErr = fmt.Errorf("request failed after %.2fs: %w", requestDuration.Seconds(), err)
			c.onRequest(StatusError)
			continue
		}

		body, err := processResponse(resp, requestDuration)
		resp.Body.Close()
		if err != nil {
			var statusErr *HTTPStatusError
			if errors.As(err, &statusErr) {
				if statusErr.StatusCode == http.StatusTooManyRequests {
					c.onRequest(StatusRateLimited)
					return nil, requestDuration, err
				}
				c.onRequest(StatusError)
				if statusErr.Retryable() {
					lastErr = err
					continue
				}
				return nil, requestDuration, err
			}
			c.onRequest(StatusError)
			lastErr = err
			continue
		}

		c.onRequest(StatusSuccess)
		return body, requestDuration, nil
	}

	return nil, 0, lastErr
}

func (c *HTTPClientWithRetries) onRequest(status string) {
	if c.StatusHandler != nil {
		c.StatusHandler.OnRequest(status)
	}
}

func (c *HTTPClientWithRetries) onRetry() {
	if c.StatusHandler != nil {
		c.StatusHandler.OnRetry()
	}
}

// calculateBackoffWithJitter calculates backoff duration with jitter for retries
func calculateBackoffWithJitter(baseBackoff time.Duration, attempt int) time.Duration {
	if attempt <= 0 || baseBackoff <= 0 {
		return baseBackoff
	}

	multiplier := uint(1) << uint(attempt-1)
	backoff := time.Duration(float64(baseBackoff) * float64(multiplier))
	if half := int64(backoff / 2); half > 0 {
		backoff += time.Duration(rand.Int63n(half))
	}
	return backoff
}

// processResponse reads the HTTP response body
func processResponse(resp *http.Response, requestDuration time.Duration) ([]byte, error) {
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return nil, &HTTPStatusError{
			StatusCode: resp.StatusCode,
			Body:       string(body),
			Duration:   requestDuration,
		}
	}

	responseBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("error reading response: %w", err)
	}

	return responseBody, nil
}
