package coingecko_common

import (
	"errors"
	"fmt"
	"net/http"
	"time"
)

// HTTPStatusError is returned when the upstream answers with a non-2xx status
type HTTPStatusError struct {
	StatusCode int
	Body       string
	Duration   time.Duration
}

func (e *HTTPStatusError) Error() string {
	if e.StatusCode == http.StatusTooManyRequests {
		return fmt.Sprintf("rate limit exceeded (status %d): %s", e.StatusCode, e.Body)
	}
	return fmt.Sprintf("API request failed with status %d after %.2fs: %s",
		e.StatusCode, e.Duration.Seconds(), e.Body)
}

// Retryable reports whether the status is a transient upstream failure.
// 429 is deliberately excluded; rate limits surface to the user.
func (e *HTTPStatusError) Retryable() bool {
	switch e.StatusCode {
	case http.StatusInternalServerError,
		http.StatusBadGateway,
		http.StatusServiceUnavailable,
		http.StatusGatewayTimeout:
		return true
	}
	return false
}

// StatusCodeOf extracts the upstream status from err, or 0 if there is none
func StatusCodeOf(err error) int {
	var statusErr *HTTPStatusError
	if errors.As(err, &statusErr) {
		return statusErr.StatusCode
	}
	return 0
}
