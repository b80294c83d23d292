package coingecko_common

import (
	"fmt"
	"io"
	"math/rand"
	"net"
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/status-im/market-dashboard/market_errors"
)

// IHttpStatusHandler is an interface for handling HTTP request statuses
type IHttpStatusHandler interface {
	// OnRequest handles a request with its status result
	OnRequest(status string)
	// OnRetry handles retry events
	OnRetry()
}

// RetryOptions configures retry behavior for HTTP requests
type RetryOptions struct {
	MaxRetries        int
	BaseBackoff       time.Duration
	LogPrefix         string
	ConnectionTimeout time.Duration // Timeout for establishing connection
	RequestTimeout    time.Duration // Total request timeout including reading response
}

// DefaultRetryOptions returns default retry options
func DefaultRetryOptions() RetryOptions {
	return RetryOptions{
		MaxRetries:        3,
		BaseBackoff:       1000 * time.Millisecond,
		LogPrefix:         "HTTP",
		ConnectionTimeout: 10 * time.Second, // Default 10s connection timeout
		RequestTimeout:    30 * time.Second, // Default 30s total request timeout
	}
}

// HTTPClientWithRetries wraps an HTTP Client with retry capabilities
type HTTPClientWithRetries struct {
	Client         *http.Client
	Opts           RetryOptions
	StatusHandler  IHttpStatusHandler
	LimiterManager IRateLimiterManager
}

// NewHTTPClientWithRetries creates a new HTTP Client with retry capabilities
func NewHTTPClientWithRetries(opts RetryOptions, handler IHttpStatusHandler, limiterManager IRateLimiterManager) *HTTPClientWithRetries {
	client := &http.Client{
		Timeout: opts.RequestTimeout,
		Transport: &http.Transport{
			DialContext: (&net.Dialer{
				Timeout: opts.ConnectionTimeout,
			}).DialContext,
		},
	}

	return &HTTPClientWithRetries{
		Client:         client,
		Opts:           opts,
		StatusHandler:  handler,
		LimiterManager: limiterManager,
	}
}

// ExecuteRequest executes an HTTP request with retry logic.
// The returned body is fully read; resp.Body is already drained.
// Transport failures are reported as NetworkFailure, non-200 answers as ProviderError.
func (c *HTTPClientWithRetries) ExecuteRequest(req *http.Request) (*http.Response, []byte, time.Duration, error) {
	var lastErr error
	ctx := req.Context()
	log := zap.L().With(zap.String("client", c.Opts.LogPrefix), zap.String("path", req.URL.Path))

	for attempt := 0; attempt < c.Opts.MaxRetries; attempt++ {
		if attempt > 0 {
			if c.StatusHandler != nil {
				c.StatusHandler.OnRetry()
			}

			backoffDuration := calculateBackoffWithJitter(c.Opts.BaseBackoff, attempt)
			log.Warn("Retrying request",
				zap.Int("attempt", attempt),
				zap.Int("max_retries", c.Opts.MaxRetries-1),
				zap.Duration("backoff", backoffDuration),
				zap.Error(lastErr))

			select {
			case <-ctx.Done():
				return nil, nil, 0, market_errors.NewNetworkFailure(ctx.Err())
			case <-time.After(backoffDuration):
			}
		}

		requestStart := time.Now()

		// Rate limit per API key before executing the request
		if c.LimiterManager != nil {
			limiter := c.LimiterManager.GetLimiterForURL(req.URL)
			if limiter != nil {
				if err := limiter.Wait(ctx); err != nil {
					lastErr = market_errors.NewNetworkFailure(fmt.Errorf("rate limiter wait failed: %w", err))
					if c.StatusHandler != nil {
						c.StatusHandler.OnRequest("error")
					}
					break
				}
			}
		}

		resp, err := c.Client.Do(req)
		requestDuration := time.Since(requestStart)

		if err != nil {
			lastErr = market_errors.NewNetworkFailure(err)
			if c.StatusHandler != nil {
				c.StatusHandler.OnRequest("error")
			}
			if ctx.Err() != nil {
				break
			}
			continue
		}

		responseBody, err := processResponse(resp)
		resp.Body.Close()
		if err != nil {
			if isRetryableError(resp.StatusCode) {
				lastErr = err
				if c.StatusHandler != nil {
					c.StatusHandler.OnRequest("rate_limited")
				}
				continue
			}

			if c.StatusHandler != nil {
				c.StatusHandler.OnRequest("error")
			}
			return nil, nil, requestDuration, err
		}

		if c.StatusHandler != nil {
			c.StatusHandler.OnRequest("success")
		}
		log.Debug("Request completed", zap.Duration("duration", requestDuration))
		return resp, responseBody, requestDuration, nil
	}

	return nil, nil, 0, fmt.Errorf("all %d attempts failed: %w", c.Opts.MaxRetries, lastErr)
}

// calculateBackoffWithJitter calculates backoff duration with jitter for retries
func calculateBackoffWithJitter(baseBackoff time.Duration, attempt int) time.Duration {
	if attempt <= 0 {
		return baseBackoff
	}

	multiplier := uint(1) << uint(attempt-1)
	backoff := time.Duration(float64(baseBackoff) * float64(multiplier))
	if backoff < 2 {
		return backoff
	}
	jitter := time.Duration(rand.Int63n(int64(backoff / 2)))
	return backoff + jitter
}

// processResponse reads the HTTP response body and classifies non-200 answers
func processResponse(resp *http.Response) ([]byte, error) {
	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return nil, market_errors.NewProviderError(resp.StatusCode, string(body))
	}

	responseBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, market_errors.NewNetworkFailure(fmt.Errorf("error reading response: %w", err))
	}

	return responseBody, nil
}

// isRetryableError determines if a given HTTP status code should trigger a retry
func isRetryableError(statusCode int) bool {
	return statusCode == http.StatusTooManyRequests ||
		statusCode == http.StatusInternalServerError ||
		statusCode == http.StatusBadGateway ||
		statusCode == http.StatusServiceUnavailable ||
		statusCode == http.StatusGatewayTimeout
}
