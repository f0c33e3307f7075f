package httputil

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/lunarium/arcana/pkg/logger"
)

// Client is an HTTP client wrapper with retry logic and logging. All
// outbound HTTP requests go through this client.
type Client struct {
	httpClient  *http.Client
	logger      *logger.Logger
	retryConfig RetryConfig
}

// RetryConfig holds retry configuration.
type RetryConfig struct {
	MaxRetries   int
	InitialDelay time.Duration
	MaxDelay     time.Duration
	Enabled      bool
}

// New creates an HTTP client with sensible defaults.
func New(log *logger.Logger) *Client {
	return NewWithTimeout(log, 15*time.Second)
}

// NewWithTimeout creates an HTTP client with a custom request timeout.
func NewWithTimeout(log *logger.Logger, timeout time.Duration) *Client {
	return &Client{
		httpClient: &http.Client{
			Timeout: timeout,
		},
		logger: log,
		retryConfig: RetryConfig{
			MaxRetries:   3,
			InitialDelay: 1 * time.Second,
			MaxDelay:     10 * time.Second,
			Enabled:      true,
		},
	}
}

// WithRetry sets custom retry parameters.
func (c *Client) WithRetry(maxRetries int, initialDelay time.Duration) *Client {
	c.retryConfig.MaxRetries = maxRetries
	c.retryConfig.InitialDelay = initialDelay
	c.retryConfig.Enabled = true
	return c
}

// DisableRetry disables automatic retry.
func (c *Client) DisableRetry() *Client {
	c.retryConfig.Enabled = false
	return c
}

// Get performs a GET request.
func (c *Client) Get(ctx context.Context, url string) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create GET request: %w", err)
	}
	return c.do(req)
}

// PostJSON performs a POST request with a JSON body.
func (c *Client) PostJSON(ctx context.Context, url string, payload interface{}) (*http.Response, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to encode JSON body: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to create POST request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	return c.do(req)
}

// IsRetryableError reports whether a status code warrants a retry.
func IsRetryableError(statusCode int) bool {
	return statusCode == http.StatusTooManyRequests || statusCode >= http.StatusInternalServerError
}

// do executes the request with exponential-backoff retry on transient
// failures and retryable status codes.
func (c *Client) do(req *http.Request) (*http.Response, error) {
	var (
		resp    *http.Response
		lastErr error
	)

	attempts := 1
	if c.retryConfig.Enabled {
		attempts += c.retryConfig.MaxRetries
	}

	delay := c.retryConfig.InitialDelay
	for attempt := 1; attempt <= attempts; attempt++ {
		// Rewind the body on retries.
		if attempt > 1 && req.GetBody != nil {
			body, err := req.GetBody()
			if err != nil {
				return nil, fmt.Errorf("failed to rewind request body: %w", err)
			}
			req.Body = body
		}

		start := time.Now()
		resp, lastErr = c.httpClient.Do(req)

		if lastErr == nil && !IsRetryableError(resp.StatusCode) {
			c.logger.WithFields(map[string]interface{}{
				"method":   req.Method,
				"url":      req.URL.String(),
				"status":   resp.StatusCode,
				"duration": time.Since(start),
			}).Debug("HTTP request")
			return resp, nil
		}

		if resp != nil {
			lastErr = fmt.Errorf("server returned %d", resp.StatusCode)
			resp.Body.Close()
		}

		if attempt < attempts {
			c.logger.WithError(lastErr).WithFields(map[string]interface{}{
				"url":     req.URL.String(),
				"attempt": attempt,
			}).Warn("HTTP request failed, retrying")

			select {
			case <-req.Context().Done():
				return nil, req.Context().Err()
			case <-time.After(delay):
			}

			delay *= 2
			if delay > c.retryConfig.MaxDelay {
				delay = c.retryConfig.MaxDelay
			}
		}
	}

	return nil, fmt.Errorf("request failed after %d attempts: %w", attempts, lastErr)
}
