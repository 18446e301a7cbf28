package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"news-fetcher/config"
	"news-fetcher/retry"
)

// feedAcceptHeader lists the mime types feed servers are asked for.
const feedAcceptHeader = "application/rss+xml, application/atom+xml, application/xml, text/xml"

// feedRetryConfig bounds retries for transient fetch failures. The whole
// schedule stays well under one scheduler tick.
var feedRetryConfig = retry.RetryConfig{
	MaxAttempts:   3,
	BaseDelay:     500 * time.Millisecond,
	MaxDelay:      5 * time.Second,
	BackoffFactor: 2.0,
	JitterFactor:  0.2,
}

// HTTPClientFactory builds outbound HTTP clients with shared transport
// settings from configuration.
type HTTPClientFactory struct {
	config *config.Config
	logger *slog.Logger
}

// NewHTTPClientFactory creates a new HTTP client factory.
func NewHTTPClientFactory(cfg *config.Config, logger *slog.Logger) *HTTPClientFactory {
	return &HTTPClientFactory{
		config: cfg,
		logger: logger,
	}
}

// CreateFeedClient returns the client used to fetch feed documents. The
// timeout bounds each attempt so a hanging feed cannot stall the run
// indefinitely; transient failures are retried with backoff.
func (f *HTTPClientFactory) CreateFeedClient() HTTPClient {
	transport := &http.Transport{
		MaxIdleConns:        f.config.HTTP.MaxIdleConns,
		MaxIdleConnsPerHost: f.config.HTTP.MaxIdleConnsPerHost,
		IdleConnTimeout:     f.config.HTTP.IdleConnTimeout,
	}

	return &feedHTTPClient{
		client: &http.Client{
			Timeout:   f.config.HTTP.Timeout,
			Transport: transport,
		},
		userAgent: f.config.HTTP.UserAgent,
		retrier:   retry.NewRetrier(feedRetryConfig, isTransientFetchError, f.logger),
	}
}

// feedHTTPClient wraps http.Client with identifying headers and retries.
type feedHTTPClient struct {
	client    *http.Client
	userAgent string
	retrier   *retry.Retrier
}

// transientFetchError marks failures worth retrying: transport errors and
// retryable status codes. Client errors like 404 come back as the response
// itself, untouched.
type transientFetchError struct {
	err error
}

func (e *transientFetchError) Error() string { return e.err.Error() }
func (e *transientFetchError) Unwrap() error { return e.err }

func isTransientFetchError(err error) bool {
	var t *transientFetchError
	return errors.As(err, &t)
}

// Get issues one GET with the feed User-Agent and Accept headers. Transport
// failures, 429 and 5xx responses are retried; anything else is returned
// as-is for the caller to interpret.
func (c *feedHTTPClient) Get(ctx context.Context, url string) (*http.Response, error) {
	var resp *http.Response

	operation := func() error {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
		if err != nil {
			return fmt.Errorf("build request: %w", err)
		}

		req.Header.Set("User-Agent", c.userAgent)
		req.Header.Set("Accept", feedAcceptHeader)

		r, err := c.client.Do(req)
		if err != nil {
			return &transientFetchError{err: err}
		}

		if r.StatusCode == http.StatusTooManyRequests || r.StatusCode >= 500 {
			io.Copy(io.Discard, r.Body)
			r.Body.Close()
			return &transientFetchError{err: fmt.Errorf("HTTP %d: %s", r.StatusCode, http.StatusText(r.StatusCode))}
		}

		resp = r
		return nil
	}

	if err := c.retrier.Do(ctx, operation); err != nil {
		// Report the last failure itself, not the retry bookkeeping, so the
		// per-source error keeps the "HTTP {status}: {statusText}" shape.
		var transient *transientFetchError
		if errors.As(err, &transient) {
			return nil, transient.err
		}
		return nil, err
	}

	return resp, nil
}
