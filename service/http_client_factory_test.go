package service

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"news-fetcher/retry"
)

func newTestFeedClient() *feedHTTPClient {
	fast := retry.RetryConfig{
		MaxAttempts:   3,
		BaseDelay:     time.Millisecond,
		MaxDelay:      5 * time.Millisecond,
		BackoffFactor: 2.0,
		JitterFactor:  0.1,
	}

	return &feedHTTPClient{
		client:    &http.Client{Timeout: 2 * time.Second},
		userAgent: "news-fetcher-test/1.0",
		retrier:   retry.NewRetrier(fast, isTransientFetchError, testLogger()),
	}
}

func TestFeedHTTPClient_Get(t *testing.T) {
	t.Run("should send identifying headers", func(t *testing.T) {
		var gotUA, gotAccept string
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotUA = r.Header.Get("User-Agent")
			gotAccept = r.Header.Get("Accept")
			w.Write([]byte("<rss/>"))
		}))
		defer srv.Close()

		client := newTestFeedClient()

		resp, err := client.Get(context.Background(), srv.URL)
		require.NoError(t, err)
		defer resp.Body.Close()

		assert.Equal(t, "news-fetcher-test/1.0", gotUA)
		assert.Equal(t, feedAcceptHeader, gotAccept)
	})

	t.Run("should retry server errors until success", func(t *testing.T) {
		var calls atomic.Int32
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if calls.Add(1) < 3 {
				w.WriteHeader(http.StatusServiceUnavailable)
				return
			}
			w.Write([]byte("<rss/>"))
		}))
		defer srv.Close()

		client := newTestFeedClient()

		resp, err := client.Get(context.Background(), srv.URL)
		require.NoError(t, err)
		defer resp.Body.Close()

		assert.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Equal(t, int32(3), calls.Load())
	})

	t.Run("should give up after exhausting retries", func(t *testing.T) {
		var calls atomic.Int32
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			calls.Add(1)
			w.WriteHeader(http.StatusBadGateway)
		}))
		defer srv.Close()

		client := newTestFeedClient()

		_, err := client.Get(context.Background(), srv.URL)
		require.Error(t, err)
		assert.EqualError(t, err, "HTTP 502: Bad Gateway")
		assert.Equal(t, int32(3), calls.Load())
	})

	t.Run("should return client errors without retrying", func(t *testing.T) {
		var calls atomic.Int32
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			calls.Add(1)
			w.WriteHeader(http.StatusNotFound)
		}))
		defer srv.Close()

		client := newTestFeedClient()

		resp, err := client.Get(context.Background(), srv.URL)
		require.NoError(t, err)
		defer resp.Body.Close()

		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
		assert.Equal(t, int32(1), calls.Load())
	})

	t.Run("should fail on unreachable hosts", func(t *testing.T) {
		client := newTestFeedClient()

		_, err := client.Get(context.Background(), "http://127.0.0.1:1/feed.xml")
		require.Error(t, err)
	})
}
