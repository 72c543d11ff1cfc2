package middleware

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"phonekart/internal/logger"
	"phonekart/internal/metrics"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type staticToken string

func (s staticToken) Token() string { return string(s) }

// recorder captures the request that reached the end of the chain.
func recorder(status int, seen **http.Request) http.RoundTripper {
	return RoundTripFunc(func(r *http.Request) (*http.Response, error) {
		*seen = r
		return &http.Response{
			StatusCode: status,
			Body:       io.NopCloser(strings.NewReader("{}")),
			Header:     make(http.Header),
			Request:    r,
		}, nil
	})
}

func TestChainOrder(t *testing.T) {
	var order []string
	mark := func(name string) Middleware {
		return func(next http.RoundTripper) http.RoundTripper {
			return RoundTripFunc(func(r *http.Request) (*http.Response, error) {
				order = append(order, name)
				return next.RoundTrip(r)
			})
		}
	}

	var seen *http.Request
	rt := Chain(recorder(http.StatusOK, &seen), mark("first"), mark("second"))

	req := httptest.NewRequest(http.MethodGet, "http://backend/api/products", nil)
	_, err := rt.RoundTrip(req)
	require.NoError(t, err)
	assert.Equal(t, []string{"first", "second"}, order)
}

func TestRequestID(t *testing.T) {
	t.Run("Generates ID when missing", func(t *testing.T) {
		var seen *http.Request
		rt := Chain(recorder(http.StatusOK, &seen), RequestID())

		req := httptest.NewRequest(http.MethodGet, "http://backend/api/products", nil)
		_, err := rt.RoundTrip(req)
		require.NoError(t, err)

		id := seen.Header.Get("X-Request-ID")
		assert.NotEmpty(t, id)
		assert.Equal(t, id, logger.RequestIDFrom(seen.Context()))
		assert.Empty(t, req.Header.Get("X-Request-ID"), "original request must not be mutated")
	})

	t.Run("Preserves context ID", func(t *testing.T) {
		var seen *http.Request
		rt := Chain(recorder(http.StatusOK, &seen), RequestID())

		ctx := logger.WithRequestID(context.Background(), "action-42")
		req := httptest.NewRequest(http.MethodGet, "http://backend/api/products", nil).WithContext(ctx)
		_, err := rt.RoundTrip(req)
		require.NoError(t, err)
		assert.Equal(t, "action-42", seen.Header.Get("X-Request-ID"))
	})
}

func TestAuth(t *testing.T) {
	t.Run("Attaches bearer token", func(t *testing.T) {
		var seen *http.Request
		rt := Chain(recorder(http.StatusOK, &seen), Auth(staticToken("tok-1")))

		req := httptest.NewRequest(http.MethodGet, "http://backend/api/myorders", nil)
		_, err := rt.RoundTrip(req)
		require.NoError(t, err)
		assert.Equal(t, "Bearer tok-1", seen.Header.Get("Authorization"))
		assert.Empty(t, req.Header.Get("Authorization"))
	})

	t.Run("Signed out stays anonymous", func(t *testing.T) {
		var seen *http.Request
		rt := Chain(recorder(http.StatusOK, &seen), Auth(staticToken("")))

		_, err := rt.RoundTrip(httptest.NewRequest(http.MethodGet, "http://backend/api/products", nil))
		require.NoError(t, err)
		assert.Empty(t, seen.Header.Get("Authorization"))
	})

	t.Run("Nil source", func(t *testing.T) {
		var seen *http.Request
		rt := Chain(recorder(http.StatusOK, &seen), Auth(nil))

		_, err := rt.RoundTrip(httptest.NewRequest(http.MethodGet, "http://backend/api/products", nil))
		require.NoError(t, err)
		assert.Empty(t, seen.Header.Get("Authorization"))
	})
}

func TestResolveTier(t *testing.T) {
	tests := []struct {
		method string
		path   string
		want   string
	}{
		{http.MethodPost, "/api/users/login", TierStrict},
		{http.MethodPost, "/api/users/register", TierStrict},
		{http.MethodPut, "/api/users/password", TierStrict},
		{http.MethodPost, "/api/users/forgot-password", TierStrict},
		{http.MethodPost, "/api/order", TierStrict},
		{http.MethodPut, "/api/admin/order/65cf3b1a2b3c4d5e6f708192", TierStrict},
		{http.MethodPost, "/api/admin/product/new", TierStrict},
		{http.MethodGet, "/api/admin/orders", TierGeneral},
		{http.MethodGet, "/api/products", TierGeneral},
		{http.MethodGet, "/api/order/65cf3b1a2b3c4d5e6f708192", TierGeneral},
		{http.MethodPut, "/api/users/profile", TierGeneral},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.path, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, "http://backend"+tt.path, nil)
			assert.Equal(t, tt.want, ResolveTier(req))
		})
	}
}

func TestRateLimit(t *testing.T) {
	t.Run("Allows burst", func(t *testing.T) {
		stats := &metrics.BackendStats{}
		var seen *http.Request
		rt := Chain(recorder(http.StatusOK, &seen), RateLimit(NewLimiter(0, 0, stats)))

		for i := 0; i < burstGeneral; i++ {
			_, err := rt.RoundTrip(httptest.NewRequest(http.MethodGet, "http://backend/api/products", nil))
			require.NoError(t, err)
		}
		assert.Equal(t, uint64(0), stats.Snapshot().Throttled)
	})

	t.Run("Cancelled wait aborts the call", func(t *testing.T) {
		stats := &metrics.BackendStats{}
		calls := 0
		base := RoundTripFunc(func(r *http.Request) (*http.Response, error) {
			calls++
			return &http.Response{StatusCode: http.StatusOK, Body: io.NopCloser(strings.NewReader("")), Header: make(http.Header)}, nil
		})
		// 0.001 rps: after the burst the next token is far away.
		rt := Chain(base, RateLimit(NewLimiter(0.001, 0, stats)))

		for i := 0; i < burstStrict; i++ {
			_, err := rt.RoundTrip(httptest.NewRequest(http.MethodPost, "http://backend/api/users/login", nil))
			require.NoError(t, err)
		}

		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
		defer cancel()
		req := httptest.NewRequest(http.MethodPost, "http://backend/api/users/login", nil).WithContext(ctx)
		_, err := rt.RoundTrip(req)

		assert.Error(t, err)
		assert.Equal(t, burstStrict, calls)
		assert.Equal(t, uint64(1), stats.Snapshot().Throttled)
	})
}

func TestLogging(t *testing.T) {
	t.Run("Counts failures by status", func(t *testing.T) {
		stats := &metrics.BackendStats{}
		var seen *http.Request

		ok := Chain(recorder(http.StatusOK, &seen), Logging(stats))
		_, err := ok.RoundTrip(httptest.NewRequest(http.MethodGet, "http://backend/api/products", nil))
		require.NoError(t, err)

		bad := Chain(recorder(http.StatusInternalServerError, &seen), Logging(stats))
		_, err = bad.RoundTrip(httptest.NewRequest(http.MethodGet, "http://backend/api/products", nil))
		require.NoError(t, err)

		snap := stats.Snapshot()
		assert.Equal(t, uint64(2), snap.Requests)
		assert.Equal(t, uint64(1), snap.Failures)
	})

	t.Run("Transport error", func(t *testing.T) {
		stats := &metrics.BackendStats{}
		boom := errors.New("connection refused")
		rt := Chain(RoundTripFunc(func(r *http.Request) (*http.Response, error) {
			return nil, boom
		}), Logging(stats))

		_, err := rt.RoundTrip(httptest.NewRequest(http.MethodGet, "http://backend/api/products", nil))
		assert.ErrorIs(t, err, boom)
		assert.Equal(t, uint64(1), stats.Snapshot().Failures)
	})
}
