package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"phonekart/internal/config"
	"phonekart/internal/logger"
	"phonekart/internal/metrics"
	"phonekart/internal/middleware"

	"go.uber.org/zap"
)

const (
	DefaultBaseURL = "http://localhost:8000/api"
	defaultTimeout = 15 * time.Second
)

// Client talks JSON to the storefront backend.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient builds a client over transport (nil means the default
// transport, without middleware).
func NewClient(baseURL string, timeout time.Duration, transport http.RoundTripper) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	if transport == nil {
		transport = http.DefaultTransport
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout:   timeout,
			Transport: transport,
		},
	}
}

// NewFromConfig wires the full outbound chain: request id, bearer token,
// tiered rate limit and call logging.
func NewFromConfig(cfg *config.Config, tokens middleware.TokenSource, stats *metrics.BackendStats) *Client {
	limiter := middleware.NewLimiter(cfg.RateLimitStrict, cfg.RateLimitGeneral, stats)
	transport := middleware.Chain(http.DefaultTransport,
		middleware.RequestID(),
		middleware.Auth(tokens),
		middleware.RateLimit(limiter),
		middleware.Logging(stats),
	)
	return NewClient(cfg.APIBaseURL, cfg.HTTPTimeout, transport)
}

func (c *Client) BaseURL() string { return c.baseURL }

// do sends in as the JSON body (when non-nil) and decodes a 2xx body into
// out (when non-nil).
func (c *Client) do(ctx context.Context, method, path string, in, out any) error {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "api"),
		zap.String("method", method),
		zap.String("path", path),
	)

	var body io.Reader
	if in != nil {
		payload, err := json.Marshal(in)
		if err != nil {
			log.Error("failed to marshal request", zap.Error(err))
			return err
		}
		body = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		log.Error("failed creating request", zap.Error(err))
		return err
	}
	req.Header.Set("Accept", "application/json")
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		log.Error("backend request failed", zap.Error(err))
		return fmt.Errorf("%w: %w", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		log.Error("failed to read response body", zap.Error(err))
		return fmt.Errorf("%w: %w", ErrUnavailable, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		apiErr := newError(resp.StatusCode, data)
		log.Warn("backend returned non-success status",
			zap.Int("status", resp.StatusCode),
			zap.String("message", apiErr.Message),
		)
		return apiErr
	}

	if out == nil || len(bytes.TrimSpace(data)) == 0 {
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		log.Error("failed decoding response", zap.Error(err))
		return fmt.Errorf("%w: %w", ErrBadResponse, err)
	}
	return nil
}
