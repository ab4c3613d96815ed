package api

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/mobil-koeln/crtm-cli/internal/cache"
	"github.com/mobil-koeln/crtm-cli/internal/logger"
	"github.com/mobil-koeln/crtm-cli/internal/observability"
)

const (
	defaultTimeout  = 10 * time.Second
	defaultCacheTTL = 90 * time.Second

	userAgent = "crtm-cli (+https://github.com/mobil-koeln/crtm-cli)"
)

// Cache interface for caching HTTP responses
type Cache interface {
	Get(key string) ([]byte, bool)
	Set(key string, value []byte) error
}

// Client is the API client for the CRTM widget service
type Client struct {
	httpClient *http.Client
	baseURL    string
	timezone   *time.Location
	cache      Cache
	log        logger.Logger
	metrics    *observability.Metrics
}

// ClientOption configures the Client
type ClientOption func(*Client)

// WithTimeout sets the HTTP client timeout
func WithTimeout(d time.Duration) ClientOption {
	return func(c *Client) {
		c.httpClient.Timeout = d
	}
}

// WithHTTPClient sets a custom HTTP client
func WithHTTPClient(hc *http.Client) ClientOption {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// WithBaseURL points the client at another widget service root
func WithBaseURL(base string) ClientOption {
	return func(c *Client) {
		c.baseURL = base
	}
}

// WithCache enables caching with the provided cache implementation
func WithCache(cache Cache) ClientOption {
	return func(c *Client) {
		c.cache = cache
	}
}

// WithDefaultCache enables caching with the default file cache
func WithDefaultCache() ClientOption {
	return func(c *Client) {
		fc, err := cache.NewFileCache(cache.DefaultCacheDir(), defaultCacheTTL)
		if err == nil {
			c.cache = fc
		}
	}
}

// WithLogger sets the logger used for request tracing
func WithLogger(l logger.Logger) ClientOption {
	return func(c *Client) {
		if l != nil {
			c.log = l
		}
	}
}

// WithMetrics records request and cache metrics
func WithMetrics(m *observability.Metrics) ClientOption {
	return func(c *Client) {
		c.metrics = m
	}
}

// NewClient creates a new API client
func NewClient(opts ...ClientOption) (*Client, error) {
	tz, err := time.LoadLocation("Europe/Madrid")
	if err != nil {
		return nil, fmt.Errorf("failed to load timezone: %w", err)
	}

	c := &Client{
		httpClient: &http.Client{Timeout: defaultTimeout},
		baseURL:    BaseURL,
		timezone:   tz,
		log:        logger.Nop(),
	}

	for _, opt := range opts {
		opt(c)
	}

	return c, nil
}

// Timezone returns the client's timezone
func (c *Client) Timezone() *time.Location {
	return c.timezone
}

// BaseURL returns the widget service root the client talks to
func (c *Client) BaseURL() string {
	return c.baseURL
}

// get renders q and performs the request. Missing parameters are reported
// before any network I/O.
func (c *Client) get(ctx context.Context, q *Query) (json.RawMessage, error) {
	reqURL, err := q.URL(c.baseURL)
	if err != nil {
		return nil, err
	}
	return c.doRequest(ctx, q.Path(), reqURL)
}

// decode fetches q and unmarshals the body into v
func (c *Client) decode(ctx context.Context, q *Query, v any) error {
	body, err := c.get(ctx, q)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(body, v); err != nil {
		return fmt.Errorf("%w: failed to parse %s response: %w", ErrInvalidResponse, q.Path(), err)
	}
	return nil
}

// doRequest performs an HTTP GET request with optional caching
func (c *Client) doRequest(ctx context.Context, endpoint, reqURL string) (body []byte, err error) {
	if c.cache != nil {
		data, ok := c.cache.Get(reqURL)
		c.metrics.ObserveCache(ok)
		if ok {
			c.log.Debug("cache hit", "endpoint", endpoint, "url", reqURL)
			return data, nil
		}
	}

	start := time.Now()
	status := 0
	defer func() {
		elapsed := time.Since(start)
		c.metrics.ObserveRequest(endpoint, elapsed, err)
		c.log.Debug("upstream request", "endpoint", endpoint, "url", reqURL, "status", status, "duration", elapsed, "error", err)
	}()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, transportError("failed to create request", err)
	}
	req.Header.Set("Accept", "application/json, text/plain, */*")
	req.Header.Set("User-Agent", userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			return nil, fmt.Errorf("%w: %w: %w", ErrTransport, ErrTimeout, ctx.Err())
		}
		var netErr interface{ Timeout() bool }
		if errors.As(err, &netErr) && netErr.Timeout() {
			return nil, fmt.Errorf("%w: %w: %w", ErrTransport, ErrTimeout, err)
		}
		return nil, transportError("request failed", err)
	}
	defer func() { _ = resp.Body.Close() }()
	status = resp.StatusCode

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, NewAPIError(resp.StatusCode, resp.Status, endpoint)
	}

	body, err = io.ReadAll(resp.Body)
	if err != nil {
		return nil, transportError("failed to read response body", err)
	}

	if !json.Valid(body) {
		return nil, fmt.Errorf("%w: %w: %s returned a non-JSON body", ErrTransport, ErrInvalidResponse, endpoint)
	}

	if c.cache != nil {
		_ = c.cache.Set(reqURL, body)
	}

	return body, nil
}
