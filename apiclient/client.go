package apiclient

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/hashicorp/golang-lru/v2/expirable"
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"

	colterrors "github.com/jrsteele09/go-colten/internal/errors"
)

const (
	defaultTimeout  = 30 * time.Second
	headerRequestID = "X-Request-ID"
)

// Client talks JSON to the Colten API.
type Client struct {
	baseURL     string
	httpClient  *http.Client
	credentials CredentialSource
	invalidator Invalidator
	timeout     time.Duration
	cache       *expirable.LRU[string, []byte]
}

// Option defines a function type to modify the Client instance.
type Option func(*Client)

// WithHTTPClient uses hc's transport and settings. Its transport is wrapped to attach
// credentials.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		if hc != nil {
			c.httpClient = hc
		}
	}
}

// WithCredentials attaches src's credential as a bearer token to every request.
func WithCredentials(src CredentialSource) Option {
	return func(c *Client) {
		c.credentials = src
	}
}

// WithInvalidator receives every credential the server answers with 401.
func WithInvalidator(inv Invalidator) Option {
	return func(c *Client) {
		c.invalidator = inv
	}
}

func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		if d > 0 {
			c.timeout = d
		}
	}
}

// WithCache caches GET responses for ttl. Any successful mutation purges the cache.
func WithCache(size int, ttl time.Duration) Option {
	return func(c *Client) {
		if size > 0 {
			c.cache = expirable.NewLRU[string, []byte](size, nil, ttl)
		}
	}
}

// New creates a client for the API rooted at baseURL, e.g. http://localhost:8080/api.
func New(baseURL string, options ...Option) *Client {
	c := &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{},
		timeout:    defaultTimeout,
	}
	for _, opt := range options {
		opt(c)
	}

	base := c.httpClient.Transport
	if base == nil {
		base = http.DefaultTransport
	}
	hc := *c.httpClient
	hc.Transport = &bearerTransport{base: base, credentials: c.credentials, invalidator: c.invalidator}
	hc.Timeout = c.timeout
	c.httpClient = &hc
	return c
}

func (c *Client) BaseURL() string {
	return c.baseURL
}

// Purge drops all cached responses.
func (c *Client) Purge() {
	if c.cache != nil {
		c.cache.Purge()
	}
}

// Do sends body as JSON and decodes the response into out. Either may be nil.
func (c *Client) Do(ctx context.Context, method, path string, body, out any) error {
	url := c.baseURL + path
	cacheKey := method + " " + url
	cacheable := method == http.MethodGet && c.cache != nil

	if cacheable {
		if data, ok := c.cache.Get(cacheKey); ok {
			log.Debug().Str("method", method).Str("path", path).Msg("apiclient: cache hit")
			return decode(data, out)
		}
	}

	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return errors.Wrapf(err, "[%s %s] failed to encode request", method, path)
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, reader)
	if err != nil {
		return errors.Wrapf(err, "[%s %s] failed to build request", method, path)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	requestID := uuid.NewString()
	req.Header.Set(headerRequestID, requestID)

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		log.Debug().Err(err).Str("method", method).Str("path", path).Str("request_id", requestID).Msg("apiclient: request failed")
		return newNetworkError(method, path, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return newNetworkError(method, path, err)
	}

	logEvent := log.Debug()
	if resp.StatusCode >= http.StatusBadRequest {
		logEvent = log.Warn()
	}
	logEvent.Str("method", method).Str("path", path).Int("status", resp.StatusCode).
		Str("request_id", requestID).Dur("elapsed", time.Since(start)).Msg("apiclient: response")

	if resp.StatusCode >= http.StatusMultipleChoices {
		if resp.StatusCode == http.StatusUnauthorized {
			c.Purge()
		}
		return newStatusError(method, path, resp.StatusCode, data)
	}

	switch {
	case cacheable:
		c.cache.Add(cacheKey, data)
	case method != http.MethodGet:
		c.Purge()
	}
	return decode(data, out)
}

func decode(data []byte, out any) error {
	if out == nil || len(bytes.TrimSpace(data)) == 0 {
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return colterrors.Wrapf(colterrors.ErrInvalidResponse, "decode response: %v", err)
	}
	return nil
}

func doJSON[T any](ctx context.Context, c *Client, method, path string, body any) (T, error) {
	var out T
	err := c.Do(ctx, method, path, body, &out)
	return out, err
}

func Get[T any](ctx context.Context, c *Client, path string) (T, error) {
	return doJSON[T](ctx, c, http.MethodGet, path, nil)
}

func Post[T any](ctx context.Context, c *Client, path string, body any) (T, error) {
	return doJSON[T](ctx, c, http.MethodPost, path, body)
}

func Put[T any](ctx context.Context, c *Client, path string, body any) (T, error) {
	return doJSON[T](ctx, c, http.MethodPut, path, body)
}

func Patch[T any](ctx context.Context, c *Client, path string, body any) (T, error) {
	return doJSON[T](ctx, c, http.MethodPatch, path, body)
}

func Delete(ctx context.Context, c *Client, path string) error {
	return c.Do(ctx, http.MethodDelete, path, nil, nil)
}
