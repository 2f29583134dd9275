package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/dmitrijs2005/rentaltracker/internal/logging"
	"github.com/google/uuid"
)

// BasePath is prefixed to every endpoint.
const BasePath = "/api/v1"

// RequestIDHeader carries a per-call id that also appears in the logs.
const RequestIDHeader = "X-Request-ID"

// TokenStore persists the bearer token between runs.
type TokenStore interface {
	LoadToken(ctx context.Context) (string, error)
	SaveToken(ctx context.Context, token string) error
	ClearToken(ctx context.Context) error
}

type Client struct {
	baseURL    string
	httpClient *http.Client
	store      TokenStore
	logger     logging.Logger
	timeout    time.Duration
	headers    http.Header

	mu    sync.RWMutex
	token string
}

type Option func(*Client)

func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

func WithLogger(l logging.Logger) Option {
	return func(c *Client) { c.logger = l }
}

// WithTimeout bounds every request. Zero (the default) leaves only the
// transport's own limits in place.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) { c.timeout = d }
}

// WithHeader adds a header to every request. It may override Content-Type.
func WithHeader(key, value string) Option {
	return func(c *Client) {
		if c.headers == nil {
			c.headers = http.Header{}
		}
		c.headers.Add(key, value)
	}
}

// New builds a Client for serverURL (e.g. "http://127.0.0.1:8080") and loads
// any previously stored token. A nil store keeps the token in memory only.
func New(ctx context.Context, serverURL string, store TokenStore, opts ...Option) (*Client, error) {
	c := &Client{
		baseURL:    strings.TrimRight(serverURL, "/") + BasePath,
		httpClient: &http.Client{},
		store:      store,
		logger:     logging.Discard(),
	}
	for _, o := range opts {
		o(c)
	}

	if store != nil {
		token, err := store.LoadToken(ctx)
		if err != nil {
			return nil, fmt.Errorf("load token: %w", err)
		}
		c.token = token
	}

	return c, nil
}

// Token returns the current bearer token, "" when logged out.
func (c *Client) Token() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.token
}

// SetToken replaces the current token and persists it. An empty token clears
// the stored one.
func (c *Client) SetToken(ctx context.Context, token string) error {
	c.mu.Lock()
	c.token = token
	c.mu.Unlock()

	if c.store == nil {
		return nil
	}
	if token == "" {
		return c.store.ClearToken(ctx)
	}
	return c.store.SaveToken(ctx, token)
}

// request describes one backend call.
type request struct {
	method   string
	endpoint string
	body     any
}

// do issues r and decodes the JSON response into out (which may be nil).
func (c *Client) do(ctx context.Context, r request, out any) error {
	requestID := uuid.NewString()
	log := c.logger.With("method", r.method, "endpoint", r.endpoint, "request_id", requestID)

	err := c.send(ctx, r, requestID, out)
	if err != nil {
		log.Error(ctx, "api request failed", "error", err)
	}
	return err
}

func (c *Client) send(ctx context.Context, r request, requestID string, out any) error {
	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	var body io.Reader
	if r.body != nil {
		b, err := json.Marshal(r.body)
		if err != nil {
			return fmt.Errorf("encode request body: %w", err)
		}
		body = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, r.method, c.baseURL+r.endpoint, body)
	if err != nil {
		return err
	}

	req.Header.Set("Content-Type", "application/json")
	mergeHeaders(req.Header, c.headers)
	if token := c.Token(); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	req.Header.Set(RequestIDHeader, requestID)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read response body: %w", err)
	}

	var payload json.RawMessage
	if err := json.Unmarshal(data, &payload); err != nil {
		return fmt.Errorf("decode response (status %d): %w", resp.StatusCode, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var errBody struct {
			Error string `json:"error"`
		}
		_ = json.Unmarshal(payload, &errBody)
		return newRequestError(resp.StatusCode, errBody.Error)
	}

	if out == nil {
		return nil
	}
	if err := json.Unmarshal(payload, out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

// mergeHeaders copies src into dst, replacing keys dst already has.
func mergeHeaders(dst, src http.Header) {
	for k, vs := range src {
		dst.Del(k)
		for _, v := range vs {
			dst.Add(k, v)
		}
	}
}
