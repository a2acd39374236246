package strapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/rs/zerolog"

	"github.com/ibraschwan/karagul/internal/api/metrics"
	"github.com/ibraschwan/karagul/internal/core/domain"
	"github.com/ibraschwan/karagul/internal/core/ports"
)

const apiPrefix = "/api"

// TokenSource yields the bearer credential for an outgoing request, or ""
// to send it unauthenticated. A ports.SessionStore satisfies it directly.
type TokenSource interface {
	Token(ctx context.Context) string
}

// TokenFunc adapts a plain function to a TokenSource.
type TokenFunc func(ctx context.Context) string

func (f TokenFunc) Token(ctx context.Context) string { return f(ctx) }

// Client is the single HTTP client for the content backend. Every request
// goes out with Content-Type: application/json and, when the token source
// yields one, an Authorization bearer header. The client does not retry,
// cache, or deduplicate: each call fails or succeeds on its own.
type Client struct {
	baseURL string
	http    *http.Client
	tokens  TokenSource
	log     zerolog.Logger

	Auth       *AuthService
	Businesses *BusinessService
	Categories *CategoryService
	Contacts   *ContactService
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the underlying HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.http = hc }
}

// WithTokenSource installs the request-time credential hook.
func WithTokenSource(ts TokenSource) Option {
	return func(c *Client) { c.tokens = ts }
}

// WithLogger attaches a logger for request-level debug output.
func WithLogger(log zerolog.Logger) Option {
	return func(c *Client) { c.log = log }
}

// New builds a client for the backend at baseURL (host only, without the
// /api prefix), e.g. "http://localhost:1337".
func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/") + apiPrefix,
		http:    &http.Client{},
		log:     zerolog.Nop(),
	}
	for _, o := range opts {
		o(c)
	}
	c.Auth = &AuthService{c: c}
	c.Businesses = &BusinessService{c: c}
	c.Categories = &CategoryService{c: c}
	c.Contacts = &ContactService{c: c}
	return c
}

type errorEnvelope struct {
	Error domain.BackendError `json:"error"`
}

type meta struct {
	Pagination *ports.PageInfo `json:"pagination"`
}

type listEnvelope[T any] struct {
	Data []T  `json:"data"`
	Meta meta `json:"meta"`
}

type singleEnvelope[T any] struct {
	Data *T `json:"data"`
}

// do executes one request against the backend and decodes the JSON response
// into result. Non-2xx responses become *domain.BackendError.
func (c *Client) do(ctx context.Context, method, path, query string, body, result any) error {
	u := c.baseURL + path
	if query != "" {
		u += "?" + query
	}

	var rdr io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("marshal request: %w", err)
		}
		rdr = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, u, rdr)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if c.tokens != nil {
		if tok := c.tokens.Token(ctx); tok != "" {
			req.Header.Set("Authorization", "Bearer "+tok)
		}
	}

	resource := resourceLabel(path)
	timer := metrics.BackendRequestTimer(resource)
	resp, err := c.http.Do(req)
	timer.ObserveDuration()
	if err != nil {
		metrics.BackendRequestsTotal.WithLabelValues(resource, method, "transport_error").Inc()
		return fmt.Errorf("backend request: %w", err)
	}
	defer resp.Body.Close()
	metrics.BackendRequestsTotal.WithLabelValues(resource, method, strconv.Itoa(resp.StatusCode)).Inc()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read response: %w", err)
	}

	c.log.Debug().
		Str("method", method).
		Str("path", path).
		Int("status", resp.StatusCode).
		Msg("backend call")

	if resp.StatusCode >= 400 {
		return decodeBackendError(resp.StatusCode, data)
	}

	if result != nil && len(data) > 0 {
		if err := json.Unmarshal(data, result); err != nil {
			return fmt.Errorf("decode response: %w", err)
		}
	}
	return nil
}

func (c *Client) get(ctx context.Context, path string, q ports.Query, result any) error {
	return c.do(ctx, http.MethodGet, path, Encode(q), nil, result)
}

// Ping reports whether the backend host answers HTTP at all. Any status code
// counts as reachable; only transport failures are errors.
func (c *Client) Ping(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL, nil)
	if err != nil {
		return err
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("backend unreachable: %w", err)
	}
	resp.Body.Close()
	return nil
}

func decodeBackendError(status int, body []byte) error {
	var env errorEnvelope
	if err := json.Unmarshal(body, &env); err == nil && env.Error.Message != "" {
		if env.Error.Status == 0 {
			env.Error.Status = status
		}
		return &env.Error
	}
	return &domain.BackendError{Status: status, Name: http.StatusText(status), Message: "unexpected backend response"}
}

// resourceLabel keeps the metrics cardinality bounded: the first path
// segment, without ids.
func resourceLabel(path string) string {
	p := strings.TrimPrefix(path, "/")
	if i := strings.IndexByte(p, '/'); i >= 0 {
		p = p[:i]
	}
	return p
}

// getList fetches a collection endpoint and unwraps the {data, meta} envelope.
func getList[T any](ctx context.Context, c *Client, path string, q ports.Query) ([]T, *ports.PageInfo, error) {
	var env listEnvelope[T]
	if err := c.get(ctx, path, q, &env); err != nil {
		return nil, nil, err
	}
	return env.Data, env.Meta.Pagination, nil
}

// getOne fetches a single-entity endpoint and unwraps the {data} envelope.
func getOne[T any](ctx context.Context, c *Client, path string, q ports.Query) (*T, error) {
	var env singleEnvelope[T]
	if err := c.get(ctx, path, q, &env); err != nil {
		return nil, err
	}
	return env.Data, nil
}

// write sends a mutation; the backend expects payloads wrapped as {"data": …}.
func write[T any](ctx context.Context, c *Client, method, path string, payload any) (*T, error) {
	var env singleEnvelope[T]
	body := map[string]any{"data": payload}
	if err := c.do(ctx, method, path, "", body, &env); err != nil {
		return nil, err
	}
	return env.Data, nil
}
