// Package hubapi implements the HTTP client for the ResourceHub backend REST
// API. All resource endpoints live under /api/v1 and speak JSON. Failed
// requests surface as FetchError; the caller decides how to present them.
package hubapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	hberrors "github.com/resourcehub/hubctl/internal/errors"
	"github.com/resourcehub/hubctl/internal/logging"
)

// APIPrefix is the base path of every resource endpoint.
const APIPrefix = "/api/v1"

// TokenFunc supplies the bearer token for a request. An empty string means
// the request goes out unauthenticated.
type TokenFunc func() string

// Client is the HTTP client shared by all resource endpoints.
type Client struct {
	baseURL string
	http    *http.Client
	token   TokenFunc
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the underlying HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.http = hc }
}

// WithToken sets the bearer token source.
func WithToken(fn TokenFunc) Option {
	return func(c *Client) { c.token = fn }
}

// WithTimeout sets the per-request timeout.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) { c.http.Timeout = d }
}

// NewClient creates a client for the backend at baseURL.
func NewClient(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: 15 * time.Second},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// BaseURL returns the configured server address.
func (c *Client) BaseURL() string { return c.baseURL }

type errorBody struct {
	Message string `json:"message"`
	Error   string `json:"error"`
}

// do issues one request and decodes the JSON response into out when out is
// non-nil. Non-2xx statuses and transport failures return a *FetchError.
func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return &hberrors.FetchError{Path: path, Message: "encode request body", Err: err}
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return &hberrors.FetchError{Path: path, Message: "build request", Err: err}
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-ID", uuid.NewString())
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.token != nil {
		if token := c.token(); token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
		}
	}

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		logging.Error("request failed", "method", method, "path", path, "error", err)
		return &hberrors.FetchError{Path: path, Message: "request failed", Err: err}
	}
	defer resp.Body.Close()

	logging.Debug("request completed",
		"method", method, "path", path,
		"status", resp.StatusCode, "duration_ms", time.Since(start).Milliseconds())

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &hberrors.FetchError{
			Status:  resp.StatusCode,
			Path:    path,
			Message: readErrorMessage(resp),
		}
	}
	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return &hberrors.FetchError{Status: resp.StatusCode, Path: path, Message: "decode response", Err: err}
	}
	return nil
}

func readErrorMessage(resp *http.Response) string {
	data, err := io.ReadAll(io.LimitReader(resp.Body, 4096))
	if err != nil || len(data) == 0 {
		return http.StatusText(resp.StatusCode)
	}
	var body errorBody
	if err := json.Unmarshal(data, &body); err == nil {
		if body.Message != "" {
			return body.Message
		}
		if body.Error != "" {
			return body.Error
		}
	}
	return http.StatusText(resp.StatusCode)
}

// Ping checks backend reachability.
func (c *Client) Ping(ctx context.Context) error {
	return c.do(ctx, http.MethodGet, APIPrefix+"/health", nil, nil)
}

// LoginRequest carries the credentials sent to the login endpoint.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginResponse carries the issued bearer token.
type LoginResponse struct {
	Token     string `json:"token"`
	ExpiresAt string `json:"expiresAt,omitempty"`
}

// Login exchanges credentials for a bearer token.
func (c *Client) Login(ctx context.Context, email, password string) (LoginResponse, error) {
	var resp LoginResponse
	err := c.do(ctx, http.MethodPost, APIPrefix+"/auth/login", LoginRequest{Email: email, Password: password}, &resp)
	if err != nil {
		return LoginResponse{}, err
	}
	if resp.Token == "" {
		return LoginResponse{}, &hberrors.FetchError{Path: APIPrefix + "/auth/login", Message: "empty token in response"}
	}
	return resp, nil
}

// Resource is a typed endpoint for one collection under /api/v1. It satisfies
// the remote interface of the mutation coordinator.
type Resource[T any] struct {
	client *Client
	name   string
}

// NewResource creates the endpoint for the named collection, such as
// "profiles" or "projects".
func NewResource[T any](client *Client, name string) *Resource[T] {
	return &Resource[T]{client: client, name: name}
}

// Name returns the collection name of the endpoint.
func (r *Resource[T]) Name() string { return r.name }

func (r *Resource[T]) path(id string) string {
	if id == "" {
		return fmt.Sprintf("%s/%s", APIPrefix, r.name)
	}
	return fmt.Sprintf("%s/%s/%s", APIPrefix, r.name, id)
}

// List fetches the full collection.
func (r *Resource[T]) List(ctx context.Context) ([]T, error) {
	var items []T
	if err := r.client.do(ctx, http.MethodGet, r.path(""), nil, &items); err != nil {
		return nil, err
	}
	return items, nil
}

// Get fetches a single record by id.
func (r *Resource[T]) Get(ctx context.Context, id string) (T, error) {
	var item T
	if err := r.client.do(ctx, http.MethodGet, r.path(id), nil, &item); err != nil {
		var zero T
		return zero, err
	}
	return item, nil
}

// Create posts a new record and returns the server's copy, ids assigned.
func (r *Resource[T]) Create(ctx context.Context, rec T) (T, error) {
	var created T
	if err := r.client.do(ctx, http.MethodPost, r.path(""), rec, &created); err != nil {
		var zero T
		return zero, err
	}
	return created, nil
}

// Update puts a record and returns the server's confirmed copy.
func (r *Resource[T]) Update(ctx context.Context, id string, rec T) (T, error) {
	var updated T
	if err := r.client.do(ctx, http.MethodPut, r.path(id), rec, &updated); err != nil {
		var zero T
		return zero, err
	}
	return updated, nil
}

// Delete removes a record by id.
func (r *Resource[T]) Delete(ctx context.Context, id string) error {
	return r.client.do(ctx, http.MethodDelete, r.path(id), nil, nil)
}
