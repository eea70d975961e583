// Package api is the LeadNest backend client.
//
// Every request goes through a single choke point that attaches the
// bearer token, stamps a request id, and translates failures into the
// package's error types: APIError for non-2xx responses, NetworkError
// when no response arrived at all.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/useleadnest/leadnest-cli/internal/log"
)

// maxErrorBody caps how much of an error response is read off the wire.
const maxErrorBody = 64 * 1024

// TokenSource yields the current session token, or "" when there is
// no live session. Satisfied by the session manager.
type TokenSource interface {
	Token() string
}

// Client is the LeadNest API client.
//
// A 401 response is reported like any other APIError; the client
// never drops the session on its own. Logout is an explicit user
// action, not a transport side effect.
type Client struct {
	baseURL    string
	httpClient *http.Client
	tokens     TokenSource
	logger     *log.Logger
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the underlying HTTP client, for tests.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

// WithTokenSource sets where bearer tokens come from.
func WithTokenSource(ts TokenSource) Option {
	return func(c *Client) { c.tokens = ts }
}

// WithLogger sets the logger.
func WithLogger(l *log.Logger) Option {
	return func(c *Client) { c.logger = l }
}

// NewClient creates a client for the backend at baseURL. A missing
// base URL is a misconfiguration and fails here, loudly, rather than
// producing requests against a guessed host.
func NewClient(baseURL string, opts ...Option) (*Client, error) {
	if baseURL == "" {
		return nil, fmt.Errorf("API base URL is not configured")
	}

	c := &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		logger: log.DefaultLogger(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// BaseURL returns the configured backend base URL.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// get performs a GET request and decodes the JSON response into target.
func (c *Client) get(ctx context.Context, path string, target interface{}) error {
	return c.do(ctx, http.MethodGet, path, nil, target)
}

// post performs a POST request with a JSON body and decodes the JSON
// response into target.
func (c *Client) post(ctx context.Context, path string, body, target interface{}) error {
	return c.do(ctx, http.MethodPost, path, body, target)
}

func (c *Client) do(ctx context.Context, method, path string, body, target interface{}) error {
	var reqBody io.Reader
	if body != nil {
		jsonBody, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to marshal request body: %w", err)
		}
		reqBody = bytes.NewBuffer(jsonBody)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	return c.send(req, target)
}

// upload performs a multipart POST with a single file field and
// decodes the JSON response into target.
func (c *Client) upload(ctx context.Context, path, field, filename string, file io.Reader, target interface{}) error {
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)

	part, err := writer.CreateFormFile(field, filename)
	if err != nil {
		return fmt.Errorf("failed to create multipart field: %w", err)
	}
	if _, err := io.Copy(part, file); err != nil {
		return fmt.Errorf("failed to read upload file: %w", err)
	}
	if err := writer.Close(); err != nil {
		return fmt.Errorf("failed to finalize multipart body: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, &buf)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())

	return c.send(req, target)
}

// send attaches the ambient headers, performs the request, and
// translates the outcome.
func (c *Client) send(req *http.Request, target interface{}) error {
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-ID", uuid.NewString())

	if c.tokens != nil {
		if tok := c.tokens.Token(); tok != "" {
			req.Header.Set("Authorization", "Bearer "+tok)
		}
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.With("method", req.Method, "url", req.URL.String()).
			WithError(err).Debug("request failed")
		return &NetworkError{URL: req.URL.String(), Cause: err}
	}
	defer resp.Body.Close()

	c.logger.With("method", req.Method, "url", req.URL.String(), "status", resp.StatusCode).
		Debug("request completed")

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return c.readError(resp)
	}

	if target != nil {
		if err := json.NewDecoder(resp.Body).Decode(target); err != nil {
			return fmt.Errorf("failed to decode response from %s: %w", req.URL.String(), err)
		}
	}
	return nil
}

// errorResponse is the JSON error shape the backend uses.
type errorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

func (c *Client) readError(resp *http.Response) *APIError {
	body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))

	message := ""
	var errResp errorResponse
	if err := json.Unmarshal(body, &errResp); err == nil {
		switch {
		case errResp.Error != "":
			message = errResp.Error
		case errResp.Message != "":
			message = errResp.Message
		}
	}

	return NewAPIError(resp.StatusCode, message, string(body))
}
