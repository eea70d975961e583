package api

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// staticTokens yields a fixed token.
type staticTokens string

func (s staticTokens) Token() string { return string(s) }

func TestNewClientRequiresBaseURL(t *testing.T) {
	_, err := NewClient("")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "base URL")
}

func TestBearerAttachedOnlyWithToken(t *testing.T) {
	var gotAuth string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.Write([]byte(`{}`))
	}))
	defer server.Close()

	// With a token.
	client, err := NewClient(server.URL, WithTokenSource(staticTokens("tok-123")))
	require.NoError(t, err)
	require.NoError(t, client.get(context.Background(), "/leads", nil))
	assert.Equal(t, "Bearer tok-123", gotAuth)

	// Without one: no Authorization header at all.
	client, err = NewClient(server.URL, WithTokenSource(staticTokens("")))
	require.NoError(t, err)
	require.NoError(t, client.get(context.Background(), "/leads", nil))
	assert.Empty(t, gotAuth)
}

func TestRequestIDStamped(t *testing.T) {
	seen := map[string]bool{}
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get("X-Request-ID")
		assert.NotEmpty(t, id)
		seen[id] = true
		w.Write([]byte(`{}`))
	}))
	defer server.Close()

	client, err := NewClient(server.URL)
	require.NoError(t, err)
	require.NoError(t, client.get(context.Background(), "/healthz", nil))
	require.NoError(t, client.get(context.Background(), "/healthz", nil))

	assert.Len(t, seen, 2, "each request gets its own id")
}

func TestAPIErrorFromPlainBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte("unauthorized"))
	}))
	defer server.Close()

	client, err := NewClient(server.URL)
	require.NoError(t, err)

	err = client.get(context.Background(), "/leads", nil)
	require.Error(t, err)

	apiErr, ok := err.(*APIError)
	require.True(t, ok, "expected *APIError, got %T", err)
	assert.Equal(t, 401, apiErr.Status)
	assert.Equal(t, "Unauthorized", apiErr.StatusText)
	assert.Equal(t, "unauthorized", apiErr.BodyExcerpt)
	assert.Equal(t, 401, apiErr.HTTPStatus())
}

func TestAPIErrorParsesJSONMessage(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
		w.Write([]byte(`{"error": "email already registered"}`))
	}))
	defer server.Close()

	client, err := NewClient(server.URL)
	require.NoError(t, err)

	err = client.post(context.Background(), "/auth/register", map[string]string{}, nil)
	apiErr, ok := err.(*APIError)
	require.True(t, ok)
	assert.Equal(t, "email already registered", apiErr.Message)
	assert.Contains(t, apiErr.Error(), "email already registered")
}

func TestAPIErrorExcerptCapped(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte(strings.Repeat("x", 5000)))
	}))
	defer server.Close()

	client, err := NewClient(server.URL)
	require.NoError(t, err)

	err = client.get(context.Background(), "/leads", nil)
	apiErr, ok := err.(*APIError)
	require.True(t, ok)
	assert.Len(t, apiErr.BodyExcerpt, maxBodyExcerpt)
}

func TestNetworkFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close() // nothing listening anymore

	client, err := NewClient(server.URL)
	require.NoError(t, err)

	err = client.get(context.Background(), "/leads", nil)
	require.Error(t, err)

	netErr, ok := err.(*NetworkError)
	require.True(t, ok, "expected *NetworkError, got %T", err)
	assert.Contains(t, netErr.URL, "/leads")
	assert.Error(t, netErr.Unwrap())
}

func TestIsStatus(t *testing.T) {
	assert.True(t, IsStatus(NewAPIError(404, "", ""), 404))
	assert.False(t, IsStatus(NewAPIError(404, "", ""), 401))
	assert.False(t, IsStatus(assert.AnError, 404))
}
