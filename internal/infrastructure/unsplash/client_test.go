package unsplash

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/avolkov/storefront-service/internal/config"
	"github.com/avolkov/storefront-service/internal/domain/errors"
	"github.com/avolkov/storefront-service/internal/pkg/logger"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) (*Client, *httptest.Server, *int) {
	t.Helper()
	requests := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests++
		handler(w, r)
	}))
	t.Cleanup(server.Close)

	client, err := NewClient(config.UnsplashConfig{
		BaseURL:        server.URL,
		AccessKey:      "test-key",
		TimeoutSeconds: 5,
		CacheSize:      16,
	}, logger.NewLoggerWithOutput(io.Discard))
	require.NoError(t, err)
	return client, server, &requests
}

func TestLookupImageReturnsFirstResult(t *testing.T) {
	client, _, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/search/photos", r.URL.Path)
		assert.Equal(t, "widget", r.URL.Query().Get("query"))
		assert.Equal(t, "1", r.URL.Query().Get("per_page"))
		assert.Equal(t, "Client-ID test-key", r.Header.Get("Authorization"))
		assert.Equal(t, "v1", r.Header.Get("Accept-Version"))
		w.Write([]byte(`{"results":[{"urls":{"regular":"https://images.example/widget.jpg"}}]}`))
	})

	url, err := client.LookupImage(context.Background(), "widget")

	require.NoError(t, err)
	assert.Equal(t, "https://images.example/widget.jpg", url)
}

func TestLookupImageCachesByNormalizedQuery(t *testing.T) {
	client, _, requests := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"results":[{"urls":{"regular":"https://images.example/widget.jpg"}}]}`))
	})

	first, err := client.LookupImage(context.Background(), "Widget")
	require.NoError(t, err)
	second, err := client.LookupImage(context.Background(), "  widget ")
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, 1, *requests)
}

func TestLookupImageNoResults(t *testing.T) {
	client, _, requests := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"results":[]}`))
	})

	url, err := client.LookupImage(context.Background(), "nothing")
	require.NoError(t, err)
	assert.Empty(t, url)

	// The empty outcome is cached too.
	_, err = client.LookupImage(context.Background(), "nothing")
	require.NoError(t, err)
	assert.Equal(t, 1, *requests)
}

func TestLookupImageErrorPayload(t *testing.T) {
	client, _, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"errors":["OAuth error: The access token is invalid"]}`))
	})

	_, err := client.LookupImage(context.Background(), "widget")

	var remote *errors.RemoteError
	require.ErrorAs(t, err, &remote)
	assert.Equal(t, "OAuth error: The access token is invalid", remote.UserMessage())
}

func TestLookupImageUndecodableError(t *testing.T) {
	client, _, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte(`<html>gateway error</html>`))
	})

	_, err := client.LookupImage(context.Background(), "widget")

	var remote *errors.RemoteError
	require.ErrorAs(t, err, &remote)
	assert.Equal(t, errors.GenericDecodeMessage, remote.UserMessage())
}
