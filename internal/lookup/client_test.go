package lookup_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"pokesearch/internal/catalog"
	"pokesearch/internal/lookup"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newFixtureServer(t *testing.T) *httptest.Server {
	t.Helper()
	cat, err := catalog.NewDefaultCatalog()
	require.NoError(t, err)
	srv := httptest.NewServer(catalog.NewHandler(cat))
	t.Cleanup(srv.Close)
	return srv
}

func newStubServer(t *testing.T, h http.HandlerFunc) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)
	return srv
}

func newTestClient(t *testing.T, baseURL string) *lookup.Client {
	t.Helper()
	c, err := lookup.NewClient(lookup.Options{BaseURL: baseURL, Timeout: time.Second})
	require.NoError(t, err)
	return c
}

func TestNewClient(t *testing.T) {
	t.Run("rejects empty base URL", func(t *testing.T) {
		_, err := lookup.NewClient(lookup.Options{})

		assert.ErrorIs(t, err, lookup.ErrInvalidBaseURL)
	})

	t.Run("rejects relative base URL", func(t *testing.T) {
		_, err := lookup.NewClient(lookup.Options{BaseURL: "/api"})

		assert.ErrorIs(t, err, lookup.ErrInvalidBaseURL)
	})

	t.Run("rejects non-http scheme", func(t *testing.T) {
		_, err := lookup.NewClient(lookup.Options{BaseURL: "ftp://catalog.local"})

		assert.ErrorIs(t, err, lookup.ErrInvalidBaseURL)
	})
}

func TestClient_Endpoint(t *testing.T) {
	t.Run("joins base URL and escaped name", func(t *testing.T) {
		c := newTestClient(t, "https://catalog.local:7064/")

		assert.Equal(t, "https://catalog.local:7064/api/Pokemon/name/mr.%20mime", c.Endpoint("mr. mime"))
	})

	t.Run("escapes path separators", func(t *testing.T) {
		c := newTestClient(t, "http://catalog.local")

		assert.Equal(t, "http://catalog.local/api/Pokemon/name/a%2Fb", c.Endpoint("a/b"))
	})
}

func TestClient_FetchByName(t *testing.T) {
	ctx := context.Background()

	t.Run("returns entry from the catalog", func(t *testing.T) {
		c := newTestClient(t, newFixtureServer(t).URL)

		got, err := c.FetchByName(ctx, "pikachu")

		require.NoError(t, err)
		assert.Equal(t, lookup.Result{ID: 25, Name: "Pikachu", PrimaryType: "Electric", Generation: "1"}, got)
		assert.False(t, got.DualTyped())
	})

	t.Run("returns dual-typed entry", func(t *testing.T) {
		c := newTestClient(t, newFixtureServer(t).URL)

		got, err := c.FetchByName(ctx, "charizard")

		require.NoError(t, err)
		assert.Equal(t, "Flying", got.SecondaryType)
		assert.True(t, got.DualTyped())
	})

	t.Run("sends a single GET accepting JSON", func(t *testing.T) {
		var calls int
		srv := newStubServer(t, func(w http.ResponseWriter, r *http.Request) {
			calls++
			assert.Equal(t, http.MethodGet, r.Method)
			assert.Equal(t, "application/json", r.Header.Get("Accept"))
			assert.Equal(t, "/api/Pokemon/name/eevee", r.URL.Path)
			w.WriteHeader(http.StatusInternalServerError)
		})
		c := newTestClient(t, srv.URL)

		_, err := c.FetchByName(ctx, "eevee")

		require.Error(t, err)
		assert.Equal(t, 1, calls, "no retries")
	})

	t.Run("404 is ErrNotFound", func(t *testing.T) {
		c := newTestClient(t, newFixtureServer(t).URL)

		_, err := c.FetchByName(ctx, "missingno")

		assert.ErrorIs(t, err, lookup.ErrNotFound)
	})

	t.Run("empty 2xx body is ErrNotFound", func(t *testing.T) {
		srv := newStubServer(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNoContent)
		})
		c := newTestClient(t, srv.URL)

		_, err := c.FetchByName(ctx, "pikachu")

		assert.ErrorIs(t, err, lookup.ErrNotFound)
	})

	t.Run("null 2xx body is ErrNotFound", func(t *testing.T) {
		srv := newStubServer(t, func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(" null\n"))
		})
		c := newTestClient(t, srv.URL)

		_, err := c.FetchByName(ctx, "pikachu")

		assert.ErrorIs(t, err, lookup.ErrNotFound)
	})

	t.Run("other non-2xx is ProtocolError with status text", func(t *testing.T) {
		srv := newStubServer(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusServiceUnavailable)
		})
		c := newTestClient(t, srv.URL)

		_, err := c.FetchByName(ctx, "pikachu")

		var protoErr *lookup.ProtocolError
		require.ErrorAs(t, err, &protoErr)
		assert.Equal(t, http.StatusServiceUnavailable, protoErr.StatusCode)
		assert.Equal(t, "Server returned 503: Service Unavailable", err.Error())
	})

	t.Run("malformed body is ProtocolError", func(t *testing.T) {
		srv := newStubServer(t, func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte("<html>oops</html>"))
		})
		c := newTestClient(t, srv.URL)

		_, err := c.FetchByName(ctx, "pikachu")

		var protoErr *lookup.ProtocolError
		require.ErrorAs(t, err, &protoErr)
		assert.True(t, strings.HasPrefix(err.Error(), "malformed response body"))
	})

	t.Run("body missing name is ProtocolError", func(t *testing.T) {
		srv := newStubServer(t, func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"id": 25, "type": "Electric"}`))
		})
		c := newTestClient(t, srv.URL)

		_, err := c.FetchByName(ctx, "pikachu")

		var protoErr *lookup.ProtocolError
		require.ErrorAs(t, err, &protoErr)
		assert.Contains(t, err.Error(), "incomplete response body")
	})

	t.Run("oversized body is ProtocolError", func(t *testing.T) {
		srv := newStubServer(t, func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"name":"` + strings.Repeat("a", 2<<20) + `"}`))
		})
		c := newTestClient(t, srv.URL)

		_, err := c.FetchByName(ctx, "pikachu")

		var protoErr *lookup.ProtocolError
		require.ErrorAs(t, err, &protoErr)
		assert.Contains(t, err.Error(), "exceeds")
	})

	t.Run("refused connection is TransportError", func(t *testing.T) {
		srv := httptest.NewServer(http.NotFoundHandler())
		url := srv.URL
		srv.Close()
		c := newTestClient(t, url)

		_, err := c.FetchByName(ctx, "pikachu")

		var transportErr *lookup.TransportError
		require.ErrorAs(t, err, &transportErr)
		assert.NotErrorIs(t, err, lookup.ErrNotFound)
	})

	t.Run("timeout is TransportError", func(t *testing.T) {
		srv := newStubServer(t, func(w http.ResponseWriter, r *http.Request) {
			select {
			case <-r.Context().Done():
			case <-time.After(2 * time.Second):
			}
		})
		c, err := lookup.NewClient(lookup.Options{BaseURL: srv.URL, Timeout: 50 * time.Millisecond})
		require.NoError(t, err)

		_, err = c.FetchByName(ctx, "pikachu")

		var transportErr *lookup.TransportError
		require.ErrorAs(t, err, &transportErr)
	})

	t.Run("cancelled context is TransportError", func(t *testing.T) {
		c := newTestClient(t, newFixtureServer(t).URL)
		cancelled, cancel := context.WithCancel(ctx)
		cancel()

		_, err := c.FetchByName(cancelled, "pikachu")

		var transportErr *lookup.TransportError
		require.ErrorAs(t, err, &transportErr)
		assert.True(t, errors.Is(err, context.Canceled))
	})
}

func TestClient_RateLimit(t *testing.T) {
	c, err := lookup.NewClient(lookup.Options{
		BaseURL:   newFixtureServer(t).URL,
		Timeout:   time.Second,
		RateLimit: 20,
	})
	require.NoError(t, err)

	start := time.Now()
	for i := 0; i < 3; i++ {
		_, err := c.FetchByName(context.Background(), "pikachu")
		require.NoError(t, err)
	}

	assert.GreaterOrEqual(t, time.Since(start), 90*time.Millisecond)
}
