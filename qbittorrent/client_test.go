package qbittorrent

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewClient(t *testing.T) {
	logger := zerolog.Nop()

	tests := []struct {
		name    string
		baseURL string
		wantErr bool
		errMsg  string
	}{
		{
			name:    "valid config",
			baseURL: "http://localhost:8080",
			wantErr: false,
		},
		{
			name:    "trailing slash trimmed",
			baseURL: "http://localhost:8080/",
			wantErr: false,
		},
		{
			name:    "missing URL",
			baseURL: "",
			wantErr: true,
			errMsg:  "URL is required",
		},
		{
			name:    "missing scheme",
			baseURL: "localhost:8080/qbt",
			wantErr: true,
			errMsg:  "scheme and host",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client, err := NewClient(tt.baseURL, logger)
			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errMsg)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, "http://localhost:8080", client.BaseURL())
			assert.Equal(t, "http://localhost:8080", client.origin)
			assert.False(t, client.LoggedIn())
		})
	}
}

func TestClientOptions(t *testing.T) {
	logger := zerolog.Nop()

	t.Run("with timeout", func(t *testing.T) {
		client, err := NewClient("http://localhost:8080", logger, WithTimeout(5*time.Second))
		require.NoError(t, err)
		assert.Equal(t, 5*time.Second, client.httpClient.Timeout)
	})

	t.Run("with custom http client", func(t *testing.T) {
		customClient := &http.Client{Timeout: 10 * time.Second}
		client, err := NewClient("http://localhost:8080", logger, WithHTTPClient(customClient))
		require.NoError(t, err)
		assert.Equal(t, customClient, client.httpClient)
	})

	t.Run("with user agent", func(t *testing.T) {
		client, err := NewClient("http://localhost:8080", logger, WithUserAgent("qbitctl/1.0"))
		require.NoError(t, err)
		assert.Equal(t, "qbitctl/1.0", client.userAgent)
	})
}

func newTestClient(t *testing.T, handler http.Handler) *Client {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	client, err := NewClient(server.URL, zerolog.Nop())
	require.NoError(t, err)
	return client
}

func TestLogin(t *testing.T) {
	t.Run("captures session cookie", func(t *testing.T) {
		client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/api/v2/auth/login", r.URL.Path)
			assert.Equal(t, http.MethodPost, r.Method)

			body, err := io.ReadAll(r.Body)
			require.NoError(t, err)
			assert.Equal(t, "password=adminadmin&username=admin", string(body))

			w.Header().Set("Set-Cookie", "SID=abc123; path=/; HttpOnly")
			w.WriteHeader(http.StatusOK)
		}))

		err := client.Login(context.Background(), "admin", "adminadmin")
		require.NoError(t, err)
		assert.Equal(t, "SID=abc123", client.Cookie())
		assert.True(t, client.LoggedIn())
	})

	t.Run("missing set-cookie header", func(t *testing.T) {
		client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusOK)
		}))

		err := client.Login(context.Background(), "admin", "adminadmin")
		require.ErrorIs(t, err, ErrNoSetCookie)
		assert.False(t, client.LoggedIn())
	})

	t.Run("empty cookie value", func(t *testing.T) {
		client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Set-Cookie", " ; path=/")
			w.WriteHeader(http.StatusOK)
		}))

		err := client.Login(context.Background(), "admin", "adminadmin")
		require.ErrorIs(t, err, ErrNoCookieValue)
		assert.False(t, client.LoggedIn())
	})

	t.Run("banned", func(t *testing.T) {
		client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusForbidden)
		}))

		err := client.Login(context.Background(), "admin", "wrong")
		require.ErrorIs(t, err, ErrBanned)
	})

	t.Run("unexpected status", func(t *testing.T) {
		client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusServiceUnavailable)
		}))

		err := client.Login(context.Background(), "admin", "adminadmin")
		var statusErr *StatusError
		require.ErrorAs(t, err, &statusErr)
		assert.Equal(t, http.StatusServiceUnavailable, statusErr.Code)
	})
}

func TestLogout(t *testing.T) {
	t.Run("clears cookie on success", func(t *testing.T) {
		client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.URL.Path == "/api/v2/auth/login" {
				w.Header().Set("Set-Cookie", "SID=abc123; path=/")
			}
			w.WriteHeader(http.StatusOK)
		}))

		ctx := context.Background()
		require.NoError(t, client.Login(ctx, "admin", "adminadmin"))
		require.True(t, client.LoggedIn())

		require.NoError(t, client.Logout(ctx))
		assert.False(t, client.LoggedIn())
	})

	t.Run("clears cookie on remote failure", func(t *testing.T) {
		client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.URL.Path == "/api/v2/auth/login" {
				w.Header().Set("Set-Cookie", "SID=abc123; path=/")
				w.WriteHeader(http.StatusOK)
				return
			}
			w.WriteHeader(http.StatusInternalServerError)
		}))

		ctx := context.Background()
		require.NoError(t, client.Login(ctx, "admin", "adminadmin"))

		err := client.Logout(ctx)
		require.Error(t, err)
		assert.False(t, client.LoggedIn())
	})
}

func TestRequestHeaders(t *testing.T) {
	var got http.Header
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = r.Header.Clone()
		w.Write([]byte("v4.5.2"))
	}))

	_, err := client.GetVersion(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "no-cache", got.Get("Cache-Control"))
	assert.Equal(t, "no-cache", got.Get("Pragma"))
	assert.Equal(t, "application/x-www-form-urlencoded; charset=utf-8", got.Get("Content-Type"))
	assert.Equal(t, client.origin, got.Get("Origin"))
	// The cookie header is present on every request, empty before login.
	assert.Contains(t, got, "Cookie")
}

func TestMethodPaths(t *testing.T) {
	seen := make(map[string]method)
	for m := method(0); m < methodCount; m++ {
		path := m.path()
		require.NotEmpty(t, path, "method %d has no path", m)
		if prev, ok := seen[path]; ok {
			t.Fatalf("methods %d and %d share path %q", prev, m, path)
		}
		seen[path] = m
	}
}

func TestStatusError(t *testing.T) {
	err := &StatusError{Code: http.StatusForbidden, Body: "Forbidden"}
	assert.Equal(t, "unexpected status code 403", err.Error())
	assert.True(t, err.IsUnauthorized())

	assert.True(t, (&StatusError{Code: 401}).IsUnauthorized())
	assert.False(t, (&StatusError{Code: 500}).IsUnauthorized())

	var target *StatusError
	assert.True(t, errors.As(error(err), &target))
}
