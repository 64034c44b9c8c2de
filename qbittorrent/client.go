package qbittorrent

import (
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog"
)

// Client talks to a qBittorrent Web API instance. It owns the session
// cookie captured on login; all operations are single round trips with
// no retries or caching.
type Client struct {
	baseURL    string
	origin     string
	httpClient *http.Client
	userAgent  string
	logger     zerolog.Logger

	// Guards the session cookie. A login racing another call would
	// otherwise tear the cookie mid-write when the client is shared.
	mu     sync.RWMutex
	cookie string
}

// NewClient creates a client for the qBittorrent instance at baseURL.
// The session starts unauthenticated; call Login before any operation
// that requires a session.
func NewClient(baseURL string, logger zerolog.Logger, opts ...Option) (*Client, error) {
	if baseURL == "" {
		return nil, fmt.Errorf("qbittorrent URL is required")
	}

	baseURL = strings.TrimRight(baseURL, "/")

	u, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("parse qbittorrent URL: %w", err)
	}
	if u.Scheme == "" || u.Host == "" {
		return nil, fmt.Errorf("qbittorrent URL %q must include scheme and host", baseURL)
	}

	client := &Client{
		baseURL: baseURL,
		origin:  u.Scheme + "://" + u.Host,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		logger: logger,
	}

	for _, opt := range opts {
		opt(client)
	}

	return client, nil
}

// BaseURL returns the configured instance URL without a trailing slash.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// Cookie returns the current session cookie, or the empty string when
// the session is unauthenticated.
func (c *Client) Cookie() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.cookie
}

// LoggedIn reports whether a session cookie is held.
func (c *Client) LoggedIn() bool {
	return c.Cookie() != ""
}

func (c *Client) setCookie(cookie string) {
	c.mu.Lock()
	c.cookie = cookie
	c.mu.Unlock()
}

func (c *Client) clearCookie() {
	c.setCookie("")
}
