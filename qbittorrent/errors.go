package qbittorrent

import (
	"errors"
	"fmt"
)

// Common errors returned by the qBittorrent client.
var (
	// ErrNoSetCookie is returned when a successful login response does
	// not carry a Set-Cookie header.
	ErrNoSetCookie = errors.New("login response has no set-cookie header")

	// ErrNoCookieValue is returned when the Set-Cookie header carries
	// no session cookie before the first attribute separator.
	ErrNoCookieValue = errors.New("set-cookie header has no session cookie")

	// ErrBanned is returned when the WebUI has banned the caller's IP
	// after too many failed login attempts.
	ErrBanned = errors.New("ip banned for too many failed login attempts")

	// ErrTorrentNotFound is returned by hash-scoped operations when the
	// server does not know the given torrent hash.
	ErrTorrentNotFound = errors.New("torrent hash not found")
)

// StatusError reports a response status code the operation did not
// expect. The body is kept for diagnostics; callers branch on Code.
type StatusError struct {
	Code int
	Body string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("unexpected status code %d", e.Code)
}

// IsUnauthorized reports whether the status indicates the session is
// missing or expired; callers typically re-authenticate and retry.
func (e *StatusError) IsUnauthorized() bool {
	return e.Code == 401 || e.Code == 403
}
