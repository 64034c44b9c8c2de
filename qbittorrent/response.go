package qbittorrent

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"strings"
)

// apiResponse is a read-only view of one HTTP exchange; it is not
// retained beyond the dispatching operation.
type apiResponse struct {
	status int
	header http.Header
	body   []byte
}

// checkStatus applies the default policy: 200 is success, everything
// else is a StatusError.
func (r *apiResponse) checkStatus() error {
	if r.status != http.StatusOK {
		return &StatusError{Code: r.status, Body: string(r.body)}
	}
	return nil
}

// checkHashStatus applies the hash-aware policy used by operations
// parameterized by a torrent hash, where the server uses 404
// specifically to signal an unknown hash.
func (r *apiResponse) checkHashStatus() error {
	switch r.status {
	case http.StatusOK:
		return nil
	case http.StatusNotFound:
		return ErrTorrentNotFound
	default:
		return &StatusError{Code: r.status, Body: string(r.body)}
	}
}

// decodeJSON unmarshals the body into v. A decode failure is distinct
// from a status-code mismatch and is never silently defaulted.
func (r *apiResponse) decodeJSON(v any) error {
	if err := json.Unmarshal(r.body, v); err != nil {
		return fmt.Errorf("decode response body: %w", err)
	}
	return nil
}

// text returns the body as-is for plain-text endpoints.
func (r *apiResponse) text() string {
	return string(r.body)
}

// int64Value parses plain-text numeric endpoints such as the global
// speed limits.
func (r *apiResponse) int64Value() (int64, error) {
	n, err := strconv.ParseInt(strings.TrimSpace(r.text()), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("parse response body as integer: %w", err)
	}
	return n, nil
}
