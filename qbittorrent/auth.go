package qbittorrent

import (
	"context"
	"net/http"
	"net/url"
)

// Login authenticates against the WebUI and captures the session
// cookie. A 403 means the caller's IP has been banned after repeated
// failures; back off before retrying.
func (c *Client) Login(ctx context.Context, username, password string) error {
	form := url.Values{
		"username": {username},
		"password": {password},
	}

	resp, err := c.do(ctx, apiRequest{method: methodLogin, form: form.Encode()})
	if err != nil {
		return err
	}

	switch resp.status {
	case http.StatusOK:
		return nil
	case http.StatusForbidden:
		return ErrBanned
	default:
		return &StatusError{Code: resp.status, Body: resp.text()}
	}
}

// Logout ends the remote session. The local cookie is cleared even when
// the remote call fails, so the client always returns to the
// unauthenticated state.
func (c *Client) Logout(ctx context.Context) error {
	resp, err := c.do(ctx, apiRequest{method: methodLogout})
	c.clearCookie()
	if err != nil {
		return err
	}
	return resp.checkStatus()
}
