package qbittorrent

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
)

// method names one remote operation. The set is closed: every value
// below has exactly one URL path in methodPaths.
type method int

const (
	methodLogin method = iota
	methodLogout
	methodVersion
	methodWebAPIVersion
	methodBuildInfo
	methodShutdown
	methodPreferences
	methodSetPreferences
	methodDefaultSavePath
	methodMainLog
	methodPeerLog
	methodMainData
	methodTorrentPeers
	methodTransferInfo
	methodSpeedLimitsMode
	methodToggleSpeedLimitsMode
	methodDownloadLimit
	methodSetDownloadLimit
	methodUploadLimit
	methodSetUploadLimit
	methodBanPeers
	methodTorrentsInfo
	methodTorrentProperties
	methodTorrentTrackers
	methodTorrentWebSeeds
	methodTorrentFiles
	methodPieceStates
	methodPieceHashes
	methodPause
	methodResume
	methodDelete
	methodRecheck
	methodReannounce
	methodAdd

	methodCount // keep last
)

var methodPaths = [methodCount]string{
	methodLogin:                 "auth/login",
	methodLogout:                "auth/logout",
	methodVersion:               "app/version",
	methodWebAPIVersion:         "app/webapiVersion",
	methodBuildInfo:             "app/buildInfo",
	methodShutdown:              "app/shutdown",
	methodPreferences:           "app/preferences",
	methodSetPreferences:        "app/setPreferences",
	methodDefaultSavePath:       "app/defaultSavePath",
	methodMainLog:               "log/main",
	methodPeerLog:               "log/peers",
	methodMainData:              "sync/maindata",
	methodTorrentPeers:          "sync/torrentPeers",
	methodTransferInfo:          "transfer/info",
	methodSpeedLimitsMode:       "transfer/speedLimitsMode",
	methodToggleSpeedLimitsMode: "transfer/toggleSpeedLimitsMode",
	methodDownloadLimit:         "transfer/downloadLimit",
	methodSetDownloadLimit:      "transfer/setDownloadLimit",
	methodUploadLimit:           "transfer/uploadLimit",
	methodSetUploadLimit:        "transfer/setUploadLimit",
	methodBanPeers:              "transfer/banPeers",
	methodTorrentsInfo:          "torrents/info",
	methodTorrentProperties:     "torrents/properties",
	methodTorrentTrackers:       "torrents/trackers",
	methodTorrentWebSeeds:       "torrents/webseeds",
	methodTorrentFiles:          "torrents/files",
	methodPieceStates:           "torrents/pieceStates",
	methodPieceHashes:           "torrents/pieceHashes",
	methodPause:                 "torrents/pause",
	methodResume:                "torrents/resume",
	methodDelete:                "torrents/delete",
	methodRecheck:               "torrents/recheck",
	methodReannounce:            "torrents/reannounce",
	methodAdd:                   "torrents/add",
}

func (m method) path() string {
	return methodPaths[m]
}

// apiRequest names the remote operation plus optional arguments: either
// a JSON payload or a pre-encoded form string, never both.
type apiRequest struct {
	method method
	json   any
	form   string
}

// do serializes the request, POSTs it, and returns the raw response.
// On a successful login it captures the session cookie from the
// Set-Cookie header, trimmed at the first ';'.
func (c *Client) do(ctx context.Context, req apiRequest) (*apiResponse, error) {
	path := req.method.path()

	var body []byte
	switch {
	case req.json != nil:
		b, err := json.Marshal(req.json)
		if err != nil {
			return nil, fmt.Errorf("encode %s arguments: %w", path, err)
		}
		body = b
	case req.form != "":
		body = []byte(req.form)
	}

	endpoint := fmt.Sprintf("%s/api/v2/%s", c.baseURL, path)

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("create %s request: %w", path, err)
	}

	httpReq.Header.Set("Cache-Control", "no-cache")
	httpReq.Header.Set("Pragma", "no-cache")
	httpReq.Header.Set("Content-Type", "application/x-www-form-urlencoded; charset=utf-8")
	httpReq.Header.Set("Origin", c.origin)
	// The cookie is sent on every request, even when empty; the server
	// answers unauthenticated endpoints either way.
	httpReq.Header.Set("Cookie", c.Cookie())
	if c.userAgent != "" {
		httpReq.Header.Set("User-Agent", c.userAgent)
	}

	httpResp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("request %s: %w", path, err)
	}
	defer httpResp.Body.Close()

	respBody, err := io.ReadAll(httpResp.Body)
	if err != nil {
		return nil, fmt.Errorf("read %s response body: %w", path, err)
	}

	c.logger.Debug().
		Str("endpoint", path).
		Int("status", httpResp.StatusCode).
		Int("body_bytes", len(respBody)).
		Msg("qBittorrent API request")

	if req.method == methodLogin && httpResp.StatusCode == http.StatusOK {
		setCookie := httpResp.Header.Get("Set-Cookie")
		if setCookie == "" {
			return nil, ErrNoSetCookie
		}
		cookie, _, _ := strings.Cut(setCookie, ";")
		cookie = strings.TrimSpace(cookie)
		if cookie == "" {
			return nil, ErrNoCookieValue
		}
		c.setCookie(cookie)
	}

	return &apiResponse{
		status: httpResp.StatusCode,
		header: httpResp.Header,
		body:   respBody,
	}, nil
}
