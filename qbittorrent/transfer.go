package qbittorrent

import (
	"context"
	"net/url"
	"strconv"
	"strings"
)

// TransferInfo is the global transfer status shown in the WebUI status
// bar.
type TransferInfo struct {
	ConnectionStatus ConnectionStatus `json:"connection_status"`
	DHTNodes         int64            `json:"dht_nodes"`
	DlInfoData       int64            `json:"dl_info_data"`
	DlInfoSpeed      int64            `json:"dl_info_speed"`
	DlRateLimit      int64            `json:"dl_rate_limit"`
	UpInfoData       int64            `json:"up_info_data"`
	UpInfoSpeed      int64            `json:"up_info_speed"`
	UpRateLimit      int64            `json:"up_rate_limit"`
}

// SpeedLimitsMode reports whether the alternative speed limits are in
// effect.
type SpeedLimitsMode int

const (
	SpeedLimitsNormal      SpeedLimitsMode = 0
	SpeedLimitsAlternative SpeedLimitsMode = 1
)

// GetTransferInfo returns the global transfer status.
func (c *Client) GetTransferInfo(ctx context.Context) (*TransferInfo, error) {
	resp, err := c.do(ctx, apiRequest{method: methodTransferInfo})
	if err != nil {
		return nil, err
	}
	if err := resp.checkStatus(); err != nil {
		return nil, err
	}
	var info TransferInfo
	if err := resp.decodeJSON(&info); err != nil {
		return nil, err
	}
	return &info, nil
}

// GetSpeedLimitsMode reports which speed limit set is active.
func (c *Client) GetSpeedLimitsMode(ctx context.Context) (SpeedLimitsMode, error) {
	resp, err := c.do(ctx, apiRequest{method: methodSpeedLimitsMode})
	if err != nil {
		return 0, err
	}
	if err := resp.checkStatus(); err != nil {
		return 0, err
	}
	n, err := resp.int64Value()
	if err != nil {
		return 0, err
	}
	return SpeedLimitsMode(n), nil
}

// ToggleSpeedLimitsMode switches between the normal and alternative
// speed limits.
func (c *Client) ToggleSpeedLimitsMode(ctx context.Context) error {
	resp, err := c.do(ctx, apiRequest{method: methodToggleSpeedLimitsMode})
	if err != nil {
		return err
	}
	return resp.checkStatus()
}

// GetDownloadLimit returns the global download limit in bytes/s; zero
// means unlimited.
func (c *Client) GetDownloadLimit(ctx context.Context) (int64, error) {
	resp, err := c.do(ctx, apiRequest{method: methodDownloadLimit})
	if err != nil {
		return 0, err
	}
	if err := resp.checkStatus(); err != nil {
		return 0, err
	}
	return resp.int64Value()
}

// SetDownloadLimit sets the global download limit in bytes/s; zero
// removes the limit.
func (c *Client) SetDownloadLimit(ctx context.Context, limit int64) error {
	form := url.Values{"limit": {strconv.FormatInt(limit, 10)}}

	resp, err := c.do(ctx, apiRequest{method: methodSetDownloadLimit, form: form.Encode()})
	if err != nil {
		return err
	}
	return resp.checkStatus()
}

// GetUploadLimit returns the global upload limit in bytes/s; zero means
// unlimited.
func (c *Client) GetUploadLimit(ctx context.Context) (int64, error) {
	resp, err := c.do(ctx, apiRequest{method: methodUploadLimit})
	if err != nil {
		return 0, err
	}
	if err := resp.checkStatus(); err != nil {
		return 0, err
	}
	return resp.int64Value()
}

// SetUploadLimit sets the global upload limit in bytes/s; zero removes
// the limit.
func (c *Client) SetUploadLimit(ctx context.Context, limit int64) error {
	form := url.Values{"limit": {strconv.FormatInt(limit, 10)}}

	resp, err := c.do(ctx, apiRequest{method: methodSetUploadLimit, form: form.Encode()})
	if err != nil {
		return err
	}
	return resp.checkStatus()
}

// BanPeers bans the given peers, each formatted as "host:port".
func (c *Client) BanPeers(ctx context.Context, peers ...string) error {
	form := url.Values{"peers": {strings.Join(peers, "|")}}

	resp, err := c.do(ctx, apiRequest{method: methodBanPeers, form: form.Encode()})
	if err != nil {
		return err
	}
	return resp.checkStatus()
}
