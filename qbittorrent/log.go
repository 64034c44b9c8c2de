package qbittorrent

import (
	"context"
)

// LogType classifies a main log entry. Values are bit flags matching
// the severity filter of the log endpoint.
type LogType int

const (
	LogNormal   LogType = 1
	LogInfo     LogType = 2
	LogWarning  LogType = 4
	LogCritical LogType = 8
)

// LogEntry is one line of the application log.
type LogEntry struct {
	ID        int64   `json:"id"`
	Message   string  `json:"message"`
	Timestamp int64   `json:"timestamp"`
	Type      LogType `json:"type"`
}

// PeerLogEntry records a peer being blocked or banned.
type PeerLogEntry struct {
	ID        int64  `json:"id"`
	IP        string `json:"ip"`
	Timestamp int64  `json:"timestamp"`
	Blocked   bool   `json:"blocked"`
	Reason    string `json:"reason"`
}

// LogOptions filters GetMainLog. The zero value excludes every severity
// and returns nothing; start from DefaultLogOptions and narrow down.
type LogOptions struct {
	Normal   bool  `json:"normal"`
	Info     bool  `json:"info"`
	Warning  bool  `json:"warning"`
	Critical bool  `json:"critical"`
	// LastKnownID excludes entries with id <= this value; -1 returns all.
	LastKnownID int64 `json:"last_known_id"`
}

// DefaultLogOptions selects every severity from the beginning of the
// log.
func DefaultLogOptions() LogOptions {
	return LogOptions{
		Normal:      true,
		Info:        true,
		Warning:     true,
		Critical:    true,
		LastKnownID: -1,
	}
}

// PeerLogOptions filters GetPeerLog by last seen entry id; -1 returns
// all entries.
type PeerLogOptions struct {
	LastKnownID int64 `json:"last_known_id"`
}

// GetMainLog returns application log entries matching opts.
func (c *Client) GetMainLog(ctx context.Context, opts LogOptions) ([]LogEntry, error) {
	resp, err := c.do(ctx, apiRequest{method: methodMainLog, json: opts})
	if err != nil {
		return nil, err
	}
	if err := resp.checkStatus(); err != nil {
		return nil, err
	}
	var entries []LogEntry
	if err := resp.decodeJSON(&entries); err != nil {
		return nil, err
	}
	return entries, nil
}

// GetPeerLog returns peer block log entries newer than opts.LastKnownID.
func (c *Client) GetPeerLog(ctx context.Context, opts PeerLogOptions) ([]PeerLogEntry, error) {
	resp, err := c.do(ctx, apiRequest{method: methodPeerLog, json: opts})
	if err != nil {
		return nil, err
	}
	if err := resp.checkStatus(); err != nil {
		return nil, err
	}
	var entries []PeerLogEntry
	if err := resp.decodeJSON(&entries); err != nil {
		return nil, err
	}
	return entries, nil
}
