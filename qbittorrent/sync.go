package qbittorrent

import (
	"context"
	"net/url"
	"strconv"
)

// ConnectionStatus is the session's view of its network reachability.
type ConnectionStatus string

const (
	ConnectionConnected    ConnectionStatus = "connected"
	ConnectionFirewalled   ConnectionStatus = "firewalled"
	ConnectionDisconnected ConnectionStatus = "disconnected"
)

// Category is a torrent category with its save path.
type Category struct {
	Name     string `json:"name"`
	SavePath string `json:"savePath"`
}

// ServerState is the transfer-wide portion of a main data snapshot.
type ServerState struct {
	AlltimeDL            int64            `json:"alltime_dl"`
	AlltimeUL            int64            `json:"alltime_ul"`
	AverageTimeQueue     int64            `json:"average_time_queue"`
	ConnectionStatus     ConnectionStatus `json:"connection_status"`
	DHTNodes             int64            `json:"dht_nodes"`
	DlInfoData           int64            `json:"dl_info_data"`
	DlInfoSpeed          int64            `json:"dl_info_speed"`
	DlRateLimit          int64            `json:"dl_rate_limit"`
	FreeSpaceOnDisk      int64            `json:"free_space_on_disk"`
	GlobalRatio          string           `json:"global_ratio"`
	QueuedIOJobs         int64            `json:"queued_io_jobs"`
	Queueing             bool             `json:"queueing"`
	ReadCacheHits        string           `json:"read_cache_hits"`
	ReadCacheOverload    string           `json:"read_cache_overload"`
	RefreshInterval      int64            `json:"refresh_interval"`
	TotalBuffersSize     int64            `json:"total_buffers_size"`
	TotalPeerConnections int64            `json:"total_peer_connections"`
	TotalQueuedSize      int64            `json:"total_queued_size"`
	TotalWastedSession   int64            `json:"total_wasted_session"`
	UpInfoData           int64            `json:"up_info_data"`
	UpInfoSpeed          int64            `json:"up_info_speed"`
	UpRateLimit          int64            `json:"up_rate_limit"`
	UseAltSpeedLimits    bool             `json:"use_alt_speed_limits"`
	WriteCacheOverload   string           `json:"write_cache_overload"`
}

// MainData is one sync snapshot. With rid 0 the server sends a full
// snapshot (FullUpdate true); with the previous response's Rid it sends
// only what changed since, with removals listed separately.
type MainData struct {
	Rid               int64               `json:"rid"`
	FullUpdate        bool                `json:"full_update"`
	Torrents          map[string]Torrent  `json:"torrents"`
	TorrentsRemoved   []string            `json:"torrents_removed"`
	Categories        map[string]Category `json:"categories"`
	CategoriesRemoved []string            `json:"categories_removed"`
	Tags              []string            `json:"tags"`
	TagsRemoved       []string            `json:"tags_removed"`
	ServerState       ServerState         `json:"server_state"`
}

// TorrentPeer is one connected peer of a torrent.
type TorrentPeer struct {
	Client       string  `json:"client"`
	Connection   string  `json:"connection"`
	Country      string  `json:"country"`
	CountryCode  string  `json:"country_code"`
	DlSpeed      int64   `json:"dl_speed"`
	Downloaded   int64   `json:"downloaded"`
	Files        string  `json:"files"`
	Flags        string  `json:"flags"`
	FlagsDesc    string  `json:"flags_desc"`
	IP           string  `json:"ip"`
	PeerIDClient string  `json:"peer_id_client"`
	Port         int64   `json:"port"`
	Progress     float64 `json:"progress"`
	Relevance    float64 `json:"relevance"`
	UpSpeed      int64   `json:"up_speed"`
	Uploaded     int64   `json:"uploaded"`
}

// TorrentPeers is one peer-list snapshot, keyed by "ip:port". It follows
// the same rid protocol as MainData.
type TorrentPeers struct {
	Rid        int64                  `json:"rid"`
	FullUpdate bool                   `json:"full_update"`
	ShowFlags  bool                   `json:"show_flags"`
	Peers      map[string]TorrentPeer `json:"peers"`
}

// GetMainData returns a sync snapshot. Pass rid 0 for a full snapshot
// or the Rid of the previous response for a delta.
func (c *Client) GetMainData(ctx context.Context, rid int64) (*MainData, error) {
	args := struct {
		Rid int64 `json:"rid"`
	}{Rid: rid}

	resp, err := c.do(ctx, apiRequest{method: methodMainData, json: args})
	if err != nil {
		return nil, err
	}
	if err := resp.checkStatus(); err != nil {
		return nil, err
	}
	var data MainData
	if err := resp.decodeJSON(&data); err != nil {
		return nil, err
	}
	return &data, nil
}

// GetTorrentPeers returns the peer list of one torrent, following the
// same rid protocol as GetMainData. Returns ErrTorrentNotFound for an
// unknown hash.
func (c *Client) GetTorrentPeers(ctx context.Context, hash string, rid int64) (*TorrentPeers, error) {
	form := url.Values{
		"hash": {hash},
		"rid":  {strconv.FormatInt(rid, 10)},
	}

	resp, err := c.do(ctx, apiRequest{method: methodTorrentPeers, form: form.Encode()})
	if err != nil {
		return nil, err
	}
	if err := resp.checkHashStatus(); err != nil {
		return nil, err
	}
	var peers TorrentPeers
	if err := resp.decodeJSON(&peers); err != nil {
		return nil, err
	}
	return &peers, nil
}
