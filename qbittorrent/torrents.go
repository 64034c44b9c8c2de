package qbittorrent

import (
	"context"
	"net/url"
	"strconv"
	"strings"
)

// TorrentState is the lifecycle state reported for a torrent.
type TorrentState string

const (
	StateError              TorrentState = "error"
	StateMissingFiles       TorrentState = "missingFiles"
	StateUploading          TorrentState = "uploading"
	StatePausedUp           TorrentState = "pausedUP"
	StateQueuedUp           TorrentState = "queuedUP"
	StateStalledUp          TorrentState = "stalledUP"
	StateCheckingUp         TorrentState = "checkingUP"
	StateForcedUp           TorrentState = "forcedUP"
	StateAllocating         TorrentState = "allocating"
	StateDownloading        TorrentState = "downloading"
	StateMetaDl             TorrentState = "metaDL"
	StatePausedDl           TorrentState = "pausedDL"
	StateQueuedDl           TorrentState = "queuedDL"
	StateStalledDl          TorrentState = "stalledDL"
	StateCheckingDl         TorrentState = "checkingDL"
	StateForcedDl           TorrentState = "forcedDL"
	StateCheckingResumeData TorrentState = "checkingResumeData"
	StateMoving             TorrentState = "moving"
	StateUnknown            TorrentState = "unknown"
)

// Torrent is one entry of the torrent list.
type Torrent struct {
	AddedOn            int64        `json:"added_on"`
	AmountLeft         int64        `json:"amount_left"`
	AutoTMM            bool         `json:"auto_tmm"`
	Availability       float64      `json:"availability"`
	Category           string       `json:"category"`
	Completed          int64        `json:"completed"`
	CompletionOn       int64        `json:"completion_on"`
	ContentPath        string       `json:"content_path"`
	DlLimit            int64        `json:"dl_limit"`
	DlSpeed            int64        `json:"dlspeed"`
	Downloaded         int64        `json:"downloaded"`
	DownloadedSession  int64        `json:"downloaded_session"`
	ETA                int64        `json:"eta"`
	FirstLastPiecePrio bool         `json:"f_l_piece_prio"`
	ForceStart         bool         `json:"force_start"`
	Hash               string       `json:"hash"`
	LastActivity       int64        `json:"last_activity"`
	MagnetURI          string       `json:"magnet_uri"`
	MaxRatio           float64      `json:"max_ratio"`
	MaxSeedingTime     int64        `json:"max_seeding_time"`
	Name               string       `json:"name"`
	NumComplete        int64        `json:"num_complete"`
	NumIncomplete      int64        `json:"num_incomplete"`
	NumLeechs          int64        `json:"num_leechs"`
	NumSeeds           int64        `json:"num_seeds"`
	Priority           int64        `json:"priority"`
	Progress           float64      `json:"progress"`
	Ratio              float64      `json:"ratio"`
	RatioLimit         float64      `json:"ratio_limit"`
	SavePath           string       `json:"save_path"`
	SeedingTime        int64        `json:"seeding_time"`
	SeedingTimeLimit   int64        `json:"seeding_time_limit"`
	SeenComplete       int64        `json:"seen_complete"`
	SequentialDownload bool         `json:"seq_dl"`
	Size               int64        `json:"size"`
	State              TorrentState `json:"state"`
	SuperSeeding       bool         `json:"super_seeding"`
	Tags               string       `json:"tags"`
	TimeActive         int64        `json:"time_active"`
	TotalSize          int64        `json:"total_size"`
	Tracker            string       `json:"tracker"`
	UpLimit            int64        `json:"up_limit"`
	Uploaded           int64        `json:"uploaded"`
	UploadedSession    int64        `json:"uploaded_session"`
	UpSpeed            int64        `json:"upspeed"`
}

// TorrentProperties is the detail view of one torrent.
type TorrentProperties struct {
	AdditionDate           int64   `json:"addition_date"`
	Comment                string  `json:"comment"`
	CompletionDate         int64   `json:"completion_date"`
	CreatedBy              string  `json:"created_by"`
	CreationDate           int64   `json:"creation_date"`
	DlLimit                int64   `json:"dl_limit"`
	DlSpeed                int64   `json:"dl_speed"`
	DlSpeedAvg             int64   `json:"dl_speed_avg"`
	ETA                    int64   `json:"eta"`
	LastSeen               int64   `json:"last_seen"`
	NbConnections          int64   `json:"nb_connections"`
	NbConnectionsLimit     int64   `json:"nb_connections_limit"`
	Peers                  int64   `json:"peers"`
	PeersTotal             int64   `json:"peers_total"`
	PieceSize              int64   `json:"piece_size"`
	PiecesHave             int64   `json:"pieces_have"`
	PiecesNum              int64   `json:"pieces_num"`
	Reannounce             int64   `json:"reannounce"`
	SavePath               string  `json:"save_path"`
	SeedingTime            int64   `json:"seeding_time"`
	Seeds                  int64   `json:"seeds"`
	SeedsTotal             int64   `json:"seeds_total"`
	ShareRatio             float64 `json:"share_ratio"`
	TimeElapsed            int64   `json:"time_elapsed"`
	TotalDownloaded        int64   `json:"total_downloaded"`
	TotalDownloadedSession int64   `json:"total_downloaded_session"`
	TotalSize              int64   `json:"total_size"`
	TotalUploaded          int64   `json:"total_uploaded"`
	TotalUploadedSession   int64   `json:"total_uploaded_session"`
	TotalWasted            int64   `json:"total_wasted"`
	UpLimit                int64   `json:"up_limit"`
	UpSpeed                int64   `json:"up_speed"`
	UpSpeedAvg             int64   `json:"up_speed_avg"`
}

// TrackerStatus is the working state of one tracker entry.
type TrackerStatus int

const (
	TrackerDisabled     TrackerStatus = 0
	TrackerNotContacted TrackerStatus = 1
	TrackerWorking      TrackerStatus = 2
	TrackerUpdating     TrackerStatus = 3
	TrackerNotWorking   TrackerStatus = 4
)

// Tracker is one tracker of a torrent. The DHT, PeX and LSD pseudo
// entries appear first with tier -1.
type Tracker struct {
	Msg           string        `json:"msg"`
	NumDownloaded int64         `json:"num_downloaded"`
	NumLeeches    int64         `json:"num_leeches"`
	NumPeers      int64         `json:"num_peers"`
	NumSeeds      int64         `json:"num_seeds"`
	Status        TrackerStatus `json:"status"`
	Tier          int64         `json:"tier"`
	URL           string        `json:"url"`
}

// WebSeed is one HTTP seed of a torrent.
type WebSeed struct {
	URL string `json:"url"`
}

// TorrentFile is one file inside a torrent. Priority 0 means the file
// is skipped.
type TorrentFile struct {
	Availability float64 `json:"availability"`
	IsSeed       bool    `json:"is_seed"`
	Name         string  `json:"name"`
	PieceRange   []int64 `json:"piece_range"`
	Priority     int64   `json:"priority"`
	Progress     float64 `json:"progress"`
	Size         int64   `json:"size"`
}

// PieceState is the download state of one piece.
type PieceState int

const (
	PieceNotDownloaded PieceState = 0
	PieceDownloading   PieceState = 1
	PieceDownloaded    PieceState = 2
)

// TorrentFilter narrows the torrent list to a lifecycle group.
type TorrentFilter string

const (
	FilterAll         TorrentFilter = "all"
	FilterDownloading TorrentFilter = "downloading"
	FilterSeeding     TorrentFilter = "seeding"
	FilterCompleted   TorrentFilter = "completed"
	FilterPaused      TorrentFilter = "paused"
	FilterActive      TorrentFilter = "active"
	FilterInactive    TorrentFilter = "inactive"
	FilterResumed     TorrentFilter = "resumed"
	FilterStalled     TorrentFilter = "stalled"
	FilterStalledUp   TorrentFilter = "stalled_uploading"
	FilterStalledDl   TorrentFilter = "stalled_downloading"
)

// TorrentListOptions narrows and orders ListTorrents. The zero value
// returns every torrent.
type TorrentListOptions struct {
	Filter   TorrentFilter
	Category string
	Sort     string
	Reverse  bool
	Limit    int
	Offset   int
	Hashes   []string
}

func (o TorrentListOptions) values() url.Values {
	form := url.Values{}
	if o.Filter != "" {
		form.Set("filter", string(o.Filter))
	}
	if o.Category != "" {
		form.Set("category", o.Category)
	}
	if o.Sort != "" {
		form.Set("sort", o.Sort)
	}
	if o.Reverse {
		form.Set("reverse", "true")
	}
	if o.Limit > 0 {
		form.Set("limit", strconv.Itoa(o.Limit))
	}
	if o.Offset != 0 {
		form.Set("offset", strconv.Itoa(o.Offset))
	}
	if len(o.Hashes) > 0 {
		form.Set("hashes", strings.Join(o.Hashes, "|"))
	}
	return form
}

// AddTorrentOptions describes torrents to add. URLs holds HTTP(S) links
// or magnet URIs; rate limits are bytes/s.
type AddTorrentOptions struct {
	URLs               []string
	SavePath           string
	Category           string
	Paused             bool
	SkipChecking       bool
	RootFolder         bool
	Rename             string
	UploadLimit        int64
	DownloadLimit      int64
	RatioLimit         float64
	SeedingTimeLimit   int64
	AutoTMM            bool
	SequentialDownload bool
	FirstLastPiecePrio bool
}

func (o AddTorrentOptions) values() url.Values {
	form := url.Values{}
	form.Set("urls", strings.Join(o.URLs, "\n"))
	if o.SavePath != "" {
		form.Set("savepath", o.SavePath)
	}
	if o.Category != "" {
		form.Set("category", o.Category)
	}
	if o.Paused {
		form.Set("paused", "true")
	}
	if o.SkipChecking {
		form.Set("skip_checking", "true")
	}
	if o.RootFolder {
		form.Set("root_folder", "true")
	}
	if o.Rename != "" {
		form.Set("rename", o.Rename)
	}
	if o.UploadLimit > 0 {
		form.Set("upLimit", strconv.FormatInt(o.UploadLimit, 10))
	}
	if o.DownloadLimit > 0 {
		form.Set("dlLimit", strconv.FormatInt(o.DownloadLimit, 10))
	}
	if o.RatioLimit > 0 {
		form.Set("ratioLimit", strconv.FormatFloat(o.RatioLimit, 'f', -1, 64))
	}
	if o.SeedingTimeLimit > 0 {
		form.Set("seedingTimeLimit", strconv.FormatInt(o.SeedingTimeLimit, 10))
	}
	if o.AutoTMM {
		form.Set("autoTMM", "true")
	}
	if o.SequentialDownload {
		form.Set("sequentialDownload", "true")
	}
	if o.FirstLastPiecePrio {
		form.Set("firstLastPiecePrio", "true")
	}
	return form
}

// ListTorrents returns the torrent list narrowed by opts.
func (c *Client) ListTorrents(ctx context.Context, opts TorrentListOptions) ([]Torrent, error) {
	resp, err := c.do(ctx, apiRequest{method: methodTorrentsInfo, form: opts.values().Encode()})
	if err != nil {
		return nil, err
	}
	if err := resp.checkStatus(); err != nil {
		return nil, err
	}
	var torrents []Torrent
	if err := resp.decodeJSON(&torrents); err != nil {
		return nil, err
	}
	return torrents, nil
}

func hashForm(hash string) string {
	return url.Values{"hash": {hash}}.Encode()
}

// GetTorrentProperties returns the detail view of one torrent. Returns
// ErrTorrentNotFound for an unknown hash.
func (c *Client) GetTorrentProperties(ctx context.Context, hash string) (*TorrentProperties, error) {
	resp, err := c.do(ctx, apiRequest{method: methodTorrentProperties, form: hashForm(hash)})
	if err != nil {
		return nil, err
	}
	if err := resp.checkHashStatus(); err != nil {
		return nil, err
	}
	var props TorrentProperties
	if err := resp.decodeJSON(&props); err != nil {
		return nil, err
	}
	return &props, nil
}

// GetTorrentTrackers returns the trackers of one torrent.
func (c *Client) GetTorrentTrackers(ctx context.Context, hash string) ([]Tracker, error) {
	resp, err := c.do(ctx, apiRequest{method: methodTorrentTrackers, form: hashForm(hash)})
	if err != nil {
		return nil, err
	}
	if err := resp.checkHashStatus(); err != nil {
		return nil, err
	}
	var trackers []Tracker
	if err := resp.decodeJSON(&trackers); err != nil {
		return nil, err
	}
	return trackers, nil
}

// GetTorrentWebSeeds returns the HTTP seeds of one torrent.
func (c *Client) GetTorrentWebSeeds(ctx context.Context, hash string) ([]WebSeed, error) {
	resp, err := c.do(ctx, apiRequest{method: methodTorrentWebSeeds, form: hashForm(hash)})
	if err != nil {
		return nil, err
	}
	if err := resp.checkHashStatus(); err != nil {
		return nil, err
	}
	var seeds []WebSeed
	if err := resp.decodeJSON(&seeds); err != nil {
		return nil, err
	}
	return seeds, nil
}

// GetTorrentFiles returns the file list of one torrent.
func (c *Client) GetTorrentFiles(ctx context.Context, hash string) ([]TorrentFile, error) {
	resp, err := c.do(ctx, apiRequest{method: methodTorrentFiles, form: hashForm(hash)})
	if err != nil {
		return nil, err
	}
	if err := resp.checkHashStatus(); err != nil {
		return nil, err
	}
	var files []TorrentFile
	if err := resp.decodeJSON(&files); err != nil {
		return nil, err
	}
	return files, nil
}

// GetPieceStates returns the per-piece download state of one torrent.
func (c *Client) GetPieceStates(ctx context.Context, hash string) ([]PieceState, error) {
	resp, err := c.do(ctx, apiRequest{method: methodPieceStates, form: hashForm(hash)})
	if err != nil {
		return nil, err
	}
	if err := resp.checkHashStatus(); err != nil {
		return nil, err
	}
	var states []PieceState
	if err := resp.decodeJSON(&states); err != nil {
		return nil, err
	}
	return states, nil
}

// GetPieceHashes returns the per-piece SHA-1 hashes of one torrent.
func (c *Client) GetPieceHashes(ctx context.Context, hash string) ([]string, error) {
	resp, err := c.do(ctx, apiRequest{method: methodPieceHashes, form: hashForm(hash)})
	if err != nil {
		return nil, err
	}
	if err := resp.checkHashStatus(); err != nil {
		return nil, err
	}
	var hashes []string
	if err := resp.decodeJSON(&hashes); err != nil {
		return nil, err
	}
	return hashes, nil
}

func hashesForm(hashes []string) string {
	return url.Values{"hashes": {strings.Join(hashes, "|")}}.Encode()
}

func (c *Client) torrentsAction(ctx context.Context, m method, form string) error {
	resp, err := c.do(ctx, apiRequest{method: m, form: form})
	if err != nil {
		return err
	}
	return resp.checkStatus()
}

// PauseTorrents pauses the given torrents. Unknown hashes are ignored
// server-side.
func (c *Client) PauseTorrents(ctx context.Context, hashes ...string) error {
	return c.torrentsAction(ctx, methodPause, hashesForm(hashes))
}

// ResumeTorrents resumes the given torrents.
func (c *Client) ResumeTorrents(ctx context.Context, hashes ...string) error {
	return c.torrentsAction(ctx, methodResume, hashesForm(hashes))
}

// RecheckTorrents rechecks the data of the given torrents.
func (c *Client) RecheckTorrents(ctx context.Context, hashes ...string) error {
	return c.torrentsAction(ctx, methodRecheck, hashesForm(hashes))
}

// ReannounceTorrents forces a tracker reannounce for the given
// torrents.
func (c *Client) ReannounceTorrents(ctx context.Context, hashes ...string) error {
	return c.torrentsAction(ctx, methodReannounce, hashesForm(hashes))
}

// DeleteTorrents removes the given torrents, optionally deleting the
// downloaded data from disk.
func (c *Client) DeleteTorrents(ctx context.Context, deleteFiles bool, hashes ...string) error {
	form := url.Values{
		"hashes":      {strings.Join(hashes, "|")},
		"deleteFiles": {strconv.FormatBool(deleteFiles)},
	}
	return c.torrentsAction(ctx, methodDelete, form.Encode())
}

// AddTorrent adds torrents from links or magnet URIs.
func (c *Client) AddTorrent(ctx context.Context, opts AddTorrentOptions) error {
	return c.torrentsAction(ctx, methodAdd, opts.values().Encode())
}
