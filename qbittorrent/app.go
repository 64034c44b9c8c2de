package qbittorrent

import (
	"context"
)

// BuildInfo describes the libraries the remote instance was built
// against.
type BuildInfo struct {
	Qt         string `json:"qt"`
	Libtorrent string `json:"libtorrent"`
	Boost      string `json:"boost"`
	Openssl    string `json:"openssl"`
	Bitness    int64  `json:"bitness"`
}

// ScanDirValue selects where torrents picked up from a watched
// directory are downloaded to.
type ScanDirValue int

const (
	// DownloadToMonitored downloads to the monitored folder.
	DownloadToMonitored ScanDirValue = 0
	// DownloadToDefault downloads to the default save path.
	DownloadToDefault ScanDirValue = 1
)

// SchedulerDays selects when the alternative speed limits schedule
// applies.
type SchedulerDays int

const (
	ScheduleEveryDay       SchedulerDays = 0
	ScheduleEveryWeekday   SchedulerDays = 1
	ScheduleEveryWeekend   SchedulerDays = 2
	ScheduleEveryMonday    SchedulerDays = 3
	ScheduleEveryTuesday   SchedulerDays = 4
	ScheduleEveryWednesday SchedulerDays = 5
	ScheduleEveryThursday  SchedulerDays = 6
	ScheduleEveryFriday    SchedulerDays = 7
	ScheduleEverySaturday  SchedulerDays = 8
	ScheduleEverySunday    SchedulerDays = 9
)

// Encryption selects the peer connection encryption policy. The first
// option allows both encrypted and unencrypted connections; the others
// are mutually exclusive.
type Encryption int

const (
	EncryptionPrefer   Encryption = 0
	EncryptionForceOn  Encryption = 1
	EncryptionForceOff Encryption = 2
)

// ProxyType selects the proxy the BitTorrent session uses.
type ProxyType int

const (
	ProxyDisabled     ProxyType = 0
	ProxyHTTPNoAuth   ProxyType = 1
	ProxySocks5NoAuth ProxyType = 2
	ProxyHTTPAuth     ProxyType = 3
	ProxySocks5Auth   ProxyType = 4
	ProxySocks4NoAuth ProxyType = 5
)

// DyndnsService selects the dynamic DNS provider.
type DyndnsService int

const (
	DyndnsServiceDyDNS DyndnsService = 0
	DyndnsServiceNoIP  DyndnsService = 1
)

// MaxRatioAction is performed when a torrent reaches its maximum share
// ratio.
type MaxRatioAction int

const (
	MaxRatioPause  MaxRatioAction = 0
	MaxRatioRemove MaxRatioAction = 1
)

// BittorrentProtocol restricts the transport protocol peers may use.
type BittorrentProtocol int

const (
	ProtocolBoth BittorrentProtocol = 0
	ProtocolTCP  BittorrentProtocol = 1
	ProtocolUTP  BittorrentProtocol = 2
)

// UploadChokingAlgorithm selects how upload slots are assigned.
type UploadChokingAlgorithm int

const (
	ChokingRoundRobin    UploadChokingAlgorithm = 0
	ChokingFastestUpload UploadChokingAlgorithm = 1
	ChokingAntiLeech     UploadChokingAlgorithm = 2
)

// UploadSlotsBehavior selects between a fixed number of upload slots
// and an upload-rate-based count.
type UploadSlotsBehavior int

const (
	SlotsFixed           UploadSlotsBehavior = 0
	SlotsUploadRateBased UploadSlotsBehavior = 1
)

// UtpTcpMixedMode selects the mixed-mode bandwidth algorithm.
type UtpTcpMixedMode int

const (
	MixedModePreferTCP        UtpTcpMixedMode = 0
	MixedModePeerProportional UtpTcpMixedMode = 1
)

// Preferences mirrors the application settings object of the remote
// instance. Every field is optional: when writing, absent fields are
// omitted from the payload and left untouched server-side, so a
// partial struct is a partial update.
type Preferences struct {
	Locale                    *string                 `json:"locale,omitempty"`
	CreateSubfolderEnabled    *bool                   `json:"create_subfolder_enabled,omitempty"`
	StartPausedEnabled        *bool                   `json:"start_paused_enabled,omitempty"`
	AutoDeleteMode            *int64                  `json:"auto_delete_mode,omitempty"`
	PreallocateAll            *bool                   `json:"preallocate_all,omitempty"`
	IncompleteFilesExt        *bool                   `json:"incomplete_files_ext,omitempty"`
	AutoTMMEnabled            *bool                   `json:"auto_tmm_enabled,omitempty"`
	TorrentChangedTMMEnabled  *bool                   `json:"torrent_changed_tmm_enabled,omitempty"`
	SavePathChangedTMMEnabled *bool                   `json:"save_path_changed_tmm_enabled,omitempty"`
	CategoryChangedTMMEnabled *bool                   `json:"category_changed_tmm_enabled,omitempty"`
	SavePath                  *string                 `json:"save_path,omitempty"`
	TempPathEnabled           *bool                   `json:"temp_path_enabled,omitempty"`
	TempPath                  *string                 `json:"temp_path,omitempty"`
	ScanDirs                  map[string]ScanDirValue `json:"scan_dirs,omitempty"`
	ExportDir                 *string                 `json:"export_dir,omitempty"`
	ExportDirFin              *string                 `json:"export_dir_fin,omitempty"`

	MailNotificationEnabled     *bool   `json:"mail_notification_enabled,omitempty"`
	MailNotificationSender      *string `json:"mail_notification_sender,omitempty"`
	MailNotificationEmail       *string `json:"mail_notification_email,omitempty"`
	MailNotificationSMTP        *string `json:"mail_notification_smtp,omitempty"`
	MailNotificationSSLEnabled  *bool   `json:"mail_notification_ssl_enabled,omitempty"`
	MailNotificationAuthEnabled *bool   `json:"mail_notification_auth_enabled,omitempty"`
	MailNotificationUsername    *string `json:"mail_notification_username,omitempty"`
	MailNotificationPassword    *string `json:"mail_notification_password,omitempty"`

	AutorunEnabled *bool   `json:"autorun_enabled,omitempty"`
	AutorunProgram *string `json:"autorun_program,omitempty"`

	QueueingEnabled            *bool  `json:"queueing_enabled,omitempty"`
	MaxActiveDownloads         *int64 `json:"max_active_downloads,omitempty"`
	MaxActiveTorrents          *int64 `json:"max_active_torrents,omitempty"`
	MaxActiveUploads           *int64 `json:"max_active_uploads,omitempty"`
	DontCountSlowTorrents      *bool  `json:"dont_count_slow_torrents,omitempty"`
	SlowTorrentDlRateThreshold *int64 `json:"slow_torrent_dl_rate_threshold,omitempty"`
	SlowTorrentUlRateThreshold *int64 `json:"slow_torrent_ul_rate_threshold,omitempty"`
	SlowTorrentInactiveTimer   *int64 `json:"slow_torrent_inactive_timer,omitempty"`

	MaxRatioEnabled *bool           `json:"max_ratio_enabled,omitempty"`
	MaxRatio        *float64        `json:"max_ratio,omitempty"`
	MaxRatioAct     *MaxRatioAction `json:"max_ratio_act,omitempty"`

	ListenPort *int64 `json:"listen_port,omitempty"`
	UPnP       *bool  `json:"upnp,omitempty"`
	RandomPort *bool  `json:"random_port,omitempty"`

	// Global speed limits in KiB/s; -1 means no limit is applied.
	DlLimit              *int64 `json:"dl_limit,omitempty"`
	UpLimit              *int64 `json:"up_limit,omitempty"`
	MaxConnec            *int64 `json:"max_connec,omitempty"`
	MaxConnecPerTorrent  *int64 `json:"max_connec_per_torrent,omitempty"`
	MaxUploads           *int64 `json:"max_uploads,omitempty"`
	MaxUploadsPerTorrent *int64 `json:"max_uploads_per_torrent,omitempty"`

	StopTrackerTimeout        *int64              `json:"stop_tracker_timeout,omitempty"`
	EnablePieceExtentAffinity *bool               `json:"enable_piece_extent_affinity,omitempty"`
	BittorrentProtocol        *BittorrentProtocol `json:"bittorrent_protocol,omitempty"`
	LimitUTPRate              *bool               `json:"limit_utp_rate,omitempty"`
	LimitTCPOverhead          *bool               `json:"limit_tcp_overhead,omitempty"`
	LimitLANPeers             *bool               `json:"limit_lan_peers,omitempty"`

	AltDlLimit       *int64         `json:"alt_dl_limit,omitempty"`
	AltUpLimit       *int64         `json:"alt_up_limit,omitempty"`
	SchedulerEnabled *bool          `json:"scheduler_enabled,omitempty"`
	ScheduleFromHour *int64         `json:"schedule_from_hour,omitempty"`
	ScheduleFromMin  *int64         `json:"schedule_from_min,omitempty"`
	ScheduleToHour   *int64         `json:"schedule_to_hour,omitempty"`
	ScheduleToMin    *int64         `json:"schedule_to_min,omitempty"`
	SchedulerDays    *SchedulerDays `json:"scheduler_days,omitempty"`

	DHT           *bool       `json:"dht,omitempty"`
	PeX           *bool       `json:"pex,omitempty"`
	LSD           *bool       `json:"lsd,omitempty"`
	Encryption    *Encryption `json:"encryption,omitempty"`
	AnonymousMode *bool       `json:"anonymous_mode,omitempty"`

	ProxyType            *ProxyType `json:"proxy_type,omitempty"`
	ProxyIP              *string    `json:"proxy_ip,omitempty"`
	ProxyPort            *int64     `json:"proxy_port,omitempty"`
	ProxyPeerConnections *bool      `json:"proxy_peer_connections,omitempty"`
	ProxyAuthEnabled     *bool      `json:"proxy_auth_enabled,omitempty"`
	ProxyUsername        *string    `json:"proxy_username,omitempty"`
	ProxyPassword        *string    `json:"proxy_password,omitempty"`
	ProxyTorrentsOnly    *bool      `json:"proxy_torrents_only,omitempty"`

	IPFilterEnabled  *bool   `json:"ip_filter_enabled,omitempty"`
	IPFilterPath     *string `json:"ip_filter_path,omitempty"`
	IPFilterTrackers *bool   `json:"ip_filter_trackers,omitempty"`

	WebUIDomainList                    *string `json:"web_ui_domain_list,omitempty"`
	WebUIAddress                       *string `json:"web_ui_address,omitempty"`
	WebUIPort                          *int64  `json:"web_ui_port,omitempty"`
	WebUIUPnP                          *bool   `json:"web_ui_upnp,omitempty"`
	WebUIUsername                      *string `json:"web_ui_username,omitempty"`
	// Write-only for API >= v2.3.0: plaintext password, never read back.
	WebUIPassword                      *string `json:"web_ui_password,omitempty"`
	WebUICSRFProtectionEnabled         *bool   `json:"web_ui_csrf_protection_enabled,omitempty"`
	WebUIClickjackingProtectionEnabled *bool   `json:"web_ui_clickjacking_protection_enabled,omitempty"`
	WebUISecureCookieEnabled           *bool   `json:"web_ui_secure_cookie_enabled,omitempty"`
	WebUIMaxAuthFailCount              *int64  `json:"web_ui_max_auth_fail_count,omitempty"`
	WebUIBanDuration                   *int64  `json:"web_ui_ban_duration,omitempty"`
	WebUISessionTimeout                *int64  `json:"web_ui_session_timeout,omitempty"`
	WebUIHostHeaderValidationEnabled   *bool   `json:"web_ui_host_header_validation_enabled,omitempty"`

	BypassLocalAuth                  *bool   `json:"bypass_local_auth,omitempty"`
	BypassAuthSubnetWhitelistEnabled *bool   `json:"bypass_auth_subnet_whitelist_enabled,omitempty"`
	BypassAuthSubnetWhitelist        *string `json:"bypass_auth_subnet_whitelist,omitempty"`

	AlternativeWebUIEnabled *bool   `json:"alternative_webui_enabled,omitempty"`
	AlternativeWebUIPath    *string `json:"alternative_webui_path,omitempty"`

	UseHTTPS           *bool   `json:"use_https,omitempty"`
	SSLKey             *string `json:"ssl_key,omitempty"`
	SSLCert            *string `json:"ssl_cert,omitempty"`
	WebUIHTTPSKeyPath  *string `json:"web_ui_https_key_path,omitempty"`
	WebUIHTTPSCertPath *string `json:"web_ui_https_cert_path,omitempty"`

	DyndnsEnabled  *bool          `json:"dyndns_enabled,omitempty"`
	DyndnsService  *DyndnsService `json:"dyndns_service,omitempty"`
	DyndnsUsername *string        `json:"dyndns_username,omitempty"`
	DyndnsPassword *string        `json:"dyndns_password,omitempty"`
	DyndnsDomain   *string        `json:"dyndns_domain,omitempty"`

	RSSRefreshInterval              *int64  `json:"rss_refresh_interval,omitempty"`
	RSSMaxArticlesPerFeed           *int64  `json:"rss_max_articles_per_feed,omitempty"`
	RSSProcessingEnabled            *bool   `json:"rss_processing_enabled,omitempty"`
	RSSAutoDownloadingEnabled       *bool   `json:"rss_auto_downloading_enabled,omitempty"`
	RSSDownloadRepackProperEpisodes *bool   `json:"rss_download_repack_proper_episodes,omitempty"`
	RSSSmartEpisodeFilters          *string `json:"rss_smart_episode_filters,omitempty"`

	AddTrackersEnabled *bool   `json:"add_trackers_enabled,omitempty"`
	AddTrackers        *string `json:"add_trackers,omitempty"`

	WebUIUseCustomHTTPHeadersEnabled *bool   `json:"web_ui_use_custom_http_headers_enabled,omitempty"`
	WebUICustomHTTPHeaders           *string `json:"web_ui_custom_http_headers,omitempty"`

	MaxSeedingTimeEnabled *bool  `json:"max_seeding_time_enabled,omitempty"`
	MaxSeedingTime        *int64 `json:"max_seeding_time,omitempty"`

	AnnounceIP            *string `json:"announce_ip,omitempty"`
	AnnounceToAllTiers    *bool   `json:"announce_to_all_tiers,omitempty"`
	AnnounceToAllTrackers *bool   `json:"announce_to_all_trackers,omitempty"`

	AsyncIOThreads                   *int64                  `json:"async_io_threads,omitempty"`
	BannedIPs                        *string                 `json:"banned_ips,omitempty"`
	CheckingMemoryUse                *int64                  `json:"checking_memory_use,omitempty"`
	CurrentInterfaceAddress          *string                 `json:"current_interface_address,omitempty"`
	CurrentNetworkInterface          *string                 `json:"current_network_interface,omitempty"`
	DiskCache                        *int64                  `json:"disk_cache,omitempty"`
	DiskCacheTTL                     *int64                  `json:"disk_cache_ttl,omitempty"`
	EmbeddedTrackerPort              *int64                  `json:"embedded_tracker_port,omitempty"`
	EnableCoalesceReadWrite          *bool                   `json:"enable_coalesce_read_write,omitempty"`
	EnableEmbeddedTracker            *bool                   `json:"enable_embedded_tracker,omitempty"`
	EnableMultiConnectionsFromSameIP *bool                   `json:"enable_multi_connections_from_same_ip,omitempty"`
	EnableOSCache                    *bool                   `json:"enable_os_cache,omitempty"`
	EnableUploadSuggestions          *bool                   `json:"enable_upload_suggestions,omitempty"`
	FilePoolSize                     *int64                  `json:"file_pool_size,omitempty"`
	OutgoingPortsMax                 *int64                  `json:"outgoing_ports_max,omitempty"`
	OutgoingPortsMin                 *int64                  `json:"outgoing_ports_min,omitempty"`
	RecheckCompletedTorrents         *bool                   `json:"recheck_completed_torrents,omitempty"`
	ResolvePeerCountries             *bool                   `json:"resolve_peer_countries,omitempty"`
	SaveResumeDataInterval           *int64                  `json:"save_resume_data_interval,omitempty"`
	SendBufferLowWatermark           *int64                  `json:"send_buffer_low_watermark,omitempty"`
	SendBufferWatermark              *int64                  `json:"send_buffer_watermark,omitempty"`
	SendBufferWatermarkFactor        *int64                  `json:"send_buffer_watermark_factor,omitempty"`
	SocketBacklogSize                *int64                  `json:"socket_backlog_size,omitempty"`
	UploadChokingAlgorithm           *UploadChokingAlgorithm `json:"upload_choking_algorithm,omitempty"`
	UploadSlotsBehavior              *UploadSlotsBehavior    `json:"upload_slots_behavior,omitempty"`
	UPnPLeaseDuration                *int64                  `json:"upnp_lease_duration,omitempty"`
	UtpTcpMixedMode                  *UtpTcpMixedMode        `json:"utp_tcp_mixed_mode,omitempty"`
}

// GetVersion returns the application version, e.g. "v4.5.2".
func (c *Client) GetVersion(ctx context.Context) (string, error) {
	resp, err := c.do(ctx, apiRequest{method: methodVersion})
	if err != nil {
		return "", err
	}
	if err := resp.checkStatus(); err != nil {
		return "", err
	}
	return resp.text(), nil
}

// GetWebAPIVersion returns the WebAPI version, e.g. "2.8.3".
func (c *Client) GetWebAPIVersion(ctx context.Context) (string, error) {
	resp, err := c.do(ctx, apiRequest{method: methodWebAPIVersion})
	if err != nil {
		return "", err
	}
	if err := resp.checkStatus(); err != nil {
		return "", err
	}
	return resp.text(), nil
}

// GetBuildInfo returns the remote build information.
func (c *Client) GetBuildInfo(ctx context.Context) (*BuildInfo, error) {
	resp, err := c.do(ctx, apiRequest{method: methodBuildInfo})
	if err != nil {
		return nil, err
	}
	if err := resp.checkStatus(); err != nil {
		return nil, err
	}
	var info BuildInfo
	if err := resp.decodeJSON(&info); err != nil {
		return nil, err
	}
	return &info, nil
}

// Shutdown asks the remote application to exit.
func (c *Client) Shutdown(ctx context.Context) error {
	resp, err := c.do(ctx, apiRequest{method: methodShutdown})
	if err != nil {
		return err
	}
	return resp.checkStatus()
}

// GetPreferences returns the full application settings object.
func (c *Client) GetPreferences(ctx context.Context) (*Preferences, error) {
	resp, err := c.do(ctx, apiRequest{method: methodPreferences})
	if err != nil {
		return nil, err
	}
	if err := resp.checkStatus(); err != nil {
		return nil, err
	}
	var prefs Preferences
	if err := resp.decodeJSON(&prefs); err != nil {
		return nil, err
	}
	return &prefs, nil
}

// SetPreferences applies a partial update: only the fields set on prefs
// are encoded and changed server-side, everything else is left alone.
func (c *Client) SetPreferences(ctx context.Context, prefs *Preferences) error {
	resp, err := c.do(ctx, apiRequest{method: methodSetPreferences, json: prefs})
	if err != nil {
		return err
	}
	return resp.checkStatus()
}

// GetDefaultSavePath returns the default save path for new torrents.
func (c *Client) GetDefaultSavePath(ctx context.Context) (string, error) {
	resp, err := c.do(ctx, apiRequest{method: methodDefaultSavePath})
	if err != nil {
		return "", err
	}
	if err := resp.checkStatus(); err != nil {
		return "", err
	}
	return resp.text(), nil
}
