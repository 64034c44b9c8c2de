package config

// Config represents the complete configuration structure
type Config struct {
	Qbittorrent QbittorrentConfig `mapstructure:"qbittorrent"`
	Filter      FilterConfig      `mapstructure:"filter"`
	Safety      SafetyConfig      `mapstructure:"safety"`
	Logging     LoggingConfig     `mapstructure:"logging"`
}

// QbittorrentConfig holds WebUI connection details
type QbittorrentConfig struct {
	URL      string `mapstructure:"url"`
	Username string `mapstructure:"username"`
	Password string `mapstructure:"password"`
	// TimeoutSeconds bounds every API round trip; 0 keeps the default.
	TimeoutSeconds int `mapstructure:"timeout_seconds"`
}

// FilterConfig contains named filter expressions for the list command
type FilterConfig map[string]string

// SafetyConfig contains safety-related settings
type SafetyConfig struct {
	DryRun        bool `mapstructure:"dry_run"`
	ConfirmDelete bool `mapstructure:"confirm_delete"`
	ShowDetails   bool `mapstructure:"show_details"`
}

// LoggingConfig contains logging configuration
type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
	Color  bool   `mapstructure:"color"`
}
