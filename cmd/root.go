package cmd

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/qbitctl/qbitctl/config"
	"github.com/qbitctl/qbitctl/qbittorrent"
)

var (
	cfgFile string
	cfg     *config.Config
	logger  zerolog.Logger
	client  *qbittorrent.Client

	// Command flags
	filterExpr  string
	preset      string
	dryRun      bool
	noConfirm   bool
	deleteFiles bool
)

// Version information, set at build time via main
var (
	appVersion   = "dev"
	appBuildTime = "unknown"
)

// SetVersion sets the version information from build flags
func SetVersion(version, buildTime string) {
	appVersion = version
	appBuildTime = buildTime
	rootCmd.Version = version
}

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "qbitctl",
	Short: "A tool to inspect and manage a qBittorrent instance",
	Long: `qbitctl is a CLI tool for the qBittorrent WebUI API. It lists and
manages torrents with filter expressions, controls transfer limits,
and inspects the running instance.`,
	PersistentPreRunE: initializeApp,
	PersistentPostRun: teardownApp,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./config.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&dryRun, "dry-run", "d", false, "perform a dry run without making changes")

	rootCmd.AddCommand(testCmd)
}

// commandsWithoutSession runs locally, without a configured instance.
var commandsWithoutSession = map[string]bool{
	"update":     true,
	"help":       true,
	"completion": true,
}

// initializeApp loads the configuration and opens the API session
func initializeApp(cmd *cobra.Command, args []string) error {
	if commandsWithoutSession[cmd.Name()] {
		return nil
	}

	// Load configuration
	var err error
	cfg, err = config.Load(cfgFile)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	// Setup logger
	logger = setupLogger(cfg.Logging)

	// Override dry-run from command line if specified
	if cmd.Flags().Changed("dry-run") {
		cfg.Safety.DryRun = dryRun
	}

	// Create the API client and log in
	opts := []qbittorrent.Option{
		qbittorrent.WithUserAgent("qbitctl/" + appVersion),
	}
	if cfg.Qbittorrent.TimeoutSeconds > 0 {
		opts = append(opts, qbittorrent.WithTimeout(time.Duration(cfg.Qbittorrent.TimeoutSeconds)*time.Second))
	}

	client, err = qbittorrent.NewClient(cfg.Qbittorrent.URL, logger, opts...)
	if err != nil {
		return fmt.Errorf("failed to create qBittorrent client: %w", err)
	}

	if err := client.Login(cmd.Context(), cfg.Qbittorrent.Username, cfg.Qbittorrent.Password); err != nil {
		return fmt.Errorf("failed to log in to %s: %w", client.BaseURL(), err)
	}

	logger.Debug().Str("url", client.BaseURL()).Msg("Session established")
	return nil
}

// teardownApp ends the API session
func teardownApp(cmd *cobra.Command, args []string) {
	if client == nil || !client.LoggedIn() {
		return
	}
	if err := client.Logout(cmd.Context()); err != nil {
		logger.Debug().Err(err).Msg("Logout failed")
	}
}

// setupLogger configures the zerolog logger
func setupLogger(cfg config.LoggingConfig) zerolog.Logger {
	// Set log level
	level := zerolog.InfoLevel
	switch strings.ToLower(cfg.Level) {
	case "trace":
		level = zerolog.TraceLevel
	case "debug":
		level = zerolog.DebugLevel
	case "warn":
		level = zerolog.WarnLevel
	case "error":
		level = zerolog.ErrorLevel
	}

	zerolog.SetGlobalLevel(level)

	// Configure output format
	if cfg.Format == "json" {
		return zerolog.New(os.Stderr).With().Timestamp().Logger()
	}

	// Console format; color only when writing to a terminal
	noColor := !cfg.Color || !isatty.IsTerminal(os.Stderr.Fd())
	output := zerolog.ConsoleWriter{
		Out:        os.Stderr,
		TimeFormat: time.RFC3339,
		NoColor:    noColor,
	}

	return zerolog.New(output).With().Timestamp().Logger()
}

// testCmd represents the test command
var testCmd = &cobra.Command{
	Use:   "test",
	Short: "Test connection to qBittorrent",
	Long:  `Test the connection to your qBittorrent instance and display basic information.`,
	RunE:  runTest,
}

func runTest(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	fmt.Printf("Testing connection to qBittorrent at %s...\n", client.BaseURL())
	fmt.Println("✓ Login successful!")

	version, err := client.GetVersion(ctx)
	if err != nil {
		return fmt.Errorf("failed to get version: %w", err)
	}

	apiVersion, err := client.GetWebAPIVersion(ctx)
	if err != nil {
		return fmt.Errorf("failed to get WebAPI version: %w", err)
	}

	torrents, err := client.ListTorrents(ctx, qbittorrent.TorrentListOptions{})
	if err != nil {
		return fmt.Errorf("failed to list torrents: %w", err)
	}

	fmt.Printf("\nqBittorrent %s (WebAPI %s)\n", version, apiVersion)
	fmt.Printf("- Total torrents: %d\n", len(torrents))

	return nil
}

// getFilterExpression determines the filter expression to use
func getFilterExpression() (string, error) {
	// Priority: command line filter > preset from config
	if filterExpr != "" {
		return filterExpr, nil
	}

	if preset != "" {
		if expression, ok := cfg.Filter[preset]; ok {
			return expression, nil
		}
		return "", fmt.Errorf("preset '%s' not found in config", preset)
	}

	return "", fmt.Errorf("no filter expression specified")
}
