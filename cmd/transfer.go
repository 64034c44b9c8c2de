package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/qbitctl/qbitctl/qbittorrent"
)

var (
	limitDl int64
	limitUp int64

	logPeers    bool
	logLastID   int64
	logNoNormal bool
)

// limitsCmd represents the limits command
var limitsCmd = &cobra.Command{
	Use:   "limits",
	Short: "Show or change the global transfer limits",
	Long: `Without flags, shows the current global download and upload limits.
With --dl or --up, sets them (bytes/s, 0 removes the limit).`,
	RunE: runLimits,
}

func init() {
	rootCmd.AddCommand(limitsCmd)

	limitsCmd.Flags().Int64Var(&limitDl, "dl", -1, "set global download limit in bytes/s (0 = unlimited)")
	limitsCmd.Flags().Int64Var(&limitUp, "up", -1, "set global upload limit in bytes/s (0 = unlimited)")
}

func runLimits(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	if cmd.Flags().Changed("dl") {
		if cfg.Safety.DryRun {
			fmt.Printf("[DRY RUN] Would set download limit to %d\n", limitDl)
		} else if err := client.SetDownloadLimit(ctx, limitDl); err != nil {
			return fmt.Errorf("failed to set download limit: %w", err)
		}
	}

	if cmd.Flags().Changed("up") {
		if cfg.Safety.DryRun {
			fmt.Printf("[DRY RUN] Would set upload limit to %d\n", limitUp)
		} else if err := client.SetUploadLimit(ctx, limitUp); err != nil {
			return fmt.Errorf("failed to set upload limit: %w", err)
		}
	}

	dl, err := client.GetDownloadLimit(ctx)
	if err != nil {
		return fmt.Errorf("failed to get download limit: %w", err)
	}

	up, err := client.GetUploadLimit(ctx)
	if err != nil {
		return fmt.Errorf("failed to get upload limit: %w", err)
	}

	mode, err := client.GetSpeedLimitsMode(ctx)
	if err != nil {
		return fmt.Errorf("failed to get speed limits mode: %w", err)
	}

	fmt.Printf("Download limit: %s\n", formatLimit(dl))
	fmt.Printf("Upload limit:   %s\n", formatLimit(up))
	if mode == qbittorrent.SpeedLimitsAlternative {
		fmt.Println("Alternative speed limits are active")
	}

	return nil
}

func formatLimit(limit int64) string {
	if limit == 0 {
		return "unlimited"
	}
	return fmt.Sprintf("%s/s", formatBytes(limit))
}

// toggleAltCmd represents the toggle-alt command
var toggleAltCmd = &cobra.Command{
	Use:   "toggle-alt",
	Short: "Toggle the alternative speed limits",
	RunE: func(cmd *cobra.Command, args []string) error {
		if cfg.Safety.DryRun {
			fmt.Println("[DRY RUN] Would toggle alternative speed limits")
			return nil
		}

		if err := client.ToggleSpeedLimitsMode(cmd.Context()); err != nil {
			return fmt.Errorf("failed to toggle speed limits mode: %w", err)
		}

		mode, err := client.GetSpeedLimitsMode(cmd.Context())
		if err != nil {
			return fmt.Errorf("failed to get speed limits mode: %w", err)
		}

		if mode == qbittorrent.SpeedLimitsAlternative {
			fmt.Println("Alternative speed limits enabled")
		} else {
			fmt.Println("Normal speed limits enabled")
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(toggleAltCmd)
}

// logCmd represents the log command
var logCmd = &cobra.Command{
	Use:   "log",
	Short: "Show the application or peer log",
	RunE:  runLog,
}

func init() {
	rootCmd.AddCommand(logCmd)

	logCmd.Flags().BoolVar(&logPeers, "peers", false, "show the peer block log instead")
	logCmd.Flags().Int64Var(&logLastID, "last-id", -1, "only entries with id greater than this")
	logCmd.Flags().BoolVar(&logNoNormal, "no-normal", false, "hide normal severity entries")
}

func runLog(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	if logPeers {
		entries, err := client.GetPeerLog(ctx, qbittorrent.PeerLogOptions{LastKnownID: logLastID})
		if err != nil {
			return fmt.Errorf("failed to get peer log: %w", err)
		}
		for _, entry := range entries {
			action := "unblocked"
			if entry.Blocked {
				action = "blocked"
			}
			fmt.Printf("%s  %s %s (%s)\n",
				time.Unix(entry.Timestamp, 0).Format(time.RFC3339), entry.IP, action, entry.Reason)
		}
		return nil
	}

	opts := qbittorrent.DefaultLogOptions()
	opts.LastKnownID = logLastID
	opts.Normal = !logNoNormal

	entries, err := client.GetMainLog(ctx, opts)
	if err != nil {
		return fmt.Errorf("failed to get log: %w", err)
	}

	for _, entry := range entries {
		fmt.Printf("%s  [%s] %s\n",
			time.Unix(entry.Timestamp, 0).Format(time.RFC3339), logTypeLabel(entry.Type), entry.Message)
	}
	return nil
}

func logTypeLabel(t qbittorrent.LogType) string {
	switch t {
	case qbittorrent.LogNormal:
		return "normal"
	case qbittorrent.LogInfo:
		return "info"
	case qbittorrent.LogWarning:
		return "warning"
	case qbittorrent.LogCritical:
		return "critical"
	default:
		return "unknown"
	}
}
