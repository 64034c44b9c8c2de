package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/qbitctl/qbitctl/filter"
	"github.com/qbitctl/qbitctl/qbittorrent"
)

var (
	listCategory string
	listState    string
	listLimit    int

	addSavePath  string
	addCategory  string
	addPaused    bool
	addSkipCheck bool
)

// listCmd represents the list command
var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List torrents, optionally narrowed by a filter expression",
	Long: `List torrents known to the instance. The --filter flag takes an
expression over torrent fields, e.g.:

  qbitctl list --filter 'state == "stalledDL" and daysSince(added_on) > 7'`,
	RunE: runList,
}

func init() {
	rootCmd.AddCommand(listCmd)

	listCmd.Flags().StringVarP(&filterExpr, "filter", "f", "", "filter expression")
	listCmd.Flags().StringVarP(&preset, "preset", "p", "", "use a preset filter from config")
	listCmd.Flags().StringVar(&listCategory, "category", "", "only torrents in this category")
	listCmd.Flags().StringVar(&listState, "state", "", "lifecycle group (downloading, seeding, completed, paused, ...)")
	listCmd.Flags().IntVar(&listLimit, "limit", 0, "maximum number of torrents to show")
}

func runList(cmd *cobra.Command, args []string) error {
	torrents, err := selectTorrents(cmd)
	if err != nil {
		return err
	}

	if len(torrents) == 0 {
		fmt.Println("No torrents found matching the criteria.")
		return nil
	}

	fmt.Printf("\nFound %d torrents:\n", len(torrents))
	fmt.Println(strings.Repeat("-", 80))

	for _, torrent := range torrents {
		fmt.Printf("• %s [%s]\n", torrent.Name, torrent.State)
		if cfg.Safety.ShowDetails {
			fmt.Printf("  Hash: %s\n", torrent.Hash)
			fmt.Printf("  Progress: %.1f%%  Ratio: %.2f  Size: %s\n",
				torrent.Progress*100, torrent.Ratio, formatBytes(torrent.Size))
			if torrent.Category != "" {
				fmt.Printf("  Category: %s\n", torrent.Category)
			}
		}
	}

	return nil
}

// selectTorrents fetches the torrent list and applies the filter
// expression when one is given.
func selectTorrents(cmd *cobra.Command) ([]qbittorrent.Torrent, error) {
	opts := qbittorrent.TorrentListOptions{
		Filter:   qbittorrent.TorrentFilter(listState),
		Category: listCategory,
		Limit:    listLimit,
	}

	torrents, err := client.ListTorrents(cmd.Context(), opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list torrents: %w", err)
	}

	if filterExpr == "" && preset == "" {
		return torrents, nil
	}

	expression, err := getFilterExpression()
	if err != nil {
		return nil, err
	}

	logger.Debug().Str("filter", expression).Msg("Applying filter")

	f, err := filter.Compile(expression)
	if err != nil {
		return nil, fmt.Errorf("invalid filter expression: %w", err)
	}

	return f.Apply(torrents)
}

// addCmd represents the add command
var addCmd = &cobra.Command{
	Use:   "add <url|magnet>...",
	Short: "Add torrents from links or magnet URIs",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runAdd,
}

func init() {
	rootCmd.AddCommand(addCmd)

	addCmd.Flags().StringVar(&addSavePath, "save-path", "", "download location")
	addCmd.Flags().StringVar(&addCategory, "category", "", "category for the new torrents")
	addCmd.Flags().BoolVar(&addPaused, "paused", false, "add in paused state")
	addCmd.Flags().BoolVar(&addSkipCheck, "skip-checking", false, "skip hash checking")
}

func runAdd(cmd *cobra.Command, args []string) error {
	if cfg.Safety.DryRun {
		fmt.Printf("[DRY RUN] Would add %d torrents\n", len(args))
		return nil
	}

	opts := qbittorrent.AddTorrentOptions{
		URLs:         args,
		SavePath:     addSavePath,
		Category:     addCategory,
		Paused:       addPaused,
		SkipChecking: addSkipCheck,
	}

	if err := client.AddTorrent(cmd.Context(), opts); err != nil {
		return fmt.Errorf("failed to add torrents: %w", err)
	}

	logger.Info().Int("count", len(args)).Msg("Torrents added")
	return nil
}

// hashAction builds a command that applies one bulk operation to the
// torrents selected by filter or explicit hashes.
func hashAction(use, short string, action func(cmd *cobra.Command, hashes []string) error) *cobra.Command {
	c := &cobra.Command{
		Use:   use + " [hash]...",
		Short: short,
		RunE: func(cmd *cobra.Command, args []string) error {
			hashes, err := resolveHashes(cmd, args)
			if err != nil {
				return err
			}
			if len(hashes) == 0 {
				fmt.Println("No torrents selected.")
				return nil
			}
			if cfg.Safety.DryRun {
				fmt.Printf("[DRY RUN] Would %s %d torrents\n", use, len(hashes))
				return nil
			}
			return action(cmd, hashes)
		},
	}

	c.Flags().StringVarP(&filterExpr, "filter", "f", "", "filter expression")
	c.Flags().StringVarP(&preset, "preset", "p", "", "use a preset filter from config")
	return c
}

// resolveHashes turns explicit arguments or a filter expression into a
// hash list.
func resolveHashes(cmd *cobra.Command, args []string) ([]string, error) {
	if len(args) > 0 {
		return args, nil
	}

	if filterExpr == "" && preset == "" {
		return nil, fmt.Errorf("give torrent hashes or a --filter expression")
	}

	torrents, err := selectTorrents(cmd)
	if err != nil {
		return nil, err
	}

	hashes := make([]string, 0, len(torrents))
	for _, torrent := range torrents {
		hashes = append(hashes, torrent.Hash)
	}
	return hashes, nil
}

func init() {
	pauseCmd := hashAction("pause", "Pause the selected torrents", func(cmd *cobra.Command, hashes []string) error {
		if err := client.PauseTorrents(cmd.Context(), hashes...); err != nil {
			return fmt.Errorf("failed to pause torrents: %w", err)
		}
		logger.Info().Int("count", len(hashes)).Msg("Torrents paused")
		return nil
	})

	resumeCmd := hashAction("resume", "Resume the selected torrents", func(cmd *cobra.Command, hashes []string) error {
		if err := client.ResumeTorrents(cmd.Context(), hashes...); err != nil {
			return fmt.Errorf("failed to resume torrents: %w", err)
		}
		logger.Info().Int("count", len(hashes)).Msg("Torrents resumed")
		return nil
	})

	recheckCmd := hashAction("recheck", "Recheck the data of the selected torrents", func(cmd *cobra.Command, hashes []string) error {
		if err := client.RecheckTorrents(cmd.Context(), hashes...); err != nil {
			return fmt.Errorf("failed to recheck torrents: %w", err)
		}
		logger.Info().Int("count", len(hashes)).Msg("Recheck started")
		return nil
	})

	reannounceCmd := hashAction("reannounce", "Reannounce the selected torrents to their trackers", func(cmd *cobra.Command, hashes []string) error {
		if err := client.ReannounceTorrents(cmd.Context(), hashes...); err != nil {
			return fmt.Errorf("failed to reannounce torrents: %w", err)
		}
		logger.Info().Int("count", len(hashes)).Msg("Reannounce requested")
		return nil
	})

	rootCmd.AddCommand(pauseCmd, resumeCmd, recheckCmd, reannounceCmd)
}

// deleteCmd represents the delete command
var deleteCmd = &cobra.Command{
	Use:   "delete [hash]...",
	Short: "Delete the selected torrents",
	Long: `Delete torrents selected by hash or filter expression. Downloaded
data stays on disk unless --delete-files is given.`,
	RunE: runDelete,
}

func init() {
	rootCmd.AddCommand(deleteCmd)

	deleteCmd.Flags().StringVarP(&filterExpr, "filter", "f", "", "filter expression")
	deleteCmd.Flags().StringVarP(&preset, "preset", "p", "", "use a preset filter from config")
	deleteCmd.Flags().BoolVar(&noConfirm, "no-confirm", false, "skip confirmation prompt")
	deleteCmd.Flags().BoolVar(&deleteFiles, "delete-files", false, "also delete downloaded data from disk")
}

func runDelete(cmd *cobra.Command, args []string) error {
	hashes, err := resolveHashes(cmd, args)
	if err != nil {
		return err
	}
	if len(hashes) == 0 {
		fmt.Println("No torrents selected.")
		return nil
	}

	if cfg.Safety.DryRun {
		fmt.Printf("[DRY RUN] Would delete %d torrents (delete files: %v)\n", len(hashes), deleteFiles)
		return nil
	}

	if cfg.Safety.ConfirmDelete && !noConfirm {
		warning := ""
		if deleteFiles {
			warning = " and their data"
		}
		fmt.Printf("Delete %d torrents%s? [y/N]: ", len(hashes), warning)
		var response string
		fmt.Scanln(&response)
		if strings.ToLower(strings.TrimSpace(response)) != "y" {
			logger.Info().Msg("Deletion cancelled")
			return nil
		}
	}

	if err := client.DeleteTorrents(cmd.Context(), deleteFiles, hashes...); err != nil {
		return fmt.Errorf("failed to delete torrents: %w", err)
	}

	logger.Info().Int("count", len(hashes)).Bool("delete_files", deleteFiles).Msg("Torrents deleted")
	return nil
}

func formatBytes(n int64) string {
	const unit = 1024
	if n < unit {
		return fmt.Sprintf("%d B", n)
	}
	div, exp := int64(unit), 0
	for v := n / unit; v >= unit; v /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.1f %ciB", float64(n)/float64(div), "KMGTPE"[exp])
}
