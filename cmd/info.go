package cmd

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/qbitctl/qbitctl/qbittorrent"
)

var (
	infoTrackers bool
	infoFiles    bool
	infoPeers    bool
)

// infoCmd represents the info command
var infoCmd = &cobra.Command{
	Use:   "info <hash>",
	Short: "Show details of one torrent",
	Args:  cobra.ExactArgs(1),
	RunE:  runInfo,
}

func init() {
	rootCmd.AddCommand(infoCmd)

	infoCmd.Flags().BoolVar(&infoTrackers, "trackers", false, "also list trackers")
	infoCmd.Flags().BoolVar(&infoFiles, "files", false, "also list files")
	infoCmd.Flags().BoolVar(&infoPeers, "peers", false, "also list connected peers")
}

func runInfo(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	hash := args[0]

	props, err := client.GetTorrentProperties(ctx, hash)
	if err != nil {
		if errors.Is(err, qbittorrent.ErrTorrentNotFound) {
			return fmt.Errorf("no torrent with hash %s", hash)
		}
		return fmt.Errorf("failed to get torrent properties: %w", err)
	}

	fmt.Printf("Save path:  %s\n", props.SavePath)
	fmt.Printf("Size:       %s (%d/%d pieces of %s)\n",
		formatBytes(props.TotalSize), props.PiecesHave, props.PiecesNum, formatBytes(props.PieceSize))
	fmt.Printf("Ratio:      %.2f\n", props.ShareRatio)
	fmt.Printf("Peers:      %d of %d (seeds %d of %d)\n",
		props.Peers, props.PeersTotal, props.Seeds, props.SeedsTotal)
	fmt.Printf("Added:      %s\n", time.Unix(props.AdditionDate, 0).Format(time.RFC3339))
	if props.Comment != "" {
		fmt.Printf("Comment:    %s\n", props.Comment)
	}

	if infoTrackers {
		trackers, err := client.GetTorrentTrackers(ctx, hash)
		if err != nil {
			return fmt.Errorf("failed to get trackers: %w", err)
		}
		fmt.Printf("\nTrackers:\n")
		for _, tracker := range trackers {
			fmt.Printf("  %s [%s]", tracker.URL, trackerStatusLabel(tracker.Status))
			if tracker.Msg != "" {
				fmt.Printf(" %s", tracker.Msg)
			}
			fmt.Println()
		}
	}

	if infoFiles {
		files, err := client.GetTorrentFiles(ctx, hash)
		if err != nil {
			return fmt.Errorf("failed to get files: %w", err)
		}
		fmt.Printf("\nFiles:\n")
		for _, file := range files {
			skipped := ""
			if file.Priority == 0 {
				skipped = " (skipped)"
			}
			fmt.Printf("  %s  %s  %.1f%%%s\n", file.Name, formatBytes(file.Size), file.Progress*100, skipped)
		}
	}

	if infoPeers {
		peers, err := client.GetTorrentPeers(ctx, hash, 0)
		if err != nil {
			return fmt.Errorf("failed to get peers: %w", err)
		}
		fmt.Printf("\nPeers:\n")
		for addr, peer := range peers.Peers {
			fmt.Printf("  %s  %s  dl %s/s up %s/s  %.1f%%\n",
				addr, peer.Client, formatBytes(peer.DlSpeed), formatBytes(peer.UpSpeed), peer.Progress*100)
		}
	}

	return nil
}

func trackerStatusLabel(s qbittorrent.TrackerStatus) string {
	switch s {
	case qbittorrent.TrackerDisabled:
		return "disabled"
	case qbittorrent.TrackerNotContacted:
		return "not contacted"
	case qbittorrent.TrackerWorking:
		return "working"
	case qbittorrent.TrackerUpdating:
		return "updating"
	case qbittorrent.TrackerNotWorking:
		return "not working"
	default:
		return strings.TrimSpace(fmt.Sprintf("status %d", int(s)))
	}
}
