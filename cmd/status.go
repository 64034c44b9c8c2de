package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/qbitctl/qbitctl/qbittorrent"
)

// statusCmd represents the status command
var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show instance and transfer status",
	RunE:  runStatus,
}

func init() {
	rootCmd.AddCommand(statusCmd)
}

func runStatus(cmd *cobra.Command, args []string) error {
	var (
		version    string
		apiVersion string
		build      *qbittorrent.BuildInfo
		transfer   *qbittorrent.TransferInfo
		mode       qbittorrent.SpeedLimitsMode
	)

	// The status endpoints are independent; fetch them concurrently.
	g, ctx := errgroup.WithContext(cmd.Context())

	g.Go(func() error {
		var err error
		version, err = client.GetVersion(ctx)
		return err
	})
	g.Go(func() error {
		var err error
		apiVersion, err = client.GetWebAPIVersion(ctx)
		return err
	})
	g.Go(func() error {
		var err error
		build, err = client.GetBuildInfo(ctx)
		return err
	})
	g.Go(func() error {
		var err error
		transfer, err = client.GetTransferInfo(ctx)
		return err
	})
	g.Go(func() error {
		var err error
		mode, err = client.GetSpeedLimitsMode(ctx)
		return err
	})

	if err := g.Wait(); err != nil {
		return fmt.Errorf("failed to get status: %w", err)
	}

	fmt.Printf("qBittorrent %s (WebAPI %s)\n", version, apiVersion)
	fmt.Printf("  Qt %s, libtorrent %s, %d-bit\n", build.Qt, build.Libtorrent, build.Bitness)

	fmt.Printf("\nConnection: %s (%d DHT nodes)\n", transfer.ConnectionStatus, transfer.DHTNodes)
	fmt.Printf("Download:   %s/s (session total %s)\n", formatBytes(transfer.DlInfoSpeed), formatBytes(transfer.DlInfoData))
	fmt.Printf("Upload:     %s/s (session total %s)\n", formatBytes(transfer.UpInfoSpeed), formatBytes(transfer.UpInfoData))
	if mode == qbittorrent.SpeedLimitsAlternative {
		fmt.Println("Alternative speed limits are active")
	}

	return nil
}
