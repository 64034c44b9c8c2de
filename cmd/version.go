package cmd

import (
	"fmt"

	"github.com/blang/semver"
	"github.com/spf13/cobra"
)

// minWebAPIVersion is the oldest WebAPI this tool is written against.
var minWebAPIVersion = semver.MustParse("2.2.0")

// versionCmd represents the version command
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show qbitctl and remote instance versions",
	RunE:  runVersion,
}

func init() {
	rootCmd.AddCommand(versionCmd)
}

func runVersion(cmd *cobra.Command, args []string) error {
	fmt.Printf("qbitctl %s (built %s)\n", appVersion, appBuildTime)

	ctx := cmd.Context()

	version, err := client.GetVersion(ctx)
	if err != nil {
		return fmt.Errorf("failed to get version: %w", err)
	}

	apiVersion, err := client.GetWebAPIVersion(ctx)
	if err != nil {
		return fmt.Errorf("failed to get WebAPI version: %w", err)
	}

	fmt.Printf("qBittorrent %s (WebAPI %s)\n", version, apiVersion)

	remote, err := semver.ParseTolerant(apiVersion)
	if err != nil {
		logger.Warn().Str("version", apiVersion).Msg("Could not parse WebAPI version")
		return nil
	}

	if remote.LT(minWebAPIVersion) {
		fmt.Printf("\n⚠️  WebAPI %s is older than the supported minimum %s; some commands may fail.\n",
			apiVersion, minWebAPIVersion)
	}

	return nil
}
