// ABOUTME: Version command reporting the build stamped in at release time
// ABOUTME: Falls back to dev/none/unknown for local builds
package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

// VersionInfo holds the build identification stamped in by the release
// pipeline via ldflags
type VersionInfo struct {
	Version string
	Commit  string
	Date    string
}

var versionInfo = VersionInfo{
	Version: "dev",
	Commit:  "none",
	Date:    "unknown",
}

// SetVersion records the build identification; called once from main
func SetVersion(version, commit, date string) {
	versionInfo = VersionInfo{Version: version, Commit: commit, Date: date}
}

// NewVersionCmd creates the version command
func NewVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Long:  `Print the Memoria build: release version, git commit, and build date.`,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "Memoria %s\n", versionInfo.Version)
			fmt.Fprintf(cmd.OutOrStdout(), "Commit: %s\n", versionInfo.Commit)
			fmt.Fprintf(cmd.OutOrStdout(), "Built:  %s\n", versionInfo.Date)
		},
	}
}
