// ABOUTME: CLI command to run one retention maintenance pass
// ABOUTME: Summarizes due records and purges expired ones, then prints the report
package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

// NewMaintainCmd creates the maintain command
func NewMaintainCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "maintain",
		Short: "Run one retention maintenance pass",
		Long: `Run one retention pass over the index: records due at 3 and 7
days are summarized (requires provider credentials), records due at
14 days are purged along with their summaries.

Intended to be run daily, e.g. from cron.`,
		RunE: runMaintain,
	}

	return cmd
}

func runMaintain(cmd *cobra.Command, args []string) error {
	service, _, err := newService()
	if err != nil {
		return err
	}

	report := service.RunMaintenance(cmd.Context())

	if !quiet {
		fmt.Fprintf(cmd.OutOrStdout(), "Summarized (3d): %s\n", joinOrNone(report.Summarized3d))
		fmt.Fprintf(cmd.OutOrStdout(), "Summarized (7d): %s\n", joinOrNone(report.Summarized7d))
		fmt.Fprintf(cmd.OutOrStdout(), "Purged (14d):    %s\n", joinOrNone(report.Purged14d))
	}
	return nil
}

func joinOrNone(dates []string) string {
	if len(dates) == 0 {
		return "none"
	}
	return strings.Join(dates, ", ")
}
