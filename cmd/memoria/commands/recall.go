// ABOUTME: CLI command to collect recent memory into one text blob
// ABOUTME: Optional query filters lines case-insensitively
package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

var (
	recallQuery string
	recallDays  int
)

// NewRecallCmd creates the recall command
func NewRecallCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "recall",
		Short: "Collect recent short-term and long-term memory",
		Long: `Collect recent short-term records and the long-term fact store
into one text blob, the same view the chat prompt receives.

Examples:
  memoria recall
  memoria recall --days 7
  memoria recall --query coffee --days 14`,
		RunE: runRecall,
	}

	cmd.Flags().StringVar(&recallQuery, "query", "", "Case-insensitive substring filter")
	cmd.Flags().IntVar(&recallDays, "days", 14, "Day window to include")

	return cmd
}

func runRecall(cmd *cobra.Command, args []string) error {
	service, _, err := newService()
	if err != nil {
		return err
	}

	content, err := service.Store().Collect(recallQuery, recallDays)
	if err != nil {
		return fmt.Errorf("collecting memory: %w", err)
	}

	if content == "" {
		if !quiet {
			fmt.Fprintln(cmd.OutOrStdout(), "No memory available")
		}
		return nil
	}

	fmt.Fprintln(cmd.OutOrStdout(), content)
	return nil
}
