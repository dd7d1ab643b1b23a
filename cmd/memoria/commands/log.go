// ABOUTME: CLI command to append one chat turn to the short-term log
// ABOUTME: Creates the daily record and its index entry on first write
package commands

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
)

// NewLogCmd creates the log command
func NewLogCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "log <role> <text>",
		Short: "Append a chat turn to today's short-term log",
		Long: `Append one role-tagged chat turn to today's short-term memory log.

Examples:
  memoria log user "My favorite food is curry"
  memoria log assistant "Noted! Curry is a great choice."`,
		Args: cobra.ExactArgs(2),
		RunE: runLog,
	}

	return cmd
}

func runLog(cmd *cobra.Command, args []string) error {
	service, _, err := newService()
	if err != nil {
		return err
	}

	path, err := service.Store().Append(args[0], args[1], time.Now())
	if err != nil {
		return fmt.Errorf("logging turn: %w", err)
	}

	if !quiet {
		fmt.Fprintf(cmd.OutOrStdout(), "✓ Logged %s turn to %s\n", args[0], path)
	}
	return nil
}
