// ABOUTME: CLI command to print raw memory documents
// ABOUTME: Shows one daily record by date, or the long-term fact store
package commands

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/harper/memoria/internal/memory"
)

// NewShowCmd creates the show command
func NewShowCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show <date>|long",
		Short: "Print a raw memory document",
		Long: `Print the raw short-term record for a date, or the long-term
fact store.

Examples:
  memoria show 2026-08-30
  memoria show long`,
		Args: cobra.ExactArgs(1),
		RunE: runShow,
	}

	return cmd
}

func runShow(cmd *cobra.Command, args []string) error {
	service, _, err := newService()
	if err != nil {
		return err
	}

	if args[0] == "long" {
		content, err := service.Store().ReadAll()
		if err != nil {
			return fmt.Errorf("reading fact store: %w", err)
		}
		if content == "" {
			if !quiet {
				fmt.Fprintln(cmd.OutOrStdout(), "No long-term memory yet")
			}
			return nil
		}
		fmt.Fprint(cmd.OutOrStdout(), content)
		return nil
	}

	content, err := service.Store().Read(args[0])
	if err != nil {
		if errors.Is(err, memory.ErrNotFound) {
			return fmt.Errorf("no record for %s", args[0])
		}
		return fmt.Errorf("reading record: %w", err)
	}

	fmt.Fprint(cmd.OutOrStdout(), content)
	return nil
}
