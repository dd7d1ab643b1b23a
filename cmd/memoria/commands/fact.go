// ABOUTME: CLI command to save a categorized fact to long-term memory
// ABOUTME: Reports saved or duplicate along with the fingerprint
package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/harper/memoria/internal/models"
)

// NewFactCmd creates the fact command
func NewFactCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "fact <category> <text>",
		Short: "Save a fact to long-term memory",
		Long: `Save a concise categorized fact to the long-term store.
Facts are fingerprinted; an already-known fact is rejected as a duplicate.

Categories: like, dislike, habit, other.

Examples:
  memoria fact like "curry"
  memoria fact habit "drinks coffee every morning"`,
		Args: cobra.ExactArgs(2),
		RunE: runFact,
	}

	return cmd
}

func runFact(cmd *cobra.Command, args []string) error {
	service, _, err := newService()
	if err != nil {
		return err
	}

	result, err := service.Store().AppendFact(args[1], args[0])
	if err != nil {
		return fmt.Errorf("saving fact: %w", err)
	}

	if !quiet {
		switch result.Status {
		case models.FactSaved:
			fmt.Fprintf(cmd.OutOrStdout(), "✓ Saved fact (fp:%s)\n", result.Fingerprint)
		case models.FactDuplicate:
			fmt.Fprintf(cmd.OutOrStdout(), "Duplicate fact, not saved (fp:%s)\n", result.Fingerprint)
		}
	}
	return nil
}
