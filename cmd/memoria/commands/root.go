// ABOUTME: Root CLI command with global flags and subcommand registration
// ABOUTME: All memory operations hang off this command
package commands

import (
	"github.com/spf13/cobra"
)

var (
	verbose bool
	quiet   bool
)

// NewRootCmd creates the root command with all subcommands attached
func NewRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "memoria",
		Short: "Durable conversational memory for an LLM chat backend",
		Long: `Memoria keeps a file-backed memory of chat conversations:
an append-only short-term log per day, a deduplicated long-term
fact store, and a retention schedule that summarizes records after
3 and 7 days and purges them after 14.

Configure via environment variables (MEMORY_ROOT, OPENAI_API_KEY,
OPENAI_MODEL, OPENAI_BASE_URL) or a .env file.`,
		SilenceUsage: true,
	}

	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Verbose output")
	root.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "Suppress non-essential output")

	root.AddCommand(
		NewLogCmd(),
		NewRecallCmd(),
		NewFactCmd(),
		NewShowCmd(),
		NewMaintainCmd(),
		NewMCPCmd(),
		NewVersionCmd(),
	)

	return root
}

// Execute runs the root command
func Execute() error {
	return NewRootCmd().Execute()
}
