// ABOUTME: MCP command starts Model Context Protocol server
// ABOUTME: Enables LLM agents like Claude to use the memory store via stdio
package commands

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	mcpserver "github.com/mark3labs/mcp-go/server"

	"github.com/harper/memoria/internal/mcp"
)

// NewMCPCmd creates the MCP command
func NewMCPCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "mcp",
		Short: "Start MCP server for LLM agents",
		Long: `Start MCP server for LLM agents

Runs Memoria as an MCP (Model Context Protocol) server, enabling
LLM agents to log turns, retrieve memory, save facts, and run
retention maintenance via stdio.`,
		RunE: runMCP,
		Example: `  # Start MCP server (typically called by an agent host)
  memoria mcp

  # Configure in claude_desktop_config.json:
  # {
  #   "mcpServers": {
  #     "memoria": {
  #       "command": "memoria",
  #       "args": ["mcp"]
  #     }
  #   }
  # }`,
	}

	return cmd
}

// runMCP starts the MCP server
func runMCP(cmd *cobra.Command, args []string) error {
	service, logger, err := newService()
	if err != nil {
		return err
	}

	server := mcpserver.NewMCPServer(
		"Memoria",
		"0.1.0",
	)
	mcp.RegisterTools(server, service, logger)

	// Setup graceful shutdown
	ctx, stop := signal.NotifyContext(context.Background(),
		os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info("MCP server starting on stdio")

	serverErr := make(chan error, 1)
	go func() {
		serverErr <- mcpserver.ServeStdio(server)
	}()

	select {
	case <-ctx.Done():
		logger.Info("shutdown signal received")
		return nil
	case err := <-serverErr:
		return err
	}
}
