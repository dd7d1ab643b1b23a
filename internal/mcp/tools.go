// ABOUTME: MCP tool definitions and registration for the memory backend
// ABOUTME: Exposes the six memory primitives to LLM agents over stdio
package mcp

import (
	"github.com/charmbracelet/log"
	"github.com/mark3labs/mcp-go/mcp"
	mcpserver "github.com/mark3labs/mcp-go/server"

	"github.com/harper/memoria/internal/core"
)

// RegisterTools registers all MCP tools with the server
func RegisterTools(server *mcpserver.MCPServer, service *core.Service, logger *log.Logger) *Handlers {
	handlers := &Handlers{
		service: service,
		logger:  logger,
	}

	// 1. log_turn - Append one chat turn to the short-term daily log
	server.AddTool(mcp.Tool{
		Name:        "log_turn",
		Description: "Append one role-tagged chat turn to today's short-term memory log.",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"role": map[string]interface{}{
					"type":        "string",
					"description": "Speaker role, user or assistant",
				},
				"text": map[string]interface{}{
					"type":        "string",
					"description": "Turn text to log",
				},
			},
			Required: []string{"role", "text"},
		},
	}, handlers.LogTurn)

	// 2. retrieve_memory - Collect recent short-term and long-term memory
	server.AddTool(mcp.Tool{
		Name:        "retrieve_memory",
		Description: "Collect recent short-term and long-term memory as one text blob, optionally filtered by a substring query.",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"query": map[string]interface{}{
					"type":        "string",
					"description": "Optional case-insensitive substring filter",
				},
				"days": map[string]interface{}{
					"type":        "number",
					"description": "Day window to include (default: 14)",
					"default":     14,
				},
			},
		},
	}, handlers.RetrieveMemory)

	// 3. save_fact - Append a deduplicated categorized fact
	server.AddTool(mcp.Tool{
		Name:        "save_fact",
		Description: "Save a concise categorized fact to long-term memory. Duplicate facts are rejected by fingerprint.",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"text": map[string]interface{}{
					"type":        "string",
					"description": "Short natural-language fact",
				},
				"category": map[string]interface{}{
					"type":        "string",
					"description": "Fact category: like, dislike, habit, or other",
				},
			},
			Required: []string{"text"},
		},
	}, handlers.SaveFact)

	// 4. run_maintenance - One retention pass over all due records
	server.AddTool(mcp.Tool{
		Name:        "run_maintenance",
		Description: "Run one retention pass: summarize records due at 3 and 7 days, purge records due at 14 days.",
		InputSchema: mcp.ToolInputSchema{
			Type:       "object",
			Properties: map[string]interface{}{},
		},
	}, handlers.RunMaintenance)

	// 5. read_short - Read one daily record verbatim
	server.AddTool(mcp.Tool{
		Name:        "read_short",
		Description: "Read the raw short-term memory document for one date.",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"date": map[string]interface{}{
					"type":        "string",
					"description": "Date in YYYY-MM-DD form",
				},
			},
			Required: []string{"date"},
		},
	}, handlers.ReadShort)

	// 6. read_long - Read the long-term fact store verbatim
	server.AddTool(mcp.Tool{
		Name:        "read_long",
		Description: "Read the raw long-term fact store document.",
		InputSchema: mcp.ToolInputSchema{
			Type:       "object",
			Properties: map[string]interface{}{},
		},
	}, handlers.ReadLong)

	return handlers
}
