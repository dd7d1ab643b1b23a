// ABOUTME: MCP tool handler implementations for the memory backend
// ABOUTME: Thin adapters from tool arguments onto the chat service and store
package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/charmbracelet/log"
	"github.com/mark3labs/mcp-go/mcp"

	"github.com/harper/memoria/internal/core"
)

// Handlers contains the handler functions for all MCP tools
type Handlers struct {
	service *core.Service
	logger  *log.Logger
}

// LogTurn handles the log_turn tool
func (h *Handlers) LogTurn(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	role, err := request.RequireString("role")
	if err != nil {
		return mcp.NewToolResultError("role argument is required and must be a string"), nil
	}
	text, err := request.RequireString("text")
	if err != nil {
		return mcp.NewToolResultError("text argument is required and must be a string"), nil
	}

	path, err := h.service.Store().Append(role, text, time.Now())
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to log turn: %v", err)), nil
	}

	return jsonResult(map[string]interface{}{"logged": true, "path": path})
}

// RetrieveMemory handles the retrieve_memory tool
func (h *Handlers) RetrieveMemory(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	query := request.GetString("query", "")
	days := request.GetInt("days", 14)

	content, err := h.service.Store().Collect(query, days)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("retrieval failed: %v", err)), nil
	}
	if content == "" {
		content = "(no memory available)"
	}

	return mcp.NewToolResultText(content), nil
}

// SaveFact handles the save_fact tool
func (h *Handlers) SaveFact(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	text, err := request.RequireString("text")
	if err != nil {
		return mcp.NewToolResultError("text argument is required and must be a string"), nil
	}
	category := request.GetString("category", "")

	result, err := h.service.Store().AppendFact(text, category)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to save fact: %v", err)), nil
	}

	return jsonResult(map[string]interface{}{
		"status":      string(result.Status),
		"fingerprint": result.Fingerprint,
	})
}

// RunMaintenance handles the run_maintenance tool
func (h *Handlers) RunMaintenance(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	report := h.service.RunMaintenance(ctx)
	h.logger.Info("maintenance pass finished",
		"summarized_3d", len(report.Summarized3d),
		"summarized_7d", len(report.Summarized7d),
		"purged_14d", len(report.Purged14d))

	return jsonResult(report)
}

// ReadShort handles the read_short tool
func (h *Handlers) ReadShort(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	date, err := request.RequireString("date")
	if err != nil {
		return mcp.NewToolResultError("date argument is required and must be a string"), nil
	}

	content, err := h.service.Store().Read(date)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to read record: %v", err)), nil
	}

	return mcp.NewToolResultText(content), nil
}

// ReadLong handles the read_long tool
func (h *Handlers) ReadLong(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	content, err := h.service.Store().ReadAll()
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to read fact store: %v", err)), nil
	}
	if content == "" {
		content = "(empty)"
	}

	return mcp.NewToolResultText(content), nil
}

// jsonResult marshals a response payload into a text tool result
func jsonResult(v interface{}) (*mcp.CallToolResult, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to marshal response: %v", err)), nil
	}
	return mcp.NewToolResultText(string(data)), nil
}
