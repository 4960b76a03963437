package mcpserver

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
)

// contextEntry is the JSON shape returned by list_contexts.
type contextEntry struct {
	Name   string `json:"name"`
	Active bool   `json:"active"`
}

type listResponse struct {
	Contexts []contextEntry `json:"contexts"`
	Active   string         `json:"active,omitempty"`
	Stale    bool           `json:"stale,omitempty"`
}

func (s *Server) handleListContexts(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	result, err := s.engine.List()
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Failed to list contexts: %v", err)), nil
	}

	response := listResponse{Contexts: []contextEntry{}, Active: result.Active, Stale: result.Stale}
	for _, info := range result.Contexts {
		response.Contexts = append(response.Contexts, contextEntry{Name: info.Name, Active: info.Active})
	}

	jsonData, err := json.MarshalIndent(response, "", "  ")
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Failed to format contexts: %v", err)), nil
	}
	return mcp.NewToolResultText(string(jsonData)), nil
}

func (s *Server) handleCurrentContext(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	current := s.engine.Current()
	if current == "" {
		return mcp.NewToolResultText("no active context"), nil
	}
	return mcp.NewToolResultText(current), nil
}

func (s *Server) handleSwitchContext(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	name, err := request.RequireString("name")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	result, err := s.engine.Switch(name)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Failed to switch to context %q: %v", name, err)), nil
	}

	if result.Skipped {
		return mcp.NewToolResultText(fmt.Sprintf("Context %q is already active", name)), nil
	}
	msg := fmt.Sprintf("Switched to context %q", name)
	for _, warning := range result.Warnings {
		msg += "\nWarning: " + warning
	}
	return mcp.NewToolResultText(msg), nil
}

func (s *Server) handleSaveContext(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	name, err := request.RequireString("name")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	result, err := s.engine.Save(name)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Failed to save context %q: %v", name, err)), nil
	}
	return mcp.NewToolResultText(fmt.Sprintf("Saved context %q (gcloud config %q)",
		name, result.Metadata.GcloudConfig)), nil
}

func (s *Server) handleDeleteContext(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	name, err := request.RequireString("name")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	removeConfig := false
	if raw, ok := request.GetArguments()["remove_gcloud_config"].(bool); ok {
		removeConfig = raw
	}

	result, err := s.engine.Delete(name, removeConfig)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Failed to delete context %q: %v", name, err)), nil
	}

	msg := fmt.Sprintf("Deleted context %q", name)
	if result.ClearedActive {
		msg += " (was active, tracker cleared)"
	}
	for _, warning := range result.Warnings {
		msg += "\nWarning: " + warning
	}
	return mcp.NewToolResultText(msg), nil
}
