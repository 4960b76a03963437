// Package mcpserver exposes the context store and switch engine as MCP
// tools over stdio, so MCP clients (editors, AI assistants) can inspect
// and switch GCP contexts programmatically.
package mcpserver

import (
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"gcpctx/internal/engine"
)

// Server wraps the engine behind an MCP stdio server.
type Server struct {
	engine    *engine.Engine
	mcpServer *server.MCPServer
}

// New builds an MCP server exposing the context tools.
func New(eng *engine.Engine, version string) *Server {
	mcpServer := server.NewMCPServer(
		"gcpctx",
		version,
		server.WithToolCapabilities(false),
	)

	s := &Server{engine: eng, mcpServer: mcpServer}
	s.registerTools()
	return s
}

// Start serves MCP over stdio and blocks until the client disconnects.
func (s *Server) Start() error {
	return server.ServeStdio(s.mcpServer)
}

func (s *Server) registerTools() {
	listTool := mcp.NewTool("list_contexts",
		mcp.WithDescription("List all saved GCP contexts and which one is active"),
	)
	s.mcpServer.AddTool(listTool, s.handleListContexts)

	currentTool := mcp.NewTool("current_context",
		mcp.WithDescription("Get the currently active GCP context"),
	)
	s.mcpServer.AddTool(currentTool, s.handleCurrentContext)

	switchTool := mcp.NewTool("switch_context",
		mcp.WithDescription("Switch to a saved GCP context, restoring its gcloud configuration, "+
			"application-default credentials and kubectl context"),
		mcp.WithString("name",
			mcp.Required(),
			mcp.Description("Name of the context to switch to"),
		),
	)
	s.mcpServer.AddTool(switchTool, s.handleSwitchContext)

	saveTool := mcp.NewTool("save_context",
		mcp.WithDescription("Save the current live gcloud state as a named context"),
		mcp.WithString("name",
			mcp.Required(),
			mcp.Description("Name for the context"),
		),
	)
	s.mcpServer.AddTool(saveTool, s.handleSaveContext)

	deleteTool := mcp.NewTool("delete_context",
		mcp.WithDescription("Delete a saved GCP context"),
		mcp.WithString("name",
			mcp.Required(),
			mcp.Description("Name of the context to delete"),
		),
		mcp.WithBoolean("remove_gcloud_config",
			mcp.Description("Also delete the gcloud configuration the context references"),
		),
	)
	s.mcpServer.AddTool(deleteTool, s.handleDeleteContext)
}
