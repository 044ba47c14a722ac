// Package mcp implements the Model Context Protocol server, exposing
// nlpsearch to LLMs. Assistants can search, list and read the notes of one
// vault through a standardised protocol.
package mcp

import (
	"context"
	"errors"
	"log/slog"
	"os"

	"github.com/jpl-au/nlpsearch/extension"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// Version is advertised to clients for capability negotiation.
const Version = "1.0.0"

// Serve starts the MCP server over stdio, enabling LLM integration.
// Uses stdio transport for compatibility with Claude Desktop and other MCP clients.
func Serve(extCtx extension.Context, tools []extension.MCPTool) error {
	// Log to stderr; stdout is reserved for MCP JSON-RPC messages
	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	slog.SetDefault(logger)

	s := NewServer(extCtx, tools)

	slog.Info("nlpsearch MCP server ready", "version", Version, "transport", "stdio", "vault", extCtx.Vault().Dir())

	err := server.ServeStdio(s)
	if errors.Is(err, context.Canceled) {
		slog.Info("server stopped")
		return nil
	}
	return err
}

// NewServer builds the server without starting a transport. Extension tools
// are registered after the built-in ones, in registration order.
func NewServer(extCtx extension.Context, tools []extension.MCPTool) *server.MCPServer {
	h := &handlers{ext: extCtx}

	s := server.NewMCPServer(
		"nlpsearch",
		Version,
		server.WithResourceCapabilities(true, false),
		server.WithToolCapabilities(true),
	)

	registerResources(s, h)
	registerTools(s, h)
	for _, t := range tools {
		s.AddTool(t.Tool, h.bind(t.Handler))
	}
	return s
}

// handlers provides MCP request handlers with access to the vault.
type handlers struct {
	ext extension.Context
}

// bind adapts an extension handler to the server's handler signature by
// supplying the shared extension context.
func (h *handlers) bind(fn extension.MCPHandler) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		return fn(ctx, h.ext, req)
	}
}

// registerResources adds URI-based resource access for direct note reading.
func registerResources(s *server.MCPServer, h *handlers) {
	s.AddResourceTemplate(
		mcp.NewResourceTemplate(
			"nlpsearch://notes/{path}",
			"Note",
			mcp.WithTemplateDescription("Read note content by vault-relative path"),
			mcp.WithTemplateMIMEType("text/markdown"),
		),
		h.readNote,
	)
}

// registerTools exposes vault browsing as MCP tools.
func registerTools(s *server.MCPServer, h *handlers) {
	s.AddTool(
		mcp.NewTool("nlpsearch_list",
			mcp.WithDescription("List notes in the vault in search order"),
			mcp.WithString("pattern", mcp.Description("Only list notes matching this glob (supports **)")),
		),
		h.listNotes,
	)

	s.AddTool(
		mcp.NewTool("nlpsearch_read",
			mcp.WithDescription("Read one or more notes"),
			mcp.WithArray("paths", mcp.Required(), mcp.Description("Vault-relative note paths, including .md"), mcp.WithStringItems()),
		),
		h.readNotes,
	)
}
