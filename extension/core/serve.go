// serve.go implements the "nlpsearch serve" command for MCP server operation.
//
// Separated from extension.go because serve has unique lifecycle requirements.
// Unlike other commands that run and exit, serve blocks indefinitely handling
// MCP requests over stdio.
//
// Design: Serve is a Vaultless command - it opens the vault itself through
// cmd.OpenContext so that a vault error is logged to stderr by the server
// rather than printed as CLI output on stdout, which belongs to JSON-RPC.

package core

import (
	"github.com/jpl-au/nlpsearch/cmd"
	"github.com/jpl-au/nlpsearch/extension"
	"github.com/jpl-au/nlpsearch/internal/mcp"
	"github.com/spf13/cobra"
)

func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start MCP server",
		Long: `Start an MCP (Model Context Protocol) server over stdio for LLM integration.

Exposes the nlp_search tool, note listing and reading tools, and notes as
nlpsearch://notes/{path} resources.

Use --vault to serve a specific vault:
  nlpsearch serve --vault ~/notes`,
		Args: cobra.NoArgs,
		RunE: runServe,
	}
}

func runServe(_ *cobra.Command, _ []string) error {
	extCtx, err := cmd.OpenContext()
	if err != nil {
		return err
	}
	return mcp.Serve(extCtx, extension.Tools())
}
