// Package core provides the core extension for nlpsearch.
// It registers commands: config, open, serve, version.
package core

import (
	"github.com/jpl-au/nlpsearch/extension"
	"github.com/jpl-au/nlpsearch/internal/vault"
	"github.com/spf13/cobra"
)

func init() {
	extension.Register(&Extension{})
}

// Extension implements the core extension.
type Extension struct {
	vault *vault.Vault
}

// Compile-time interface compliance. Catches missing methods at build time
// rather than runtime, making interface changes safer to refactor.
var (
	_ extension.Extension     = (*Extension)(nil)
	_ extension.Initializable = (*Extension)(nil)
	_ extension.Vaultless     = (*Extension)(nil)
)

// Name returns "core" - this extension provides host utility commands.
func (e *Extension) Name() string { return "core" }

// Init connects to the shared vault for open.
func (e *Extension) Init(ctx extension.Context) error {
	e.vault = ctx.Vault()
	return nil
}

// Commands returns all core CLI commands.
func (e *Extension) Commands() []*cobra.Command {
	return []*cobra.Command{
		newConfigCmd(),
		e.newOpenCmd(),
		newServeCmd(),
		newVersionCmd(),
	}
}

// MCPTools returns nil - note listing and reading tools live in internal/mcp.
func (e *Extension) MCPTools() []extension.MCPTool {
	return nil
}

// NoVaultCommands returns commands that don't use the shared vault.
// config: Must work before a vault is chosen.
// serve: Long-running MCP server opens its own vault.
// version: Displays build info only.
func (e *Extension) NoVaultCommands() []string {
	return []string{"config", "serve", "version"}
}
