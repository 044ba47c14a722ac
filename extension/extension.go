// Package extension provides the plugin architecture for nlpsearch. Extensions
// encapsulate related functionality (commands, MCP tools) and register at
// init time, so a new command is added by importing a package rather than by
// editing the root command.
package extension

import (
	"github.com/spf13/cobra"
)

// Extension defines the contract for nlpsearch extensions.
type Extension interface {
	// Name returns a unique identifier for this extension.
	Name() string

	// Commands returns CLI commands to register with the root command.
	Commands() []*cobra.Command

	// MCPTools returns MCP tools to register with the server.
	MCPTools() []MCPTool
}

// Initializable extensions receive the shared vault and config before
// their commands run.
type Initializable interface {
	Extension
	Init(ctx Context) error
}

// Vaultless is an optional interface for extensions with commands that
// don't need a vault. Commands returned by NoVaultCommands() will not
// trigger vault initialisation in PersistentPreRunE.
//
// Use cases:
// 1. Configuration commands that must work before a vault exists
// 2. Commands that manage their own vault lifecycle (serve)
// 3. Utility commands that don't read notes (version)
type Vaultless interface {
	NoVaultCommands() []string
}
