/*
Copyright © 2026 James Lawson (jpl-au) <hello@caelisco.net>
*/

// init_extensions.go handles extension initialisation and command registration.
//
// Separated from root.go to isolate the initialisation logic that resolves
// the vault, loads config, and wires up extensions.
//
// Design: Extensions register during init() but aren't initialised until
// first command execution. This two-phase pattern allows extensions to
// declare commands before the vault is known. The vault is opened once and
// shared across all extensions via the Context.

package cmd

import (
	"fmt"
	"os"
	"sync"

	"github.com/jpl-au/nlpsearch/extension"
	"github.com/jpl-au/nlpsearch/internal/config"
	"github.com/jpl-au/nlpsearch/internal/log"
	"github.com/jpl-au/nlpsearch/internal/vault"
)

// noVaultCommands lists commands that bypass automatic vault initialisation.
// Built dynamically from bootstrap commands plus extension-declared vaultless
// commands.
var noVaultCommands map[string]bool

// buildNoVaultCommands creates the set of commands that skip vault
// initialisation: the built-in help and completion commands, plus anything
// an extension declares through extension.Vaultless.
func buildNoVaultCommands() map[string]bool {
	cmds := map[string]bool{
		"help":       true,
		"completion": true,
	}

	for _, ext := range extension.All() {
		if v, ok := ext.(extension.Vaultless); ok {
			for _, name := range v.NoVaultCommands() {
				cmds[name] = true
			}
		}
	}

	return cmds
}

// Global extension context, created during initialisation.
var (
	extContext extension.Context
	initOnce   sync.Once
	initErr    error
)

// initExtensions opens the vault and injects it into extensions.
func initExtensions() error {
	initOnce.Do(func() {
		ctx, err := OpenContext()
		if err != nil {
			initErr = err
			return
		}
		extContext = ctx

		// Inject the shared context into all Initializable extensions.
		for _, ext := range extension.All() {
			if init, ok := ext.(extension.Initializable); ok {
				if err := init.Init(extContext); err != nil {
					initErr = fmt.Errorf("init extension %s: %w", ext.Name(), err)
					return
				}
			}
		}
	})
	return initErr
}

// OpenContext loads config and opens the vault it points at. Commands that
// manage their own lifecycle (serve) call it directly. An explicit vault
// (flag or env) has its own local config read in place of the working
// directory's.
func OpenContext() (extension.Context, error) {
	cfg, err := config.LoadDir(VaultDir())
	if err != nil {
		return nil, err
	}

	dir, err := resolveVaultDir(cfg)
	if err != nil {
		return nil, err
	}

	v, err := vault.Open(dir, vault.Options{
		Ignore:     cfg.Ignore(),
		MaxContent: cfg.MaxContent(),
	})
	if err != nil {
		return nil, fmt.Errorf("opening vault: %w", err)
	}

	// Set project identifier for audit logging
	log.SetProject(v.Dir())

	return extension.NewContext(v, cfg), nil
}

// resolveVaultDir picks the vault root.
// Priority: --vault flag > NLPSEARCH_VAULT > vault.path config > working directory.
func resolveVaultDir(cfg *config.Config) (string, error) {
	if dir := VaultDir(); dir != "" {
		return dir, nil
	}
	if dir := cfg.VaultPath(); dir != "" {
		return dir, nil
	}
	dir, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("resolving working directory: %w", err)
	}
	return dir, nil
}

var extensionsOnce sync.Once

// registerExtensions adds commands from all registered extensions.
// Called once before Execute runs.
func registerExtensions() {
	extensionsOnce.Do(func() {
		for _, ext := range extension.All() {
			for _, cmd := range ext.Commands() {
				rootCmd.AddCommand(cmd)
			}
		}

		// Build noVaultCommands after all extensions are registered
		noVaultCommands = buildNoVaultCommands()
	})
}
