// context.go defines the Context interface for extension access to shared
// resources.
//
// Design: Context is an interface so extensions can be tested with a stub.
// Extensions receive it during Init(), not at construction, because they
// register before the vault has been resolved.

package extension

import (
	"github.com/jpl-au/nlpsearch/internal/config"
	"github.com/jpl-au/nlpsearch/internal/vault"
)

// Context provides extensions controlled access to shared resources.
type Context interface {
	// Vault returns the note collection commands operate on.
	Vault() *vault.Vault

	// Config returns the loaded settings.
	Config() *config.Config
}

type extContext struct {
	vault *vault.Vault
	cfg   *config.Config
}

// NewContext creates a new extension context.
func NewContext(v *vault.Vault, cfg *config.Config) Context {
	return &extContext{vault: v, cfg: cfg}
}

func (c *extContext) Vault() *vault.Vault { return c.vault }

func (c *extContext) Config() *config.Config { return c.cfg }
