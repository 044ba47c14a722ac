// Package config provides reading and writing of nlpsearch settings.
// Supports both global (~/.nlpsearch/config.yaml) and local (.nlpsearch/config.yaml).
// Reading: uses local if it exists, otherwise global.
// Writing: goes back to wherever the config was read from.
//
// Every field is optional on disk. Unset fields fall back to the documented
// defaults at read time, so loading a partial file merges it over the
// defaults without rewriting the file.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/jpl-au/nlpsearch/internal/glob"
	"gopkg.in/yaml.v3"
)

var (
	// ErrNoConfigPath is returned when the config path cannot be determined.
	ErrNoConfigPath = errors.New("cannot determine config path")
	// ErrUnknownKey is returned when getting/setting an unknown config key.
	ErrUnknownKey = errors.New("unknown config key")
	// ErrInvalidValue is returned when a config value is invalid.
	ErrInvalidValue = errors.New("invalid config value")
)

// Scope represents the configuration scope (global or local).
type Scope int

const (
	// ScopeGlobal is user-wide config in ~/.nlpsearch/config.yaml (default)
	ScopeGlobal Scope = iota
	// ScopeLocal is per-directory config in .nlpsearch/config.yaml, found in
	// the working directory or in a vault named with --vault
	ScopeLocal
)

// Search holds search-related options.
type Search struct {
	// Advanced is the "Enable Advanced Search" toggle. It is stored and
	// displayed but no search behaviour depends on it.
	Advanced *bool `yaml:"advanced,omitempty"`
}

// Vault holds vault location and enumeration options.
type Vault struct {
	Path   string    `yaml:"path,omitempty"`
	Ignore *[]string `yaml:"ignore,omitempty"`
}

// Limits holds size limit configuration options.
type Limits struct {
	MaxContent *int64 `yaml:"max_content,omitempty"`
}

// Defaults applied when not configured.
const (
	DefaultAdvancedSearch = true
	DefaultMaxContent     = 100 * 1024 * 1024 // 100 MB
)

// DefaultIgnore lists the vault paths never scanned unless overridden.
func DefaultIgnore() []string {
	return []string{".obsidian/**", ".trash/**"}
}

// Validation bounds for configuration values.
const (
	MinMaxContent = 1
	MaxMaxContent = 10 * 1024 * 1024 * 1024 // 10 GB
)

// Config contains configuration for nlpsearch.
type Config struct {
	Search Search `yaml:"search,omitempty"`
	Vault  Vault  `yaml:"vault,omitempty"`
	Limits Limits `yaml:"limits,omitempty"`

	// path is the file this config was loaded from (for Save)
	path  string
	scope Scope
}

// Validate checks that all configured values are within acceptable bounds.
// Returns nil if all values are valid or not set (defaults will be used).
func (c *Config) Validate() error {
	if c.Limits.MaxContent != nil {
		v := *c.Limits.MaxContent
		if v < MinMaxContent || v > MaxMaxContent {
			return fmt.Errorf("%w: max_content must be between %d and %d, got %d",
				ErrInvalidValue, MinMaxContent, MaxMaxContent, v)
		}
	}
	if c.Vault.Ignore != nil {
		for _, p := range *c.Vault.Ignore {
			if p == "" {
				return fmt.Errorf("%w: vault.ignore contains an empty pattern", ErrInvalidValue)
			}
			if _, err := glob.Match(p, ""); err != nil {
				return fmt.Errorf("%w: vault.ignore pattern %q: %v", ErrInvalidValue, p, err)
			}
		}
	}
	return nil
}

// AdvancedSearch returns the advanced search toggle (defaults to true).
func (c *Config) AdvancedSearch() bool {
	if c.Search.Advanced == nil {
		return DefaultAdvancedSearch
	}
	return *c.Search.Advanced
}

// VaultPath returns the configured vault directory, or "" to use the
// current directory.
func (c *Config) VaultPath() string {
	return c.Vault.Path
}

// Ignore returns the vault ignore patterns (defaults to DefaultIgnore).
func (c *Config) Ignore() []string {
	if c.Vault.Ignore == nil {
		return DefaultIgnore()
	}
	return append([]string(nil), (*c.Vault.Ignore)...)
}

// MaxContent returns the maximum note size in bytes (defaults to 100 MB).
func (c *Config) MaxContent() int64 {
	if c.Limits.MaxContent == nil {
		return DefaultMaxContent
	}
	return *c.Limits.MaxContent
}

// LocalPath returns the path of the local config file, relative to the
// directory it belongs to.
func LocalPath() string {
	return filepath.Join(".nlpsearch", "config.yaml")
}

// GlobalPath returns the path to the global (user) config file: ~/.nlpsearch/config.yaml
func GlobalPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".nlpsearch", "config.yaml")
}

// Load reads configuration: uses local if it exists in the working
// directory, otherwise global.
func Load() (*Config, error) {
	return LoadDir("")
}

// LoadDir is Load with the local config looked up in dir instead of the
// working directory. An empty dir means the working directory.
func LoadDir(dir string) (*Config, error) {
	local := filepath.Join(dir, LocalPath())
	if _, err := os.Stat(local); err == nil {
		return loadPath(local, ScopeLocal)
	}
	return LoadScope(ScopeGlobal)
}

// LoadScope reads configuration from a specific scope.
func LoadScope(scope Scope) (*Config, error) {
	path := pathForScope(scope)
	if path == "" {
		return &Config{scope: scope}, nil
	}
	return loadPath(path, scope)
}

// loadPath reads and validates the config file at path. A missing file
// yields an empty config, which reads back as all defaults.
func loadPath(path string, scope Scope) (*Config, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return &Config{path: path, scope: scope}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("cannot read config file %s: %w", path, err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("malformed config file %s: %w\n\nTo fix: edit the file to correct the YAML syntax, or delete it to use defaults", path, err)
	}
	cfg.path = path
	cfg.scope = scope

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config file %s: %w", path, err)
	}
	return &cfg, nil
}

// Scope returns which scope this config was loaded from.
func (c *Config) Scope() Scope {
	return c.scope
}

// Save writes the configuration to its original location.
func (c *Config) Save() error {
	if c.path == "" {
		c.path = pathForScope(c.scope)
	}
	if c.path == "" {
		return ErrNoConfigPath
	}
	return c.saveToPath(c.path)
}

// saveToPath writes configuration to a specific filesystem path.
// Creates parent directories as needed with mode 0755.
func (c *Config) saveToPath(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshalling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}
	return nil
}

// pathForScope returns the filesystem path for a given scope.
func pathForScope(scope Scope) string {
	switch scope {
	case ScopeLocal:
		return LocalPath()
	case ScopeGlobal:
		return GlobalPath()
	default:
		return ""
	}
}
