// config_keys.go provides key-value access to configuration settings.
//
// Separated from config.go to isolate the key enumeration and string-based
// get/set logic used by the config command, where settings are addressed by
// dotted keys (e.g., "search.advanced").
//
// Design: Pointers are used for optional fields so we can distinguish between
// "not set" (nil) and "explicitly set to zero/false". Defaults only apply
// when the user hasn't set a value.

package config

import (
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/jpl-au/nlpsearch/internal/glob"
)

// ValidKeys returns all valid configuration keys.
func ValidKeys() []string {
	return []string{
		"search.advanced",
		"vault.path", "vault.ignore",
		"limits.max_content",
	}
}

// IsValidKey returns true if the key is a valid configuration key.
func IsValidKey(key string) bool {
	return slices.Contains(ValidKeys(), key)
}

// Get returns the value of a configuration key as a string.
func (c *Config) Get(key string) (string, error) {
	switch key {
	case "search.advanced":
		return strconv.FormatBool(c.AdvancedSearch()), nil
	case "vault.path":
		return c.VaultPath(), nil
	case "vault.ignore":
		return strings.Join(c.Ignore(), ","), nil
	case "limits.max_content":
		return strconv.FormatInt(c.MaxContent(), 10), nil
	default:
		return "", fmt.Errorf("%w: %s", ErrUnknownKey, key)
	}
}

// Set sets the value of a configuration key.
// vault.ignore takes a comma-separated list; an empty value clears it.
func (c *Config) Set(key, value string) error {
	switch key {
	case "search.advanced":
		v := strings.ToLower(value)
		if v != "true" && v != "false" {
			return fmt.Errorf("%w: search.advanced must be true or false", ErrInvalidValue)
		}
		b := v == "true"
		c.Search.Advanced = &b
	case "vault.path":
		c.Vault.Path = value
	case "vault.ignore":
		patterns := []string{}
		for _, p := range strings.Split(value, ",") {
			if p = strings.TrimSpace(p); p != "" {
				patterns = append(patterns, p)
			}
		}
		for _, p := range patterns {
			if _, err := glob.Match(p, ""); err != nil {
				return fmt.Errorf("%w: vault.ignore pattern %q: %v", ErrInvalidValue, p, err)
			}
		}
		c.Vault.Ignore = &patterns
	case "limits.max_content":
		n, err := strconv.ParseInt(value, 10, 64)
		if err != nil || n < MinMaxContent || n > MaxMaxContent {
			return fmt.Errorf("%w: limits.max_content must be between %d and %d", ErrInvalidValue, MinMaxContent, MaxMaxContent)
		}
		c.Limits.MaxContent = &n
	default:
		return fmt.Errorf("%w: %s", ErrUnknownKey, key)
	}
	return nil
}

// All returns all configuration values as a map.
func (c *Config) All() map[string]string {
	return map[string]string{
		"search.advanced":    strconv.FormatBool(c.AdvancedSearch()),
		"vault.path":         c.VaultPath(),
		"vault.ignore":       strings.Join(c.Ignore(), ","),
		"limits.max_content": strconv.FormatInt(c.MaxContent(), 10),
	}
}

// IsSet returns true if the key has an explicit value (not just defaults).
func (c *Config) IsSet(key string) bool {
	switch key {
	case "search.advanced":
		return c.Search.Advanced != nil
	case "vault.path":
		return c.Vault.Path != ""
	case "vault.ignore":
		return c.Vault.Ignore != nil
	case "limits.max_content":
		return c.Limits.MaxContent != nil
	default:
		return false
	}
}
