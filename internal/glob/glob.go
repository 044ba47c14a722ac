// Package glob provides glob pattern matching for vault paths.
//
// Extends path.Match with ** support for matching any path segments.
// This enables ignore patterns like ".obsidian/**" to exclude a whole
// subtree regardless of nesting depth.
package glob

import (
	"path"
	"strings"
)

// Match reports whether p matches the glob pattern.
// Supports standard glob patterns (*, ?) plus ** for matching any path segments.
// Returns an error if the pattern is malformed.
func Match(pattern, p string) (bool, error) {
	pattern = strings.ReplaceAll(pattern, "\\", "/")

	// Handle ** (match any path segments)
	if strings.Contains(pattern, "**") {
		parts := strings.Split(pattern, "**")
		if len(parts) == 2 {
			prefix := strings.TrimSuffix(parts[0], "/")
			suffix := strings.TrimPrefix(parts[1], "/")

			if prefix != "" && p != prefix && !strings.HasPrefix(p, prefix+"/") {
				return false, nil
			}
			if suffix == "" {
				return true, nil
			}
			rest := strings.TrimPrefix(strings.TrimPrefix(p, prefix), "/")
			segments := strings.Split(rest, "/")
			for i := range segments {
				tail := strings.Join(segments[i:], "/")
				m, err := path.Match(suffix, tail)
				if err != nil {
					return false, err
				}
				if m {
					return true, nil
				}
			}
			return false, nil
		}
	}

	matched, err := path.Match(pattern, p)
	if err != nil {
		return false, err
	}
	if matched {
		return true, nil
	}

	// Patterns without a slash also match the final segment, like .gitignore
	if !strings.Contains(pattern, "/") {
		return path.Match(pattern, path.Base(p))
	}
	return false, nil
}

// Any reports whether p matches at least one of the patterns.
func Any(patterns []string, p string) (bool, error) {
	for _, pattern := range patterns {
		m, err := Match(pattern, p)
		if err != nil {
			return false, err
		}
		if m {
			return true, nil
		}
	}
	return false, nil
}
