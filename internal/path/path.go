// Package path provides note identifier normalisation and validation.
//
// A note is identified by its vault-relative path using forward slashes and
// keeping its extension (e.g. "projects/plan.md"). Every identifier that
// arrives from outside the vault walker (CLI arguments, MCP resource URIs)
// passes through Normalise before it touches the filesystem.
//
// Security: any ".." component is rejected. Combined with os.OpenRoot in the
// vault package this keeps reads inside the vault.
package path

import (
	"errors"
	stdpath "path"
	"strings"
)

// ErrInvalid indicates the provided note path is invalid.
var ErrInvalid = errors.New("invalid note path")

// Normalise cleans and validates a note path.
// Backslashes become forward slashes, leading and trailing slashes are
// dropped, and traversal components are rejected.
func Normalise(p string) (string, error) {
	if p == "" {
		return "", ErrInvalid
	}

	// filepath.ToSlash leaves backslashes alone on Unix, so replace them directly
	p = strings.ReplaceAll(p, "\\", "/")

	for _, seg := range strings.Split(p, "/") {
		if seg == ".." {
			return "", ErrInvalid
		}
	}

	p = stdpath.Clean(p)
	p = strings.TrimPrefix(p, "/")
	p = strings.TrimSuffix(p, "/")

	if p == "" || p == "." {
		return "", ErrInvalid
	}
	return p, nil
}

// IsMarkdown reports whether p names a markdown note (case-insensitive .md).
func IsMarkdown(p string) bool {
	return len(p) > 3 && strings.EqualFold(p[len(p)-3:], ".md")
}
