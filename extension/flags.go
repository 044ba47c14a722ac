// flags.go defines constants for CLI flag names shared across extensions.
//
// Naming convention: Flag<PascalCaseName> where name matches the kebab-case
// CLI flag (e.g., "dry-run" -> FlagDryRun).

package extension

// Flag name constants for CLI commands.
const (
	FlagLocal = "local" // Use local (vault) config scope
	FlagRaw   = "raw"   // Raw output without rendering
	FlagStyle = "style" // Rendering style for notes
)
