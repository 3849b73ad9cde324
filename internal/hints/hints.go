// Package hints provides actionable error hints for common failure scenarios.
// Hints are formatted consistently as "\n  hint: <text>" for appending to error messages.
package hints

import "strings"

// ForTimeout returns a hint about increasing timeout for slow operations.
func ForTimeout() string {
	return format("for large documents, use --timeout flag")
}

// ForConfigNotFound returns hints for config file not found errors.
// Suggests --config flag and creating a config in ~/.config/go-katana/.
func ForConfigNotFound(searchedPaths []string) string {
	hint := "use --config /path/to/file.yaml"

	// Find a user config path (contains .config/go-katana) to suggest
	for _, p := range searchedPaths {
		if strings.Contains(p, ".config/go-katana") {
			hint += " or create " + p
			break
		}
	}

	return format(hint)
}

// ForOutputDirectory returns hints for output directory creation errors.
func ForOutputDirectory() string {
	return format("check parent directory exists and is writable")
}

// ForUnknownFormat returns hints listing accepted format names.
func ForUnknownFormat(available []string) string {
	if len(available) == 0 {
		return ""
	}
	return format("available: " + strings.Join(available, ", "))
}

// ForInputTooLarge returns hints for inputs over the size limit.
func ForInputTooLarge() string {
	return format("raise limits.maxInputSize in the config file or set KATANA_MAX_INPUT_SIZE")
}

// ForNoInput returns hints when no input file was found.
func ForNoInput() string {
	return formatHints([]string{
		"pass a file or directory",
		"use - to read standard input",
		"or set input.defaultDir in the config file",
	})
}

// format creates a single hint string with consistent formatting.
func format(hint string) string {
	if hint == "" {
		return ""
	}
	return "\n  hint: " + hint
}

// formatHints joins multiple hints with consistent formatting.
func formatHints(hints []string) string {
	if len(hints) == 0 {
		return ""
	}
	return format(strings.Join(hints, "; "))
}
