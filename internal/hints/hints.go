// Package hints provides actionable error hints for common failure scenarios.
// Hints are formatted consistently as "\n  hint: <text>" for appending to error messages.
package hints

import (
	"strings"
)

// ForConfigNotFound returns hints for config file not found errors.
// Suggests --config and the user config path that was searched.
func ForConfigNotFound(searchedPaths []string) string {
	hint := "use --config /path/to/file.yaml"

	for _, p := range searchedPaths {
		if strings.Contains(p, "go-mdupgrade") {
			hint += " or create " + p
			break
		}
	}

	return format(hint)
}

// ForMissingDirectory returns a hint for a directory argument that does not exist.
func ForMissingDirectory() string {
	return format("pass the folder containing the .md files, e.g. mdupgrade ./lectures")
}

// ForNotADirectory returns a hint for a file passed where a directory is expected.
func ForNotADirectory(path string) string {
	if path == "" {
		return format("mdupgrade works on a folder, not a single file")
	}
	return format("mdupgrade works on a folder; try its parent directory instead of " + path)
}

// ForPermission returns a hint for read or write permission errors.
func ForPermission() string {
	return format("check the files are writable, or use --dry-run to preview changes")
}

// ForFenceMismatch returns a hint for files rejected by --verify.
func ForFenceMismatch() string {
	return format("the file was left unchanged; check for unclosed ``` fences in code-cell blocks")
}

// ForNoFiles returns hints when a directory contains no matching files.
func ForNoFiles(extensions []string) string {
	var hints []string
	hints = append(hints, "only "+strings.Join(extensions, ", ")+" files directly inside the folder are processed")
	hints = append(hints, "subdirectories are not scanned")
	return formatHints(hints)
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
