package main

import (
	"errors"
	"os"

	"github.com/alnah/go-mdupgrade/internal/config"
	"github.com/alnah/go-mdupgrade/internal/fileutil"
)

// Exit codes for the mdupgrade CLI.
// Follows Unix conventions: 0=success, 1=general, 2=usage, and custom codes < 126.
// Per-file failures are reported but do not change the exit code.
const (
	ExitSuccess = 0 // All files processed (individual files may have failed)
	ExitGeneral = 1 // General/unexpected error
	ExitUsage   = 2 // Invalid flags, config, or missing argument
	ExitIO      = 3 // Directory not found, not a directory, permission denied
)

// exitCodeFor returns the appropriate exit code for an error.
// It uses errors.Is to check wrapped errors, so callers must use fmt.Errorf("%w", err).
func exitCodeFor(err error) int {
	if err == nil {
		return ExitSuccess
	}

	// Usage/config errors (exit 2), checked first: a missing config file
	// also wraps os.ErrNotExist.
	if errors.Is(err, ErrNoDirectory) ||
		errors.Is(err, ErrTooManyArgs) ||
		errors.Is(err, config.ErrConfigNotFound) ||
		errors.Is(err, config.ErrEmptyConfigName) ||
		errors.Is(err, config.ErrConfigParse) ||
		errors.Is(err, config.ErrInvalidWorkers) ||
		errors.Is(err, config.ErrInvalidExtension) {
		return ExitUsage
	}

	// I/O errors (exit 3)
	if errors.Is(err, os.ErrNotExist) ||
		errors.Is(err, os.ErrPermission) ||
		errors.Is(err, fileutil.ErrNotDirectory) {
		return ExitIO
	}

	return ExitGeneral
}
