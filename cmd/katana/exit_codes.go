package main

import (
	"context"
	"errors"
	"os"

	"github.com/alnah/go-katana"
	"github.com/alnah/go-katana/internal/config"
	"github.com/alnah/go-katana/internal/fileutil"
	"github.com/alnah/go-katana/internal/hints"
)

// Exit codes for katana CLI.
// Follows Unix conventions: 0=success, 1=general, 2=usage, and custom codes < 126.
const (
	ExitSuccess = 0 // All inputs cut
	ExitGeneral = 1 // General/unexpected error, or some inputs failed
	ExitUsage   = 2 // Invalid flags, config, or validation
	ExitIO      = 3 // File not found, permission denied
)

// exitCodeFor returns the appropriate exit code for an error.
// It uses errors.Is to check wrapped errors, so callers must use fmt.Errorf("%w", err).
func exitCodeFor(err error) int {
	if err == nil {
		return ExitSuccess
	}

	// I/O errors (exit 3)
	if errors.Is(err, os.ErrNotExist) ||
		errors.Is(err, os.ErrPermission) ||
		errors.Is(err, ErrReadInput) ||
		errors.Is(err, ErrWriteOutput) ||
		errors.Is(err, ErrNoInput) ||
		errors.Is(err, fileutil.ErrPathEmpty) {
		return ExitIO
	}

	// Usage/config/validation errors (exit 2)
	if errors.Is(err, config.ErrConfigNotFound) ||
		errors.Is(err, config.ErrConfigParse) ||
		errors.Is(err, config.ErrFieldTooLong) ||
		errors.Is(err, config.ErrInvalidValue) ||
		errors.Is(err, katana.ErrUnknownFormat) ||
		errors.Is(err, ErrUnknownOutputFormat) ||
		errors.Is(err, katana.ErrEmptyInput) ||
		errors.Is(err, katana.ErrInputTooLarge) ||
		errors.Is(err, ErrInvalidWorkerCount) ||
		errors.Is(err, ErrInvalidTimeout) ||
		errors.Is(err, ErrTooManyArgs) {
		return ExitUsage
	}

	return ExitGeneral
}

// hintFor returns an actionable hint for err, or "".
func hintFor(err error) string {
	switch {
	case errors.Is(err, config.ErrConfigNotFound):
		return hints.ForConfigNotFound(nil)
	case errors.Is(err, katana.ErrUnknownFormat):
		return hints.ForUnknownFormat(config.InputFormats)
	case errors.Is(err, ErrUnknownOutputFormat):
		return hints.ForUnknownFormat(config.OutputFormats)
	case errors.Is(err, katana.ErrInputTooLarge):
		return hints.ForInputTooLarge()
	case errors.Is(err, ErrNoInput):
		return hints.ForNoInput()
	case errors.Is(err, context.DeadlineExceeded):
		return hints.ForTimeout()
	case errors.Is(err, ErrWriteOutput):
		return hints.ForOutputDirectory()
	}
	return ""
}
