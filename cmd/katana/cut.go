package main

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/alnah/go-katana"
	"github.com/alnah/go-katana/internal/config"
)

// Sentinel errors for CLI operations.
var (
	ErrNoInput             = errors.New("no input specified")
	ErrReadInput           = errors.New("failed to read input")
	ErrWriteOutput         = errors.New("failed to write output")
	ErrInvalidWorkerCount  = errors.New("invalid worker count")
	ErrInvalidTimeout      = errors.New("invalid timeout")
	ErrTooManyArgs         = errors.New("too many arguments")
	ErrUnknownOutputFormat = errors.New("unknown output format")
)

// autoFormat selects the input format from the file extension.
const autoFormat = "auto"

// Segmenter is the interface for the segmentation service.
type Segmenter interface {
	Segment(ctx context.Context, input katana.Input) (*katana.Document, error)
}

// Compile-time interface implementation check.
var _ Segmenter = (*katana.Segmenter)(nil)

// cutParams groups values shared across a batch.
type cutParams struct {
	output       outputFormat
	maxInputSize int
}

// runCut orchestrates the cut command.
func runCut(ctx context.Context, positionalArgs []string, flags *cutFlags, env *Environment) error {
	warnUnknownEnvVars(env.Environ(), env.Stderr)

	if len(positionalArgs) > 1 {
		return fmt.Errorf("%w: expected at most one input, got %d", ErrTooManyArgs, len(positionalArgs))
	}

	// Validate worker count early
	if err := validateWorkers(flags.workers); err != nil {
		return err
	}

	// Load configuration, then layer env vars and flags on top
	envCfg := loadEnvConfig(env.Getenv)
	cfg, err := loadConfig(flags.common.config, envCfg.ConfigPath)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	applyEnvConfig(envCfg, cfg)
	mergeFlags(flags, cfg)

	inputFormat, err := resolveInputFormat(cfg.Input.Format)
	if err != nil {
		return err
	}
	out, err := resolveOutputFormat(cfg.Output.Format)
	if err != nil {
		return err
	}
	timeout, err := resolveTimeout(cfg.Limits.Timeout)
	if err != nil {
		return err
	}

	// Store normalized names so aliases ("md", "JSON") pass validation
	if inputFormat != "" {
		cfg.Input.Format = string(inputFormat)
	} else {
		cfg.Input.Format = autoFormat
	}
	cfg.Output.Format = out.name
	if err := cfg.Validate(); err != nil {
		return err
	}

	// Discover inputs
	inputPath := resolveInputPath(positionalArgs, cfg)
	files, err := discoverInputs(inputPath, resolveOutput(flags.output, cfg), inputFormat, out.ext)
	if err != nil {
		return err
	}

	params := &cutParams{
		output:       out,
		maxInputSize: resolveMaxInputSize(cfg),
	}
	workers := resolveWorkers(cfg.Limits.Workers)
	if flags.common.verbose {
		fmt.Fprintf(env.Stderr, "cutting %d input(s) with %d worker(s)\n", len(files), min(workers, len(files)))
	}

	results := cutBatch(ctx, buildSegmenter(cfg, timeout), files, workers, params, env)

	// A lone input reports its own error so the exit code reflects the cause
	if len(results) == 1 && results[0].Err != nil {
		if results[0].InputPath == stdinArg {
			return results[0].Err
		}
		return fmt.Errorf("%s: %w", results[0].InputPath, results[0].Err)
	}

	failedCount := printResults(results, flags.common.quiet, flags.common.verbose, env)
	if failedCount > 0 {
		return fmt.Errorf("%d of %d input(s) failed", failedCount, len(results))
	}
	return nil
}

// loadConfig loads the config named by flag or env var, or the defaults.
func loadConfig(flagName, envName string) (*config.Config, error) {
	name := flagName
	if name == "" {
		name = envName
	}
	if name == "" {
		return config.DefaultConfig(), nil
	}
	return config.LoadConfig(name)
}

// mergeFlags merges CLI flags into config. CLI values override config values.
func mergeFlags(flags *cutFlags, cfg *config.Config) {
	// I/O flags
	if flags.format != "" {
		cfg.Input.Format = flags.format
	}
	if flags.outputFormat != "" {
		cfg.Output.Format = flags.outputFormat
	}

	// Limit flags
	if flags.timeout != "" {
		cfg.Limits.Timeout = flags.timeout
	}
	if flags.workers > 0 {
		cfg.Limits.Workers = flags.workers
	}

	// Disable flags
	if flags.text.noFoldAbbreviations {
		cfg.Text.FoldAbbreviations = false
	}
	if flags.text.keepFootnotes {
		cfg.Text.StripFootnotes = false
	}
	if flags.text.noCodeFences {
		cfg.Text.CodeFences = false
	}
}

// resolveInputFormat parses an input format name. An empty result means
// the format is picked per file from its extension.
func resolveInputFormat(name string) (katana.Format, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "" || name == autoFormat {
		return "", nil
	}
	return katana.ParseFormat(name)
}

// resolveTimeout parses the per-input timeout. Empty means the library default.
func resolveTimeout(s string) (time.Duration, error) {
	if s == "" {
		return 0, nil
	}
	d, err := time.ParseDuration(s)
	if err != nil {
		return 0, fmt.Errorf("%w: %q (use a Go duration such as 30s or 2m)", ErrInvalidTimeout, s)
	}
	if d <= 0 {
		return 0, fmt.Errorf("%w: %s (must be positive)", ErrInvalidTimeout, s)
	}
	return d, nil
}

// resolveMaxInputSize returns the configured byte limit or the library default.
func resolveMaxInputSize(cfg *config.Config) int {
	if cfg.Limits.MaxInputSize > 0 {
		return cfg.Limits.MaxInputSize
	}
	return katana.DefaultMaxInputSize
}

// buildSegmenter creates a Segmenter from the merged config.
func buildSegmenter(cfg *config.Config, timeout time.Duration) *katana.Segmenter {
	opts := []katana.Option{
		katana.WithMaxInputSize(resolveMaxInputSize(cfg)),
		katana.WithAbbreviationFolding(cfg.Text.FoldAbbreviations),
		katana.WithFootnoteStripping(cfg.Text.StripFootnotes),
		katana.WithCodeFences(cfg.Text.CodeFences),
	}
	if timeout > 0 {
		opts = append(opts, katana.WithTimeout(timeout))
	}
	return katana.NewSegmenter(opts...)
}
