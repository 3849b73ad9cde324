package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"time"

	"github.com/alnah/go-katana/internal/fileutil"
	"github.com/alnah/go-katana/internal/yamlutil"
)

// Sentinel errors for config operations.
var (
	ErrConfigNotFound  = errors.New("config file not found")
	ErrEmptyConfigName = errors.New("config name cannot be empty")
	ErrConfigParse     = errors.New("failed to parse config")
	ErrFieldTooLong    = errors.New("field exceeds maximum length")
	ErrInvalidValue    = errors.New("invalid config value")
)

// Field limits.
const (
	MaxPathLength    = 4096 // PATH_MAX on Linux
	MaxFormatLength  = 16   // "markdown"
	MaxTimeoutLength = 32   // "1h30m"
	MaxWorkers       = 64
	MaxInputSize     = 1 << 30 // 1 GiB
)

// Accepted format names.
var (
	InputFormats  = []string{"auto", "text", "html", "markdown"}
	OutputFormats = []string{"text", "lines", "json", "yaml"}
)

// Config holds all configuration for a cut run.
type Config struct {
	Input  InputConfig  `yaml:"input"`
	Output OutputConfig `yaml:"output"`
	Text   TextConfig   `yaml:"text"`
	Limits LimitsConfig `yaml:"limits"`
}

// InputConfig defines input source options.
type InputConfig struct {
	DefaultDir string `yaml:"defaultDir"` // Default input directory (empty = must specify)
	Format     string `yaml:"format"`     // "auto" (by extension), "text", "html", "markdown"
}

// OutputConfig defines output destination options.
type OutputConfig struct {
	DefaultDir string `yaml:"defaultDir"` // Default output directory (empty = stdout)
	Format     string `yaml:"format"`     // "text", "lines", "json", "yaml"
}

// TextConfig toggles the cleanup passes applied to markup input.
type TextConfig struct {
	FoldAbbreviations bool `yaml:"foldAbbreviations"`
	StripFootnotes    bool `yaml:"stripFootnotes"`
	CodeFences        bool `yaml:"codeFences"`
}

// LimitsConfig bounds resource usage.
type LimitsConfig struct {
	MaxInputSize int    `yaml:"maxInputSize"` // bytes per input (0 = library default)
	Timeout      string `yaml:"timeout"`      // Go duration per input, e.g. "30s" (empty = library default)
	Workers      int    `yaml:"workers"`      // parallel inputs (0 = auto)
}

// TimeoutDuration parses Limits.Timeout. An empty value yields zero.
func (l LimitsConfig) TimeoutDuration() (time.Duration, error) {
	if l.Timeout == "" {
		return 0, nil
	}
	d, err := time.ParseDuration(l.Timeout)
	if err != nil {
		return 0, fmt.Errorf("%w: limits.timeout %q: %v", ErrInvalidValue, l.Timeout, err)
	}
	if d <= 0 {
		return 0, fmt.Errorf("%w: limits.timeout must be positive, got %s", ErrInvalidValue, l.Timeout)
	}
	return d, nil
}

// Validate checks field lengths and values.
// Called automatically by LoadConfig, but available for consumers
// who construct Config manually.
func (c *Config) Validate() error {
	if err := validateFieldLength("input.defaultDir", c.Input.DefaultDir, MaxPathLength); err != nil {
		return err
	}
	if err := validateFieldLength("output.defaultDir", c.Output.DefaultDir, MaxPathLength); err != nil {
		return err
	}
	if err := validateFieldLength("input.format", c.Input.Format, MaxFormatLength); err != nil {
		return err
	}
	if err := validateFieldLength("output.format", c.Output.Format, MaxFormatLength); err != nil {
		return err
	}
	if err := validateFieldLength("limits.timeout", c.Limits.Timeout, MaxTimeoutLength); err != nil {
		return err
	}

	if err := validateChoice("input.format", c.Input.Format, InputFormats); err != nil {
		return err
	}
	if err := validateChoice("output.format", c.Output.Format, OutputFormats); err != nil {
		return err
	}

	if c.Limits.MaxInputSize < 0 || c.Limits.MaxInputSize > MaxInputSize {
		return fmt.Errorf("%w: limits.maxInputSize must be between 0 and %d, got %d",
			ErrInvalidValue, MaxInputSize, c.Limits.MaxInputSize)
	}
	if c.Limits.Workers < 0 || c.Limits.Workers > MaxWorkers {
		return fmt.Errorf("%w: limits.workers must be between 0 and %d, got %d",
			ErrInvalidValue, MaxWorkers, c.Limits.Workers)
	}
	if _, err := c.Limits.TimeoutDuration(); err != nil {
		return err
	}

	return nil
}

// validateFieldLength checks if a field exceeds its maximum allowed length.
func validateFieldLength(fieldName, value string, maxLength int) error {
	if len(value) > maxLength {
		return fmt.Errorf("%w: %s (%d chars, max %d)", ErrFieldTooLong, fieldName, len(value), maxLength)
	}
	return nil
}

// validateChoice accepts an empty value or one of choices.
func validateChoice(fieldName, value string, choices []string) error {
	if value == "" || slices.Contains(choices, value) {
		return nil
	}
	return fmt.Errorf("%w: %s %q (expected one of: %s)",
		ErrInvalidValue, fieldName, value, strings.Join(choices, ", "))
}

// DefaultConfig returns the configuration used when no file is given:
// format detection by extension, plain text output, every cleanup pass on.
func DefaultConfig() *Config {
	return &Config{
		Input:  InputConfig{Format: "auto"},
		Output: OutputConfig{Format: "text"},
		Text: TextConfig{
			FoldAbbreviations: true,
			StripFootnotes:    true,
			CodeFences:        true,
		},
	}
}

// LoadConfig loads configuration from a file path or config name.
// If nameOrPath contains a path separator, it's treated as a file path.
// Otherwise, it's treated as a config name and searched in standard locations.
// Fields absent from the file keep their DefaultConfig values.
// Returns error if the file is not found (no silent fallback).
func LoadConfig(nameOrPath string) (*Config, error) {
	if nameOrPath == "" {
		return nil, ErrEmptyConfigName
	}

	var configPath string
	var err error

	if fileutil.IsFilePath(nameOrPath) {
		configPath = nameOrPath
	} else {
		configPath, err = resolveConfigPath(nameOrPath)
		if err != nil {
			return nil, err
		}
	}

	data, err := os.ReadFile(configPath) // #nosec G304 -- config path is user-provided
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, configPath)
		}
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	cfg := DefaultConfig()
	if err := yamlutil.UnmarshalStrict(data, cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConfigParse, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// resolveConfigPath searches for a config file by name in standard locations.
// Tries extensions in order: .yaml, .yml
// Tries locations in order: current directory, ~/.config/go-katana/
func resolveConfigPath(name string) (string, error) {
	extensions := []string{".yaml", ".yml"}
	triedPaths := make([]string, 0, len(extensions)*2) // 2 locations

	// Try current directory first (both extensions)
	for _, ext := range extensions {
		localPath := name + ext
		if fileutil.FileExists(localPath) {
			return localPath, nil
		}
		triedPaths = append(triedPaths, localPath)
	}

	// Try user config directory (both extensions)
	userConfigDir, err := os.UserConfigDir()
	if err == nil {
		for _, ext := range extensions {
			userPath := filepath.Join(userConfigDir, "go-katana", name+ext)
			if fileutil.FileExists(userPath) {
				return userPath, nil
			}
			triedPaths = append(triedPaths, userPath)
		}
	}

	return "", fmt.Errorf("%w: tried %s", ErrConfigNotFound, strings.Join(triedPaths, ", "))
}
