package main

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/alnah/go-katana/internal/config"
)

// envPrefix marks environment variables read by the CLI.
const envPrefix = "KATANA_"

// envConfig holds configuration from environment variables.
// Provides CI/CD-friendly overrides without requiring YAML files.
type envConfig struct {
	ConfigPath   string        // KATANA_CONFIG: config file name or path
	Timeout      time.Duration // KATANA_TIMEOUT: per-input timeout
	InputDir     string        // KATANA_INPUT_DIR: default input directory
	OutputDir    string        // KATANA_OUTPUT_DIR: default output directory
	Format       string        // KATANA_FORMAT: input format
	OutputFormat string        // KATANA_OUTPUT_FORMAT: output format
	Workers      int           // KATANA_WORKERS: parallel inputs
	MaxInputSize int           // KATANA_MAX_INPUT_SIZE: bytes per input
}

// knownEnvVars lists valid KATANA_* environment variables.
// Used to detect typos and warn users about unknown variables.
var knownEnvVars = map[string]bool{
	"KATANA_CONFIG":         true,
	"KATANA_TIMEOUT":        true,
	"KATANA_INPUT_DIR":      true,
	"KATANA_OUTPUT_DIR":     true,
	"KATANA_FORMAT":         true,
	"KATANA_OUTPUT_FORMAT":  true,
	"KATANA_WORKERS":        true,
	"KATANA_MAX_INPUT_SIZE": true,
}

// loadEnvConfig reads configuration from environment variables.
// Malformed numbers and durations are ignored, not errors.
func loadEnvConfig(getenv func(string) string) *envConfig {
	cfg := &envConfig{
		ConfigPath:   getenv("KATANA_CONFIG"),
		InputDir:     getenv("KATANA_INPUT_DIR"),
		OutputDir:    getenv("KATANA_OUTPUT_DIR"),
		Format:       getenv("KATANA_FORMAT"),
		OutputFormat: getenv("KATANA_OUTPUT_FORMAT"),
	}

	if timeout := getenv("KATANA_TIMEOUT"); timeout != "" {
		if d, err := time.ParseDuration(timeout); err == nil && d > 0 {
			cfg.Timeout = d
		}
	}

	if workers := getenv("KATANA_WORKERS"); workers != "" {
		if w, err := strconv.Atoi(workers); err == nil && w > 0 {
			cfg.Workers = w
		}
	}

	if size := getenv("KATANA_MAX_INPUT_SIZE"); size != "" {
		if n, err := strconv.Atoi(size); err == nil && n > 0 {
			cfg.MaxInputSize = n
		}
	}

	return cfg
}

// warnUnknownEnvVars logs warnings for unrecognized KATANA_* variables.
// Helps catch typos like KATANA_WORKER instead of KATANA_WORKERS.
func warnUnknownEnvVars(environ []string, w io.Writer) {
	for _, kv := range environ {
		if !strings.HasPrefix(kv, envPrefix) {
			continue
		}
		name, _, _ := strings.Cut(kv, "=")
		if !knownEnvVars[name] {
			fmt.Fprintf(w, "warning: unknown environment variable %s (typo?)\n", name)
		}
	}
}

// applyEnvConfig applies environment variable values over the config file.
// Precedence: CLI flags > env vars > config file > defaults
// (CLI flags are applied later via mergeFlags).
func applyEnvConfig(env *envConfig, cfg *config.Config) {
	if env.InputDir != "" {
		cfg.Input.DefaultDir = env.InputDir
	}
	if env.OutputDir != "" {
		cfg.Output.DefaultDir = env.OutputDir
	}
	if env.Format != "" {
		cfg.Input.Format = env.Format
	}
	if env.OutputFormat != "" {
		cfg.Output.Format = env.OutputFormat
	}
	if env.Timeout > 0 {
		cfg.Limits.Timeout = env.Timeout.String()
	}
	if env.Workers > 0 {
		cfg.Limits.Workers = env.Workers
	}
	if env.MaxInputSize > 0 {
		cfg.Limits.MaxInputSize = env.MaxInputSize
	}
}
