package main

// Notes:
// - runMain: we test command dispatch and exit codes end to end, with an
//   injected Environment: stdin, stdout, files, config files, and KATANA_*
//   variables. Signals are covered by signal_test.go.
// - Precedence is checked across the layers: flags > env > config file.
// These are acceptable gaps: we test observable behavior, not implementation details.

import (
	"path/filepath"
	"strings"
	"testing"
)

// ---------------------------------------------------------------------------
// TestRunMain_Commands - Dispatch
// ---------------------------------------------------------------------------

func TestRunMain_Commands(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		args       []string
		wantCode   int
		wantStdout string
	}{
		{"version", []string{"katana", "version"}, ExitSuccess, "katana dev\n"},
		{"version flag", []string{"katana", "--version"}, ExitSuccess, "katana dev\n"},
		{"help", []string{"katana", "help"}, ExitSuccess, "Usage: katana <command>"},
		{"help flag", []string{"katana", "-h"}, ExitSuccess, "Usage: katana <command>"},
		{"help for cut", []string{"katana", "help", "cut"}, ExitSuccess, "Usage: katana cut"},
		{"rules", []string{"katana", "rules"}, ExitSuccess, " 1. composite-abbreviations\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			env := newTestEnv("", nil)
			if code := runMain(tt.args, env.Environment); code != tt.wantCode {
				t.Errorf("runMain() = %d, want %d (stderr: %s)", code, tt.wantCode, env.stderr.String())
			}
			if !strings.Contains(env.stdout.String(), tt.wantStdout) {
				t.Errorf("stdout = %q, want it to contain %q", env.stdout.String(), tt.wantStdout)
			}
		})
	}
}

// ---------------------------------------------------------------------------
// TestRunMain_Cut - Cutting to stdout
// ---------------------------------------------------------------------------

func TestRunMain_Cut(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	notes := writeFile(t, dir, "notes.md", "# Title\n\nFirst one. Second one.\n")
	page := writeFile(t, dir, "page.html", "<p>Tools, e.g. hammers [2].</p><pre>x = 1. y = 2.</pre>")

	tests := []struct {
		name       string
		args       []string
		stdin      string
		vars       map[string]string
		wantStdout string
	}{
		{
			name:       "stdin by default",
			args:       []string{"katana"},
			stdin:      "Hello there. Bye now.",
			wantStdout: "Hello there. Bye now.\n",
		},
		{
			name:       "stdin as lines",
			args:       []string{"katana", "-F", "lines", "-"},
			stdin:      "Hello there. Bye now.\nNew paragraph.",
			wantStdout: "Hello there.\nBye now.\n\nNew paragraph.\n",
		},
		{
			name:       "explicit cut command",
			args:       []string{"katana", "cut", "--output-format", "lines", notes},
			wantStdout: "Title\n\nFirst one.\nSecond one.\n",
		},
		{
			name:       "markdown as json",
			args:       []string{"katana", notes, "-F", "json"},
			wantStdout: "{\n  \"paragraphs\": [\n    [\n      \"Title\"\n    ],\n    [\n      \"First one.\",\n      \"Second one.\"\n    ]\n  ]\n}\n",
		},
		{
			name:       "forced text format keeps markup",
			args:       []string{"katana", "-f", "text", "-F", "lines", notes},
			wantStdout: "# Title\n\nFirst one.\nSecond one.\n",
		},
		{
			name:       "html cleanup disabled",
			args:       []string{"katana", "--no-fold-abbreviations", "--keep-footnotes", "--no-code-fences", "-F", "lines", page},
			wantStdout: "Tools, e.g. hammers [2].\n\nx = 1.\ny = 2.\n",
		},
		{
			name:       "env output format",
			args:       []string{"katana", "-"},
			stdin:      "One line here.",
			vars:       map[string]string{"KATANA_OUTPUT_FORMAT": "lines"},
			wantStdout: "One line here.\n",
		},
		{
			name:       "flag beats env",
			args:       []string{"katana", "-F", "text", "-"},
			stdin:      "A b. C d.",
			vars:       map[string]string{"KATANA_OUTPUT_FORMAT": "json"},
			wantStdout: "A b. C d.\n",
		},
		{
			name:       "whitespace only input",
			args:       []string{"katana"},
			stdin:      "  \n\n ",
			wantStdout: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			env := newTestEnv(tt.stdin, tt.vars)
			if code := runMain(tt.args, env.Environment); code != ExitSuccess {
				t.Fatalf("runMain() = %d, want %d (stderr: %s)", code, ExitSuccess, env.stderr.String())
			}
			if got := env.stdout.String(); got != tt.wantStdout {
				t.Errorf("stdout = %q, want %q", got, tt.wantStdout)
			}
		})
	}
}

// ---------------------------------------------------------------------------
// TestRunMain_ConfigPrecedence - env > config file
// ---------------------------------------------------------------------------

func TestRunMain_ConfigPrecedence(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	cfgPath := writeFile(t, dir, "katana.yaml", "output:\n  format: lines\n")

	tests := []struct {
		name       string
		args       []string
		vars       map[string]string
		wantStdout string
	}{
		{
			name:       "config flag",
			args:       []string{"katana", "-c", cfgPath},
			wantStdout: "Go now.\nStay here.\n",
		},
		{
			name:       "config from env",
			args:       []string{"katana"},
			vars:       map[string]string{"KATANA_CONFIG": cfgPath},
			wantStdout: "Go now.\nStay here.\n",
		},
		{
			name:       "env overrides config file",
			args:       []string{"katana", "-c", cfgPath},
			vars:       map[string]string{"KATANA_OUTPUT_FORMAT": "text"},
			wantStdout: "Go now. Stay here.\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			env := newTestEnv("Go now. Stay here.", tt.vars)
			if code := runMain(tt.args, env.Environment); code != ExitSuccess {
				t.Fatalf("runMain() = %d, want %d (stderr: %s)", code, ExitSuccess, env.stderr.String())
			}
			if got := env.stdout.String(); got != tt.wantStdout {
				t.Errorf("stdout = %q, want %q", got, tt.wantStdout)
			}
		})
	}
}

// ---------------------------------------------------------------------------
// TestRunMain_Directory - Batch cutting
// ---------------------------------------------------------------------------

func TestRunMain_Directory(t *testing.T) {
	t.Parallel()

	t.Run("next to sources", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		writeFile(t, dir, "a.md", "Alpha one. Alpha two.")
		writeFile(t, dir, "sub/b.html", "<p>Beta.</p><p>Gamma.</p>")

		env := newTestEnv("", nil)
		if code := runMain([]string{"katana", "-F", "lines", "-w", "2", dir}, env.Environment); code != ExitSuccess {
			t.Fatalf("runMain() = %d, want %d (stderr: %s)", code, ExitSuccess, env.stderr.String())
		}

		if got := readFile(t, filepath.Join(dir, "a.cut.txt")); got != "Alpha one.\nAlpha two.\n" {
			t.Errorf("a.cut.txt = %q", got)
		}
		if got := readFile(t, filepath.Join(dir, "sub", "b.cut.txt")); got != "Beta.\n\nGamma.\n" {
			t.Errorf("b.cut.txt = %q", got)
		}
		if !strings.Contains(env.stdout.String(), "2 succeeded, 0 failed") {
			t.Errorf("stdout = %q, want summary", env.stdout.String())
		}

		// A second run skips the files written by the first.
		env = newTestEnv("", nil)
		if code := runMain([]string{"katana", "-q", dir}, env.Environment); code != ExitSuccess {
			t.Fatalf("second runMain() = %d (stderr: %s)", code, env.stderr.String())
		}
		if env.stdout.Len() != 0 {
			t.Errorf("quiet stdout = %q, want nothing", env.stdout.String())
		}
	})

	t.Run("mirrored under output dir from env", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		out := filepath.Join(t.TempDir(), "out")
		writeFile(t, dir, "x/doc.txt", "Plain text. More text.")

		env := newTestEnv("", map[string]string{
			"KATANA_INPUT_DIR":     dir,
			"KATANA_OUTPUT_DIR":    out,
			"KATANA_OUTPUT_FORMAT": "yaml",
		})
		if code := runMain([]string{"katana"}, env.Environment); code != ExitSuccess {
			t.Fatalf("runMain() = %d, want %d (stderr: %s)", code, ExitSuccess, env.stderr.String())
		}

		got := readFile(t, filepath.Join(out, "x", "doc.cut.yaml"))
		if !strings.HasPrefix(got, "paragraphs:\n") || !strings.Contains(got, "More text.") {
			t.Errorf("doc.cut.yaml = %q", got)
		}
	})

	t.Run("one failing file", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		writeFile(t, dir, "good.txt", "Fine.")
		writeFile(t, dir, "empty.txt", "")

		env := newTestEnv("", nil)
		if code := runMain([]string{"katana", dir}, env.Environment); code != ExitGeneral {
			t.Errorf("runMain() = %d, want %d", code, ExitGeneral)
		}
		stderr := env.stderr.String()
		if !strings.Contains(stderr, "FAILED "+filepath.Join(dir, "empty.txt")) {
			t.Errorf("stderr = %q, want failure line", stderr)
		}
		if !strings.Contains(stderr, "1 of 2 input(s) failed") {
			t.Errorf("stderr = %q, want failure count", stderr)
		}
	})
}

// ---------------------------------------------------------------------------
// TestRunMain_Errors - Exit codes and hints
// ---------------------------------------------------------------------------

func TestRunMain_Errors(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	empty := t.TempDir()
	writeFile(t, empty, "image.png", "binary")

	tests := []struct {
		name       string
		args       []string
		stdin      string
		vars       map[string]string
		wantCode   int
		wantStderr string
	}{
		{
			name:       "unknown flag",
			args:       []string{"katana", "--style", "dark"},
			wantCode:   ExitUsage,
			wantStderr: "unknown flag",
		},
		{
			name:       "too many arguments",
			args:       []string{"katana", "a.md", "b.md"},
			wantCode:   ExitUsage,
			wantStderr: "too many arguments",
		},
		{
			name:       "unknown output format",
			args:       []string{"katana", "-F", "pdf"},
			stdin:      "x",
			wantCode:   ExitUsage,
			wantStderr: "hint: available: text, lines, json, yaml",
		},
		{
			name:       "unknown input format",
			args:       []string{"katana", "-f", "rtf"},
			stdin:      "x",
			wantCode:   ExitUsage,
			wantStderr: "hint: available: auto, text, html, markdown",
		},
		{
			name:       "negative workers",
			args:       []string{"katana", "-w", "-1"},
			wantCode:   ExitUsage,
			wantStderr: "invalid worker count",
		},
		{
			name:       "invalid timeout",
			args:       []string{"katana", "-t", "soon"},
			stdin:      "x",
			wantCode:   ExitUsage,
			wantStderr: "invalid timeout",
		},
		{
			name:       "config not found",
			args:       []string{"katana", "-c", filepath.Join(dir, "nope.yaml")},
			wantCode:   ExitUsage,
			wantStderr: "config file not found",
		},
		{
			name:       "missing input",
			args:       []string{"katana", filepath.Join(dir, "missing.md")},
			wantCode:   ExitIO,
			wantStderr: "failed to read input",
		},
		{
			name:       "directory without inputs",
			args:       []string{"katana", empty},
			wantCode:   ExitIO,
			wantStderr: "hint: pass a file or directory",
		},
		{
			name:       "empty stdin",
			args:       []string{"katana"},
			stdin:      "",
			wantCode:   ExitUsage,
			wantStderr: "error:",
		},
		{
			name:       "input too large",
			args:       []string{"katana"},
			stdin:      "This is longer than eight bytes.",
			vars:       map[string]string{"KATANA_MAX_INPUT_SIZE": "8"},
			wantCode:   ExitUsage,
			wantStderr: "hint: raise limits.maxInputSize",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			env := newTestEnv(tt.stdin, tt.vars)
			if code := runMain(tt.args, env.Environment); code != tt.wantCode {
				t.Errorf("runMain() = %d, want %d (stderr: %s)", code, tt.wantCode, env.stderr.String())
			}
			if !strings.Contains(env.stderr.String(), tt.wantStderr) {
				t.Errorf("stderr = %q, want it to contain %q", env.stderr.String(), tt.wantStderr)
			}
		})
	}
}

func TestRunMain_WarnsUnknownEnvVars(t *testing.T) {
	t.Parallel()

	env := newTestEnv("Hi there.", map[string]string{"KATANA_WORKER": "2"})
	if code := runMain([]string{"katana"}, env.Environment); code != ExitSuccess {
		t.Fatalf("runMain() = %d (stderr: %s)", code, env.stderr.String())
	}
	if !strings.Contains(env.stderr.String(), "unknown environment variable KATANA_WORKER") {
		t.Errorf("stderr = %q, want typo warning", env.stderr.String())
	}
}
