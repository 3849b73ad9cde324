package main

// Notes:
// - Test infrastructure shared across command tests: an Environment with
//   captured output, a map-backed process environment, and a scripted
//   Segmenter.
// No coverage gaps: this is test infrastructure, not production code.

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/alnah/go-katana"
)

// testEnv holds an Environment and the buffers behind its writers.
type testEnv struct {
	*Environment
	stdout *bytes.Buffer
	stderr *bytes.Buffer
}

// newTestEnv returns an Environment reading stdin from the given string
// and variables from vars instead of the process environment.
func newTestEnv(stdin string, vars map[string]string) *testEnv {
	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}
	return &testEnv{
		Environment: &Environment{
			Stdin:  strings.NewReader(stdin),
			Stdout: stdout,
			Stderr: stderr,
			Getenv: func(key string) string { return vars[key] },
			Environ: func() []string {
				out := make([]string, 0, len(vars))
				for k, v := range vars {
					out = append(out, k+"="+v)
				}
				slices.Sort(out)
				return out
			},
		},
		stdout: stdout,
		stderr: stderr,
	}
}

// writeFile creates dir/name with content, creating parents.
func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
		t.Fatalf("MkdirAll() error = %v", err)
	}
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}
	return path
}

// readFile returns the content of path or fails the test.
func readFile(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path) // #nosec G304 -- test path
	if err != nil {
		t.Fatalf("ReadFile(%s) error = %v", path, err)
	}
	return string(data)
}

// mockSegmenter returns a fixed document or error and counts calls.
type mockSegmenter struct {
	doc   *katana.Document
	err   error
	calls atomic.Int32
}

func (m *mockSegmenter) Segment(_ context.Context, input katana.Input) (*katana.Document, error) {
	m.calls.Add(1)
	if m.err != nil {
		return nil, m.err
	}
	if m.doc != nil {
		return m.doc, nil
	}
	return &katana.Document{Paragraphs: [][]string{{input.Content}}}, nil
}
