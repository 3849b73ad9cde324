package main

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/alnah/go-katana"
	"github.com/alnah/go-katana/internal/config"
	"github.com/alnah/go-katana/internal/fileutil"
)

// stdinArg names standard input on the command line.
const stdinArg = "-"

// cutSuffix marks files written by katana so reruns skip them.
const cutSuffix = ".cut"

// inputExtensions lists the file extensions picked up in directories.
var inputExtensions = []string{".txt", ".text", ".html", ".htm", ".xhtml", ".md", ".markdown"}

// FileToCut represents a single input to process.
// An empty OutputPath means standard output.
type FileToCut struct {
	InputPath  string
	OutputPath string
	Format     katana.Format
}

// resolveInputPath determines the input path from args or config.
// Standard input is used when neither names one.
func resolveInputPath(args []string, cfg *config.Config) string {
	if len(args) > 0 {
		return args[0]
	}
	if cfg.Input.DefaultDir != "" {
		return cfg.Input.DefaultDir
	}
	return stdinArg
}

// resolveOutput determines the output file or directory from flag or config.
func resolveOutput(flagOutput string, cfg *config.Config) string {
	if flagOutput != "" {
		return flagOutput
	}
	return cfg.Output.DefaultDir
}

// discoverInputs finds every input to cut. format overrides the
// per-file guess when set; ext is the output file extension.
func discoverInputs(inputPath, output string, format katana.Format, ext string) ([]FileToCut, error) {
	if inputPath == stdinArg {
		return []FileToCut{{
			InputPath:  stdinArg,
			OutputPath: singleOutputPath("stdin", output, ext),
			Format:     formatFor(format, ""),
		}}, nil
	}

	info, err := os.Stat(inputPath)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrReadInput, err)
	}

	if !info.IsDir() {
		return []FileToCut{{
			InputPath:  inputPath,
			OutputPath: singleOutputPath(inputPath, output, ext),
			Format:     formatFor(format, inputPath),
		}}, nil
	}

	var files []FileToCut
	err = filepath.WalkDir(inputPath, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return fmt.Errorf("scanning %s: %w", path, err)
		}
		if d.IsDir() {
			if path != inputPath && strings.HasPrefix(d.Name(), ".") {
				return filepath.SkipDir
			}
			return nil
		}
		if !isCuttable(path) {
			return nil
		}
		files = append(files, FileToCut{
			InputPath:  path,
			OutputPath: treeOutputPath(path, inputPath, output, ext),
			Format:     formatFor(format, path),
		})
		return nil
	})
	if err != nil {
		return nil, err
	}

	if len(files) == 0 {
		return nil, fmt.Errorf("%w: no text, HTML or Markdown files in %s", ErrNoInput, inputPath)
	}
	return files, nil
}

// isCuttable reports whether a discovered file should be cut.
// Earlier katana output and hidden files are skipped.
func isCuttable(path string) bool {
	name := filepath.Base(path)
	if strings.HasPrefix(name, ".") || strings.Contains(name, cutSuffix+".") {
		return false
	}
	return fileutil.HasExtension(path, inputExtensions...)
}

// formatFor returns the forced format, or the guess from path.
func formatFor(forced katana.Format, path string) katana.Format {
	if forced != "" {
		return forced
	}
	if path == "" {
		return katana.FormatText
	}
	return katana.FormatFromPath(path)
}

// singleOutputPath resolves the output for a lone input: standard output
// when no output is set, the output itself when it names a file, or a
// ".cut" file inside the output directory.
func singleOutputPath(inputPath, output, ext string) string {
	if output == "" {
		return ""
	}
	if isOutputFile(output) {
		return output
	}
	return filepath.Join(output, cutName(inputPath, ext))
}

// treeOutputPath resolves the output for a file found under baseDir.
// Without an output directory the result sits next to the input;
// otherwise the input tree is mirrored under output.
func treeOutputPath(inputPath, baseDir, output, ext string) string {
	if output == "" {
		return filepath.Join(filepath.Dir(inputPath), cutName(inputPath, ext))
	}

	relPath, err := filepath.Rel(baseDir, inputPath)
	if err != nil {
		return filepath.Join(output, cutName(inputPath, ext))
	}
	return filepath.Join(output, filepath.Dir(relPath), cutName(inputPath, ext))
}

// cutName returns "notes.cut.txt" for "dir/notes.md" and ext ".txt".
func cutName(inputPath, ext string) string {
	return fileutil.ReplaceExtension(filepath.Base(inputPath), cutSuffix+ext)
}

// isOutputFile reports whether output names a file rather than a directory:
// it has an extension and is not an existing directory.
func isOutputFile(output string) bool {
	if filepath.Ext(output) == "" {
		return false
	}
	info, err := os.Stat(output)
	return err != nil || !info.IsDir()
}

// validateWorkers checks that the worker count is within valid bounds.
func validateWorkers(n int) error {
	if n < 0 {
		return fmt.Errorf("%w: %d (must be >= 0, 0 means auto)", ErrInvalidWorkerCount, n)
	}
	if n > config.MaxWorkers {
		return fmt.Errorf("%w: %d (maximum is %d)", ErrInvalidWorkerCount, n, config.MaxWorkers)
	}
	return nil
}
