package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"runtime"
	"sync"
	"time"

	"github.com/alnah/go-katana"
	"github.com/alnah/go-katana/internal/fileutil"
)

// filePermissions is rw-r--r--: owner read+write, others read.
const filePermissions = 0o644

// maxAutoWorkers caps the worker count picked from GOMAXPROCS.
const maxAutoWorkers = 8

// CutResult holds the outcome of a single input.
type CutResult struct {
	InputPath  string
	OutputPath string
	Sentences  int
	Err        error
	Duration   time.Duration
}

// resolveWorkers determines the number of parallel inputs.
// Priority: explicit value > GOMAXPROCS-based calculation.
func resolveWorkers(n int) int {
	if n > 0 {
		return n
	}

	// GOMAXPROCS is adjusted by automaxprocs for containers
	available := runtime.GOMAXPROCS(0)
	if available < 1 {
		return 1
	}
	if available > maxAutoWorkers {
		return maxAutoWorkers
	}
	return available
}

// cutBatch cuts files with a bounded number of workers.
// Results keep the order of files.
func cutBatch(ctx context.Context, seg Segmenter, files []FileToCut, workers int, params *cutParams, env *Environment) []CutResult {
	if len(files) == 0 {
		return nil
	}

	concurrency := max(1, min(workers, len(files)))

	results := make([]CutResult, len(files))
	var wg sync.WaitGroup
	jobs := make(chan int, len(files))

	for w := 0; w < concurrency; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for idx := range jobs {
				if ctx.Err() != nil {
					results[idx] = CutResult{
						InputPath: files[idx].InputPath,
						Err:       ctx.Err(),
					}
					continue
				}
				results[idx] = cutFile(ctx, seg, files[idx], params, env)
			}
		}()
	}

	for i := range files {
		jobs <- i
	}
	close(jobs)

	wg.Wait()
	return results
}

// cutFile processes a single input and returns the result.
func cutFile(ctx context.Context, seg Segmenter, f FileToCut, params *cutParams, env *Environment) CutResult {
	start := time.Now()
	result := CutResult{
		InputPath:  f.InputPath,
		OutputPath: f.OutputPath,
	}

	content, err := readInput(f.InputPath, params.maxInputSize, env.Stdin)
	if err != nil {
		result.Err = err
		result.Duration = time.Since(start)
		return result
	}

	doc, err := seg.Segment(ctx, katana.Input{Content: string(content), Format: f.Format})
	if err != nil {
		result.Err = err
		result.Duration = time.Since(start)
		return result
	}

	data, err := params.output.render(doc)
	if err != nil {
		result.Err = fmt.Errorf("rendering %s output: %w", params.output.name, err)
		result.Duration = time.Since(start)
		return result
	}

	if err := writeOutput(f.OutputPath, data, env.Stdout); err != nil {
		result.Err = err
		result.Duration = time.Since(start)
		return result
	}

	result.Sentences = doc.SentenceCount()
	result.Duration = time.Since(start)
	return result
}

// readInput reads a file, or standard input for "-", up to limit bytes.
// Larger inputs fail with katana.ErrInputTooLarge without being read whole.
func readInput(path string, limit int, stdin io.Reader) ([]byte, error) {
	var r io.Reader
	if path == stdinArg {
		if stdin == nil {
			return nil, fmt.Errorf("%w: standard input is not available", ErrNoInput)
		}
		r = stdin
	} else {
		f, err := os.Open(path) // #nosec G304 -- user-provided or discovered path
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrReadInput, err)
		}
		defer func() { _ = f.Close() }()
		r = f
	}

	data, err := io.ReadAll(io.LimitReader(r, int64(limit)+1))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrReadInput, err)
	}
	if len(data) > limit {
		return nil, fmt.Errorf("%w: more than %d bytes", katana.ErrInputTooLarge, limit)
	}
	return data, nil
}

// writeOutput writes data to path, or to stdout when path is empty.
func writeOutput(path string, data []byte, stdout io.Writer) error {
	if path == "" {
		if _, err := stdout.Write(data); err != nil {
			return fmt.Errorf("%w: %v", ErrWriteOutput, err)
		}
		return nil
	}

	// #nosec G306 -- cut files are meant to be readable
	if err := fileutil.WriteFileAtomic(path, data, filePermissions); err != nil {
		return fmt.Errorf("%w: %s: %v", ErrWriteOutput, path, err)
	}
	return nil
}

// printResults reports batch results and returns the failure count.
// Results written to stdout print nothing on success, so the document
// stays clean for pipes.
func printResults(results []CutResult, quiet, verbose bool, env *Environment) int {
	var succeeded, failed int

	for _, r := range results {
		if r.Err != nil {
			failed++
			fmt.Fprintf(env.Stderr, "FAILED %s: %v%s\n", r.InputPath, r.Err, hintFor(r.Err))
			continue
		}

		succeeded++
		if quiet {
			continue
		}

		switch {
		case r.OutputPath == "":
			if verbose {
				fmt.Fprintf(env.Stderr, "%s: %d sentence(s) (%v)\n", r.InputPath, r.Sentences, r.Duration.Round(time.Millisecond))
			}
		case verbose:
			fmt.Fprintf(env.Stdout, "%s -> %s: %d sentence(s) (%v)\n", r.InputPath, r.OutputPath, r.Sentences, r.Duration.Round(time.Millisecond))
		default:
			fmt.Fprintf(env.Stdout, "Created %s\n", r.OutputPath)
		}
	}

	if !quiet && len(results) > 1 {
		fmt.Fprintf(env.Stdout, "\n%d succeeded, %d failed\n", succeeded, failed)
	}

	return failed
}
