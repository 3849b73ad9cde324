package main

import (
	"io"

	flag "github.com/spf13/pflag"
)

// commonFlags holds flags shared across commands.
type commonFlags struct {
	config  string
	quiet   bool
	verbose bool
}

// textFlags disable the cleanup passes applied to markup input.
type textFlags struct {
	noFoldAbbreviations bool
	keepFootnotes       bool
	noCodeFences        bool
}

// cutFlags holds all flags for the cut command.
type cutFlags struct {
	common       commonFlags
	format       string
	outputFormat string
	output       string
	workers      int
	timeout      string
	text         textFlags
}

// addCommonFlags adds common flags to a FlagSet.
func addCommonFlags(fs *flag.FlagSet, f *commonFlags) {
	fs.StringVarP(&f.config, "config", "c", "", "config file name or path")
	fs.BoolVarP(&f.quiet, "quiet", "q", false, "only show errors")
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "show detailed timing")
}

// addTextFlags adds markup cleanup flags to a FlagSet.
func addTextFlags(fs *flag.FlagSet, f *textFlags) {
	fs.BoolVar(&f.noFoldAbbreviations, "no-fold-abbreviations", false, "keep periods in lowercase abbreviations (e.g., i.e.)")
	fs.BoolVar(&f.keepFootnotes, "keep-footnotes", false, "keep [12] style footnote references")
	fs.BoolVar(&f.noCodeFences, "no-code-fences", false, "do not fence <pre> or backtick <code>")
}

// newCutFlagSet builds the cut command FlagSet bound to f.
func newCutFlagSet(f *cutFlags, stderr io.Writer) *flag.FlagSet {
	fs := flag.NewFlagSet("cut", flag.ContinueOnError)
	fs.SetOutput(stderr)

	// I/O flags
	fs.StringVarP(&f.format, "format", "f", "", "input format: auto, text, html, markdown")
	fs.StringVarP(&f.outputFormat, "output-format", "F", "", "output format: text, lines, json, yaml")
	fs.StringVarP(&f.output, "output", "o", "", "output file or directory")
	fs.IntVarP(&f.workers, "workers", "w", 0, "parallel inputs (0 = auto)")
	fs.StringVarP(&f.timeout, "timeout", "t", "", "per-input timeout (e.g., 30s, 2m)")

	// Flag groups
	addCommonFlags(fs, &f.common)
	addTextFlags(fs, &f.text)

	fs.Usage = func() { printCutUsage(stderr) }
	return fs
}

// parseCutFlags parses cut command flags and returns positional args.
// Returns flag.ErrHelp when -h or --help is given.
func parseCutFlags(args []string, stderr io.Writer) (*cutFlags, []string, error) {
	f := &cutFlags{}
	fs := newCutFlagSet(f, stderr)

	if err := fs.Parse(args); err != nil {
		return nil, nil, err
	}

	return f, fs.Args(), nil
}
