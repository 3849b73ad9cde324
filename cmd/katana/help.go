package main

import (
	"fmt"
	"io"
)

// printUsage prints the main usage message.
func printUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: katana <command> [flags] [args]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Commands:")
	fmt.Fprintln(w, "  cut        Cut text, HTML or Markdown into sentences (default)")
	fmt.Fprintln(w, "  rules      List the protection rules in the order they run")
	fmt.Fprintln(w, "  version    Show version information")
	fmt.Fprintln(w, "  help       Show help for a command")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Run 'katana help <command>' for details on a specific command.")
}

// printCutUsage prints usage for the cut command.
func printCutUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: katana cut [input] [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Cut documents into paragraphs of sentences.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Arguments:")
	fmt.Fprintln(w, "  input    File, directory, or - for standard input")
	fmt.Fprintln(w, "           (optional if config has input.defaultDir; defaults to stdin)")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Input/Output:")
	fmt.Fprintln(w, "  -f, --format <s>          Input format: auto, text, html, markdown")
	fmt.Fprintln(w, "  -F, --output-format <s>   Output format: text, lines, json, yaml")
	fmt.Fprintln(w, "  -o, --output <path>       Output file or directory (default: stdout)")
	fmt.Fprintln(w, "  -c, --config <name>       Config file name or path")
	fmt.Fprintln(w, "  -w, --workers <n>         Parallel inputs (0 = auto)")
	fmt.Fprintln(w, "  -t, --timeout <d>         Per-input timeout (e.g., 30s, 2m)")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Markup Cleanup:")
	fmt.Fprintln(w, "      --no-fold-abbreviations  Keep periods in e.g., i.e., mr., ...")
	fmt.Fprintln(w, "      --keep-footnotes         Keep [12] style references")
	fmt.Fprintln(w, "      --no-code-fences         Do not fence <pre> or backtick <code>")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Output Control:")
	fmt.Fprintln(w, "  -q, --quiet               Only show errors")
	fmt.Fprintln(w, "  -v, --verbose             Show detailed timing")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Environment:")
	fmt.Fprintln(w, "  KATANA_CONFIG, KATANA_FORMAT, KATANA_OUTPUT_FORMAT, KATANA_INPUT_DIR,")
	fmt.Fprintln(w, "  KATANA_OUTPUT_DIR, KATANA_WORKERS, KATANA_TIMEOUT, KATANA_MAX_INPUT_SIZE")
}

// printRulesUsage prints usage for the rules command.
func printRulesUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: katana rules [--json]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "List the protection rules in the order they run.")
}

// runHelp prints help for a specific command.
func runHelp(args []string, env *Environment) int {
	if len(args) == 0 {
		printUsage(env.Stdout)
		return ExitSuccess
	}

	switch args[0] {
	case cmdCut:
		printCutUsage(env.Stdout)
	case cmdRules:
		printRulesUsage(env.Stdout)
	case cmdVersion:
		fmt.Fprintln(env.Stdout, "Usage: katana version")
		fmt.Fprintln(env.Stdout)
		fmt.Fprintln(env.Stdout, "Show version information.")
	case cmdHelp:
		fmt.Fprintln(env.Stdout, "Usage: katana help [command]")
		fmt.Fprintln(env.Stdout)
		fmt.Fprintln(env.Stdout, "Show help for a command.")
	default:
		fmt.Fprintf(env.Stderr, "Unknown command: %s\n", args[0])
		printUsage(env.Stderr)
		return ExitUsage
	}
	return ExitSuccess
}
