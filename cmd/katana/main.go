package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	flag "github.com/spf13/pflag"
	"go.uber.org/automaxprocs/maxprocs"
)

// Version is set at build time via ldflags.
var Version = "dev"

// Command names.
const (
	cmdCut     = "cut"
	cmdRules   = "rules"
	cmdVersion = "version"
	cmdHelp    = "help"
)

func main() {
	os.Exit(runMain(os.Args, DefaultEnv()))
}

// runMain dispatches to a command and returns the process exit code.
// Arguments that do not name a command are treated as cut arguments,
// so "katana notes.md" is "katana cut notes.md".
func runMain(args []string, env *Environment) int {
	if len(args) < 2 {
		return runCutCmd(nil, env)
	}

	switch cmd := args[1]; {
	case cmd == cmdCut:
		return runCutCmd(args[2:], env)
	case cmd == cmdRules:
		return runRulesCmd(args[2:], env)
	case cmd == cmdVersion || cmd == "--version":
		fmt.Fprintf(env.Stdout, "katana %s\n", Version)
		return ExitSuccess
	case cmd == cmdHelp || cmd == "-h" || cmd == "--help":
		return runHelp(args[2:], env)
	default:
		return runCutCmd(args[1:], env)
	}
}

// runCutCmd parses flags, prepares the runtime and runs the cut command.
func runCutCmd(args []string, env *Environment) int {
	flags, positional, err := parseCutFlags(args, env.Stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return ExitSuccess
		}
		fmt.Fprintln(env.Stderr, err)
		return ExitUsage
	}

	setMaxProcs(flags.common.verbose, env.Stderr)

	ctx, stop := notifyContext(context.Background())
	defer stop()

	if err := runCut(ctx, positional, flags, env); err != nil {
		fmt.Fprintln(env.Stderr, "error:", err.Error()+hintFor(err))
		return exitCodeFor(err)
	}
	return ExitSuccess
}

// setMaxProcs configures GOMAXPROCS for the container CPU quota.
// Error ignored: maxprocs.Set only fails if GOMAXPROCS env is invalid,
// in which case Go runtime defaults apply and the program continues safely.
func setMaxProcs(verbose bool, w io.Writer) {
	logger := func(string, ...any) {}
	if verbose {
		logger = func(format string, args ...any) {
			fmt.Fprintf(w, format+"\n", args...)
		}
	}
	_, _ = maxprocs.Set(maxprocs.Logger(logger))
}
