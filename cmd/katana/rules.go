package main

import (
	"encoding/json"
	"fmt"

	"github.com/alnah/go-katana"
)

// ruleInfo describes one protection pass.
type ruleInfo struct {
	Order int    `json:"order"`
	Name  string `json:"name"`
}

// runRulesCmd executes the rules command and returns an exit code.
func runRulesCmd(args []string, env *Environment) int {
	jsonOutput := false
	for _, arg := range args {
		switch arg {
		case "--json":
			jsonOutput = true
		case "-h", "--help":
			printRulesUsage(env.Stdout)
			return ExitSuccess
		default:
			fmt.Fprintf(env.Stderr, "unknown argument: %s\n", arg)
			printRulesUsage(env.Stderr)
			return ExitUsage
		}
	}

	names := katana.RuleNames()
	rules := make([]ruleInfo, len(names))
	for i, name := range names {
		rules[i] = ruleInfo{Order: i + 1, Name: name}
	}

	if jsonOutput {
		enc := json.NewEncoder(env.Stdout)
		enc.SetIndent("", "  ")
		_ = enc.Encode(rules)
		return ExitSuccess
	}

	for _, r := range rules {
		fmt.Fprintf(env.Stdout, "%2d. %s\n", r.Order, r.Name)
	}
	return ExitSuccess
}
