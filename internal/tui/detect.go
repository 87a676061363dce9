// Package tui holds the terminal-facing pieces of pakmeta: interactivity
// detection, lipgloss styles, and the descriptor wizard used by `pakmeta
// init`.
package tui

import (
	"os"

	"golang.org/x/term"
)

// Mode represents the interaction mode for pakmeta.
type Mode int

const (
	// ModeNonInteractive is used for CI/CD pipelines, scripts, and piped input.
	ModeNonInteractive Mode = iota
	// ModeInteractive is used when a human is at the terminal.
	ModeInteractive
)

// envOverride is one environment variable that forces non-interactive mode
// when its value matches.
type envOverride struct {
	name    string
	matches func(value string) bool
}

var anyValue = func(value string) bool { return value != "" }

// nonInteractiveEnv lists the overrides checked before any terminal probing.
// PAKMETA_NON_INTERACTIVE is the explicit opt-out; CI is the convention most
// CI/CD systems export; NO_COLOR signals automation or accessibility tooling
// that styled TUI output would get in the way of.
var nonInteractiveEnv = []envOverride{
	{name: "PAKMETA_NON_INTERACTIVE", matches: func(value string) bool { return value == "1" }},
	{name: "CI", matches: anyValue},
	{name: "NO_COLOR", matches: anyValue},
}

// DetectMode determines whether pakmeta should run in interactive or
// non-interactive mode: any matching override in nonInteractiveEnv wins,
// after which both stdin and stdout must be terminals (stdout matters for
// TUI rendering, not just stdin for input).
func DetectMode() Mode {
	for _, override := range nonInteractiveEnv {
		if override.matches(os.Getenv(override.name)) {
			return ModeNonInteractive
		}
	}

	if !term.IsTerminal(int(os.Stdin.Fd())) || !term.IsTerminal(int(os.Stdout.Fd())) {
		return ModeNonInteractive
	}

	return ModeInteractive
}

// IsInteractive is a convenience function that returns true if running in interactive mode.
func IsInteractive() bool {
	return DetectMode() == ModeInteractive
}
