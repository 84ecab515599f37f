// Package detector selects how invocation progress is rendered.
package detector

import (
	"os"

	"golang.org/x/term"
)

// OutputMode is the rendering mode of a resolve-and-build invocation.
type OutputMode int

const (
	// ModeAuto picks a mode from the environment.
	ModeAuto OutputMode = iota
	// ModeTUI renders phases in the interactive terminal view.
	ModeTUI
	// ModePlain streams phase output as log lines.
	ModePlain
)

// DetectEnvironment returns ModePlain when stdout is not a terminal or a CI
// variable is set, ModeTUI otherwise.
func DetectEnvironment() OutputMode {
	if !term.IsTerminal(int(os.Stdout.Fd())) || IsCI() {
		return ModePlain
	}
	return ModeTUI
}

// IsCI reports whether CI is set to "true" or "1".
func IsCI() bool {
	ci := os.Getenv("CI")
	return ci == "true" || ci == "1"
}

// ResolveMode applies the --progress flag on top of the detected mode.
// Unrecognized values fall back to autoDetected.
func ResolveMode(autoDetected OutputMode, userFlag string) OutputMode {
	switch userFlag {
	case "tui":
		return ModeTUI
	case "plain", "ci":
		return ModePlain
	default:
		return autoDetected
	}
}
