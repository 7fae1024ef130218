// Package detector picks the prompt mode for the current environment.
package detector

import (
	"os"

	"golang.org/x/term"
)

// OutputMode represents how version prompts are presented.
type OutputMode int

const (
	// ModeAuto detects the mode from the environment.
	ModeAuto OutputMode = iota
	// ModeTUI forces the interactive text-input prompt.
	ModeTUI
	// ModeLinear forces the plain line-based prompt.
	ModeLinear
)

// String returns the flag spelling of the mode.
func (m OutputMode) String() string {
	switch m {
	case ModeTUI:
		return "tui"
	case ModeLinear:
		return "linear"
	default:
		return "auto"
	}
}

// DetectEnvironment returns the recommended mode. The interactive prompt needs
// both stdin and stdout attached to a terminal and no CI marker.
func DetectEnvironment() OutputMode {
	return detect(
		term.IsTerminal(int(os.Stdin.Fd())) && term.IsTerminal(int(os.Stdout.Fd())),
		os.Getenv("CI"),
	)
}

func detect(isTTY bool, ci string) OutputMode {
	isCI := ci == "true" || ci == "1"
	if !isTTY || isCI {
		return ModeLinear
	}
	return ModeTUI
}

// ResolveMode applies the user's flag to the detected mode.
// userFlag should be one of "auto", "tui", "linear", "ci", or empty.
func ResolveMode(autoDetected OutputMode, userFlag string) OutputMode {
	switch userFlag {
	case "tui":
		return ModeTUI
	case "linear", "ci":
		return ModeLinear
	default:
		return autoDetected
	}
}

// ValidFlag reports whether userFlag is an accepted --output-mode value.
func ValidFlag(userFlag string) bool {
	switch userFlag {
	case "", "auto", "tui", "linear", "ci":
		return true
	default:
		return false
	}
}
