// Package detector picks the output mode from the environment.
package detector

import (
	"os"

	"go.trai.ch/asyncwalk/internal/core/domain"
	"golang.org/x/term"
)

// DetectEnvironment returns the mode auto resolves to: the interactive view
// when stdout is a terminal outside CI, linear output otherwise.
func DetectEnvironment() domain.OutputMode {
	return detect(term.IsTerminal(int(os.Stdout.Fd())), os.Getenv("CI"))
}

func detect(isTTY bool, ci string) domain.OutputMode {
	isCI := ci == "true" || ci == "1"
	if !isTTY || isCI {
		return domain.OutputLinear
	}
	return domain.OutputTUI
}

// ResolveMode applies the requested mode on top of the detected one.
// Only auto, and the empty string, defer to detection.
func ResolveMode(detected, requested domain.OutputMode) domain.OutputMode {
	switch requested {
	case domain.OutputTUI, domain.OutputLinear, domain.OutputJSON:
		return requested
	default:
		return detected
	}
}
