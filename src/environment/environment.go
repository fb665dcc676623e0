package environment

import (
	"os"

	"github.com/mattn/go-isatty"
)

var interactiveOverride *bool

// ForceSetIsInteractive overrides terminal detection, e.g. from a command
// line flag.
func ForceSetIsInteractive(value bool) {
	interactiveOverride = &value
}

// IsInteractive returns true when a user is typing into a terminal and
// reading the output, false when input or output is redirected.
func IsInteractive() bool {
	if interactiveOverride != nil {
		return *interactiveOverride
	}
	return isTerminal(os.Stdin) && isTerminal(os.Stdout)
}

func isTerminal(f *os.File) bool {
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
