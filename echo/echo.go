package echo

import (
	"os"

	"golang.org/x/term"
)

// EnvNoEcho is the environment variable that suppresses echoing when set
// to any value, including the empty string.
const EnvNoEcho = "NO_ECHO"

// pkgName is the prefix tag shown on every echoed line.
const pkgName = "execkit"

// Enabled reports whether echoing is currently on. The environment is
// consulted on every call so toggling NO_ECHO takes effect immediately.
func Enabled() bool {
	_, suppressed := os.LookupEnv(EnvNoEcho)
	return !suppressed
}

// Style controls how echoed lines are rendered.
type Style struct {
	// Color enables ANSI styling.
	Color bool
	// Prefix is the dim tag at the start of the line, e.g. "execkit:cmd".
	Prefix string
}

// CommandStyle returns the style for command pipeline echo lines.
func CommandStyle() Style {
	return Style{
		Color:  colorEnabled(),
		Prefix: pkgName + ":cmd",
	}
}

// FSStyle returns the style for file system operation echo lines.
func FSStyle() Style {
	return Style{
		Color:  colorEnabled(),
		Prefix: pkgName + ":fs",
	}
}

// colorEnabled reports whether stderr is a terminal that should receive
// ANSI colors. NO_COLOR disables styling regardless of the terminal.
func colorEnabled() bool {
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	return term.IsTerminal(int(os.Stderr.Fd()))
}
