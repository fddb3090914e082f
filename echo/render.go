package echo

import (
	"fmt"
	"io"
	"strings"
)

// Connector symbols displayed between pipeline stages. Each matches the
// stream the downstream stage reads from the upstream stage.
const (
	ConnectorStdout = "|"
	ConnectorStderr = "|&"
	ConnectorBoth   = "|&&"
)

const (
	ansiReset               = "\033[0m"
	ansiBrightBlack         = "\033[90m"
	ansiMagenta             = "\033[35m"
	ansiBrightBlue          = "\033[94m"
	ansiBoldCyan            = "\033[1;36m"
	ansiBoldUnderline       = "\033[1;4m"
	ansiUnderlineBrightBlue = "\033[4;94m"
)

// EnvVar is a single KEY=VALUE pair shown in a stage's env: annotation.
type EnvVar struct {
	Key   string
	Value string
}

// Stage describes one command of a pipeline for display purposes.
type Stage struct {
	// Connector precedes the stage for stages after the first. Use the
	// Connector* constants.
	Connector string
	// Dir is the stage's working directory, empty when inherited.
	Dir string
	// Env holds explicitly set environment variables, in order.
	Env []EnvVar
	// Program is the executable name or path.
	Program string
	// Args are the program arguments.
	Args []string
}

// Pipeline writes a single echo line describing the stages to w.
// The line leads with a space, then the dim prefix, then each stage
// separated by its connector symbol. Nothing is written when echoing
// is suppressed via NO_ECHO.
func Pipeline(w io.Writer, style Style, stages []Stage) {
	if !Enabled() {
		return
	}

	parts := []string{" " + paint(style, ansiBrightBlack, style.Prefix)}

	for i, st := range stages {
		if i > 0 {
			parts = append(parts, paint(style, ansiMagenta, st.Connector))
		}

		if st.Dir != "" {
			parts = append(parts, paint(style, ansiBrightBlue, "cd:"))
			parts = append(parts, paint(style, ansiUnderlineBrightBlue, Quote(st.Dir)))
		}

		for _, ev := range st.Env {
			parts = append(parts, paint(style, ansiBrightBlue, "env:"))
			parts = append(parts, paint(style, ansiUnderlineBrightBlue, Quote(ev.Key)+"="+Quote(ev.Value)))
		}

		parts = append(parts, paint(style, ansiBoldCyan, Quote(st.Program)))

		for _, arg := range st.Args {
			parts = append(parts, paint(style, ansiBoldUnderline, Quote(arg)))
		}
	}

	fmt.Fprintln(w, strings.Join(parts, " "))
}

// Operation writes a single echo line describing a non-command operation,
// such as a file system call. The line leads with two spaces so operations
// indent under the pipeline lines. Nothing is written when echoing is
// suppressed via NO_ECHO.
func Operation(w io.Writer, style Style, op, details string) {
	if !Enabled() {
		return
	}

	fmt.Fprintln(w, strings.Join([]string{
		"  " + paint(style, ansiBrightBlack, style.Prefix),
		paint(style, ansiBoldCyan, op),
		paint(style, ansiBoldUnderline, details),
	}, " "))
}

// paint wraps s in the given ANSI code when styling is enabled.
func paint(style Style, code, s string) string {
	if !style.Color || s == "" {
		return s
	}
	return code + s + ansiReset
}
