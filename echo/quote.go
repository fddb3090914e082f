package echo

import (
	"fmt"
	"strings"
	"unicode"
)

// Quote renders an argument for display in an echo line. The result is
// meant for human eyes, not for feeding back to a shell: quoting choices
// favor readability while keeping control characters and shell
// metacharacters visible.
//
// Rules, in order:
//   - empty string renders as ""
//   - strings containing a single quote are double-quoted, with backslash
//     and double-quote escaped
//   - strings containing whitespace, quotes, control characters, or shell
//     metacharacters are single-quoted
//   - anything else passes through unchanged
//
// Control characters are always rendered as escapes (\t, \n, \r, \0, or
// \xNN) so echoed lines stay on one line.
func Quote(arg string) string {
	if arg == "" {
		return `""`
	}

	if strings.ContainsRune(arg, '\'') {
		escaped := strings.ReplaceAll(arg, `\`, `\\`)
		escaped = strings.ReplaceAll(escaped, `"`, `\"`)
		return `"` + escapeControl(escaped) + `"`
	}

	if needsQuoting(arg) {
		return "'" + escapeControl(arg) + "'"
	}

	return arg
}

// needsQuoting reports whether the argument contains characters that
// would be ambiguous or invisible when displayed unquoted.
func needsQuoting(s string) bool {
	for _, r := range s {
		if r <= 0x1F || r == 0x7F {
			return true
		}
		switch r {
		case ' ', '"', '\'',
			'*', '?', '[', ']', '{', '}', '~', '$', '`',
			'|', '&', ';', '(', ')', '<', '>', '#', '!', '=':
			return true
		}
	}
	return false
}

// escapeControl replaces control characters with visible escapes.
func escapeControl(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		switch r {
		case '\t':
			b.WriteString(`\t`)
		case '\n':
			b.WriteString(`\n`)
		case '\r':
			b.WriteString(`\r`)
		case 0:
			b.WriteString(`\0`)
		default:
			if unicode.IsControl(r) {
				fmt.Fprintf(&b, `\x%02x`, r)
			} else {
				b.WriteRune(r)
			}
		}
	}
	return b.String()
}
