package echo_test

import (
	"testing"

	"github.com/kbukum/execkit/echo"
)

func TestQuoteSimple(t *testing.T) {
	if got := echo.Quote("simple"); got != "simple" {
		t.Errorf("expected %q, got %q", "simple", got)
	}
}

func TestQuoteWithSpaces(t *testing.T) {
	if got := echo.Quote("hello world"); got != "'hello world'" {
		t.Errorf("expected %q, got %q", "'hello world'", got)
	}
}

func TestQuoteEmpty(t *testing.T) {
	if got := echo.Quote(""); got != `""` {
		t.Errorf("expected %q, got %q", `""`, got)
	}
}

func TestQuoteWithSingleQuotes(t *testing.T) {
	if got := echo.Quote("it's a test"); got != `"it's a test"` {
		t.Errorf("expected %q, got %q", `"it's a test"`, got)
	}
}

func TestQuoteWithDoubleQuotes(t *testing.T) {
	if got := echo.Quote(`say "hello"`); got != `'say "hello"'` {
		t.Errorf("expected %q, got %q", `'say "hello"'`, got)
	}
}

func TestQuoteWithMixedQuotes(t *testing.T) {
	if got := echo.Quote(`it's a "test"`); got != `"it's a \"test\""` {
		t.Errorf("expected %q, got %q", `"it's a \"test\""`, got)
	}
}

func TestQuoteShellCharacters(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"file*.txt", "'file*.txt'"},
		{"$HOME/test", "'$HOME/test'"},
		{"command|grep", "'command|grep'"},
		{"arg&background", "'arg&background'"},
		{"path;command", "'path;command'"},
		{"(group)", "'(group)'"},
		{"redirect>file", "'redirect>file'"},
		{"[pattern]", "'[pattern]'"},
		{"{expansion}", "'{expansion}'"},
		{"back`tick", "'back`tick'"},
		{"hash#comment", "'hash#comment'"},
		{"exclaim!", "'exclaim!'"},
		{"tilde~path", "'tilde~path'"},
		{"key=value", "'key=value'"},
	}

	for _, tc := range tests {
		t.Run(tc.input, func(t *testing.T) {
			if got := echo.Quote(tc.input); got != tc.expected {
				t.Errorf("Quote(%q) = %q, expected %q", tc.input, got, tc.expected)
			}
		})
	}
}

func TestQuoteControlCharacters(t *testing.T) {
	if got := echo.Quote("line1\nline2"); got != `'line1\nline2'` {
		t.Errorf("expected %q, got %q", `'line1\nline2'`, got)
	}
	if got := echo.Quote("tab\there"); got != `'tab\there'` {
		t.Errorf("expected %q, got %q", `'tab\there'`, got)
	}
}

func TestQuoteBackslashWithoutSingleQuote(t *testing.T) {
	// Backslashes stay literal unless double quoting kicks in.
	if got := echo.Quote(`path\with"quotes`); got != `'path\with"quotes'` {
		t.Errorf("expected %q, got %q", `'path\with"quotes'`, got)
	}
}

func TestQuoteDollarAndBacktick(t *testing.T) {
	if got := echo.Quote("$VAR and `command`"); got != "'$VAR and `command`'" {
		t.Errorf("expected %q, got %q", "'$VAR and `command`'", got)
	}
}

func TestQuoteSingleQuoteWithShellChars(t *testing.T) {
	if got := echo.Quote("can't use $HOME or `pwd`"); got != "\"can't use $HOME or `pwd`\"" {
		t.Errorf("expected %q, got %q", "\"can't use $HOME or `pwd`\"", got)
	}
}

func TestQuoteMixedControlChars(t *testing.T) {
	if got := echo.Quote("line1\nhas\ttabs\rand\x00null"); got != `'line1\nhas\ttabs\rand\0null'` {
		t.Errorf("expected %q, got %q", `'line1\nhas\ttabs\rand\0null'`, got)
	}
}

func TestQuoteSingleQuotesWithControlChars(t *testing.T) {
	if got := echo.Quote("can't\nuse\ttabs"); got != `"can't\nuse\ttabs"` {
		t.Errorf("expected %q, got %q", `"can't\nuse\ttabs"`, got)
	}
}

func TestQuoteHexEscapes(t *testing.T) {
	if got := echo.Quote("bell\x07char"); got != `'bell\x07char'` {
		t.Errorf("expected %q, got %q", `'bell\x07char'`, got)
	}
	if got := echo.Quote("del\x7fchar"); got != `'del\x7fchar'` {
		t.Errorf("expected %q, got %q", `'del\x7fchar'`, got)
	}
	if got := echo.Quote("windows\r\nline"); got != `'windows\r\nline'` {
		t.Errorf("expected %q, got %q", `'windows\r\nline'`, got)
	}
}

func TestQuoteEverythingMixed(t *testing.T) {
	got := echo.Quote("can't handle\tthis\ncomplex 'string' with\x00null")
	expected := `"can't handle\tthis\ncomplex 'string' with\0null"`
	if got != expected {
		t.Errorf("expected %q, got %q", expected, got)
	}
}
