package testutil

import (
	"io"
	"os"
	"os/exec"
	"testing"
)

// RequireCommands skips the test unless every named program can be found on
// PATH. Use it at the top of tests that depend on optional external tools.
func RequireCommands(t *testing.T, names ...string) {
	t.Helper()
	for _, name := range names {
		if _, err := exec.LookPath(name); err != nil {
			t.Skipf("command %q not available", name)
		}
	}
}

// CaptureStderr swaps the process stderr for a pipe while fn runs and
// returns everything written to it, command-echo lines included.
func CaptureStderr(t *testing.T, fn func()) string {
	t.Helper()
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatalf("pipe: %v", err)
	}
	old := os.Stderr
	os.Stderr = w
	defer func() { os.Stderr = old }()

	done := make(chan string, 1)
	go func() {
		b, _ := io.ReadAll(r)
		done <- string(b)
	}()
	fn()
	w.Close()
	return <-done
}

// WithEcho clears NO_ECHO for the duration of the test so echo assertions
// do not depend on the outer environment; t.Setenv registers the restore.
func WithEcho(t *testing.T) {
	t.Helper()
	t.Setenv("NO_ECHO", "")
	os.Unsetenv("NO_ECHO")
}

// WithoutEcho sets NO_ECHO for the duration of the test.
func WithoutEcho(t *testing.T) {
	t.Helper()
	t.Setenv("NO_ECHO", "1")
}
