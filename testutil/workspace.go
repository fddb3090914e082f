package testutil

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// Workspace is a temporary directory for materializing test fixtures:
// executable scripts and data files used by pipeline tests. The directory
// is removed automatically when the test finishes.
type Workspace struct {
	t   *testing.T
	dir string
}

// NewWorkspace creates a workspace rooted in a fresh temporary directory.
func NewWorkspace(t *testing.T) *Workspace {
	t.Helper()
	return &Workspace{t: t, dir: t.TempDir()}
}

// Dir returns the workspace root.
func (w *Workspace) Dir() string {
	return w.dir
}

// Path returns the absolute path for name inside the workspace.
func (w *Workspace) Path(name string) string {
	return filepath.Join(w.dir, name)
}

// Script writes an executable /bin/sh script and returns its absolute path.
// The shebang line is added automatically; body is the script's commands.
func (w *Workspace) Script(name, body string) string {
	w.t.Helper()
	content := "#!/bin/sh\n" + body
	if !strings.HasSuffix(content, "\n") {
		content += "\n"
	}
	path := w.Path(name)
	if err := os.WriteFile(path, []byte(content), 0o755); err != nil {
		w.t.Fatalf("failed to write script %s: %v", name, err)
	}
	return path
}

// File writes a data file and returns its absolute path.
func (w *Workspace) File(name, content string) string {
	w.t.Helper()
	path := w.Path(name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		w.t.Fatalf("failed to write file %s: %v", name, err)
	}
	return path
}
