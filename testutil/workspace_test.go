package testutil_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/kbukum/execkit/process"
	"github.com/kbukum/execkit/testutil"
)

func TestScriptRunsThroughPipeline(t *testing.T) {
	testutil.RequireCommands(t, "sh", "tr")
	ws := testutil.NewWorkspace(t)
	shout := ws.Script("shout", "tr a-z A-Z")

	out, err := process.New(shout).InputString("quiet").Output()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out != "QUIET" {
		t.Fatalf("expected 'QUIET', got %q", out)
	}
}

func TestScriptShebangAndNewline(t *testing.T) {
	ws := testutil.NewWorkspace(t)
	path := ws.Script("check", "exit 0")

	b, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read failed: %v", err)
	}
	content := string(b)
	if !strings.HasPrefix(content, "#!/bin/sh\n") {
		t.Fatalf("expected shebang, got %q", content)
	}
	if !strings.HasSuffix(content, "\n") {
		t.Fatalf("expected trailing newline, got %q", content)
	}
	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("stat failed: %v", err)
	}
	if info.Mode().Perm()&0o111 == 0 {
		t.Fatalf("expected executable mode, got %v", info.Mode())
	}
}

func TestFile(t *testing.T) {
	ws := testutil.NewWorkspace(t)
	path := ws.File("data.txt", "payload")

	b, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read failed: %v", err)
	}
	if string(b) != "payload" {
		t.Fatalf("expected 'payload', got %q", b)
	}
}

func TestPathStaysInsideWorkspace(t *testing.T) {
	ws := testutil.NewWorkspace(t)
	p := ws.Path("nested.txt")
	if filepath.Dir(p) != ws.Dir() {
		t.Fatalf("expected path under %q, got %q", ws.Dir(), p)
	}
}

func TestScriptPipelineFailurePropagates(t *testing.T) {
	testutil.RequireCommands(t, "sh")
	ws := testutil.NewWorkspace(t)
	failing := ws.Script("failing", "exit 12")

	err := process.New(failing).Run()
	if err == nil {
		t.Fatal("expected error from failing script")
	}
	if !strings.Contains(err.Error(), "12") {
		t.Fatalf("expected exit status in error, got %v", err)
	}
}
