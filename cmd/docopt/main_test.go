package main

import (
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/usagetree/docopt"
)

func writeDocFile(t *testing.T, contents string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "doc.txt")
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	return path
}

// captureStdout runs fn with os.Stdout redirected to a pipe and returns
// everything it wrote, since the subcommands print via fmt.Println/Printf
// straight to os.Stdout rather than through a cobra writer.
func captureStdout(t *testing.T, fn func()) string {
	t.Helper()
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatalf("Pipe: %v", err)
	}
	orig := os.Stdout
	os.Stdout = w
	defer func() { os.Stdout = orig }()

	fn()

	w.Close()
	out, err := io.ReadAll(r)
	if err != nil {
		t.Fatalf("ReadAll: %v", err)
	}
	return string(out)
}

func runCmd(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var err error
	out := captureStdout(t, func() {
		root := newRootCmd()
		root.SetArgs(args)
		err = root.Execute()
	})
	return out, err
}

func TestFlagsFromPflagMapsEveryFlag(t *testing.T) {
	cmd := newRunCmd()
	for _, name := range []string{"resolve-prefixes", "strict-separators", "empty-args", "allow-incomplete"} {
		if err := cmd.Flags().Set(name, "true"); err != nil {
			t.Fatalf("Set(%s): %v", name, err)
		}
	}
	got := flagsFromPflag(cmd.Flags())
	want := docopt.ResolveUnambiguousPrefixes | docopt.ShortOptionsStrictSeparators | docopt.GenerateEmptyArgs | docopt.MatchAllowIncomplete
	if got != want {
		t.Fatalf("flagsFromPflag = %v, want %v", got, want)
	}
}

func TestFlagsFromPflagDefaultsToZero(t *testing.T) {
	cmd := newRunCmd()
	if got := flagsFromPflag(cmd.Flags()); got != 0 {
		t.Fatalf("flagsFromPflag default = %v, want 0", got)
	}
}

func TestRunCommandPrintsBoundArguments(t *testing.T) {
	doc := writeDocFile(t, "Usage: prog start <name>\nOptions:\n  -v  be verbose\n")
	out, err := runCmd(t, "run", doc, "prog", "start", "widget")
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if !strings.Contains(out, "<name>") || !strings.Contains(out, "widget") {
		t.Fatalf("run output missing bound <name>: %q", out)
	}
}

func TestRunCommandRejectsDocWithoutUsage(t *testing.T) {
	doc := writeDocFile(t, "Options:\n  -a  do a thing\n")
	if _, err := runCmd(t, "run", doc, "-a"); err == nil {
		t.Fatalf("expected an error for a doc with no Usage: section")
	}
}

func TestValidateCommandReportsUnusedSlot(t *testing.T) {
	doc := writeDocFile(t, "Usage: prog <name>\n")
	out, err := runCmd(t, "validate", doc, "prog", "widget", "extra")
	if err != nil {
		t.Fatalf("validate: %v", err)
	}
	if !strings.Contains(out, "invalid") {
		t.Fatalf("expected the extra slot to be reported invalid, got %q", out)
	}
}

func TestCommandsCommandListsProgramName(t *testing.T) {
	doc := writeDocFile(t, "Usage: prog add <item>\n  prog remove <item>\n")
	out, err := runCmd(t, "commands", doc)
	if err != nil {
		t.Fatalf("commands: %v", err)
	}
	if strings.TrimSpace(out) != "prog" {
		t.Fatalf("commands output = %q, want %q", out, "prog")
	}
}

func TestVariablesCommandListsSortedVariables(t *testing.T) {
	doc := writeDocFile(t, "Usage: prog <src> <dst>\nOptions:\n  --speed=<kn>  cruising speed\n")
	out, err := runCmd(t, "variables", doc)
	if err != nil {
		t.Fatalf("variables: %v", err)
	}
	got := strings.Fields(out)
	want := []string{"<dst>", "<kn>", "<src>"}
	if len(got) != len(want) {
		t.Fatalf("variables output = %v, want %v", got, want)
	}
	for i, v := range want {
		if got[i] != v {
			t.Fatalf("variables[%d] = %q, want %q (full: %v)", i, got[i], v, got)
		}
	}
}

func TestDescribeCommandPrintsDescription(t *testing.T) {
	doc := writeDocFile(t, "Usage: prog [options]\nOptions:\n  -v, --verbose  talk a lot\n")
	out, err := runCmd(t, "describe", doc, "--verbose")
	if err != nil {
		t.Fatalf("describe: %v", err)
	}
	if strings.TrimSpace(out) != "talk a lot" {
		t.Fatalf("describe output = %q, want %q", out, "talk a lot")
	}
}

func TestDescribeCommandRejectsUnknownOption(t *testing.T) {
	doc := writeDocFile(t, "Usage: prog [options]\nOptions:\n  -v, --verbose  talk a lot\n")
	if _, err := runCmd(t, "describe", doc, "--missing"); err == nil {
		t.Fatalf("expected an error for an unknown option")
	}
}
