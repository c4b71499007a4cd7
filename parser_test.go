package docopt

import "testing"

func TestPreflightMissingUsageSection(t *testing.T) {
	p := New("Options:\n  -a  do a thing\n")
	diags := p.Preflight()
	if len(diags) != 1 || diags[0].Code != ErrMissingUsageSection {
		t.Fatalf("expected ErrMissingUsageSection, got %v", diags)
	}
	if p.Ready() {
		t.Fatalf("parser should not be ready after a missing Usage: section")
	}
}

func TestPreflightExcessiveUsageSections(t *testing.T) {
	p := New("Usage: prog -a\n\nUsage: prog -b\n")
	diags := p.Preflight()
	found := false
	for _, d := range diags {
		if d.Code == ErrExcessiveUsageSections {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected ErrExcessiveUsageSections, got %v", diags)
	}
	if p.Ready() {
		t.Fatalf("parser should not be ready with two Usage: sections")
	}
}

func TestConditionsFor(t *testing.T) {
	p := newReadyParser(t, "Usage: prog <mode>\n\nConditions:\n  <mode>  one of:\n    fast\n    slow\n")
	text, ok := p.ConditionsFor("<mode>")
	if !ok {
		t.Fatalf("expected <mode> conditions to be found")
	}
	want := "one of:\n    fast\n    slow"
	if text != want {
		t.Fatalf("conditions = %q, want %q", text, want)
	}
	if _, ok := p.ConditionsFor("<missing>"); ok {
		t.Fatalf("expected <missing> to have no conditions")
	}
}

func TestDescriptionFor(t *testing.T) {
	p := newReadyParser(t, "Usage: prog [options]\nOptions:\n  -v, --verbose  talk a lot\n")
	desc, ok := p.DescriptionFor("--verbose")
	if !ok || desc != "talk a lot" {
		t.Fatalf("DescriptionFor(--verbose) = %q, %v", desc, ok)
	}
	desc, ok = p.DescriptionFor("-v")
	if !ok || desc != "talk a lot" {
		t.Fatalf("DescriptionFor(-v) = %q, %v", desc, ok)
	}
	if _, ok := p.DescriptionFor("--missing"); ok {
		t.Fatalf("expected --missing to have no description")
	}
}

func TestGetCommandNames(t *testing.T) {
	p := newReadyParser(t, "Usage: prog add <item>\n  prog remove <item>\n  prog add --force\n")
	names := p.GetCommandNames()
	if len(names) != 1 || names[0] != "prog" {
		t.Fatalf("GetCommandNames = %#v, want [prog]", names)
	}
}

func TestGetVariables(t *testing.T) {
	p := newReadyParser(t, "Usage: prog <src> <dst>\nOptions:\n  --speed=<kn>  cruising speed\n")
	vars := p.GetVariables()
	want := []string{"<dst>", "<kn>", "<src>"}
	if len(vars) != len(want) {
		t.Fatalf("GetVariables = %#v, want %#v", vars, want)
	}
	for i, v := range want {
		if vars[i] != v {
			t.Fatalf("GetVariables[%d] = %q, want %q (full: %#v)", i, vars[i], v, vars)
		}
	}
}

func TestParseWithholdsDefaultsWithoutGenerateEmptyArgs(t *testing.T) {
	p := newReadyParser(t, "Usage: prog\nOptions:\n  -m, --message <text>  the message [default: hi]\n")
	bound, _, _ := p.Parse([]string{"prog"}, 0)
	if _, ok := bound["--message"]; ok {
		t.Fatalf("--message should not appear in the map without generate_empty_args, got %#v", bound["--message"])
	}
}

func TestParseGenerateEmptyArgsSynthesizesFixedAndVariables(t *testing.T) {
	p := newReadyParser(t, "Usage: prog start <name>\nOptions:\n  -v  be verbose\n")
	bound, _, _ := p.Parse([]string{"prog", "start", "widget"}, GenerateEmptyArgs)
	if bound["-v"] == nil {
		t.Fatalf("expected -v to be synthesized with a zero Argument")
	}
	if bound["-v"].Count != 0 {
		t.Fatalf("-v should not have been matched, got %#v", bound["-v"])
	}
	if bound["start"] == nil || bound["start"].Count != 1 {
		t.Fatalf("start binding = %#v", bound["start"])
	}
	if bound["<name>"] == nil || len(bound["<name>"].Values) != 1 || bound["<name>"].Values[0] != "widget" {
		t.Fatalf("<name> binding = %#v", bound["<name>"])
	}
}
