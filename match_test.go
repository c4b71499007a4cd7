package docopt

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func newReadyParser(t *testing.T, src string) *Parser {
	t.Helper()
	p := New(src)
	diags := p.Preflight()
	if diags.hasStructural() {
		t.Fatalf("unexpected structural diagnostics for %q: %v", src, diags)
	}
	return p
}

// Scenario 1: a single required short option.
func TestMatchScenarioSimpleShortOption(t *testing.T) {
	p := newReadyParser(t, "Usage: prog -a\nOptions:\n  -a  do a thing\n")
	bound, unused, diags := p.Parse([]string{"prog", "-a"}, 0)
	if len(diags) != 0 {
		t.Fatalf("unexpected diagnostics: %v", diags)
	}
	if len(unused) != 0 {
		t.Fatalf("unused = %v, want none", unused)
	}
	arg, ok := bound["-a"]
	if !ok {
		t.Fatalf("-a should be bound")
	}
	if diff := cmp.Diff(&Argument{Count: 1}, arg); diff != "" {
		t.Fatalf("-a binding mismatch (-want +got):\n%s", diff)
	}
}

// Scenario 2: unambiguous long-prefix resolution.
func TestMatchScenarioPrefixResolution(t *testing.T) {
	p := newReadyParser(t, "Usage: prog [options]\nOptions:\n  -v, --verbose\n")

	bound, unused, diags := p.Parse([]string{"prog", "--verb"}, ResolveUnambiguousPrefixes)
	if len(diags) != 0 {
		t.Fatalf("unexpected diagnostics: %v", diags)
	}
	if len(unused) != 0 {
		t.Fatalf("unused = %v, want none", unused)
	}
	if bound["--verbose"] == nil || bound["--verbose"].Count != 1 {
		t.Fatalf("--verbose binding = %#v", bound["--verbose"])
	}

	_, unused2, diags2 := p.Parse([]string{"prog", "--verb"}, 0)
	if len(unused2) != 1 || unused2[0] != 1 {
		t.Fatalf("unused = %v, want [1] without the flag", unused2)
	}
	found := false
	for _, d := range diags2 {
		if d.Code == ErrUnknownOption {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected ErrUnknownOption, got %v", diags2)
	}
}

// Scenario 3: unseparated short option value.
func TestMatchScenarioUnseparatedShortValue(t *testing.T) {
	p := newReadyParser(t, "Usage: prog -D<value>\nOptions:\n  -D<value>  define a macro\n")
	bound, unused, _ := p.Parse([]string{"prog", "-DNDEBUG"}, 0)
	if len(unused) != 0 {
		t.Fatalf("unused = %v, want none", unused)
	}
	arg := bound["-D"]
	if arg == nil || len(arg.Values) != 1 || arg.Values[0] != "NDEBUG" {
		t.Fatalf("-D binding = %#v", arg)
	}
}

// Scenario 4: ellipsis over an alternation, counting repeated fixed clauses.
func TestMatchScenarioEllipsisAlternation(t *testing.T) {
	p := newReadyParser(t, "Usage: prog (a | b)...\n")
	bound, unused, _ := p.Parse([]string{"prog", "a", "b", "a"}, 0)
	if len(unused) != 0 {
		t.Fatalf("unused = %v, want none", unused)
	}
	if bound["a"] == nil {
		t.Fatalf("a should be bound")
	}
	if diff := cmp.Diff(&Argument{Count: 2}, bound["a"]); diff != "" {
		t.Fatalf("a binding mismatch (-want +got):\n%s", diff)
	}
	if bound["b"] == nil {
		t.Fatalf("b should be bound")
	}
	if diff := cmp.Diff(&Argument{Count: 1}, bound["b"]); diff != "" {
		t.Fatalf("b binding mismatch (-want +got):\n%s", diff)
	}
}

// Scenario 5: a short option written twice in Usage: ("[-vv]") only matches
// up to its written repetition count.
func TestMatchScenarioBoundedShortRepetition(t *testing.T) {
	p := newReadyParser(t, "Usage: prog [-vv]\nOptions:\n  -v  be verbose\n")

	bound, unused, _ := p.Parse([]string{"prog", "-vv"}, 0)
	if len(unused) != 0 {
		t.Fatalf("unused = %v, want none", unused)
	}
	if bound["-v"] == nil || bound["-v"].Count != 2 {
		t.Fatalf("-v binding = %#v, want count=2", bound["-v"])
	}

	_, unused2, _ := p.Parse([]string{"prog", "-vvv"}, 0)
	if len(unused2) != 1 {
		t.Fatalf("unused = %v, want exactly one leftover -v", unused2)
	}
}

// Scenario 6: default-value filling under generate_empty_args.
func TestMatchScenarioDefaultValueFilling(t *testing.T) {
	p := newReadyParser(t, "Usage: prog\nOptions:\n  -m, --message <text>  the message [default: hi]\n")
	bound, _, _ := p.Parse([]string{"prog"}, GenerateEmptyArgs)
	arg := bound["--message"]
	if arg == nil || len(arg.Values) != 1 || arg.Values[0] != "hi" {
		t.Fatalf("--message binding = %#v, want default value hi", arg)
	}
}

func TestMatchAlternationBranches(t *testing.T) {
	p := newReadyParser(t, "Usage: prog (start | stop)\n")
	bound, unused, _ := p.Parse([]string{"prog", "stop"}, 0)
	if len(unused) != 0 {
		t.Fatalf("unused = %v, want none", unused)
	}
	if bound["stop"] == nil || bound["stop"].Count != 1 {
		t.Fatalf("stop binding = %#v", bound["stop"])
	}
	if _, ok := bound["start"]; ok {
		t.Fatalf("start should not be bound when stop was given")
	}
}

func TestMatchOptionalBracketPassesThroughWhenAbsent(t *testing.T) {
	p := newReadyParser(t, "Usage: prog [-a]\nOptions:\n  -a  do a thing\n")
	bound, unused, _ := p.Parse([]string{"prog"}, 0)
	if len(unused) != 0 {
		t.Fatalf("unused = %v, want none", unused)
	}
	if _, ok := bound["-a"]; ok {
		t.Fatalf("-a should not be bound when it was never given")
	}
}

func TestValidateMarksUnusedArgvAsInvalid(t *testing.T) {
	p := newReadyParser(t, "Usage: prog -a\nOptions:\n  -a  do a thing\n")
	statuses := p.Validate([]string{"prog", "-a", "extra"}, 0)
	if len(statuses) != 3 {
		t.Fatalf("expected 3 statuses, got %d", len(statuses))
	}
	if statuses[0] != StatusValid || statuses[1] != StatusValid {
		t.Fatalf("prog and -a should be valid, got %v", statuses[:2])
	}
	if statuses[2] != StatusInvalid {
		t.Fatalf("trailing extra positional should be invalid, got %v", statuses[2])
	}
}

func TestSuggestImmediateValueSuggestion(t *testing.T) {
	p := newReadyParser(t, "Usage: prog --name=<n>\nOptions:\n  --name=<n>  a name\n")
	suggestions := p.Suggest([]string{"prog", "--name"}, 0)
	if len(suggestions) != 1 || suggestions[0] != "<n>" {
		t.Fatalf("suggestions = %v, want [<n>]", suggestions)
	}
}

func TestSuggestNextArgumentFromBrackets(t *testing.T) {
	p := newReadyParser(t, "Usage: prog [-a] [-b]\nOptions:\n  -a  flag a\n  -b  flag b\n")
	suggestions := p.Suggest([]string{"prog"}, 0)
	if diff := cmp.Diff([]string{"-a", "-b"}, suggestions); diff != "" {
		t.Fatalf("suggestions mismatch (-want +got):\n%s", diff)
	}
}
