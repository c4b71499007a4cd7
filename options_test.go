package docopt

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

func TestParseOptionsSectionBasic(t *testing.T) {
	src := "  -a  do a thing\n"
	doc := &Doc{src: src}
	opts, diags := parseOptionsSection(doc, rangeFrom(0, len(src)))
	if len(diags) != 0 {
		t.Fatalf("unexpected diagnostics: %v", diags)
	}
	if len(opts) != 1 {
		t.Fatalf("expected 1 option, got %d: %#v", len(opts), opts)
	}
	o := opts[0]
	if got := o.NameRange.Text(src); got != "a" {
		t.Fatalf("name = %q, want %q", got, "a")
	}
	if o.Type != ShortOption {
		t.Fatalf("type = %v, want ShortOption", o.Type)
	}
	if got := o.DescriptionRange.Text(src); got != "do a thing" {
		t.Fatalf("description = %q, want %q", got, "do a thing")
	}
}

func TestParseOptionsSectionAliasAndDefault(t *testing.T) {
	src := "  -m, --message <text>  the message [default: hi]\n"
	doc := &Doc{src: src}
	opts, diags := parseOptionsSection(doc, rangeFrom(0, len(src)))
	if len(diags) != 0 {
		t.Fatalf("unexpected diagnostics: %v", diags)
	}
	if len(opts) != 2 {
		t.Fatalf("expected 2 records (one per alias), got %d: %#v", len(opts), opts)
	}
	short, long := opts[0], opts[1]
	if got := short.NameRange.Text(src); got != "m" {
		t.Fatalf("short name = %q", got)
	}
	if got := long.NameRange.Text(src); got != "message" {
		t.Fatalf("long name = %q", got)
	}
	if !short.HasValue() || !long.HasValue() {
		t.Fatalf("both aliases should inherit the <text> value range")
	}

	ignoreRanges := cmpopts.IgnoreFields(Option{}, "NameRange", "ValueRange", "DescriptionRange", "DefaultValueRange", "CorrespondingLongNameRange")
	wantShort := &Option{LeadingDashCount: 1, Separator: SepNone, Type: ShortOption, CorrespondingLongDashCount: 2}
	if diff := cmp.Diff(wantShort, short, ignoreRanges); diff != "" {
		t.Fatalf("short record mismatch (-want +got):\n%s", diff)
	}
	wantLong := &Option{LeadingDashCount: 2, Separator: SepSpace, Type: DoubleLongOption, CorrespondingLongDashCount: 2}
	if diff := cmp.Diff(wantLong, long, ignoreRanges); diff != "" {
		t.Fatalf("long record mismatch (-want +got):\n%s", diff)
	}

	doc2 := &Doc{src: src}
	if got := short.KeyRangeText(doc2); got != "--message" {
		t.Fatalf("short alias key name = %q, want %q", got, "--message")
	}
	if got := short.DefaultValueRange.Text(src); got != "hi" {
		t.Fatalf("default value = %q, want %q", got, "hi")
	}
}

func TestParseOptionsSectionMissingCloseBracket(t *testing.T) {
	src := "  -a  a thing [default: oops\n"
	doc := &Doc{src: src}
	_, diags := parseOptionsSection(doc, rangeFrom(0, len(src)))
	if len(diags) != 1 || diags[0].Code != ErrMissingCloseBracketInDefault {
		t.Fatalf("expected ErrMissingCloseBracketInDefault, got %v", diags)
	}
}

func TestParseOptionsSectionExcessiveDashes(t *testing.T) {
	src := "  ---a  a thing\n"
	doc := &Doc{src: src}
	_, diags := parseOptionsSection(doc, rangeFrom(0, len(src)))
	found := false
	for _, d := range diags {
		if d.Code == ErrExcessiveDashes {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected ErrExcessiveDashes, got %v", diags)
	}
}

func TestBuildCatalogShortcutExcision(t *testing.T) {
	src := "--verbose"
	doc := &Doc{src: src}
	usageOpt := &Option{NameRange: rangeFrom(2, 9), LeadingDashCount: 2, Type: DoubleLongOption}
	shortcutOpt := &Option{NameRange: rangeFrom(2, 9), LeadingDashCount: 2, Type: DoubleLongOption}
	cat, _ := BuildCatalog(doc, [][]*Option{{shortcutOpt}}, []*Option{usageOpt})
	if len(cat.ShortcutOptions) != 0 {
		t.Fatalf("expected shortcut option to be excised, got %#v", cat.ShortcutOptions)
	}
	if len(cat.AllOptions) != 1 {
		t.Fatalf("expected exactly 1 option after dedup, got %d", len(cat.AllOptions))
	}
}
