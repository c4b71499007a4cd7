// License: GPLv3 Copyright: 2022, Kovid Goyal, <kovid at kovidgoyal.net>

package docopt

import (
	"strings"

	"github.com/usagetree/docopt/internal/grammar"
	"golang.org/x/exp/slices"
)

// Parser owns one doc's immutable source text plus everything derived from
// it during Preflight: the option catalog, the usage-grammar tree, and the
// condition map, per spec.md §3's "Lifecycles" note.
type Parser struct {
	doc         *Doc
	catalog     *Catalog
	conditions  *ConditionMap
	usageHead   *grammar.Node
	diagnostics Diagnostics
	ready       bool
}

// New constructs a Parser over source. Call Preflight before any other
// method.
func New(source string) *Parser {
	return &Parser{doc: &Doc{src: source}}
}

// Preflight parses the doc's Usage:, Options:, and Conditions: sections,
// accumulating diagnostics. It fails (returned diagnostics contain a
// structural error, and later calls treat the parser as unusable) iff
// Usage: is missing or duplicated, per spec.md §7.
func (p *Parser) Preflight() Diagnostics {
	usageSections := findSections(p.doc.src, "usage", false)
	switch {
	case len(usageSections) == 0:
		p.diagnostics = append(p.diagnostics, newDocDiagnostic(ErrMissingUsageSection, Range{}, "no Usage: section found"))
		return p.diagnostics
	case len(usageSections) > 1:
		p.diagnostics = append(p.diagnostics, newDocDiagnostic(ErrExcessiveUsageSections, usageSections[1], "more than one Usage: section"))
		return p.diagnostics
	}

	var occurrences []grammar.UsageOptionOccurrence
	p.usageHead, occurrences = grammar.ParseUsageSection(p.doc.src, usageSections[0])

	var fromOptionsSections [][]*Option
	for _, sec := range findSections(p.doc.src, "options", false) {
		opts, diags := parseOptionsSection(p.doc, sec)
		fromOptionsSections = append(fromOptionsSections, opts)
		p.diagnostics = append(p.diagnostics, diags...)
	}

	fromUsage := make([]*Option, 0, len(occurrences))
	for _, occ := range occurrences {
		fromUsage = append(fromUsage, &Option{
			NameRange:        occ.NameRange,
			LeadingDashCount: occ.LeadingDashCount,
			ValueRange:       occ.ValueRange,
			Type:             classifyOption(occ.LeadingDashCount, occ.NameRange.Length),
		})
	}

	catalog, diags := BuildCatalog(p.doc, fromOptionsSections, fromUsage)
	p.catalog = catalog
	p.diagnostics = append(p.diagnostics, diags...)

	p.conditions = newConditionMap()
	for _, sec := range findSections(p.doc.src, "conditions", true) {
		p.diagnostics = append(p.diagnostics, parseConditionsSection(p.doc, sec, p.conditions)...)
	}

	p.ready = !p.diagnostics.hasStructural()
	return p.diagnostics
}

// Ready reports whether Preflight succeeded (no structural diagnostic),
// i.e. whether Parse/Validate/Suggest are safe to call.
func (p *Parser) Ready() bool { return p.ready }

func (p *Parser) matchAgainst(argv []string, flags Flags) ([]MatchState, *matchContext, *TokenizeResult) {
	tok := Tokenize(p.doc, p.catalog, argv, flags)
	ctx := &matchContext{
		doc:         p.doc,
		positionals: tok.Positionals,
		resolved:    tok.Resolved,
		argv:        argv,
		flags:       flags,
		catalog:     p.catalog,
	}
	states := matchUsage(p.usageHead, *ctx, newMatchState(len(tok.Resolved)))
	return states, ctx, tok
}

// Parse matches argv against the usage grammar and returns the winning
// state's option map, its unused argv indices, and any diagnostics
// accumulated along the way, per spec.md §4.6.
func (p *Parser) Parse(argv []string, flags Flags) (map[string]*Argument, []int, Diagnostics) {
	states, ctx, tok := p.matchAgainst(argv, flags)
	diags := append(Diagnostics{}, tok.Diagnostics...)

	winner, unused, ok := pickWinner(ctx, states)
	if !ok {
		allUnused := make([]int, len(argv))
		for i := range allUnused {
			allUnused[i] = i
		}
		return map[string]*Argument{}, allUnused, diags
	}

	if flags.Has(GenerateEmptyArgs) {
		fillDefaults(ctx, &winner)
		synthesizeEmptyArgs(ctx, &winner, p.usageHead)
	}
	return winner.OptionMap, unused, diags
}

// SlotStatus classifies one argv slot after matching, per spec.md §4.6's
// validate operation.
type SlotStatus int

const (
	StatusValid SlotStatus = iota
	StatusInvalid
)

// Validate returns one SlotStatus per argv slot: StatusInvalid iff the
// slot is in the best match's unused set.
func (p *Parser) Validate(argv []string, flags Flags) []SlotStatus {
	states, ctx, _ := p.matchAgainst(argv, flags)
	out := make([]SlotStatus, len(argv))

	_, unused, ok := pickWinner(ctx, states)
	if !ok {
		for i := range out {
			out[i] = StatusInvalid
		}
		return out
	}
	unusedSet := make(map[int]bool, len(unused))
	for _, u := range unused {
		unusedSet[u] = true
	}
	for i := range out {
		if unusedSet[i] {
			out[i] = StatusInvalid
		} else {
			out[i] = StatusValid
		}
	}
	return out
}

// Suggest forces flag_generate_suggestions and returns the next-argument
// suggestions for argv, per spec.md §4.6's two yield paths.
func (p *Parser) Suggest(argv []string, flags Flags) []string {
	flags |= GenerateSuggestions

	tok := Tokenize(p.doc, p.catalog, argv, flags)
	if tok.HasSuggestion {
		return []string{tok.ImmediateSuggestion}
	}

	ctx := &matchContext{
		doc:         p.doc,
		positionals: tok.Positionals,
		resolved:    tok.Resolved,
		argv:        argv,
		flags:       flags,
		catalog:     p.catalog,
	}
	states := matchUsage(p.usageHead, *ctx, newMatchState(len(tok.Resolved)))
	if len(states) == 0 {
		return nil
	}

	unusedCounts := make([]int, len(states))
	minUnused := -1
	for i, s := range states {
		n := len(unusedArgvIndices(ctx, s))
		unusedCounts[i] = n
		if minUnused < 0 || n < minUnused {
			minUnused = n
		}
	}

	seen := map[string]bool{}
	var out []string
	for i, s := range states {
		if unusedCounts[i] != minUnused {
			continue
		}
		for name := range s.SuggestedNextArguments {
			if !seen[name] {
				seen[name] = true
				out = append(out, name)
			}
		}
	}
	slices.Sort(out)
	return out
}

// ConditionsFor returns the condition text registered for a variable name.
func (p *Parser) ConditionsFor(name string) (string, bool) {
	r, ok := p.conditions.Lookup(name)
	if !ok {
		return "", false
	}
	return p.doc.Text(r), true
}

// DescriptionFor finds the catalog option matching optionName (with either
// one or two leading dashes) and returns its description text.
func (p *Parser) DescriptionFor(optionName string) (string, bool) {
	trimmed := strings.TrimLeft(optionName, "-")
	dashCount := len(optionName) - len(trimmed)

	for _, o := range p.catalog.AllOptions {
		if o.NameRange.Text(p.doc.src) == trimmed && (dashCount == 0 || o.LeadingDashCount == dashCount) {
			return o.DescriptionRange.Text(p.doc.src), true
		}
	}
	for _, o := range p.catalog.AllOptions {
		if o.NameRange.Text(p.doc.src) == trimmed {
			return o.DescriptionRange.Text(p.doc.src), true
		}
	}
	return "", false
}

// GetCommandNames walks the usage chain, returning program names in
// first-occurrence order, deduped.
func (p *Parser) GetCommandNames() []string {
	seen := map[string]bool{}
	var out []string
	for _, name := range grammar.ProgramNames(p.doc.src, p.usageHead) {
		if !seen[name] {
			seen[name] = true
			out = append(out, name)
		}
	}
	return out
}

// GetVariables returns the union of every Usage: variable and every
// option value variable, sorted and deduped.
func (p *Parser) GetVariables() []string {
	seen := map[string]bool{}
	var out []string
	for _, v := range grammar.CollectVariables(p.doc.src, p.usageHead) {
		if !seen[v] {
			seen[v] = true
			out = append(out, v)
		}
	}
	for _, o := range p.catalog.AllOptions {
		if !o.HasValue() {
			continue
		}
		v := o.ValueRange.Text(p.doc.src)
		if !seen[v] {
			seen[v] = true
			out = append(out, v)
		}
	}
	slices.Sort(out)
	return out
}
