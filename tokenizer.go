// License: GPLv3 Copyright: 2022, Kovid Goyal, <kovid at kovidgoyal.net>

package docopt

import "strings"

// Positional is one argv slot classified as a positional argument, per
// spec.md §3.
type Positional struct {
	ArgvIndex int
}

// ResolvedOption is one argv occurrence matched against a catalog option,
// per spec.md §3.
type ResolvedOption struct {
	Option          *Option
	NameIdx         int
	ValueIdx        int   // -1 when absent
	ValueRangeInArg Range // used when the value is attached inline to argv[NameIdx]
}

// HasValue reports whether this occurrence carries a value.
func (r *ResolvedOption) HasValue() bool { return r.ValueIdx >= 0 || !r.ValueRangeInArg.Empty() }

// ValueText returns the occurrence's value text, reading either the
// adjacent argv slot or the inline-attached substring of the name slot.
func (r *ResolvedOption) ValueText(argv []string) string {
	if r.ValueIdx >= 0 {
		return argv[r.ValueIdx]
	}
	if !r.ValueRangeInArg.Empty() {
		return r.ValueRangeInArg.Text(argv[r.NameIdx])
	}
	return ""
}

// TokenizeResult is the output of tokenizing one argv vector, per
// spec.md §4.4.
type TokenizeResult struct {
	Positionals         []Positional
	Resolved            []*ResolvedOption
	Diagnostics         Diagnostics
	ImmediateSuggestion string
	HasSuggestion        bool
}

// Tokenize walks argv left to right, classifying each slot as a positional
// or a resolved option via long/short/unseparated-short/prefix resolution,
// the way tools/cli/parse-args.go's parse_args dispatches on "-"/"--"
// prefixes with a run of closures over a shared cursor.
func Tokenize(doc *Doc, catalog *Catalog, argv []string, flags Flags) *TokenizeResult {
	res := &TokenizeResult{}
	i := 0
	n := len(argv)
	terminated := false

	findByNameAndType := func(optType OptionType, name string) []*Option {
		var out []*Option
		for _, o := range catalog.AllOptions {
			if o.Type == optType && o.NameRange.Text(doc.src) == name {
				out = append(out, o)
			}
		}
		return out
	}
	findByPrefixAndType := func(optType OptionType, prefix string) []*Option {
		var out []*Option
		if prefix == "" {
			return out
		}
		for _, o := range catalog.AllOptions {
			if o.Type == optType && strings.HasPrefix(o.NameRange.Text(doc.src), prefix) {
				out = append(out, o)
			}
		}
		return out
	}

	// parseLong handles both "--name[=value]" (dashCount=2) and a
	// single-dash "-name[=value]" long form (dashCount=1), per spec.md
	// §4.4's parse_long(type).
	parseLong := func(idx int, dashCount int, optType OptionType) (ro *ResolvedOption, diag *Diagnostic, consumed int, suggestion string, hasSuggestion bool) {
		arg := argv[idx]
		body := arg[dashCount:]
		name, _, hasEq := strings.Cut(body, "=")

		candidates := findByNameAndType(optType, name)
		if len(candidates) == 0 && flags.Has(ResolveUnambiguousPrefixes) {
			candidates = findByPrefixAndType(optType, name)
			if len(candidates) >= 2 {
				return nil, newArgvDiagnostic(ErrAmbiguousPrefixMatch, idx, "%q is ambiguous among multiple options", arg), 0, "", false
			}
		}
		if len(candidates) == 0 {
			if dashCount == 2 {
				return nil, newArgvDiagnostic(ErrUnknownOption, idx, "unknown option %q", arg), 0, "", false
			}
			return nil, nil, 0, "", false
		}
		opt := candidates[0]

		if flags.Has(ShortOptionsStrictSeparators) {
			wantSep := SepSpace
			if hasEq {
				wantSep = SepEquals
			}
			if opt.HasValue() && opt.Separator != SepNone && opt.Separator != wantSep {
				return nil, newArgvDiagnostic(ErrWrongSeparator, idx, "%q uses the wrong separator style", arg), 0, "", false
			}
		}

		if opt.HasValue() {
			if hasEq {
				eqPos := strings.IndexByte(arg, '=')
				vr := rangeFrom(eqPos+1, len(arg))
				return &ResolvedOption{Option: opt, NameIdx: idx, ValueIdx: -1, ValueRangeInArg: vr}, nil, 1, "", false
			}
			if idx+1 < n {
				return &ResolvedOption{Option: opt, NameIdx: idx, ValueIdx: idx + 1}, nil, 2, "", false
			}
			if flags.Has(GenerateSuggestions) {
				return nil, nil, 1, opt.ValueRange.Text(doc.src), true
			}
			return nil, newArgvDiagnostic(ErrOptionHasMissingArgument, idx, "%q is missing its argument", arg), 0, "", false
		}
		if hasEq {
			return nil, newArgvDiagnostic(ErrOptionUnexpectedArgument, idx, "%q does not take a value", arg), 0, "", false
		}
		return &ResolvedOption{Option: opt, NameIdx: idx, ValueIdx: -1}, nil, 1, "", false
	}

	parseUnseparatedShort := func(idx int) (*ResolvedOption, *Diagnostic) {
		arg := argv[idx]
		if len(arg) <= 2 {
			return nil, nil
		}
		name := arg[1:2]
		var candidates []*Option
		for _, o := range catalog.AllOptions {
			if o.Type != ShortOption || o.NameRange.Text(doc.src) != name || !o.HasValue() {
				continue
			}
			if flags.Has(ShortOptionsStrictSeparators) && o.Separator != SepNone {
				continue
			}
			candidates = append(candidates, o)
		}
		if len(candidates) == 0 {
			return nil, nil
		}
		vr := rangeFrom(2, len(arg))
		return &ResolvedOption{Option: candidates[0], NameIdx: idx, ValueIdx: -1, ValueRangeInArg: vr}, nil
	}

	parseShort := func(idx int) ([]*ResolvedOption, *Diagnostic, int, string, bool) {
		arg := argv[idx]
		runes := []rune(arg[1:])
		var results []*ResolvedOption
		for pos, ch := range runes {
			name := string(ch)
			var candidates []*Option
			for _, o := range catalog.AllOptions {
				if o.Type == ShortOption && o.NameRange.Text(doc.src) == name {
					candidates = append(candidates, o)
				}
			}
			if len(candidates) == 0 {
				return nil, newArgvDiagnostic(ErrUnknownOption, idx, "unknown option -%s", name), 0, "", false
			}
			opt := candidates[0]
			isLast := pos == len(runes)-1
			if opt.HasValue() {
				if !isLast {
					return nil, newArgvDiagnostic(ErrOptionUnexpectedArgument, idx,
						"-%s takes a value and must be the last option in -%s", name, string(runes)), 0, "", false
				}
				if idx+1 < n {
					results = append(results, &ResolvedOption{Option: opt, NameIdx: idx, ValueIdx: idx + 1})
					return results, nil, 2, "", false
				}
				if flags.Has(GenerateSuggestions) {
					return nil, nil, 1, opt.ValueRange.Text(doc.src), true
				}
				return nil, newArgvDiagnostic(ErrOptionHasMissingArgument, idx, "-%s is missing its value", name), 0, "", false
			}
			results = append(results, &ResolvedOption{Option: opt, NameIdx: idx, ValueIdx: -1})
		}
		return results, nil, 1, "", false
	}

argvLoop:
	for i < n {
		arg := argv[i]
		if terminated {
			res.Positionals = append(res.Positionals, Positional{ArgvIndex: i})
			i++
			continue
		}
		if arg == "--" {
			terminated = true
			i++
			continue
		}
		switch {
		case strings.HasPrefix(arg, "--"):
			ro, diag, consumed, sugg, hasSugg := parseLong(i, 2, DoubleLongOption)
			if hasSugg {
				res.ImmediateSuggestion, res.HasSuggestion = sugg, true
				break argvLoop
			}
			if ro != nil {
				res.Resolved = append(res.Resolved, ro)
				i += consumed
				continue
			}
			if diag != nil {
				res.Diagnostics = append(res.Diagnostics, diag)
			}
			i++
		case strings.HasPrefix(arg, "-") && len(arg) > 1:
			var longDiag, unsepDiag, shortDiag *Diagnostic
			if ro, diag, consumed, sugg, hasSugg := parseLong(i, 1, SingleLongOption); hasSugg {
				res.ImmediateSuggestion, res.HasSuggestion = sugg, true
				break argvLoop
			} else if ro != nil {
				res.Resolved = append(res.Resolved, ro)
				i += consumed
				continue
			} else {
				longDiag = diag
			}

			if ro, diag := parseUnseparatedShort(i); ro != nil {
				res.Resolved = append(res.Resolved, ro)
				i++
				continue
			} else {
				unsepDiag = diag
			}

			if ros, diag, consumed, sugg, hasSugg := parseShort(i); hasSugg {
				res.ImmediateSuggestion, res.HasSuggestion = sugg, true
				break argvLoop
			} else if ros != nil {
				res.Resolved = append(res.Resolved, ros...)
				i += consumed
				continue
			} else {
				shortDiag = diag
			}

			if shortDiag != nil {
				res.Diagnostics = append(res.Diagnostics, shortDiag)
			}
			if longDiag != nil {
				res.Diagnostics = append(res.Diagnostics, longDiag)
			}
			if unsepDiag != nil {
				res.Diagnostics = append(res.Diagnostics, unsepDiag)
			}
			if shortDiag == nil && longDiag == nil && unsepDiag == nil {
				res.Diagnostics = append(res.Diagnostics, newArgvDiagnostic(ErrUnknownOption, i, "unknown option %q", arg))
			}
			i++
		default:
			res.Positionals = append(res.Positionals, Positional{ArgvIndex: i})
			i++
		}
	}
	return res
}
