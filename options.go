// License: GPLv3 Copyright: 2022, Kovid Goyal, <kovid at kovidgoyal.net>

package docopt

import (
	"strconv"
	"strings"
)

// SeparatorKind is the way an option's value is attached to it on the
// command line, per spec.md §3.
type SeparatorKind uint8

const (
	SepNone SeparatorKind = iota
	SepSpace
	SepEquals
)

// OptionType classifies an option by dash count and name length, per
// spec.md §3: one dash + one char is short, one dash + multiple chars is
// single_long, two dashes is double_long.
type OptionType uint8

const (
	ShortOption OptionType = iota
	SingleLongOption
	DoubleLongOption
)

// Option is one option record parsed out of an Options: spec line or
// inferred from a literal occurrence in Usage:, per spec.md §3.
type Option struct {
	NameRange                Range
	ValueRange                Range // the <variable> text, including < >; empty if the option takes no value
	LeadingDashCount          int
	Separator                  SeparatorKind
	Type                       OptionType
	DescriptionRange           Range
	DefaultValueRange          Range
	CorrespondingLongNameRange Range // empty if this option has no long alias on its spec line
	CorrespondingLongDashCount int   // dash count that goes with CorrespondingLongNameRange
}

// HasValue reports whether this option expects a value.
func (o *Option) HasValue() bool { return !o.ValueRange.Empty() }

// CanonicalName returns the option's textual name, with its leading
// dash(es), as it is used as a suggestion key. Option-map entries are keyed
// by KeyRangeText instead.
func (o *Option) CanonicalName(doc *Doc) string {
	return strings.Repeat("-", o.LeadingDashCount) + o.NameRange.Text(doc.src)
}

// KeyRangeText returns the text used for key-name equality: the
// CorrespondingLongNameRange if present, else the option's own name range
// (spec.md §3's "Key name").
func (o *Option) KeyRangeText(doc *Doc) string {
	if !o.CorrespondingLongNameRange.Empty() {
		return strings.Repeat("-", o.CorrespondingLongDashCount) + o.CorrespondingLongNameRange.Text(doc.src)
	}
	return o.CanonicalName(doc)
}

// Doc owns the immutable source text of a parsed docopt document. All
// Range values handed out by this module are views into Doc.src; nothing
// duplicates substrings into records, per spec.md §9's "shared immutable
// source" design note.
type Doc struct {
	src string
}

func (d *Doc) Text(r Range) string { return r.Text(d.src) }

// Catalog holds the three logical option lists of spec.md §3.
type Catalog struct {
	ShortcutOptions []*Option // from Options: only, after shortcut-excision
	UsageOptions    []*Option // options appearing literally in Usage:
	AllOptions      []*Option // union, deduplicated by each record's own type, dash count and name (optionIdentity)
}

const optionPrefixDelims = ".|<>,=()[] \t\n"

func isOptionNameChar(ch byte) bool {
	return strings.IndexByte(optionPrefixDelims, ch) < 0
}

func classifyOption(dashCount, nameLen int) OptionType {
	switch {
	case dashCount >= 2:
		return DoubleLongOption
	case nameLen == 1:
		return ShortOption
	default:
		return SingleLongOption
	}
}

// parseOptionsSection parses the body of one Options: section occurrence
// into option records, grouping continuation lines the way
// option-from-string.go's scanner groups a multi-line option block, and
// scanning each description for [default: ...] (spec.md §4.2).
func parseOptionsSection(doc *Doc, body Range) ([]*Option, Diagnostics) {
	lines := splitDocLines(doc.src[body.Start:body.End()])
	for i := range lines {
		lines[i].r.Start += body.Start
	}

	type block struct {
		first docLine
		rest  []docLine
	}
	var blocks []block
	for i := 0; i < len(lines); i++ {
		if lines[i].empty {
			continue
		}
		if !looksLikeOptionSpecStart(lines[i].text) {
			// a continuation line with no preceding block: ignore.
			if len(blocks) > 0 {
				blocks[len(blocks)-1].rest = append(blocks[len(blocks)-1].rest, lines[i])
			}
			continue
		}
		blocks = append(blocks, block{first: lines[i]})
	}

	var out []*Option
	var diags Diagnostics
	for _, b := range blocks {
		prefixText, prefixStart, descStart, hasDesc := splitPrefixAndDescription(b.first)
		descAbs := b.first.r.Start + b.first.leadWS + descStart
		descEnd := descAbs + len(prefixTail(b.first, descStart, hasDesc))
		for _, cont := range b.rest {
			descEnd = cont.r.Start + cont.leadWS + len(cont.text)
		}
		descRange := rangeFrom(descAbs, descEnd)
		if !hasDesc {
			descRange = Range{}
		}
		descText := descRange.Text(doc.src)

		defaultRange, err := scanDefault(descText, descRange.Start)
		if err != nil {
			diags = append(diags, err)
		}

		records, recErrs := parseOptionPrefix(doc, rangeFrom(prefixStart, prefixStart+len(prefixText)))
		diags = append(diags, recErrs...)

		// last long option's name on this line -> corresponding_long_name_range for all
		var lastLong Range
		var lastLongDashes int
		for _, r := range records {
			if r.Type != ShortOption && !r.NameRange.Empty() {
				lastLong = r.NameRange
				lastLongDashes = r.LeadingDashCount
			}
		}
		// last observed variable range propagates to records lacking one
		var lastVar Range
		for _, r := range records {
			if r.HasValue() {
				lastVar = r.ValueRange
			}
		}
		for _, r := range records {
			if !lastLong.Empty() {
				r.CorrespondingLongNameRange = lastLong
				r.CorrespondingLongDashCount = lastLongDashes
			}
			if !r.HasValue() && !lastVar.Empty() {
				r.ValueRange = lastVar
			}
			r.DescriptionRange = descRange
			r.DefaultValueRange = defaultRange
			out = append(out, r)
		}
	}
	return out, diags
}

// looksLikeOptionSpecStart reports whether a trimmed line begins an option
// spec: leading whitespace (already trimmed away by docLine) followed by a
// dash, per spec.md §4.2.
func looksLikeOptionSpecStart(trimmed string) bool {
	return strings.HasPrefix(trimmed, "-")
}

// splitPrefixAndDescription locates the first run of two-or-more
// consecutive spaces in the line's trimmed text and splits there. descStart
// is an offset into that trimmed text, not into the untrimmed line.
func splitPrefixAndDescription(ln docLine) (prefixText string, prefixStart int, descStart int, hasDesc bool) {
	raw := ln.text // already trimmed of outer whitespace; two-space runs inside remain
	idx := strings.Index(raw, "  ")
	if idx < 0 {
		return raw, ln.r.Start + ln.leadWS, len(raw), false
	}
	prefix := raw[:idx]
	rest := strings.TrimLeft(raw[idx:], " ")
	descOffset := len(raw) - len(rest)
	return prefix, ln.r.Start + ln.leadWS, descOffset, true
}

func prefixTail(ln docLine, descStart int, hasDesc bool) string {
	if !hasDesc {
		return ""
	}
	return ln.text[descStart:]
}

// scanDefault scans text for the first case-insensitive occurrence of
// "[default: " and returns the range of text up to the matching "]",
// per spec.md §4.2 and the Open Question (i): first occurrence wins.
func scanDefault(text string, baseOffset int) (Range, *Diagnostic) {
	lower := strings.ToLower(text)
	idx := strings.Index(lower, "[default:")
	if idx < 0 {
		return Range{}, nil
	}
	rest := text[idx+len("[default:"):]
	rest = strings.TrimLeft(rest, " \t")
	valueStart := idx + len("[default:") + (len(text[idx+len("[default:"):]) - len(rest))
	closeIdx := strings.IndexByte(text[valueStart:], ']')
	if closeIdx < 0 {
		return Range{}, newDocDiagnostic(ErrMissingCloseBracketInDefault, rangeFrom(baseOffset+idx, baseOffset+len(text)),
			"missing closing ']' in [default: ...]")
	}
	valueEnd := valueStart + closeIdx
	// trim trailing spaces from the captured default value
	val := text[valueStart:valueEnd]
	trimmed := strings.TrimRight(val, " \t")
	return rangeFrom(baseOffset+valueStart, baseOffset+valueStart+len(trimmed)), nil
}

// parseOptionPrefix parses the option-prefix part of a spec line into one
// or more Option records, per spec.md §4.2.
func parseOptionPrefix(doc *Doc, r Range) ([]*Option, Diagnostics) {
	text := doc.src[r.Start:r.End()]
	var out []*Option
	var diags Diagnostics

	for _, seg := range splitSegmentsOnComma(text, r.Start) {
		pos := seg.Start
		end := seg.End()
		for pos < end {
			for pos < end && isSpaceByte(doc.src[pos]) {
				pos++
			}
			if pos >= end {
				break
			}
			if doc.src[pos] != '-' {
				diags = append(diags, newDocDiagnostic(ErrInvalidOptionName, rangeFrom(pos, pos+1), "expected option name starting with '-'"))
				for pos < end && !isSpaceByte(doc.src[pos]) && doc.src[pos] != ',' {
					pos++
				}
				continue
			}
			dashStart := pos
			dashCount := 0
			for pos < end && doc.src[pos] == '-' {
				dashCount++
				pos++
			}
			if dashCount >= 3 {
				diags = append(diags, newDocDiagnostic(ErrExcessiveDashes, rangeFrom(dashStart, pos), "too many leading dashes"))
			}
			nameStart := pos
			for pos < end && isOptionNameChar(doc.src[pos]) {
				pos++
			}
			nameEnd := pos
			if nameEnd == nameStart {
				diags = append(diags, newDocDiagnostic(ErrInvalidOptionName, rangeFrom(dashStart, pos), "option has no name"))
				continue
			}
			nameRange := rangeFrom(nameStart, nameEnd)
			optType := classifyOption(dashCount, nameEnd-nameStart)

			sep := SepNone
			var valueRange Range
			save := pos
			wsBefore := 0
			for pos < end && isSpaceByte(doc.src[pos]) {
				pos++
				wsBefore++
			}
			sawEquals := false
			if pos < end && doc.src[pos] == '=' {
				eqStart := pos
				eqCount := 0
				for pos < end && doc.src[pos] == '=' {
					eqCount++
					pos++
				}
				if eqCount > 1 {
					diags = append(diags, newDocDiagnostic(ErrExcessiveEqualSigns, rangeFrom(eqStart, pos), "too many '=' signs"))
				}
				sawEquals = true
				for pos < end && isSpaceByte(doc.src[pos]) {
					pos++
				}
			}
			if pos < end && doc.src[pos] == '<' {
				varStart := pos
				pos++
				for pos < end && doc.src[pos] != '>' {
					pos++
				}
				if pos >= end {
					diags = append(diags, newDocDiagnostic(ErrInvalidVariableName, rangeFrom(varStart, pos), "missing '>' to close variable"))
					valueRange = rangeFrom(varStart, pos)
				} else {
					pos++ // consume '>'
					valueRange = rangeFrom(varStart, pos)
					if pos < end && !isSpaceByte(doc.src[pos]) && doc.src[pos] != ',' {
						diags = append(diags, newDocDiagnostic(ErrInvalidVariableName, rangeFrom(pos, end), "extra characters after '>'"))
						for pos < end && !isSpaceByte(doc.src[pos]) && doc.src[pos] != ',' {
							pos++
						}
					}
				}
				switch {
				case sawEquals:
					sep = SepEquals
				case wsBefore > 0:
					sep = SepSpace
				default:
					sep = SepNone
				}
				if optType != ShortOption && sep == SepNone {
					diags = append(diags, newDocDiagnostic(ErrBadOptionSeparator, nameRange, "long options must use a space or '=' before their value"))
				}
			} else {
				if sawEquals {
					diags = append(diags, newDocDiagnostic(ErrInvalidVariableName, rangeFrom(save, pos), "'=' given with no variable"))
				}
				pos = save
			}

			out = append(out, &Option{
				NameRange:        nameRange,
				ValueRange:       valueRange,
				LeadingDashCount: dashCount,
				Separator:        sep,
				Type:             optType,
			})
		}
	}
	return out, diags
}

func isSpaceByte(b byte) bool { return b == ' ' || b == '\t' }

func splitSegmentsOnComma(text string, base int) []Range {
	var out []Range
	start := 0
	for i := 0; i < len(text); i++ {
		if text[i] == ',' {
			out = append(out, rangeFrom(base+start, base+i))
			start = i + 1
		}
	}
	out = append(out, rangeFrom(base+start, base+len(text)))
	return out
}

// BuildCatalog assembles the shortcut/usage/all-options catalog from the
// raw option lists extracted from Options: and Usage:, applying the
// deduplication and shortcut-excision rules of spec.md §3.
func BuildCatalog(doc *Doc, fromOptionsSections [][]*Option, fromUsage []*Option) (*Catalog, Diagnostics) {
	var diags Diagnostics

	shortcut, dupDiags := dedupeWithinOptionsSection(doc, fromOptionsSections)
	diags = append(diags, dupDiags...)

	usage := dedupeKeepLongestDescription(doc, fromUsage)

	usageKeys := newKeySet()
	for _, o := range usage {
		usageKeys.add(o.KeyRangeText(doc))
	}
	excised := shortcut[:0:0]
	for _, o := range shortcut {
		if !usageKeys.has(o.KeyRangeText(doc)) {
			excised = append(excised, o)
		}
	}

	// AllOptions merges in the full shortcut list, not just the excised
	// remainder, so an option mentioned in both Usage: and Options: keeps
	// its Options: description and default even though it's excluded from
	// the [options] shortcut expansion.
	all := append(append([]*Option{}, usage...), shortcut...)
	all = dedupeKeepLongestDescription(doc, all)

	return &Catalog{ShortcutOptions: excised, UsageOptions: usage, AllOptions: all}, diags
}

// optionIdentity keys a record by what it literally IS (its own dash count,
// type, and name text), never by KeyRangeText's derived long-alias name —
// "-v, --verbose" must dedup as two distinct records, not collapse into
// one, even though they share a key name for match-time alias binding.
func optionIdentity(doc *Doc, o *Option) string {
	return strconv.Itoa(int(o.Type)) + "\x00" + strconv.Itoa(o.LeadingDashCount) + "\x00" + o.NameRange.Text(doc.src)
}

func dedupeWithinOptionsSection(doc *Doc, sections [][]*Option) ([]*Option, Diagnostics) {
	var diags Diagnostics
	seen := map[string]*Option{}
	var order []string
	for _, section := range sections {
		localSeen := newKeySet()
		for _, o := range section {
			key := optionIdentity(doc, o)
			if localSeen.has(key) {
				diags = append(diags, newDocDiagnostic(ErrOptionDuplicatedInOptionsSection, o.NameRange,
					"option %q is duplicated in its Options: section", o.CanonicalName(doc)))
			}
			localSeen.add(key)
			if existing, ok := seen[key]; ok {
				if len(o.DescriptionRange.Text(doc.src)) > len(existing.DescriptionRange.Text(doc.src)) {
					seen[key] = o
				}
			} else {
				seen[key] = o
				order = append(order, key)
			}
		}
	}
	out := make([]*Option, 0, len(order))
	for _, k := range order {
		out = append(out, seen[k])
	}
	return out, diags
}

func dedupeKeepLongestDescription(doc *Doc, opts []*Option) []*Option {
	seen := map[string]*Option{}
	var order []string
	for _, o := range opts {
		key := optionIdentity(doc, o)
		if existing, ok := seen[key]; ok {
			if len(o.DescriptionRange.Text(doc.src)) > len(existing.DescriptionRange.Text(doc.src)) {
				seen[key] = o
			}
		} else {
			seen[key] = o
			order = append(order, key)
		}
	}
	out := make([]*Option, 0, len(order))
	for _, k := range order {
		out = append(out, seen[k])
	}
	return out
}
