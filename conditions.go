// License: GPLv3 Copyright: 2022, Kovid Goyal, <kovid at kovidgoyal.net>

package docopt

import "strings"

// ConditionMap is a variable name -> condition-text map parsed from a
// Conditions: section, per spec.md §4.3. Condition *evaluation* is out of
// scope (spec.md §1 Non-goals); this module only records the mapping.
type ConditionMap struct {
	byName map[string]Range
	order  []string
}

func newConditionMap() *ConditionMap {
	return &ConditionMap{byName: map[string]Range{}}
}

// Lookup returns the condition-text range for name and whether it exists.
func (c *ConditionMap) Lookup(name string) (Range, bool) {
	r, ok := c.byName[name]
	return r, ok
}

// parseConditionsSection parses one Conditions: body into entries, one per
// <name>␠␠text line-group, per spec.md §4.3. Conditions: passes
// includeOtherTopLevel=true to findSections so bare enumeration lines
// following a condition are captured as part of that condition's text.
func parseConditionsSection(doc *Doc, body Range, into *ConditionMap) Diagnostics {
	var diags Diagnostics
	lines := splitDocLines(doc.src[body.Start:body.End()])
	for i := range lines {
		lines[i].r.Start += body.Start
	}

	type entry struct {
		name    string
		nameR   Range
		valueR  Range
	}
	var entries []entry
	for i := 0; i < len(lines); i++ {
		ln := lines[i]
		if ln.empty {
			continue
		}
		trimmed := ln.text
		idx := strings.Index(trimmed, "  ")
		if idx < 0 {
			// a bare continuation/enumeration line: attach to the last entry's value.
			if len(entries) > 0 {
				e := &entries[len(entries)-1]
				e.valueR = rangeFrom(e.valueR.Start, ln.r.End())
			}
			continue
		}
		name := strings.TrimSpace(trimmed[:idx])
		rest := strings.TrimLeft(trimmed[idx:], " \t")
		nameStart := ln.r.Start + ln.leadWS
		valueStart := nameStart + (len(trimmed) - len(rest))
		entries = append(entries, entry{
			name:   name,
			nameR:  rangeFrom(nameStart, nameStart+len(name)),
			valueR: rangeFrom(valueStart, ln.r.End()),
		})
	}

	for _, e := range entries {
		trimmedText := strings.TrimSpace(doc.src[e.valueR.Start:e.valueR.End()])
		vr := e.valueR
		if trimmedText == "" {
			vr = Range{}
		} else {
			offset := strings.Index(doc.src[e.valueR.Start:e.valueR.End()], trimmedText)
			vr = rangeFrom(e.valueR.Start+offset, e.valueR.Start+offset+len(trimmedText))
		}
		if _, exists := into.byName[e.name]; exists {
			diags = append(diags, newDocDiagnostic(ErrOneVariableMultipleConditions, e.nameR,
				"variable %q has multiple conditions", e.name))
			continue
		}
		into.byName[e.name] = vr
		into.order = append(into.order, e.name)
	}
	return diags
}
