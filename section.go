// License: GPLv3 Copyright: 2022, Kovid Goyal, <kovid at kovidgoyal.net>

package docopt

import "strings"

// docLine is one logical line of the doc text with its byte range and
// computed indentation, the way help.go walks lines of help text before
// wrapping them.
type docLine struct {
	text   string // leading/trailing-whitespace-trimmed text of the line
	leadWS int     // byte length of the leading whitespace trimmed off
	r      Range   // range of the full (untrimmed) line in the source
	indent int
	empty  bool
}

func splitDocLines(src string) []docLine {
	lines := make([]docLine, 0, strings.Count(src, "\n")+1)
	start := 0
	for start <= len(src) {
		end := strings.IndexByte(src[start:], '\n')
		var lineEnd int
		if end < 0 {
			lineEnd = len(src)
		} else {
			lineEnd = start + end
		}
		raw := src[start:lineEnd]
		indent := lineIndent(raw)
		leadWS := len(raw) - len(strings.TrimLeft(raw, " \t\r"))
		text := strings.TrimSpace(raw)
		lines = append(lines, docLine{
			text:   text,
			leadWS: leadWS,
			r:      rangeFrom(start, lineEnd),
			indent: indent,
			empty:  text == "",
		})
		if end < 0 {
			break
		}
		start = lineEnd + 1
	}
	return lines
}

// lineIndent measures leading whitespace, rounding tabs up to the next
// multiple of 4, per spec.md §4.1.
func lineIndent(raw string) int {
	indent := 0
	for _, ch := range raw {
		switch ch {
		case '\t':
			indent = ((indent / 4) + 1) * 4
		case ' ':
			indent++
		default:
			return indent
		}
	}
	return indent
}

// headerName reports whether text (already trimmed) contains a colon, and
// if so returns the case-folded header name occurring before it.
func headerName(text string) (name string, isHeader bool) {
	idx := strings.IndexByte(text, ':')
	if idx < 0 {
		return "", false
	}
	return strings.ToLower(strings.TrimSpace(text[:idx])), true
}

// findSections scans src for every occurrence of a section whose header
// name case-insensitively equals want, returning the body range of each
// occurrence (spec.md §4.1). When includeOtherTopLevel is set (used for
// Conditions:), top-level lines without a colon do not terminate the
// section body.
func findSections(src string, want string, includeOtherTopLevel bool) []Range {
	lines := splitDocLines(src)
	wantLower := strings.ToLower(want)
	var out []Range
	i := 0
	for i < len(lines) {
		ln := lines[i]
		if ln.empty {
			i++
			continue
		}
		name, isHdr := headerName(ln.text)
		if !isHdr || name != wantLower {
			i++
			continue
		}
		headerIndent := ln.indent
		colonOffset := strings.IndexByte(ln.text, ':')
		bodyStart := ln.r.Start + ln.leadWS + colonOffset + 1
		i++
		bodyEnd := ln.r.End()
		for i < len(lines) {
			cur := lines[i]
			if cur.empty {
				bodyEnd = cur.r.End()
				i++
				continue
			}
			if cur.indent <= headerIndent {
				_, curIsHdr := headerName(cur.text)
				if curIsHdr {
					break
				}
				if !includeOtherTopLevel {
					break
				}
			}
			bodyEnd = cur.r.End()
			i++
		}
		out = append(out, rangeFrom(bodyStart, bodyEnd))
	}
	return out
}
