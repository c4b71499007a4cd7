// License: GPLv3 Copyright: 2022, Kovid Goyal, <kovid at kovidgoyal.net>

package grammar

import (
	"strings"

	"github.com/usagetree/docopt/internal/source"
)

// UsageOptionOccurrence is a lexical option mention found directly in a
// Usage: line, used by the root package to build the usage_options half of
// the option catalog (spec.md §3's "options appearing literally in
// Usage:"). ValueRange is non-empty when the mention attaches its value
// inline, either with '=' ("--speed=<kn>") or directly ("-D<value>"); a
// usage mention that relies on a separately-written <variable> token is
// represented purely as an option_clause followed by a variable_clause and
// contributes no value arity here.
type UsageOptionOccurrence struct {
	NameRange        Range
	LeadingDashCount int
	ValueRange       Range
}

type tokKind uint8

const (
	tLParen tokKind = iota
	tRParen
	tLBrack
	tRBrack
	tPipe
	tEllipsis
	tWord
	tShortOpt // one char of a split short-option cluster; r is just the name char, no dash
)

type token struct {
	kind tokKind
	r    Range
}

func isUsageSpace(b byte) bool { return b == ' ' || b == '\t' || b == '\r' }

func tokenizeLine(src string, line Range) []token {
	var out []token
	i := line.Start
	end := line.End()
	for i < end {
		c := src[i]
		if isUsageSpace(c) {
			i++
			continue
		}
		switch c {
		case '(':
			out = append(out, token{tLParen, source.From(i, i+1)})
			i++
			continue
		case ')':
			out = append(out, token{tRParen, source.From(i, i+1)})
			i++
			continue
		case '[':
			out = append(out, token{tLBrack, source.From(i, i+1)})
			i++
			continue
		case ']':
			out = append(out, token{tRBrack, source.From(i, i+1)})
			i++
			continue
		case '|':
			out = append(out, token{tPipe, source.From(i, i+1)})
			i++
			continue
		}
		start := i
		for i < end && !isUsageSpace(src[i]) && !strings.ContainsRune("()[]|", rune(src[i])) {
			i++
		}
		word := src[start:i]
		if word == "..." {
			out = append(out, token{tEllipsis, source.From(start, i)})
			continue
		}
		wordEnd := i
		hasEllipsis := strings.HasSuffix(word, "...") && len(word) > 3
		if hasEllipsis {
			word = word[:len(word)-3]
			wordEnd -= 3
		}
		out = append(out, splitShortOptionCluster(word, start, wordEnd)...)
		if hasEllipsis {
			out = append(out, token{tEllipsis, source.From(wordEnd, i)})
		}
	}
	return out
}

// isShortOptionCluster reports whether word is a run of one-dash,
// one-char-each short option mentions with no attached value, e.g. "-vv" or
// "-ab" — the Usage-line analogue of combined short options on argv. A
// single dash followed by more than one name character is always read this
// way; a genuine single_long option only ever occurs with two dashes or via
// an Options: record, never bare in Usage:.
func isShortOptionCluster(word string) bool {
	return len(word) > 2 && word[0] == '-' && word[1] != '-' && !strings.ContainsAny(word, "=<")
}

// splitShortOptionCluster returns one tShortOpt token per name character of
// a short option cluster (the dash itself isn't part of any token's range,
// since only the cluster's single leading dash exists in source), or a
// single tWord token covering the whole word when it isn't a cluster.
func splitShortOptionCluster(word string, start, end int) []token {
	if !isShortOptionCluster(word) {
		return []token{{tWord, source.From(start, end)}}
	}
	out := make([]token, 0, len(word)-1)
	for j := 1; j < len(word); j++ {
		out = append(out, token{tShortOpt, source.From(start+j, start+j+1)})
	}
	return out
}

// parser walks a token slice for one Usage: line with one position of
// lookahead, the shape of a small hand-rolled recursive-descent parser
// (no external parser-generator dependency fits this narrow a grammar).
type parser struct {
	src   string
	toks  []token
	pos   int
	uses  []UsageOptionOccurrence
}

func (p *parser) peek() (token, bool) {
	if p.pos >= len(p.toks) {
		return token{}, false
	}
	return p.toks[p.pos], true
}

func (p *parser) next() (token, bool) {
	t, ok := p.peek()
	if ok {
		p.pos++
	}
	return t, ok
}

// ParseUsageSection parses every non-empty line of a Usage: section body
// into a chain of usage nodes (spec.md §4.5's next_usage chaining),
// alongside the flat list of option mentions found in the section, used to
// seed the usage_options half of the catalog.
func ParseUsageSection(src string, body Range) (*Node, []UsageOptionOccurrence) {
	lines := usageLines(src, body)
	var head, tail *Node
	var occurrences []UsageOptionOccurrence
	for _, ln := range lines {
		toks := tokenizeLine(src, ln)
		if len(toks) == 0 {
			continue
		}
		programName := toks[0].r
		p := &parser{src: src, toks: toks[1:]} // toks[0] is the program name, consumed by the usage node itself
		var body *Node
		if len(p.toks) > 0 {
			body = p.parseAlternationList()
		}
		node := &Node{Kind: KindUsage, ProgramName: programName, Body: body}
		occurrences = append(occurrences, p.uses...)
		if head == nil {
			head = node
		} else {
			tail.NextUsage = node
		}
		tail = node
	}
	return head, occurrences
}

// usageLines splits a Usage: section body into one Range per non-empty
// logical line.
func usageLines(src string, body Range) []Range {
	var out []Range
	start := body.Start
	for i := body.Start; i <= body.End(); i++ {
		if i == body.End() || src[i] == '\n' {
			r := source.From(start, i)
			if strings.TrimSpace(src[r.Start:r.End()]) != "" {
				out = append(out, r)
			}
			start = i + 1
		}
	}
	return out
}

func (p *parser) parseAlternationList() *Node {
	left := p.parseExpressionList()
	if left == nil {
		return nil
	}
	node := &Node{Kind: KindAlternationList, Left: left}
	if t, ok := p.peek(); ok && t.kind == tPipe {
		p.next()
		right := p.parseAlternationList()
		node.Right = &Node{Kind: KindOrContinuation, Continuation: right}
	}
	return node
}

func (p *parser) parseExpressionList() *Node {
	head := p.parseExpression()
	if head == nil {
		return nil
	}
	node := &Node{Kind: KindExpressionList, Head: head}
	tail := p.parseExpressionList()
	if tail != nil {
		node.Tail = &Node{Kind: KindOptExpressionList, Inner: tail}
	}
	return node
}

func (p *parser) parseExpression() *Node {
	t, ok := p.peek()
	if !ok || t.kind == tRParen || t.kind == tRBrack || t.kind == tPipe {
		return nil
	}

	var node *Node
	switch t.kind {
	case tLParen:
		p.next()
		inner := p.parseAlternationList()
		if rp, ok := p.peek(); ok && rp.kind == tRParen {
			p.next()
		}
		node = &Node{Kind: KindExpression, Production: ProdParenGroup, Child: inner}
	case tLBrack:
		p.next()
		if w, ok := p.peek(); ok && w.kind == tWord && p.src[w.r.Start:w.r.End()] == "options" {
			p.next()
			if rb, ok := p.peek(); ok && rb.kind == tRBrack {
				p.next()
			}
			node = &Node{Kind: KindExpression, Production: ProdOptionsShortcut}
		} else {
			inner := p.parseAlternationList()
			if rb, ok := p.peek(); ok && rb.kind == tRBrack {
				p.next()
			}
			node = &Node{Kind: KindExpression, Production: ProdBracketGroup, Child: inner}
		}
	case tWord:
		p.next()
		node = &Node{Kind: KindExpression, Production: ProdSimple, Child: p.parseLeaf(t)}
	case tShortOpt:
		p.next()
		p.uses = append(p.uses, UsageOptionOccurrence{NameRange: t.r, LeadingDashCount: 1})
		node = &Node{Kind: KindExpression, Production: ProdSimple, Child: &Node{
			Kind: KindSimpleClause,
			Leaf: &Node{Kind: KindOptionClause, Option: OptionRef{NameRange: t.r, LeadingDashCount: 1}},
		}}
	default:
		p.next()
		return p.parseExpression()
	}

	if e, ok := p.peek(); ok && e.kind == tEllipsis {
		p.next()
		node.Ellipsis = true
	}
	return node
}

func (p *parser) parseLeaf(t token) *Node {
	text := p.src[t.r.Start:t.r.End()]
	switch {
	case strings.HasPrefix(text, "-") && text != "-":
		dashCount := 0
		i := t.r.Start
		for i < t.r.End() && p.src[i] == '-' {
			dashCount++
			i++
		}
		nameStart := i
		for i < t.r.End() && p.src[i] != '=' && p.src[i] != '<' {
			i++
		}
		nameRange := source.From(nameStart, i)
		var valueRange Range
		switch {
		case i < t.r.End() && p.src[i] == '=':
			valueRange = source.From(i+1, t.r.End())
		case i < t.r.End() && p.src[i] == '<':
			// an attached value with no separator, e.g. "-D<value>".
			valueRange = source.From(i, t.r.End())
		}
		p.uses = append(p.uses, UsageOptionOccurrence{NameRange: nameRange, LeadingDashCount: dashCount, ValueRange: valueRange})
		return &Node{Kind: KindSimpleClause, Leaf: &Node{Kind: KindOptionClause, Option: OptionRef{NameRange: nameRange, LeadingDashCount: dashCount}}}
	case strings.HasPrefix(text, "<") && strings.HasSuffix(text, ">"):
		return &Node{Kind: KindSimpleClause, Leaf: &Node{Kind: KindVariableClause, Literal: t.r}}
	default:
		return &Node{Kind: KindSimpleClause, Leaf: &Node{Kind: KindFixedClause, Literal: t.r}}
	}
}
