// License: GPLv3 Copyright: 2022, Kovid Goyal, <kovid at kovidgoyal.net>

package docopt

import "github.com/usagetree/docopt/internal/grammar"

// matchContext carries everything the matcher reads but never mutates in
// place. It is passed by value: the bracket-group production's transient
// "is_in_square_brackets" flag (spec.md §4.5) is flipped by assigning to a
// local copy before recursing, and the caller's copy is left untouched on
// return — ordinary Go value semantics give us the save/restore the spec
// describes for free.
type matchContext struct {
	doc         *Doc
	positionals []Positional
	resolved    []*ResolvedOption
	argv        []string
	flags       Flags
	catalog     *Catalog
	inBrackets  bool
}

func (ctx *matchContext) hasNextPositional(st MatchState) bool {
	return st.NextPositionalIndex < len(ctx.positionals)
}

func (ctx *matchContext) consumePositional(st *MatchState) Positional {
	p := ctx.positionals[st.NextPositionalIndex]
	st.NextPositionalIndex++
	return p
}

// resolveOptionRef maps a grammar.OptionRef (a textual mention found while
// parsing Usage:) to the catalog Option it names, by name text and dash
// count rather than pointer identity — the grammar package builds its own
// Node graph independently of this package's Option records to avoid an
// import cycle (internal/grammar must not import this package).
func (ctx *matchContext) resolveOptionRef(ref grammar.OptionRef) *Option {
	name := ref.NameRange.Text(ctx.doc.src)
	t := classifyOption(ref.LeadingDashCount, len(name))
	for _, o := range ctx.catalog.AllOptions {
		if o.Type == t && o.LeadingDashCount == ref.LeadingDashCount && o.NameRange.Text(ctx.doc.src) == name {
			return o
		}
	}
	return nil
}

// matchUsage matches one usage node and unions in every state reachable by
// skipping straight to its next_usage alternative, per spec.md §4.5: each
// Usage: line is an independent alternative the argv must satisfy at least
// one of.
func matchUsage(n *grammar.Node, ctx matchContext, st MatchState) []MatchState {
	var out []MatchState
	if ctx.hasNextPositional(st) {
		st2 := st.Clone()
		ctx.consumePositional(&st2)
		if n.Body == nil {
			out = append(out, st2)
		} else {
			out = append(out, matchAlternationList(n.Body, ctx, st2)...)
		}
	}
	if n.NextUsage != nil {
		out = append(out, matchUsage(n.NextUsage, ctx, st.Clone())...)
	}
	return out
}

func matchAlternationList(n *grammar.Node, ctx matchContext, st MatchState) []MatchState {
	if n == nil {
		return []MatchState{st}
	}
	out := matchExpressionList(n.Left, ctx, st.Clone())
	if n.Right != nil {
		out = append(out, matchAlternationList(n.Right.Continuation, ctx, st.Clone())...)
	}
	return out
}

func matchExpressionList(n *grammar.Node, ctx matchContext, st MatchState) []MatchState {
	if n == nil {
		return []MatchState{st}
	}
	heads := matchExpression(n.Head, ctx, st)
	if n.Tail == nil {
		return heads
	}
	var out []MatchState
	for _, s := range heads {
		out = append(out, matchExpressionList(n.Tail.Inner, ctx, s)...)
	}
	return out
}

func matchExpression(n *grammar.Node, ctx matchContext, st MatchState) []MatchState {
	return applyEllipsis(n, ctx, matchExpressionOnce(n, ctx, st))
}

// matchExpressionOnce computes one expression's successor states for its
// production, without re-applying an ellipsis — the ellipsis loop in
// applyEllipsis calls this directly so that repeated iterations don't
// nest ellipsis handling inside itself.
func matchExpressionOnce(n *grammar.Node, ctx matchContext, st MatchState) []MatchState {
	switch n.Production {
	case grammar.ProdSimple:
		return matchLeaf(n.Child.Leaf, ctx, st)
	case grammar.ProdParenGroup:
		return matchAlternationList(n.Child, ctx, st)
	case grammar.ProdBracketGroup:
		ctx2 := ctx
		ctx2.inBrackets = true
		out := matchAlternationList(n.Child, ctx2, st.Clone())
		out = append(out, st.Clone())
		return out
	case grammar.ProdOptionsShortcut:
		matched := matchOptions(ctx.catalog.ShortcutOptions, st, ctx)
		if len(matched) > 0 {
			return matched
		}
		st2 := st.Clone()
		if ctx.flags.Has(GenerateSuggestions) {
			for _, o := range ctx.catalog.ShortcutOptions {
				st2.SuggestedNextArguments[o.CanonicalName(ctx.doc)] = true
			}
		}
		return []MatchState{st2}
	}
	return nil
}

// applyEllipsis repeatedly re-matches n's production against each
// successor state, keeping only states that made strict progress, and
// unions every intermediate set into the result — spec.md §4.5's ellipsis
// rule. The loop terminates because Progress() is bounded above by the
// total number of positionals plus resolved options plus suggestions, and
// every surviving iteration strictly increases it.
func applyEllipsis(n *grammar.Node, ctx matchContext, first []MatchState) []MatchState {
	if !n.Ellipsis {
		return first
	}
	all := append([]MatchState{}, first...)
	frontier := first
	for len(frontier) > 0 {
		var next []MatchState
		for _, s := range frontier {
			prevProgress := s.Progress()
			for _, r := range matchExpressionOnce(n, ctx, s) {
				if r.Progress() > prevProgress {
					next = append(next, r)
				}
			}
		}
		all = append(all, next...)
		frontier = next
	}
	return all
}

// matchLeaf dispatches a simple_clause's one leaf to its kind-specific
// matcher, per spec.md §4.5.
func matchLeaf(leaf *grammar.Node, ctx matchContext, st MatchState) []MatchState {
	switch leaf.Kind {
	case grammar.KindOptionClause:
		return matchOptionClause(leaf, ctx, st)
	case grammar.KindFixedClause:
		return matchFixedClause(leaf, ctx, st)
	case grammar.KindVariableClause:
		return matchVariableClause(leaf, ctx, st)
	}
	return nil
}

func matchOptionClause(leaf *grammar.Node, ctx matchContext, st MatchState) []MatchState {
	opt := ctx.resolveOptionRef(leaf.Option)
	if opt == nil {
		return nil
	}
	if matched := matchOptions([]*Option{opt}, st, ctx); len(matched) > 0 {
		return matched
	}
	if !ctx.inBrackets && !ctx.flags.Has(MatchAllowIncomplete) {
		return nil
	}
	st2 := st.Clone()
	if ctx.flags.Has(GenerateSuggestions) {
		st2.SuggestedNextArguments[opt.CanonicalName(ctx.doc)] = true
	}
	return []MatchState{st2}
}

func matchFixedClause(leaf *grammar.Node, ctx matchContext, st MatchState) []MatchState {
	word := leaf.Literal.Text(ctx.doc.src)
	if ctx.hasNextPositional(st) {
		p := ctx.positionals[st.NextPositionalIndex]
		if ctx.argv[p.ArgvIndex] == word {
			st2 := st.Clone()
			ctx.consumePositional(&st2)
			arg := st2.OptionMap[word]
			if arg == nil {
				arg = &Argument{}
				st2.OptionMap[word] = arg
			}
			arg.Count++
			return []MatchState{st2}
		}
	}
	if !ctx.flags.Has(MatchAllowIncomplete) {
		return nil
	}
	st2 := st.Clone()
	if ctx.flags.Has(GenerateSuggestions) {
		st2.SuggestedNextArguments[word] = true
	}
	return []MatchState{st2}
}

func matchVariableClause(leaf *grammar.Node, ctx matchContext, st MatchState) []MatchState {
	name := leaf.Literal.Text(ctx.doc.src)
	if ctx.hasNextPositional(st) {
		st2 := st.Clone()
		p := ctx.consumePositional(&st2)
		arg := st2.OptionMap[name]
		if arg == nil {
			arg = &Argument{}
			st2.OptionMap[name] = arg
		}
		arg.Count++
		arg.Values = append(arg.Values, ctx.argv[p.ArgvIndex])
		return []MatchState{st2}
	}
	if !ctx.flags.Has(MatchAllowIncomplete) {
		return nil
	}
	st2 := st.Clone()
	if ctx.flags.Has(GenerateSuggestions) {
		st2.SuggestedNextArguments[name] = true
	}
	return []MatchState{st2}
}
