// License: GPLv3 Copyright: 2022, Kovid Goyal, <kovid at kovidgoyal.net>

// Package grammar builds and represents the usage-grammar tree that
// spec.md §1 treats as an external collaborator: "the grammar parser that
// turns the Usage: text range into a tree ... the matcher receives this
// tree and only reads it". This module still has to ship a working one to
// be runnable end to end, grounded on other_examples/syncthing-syncthing's
// docopt port and on original_source/docopt_fish.cpp, but it is kept
// intentionally simple and lightly tested relative to the matcher that
// consumes it.
package grammar

import "github.com/usagetree/docopt/internal/source"

type Range = source.Range

// Kind tags the union of node shapes spec.md §4.5 names: usage,
// expression_list, opt_expression_list, alternation_list,
// or_continuation, expression, simple_clause, and the three leaf clauses.
type Kind uint8

const (
	KindUsage Kind = iota
	KindExpressionList
	KindOptExpressionList
	KindAlternationList
	KindOrContinuation
	KindExpression
	KindSimpleClause
	KindOptionClause
	KindFixedClause
	KindVariableClause
)

// Production is the expression node's production, per spec.md §4.5.
type Production uint8

const (
	ProdSimple          Production = 0
	ProdParenGroup       Production = 1
	ProdBracketGroup      Production = 2
	ProdOptionsShortcut    Production = 3
)

// OptionRef identifies, by its textual name, the catalog option an
// option_clause leaf refers to. The matcher (in the root package) resolves
// this against its own Option catalog by comparing NameRange text and
// LeadingDashCount; grammar does not depend on the root package's Option
// type to avoid an import cycle (grammar is the root package's
// collaborator, not the reverse).
type OptionRef struct {
	NameRange        Range
	LeadingDashCount int
}

// Node is a tagged union over every grammar node kind. Only the fields
// relevant to Kind are populated; the matcher switches on Kind the way
// spec.md §9's design note prescribes ("re-express as a tagged union of
// node kinds with a match/dispatch on kind").
type Node struct {
	Kind Kind

	// KindUsage
	ProgramName Range  // the literal program-name text written after Usage:
	Body        *Node  // alternation_list, or nil if the usage line is bare
	NextUsage   *Node  // chained next usage line, or nil

	// KindExpressionList
	Head *Node // expression
	Tail *Node // opt_expression_list (itself an expression_list), or nil

	// KindOptExpressionList wraps an optional expression_list
	Inner *Node

	// KindAlternationList
	Left  *Node // expression_list
	Right *Node // or_continuation, or nil

	// KindOrContinuation wraps the alternation_list on the right of '|'
	Continuation *Node

	// KindExpression
	Production Production
	Ellipsis   bool
	Child      *Node // simple_clause, or alternation_list for paren/bracket groups

	// KindSimpleClause wraps exactly one leaf
	Leaf *Node

	// KindOptionClause
	Option OptionRef

	// KindFixedClause / KindVariableClause
	Literal Range // the fixed word's text, or the variable's <name> text including angle brackets
}
