// License: GPLv3 Copyright: 2022, Kovid Goyal, <kovid at kovidgoyal.net>

package grammar

// Walk visits every leaf clause (option_clause, fixed_clause,
// variable_clause) reachable from a usage chain, calling visit for each.
// Used by this package's CollectVariables and CollectFixedNames, which back
// the root package's GetVariables and its empty-argument synthesis.
func Walk(head *Node, visit func(leaf *Node)) {
	for u := head; u != nil; u = u.NextUsage {
		walkAlternationList(u.Body, visit)
	}
}

func walkAlternationList(n *Node, visit func(leaf *Node)) {
	if n == nil {
		return
	}
	walkExpressionList(n.Left, visit)
	if n.Right != nil {
		walkAlternationList(n.Right.Continuation, visit)
	}
}

func walkExpressionList(n *Node, visit func(leaf *Node)) {
	if n == nil {
		return
	}
	walkExpression(n.Head, visit)
	if n.Tail != nil {
		walkExpressionList(n.Tail.Inner, visit)
	}
}

func walkExpression(n *Node, visit func(leaf *Node)) {
	if n == nil {
		return
	}
	switch n.Production {
	case ProdSimple:
		if n.Child != nil && n.Child.Leaf != nil {
			visit(n.Child.Leaf)
		}
	case ProdParenGroup, ProdBracketGroup:
		walkAlternationList(n.Child, visit)
	case ProdOptionsShortcut:
		// leaves are resolved dynamically against the shortcut catalog by
		// the matcher; nothing fixed to visit here.
	}
}

// CollectVariables returns the <name> text of every variable_clause
// reachable from head, in first-occurrence order, deduped.
func CollectVariables(src string, head *Node) []string {
	seen := map[string]bool{}
	var out []string
	Walk(head, func(leaf *Node) {
		if leaf.Kind != KindVariableClause {
			return
		}
		text := leaf.Literal.Text(src)
		if !seen[text] {
			seen[text] = true
			out = append(out, text)
		}
	})
	return out
}

// CollectFixedNames returns the literal text of every fixed_clause
// reachable from head, in first-occurrence order, deduped.
func CollectFixedNames(src string, head *Node) []string {
	seen := map[string]bool{}
	var out []string
	Walk(head, func(leaf *Node) {
		if leaf.Kind != KindFixedClause {
			return
		}
		text := leaf.Literal.Text(src)
		if !seen[text] {
			seen[text] = true
			out = append(out, text)
		}
	})
	return out
}

// ProgramNames returns the program-name text of every usage line in the
// chain, in order (not deduped — the root package dedups per spec.md
// §4.6's get_command_names).
func ProgramNames(src string, head *Node) []string {
	var out []string
	for u := head; u != nil; u = u.NextUsage {
		out = append(out, u.ProgramName.Text(src))
	}
	return out
}
