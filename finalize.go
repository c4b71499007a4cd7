// License: GPLv3 Copyright: 2022, Kovid Goyal, <kovid at kovidgoyal.net>

package docopt

import "github.com/usagetree/docopt/internal/grammar"

// unusedArgvIndices reports every argv slot that a winning state neither
// consumed as a positional nor as part of a resolved option occurrence,
// per spec.md §4.5's scoring rule. It marks in two passes: every consumed
// resolved option's name/value slots first, then explicitly unmarks the
// name slot of every unconsumed resolved option — so a combined-short slot
// like "-vv" that supplied two option_clause occurrences, only one of
// which matched, is still reported unused.
func unusedArgvIndices(ctx *matchContext, st MatchState) []int {
	used := make([]bool, len(ctx.argv))
	for i := 0; i < st.NextPositionalIndex; i++ {
		used[ctx.positionals[i].ArgvIndex] = true
	}
	for idx, consumed := range st.ConsumedOptions {
		if !consumed {
			continue
		}
		ro := ctx.resolved[idx]
		used[ro.NameIdx] = true
		if ro.ValueIdx >= 0 {
			used[ro.ValueIdx] = true
		}
	}
	for idx, consumed := range st.ConsumedOptions {
		if consumed {
			continue
		}
		used[ctx.resolved[idx].NameIdx] = false
	}
	var out []int
	for i, u := range used {
		if !u {
			out = append(out, i)
		}
	}
	return out
}

// pickWinner selects the state with the fewest unused argv indices. Ties
// are broken by generation order (the first such state the matcher
// produced), which is itself deterministic since the matcher always
// explores a usage document's alternatives in a fixed left-to-right order.
func pickWinner(ctx *matchContext, states []MatchState) (MatchState, []int, bool) {
	if len(states) == 0 {
		return MatchState{}, nil, false
	}
	bestIdx := 0
	best := unusedArgvIndices(ctx, states[0])
	for i := 1; i < len(states); i++ {
		u := unusedArgvIndices(ctx, states[i])
		if len(u) < len(best) {
			bestIdx, best = i, u
		}
	}
	return states[bestIdx], best, true
}

// fillDefaults assigns each catalog option's [default: ...] text to the
// final option map when the option has a value slot and never occurred.
// Only called under flag_generate_empty_args, per spec.md §4.5's
// finalization note and the scenario in §8.
func fillDefaults(ctx *matchContext, st *MatchState) {
	for _, opt := range ctx.catalog.AllOptions {
		key := opt.KeyRangeText(ctx.doc)
		if _, ok := st.OptionMap[key]; ok {
			continue
		}
		if opt.HasValue() && !opt.DefaultValueRange.Empty() {
			st.OptionMap[key] = &Argument{Values: []string{opt.DefaultValueRange.Text(ctx.doc.src)}}
		}
	}
}

// synthesizeEmptyArgs adds a zero Argument for every known option,
// variable, and fixed command absent from the winning state, gated by
// flag_generate_empty_args (spec.md §6).
func synthesizeEmptyArgs(ctx *matchContext, st *MatchState, usageHead *grammar.Node) {
	for _, opt := range ctx.catalog.AllOptions {
		key := opt.KeyRangeText(ctx.doc)
		if _, ok := st.OptionMap[key]; !ok {
			st.OptionMap[key] = &Argument{}
		}
	}
	for _, name := range grammar.CollectVariables(ctx.doc.src, usageHead) {
		if _, ok := st.OptionMap[name]; !ok {
			st.OptionMap[name] = &Argument{}
		}
	}
	for _, name := range grammar.CollectFixedNames(ctx.doc.src, usageHead) {
		if _, ok := st.OptionMap[name]; !ok {
			st.OptionMap[name] = &Argument{}
		}
	}
}
