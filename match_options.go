// License: GPLv3 Copyright: 2022, Kovid Goyal, <kovid at kovidgoyal.net>

package docopt

// matchOptions implements spec.md §4.5's match_options: it tries to bind
// every option in optionsInDoc against an unconsumed resolved argv
// occurrence, returning a single successor state (wrapped in a slice, to
// keep the same "set of states" shape every other match function
// returns) when at least one option matched or at least one suggestion
// survived, and nil otherwise.
func matchOptions(optionsInDoc []*Option, st MatchState, ctx matchContext) []MatchState {
	if len(optionsInDoc) == 0 {
		return nil
	}

	st2 := st.Clone()
	consumedKeys := newKeySet()
	matchedAny := false

	type staged struct {
		key  string
		name string
	}
	var candidates []staged

	for _, opt := range optionsInDoc {
		key := opt.KeyRangeText(ctx.doc)
		if consumedKeys.has(key) {
			continue
		}
		found := -1
		for idx, ro := range ctx.resolved {
			if ro.Option.KeyRangeText(ctx.doc) == key && !st2.ConsumedOptions[idx] {
				found = idx
				break
			}
		}
		if found < 0 {
			candidates = append(candidates, staged{key: key, name: opt.CanonicalName(ctx.doc)})
			continue
		}
		st2.ConsumedOptions[found] = true
		consumedKeys.add(key)
		matchedAny = true

		arg := st2.OptionMap[key]
		if arg == nil {
			arg = &Argument{}
			st2.OptionMap[key] = arg
		}
		arg.Count++
		if ctx.resolved[found].HasValue() {
			arg.Values = append(arg.Values, ctx.resolved[found].ValueText(ctx.argv))
		}
	}

	suggestionsAdded := 0
	if ctx.flags.Has(GenerateSuggestions) {
		for _, c := range candidates {
			if consumedKeys.has(c.key) {
				continue
			}
			st2.SuggestedNextArguments[c.name] = true
			suggestionsAdded++
		}
	}

	if !matchedAny && suggestionsAdded == 0 {
		return nil
	}
	return []MatchState{st2}
}
