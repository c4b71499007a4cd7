// License: GPLv3 Copyright: 2022, Kovid Goyal, <kovid at kovidgoyal.net>

package docopt

// Argument holds the accumulated count and values bound to one name in a
// match state's option map, per spec.md §3.
type Argument struct {
	Count  int
	Values []string
}

func (a *Argument) clone() *Argument {
	c := &Argument{Count: a.Count}
	if a.Values != nil {
		c.Values = append([]string{}, a.Values...)
	}
	return c
}

// MatchState is one candidate derivation of argv against the usage
// grammar, per spec.md §3. States are value-semantic: Clone produces an
// independent copy so that the matcher's branching (every match returns a
// *set* of successor states) never lets one branch's mutation leak into
// another, mirroring tools/cli/types.go's Option/Command Clone methods.
type MatchState struct {
	OptionMap              map[string]*Argument
	NextPositionalIndex    int
	ConsumedOptions        []bool
	SuggestedNextArguments map[string]bool
}

func newMatchState(numResolved int) MatchState {
	return MatchState{
		OptionMap:              map[string]*Argument{},
		ConsumedOptions:        make([]bool, numResolved),
		SuggestedNextArguments: map[string]bool{},
	}
}

// Clone returns an independent deep copy of st.
func (st MatchState) Clone() MatchState {
	om := make(map[string]*Argument, len(st.OptionMap))
	for k, v := range st.OptionMap {
		om[k] = v.clone()
	}
	co := append([]bool{}, st.ConsumedOptions...)
	sugg := make(map[string]bool, len(st.SuggestedNextArguments))
	for k, v := range st.SuggestedNextArguments {
		sugg[k] = v
	}
	return MatchState{OptionMap: om, NextPositionalIndex: st.NextPositionalIndex, ConsumedOptions: co, SuggestedNextArguments: sugg}
}

func popcount(bits []bool) int {
	n := 0
	for _, b := range bits {
		if b {
			n++
		}
	}
	return n
}

// Progress summarizes how much of argv a state has consumed, per spec.md
// §3's "Progress" glossary entry; used as the monotonic termination metric
// for ellipsis loops.
func (st MatchState) Progress() int {
	return st.NextPositionalIndex + popcount(st.ConsumedOptions) + len(st.SuggestedNextArguments)
}
