// License: GPLv3 Copyright: 2022, Kovid Goyal, <kovid at kovidgoyal.net>

package docopt

// Flags is a bitset controlling matcher and tokenizer behavior, per
// spec.md §6. It is passed explicitly to every call rather than read off
// global or instance state, mirroring the teacher's preference for an
// explicit *Command tree over package-level configuration.
type Flags uint8

const (
	// ResolveUnambiguousPrefixes allows a long option to be abbreviated to
	// any prefix that uniquely identifies it within its dash-count type.
	ResolveUnambiguousPrefixes Flags = 1 << iota
	// ShortOptionsStrictSeparators requires an argv occurrence's separator
	// style to match the catalog option's declared separator exactly.
	ShortOptionsStrictSeparators
	// GenerateSuggestions enables completion-output bookkeeping in the
	// tokenizer and matcher.
	GenerateSuggestions
	// GenerateEmptyArgs causes the finalizer to synthesize empty entries
	// for every known option, variable, and fixed command absent from the
	// winning match.
	GenerateEmptyArgs
	// MatchAllowIncomplete accepts states with pending positionals or
	// options, used for shell-completion style partial matches.
	MatchAllowIncomplete
)

// Has reports whether all bits in want are set in f.
func (f Flags) Has(want Flags) bool { return f&want == want }
