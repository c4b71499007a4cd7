// License: GPLv3 Copyright: 2022, Kovid Goyal, <kovid at kovidgoyal.net>

package docopt

import "github.com/usagetree/docopt/internal/source"

// Range is a half-open [Start, Start+Length) view into a Doc's source text.
// The doc text is the single owner of all string data; Range values are
// handed around instead of copied substrings. It is a type alias for
// internal/source.Range so that internal/grammar (the usage-grammar
// builder, an external collaborator per spec.md §1) can refer to the same
// span type without this package importing grammar and grammar importing
// this package.
type Range = source.Range

func rangeFrom(start, end int) Range { return source.From(start, end) }
