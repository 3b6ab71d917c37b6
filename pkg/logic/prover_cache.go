package logic

import (
	"sort"
	"strings"
)

// sortStrings sorts s in place, lexicographically byte-by-byte — the
// same ordering Go's sort.Strings uses, named here so sequentKey's
// intent (produce a canonical cache key) reads without a comment.
func sortStrings(s []string) {
	sort.Strings(s)
}

// joinWithNUL concatenates keys with a separator that cannot appear in
// any formula's pretty-print, so distinct multisets of formulas never
// collide into the same cache key.
func joinWithNUL(keys []string) string {
	return strings.Join(keys, "\x00")
}
