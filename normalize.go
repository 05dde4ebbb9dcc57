package attrs

import (
	"strings"
	"unicode"
)

// Normalize canonicalizes an attribute key: an underscore is inserted between
// a non-uppercase rune and an immediately following uppercase rune, then the
// whole string is lowercased.  The function is pure and idempotent; every
// keyed Bag operation routes its key through it.
//
//	Normalize("fooBar")           // "foo_bar"
//	Normalize("someMixedCASEKey") // "some_mixed_casekey"
//	Normalize("plain")            // "plain"
func Normalize(raw string) string {
	var b strings.Builder
	b.Grow(len(raw) + 2)
	prevUpper := false
	for i, r := range raw {
		upper := unicode.IsUpper(r)
		if upper && i > 0 && !prevUpper {
			b.WriteByte('_')
		}
		b.WriteRune(unicode.ToLower(r))
		prevUpper = upper
	}
	return b.String()
}
