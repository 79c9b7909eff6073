package match

import (
	"strings"
	"unicode"
)

// strippedSuffixes are dropped by NormalizeIdentWithSuffixStrip, longest
// first. Short tokens such as "ts" match too eagerly to be listed.
var strippedSuffixes = []string{"timestamp", "ids", "utc", "id", "at"}

// NormalizeIdent folds an identifier for loose comparison: case is folded
// and the separators '_', '-' and ' ' are dropped, so "CustomerID",
// "customer_id" and "customer-id" all become "customerid".
func NormalizeIdent(s string) string {
	return strings.Map(func(r rune) rune {
		if isSeparator(r) {
			return -1
		}

		return unicode.ToLower(r)
	}, s)
}

// NormalizeIdentWithSuffixStrip normalizes s and then drops one trailing
// bookkeeping token ("OrderedAt" -> "ordered"). A name made only of the
// token is kept whole.
func NormalizeIdentWithSuffixStrip(s string) string {
	n := NormalizeIdent(s)

	for _, suffix := range strippedSuffixes {
		if len(n) > len(suffix) && strings.HasSuffix(n, suffix) {
			return n[:len(n)-len(suffix)]
		}
	}

	return n
}

func isSeparator(r rune) bool {
	return r == '_' || r == '-' || r == ' '
}
