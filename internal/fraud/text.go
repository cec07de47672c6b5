package fraud

import "strings"

// TextSimilarity is the Jaccard similarity of two free-text fields over their
// lower-cased whitespace tokens. A blank side scores 0, never 1: two empty
// fields must not read as identical.
func TextSimilarity(a, b string) float64 {
	if a == "" || b == "" {
		return 0
	}
	wa := tokenSet(a)
	wb := tokenSet(b)
	if len(wa) == 0 || len(wb) == 0 {
		return 0
	}
	inter := 0
	for w := range wa {
		if _, ok := wb[w]; ok {
			inter++
		}
	}
	union := len(wa) + len(wb) - inter
	return float64(inter) / float64(union)
}

func tokenSet(s string) map[string]struct{} {
	set := make(map[string]struct{})
	for _, w := range strings.Fields(strings.ToLower(s)) {
		set[w] = struct{}{}
	}
	return set
}
