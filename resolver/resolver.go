// Package resolver matches county names across the three overlay data
// sources. The boundary file, the risk table and disaster reports all spell
// the same county differently ("Nairobi" vs "Nairobi City" vs "nairobi"),
// and no shared numeric id exists, so matching is containment-based and
// deliberately fuzzy.
package resolver

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Normalize lowercases a name, strips diacritics and collapses whitespace.
// The transformer chain carries state, so it is built per call rather than
// shared.
func Normalize(name string) string {
	stripper := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	stripped, _, err := transform.String(stripper, name)
	if err != nil {
		stripped = name
	}
	lowered := strings.ToLower(stripped)
	return strings.Join(strings.Fields(lowered), " ")
}

// Matches reports whether two county names refer to the same county:
// after normalization one must contain the other. Containment in either
// direction covers sources that abbreviate ("Nairobi") as well as ones
// that append qualifiers ("Nairobi City").
func Matches(a, b string) bool {
	na, nb := Normalize(a), Normalize(b)
	if na == "" || nb == "" {
		return false
	}
	return strings.Contains(na, nb) || strings.Contains(nb, na)
}

// BestMatch returns the index of the candidate that best matches name, or
// (-1, false) when nothing matches. When several candidates match, the one
// sharing the longest common substring with name wins; remaining ties go to
// the first candidate in input order, so results are stable.
//
// Overlapping prefixes ("Bungoma" vs "West Bungoma") can still double-match
// a short query; the tie-break picks the closer name rather than erroring.
func BestMatch(name string, candidates []string) (int, bool) {
	target := Normalize(name)
	if target == "" {
		return -1, false
	}

	bestIdx := -1
	bestLen := -1
	for i, cand := range candidates {
		nc := Normalize(cand)
		if nc == "" {
			continue
		}
		if !strings.Contains(target, nc) && !strings.Contains(nc, target) {
			continue
		}
		if l := longestCommonSubstring(target, nc); l > bestLen {
			bestIdx = i
			bestLen = l
		}
	}
	return bestIdx, bestIdx >= 0
}

// longestCommonSubstring returns the length of the longest contiguous
// substring shared by a and b. Classic DP over runes, one rolling row.
func longestCommonSubstring(a, b string) int {
	ra, rb := []rune(a), []rune(b)
	if len(ra) == 0 || len(rb) == 0 {
		return 0
	}

	prev := make([]int, len(rb)+1)
	curr := make([]int, len(rb)+1)
	best := 0
	for i := 1; i <= len(ra); i++ {
		for j := 1; j <= len(rb); j++ {
			if ra[i-1] == rb[j-1] {
				curr[j] = prev[j-1] + 1
				if curr[j] > best {
					best = curr[j]
				}
			} else {
				curr[j] = 0
			}
		}
		prev, curr = curr, prev
	}
	return best
}
