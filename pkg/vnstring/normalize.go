// Package vnstring provides Vietnamese-aware string normalization and
// similarity scoring shared by search ranking and the verified-song index.
package vnstring

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// stripMarks decomposes to NFD and drops combining diacritical marks.
var stripMarks = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// Normalize lower-cases s and removes Vietnamese diacritics.
// "đ" is a standalone letter, not a base+mark composition, so NFD does not
// touch it and it needs an explicit mapping.
func Normalize(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	s = strings.ReplaceAll(s, "đ", "d")
	out, _, err := transform.String(stripMarks, s)
	if err != nil {
		return s
	}
	return out
}

// Similarity scores word-set overlap between a and b on a [0,1] scale:
// the number of words of a that also appear in b, divided by the larger
// word count. Whole-word overlap only, order- and duplicate-insensitive.
func Similarity(a, b string) float64 {
	wordsA := strings.Fields(Normalize(a))
	wordsB := strings.Fields(Normalize(b))
	if len(wordsA) == 0 || len(wordsB) == 0 {
		return 0
	}

	setB := make(map[string]struct{}, len(wordsB))
	for _, w := range wordsB {
		setB[w] = struct{}{}
	}

	seen := make(map[string]struct{}, len(wordsA))
	matches := 0
	for _, w := range wordsA {
		if _, dup := seen[w]; dup {
			continue
		}
		seen[w] = struct{}{}
		if _, ok := setB[w]; ok {
			matches++
		}
	}

	denom := len(seen)
	if len(setB) > denom {
		denom = len(setB)
	}
	return float64(matches) / float64(denom)
}

// Key builds the composite cache key for a (title, artist) pair: normalized,
// non-alphanumerics removed, joined with "|". Artist may be empty.
func Key(title, artist string) string {
	return squash(Normalize(title)) + "|" + squash(Normalize(artist))
}

func squash(s string) string {
	var b strings.Builder
	for _, r := range s {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(r)
		}
	}
	return b.String()
}
