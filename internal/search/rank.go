// Package search ranks the built-in demo catalog against a free-text query.
// It serves only when no live video-search API key is configured, so the UI
// always has something to show in demo mode.
package search

import (
	"math/rand"
	"sort"
	"strings"

	"github.com/rs/zerolog/log"

	"vietsong-backend/pkg/vnstring"
)

var logger = log.With().Str("component", "search-rank").Logger()

// Song is one demo-catalog entry.
type Song struct {
	ID      string `json:"id"`
	Title   string `json:"title"`
	Artist  string `json:"artist"`
	Snippet string `json:"snippet"`
	Lyrics  string `json:"-"`
	VideoID string `json:"videoId,omitempty"`
}

// Match pairs a catalog song with its 0-100 score for a query.
type Match struct {
	Song       Song `json:"song"`
	MatchScore int  `json:"matchScore"`
}

const maxResults = 5

// Rank scores every catalog song against query and returns at most five
// matches, best first. An empty result set is replaced with three random
// picks at mid-range scores: demo mode never shows a hard empty state.
func Rank(query string, catalog []Song, rng *rand.Rand) []Match {
	normQuery := vnstring.Normalize(query)
	if normQuery == "" {
		return randomPicks(catalog, rng)
	}

	var matches []Match
	for _, song := range catalog {
		score := maxInt(
			fieldScore(normQuery, song.Title, rng),
			fieldScore(normQuery, song.Artist, rng),
			fieldScore(normQuery, song.Snippet, rng),
			lyricsScore(normQuery, song.Lyrics),
		)
		if score > 0 {
			matches = append(matches, Match{Song: song, MatchScore: score})
		}
	}

	sort.SliceStable(matches, func(i, j int) bool { return matches[i].MatchScore > matches[j].MatchScore })
	if len(matches) > maxResults {
		matches = matches[:maxResults]
	}
	if len(matches) == 0 {
		logger.Debug().Str("query", query).Msg("No catalog match, serving random demo picks")
		return randomPicks(catalog, rng)
	}
	return matches
}

// fieldScore scores one text field: substring containment lands in the
// 95-99 band (jitter only for display variety), word overlap in 10-94.
func fieldScore(normQuery, text string, rng *rand.Rand) int {
	normText := vnstring.Normalize(text)
	if normText == "" {
		return 0
	}
	if contains(normText, normQuery) || contains(normQuery, normText) {
		return 95 + rng.Intn(5)
	}
	if sim := vnstring.Similarity(normQuery, normText); sim > 0 {
		return 10 + int(sim*84)
	}
	return 0
}

func lyricsScore(normQuery, lyrics string) int {
	if lyrics == "" {
		return 0
	}
	if contains(vnstring.Normalize(lyrics), normQuery) {
		return 90
	}
	return 0
}

func randomPicks(catalog []Song, rng *rand.Rand) []Match {
	n := 3
	if len(catalog) < n {
		n = len(catalog)
	}
	picks := rng.Perm(len(catalog))[:n]

	out := make([]Match, 0, n)
	for _, i := range picks {
		out = append(out, Match{Song: catalog[i], MatchScore: 50 + rng.Intn(20)})
	}
	return out
}

func contains(haystack, needle string) bool {
	return needle != "" && strings.Contains(haystack, needle)
}

func maxInt(vals ...int) int {
	best := 0
	for _, v := range vals {
		if v > best {
			best = v
		}
	}
	return best
}
