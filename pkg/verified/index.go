// Package verified holds the curated song catalog: entries whose narrative
// content was hand-written and fact-checked, never generated. The index is
// small, so lookup favors precision over recall.
package verified

import (
	"strings"

	"github.com/rs/zerolog/log"

	"vietsong-backend/pkg/vnstring"
)

var logger = log.With().Str("component", "verified-index").Logger()

// Song is one curated catalog entry. Confidence is always "verified" for
// entries in this dataset.
type Song struct {
	ID                string   `json:"id"`
	Title             string   `json:"title"`
	AlternativeTitles []string `json:"alternativeTitles,omitempty"`
	Artist            string   `json:"artist"`
	Composer          string   `json:"composer"`
	Year              int      `json:"year"`
	Genre             string   `json:"genre"`
	Era               string   `json:"era"`
	CompositionStory  string   `json:"compositionStory"`
	HistoricalContext string   `json:"historicalContext,omitempty"`
	Facts             []string `json:"facts,omitempty"`
	Sources           []string `json:"sources,omitempty"`
	Confidence        string   `json:"confidence"`
}

// MatchType classifies how a query matched the index.
type MatchType string

const (
	MatchExact   MatchType = "exact"
	MatchPartial MatchType = "partial"
	MatchFuzzy   MatchType = "fuzzy"
	MatchNone    MatchType = "none"
)

// Result is the outcome of a Search call.
type Result struct {
	Found      bool
	Song       *Song
	MatchScore float64
	MatchType  MatchType
}

// fuzzyThreshold is strict: a similarity of exactly this value is rejected.
// Serving curated narrative under the wrong song is worse than a miss.
const fuzzyThreshold = 0.6

// Index is a read-only lookup over the curated catalog, built once at
// construction. Titles and alternative titles are indexed in normalized form.
type Index struct {
	songs   []Song
	byID    map[string]*Song
	byTitle map[string][]string // normalized title -> song ids, insertion order
	order   []string            // normalized titles in insertion order
}

// NewIndex builds an index over songs. The slice is copied; the index never
// mutates after construction.
func NewIndex(songs []Song) *Index {
	idx := &Index{
		songs:   append([]Song(nil), songs...),
		byID:    make(map[string]*Song, len(songs)),
		byTitle: make(map[string][]string),
	}
	for i := range idx.songs {
		s := &idx.songs[i]
		idx.byID[s.ID] = s
		idx.addTitle(s.Title, s.ID)
		for _, alt := range s.AlternativeTitles {
			idx.addTitle(alt, s.ID)
		}
	}
	logger.Info().Int("songs", len(idx.songs)).Int("indexed_titles", len(idx.byTitle)).Msg("Verified song index built")
	return idx
}

func (idx *Index) addTitle(title, id string) {
	key := vnstring.Normalize(title)
	if key == "" {
		return
	}
	if _, seen := idx.byTitle[key]; !seen {
		idx.order = append(idx.order, key)
	}
	for _, have := range idx.byTitle[key] {
		if have == id {
			return
		}
	}
	idx.byTitle[key] = append(idx.byTitle[key], id)
}

// Get returns a song by id.
func (idx *Index) Get(id string) (*Song, bool) {
	s, ok := idx.byID[id]
	return s, ok
}

// Len returns the number of catalog entries.
func (idx *Index) Len() int { return len(idx.songs) }

// Songs returns the catalog entries in index order.
func (idx *Index) Songs() []Song { return idx.songs }

// Search looks a song up by title, optionally disambiguated by artist.
// Priority order is strict: exact indexed title, substring overlap, then
// whole-word fuzzy similarity above the threshold.
func (idx *Index) Search(title, artist string) Result {
	queryTitle := vnstring.Normalize(title)
	queryArtist := vnstring.Normalize(artist)
	if queryTitle == "" {
		return Result{MatchType: MatchNone}
	}

	// 1. Exact title (or alternative title) match.
	if ids, ok := idx.byTitle[queryTitle]; ok {
		if queryArtist != "" {
			for _, id := range ids {
				s := idx.byID[id]
				if artistOverlaps(s, queryArtist) {
					return Result{Found: true, Song: s, MatchScore: 1.0, MatchType: MatchExact}
				}
			}
			// Artist given but none of the candidates carry it.
			return Result{Found: true, Song: idx.byID[ids[0]], MatchScore: 0.8, MatchType: MatchExact}
		}
		return Result{Found: true, Song: idx.byID[ids[0]], MatchScore: 1.0, MatchType: MatchExact}
	}

	// 2. Partial: indexed title contains the query or vice versa.
	for _, key := range idx.order {
		if strings.Contains(queryTitle, key) || strings.Contains(key, queryTitle) {
			return Result{Found: true, Song: idx.byID[idx.byTitle[key][0]], MatchScore: 0.7, MatchType: MatchPartial}
		}
	}

	// 3. Fuzzy word overlap, best score wins, strict threshold.
	var best *Song
	bestScore := 0.0
	for _, key := range idx.order {
		score := vnstring.Similarity(queryTitle, key)
		if score > bestScore {
			bestScore = score
			best = idx.byID[idx.byTitle[key][0]]
		}
	}
	if best != nil && bestScore > fuzzyThreshold {
		return Result{Found: true, Song: best, MatchScore: bestScore, MatchType: MatchFuzzy}
	}

	return Result{MatchType: MatchNone}
}

func artistOverlaps(s *Song, queryArtist string) bool {
	for _, name := range []string{vnstring.Normalize(s.Artist), vnstring.Normalize(s.Composer)} {
		if name == "" {
			continue
		}
		if strings.Contains(name, queryArtist) || strings.Contains(queryArtist, name) {
			return true
		}
	}
	return false
}
