package verified

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fixtureIndex() *Index {
	return NewIndex([]Song{
		{
			ID:                "diem-xua",
			Title:             "Diễm Xưa",
			AlternativeTitles: []string{"Diem Xua", "Utsukushii Mukashi"},
			Artist:            "Khánh Ly",
			Composer:          "Trịnh Công Sơn",
			Confidence:        "verified",
		},
		{
			ID:         "ha-trang",
			Title:      "Hạ Trắng",
			Artist:     "Khánh Ly",
			Composer:   "Trịnh Công Sơn",
			Confidence: "verified",
		},
		{
			ID:         "em-gai-mua",
			Title:      "Em Gái Mưa",
			Artist:     "Hương Tràm",
			Composer:   "Mr. Siro",
			Confidence: "verified",
		},
	})
}

func TestSearchExactWithArtist(t *testing.T) {
	idx := fixtureIndex()

	res := idx.Search("Diem Xua", "Khanh Ly")
	require.True(t, res.Found)
	assert.Equal(t, "diem-xua", res.Song.ID)
	assert.Equal(t, MatchExact, res.MatchType)
	assert.Equal(t, 1.0, res.MatchScore)
}

func TestSearchExactViaAlternativeTitle(t *testing.T) {
	idx := fixtureIndex()

	// An exact alternative-title hit must win over any fuzzy candidate.
	res := idx.Search("Utsukushii Mukashi", "")
	require.True(t, res.Found)
	assert.Equal(t, "diem-xua", res.Song.ID)
	assert.Equal(t, MatchExact, res.MatchType)
	assert.Equal(t, 1.0, res.MatchScore)
}

func TestSearchExactArtistUnmatched(t *testing.T) {
	idx := fixtureIndex()

	res := idx.Search("Hạ Trắng", "Mỹ Tâm")
	require.True(t, res.Found)
	assert.Equal(t, "ha-trang", res.Song.ID)
	assert.Equal(t, MatchExact, res.MatchType)
	assert.Equal(t, 0.8, res.MatchScore)
}

func TestSearchArtistDisambiguation(t *testing.T) {
	idx := NewIndex([]Song{
		{ID: "a", Title: "Chuyện Tình", Artist: "Ca Sĩ A", Confidence: "verified"},
		{ID: "b", Title: "Chuyện Tình", Artist: "Ca Sĩ B", Confidence: "verified"},
	})

	res := idx.Search("Chuyện Tình", "Ca Sĩ B")
	require.True(t, res.Found)
	assert.Equal(t, "b", res.Song.ID)
	assert.Equal(t, 1.0, res.MatchScore)

	// No artist: first indexed id wins.
	res = idx.Search("Chuyện Tình", "")
	assert.Equal(t, "a", res.Song.ID)
	assert.Equal(t, 1.0, res.MatchScore)
}

func TestSearchPartial(t *testing.T) {
	idx := fixtureIndex()

	res := idx.Search("Em Gái Mưa Remix Tiktok", "")
	require.True(t, res.Found)
	assert.Equal(t, "em-gai-mua", res.Song.ID)
	assert.Equal(t, MatchPartial, res.MatchType)
	assert.Equal(t, 0.7, res.MatchScore)
}

func TestSearchFuzzyThresholdIsStrict(t *testing.T) {
	idx := NewIndex([]Song{
		{ID: "x", Title: "mot hai ba bon nam", Confidence: "verified"},
	})

	// 3 of 5 words overlap, no substring relation: similarity exactly 0.6.
	res := idx.Search("mot hai ba sau bay", "")
	assert.False(t, res.Found)
	assert.Equal(t, MatchNone, res.MatchType)

	// 2 of 3 words (0.667) passes.
	idx = NewIndex([]Song{{ID: "y", Title: "mot hai ba", Confidence: "verified"}})
	res = idx.Search("mot hai tam", "")
	require.True(t, res.Found)
	assert.Equal(t, MatchFuzzy, res.MatchType)
	assert.InDelta(t, 2.0/3.0, res.MatchScore, 1e-9)
}

func TestSearchNoMatch(t *testing.T) {
	idx := fixtureIndex()

	res := idx.Search("Bohemian Rhapsody", "Queen")
	assert.False(t, res.Found)
	assert.Equal(t, MatchNone, res.MatchType)
	assert.Zero(t, res.MatchScore)

	res = idx.Search("", "Khánh Ly")
	assert.False(t, res.Found)
}

func TestCatalogIntegrity(t *testing.T) {
	idx := NewIndex(Catalog())
	require.Greater(t, idx.Len(), 0)

	seen := map[string]bool{}
	for _, s := range idx.Songs() {
		assert.False(t, seen[s.ID], "duplicate id %s", s.ID)
		seen[s.ID] = true
		assert.Equal(t, "verified", s.Confidence)
		assert.NotEmpty(t, s.Title)
		assert.NotEmpty(t, s.CompositionStory)
	}

	res := idx.Search("Diem Xua", "Khanh Ly")
	require.True(t, res.Found)
	assert.Equal(t, "diem-xua", res.Song.ID)
}
