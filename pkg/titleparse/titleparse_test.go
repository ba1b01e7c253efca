package titleparse

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCleanTitle(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"Diễm Xưa - Khánh Ly (Official Audio)", "Diễm Xưa - Khánh Ly"},
		{"Hạ Trắng [Official MV]", "Hạ Trắng"},
		{"Mưa Hồng | Official Music Video", "Mưa Hồng"},
		{"Còn Tuổi Nào Cho Em (Lyric Video) HD", "Còn Tuổi Nào Cho Em"},
		{"Tình Nhớ Vietsub", "Tình Nhớ"},
		{"Biển Nhớ", "Biển Nhớ"},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, CleanTitle(c.in), "input %q", c.in)
	}
}

// Each rule in the table should be testable in isolation.
func TestTitleRulesIndividually(t *testing.T) {
	byName := map[string]CleanupRule{}
	for _, r := range TitleRules {
		byName[r.Name] = r
	}

	r := byName["trailing-annotations"]
	require.NotNil(t, r.Pattern)
	assert.Equal(t, "Em Gái Mưa", r.Pattern.ReplaceAllString("Em Gái Mưa MV", r.Replace))
	// Must not eat a suffix inside a real word.
	assert.Equal(t, "Chiếc Khăn Gió Ấm", r.Pattern.ReplaceAllString("Chiếc Khăn Gió Ấm", r.Replace))

	r = byName["bracketed-qualifiers"]
	assert.Equal(t, "Nơi Này Có Anh", r.Pattern.ReplaceAllString("Nơi Này Có Anh (Cover by X)", r.Replace))
	assert.Equal(t, "Đi Về Nhà", r.Pattern.ReplaceAllString("Đi Về Nhà [Official Remix]", r.Replace))
}

func TestSongTitleCandidates(t *testing.T) {
	got := SongTitleCandidates("Diễm Xưa - Khánh Ly (Official Audio)")
	require.NotEmpty(t, got)
	assert.Equal(t, "Diễm Xưa - Khánh Ly", got[0])
	assert.Contains(t, got, "Diễm Xưa")
	assert.Contains(t, got, "Khánh Ly")

	// Filler words after the dash are stripped from the secondary candidate.
	got = SongTitleCandidates("Đêm Buồn Tỉnh Lẻ - Siêu Phẩm Bolero Hải Ngoại")
	assert.Contains(t, got, "Đêm Buồn Tỉnh Lẻ")

	// No duplicates even when segments coincide.
	got = SongTitleCandidates("Biển Nhớ")
	assert.Equal(t, []string{"Biển Nhớ"}, got)
}

func TestShortTitle(t *testing.T) {
	assert.Equal(t, "Diễm Xưa", ShortTitle("Diễm Xưa - Khánh Ly (Official Audio)"))
	assert.Equal(t, "Biển Nhớ", ShortTitle("Biển Nhớ"))
}

func TestArtistCandidates(t *testing.T) {
	got := ArtistCandidates("Khánh Ly Official")
	assert.Equal(t, []string{"Khánh Ly", ""}, got)

	got = ArtistCandidates("SonTungMTP - Topic")
	assert.Equal(t, []string{"SonTungMTP", ""}, got)

	got = ArtistCandidates("Hà Anh Tuấn - Viva Music")
	require.Len(t, got, 3)
	assert.Equal(t, "Hà Anh Tuấn", got[1])
	assert.Equal(t, "", got[2])

	// Always keeps the no-artist terminal candidate.
	assert.Equal(t, []string{""}, ArtistCandidates("   "))
}
