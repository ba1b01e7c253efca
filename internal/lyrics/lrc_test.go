package lyrics

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLRC(t *testing.T) {
	lrc := `[00:12.00]Mưa vẫn mưa bay trên tầng tháp cổ
[00:20.50]Dài tay em mấy thuở mắt xanh xao
[ti:Diễm Xưa]
not a lyric line
[00:28]Nghe lá thu mưa reo mòn gót nhỏ`

	lines := ParseLRC(lrc)
	require.Len(t, lines, 3)
	assert.InDelta(t, 12.0, lines[0].Time, 1e-9)
	assert.Equal(t, "Mưa vẫn mưa bay trên tầng tháp cổ", lines[0].Text)
	assert.InDelta(t, 20.5, lines[1].Time, 1e-9)
	assert.InDelta(t, 28.0, lines[2].Time, 1e-9)
}

func TestParseLRCFractionDigits(t *testing.T) {
	lines := ParseLRC("[00:10.5]a\n[00:11.49]b\n[00:12.490]c")
	require.Len(t, lines, 3)
	// 1 digit = tenths, 2 digits = centiseconds, 3 digits = milliseconds.
	assert.InDelta(t, 10.5, lines[0].Time, 1e-9)
	assert.InDelta(t, 11.49, lines[1].Time, 1e-9)
	assert.InDelta(t, 12.49, lines[2].Time, 1e-9)
}

func TestParseLRCSortsOutOfOrderTags(t *testing.T) {
	lines := ParseLRC("[01:00.00]third\n[00:10.00]first\n[00:30.00]second")
	require.Len(t, lines, 3)
	assert.Equal(t, "first", lines[0].Text)
	assert.Equal(t, "second", lines[1].Text)
	assert.Equal(t, "third", lines[2].Text)
	for i := 1; i < len(lines); i++ {
		assert.LessOrEqual(t, lines[i-1].Time, lines[i].Time)
	}
}

func TestParseLRCDropsEmptyTextAndBadTags(t *testing.T) {
	lines := ParseLRC("[00:10.00]\n[xx:yy]broken\nplain text\n[00:12.00]kept")
	require.Len(t, lines, 1)
	assert.Equal(t, "kept", lines[0].Text)
}

func TestParsePlainLyricsTiming(t *testing.T) {
	text := "một\n\nhai\nba\nbốn\n"
	lines := ParsePlainLyrics(text, 240)

	require.Len(t, lines, 4)
	assert.InDelta(t, 15.0, lines[0].Time, 1e-9)
	for i := 1; i < len(lines); i++ {
		assert.Less(t, lines[i-1].Time, lines[i].Time)
	}
	// 240s - 15 intro - 20 outro = 205s window over 4 lines.
	assert.InDelta(t, 15.0+205.0/4.0, lines[1].Time, 1e-9)
	// No line scheduled into the outro gap.
	assert.Less(t, lines[len(lines)-1].Time, 240.0-outroGap+1e-9)
}

func TestParsePlainLyricsShortDurationFloor(t *testing.T) {
	text := strings.Repeat("câu hát\n", 10)

	// Unknown duration still yields at least 3 seconds per line.
	lines := ParsePlainLyrics(text, 0)
	require.Len(t, lines, 10)
	assert.InDelta(t, 15.0, lines[0].Time, 1e-9)
	assert.InDelta(t, 3.0, lines[1].Time-lines[0].Time, 1e-9)
}

func TestParsePlainLyricsEmpty(t *testing.T) {
	assert.Nil(t, ParsePlainLyrics("", 200))
	assert.Nil(t, ParsePlainLyrics("\n  \n", 200))
}

func TestPlaceholderLyrics(t *testing.T) {
	lines := PlaceholderLyrics("Diễm Xưa", "Khánh Ly")
	require.NotEmpty(t, lines)
	assert.Contains(t, lines[0].Text, "Diễm Xưa")
	assert.Contains(t, lines[1].Text, "Khánh Ly")
	for i := 1; i < len(lines); i++ {
		assert.Less(t, lines[i-1].Time, lines[i].Time)
	}

	// Even with no metadata at all there is a non-empty sequence.
	lines = PlaceholderLyrics("", "")
	require.NotEmpty(t, lines)
	for _, l := range lines {
		assert.NotEmpty(t, l.Text)
	}
}
