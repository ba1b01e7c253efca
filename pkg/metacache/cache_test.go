package metacache

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeClock is a settable time source.
type fakeClock struct{ t time.Time }

func (f *fakeClock) now() time.Time {
	return f.t
}

func (f *fakeClock) advance(d time.Duration) {
	f.t = f.t.Add(d)
}

func newTestCache() (*Cache, *fakeClock) {
	clk := &fakeClock{t: time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)}
	return NewWithClock(DefaultTTL, clk.now), clk
}

func TestStoreAndGet(t *testing.T) {
	c, _ := newTestCache()
	defer c.Stop()

	c.Store("Diễm Xưa", "Khánh Ly", Entry{TrackName: "Diễm Xưa", ArtistName: "Khánh Ly", Source: "lrclib", HasLyrics: true})

	got := c.Get("Diem Xua", "Khanh Ly")
	require.NotNil(t, got)
	assert.Equal(t, "lrclib", got.Source)
	assert.True(t, got.HasLyrics)

	assert.Nil(t, c.Get("Hạ Trắng", "Khánh Ly"))
}

func TestGetFallsBackToTitleOnlyKey(t *testing.T) {
	c, _ := newTestCache()
	defer c.Stop()

	// Stored without artist context, queried with one.
	c.Store("Biển Nhớ", "", Entry{TrackName: "Biển Nhớ", Source: "openai", HasLyrics: true})

	got := c.Get("Biển Nhớ", "Khánh Ly")
	require.NotNil(t, got)
	assert.Equal(t, "openai", got.Source)
}

func TestTTLExpiry(t *testing.T) {
	c, clk := newTestCache()
	defer c.Stop()

	c.Store("Mưa Hồng", "Khánh Ly", Entry{Source: "lrclib", HasLyrics: true})
	require.NotNil(t, c.Get("Mưa Hồng", "Khánh Ly"))

	clk.advance(31 * time.Minute)

	assert.Nil(t, c.Get("Mưa Hồng", "Khánh Ly"))
	// The expired read evicted the entry, not just hid it.
	assert.Equal(t, 0, c.Len())
}

func TestOverwriteRefreshesFoundAt(t *testing.T) {
	c, clk := newTestCache()
	defer c.Stop()

	c.Store("Hạ Trắng", "Khánh Ly", Entry{Source: "lrclib", HasLyrics: true})
	clk.advance(25 * time.Minute)
	c.Store("Hạ Trắng", "Khánh Ly", Entry{Source: "openai", HasLyrics: true})
	clk.advance(20 * time.Minute)

	got := c.Get("Hạ Trắng", "Khánh Ly")
	require.NotNil(t, got)
	assert.Equal(t, "openai", got.Source)
}

func TestSweep(t *testing.T) {
	c, clk := newTestCache()
	defer c.Stop()

	c.Store("a", "", Entry{Source: "lrclib"})
	c.Store("b", "", Entry{Source: "lrclib"})
	clk.advance(31 * time.Minute)
	c.Store("c", "", Entry{Source: "lrclib"})

	purged := c.Sweep()
	assert.Equal(t, 2, purged)
	assert.Equal(t, 1, c.Len())
	require.NotNil(t, c.Get("c", ""))
}
