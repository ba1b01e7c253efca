package lrclib

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSearchDecodesResults(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Diễm Xưa", r.URL.Query().Get("track_name"))
		assert.Equal(t, "Khánh Ly", r.URL.Query().Get("artist_name"))
		assert.Contains(t, r.Header.Get("User-Agent"), "vietsong-backend")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`[{"id":1,"trackName":"Diễm Xưa","artistName":"Khánh Ly","duration":272,"syncedLyrics":"[00:12.00]Mưa vẫn mưa bay"}]`))
	}))
	defer server.Close()

	client := NewClient(WithBaseURL(server.URL))
	tracks, err := client.Search(context.Background(), "Diễm Xưa", "Khánh Ly")
	require.NoError(t, err)
	require.Len(t, tracks, 1)
	assert.True(t, tracks[0].HasLyrics())
}

func TestSearchRetriesOnServerError(t *testing.T) {
	hits := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits++
		if hits <= 2 {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`[]`))
	}))
	defer server.Close()

	client := NewClient(WithBaseURL(server.URL), WithHTTPClient(&http.Client{Timeout: time.Second}))
	tracks, err := client.Search(context.Background(), "x", "")
	require.NoError(t, err)
	assert.Empty(t, tracks)
	assert.Equal(t, 3, hits)
}

func TestSearchGivesUpAfterRetries(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer server.Close()

	client := NewClient(WithBaseURL(server.URL))
	_, err := client.Search(context.Background(), "x", "")
	require.Error(t, err)
}

func TestBestMatchPrefersSynced(t *testing.T) {
	tracks := []Track{
		{ID: 1, TrackName: "Diễm Xưa", ArtistName: "Khánh Ly", Duration: 272, PlainLyrics: "Mưa vẫn mưa bay"},
		{ID: 2, TrackName: "Diễm Xưa", ArtistName: "Khánh Ly", Duration: 280, SyncedLyrics: "[00:12.00]Mưa vẫn mưa bay"},
	}

	best := BestMatch(tracks, "Diễm Xưa", "Khánh Ly", 272)
	require.NotNil(t, best)
	assert.Equal(t, 2, best.ID)
}

func TestBestMatchDurationProximity(t *testing.T) {
	tracks := []Track{
		{ID: 1, TrackName: "Hạ Trắng", ArtistName: "Khánh Ly", Duration: 180, SyncedLyrics: "[00:01.00]a"},
		{ID: 2, TrackName: "Hạ Trắng", ArtistName: "Khánh Ly", Duration: 239, SyncedLyrics: "[00:01.00]a"},
	}

	best := BestMatch(tracks, "Hạ Trắng", "Khánh Ly", 240)
	require.NotNil(t, best)
	assert.Equal(t, 2, best.ID)
}

func TestBestMatchSkipsEmptyEntries(t *testing.T) {
	tracks := []Track{
		{ID: 1, TrackName: "Hạ Trắng", ArtistName: "Khánh Ly", Instrumental: true},
		{ID: 2, TrackName: "Hạ Trắng (Live)", ArtistName: "Hồng Nhung", PlainLyrics: "Gọi nắng"},
	}

	best := BestMatch(tracks, "Hạ Trắng", "Khánh Ly", 0)
	require.NotNil(t, best)
	assert.Equal(t, 2, best.ID)

	assert.Nil(t, BestMatch([]Track{{ID: 3, TrackName: "x"}}, "x", "", 0))
}
