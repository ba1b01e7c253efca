// Package lrclib is a client for the lrclib.net lyrics database.
package lrclib

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
)

var logger = log.With().Str("component", "lrclib").Logger()

const defaultBaseURL = "https://lrclib.net/api"

// Track is one search result. SyncedLyrics is LRC text when the entry
// carries authored timestamps; PlainLyrics is the untimed text.
type Track struct {
	ID           int     `json:"id"`
	TrackName    string  `json:"trackName"`
	ArtistName   string  `json:"artistName"`
	AlbumName    string  `json:"albumName"`
	Duration     float64 `json:"duration"`
	Instrumental bool    `json:"instrumental"`
	PlainLyrics  string  `json:"plainLyrics"`
	SyncedLyrics string  `json:"syncedLyrics"`
}

// HasLyrics reports whether the track carries any usable lyrics text.
func (t *Track) HasLyrics() bool {
	return strings.TrimSpace(t.SyncedLyrics) != "" || strings.TrimSpace(t.PlainLyrics) != ""
}

// Client queries the lrclib search API with retries.
type Client struct {
	httpClient     *http.Client
	baseURL        string
	requestTimeout time.Duration
	maxRetries     int
}

// Option customizes a Client.
type Option func(*Client)

// WithBaseURL overrides the API base URL (tests point it at httptest).
func WithBaseURL(u string) Option {
	return func(c *Client) { c.baseURL = strings.TrimRight(u, "/") }
}

// WithHTTPClient overrides the underlying HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

// NewClient creates a client with a 5 second per-request timeout.
func NewClient(opts ...Option) *Client {
	c := &Client{
		httpClient:     &http.Client{Timeout: 5 * time.Second},
		baseURL:        defaultBaseURL,
		requestTimeout: 5 * time.Second,
		maxRetries:     2,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Search runs one /search query. The artist parameter may be empty.
func (c *Client) Search(ctx context.Context, title, artist string) ([]Track, error) {
	timeoutCtx, cancel := context.WithTimeout(ctx, c.requestTimeout)
	defer cancel()

	params := url.Values{}
	params.Set("track_name", title)
	if artist != "" {
		params.Set("artist_name", artist)
	}
	searchURL := fmt.Sprintf("%s/search?%s", c.baseURL, params.Encode())

	resp, err := c.doWithRetry(timeoutCtx, searchURL)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	var tracks []Track
	if err := json.NewDecoder(resp.Body).Decode(&tracks); err != nil {
		return nil, fmt.Errorf("failed to decode search response: %w", err)
	}

	logger.Debug().Int("results", len(tracks)).Str("title", title).Str("artist", artist).Msg("Search finished")
	return tracks, nil
}

// FindBest runs Search and picks the best candidate: title/artist containment
// first, then duration proximity, preferring entries with synced lyrics.
// Returns nil when nothing usable came back.
func (c *Client) FindBest(ctx context.Context, title, artist string, duration float64) (*Track, error) {
	tracks, err := c.Search(ctx, title, artist)
	if err != nil {
		return nil, err
	}
	if len(tracks) == 0 {
		return nil, nil
	}
	best := BestMatch(tracks, title, artist, duration)
	if best == nil || !best.HasLyrics() {
		return nil, nil
	}
	return best, nil
}

func (c *Client) doWithRetry(ctx context.Context, rawURL string) (*http.Response, error) {
	var resp *http.Response
	var err error

	for attempt := 0; attempt <= c.maxRetries; attempt++ {
		if attempt > 0 {
			logger.Info().Int("attempt", attempt).Msg("Retrying lrclib request")
			select {
			case <-time.After(time.Duration(attempt*500) * time.Millisecond):
			case <-ctx.Done():
				return nil, ctx.Err()
			}
		}

		req, reqErr := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
		if reqErr != nil {
			return nil, fmt.Errorf("failed to create request: %w", reqErr)
		}
		req.Header.Set("User-Agent", "vietsong-backend/1.0 (https://lrclib.net)")

		resp, err = c.httpClient.Do(req)
		if err == nil && resp.StatusCode == http.StatusOK {
			return resp, nil
		}
		if err != nil {
			logger.Warn().Err(err).Int("attempt", attempt+1).Msg("lrclib request failed")
		} else {
			logger.Warn().Int("status", resp.StatusCode).Int("attempt", attempt+1).Msg("lrclib request returned non-OK status")
			resp.Body.Close()
		}
	}

	if err != nil {
		return nil, fmt.Errorf("request failed after %d attempts: %w", c.maxRetries+1, err)
	}
	return nil, fmt.Errorf("request failed after %d attempts with status %d", c.maxRetries+1, resp.StatusCode)
}

// BestMatch selects the most plausible track for (title, artist, duration).
func BestMatch(tracks []Track, title, artist string, duration float64) *Track {
	if len(tracks) == 0 {
		return nil
	}

	var exact, titleOnly []*Track
	for i := range tracks {
		t := &tracks[i]
		if !t.HasLyrics() {
			continue
		}
		switch {
		case containsFold(t.TrackName, title) && (artist == "" || containsFold(t.ArtistName, artist)):
			exact = append(exact, t)
		case containsFold(t.TrackName, title):
			titleOnly = append(titleOnly, t)
		}
	}

	pool := exact
	if len(pool) == 0 {
		pool = titleOnly
	}
	if len(pool) == 0 {
		for i := range tracks {
			if tracks[i].HasLyrics() {
				pool = append(pool, &tracks[i])
			}
		}
	}
	if len(pool) == 0 {
		return nil
	}

	// Synced entries beat plain ones; duration proximity breaks ties.
	best := pool[0]
	for _, t := range pool[1:] {
		if better(t, best, duration) {
			best = t
		}
	}
	return best
}

func better(a, b *Track, duration float64) bool {
	aSynced := strings.TrimSpace(a.SyncedLyrics) != ""
	bSynced := strings.TrimSpace(b.SyncedLyrics) != ""
	if aSynced != bSynced {
		return aSynced
	}
	if duration <= 0 {
		return false
	}
	return durationDiff(a, duration) < durationDiff(b, duration)
}

func durationDiff(t *Track, duration float64) float64 {
	d := t.Duration - duration
	if d < 0 {
		return -d
	}
	return d
}

func containsFold(s, substr string) bool {
	s = strings.ToLower(strings.TrimSpace(s))
	substr = strings.ToLower(strings.TrimSpace(substr))
	if substr == "" {
		return true
	}
	return strings.Contains(s, substr) || strings.Contains(substr, s)
}
