// Package httpapi exposes the lyrics, story and search endpoints consumed by
// the web frontend.
package httpapi

import (
	"context"
	"encoding/json"
	"math/rand"
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"vietsong-backend/internal/lyrics"
	"vietsong-backend/internal/search"
	"vietsong-backend/internal/story"
	"vietsong-backend/pkg/titleparse"
)

// LyricsResolver is the lyrics pipeline dependency.
type LyricsResolver interface {
	Resolve(ctx context.Context, req lyrics.Request) lyrics.Resolution
}

// StoryGenerator is the song-story dependency.
type StoryGenerator interface {
	Generate(ctx context.Context, title, artist string) story.Story
}

// Handler routes API requests to the core services.
type Handler struct {
	resolver LyricsResolver
	stories  StoryGenerator
	catalog  []search.Song
	router   *http.ServeMux
	newRNG   func() *rand.Rand
}

// NewHandler wires routes. catalog feeds the demo-mode search fallback.
func NewHandler(resolver LyricsResolver, stories StoryGenerator, catalog []search.Song) *Handler {
	h := &Handler{
		resolver: resolver,
		stories:  stories,
		catalog:  catalog,
		router:   http.NewServeMux(),
		newRNG: func() *rand.Rand {
			return rand.New(rand.NewSource(time.Now().UnixNano()))
		},
	}
	h.routes()
	return h
}

func (h *Handler) routes() {
	h.router.HandleFunc("GET /health", h.handleHealth)
	h.router.HandleFunc("GET /lyrics", h.handleLyrics)
	h.router.HandleFunc("GET /story", h.handleStory)
	h.router.HandleFunc("GET /search", h.handleSearch)
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	requestID := uuid.NewString()
	reqLogger := log.With().Str("component", "httpapi").Str("request_id", requestID).Logger()
	start := time.Now()

	w.Header().Set("X-Request-ID", requestID)
	h.router.ServeHTTP(w, r.WithContext(reqLogger.WithContext(r.Context())))

	reqLogger.Info().
		Str("method", r.Method).
		Str("path", r.URL.Path).
		Dur("elapsed", time.Since(start)).
		Msg("Request handled")
}

func (h *Handler) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// lyricsResponse is the wire envelope for GET /lyrics.
type lyricsResponse struct {
	Success    bool          `json:"success"`
	Lyrics     []lyrics.Line `json:"lyrics"`
	Synced     bool          `json:"synced"`
	Source     string        `json:"source,omitempty"`
	Status     string        `json:"status,omitempty"`
	TrackName  string        `json:"trackName,omitempty"`
	ArtistName string        `json:"artistName,omitempty"`
	Error      string        `json:"error,omitempty"`
}

// handleLyrics resolves lyrics for a noisy (title, artist) pair. The only
// surfaced failure is a missing title; everything else degrades to a
// placeholder inside the resolver and still answers 200.
func (h *Handler) handleLyrics(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	rawTitle := q.Get("title")
	if rawTitle == "" {
		writeJSON(w, http.StatusBadRequest, lyricsResponse{
			Success: false,
			Lyrics:  []lyrics.Line{},
			Error:   "Title is required",
		})
		return
	}

	duration, _ := strconv.ParseFloat(q.Get("duration"), 64)
	if duration < 0 {
		duration = 0
	}

	candidates := titleparse.SongTitleCandidates(rawTitle)
	fullTitle := rawTitle
	if len(candidates) > 0 {
		fullTitle = candidates[0]
	}
	artists := titleparse.ArtistCandidates(q.Get("artist"))

	res := h.resolver.Resolve(r.Context(), lyrics.Request{
		Title:     titleparse.ShortTitle(rawTitle),
		FullTitle: fullTitle,
		Artist:    artists[0],
		Duration:  duration,
	})

	zerolog.Ctx(r.Context()).Info().
		Str("title", rawTitle).
		Str("source", string(res.Source)).
		Bool("synced", res.Synced).
		Int("lines", len(res.Lines)).
		Msg("Lyrics resolved")

	writeJSON(w, http.StatusOK, lyricsResponse{
		Success:    true,
		Lyrics:     res.Lines,
		Synced:     res.Synced,
		Source:     string(res.Source),
		Status:     string(res.Status),
		TrackName:  res.TrackName,
		ArtistName: res.ArtistName,
	})
}

type storyResponse struct {
	Success bool         `json:"success"`
	Story   *story.Story `json:"story,omitempty"`
	Error   string       `json:"error,omitempty"`
}

func (h *Handler) handleStory(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	title := q.Get("title")
	if title == "" {
		writeJSON(w, http.StatusBadRequest, storyResponse{Success: false, Error: "Title is required"})
		return
	}

	s := h.stories.Generate(r.Context(), titleparse.ShortTitle(title), q.Get("artist"))
	writeJSON(w, http.StatusOK, storyResponse{Success: true, Story: &s})
}

type searchResponse struct {
	Success bool           `json:"success"`
	Results []search.Match `json:"results"`
	Error   string         `json:"error,omitempty"`
}

// handleSearch ranks the demo catalog; it serves when no live video-search
// key is configured.
func (h *Handler) handleSearch(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("q")
	if query == "" {
		writeJSON(w, http.StatusBadRequest, searchResponse{Success: false, Results: []search.Match{}, Error: "Query is required"})
		return
	}

	results := search.Rank(query, h.catalog, h.newRNG())
	writeJSON(w, http.StatusOK, searchResponse{Success: true, Results: results})
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		log.Error().Err(err).Msg("Failed to encode response")
	}
}
