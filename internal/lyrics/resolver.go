package lyrics

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog/log"

	"vietsong-backend/pkg/ai"
	"vietsong-backend/pkg/lrclib"
	"vietsong-backend/pkg/metacache"
	"vietsong-backend/pkg/rediscache"
)

var logger = log.With().Str("component", "lyrics-resolver").Logger()

// Source tags where a resolution came from.
type Source string

const (
	SourceLRCLib      Source = "lrclib"
	SourceOpenAI      Source = "openai"
	SourcePlaceholder Source = "placeholder"
)

// Status distinguishes a real match from a degraded fallback without
// forcing callers to parse the Source tag.
type Status string

const (
	StatusOK       Status = "ok"
	StatusDegraded Status = "degraded"
)

// Request identifies the track to resolve. Title is the short candidate from
// title extraction; FullTitle the full cleaned title when different.
type Request struct {
	Title     string
	FullTitle string
	Artist    string
	Duration  float64
}

// Resolution is the resolver's typed result. Lines is never empty: the
// terminal fallback is a placeholder sequence with StatusDegraded.
type Resolution struct {
	Lines      []Line
	Source     Source
	Synced     bool
	Status     Status
	Reason     string
	TrackName  string
	ArtistName string
}

// LyricsDB is the external lyrics-database dependency (lrclib in prod).
type LyricsDB interface {
	FindBest(ctx context.Context, title, artist string, duration float64) (*lrclib.Track, error)
}

const (
	dbBranchTimeout = 8 * time.Second
	llmHeadStart    = 2 * time.Second
	minLLMChars     = 50
	minLLMLines     = 5
)

// refusalMarkers flag LLM outputs that decline on copyright grounds instead
// of returning lyrics. Matched case-insensitively.
var refusalMarkers = []string{
	"i can't provide",
	"i cannot provide",
	"i can't share",
	"i cannot share",
	"i'm sorry",
	"i am sorry",
	"copyright",
	"unable to provide",
	"bản quyền",
	"không thể cung cấp",
	"tôi không thể",
	"xin lỗi",
}

// Resolver races the lyrics database against an LLM web-search fallback and
// degrades to a placeholder. It never fails: every internal error terminates
// here as a less precise but present result.
type Resolver struct {
	db         LyricsDB
	aiClient   ai.Client
	meta       *metacache.Cache
	lyricCache *rediscache.Cache // optional, may be nil

	dbTimeout time.Duration
	llmDelay  time.Duration
}

// NewResolver wires the resolver. aiClient and lyricCache may be nil; the
// corresponding branch is then skipped.
func NewResolver(db LyricsDB, aiClient ai.Client, meta *metacache.Cache, lyricCache *rediscache.Cache) *Resolver {
	return &Resolver{
		db:         db,
		aiClient:   aiClient,
		meta:       meta,
		lyricCache: lyricCache,
		dbTimeout:  dbBranchTimeout,
		llmDelay:   llmHeadStart,
	}
}

// Resolve returns lyrics for req. The sequence of fallbacks is cached text,
// cached source short-circuit, database-vs-LLM race, then placeholder.
func (r *Resolver) Resolve(ctx context.Context, req Request) Resolution {
	req.Title = strings.TrimSpace(req.Title)
	req.Artist = strings.TrimSpace(req.Artist)
	req.FullTitle = strings.TrimSpace(req.FullTitle)

	if r.lyricCache != nil {
		if text := r.lyricCache.Get(ctx, req.Title, req.Artist); text != "" {
			if res := r.fromCachedText(req, text); res != nil {
				logger.Info().Str("title", req.Title).Msg("Lyrics cache hit")
				return *res
			}
		}
	}

	// A fresh metadata entry names the source that worked last time; skip
	// the race and go straight there. A miss falls back to the full race,
	// the cache is latency-only.
	if r.meta != nil {
		if entry := r.meta.Get(req.Title, req.Artist); entry != nil && entry.HasLyrics && entry.Source == string(SourceLRCLib) {
			if res := r.databaseBranch(ctx, req); res != nil {
				r.writeBack(ctx, req, res)
				return *res
			}
			logger.Warn().Str("title", req.Title).Msg("Cached source no longer answers, falling back to race")
		}
	}

	var winner *Resolution
	switch {
	case r.aiClient == nil:
		winner = r.databaseBranch(ctx, req)
	default:
		winner = raceWithDelay(ctx,
			func(ctx context.Context) *Resolution { return r.databaseBranch(ctx, req) },
			func(ctx context.Context) *Resolution { return r.llmBranch(ctx, req) },
			r.llmDelay)
	}

	if winner != nil {
		r.writeBack(ctx, req, winner)
		return *winner
	}

	logger.Warn().Str("title", req.Title).Str("artist", req.Artist).Msg("All lyric sources failed, serving placeholder")
	return Resolution{
		Lines:      PlaceholderLyrics(req.Title, req.Artist),
		Source:     SourcePlaceholder,
		Synced:     false,
		Status:     StatusDegraded,
		Reason:     "no source produced lyrics",
		TrackName:  req.Title,
		ArtistName: req.Artist,
	}
}

// raceWithDelay runs taskA immediately and taskB after delayBeforeB, and
// returns the first non-nil result. The losing branch is not cancelled; its
// eventual settlement is drained and logged. Returns nil only after both
// branches settled empty.
func raceWithDelay(ctx context.Context, taskA, taskB func(context.Context) *Resolution, delayBeforeB time.Duration) *Resolution {
	chA := make(chan *Resolution, 1)
	chB := make(chan *Resolution, 1)

	go func() { chA <- taskA(ctx) }()
	go func() {
		select {
		case <-time.After(delayBeforeB):
		case <-ctx.Done():
			chB <- nil
			return
		}
		chB <- taskB(ctx)
	}()

	var aDone, bDone bool
	for !aDone || !bDone {
		select {
		case res := <-chA:
			aDone = true
			if res != nil {
				if !bDone {
					go drainDiscarded(chB, "llm")
				}
				return res
			}
		case res := <-chB:
			bDone = true
			if res != nil {
				if !aDone {
					go drainDiscarded(chA, "database")
				}
				return res
			}
		}
	}
	return nil
}

// drainDiscarded consumes a losing branch so its settlement is still visible
// in logs even though the result is dropped.
func drainDiscarded(ch <-chan *Resolution, branch string) {
	res := <-ch
	if res != nil {
		logger.Info().Str("branch", branch).Str("source", string(res.Source)).Msg("Losing branch settled with a result; discarded")
	} else {
		logger.Debug().Str("branch", branch).Msg("Losing branch settled empty")
	}
}

// databaseBranch tries up to three query variants against the lyrics
// database under the branch timeout, short-circuiting on the first hit.
func (r *Resolver) databaseBranch(ctx context.Context, req Request) *Resolution {
	branchCtx, cancel := context.WithTimeout(ctx, r.dbTimeout)
	defer cancel()

	type variant struct{ title, artist string }
	variants := []variant{{req.Title, req.Artist}}
	if req.Artist != "" {
		variants = append(variants, variant{req.Title, ""})
	}
	if req.FullTitle != "" && !strings.EqualFold(req.FullTitle, req.Title) {
		variants = append(variants, variant{req.FullTitle, ""})
	}

	for _, v := range variants {
		track, err := r.db.FindBest(branchCtx, v.title, v.artist, req.Duration)
		if err != nil {
			logger.Warn().Err(err).Str("title", v.title).Str("artist", v.artist).Msg("Database variant failed")
			if branchCtx.Err() != nil {
				return nil
			}
			continue
		}
		if track == nil {
			continue
		}

		if strings.TrimSpace(track.SyncedLyrics) != "" {
			lines := ParseLRC(track.SyncedLyrics)
			if len(lines) > 0 {
				return &Resolution{
					Lines:      lines,
					Source:     SourceLRCLib,
					Synced:     true,
					Status:     StatusOK,
					TrackName:  track.TrackName,
					ArtistName: track.ArtistName,
				}
			}
		}
		if strings.TrimSpace(track.PlainLyrics) != "" {
			duration := req.Duration
			if duration <= 0 {
				duration = track.Duration
			}
			lines := ParsePlainLyrics(track.PlainLyrics, duration)
			if len(lines) > 0 {
				return &Resolution{
					Lines:      lines,
					Source:     SourceLRCLib,
					Synced:     false,
					Status:     StatusOK,
					TrackName:  track.TrackName,
					ArtistName: track.ArtistName,
				}
			}
		}
	}
	return nil
}

// llmBranch asks the AI backend to recall full lyrics text and validates the
// output before trusting it.
func (r *Resolver) llmBranch(ctx context.Context, req Request) *Resolution {
	raw, err := r.aiClient.HandleText(ctx, lyricsPrompt(req.Title, req.Artist))
	if err != nil {
		logger.Warn().Err(err).Str("title", req.Title).Msg("LLM lyrics lookup failed")
		return nil
	}

	text, reason := SanitizeLLMLyrics(raw)
	if text == "" {
		logger.Warn().Str("title", req.Title).Str("reason", reason).Msg("LLM lyrics discarded")
		return nil
	}

	lines := ParsePlainLyrics(text, req.Duration)
	if len(lines) == 0 {
		return nil
	}
	return &Resolution{
		Lines:      lines,
		Source:     SourceOpenAI,
		Synced:     false,
		Status:     StatusOK,
		TrackName:  req.Title,
		ArtistName: req.Artist,
	}
}

func lyricsPrompt(title, artist string) string {
	who := title
	if artist != "" {
		who = fmt.Sprintf("%s của %s", title, artist)
	}
	return fmt.Sprintf(`Tìm lời bài hát đầy đủ của bài "%s" trên các trang lời nhạc (NhacCuaTui, Zing MP3, loibaihat). Chỉ trả về phần lời, mỗi câu một dòng, không kèm chú thích, không markdown, không URL.`, who)
}

// SanitizeLLMLyrics strips comment/decoration/URL lines from an LLM reply
// and rejects outputs that are too short or read like a copyright refusal.
// It returns the cleaned text, or "" and the discard reason.
func SanitizeLLMLyrics(raw string) (string, string) {
	trimmed := strings.TrimSpace(raw)
	if len(trimmed) < minLLMChars {
		return "", "too short"
	}

	lower := strings.ToLower(trimmed)
	for _, marker := range refusalMarkers {
		if strings.Contains(lower, marker) {
			return "", "refusal: " + marker
		}
	}

	var kept []string
	for _, rawLine := range strings.Split(trimmed, "\n") {
		line := strings.TrimSpace(rawLine)
		switch {
		case line == "":
		case strings.HasPrefix(line, "#"), strings.HasPrefix(line, "*"), strings.HasPrefix(line, "//"):
		case strings.Contains(strings.ToLower(line), "http://"), strings.Contains(strings.ToLower(line), "https://"):
		case strings.HasPrefix(strings.ToLower(line), "source:"), strings.HasPrefix(strings.ToLower(line), "nguồn:"):
		default:
			kept = append(kept, line)
		}
	}
	if len(kept) < minLLMLines {
		return "", fmt.Sprintf("only %d usable lines", len(kept))
	}
	return strings.Join(kept, "\n"), ""
}

func (r *Resolver) writeBack(ctx context.Context, req Request, res *Resolution) {
	if r.meta != nil {
		r.meta.Store(req.Title, req.Artist, metacache.Entry{
			TrackName:  res.TrackName,
			ArtistName: res.ArtistName,
			Duration:   req.Duration,
			Source:     string(res.Source),
			HasLyrics:  true,
		})
	}
	if r.lyricCache != nil {
		r.lyricCache.Store(ctx, req.Title, req.Artist, renderLines(res))
	}
}

// renderLines serializes a resolution back to text for the lyrics cache:
// LRC when synced, plain lines otherwise.
func renderLines(res *Resolution) string {
	var b strings.Builder
	for _, line := range res.Lines {
		if res.Synced {
			total := int(line.Time * 100)
			fmt.Fprintf(&b, "[%02d:%02d.%02d]", total/6000, (total/100)%60, total%100)
		}
		b.WriteString(line.Text)
		b.WriteByte('\n')
	}
	return b.String()
}

// fromCachedText re-parses cached lyric text. Synced when the cached text
// still carries LRC tags.
func (r *Resolver) fromCachedText(req Request, text string) *Resolution {
	source := SourceLRCLib
	if r.meta != nil {
		if entry := r.meta.Get(req.Title, req.Artist); entry != nil && entry.Source != "" {
			source = Source(entry.Source)
		}
	}

	if lines := ParseLRC(text); len(lines) > 0 {
		return &Resolution{Lines: lines, Source: source, Synced: true, Status: StatusOK, TrackName: req.Title, ArtistName: req.Artist}
	}
	if lines := ParsePlainLyrics(text, req.Duration); len(lines) > 0 {
		return &Resolution{Lines: lines, Source: source, Synced: false, Status: StatusOK, TrackName: req.Title, ArtistName: req.Artist}
	}
	return nil
}
