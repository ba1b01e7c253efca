// Package story serves "song story" narrative content: hand-curated text
// from the verified index when the song is known, generated prose otherwise.
package story

import (
	"context"
	"fmt"
	"strings"

	"github.com/rs/zerolog/log"

	"vietsong-backend/pkg/ai"
	"vietsong-backend/pkg/verified"
)

var logger = log.With().Str("component", "story").Logger()

// Story is the narrative payload for one song. Source distinguishes curated
// database text from generated prose so the UI can label it honestly.
type Story struct {
	Title             string   `json:"title"`
	Artist            string   `json:"artist,omitempty"`
	Composer          string   `json:"composer,omitempty"`
	Year              int      `json:"year,omitempty"`
	Genre             string   `json:"genre,omitempty"`
	Era               string   `json:"era,omitempty"`
	CompositionStory  string   `json:"compositionStory"`
	HistoricalContext string   `json:"historicalContext,omitempty"`
	Facts             []string `json:"facts,omitempty"`
	Sources           []string `json:"sources,omitempty"`
	Source            string   `json:"source"` // "database" | "openai" | "fallback"
	Confidence        string   `json:"confidence"`
	MatchType         string   `json:"matchType,omitempty"`
	MatchScore        float64  `json:"matchScore,omitempty"`
}

// Generator resolves stories. aiClient may be nil; generation then degrades
// straight to the minimal fallback.
type Generator struct {
	index    *verified.Index
	aiClient ai.Client
}

func NewGenerator(index *verified.Index, aiClient ai.Client) *Generator {
	return &Generator{index: index, aiClient: aiClient}
}

// Generate returns a story for (title, artist). It always returns something:
// curated entry, generated prose, or a minimal fallback.
func (g *Generator) Generate(ctx context.Context, title, artist string) Story {
	if res := g.index.Search(title, artist); res.Found {
		logger.Info().Str("id", res.Song.ID).Str("match", string(res.MatchType)).Msg("Serving curated song story")
		return fromVerified(res)
	}

	if g.aiClient != nil {
		text, err := g.aiClient.HandleText(ctx, storyPrompt(title, artist))
		if err != nil {
			logger.Warn().Err(err).Str("title", title).Msg("Story generation failed")
		} else if story := strings.TrimSpace(text); len(story) >= 40 {
			return Story{
				Title:            title,
				Artist:           artist,
				CompositionStory: story,
				Source:           "openai",
				Confidence:       "generated",
			}
		} else {
			logger.Warn().Str("title", title).Int("len", len(story)).Msg("Generated story too short, discarded")
		}
	}

	return Story{
		Title:            title,
		Artist:           artist,
		CompositionStory: fmt.Sprintf("Chưa có tư liệu kiểm chứng về hoàn cảnh sáng tác của \"%s\".", title),
		Source:           "fallback",
		Confidence:       "none",
	}
}

func fromVerified(res verified.Result) Story {
	s := res.Song
	return Story{
		Title:             s.Title,
		Artist:            s.Artist,
		Composer:          s.Composer,
		Year:              s.Year,
		Genre:             s.Genre,
		Era:               s.Era,
		CompositionStory:  s.CompositionStory,
		HistoricalContext: s.HistoricalContext,
		Facts:             s.Facts,
		Sources:           s.Sources,
		Source:            "database",
		Confidence:        s.Confidence,
		MatchType:         string(res.MatchType),
		MatchScore:        res.MatchScore,
	}
}

func storyPrompt(title, artist string) string {
	who := title
	if artist != "" {
		who = fmt.Sprintf("%s (trình bày: %s)", title, artist)
	}
	return fmt.Sprintf(`Viết một đoạn 3-4 câu về hoàn cảnh sáng tác và ý nghĩa của bài hát Việt Nam "%s". Chỉ nêu thông tin phổ biến, nếu không chắc chắn hãy nói khái quát về thể loại. Không markdown.`, who)
}
