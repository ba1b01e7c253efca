// Package ai abstracts the text-completion backends used for the lyrics
// web-search fallback and song-story generation.
package ai

import "context"

type Client interface {
	Name() string
	// HandleText sends a single prompt and returns the raw completion text.
	HandleText(ctx context.Context, prompt string) (string, error)
}
