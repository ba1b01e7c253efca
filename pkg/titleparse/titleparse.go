// Package titleparse extracts song title and artist candidates from noisy
// YouTube video titles and channel names. Video titles carry campaign tags,
// bilingual subtitles and channel branding, so a single parse is never
// reliable; every function here returns a ranked candidate list and callers
// try candidates in order.
package titleparse

import (
	"regexp"
	"strings"
)

// CleanupRule is one ordered (pattern, replacement) step of title cleanup.
// Exposed as data so the table can be tested rule by rule.
type CleanupRule struct {
	Name    string
	Pattern *regexp.Regexp
	Replace string
}

// TitleRules strip recording/upload annotations from a raw video title,
// applied in order.
var TitleRules = []CleanupRule{
	{
		Name:    "trailing-annotations",
		Pattern: regexp.MustCompile(`(?i)\s*[\|\-–—]?\s*\b(official(\s+(music\s+)?(video|audio|mv|lyric(s)?(\s+video)?))?|audio|video|mv|m/v|lyric(s)?(\s+video)?|music|hd|hq|4k|1080p|720p|full(\s+(hd|album))?|vietsub|engsub|sub)\s*$`),
		Replace: "",
	},
	{
		Name:    "bracketed-qualifiers",
		Pattern: regexp.MustCompile(`(?i)\s*[\(\[][^\)\]]*(official|audio|video|mv|lyric|cover|remix|live)[^\)\]]*[\)\]]`),
		Replace: "",
	},
	{
		Name:    "collapse-spaces",
		Pattern: regexp.MustCompile(`\s{2,}`),
		Replace: " ",
	},
}

// fillerWords are Vietnamese upload-title fillers stripped from the segment
// after a " - " separator ("Siêu Phẩm Bolero", "Nhạc Vàng Hải Ngoại", ...).
var fillerWords = []string{
	"siêu phẩm", "tuyệt phẩm", "nhạc vàng", "nhạc trữ tình", "nhạc trẻ",
	"bolero", "karaoke", "hải ngoại", "chọn lọc", "hay nhất", "mới nhất",
	"remix", "beat", "acoustic",
}

// dashHeuristics capture a title preceding known Vietnamese filler/connector
// words that follow a dash segment.
var dashHeuristics = []*regexp.Regexp{
	regexp.MustCompile(`(?i)^(.{3,}?)\s*[\-–—]\s*(?:một|siêu|phẩm|nhạc|bolero|remix|karaoke)\b`),
	regexp.MustCompile(`(?i)^(.{3,}?)\s*[\-–—].*\b(?:st|sáng tác|trình bày)\b`),
}

// artistSuffix strips channel branding from an uploader/channel name.
var artistSuffix = regexp.MustCompile(`(?i)\s*(\-\s*topic|topic|official|vevo|channel|music|entertainment)\s*$`)

// CleanTitle runs the ordered rule table over a raw title.
func CleanTitle(raw string) string {
	s := strings.TrimSpace(raw)
	for _, rule := range TitleRules {
		s = rule.Pattern.ReplaceAllString(s, rule.Replace)
	}
	return strings.Trim(s, " -–—|")
}

// SongTitleCandidates returns de-duplicated title candidates ordered from
// most specific (full cleaned title) to most general (pre-dash segment).
func SongTitleCandidates(rawTitle string) []string {
	var out []string
	push := func(c string) {
		c = strings.TrimSpace(c)
		if c == "" {
			return
		}
		for _, have := range out {
			if strings.EqualFold(have, c) {
				return
			}
		}
		out = append(out, c)
	}

	cleaned := CleanTitle(rawTitle)
	push(cleaned)

	if idx := strings.Index(cleaned, " - "); idx > 0 {
		before := strings.TrimSpace(cleaned[:idx])
		if len([]rune(before)) > 2 {
			push(before)
		}
		after := stripFillers(strings.TrimSpace(cleaned[idx+3:]))
		if len([]rune(after)) > 2 {
			push(after)
		}
	}

	for _, re := range dashHeuristics {
		if m := re.FindStringSubmatch(cleaned); m != nil {
			push(m[1])
		}
	}

	return out
}

// ShortTitle picks the candidate downstream search should lead with: the
// pre-dash segment when one exists, else the full cleaned title.
func ShortTitle(rawTitle string) string {
	candidates := SongTitleCandidates(rawTitle)
	if len(candidates) == 0 {
		return strings.TrimSpace(rawTitle)
	}
	if len(candidates) > 1 {
		return candidates[1]
	}
	return candidates[0]
}

// ArtistCandidates cleans a channel/uploader name into artist candidates.
// The final candidate is always "" so callers can search without an artist
// as a last resort.
func ArtistCandidates(raw string) []string {
	var out []string
	push := func(c string) {
		c = strings.TrimSpace(c)
		if c == "" {
			return
		}
		for _, have := range out {
			if strings.EqualFold(have, c) {
				return
			}
		}
		out = append(out, c)
	}

	cleaned := strings.TrimSpace(artistSuffix.ReplaceAllString(strings.TrimSpace(raw), ""))
	push(cleaned)

	if idx := strings.Index(cleaned, " - "); idx > 0 {
		push(cleaned[:idx])
	}

	return append(out, "")
}

func stripFillers(s string) string {
	lower := strings.ToLower(s)
	for _, f := range fillerWords {
		for {
			i := strings.Index(lower, f)
			if i < 0 {
				break
			}
			s = s[:i] + s[i+len(f):]
			lower = lower[:i] + lower[i+len(f):]
		}
	}
	return strings.Trim(strings.Join(strings.Fields(s), " "), " -–—|")
}
