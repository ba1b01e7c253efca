package lyrics

import (
	"bufio"
	"fmt"
	"regexp"
	"sort"
	"strconv"
	"strings"
)

// Line is one displayable lyric line. Within a sequence lines are sorted
// ascending by Time; Text is empty only for intentionally inserted spacers.
type Line struct {
	Time float64 `json:"time"`
	Text string  `json:"text"`
}

const (
	// introOffset is where estimated timing starts for untimed lyrics.
	introOffset = 15.0
	// outroGap is the tail left free of lyrics for untimed timing.
	outroGap = 20.0
	// minSecondsPerLine floors the estimated pace when duration is short
	// or unknown, trading synchrony for readability.
	minSecondsPerLine = 3.0
	// placeholderStep spaces the generated musical-symbol lines.
	placeholderStep = 8.0
)

var lrcTagRe = regexp.MustCompile(`\[(\d{2}):(\d{2})(?:\.(\d{1,3}))?\](.*)`)

// ParseLRC converts LRC text into time-sorted lines. Lines without a
// recognizable timestamp tag are skipped, as are lines whose text is empty
// after the tag. A 2-digit fraction is read as centiseconds, the common LRC
// convention; 3 digits are milliseconds.
func ParseLRC(text string) []Line {
	scanner := bufio.NewScanner(strings.NewReader(text))
	var result []Line

	for scanner.Scan() {
		for _, match := range lrcTagRe.FindAllStringSubmatch(scanner.Text(), -1) {
			min, _ := strconv.Atoi(match[1])
			sec, _ := strconv.Atoi(match[2])
			ms := 0
			if match[3] != "" {
				ms, _ = strconv.Atoi(match[3])
				switch len(match[3]) {
				case 1:
					ms *= 100
				case 2:
					ms *= 10
				}
			}
			lineText := strings.TrimSpace(match[4])
			if lineText == "" {
				continue
			}
			result = append(result, Line{
				Time: float64(min*60+sec) + float64(ms)/1000,
				Text: lineText,
			})
		}
	}

	// Sources occasionally carry out-of-order tags.
	sort.SliceStable(result, func(i, j int) bool { return result[i].Time < result[j].Time })
	return result
}

// ParsePlainLyrics assigns evenly spaced synthetic timestamps to untimed
// lyrics: starting at the intro offset and leaving an outro gap, with a
// 3-seconds-per-line floor.
func ParsePlainLyrics(text string, durationSeconds float64) []Line {
	var kept []string
	for _, raw := range strings.Split(text, "\n") {
		line := strings.TrimSpace(raw)
		if line != "" {
			kept = append(kept, line)
		}
	}
	if len(kept) == 0 {
		return nil
	}

	n := float64(len(kept))
	window := durationSeconds - introOffset - outroGap
	if floor := n * minSecondsPerLine; window < floor {
		window = floor
	}
	interval := window / n

	result := make([]Line, len(kept))
	for i, line := range kept {
		result[i] = Line{Time: introOffset + float64(i)*interval, Text: line}
	}
	return result
}

// placeholderSymbols cycle through the generated fallback sequence.
var placeholderSymbols = []string{"♪ ♫ ♪", "♫ ♪ ♫", "♪ ♪ ♫ ♪", "♫ ♫ ♪"}

// PlaceholderLyrics builds the guaranteed terminal fallback: header lines
// naming the song, then musical symbols every few seconds. The UI has no
// acceptable empty state, so this must never return an empty sequence.
func PlaceholderLyrics(title, artist string) []Line {
	header := fmt.Sprintf("♪ %s ♪", strings.TrimSpace(title))
	if strings.TrimSpace(title) == "" {
		header = "♪ ♪ ♪"
	}

	lines := []Line{{Time: 0, Text: header}}
	if strings.TrimSpace(artist) != "" {
		lines = append(lines, Line{Time: placeholderStep / 2, Text: fmt.Sprintf("♫ %s ♫", strings.TrimSpace(artist))})
	}

	t := placeholderStep
	for i := 0; i < 20; i++ {
		lines = append(lines, Line{Time: t, Text: placeholderSymbols[i%len(placeholderSymbols)]})
		t += placeholderStep
	}
	return lines
}
