// Package recommend turns crowd mood and playback state into structured
// song recommendations via a completion provider.
package recommend

import (
	"regexp"
	"strings"
)

// Recommendation is the structured result extracted from provider output.
// Every field the context calls for is populated, from the provider text
// when extraction succeeds and from fixed fallbacks otherwise.
type Recommendation struct {
	Song     string
	Artist   string
	Lighting string // empty in playback context
	TrackURL string // optional Spotify link, empty when unresolved
}

// Fallbacks when the provider's reply has no usable field. The literals
// are arbitrary but fixed; existing clients expect them verbatim.
var (
	sensorFallback   = Recommendation{Song: "Sweet but Psycho", Artist: "Ava Max", Lighting: "red"}
	playbackFallback = Recommendation{Song: "Uptown Funk", Artist: "Mark Ronson"}
)

var (
	whitespaceRE = regexp.MustCompile(`\s+`)
	fieldLabels  = []string{"Song:", "Artist:", "Lighting:"}
)

// Parse extracts song, artist, and (when expectLighting is set) lighting
// color from free-form provider text. Whitespace runs are collapsed before
// matching, labels are matched case-sensitively, and values are cut at the
// first of the next comma, the next label, or the end of the text. Parse
// never fails: absent or empty fields get the context's fallback value.
func Parse(text string, expectLighting bool) Recommendation {
	normalized := whitespaceRE.ReplaceAllString(text, " ")

	fallback := playbackFallback
	if expectLighting {
		fallback = sensorFallback
	}

	rec := Recommendation{
		Song:   extractField(normalized, "Song:"),
		Artist: extractField(normalized, "Artist:"),
	}
	if rec.Song == "" {
		rec.Song = fallback.Song
	}
	if rec.Artist == "" {
		rec.Artist = fallback.Artist
	}
	if expectLighting {
		rec.Lighting = extractField(normalized, "Lighting:")
		if rec.Lighting == "" {
			rec.Lighting = fallback.Lighting
		}
	}
	return rec
}

// extractField captures the text following a label, trimmed of surrounding
// whitespace and enclosing quotes. Returns "" when the label is absent or
// the capture is empty.
func extractField(text, label string) string {
	i := strings.Index(text, label)
	if i < 0 {
		return ""
	}
	rest := text[i+len(label):]

	end := len(rest)
	if j := strings.Index(rest, ","); j >= 0 && j < end {
		end = j
	}
	for _, other := range fieldLabels {
		if other == label {
			continue
		}
		if j := strings.Index(rest, other); j >= 0 && j < end {
			end = j
		}
	}

	return strings.Trim(strings.TrimSpace(rest[:end]), `"'`)
}
