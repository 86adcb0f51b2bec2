// Package prompt builds the natural-language instructions sent to the
// completion provider.
package prompt

import (
	"fmt"
	"strings"
)

// SensorSystem constrains the model to the sensor reply format.
const SensorSystem = "You are a DJ assistant for a live venue. " +
	"Reply with exactly one line in the format " +
	"Song: <song>, Artist: <artist>, Lighting: <color> " +
	"and nothing else."

// PlaybackSystem constrains the model to the playback reply format.
const PlaybackSystem = "You are a DJ assistant managing a playback queue. " +
	"Reply with exactly one line in the format " +
	"Song: <song>, Artist: <artist> " +
	"and nothing else."

// QueueItem is a queued track as reported by the caller. It is only ever
// rendered into prompt text, never persisted.
type QueueItem struct {
	Song   string `json:"song"`
	Artist string `json:"artist"`
}

// Sensor builds the user prompt for a fresh pulse reading.
func Sensor(mood string, pulse float64, history []float64) string {
	return fmt.Sprintf(
		"The crowd mood is %s and the current pulse is %.1f BPM. "+
			"Recent pulse readings: %s. "+
			"Suggest one song, its artist, and a lighting color to match the mood.",
		mood, pulse, joinPulses(history),
	)
}

// Playback builds the user prompt for a queue suggestion.
func Playback(mood string, pulse float64, currentSong, currentArtist string, queue []QueueItem, history []float64) string {
	return fmt.Sprintf(
		"The crowd mood is %s and the latest pulse is %.1f BPM. "+
			"Now playing: %s by %s. Queue: %s. "+
			"Recent pulse readings: %s. "+
			"Suggest one song and its artist to add to the queue.",
		mood, pulse, currentSong, currentArtist, joinQueue(queue), joinPulses(history),
	)
}

// joinQueue renders queued tracks as "song by artist" entries, or the
// literal "empty" marker for an empty queue.
func joinQueue(queue []QueueItem) string {
	if len(queue) == 0 {
		return "empty"
	}
	parts := make([]string, len(queue))
	for i, q := range queue {
		parts[i] = fmt.Sprintf("%s by %s", q.Song, q.Artist)
	}
	return strings.Join(parts, ", ")
}

func joinPulses(history []float64) string {
	if len(history) == 0 {
		return "none"
	}
	parts := make([]string, len(history))
	for i, p := range history {
		parts[i] = fmt.Sprintf("%.1f", p)
	}
	return strings.Join(parts, ", ")
}
