// Package mood derives a crowd mood label from pulse-rate readings.
package mood

// Mood is a discrete crowd mood label derived from pulse and trend.
type Mood string

const (
	Excited Mood = "excited"
	Chill   Mood = "chill"
	Festive Mood = "festive"
	Hyped   Mood = "hyped"
)

// trend is the direction of change between the two most recent readings.
type trend int

const (
	stable trend = iota
	rising
	falling
)

// Infer classifies the crowd mood from the current pulse and the recent
// reading window. The window is expected to already contain the current
// reading as its newest entry. Rules are evaluated in priority order; the
// first match wins.
func Infer(pulse float64, recent []Reading) Mood {
	t := trendOf(recent)

	switch {
	case pulse > 100 && (t == rising || t == stable):
		return Excited
	case pulse < 80 && (t == falling || t == stable):
		return Chill
	case pulse >= 80 && pulse <= 100:
		return Festive
	default:
		// Rising pulse below 80, or falling pulse above 100.
		return Hyped
	}
}

// trendOf compares the two most recent readings. Fewer than two readings
// count as stable.
func trendOf(recent []Reading) trend {
	if len(recent) < 2 {
		return stable
	}
	latest := recent[len(recent)-1].Pulse
	previous := recent[len(recent)-2].Pulse
	switch {
	case latest > previous:
		return rising
	case latest < previous:
		return falling
	default:
		return stable
	}
}
