package recommend

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/abunchofdevs/crowd-dj/internal/mood"
	"github.com/abunchofdevs/crowd-dj/internal/prompt"
)

// Completer issues one text completion call. *completion.Client satisfies
// it; tests substitute a deterministic stub.
type Completer interface {
	Complete(ctx context.Context, system, user string) (string, error)
}

// TrackResolver resolves a song/artist pair to a streaming link. A nil
// resolver disables link resolution.
type TrackResolver interface {
	ResolveTrack(ctx context.Context, song, artist string) (string, error)
}

// DefaultPulse stands in for the latest pulse when no reading has been
// submitted yet.
const DefaultPulse float64 = 80

// Service derives recommendations from the shared pulse window.
type Service struct {
	history  *mood.History
	sensor   Completer
	playback Completer
	resolver TrackResolver
	logger   zerolog.Logger
}

// Config wires a Service.
type Config struct {
	History  *mood.History
	Sensor   Completer     // provider for sensor recommendations
	Playback Completer     // provider for queue suggestions
	Resolver TrackResolver // optional
	Logger   zerolog.Logger
}

// NewService creates a Service from its collaborators.
func NewService(cfg Config) *Service {
	return &Service{
		history:  cfg.History,
		sensor:   cfg.Sensor,
		playback: cfg.Playback,
		resolver: cfg.Resolver,
		logger:   cfg.Logger.With().Str("component", "recommend").Logger(),
	}
}

// SensorResult pairs the inferred mood with its recommendation.
type SensorResult struct {
	Mood mood.Mood
	Recommendation
}

// ForReading records a pulse reading and produces a mood-matched
// recommendation.
func (s *Service) ForReading(ctx context.Context, r mood.Reading) (SensorResult, error) {
	window := s.history.Append(r)
	m := mood.Infer(r.Pulse, window)

	userPrompt := prompt.Sensor(string(m), r.Pulse, mood.Pulses(window))
	text, err := s.sensor.Complete(ctx, prompt.SensorSystem, userPrompt)
	if err != nil {
		return SensorResult{}, fmt.Errorf("requesting recommendation: %w", err)
	}

	rec := Parse(text, true)
	s.resolve(ctx, &rec)
	s.logger.Info().
		Str("mood", string(m)).
		Float64("pulse", r.Pulse).
		Str("song", rec.Song).
		Msg("sensor recommendation")
	return SensorResult{Mood: m, Recommendation: rec}, nil
}

// Playback is the caller-reported playback state for queue suggestions.
type Playback struct {
	CurrentSong   string
	CurrentArtist string
	Queue         []prompt.QueueItem
}

// ForPlayback produces a queue suggestion for the current playback state,
// using the latest recorded pulse (or DefaultPulse when none exists).
func (s *Service) ForPlayback(ctx context.Context, p Playback) (Recommendation, error) {
	window := s.history.Snapshot()
	pulse := DefaultPulse
	if latest, ok := s.history.Latest(); ok {
		pulse = latest.Pulse
	}
	m := mood.Infer(pulse, window)

	userPrompt := prompt.Playback(string(m), pulse, p.CurrentSong, p.CurrentArtist, p.Queue, mood.Pulses(window))
	text, err := s.playback.Complete(ctx, prompt.PlaybackSystem, userPrompt)
	if err != nil {
		return Recommendation{}, fmt.Errorf("requesting queue suggestion: %w", err)
	}

	rec := Parse(text, false)
	s.resolve(ctx, &rec)
	s.logger.Info().
		Str("mood", string(m)).
		Str("song", rec.Song).
		Msg("queue suggestion")
	return rec, nil
}

// resolve attaches a track link when a resolver is configured. Resolution
// is best effort; the recommendation stands without a link on failure.
func (s *Service) resolve(ctx context.Context, rec *Recommendation) {
	if s.resolver == nil {
		return
	}
	url, err := s.resolver.ResolveTrack(ctx, rec.Song, rec.Artist)
	if err != nil {
		s.logger.Warn().Err(err).Str("song", rec.Song).Msg("track resolution failed")
		return
	}
	rec.TrackURL = url
}
