package web

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"time"

	"github.com/rs/zerolog"

	"github.com/abunchofdevs/crowd-dj/internal/mood"
	"github.com/abunchofdevs/crowd-dj/internal/prompt"
	"github.com/abunchofdevs/crowd-dj/internal/recommend"
)

// welcomeMessage is returned by GET /.
const welcomeMessage = "Welcome to the A bunch of Devs!"

// Handlers contains the HTTP handlers for the service.
type Handlers struct {
	service *recommend.Service
	logger  zerolog.Logger
}

// NewHandlers creates a new Handlers instance.
func NewHandlers(service *recommend.Service, logger zerolog.Logger) *Handlers {
	return &Handlers{
		service: service,
		logger:  logger.With().Str("component", "handlers").Logger(),
	}
}

type sensorRequest struct {
	Pulse *float64 `json:"pulse"`
}

type sensorResponse struct {
	Mood     string `json:"mood"`
	Song     string `json:"song"`
	Artist   string `json:"artist"`
	Lighting string `json:"lighting"`
	TrackURL string `json:"track_url,omitempty"`
	Status   string `json:"status"`
}

type queueRequest struct {
	CurrentSong   string             `json:"current_song"`
	CurrentArtist string             `json:"current_artist"`
	Queue         []prompt.QueueItem `json:"queue"`
}

type queueResponse struct {
	Song     string `json:"song"`
	Artist   string `json:"artist"`
	TrackURL string `json:"track_url,omitempty"`
	Status   string `json:"status"`
}

type errorResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

// Home handles GET /.
func (h *Handlers) Home(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"message": welcomeMessage})
}

// Health handles GET /healthz.
func (h *Handlers) Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// Sensor handles POST /sensor: records a pulse reading and returns a
// mood-matched recommendation.
func (h *Handlers) Sensor(w http.ResponseWriter, r *http.Request) {
	var req sensorRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	if req.Pulse == nil || *req.Pulse <= 0 {
		writeError(w, http.StatusBadRequest, "pulse must be a positive number")
		return
	}

	result, err := h.service.ForReading(r.Context(), mood.Reading{
		Pulse:     *req.Pulse,
		Timestamp: time.Now(),
	})
	if err != nil {
		h.logger.Error().Err(err).Msg("sensor recommendation failed")
		writeError(w, http.StatusBadGateway, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, sensorResponse{
		Mood:     string(result.Mood),
		Song:     result.Song,
		Artist:   result.Artist,
		Lighting: result.Lighting,
		TrackURL: result.TrackURL,
		Status:   "success",
	})
}

// Queue handles POST /spotify: suggests a queue addition for the current
// playback state. Every field of the request is optional.
func (h *Handlers) Queue(w http.ResponseWriter, r *http.Request) {
	var req queueRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	if req.CurrentSong == "" {
		req.CurrentSong = "Unknown"
	}
	if req.CurrentArtist == "" {
		req.CurrentArtist = "Unknown"
	}

	rec, err := h.service.ForPlayback(r.Context(), recommend.Playback{
		CurrentSong:   req.CurrentSong,
		CurrentArtist: req.CurrentArtist,
		Queue:         req.Queue,
	})
	if err != nil {
		h.logger.Error().Err(err).Msg("queue suggestion failed")
		writeError(w, http.StatusBadGateway, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, queueResponse{
		Song:     rec.Song,
		Artist:   rec.Artist,
		TrackURL: rec.TrackURL,
		Status:   "success",
	})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, errorResponse{Status: "error", Message: message})
}
