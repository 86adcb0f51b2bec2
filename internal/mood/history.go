package mood

import (
	"sync"
	"time"
)

// HistorySize is the number of readings kept in the rolling window.
const HistorySize = 3

// Reading is a single pulse-rate sample in beats per minute.
type Reading struct {
	Pulse     float64
	Timestamp time.Time
}

// History is a bounded FIFO window over the most recent readings. It is
// safe for concurrent use: Append performs the whole read-modify-write
// under one lock, so concurrent writers cannot lose updates or grow the
// window past its capacity.
type History struct {
	mu       sync.Mutex
	readings []Reading
	capacity int
}

// NewHistory creates a History holding at most capacity readings.
// A non-positive capacity falls back to HistorySize.
func NewHistory(capacity int) *History {
	if capacity <= 0 {
		capacity = HistorySize
	}
	return &History{
		readings: make([]Reading, 0, capacity),
		capacity: capacity,
	}
}

// Append records a reading, evicting the oldest when the window is full,
// and returns a snapshot of the window including the new reading. The
// snapshot is a copy; callers may use it without further locking.
func (h *History) Append(r Reading) []Reading {
	h.mu.Lock()
	defer h.mu.Unlock()

	if len(h.readings) == h.capacity {
		copy(h.readings, h.readings[1:])
		h.readings = h.readings[:h.capacity-1]
	}
	h.readings = append(h.readings, r)
	return h.snapshotLocked()
}

// Snapshot returns a copy of the current window, oldest first.
func (h *History) Snapshot() []Reading {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.snapshotLocked()
}

// Latest returns the most recent reading, if any.
func (h *History) Latest() (Reading, bool) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if len(h.readings) == 0 {
		return Reading{}, false
	}
	return h.readings[len(h.readings)-1], true
}

func (h *History) snapshotLocked() []Reading {
	out := make([]Reading, len(h.readings))
	copy(out, h.readings)
	return out
}

// Pulses extracts the pulse values from a window, oldest first.
func Pulses(readings []Reading) []float64 {
	out := make([]float64, len(readings))
	for i, r := range readings {
		out[i] = r.Pulse
	}
	return out
}
