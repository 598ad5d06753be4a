package models

import "time"

// RawSlot is a single bookable window as reported by the scheduling API.
// The upstream payload carries only the start instant; the duration is the
// one we asked for in the request. Immutable once decoded.
type RawSlot struct {
	StartTimeMillis int64 `json:"startTimeMillis"`
	DurationMinutes int   `json:"durationMinutes,omitempty"`
}

// Start returns the slot's start instant at millisecond precision.
func (s RawSlot) Start() time.Time {
	return time.UnixMilli(s.StartTimeMillis)
}

// Interval is a half-open [Start, End) time block derived from a RawSlot.
type Interval struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}
