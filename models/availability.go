package models

import (
	"fmt"
	"time"
)

// MergedInterval represents a continuous availability block built from one or
// more contiguous or overlapping slots within a single calendar day.
type MergedInterval struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
	Date  string    `json:"date"`  // e.g., "2026-03-14", in the calendar zone
	Label string    `json:"label"` // e.g., "9:00 AM - 10:30 AM"
}

// FormatLabel renders a human-readable window for calendar cells.
func FormatLabel(start, end time.Time, loc *time.Location) string {
	return fmt.Sprintf("%s - %s", start.In(loc).Format("3:04 PM"), end.In(loc).Format("3:04 PM"))
}

// DayKey renders the calendar-day key for an instant in the calendar zone.
func DayKey(t time.Time, loc *time.Location) string {
	return t.In(loc).Format("2006-01-02")
}

// MonthAvailability is the published result of one fetch-and-merge cycle.
// It is built fresh every cycle and replaced wholesale, never patched.
type MonthAvailability struct {
	Resource   string           `json:"resource"`
	Month      string           `json:"month"` // "2026-03"
	Timezone   string           `json:"timezone"`
	Intervals  []MergedInterval `json:"intervals"`
	Generation int64            `json:"generation"`
	FetchedAt  time.Time        `json:"fetchedAt"`
}

// Days partitions the merged intervals by calendar day for cell rendering.
// Intervals within each day keep their chronological order.
func (ma *MonthAvailability) Days() map[string][]MergedInterval {
	days := make(map[string][]MergedInterval)
	for _, iv := range ma.Intervals {
		days[iv.Date] = append(days[iv.Date], iv)
	}
	return days
}
