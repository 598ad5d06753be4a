package availability

import (
	"time"

	"availcal/models"
)

// IngestSlots derives half-open [start, start+duration) intervals from raw
// slot records.
//
// The duration is always the one we requested from the upstream API. Some
// responses echo a per-slot durationMinutes field, but the two are not
// reconciled: the requested duration wins even when they disagree. Slots
// with a non-positive start instant are dropped; the merger itself performs
// no validation.
func IngestSlots(raw []models.RawSlot, duration time.Duration) []models.Interval {
	if len(raw) == 0 {
		return nil
	}

	intervals := make([]models.Interval, 0, len(raw))
	for _, slot := range raw {
		if slot.StartTimeMillis <= 0 {
			continue
		}
		start := slot.Start()
		intervals = append(intervals, models.Interval{
			Start: start,
			End:   start.Add(duration),
		})
	}
	return intervals
}
