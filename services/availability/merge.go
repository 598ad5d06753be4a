package availability

import (
	"sort"
	"time"

	"availcal/models"
)

// Merge collapses a set of possibly unsorted, overlapping, or duplicated
// intervals into the minimal set of non-overlapping, maximal contiguous
// blocks per calendar day, sorted chronologically.
//
// Two intervals belong to the same block when the later one starts no later
// than the block's current end (overlap or exact adjacency, no gap tolerance)
// AND both starts fall on the same calendar day in loc. Back-to-back slots
// read as one uninterrupted window to a viewer, so the comparison is <=, not
// <. The same-day guard keeps a block from crossing midnight, which would
// corrupt per-day calendar cells.
//
// Pure function: the input slice is never mutated; a working copy is sorted.
func Merge(intervals []models.Interval, loc *time.Location) []models.Interval {
	if len(intervals) == 0 {
		return nil
	}

	sorted := make([]models.Interval, len(intervals))
	copy(sorted, intervals)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Start.Before(sorted[j].Start)
	})

	merged := make([]models.Interval, 0, len(sorted))
	merged = append(merged, sorted[0])

	for _, next := range sorted[1:] {
		last := &merged[len(merged)-1]
		if !next.Start.After(last.End) && SameDay(next.Start, last.Start, loc) {
			// Extend the open block; its start is never altered.
			if next.End.After(last.End) {
				last.End = next.End
			}
			continue
		}
		merged = append(merged, next)
	}

	return merged
}

// SameDay reports whether a and b share a calendar day in loc.
func SameDay(a, b time.Time, loc *time.Location) bool {
	ay, am, ad := a.In(loc).Date()
	by, bm, bd := b.In(loc).Date()
	return ay == by && am == bm && ad == bd
}

// Annotate decorates merged intervals with their day key and display label
// for calendar-cell rendering.
func Annotate(merged []models.Interval, loc *time.Location) []models.MergedInterval {
	out := make([]models.MergedInterval, 0, len(merged))
	for _, iv := range merged {
		out = append(out, models.MergedInterval{
			Start: iv.Start,
			End:   iv.End,
			Date:  models.DayKey(iv.Start, loc),
			Label: models.FormatLabel(iv.Start, iv.End, loc),
		})
	}
	return out
}

// ForDay filters merged intervals whose start falls on the given day key.
// Order is preserved, so the result stays chronologically sorted.
func ForDay(intervals []models.MergedInterval, date string) []models.MergedInterval {
	var out []models.MergedInterval
	for _, iv := range intervals {
		if iv.Date == date {
			out = append(out, iv)
		}
	}
	return out
}
