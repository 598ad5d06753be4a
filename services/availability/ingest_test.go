package availability

import (
	"testing"
	"time"

	"availcal/models"
)

func TestIngestSlots_UsesRequestedDuration(t *testing.T) {
	start := time.Date(2026, 3, 14, 9, 0, 0, 0, time.UTC)

	// Upstream echoes a different per-slot duration; the requested one wins.
	raw := []models.RawSlot{
		{StartTimeMillis: start.UnixMilli(), DurationMinutes: 30},
	}

	got := IngestSlots(raw, 60*time.Minute)
	if len(got) != 1 {
		t.Fatalf("expected 1 interval, got %d", len(got))
	}
	if !got[0].Start.Equal(start) {
		t.Fatalf("expected start %s, got %s", start, got[0].Start)
	}
	if !got[0].End.Equal(start.Add(60 * time.Minute)) {
		t.Fatalf("expected end %s, got %s", start.Add(60*time.Minute), got[0].End)
	}
}

func TestIngestSlots_MillisecondPrecision(t *testing.T) {
	raw := []models.RawSlot{{StartTimeMillis: 1773478800123}}
	got := IngestSlots(raw, 60*time.Minute)
	if got[0].Start.UnixMilli() != 1773478800123 {
		t.Fatalf("start instant lost precision: %d", got[0].Start.UnixMilli())
	}
	if got[0].End.UnixMilli() != 1773478800123+60*60*1000 {
		t.Fatalf("end instant lost precision: %d", got[0].End.UnixMilli())
	}
}

func TestIngestSlots_DropsInvalidStarts(t *testing.T) {
	raw := []models.RawSlot{
		{StartTimeMillis: 0},
		{StartTimeMillis: -1},
		{StartTimeMillis: time.Date(2026, 3, 14, 9, 0, 0, 0, time.UTC).UnixMilli()},
	}
	got := IngestSlots(raw, 60*time.Minute)
	if len(got) != 1 {
		t.Fatalf("expected 1 interval after filtering, got %d", len(got))
	}
}

func TestIngestSlots_Empty(t *testing.T) {
	if got := IngestSlots(nil, 60*time.Minute); got != nil {
		t.Fatalf("expected nil for empty input, got %+v", got)
	}
}
