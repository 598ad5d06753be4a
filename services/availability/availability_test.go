package availability

import (
	"context"
	"errors"
	"testing"
	"time"

	"availcal/models"
	"availcal/services/scheduling"
)

// stubFetcher returns canned slots or a canned failure.
type stubFetcher struct {
	slots []models.RawSlot
	err   error
	query scheduling.SlotQuery
}

func (f *stubFetcher) FetchSlots(_ context.Context, q scheduling.SlotQuery) ([]models.RawSlot, error) {
	f.query = q
	return f.slots, f.err
}

func newTestService(f *stubFetcher) *DefaultService {
	return &DefaultService{
		Fetcher:  f,
		Loc:      time.UTC,
		Duration: 60 * time.Minute,
	}
}

func TestRefreshMonth_MergesFetchedSlots(t *testing.T) {
	day := time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC)
	fetcher := &stubFetcher{slots: []models.RawSlot{
		{StartTimeMillis: day.Add(10 * time.Hour).UnixMilli()},
		{StartTimeMillis: day.Add(9 * time.Hour).UnixMilli()},
	}}
	svc := newTestService(fetcher)

	ma, err := svc.RefreshMonth(context.Background(), "room-a", "2026-03")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(ma.Intervals) != 1 {
		t.Fatalf("expected 1 merged interval, got %d", len(ma.Intervals))
	}
	iv := ma.Intervals[0]
	if !iv.Start.Equal(day.Add(9*time.Hour)) || !iv.End.Equal(day.Add(11*time.Hour)) {
		t.Fatalf("unexpected merged interval [%s, %s)", iv.Start, iv.End)
	}
	if iv.Date != "2026-03-14" {
		t.Fatalf("unexpected day key %q", iv.Date)
	}

	// The upstream query must carry the requested duration and the
	// half-open month window.
	if fetcher.query.DurationMinutes != 60 {
		t.Fatalf("expected requested duration 60, got %d", fetcher.query.DurationMinutes)
	}
	if fetcher.query.StartDate != "2026-03-01" || fetcher.query.EndDate != "2026-04-01" {
		t.Fatalf("unexpected window [%s, %s)", fetcher.query.StartDate, fetcher.query.EndDate)
	}
}

func TestRefreshMonth_FetchFailureDegradesToEmptyMonth(t *testing.T) {
	fetcher := &stubFetcher{err: errors.New("connection refused")}
	svc := newTestService(fetcher)

	ma, err := svc.RefreshMonth(context.Background(), "room-a", "2026-03")
	if err != nil {
		t.Fatalf("fetch failure must not surface as an error, got %v", err)
	}
	if len(ma.Intervals) != 0 {
		t.Fatalf("expected empty month, got %d intervals", len(ma.Intervals))
	}
	if ma.Month != "2026-03" || ma.Resource != "room-a" {
		t.Fatalf("result metadata wrong: %+v", ma)
	}
}

func TestRefreshMonth_InvalidMonth(t *testing.T) {
	svc := newTestService(&stubFetcher{})
	if _, err := svc.RefreshMonth(context.Background(), "room-a", "not-a-month"); err == nil {
		t.Fatal("expected error for invalid month key")
	}
}

func TestDayAvailability_FiltersToCell(t *testing.T) {
	day1 := time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC)
	day2 := day1.AddDate(0, 0, 1)
	fetcher := &stubFetcher{slots: []models.RawSlot{
		{StartTimeMillis: day1.Add(9 * time.Hour).UnixMilli()},
		{StartTimeMillis: day2.Add(11 * time.Hour).UnixMilli()},
	}}
	svc := newTestService(fetcher)

	got, err := svc.DayAvailability(context.Background(), "room-a", "2026-03-15")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("expected 1 interval, got %d", len(got))
	}
	if got[0].Date != "2026-03-15" {
		t.Fatalf("unexpected day key %q", got[0].Date)
	}
}
