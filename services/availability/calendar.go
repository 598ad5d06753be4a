package availability

import (
	"fmt"
	"time"
)

const monthLayout = "2006-01"

// ParseMonth parses a "YYYY-MM" month key in the calendar zone.
func ParseMonth(month string, loc *time.Location) (time.Time, error) {
	t, err := time.ParseInLocation(monthLayout, month, loc)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid month %q: %w", month, err)
	}
	return t, nil
}

// MonthKey renders the "YYYY-MM" key for an instant in the calendar zone.
func MonthKey(t time.Time, loc *time.Location) string {
	return t.In(loc).Format(monthLayout)
}

// MonthRange returns the half-open [first, firstOfNext) window covering the
// given month in the calendar zone.
func MonthRange(month string, loc *time.Location) (time.Time, time.Time, error) {
	first, err := ParseMonth(month, loc)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	return first, first.AddDate(0, 1, 0), nil
}

// AddMonths shifts a "YYYY-MM" key by delta months.
func AddMonths(month string, delta int, loc *time.Location) (string, error) {
	first, err := ParseMonth(month, loc)
	if err != nil {
		return "", err
	}
	return MonthKey(first.AddDate(0, delta, 0), loc), nil
}

// DayRange returns the half-open [midnight, nextMidnight) window for a
// "YYYY-MM-DD" day key in the calendar zone.
func DayRange(date string, loc *time.Location) (time.Time, time.Time, error) {
	day, err := time.ParseInLocation("2006-01-02", date, loc)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("invalid date %q: %w", date, err)
	}
	return day, day.AddDate(0, 0, 1), nil
}
