// Package valueobject contains domain value objects for the reporting system.
package valueobject

import (
	"fmt"
	"time"
)

// DateLayout is the calendar date format used at every boundary (yyyy-MM-dd).
const DateLayout = "2006-01-02"

// DateWindow is an inclusive calendar-day range. A window whose start is
// after its end is empty and produces no installments.
type DateWindow struct {
	Start time.Time
	End   time.Time
}

// NewDateWindow creates a window, stripping the time-of-day of both bounds.
func NewDateWindow(start, end time.Time) DateWindow {
	return DateWindow{
		Start: toDay(start),
		End:   toDay(end),
	}
}

// ParseDateWindow parses both bounds in yyyy-MM-dd format.
func ParseDateWindow(start, end string) (DateWindow, error) {
	startDate, err := ParseDate(start)
	if err != nil {
		return DateWindow{}, fmt.Errorf("invalid start date: %w", err)
	}
	endDate, err := ParseDate(end)
	if err != nil {
		return DateWindow{}, fmt.Errorf("invalid end date: %w", err)
	}
	return DateWindow{Start: startDate, End: endDate}, nil
}

// CumulativeWindow returns a window with no lower bound ending at asOf.
func CumulativeWindow(asOf time.Time) DateWindow {
	return DateWindow{End: toDay(asOf)}
}

// ParseDate parses a yyyy-MM-dd calendar date.
func ParseDate(value string) (time.Time, error) {
	return time.ParseInLocation(DateLayout, value, time.UTC)
}

// IsEmpty reports whether the window contains no day at all.
func (w DateWindow) IsEmpty() bool {
	return w.Start.After(w.End)
}

// IsUnbounded reports whether the window has no lower bound.
func (w DateWindow) IsUnbounded() bool {
	return w.Start.IsZero()
}

// Contains reports whether the calendar day of date lies within the window.
func (w DateWindow) Contains(date time.Time) bool {
	day := toDay(date)
	return !day.Before(w.Start) && !day.After(w.End)
}

// Overlaps reports whether the inclusive span [from, to] intersects the window.
func (w DateWindow) Overlaps(from, to time.Time) bool {
	return !toDay(from).After(w.End) && !toDay(to).Before(w.Start)
}

// Key returns a stable identifier for the window, used for caching.
func (w DateWindow) Key() string {
	start := "-"
	if !w.IsUnbounded() {
		start = w.Start.Format(DateLayout)
	}
	return start + ".." + w.End.Format(DateLayout)
}

// String implements fmt.Stringer.
func (w DateWindow) String() string {
	return "[" + w.Key() + "]"
}

func toDay(t time.Time) time.Time {
	if t.IsZero() {
		return t
	}
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
