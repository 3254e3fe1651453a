// Package valueobject contains domain value objects for the reporting system.
package valueobject

import (
	"fmt"
	"time"
)

// MonthKeyLayout is the locale-agnostic bucket format (yyyy-MM).
const MonthKeyLayout = "2006-01"

// MonthKey identifies a calendar month. Keys compare chronologically with Before.
type MonthKey struct {
	Year  int
	Month time.Month
}

// MonthKeyOf returns the month containing date.
func MonthKeyOf(date time.Time) MonthKey {
	return MonthKey{Year: date.Year(), Month: date.Month()}
}

// ParseMonthKey parses a yyyy-MM key.
func ParseMonthKey(value string) (MonthKey, error) {
	t, err := time.Parse(MonthKeyLayout, value)
	if err != nil {
		return MonthKey{}, fmt.Errorf("invalid month key %q: %w", value, err)
	}
	return MonthKeyOf(t), nil
}

// FirstDay returns the first day of the month.
func (m MonthKey) FirstDay() time.Time {
	return time.Date(m.Year, m.Month, 1, 0, 0, 0, 0, time.UTC)
}

// LastDay returns the last day of the month.
func (m MonthKey) LastDay() time.Time {
	return m.FirstDay().AddDate(0, 1, -1)
}

// AddMonths returns the key n months later (or earlier when n is negative).
func (m MonthKey) AddMonths(n int) MonthKey {
	return MonthKeyOf(m.FirstDay().AddDate(0, n, 0))
}

// Before reports whether m is strictly earlier than other.
func (m MonthKey) Before(other MonthKey) bool {
	if m.Year != other.Year {
		return m.Year < other.Year
	}
	return m.Month < other.Month
}

// String returns the yyyy-MM representation.
func (m MonthKey) String() string {
	return fmt.Sprintf("%04d-%02d", m.Year, int(m.Month))
}

// MarshalText implements encoding.TextMarshaler so keys can index JSON maps.
func (m MonthKey) MarshalText() ([]byte, error) {
	return []byte(m.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (m *MonthKey) UnmarshalText(text []byte) error {
	parsed, err := ParseMonthKey(string(text))
	if err != nil {
		return err
	}
	*m = parsed
	return nil
}

// monthAbbreviations maps months to Portuguese abbreviations.
var monthAbbreviations = map[time.Month]string{
	time.January:   "Jan",
	time.February:  "Fev",
	time.March:     "Mar",
	time.April:     "Abr",
	time.May:       "Mai",
	time.June:      "Jun",
	time.July:      "Jul",
	time.August:    "Ago",
	time.September: "Set",
	time.October:   "Out",
	time.November:  "Nov",
	time.December:  "Dez",
}

// MonthAbbreviation returns the Portuguese abbreviation of month.
func MonthAbbreviation(month time.Month) string {
	return monthAbbreviations[month]
}

// MonthLabel returns the presentation label for a month (e.g., "Fev/2024").
func MonthLabel(m MonthKey) string {
	return fmt.Sprintf("%s/%d", monthAbbreviations[m.Month], m.Year)
}
