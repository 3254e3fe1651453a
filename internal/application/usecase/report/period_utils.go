// Package report contains the financial report use cases.
package report

import (
	"fmt"

	"github.com/luccavalentin/vanderleideploy-sub000/internal/domain/valueobject"
)

// MaxSeriesMonths bounds the length of a gap-free monthly series.
const MaxSeriesMonths = 120

// GeneratePeriodLabel generates a human-readable label for a report window.
// Formats:
// - Single month: "{month_abbr}/{year}" (e.g., "Mar/2025")
// - Single quarter: "T{quarter} {year}" (e.g., "T1 2025")
// - Whole year: "{year}"
// - Cumulative: "Até {dd/MM/yyyy}"
// - Otherwise: "{start month} - {end month}"
func GeneratePeriodLabel(window valueobject.DateWindow) string {
	if window.IsUnbounded() {
		return fmt.Sprintf("Até %s", window.End.Format("02/01/2006"))
	}

	start, end := window.Start, window.End
	startMonth := valueobject.MonthKeyOf(start)
	endMonth := valueobject.MonthKeyOf(end)

	if startMonth == endMonth {
		return valueobject.MonthLabel(startMonth)
	}

	if start.Year() == end.Year() && start.Equal(startMonth.FirstDay()) && end.Equal(endMonth.LastDay()) {
		if start.Month() == 1 && end.Month() == 12 {
			return fmt.Sprintf("%d", start.Year())
		}
		startQuarter := (int(start.Month())-1)/3 + 1
		endQuarter := (int(end.Month())-1)/3 + 1
		if startQuarter == endQuarter && (int(start.Month())-1)%3 == 0 && int(end.Month())%3 == 0 {
			return fmt.Sprintf("T%d %d", startQuarter, start.Year())
		}
	}

	return fmt.Sprintf("%s - %s", valueobject.MonthLabel(startMonth), valueobject.MonthLabel(endMonth))
}

// GenerateMonthSeries returns every month touched by window, in order, so
// charts render with no gaps. Empty windows produce an empty series.
func GenerateMonthSeries(window valueobject.DateWindow) []valueobject.MonthKey {
	if window.IsEmpty() {
		return []valueobject.MonthKey{}
	}

	last := valueobject.MonthKeyOf(window.End)
	var months []valueobject.MonthKey
	for current := valueobject.MonthKeyOf(window.Start); !last.Before(current); current = current.AddMonths(1) {
		months = append(months, current)
	}
	return months
}

// CountMonths returns the number of months touched by window.
func CountMonths(window valueobject.DateWindow) int {
	if window.IsEmpty() {
		return 0
	}
	start := valueobject.MonthKeyOf(window.Start)
	end := valueobject.MonthKeyOf(window.End)
	return (end.Year-start.Year)*12 + int(end.Month) - int(start.Month) + 1
}
