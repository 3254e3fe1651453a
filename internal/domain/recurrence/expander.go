// Package recurrence expands recurring financial records into dated
// installments and folds them into period aggregates.
//
// Both operations are pure: they never touch the store, hold no shared state
// and can run concurrently over the same read-only record slice.
package recurrence

import (
	"time"

	"github.com/luccavalentin/vanderleideploy-sub000/internal/domain/entity"
	"github.com/luccavalentin/vanderleideploy-sub000/internal/domain/valueobject"
)

// expandFunc produces the installments of a valid record inside a non-empty window.
type expandFunc func(record entity.FinancialRecord, window valueobject.DateWindow) []entity.Installment

// expanders maps each frequency to its expansion strategy.
var expanders = map[entity.Frequency]expandFunc{
	entity.FrequencyOneTime:          expandOneTime,
	entity.FrequencyMonthlyFixed:     expandMonthlyFixed,
	entity.FrequencyMonthlyFixedTerm: expandMonthlyFixedTerm,
	entity.FrequencyAnnualFixed:      expandAnnualFixed,
	entity.FrequencyAnnualFixedTerm:  expandAnnualFixedTerm,
}

// Expand returns the installments of record that fall inside window, in
// chronological order. Records with a non-positive amount or without an
// anchor date, and empty windows, produce nothing.
func Expand(record entity.FinancialRecord, window valueobject.DateWindow) []entity.Installment {
	if window.IsEmpty() || !record.Amount.IsPositive() || record.AnchorDate.IsZero() {
		return nil
	}

	expand, ok := expanders[record.Frequency]
	if !ok {
		expand = expandOneTime
	}
	return expand(record, window)
}

// expandOneTime yields the anchor date itself when the window contains it.
func expandOneTime(record entity.FinancialRecord, window valueobject.DateWindow) []entity.Installment {
	if !window.Contains(record.AnchorDate) {
		return nil
	}
	return []entity.Installment{newInstallment(record, record.AnchorDate)}
}

// expandMonthlyFixed yields one installment per month, dated on the first of
// the month, from the anchor month onwards. A month counts when any of its
// days lies within the window.
func expandMonthlyFixed(record entity.FinancialRecord, window valueobject.DateWindow) []entity.Installment {
	first := valueobject.MonthKeyOf(record.AnchorDate)
	if startMonth := valueobject.MonthKeyOf(window.Start); first.Before(startMonth) {
		first = startMonth
	}
	last := valueobject.MonthKeyOf(window.End)

	var installments []entity.Installment
	for m := first; !last.Before(m); m = m.AddMonths(1) {
		if window.Overlaps(m.FirstDay(), m.LastDay()) {
			installments = append(installments, newInstallment(record, m.FirstDay()))
		}
	}
	return installments
}

// expandMonthlyFixedTerm yields InstallmentCount due dates, each on the first
// of the month, starting at the anchor month.
func expandMonthlyFixedTerm(record entity.FinancialRecord, window valueobject.DateWindow) []entity.Installment {
	base := valueobject.MonthKeyOf(record.AnchorDate)

	var installments []entity.Installment
	for i := 0; i < record.InstallmentCount; i++ {
		due := base.AddMonths(i).FirstDay()
		if due.After(window.End) {
			break
		}
		if window.Contains(due) {
			installments = append(installments, newInstallment(record, due))
		}
	}
	return installments
}

// expandAnnualFixed yields the anniversary of the anchor date for every year
// the window touches, from the anchor year onwards.
func expandAnnualFixed(record entity.FinancialRecord, window valueobject.DateWindow) []entity.Installment {
	anchorYear := record.AnchorDate.Year()
	startYear := anchorYear
	if y := window.Start.Year(); y > startYear {
		startYear = y
	}

	var installments []entity.Installment
	for year := startYear; year <= window.End.Year(); year++ {
		due := anniversary(record.AnchorDate, year-anchorYear)
		if window.Contains(due) {
			installments = append(installments, newInstallment(record, due))
		}
	}
	return installments
}

// expandAnnualFixedTerm yields InstallmentCount anniversaries of the anchor date.
func expandAnnualFixedTerm(record entity.FinancialRecord, window valueobject.DateWindow) []entity.Installment {
	var installments []entity.Installment
	for i := 0; i < record.InstallmentCount; i++ {
		due := anniversary(record.AnchorDate, i)
		if due.After(window.End) {
			break
		}
		if window.Contains(due) {
			installments = append(installments, newInstallment(record, due))
		}
	}
	return installments
}

// anniversary returns anchor moved forward by years, clamping the day to the
// length of the target month (Feb 29 becomes Feb 28 in common years).
func anniversary(anchor time.Time, years int) time.Time {
	year := anchor.Year() + years
	day := anchor.Day()
	if last := daysIn(anchor.Month(), year); day > last {
		day = last
	}
	return time.Date(year, anchor.Month(), day, 0, 0, 0, 0, time.UTC)
}

func daysIn(month time.Month, year int) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

func newInstallment(record entity.FinancialRecord, date time.Time) entity.Installment {
	return entity.Installment{
		Date:     date,
		Amount:   record.Amount,
		Category: entity.NormalizeCategory(record.Category),
	}
}
