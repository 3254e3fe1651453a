package recurrence

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/luccavalentin/vanderleideploy-sub000/internal/domain/entity"
	"github.com/luccavalentin/vanderleideploy-sub000/internal/domain/valueobject"
)

// AggregateResult holds the totals of every installment inside a window.
// The values of ByCategory and of ByMonth each sum to Total.
type AggregateResult struct {
	Total            decimal.Decimal
	ByCategory       map[string]decimal.Decimal
	ByMonth          map[valueobject.MonthKey]decimal.Decimal
	InstallmentCount int
}

// CategoryTotal is one entry of the category breakdown.
type CategoryTotal struct {
	Category string
	Amount   decimal.Decimal
}

// MonthTotal is one entry of the monthly breakdown.
type MonthTotal struct {
	Month  valueobject.MonthKey
	Amount decimal.Decimal
}

// NewAggregateResult returns an empty result.
func NewAggregateResult() *AggregateResult {
	return &AggregateResult{
		Total:      decimal.Zero,
		ByCategory: make(map[string]decimal.Decimal),
		ByMonth:    make(map[valueobject.MonthKey]decimal.Decimal),
	}
}

// Add folds one installment into the result. Buckets are keyed by the
// installment's own date, not by the anchor date of its record.
func (r *AggregateResult) Add(installment entity.Installment) {
	category := entity.NormalizeCategory(installment.Category)
	month := valueobject.MonthKeyOf(installment.Date)

	r.Total = r.Total.Add(installment.Amount)
	r.ByCategory[category] = r.ByCategory[category].Add(installment.Amount)
	r.ByMonth[month] = r.ByMonth[month].Add(installment.Amount)
	r.InstallmentCount++
}

// IsEmpty reports whether no installment was aggregated.
func (r *AggregateResult) IsEmpty() bool {
	return r.InstallmentCount == 0
}

// Categories returns the category breakdown ordered by amount (descending),
// ties broken by name.
func (r *AggregateResult) Categories() []CategoryTotal {
	categories := make([]CategoryTotal, 0, len(r.ByCategory))
	for category, amount := range r.ByCategory {
		categories = append(categories, CategoryTotal{Category: category, Amount: amount})
	}
	sort.Slice(categories, func(i, j int) bool {
		if cmp := categories[i].Amount.Cmp(categories[j].Amount); cmp != 0 {
			return cmp > 0
		}
		return categories[i].Category < categories[j].Category
	})
	return categories
}

// Months returns the monthly breakdown in chronological order.
func (r *AggregateResult) Months() []MonthTotal {
	months := make([]MonthTotal, 0, len(r.ByMonth))
	for month, amount := range r.ByMonth {
		months = append(months, MonthTotal{Month: month, Amount: amount})
	}
	sort.Slice(months, func(i, j int) bool {
		return months[i].Month.Before(months[j].Month)
	})
	return months
}

// Aggregate expands every record once and folds all installments inside
// window into a single result.
func Aggregate(records []entity.FinancialRecord, window valueobject.DateWindow) *AggregateResult {
	result := NewAggregateResult()
	if window.IsEmpty() {
		return result
	}

	for _, record := range records {
		for _, installment := range Expand(record, window) {
			result.Add(installment)
		}
	}
	return result
}

// Total returns the sum of all installments inside window.
func Total(records []entity.FinancialRecord, window valueobject.DateWindow) decimal.Decimal {
	return Aggregate(records, window).Total
}

// ByCategory returns the installment totals inside window grouped by category.
func ByCategory(records []entity.FinancialRecord, window valueobject.DateWindow) map[string]decimal.Decimal {
	return Aggregate(records, window).ByCategory
}

// ByMonth returns the installment totals inside window grouped by month.
func ByMonth(records []entity.FinancialRecord, window valueobject.DateWindow) map[valueobject.MonthKey]decimal.Decimal {
	return Aggregate(records, window).ByMonth
}

// CumulativeTotal aggregates every installment due up to and including asOf,
// with no lower bound. This is the "accumulated to date" figure, distinct
// from a two-sided window.
func CumulativeTotal(records []entity.FinancialRecord, asOf time.Time) *AggregateResult {
	return Aggregate(records, valueobject.CumulativeWindow(asOf))
}
