// Package report contains the financial report use cases.
package report

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/shopspring/decimal"

	"github.com/luccavalentin/vanderleideploy-sub000/internal/application/adapter"
	"github.com/luccavalentin/vanderleideploy-sub000/internal/domain/entity"
	domainerror "github.com/luccavalentin/vanderleideploy-sub000/internal/domain/error"
	"github.com/luccavalentin/vanderleideploy-sub000/internal/domain/recurrence"
	"github.com/luccavalentin/vanderleideploy-sub000/internal/domain/valueobject"
)

// ReportPeriod represents the window a report was computed over.
type ReportPeriod struct {
	StartDate   *time.Time // Nil for cumulative reports
	EndDate     time.Time
	PeriodLabel string
	Disabled    bool // True when start is after end
}

// CategoryBreakdownItem represents a single category in the breakdown.
type CategoryBreakdownItem struct {
	Category   string
	Amount     decimal.Decimal
	Percentage float64
}

// MonthBreakdownItem represents a single month in the breakdown.
type MonthBreakdownItem struct {
	Month  valueobject.MonthKey
	Amount decimal.Decimal
}

// Summary is the presentation-ready shape of an aggregate.
type Summary struct {
	Total            decimal.Decimal
	Categories       []CategoryBreakdownItem
	Months           []MonthBreakdownItem
	InstallmentCount int
}

// NewSummary converts an aggregate into ordered breakdowns with percentages.
func NewSummary(result *recurrence.AggregateResult) Summary {
	categories := make([]CategoryBreakdownItem, 0, len(result.ByCategory))
	for _, c := range result.Categories() {
		var percentage float64
		if !result.Total.IsZero() {
			pct := c.Amount.Mul(decimal.NewFromInt(100)).Div(result.Total)
			percentage, _ = pct.Round(2).Float64()
		}
		categories = append(categories, CategoryBreakdownItem{
			Category:   c.Category,
			Amount:     c.Amount,
			Percentage: percentage,
		})
	}

	months := make([]MonthBreakdownItem, 0, len(result.ByMonth))
	for _, m := range result.Months() {
		months = append(months, MonthBreakdownItem{
			Month:  m.Month,
			Amount: m.Amount,
		})
	}

	return Summary{
		Total:            result.Total,
		Categories:       categories,
		Months:           months,
		InstallmentCount: result.InstallmentCount,
	}
}

// NewReportPeriod describes window for report outputs.
func NewReportPeriod(window valueobject.DateWindow) ReportPeriod {
	period := ReportPeriod{
		EndDate:     window.End,
		PeriodLabel: GeneratePeriodLabel(window),
		Disabled:    window.IsEmpty(),
	}
	if !window.IsUnbounded() {
		start := window.Start
		period.StartDate = &start
	}
	return period
}

// aggregateSource loads records for a kind and aggregates them, going
// through the report cache when one is configured.
type aggregateSource struct {
	recordRepo adapter.FinancialRecordRepository
	cache      adapter.ReportCache
}

func newAggregateSource(recordRepo adapter.FinancialRecordRepository, cache adapter.ReportCache) *aggregateSource {
	return &aggregateSource{
		recordRepo: recordRepo,
		cache:      cache,
	}
}

// aggregate returns the aggregate of kind over window. Empty windows never
// reach the store. Cache errors are logged and otherwise ignored.
func (s *aggregateSource) aggregate(
	ctx context.Context,
	kind entity.RecordKind,
	window valueobject.DateWindow,
) (*recurrence.AggregateResult, error) {
	if window.IsEmpty() {
		return recurrence.NewAggregateResult(), nil
	}

	if s.cache != nil {
		cached, ok, err := s.cache.Get(ctx, kind, window)
		if err != nil {
			slog.WarnContext(ctx, "Failed to read report cache",
				"kind", kind,
				"window", window.Key(),
				"error", err,
			)
		} else if ok {
			return cached, nil
		}
	}

	records, err := s.recordRepo.FindContributing(ctx, kind, window)
	if err != nil {
		return nil, fmt.Errorf("failed to load %s records: %w", kind, err)
	}

	result := recurrence.Aggregate(records, window)

	if s.cache != nil {
		if err := s.cache.Set(ctx, kind, window, result); err != nil {
			slog.WarnContext(ctx, "Failed to write report cache",
				"kind", kind,
				"window", window.Key(),
				"error", err,
			)
		}
	}

	return result, nil
}

// validateKind validates a record kind supplied by the caller.
func validateKind(kind entity.RecordKind) error {
	if kind == "" {
		return domainerror.NewReportError(
			domainerror.ErrCodeMissingRecordKind,
			"kind is required",
			domainerror.ErrMissingRecordKind,
		)
	}

	if !kind.IsValid() {
		return domainerror.NewReportError(
			domainerror.ErrCodeInvalidRecordKind,
			"kind must be: revenue or expense",
			domainerror.ErrInvalidRecordKind,
		)
	}

	return nil
}
