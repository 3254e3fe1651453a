// Package report contains the financial report use cases.
package report

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"

	"github.com/luccavalentin/vanderleideploy-sub000/internal/application/adapter"
	"github.com/luccavalentin/vanderleideploy-sub000/internal/domain/entity"
	domainerror "github.com/luccavalentin/vanderleideploy-sub000/internal/domain/error"
	"github.com/luccavalentin/vanderleideploy-sub000/internal/domain/recurrence"
	"github.com/luccavalentin/vanderleideploy-sub000/internal/domain/valueobject"
)

// GetOverviewInput represents the input for the revenue versus expense overview.
type GetOverviewInput struct {
	Window valueobject.DateWindow
}

// OverviewPoint represents one month of the overview series.
type OverviewPoint struct {
	Month   valueobject.MonthKey
	Revenue decimal.Decimal
	Expense decimal.Decimal
	Balance decimal.Decimal
}

// GetOverviewOutput represents the revenue versus expense overview.
type GetOverviewOutput struct {
	Period  ReportPeriod
	Revenue Summary
	Expense Summary
	Balance decimal.Decimal
	Series  []OverviewPoint
}

// GetOverviewUseCase handles the combined revenue and expense report.
type GetOverviewUseCase struct {
	source *aggregateSource
}

// NewGetOverviewUseCase creates a new GetOverviewUseCase instance.
func NewGetOverviewUseCase(
	recordRepo adapter.FinancialRecordRepository,
	cache adapter.ReportCache,
) *GetOverviewUseCase {
	return &GetOverviewUseCase{
		source: newAggregateSource(recordRepo, cache),
	}
}

// Execute aggregates both kinds concurrently and merges them into a
// gap-free monthly series.
func (uc *GetOverviewUseCase) Execute(
	ctx context.Context,
	input GetOverviewInput,
) (*GetOverviewOutput, error) {
	if CountMonths(input.Window) > MaxSeriesMonths {
		return nil, domainerror.NewReportError(
			domainerror.ErrCodeWindowTooLarge,
			fmt.Sprintf("window must span at most %d months", MaxSeriesMonths),
			domainerror.ErrWindowTooLarge,
		)
	}

	var revenue, expense *recurrence.AggregateResult

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		revenue, err = uc.source.aggregate(gctx, entity.RecordKindRevenue, input.Window)
		return err
	})
	g.Go(func() error {
		var err error
		expense, err = uc.source.aggregate(gctx, entity.RecordKindExpense, input.Window)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("failed to get overview: %w", err)
	}

	months := GenerateMonthSeries(input.Window)
	series := make([]OverviewPoint, 0, len(months))
	for _, month := range months {
		in := revenue.ByMonth[month]
		out := expense.ByMonth[month]
		series = append(series, OverviewPoint{
			Month:   month,
			Revenue: in,
			Expense: out,
			Balance: in.Sub(out),
		})
	}

	return &GetOverviewOutput{
		Period:  NewReportPeriod(input.Window),
		Revenue: NewSummary(revenue),
		Expense: NewSummary(expense),
		Balance: revenue.Total.Sub(expense.Total),
		Series:  series,
	}, nil
}
