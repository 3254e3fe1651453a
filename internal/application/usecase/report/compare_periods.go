// Package report contains the financial report use cases.
package report

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"

	"github.com/luccavalentin/vanderleideploy-sub000/internal/application/adapter"
	"github.com/luccavalentin/vanderleideploy-sub000/internal/domain/entity"
	"github.com/luccavalentin/vanderleideploy-sub000/internal/domain/recurrence"
	"github.com/luccavalentin/vanderleideploy-sub000/internal/domain/valueobject"
)

// ComparePeriodsInput represents the input for comparing two windows.
type ComparePeriodsInput struct {
	Kind     entity.RecordKind
	Current  valueobject.DateWindow
	Previous valueobject.DateWindow
}

// PeriodTotal represents the total of one compared window.
type PeriodTotal struct {
	Period ReportPeriod
	Total  decimal.Decimal
}

// ComparePeriodsOutput represents the comparison between two windows.
type ComparePeriodsOutput struct {
	Kind     entity.RecordKind
	Current  PeriodTotal
	Previous PeriodTotal
	Change   decimal.Decimal
	// ChangePercentage is nil when the previous total is zero.
	ChangePercentage *float64
}

// ComparePeriodsUseCase handles period-over-period comparison of one record kind.
type ComparePeriodsUseCase struct {
	source *aggregateSource
}

// NewComparePeriodsUseCase creates a new ComparePeriodsUseCase instance.
func NewComparePeriodsUseCase(
	recordRepo adapter.FinancialRecordRepository,
	cache adapter.ReportCache,
) *ComparePeriodsUseCase {
	return &ComparePeriodsUseCase{
		source: newAggregateSource(recordRepo, cache),
	}
}

// Execute aggregates both windows concurrently.
func (uc *ComparePeriodsUseCase) Execute(
	ctx context.Context,
	input ComparePeriodsInput,
) (*ComparePeriodsOutput, error) {
	if err := validateKind(input.Kind); err != nil {
		return nil, err
	}

	var current, previous *recurrence.AggregateResult

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		current, err = uc.source.aggregate(gctx, input.Kind, input.Current)
		return err
	})
	g.Go(func() error {
		var err error
		previous, err = uc.source.aggregate(gctx, input.Kind, input.Previous)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("failed to compare periods: %w", err)
	}

	output := &ComparePeriodsOutput{
		Kind: input.Kind,
		Current: PeriodTotal{
			Period: NewReportPeriod(input.Current),
			Total:  current.Total,
		},
		Previous: PeriodTotal{
			Period: NewReportPeriod(input.Previous),
			Total:  previous.Total,
		},
		Change: current.Total.Sub(previous.Total),
	}

	if !previous.Total.IsZero() {
		pct, _ := output.Change.Mul(decimal.NewFromInt(100)).Div(previous.Total.Abs()).Round(2).Float64()
		output.ChangePercentage = &pct
	}

	return output, nil
}
