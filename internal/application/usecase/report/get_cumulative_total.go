// Package report contains the financial report use cases.
package report

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/luccavalentin/vanderleideploy-sub000/internal/application/adapter"
	"github.com/luccavalentin/vanderleideploy-sub000/internal/domain/entity"
	"github.com/luccavalentin/vanderleideploy-sub000/internal/domain/valueobject"
)

// GetCumulativeTotalInput represents the input for the accumulated-to-date total.
type GetCumulativeTotalInput struct {
	Kind entity.RecordKind
	AsOf time.Time // Zero means today
}

// GetCumulativeTotalOutput represents the accumulated-to-date total.
type GetCumulativeTotalOutput struct {
	Kind             entity.RecordKind
	Period           ReportPeriod
	Total            decimal.Decimal
	Categories       []CategoryBreakdownItem
	InstallmentCount int
}

// GetCumulativeTotalUseCase sums every installment due up to a date, with no lower bound.
type GetCumulativeTotalUseCase struct {
	source *aggregateSource
	now    func() time.Time
}

// NewGetCumulativeTotalUseCase creates a new GetCumulativeTotalUseCase instance.
func NewGetCumulativeTotalUseCase(
	recordRepo adapter.FinancialRecordRepository,
	cache adapter.ReportCache,
) *GetCumulativeTotalUseCase {
	return &GetCumulativeTotalUseCase{
		source: newAggregateSource(recordRepo, cache),
		now:    time.Now,
	}
}

// Execute computes the cumulative total.
func (uc *GetCumulativeTotalUseCase) Execute(
	ctx context.Context,
	input GetCumulativeTotalInput,
) (*GetCumulativeTotalOutput, error) {
	if err := validateKind(input.Kind); err != nil {
		return nil, err
	}

	asOf := input.AsOf
	if asOf.IsZero() {
		asOf = uc.now()
	}
	window := valueobject.CumulativeWindow(asOf)

	result, err := uc.source.aggregate(ctx, input.Kind, window)
	if err != nil {
		return nil, fmt.Errorf("failed to get cumulative total: %w", err)
	}

	summary := NewSummary(result)

	return &GetCumulativeTotalOutput{
		Kind:             input.Kind,
		Period:           NewReportPeriod(window),
		Total:            summary.Total,
		Categories:       summary.Categories,
		InstallmentCount: summary.InstallmentCount,
	}, nil
}
