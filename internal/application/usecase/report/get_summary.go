// Package report contains the financial report use cases.
package report

import (
	"context"
	"fmt"

	"github.com/luccavalentin/vanderleideploy-sub000/internal/application/adapter"
	"github.com/luccavalentin/vanderleideploy-sub000/internal/domain/entity"
	"github.com/luccavalentin/vanderleideploy-sub000/internal/domain/valueobject"
)

// GetSummaryInput represents the input for getting a report summary.
type GetSummaryInput struct {
	Kind   entity.RecordKind
	Window valueobject.DateWindow
}

// GetSummaryOutput represents the output of getting a report summary.
type GetSummaryOutput struct {
	Kind    entity.RecordKind
	Period  ReportPeriod
	Summary Summary
}

// GetSummaryUseCase handles the total, category and monthly breakdown of one record kind.
type GetSummaryUseCase struct {
	source *aggregateSource
}

// NewGetSummaryUseCase creates a new GetSummaryUseCase instance.
// cache may be nil.
func NewGetSummaryUseCase(
	recordRepo adapter.FinancialRecordRepository,
	cache adapter.ReportCache,
) *GetSummaryUseCase {
	return &GetSummaryUseCase{
		source: newAggregateSource(recordRepo, cache),
	}
}

// Execute computes the summary for the given kind and window. A window whose
// start is after its end yields an empty summary, not an error.
func (uc *GetSummaryUseCase) Execute(
	ctx context.Context,
	input GetSummaryInput,
) (*GetSummaryOutput, error) {
	if err := validateKind(input.Kind); err != nil {
		return nil, err
	}

	result, err := uc.source.aggregate(ctx, input.Kind, input.Window)
	if err != nil {
		return nil, fmt.Errorf("failed to get summary: %w", err)
	}

	return &GetSummaryOutput{
		Kind:    input.Kind,
		Period:  NewReportPeriod(input.Window),
		Summary: NewSummary(result),
	}, nil
}
