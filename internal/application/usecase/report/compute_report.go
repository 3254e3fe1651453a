// Package report contains the financial report use cases.
package report

import (
	"context"
	"log/slog"

	"github.com/luccavalentin/vanderleideploy-sub000/internal/domain/recurrence"
	"github.com/luccavalentin/vanderleideploy-sub000/internal/domain/valueobject"
)

// ComputeReportInput represents an ad-hoc batch of raw records and a window.
type ComputeReportInput struct {
	Records []recurrence.RawRecord
	Window  valueobject.DateWindow
}

// ComputeReportOutput represents the aggregate of an ad-hoc batch.
type ComputeReportOutput struct {
	Period  ReportPeriod
	Summary Summary
	// Skipped counts rows dropped as malformed.
	Skipped int
}

// ComputeReportUseCase aggregates caller-supplied records without touching the store.
type ComputeReportUseCase struct{}

// NewComputeReportUseCase creates a new ComputeReportUseCase instance.
func NewComputeReportUseCase() *ComputeReportUseCase {
	return &ComputeReportUseCase{}
}

// Execute parses the batch, skipping malformed rows, and aggregates it.
func (uc *ComputeReportUseCase) Execute(
	ctx context.Context,
	input ComputeReportInput,
) (*ComputeReportOutput, error) {
	records, skipped := recurrence.ParseRecords(ctx, input.Records)
	if skipped > 0 {
		slog.InfoContext(ctx, "Skipped malformed records in compute request",
			"skipped", skipped,
			"received", len(input.Records),
		)
	}

	result := recurrence.Aggregate(records, input.Window)

	return &ComputeReportOutput{
		Period:  NewReportPeriod(input.Window),
		Summary: NewSummary(result),
		Skipped: skipped,
	}, nil
}
