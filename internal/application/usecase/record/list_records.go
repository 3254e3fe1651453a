// Package record contains financial record use cases.
package record

import (
	"context"
	"fmt"
	"time"

	"github.com/luccavalentin/vanderleideploy-sub000/internal/application/adapter"
	"github.com/luccavalentin/vanderleideploy-sub000/internal/domain/entity"
)

// ListRecordsInput represents the input for listing records.
type ListRecordsInput struct {
	Kind      *entity.RecordKind
	StartDate *time.Time
	EndDate   *time.Time
}

// ListRecordsOutput represents the output of listing records.
type ListRecordsOutput struct {
	Records []*RecordOutput
}

// ListRecordsUseCase handles listing stored records by anchor date.
type ListRecordsUseCase struct {
	recordRepo adapter.FinancialRecordRepository
}

// NewListRecordsUseCase creates a new ListRecordsUseCase instance.
func NewListRecordsUseCase(recordRepo adapter.FinancialRecordRepository) *ListRecordsUseCase {
	return &ListRecordsUseCase{
		recordRepo: recordRepo,
	}
}

// Execute lists the records matching the filter, newest first.
func (uc *ListRecordsUseCase) Execute(ctx context.Context, input ListRecordsInput) (*ListRecordsOutput, error) {
	records, err := uc.recordRepo.List(ctx, adapter.FinancialRecordFilter{
		Kind:      input.Kind,
		StartDate: input.StartDate,
		EndDate:   input.EndDate,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list records: %w", err)
	}

	output := &ListRecordsOutput{
		Records: make([]*RecordOutput, 0, len(records)),
	}
	for i := range records {
		output.Records = append(output.Records, toRecordOutput(&records[i]))
	}

	return output, nil
}
