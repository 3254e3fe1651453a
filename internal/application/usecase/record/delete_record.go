// Package record contains financial record use cases.
package record

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/luccavalentin/vanderleideploy-sub000/internal/application/adapter"
	domainerror "github.com/luccavalentin/vanderleideploy-sub000/internal/domain/error"
)

// DeleteRecordInput represents the input for record deletion.
type DeleteRecordInput struct {
	RecordID uuid.UUID
}

// DeleteRecordOutput represents the output of record deletion.
type DeleteRecordOutput struct {
	Success bool
}

// DeleteRecordUseCase handles record deletion logic.
type DeleteRecordUseCase struct {
	recordRepo adapter.FinancialRecordRepository
	cache      adapter.ReportCache
}

// NewDeleteRecordUseCase creates a new DeleteRecordUseCase instance.
func NewDeleteRecordUseCase(
	recordRepo adapter.FinancialRecordRepository,
	cache adapter.ReportCache,
) *DeleteRecordUseCase {
	return &DeleteRecordUseCase{
		recordRepo: recordRepo,
		cache:      cache,
	}
}

// Execute performs the record deletion.
func (uc *DeleteRecordUseCase) Execute(ctx context.Context, input DeleteRecordInput) (*DeleteRecordOutput, error) {
	record, err := uc.recordRepo.FindByID(ctx, input.RecordID)
	if err != nil {
		if errors.Is(err, domainerror.ErrRecordNotFound) {
			return nil, domainerror.NewRecordError(
				domainerror.ErrCodeRecordNotFound,
				"record not found",
				domainerror.ErrRecordNotFound,
			)
		}
		return nil, fmt.Errorf("failed to find record: %w", err)
	}

	// Soft delete
	if err := uc.recordRepo.Delete(ctx, input.RecordID); err != nil {
		return nil, fmt.Errorf("failed to delete record: %w", err)
	}

	invalidateReports(ctx, uc.cache, record.Kind)

	return &DeleteRecordOutput{
		Success: true,
	}, nil
}
