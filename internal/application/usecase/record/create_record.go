// Package record contains financial record use cases.
package record

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/luccavalentin/vanderleideploy-sub000/internal/application/adapter"
	"github.com/luccavalentin/vanderleideploy-sub000/internal/domain/entity"
	domainerror "github.com/luccavalentin/vanderleideploy-sub000/internal/domain/error"
)

const (
	// MaxDescriptionLength is the maximum allowed length for record descriptions.
	MaxDescriptionLength = 255
	// MaxCategoryLength is the maximum allowed length for category labels.
	MaxCategoryLength = 100
)

// CreateRecordInput represents the input for record creation.
type CreateRecordInput struct {
	Kind         entity.RecordKind
	Description  string
	Amount       decimal.Decimal
	Date         time.Time
	Frequency    entity.Frequency
	Installments int
	Category     string
}

// RecordOutput represents a single financial record in the output.
type RecordOutput struct {
	ID           uuid.UUID
	Kind         entity.RecordKind
	Description  string
	Amount       decimal.Decimal
	Date         time.Time
	Frequency    entity.Frequency
	Installments *int
	Category     string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// CreateRecordOutput represents the output of record creation.
type CreateRecordOutput struct {
	Record *RecordOutput
}

// CreateRecordUseCase handles record creation logic.
type CreateRecordUseCase struct {
	recordRepo adapter.FinancialRecordRepository
	cache      adapter.ReportCache
}

// NewCreateRecordUseCase creates a new CreateRecordUseCase instance.
// cache may be nil.
func NewCreateRecordUseCase(
	recordRepo adapter.FinancialRecordRepository,
	cache adapter.ReportCache,
) *CreateRecordUseCase {
	return &CreateRecordUseCase{
		recordRepo: recordRepo,
		cache:      cache,
	}
}

// Execute performs the record creation.
func (uc *CreateRecordUseCase) Execute(ctx context.Context, input CreateRecordInput) (*CreateRecordOutput, error) {
	if err := validateCreateInput(input); err != nil {
		return nil, err
	}

	record := entity.NewFinancialRecord(
		input.Kind,
		input.Description,
		input.Amount,
		input.Date,
		input.Frequency,
		input.Installments,
		input.Category,
	)

	if err := uc.recordRepo.Create(ctx, record); err != nil {
		return nil, fmt.Errorf("failed to create record: %w", err)
	}

	invalidateReports(ctx, uc.cache, record.Kind)

	return &CreateRecordOutput{
		Record: toRecordOutput(record),
	}, nil
}

func validateCreateInput(input CreateRecordInput) error {
	if !input.Kind.IsValid() {
		return domainerror.NewRecordError(
			domainerror.ErrCodeRecordKindInvalid,
			"kind must be: revenue or expense",
			domainerror.ErrInvalidRecordKind,
		)
	}

	if !input.Amount.IsPositive() {
		return domainerror.NewRecordError(
			domainerror.ErrCodeInvalidRecordAmount,
			"amount must be greater than zero",
			domainerror.ErrInvalidRecordAmount,
		)
	}

	if input.Date.IsZero() {
		return domainerror.NewRecordError(
			domainerror.ErrCodeInvalidRecordDate,
			"date is required",
			domainerror.ErrInvalidRecordDate,
		)
	}

	if input.Frequency.IsFixedTerm() && input.Installments <= 0 {
		return domainerror.NewRecordError(
			domainerror.ErrCodeInvalidInstallmentCount,
			"installments must be greater than zero for fixed-term frequencies",
			domainerror.ErrInvalidInstallmentCount,
		)
	}

	if len(input.Description) > MaxDescriptionLength {
		return domainerror.NewRecordError(
			domainerror.ErrCodeDescriptionTooLong,
			fmt.Sprintf("description must not exceed %d characters", MaxDescriptionLength),
			domainerror.ErrDescriptionTooLong,
		)
	}

	if len(input.Category) > MaxCategoryLength {
		return domainerror.NewRecordError(
			domainerror.ErrCodeCategoryTooLong,
			fmt.Sprintf("category must not exceed %d characters", MaxCategoryLength),
			domainerror.ErrCategoryTooLong,
		)
	}

	return nil
}

// invalidateReports drops cached aggregates of kind. Failures are logged only;
// stale entries expire with the cache TTL.
func invalidateReports(ctx context.Context, cache adapter.ReportCache, kind entity.RecordKind) {
	if cache == nil {
		return
	}
	if err := cache.Invalidate(ctx, kind); err != nil {
		slog.WarnContext(ctx, "Failed to invalidate report cache",
			"kind", kind,
			"error", err,
		)
	}
}

func toRecordOutput(record *entity.FinancialRecord) *RecordOutput {
	output := &RecordOutput{
		ID:          record.ID,
		Kind:        record.Kind,
		Description: record.Description,
		Amount:      record.Amount,
		Date:        record.AnchorDate,
		Frequency:   record.Frequency,
		Category:    record.Category,
		CreatedAt:   record.CreatedAt,
		UpdatedAt:   record.UpdatedAt,
	}
	if record.Frequency.IsFixedTerm() {
		installments := record.InstallmentCount
		output.Installments = &installments
	}
	return output
}
