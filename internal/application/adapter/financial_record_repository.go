// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/luccavalentin/vanderleideploy-sub000/internal/domain/entity"
	"github.com/luccavalentin/vanderleideploy-sub000/internal/domain/valueobject"
)

// FinancialRecordFilter defines filter options for listing records by anchor date.
type FinancialRecordFilter struct {
	Kind      *entity.RecordKind
	StartDate *time.Time
	EndDate   *time.Time
}

// FinancialRecordRepository defines the interface for financial record persistence operations.
type FinancialRecordRepository interface {
	// Create creates a new financial record in the database.
	Create(ctx context.Context, record *entity.FinancialRecord) error

	// FindByID retrieves a financial record by its ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.FinancialRecord, error)

	// FindContributing returns every record of the given kind that may produce
	// installments inside window: records anchored on or before its end.
	// Malformed rows are skipped, not returned as errors.
	FindContributing(ctx context.Context, kind entity.RecordKind, window valueobject.DateWindow) ([]entity.FinancialRecord, error)

	// List returns records whose anchor date matches the filter, newest first.
	List(ctx context.Context, filter FinancialRecordFilter) ([]entity.FinancialRecord, error)

	// Delete soft-deletes a financial record.
	Delete(ctx context.Context, id uuid.UUID) error
}
