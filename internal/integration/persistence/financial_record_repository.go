// Package persistence implements repository interfaces for database operations.
package persistence

import (
	"context"
	"errors"
	"log/slog"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/luccavalentin/vanderleideploy-sub000/internal/application/adapter"
	"github.com/luccavalentin/vanderleideploy-sub000/internal/domain/entity"
	domainerror "github.com/luccavalentin/vanderleideploy-sub000/internal/domain/error"
	"github.com/luccavalentin/vanderleideploy-sub000/internal/domain/recurrence"
	"github.com/luccavalentin/vanderleideploy-sub000/internal/domain/valueobject"
	"github.com/luccavalentin/vanderleideploy-sub000/internal/integration/persistence/model"
)

// financialRecordRepository implements the adapter.FinancialRecordRepository interface.
type financialRecordRepository struct {
	db *gorm.DB
}

// NewFinancialRecordRepository creates a new financial record repository instance.
func NewFinancialRecordRepository(db *gorm.DB) adapter.FinancialRecordRepository {
	return &financialRecordRepository{
		db: db,
	}
}

// Create creates a new financial record in the database.
func (r *financialRecordRepository) Create(ctx context.Context, record *entity.FinancialRecord) error {
	recordModel := model.FinancialRecordFromEntity(record)
	result := r.db.WithContext(ctx).Create(recordModel)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// FindByID retrieves a financial record by its ID.
func (r *financialRecordRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.FinancialRecord, error) {
	var recordModel model.FinancialRecordModel
	result := r.db.WithContext(ctx).Where("id = ?", id).First(&recordModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrRecordNotFound
		}
		return nil, result.Error
	}
	return recordModel.ToEntity()
}

// FindContributing retrieves every record of kind anchored on or before the
// window end. Dates are stored as yyyy-MM-dd text, so the string comparison
// matches calendar order.
func (r *financialRecordRepository) FindContributing(
	ctx context.Context,
	kind entity.RecordKind,
	window valueobject.DateWindow,
) ([]entity.FinancialRecord, error) {
	var recordModels []model.FinancialRecordModel
	result := r.db.WithContext(ctx).
		Where("kind = ?", string(kind)).
		Where("date <= ?", window.End.Format(valueobject.DateLayout)).
		Order("date ASC, created_at ASC").
		Find(&recordModels)
	if result.Error != nil {
		return nil, result.Error
	}

	raws := make([]recurrence.RawRecord, len(recordModels))
	for i := range recordModels {
		raws[i] = recordModels[i].ToRaw()
	}

	records, skipped := recurrence.ParseRecords(ctx, raws)
	if skipped > 0 {
		slog.WarnContext(ctx, "Skipped malformed financial records",
			"kind", kind,
			"skipped", skipped,
		)
	}
	return records, nil
}

// List retrieves records whose anchor date matches the filter, newest first.
func (r *financialRecordRepository) List(ctx context.Context, filter adapter.FinancialRecordFilter) ([]entity.FinancialRecord, error) {
	query := r.db.WithContext(ctx).Model(&model.FinancialRecordModel{})

	if filter.Kind != nil {
		query = query.Where("kind = ?", string(*filter.Kind))
	}
	if filter.StartDate != nil {
		query = query.Where("date >= ?", filter.StartDate.Format(valueobject.DateLayout))
	}
	if filter.EndDate != nil {
		query = query.Where("date <= ?", filter.EndDate.Format(valueobject.DateLayout))
	}

	var recordModels []model.FinancialRecordModel
	result := query.
		Order("date DESC, created_at DESC").
		Find(&recordModels)
	if result.Error != nil {
		return nil, result.Error
	}

	records := make([]entity.FinancialRecord, 0, len(recordModels))
	for i := range recordModels {
		record, err := recordModels[i].ToEntity()
		if err != nil {
			slog.WarnContext(ctx, "Skipping malformed financial record",
				"id", recordModels[i].ID,
				"error", err,
			)
			continue
		}
		records = append(records, *record)
	}
	return records, nil
}

// Delete soft-deletes a financial record.
func (r *financialRecordRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Where("id = ?", id).Delete(&model.FinancialRecordModel{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerror.ErrRecordNotFound
	}
	return nil
}
