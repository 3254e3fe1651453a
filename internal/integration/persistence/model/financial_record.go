// Package model defines database models for persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/luccavalentin/vanderleideploy-sub000/internal/domain/entity"
	"github.com/luccavalentin/vanderleideploy-sub000/internal/domain/recurrence"
	"github.com/luccavalentin/vanderleideploy-sub000/internal/domain/valueobject"
)

// FinancialRecordModel represents the financial_records table in the database.
// Date and Frequency keep the plain text shape shared with spreadsheet imports;
// they are classified when a row is read back.
type FinancialRecordModel struct {
	ID           uuid.UUID       `gorm:"type:uuid;primaryKey"`
	Kind         string          `gorm:"type:varchar(10);not null;index"`
	Description  string          `gorm:"type:varchar(255)"`
	Amount       decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	Date         string          `gorm:"type:varchar(10);not null;index"` // yyyy-MM-dd
	Frequency    string          `gorm:"type:varchar(40)"`
	Installments *int            `gorm:"type:integer"`
	Category     *string         `gorm:"type:varchar(100)"`
	CreatedAt    time.Time       `gorm:"not null"`
	UpdatedAt    time.Time       `gorm:"not null"`
	DeletedAt    gorm.DeletedAt  `gorm:"index"` // Soft-delete support
}

// TableName returns the table name for the FinancialRecordModel.
func (FinancialRecordModel) TableName() string {
	return "financial_records"
}

// ToRaw converts a FinancialRecordModel to the raw record shape consumed by
// recurrence.ParseRecord.
func (m *FinancialRecordModel) ToRaw() recurrence.RawRecord {
	return recurrence.RawRecord{
		ID:           m.ID.String(),
		Kind:         m.Kind,
		Description:  m.Description,
		Amount:       recurrence.RawAmount(m.Amount.String()),
		Date:         m.Date,
		Frequency:    m.Frequency,
		Installments: m.Installments,
		Category:     m.Category,
	}
}

// ToEntity converts a FinancialRecordModel to a domain FinancialRecord entity.
func (m *FinancialRecordModel) ToEntity() (*entity.FinancialRecord, error) {
	record, err := recurrence.ParseRecord(m.ToRaw())
	if err != nil {
		return nil, err
	}

	record.CreatedAt = m.CreatedAt
	record.UpdatedAt = m.UpdatedAt
	if m.DeletedAt.Valid {
		deletedAt := m.DeletedAt.Time
		record.DeletedAt = &deletedAt
	}

	return &record, nil
}

// FinancialRecordFromEntity creates a FinancialRecordModel from a domain FinancialRecord entity.
func FinancialRecordFromEntity(record *entity.FinancialRecord) *FinancialRecordModel {
	var deletedAt gorm.DeletedAt
	if record.DeletedAt != nil {
		deletedAt = gorm.DeletedAt{Time: *record.DeletedAt, Valid: true}
	}

	var installments *int
	if record.Frequency.IsFixedTerm() {
		count := record.InstallmentCount
		installments = &count
	}

	var category *string
	if record.Category != entity.UncategorizedCategory {
		c := record.Category
		category = &c
	}

	return &FinancialRecordModel{
		ID:           record.ID,
		Kind:         string(record.Kind),
		Description:  record.Description,
		Amount:       record.Amount,
		Date:         record.AnchorDate.Format(valueobject.DateLayout),
		Frequency:    record.Frequency.Label(),
		Installments: installments,
		Category:     category,
		CreatedAt:    record.CreatedAt,
		UpdatedAt:    record.UpdatedAt,
		DeletedAt:    deletedAt,
	}
}
