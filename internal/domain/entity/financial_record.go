// Package entity defines the core business entities for the domain layer.
package entity

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// RecordKind represents the side of the ledger a financial record belongs to.
type RecordKind string

const (
	RecordKindRevenue RecordKind = "revenue"
	RecordKindExpense RecordKind = "expense"
)

// IsValid reports whether the kind is one of the known record kinds.
func (k RecordKind) IsValid() bool {
	return k == RecordKindRevenue || k == RecordKindExpense
}

// ParseRecordKind parses a kind from user input. It accepts the English
// values and the Portuguese names used by the source system.
func ParseRecordKind(value string) (RecordKind, bool) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "revenue", "receita", "receitas":
		return RecordKindRevenue, true
	case "expense", "despesa", "despesas":
		return RecordKindExpense, true
	}
	return "", false
}

// UncategorizedCategory is the bucket used for records without a category (Portuguese).
const UncategorizedCategory = "Sem categoria"

// NormalizeCategory trims the label and folds empty values into UncategorizedCategory.
func NormalizeCategory(category string) string {
	category = strings.TrimSpace(category)
	if category == "" {
		return UncategorizedCategory
	}
	return category
}

// FinancialRecord represents a revenue or expense entry, possibly recurring.
type FinancialRecord struct {
	ID               uuid.UUID
	Kind             RecordKind
	Description      string
	Amount           decimal.Decimal
	AnchorDate       time.Time // Calendar date, midnight UTC
	Frequency        Frequency
	InstallmentCount int // Only meaningful for fixed-term frequencies
	Category         string
	CreatedAt        time.Time
	UpdatedAt        time.Time
	DeletedAt        *time.Time // Soft-delete support
}

// NewFinancialRecord creates a new FinancialRecord entity.
func NewFinancialRecord(
	kind RecordKind,
	description string,
	amount decimal.Decimal,
	anchorDate time.Time,
	frequency Frequency,
	installmentCount int,
	category string,
) *FinancialRecord {
	now := time.Now().UTC()

	if !frequency.IsFixedTerm() {
		installmentCount = 0
	}

	return &FinancialRecord{
		ID:               uuid.New(),
		Kind:             kind,
		Description:      description,
		Amount:           amount,
		AnchorDate:       TruncateToDay(anchorDate),
		Frequency:        frequency,
		InstallmentCount: installmentCount,
		Category:         NormalizeCategory(category),
		CreatedAt:        now,
		UpdatedAt:        now,
	}
}

// Installment is one dated occurrence of a record's amount. It is derived
// during aggregation and never persisted.
type Installment struct {
	Date     time.Time
	Amount   decimal.Decimal
	Category string
}

// TruncateToDay strips the time-of-day, keeping the calendar date as seen in
// the value's own location, and returns it at midnight UTC.
func TruncateToDay(t time.Time) time.Time {
	if t.IsZero() {
		return t
	}
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
