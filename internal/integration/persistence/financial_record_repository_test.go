package persistence

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/luccavalentin/vanderleideploy-sub000/internal/application/adapter"
	"github.com/luccavalentin/vanderleideploy-sub000/internal/domain/entity"
	domainerror "github.com/luccavalentin/vanderleideploy-sub000/internal/domain/error"
	"github.com/luccavalentin/vanderleideploy-sub000/internal/domain/recurrence"
	"github.com/luccavalentin/vanderleideploy-sub000/internal/domain/valueobject"
	"github.com/luccavalentin/vanderleideploy-sub000/internal/integration/persistence/model"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dbSQL, err := sql.Open("sqlite", "file:"+uuid.NewString()+"?mode=memory&cache=shared")
	if err != nil {
		t.Fatalf("failed to open sqlite: %v", err)
	}
	dbSQL.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = dbSQL.Close() })

	db, err := gorm.Open(sqlite.Dialector{Conn: dbSQL}, &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open gorm: %v", err)
	}

	if err := db.AutoMigrate(&model.FinancialRecordModel{}); err != nil {
		t.Fatalf("failed to migrate: %v", err)
	}
	return db
}

func day(year int, month time.Month, d int) time.Time {
	return time.Date(year, month, d, 0, 0, 0, 0, time.UTC)
}

func newRecord(kind entity.RecordKind, frequency entity.Frequency, amount string, anchor time.Time, installments int, category string) *entity.FinancialRecord {
	return entity.NewFinancialRecord(
		kind,
		"test record",
		decimal.RequireFromString(amount),
		anchor,
		frequency,
		installments,
		category,
	)
}

func TestFinancialRecordRepository_CreateAndFind(t *testing.T) {
	repo := NewFinancialRecordRepository(newTestDB(t))
	ctx := context.Background()

	record := newRecord(entity.RecordKindExpense, entity.FrequencyAnnualFixedTerm, "1234.56", day(2024, time.February, 29), 3, "Seguro")
	if err := repo.Create(ctx, record); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	found, err := repo.FindByID(ctx, record.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if found.ID != record.ID {
		t.Errorf("expected id %s, got %s", record.ID, found.ID)
	}
	if found.Kind != entity.RecordKindExpense {
		t.Errorf("expected expense, got %q", found.Kind)
	}
	if found.Frequency != entity.FrequencyAnnualFixedTerm {
		t.Errorf("expected annual fixed-term, got %v", found.Frequency)
	}
	if found.InstallmentCount != 3 {
		t.Errorf("expected 3 installments, got %d", found.InstallmentCount)
	}
	if !found.Amount.Equal(decimal.RequireFromString("1234.56")) {
		t.Errorf("expected amount 1234.56, got %s", found.Amount)
	}
	if !found.AnchorDate.Equal(day(2024, time.February, 29)) {
		t.Errorf("unexpected anchor date %v", found.AnchorDate)
	}
	if found.Category != "Seguro" {
		t.Errorf("expected category Seguro, got %q", found.Category)
	}

	t.Run("unknown id", func(t *testing.T) {
		_, err := repo.FindByID(ctx, uuid.New())
		if !errors.Is(err, domainerror.ErrRecordNotFound) {
			t.Errorf("expected ErrRecordNotFound, got %v", err)
		}
	})
}

func TestFinancialRecordRepository_FindContributing(t *testing.T) {
	db := newTestDB(t)
	repo := NewFinancialRecordRepository(db)
	ctx := context.Background()

	records := []*entity.FinancialRecord{
		newRecord(entity.RecordKindExpense, entity.FrequencyMonthlyFixed, "100", day(2023, time.June, 10), 0, "Aluguel"),
		newRecord(entity.RecordKindExpense, entity.FrequencyOneTime, "50", day(2024, time.March, 31), 0, ""),
		newRecord(entity.RecordKindExpense, entity.FrequencyOneTime, "70", day(2024, time.April, 1), 0, ""),
		newRecord(entity.RecordKindRevenue, entity.FrequencyOneTime, "900", day(2024, time.January, 1), 0, ""),
	}
	for _, record := range records {
		if err := repo.Create(ctx, record); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}

	// Rows written by other tools may carry dates the domain cannot read.
	broken := model.FinancialRecordModel{
		ID:        uuid.New(),
		Kind:      string(entity.RecordKindExpense),
		Amount:    decimal.NewFromInt(10),
		Date:      "2024-02-30",
		Frequency: "Única",
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}
	if err := db.Create(&broken).Error; err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	w := valueobject.NewDateWindow(day(2024, time.January, 1), day(2024, time.March, 31))
	found, err := repo.FindContributing(ctx, entity.RecordKindExpense, w)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(found) != 2 {
		t.Fatalf("expected 2 contributing records, got %d", len(found))
	}

	total := recurrence.Total(found, w)
	if !total.Equal(decimal.NewFromInt(350)) {
		t.Errorf("expected total 350, got %s", total)
	}
}

func TestFinancialRecordRepository_List(t *testing.T) {
	repo := NewFinancialRecordRepository(newTestDB(t))
	ctx := context.Background()

	older := newRecord(entity.RecordKindRevenue, entity.FrequencyOneTime, "10", day(2024, time.January, 5), 0, "")
	newer := newRecord(entity.RecordKindRevenue, entity.FrequencyOneTime, "20", day(2024, time.May, 5), 0, "")
	expense := newRecord(entity.RecordKindExpense, entity.FrequencyOneTime, "30", day(2024, time.March, 5), 0, "")
	for _, record := range []*entity.FinancialRecord{older, newer, expense} {
		if err := repo.Create(ctx, record); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}

	revenue := entity.RecordKindRevenue
	start := day(2024, time.January, 1)

	tests := []struct {
		name     string
		filter   adapter.FinancialRecordFilter
		expected []uuid.UUID
	}{
		{
			name:     "all records newest first",
			filter:   adapter.FinancialRecordFilter{},
			expected: []uuid.UUID{newer.ID, expense.ID, older.ID},
		},
		{
			name:     "by kind",
			filter:   adapter.FinancialRecordFilter{Kind: &revenue},
			expected: []uuid.UUID{newer.ID, older.ID},
		},
		{
			name: "by anchor date range",
			filter: adapter.FinancialRecordFilter{
				StartDate: &start,
				EndDate:   timePtr(day(2024, time.March, 31)),
			},
			expected: []uuid.UUID{expense.ID, older.ID},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			found, err := repo.List(ctx, tt.filter)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if len(found) != len(tt.expected) {
				t.Fatalf("expected %d records, got %d", len(tt.expected), len(found))
			}
			for i, id := range tt.expected {
				if found[i].ID != id {
					t.Errorf("position %d: expected %s, got %s", i, id, found[i].ID)
				}
			}
		})
	}
}

func TestFinancialRecordRepository_Delete(t *testing.T) {
	db := newTestDB(t)
	repo := NewFinancialRecordRepository(db)
	ctx := context.Background()

	record := newRecord(entity.RecordKindExpense, entity.FrequencyMonthlyFixed, "80", day(2024, time.January, 1), 0, "")
	if err := repo.Create(ctx, record); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if err := repo.Delete(ctx, record.ID); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if _, err := repo.FindByID(ctx, record.ID); !errors.Is(err, domainerror.ErrRecordNotFound) {
		t.Errorf("expected deleted record to be hidden, got %v", err)
	}

	var count int64
	db.Unscoped().Model(&model.FinancialRecordModel{}).Where("id = ?", record.ID).Count(&count)
	if count != 1 {
		t.Errorf("expected soft-deleted row to remain, got %d rows", count)
	}

	if err := repo.Delete(ctx, record.ID); !errors.Is(err, domainerror.ErrRecordNotFound) {
		t.Errorf("expected ErrRecordNotFound on second delete, got %v", err)
	}
}

func timePtr(t time.Time) *time.Time {
	return &t
}
