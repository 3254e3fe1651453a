package report

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/luccavalentin/vanderleideploy-sub000/internal/domain/entity"
	domainerror "github.com/luccavalentin/vanderleideploy-sub000/internal/domain/error"
	"github.com/luccavalentin/vanderleideploy-sub000/internal/domain/valueobject"
)

func TestGetSummaryUseCase_Execute(t *testing.T) {
	repo := &fakeRecordRepository{records: []entity.FinancialRecord{
		record(entity.RecordKindExpense, entity.FrequencyMonthlyFixed, 100, day(2024, time.January, 10), 0, "Aluguel"),
		record(entity.RecordKindExpense, entity.FrequencyOneTime, 300, day(2024, time.February, 15), 0, ""),
		record(entity.RecordKindRevenue, entity.FrequencyOneTime, 999, day(2024, time.February, 15), 0, "Salário"),
	}}
	uc := NewGetSummaryUseCase(repo, nil)

	output, err := uc.Execute(context.Background(), GetSummaryInput{
		Kind:   entity.RecordKindExpense,
		Window: window(day(2024, time.January, 1), day(2024, time.March, 31)),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !output.Summary.Total.Equal(decimal.NewFromInt(600)) {
		t.Errorf("expected total 600, got %s", output.Summary.Total)
	}
	if output.Summary.InstallmentCount != 4 {
		t.Errorf("expected 4 installments, got %d", output.Summary.InstallmentCount)
	}

	if len(output.Summary.Categories) != 2 {
		t.Fatalf("expected 2 categories, got %d", len(output.Summary.Categories))
	}
	// Equal amounts are ordered by name.
	if output.Summary.Categories[0].Category != "Aluguel" {
		t.Errorf("expected Aluguel first, got %q", output.Summary.Categories[0].Category)
	}
	if output.Summary.Categories[0].Percentage != 50 || output.Summary.Categories[1].Percentage != 50 {
		t.Errorf("expected 50/50 split, got %v/%v",
			output.Summary.Categories[0].Percentage, output.Summary.Categories[1].Percentage)
	}

	if len(output.Summary.Months) != 3 {
		t.Fatalf("expected 3 months, got %d", len(output.Summary.Months))
	}
	feb := output.Summary.Months[1]
	if feb.Month != (valueobject.MonthKey{Year: 2024, Month: time.February}) || !feb.Amount.Equal(decimal.NewFromInt(400)) {
		t.Errorf("expected 2024-02 = 400, got %s = %s", feb.Month, feb.Amount)
	}

	if output.Period.PeriodLabel != "T1 2024" {
		t.Errorf("expected quarter label, got %q", output.Period.PeriodLabel)
	}
	if output.Period.Disabled {
		t.Error("expected period to be enabled")
	}
}

func TestGetSummaryUseCase_EmptyWindow(t *testing.T) {
	repo := &fakeRecordRepository{records: []entity.FinancialRecord{
		record(entity.RecordKindExpense, entity.FrequencyMonthlyFixed, 100, day(2024, time.January, 10), 0, "Aluguel"),
	}}
	uc := NewGetSummaryUseCase(repo, nil)

	output, err := uc.Execute(context.Background(), GetSummaryInput{
		Kind:   entity.RecordKindExpense,
		Window: window(day(2024, time.March, 1), day(2024, time.January, 1)),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !output.Summary.Total.IsZero() {
		t.Errorf("expected zero total, got %s", output.Summary.Total)
	}
	if !output.Period.Disabled {
		t.Error("expected period to be disabled")
	}
	if repo.callCount() != 0 {
		t.Errorf("expected store to be skipped, got %d calls", repo.callCount())
	}
}

func TestGetSummaryUseCase_ValidatesKind(t *testing.T) {
	uc := NewGetSummaryUseCase(&fakeRecordRepository{}, nil)
	w := window(day(2024, time.January, 1), day(2024, time.January, 31))

	tests := []struct {
		name     string
		kind     entity.RecordKind
		wantCode domainerror.ReportErrorCode
	}{
		{name: "missing kind", kind: "", wantCode: domainerror.ErrCodeMissingRecordKind},
		{name: "unknown kind", kind: "transfer", wantCode: domainerror.ErrCodeInvalidRecordKind},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := uc.Execute(context.Background(), GetSummaryInput{Kind: tt.kind, Window: w})
			var reportErr *domainerror.ReportError
			if !errors.As(err, &reportErr) {
				t.Fatalf("expected ReportError, got %v", err)
			}
			if reportErr.Code != tt.wantCode {
				t.Errorf("expected code %s, got %s", tt.wantCode, reportErr.Code)
			}
		})
	}
}

func TestGetSummaryUseCase_StoreError(t *testing.T) {
	uc := NewGetSummaryUseCase(&fakeRecordRepository{err: errStoreDown}, nil)

	_, err := uc.Execute(context.Background(), GetSummaryInput{
		Kind:   entity.RecordKindRevenue,
		Window: window(day(2024, time.January, 1), day(2024, time.January, 31)),
	})
	if !errors.Is(err, errStoreDown) {
		t.Errorf("expected wrapped store error, got %v", err)
	}
}

func TestGetSummaryUseCase_Cache(t *testing.T) {
	repo := &fakeRecordRepository{records: []entity.FinancialRecord{
		record(entity.RecordKindRevenue, entity.FrequencyOneTime, 250, day(2024, time.January, 5), 0, "Vendas"),
	}}
	input := GetSummaryInput{
		Kind:   entity.RecordKindRevenue,
		Window: window(day(2024, time.January, 1), day(2024, time.January, 31)),
	}

	t.Run("second call is served from cache", func(t *testing.T) {
		cache := newFakeReportCache()
		uc := NewGetSummaryUseCase(repo, cache)
		before := repo.callCount()

		for i := 0; i < 2; i++ {
			output, err := uc.Execute(context.Background(), input)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !output.Summary.Total.Equal(decimal.NewFromInt(250)) {
				t.Errorf("expected total 250, got %s", output.Summary.Total)
			}
		}

		if got := repo.callCount() - before; got != 1 {
			t.Errorf("expected 1 store call, got %d", got)
		}
	})

	t.Run("cache failure falls back to store", func(t *testing.T) {
		cache := newFakeReportCache()
		cache.getErr = errors.New("redis unavailable")
		uc := NewGetSummaryUseCase(repo, cache)

		output, err := uc.Execute(context.Background(), input)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !output.Summary.Total.Equal(decimal.NewFromInt(250)) {
			t.Errorf("expected total 250, got %s", output.Summary.Total)
		}
	})
}

func TestGetCumulativeTotalUseCase_Execute(t *testing.T) {
	repo := &fakeRecordRepository{records: []entity.FinancialRecord{
		record(entity.RecordKindExpense, entity.FrequencyMonthlyFixed, 50, day(2023, time.November, 20), 0, "Internet"),
		record(entity.RecordKindExpense, entity.FrequencyOneTime, 100, day(2024, time.June, 1), 0, "Viagem"),
	}}
	uc := NewGetCumulativeTotalUseCase(repo, nil)
	uc.now = func() time.Time { return time.Date(2024, time.February, 10, 15, 0, 0, 0, time.UTC) }

	t.Run("defaults to today", func(t *testing.T) {
		output, err := uc.Execute(context.Background(), GetCumulativeTotalInput{Kind: entity.RecordKindExpense})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		// Nov, Dec, Jan, Feb
		if !output.Total.Equal(decimal.NewFromInt(200)) {
			t.Errorf("expected total 200, got %s", output.Total)
		}
		if output.Period.StartDate != nil {
			t.Error("expected no start date for cumulative period")
		}
		if output.Period.PeriodLabel != "Até 10/02/2024" {
			t.Errorf("unexpected label %q", output.Period.PeriodLabel)
		}
	})

	t.Run("explicit as-of date", func(t *testing.T) {
		output, err := uc.Execute(context.Background(), GetCumulativeTotalInput{
			Kind: entity.RecordKindExpense,
			AsOf: day(2024, time.June, 30),
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		// 8 monthly installments plus the one-time entry
		if !output.Total.Equal(decimal.NewFromInt(500)) {
			t.Errorf("expected total 500, got %s", output.Total)
		}
	})
}
