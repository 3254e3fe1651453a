package report

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/luccavalentin/vanderleideploy-sub000/internal/domain/entity"
	domainerror "github.com/luccavalentin/vanderleideploy-sub000/internal/domain/error"
	"github.com/luccavalentin/vanderleideploy-sub000/internal/domain/recurrence"
)

func TestGetOverviewUseCase_Execute(t *testing.T) {
	repo := &fakeRecordRepository{records: []entity.FinancialRecord{
		record(entity.RecordKindRevenue, entity.FrequencyMonthlyFixed, 1000, day(2024, time.January, 5), 0, "Salário"),
		record(entity.RecordKindExpense, entity.FrequencyMonthlyFixedTerm, 200, day(2024, time.February, 10), 2, "Curso"),
	}}
	uc := NewGetOverviewUseCase(repo, nil)

	output, err := uc.Execute(context.Background(), GetOverviewInput{
		Window: window(day(2024, time.January, 1), day(2024, time.April, 30)),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !output.Revenue.Total.Equal(decimal.NewFromInt(4000)) {
		t.Errorf("expected revenue 4000, got %s", output.Revenue.Total)
	}
	if !output.Expense.Total.Equal(decimal.NewFromInt(400)) {
		t.Errorf("expected expense 400, got %s", output.Expense.Total)
	}
	if !output.Balance.Equal(decimal.NewFromInt(3600)) {
		t.Errorf("expected balance 3600, got %s", output.Balance)
	}

	if len(output.Series) != 4 {
		t.Fatalf("expected 4 series points, got %d", len(output.Series))
	}

	expectedExpense := []int64{0, 200, 200, 0}
	for i, point := range output.Series {
		if !point.Revenue.Equal(decimal.NewFromInt(1000)) {
			t.Errorf("month %s: expected revenue 1000, got %s", point.Month, point.Revenue)
		}
		if !point.Expense.Equal(decimal.NewFromInt(expectedExpense[i])) {
			t.Errorf("month %s: expected expense %d, got %s", point.Month, expectedExpense[i], point.Expense)
		}
		if !point.Balance.Equal(point.Revenue.Sub(point.Expense)) {
			t.Errorf("month %s: balance does not match", point.Month)
		}
	}
}

func TestGetOverviewUseCase_SeriesSumsMatchTotals(t *testing.T) {
	repo := &fakeRecordRepository{records: []entity.FinancialRecord{
		record(entity.RecordKindRevenue, entity.FrequencyAnnualFixed, 1200, day(2020, time.March, 31), 0, "Bônus"),
		record(entity.RecordKindRevenue, entity.FrequencyOneTime, 75, day(2024, time.July, 4), 0, ""),
		record(entity.RecordKindExpense, entity.FrequencyMonthlyFixed, 30, day(2023, time.December, 31), 0, "Streaming"),
	}}
	uc := NewGetOverviewUseCase(repo, newFakeReportCache())

	output, err := uc.Execute(context.Background(), GetOverviewInput{
		Window: window(day(2024, time.January, 15), day(2024, time.December, 15)),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	revenue, expense := decimal.Zero, decimal.Zero
	for _, point := range output.Series {
		revenue = revenue.Add(point.Revenue)
		expense = expense.Add(point.Expense)
	}
	if !revenue.Equal(output.Revenue.Total) {
		t.Errorf("series revenue %s does not match total %s", revenue, output.Revenue.Total)
	}
	if !expense.Equal(output.Expense.Total) {
		t.Errorf("series expense %s does not match total %s", expense, output.Expense.Total)
	}
}

func TestGetOverviewUseCase_Errors(t *testing.T) {
	t.Run("window too large", func(t *testing.T) {
		uc := NewGetOverviewUseCase(&fakeRecordRepository{}, nil)
		_, err := uc.Execute(context.Background(), GetOverviewInput{
			Window: window(day(2000, time.January, 1), day(2024, time.December, 31)),
		})
		if !errors.Is(err, domainerror.ErrWindowTooLarge) {
			t.Errorf("expected ErrWindowTooLarge, got %v", err)
		}
	})

	t.Run("store error", func(t *testing.T) {
		uc := NewGetOverviewUseCase(&fakeRecordRepository{err: errStoreDown}, nil)
		_, err := uc.Execute(context.Background(), GetOverviewInput{
			Window: window(day(2024, time.January, 1), day(2024, time.January, 31)),
		})
		if !errors.Is(err, errStoreDown) {
			t.Errorf("expected wrapped store error, got %v", err)
		}
	})

	t.Run("empty window", func(t *testing.T) {
		uc := NewGetOverviewUseCase(&fakeRecordRepository{err: errStoreDown}, nil)
		output, err := uc.Execute(context.Background(), GetOverviewInput{
			Window: window(day(2024, time.February, 1), day(2024, time.January, 1)),
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(output.Series) != 0 || !output.Balance.IsZero() {
			t.Errorf("expected empty overview, got %d points and balance %s", len(output.Series), output.Balance)
		}
	})
}

func TestComparePeriodsUseCase_Execute(t *testing.T) {
	repo := &fakeRecordRepository{records: []entity.FinancialRecord{
		record(entity.RecordKindExpense, entity.FrequencyMonthlyFixed, 100, day(2024, time.January, 1), 0, "Aluguel"),
		record(entity.RecordKindExpense, entity.FrequencyOneTime, 50, day(2024, time.February, 20), 0, "Farmácia"),
	}}
	uc := NewComparePeriodsUseCase(repo, nil)

	tests := []struct {
		name           string
		current        [2]time.Time
		previous       [2]time.Time
		wantChange     int64
		wantPercentage *float64
	}{
		{
			name:           "growth over previous month",
			current:        [2]time.Time{day(2024, time.February, 1), day(2024, time.February, 29)},
			previous:       [2]time.Time{day(2024, time.January, 1), day(2024, time.January, 31)},
			wantChange:     50,
			wantPercentage: floatPtr(50),
		},
		{
			name:           "drop over previous month",
			current:        [2]time.Time{day(2024, time.March, 1), day(2024, time.March, 31)},
			previous:       [2]time.Time{day(2024, time.February, 1), day(2024, time.February, 29)},
			wantChange:     -50,
			wantPercentage: floatPtr(-33.33),
		},
		{
			name:           "no previous activity",
			current:        [2]time.Time{day(2024, time.January, 1), day(2024, time.January, 31)},
			previous:       [2]time.Time{day(2023, time.December, 1), day(2023, time.December, 31)},
			wantChange:     100,
			wantPercentage: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			output, err := uc.Execute(context.Background(), ComparePeriodsInput{
				Kind:     entity.RecordKindExpense,
				Current:  window(tt.current[0], tt.current[1]),
				Previous: window(tt.previous[0], tt.previous[1]),
			})
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !output.Change.Equal(decimal.NewFromInt(tt.wantChange)) {
				t.Errorf("expected change %d, got %s", tt.wantChange, output.Change)
			}
			switch {
			case tt.wantPercentage == nil && output.ChangePercentage != nil:
				t.Errorf("expected no percentage, got %v", *output.ChangePercentage)
			case tt.wantPercentage != nil && output.ChangePercentage == nil:
				t.Errorf("expected percentage %v, got nil", *tt.wantPercentage)
			case tt.wantPercentage != nil && *output.ChangePercentage != *tt.wantPercentage:
				t.Errorf("expected percentage %v, got %v", *tt.wantPercentage, *output.ChangePercentage)
			}
		})
	}
}

func TestComputeReportUseCase_Execute(t *testing.T) {
	three := 3
	category := "Equipamentos"
	uc := NewComputeReportUseCase()

	output, err := uc.Execute(context.Background(), ComputeReportInput{
		Records: []recurrence.RawRecord{
			{Amount: "1.000,00", Date: "2024-01-15", Frequency: "Mensal Tempo Determinado", Installments: &three, Category: &category},
			{Amount: "250", Date: "2024-02-10", Frequency: "Única"},
			{Amount: "abc", Date: "2024-02-10", Frequency: "Única"},
			{Amount: "10", Date: "10/02/2024", Frequency: "Única"},
		},
		Window: window(day(2024, time.February, 1), day(2024, time.December, 31)),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if output.Skipped != 2 {
		t.Errorf("expected 2 skipped rows, got %d", output.Skipped)
	}
	// Feb and Mar installments of the fixed-term record plus the one-time entry.
	if !output.Summary.Total.Equal(decimal.NewFromInt(2250)) {
		t.Errorf("expected total 2250, got %s", output.Summary.Total)
	}
	if output.Summary.InstallmentCount != 3 {
		t.Errorf("expected 3 installments, got %d", output.Summary.InstallmentCount)
	}
}

func floatPtr(v float64) *float64 {
	return &v
}
