package recurrence

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/luccavalentin/vanderleideploy-sub000/internal/domain/entity"
	"github.com/luccavalentin/vanderleideploy-sub000/internal/domain/valueobject"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func window(start, end time.Time) valueobject.DateWindow {
	return valueobject.NewDateWindow(start, end)
}

func record(frequency entity.Frequency, amount int64, anchor time.Time, installments int, category string) entity.FinancialRecord {
	return entity.FinancialRecord{
		Amount:           decimal.NewFromInt(amount),
		AnchorDate:       anchor,
		Frequency:        frequency,
		InstallmentCount: installments,
		Category:         category,
	}
}

func dates(installments []entity.Installment) []time.Time {
	out := make([]time.Time, len(installments))
	for i, inst := range installments {
		out[i] = inst.Date
	}
	return out
}

func assertDates(t *testing.T, got []entity.Installment, want ...time.Time) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("expected %d installments %v, got %d %v", len(want), want, len(got), dates(got))
	}
	for i := range want {
		if !got[i].Date.Equal(want[i]) {
			t.Errorf("installment %d: expected %s, got %s", i, want[i].Format("2006-01-02"), got[i].Date.Format("2006-01-02"))
		}
	}
}

func TestExpandOneTime(t *testing.T) {
	w := window(day(2024, time.January, 10), day(2024, time.January, 20))

	tests := []struct {
		name   string
		anchor time.Time
		want   int
	}{
		{name: "on window start", anchor: day(2024, time.January, 10), want: 1},
		{name: "on window end", anchor: day(2024, time.January, 20), want: 1},
		{name: "inside window", anchor: day(2024, time.January, 15), want: 1},
		{name: "one day before start", anchor: day(2024, time.January, 9), want: 0},
		{name: "one day after end", anchor: day(2024, time.January, 21), want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Expand(record(entity.FrequencyOneTime, 100, tt.anchor, 0, "Vendas"), w)
			if len(got) != tt.want {
				t.Fatalf("expected %d installments, got %d", tt.want, len(got))
			}
			if tt.want == 1 {
				if !got[0].Date.Equal(tt.anchor) {
					t.Errorf("expected installment at %v, got %v", tt.anchor, got[0].Date)
				}
				if !got[0].Amount.Equal(decimal.NewFromInt(100)) {
					t.Errorf("expected amount 100, got %s", got[0].Amount)
				}
			}
		})
	}
}

func TestExpandMonthlyFixed(t *testing.T) {
	t.Run("recurs every month of the window", func(t *testing.T) {
		r := record(entity.FrequencyMonthlyFixed, 100, day(2024, time.January, 15), 0, "Aluguel")
		got := Expand(r, window(day(2024, time.January, 1), day(2024, time.March, 31)))
		assertDates(t, got, day(2024, time.January, 1), day(2024, time.February, 1), day(2024, time.March, 1))
	})

	t.Run("does not start before the anchor month", func(t *testing.T) {
		r := record(entity.FrequencyMonthlyFixed, 100, day(2024, time.March, 5), 0, "")
		got := Expand(r, window(day(2024, time.January, 1), day(2024, time.April, 30)))
		assertDates(t, got, day(2024, time.March, 1), day(2024, time.April, 1))
	})

	t.Run("partial months at both edges count", func(t *testing.T) {
		r := record(entity.FrequencyMonthlyFixed, 100, day(2023, time.June, 1), 0, "")
		got := Expand(r, window(day(2024, time.January, 20), day(2024, time.February, 2)))
		assertDates(t, got, day(2024, time.January, 1), day(2024, time.February, 1))
	})

	t.Run("continues indefinitely", func(t *testing.T) {
		r := record(entity.FrequencyMonthlyFixed, 10, day(2020, time.January, 31), 0, "")
		got := Expand(r, window(day(2030, time.December, 1), day(2030, time.December, 31)))
		assertDates(t, got, day(2030, time.December, 1))
	})

	t.Run("anchor after window yields nothing", func(t *testing.T) {
		r := record(entity.FrequencyMonthlyFixed, 10, day(2024, time.May, 1), 0, "")
		if got := Expand(r, window(day(2024, time.January, 1), day(2024, time.April, 30))); len(got) != 0 {
			t.Errorf("expected no installments, got %v", dates(got))
		}
	})
}

func TestExpandMonthlyFixedTerm(t *testing.T) {
	r := record(entity.FrequencyMonthlyFixedTerm, 50, day(2024, time.January, 31), 3, "Equipamentos")

	t.Run("normalizes to first of month and stops after the count", func(t *testing.T) {
		got := Expand(r, window(day(2024, time.January, 1), day(2024, time.December, 31)))
		assertDates(t, got, day(2024, time.January, 1), day(2024, time.February, 1), day(2024, time.March, 1))
	})

	t.Run("window covering a single installment", func(t *testing.T) {
		got := Expand(r, window(day(2024, time.February, 1), day(2024, time.February, 29)))
		assertDates(t, got, day(2024, time.February, 1))
	})

	t.Run("point check excludes a due date one day outside", func(t *testing.T) {
		got := Expand(r, window(day(2024, time.February, 2), day(2024, time.February, 29)))
		assertDates(t, got)
	})

	t.Run("zero installments yields nothing", func(t *testing.T) {
		empty := record(entity.FrequencyMonthlyFixedTerm, 50, day(2024, time.January, 1), 0, "")
		got := Expand(empty, window(day(2024, time.January, 1), day(2024, time.December, 31)))
		assertDates(t, got)
	})

	t.Run("crosses year boundary", func(t *testing.T) {
		crossing := record(entity.FrequencyMonthlyFixedTerm, 50, day(2023, time.November, 15), 4, "")
		got := Expand(crossing, window(day(2023, time.January, 1), day(2024, time.December, 31)))
		assertDates(t, got,
			day(2023, time.November, 1), day(2023, time.December, 1),
			day(2024, time.January, 1), day(2024, time.February, 1))
	})
}

func TestExpandAnnualFixed(t *testing.T) {
	t.Run("one installment per year on the anniversary", func(t *testing.T) {
		r := record(entity.FrequencyAnnualFixed, 1200, day(2022, time.March, 10), 0, "Seguro")
		got := Expand(r, window(day(2021, time.January, 1), day(2024, time.December, 31)))
		assertDates(t, got, day(2022, time.March, 10), day(2023, time.March, 10), day(2024, time.March, 10))
	})

	t.Run("anniversary outside a partial year is excluded", func(t *testing.T) {
		r := record(entity.FrequencyAnnualFixed, 1200, day(2022, time.March, 10), 0, "")
		got := Expand(r, window(day(2024, time.April, 1), day(2025, time.March, 9)))
		assertDates(t, got)
	})

	t.Run("leap day anchor clamps in common years", func(t *testing.T) {
		r := record(entity.FrequencyAnnualFixed, 1, day(2024, time.February, 29), 0, "")
		got := Expand(r, window(day(2024, time.January, 1), day(2025, time.December, 31)))
		assertDates(t, got, day(2024, time.February, 29), day(2025, time.February, 28))
	})
}

func TestExpandAnnualFixedTerm(t *testing.T) {
	r := record(entity.FrequencyAnnualFixedTerm, 300, day(2023, time.June, 10), 2, "IPTU")

	t.Run("yields exactly the installment count", func(t *testing.T) {
		got := Expand(r, window(day(2023, time.January, 1), day(2024, time.December, 31)))
		assertDates(t, got, day(2023, time.June, 10), day(2024, time.June, 10))
	})

	t.Run("exhausted term yields nothing later", func(t *testing.T) {
		got := Expand(r, window(day(2025, time.January, 1), day(2030, time.December, 31)))
		assertDates(t, got)
	})
}

func TestExpandSkipsInvalidInput(t *testing.T) {
	w := window(day(2024, time.January, 1), day(2024, time.December, 31))

	tests := []struct {
		name   string
		record entity.FinancialRecord
		window valueobject.DateWindow
	}{
		{name: "zero amount", record: record(entity.FrequencyMonthlyFixed, 0, day(2024, time.January, 1), 0, ""), window: w},
		{name: "negative amount", record: record(entity.FrequencyOneTime, -10, day(2024, time.January, 1), 0, ""), window: w},
		{name: "missing anchor date", record: record(entity.FrequencyOneTime, 10, time.Time{}, 0, ""), window: w},
		{name: "reversed window", record: record(entity.FrequencyMonthlyFixed, 10, day(2024, time.January, 1), 0, ""), window: window(day(2024, time.June, 1), day(2024, time.May, 31))},
		{name: "unknown frequency falls back to one-time outside window", record: record(entity.Frequency(99), 10, day(2023, time.January, 1), 0, ""), window: w},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Expand(tt.record, tt.window); len(got) != 0 {
				t.Errorf("expected no installments, got %v", dates(got))
			}
		})
	}
}

func TestExpandUsesNormalizedCategory(t *testing.T) {
	r := record(entity.FrequencyOneTime, 10, day(2024, time.January, 1), 0, "")
	got := Expand(r, window(day(2024, time.January, 1), day(2024, time.January, 1)))
	if len(got) != 1 {
		t.Fatalf("expected 1 installment, got %d", len(got))
	}
	if got[0].Category != entity.UncategorizedCategory {
		t.Errorf("expected %q, got %q", entity.UncategorizedCategory, got[0].Category)
	}
}
