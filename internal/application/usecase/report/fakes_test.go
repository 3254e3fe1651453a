package report

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/luccavalentin/vanderleideploy-sub000/internal/application/adapter"
	"github.com/luccavalentin/vanderleideploy-sub000/internal/domain/entity"
	domainerror "github.com/luccavalentin/vanderleideploy-sub000/internal/domain/error"
	"github.com/luccavalentin/vanderleideploy-sub000/internal/domain/recurrence"
	"github.com/luccavalentin/vanderleideploy-sub000/internal/domain/valueobject"
)

var errStoreDown = errors.New("store down")

type fakeRecordRepository struct {
	mu      sync.Mutex
	records []entity.FinancialRecord
	calls   int
	err     error
}

func (r *fakeRecordRepository) Create(_ context.Context, record *entity.FinancialRecord) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.records = append(r.records, *record)
	return nil
}

func (r *fakeRecordRepository) FindByID(_ context.Context, id uuid.UUID) (*entity.FinancialRecord, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.records {
		if r.records[i].ID == id {
			record := r.records[i]
			return &record, nil
		}
	}
	return nil, domainerror.ErrRecordNotFound
}

func (r *fakeRecordRepository) FindContributing(
	_ context.Context,
	kind entity.RecordKind,
	window valueobject.DateWindow,
) ([]entity.FinancialRecord, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.calls++
	if r.err != nil {
		return nil, r.err
	}
	var out []entity.FinancialRecord
	for _, record := range r.records {
		if record.Kind == kind && !record.AnchorDate.After(window.End) {
			out = append(out, record)
		}
	}
	return out, nil
}

func (r *fakeRecordRepository) List(_ context.Context, _ adapter.FinancialRecordFilter) ([]entity.FinancialRecord, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]entity.FinancialRecord(nil), r.records...), nil
}

func (r *fakeRecordRepository) Delete(_ context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.records {
		if r.records[i].ID == id {
			r.records = append(r.records[:i], r.records[i+1:]...)
			return nil
		}
	}
	return domainerror.ErrRecordNotFound
}

func (r *fakeRecordRepository) callCount() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.calls
}

type fakeReportCache struct {
	mu      sync.Mutex
	entries map[string]*recurrence.AggregateResult
	getErr  error
	sets    int
}

func newFakeReportCache() *fakeReportCache {
	return &fakeReportCache{entries: make(map[string]*recurrence.AggregateResult)}
}

func (c *fakeReportCache) Get(
	_ context.Context,
	kind entity.RecordKind,
	window valueobject.DateWindow,
) (*recurrence.AggregateResult, bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.getErr != nil {
		return nil, false, c.getErr
	}
	result, ok := c.entries[string(kind)+window.Key()]
	return result, ok, nil
}

func (c *fakeReportCache) Set(
	_ context.Context,
	kind entity.RecordKind,
	window valueobject.DateWindow,
	result *recurrence.AggregateResult,
) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.sets++
	c.entries[string(kind)+window.Key()] = result
	return nil
}

func (c *fakeReportCache) Invalidate(_ context.Context, _ entity.RecordKind) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries = make(map[string]*recurrence.AggregateResult)
	return nil
}

func day(year int, month time.Month, d int) time.Time {
	return time.Date(year, month, d, 0, 0, 0, 0, time.UTC)
}

func window(start, end time.Time) valueobject.DateWindow {
	return valueobject.NewDateWindow(start, end)
}

func record(
	kind entity.RecordKind,
	frequency entity.Frequency,
	amount int64,
	anchor time.Time,
	installments int,
	category string,
) entity.FinancialRecord {
	return *entity.NewFinancialRecord(
		kind,
		"test record",
		decimal.NewFromInt(amount),
		anchor,
		frequency,
		installments,
		category,
	)
}
