// Package cache implements the report cache on top of Redis.
package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"

	"github.com/luccavalentin/vanderleideploy-sub000/internal/application/adapter"
	"github.com/luccavalentin/vanderleideploy-sub000/internal/domain/entity"
	"github.com/luccavalentin/vanderleideploy-sub000/internal/domain/recurrence"
	"github.com/luccavalentin/vanderleideploy-sub000/internal/domain/valueobject"
)

const keyPrefix = "report"

// cachedAggregate is the JSON shape of a cached aggregate.
type cachedAggregate struct {
	Total            decimal.Decimal                          `json:"total"`
	ByCategory       map[string]decimal.Decimal               `json:"by_category"`
	ByMonth          map[valueobject.MonthKey]decimal.Decimal `json:"by_month"`
	InstallmentCount int                                      `json:"installment_count"`
}

// reportCache implements adapter.ReportCache. Entries are namespaced by a
// per-kind version counter; invalidation bumps the counter so older entries
// are never read again and expire with their TTL.
type reportCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewReportCache creates a new Redis-backed report cache.
func NewReportCache(client *redis.Client, ttl time.Duration) adapter.ReportCache {
	return &reportCache{
		client: client,
		ttl:    ttl,
	}
}

// Get returns the cached aggregate of kind over window, if any.
func (c *reportCache) Get(
	ctx context.Context,
	kind entity.RecordKind,
	window valueobject.DateWindow,
) (*recurrence.AggregateResult, bool, error) {
	version, err := c.version(ctx, kind)
	if err != nil {
		return nil, false, err
	}

	data, err := c.client.Get(ctx, entryKey(kind, version, window)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("failed to read cached report: %w", err)
	}

	var cached cachedAggregate
	if err := json.Unmarshal(data, &cached); err != nil {
		return nil, false, fmt.Errorf("failed to decode cached report: %w", err)
	}

	result := recurrence.NewAggregateResult()
	result.Total = cached.Total
	result.InstallmentCount = cached.InstallmentCount
	for category, amount := range cached.ByCategory {
		result.ByCategory[category] = amount
	}
	for month, amount := range cached.ByMonth {
		result.ByMonth[month] = amount
	}

	return result, true, nil
}

// Set stores the aggregate of kind over window under the current version.
func (c *reportCache) Set(
	ctx context.Context,
	kind entity.RecordKind,
	window valueobject.DateWindow,
	result *recurrence.AggregateResult,
) error {
	version, err := c.version(ctx, kind)
	if err != nil {
		return err
	}

	data, err := json.Marshal(cachedAggregate{
		Total:            result.Total,
		ByCategory:       result.ByCategory,
		ByMonth:          result.ByMonth,
		InstallmentCount: result.InstallmentCount,
	})
	if err != nil {
		return fmt.Errorf("failed to encode report: %w", err)
	}

	if err := c.client.Set(ctx, entryKey(kind, version, window), data, c.ttl).Err(); err != nil {
		return fmt.Errorf("failed to write cached report: %w", err)
	}
	return nil
}

// Invalidate makes every cached aggregate of kind unreachable.
func (c *reportCache) Invalidate(ctx context.Context, kind entity.RecordKind) error {
	if err := c.client.Incr(ctx, versionKey(kind)).Err(); err != nil {
		return fmt.Errorf("failed to invalidate cached reports: %w", err)
	}
	return nil
}

func (c *reportCache) version(ctx context.Context, kind entity.RecordKind) (int64, error) {
	version, err := c.client.Get(ctx, versionKey(kind)).Int64()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return 0, nil
		}
		return 0, fmt.Errorf("failed to read report cache version: %w", err)
	}
	return version, nil
}

func versionKey(kind entity.RecordKind) string {
	return fmt.Sprintf("%s:%s:version", keyPrefix, kind)
}

func entryKey(kind entity.RecordKind, version int64, window valueobject.DateWindow) string {
	return fmt.Sprintf("%s:%s:v%d:%s", keyPrefix, kind, version, window.Key())
}
