// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/luccavalentin/vanderleideploy-sub000/internal/domain/entity"
	"github.com/luccavalentin/vanderleideploy-sub000/internal/domain/recurrence"
	"github.com/luccavalentin/vanderleideploy-sub000/internal/domain/valueobject"
)

// ReportCache stores aggregate results per record kind and window.
// Implementations must treat a miss and an invalidated entry the same way.
type ReportCache interface {
	// Get returns the cached aggregate, or false on a miss.
	Get(ctx context.Context, kind entity.RecordKind, window valueobject.DateWindow) (*recurrence.AggregateResult, bool, error)

	// Set stores an aggregate.
	Set(ctx context.Context, kind entity.RecordKind, window valueobject.DateWindow, result *recurrence.AggregateResult) error

	// Invalidate drops every cached aggregate of the given kind.
	Invalidate(ctx context.Context, kind entity.RecordKind) error
}
