package ports

import (
	"context"
	"time"

	"frameshop/internal/core/domain/model/ordering"
)

// MaterialOrderAuditRepository defines the persistence contract for the
// append-only material ordering history. Records are only ever inserted and
// read, never updated or deleted.
type MaterialOrderAuditRepository interface {
	// Append persists one audit record.
	Append(ctx context.Context, record ordering.MaterialOrderAudit) error

	// ListSince retrieves all records placed at or after the given moment,
	// newest first. This is the duplicate-detection lookback read.
	ListSince(ctx context.Context, since time.Time) ([]ordering.MaterialOrderAudit, error)
}
