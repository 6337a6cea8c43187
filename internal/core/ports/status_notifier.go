package ports

import (
	"time"

	"frameshop/internal/core/domain/model/kernel"
	"frameshop/internal/core/domain/model/order"
)

// StatusChangedEvent describes one committed status transition, published
// after the transaction that recorded it.
type StatusChangedEvent struct {
	OrderID      kernel.UUID
	TrackingCode string
	From         order.Status
	To           order.Status
	ChangedBy    string
	At           time.Time
}

// StatusNotifier delivers status change notifications outside the request
// path. Implementations must not block the caller: if delivery capacity is
// exhausted the event is dropped, never the status change itself.
type StatusNotifier interface {
	// Notify enqueues one event for delivery. Best effort.
	Notify(event StatusChangedEvent)
}
