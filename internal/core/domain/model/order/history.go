package order

import (
	"errors"
	"time"

	"frameshop/internal/core/domain/model/kernel"
	"frameshop/internal/pkg/guard"
)

// ErrStatusHistoryEntryIsNotConstructed is returned when a StatusHistoryEntry
// was not created through NewStatusHistoryEntry.
var ErrStatusHistoryEntryIsNotConstructed = errors.New(
	"StatusHistoryEntry must be created via NewStatusHistoryEntry",
)

// StatusHistoryEntry is the immutable audit record of one status change.
// Entries are created once, at intake (from is nil) or on a transition,
// and never mutated or deleted.
type StatusHistoryEntry struct {
	orderID   kernel.UUID
	from      *Status // nil for the entry written at order creation
	to        Status
	changedBy string
	reason    string
	at        time.Time

	guard guard.ConstructorGuard
}

// NewStatusHistoryEntry creates an audit record for a status change on the
// given order. from is nil exactly once, for the creation entry. changedBy
// defaults to DefaultActor when empty; reason is optional free text.
func NewStatusHistoryEntry(
	orderID kernel.UUID,
	from *Status,
	to Status,
	changedBy string,
	reason string,
	at time.Time,
) (StatusHistoryEntry, error) {
	if err := orderID.Validate(); err != nil {
		return StatusHistoryEntry{}, err
	}

	if from != nil {
		if err := from.Validate(); err != nil {
			return StatusHistoryEntry{}, err
		}
	}

	if err := to.Validate(); err != nil {
		return StatusHistoryEntry{}, err
	}

	if changedBy == "" {
		changedBy = DefaultActor
	}

	return StatusHistoryEntry{
		orderID:   orderID,
		from:      from,
		to:        to,
		changedBy: changedBy,
		reason:    reason,
		at:        at,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the entry was created through the constructor.
func (e StatusHistoryEntry) Validate() error {
	return e.guard.Validate(ErrStatusHistoryEntryIsNotConstructed)
}

// OrderID returns the identifier of the order the entry belongs to.
func (e StatusHistoryEntry) OrderID() kernel.UUID {
	return e.orderID
}

// From returns the status the order left, or nil for the creation entry.
func (e StatusHistoryEntry) From() *Status {
	if e.from == nil {
		return nil
	}
	f := *e.from
	return &f
}

// To returns the status the order entered.
func (e StatusHistoryEntry) To() Status {
	return e.to
}

// ChangedBy returns the actor that performed the change.
func (e StatusHistoryEntry) ChangedBy() string {
	return e.changedBy
}

// Reason returns the optional free-text justification.
func (e StatusHistoryEntry) Reason() string {
	return e.reason
}

// At returns when the change happened.
func (e StatusHistoryEntry) At() time.Time {
	return e.at
}
