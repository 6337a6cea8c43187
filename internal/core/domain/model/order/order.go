package order

import (
	"errors"
	"fmt"
	"time"

	"frameshop/internal/core/domain/model/kernel"
	"frameshop/internal/pkg/errs"
	"frameshop/internal/pkg/guard"
)

// DefaultActor is recorded on status changes when no acting user is supplied.
const DefaultActor = "system"

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created
	// through the NewOrder or RestoreOrder factory functions.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder")

	// ErrTrackingCodeIsRequired is returned when attempting to create an order
	// without a tracking code.
	ErrTrackingCodeIsRequired = errs.NewValueIsRequiredError("trackingCode")

	// ErrDescriptionIsRequired is returned when attempting to create an order
	// without a description of the work.
	ErrDescriptionIsRequired = errs.NewValueIsRequiredError("description")
)

// Order represents a custom framing job in the shop. It is the aggregate root
// that owns the order's identity, pricing, free-text work notes, and its
// position in the status workflow.
//
// Order maintains these invariants:
//   - Identity, customer reference, tracking code, and description are always valid
//   - Status is always a member of the closed workflow set
//   - Deposit never exceeds the total price
//   - Every real status change is surfaced as a StatusChange so the caller
//     can append the paired history entry in the same transaction
//
// The free-text notes field is the source material for vendor signature
// extraction during duplicate-order detection; the aggregate itself treats it
// as opaque text.
type Order struct {
	// id is the unique identifier for the order
	id kernel.UUID

	// trackingCode is the human-readable code printed on the shop ticket
	trackingCode string

	// customerID references the customer the piece belongs to
	customerID kernel.UUID

	// description summarizes the work to perform
	description string

	// notes holds free-text work notes, including vendor material codes
	notes string

	// priority is the scheduling class of the order
	priority Priority

	// totalCents and depositCents are the agreed price and the deposit taken
	// at intake, in cents
	totalCents   int64
	depositCents int64

	// status is the current workflow state
	status Status

	// createdAt is the intake timestamp
	createdAt time.Time

	// statusChangedAt is the timestamp of the latest status change
	statusChangedAt time.Time

	// guard ensures the order was created via a constructor
	guard guard.ConstructorGuard
}

// StatusChange captures one real transition of an order's status. It is the
// aggregate's instruction to the caller to append exactly one matching
// history entry; a nil change means the status did not move.
type StatusChange struct {
	From Status
	To   Status
	At   time.Time
}

// NewOrder creates a new Order at intake. The order starts in OrderProcessed
// with statusChangedAt equal to createdAt.
//
// All parameters are validated; the returned order satisfies every aggregate
// invariant or an error describing the first violation is returned.
func NewOrder(
	id kernel.UUID,
	trackingCode string,
	customerID kernel.UUID,
	description string,
	notes string,
	priority Priority,
	totalCents int64,
	depositCents int64,
	createdAt time.Time,
) (*Order, error) {
	o := &Order{
		status:          OrderProcessed,
		notes:           notes,
		createdAt:       createdAt,
		statusChangedAt: createdAt,
		guard:           guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		o.setID(id),
		o.setTrackingCode(trackingCode),
		o.setCustomerID(customerID),
		o.setDescription(description),
		o.setPriority(priority),
		o.setPricing(totalCents, depositCents),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// RestoreOrder reconstructs an Order aggregate from persistent storage,
// including its current status and status-change timestamp. Used exclusively
// by repository implementations.
func RestoreOrder(
	id kernel.UUID,
	trackingCode string,
	customerID kernel.UUID,
	description string,
	notes string,
	priority Priority,
	totalCents int64,
	depositCents int64,
	status Status,
	createdAt time.Time,
	statusChangedAt time.Time,
) (*Order, error) {
	o, err := NewOrder(id, trackingCode, customerID, description, notes, priority, totalCents, depositCents, createdAt)
	if err != nil {
		return nil, err
	}

	if err = status.Validate(); err != nil {
		return nil, err
	}

	o.status = status
	o.statusChangedAt = statusChangedAt
	return o, nil
}

// Validate ensures the Order instance was properly constructed.
func (o *Order) Validate() error {
	if o == nil {
		return ErrOrderIsNotConstructed
	}
	return o.guard.Validate(ErrOrderIsNotConstructed)
}

// IsEqual compares two orders by their unique identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// TrackingCode returns the human-readable ticket code.
func (o *Order) TrackingCode() string {
	return o.trackingCode
}

// CustomerID returns the identifier of the owning customer.
func (o *Order) CustomerID() kernel.UUID {
	return o.customerID
}

// Description returns the summary of the work to perform.
func (o *Order) Description() string {
	return o.description
}

// Notes returns the free-text work notes.
func (o *Order) Notes() string {
	return o.notes
}

// Priority returns the scheduling class of the order.
func (o *Order) Priority() Priority {
	return o.priority
}

// TotalCents returns the agreed price in cents.
func (o *Order) TotalCents() int64 {
	return o.totalCents
}

// DepositCents returns the deposit taken at intake, in cents.
func (o *Order) DepositCents() int64 {
	return o.depositCents
}

// Status returns the current workflow state of the order.
func (o *Order) Status() Status {
	return o.status
}

// CreatedAt returns the intake timestamp.
func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

// StatusChangedAt returns the timestamp of the latest status change.
func (o *Order) StatusChangedAt() time.Time {
	return o.statusChangedAt
}

// ChangeStatus moves the order to newStatus at the given time.
//
// Rules:
//   - newStatus must be a member of the closed workflow set
//   - a change to the current status is a deliberate no-op: the method
//     returns (nil, nil) and no history entry must be written
//   - any other change is free (no adjacency graph) and returns the
//     StatusChange the caller must persist as a history entry together with
//     the order update
func (o *Order) ChangeStatus(newStatus Status, at time.Time) (*StatusChange, error) {
	if err := o.Validate(); err != nil {
		return nil, err
	}

	if err := newStatus.Validate(); err != nil {
		return nil, err
	}

	if newStatus == o.status {
		return nil, nil
	}

	change := &StatusChange{
		From: o.status,
		To:   newStatus,
		At:   at,
	}

	o.status = newStatus
	o.statusChangedAt = at
	return change, nil
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setTrackingCode(code string) error {
	if code == "" {
		return ErrTrackingCodeIsRequired
	}
	o.trackingCode = code
	return nil
}

func (o *Order) setCustomerID(customerID kernel.UUID) error {
	if err := customerID.Validate(); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("customerID", err)
	}
	o.customerID = customerID
	return nil
}

func (o *Order) setDescription(description string) error {
	if description == "" {
		return ErrDescriptionIsRequired
	}
	o.description = description
	return nil
}

func (o *Order) setPriority(priority Priority) error {
	if err := priority.Validate(); err != nil {
		return err
	}
	o.priority = priority
	return nil
}

func (o *Order) setPricing(totalCents, depositCents int64) error {
	if totalCents < 0 {
		return errs.NewValueIsInvalidErrorWithCause("totalCents", fmt.Errorf("%d is negative", totalCents))
	}
	if depositCents < 0 || depositCents > totalCents {
		return errs.NewValueIsOutOfRangeError("depositCents", depositCents, 0, totalCents)
	}
	o.totalCents = totalCents
	o.depositCents = depositCents
	return nil
}
