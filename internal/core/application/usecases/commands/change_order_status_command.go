package commands

import (
	"errors"

	"frameshop/internal/core/domain/model/kernel"
	"frameshop/internal/core/domain/model/order"
	"frameshop/internal/pkg/guard"
)

var ErrChangeOrderStatusCommandIsNotConstructed = errors.New(
	"ChangeOrderStatusCommand must be created via NewChangeOrderStatusCommand constructor",
)

// ChangeOrderStatusCommand represents a request to move an order to a new
// workflow status. Any valid status may be requested, including moving
// backwards; re-applying the current status is a silent no-op.
type ChangeOrderStatusCommand struct { //nolint:recvcheck //using for validation
	orderID   kernel.UUID
	newStatus order.Status
	changedBy string
	reason    string

	guard guard.ConstructorGuard
}

// NewChangeOrderStatusCommand creates a command to change an order's status.
// Validates the order ID and the target status. changedBy defaults to the
// system actor downstream when empty; reason is optional free text.
func NewChangeOrderStatusCommand(
	orderID kernel.UUID,
	newStatus order.Status,
	changedBy string,
	reason string,
) (ChangeOrderStatusCommand, error) {
	cmd := ChangeOrderStatusCommand{
		changedBy: changedBy,
		reason:    reason,
		guard:     guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setNewStatus(newStatus),
	); err != nil {
		return ChangeOrderStatusCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c ChangeOrderStatusCommand) Validate() error {
	return c.guard.Validate(ErrChangeOrderStatusCommandIsNotConstructed)
}

// OrderID returns the order to move.
func (c ChangeOrderStatusCommand) OrderID() kernel.UUID {
	return c.orderID
}

// NewStatus returns the requested target status.
func (c ChangeOrderStatusCommand) NewStatus() order.Status {
	return c.newStatus
}

// ChangedBy returns the acting user, possibly empty.
func (c ChangeOrderStatusCommand) ChangedBy() string {
	return c.changedBy
}

// Reason returns the optional free-text reason for the change.
func (c ChangeOrderStatusCommand) Reason() string {
	return c.reason
}

func (c *ChangeOrderStatusCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *ChangeOrderStatusCommand) setNewStatus(newStatus order.Status) error {
	if err := newStatus.Validate(); err != nil {
		return err
	}

	c.newStatus = newStatus
	return nil
}
