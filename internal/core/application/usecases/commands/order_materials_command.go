package commands

import (
	"errors"

	"frameshop/internal/core/domain/model/kernel"
	"frameshop/internal/pkg/guard"
)

var (
	ErrOrderMaterialsCommandIsNotConstructed = errors.New(
		"OrderMaterialsCommand must be created via NewOrderMaterialsCommand constructor",
	)
	ErrOrderIDsAreRequired      = errors.New("at least one order id is required")
	ErrOrderedByIsRequired      = errors.New("ordered by is required")
	ErrOverrideReasonIsRequired = errors.New("override reason is required when an override code is supplied")
)

// OrderMaterialsCommand represents a request to order materials for a batch
// of framing orders. The optional override code lets management proceed past
// an elevated risk verdict.
type OrderMaterialsCommand struct { //nolint:recvcheck //using for validation
	orderIDs       []kernel.UUID
	orderedBy      string
	overrideCode   string
	overrideReason string

	guard guard.ConstructorGuard
}

// NewOrderMaterialsCommand creates a command to order materials for a batch.
// Validates that the batch is non-empty, every order ID is valid, the acting
// user is named, and that a supplied override code carries a justification.
// Both override fields may be empty for a plain, non-overridden attempt.
func NewOrderMaterialsCommand(orderIDs []kernel.UUID, orderedBy, overrideCode, overrideReason string) (OrderMaterialsCommand, error) {
	cmd := OrderMaterialsCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderIDs(orderIDs),
		cmd.setOrderedBy(orderedBy),
		cmd.setOverride(overrideCode, overrideReason),
	); err != nil {
		return OrderMaterialsCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c OrderMaterialsCommand) Validate() error {
	return c.guard.Validate(ErrOrderMaterialsCommandIsNotConstructed)
}

// OrderIDs returns the orders in the batch.
func (c OrderMaterialsCommand) OrderIDs() []kernel.UUID {
	return c.orderIDs
}

// OrderedBy returns the acting user placing the batch.
func (c OrderMaterialsCommand) OrderedBy() string {
	return c.orderedBy
}

// OverrideCode returns the supplied management override code, possibly empty.
func (c OrderMaterialsCommand) OverrideCode() string {
	return c.overrideCode
}

// OverrideReason returns the justification for the override, possibly empty.
func (c OrderMaterialsCommand) OverrideReason() string {
	return c.overrideReason
}

func (c *OrderMaterialsCommand) setOrderIDs(orderIDs []kernel.UUID) error {
	if len(orderIDs) == 0 {
		return ErrOrderIDsAreRequired
	}

	for _, id := range orderIDs {
		if err := id.Validate(); err != nil {
			return err
		}
	}

	c.orderIDs = orderIDs
	return nil
}

func (c *OrderMaterialsCommand) setOrderedBy(orderedBy string) error {
	if orderedBy == "" {
		return ErrOrderedByIsRequired
	}

	c.orderedBy = orderedBy
	return nil
}

func (c *OrderMaterialsCommand) setOverride(code, reason string) error {
	if code != "" && reason == "" {
		return ErrOverrideReasonIsRequired
	}

	c.overrideCode = code
	c.overrideReason = reason
	return nil
}
