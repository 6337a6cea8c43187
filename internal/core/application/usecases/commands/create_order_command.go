package commands

import (
	"errors"

	"frameshop/internal/core/domain/model/kernel"
	"frameshop/internal/core/domain/model/order"
	"frameshop/internal/pkg/guard"
)

var (
	ErrCreateOrderCommandIsNotConstructed = errors.New(
		"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
	)
	ErrOrderDescriptionIsRequired = errors.New("order description is required")
	ErrOrderPricingIsInvalid      = errors.New("deposit must be between zero and the order total")
)

// CreateOrderCommand represents a request to take in a new framing order.
// Encapsulates the customer reference, the work description, the free-text
// notes that carry material references, priority, and pricing.
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	orderID      kernel.UUID
	customerID   kernel.UUID
	description  string
	notes        string
	priority     order.Priority
	totalCents   int64
	depositCents int64
	createdBy    string

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand creates a command to take in a new framing order.
// Validates identifiers, requires a description, and checks that the deposit
// does not exceed the total. Notes may be empty; createdBy defaults to the
// system actor downstream when empty.
func NewCreateOrderCommand(
	orderID kernel.UUID,
	customerID kernel.UUID,
	description string,
	notes string,
	priority order.Priority,
	totalCents int64,
	depositCents int64,
	createdBy string,
) (CreateOrderCommand, error) {
	cmd := CreateOrderCommand{
		notes:     notes,
		createdBy: createdBy,
		guard:     guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setCustomerID(customerID),
		cmd.setDescription(description),
		cmd.setPriority(priority),
		cmd.setPricing(totalCents, depositCents),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

// OrderID returns the unique identifier for the order.
func (c CreateOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// CustomerID returns the customer the order belongs to.
func (c CreateOrderCommand) CustomerID() kernel.UUID {
	return c.customerID
}

// Description returns the description of the framing work.
func (c CreateOrderCommand) Description() string {
	return c.description
}

// Notes returns the free-text notes, the source of material references.
func (c CreateOrderCommand) Notes() string {
	return c.notes
}

// Priority returns the order priority.
func (c CreateOrderCommand) Priority() order.Priority {
	return c.priority
}

// TotalCents returns the agreed total price in cents.
func (c CreateOrderCommand) TotalCents() int64 {
	return c.totalCents
}

// DepositCents returns the collected deposit in cents.
func (c CreateOrderCommand) DepositCents() int64 {
	return c.depositCents
}

// CreatedBy returns the actor taking in the order, possibly empty.
func (c CreateOrderCommand) CreatedBy() string {
	return c.createdBy
}

func (c *CreateOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *CreateOrderCommand) setCustomerID(customerID kernel.UUID) error {
	if err := customerID.Validate(); err != nil {
		return err
	}

	c.customerID = customerID
	return nil
}

func (c *CreateOrderCommand) setDescription(description string) error {
	if description == "" {
		return ErrOrderDescriptionIsRequired
	}

	c.description = description
	return nil
}

func (c *CreateOrderCommand) setPriority(priority order.Priority) error {
	if err := priority.Validate(); err != nil {
		return err
	}

	c.priority = priority
	return nil
}

func (c *CreateOrderCommand) setPricing(totalCents, depositCents int64) error {
	if totalCents < 0 || depositCents < 0 || depositCents > totalCents {
		return ErrOrderPricingIsInvalid
	}

	c.totalCents = totalCents
	c.depositCents = depositCents
	return nil
}
