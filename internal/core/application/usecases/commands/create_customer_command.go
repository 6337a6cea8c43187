package commands

import (
	"errors"

	"frameshop/internal/core/domain/model/kernel"
	"frameshop/internal/pkg/guard"
)

var (
	ErrCreateCustomerCommandIsNotConstructed = errors.New(
		"CreateCustomerCommand must be created via NewCreateCustomerCommand constructor",
	)
	ErrCustomerNameIsRequired    = errors.New("customer name is required")
	ErrCustomerContactIsRequired = errors.New("customer phone or email is required")
)

// CreateCustomerCommand represents a request to register a new customer.
// A customer needs a name and at least one contact channel so the shop can
// reach them when their order is ready.
type CreateCustomerCommand struct { //nolint:recvcheck //using for validation
	customerID kernel.UUID
	name       string
	phone      string
	email      string

	guard guard.ConstructorGuard
}

// NewCreateCustomerCommand creates a command to register a new customer.
// Validates that the ID is valid, the name is not empty, and at least one of
// phone or email is present.
func NewCreateCustomerCommand(customerID kernel.UUID, name, phone, email string) (CreateCustomerCommand, error) {
	cmd := CreateCustomerCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setCustomerID(customerID),
		cmd.setName(name),
		cmd.setContact(phone, email),
	); err != nil {
		return CreateCustomerCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateCustomerCommand) Validate() error {
	return c.guard.Validate(ErrCreateCustomerCommandIsNotConstructed)
}

// CustomerID returns the unique identifier for the customer.
func (c CreateCustomerCommand) CustomerID() kernel.UUID {
	return c.customerID
}

// Name returns the customer's display name.
func (c CreateCustomerCommand) Name() string {
	return c.name
}

// Phone returns the customer's phone number, possibly empty.
func (c CreateCustomerCommand) Phone() string {
	return c.phone
}

// Email returns the customer's email address, possibly empty.
func (c CreateCustomerCommand) Email() string {
	return c.email
}

func (c *CreateCustomerCommand) setCustomerID(customerID kernel.UUID) error {
	if err := customerID.Validate(); err != nil {
		return err
	}

	c.customerID = customerID
	return nil
}

func (c *CreateCustomerCommand) setName(name string) error {
	if name == "" {
		return ErrCustomerNameIsRequired
	}

	c.name = name
	return nil
}

func (c *CreateCustomerCommand) setContact(phone, email string) error {
	if phone == "" && email == "" {
		return ErrCustomerContactIsRequired
	}

	c.phone = phone
	c.email = email
	return nil
}
