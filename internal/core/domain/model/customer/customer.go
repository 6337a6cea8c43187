package customer

import (
	"errors"

	"frameshop/internal/core/domain/model/kernel"
	"frameshop/internal/pkg/errs"
	"frameshop/internal/pkg/guard"
)

// Domain errors for customer operations.
var (
	// ErrNameIsRequired is returned when attempting to create a customer without a name.
	ErrNameIsRequired = errs.NewValueIsRequiredError("name")
	// ErrContactIsRequired is returned when a customer has neither a phone number nor an email.
	ErrContactIsRequired = errs.NewValueIsRequiredError("phone or email")
	// ErrCustomerIsNotConstructed is returned when using an improperly initialized Customer.
	ErrCustomerIsNotConstructed = errors.New("Customer must be created via NewCustomer constructor")
)

// Customer represents a client of the frame shop. It is a small aggregate
// holding identity and the contact channels status notifications go out on.
//
// Business rules:
//   - Customer must have a valid UUID and a non-empty name
//   - At least one contact channel (phone or email) must be present, since
//     pickup notifications have to reach the customer somehow
type Customer struct {
	// id uniquely identifies the customer
	id kernel.UUID
	// name is the customer's display name
	name string
	// phone is the SMS/voice number, optional if email is set
	phone string
	// email is the notification email address, optional if phone is set
	email string
	// guard ensures the customer was properly constructed
	guard guard.ConstructorGuard
}

// NewCustomer creates a new Customer with the specified contact details.
// This is the only way to create a valid Customer instance.
func NewCustomer(id kernel.UUID, name, phone, email string) (*Customer, error) {
	c := &Customer{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		c.setID(id),
		c.setName(name),
		c.setContact(phone, email),
	); err != nil {
		return nil, err
	}

	return c, nil
}

// RestoreCustomer reconstructs a Customer aggregate from persistent storage.
// Used exclusively by repository implementations.
func RestoreCustomer(id kernel.UUID, name, phone, email string) (*Customer, error) {
	return NewCustomer(id, name, phone, email)
}

// Validate ensures the Customer instance was properly constructed.
func (c *Customer) Validate() error {
	if c == nil {
		return ErrCustomerIsNotConstructed
	}
	return c.guard.Validate(ErrCustomerIsNotConstructed)
}

// IsEqual compares two customers by their unique identifiers.
func (c *Customer) IsEqual(other *Customer) bool {
	return other != nil && c.id.IsEqual(other.id)
}

// ID returns the customer's unique identifier.
func (c *Customer) ID() kernel.UUID {
	return c.id
}

// Name returns the customer's display name.
func (c *Customer) Name() string {
	return c.name
}

// Phone returns the customer's phone number, possibly empty.
func (c *Customer) Phone() string {
	return c.phone
}

// Email returns the customer's email address, possibly empty.
func (c *Customer) Email() string {
	return c.email
}

func (c *Customer) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.id = id
	return nil
}

func (c *Customer) setName(name string) error {
	if name == "" {
		return ErrNameIsRequired
	}
	c.name = name
	return nil
}

func (c *Customer) setContact(phone, email string) error {
	if phone == "" && email == "" {
		return ErrContactIsRequired
	}
	c.phone = phone
	c.email = email
	return nil
}
