// Package guard provides a small defensive-programming helper that ensures
// commands, queries, and value objects are only created through their
// designated constructor functions.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by Validate when a nil validation
// error is supplied for a zero-value guard.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard detects whether the embedding struct was built through its
// constructor or left as a zero value. Embed one in a struct and call
// Validate with the struct's "not constructed" error.
//
// Example:
//
//	type ChangeStatusCommand struct {
//	    orderID kernel.UUID
//	    guard   guard.ConstructorGuard
//	}
//
//	func NewChangeStatusCommand(orderID kernel.UUID) ChangeStatusCommand {
//	    return ChangeStatusCommand{orderID: orderID, guard: guard.NewConstructorGuard()}
//	}
//
//	func (c ChangeStatusCommand) Validate() error {
//	    return c.guard.Validate(ErrChangeStatusCommandIsNotConstructed)
//	}
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard creates a guard marking the enclosing object as
// properly constructed.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate returns nil for a constructed guard. For a zero-value guard it
// returns validationError, or ErrDefaultConstructorGuard when
// validationError is nil.
func (g ConstructorGuard) Validate(validationError error) error {
	if validationError == nil {
		validationError = ErrDefaultConstructorGuard
	}
	if !g.isConstructed {
		return validationError
	}
	return nil
}
