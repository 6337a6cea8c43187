package order

import (
	"fmt"

	"frameshop/internal/pkg/errs"
)

// Priority represents how an order is scheduled on the workboard.
type Priority int

const (
	// PriorityUnknown represents an invalid or undefined priority.
	PriorityUnknown Priority = iota

	// PriorityStandard is the default scheduling class.
	PriorityStandard

	// PriorityRush orders jump the production queue.
	PriorityRush
)

// getPriorityStrings returns a map of Priority values to their string representations.
func getPriorityStrings() map[Priority]string {
	return map[Priority]string{
		PriorityUnknown:  "UNKNOWN",
		PriorityStandard: "STANDARD",
		PriorityRush:     "RUSH",
	}
}

// Validate checks if the Priority value is valid.
func (p Priority) Validate() error {
	if p != PriorityStandard && p != PriorityRush {
		return errs.NewValueIsInvalidErrorWithCause("priority is invalid", fmt.Errorf("%d is not a valid priority", p))
	}
	return nil
}

// String returns the name of the priority, e.g. "RUSH".
func (p Priority) String() string {
	if str, ok := getPriorityStrings()[p]; ok {
		return str
	}
	return "UNKNOWN"
}

// PriorityFromString parses a priority name back into a Priority.
func PriorityFromString(name string) (Priority, error) {
	switch name {
	case "STANDARD":
		return PriorityStandard, nil
	case "RUSH":
		return PriorityRush, nil
	default:
		return PriorityUnknown, errs.NewValueIsInvalidErrorWithCause("priority is invalid", fmt.Errorf("%q is not a valid priority", name))
	}
}
