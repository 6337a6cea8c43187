package order

import (
	"fmt"

	"frameshop/internal/pkg/errs"
)

// Status represents the lifecycle state of a framing order on the shop's
// production workflow.
//
// The set of states is closed, but the workflow deliberately does not enforce
// a transition graph: any valid status may move to any other valid status.
// Shops correct mistakes (a frame re-cut sends an order backwards) and skip
// steps (a mat-only job never reaches FrameCut), so the guarantee the domain
// provides is not adjacency but auditability: every real status change is
// paired with exactly one history entry.
//
// Status is a value object that validates membership in the closed set and
// provides string representations for persistence, the API, and display.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// OrderProcessed is the initial status set at order intake.
	OrderProcessed

	// MaterialsOrdered indicates frame/mat/glass materials have been ordered
	// from vendors. Set exclusively through the material-ordering workflow so
	// the duplicate-prevention audit trail stays complete.
	MaterialsOrdered

	// MaterialsArrived indicates all ordered materials have been received.
	MaterialsArrived

	// FrameCut indicates the frame moulding has been cut and joined.
	FrameCut

	// MatCut indicates the mat boards have been cut.
	MatCut

	// Prepped indicates the piece is assembled and awaiting final QA.
	Prepped

	// ReadyForPickup indicates the customer has been notified for pickup.
	ReadyForPickup

	// Completed indicates the work is done and invoiced.
	Completed

	// PickedUp indicates the customer has collected the piece. By convention
	// this is the end of the workflow, though no further transition is blocked.
	PickedUp

	// MysteryUnclaimed marks orders that sat in ReadyForPickup past the
	// configured unclaimed window without being collected.
	MysteryUnclaimed
)

// getStatusStrings returns a map of Status values to their string representations.
// All statuses are included for string conversion.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:          "UNKNOWN",
		OrderProcessed:   "ORDER_PROCESSED",
		MaterialsOrdered: "MATERIALS_ORDERED",
		MaterialsArrived: "MATERIALS_ARRIVED",
		FrameCut:         "FRAME_CUT",
		MatCut:           "MAT_CUT",
		Prepped:          "PREPPED",
		ReadyForPickup:   "READY_FOR_PICKUP",
		Completed:        "COMPLETED",
		PickedUp:         "PICKED_UP",
		MysteryUnclaimed: "MYSTERY_UNCLAIMED",
	}
}

// getValidStatusStrings returns a map of only valid Status values.
// Only valid statuses are included to support validation.
func getValidStatusStrings() map[Status]string {
	strings := getStatusStrings()
	delete(strings, Unknown)
	return strings
}

// Validate checks if the Status value is a member of the closed workflow set.
// Unknown (0) and any other values are invalid.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the workflow name of the status, e.g. "READY_FOR_PICKUP".
// It implements fmt.Stringer and is safe to call on any Status value;
// invalid values render as "UNKNOWN".
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "UNKNOWN"
}

// StatusFromString parses a workflow name (e.g. "FRAME_CUT") back into a
// Status. Returns an error for names outside the closed set; "UNKNOWN" is
// not accepted.
func StatusFromString(name string) (Status, error) {
	for status, str := range getValidStatusStrings() {
		if str == name {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%q is not a valid status", name))
}
