package ordering

import (
	"frameshop/internal/core/domain/model/kernel"
	"frameshop/internal/core/domain/model/material"
)

// Candidate is one customer order proposed for material ordering, paired with
// the material signature extracted from its notes.
type Candidate struct {
	OrderID      kernel.UUID
	TrackingCode string
	Signature    material.Signature
}

// DuplicateOrderCheck is the outcome of analyzing a proposed batch against the
// recent ordering history. Any risk above LOW requires a management override.
type DuplicateOrderCheck struct {
	IsDuplicate      bool
	ExistingOrders   []MaterialOrderAudit
	RequiresOverride bool
	RiskLevel        RiskLevel
}

// NewDuplicateOrderCheck builds a check result for the given risk level. The
// override requirement follows directly from the level.
func NewDuplicateOrderCheck(level RiskLevel, isDuplicate bool, existing []MaterialOrderAudit) DuplicateOrderCheck {
	return DuplicateOrderCheck{
		IsDuplicate:      isDuplicate,
		ExistingOrders:   existing,
		RequiresOverride: level > RiskLow,
		RiskLevel:        level,
	}
}

// FailSafeCheck is the result used when the ordering history cannot be read.
// An unreadable history must never let an order slip through unchecked, so the
// check degrades to the most restrictive outcome.
func FailSafeCheck() DuplicateOrderCheck {
	return DuplicateOrderCheck{
		IsDuplicate:      false,
		ExistingOrders:   nil,
		RequiresOverride: true,
		RiskLevel:        RiskCritical,
	}
}
