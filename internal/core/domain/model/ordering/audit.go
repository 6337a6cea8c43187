package ordering

import (
	"errors"
	"time"

	"frameshop/internal/core/domain/model/kernel"
	"frameshop/internal/core/domain/model/material"
	"frameshop/internal/pkg/errs"
	"frameshop/internal/pkg/guard"
)

var ErrAuditIsNotConstructed = errors.New("material order audit is not constructed")

// SnapshotMaterial is one material reference captured at ordering time.
type SnapshotMaterial struct {
	Vendor   string `json:"vendor"`
	ItemCode string `json:"item_code"`
}

// OrderSnapshot preserves what the order looked like at the moment materials
// were ordered. It is stored verbatim alongside the audit record so the
// ordering history survives later edits to the order itself.
type OrderSnapshot struct {
	TrackingCode string             `json:"tracking_code"`
	Materials    []SnapshotMaterial `json:"materials"`
}

// NewOrderSnapshot builds a snapshot from the order tracking code and the
// material signature extracted from its notes.
func NewOrderSnapshot(trackingCode string, signature material.Signature) OrderSnapshot {
	refs := signature.References()
	materials := make([]SnapshotMaterial, 0, len(refs))
	for _, ref := range refs {
		materials = append(materials, SnapshotMaterial{
			Vendor:   ref.Vendor(),
			ItemCode: ref.ItemCode(),
		})
	}
	return OrderSnapshot{
		TrackingCode: trackingCode,
		Materials:    materials,
	}
}

// Signature reconstructs the material signature captured in the snapshot.
// Malformed entries are skipped rather than failing the whole snapshot.
func (s OrderSnapshot) Signature() material.Signature {
	refs := make([]material.Reference, 0, len(s.Materials))
	for _, m := range s.Materials {
		ref, err := material.NewReference(m.Vendor, m.ItemCode)
		if err != nil {
			continue
		}
		refs = append(refs, ref)
	}
	return material.NewSignature(refs...)
}

// Vendors returns the distinct vendor names present in the snapshot.
func (s OrderSnapshot) Vendors() []string {
	return s.Signature().Vendors()
}

// MaterialOrderAudit is the append-only record of a single material order
// placed against a customer order. Records are never updated or deleted.
type MaterialOrderAudit struct {
	id            kernel.UUID
	orderID       kernel.UUID
	orderedBy     string
	orderedAt     time.Time
	wasOverridden bool
	snapshot      OrderSnapshot

	guard guard.ConstructorGuard
}

// NewMaterialOrderAudit creates a new audit record for a just-placed material order.
func NewMaterialOrderAudit(
	orderID kernel.UUID,
	orderedBy string,
	orderedAt time.Time,
	wasOverridden bool,
	snapshot OrderSnapshot,
) (MaterialOrderAudit, error) {
	audit := MaterialOrderAudit{
		id:            kernel.NewUUID(),
		orderedAt:     orderedAt,
		wasOverridden: wasOverridden,
		snapshot:      snapshot,
		guard:         guard.NewConstructorGuard(),
	}

	err := errors.Join(
		audit.setOrderID(orderID),
		audit.setOrderedBy(orderedBy),
	)
	if err != nil {
		return MaterialOrderAudit{}, err
	}
	return audit, nil
}

// RestoreMaterialOrderAudit restores an audit record from persistent storage.
func RestoreMaterialOrderAudit(
	id kernel.UUID,
	orderID kernel.UUID,
	orderedBy string,
	orderedAt time.Time,
	wasOverridden bool,
	snapshot OrderSnapshot,
) MaterialOrderAudit {
	return MaterialOrderAudit{
		id:            id,
		orderID:       orderID,
		orderedBy:     orderedBy,
		orderedAt:     orderedAt,
		wasOverridden: wasOverridden,
		snapshot:      snapshot,
		guard:         guard.NewConstructorGuard(),
	}
}

// Validate checks that the record was created through a constructor.
func (a *MaterialOrderAudit) Validate() error {
	return a.guard.Validate(ErrAuditIsNotConstructed)
}

func (a *MaterialOrderAudit) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("orderID", err)
	}
	a.orderID = orderID
	return nil
}

func (a *MaterialOrderAudit) setOrderedBy(orderedBy string) error {
	if orderedBy == "" {
		return errs.NewValueIsRequiredError("orderedBy")
	}
	a.orderedBy = orderedBy
	return nil
}

// ID returns the audit record identifier.
func (a *MaterialOrderAudit) ID() kernel.UUID {
	return a.id
}

// OrderID returns the customer order this record belongs to.
func (a *MaterialOrderAudit) OrderID() kernel.UUID {
	return a.orderID
}

// OrderedBy returns the actor who placed the material order.
func (a *MaterialOrderAudit) OrderedBy() string {
	return a.orderedBy
}

// OrderedAt returns the moment the material order was placed.
func (a *MaterialOrderAudit) OrderedAt() time.Time {
	return a.orderedAt
}

// WasOverridden reports whether the order went through on a management override.
func (a *MaterialOrderAudit) WasOverridden() bool {
	return a.wasOverridden
}

// Snapshot returns the order state captured at ordering time.
func (a *MaterialOrderAudit) Snapshot() OrderSnapshot {
	return a.snapshot
}
