// Package materialauditrepo provides data transfer objects and mapping
// functions for the append-only material ordering history. The order snapshot
// is stored as a jsonb document so the record survives later edits to the
// order it describes.
package materialauditrepo

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"

	"frameshop/internal/core/domain/model/kernel"
	"frameshop/internal/core/domain/model/ordering"
)

// MaterialOrderAuditDTO represents one append-only audit row.
type MaterialOrderAuditDTO struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrderID       uuid.UUID `gorm:"type:uuid;index"`
	OrderedBy     string
	OrderedAt     time.Time `gorm:"index"`
	WasOverridden bool
	Snapshot      []byte `gorm:"type:jsonb"`
}

// TableName specifies the database table name for audit records.
func (MaterialOrderAuditDTO) TableName() string {
	return "material_order_audit"
}

// fromDomain converts an audit record to its database representation.
func fromDomain(record ordering.MaterialOrderAudit) (MaterialOrderAuditDTO, error) {
	snapshot, err := json.Marshal(record.Snapshot())
	if err != nil {
		return MaterialOrderAuditDTO{}, err
	}

	return MaterialOrderAuditDTO{
		ID:            record.ID().Bytes(),
		OrderID:       record.OrderID().Bytes(),
		OrderedBy:     record.OrderedBy(),
		OrderedAt:     record.OrderedAt(),
		WasOverridden: record.WasOverridden(),
		Snapshot:      snapshot,
	}, nil
}

// toDomain converts a database row back to an audit record.
func toDomain(dto MaterialOrderAuditDTO) (ordering.MaterialOrderAudit, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return ordering.MaterialOrderAudit{}, err
	}

	orderID, err := kernel.UUIDFromBytes(dto.OrderID[:])
	if err != nil {
		return ordering.MaterialOrderAudit{}, err
	}

	var snapshot ordering.OrderSnapshot
	if err = json.Unmarshal(dto.Snapshot, &snapshot); err != nil {
		return ordering.MaterialOrderAudit{}, err
	}

	return ordering.RestoreMaterialOrderAudit(
		id, orderID, dto.OrderedBy, dto.OrderedAt, dto.WasOverridden, snapshot,
	), nil
}
