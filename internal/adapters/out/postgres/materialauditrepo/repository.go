package materialauditrepo

import (
	"context"
	"time"

	"gorm.io/gorm"

	"frameshop/internal/core/domain/model/ordering"
)

// GormMaterialOrderAuditRepository implements MaterialOrderAuditRepository
// using GORM. Rows are only ever inserted and read.
type GormMaterialOrderAuditRepository struct {
	db *gorm.DB
}

// NewGormMaterialOrderAuditRepository creates a new GORM audit repository.
func NewGormMaterialOrderAuditRepository(db *gorm.DB) *GormMaterialOrderAuditRepository {
	return &GormMaterialOrderAuditRepository{db: db}
}

// Append persists one audit record.
func (r *GormMaterialOrderAuditRepository) Append(ctx context.Context, record ordering.MaterialOrderAudit) error {
	if err := record.Validate(); err != nil {
		return err
	}

	dto, err := fromDomain(record)
	if err != nil {
		return err
	}

	return r.db.WithContext(ctx).Create(&dto).Error
}

// ListSince retrieves all records placed at or after the given moment, newest first.
func (r *GormMaterialOrderAuditRepository) ListSince(ctx context.Context, since time.Time) ([]ordering.MaterialOrderAudit, error) {
	var dtos []MaterialOrderAuditDTO
	err := r.db.WithContext(ctx).
		Order("ordered_at DESC").
		Find(&dtos, "ordered_at >= ?", since).Error
	if err != nil {
		return nil, err
	}

	records := make([]ordering.MaterialOrderAudit, 0, len(dtos))
	for _, dto := range dtos {
		record, recordErr := toDomain(dto)
		if recordErr != nil {
			return nil, recordErr
		}
		records = append(records, record)
	}

	return records, nil
}
