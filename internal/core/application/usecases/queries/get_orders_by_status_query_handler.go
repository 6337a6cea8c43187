package queries

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"frameshop/internal/core/domain/model/kernel"
)

// GetOrdersByStatusQueryHandler retrieves the workboard rows from the
// database. Uses direct SQL queries for optimal read performance in the CQRS
// pattern.
type GetOrdersByStatusQueryHandler struct {
	db *gorm.DB
}

// NewGetOrdersByStatusQueryHandler creates a handler for workboard queries.
// Requires a GORM database connection for query execution.
func NewGetOrdersByStatusQueryHandler(db *gorm.DB) GetOrdersByStatusQueryHandler {
	return GetOrdersByStatusQueryHandler{db: db}
}

// Handle executes the workboard query.
// Rush orders come first, then oldest status change first, so the board reads
// top-down in the sequence work should be picked up.
func (h GetOrdersByStatusQueryHandler) Handle(
	ctx context.Context,
	query GetOrdersByStatusQuery,
) ([]GetOrdersByStatusQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	orders := make([]GetOrdersByStatusQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			tracking_code,
			customer_id,
			description,
			priority,
			status,
			total_cents,
			deposit_cents,
			created_at,
			status_changed_at
		FROM orders
		WHERE status = ?
		ORDER BY CASE WHEN priority = 'RUSH' THEN 0 ELSE 1 END, status_changed_at ASC
	`, query.Status().String()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var row GetOrdersByStatusQueryResponse
		var id, customerID uuid.UUID

		err = rows.Scan(
			&id,
			&row.TrackingCode,
			&customerID,
			&row.Description,
			&row.Priority,
			&row.Status,
			&row.TotalCents,
			&row.DepositCents,
			&row.CreatedAt,
			&row.StatusChangedAt,
		)
		if err != nil {
			return nil, err
		}

		orderID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		row.ID = orderID

		ownerID, idErr := kernel.UUIDFromBytes(customerID[:])
		if idErr != nil {
			return nil, idErr
		}
		row.CustomerID = ownerID

		orders = append(orders, row)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return orders, nil
}
