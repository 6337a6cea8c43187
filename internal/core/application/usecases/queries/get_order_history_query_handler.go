package queries

import (
	"context"
	"database/sql"

	"gorm.io/gorm"
)

// GetOrderHistoryQueryHandler retrieves an order's status timeline from the
// database. Uses direct SQL queries for optimal read performance in the CQRS
// pattern.
type GetOrderHistoryQueryHandler struct {
	db *gorm.DB
}

// NewGetOrderHistoryQueryHandler creates a handler for timeline queries.
// Requires a GORM database connection for query execution.
func NewGetOrderHistoryQueryHandler(db *gorm.DB) GetOrderHistoryQueryHandler {
	return GetOrderHistoryQueryHandler{db: db}
}

// Handle executes the timeline query, returning entries oldest first.
func (h GetOrderHistoryQueryHandler) Handle(
	ctx context.Context,
	query GetOrderHistoryQuery,
) ([]GetOrderHistoryQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	entries := make([]GetOrderHistoryQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			from_status,
			to_status,
			changed_by,
			reason,
			changed_at
		FROM status_history
		WHERE order_id = ?
		ORDER BY changed_at ASC
	`, query.OrderID().Bytes()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var entry GetOrderHistoryQueryResponse
		var fromStatus sql.NullString

		err = rows.Scan(
			&fromStatus,
			&entry.ToStatus,
			&entry.ChangedBy,
			&entry.Reason,
			&entry.At,
		)
		if err != nil {
			return nil, err
		}

		if fromStatus.Valid {
			entry.FromStatus = &fromStatus.String
		}

		entries = append(entries, entry)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return entries, nil
}
