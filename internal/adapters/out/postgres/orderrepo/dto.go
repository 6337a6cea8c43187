// Package orderrepo provides data transfer objects and mapping functions for
// order persistence. This package implements the repository pattern for the
// order domain aggregate, handling the conversion between domain entities and
// database representations, including the append-only status history table.
package orderrepo

import (
	"time"

	"github.com/google/uuid"

	"frameshop/internal/core/domain/model/kernel"
	"frameshop/internal/core/domain/model/order"
)

// OrderDTO represents the database structure for persisting order aggregates.
// Status and priority are stored as their workflow names so the tables read
// naturally and the workboard queries filter on plain strings.
type OrderDTO struct {
	ID              uuid.UUID `gorm:"type:uuid;primaryKey"`
	TrackingCode    string    `gorm:"type:varchar(32);uniqueIndex"`
	CustomerID      uuid.UUID `gorm:"type:uuid;index"`
	Description     string
	Notes           string
	Priority        string `gorm:"type:varchar(16)"`
	Status          string `gorm:"type:varchar(32);index"`
	TotalCents      int64
	DepositCents    int64
	CreatedAt       time.Time
	StatusChangedAt time.Time `gorm:"index"`
}

// TableName specifies the database table name for order entities.
func (OrderDTO) TableName() string {
	return "orders"
}

// StatusHistoryDTO represents one append-only status history row.
// FromStatus is null exactly once per order, for the intake entry.
type StatusHistoryDTO struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrderID    uuid.UUID `gorm:"type:uuid;index"`
	FromStatus *string   `gorm:"type:varchar(32)"`
	ToStatus   string    `gorm:"type:varchar(32)"`
	ChangedBy  string
	Reason     string
	ChangedAt  time.Time `gorm:"index"`
}

// TableName specifies the database table name for status history entries.
func (StatusHistoryDTO) TableName() string {
	return "status_history"
}

// fromDomain converts an order domain aggregate to its database representation.
func fromDomain(aggregate *order.Order) OrderDTO {
	return OrderDTO{
		ID:              aggregate.ID().Bytes(),
		TrackingCode:    aggregate.TrackingCode(),
		CustomerID:      aggregate.CustomerID().Bytes(),
		Description:     aggregate.Description(),
		Notes:           aggregate.Notes(),
		Priority:        aggregate.Priority().String(),
		Status:          aggregate.Status().String(),
		TotalCents:      aggregate.TotalCents(),
		DepositCents:    aggregate.DepositCents(),
		CreatedAt:       aggregate.CreatedAt(),
		StatusChangedAt: aggregate.StatusChangedAt(),
	}
}

// toDomain converts a database DTO to an order domain aggregate using RestoreOrder.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	customerID, err := kernel.UUIDFromBytes(dto.CustomerID[:])
	if err != nil {
		return nil, err
	}

	priority, err := order.PriorityFromString(dto.Priority)
	if err != nil {
		return nil, err
	}

	status, err := order.StatusFromString(dto.Status)
	if err != nil {
		return nil, err
	}

	return order.RestoreOrder(
		id,
		dto.TrackingCode,
		customerID,
		dto.Description,
		dto.Notes,
		priority,
		dto.TotalCents,
		dto.DepositCents,
		status,
		dto.CreatedAt,
		dto.StatusChangedAt,
	)
}

// historyFromDomain converts a status history entry to its database row.
func historyFromDomain(entry order.StatusHistoryEntry) StatusHistoryDTO {
	var fromStatus *string
	if from := entry.From(); from != nil {
		s := from.String()
		fromStatus = &s
	}

	return StatusHistoryDTO{
		ID:         uuid.New(),
		OrderID:    entry.OrderID().Bytes(),
		FromStatus: fromStatus,
		ToStatus:   entry.To().String(),
		ChangedBy:  entry.ChangedBy(),
		Reason:     entry.Reason(),
		ChangedAt:  entry.At(),
	}
}

// historyToDomain converts a database row back to a status history entry.
func historyToDomain(dto StatusHistoryDTO) (order.StatusHistoryEntry, error) {
	orderID, err := kernel.UUIDFromBytes(dto.OrderID[:])
	if err != nil {
		return order.StatusHistoryEntry{}, err
	}

	var from *order.Status
	if dto.FromStatus != nil {
		status, statusErr := order.StatusFromString(*dto.FromStatus)
		if statusErr != nil {
			return order.StatusHistoryEntry{}, statusErr
		}
		from = &status
	}

	to, err := order.StatusFromString(dto.ToStatus)
	if err != nil {
		return order.StatusHistoryEntry{}, err
	}

	return order.NewStatusHistoryEntry(orderID, from, to, dto.ChangedBy, dto.Reason, dto.ChangedAt)
}
