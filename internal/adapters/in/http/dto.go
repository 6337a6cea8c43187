package http

import (
	"time"

	"github.com/google/uuid"
)

// ErrorResponse is the uniform error body for all endpoints.
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// CreateCustomerRequest is the body of POST /api/v1/customers.
type CreateCustomerRequest struct {
	Name  string `json:"name"`
	Phone string `json:"phone,omitempty"`
	Email string `json:"email,omitempty"`
}

// CreateCustomerResponse returns the identifier of the new customer.
type CreateCustomerResponse struct {
	ID uuid.UUID `json:"id"`
}

// CreateOrderRequest is the body of POST /api/v1/orders.
type CreateOrderRequest struct {
	CustomerID   uuid.UUID `json:"customer_id"`
	Description  string    `json:"description"`
	Notes        string    `json:"notes,omitempty"`
	Priority     string    `json:"priority"`
	TotalCents   int64     `json:"total_cents"`
	DepositCents int64     `json:"deposit_cents"`
	CreatedBy    string    `json:"created_by,omitempty"`
}

// CreateOrderResponse returns the identifier of the new order.
type CreateOrderResponse struct {
	ID uuid.UUID `json:"id"`
}

// ChangeStatusRequest is the body of POST /api/v1/orders/:id/status.
type ChangeStatusRequest struct {
	Status    string `json:"status"`
	ChangedBy string `json:"changed_by,omitempty"`
	Reason    string `json:"reason,omitempty"`
}

// HistoryEntryResponse is one row of GET /api/v1/orders/:id/history.
type HistoryEntryResponse struct {
	FromStatus *string   `json:"from_status"`
	ToStatus   string    `json:"to_status"`
	ChangedBy  string    `json:"changed_by"`
	Reason     string    `json:"reason,omitempty"`
	At         time.Time `json:"at"`
}

// OrderSummaryResponse is one row of GET /api/v1/orders?status=.
type OrderSummaryResponse struct {
	ID              uuid.UUID `json:"id"`
	TrackingCode    string    `json:"tracking_code"`
	CustomerID      uuid.UUID `json:"customer_id"`
	Description     string    `json:"description"`
	Priority        string    `json:"priority"`
	Status          string    `json:"status"`
	TotalCents      int64     `json:"total_cents"`
	DepositCents    int64     `json:"deposit_cents"`
	CreatedAt       time.Time `json:"created_at"`
	StatusChangedAt time.Time `json:"status_changed_at"`
}

// OrderMaterialsRequest is the body of POST /api/v1/material-orders.
type OrderMaterialsRequest struct {
	OrderIDs       []uuid.UUID `json:"order_ids"`
	OrderedBy      string      `json:"ordered_by"`
	OverrideCode   string      `json:"override_code,omitempty"`
	OverrideReason string      `json:"override_reason,omitempty"`
}

// DuplicateCheckResponse summarizes the risk verdict for the caller.
type DuplicateCheckResponse struct {
	IsDuplicate      bool        `json:"is_duplicate"`
	RequiresOverride bool        `json:"requires_override"`
	RiskLevel        string      `json:"risk_level"`
	ExistingOrders   []uuid.UUID `json:"existing_orders,omitempty"`
}

// MaterialOrderItemResponse is the per-order outcome within a batch.
type MaterialOrderItemResponse struct {
	OrderID uuid.UUID `json:"order_id"`
	Success bool      `json:"success"`
	Message string    `json:"message,omitempty"`
}

// OrderMaterialsResponse is the decision object of POST /api/v1/material-orders.
type OrderMaterialsResponse struct {
	Success          bool                        `json:"success"`
	Message          string                      `json:"message"`
	RequiresOverride bool                        `json:"requires_override"`
	Overridden       bool                        `json:"overridden"`
	DuplicateCheck   DuplicateCheckResponse      `json:"duplicate_check"`
	Items            []MaterialOrderItemResponse `json:"items,omitempty"`
	Succeeded        int                         `json:"succeeded"`
	Failed           int                         `json:"failed"`
}

// HealthResponse is the body of GET /health.
type HealthResponse struct {
	Status string `json:"status"`
}
