package commands

import (
	"context"
	"strings"

	"frameshop/internal/core/domain/model/kernel"
	"frameshop/internal/core/domain/model/order"
	"frameshop/internal/core/ports"
)

// trackingCodePrefix starts every human-readable order tracking code.
const trackingCodePrefix = "FRM-"

// CreateOrderCommandHandler handles the business logic for order intake.
// Verifies the customer exists, creates the order in its initial status, and
// writes the creation history entry in the same transaction.
type CreateOrderCommandHandler struct {
	uowFactory IntakeUoWFactory
	clock      ports.Clock
}

// NewCreateOrderCommandHandler creates a handler for order intake operations.
// Requires an IntakeUoWFactory for transactional persistence and a clock for
// the intake timestamp.
func NewCreateOrderCommandHandler(uowFactory IntakeUoWFactory, clock ports.Clock) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
		clock:      clock,
	}
}

// Handle processes the order intake command.
// Rejects unknown customers, generates the tracking code, and persists the
// order together with its creation history entry atomically.
func (h *CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if _, err := uow.CustomerRepository().Get(ctx, cmd.CustomerID()); err != nil {
		return err
	}

	now := h.clock.Now()
	aggregate, err := order.NewOrder(
		cmd.OrderID(),
		newTrackingCode(),
		cmd.CustomerID(),
		cmd.Description(),
		cmd.Notes(),
		cmd.Priority(),
		cmd.TotalCents(),
		cmd.DepositCents(),
		now,
	)
	if err != nil {
		return err
	}

	orderRepo := uow.OrderRepository()
	if err = orderRepo.Add(ctx, aggregate); err != nil {
		return err
	}

	entry, err := order.NewStatusHistoryEntry(
		aggregate.ID(), nil, aggregate.Status(), cmd.CreatedBy(), "order taken in", now,
	)
	if err != nil {
		return err
	}

	if err = orderRepo.AppendHistory(ctx, entry); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

// newTrackingCode generates a short human-readable code, e.g. "FRM-9F3A01B2".
func newTrackingCode() string {
	return trackingCodePrefix + strings.ToUpper(kernel.NewUUID().String()[:8])
}
