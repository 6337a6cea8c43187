package commands

import (
	"context"

	"frameshop/internal/core/domain/model/order"
	"frameshop/internal/core/ports"
)

// ChangeOrderStatusCommandHandler handles the business logic for status
// transitions. The status update and its history entry are written in one
// transaction so the audit trail can never diverge from the order.
type ChangeOrderStatusCommandHandler struct {
	uowFactory OrderUoWFactory
	notifier   ports.StatusNotifier
	clock      ports.Clock
}

// NewChangeOrderStatusCommandHandler creates a handler for status transitions.
// The notifier receives an event after each committed change; notification is
// best effort and never affects the transition itself.
func NewChangeOrderStatusCommandHandler(
	uowFactory OrderUoWFactory,
	notifier ports.StatusNotifier,
	clock ports.Clock,
) ChangeOrderStatusCommandHandler {
	return ChangeOrderStatusCommandHandler{
		uowFactory: uowFactory,
		notifier:   notifier,
		clock:      clock,
	}
}

// Handle processes the status change command.
// Re-applying the current status commits nothing and emits nothing. A real
// change updates the order, appends exactly one history entry, commits, and
// then enqueues a notification.
func (h *ChangeOrderStatusCommandHandler) Handle(ctx context.Context, cmd ChangeOrderStatusCommand) error {
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

	orderRepo := uow.OrderRepository()
	aggregate, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	change, err := aggregate.ChangeStatus(cmd.NewStatus(), h.clock.Now())
	if err != nil {
		return err
	}
	if change == nil {
		// Same status requested: nothing to persist or announce.
		return nil
	}

	if err = orderRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	entry, err := order.NewStatusHistoryEntry(
		aggregate.ID(), &change.From, change.To, cmd.ChangedBy(), cmd.Reason(), change.At,
	)
	if err != nil {
		return err
	}

	if err = orderRepo.AppendHistory(ctx, entry); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	h.notifier.Notify(ports.StatusChangedEvent{
		OrderID:      aggregate.ID(),
		TrackingCode: aggregate.TrackingCode(),
		From:         change.From,
		To:           change.To,
		ChangedBy:    entry.ChangedBy(),
		At:           change.At,
	})

	return nil
}
