package commands

import (
	"context"
	"time"

	"frameshop/internal/core/domain/model/order"
	"frameshop/internal/core/ports"
)

// unclaimedSweepReason is recorded on every history entry the sweep writes.
const unclaimedSweepReason = "not picked up within the unclaimed window"

// SweepUnclaimedOrdersCommandHandler moves orders that sat in
// READY_FOR_PICKUP past the configured age to MYSTERY_UNCLAIMED, through the
// same audited transition path as any manual change. All moves happen in one
// transaction; notifications go out after commit.
type SweepUnclaimedOrdersCommandHandler struct {
	uowFactory     OrderUoWFactory
	notifier       ports.StatusNotifier
	clock          ports.Clock
	unclaimedAfter time.Duration
}

// NewSweepUnclaimedOrdersCommandHandler creates a handler for the unclaimed
// order sweep. unclaimedAfter is how long an order may wait for pickup.
func NewSweepUnclaimedOrdersCommandHandler(
	uowFactory OrderUoWFactory,
	notifier ports.StatusNotifier,
	clock ports.Clock,
	unclaimedAfter time.Duration,
) SweepUnclaimedOrdersCommandHandler {
	return SweepUnclaimedOrdersCommandHandler{
		uowFactory:     uowFactory,
		notifier:       notifier,
		clock:          clock,
		unclaimedAfter: unclaimedAfter,
	}
}

// Handle processes the sweep command.
func (h *SweepUnclaimedOrdersCommandHandler) Handle(ctx context.Context, cmd SweepUnclaimedOrdersCommand) error {
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

	now := h.clock.Now()
	orderRepo := uow.OrderRepository()

	stale, err := orderRepo.GetInStatusChangedBefore(ctx, order.ReadyForPickup, now.Add(-h.unclaimedAfter))
	if err != nil {
		return err
	}

	events := make([]ports.StatusChangedEvent, 0, len(stale))
	for _, aggregate := range stale {
		change, changeErr := aggregate.ChangeStatus(order.MysteryUnclaimed, now)
		if changeErr != nil {
			return changeErr
		}
		if change == nil {
			continue
		}

		if err = orderRepo.Update(ctx, aggregate); err != nil {
			return err
		}

		entry, entryErr := order.NewStatusHistoryEntry(
			aggregate.ID(), &change.From, change.To, order.DefaultActor, unclaimedSweepReason, change.At,
		)
		if entryErr != nil {
			return entryErr
		}

		if err = orderRepo.AppendHistory(ctx, entry); err != nil {
			return err
		}

		events = append(events, ports.StatusChangedEvent{
			OrderID:      aggregate.ID(),
			TrackingCode: aggregate.TrackingCode(),
			From:         change.From,
			To:           change.To,
			ChangedBy:    order.DefaultActor,
			At:           change.At,
		})
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	for _, event := range events {
		h.notifier.Notify(event)
	}

	return nil
}
