package commands

import (
	"context"
	"errors"
	"fmt"
	"time"

	"frameshop/internal/core/domain/model/kernel"
	"frameshop/internal/core/domain/model/material"
	"frameshop/internal/core/domain/model/order"
	"frameshop/internal/core/domain/model/ordering"
	"frameshop/internal/core/domain/services"
	"frameshop/internal/core/ports"
	"frameshop/internal/pkg/errs"
)

// ErrMaterialsAlreadyOrdered fails a batch item whose order was moved to
// MATERIALS_ORDERED between the risk check and the mutation.
var ErrMaterialsAlreadyOrdered = errors.New("materials already ordered for this order")

// OrderMaterialsItemResult is the outcome for one order in a batch.
type OrderMaterialsItemResult struct {
	OrderID kernel.UUID
	Success bool
	Message string
}

// OrderMaterialsResult is the decision object every material ordering attempt
// yields. The caller always receives one; risk rejections, authorization
// denials, and per-order failures are all expressed here, never as an error
// crossing the handler boundary.
type OrderMaterialsResult struct {
	Success          bool
	Message          string
	RequiresOverride bool
	Overridden       bool
	Check            ordering.DuplicateOrderCheck
	Items            []OrderMaterialsItemResult
	Succeeded        int
	Failed           int
}

// OrderMaterialsCommandHandler is the single entry point for ordering
// materials against a batch of framing orders. It composes the risk
// classification, the override gate, and the per-order status mutation with
// its paired audit record.
//
// Each order in the batch is processed in its own transaction: one failing
// order never aborts the rest, and a committed status change is always
// accompanied by exactly one history entry and one audit record.
type OrderMaterialsCommandHandler struct {
	uowFactory     MaterialUoWFactory
	analyzer       services.RiskAnalyzer
	gate           services.OverrideGate
	notifier       ports.StatusNotifier
	clock          ports.Clock
	lookbackWindow time.Duration
}

// NewOrderMaterialsCommandHandler creates the material ordering orchestrator.
// lookbackWindow bounds the duplicate-detection history read.
func NewOrderMaterialsCommandHandler(
	uowFactory MaterialUoWFactory,
	analyzer services.RiskAnalyzer,
	gate services.OverrideGate,
	notifier ports.StatusNotifier,
	clock ports.Clock,
	lookbackWindow time.Duration,
) OrderMaterialsCommandHandler {
	return OrderMaterialsCommandHandler{
		uowFactory:     uowFactory,
		analyzer:       analyzer,
		gate:           gate,
		notifier:       notifier,
		clock:          clock,
		lookbackWindow: lookbackWindow,
	}
}

// Handle processes the material ordering command. The returned error is
// non-nil only for an invalid command; every other failure mode is folded
// into the result so callers always get a decision they can render.
func (h *OrderMaterialsCommandHandler) Handle(ctx context.Context, cmd OrderMaterialsCommand) (OrderMaterialsResult, error) {
	if err := cmd.Validate(); err != nil {
		return OrderMaterialsResult{}, err
	}

	now := h.clock.Now()
	check := h.runDetector(ctx, cmd.OrderIDs(), now)

	if check.RequiresOverride {
		if cmd.OverrideCode() == "" {
			return OrderMaterialsResult{
				Success:          false,
				Message:          riskMessage(check),
				RequiresOverride: true,
				Check:            check,
			}, nil
		}

		if err := h.gate.Authorize(cmd.OrderedBy(), cmd.OverrideCode(), cmd.OverrideReason()); err != nil {
			return OrderMaterialsResult{
				Success:          false,
				Message:          "override authorization denied",
				RequiresOverride: true,
				Check:            check,
			}, nil
		}
	}

	overridden := check.RequiresOverride

	result := OrderMaterialsResult{
		RequiresOverride: check.RequiresOverride,
		Overridden:       overridden,
		Check:            check,
		Items:            make([]OrderMaterialsItemResult, 0, len(cmd.OrderIDs())),
	}

	for _, orderID := range cmd.OrderIDs() {
		event, err := h.processOrder(ctx, orderID, cmd.OrderedBy(), overridden, now)
		if err != nil {
			result.Failed++
			result.Items = append(result.Items, OrderMaterialsItemResult{
				OrderID: orderID,
				Success: false,
				Message: err.Error(),
			})
			continue
		}

		result.Succeeded++
		result.Items = append(result.Items, OrderMaterialsItemResult{
			OrderID: orderID,
			Success: true,
		})

		if event != nil {
			h.notifier.Notify(*event)
		}
	}

	result.Success = result.Succeeded > 0
	result.Message = summaryMessage(result.Succeeded, result.Failed, overridden)

	return result, nil
}

// summaryMessage reports the batch outcome: how many orders got materials,
// how many failed, and whether a management override was used.
func summaryMessage(succeeded, failed int, overridden bool) string {
	msg := fmt.Sprintf("materials ordered for %d of %d orders", succeeded, succeeded+failed)
	if failed > 0 {
		msg += fmt.Sprintf(", %d failed", failed)
	}
	if overridden {
		msg += " (management override used)"
	}
	return msg
}

// runDetector loads the batch candidates and the lookback history, then
// classifies the batch. A missing order is excluded from the candidates (it
// fails its own batch item later); any other read failure degrades to the
// fail-safe CRITICAL verdict: an unreadable history must never let an order
// slip through.
func (h *OrderMaterialsCommandHandler) runDetector(ctx context.Context, orderIDs []kernel.UUID, now time.Time) ordering.DuplicateOrderCheck {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return ordering.FailSafeCheck()
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	candidates := make([]ordering.Candidate, 0, len(orderIDs))
	for _, orderID := range orderIDs {
		aggregate, err := orderRepo.Get(ctx, orderID)
		if err != nil {
			// A missing order is a per-item failure, not a store outage:
			// leave it out of the risk check and let processOrder surface
			// the NotFound on its own item.
			if errors.Is(err, errs.ErrObjectNotFound) {
				continue
			}
			return ordering.FailSafeCheck()
		}

		candidates = append(candidates, ordering.Candidate{
			OrderID:      aggregate.ID(),
			TrackingCode: aggregate.TrackingCode(),
			Signature:    material.ExtractSignature(aggregate.Notes()),
		})
	}

	recent, err := uow.MaterialOrderAuditRepository().ListSince(ctx, now.Add(-h.lookbackWindow))
	if err != nil {
		return ordering.FailSafeCheck()
	}

	return h.analyzer.Classify(candidates, recent)
}

// processOrder mutates one order in its own transaction: the status change,
// its history entry, and the audit record commit or roll back together.
// Returns the notification event for a real status change, nil for an
// overridden re-order that was already in MATERIALS_ORDERED.
func (h *OrderMaterialsCommandHandler) processOrder(
	ctx context.Context,
	orderID kernel.UUID,
	orderedBy string,
	overridden bool,
	now time.Time,
) (*ports.StatusChangedEvent, error) {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	aggregate, err := orderRepo.Get(ctx, orderID)
	if err != nil {
		return nil, err
	}

	// Claim: without an override, an order that reached MATERIALS_ORDERED
	// since the up-front risk check must not be double-ordered.
	if !overridden && aggregate.Status() == order.MaterialsOrdered {
		return nil, ErrMaterialsAlreadyOrdered
	}

	change, err := aggregate.ChangeStatus(order.MaterialsOrdered, now)
	if err != nil {
		return nil, err
	}

	if change != nil {
		if err = orderRepo.Update(ctx, aggregate); err != nil {
			return nil, err
		}

		entry, entryErr := order.NewStatusHistoryEntry(
			aggregate.ID(), &change.From, change.To, orderedBy, "materials ordered", change.At,
		)
		if entryErr != nil {
			return nil, entryErr
		}

		if err = orderRepo.AppendHistory(ctx, entry); err != nil {
			return nil, err
		}
	}

	snapshot := ordering.NewOrderSnapshot(aggregate.TrackingCode(), material.ExtractSignature(aggregate.Notes()))
	record, err := ordering.NewMaterialOrderAudit(aggregate.ID(), orderedBy, now, overridden, snapshot)
	if err != nil {
		return nil, err
	}

	if err = uow.MaterialOrderAuditRepository().Append(ctx, record); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	if change == nil {
		return nil, nil
	}

	return &ports.StatusChangedEvent{
		OrderID:      aggregate.ID(),
		TrackingCode: aggregate.TrackingCode(),
		From:         change.From,
		To:           change.To,
		ChangedBy:    orderedBy,
		At:           change.At,
	}, nil
}

// riskMessage renders the override prompt, naming the risk level and whether
// it came from an exact duplicate or a pattern match.
func riskMessage(check ordering.DuplicateOrderCheck) string {
	var cause string
	switch {
	case check.IsDuplicate:
		cause = "materials were already ordered for an order in this batch within the lookback window"
	case check.RiskLevel == ordering.RiskCritical:
		cause = "the ordering history could not be read"
	case check.RiskLevel == ordering.RiskHigh:
		cause = "a recent order carries a near-identical material pattern"
	default:
		cause = "a vendor's daily order volume cap is reached"
	}
	return fmt.Sprintf("override required: risk %s, %s", check.RiskLevel, cause)
}
