// Package notify implements the status notification dispatcher. Events are
// queued on a bounded channel and handed to a single background worker, so a
// slow or failing downstream can never stall or fail a status transition:
// when the queue is full the event is logged and dropped.
package notify

import (
	"log/slog"
	"sync"

	"frameshop/internal/core/ports"
)

// DefaultQueueCapacity bounds the dispatch queue when no capacity is configured.
const DefaultQueueCapacity = 256

// QueueNotifier is a best-effort StatusNotifier backed by a bounded channel.
type QueueNotifier struct {
	logger *slog.Logger
	queue  chan ports.StatusChangedEvent

	startOnce sync.Once
	stopOnce  sync.Once
	done      chan struct{}
}

// NewQueueNotifier creates a notifier with the given queue capacity.
// A non-positive capacity falls back to DefaultQueueCapacity.
func NewQueueNotifier(logger *slog.Logger, capacity int) *QueueNotifier {
	if capacity <= 0 {
		capacity = DefaultQueueCapacity
	}
	return &QueueNotifier{
		logger: logger.With(slog.String("component", "status_notifier")),
		queue:  make(chan ports.StatusChangedEvent, capacity),
		done:   make(chan struct{}),
	}
}

// Start launches the dispatch worker. Safe to call once.
func (n *QueueNotifier) Start() {
	n.startOnce.Do(func() {
		go n.run()
	})
}

// Stop drains the queue and waits for the worker to finish. Safe to call
// even when Start never ran: the worker slot is claimed so nothing is left
// to wait for.
func (n *QueueNotifier) Stop() {
	n.stopOnce.Do(func() {
		n.startOnce.Do(func() {
			close(n.done)
		})
		close(n.queue)
	})
	<-n.done
}

// Notify enqueues one event. Never blocks: a full queue drops the event with
// a warning instead of backpressuring the caller.
func (n *QueueNotifier) Notify(event ports.StatusChangedEvent) {
	select {
	case n.queue <- event:
	default:
		n.logger.Warn("notification queue full, event dropped",
			slog.String("tracking_code", event.TrackingCode),
			slog.String("to", event.To.String()))
	}
}

// run dispatches queued events until the queue is closed. Actual delivery
// channels (SMS, email) hang off this log line; wiring providers in is a
// deployment concern, not the workflow's.
func (n *QueueNotifier) run() {
	defer close(n.done)
	for event := range n.queue {
		n.logger.Info("status update dispatched",
			slog.String("order_id", event.OrderID.String()),
			slog.String("tracking_code", event.TrackingCode),
			slog.String("from", event.From.String()),
			slog.String("to", event.To.String()),
			slog.String("changed_by", event.ChangedBy))
	}
}
