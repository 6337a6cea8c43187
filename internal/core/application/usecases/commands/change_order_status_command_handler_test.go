package commands_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"frameshop/internal/core/application/usecases/commands"
	"frameshop/internal/core/domain/model/kernel"
	"frameshop/internal/core/domain/model/order"
)

func newTestOrder(t *testing.T) *order.Order {
	t.Helper()
	aggregate, err := order.NewOrder(
		kernel.NewUUID(), "FRM-TEST0001", kernel.NewUUID(), "16x20 shadow box",
		"R4567 museum glass", order.PriorityStandard, 25000, 10000,
		time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC),
	)
	require.NoError(t, err)
	return aggregate
}

func TestChangeOrderStatusCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	now := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)
	aggregate := newTestOrder(t)
	cmd, err := commands.NewChangeOrderStatusCommand(aggregate.ID(), order.FrameCut, "framer", "cut complete")
	require.NoError(t, err)

	repo := new(MockOrderRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("Get", mock.Anything, aggregate.ID()).Return(aggregate, nil).Once(),
		repo.On("Update", mock.Anything, aggregate).Return(nil).Once(),
		repo.On("AppendHistory", mock.Anything, mock.AnythingOfType("order.StatusHistoryEntry")).
			Run(func(args mock.Arguments) {
				entry := args.Get(1).(order.StatusHistoryEntry)
				require.NotNil(t, entry.From())
				assert.Equal(t, order.OrderProcessed, *entry.From())
				assert.Equal(t, order.FrameCut, entry.To())
				assert.Equal(t, "framer", entry.ChangedBy())
				assert.Equal(t, "cut complete", entry.Reason())
			}).
			Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	notifier := new(MockNotifier)
	h := commands.NewChangeOrderStatusCommandHandler(factory, notifier, fixedClock{now: now})
	require.NoError(t, h.Handle(ctx, cmd))

	assert.Equal(t, order.FrameCut, aggregate.Status())
	assert.Equal(t, now, aggregate.StatusChangedAt())
	require.Len(t, notifier.Events, 1)
	assert.Equal(t, order.OrderProcessed, notifier.Events[0].From)
	assert.Equal(t, order.FrameCut, notifier.Events[0].To)
	assert.Equal(t, "FRM-TEST0001", notifier.Events[0].TrackingCode)
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestChangeOrderStatusCommandHandler_Handle_SameStatusIsNoOp(t *testing.T) {
	ctx := t.Context()
	aggregate := newTestOrder(t)
	cmd, err := commands.NewChangeOrderStatusCommand(aggregate.ID(), order.OrderProcessed, "framer", "")
	require.NoError(t, err)

	repo := new(MockOrderRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("Get", mock.Anything, aggregate.ID()).Return(aggregate, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	notifier := new(MockNotifier)
	h := commands.NewChangeOrderStatusCommandHandler(factory, notifier, fixedClock{now: time.Now()})
	require.NoError(t, h.Handle(ctx, cmd))

	assert.Empty(t, notifier.Events)
	repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	repo.AssertNotCalled(t, "AppendHistory", mock.Anything, mock.Anything)
	uow.AssertNotCalled(t, "Commit", mock.Anything)
}

func TestChangeOrderStatusCommandHandler_Handle_BackwardsTransition(t *testing.T) {
	ctx := t.Context()
	now := time.Date(2026, 3, 12, 9, 0, 0, 0, time.UTC)
	aggregate := newTestOrder(t)
	_, err := aggregate.ChangeStatus(order.ReadyForPickup, now.Add(-time.Hour))
	require.NoError(t, err)

	cmd, err := commands.NewChangeOrderStatusCommand(aggregate.ID(), order.MatCut, "manager", "mat damaged, redo")
	require.NoError(t, err)

	repo := new(MockOrderRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("Get", mock.Anything, aggregate.ID()).Return(aggregate, nil).Once(),
		repo.On("Update", mock.Anything, aggregate).Return(nil).Once(),
		repo.On("AppendHistory", mock.Anything, mock.Anything).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	notifier := new(MockNotifier)
	h := commands.NewChangeOrderStatusCommandHandler(factory, notifier, fixedClock{now: now})
	require.NoError(t, h.Handle(ctx, cmd))

	assert.Equal(t, order.MatCut, aggregate.Status())
}
