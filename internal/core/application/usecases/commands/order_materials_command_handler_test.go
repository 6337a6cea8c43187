package commands_test

import (
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"frameshop/internal/core/application/usecases/commands"
	"frameshop/internal/core/domain/model/kernel"
	"frameshop/internal/core/domain/model/material"
	"frameshop/internal/core/domain/model/order"
	"frameshop/internal/core/domain/model/ordering"
	"frameshop/internal/core/domain/services"
	"frameshop/internal/pkg/errs"
)

const testOverrideCode = "let-me-through"

var testNow = time.Date(2026, 3, 10, 14, 0, 0, 0, time.UTC)

type orderMaterialsFixture struct {
	handler   commands.OrderMaterialsCommandHandler
	orderRepo *MockOrderRepository
	auditRepo *MockAuditRepository
	uow       *MockUoW
	notifier  *MockNotifier
}

func newOrderMaterialsFixture(t *testing.T) *orderMaterialsFixture {
	t.Helper()
	f := &orderMaterialsFixture{
		orderRepo: new(MockOrderRepository),
		auditRepo: new(MockAuditRepository),
		uow:       new(MockUoW),
		notifier:  new(MockNotifier),
	}

	f.uow.On("Begin", mock.Anything).Return(nil)
	f.uow.On("Commit", mock.Anything).Return(nil)
	f.uow.On("Rollback", mock.Anything).Return(nil)
	f.uow.On("OrderRepository").Return(f.orderRepo)
	f.uow.On("MaterialOrderAuditRepository").Return(f.auditRepo)

	factory := new(MockMaterialUoWFactory)
	factory.On("Create").Return(f.uow)

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	f.handler = commands.NewOrderMaterialsCommandHandler(
		factory,
		services.NewRiskAnalyzer(5),
		services.NewOverrideGate(testOverrideCode, logger),
		f.notifier,
		fixedClock{now: testNow},
		24*time.Hour,
	)
	return f
}

func materialsOrder(t *testing.T, notes string) *order.Order {
	t.Helper()
	aggregate, err := order.NewOrder(
		kernel.NewUUID(), "FRM-"+kernel.NewUUID().String()[:8], kernel.NewUUID(),
		"16x20 shadow box", notes, order.PriorityStandard, 25000, 10000,
		testNow.Add(-48*time.Hour),
	)
	require.NoError(t, err)
	return aggregate
}

func recentAuditFor(t *testing.T, aggregate *order.Order, orderedAt time.Time) ordering.MaterialOrderAudit {
	t.Helper()
	snapshot := ordering.NewOrderSnapshot(aggregate.TrackingCode(), material.ExtractSignature(aggregate.Notes()))
	record, err := ordering.NewMaterialOrderAudit(aggregate.ID(), "system", orderedAt, false, snapshot)
	require.NoError(t, err)
	return record
}

func TestOrderMaterialsHandler_LowRisk_OrdersWholeBatch(t *testing.T) {
	ctx := t.Context()
	f := newOrderMaterialsFixture(t)

	agg1 := materialsOrder(t, "R4567 museum glass")
	agg2 := materialsOrder(t, "L310045 C9800")

	f.orderRepo.On("Get", mock.Anything, agg1.ID()).Return(agg1, nil)
	f.orderRepo.On("Get", mock.Anything, agg2.ID()).Return(agg2, nil)
	f.auditRepo.On("ListSince", mock.Anything, testNow.Add(-24*time.Hour)).
		Return([]ordering.MaterialOrderAudit{}, nil).Once()
	f.orderRepo.On("Update", mock.Anything, mock.Anything).Return(nil).Times(2)
	f.orderRepo.On("AppendHistory", mock.Anything, mock.Anything).Return(nil).Times(2)

	var appended []ordering.MaterialOrderAudit
	f.auditRepo.On("Append", mock.Anything, mock.AnythingOfType("ordering.MaterialOrderAudit")).
		Run(func(args mock.Arguments) {
			appended = append(appended, args.Get(1).(ordering.MaterialOrderAudit))
		}).
		Return(nil).Times(2)

	cmd, err := commands.NewOrderMaterialsCommand(
		[]kernel.UUID{agg1.ID(), agg2.ID()}, "manager", "", "",
	)
	require.NoError(t, err)

	result, err := f.handler.Handle(ctx, cmd)
	require.NoError(t, err)

	assert.True(t, result.Success)
	assert.False(t, result.RequiresOverride)
	assert.Equal(t, 2, result.Succeeded)
	assert.Equal(t, 0, result.Failed)
	assert.Equal(t, ordering.RiskLow, result.Check.RiskLevel)
	assert.Equal(t, order.MaterialsOrdered, agg1.Status())
	assert.Equal(t, order.MaterialsOrdered, agg2.Status())

	require.Len(t, appended, 2)
	for _, record := range appended {
		assert.False(t, record.WasOverridden())
		assert.Equal(t, "manager", record.OrderedBy())
		assert.Equal(t, testNow, record.OrderedAt())
		assert.False(t, record.Snapshot().Signature().IsEmpty())
	}

	require.Len(t, f.notifier.Events, 2)
	assert.Equal(t, order.MaterialsOrdered, f.notifier.Events[0].To)
	f.auditRepo.AssertExpectations(t)
	f.orderRepo.AssertExpectations(t)
}

func TestOrderMaterialsHandler_DuplicateWithoutOverride_Blocks(t *testing.T) {
	ctx := t.Context()
	f := newOrderMaterialsFixture(t)

	agg := materialsOrder(t, "R4567")
	f.orderRepo.On("Get", mock.Anything, agg.ID()).Return(agg, nil)
	f.auditRepo.On("ListSince", mock.Anything, mock.Anything).
		Return([]ordering.MaterialOrderAudit{recentAuditFor(t, agg, testNow.Add(-time.Hour))}, nil).Once()

	cmd, err := commands.NewOrderMaterialsCommand([]kernel.UUID{agg.ID()}, "manager", "", "")
	require.NoError(t, err)

	result, err := f.handler.Handle(ctx, cmd)
	require.NoError(t, err)

	assert.False(t, result.Success)
	assert.True(t, result.RequiresOverride)
	assert.True(t, result.Check.IsDuplicate)
	assert.Equal(t, ordering.RiskCritical, result.Check.RiskLevel)
	assert.Contains(t, result.Message, "CRITICAL")
	assert.Equal(t, order.OrderProcessed, agg.Status())
	f.auditRepo.AssertNotCalled(t, "Append", mock.Anything, mock.Anything)
	f.orderRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	f.uow.AssertNotCalled(t, "Commit", mock.Anything)
	assert.Empty(t, f.notifier.Events)
}

func TestOrderMaterialsHandler_WrongOverrideCode_Denies(t *testing.T) {
	ctx := t.Context()
	f := newOrderMaterialsFixture(t)

	agg := materialsOrder(t, "R4567")
	f.orderRepo.On("Get", mock.Anything, agg.ID()).Return(agg, nil)
	f.auditRepo.On("ListSince", mock.Anything, mock.Anything).
		Return([]ordering.MaterialOrderAudit{recentAuditFor(t, agg, testNow.Add(-2*time.Hour))}, nil).Once()

	cmd, err := commands.NewOrderMaterialsCommand(
		[]kernel.UUID{agg.ID()}, "manager", "not-the-code", "customer swears it is urgent",
	)
	require.NoError(t, err)

	result, err := f.handler.Handle(ctx, cmd)
	require.NoError(t, err)

	assert.False(t, result.Success)
	assert.True(t, result.RequiresOverride)
	assert.Contains(t, result.Message, "denied")
	f.auditRepo.AssertNotCalled(t, "Append", mock.Anything, mock.Anything)
	f.orderRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestOrderMaterialsHandler_ValidOverride_Proceeds(t *testing.T) {
	ctx := t.Context()
	f := newOrderMaterialsFixture(t)

	agg := materialsOrder(t, "R4567")
	f.orderRepo.On("Get", mock.Anything, agg.ID()).Return(agg, nil)
	f.auditRepo.On("ListSince", mock.Anything, mock.Anything).
		Return([]ordering.MaterialOrderAudit{recentAuditFor(t, agg, testNow.Add(-time.Hour))}, nil).Once()
	f.orderRepo.On("Update", mock.Anything, mock.Anything).Return(nil).Once()
	f.orderRepo.On("AppendHistory", mock.Anything, mock.Anything).Return(nil).Once()

	var appended []ordering.MaterialOrderAudit
	f.auditRepo.On("Append", mock.Anything, mock.AnythingOfType("ordering.MaterialOrderAudit")).
		Run(func(args mock.Arguments) {
			appended = append(appended, args.Get(1).(ordering.MaterialOrderAudit))
		}).
		Return(nil).Once()

	cmd, err := commands.NewOrderMaterialsCommand(
		[]kernel.UUID{agg.ID()}, "manager", testOverrideCode, "customer approved re-order",
	)
	require.NoError(t, err)

	result, err := f.handler.Handle(ctx, cmd)
	require.NoError(t, err)

	assert.True(t, result.Success)
	assert.True(t, result.Overridden)
	assert.Equal(t, 1, result.Succeeded)
	assert.Contains(t, result.Message, "override used")
	assert.Equal(t, order.MaterialsOrdered, agg.Status())
	require.Len(t, appended, 1)
	assert.True(t, appended[0].WasOverridden())
}

func TestOrderMaterialsHandler_HistoryReadFailure_FailsSafe(t *testing.T) {
	ctx := t.Context()
	f := newOrderMaterialsFixture(t)

	agg := materialsOrder(t, "R4567")
	f.orderRepo.On("Get", mock.Anything, agg.ID()).Return(agg, nil)
	f.auditRepo.On("ListSince", mock.Anything, mock.Anything).
		Return(nil, errors.New("connection reset")).Once()

	cmd, err := commands.NewOrderMaterialsCommand([]kernel.UUID{agg.ID()}, "manager", "", "")
	require.NoError(t, err)

	result, err := f.handler.Handle(ctx, cmd)
	require.NoError(t, err)

	assert.False(t, result.Success)
	assert.True(t, result.RequiresOverride)
	assert.Equal(t, ordering.FailSafeCheck(), result.Check)
	f.auditRepo.AssertNotCalled(t, "Append", mock.Anything, mock.Anything)
}

func TestOrderMaterialsHandler_OrderReadFailure_FailsSafe(t *testing.T) {
	ctx := t.Context()
	f := newOrderMaterialsFixture(t)

	unreadable := kernel.NewUUID()
	f.orderRepo.On("Get", mock.Anything, unreadable).
		Return(nil, errors.New("connection reset"))

	cmd, err := commands.NewOrderMaterialsCommand([]kernel.UUID{unreadable}, "manager", "", "")
	require.NoError(t, err)

	result, err := f.handler.Handle(ctx, cmd)
	require.NoError(t, err)

	assert.False(t, result.Success)
	assert.True(t, result.RequiresOverride)
	assert.Equal(t, ordering.FailSafeCheck(), result.Check)
	f.orderRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	f.auditRepo.AssertNotCalled(t, "Append", mock.Anything, mock.Anything)
}

func TestOrderMaterialsHandler_MissingOrder_FailsItemNotBatch(t *testing.T) {
	ctx := t.Context()
	f := newOrderMaterialsFixture(t)

	agg := materialsOrder(t, "R4567 museum glass")
	missing := kernel.NewUUID()
	notFound := errs.NewObjectNotFoundError("order", missing)

	f.orderRepo.On("Get", mock.Anything, agg.ID()).Return(agg, nil)
	f.orderRepo.On("Get", mock.Anything, missing).Return(nil, notFound)
	f.auditRepo.On("ListSince", mock.Anything, mock.Anything).
		Return([]ordering.MaterialOrderAudit{}, nil).Once()
	f.orderRepo.On("Update", mock.Anything, agg).Return(nil).Once()
	f.orderRepo.On("AppendHistory", mock.Anything, mock.Anything).Return(nil).Once()
	f.auditRepo.On("Append", mock.Anything, mock.Anything).Return(nil).Once()

	cmd, err := commands.NewOrderMaterialsCommand(
		[]kernel.UUID{agg.ID(), missing}, "manager", "", "",
	)
	require.NoError(t, err)

	result, err := f.handler.Handle(ctx, cmd)
	require.NoError(t, err)

	assert.True(t, result.Success)
	assert.False(t, result.RequiresOverride)
	assert.Equal(t, ordering.RiskLow, result.Check.RiskLevel)
	assert.Equal(t, 1, result.Succeeded)
	assert.Equal(t, 1, result.Failed)
	assert.Contains(t, result.Message, "1 of 2")
	assert.Contains(t, result.Message, "1 failed")
	require.Len(t, result.Items, 2)
	assert.True(t, result.Items[0].Success)
	assert.False(t, result.Items[1].Success)
	assert.Equal(t, notFound.Error(), result.Items[1].Message)
	assert.Len(t, f.notifier.Events, 1)
	f.orderRepo.AssertExpectations(t)
	f.auditRepo.AssertExpectations(t)
}

func TestOrderMaterialsHandler_PartialFailure_DoesNotAbortBatch(t *testing.T) {
	ctx := t.Context()
	f := newOrderMaterialsFixture(t)

	agg1 := materialsOrder(t, "R4567")
	agg2 := materialsOrder(t, "L310045")
	_, err := agg2.ChangeStatus(order.MaterialsOrdered, testNow.Add(-time.Minute))
	require.NoError(t, err)

	f.orderRepo.On("Get", mock.Anything, agg1.ID()).Return(agg1, nil)
	f.orderRepo.On("Get", mock.Anything, agg2.ID()).Return(agg2, nil)
	f.auditRepo.On("ListSince", mock.Anything, mock.Anything).
		Return([]ordering.MaterialOrderAudit{}, nil).Once()
	f.orderRepo.On("Update", mock.Anything, agg1).Return(nil).Once()
	f.orderRepo.On("AppendHistory", mock.Anything, mock.Anything).Return(nil).Once()
	f.auditRepo.On("Append", mock.Anything, mock.Anything).Return(nil).Once()

	cmd, err := commands.NewOrderMaterialsCommand(
		[]kernel.UUID{agg1.ID(), agg2.ID()}, "manager", "", "",
	)
	require.NoError(t, err)

	result, err := f.handler.Handle(ctx, cmd)
	require.NoError(t, err)

	assert.True(t, result.Success)
	assert.Equal(t, 1, result.Succeeded)
	assert.Equal(t, 1, result.Failed)
	assert.Contains(t, result.Message, "1 of 2")
	assert.Contains(t, result.Message, "1 failed")
	require.Len(t, result.Items, 2)
	assert.True(t, result.Items[0].Success)
	assert.False(t, result.Items[1].Success)
	assert.Equal(t, commands.ErrMaterialsAlreadyOrdered.Error(), result.Items[1].Message)
	assert.Len(t, f.notifier.Events, 1)
}

func TestNewOrderMaterialsCommand_Validation(t *testing.T) {
	_, err := commands.NewOrderMaterialsCommand(nil, "manager", "", "")
	assert.ErrorIs(t, err, commands.ErrOrderIDsAreRequired)

	_, err = commands.NewOrderMaterialsCommand([]kernel.UUID{kernel.NewUUID()}, "", "", "")
	assert.ErrorIs(t, err, commands.ErrOrderedByIsRequired)

	_, err = commands.NewOrderMaterialsCommand([]kernel.UUID{{}}, "manager", "", "")
	assert.Error(t, err)

	_, err = commands.NewOrderMaterialsCommand([]kernel.UUID{kernel.NewUUID()}, "manager", "let-me-through", "")
	assert.ErrorIs(t, err, commands.ErrOverrideReasonIsRequired)
}

func TestOrderMaterialsHandler_ValidationError(t *testing.T) {
	f := newOrderMaterialsFixture(t)
	_, err := f.handler.Handle(t.Context(), commands.OrderMaterialsCommand{})
	require.Error(t, err)
}
