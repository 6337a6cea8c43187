package orderrepo_test

import (
	"context"
	"testing"
	"time"

	"frameshop/internal/adapters/out/postgres/orderrepo"
	"frameshop/internal/core/domain/model/kernel"
	"frameshop/internal/core/domain/model/order"
	"frameshop/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// MockAggregateTracker is a mock implementation of aggregateTracker interface.
type MockAggregateTracker struct {
	mock.Mock
}

func (m *MockAggregateTracker) TrackAggregate(id kernel.UUID, aggregate interface{}) {
	m.Called(id, aggregate)
}

// OrderRepositoryIntegrationTestSuite provides integration tests for the
// order repository using PostgreSQL containers to verify persistence behavior.
type OrderRepositoryIntegrationTestSuite struct {
	suite.Suite
	container  *postgres.PostgresContainer
	db         *gorm.DB
	repository *orderrepo.GormOrderRepository
	tracker    *MockAggregateTracker
}

func (suite *OrderRepositoryIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	suite.Require().NoError(err)
	suite.container = container

	connStr, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(postgresdriver.Open(connStr), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	suite.Require().NoError(db.AutoMigrate(&orderrepo.OrderDTO{}, &orderrepo.StatusHistoryDTO{}))
}

func (suite *OrderRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE orders, status_history").Error)

	suite.tracker = new(MockAggregateTracker)
	suite.repository = orderrepo.NewGormOrderRepository(suite.db, suite.tracker)
}

func (suite *OrderRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *OrderRepositoryIntegrationTestSuite) TestAdd_ValidOrder_Success() {
	ctx := context.Background()

	testOrder := suite.createTestOrder()
	suite.tracker.On("TrackAggregate", testOrder.ID(), testOrder).Once()

	err := suite.repository.Add(ctx, testOrder)
	suite.Require().NoError(err)

	suite.assertOrderCount(1)
	suite.tracker.AssertExpectations(suite.T())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGet_ExistingOrder_ReturnsOrder() {
	ctx := context.Background()

	original := suite.createTestOrder()
	suite.tracker.On("TrackAggregate", original.ID(), original).Once()
	suite.Require().NoError(suite.repository.Add(ctx, original))

	retrieved, err := suite.repository.Get(ctx, original.ID())
	suite.Require().NoError(err)

	suite.Equal(original.ID(), retrieved.ID())
	suite.Equal(original.TrackingCode(), retrieved.TrackingCode())
	suite.Equal(original.CustomerID(), retrieved.CustomerID())
	suite.Equal(original.Description(), retrieved.Description())
	suite.Equal(original.Priority(), retrieved.Priority())
	suite.Equal(order.OrderProcessed, retrieved.Status())
	suite.Equal(original.TotalCents(), retrieved.TotalCents())
	suite.Equal(original.DepositCents(), retrieved.DepositCents())

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGet_NonExistentOrder_ReturnsNotFoundError() {
	ctx := context.Background()

	retrieved, err := suite.repository.Get(ctx, kernel.NewUUID())

	suite.Nil(retrieved)
	suite.Require().Error(err)

	var notFoundErr *errs.ObjectNotFoundError
	suite.Require().ErrorAs(err, &notFoundErr)

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestUpdate_StatusTransitionPersists() {
	ctx := context.Background()

	testOrder := suite.createTestOrder()
	suite.tracker.On("TrackAggregate", testOrder.ID(), testOrder).Twice()
	suite.Require().NoError(suite.repository.Add(ctx, testOrder))

	change, err := testOrder.ChangeStatus(order.MaterialsOrdered, time.Now().UTC())
	suite.Require().NoError(err)
	suite.Require().NotNil(change)

	suite.Require().NoError(suite.repository.Update(ctx, testOrder))

	retrieved, err := suite.repository.Get(ctx, testOrder.ID())
	suite.Require().NoError(err)
	suite.Equal(order.MaterialsOrdered, retrieved.Status())

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestUpdate_NonExistentOrder_ReturnsError() {
	ctx := context.Background()

	missing := suite.createTestOrder()
	err := suite.repository.Update(ctx, missing)

	suite.Require().Error(err)

	var notFoundErr *errs.ObjectNotFoundError
	suite.Require().ErrorAs(err, &notFoundErr)

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGetAllInStatus_FiltersByStatus() {
	ctx := context.Background()

	suite.tracker.On("TrackAggregate", mock.AnythingOfType("kernel.UUID"), mock.Anything).Times(3)

	processed := suite.createTestOrder()
	suite.Require().NoError(suite.repository.Add(ctx, processed))

	ready1 := suite.createTestOrderWithStatus(order.ReadyForPickup, time.Now().UTC())
	suite.Require().NoError(suite.repository.Add(ctx, ready1))

	ready2 := suite.createTestOrderWithStatus(order.ReadyForPickup, time.Now().UTC())
	suite.Require().NoError(suite.repository.Add(ctx, ready2))

	readyOrders, err := suite.repository.GetAllInStatus(ctx, order.ReadyForPickup)
	suite.Require().NoError(err)
	suite.Len(readyOrders, 2)
	for _, o := range readyOrders {
		suite.Equal(order.ReadyForPickup, o.Status())
	}

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGetInStatusChangedBefore_ReturnsOnlyStaleOrders() {
	ctx := context.Background()
	now := time.Now().UTC()

	suite.tracker.On("TrackAggregate", mock.AnythingOfType("kernel.UUID"), mock.Anything).Times(3)

	stale := suite.createTestOrderWithStatus(order.ReadyForPickup, now.Add(-40*24*time.Hour))
	suite.Require().NoError(suite.repository.Add(ctx, stale))

	fresh := suite.createTestOrderWithStatus(order.ReadyForPickup, now.Add(-time.Hour))
	suite.Require().NoError(suite.repository.Add(ctx, fresh))

	completed := suite.createTestOrderWithStatus(order.Completed, now.Add(-40*24*time.Hour))
	suite.Require().NoError(suite.repository.Add(ctx, completed))

	cutoff := now.Add(-30 * 24 * time.Hour)
	staleOrders, err := suite.repository.GetInStatusChangedBefore(ctx, order.ReadyForPickup, cutoff)
	suite.Require().NoError(err)

	suite.Require().Len(staleOrders, 1)
	suite.Equal(stale.ID(), staleOrders[0].ID())

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestHistory_AppendAndListOldestFirst() {
	ctx := context.Background()

	testOrder := suite.createTestOrder()
	suite.tracker.On("TrackAggregate", testOrder.ID(), testOrder).Once()
	suite.Require().NoError(suite.repository.Add(ctx, testOrder))

	base := time.Now().UTC().Truncate(time.Microsecond)

	creation, err := order.NewStatusHistoryEntry(
		testOrder.ID(), nil, order.OrderProcessed, "maria", "order taken in", base)
	suite.Require().NoError(err)

	from := order.OrderProcessed
	transition, err := order.NewStatusHistoryEntry(
		testOrder.ID(), &from, order.MaterialsOrdered, "maria", "materials ordered", base.Add(time.Minute))
	suite.Require().NoError(err)

	// Append out of chronological order to prove ListHistory sorts by time.
	suite.Require().NoError(suite.repository.AppendHistory(ctx, transition))
	suite.Require().NoError(suite.repository.AppendHistory(ctx, creation))

	entries, err := suite.repository.ListHistory(ctx, testOrder.ID())
	suite.Require().NoError(err)
	suite.Require().Len(entries, 2)

	suite.Nil(entries[0].From())
	suite.Equal(order.OrderProcessed, entries[0].To())
	suite.Equal("order taken in", entries[0].Reason())

	suite.Require().NotNil(entries[1].From())
	suite.Equal(order.OrderProcessed, *entries[1].From())
	suite.Equal(order.MaterialsOrdered, entries[1].To())
	suite.Equal("maria", entries[1].ChangedBy())

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestListHistory_UnknownOrder_ReturnsEmpty() {
	ctx := context.Background()

	entries, err := suite.repository.ListHistory(ctx, kernel.NewUUID())
	suite.Require().NoError(err)
	suite.Empty(entries)

	suite.tracker.AssertExpectations(suite.T())
}

// createTestOrder creates a basic order fresh from intake.
func (suite *OrderRepositoryIntegrationTestSuite) createTestOrder() *order.Order {
	testOrder, err := order.NewOrder(
		kernel.NewUUID(),
		"FRM-"+kernel.NewUUID().String()[:8],
		kernel.NewUUID(),
		"16x20 watercolor, oak frame",
		"Frame R123, mat C9902, Museum Glass",
		order.PriorityStandard,
		18500,
		5000,
		time.Now().UTC(),
	)
	suite.Require().NoError(err)
	return testOrder
}

// createTestOrderWithStatus restores an order in the given status with the
// given status-change timestamp.
func (suite *OrderRepositoryIntegrationTestSuite) createTestOrderWithStatus(
	status order.Status, statusChangedAt time.Time,
) *order.Order {
	testOrder, err := order.RestoreOrder(
		kernel.NewUUID(),
		"FRM-"+kernel.NewUUID().String()[:8],
		kernel.NewUUID(),
		"8x10 photo, black metal frame",
		"",
		order.PriorityStandard,
		4500,
		0,
		status,
		statusChangedAt.Add(-time.Hour),
		statusChangedAt,
	)
	suite.Require().NoError(err)
	return testOrder
}

// assertOrderCount verifies the number of orders in the database.
func (suite *OrderRepositoryIntegrationTestSuite) assertOrderCount(expected int) {
	var count int64
	err := suite.db.Model(&orderrepo.OrderDTO{}).Count(&count).Error
	suite.Require().NoError(err)
	suite.Equal(int64(expected), count)
}

func TestOrderRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(OrderRepositoryIntegrationTestSuite))
}
