package cmd

import (
	"log/slog"

	"gorm.io/gorm"

	"frameshop/internal/adapters/out/notify"
	"frameshop/internal/adapters/out/postgres"
	"frameshop/internal/core/application/usecases/commands"
	"frameshop/internal/core/application/usecases/queries"
	"frameshop/internal/core/domain/services"
	"frameshop/internal/core/ports"
)

// CompositionRoot wires adapters, domain services, and use case handlers.
type CompositionRoot struct {
	config     Config
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
	notifier   *notify.QueueNotifier
	clock      ports.Clock
	logger     *slog.Logger
}

// NewCompositionRoot builds the object graph for the given configuration.
func NewCompositionRoot(config Config, gormDB *gorm.DB, logger *slog.Logger) CompositionRoot {
	return CompositionRoot{
		config:     config,
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
		notifier:   notify.NewQueueNotifier(logger, config.NotifyQueueCapacity),
		clock:      systemClock{},
		logger:     logger,
	}
}

// Notifier returns the shared status notification dispatcher.
func (c *CompositionRoot) Notifier() *notify.QueueNotifier {
	return c.notifier
}

func (c *CompositionRoot) CreateCreateCustomerCommandHandler() commands.CreateCustomerCommandHandler {
	var f commands.CustomerUoWFactory = FuncCustomerUoWFactory(func() commands.CustomerUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateCustomerCommandHandler(f)
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	var f commands.IntakeUoWFactory = FuncIntakeUoWFactory(func() commands.IntakeUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateOrderCommandHandler(f, c.clock)
}

func (c *CompositionRoot) CreateChangeOrderStatusCommandHandler() commands.ChangeOrderStatusCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewChangeOrderStatusCommandHandler(f, c.notifier, c.clock)
}

func (c *CompositionRoot) CreateOrderMaterialsCommandHandler() commands.OrderMaterialsCommandHandler {
	var f commands.MaterialUoWFactory = FuncMaterialUoWFactory(func() commands.MaterialUoW {
		return c.uowFactory.Create()
	})
	return commands.NewOrderMaterialsCommandHandler(
		f,
		services.NewRiskAnalyzer(c.config.MaxDailyVendorOrders),
		services.NewOverrideGate(c.config.OverrideCode, c.logger),
		c.notifier,
		c.clock,
		c.config.DuplicateWindow,
	)
}

func (c *CompositionRoot) CreateSweepUnclaimedOrdersCommandHandler() commands.SweepUnclaimedOrdersCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewSweepUnclaimedOrdersCommandHandler(f, c.notifier, c.clock, c.config.UnclaimedAfter)
}

func (c *CompositionRoot) CreateGetOrderHistoryQueryHandler() queries.GetOrderHistoryQueryHandler {
	return queries.NewGetOrderHistoryQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetOrdersByStatusQueryHandler() queries.GetOrdersByStatusQueryHandler {
	return queries.NewGetOrdersByStatusQueryHandler(c.gormDB)
}

type FuncCustomerUoWFactory func() commands.CustomerUoW

func (f FuncCustomerUoWFactory) Create() commands.CustomerUoW {
	return f()
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncIntakeUoWFactory func() commands.IntakeUoW

func (f FuncIntakeUoWFactory) Create() commands.IntakeUoW {
	return f()
}

type FuncMaterialUoWFactory func() commands.MaterialUoW

func (f FuncMaterialUoWFactory) Create() commands.MaterialUoW {
	return f()
}
