// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: validation, transaction management, and persistence.
package commands

import (
	"context"

	"frameshop/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
// These abstractions ensure data consistency across aggregate boundaries.
type (
	// TxManager handles database transaction lifecycle.
	// Ensures atomic operations across multiple repository calls.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// OrderRepoFactory provides access to the order repository within a transaction.
	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	// CustomerRepoFactory provides access to the customer repository within a transaction.
	CustomerRepoFactory interface {
		CustomerRepository() ports.CustomerRepository
	}

	// AuditRepoFactory provides access to the material ordering history within a transaction.
	AuditRepoFactory interface {
		MaterialOrderAuditRepository() ports.MaterialOrderAuditRepository
	}

	// OrderUoW manages transactions for order-only operations.
	// Used when commands only modify order aggregates and their history.
	OrderUoW interface {
		TxManager
		OrderRepoFactory
	}

	// OrderUoWFactory creates new order unit of work instances.
	OrderUoWFactory interface {
		Create() OrderUoW
	}

	// CustomerUoW manages transactions for customer-only operations.
	CustomerUoW interface {
		TxManager
		CustomerRepoFactory
	}

	// CustomerUoWFactory creates new customer unit of work instances.
	CustomerUoWFactory interface {
		Create() CustomerUoW
	}

	// IntakeUoW manages transactions for order intake, which reads the
	// customer while writing the order and its creation history entry.
	IntakeUoW interface {
		TxManager
		OrderRepoFactory
		CustomerRepoFactory
	}

	// IntakeUoWFactory creates new intake unit of work instances.
	IntakeUoWFactory interface {
		Create() IntakeUoW
	}

	// MaterialUoW manages transactions for material ordering, which reads
	// and writes orders, their history, and the ordering audit trail.
	MaterialUoW interface {
		TxManager
		OrderRepoFactory
		AuditRepoFactory
	}

	// MaterialUoWFactory creates new material ordering unit of work instances.
	MaterialUoWFactory interface {
		Create() MaterialUoW
	}
)
