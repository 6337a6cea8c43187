package commands

import (
	"errors"

	"frameshop/internal/pkg/guard"
)

var ErrSweepUnclaimedOrdersCommandIsNotConstructed = errors.New(
	"SweepUnclaimedOrdersCommand must be created via NewSweepUnclaimedOrdersCommand constructor",
)

// SweepUnclaimedOrdersCommand represents a request to move stale
// READY_FOR_PICKUP orders to MYSTERY_UNCLAIMED. The command carries no
// parameters; the staleness cutoff is handler configuration.
type SweepUnclaimedOrdersCommand struct {
	guard guard.ConstructorGuard
}

// NewSweepUnclaimedOrdersCommand creates a command to sweep unclaimed orders.
func NewSweepUnclaimedOrdersCommand() SweepUnclaimedOrdersCommand {
	return SweepUnclaimedOrdersCommand{
		guard: guard.NewConstructorGuard(),
	}
}

// Validate ensures the command was created through the constructor.
func (c SweepUnclaimedOrdersCommand) Validate() error {
	return c.guard.Validate(ErrSweepUnclaimedOrdersCommandIsNotConstructed)
}
