package commands_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"frameshop/internal/core/application/usecases/commands"
	"frameshop/internal/core/domain/model/kernel"
	"frameshop/internal/core/domain/model/order"
	"frameshop/internal/pkg/errs"
)

func TestNewChangeOrderStatusCommand(t *testing.T) {
	cmd, err := commands.NewChangeOrderStatusCommand(kernel.NewUUID(), order.FrameCut, "framer", "frame cut today")
	require.NoError(t, err)
	assert.NoError(t, cmd.Validate())
	assert.Equal(t, order.FrameCut, cmd.NewStatus())
	assert.Equal(t, "framer", cmd.ChangedBy())
	assert.Equal(t, "frame cut today", cmd.Reason())
}

func TestNewChangeOrderStatusCommand_InvalidStatus(t *testing.T) {
	_, err := commands.NewChangeOrderStatusCommand(kernel.NewUUID(), order.Unknown, "framer", "")
	assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
}

func TestNewChangeOrderStatusCommand_InvalidOrderID(t *testing.T) {
	_, err := commands.NewChangeOrderStatusCommand(kernel.UUID{}, order.FrameCut, "framer", "")
	assert.Error(t, err)
}

func TestChangeOrderStatusCommandNotConstructed(t *testing.T) {
	var cmd commands.ChangeOrderStatusCommand
	assert.ErrorIs(t, cmd.Validate(), commands.ErrChangeOrderStatusCommandIsNotConstructed)
}
