package commands_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"frameshop/internal/core/application/usecases/commands"
	"frameshop/internal/core/domain/model/kernel"
)

func TestNewCreateCustomerCommand(t *testing.T) {
	tests := map[string]struct {
		id      kernel.UUID
		name    string
		phone   string
		email   string
		wantErr error
	}{
		"valid with phone": {id: kernel.NewUUID(), name: "Ada", phone: "555-0101"},
		"valid with email": {id: kernel.NewUUID(), name: "Ada", email: "ada@example.com"},
		"missing name":     {id: kernel.NewUUID(), phone: "555-0101", wantErr: commands.ErrCustomerNameIsRequired},
		"missing contact":  {id: kernel.NewUUID(), name: "Ada", wantErr: commands.ErrCustomerContactIsRequired},
		"invalid id":       {id: kernel.UUID{}, name: "Ada", phone: "555-0101", wantErr: kernel.ErrUUIDIsNotConstructed},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			cmd, err := commands.NewCreateCustomerCommand(tc.id, tc.name, tc.phone, tc.email)

			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				return
			}

			require.NoError(t, err)
			assert.NoError(t, cmd.Validate())
			assert.Equal(t, tc.name, cmd.Name())
		})
	}
}

func TestCreateCustomerCommandNotConstructed(t *testing.T) {
	var cmd commands.CreateCustomerCommand
	assert.ErrorIs(t, cmd.Validate(), commands.ErrCreateCustomerCommandIsNotConstructed)
}
