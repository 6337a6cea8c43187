package queries_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"frameshop/internal/core/application/usecases/queries"
	"frameshop/internal/core/domain/model/order"
)

func TestNewGetOrdersByStatusQuery_Valid(t *testing.T) {
	q, err := queries.NewGetOrdersByStatusQuery(order.ReadyForPickup)
	require.NoError(t, err)
	assert.NoError(t, q.Validate())
	assert.Equal(t, order.ReadyForPickup, q.Status())
}

func TestNewGetOrdersByStatusQuery_InvalidStatus(t *testing.T) {
	_, err := queries.NewGetOrdersByStatusQuery(order.Unknown)
	assert.Error(t, err)
}

func TestGetOrdersByStatusQuery_NotConstructedViaConstructor(t *testing.T) {
	var q queries.GetOrdersByStatusQuery
	assert.ErrorIs(t, q.Validate(), queries.ErrGetOrdersByStatusQueryIsNotConstructed)
}
