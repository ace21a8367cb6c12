package shared

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDomainError_Is(t *testing.T) {
	t.Run("matches sentinel by code", func(t *testing.T) {
		err := NewDomainError("NOT_FOUND", "Product not found")
		assert.True(t, errors.Is(err, ErrNotFound))
		assert.Equal(t, "Product not found", err.Error())
	})

	t.Run("matches through wrapping", func(t *testing.T) {
		err := fmt.Errorf("delete product: %w", ErrNotFound)
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("different codes do not match", func(t *testing.T) {
		assert.False(t, errors.Is(ErrInvalidInput, ErrNotFound))
	})
}

func TestNewBaseDomainEvent(t *testing.T) {
	evt := NewBaseDomainEvent("OrderPlaced", "Order", "ORD-abc")

	assert.NotEmpty(t, evt.EventID())
	assert.Equal(t, "OrderPlaced", evt.EventType())
	assert.Equal(t, "Order", evt.AggregateType())
	assert.Equal(t, "ORD-abc", evt.AggregateID())
	assert.False(t, evt.OccurredAt().IsZero())
}

func TestNewOrderID(t *testing.T) {
	id := NewOrderID()

	assert.Len(t, id, len(OrderIDPrefix)+OrderIDLength)
	assert.Equal(t, OrderIDPrefix, id[:len(OrderIDPrefix)])
	assert.NotEqual(t, id, NewOrderID())
}

func TestNewIDGenerator(t *testing.T) {
	gen, err := NewIDGenerator(12)
	assert.NoError(t, err)
	assert.Len(t, gen(), 12)

	_, err = NewIDGenerator(0)
	assert.Error(t, err)
}
