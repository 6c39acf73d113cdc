package order_test

import (
	"testing"

	"shipment/internal/core/domain/model/kernel"
	"shipment/internal/core/domain/model/order"
	"shipment/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createValidItem(t *testing.T, customer string, quantity, oneItemVolume int) *order.OrderItem {
	t.Helper()
	item, err := order.NewOrderItem(kernel.NewUUID(), customer, "chair", quantity, oneItemVolume)
	require.NoError(t, err)
	require.NotNil(t, item)
	return item
}

func TestNewOrderItem(t *testing.T) {
	validID := kernel.NewUUID()

	t.Run("should create item with valid parameters", func(t *testing.T) {
		item, err := order.NewOrderItem(validID, "alice", "chair", 2, 3)

		require.NoError(t, err)
		assert.NotNil(t, item)
		assert.True(t, item.ID().IsEqual(validID))
		assert.Equal(t, "alice", item.Customer())
		assert.Equal(t, "chair", item.Name())
		assert.Equal(t, 2, item.Quantity())
		assert.Equal(t, 3, item.OneItemVolume())
		require.NoError(t, item.Validate())
	})

	t.Run("should return error for invalid UUID", func(t *testing.T) {
		var invalidID kernel.UUID

		item, err := order.NewOrderItem(invalidID, "alice", "chair", 2, 3)

		require.Error(t, err)
		assert.Nil(t, item)
		assert.Contains(t, err.Error(), kernel.ErrUUIDIsNotConstructed.Error())
	})

	t.Run("should return error for empty customer", func(t *testing.T) {
		item, err := order.NewOrderItem(validID, "", "chair", 2, 3)

		require.Error(t, err)
		assert.Nil(t, item)
		assert.Contains(t, err.Error(), "customer is required")
	})

	t.Run("should return error for empty product name", func(t *testing.T) {
		item, err := order.NewOrderItem(validID, "alice", "", 2, 3)

		require.Error(t, err)
		assert.Nil(t, item)
		assert.Contains(t, err.Error(), "name is required")
	})

	t.Run("should return error for non-positive quantity", func(t *testing.T) {
		for _, quantity := range []int{0, -1, -100} {
			item, err := order.NewOrderItem(validID, "alice", "chair", quantity, 3)

			require.Error(t, err)
			assert.Nil(t, item)
			assert.Contains(t, err.Error(), "quantity is invalid")
		}
	})

	t.Run("should return error for negative unit volume", func(t *testing.T) {
		item, err := order.NewOrderItem(validID, "alice", "chair", 2, -1)

		require.Error(t, err)
		assert.Nil(t, item)
		assert.Contains(t, err.Error(), "oneItemVolume is invalid")
	})

	t.Run("should allow zero unit volume", func(t *testing.T) {
		item, err := order.NewOrderItem(validID, "alice", "voucher", 3, 0)

		require.NoError(t, err)
		assert.Equal(t, 0, item.TotalVolume())
	})

	t.Run("should return aggregated errors for multiple invalid parameters", func(t *testing.T) {
		var invalidID kernel.UUID

		item, err := order.NewOrderItem(invalidID, "", "", 0, -1)

		require.Error(t, err)
		assert.Nil(t, item)
		assert.Contains(t, err.Error(), kernel.ErrUUIDIsNotConstructed.Error())
		assert.Contains(t, err.Error(), "customer is required")
		assert.Contains(t, err.Error(), "name is required")
		assert.Contains(t, err.Error(), "quantity is invalid")
		assert.Contains(t, err.Error(), "oneItemVolume is invalid")
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestOrderItem_TotalVolume(t *testing.T) {
	t.Run("should multiply quantity by unit volume", func(t *testing.T) {
		testCases := []struct {
			name     string
			quantity int
			volume   int
			expected int
		}{
			{"single unit", 1, 4, 4},
			{"several units", 2, 3, 6},
			{"zero unit volume", 5, 0, 0},
			{"large values", 1000, 1000, 1000000},
		}

		for _, tc := range testCases {
			t.Run(tc.name, func(t *testing.T) {
				item := createValidItem(t, "alice", tc.quantity, tc.volume)
				assert.Equal(t, tc.expected, item.TotalVolume())
			})
		}
	})
}

func TestOrderItem_IsEqual(t *testing.T) {
	t.Run("should compare items by identity", func(t *testing.T) {
		id := kernel.NewUUID()
		item1, _ := order.NewOrderItem(id, "alice", "chair", 2, 3)
		item2, _ := order.NewOrderItem(id, "bob", "lamp", 1, 1)
		item3 := createValidItem(t, "alice", 2, 3)

		assert.True(t, item1.IsEqual(item2), "same ID means same item")
		assert.False(t, item1.IsEqual(item3))
		assert.False(t, item1.IsEqual(nil))
	})
}

func TestOrderItem_Validate(t *testing.T) {
	t.Run("should return error for zero value item", func(t *testing.T) {
		var item order.OrderItem

		err := item.Validate()

		require.Error(t, err)
		assert.Equal(t, order.ErrOrderItemIsNotConstructed, err)
	})

	t.Run("should return error for nil item", func(t *testing.T) {
		var item *order.OrderItem

		err := item.Validate()

		require.Error(t, err)
		assert.Equal(t, order.ErrOrderItemIsNotConstructed, err)
	})
}
