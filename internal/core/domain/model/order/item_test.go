package order_test

import (
	"testing"

	"dentallab/internal/core/domain/model/kernel"
	"dentallab/internal/core/domain/model/order"
	"dentallab/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewItem(t *testing.T) {
	t.Run("computes total from price and quantity", func(t *testing.T) {
		item, err := order.NewItem(3, 11, kernel.MustMoney("150.50"), 2, "shade A2")

		require.NoError(t, err)
		require.NoError(t, item.Validate())
		assert.Equal(t, int64(3), item.ProductID())
		assert.Equal(t, int64(11), item.TeethPositionID())
		assert.Equal(t, 2, item.Quantity())
		assert.Equal(t, "shade A2", item.Note())
		assert.Equal(t, "301.00", item.TotalAmount().String())
		assert.Zero(t, item.ID())
	})

	t.Run("rejects zero quantity", func(t *testing.T) {
		item, err := order.NewItem(3, 11, kernel.MustMoney("10"), 0, "")

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		assert.Nil(t, item)
	})

	t.Run("rejects missing references", func(t *testing.T) {
		_, err := order.NewItem(0, 0, kernel.MustMoney("10"), 1, "")

		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
		assert.Contains(t, err.Error(), "product id")
		assert.Contains(t, err.Error(), "teeth position id")
	})
}

func TestItem_AttachID(t *testing.T) {
	item, _ := order.NewItem(1, 1, kernel.MustMoney("10"), 1, "")

	require.NoError(t, item.AttachID(5))
	assert.Equal(t, int64(5), item.ID())
	require.Error(t, item.AttachID(6))
}

func TestItem_Validate(t *testing.T) {
	var item *order.Item
	assert.Equal(t, order.ErrItemIsNotConstructed, item.Validate())
	assert.Equal(t, order.ErrItemIsNotConstructed, (&order.Item{}).Validate())
}
