package order_test

import (
	"testing"

	"fulfillment/internal/core/domain/model/order"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustItem(t *testing.T, name string, qty int) order.ItemQuantity {
	t.Helper()
	iq, err := order.NewItemQuantity(name, qty)
	require.NoError(t, err)
	return iq
}

func TestNewInProgressOrder(t *testing.T) {
	t.Run("creates_empty_order", func(t *testing.T) {
		o := order.NewInProgressOrder()

		require.NoError(t, o.Validate())
		assert.True(t, o.IsEmpty())
		assert.Empty(t, o.Lines())
		assert.Empty(t, o.Summary())
	})

	t.Run("zero_value_fails_validation", func(t *testing.T) {
		var o order.InProgressOrder
		require.ErrorIs(t, o.Validate(), order.ErrInProgressOrderIsNotConstructed)

		var nilOrder *order.InProgressOrder
		require.ErrorIs(t, nilOrder.Validate(), order.ErrInProgressOrderIsNotConstructed)
	})
}

func TestInProgressOrder_Merge(t *testing.T) {
	t.Run("appends_new_items_in_first_added_position", func(t *testing.T) {
		o := order.NewInProgressOrder()

		require.NoError(t, o.Merge([]order.ItemQuantity{
			mustItem(t, "Pizza", 2),
			mustItem(t, "Mango Lassi", 1),
		}))

		assert.Equal(t, "2 Pizza, 1 Mango Lassi", o.Summary())
	})

	t.Run("overwrites_quantity_instead_of_summing", func(t *testing.T) {
		o := order.NewInProgressOrder()
		require.NoError(t, o.Merge([]order.ItemQuantity{mustItem(t, "Pizza", 2)}))

		require.NoError(t, o.Merge([]order.ItemQuantity{mustItem(t, "Pizza", 5)}))

		require.Len(t, o.Lines(), 1)
		assert.Equal(t, 5, o.Lines()[0].Quantity())
	})

	t.Run("overwritten_item_keeps_its_position", func(t *testing.T) {
		o := order.NewInProgressOrder()
		require.NoError(t, o.Merge([]order.ItemQuantity{
			mustItem(t, "Pizza", 2),
			mustItem(t, "Coke", 1),
		}))

		require.NoError(t, o.Merge([]order.ItemQuantity{mustItem(t, "Pizza", 3)}))

		assert.Equal(t, "3 Pizza, 1 Coke", o.Summary())
	})

	t.Run("duplicate_name_in_one_call_last_write_wins", func(t *testing.T) {
		o := order.NewInProgressOrder()

		require.NoError(t, o.Merge([]order.ItemQuantity{
			mustItem(t, "Samosa", 2),
			mustItem(t, "Samosa", 4),
		}))

		assert.Equal(t, "4 Samosa", o.Summary())
	})

	t.Run("rejects_unconstructed_line", func(t *testing.T) {
		o := order.NewInProgressOrder()

		err := o.Merge([]order.ItemQuantity{{}})
		require.ErrorIs(t, err, order.ErrItemQuantityIsNotConstructed)
	})
}

func TestInProgressOrder_Replace(t *testing.T) {
	t.Run("discards_previous_contents", func(t *testing.T) {
		o := order.NewInProgressOrder()
		require.NoError(t, o.Merge([]order.ItemQuantity{mustItem(t, "Pizza", 2)}))

		require.NoError(t, o.Replace([]order.ItemQuantity{mustItem(t, "Chai", 3)}))

		assert.Equal(t, "3 Chai", o.Summary())
	})

	t.Run("replace_with_nothing_empties_the_order", func(t *testing.T) {
		o := order.NewInProgressOrder()
		require.NoError(t, o.Merge([]order.ItemQuantity{mustItem(t, "Pizza", 2)}))

		require.NoError(t, o.Replace(nil))

		assert.True(t, o.IsEmpty())
	})
}

func TestInProgressOrder_Remove(t *testing.T) {
	t.Run("partitions_into_removed_and_not_found", func(t *testing.T) {
		o := order.NewInProgressOrder()
		require.NoError(t, o.Merge([]order.ItemQuantity{
			mustItem(t, "Pizza", 2),
			mustItem(t, "Coke", 1),
		}))

		removed, notFound := o.Remove([]string{"Pizza", "Fries"})

		assert.Equal(t, []string{"Pizza"}, removed)
		assert.Equal(t, []string{"Fries"}, notFound)
		assert.Equal(t, "1 Coke", o.Summary())
	})

	t.Run("removing_everything_empties_the_order", func(t *testing.T) {
		o := order.NewInProgressOrder()
		require.NoError(t, o.Merge([]order.ItemQuantity{mustItem(t, "Pizza", 2)}))

		removed, notFound := o.Remove([]string{"Pizza"})

		assert.Equal(t, []string{"Pizza"}, removed)
		assert.Empty(t, notFound)
		assert.True(t, o.IsEmpty())
	})

	t.Run("later_lines_shift_into_freed_positions", func(t *testing.T) {
		o := order.NewInProgressOrder()
		require.NoError(t, o.Merge([]order.ItemQuantity{
			mustItem(t, "Samosa", 2),
			mustItem(t, "Paneer Tikka", 1),
			mustItem(t, "Chai", 3),
		}))

		removed, _ := o.Remove([]string{"Paneer Tikka"})
		require.Equal(t, []string{"Paneer Tikka"}, removed)

		// Remaining items must still resolve through the index.
		removed, notFound := o.Remove([]string{"Chai", "Samosa"})
		assert.Equal(t, []string{"Chai", "Samosa"}, removed)
		assert.Empty(t, notFound)
		assert.True(t, o.IsEmpty())
	})
}

func TestNewItemQuantity(t *testing.T) {
	t.Run("valid_line", func(t *testing.T) {
		iq, err := order.NewItemQuantity("Pizza", 2)

		require.NoError(t, err)
		assert.Equal(t, "Pizza", iq.Name())
		assert.Equal(t, 2, iq.Quantity())
		assert.Equal(t, "2 Pizza", iq.String())
	})

	t.Run("empty_name_is_rejected", func(t *testing.T) {
		_, err := order.NewItemQuantity("", 2)
		require.Error(t, err)
	})

	t.Run("quantity_below_one_is_rejected", func(t *testing.T) {
		_, err := order.NewItemQuantity("Pizza", 0)
		require.Error(t, err)

		_, err = order.NewItemQuantity("Pizza", -3)
		require.Error(t, err)
	})

	t.Run("no_upper_bound_on_quantity", func(t *testing.T) {
		iq, err := order.NewItemQuantity("Pizza", 100000)
		require.NoError(t, err)
		assert.Equal(t, 100000, iq.Quantity())
	})
}
