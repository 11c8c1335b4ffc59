package order_test

import (
	"testing"

	"shop/internal/core/domain/model/item"
	"shop/internal/core/domain/model/kernel"
	"shop/internal/core/domain/model/member"
	"shop/internal/core/domain/model/order"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createTestMember(t *testing.T) *member.Member {
	t.Helper()
	address, err := kernel.NewAddress("Seoul", "Main St", "12345")
	require.NoError(t, err)
	m, err := member.NewMember(kernel.NewUUID(), "member1", address)
	require.NoError(t, err)
	return m
}

func createTestBook(t *testing.T, price, stock int) *item.Item {
	t.Helper()
	book, err := item.NewBook(kernel.NewUUID(), "jpa book", price, stock, "Kim", "978-89-0000000-0")
	require.NoError(t, err)
	return book
}

func createTestDelivery(t *testing.T, m *member.Member) *order.Delivery {
	t.Helper()
	delivery, err := order.NewDelivery(kernel.NewUUID(), m.Address())
	require.NoError(t, err)
	return delivery
}

// placeTestOrder builds the full aggregate the way the place-order use case
// does: one line item at the item's current price, delivery to the member's
// address.
func placeTestOrder(t *testing.T, m *member.Member, it *item.Item, quantity int) *order.Order {
	t.Helper()
	lineItem, err := order.NewLineItem(kernel.NewUUID(), it, it.Price(), quantity)
	require.NoError(t, err)
	o, err := order.NewOrder(kernel.NewUUID(), m, createTestDelivery(t, m), lineItem)
	require.NoError(t, err)
	return o
}

func TestNewOrder(t *testing.T) {
	t.Run("places order with fully wired graph", func(t *testing.T) {
		m := createTestMember(t)
		book := createTestBook(t, 10000, 10)
		lineItem, err := order.NewLineItem(kernel.NewUUID(), book, book.Price(), 2)
		require.NoError(t, err)
		delivery := createTestDelivery(t, m)

		o, err := order.NewOrder(kernel.NewUUID(), m, delivery, lineItem)

		require.NoError(t, err)
		assert.Equal(t, order.Placed, o.Status())
		assert.False(t, o.OrderedAt().IsZero())
		assert.Len(t, o.LineItems(), 1)

		// Every link is observable from both sides.
		require.NotNil(t, lineItem.OrderID())
		assert.True(t, lineItem.OrderID().IsEqual(o.ID()))
		require.NotNil(t, delivery.OrderID())
		assert.True(t, delivery.OrderID().IsEqual(o.ID()))
		assert.True(t, m.HasOrder(o.ID()))
		assert.True(t, o.Member().IsEqual(m))
		assert.Equal(t, delivery, o.Delivery())
	})

	t.Run("fails without line items", func(t *testing.T) {
		m := createTestMember(t)

		_, err := order.NewOrder(kernel.NewUUID(), m, createTestDelivery(t, m))

		require.Error(t, err)
		require.ErrorIs(t, err, order.ErrLineItemsAreRequired)
		assert.Empty(t, m.OrderIDs())
	})

	t.Run("fails with nil member", func(t *testing.T) {
		m := createTestMember(t)
		book := createTestBook(t, 10000, 10)
		lineItem, err := order.NewLineItem(kernel.NewUUID(), book, book.Price(), 1)
		require.NoError(t, err)

		_, err = order.NewOrder(kernel.NewUUID(), nil, createTestDelivery(t, m), lineItem)

		require.Error(t, err)
	})

	t.Run("rejects delivery owned by another order", func(t *testing.T) {
		m := createTestMember(t)
		book := createTestBook(t, 10000, 10)
		o := placeTestOrder(t, m, book, 1)

		otherLine, err := order.NewLineItem(kernel.NewUUID(), book, book.Price(), 1)
		require.NoError(t, err)
		_, err = order.NewOrder(kernel.NewUUID(), m, o.Delivery(), otherLine)

		require.ErrorIs(t, err, order.ErrDeliveryAlreadyAttached)
	})

	t.Run("rejects line item owned by another order", func(t *testing.T) {
		m := createTestMember(t)
		book := createTestBook(t, 10000, 10)
		o := placeTestOrder(t, m, book, 1)

		_, err := order.NewOrder(kernel.NewUUID(), m, createTestDelivery(t, m), o.LineItems()[0])

		require.ErrorIs(t, err, order.ErrLineItemAlreadyAttached)
	})

	t.Run("zero value fails validation", func(t *testing.T) {
		var o order.Order
		require.ErrorIs(t, o.Validate(), order.ErrOrderIsNotConstructed)
	})
}

func TestOrderTotalPrice(t *testing.T) {
	t.Run("sums line item totals", func(t *testing.T) {
		m := createTestMember(t)
		book := createTestBook(t, 10000, 10)
		album, err := item.NewItem(kernel.NewUUID(), "some album", 15000, 5, item.AlbumKind, item.Details{Artist: "IU"})
		require.NoError(t, err)

		line1, err := order.NewLineItem(kernel.NewUUID(), book, book.Price(), 2)
		require.NoError(t, err)
		line2, err := order.NewLineItem(kernel.NewUUID(), album, album.Price(), 3)
		require.NoError(t, err)

		o, err := order.NewOrder(kernel.NewUUID(), m, createTestDelivery(t, m), line1, line2)
		require.NoError(t, err)

		assert.Equal(t, 10000*2+15000*3, o.TotalPrice())
	})

	t.Run("is independent of line item order", func(t *testing.T) {
		m1 := createTestMember(t)
		m2 := createTestMember(t)
		bookA := createTestBook(t, 10000, 10)
		bookB := createTestBook(t, 20000, 10)

		buildOrder := func(m *member.Member, first, second *item.Item) *order.Order {
			l1, err := order.NewLineItem(kernel.NewUUID(), first, first.Price(), 1)
			require.NoError(t, err)
			l2, err := order.NewLineItem(kernel.NewUUID(), second, second.Price(), 2)
			require.NoError(t, err)
			o, err := order.NewOrder(kernel.NewUUID(), m, createTestDelivery(t, m), l1, l2)
			require.NoError(t, err)
			return o
		}

		forward := buildOrder(m1, bookA, bookB)
		backward := buildOrder(m2, bookB, bookA)

		// Quantities differ per position, so compare the symmetric case only.
		assert.Equal(t, forward.TotalPrice(), 10000*1+20000*2)
		assert.Equal(t, backward.TotalPrice(), 20000*1+10000*2)
	})

	t.Run("snapshot isolates order from later price changes", func(t *testing.T) {
		m := createTestMember(t)
		book := createTestBook(t, 10000, 10)
		o := placeTestOrder(t, m, book, 2)

		require.NoError(t, book.ChangePrice(99000))

		assert.Equal(t, 20000, o.TotalPrice())
	})
}

func TestOrderCancel(t *testing.T) {
	t.Run("flips status and restores stock", func(t *testing.T) {
		m := createTestMember(t)
		book := createTestBook(t, 10000, 10)
		o := placeTestOrder(t, m, book, 2)
		require.Equal(t, 8, book.Stock())

		require.NoError(t, o.Cancel())

		assert.Equal(t, order.Cancelled, o.Status())
		assert.Equal(t, 10, book.Stock())
	})

	t.Run("restores stock of every line item", func(t *testing.T) {
		m := createTestMember(t)
		bookA := createTestBook(t, 10000, 10)
		bookB := createTestBook(t, 20000, 7)

		l1, err := order.NewLineItem(kernel.NewUUID(), bookA, bookA.Price(), 4)
		require.NoError(t, err)
		l2, err := order.NewLineItem(kernel.NewUUID(), bookB, bookB.Price(), 7)
		require.NoError(t, err)
		o, err := order.NewOrder(kernel.NewUUID(), m, createTestDelivery(t, m), l1, l2)
		require.NoError(t, err)
		require.Equal(t, 6, bookA.Stock())
		require.Equal(t, 0, bookB.Stock())

		require.NoError(t, o.Cancel())

		assert.Equal(t, 10, bookA.Stock())
		assert.Equal(t, 7, bookB.Stock())
	})

	t.Run("fails when delivery is completed and leaves everything unchanged", func(t *testing.T) {
		m := createTestMember(t)
		book := createTestBook(t, 10000, 10)
		o := placeTestOrder(t, m, book, 2)
		require.NoError(t, o.CompleteDelivery())

		err := o.Cancel()

		require.Error(t, err)
		require.ErrorIs(t, err, order.ErrDeliveryAlreadyCompleted)
		assert.Equal(t, order.Placed, o.Status())
		assert.Equal(t, 8, book.Stock())
	})

	t.Run("second cancel fails and does not double-release stock", func(t *testing.T) {
		m := createTestMember(t)
		book := createTestBook(t, 10000, 10)
		o := placeTestOrder(t, m, book, 2)

		require.NoError(t, o.Cancel())
		require.Equal(t, 10, book.Stock())

		err := o.Cancel()

		require.Error(t, err)
		assert.Equal(t, order.Cancelled, o.Status())
		assert.Equal(t, 10, book.Stock())
	})
}

func TestOrderCompleteDelivery(t *testing.T) {
	m := createTestMember(t)
	book := createTestBook(t, 10000, 10)
	o := placeTestOrder(t, m, book, 1)

	require.NoError(t, o.CompleteDelivery())
	assert.Equal(t, order.DeliveryCompleted, o.Delivery().Status())

	// Completed is terminal.
	require.Error(t, o.CompleteDelivery())
}

func TestRestoreOrder(t *testing.T) {
	m := createTestMember(t)
	book := createTestBook(t, 10000, 10)
	placed := placeTestOrder(t, m, book, 2)

	delivery, err := order.RestoreDelivery(placed.Delivery().ID(), placed.Delivery().Address(), placed.Delivery().Status())
	require.NoError(t, err)
	lineItem, err := order.RestoreLineItem(placed.LineItems()[0].ID(), book, 10000, 2)
	require.NoError(t, err)

	restored, err := order.RestoreOrder(placed.ID(), m, delivery, []*order.LineItem{lineItem}, placed.OrderedAt(), placed.Status())

	require.NoError(t, err)
	assert.True(t, restored.IsEqual(placed))
	assert.Equal(t, order.Placed, restored.Status())
	assert.Equal(t, 20000, restored.TotalPrice())
	// Restoring does not double-reserve stock.
	assert.Equal(t, 8, book.Stock())
	// Back-references are wired again and the member view stays deduplicated.
	assert.True(t, restored.LineItems()[0].OrderID().IsEqual(restored.ID()))
	assert.Len(t, m.OrderIDs(), 1)
}

func TestRestoreOrderRejectsInvalidStatus(t *testing.T) {
	m := createTestMember(t)
	book := createTestBook(t, 10000, 10)
	placed := placeTestOrder(t, m, book, 1)

	delivery, err := order.RestoreDelivery(kernel.NewUUID(), m.Address(), order.DeliveryReady)
	require.NoError(t, err)
	lineItem, err := order.RestoreLineItem(kernel.NewUUID(), book, 10000, 1)
	require.NoError(t, err)

	_, err = order.RestoreOrder(kernel.NewUUID(), m, delivery, []*order.LineItem{lineItem}, placed.OrderedAt(), order.Unknown)

	require.Error(t, err)
}
