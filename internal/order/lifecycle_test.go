package order

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oaktable/menu-service/internal/cart"
)

func newTestCart(t *testing.T) *cart.Store {
	t.Helper()
	s := cart.NewStore()
	s.AddItem(cart.ItemDescriptor{Name: "Chicken Taco", UnitPrice: 4.25, Category: "Tacos"})
	return s
}

func reviewed(t *testing.T, s *cart.Store) *Lifecycle {
	t.Helper()
	l := NewLifecycle(s)
	require.NoError(t, l.Review())
	return l
}

func TestReview(t *testing.T) {
	t.Run("empty cart is rejected", func(t *testing.T) {
		l := NewLifecycle(cart.NewStore())

		err := l.Review()
		require.ErrorIs(t, err, ErrEmptyCart)
		assert.Equal(t, StateBrowsing, l.State())
	})

	t.Run("non-empty cart moves to reviewing", func(t *testing.T) {
		l := NewLifecycle(newTestCart(t))

		require.NoError(t, l.Review())
		assert.Equal(t, StateReviewing, l.State())

		// reviewing again is harmless
		require.NoError(t, l.Review())
		assert.Equal(t, StateReviewing, l.State())
	})

	t.Run("rejected while an order is confirmed", func(t *testing.T) {
		s := newTestCart(t)
		l := reviewed(t, s)
		_, err := l.Place(Customer{Name: "Jane", Phone: "555-0100"}, ModePickup)
		require.NoError(t, err)

		err = l.Review()
		require.ErrorIs(t, err, ErrOrderPending)
		assert.Equal(t, StateConfirmed, l.State())
	})
}

func TestCancelReview(t *testing.T) {
	s := newTestCart(t)
	l := reviewed(t, s)

	l.CancelReview()
	assert.Equal(t, StateBrowsing, l.State())
	assert.Equal(t, 1, s.ItemCount(), "cart keeps its contents")
}

func TestPlace(t *testing.T) {
	t.Run("requires reviewing state", func(t *testing.T) {
		l := NewLifecycle(newTestCart(t))

		_, err := l.Place(Customer{Name: "Jane", Phone: "555-0100"}, ModePickup)
		require.ErrorIs(t, err, ErrNotReviewing)
		assert.Equal(t, StateBrowsing, l.State())
	})

	t.Run("missing name", func(t *testing.T) {
		l := reviewed(t, newTestCart(t))

		_, err := l.Place(Customer{Name: "   ", Phone: "555-0100"}, ModePickup)
		require.ErrorIs(t, err, ErrMissingName)
		assert.Equal(t, StateReviewing, l.State())
		_, ok := l.Current()
		assert.False(t, ok, "no order is minted on validation failure")
	})

	t.Run("missing phone leaves state unchanged", func(t *testing.T) {
		s := newTestCart(t)
		l := reviewed(t, s)

		_, err := l.Place(Customer{Name: "Jane", Phone: ""}, ModePickup)
		require.ErrorIs(t, err, ErrMissingPhone)
		assert.Equal(t, StateReviewing, l.State())
		assert.Equal(t, 1, s.ItemCount())
	})

	t.Run("name is validated before phone", func(t *testing.T) {
		l := reviewed(t, newTestCart(t))

		_, err := l.Place(Customer{}, ModePickup)
		require.ErrorIs(t, err, ErrMissingName)
	})

	t.Run("success snapshots cart and confirms", func(t *testing.T) {
		s := cart.NewStore()
		s.AddItem(cart.ItemDescriptor{Name: "A", UnitPrice: 10.00})
		b := s.AddItem(cart.ItemDescriptor{Name: "B", UnitPrice: 5.50})
		s.SetQuantity(b.ID, 2)
		l := reviewed(t, s)

		ord, err := l.Place(Customer{Name: "  Jane  ", Phone: " 555-0100 ", Email: "jane@example.com"}, ModeDelivery)
		require.NoError(t, err)

		assert.Equal(t, StateConfirmed, l.State())
		assert.Equal(t, 1000, ord.Number)
		assert.Equal(t, "Jane", ord.Customer.Name)
		assert.Equal(t, "555-0100", ord.Customer.Phone)
		assert.Equal(t, ModeDelivery, ord.Fulfillment)
		assert.Len(t, ord.Lines, 2)
		assert.InDelta(t, 22.73, ord.Totals.Total, 1e-9)
		assert.False(t, ord.PlacedAt.IsZero())

		current, ok := l.Current()
		require.True(t, ok)
		assert.Equal(t, ord.Number, current.Number)
	})

	t.Run("snapshot is immutable after cart changes", func(t *testing.T) {
		s := newTestCart(t)
		l := reviewed(t, s)
		ord, err := l.Place(Customer{Name: "Jane", Phone: "555-0100"}, ModePickup)
		require.NoError(t, err)

		s.Clear()
		current, ok := l.Current()
		require.True(t, ok)
		assert.Equal(t, ord.Totals, current.Totals)
		assert.Len(t, current.Lines, 1)
	})
}

func TestOrderNumbers(t *testing.T) {
	s := newTestCart(t)
	l := NewLifecycle(s)

	prev := firstOrderNumber - 1
	for i := 0; i < 3; i++ {
		s.AddItem(cart.ItemDescriptor{Name: "Chicken Taco", UnitPrice: 4.25})
		require.NoError(t, l.Review())
		ord, err := l.Place(Customer{Name: "Jane", Phone: "555-0100"}, ModePickup)
		require.NoError(t, err)

		assert.Greater(t, ord.Number, prev)
		assert.Equal(t, firstOrderNumber+i, ord.Number)
		prev = ord.Number
		l.Reset()
	}
}

func TestReset(t *testing.T) {
	s := newTestCart(t)
	l := reviewed(t, s)
	_, err := l.Place(Customer{Name: "Jane", Phone: "555-0100"}, ModeDelivery)
	require.NoError(t, err)

	l.Reset()

	assert.Equal(t, StateBrowsing, l.State())
	assert.Equal(t, ModePickup, l.Mode(), "fulfillment selection resets to pickup")
	assert.Equal(t, 0, s.ItemCount(), "cart is cleared")
	_, ok := l.Current()
	assert.False(t, ok, "confirmation is discarded irrevocably")
}

func TestParseMode(t *testing.T) {
	assert.Equal(t, ModePickup, ParseMode(""))
	assert.Equal(t, ModePickup, ParseMode("drive-through"))
	assert.Equal(t, ModePickup, ParseMode("pickup"))
	assert.Equal(t, ModeDelivery, ParseMode("delivery"))
}
