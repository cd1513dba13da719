package models

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testBook(title, price string) Book {
	return Book{
		Title:    title,
		Category: "Fiction",
		Price:    decimal.RequireFromString(price),
		Image:    "/images/books/test.jpg",
	}
}

func TestCartAddAccumulatesQuantity(t *testing.T) {
	cart := NewCart()
	book := testBook("1984", "8.99")

	cart.Add(book, 2)
	cart.Add(book, 3)

	item, ok := cart.Get("1984")
	require.True(t, ok)
	assert.Equal(t, 5, item.Quantity)
	assert.Equal(t, 5, cart.TotalItems())
}

func TestCartUpdateToZeroKeepsEntry(t *testing.T) {
	cart := NewCart()
	cart.Add(testBook("Moby Dick", "12.49"), 2)

	cart.Update("Moby Dick", 0)

	// The zero-quantity entry stays in the cart instead of being
	// removed.
	item, ok := cart.Get("Moby Dick")
	require.True(t, ok)
	assert.Equal(t, 0, item.Quantity)
	assert.False(t, cart.IsEmpty())
	assert.Equal(t, 0, cart.TotalItems())
	assert.True(t, cart.TotalPrice().IsZero())
}

func TestCartUpdateSetsQuantityVerbatim(t *testing.T) {
	cart := NewCart()
	cart.Add(testBook("1984", "8.99"), 5)

	cart.Update("1984", 2)

	item, ok := cart.Get("1984")
	require.True(t, ok)
	assert.Equal(t, 2, item.Quantity)
}

func TestCartUpdateUnknownTitleIsNoop(t *testing.T) {
	cart := NewCart()
	cart.Update("Nonexistent Book", 3)
	assert.True(t, cart.IsEmpty())
}

func TestCartRemove(t *testing.T) {
	cart := NewCart()
	cart.Add(testBook("1984", "8.99"), 1)

	cart.Remove("1984")

	assert.True(t, cart.IsEmpty())
	_, ok := cart.Get("1984")
	assert.False(t, ok)
}

func TestCartTotalPrice(t *testing.T) {
	cart := NewCart()
	cart.Add(testBook("The Great Gatsby", "10.99"), 2)
	cart.Add(testBook("1984", "8.99"), 1)

	assert.True(t, cart.TotalPrice().Equal(decimal.RequireFromString("30.97")),
		"got %s", cart.TotalPrice())
	assert.Equal(t, 3, cart.TotalItems())
}

func TestCartClear(t *testing.T) {
	cart := NewCart()
	cart.Add(testBook("1984", "8.99"), 4)

	cart.Clear()

	assert.True(t, cart.IsEmpty())
	assert.Equal(t, 0, cart.TotalItems())
}

func TestCartItemsReturnsIsolatedSnapshot(t *testing.T) {
	cart := NewCart()
	cart.Add(testBook("1984", "8.99"), 2)

	snapshot := cart.Items()
	require.Len(t, snapshot, 1)

	cart.Update("1984", 9)

	assert.Equal(t, 2, snapshot[0].Quantity, "snapshot must not track later cart mutation")
}
