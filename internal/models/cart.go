package models

import (
	"sync"

	"github.com/shopspring/decimal"
)

type CartItem struct {
	Book     Book `json:"book"`
	Quantity int  `json:"quantity"`
}

func (i CartItem) TotalPrice() decimal.Decimal {
	return i.Book.Price.Mul(decimal.NewFromInt(int64(i.Quantity)))
}

// Cart is the process-wide shopping cart, keyed by book title. A single
// instance is shared by every request rather than scoped per session;
// the mutex only keeps concurrent map access from crashing the process.
type Cart struct {
	mu    sync.Mutex
	items map[string]*CartItem
}

func NewCart() *Cart {
	return &Cart{items: make(map[string]*CartItem)}
}

// Add increments the quantity of an existing entry or inserts a new one.
func (c *Cart) Add(book Book, quantity int) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if item, ok := c.items[book.Title]; ok {
		item.Quantity += quantity
		return
	}
	c.items[book.Title] = &CartItem{Book: book, Quantity: quantity}
}

func (c *Cart) Remove(title string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.items, title)
}

// Update sets the quantity verbatim, including to zero. A zero quantity
// leaves a zero-quantity entry in the cart instead of removing it.
func (c *Cart) Update(title string, quantity int) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if item, ok := c.items[title]; ok {
		item.Quantity = quantity
	}
}

func (c *Cart) TotalPrice() decimal.Decimal {
	c.mu.Lock()
	defer c.mu.Unlock()

	total := decimal.Zero
	for _, item := range c.items {
		total = total.Add(item.TotalPrice())
	}
	return total
}

func (c *Cart) TotalItems() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	count := 0
	for _, item := range c.items {
		count += item.Quantity
	}
	return count
}

func (c *Cart) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.items = make(map[string]*CartItem)
}

func (c *Cart) IsEmpty() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.items) == 0
}

// Items returns a copied snapshot, so orders built from it are isolated
// from later cart mutation.
func (c *Cart) Items() []CartItem {
	c.mu.Lock()
	defer c.mu.Unlock()

	items := make([]CartItem, 0, len(c.items))
	for _, item := range c.items {
		items = append(items, *item)
	}
	return items
}

// Get returns the current entry for a title, if any.
func (c *Cart) Get(title string) (CartItem, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	item, ok := c.items[title]
	if !ok {
		return CartItem{}, false
	}
	return *item, true
}
