package cart

import (
	"fmt"

	"phonekart/internal/notify"
	"phonekart/internal/product"

	"github.com/shopspring/decimal"
)

// Cart holds at most one line per product id. It lives for the session,
// is driven from a single event loop and never fails on unknown ids.
type Cart struct {
	items    []Item
	notifier notify.Notifier
}

func New(n notify.Notifier) *Cart {
	return &Cart{notifier: notify.OrDiscard(n)}
}

func (c *Cart) indexOf(id string) int {
	for i, it := range c.items {
		if it.Product.ID == id {
			return i
		}
	}
	return -1
}

// Add puts one unit of p in the cart, merging with an existing line.
func (c *Cart) Add(p product.Product) {
	if i := c.indexOf(p.ID); i >= 0 {
		c.items[i].Quantity++
		c.notifier.Notify(notify.KindSuccess, fmt.Sprintf("Quantity updated for %s!", p.Name))
		return
	}
	c.items = append(c.items, Item{Product: p, Quantity: 1})
	c.notifier.Notify(notify.KindSuccess, fmt.Sprintf("%s added to cart!", p.Name))
}

// Remove deletes the line for id if present. The notification is emitted
// either way.
func (c *Cart) Remove(id string) {
	if i := c.indexOf(id); i >= 0 {
		c.items = append(c.items[:i:i], c.items[i+1:]...)
	}
	c.notifier.Notify(notify.KindError, "Item removed from cart")
}

// UpdateQuantity sets the quantity for id, never below 1.
func (c *Cart) UpdateQuantity(id string, quantity int) {
	if i := c.indexOf(id); i >= 0 {
		c.items[i].Quantity = max(1, quantity)
	}
}

// Items returns a copy of the cart lines in insertion order.
func (c *Cart) Items() []Item {
	out := make([]Item, len(c.items))
	copy(out, c.items)
	return out
}

func (c *Cart) Get(id string) (Item, bool) {
	if i := c.indexOf(id); i >= 0 {
		return c.items[i], true
	}
	return Item{}, false
}

// Count is the number of distinct products, shown on the header badge.
func (c *Cart) Count() int { return len(c.items) }

// Units is the total quantity across lines.
func (c *Cart) Units() int {
	n := 0
	for _, it := range c.items {
		n += it.Quantity
	}
	return n
}

func (c *Cart) IsEmpty() bool { return len(c.items) == 0 }

func (c *Cart) Subtotal() decimal.Decimal {
	total := decimal.Zero
	for _, it := range c.items {
		total = total.Add(it.LineTotal())
	}
	return total
}

// Clear empties the cart.
func (c *Cart) Clear() {
	c.items = nil
}

// Deduct takes ordered lines out of the cart. Lines added after the order
// was snapshotted stay, and a line keeps whatever quantity exceeds the
// ordered one.
func (c *Cart) Deduct(ordered []Item) {
	for _, o := range ordered {
		i := c.indexOf(o.Product.ID)
		if i < 0 {
			continue
		}
		if c.items[i].Quantity > o.Quantity {
			c.items[i].Quantity -= o.Quantity
			continue
		}
		c.items = append(c.items[:i:i], c.items[i+1:]...)
	}
}
