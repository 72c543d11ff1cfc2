package cart

import (
	"phonekart/internal/notify"
	"phonekart/internal/product"
)

// Wishlist is a set of products keyed by id, in insertion order.
type Wishlist struct {
	items    []product.Product
	notifier notify.Notifier
}

func NewWishlist(n notify.Notifier) *Wishlist {
	return &Wishlist{notifier: notify.OrDiscard(n)}
}

func (w *Wishlist) indexOf(id string) int {
	for i, p := range w.items {
		if p.ID == id {
			return i
		}
	}
	return -1
}

// Toggle adds p, or removes it when already present. It reports whether p
// is in the wishlist afterwards.
func (w *Wishlist) Toggle(p product.Product) bool {
	if i := w.indexOf(p.ID); i >= 0 {
		w.items = append(w.items[:i:i], w.items[i+1:]...)
		w.notifier.Notify(notify.KindError, "Removed from Wishlist")
		return false
	}
	w.items = append(w.items, p)
	w.notifier.Notify(notify.KindSuccess, "Added to Wishlist")
	return true
}

func (w *Wishlist) Contains(id string) bool { return w.indexOf(id) >= 0 }

func (w *Wishlist) Items() []product.Product {
	out := make([]product.Product, len(w.items))
	copy(out, w.items)
	return out
}

func (w *Wishlist) Count() int { return len(w.items) }

// MoveToCart adds the product to c and keeps it in the wishlist.
func (w *Wishlist) MoveToCart(id string, c *Cart) bool {
	i := w.indexOf(id)
	if i < 0 {
		return false
	}
	c.Add(w.items[i])
	return true
}
