// Package cart implements the cart/basket manager. A cart belongs to a
// single in-progress order flow and is discarded on submit or cancel.
package cart

import (
	"slices"

	"freshstock/internal/domain"
)

type stockReader interface {
	Get(productID string) (domain.StockItem, bool)
}

// Entry is one cart line as rendered by a browse screen. Zero-quantity
// entries exist only for basket-prefilled products that have not been
// adjusted yet.
type Entry struct {
	ProductID string `json:"productId"`
	Quantity  int    `json:"quantity"`
}

// Cart maps product ids to requested quantities. Quantities are always
// clamped to [0, available stock]; out-of-range requests are adjusted
// silently rather than rejected.
type Cart struct {
	stock      stockReader
	quantities map[string]int
	order      []string
}

func New(stock stockReader) *Cart {
	return &Cart{stock: stock, quantities: make(map[string]int)}
}

// SetQuantity upserts the entry clamped to the available stock and
// returns the resulting quantity. Setting zero removes the entry, as
// does referencing an unknown product.
func (c *Cart) SetQuantity(productID string, qty int) int {
	item, ok := c.stock.Get(productID)
	if !ok {
		c.remove(productID)
		return 0
	}
	qty = max(0, min(qty, item.Count))
	if qty == 0 {
		c.remove(productID)
		return 0
	}
	if _, present := c.quantities[productID]; !present {
		c.order = append(c.order, productID)
	}
	c.quantities[productID] = qty
	return qty
}

// Adjust applies a signed delta to the current quantity, with the same
// clamping as SetQuantity. This backs the +/- controls.
func (c *Cart) Adjust(productID string, delta int) int {
	return c.SetQuantity(productID, c.quantities[productID]+delta)
}

// Quantity reports the current quantity for a product, zero if absent.
func (c *Cart) Quantity(productID string) int {
	return c.quantities[productID]
}

// SelectBasket resets the cart to exactly the basket's products, each
// at quantity zero. Quantities are not auto-filled.
func (c *Cart) SelectBasket(b domain.Basket) {
	c.quantities = make(map[string]int, len(b.ItemIDs))
	c.order = c.order[:0]
	for _, id := range b.ItemIDs {
		if _, present := c.quantities[id]; present {
			continue
		}
		c.quantities[id] = 0
		c.order = append(c.order, id)
	}
}

// Total sums price x quantity over all entries at current catalog
// prices.
func (c *Cart) Total() int64 {
	var total int64
	for id, qty := range c.quantities {
		if item, ok := c.stock.Get(id); ok {
			total += item.Price * int64(qty)
		}
	}
	return total
}

// ItemCount sums the quantities of all entries.
func (c *Cart) ItemCount() int {
	count := 0
	for _, qty := range c.quantities {
		count += qty
	}
	return count
}

// Entries lists all cart lines in insertion order, including
// basket-prefilled zero-quantity lines.
func (c *Cart) Entries() []Entry {
	entries := make([]Entry, 0, len(c.order))
	for _, id := range c.order {
		entries = append(entries, Entry{ProductID: id, Quantity: c.quantities[id]})
	}
	return entries
}

// Items converts the cart into order items, excluding zero-quantity
// lines.
func (c *Cart) Items() []domain.OrderItem {
	items := make([]domain.OrderItem, 0, len(c.order))
	for _, id := range c.order {
		if qty := c.quantities[id]; qty > 0 {
			items = append(items, domain.OrderItem{ProductID: id, Quantity: qty})
		}
	}
	return items
}

// Clear empties the cart.
func (c *Cart) Clear() {
	c.quantities = make(map[string]int)
	c.order = c.order[:0]
}

func (c *Cart) remove(productID string) {
	if _, present := c.quantities[productID]; !present {
		return
	}
	delete(c.quantities, productID)
	c.order = slices.DeleteFunc(c.order, func(id string) bool { return id == productID })
}
