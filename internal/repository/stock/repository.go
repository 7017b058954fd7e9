package stock

import "freshstock/internal/domain"

// Reader is the read-only view of the ledger used by carts and flows.
type Reader interface {
	Get(productID string) (domain.StockItem, bool)
	List() []domain.StockItem
}

// Ledger is the mutable available-quantity table for products. Counts
// never go negative; writes that would cross zero are floored.
type Ledger interface {
	Reader
	Decrement(productID string, amount int) (removed int, err error)
	SetCount(productID string, count int) error
	Add(productID string, delta int) error
}
