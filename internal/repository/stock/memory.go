package stock

import (
	"fmt"
	"sync"

	"freshstock/internal/domain"
)

// Memory is the in-memory Ledger implementation. A single mutex guards
// every count so a decrement is atomic even under concurrent order
// submissions; state lives for the lifetime of the process.
type Memory struct {
	mu    sync.Mutex
	items map[string]*domain.StockItem
	order []string
}

var _ Ledger = (*Memory)(nil)

// NewMemory seeds a ledger from the given items, preserving their order
// for List.
func NewMemory(seed []domain.StockItem) *Memory {
	m := &Memory{items: make(map[string]*domain.StockItem, len(seed))}
	for _, item := range seed {
		it := item
		m.items[it.ID] = &it
		m.order = append(m.order, it.ID)
	}
	return m
}

func (m *Memory) Get(productID string) (domain.StockItem, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	item, ok := m.items[productID]
	if !ok {
		return domain.StockItem{}, false
	}
	return *item, true
}

// List returns copies of all items in seed order.
func (m *Memory) List() []domain.StockItem {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]domain.StockItem, 0, len(m.order))
	for _, id := range m.order {
		out = append(out, *m.items[id])
	}
	return out
}

// Decrement removes up to amount units and reports how many were
// actually removed, so callers can observe clamping at zero.
func (m *Memory) Decrement(productID string, amount int) (int, error) {
	if amount < 0 {
		return 0, fmt.Errorf("decrement %s: negative amount %d", productID, amount)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	item, ok := m.items[productID]
	if !ok {
		return 0, fmt.Errorf("decrement %s: %w", productID, domain.ErrNotFound)
	}
	removed := min(amount, item.Count)
	item.Count -= removed
	return removed, nil
}

// SetCount overwrites the available count, floored at zero.
func (m *Memory) SetCount(productID string, count int) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	item, ok := m.items[productID]
	if !ok {
		return fmt.Errorf("set count %s: %w", productID, domain.ErrNotFound)
	}
	item.Count = max(0, count)
	return nil
}

// Add adjusts the count by a signed delta, floored at zero.
func (m *Memory) Add(productID string, delta int) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	item, ok := m.items[productID]
	if !ok {
		return fmt.Errorf("add stock %s: %w", productID, domain.ErrNotFound)
	}
	item.Count = max(0, item.Count+delta)
	return nil
}
