// Package order holds the in-memory order registry: an append-only,
// newest-first collection of orders whose only mutable field is status.
package order

import (
	"fmt"
	"iter"
	"slices"
	"strings"
	"sync"

	"freshstock/internal/domain"
)

type Registry struct {
	mu sync.RWMutex
	// Appended in arrival order; every read traverses newest-first.
	orders []*domain.Order
}

func NewRegistry() *Registry {
	return &Registry{}
}

// Add records the order. Amortized O(1); newest-first ordering is a
// property of reads, not of storage.
func (r *Registry) Add(o domain.Order) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.orders = append(r.orders, &o)
}

func (r *Registry) Get(id string) (domain.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for i := len(r.orders) - 1; i >= 0; i-- {
		if o := r.orders[i]; o.ID == id {
			return *o, nil
		}
	}
	return domain.Order{}, fmt.Errorf("order %s: %w", id, domain.ErrNotFound)
}

// Complete marks the order completed. A missing id is reported as
// ErrNotFound rather than silently ignored; completing an order that is
// already completed is a no-op and not an error.
func (r *Registry) Complete(id string) (domain.Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := len(r.orders) - 1; i >= 0; i-- {
		if o := r.orders[i]; o.ID == id {
			o.Status = domain.OrderCompleted
			return *o, nil
		}
	}
	return domain.Order{}, fmt.Errorf("complete order %s: %w", id, domain.ErrNotFound)
}

// Predicate selects orders for Filter.
type Predicate func(domain.Order) bool

func ByStatus(status domain.OrderStatus) Predicate {
	return func(o domain.Order) bool { return o.Status == status }
}

func BySource(source domain.OrderSource) Predicate {
	return func(o domain.Order) bool { return o.Source == source }
}

func IDContains(fragment string) Predicate {
	fragment = strings.ToLower(fragment)
	return func(o domain.Order) bool {
		return strings.Contains(strings.ToLower(o.ID), fragment)
	}
}

func And(preds ...Predicate) Predicate {
	return func(o domain.Order) bool {
		for _, p := range preds {
			if !p(o) {
				return false
			}
		}
		return true
	}
}

// Filter returns a restartable sequence of matching orders, newest
// first. The sequence iterates over a snapshot taken when Filter is
// called, so callers may mutate the registry mid-iteration.
func (r *Registry) Filter(pred Predicate) iter.Seq[domain.Order] {
	r.mu.RLock()
	snapshot := make([]domain.Order, 0, len(r.orders))
	for i := len(r.orders) - 1; i >= 0; i-- {
		snapshot = append(snapshot, *r.orders[i])
	}
	r.mu.RUnlock()

	return func(yield func(domain.Order) bool) {
		for _, o := range snapshot {
			if pred != nil && !pred(o) {
				continue
			}
			if !yield(o) {
				return
			}
		}
	}
}

// Pending lists pending orders, newest-first.
func (r *Registry) Pending() []domain.Order {
	return slices.Collect(r.Filter(ByStatus(domain.OrderPending)))
}

// FromSource lists orders placed by the given role, newest-first.
func (r *Registry) FromSource(source domain.OrderSource) []domain.Order {
	return slices.Collect(r.Filter(BySource(source)))
}

func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.orders)
}
