// Package order builds and places orders: validation, id generation,
// total computation, registry append and the stock decrement that goes
// with it.
package order

import (
	"fmt"
	"sync"
	"time"

	"freshstock/internal/catalog"
	"freshstock/internal/domain"
)

type ledger interface {
	Get(productID string) (domain.StockItem, bool)
	Decrement(productID string, amount int) (int, error)
}

type registry interface {
	Add(o domain.Order)
	Get(id string) (domain.Order, error)
	Complete(id string) (domain.Order, error)
}

// Service is the order builder. Stock is decremented when an order is
// created, not when it completes, so a placed order can never claim
// stock that a later one also gets.
type Service struct {
	ledger   ledger
	registry registry

	mu          sync.Mutex
	vendorSeq   int
	employeeSeq int
}

func New(ledger ledger, registry registry) *Service {
	return &Service{ledger: ledger, registry: registry}
}

// PlaceVendor validates and places a vendor order against an open
// store and a known pickup slot.
func (s *Service) PlaceVendor(items []domain.OrderItem, storeID, pickupSlot string) (domain.Order, error) {
	store, ok := catalog.StoreByID(storeID)
	if !ok {
		return domain.Order{}, fmt.Errorf("store %s: %w", storeID, domain.ErrNotFound)
	}
	if !store.IsOpen {
		return domain.Order{}, fmt.Errorf("store %s: %w", storeID, domain.ErrStoreClosed)
	}
	if pickupSlot == "" || !catalog.ValidPickupSlot(pickupSlot) {
		return domain.Order{}, domain.ErrMissingTimeSlot
	}
	order, err := s.build(items, domain.SourceVendor)
	if err != nil {
		return domain.Order{}, err
	}
	order.PickupSlot = pickupSlot
	order.StoreID = store.ID
	s.place(order)
	return order, nil
}

// PlaceEmployee validates and places an employee-booked order.
func (s *Service) PlaceEmployee(items []domain.OrderItem, bookingTime string) (domain.Order, error) {
	if bookingTime == "" {
		return domain.Order{}, domain.ErrMissingBookingTime
	}
	order, err := s.build(items, domain.SourceEmployee)
	if err != nil {
		return domain.Order{}, err
	}
	order.BookingTime = bookingTime
	s.place(order)
	return order, nil
}

// Complete marks a placed order completed. Stock was already deducted
// at creation, so this only transitions status.
func (s *Service) Complete(id string) (domain.Order, error) {
	return s.registry.Complete(id)
}

// Reorder rebuilds order items from a historical order: products no
// longer in stock are dropped and quantities are capped at the current
// count.
func (s *Service) Reorder(id string) ([]domain.OrderItem, error) {
	past, err := s.registry.Get(id)
	if err != nil {
		return nil, err
	}
	items := make([]domain.OrderItem, 0, len(past.Items))
	for _, item := range past.Items {
		stock, ok := s.ledger.Get(item.ProductID)
		if !ok || stock.Count == 0 {
			continue
		}
		items = append(items, domain.OrderItem{
			ProductID: item.ProductID,
			Quantity:  min(item.Quantity, stock.Count),
		})
	}
	return items, nil
}

func (s *Service) build(items []domain.OrderItem, source domain.OrderSource) (domain.Order, error) {
	kept := make([]domain.OrderItem, 0, len(items))
	var total int64
	for _, item := range items {
		if item.Quantity <= 0 {
			continue
		}
		stock, ok := s.ledger.Get(item.ProductID)
		if !ok {
			return domain.Order{}, fmt.Errorf("product %s: %w", item.ProductID, domain.ErrNotFound)
		}
		kept = append(kept, item)
		total += stock.Price * int64(item.Quantity)
	}
	if len(kept) == 0 {
		return domain.Order{}, domain.ErrEmptyCart
	}
	return domain.Order{
		ID:        s.nextID(source),
		Items:     kept,
		Total:     total,
		Status:    domain.OrderPending,
		Source:    source,
		CreatedAt: time.Now().UTC(),
	}, nil
}

// place deducts stock first, then appends. Decrements clamp at zero,
// matching the policy that oversized requests are adjusted silently.
func (s *Service) place(order domain.Order) {
	for _, item := range order.Items {
		// Unknown ids were rejected in build; the ledger never deletes items.
		_, _ = s.ledger.Decrement(item.ProductID, item.Quantity)
	}
	s.registry.Add(order)
}

// nextID returns a monotonic, role-prefixed order id: A-0001, A-0002
// for vendors and E-0001, E-0002 for employee bookings.
func (s *Service) nextID(source domain.OrderSource) string {
	s.mu.Lock()
	defer s.mu.Unlock()
	if source == domain.SourceEmployee {
		s.employeeSeq++
		return fmt.Sprintf("E-%04d", s.employeeSeq)
	}
	s.vendorSeq++
	return fmt.Sprintf("A-%04d", s.vendorSeq)
}
