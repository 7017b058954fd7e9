package order

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"freshstock/internal/domain"
	orderrepo "freshstock/internal/repository/order"
	stockrepo "freshstock/internal/repository/stock"
)

const slot = "9:00 AM - 10:00 AM"

func newTestService() (*Service, *stockrepo.Memory, *orderrepo.Registry) {
	ledger := stockrepo.NewMemory([]domain.StockItem{
		{Product: domain.Product{ID: "tomato", Name: "Tomato", Price: 40, Unit: "kg"}, Count: 5},
		{Product: domain.Product{ID: "onion", Name: "Onion", Price: 30, Unit: "kg"}, Count: 10},
	})
	registry := orderrepo.NewRegistry()
	return New(ledger, registry), ledger, registry
}

func TestPlaceVendor_DecrementsStockAtCreation(t *testing.T) {
	svc, ledger, registry := newTestService()

	order, err := svc.PlaceVendor([]domain.OrderItem{{ProductID: "tomato", Quantity: 2}}, "s1", slot)

	require.NoError(t, err)
	assert.Equal(t, domain.OrderPending, order.Status)
	assert.Equal(t, domain.SourceVendor, order.Source)
	assert.Equal(t, "s1", order.StoreID)
	assert.Equal(t, slot, order.PickupSlot)
	assert.Equal(t, int64(80), order.Total)
	assert.False(t, order.CreatedAt.IsZero())

	item, _ := ledger.Get("tomato")
	assert.Equal(t, 3, item.Count, "stock drops immediately, before completion")
	assert.Equal(t, 1, registry.Len())
}

func TestPlaceVendor_EmptyCart(t *testing.T) {
	svc, ledger, registry := newTestService()

	_, err := svc.PlaceVendor(nil, "s1", slot)
	assert.ErrorIs(t, err, domain.ErrEmptyCart)

	// Zero-quantity lines do not count as items.
	_, err = svc.PlaceVendor([]domain.OrderItem{{ProductID: "tomato", Quantity: 0}}, "s1", slot)
	assert.ErrorIs(t, err, domain.ErrEmptyCart)

	item, _ := ledger.Get("tomato")
	assert.Equal(t, 5, item.Count, "failed submission touches no stock")
	assert.Zero(t, registry.Len())
}

func TestPlaceVendor_SlotValidation(t *testing.T) {
	svc, _, _ := newTestService()
	items := []domain.OrderItem{{ProductID: "tomato", Quantity: 1}}

	_, err := svc.PlaceVendor(items, "s1", "")
	assert.ErrorIs(t, err, domain.ErrMissingTimeSlot)

	_, err = svc.PlaceVendor(items, "s1", "25:00 PM - 26:00 PM")
	assert.ErrorIs(t, err, domain.ErrMissingTimeSlot)
}

func TestPlaceVendor_StoreGating(t *testing.T) {
	svc, _, _ := newTestService()
	items := []domain.OrderItem{{ProductID: "tomato", Quantity: 1}}

	_, err := svc.PlaceVendor(items, "nope", slot)
	assert.ErrorIs(t, err, domain.ErrNotFound)

	// s3 (Indiranagar Depot) is closed in the catalog.
	_, err = svc.PlaceVendor(items, "s3", slot)
	assert.ErrorIs(t, err, domain.ErrStoreClosed)
}

func TestPlaceEmployee(t *testing.T) {
	svc, ledger, _ := newTestService()

	order, err := svc.PlaceEmployee([]domain.OrderItem{{ProductID: "onion", Quantity: 3}}, slot)

	require.NoError(t, err)
	assert.Equal(t, domain.SourceEmployee, order.Source)
	assert.Equal(t, slot, order.BookingTime)
	assert.Empty(t, order.PickupSlot)
	assert.Equal(t, int64(90), order.Total)

	item, _ := ledger.Get("onion")
	assert.Equal(t, 7, item.Count)
}

func TestPlaceEmployee_MissingBookingTime(t *testing.T) {
	svc, _, _ := newTestService()

	_, err := svc.PlaceEmployee([]domain.OrderItem{{ProductID: "onion", Quantity: 1}}, "")

	assert.ErrorIs(t, err, domain.ErrMissingBookingTime)
}

func TestOrderIDs_MonotonicPerSource(t *testing.T) {
	svc, _, _ := newTestService()
	items := []domain.OrderItem{{ProductID: "tomato", Quantity: 1}}

	first, err := svc.PlaceVendor(items, "s1", slot)
	require.NoError(t, err)
	second, err := svc.PlaceVendor(items, "s1", slot)
	require.NoError(t, err)
	booked, err := svc.PlaceEmployee(items, slot)
	require.NoError(t, err)

	assert.Equal(t, "A-0001", first.ID)
	assert.Equal(t, "A-0002", second.ID)
	assert.Equal(t, "E-0001", booked.ID, "employee counter is independent")
}

func TestTotalFixedAtCreation(t *testing.T) {
	svc, ledger, registry := newTestService()

	order, err := svc.PlaceVendor([]domain.OrderItem{{ProductID: "tomato", Quantity: 2}}, "s1", slot)
	require.NoError(t, err)

	// Later stock changes must not affect the recorded total.
	require.NoError(t, ledger.SetCount("tomato", 0))
	got, err := registry.Get(order.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(80), got.Total)
}

func TestComplete_DelegatesToRegistry(t *testing.T) {
	svc, ledger, _ := newTestService()

	order, err := svc.PlaceVendor([]domain.OrderItem{{ProductID: "tomato", Quantity: 2}}, "s1", slot)
	require.NoError(t, err)

	done, err := svc.Complete(order.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.OrderCompleted, done.Status)

	item, _ := ledger.Get("tomato")
	assert.Equal(t, 3, item.Count, "completion does not deduct again")

	_, err = svc.Complete("A-0404")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestReorder_CapsAtCurrentStock(t *testing.T) {
	svc, ledger, _ := newTestService()

	order, err := svc.PlaceVendor([]domain.OrderItem{
		{ProductID: "tomato", Quantity: 4},
		{ProductID: "onion", Quantity: 2},
	}, "s1", slot)
	require.NoError(t, err)

	// tomato went 5 -> 1, onion 10 -> 8; make onion unavailable.
	require.NoError(t, ledger.SetCount("onion", 0))

	items, err := svc.Reorder(order.ID)
	require.NoError(t, err)

	require.Len(t, items, 1, "out-of-stock products are dropped")
	assert.Equal(t, "tomato", items[0].ProductID)
	assert.Equal(t, 1, items[0].Quantity, "quantity capped at current stock")
}

func TestReorder_UnknownOrder(t *testing.T) {
	svc, _, _ := newTestService()

	_, err := svc.Reorder("A-0404")

	assert.ErrorIs(t, err, domain.ErrNotFound)
}
