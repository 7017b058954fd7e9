package flow

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"freshstock/internal/catalog"
	"freshstock/internal/domain"
	orderrepo "freshstock/internal/repository/order"
	stockrepo "freshstock/internal/repository/stock"
	ordersvc "freshstock/internal/service/order"
)

const slot = "10:00 AM - 11:00 AM"

func newTestDeps() Deps {
	ledger := stockrepo.NewMemory(catalog.Stock())
	registry := orderrepo.NewRegistry()
	return Deps{
		Ledger:   ledger,
		Registry: registry,
		Orders:   ordersvc.New(ledger, registry),
	}
}

func placeVendorOrder(t *testing.T, v *Vendor) domain.Order {
	t.Helper()
	require.NoError(t, v.StartNewOrder())
	require.NoError(t, v.SelectStore("s1"))
	require.NoError(t, v.SelectVendorType("chaat"))
	require.NoError(t, v.SetQuantity("tomato", 2))
	require.NoError(t, v.ProceedToPickup())
	require.NoError(t, v.PlaceOrder(slot))
	snap := v.Snapshot()
	require.NotNil(t, snap.PlacedOrder)
	return *snap.PlacedOrder
}

func TestVendor_HappyPath(t *testing.T) {
	deps := newTestDeps()
	v := NewVendor(deps)
	assert.Equal(t, VendorSplash, v.Screen())

	order := placeVendorOrder(t, v)

	assert.Equal(t, VendorConfirmation, v.Screen())
	assert.Equal(t, domain.SourceVendor, order.Source)
	assert.Equal(t, "s1", order.StoreID)
	assert.Equal(t, slot, order.PickupSlot)

	item, _ := deps.Ledger.Get("tomato")
	assert.Equal(t, 58, item.Count, "stock deducted at creation")

	// Cart is discarded on submit.
	assert.Zero(t, v.Snapshot().CartCount)

	require.NoError(t, v.GoHome())
	assert.Equal(t, VendorSplash, v.Screen())
	snap := v.Snapshot()
	require.NotNil(t, snap.LastOrder, "splash keeps the confirmation banner")
	assert.Equal(t, order.ID, snap.LastOrder.ID)
}

func TestVendor_ActionsValidateScreen(t *testing.T) {
	tests := []struct {
		name string
		act  func(*Vendor) error
	}{
		{"select store from splash", func(v *Vendor) error { return v.SelectStore("s1") }},
		{"set quantity from splash", func(v *Vendor) error { return v.SetQuantity("tomato", 1) }},
		{"place order from splash", func(v *Vendor) error { return v.PlaceOrder(slot) }},
		{"checkout from splash", func(v *Vendor) error { return v.ProceedToPickup() }},
		{"reorder from splash", func(v *Vendor) error { return v.Reorder("A-0001") }},
		{"go home from splash", func(v *Vendor) error { return v.GoHome() }},
		{"back from splash", func(v *Vendor) error { return v.Back() }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := NewVendor(newTestDeps())

			assert.ErrorIs(t, tt.act(v), domain.ErrInvalidTransition)
			assert.Equal(t, VendorSplash, v.Screen(), "failed action must not move the flow")
		})
	}
}

func TestVendor_SelectStoreRejectsClosed(t *testing.T) {
	v := NewVendor(newTestDeps())
	require.NoError(t, v.StartNewOrder())

	err := v.SelectStore("s3")

	assert.ErrorIs(t, err, domain.ErrStoreClosed)
	assert.Equal(t, VendorSelectStore, v.Screen())
}

func TestVendor_CheckoutRequiresItems(t *testing.T) {
	v := NewVendor(newTestDeps())
	require.NoError(t, v.StartNewOrder())
	require.NoError(t, v.SelectStore("s1"))
	require.NoError(t, v.SelectVendorType("chaat"))

	err := v.ProceedToPickup()

	assert.ErrorIs(t, err, domain.ErrEmptyCart)
	assert.Equal(t, VendorBrowse, v.Screen())
}

func TestVendor_PlaceOrderWithoutSlotStaysOnPickup(t *testing.T) {
	v := NewVendor(newTestDeps())
	require.NoError(t, v.StartNewOrder())
	require.NoError(t, v.SelectStore("s1"))
	require.NoError(t, v.SelectVendorType("chaat"))
	require.NoError(t, v.SetQuantity("tomato", 1))
	require.NoError(t, v.ProceedToPickup())

	err := v.PlaceOrder("")

	assert.ErrorIs(t, err, domain.ErrMissingTimeSlot)
	assert.Equal(t, VendorPickupTime, v.Screen())
}

func TestVendor_Back(t *testing.T) {
	v := NewVendor(newTestDeps())
	require.NoError(t, v.StartNewOrder())
	require.NoError(t, v.SelectStore("s1"))

	require.NoError(t, v.Back())
	assert.Equal(t, VendorSelectStore, v.Screen())
	require.NoError(t, v.Back())
	assert.Equal(t, VendorSplash, v.Screen())
}

func TestVendor_PastOrdersAndReorder(t *testing.T) {
	deps := newTestDeps()
	v := NewVendor(deps)
	order := placeVendorOrder(t, v)
	require.NoError(t, v.GoHome())

	// Drop tomato stock below the historical quantity.
	require.NoError(t, deps.Ledger.SetCount("tomato", 1))

	require.NoError(t, v.ShowPastOrders())
	snap := v.Snapshot()
	require.Len(t, snap.PastOrders, 1)
	assert.Equal(t, order.ID, snap.PastOrders[0].ID)

	require.NoError(t, v.Reorder(order.ID))
	assert.Equal(t, VendorBrowse, v.Screen())

	snap = v.Snapshot()
	assert.Equal(t, 1, snap.CartCount, "reorder quantity capped at current stock")
	require.NotNil(t, snap.Store, "store restored from the past order")
	assert.Equal(t, "s1", snap.Store.ID)
}

func TestVendor_SnapshotPerScreen(t *testing.T) {
	v := NewVendor(newTestDeps())

	require.NoError(t, v.StartNewOrder())
	assert.Len(t, v.Snapshot().Stores, 4)

	require.NoError(t, v.SelectStore("s1"))
	assert.Len(t, v.Snapshot().VendorTypes, 6)

	require.NoError(t, v.SelectVendorType("momos"))
	snap := v.Snapshot()
	assert.Len(t, snap.Stock, 12)
	require.NotNil(t, snap.VendorType)
	assert.Equal(t, "momos", snap.VendorType.ID)

	require.NoError(t, v.SetQuantity("noodles", 2))
	require.NoError(t, v.ProceedToPickup())
	assert.Len(t, v.Snapshot().PickupSlots, 8)
}

func TestVendor_RequestCallbackOnlyWhileBrowsing(t *testing.T) {
	v := NewVendor(newTestDeps())
	assert.ErrorIs(t, v.RequestCallback(), domain.ErrInvalidTransition)

	require.NoError(t, v.StartNewOrder())
	require.NoError(t, v.SelectStore("s1"))
	require.NoError(t, v.SelectVendorType("chaat"))
	assert.NoError(t, v.RequestCallback())
	assert.Equal(t, VendorBrowse, v.Screen(), "callback request does not navigate")
}
