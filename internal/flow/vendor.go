package flow

import (
	"fmt"

	"freshstock/internal/catalog"
	"freshstock/internal/domain"
	"freshstock/internal/service/cart"
)

type VendorScreen string

const (
	VendorSplash       VendorScreen = "splash"
	VendorSelectStore  VendorScreen = "select-store"
	VendorSelectType   VendorScreen = "select-vendor-type"
	VendorBrowse       VendorScreen = "browse-products"
	VendorPickupTime   VendorScreen = "pickup-time"
	VendorConfirmation VendorScreen = "confirmation"
	VendorPastOrders   VendorScreen = "past-orders"
)

// vendorTransitions is the full transition table for the vendor flow.
// Every screen change goes through it.
var vendorTransitions = map[VendorScreen][]VendorScreen{
	VendorSplash:       {VendorSelectStore, VendorPastOrders},
	VendorSelectStore:  {VendorSelectType, VendorSplash},
	VendorSelectType:   {VendorBrowse, VendorSelectStore},
	VendorBrowse:       {VendorPickupTime, VendorSelectType},
	VendorPickupTime:   {VendorConfirmation, VendorBrowse},
	VendorConfirmation: {VendorSplash},
	VendorPastOrders:   {VendorBrowse, VendorSplash},
}

// vendorBack maps each screen to its back target.
var vendorBack = map[VendorScreen]VendorScreen{
	VendorSelectStore: VendorSplash,
	VendorSelectType:  VendorSelectStore,
	VendorBrowse:      VendorSelectType,
	VendorPickupTime:  VendorBrowse,
	VendorPastOrders:  VendorSplash,
}

// Vendor is one vendor's ordering session.
type Vendor struct {
	deps   Deps
	screen VendorScreen
	cart   *cart.Cart

	store      *domain.Store
	vendorType *domain.VendorType
	placed     *domain.Order // order shown on the confirmation screen
	last       *domain.Order // last confirmed order, shown on the splash banner
}

func NewVendor(deps Deps) *Vendor {
	return &Vendor{
		deps:   deps,
		screen: VendorSplash,
		cart:   cart.New(deps.Ledger),
	}
}

func (v *Vendor) Screen() VendorScreen { return v.screen }

// StartNewOrder leaves the splash screen with a clean slate.
func (v *Vendor) StartNewOrder() error {
	if err := v.require(VendorSplash); err != nil {
		return err
	}
	v.cart.Clear()
	v.store = nil
	v.vendorType = nil
	v.placed = nil
	v.last = nil
	return v.goTo(VendorSelectStore)
}

// SelectStore picks a pickup store; closed stores are rejected.
func (v *Vendor) SelectStore(storeID string) error {
	if err := v.require(VendorSelectStore); err != nil {
		return err
	}
	store, ok := catalog.StoreByID(storeID)
	if !ok {
		return fmt.Errorf("store %s: %w", storeID, domain.ErrNotFound)
	}
	if !store.IsOpen {
		return fmt.Errorf("store %s: %w", storeID, domain.ErrStoreClosed)
	}
	v.store = &store
	return v.goTo(VendorSelectType)
}

func (v *Vendor) SelectVendorType(typeID string) error {
	if err := v.require(VendorSelectType); err != nil {
		return err
	}
	vt, ok := catalog.VendorTypeByID(typeID)
	if !ok {
		return fmt.Errorf("vendor type %s: %w", typeID, domain.ErrNotFound)
	}
	v.vendorType = &vt
	return v.goTo(VendorBrowse)
}

func (v *Vendor) SetQuantity(productID string, qty int) error {
	if err := v.require(VendorBrowse); err != nil {
		return err
	}
	v.cart.SetQuantity(productID, qty)
	return nil
}

func (v *Vendor) Adjust(productID string, delta int) error {
	if err := v.require(VendorBrowse); err != nil {
		return err
	}
	v.cart.Adjust(productID, delta)
	return nil
}

// RequestCallback acknowledges a place-order-on-call request. The
// confirmation dialog and its auto-dismiss are view concerns.
func (v *Vendor) RequestCallback() error {
	return v.require(VendorBrowse)
}

// ProceedToPickup moves to slot selection; the cart must hold at least
// one item.
func (v *Vendor) ProceedToPickup() error {
	if err := v.require(VendorBrowse); err != nil {
		return err
	}
	if v.cart.ItemCount() == 0 {
		return domain.ErrEmptyCart
	}
	return v.goTo(VendorPickupTime)
}

// PlaceOrder submits the cart for the chosen slot. On success the cart
// is discarded and the flow shows the confirmation screen.
func (v *Vendor) PlaceOrder(pickupSlot string) error {
	if err := v.require(VendorPickupTime); err != nil {
		return err
	}
	if v.store == nil {
		return fmt.Errorf("no store selected: %w", domain.ErrNotFound)
	}
	order, err := v.deps.Orders.PlaceVendor(v.cart.Items(), v.store.ID, pickupSlot)
	if err != nil {
		return err
	}
	v.placed = &order
	v.last = &order
	v.cart.Clear()
	return v.goTo(VendorConfirmation)
}

func (v *Vendor) ShowPastOrders() error {
	if err := v.require(VendorSplash); err != nil {
		return err
	}
	return v.goTo(VendorPastOrders)
}

// Reorder re-enters browsing with the cart rebuilt from a past order.
// Out-of-stock products are dropped and quantities capped at current
// stock.
func (v *Vendor) Reorder(orderID string) error {
	if err := v.require(VendorPastOrders); err != nil {
		return err
	}
	items, err := v.deps.Orders.Reorder(orderID)
	if err != nil {
		return err
	}
	past, err := v.deps.Registry.Get(orderID)
	if err != nil {
		return err
	}
	if past.StoreID != "" {
		if store, ok := catalog.StoreByID(past.StoreID); ok {
			v.store = &store
		}
	}
	v.cart.Clear()
	for _, item := range items {
		v.cart.SetQuantity(item.ProductID, item.Quantity)
	}
	return v.goTo(VendorBrowse)
}

// GoHome returns to the splash screen from confirmation or past
// orders, dismissing the confirmation if one is showing.
func (v *Vendor) GoHome() error {
	if err := v.require(VendorConfirmation, VendorPastOrders); err != nil {
		return err
	}
	if v.screen == VendorConfirmation {
		v.cart.Clear()
		v.store = nil
		v.vendorType = nil
		v.placed = nil
	}
	return v.goTo(VendorSplash)
}

func (v *Vendor) Back() error {
	target, ok := vendorBack[v.screen]
	if !ok {
		return fmt.Errorf("%w: no back target from %s", domain.ErrInvalidTransition, v.screen)
	}
	return v.goTo(target)
}

// VendorSnapshot is what the current vendor screen renders.
type VendorSnapshot struct {
	Screen      VendorScreen        `json:"screen"`
	Store       *domain.Store       `json:"store,omitempty"`
	VendorType  *domain.VendorType  `json:"vendorType,omitempty"`
	Stores      []domain.Store      `json:"stores,omitempty"`
	VendorTypes []domain.VendorType `json:"vendorTypes,omitempty"`
	Stock       []StockLine         `json:"stock,omitempty"`
	Cart        []cart.Entry        `json:"cart,omitempty"`
	PickupSlots []string            `json:"pickupSlots,omitempty"`
	CartCount   int                 `json:"cartCount"`
	CartTotal   int64               `json:"cartTotal"`
	PlacedOrder *domain.Order       `json:"placedOrder,omitempty"`
	LastOrder   *domain.Order       `json:"lastOrder,omitempty"`
	PastOrders  []domain.Order      `json:"pastOrders,omitempty"`
}

func (v *Vendor) Snapshot() VendorSnapshot {
	snap := VendorSnapshot{
		Screen:     v.screen,
		Store:      v.store,
		VendorType: v.vendorType,
		CartCount:  v.cart.ItemCount(),
		CartTotal:  v.cart.Total(),
	}
	switch v.screen {
	case VendorSplash:
		snap.LastOrder = v.last
	case VendorSelectStore:
		snap.Stores = catalog.Stores()
	case VendorSelectType:
		snap.VendorTypes = catalog.VendorTypes()
	case VendorBrowse:
		snap.Stock = stockLines(v.deps.Ledger, v.cart)
		snap.Cart = v.cart.Entries()
	case VendorPickupTime:
		snap.PickupSlots = catalog.PickupSlots()
		snap.Cart = v.cart.Entries()
	case VendorConfirmation:
		snap.PlacedOrder = v.placed
	case VendorPastOrders:
		snap.PastOrders = v.deps.Registry.FromSource(domain.SourceVendor)
	}
	return snap
}

func (v *Vendor) require(screens ...VendorScreen) error {
	for _, s := range screens {
		if v.screen == s {
			return nil
		}
	}
	return fmt.Errorf("%w: on %s", domain.ErrInvalidTransition, v.screen)
}

func (v *Vendor) goTo(target VendorScreen) error {
	for _, allowed := range vendorTransitions[v.screen] {
		if allowed == target {
			v.screen = target
			return nil
		}
	}
	return fmt.Errorf("%w: %s -> %s", domain.ErrInvalidTransition, v.screen, target)
}
