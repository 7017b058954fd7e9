package flow

import (
	"fmt"
	"strings"

	"freshstock/internal/catalog"
	"freshstock/internal/domain"
	"freshstock/internal/service/cart"
)

type EmployeeScreen string

const (
	EmployeeLogin         EmployeeScreen = "login"
	EmployeeDashboard     EmployeeScreen = "dashboard"
	EmployeeBookOrder     EmployeeScreen = "book-order"
	EmployeeCompleteOrder EmployeeScreen = "complete-order"
	EmployeeManageStock   EmployeeScreen = "manage-stock"
	EmployeeOrderSuccess  EmployeeScreen = "order-success"
)

var employeeTransitions = map[EmployeeScreen][]EmployeeScreen{
	EmployeeLogin:         {EmployeeDashboard},
	EmployeeDashboard:     {EmployeeBookOrder, EmployeeCompleteOrder, EmployeeManageStock, EmployeeLogin},
	EmployeeBookOrder:     {EmployeeOrderSuccess, EmployeeDashboard, EmployeeLogin},
	EmployeeCompleteOrder: {EmployeeDashboard, EmployeeLogin},
	EmployeeManageStock:   {EmployeeDashboard, EmployeeLogin},
	EmployeeOrderSuccess:  {EmployeeDashboard, EmployeeLogin},
}

// Employee is one outlet employee's session.
type Employee struct {
	deps          Deps
	screen        EmployeeScreen
	authenticated bool
	outletID      string
	cart          *cart.Cart
	basket        *domain.Basket
	placed        *domain.Order
}

func NewEmployee(deps Deps) *Employee {
	return &Employee{
		deps:   deps,
		screen: EmployeeLogin,
		cart:   cart.New(deps.Ledger),
	}
}

func (e *Employee) Screen() EmployeeScreen { return e.screen }

// Login accepts any non-empty outlet id and passkey pair. This is an
// explicit stub, not a security boundary.
func (e *Employee) Login(outletID, passkey string) error {
	if err := e.require(EmployeeLogin); err != nil {
		return err
	}
	if strings.TrimSpace(outletID) == "" || strings.TrimSpace(passkey) == "" {
		return domain.ErrEmptyCredentials
	}
	e.authenticated = true
	e.outletID = strings.TrimSpace(outletID)
	return e.goTo(EmployeeDashboard)
}

// Logout resets the session back to the login screen.
func (e *Employee) Logout() error {
	if err := e.requireAuth(); err != nil {
		return err
	}
	if err := e.goTo(EmployeeLogin); err != nil {
		return err
	}
	e.authenticated = false
	e.outletID = ""
	e.cart.Clear()
	e.basket = nil
	e.placed = nil
	return nil
}

// Navigate fans out from the dashboard to one of its three task
// screens.
func (e *Employee) Navigate(target EmployeeScreen) error {
	if err := e.requireAuth(); err != nil {
		return err
	}
	if err := e.require(EmployeeDashboard); err != nil {
		return err
	}
	switch target {
	case EmployeeBookOrder, EmployeeCompleteOrder, EmployeeManageStock:
		return e.goTo(target)
	default:
		return fmt.Errorf("%w: dashboard -> %s", domain.ErrInvalidTransition, target)
	}
}

// SelectBasket pre-populates the order with the basket's products at
// quantity zero.
func (e *Employee) SelectBasket(basketID string) error {
	if err := e.requireAuth(); err != nil {
		return err
	}
	if err := e.require(EmployeeBookOrder); err != nil {
		return err
	}
	basket, ok := catalog.BasketByID(basketID)
	if !ok {
		return fmt.Errorf("basket %s: %w", basketID, domain.ErrNotFound)
	}
	e.basket = &basket
	e.cart.SelectBasket(basket)
	return nil
}

func (e *Employee) SetQuantity(productID string, qty int) error {
	if err := e.requireAuth(); err != nil {
		return err
	}
	if err := e.require(EmployeeBookOrder); err != nil {
		return err
	}
	e.cart.SetQuantity(productID, qty)
	return nil
}

func (e *Employee) Adjust(productID string, delta int) error {
	if err := e.requireAuth(); err != nil {
		return err
	}
	if err := e.require(EmployeeBookOrder); err != nil {
		return err
	}
	e.cart.Adjust(productID, delta)
	return nil
}

// Book submits the current order for the given booking time.
func (e *Employee) Book(bookingTime string) error {
	if err := e.requireAuth(); err != nil {
		return err
	}
	if err := e.require(EmployeeBookOrder); err != nil {
		return err
	}
	order, err := e.deps.Orders.PlaceEmployee(e.cart.Items(), bookingTime)
	if err != nil {
		return err
	}
	e.placed = &order
	e.cart.Clear()
	e.basket = nil
	return e.goTo(EmployeeOrderSuccess)
}

// CompleteOrder marks a pending order completed; the flow stays on the
// complete-order screen so more can be closed out.
func (e *Employee) CompleteOrder(orderID string) error {
	if err := e.requireAuth(); err != nil {
		return err
	}
	if err := e.require(EmployeeCompleteOrder); err != nil {
		return err
	}
	_, err := e.deps.Orders.Complete(orderID)
	return err
}

func (e *Employee) SetStockCount(productID string, count int) error {
	if err := e.requireAuth(); err != nil {
		return err
	}
	if err := e.require(EmployeeManageStock); err != nil {
		return err
	}
	return e.deps.Ledger.SetCount(productID, count)
}

func (e *Employee) AdjustStock(productID string, delta int) error {
	if err := e.requireAuth(); err != nil {
		return err
	}
	if err := e.require(EmployeeManageStock); err != nil {
		return err
	}
	return e.deps.Ledger.Add(productID, delta)
}

// Done dismisses the success screen.
func (e *Employee) Done() error {
	if err := e.requireAuth(); err != nil {
		return err
	}
	if err := e.require(EmployeeOrderSuccess); err != nil {
		return err
	}
	e.placed = nil
	return e.goTo(EmployeeDashboard)
}

func (e *Employee) Back() error {
	if err := e.requireAuth(); err != nil {
		return err
	}
	if err := e.require(EmployeeBookOrder, EmployeeCompleteOrder, EmployeeManageStock); err != nil {
		return err
	}
	return e.goTo(EmployeeDashboard)
}

// EmployeeSnapshot is what the current employee screen renders.
type EmployeeSnapshot struct {
	Screen        EmployeeScreen  `json:"screen"`
	Authenticated bool            `json:"authenticated"`
	OutletID      string          `json:"outletId,omitempty"`
	Baskets       []domain.Basket `json:"baskets,omitempty"`
	Basket        *domain.Basket  `json:"basket,omitempty"`
	Stock         []StockLine     `json:"stock,omitempty"`
	Cart          []cart.Entry    `json:"cart,omitempty"`
	BookingSlots  []string        `json:"bookingSlots,omitempty"`
	CartCount     int             `json:"cartCount"`
	CartTotal     int64           `json:"cartTotal"`
	PendingOrders []domain.Order  `json:"pendingOrders,omitempty"`
	PlacedOrder   *domain.Order   `json:"placedOrder,omitempty"`
}

func (e *Employee) Snapshot() EmployeeSnapshot {
	snap := EmployeeSnapshot{
		Screen:        e.screen,
		Authenticated: e.authenticated,
		OutletID:      e.outletID,
		CartCount:     e.cart.ItemCount(),
		CartTotal:     e.cart.Total(),
	}
	switch e.screen {
	case EmployeeBookOrder:
		snap.Baskets = catalog.Baskets()
		snap.Basket = e.basket
		snap.Stock = stockLines(e.deps.Ledger, e.cart)
		snap.Cart = e.cart.Entries()
		snap.BookingSlots = catalog.PickupSlots()
	case EmployeeCompleteOrder:
		snap.PendingOrders = e.deps.Registry.Pending()
	case EmployeeManageStock:
		snap.Stock = stockLines(e.deps.Ledger, e.cart)
	case EmployeeOrderSuccess:
		snap.PlacedOrder = e.placed
	}
	return snap
}

func (e *Employee) requireAuth() error {
	if !e.authenticated {
		return domain.ErrNotAuthenticated
	}
	return nil
}

func (e *Employee) require(screens ...EmployeeScreen) error {
	for _, s := range screens {
		if e.screen == s {
			return nil
		}
	}
	return fmt.Errorf("%w: on %s", domain.ErrInvalidTransition, e.screen)
}

func (e *Employee) goTo(target EmployeeScreen) error {
	for _, allowed := range employeeTransitions[e.screen] {
		if allowed == target {
			e.screen = target
			return nil
		}
	}
	return fmt.Errorf("%w: %s -> %s", domain.ErrInvalidTransition, e.screen, target)
}
