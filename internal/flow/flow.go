// Package flow implements the screen flow controllers for the two
// roles. Each flow is a finite state machine over named screens: every
// user action validates the current screen against a transition table
// and either mutates session state or fails with ErrInvalidTransition.
// A flow is the view-model of the app: it exposes the current screen,
// a snapshot of the data that screen renders, and the named actions a
// view may forward. It renders nothing itself.
package flow

import (
	"freshstock/internal/domain"
	orderrepo "freshstock/internal/repository/order"
	stockrepo "freshstock/internal/repository/stock"
	ordersvc "freshstock/internal/service/order"
)

// Deps are the shared collaborators injected into every flow. Both
// roles see the same ledger and registry; there is no per-role copy of
// stock.
type Deps struct {
	Ledger   stockrepo.Ledger
	Registry *orderrepo.Registry
	Orders   *ordersvc.Service
}

// StockLine is a ledger row decorated with the session cart's quantity
// for it, as browse and book screens render it.
type StockLine struct {
	domain.StockItem
	InCart int `json:"inCart"`
}

type cartReader interface {
	Quantity(productID string) int
}

func stockLines(ledger stockrepo.Reader, cart cartReader) []StockLine {
	items := ledger.List()
	lines := make([]StockLine, 0, len(items))
	for _, item := range items {
		lines = append(lines, StockLine{StockItem: item, InCart: cart.Quantity(item.ID)})
	}
	return lines
}
