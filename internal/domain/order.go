package domain

import "time"

type OrderStatus string

const (
	OrderPending   OrderStatus = "pending"
	OrderCompleted OrderStatus = "completed"
)

type OrderSource string

const (
	SourceVendor   OrderSource = "vendor"
	SourceEmployee OrderSource = "employee"
)

type OrderItem struct {
	ProductID string `json:"productId"`
	Quantity  int    `json:"quantity"`
}

// Order is immutable once built except for its status, which moves
// pending -> completed exactly once. Total is fixed at creation and
// never recomputed from current prices.
type Order struct {
	ID          string      `json:"id"`
	Items       []OrderItem `json:"items"`
	Total       int64       `json:"total"`
	Status      OrderStatus `json:"status"`
	Source      OrderSource `json:"source"`
	BookingTime string      `json:"bookingTime,omitempty"`
	PickupSlot  string      `json:"pickupSlot,omitempty"`
	StoreID     string      `json:"storeId,omitempty"`
	CreatedAt   time.Time   `json:"createdAt"`
}
