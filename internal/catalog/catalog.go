// Package catalog holds the static reference data the demo runs on:
// stock items, stores, vendor types, baskets and pickup slots. The data
// is read-only; mutable stock counts live in the stock ledger, which is
// seeded from Stock at startup.
package catalog

import (
	"slices"

	"freshstock/internal/domain"
)

var stockItems = []domain.StockItem{
	{Product: domain.Product{ID: "potato", Name: "Potato", Image: "https://picsum.photos/id/1080/200", Price: 30, Unit: "kg"}, Count: 100},
	{Product: domain.Product{ID: "onion", Name: "Onion", Image: "https://picsum.photos/id/106/200", Price: 40, Unit: "kg"}, Count: 80},
	{Product: domain.Product{ID: "tomato", Name: "Tomato", Image: "https://picsum.photos/id/1079/200", Price: 50, Unit: "kg"}, Count: 60},
	{Product: domain.Product{ID: "noodles", Name: "Noodles", Image: "https://picsum.photos/id/431/200", Price: 25, Unit: "pack"}, Count: 50},
	{Product: domain.Product{ID: "capsicum", Name: "Capsicum", Image: "https://picsum.photos/id/1015/200", Price: 60, Unit: "kg"}, Count: 40},
	{Product: domain.Product{ID: "coriander", Name: "Coriander", Image: "https://picsum.photos/id/1016/200", Price: 10, Unit: "bunch"}, Count: 150},
	{Product: domain.Product{ID: "bread", Name: "Bread Loaf", Image: "https://picsum.photos/id/312/200", Price: 45, Unit: "loaf"}, Count: 30},
	{Product: domain.Product{ID: "butter", Name: "Butter", Image: "https://picsum.photos/id/292/200", Price: 55, Unit: "pack"}, Count: 45},
	{Product: domain.Product{ID: "cheese", Name: "Cheese Slices", Image: "https://picsum.photos/id/319/200", Price: 120, Unit: "pack"}, Count: 25},
	{Product: domain.Product{ID: "paneer", Name: "Paneer", Image: "https://picsum.photos/id/405/200", Price: 100, Unit: "200g"}, Count: 35},
	{Product: domain.Product{ID: "maida", Name: "Refined Flour", Image: "https://picsum.photos/id/433/200", Price: 50, Unit: "kg"}, Count: 20},
	{Product: domain.Product{ID: "cabbage", Name: "Cabbage", Image: "https://picsum.photos/id/575/200", Price: 25, Unit: "pc"}, Count: 30},
}

var stores = []domain.Store{
	{ID: "s1", Name: "Jayanagar Central", Area: "Jayanagar 4th Block", Hours: "8am - 9pm", IsOpen: true},
	{ID: "s2", Name: "Koramangala Hub", Area: "Koramangala 5th Block", Hours: "9am - 10pm", IsOpen: true},
	{ID: "s3", Name: "Indiranagar Depot", Area: "Indiranagar 100ft Road", Hours: "8am - 8pm", IsOpen: false},
	{ID: "s4", Name: "Marathahalli Express", Area: "Outer Ring Road", Hours: "7am - 11pm", IsOpen: true},
}

var vendorTypes = []domain.VendorType{
	{ID: "pani-puri", Name: "Pani Puri"},
	{ID: "chaat", Name: "Chaat"},
	{ID: "pav-bhaji", Name: "Pav Bhaji"},
	{ID: "sandwiches", Name: "Sandwiches"},
	{ID: "momos", Name: "Momos"},
	{ID: "other", Name: "Other"},
}

var baskets = []domain.Basket{
	{ID: "pav-bhaji-basket", Name: "Pav Bhaji Basket", ItemIDs: []string{"potato", "onion", "tomato", "capsicum", "butter", "bread"}},
	{ID: "chaat-basket", Name: "Chaat Basket", ItemIDs: []string{"potato", "onion", "coriander", "tomato"}},
	{ID: "chinese-basket", Name: "Chinese Basket", ItemIDs: []string{"noodles", "cabbage", "capsicum", "onion"}},
	{ID: "sandwich-basket", Name: "Sandwich Basket", ItemIDs: []string{"bread", "tomato", "onion", "cheese", "butter"}},
}

var pickupSlots = []string{
	"9:00 AM - 10:00 AM",
	"10:00 AM - 11:00 AM",
	"11:00 AM - 12:00 PM",
	"12:00 PM - 1:00 PM",
	"2:00 PM - 3:00 PM",
	"3:00 PM - 4:00 PM",
	"4:00 PM - 5:00 PM",
	"5:00 PM - 6:00 PM",
}

// Stock returns a fresh copy of the initial stock table, suitable for
// seeding a ledger without aliasing the catalog.
func Stock() []domain.StockItem {
	return slices.Clone(stockItems)
}

func Stores() []domain.Store {
	return slices.Clone(stores)
}

func StoreByID(id string) (domain.Store, bool) {
	for _, s := range stores {
		if s.ID == id {
			return s, true
		}
	}
	return domain.Store{}, false
}

func VendorTypes() []domain.VendorType {
	return slices.Clone(vendorTypes)
}

func VendorTypeByID(id string) (domain.VendorType, bool) {
	for _, vt := range vendorTypes {
		if vt.ID == id {
			return vt, true
		}
	}
	return domain.VendorType{}, false
}

func Baskets() []domain.Basket {
	return slices.Clone(baskets)
}

func BasketByID(id string) (domain.Basket, bool) {
	for _, b := range baskets {
		if b.ID == id {
			return b, true
		}
	}
	return domain.Basket{}, false
}

func PickupSlots() []string {
	return slices.Clone(pickupSlots)
}

func ValidPickupSlot(slot string) bool {
	return slices.Contains(pickupSlots, slot)
}
