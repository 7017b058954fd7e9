package domain

// Product describes a catalog entry as shown to both roles.
type Product struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Image string `json:"image,omitempty"`
	Price int64  `json:"price"`
	Unit  string `json:"unit"`
}

// StockItem is a product together with its currently available count.
type StockItem struct {
	Product
	Count int `json:"count"`
}

// Store is a pickup location. Closed stores cannot be selected.
type Store struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Area   string `json:"area"`
	Hours  string `json:"hours"`
	IsOpen bool   `json:"isOpen"`
}

// VendorType is a cuisine category a vendor identifies with.
type VendorType struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Basket is a curated list of product ids used to pre-populate a cart.
type Basket struct {
	ID      string   `json:"id"`
	Name    string   `json:"name"`
	ItemIDs []string `json:"itemIds"`
}
