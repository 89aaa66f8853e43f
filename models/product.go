package models

// Product is a catalog entry. The price is kept as a base-10 string and
// parsed to a decimal before any arithmetic.
type Product struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Price       string `json:"price"`
	Image       string `json:"image"`
	Category    string `json:"category"`
}

// CartItem pairs a product with a quantity. A cart holds at most one
// CartItem per product id.
type CartItem struct {
	Product  Product `json:"product"`
	Quantity int     `json:"quantity"`
}
