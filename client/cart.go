package client

import (
	"boutique/models"

	"github.com/shopspring/decimal"
)

// Cart holds the client's cart contents. Mutations are synchronous state
// transitions; the cart keeps at most one line per product id.
type Cart struct {
	items []models.CartItem
}

// NewCart creates an empty cart.
func NewCart() *Cart {
	return &Cart{}
}

// AddProduct adds one unit of the product, merging into the existing line
// when the product is already in the cart.
func (c *Cart) AddProduct(product models.Product) {
	for i := range c.items {
		if c.items[i].Product.ID == product.ID {
			c.items[i].Quantity++
			return
		}
	}
	c.items = append(c.items, models.CartItem{Product: product, Quantity: 1})
}

// UpdateQuantity sets the quantity for a product line, flooring at 1.
// Unknown product ids are ignored.
func (c *Cart) UpdateQuantity(productID string, quantity int) {
	if quantity < 1 {
		quantity = 1
	}
	for i := range c.items {
		if c.items[i].Product.ID == productID {
			c.items[i].Quantity = quantity
			return
		}
	}
}

// RemoveItem drops the line for the given product id.
func (c *Cart) RemoveItem(productID string) {
	for i := range c.items {
		if c.items[i].Product.ID == productID {
			c.items = append(c.items[:i], c.items[i+1:]...)
			return
		}
	}
}

// Items returns a copy of the cart lines.
func (c *Cart) Items() []models.CartItem {
	items := make([]models.CartItem, len(c.items))
	copy(items, c.items)
	return items
}

// Count returns the total number of units across all lines.
func (c *Cart) Count() int {
	count := 0
	for _, item := range c.items {
		count += item.Quantity
	}
	return count
}

// IsEmpty reports whether the cart has no lines.
func (c *Cart) IsEmpty() bool {
	return len(c.items) == 0
}

// Total sums price × quantity across the cart in exact decimal arithmetic.
// Lines with an unparsable price contribute nothing.
func (c *Cart) Total() decimal.Decimal {
	total := decimal.Zero
	for _, item := range c.items {
		price, err := decimal.NewFromString(item.Product.Price)
		if err != nil {
			continue
		}
		total = total.Add(price.Mul(decimal.NewFromInt(int64(item.Quantity))))
	}
	return total
}

// Replace swaps the cart contents for the given lines.
func (c *Cart) Replace(items []models.CartItem) {
	c.items = make([]models.CartItem, len(items))
	copy(c.items, items)
}

// ClearAll empties the cart.
func (c *Cart) ClearAll() {
	c.items = nil
}
