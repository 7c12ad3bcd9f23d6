package models

// CartLine is a single cart entry. UnitPrice is a snapshot taken at add
// time; TotalPrice is always UnitPrice * Quantity as reported by the
// backend, which stays the source of truth for cart contents.
type CartLine struct {
	ItemID     string   `json:"itemId"`
	ProductID  string   `json:"productId"`
	Name       string   `json:"name"`
	Images     []string `json:"images,omitempty"`
	Quantity   int      `json:"quantity"`
	UnitPrice  float64  `json:"unitPrice"`
	TotalPrice float64  `json:"totalPrice"`
}

// Cart is the server's view of a user's cart after the latest reconcile.
type Cart struct {
	Lines []CartLine `json:"lines"`
}

// Count returns the total number of units across all lines.
func (c *Cart) Count() int {
	n := 0
	for _, l := range c.Lines {
		n += l.Quantity
	}
	return n
}

// Subtotal returns the sum of line totals.
func (c *Cart) Subtotal() float64 {
	var total float64
	for _, l := range c.Lines {
		total += l.TotalPrice
	}
	return total
}

// QuantityOf returns the quantity of the given product in the cart, 0 when
// the product is not present.
func (c *Cart) QuantityOf(productID string) int {
	for _, l := range c.Lines {
		if l.ProductID == productID {
			return l.Quantity
		}
	}
	return 0
}
