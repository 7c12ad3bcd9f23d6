package models

import "time"

// Product is a catalog item. Catalog entities are loaded once per snapshot
// and treated as read-only; the backend stays the authority for stock.
type Product struct {
	ID            string    `json:"id"`
	Name          string    `json:"name"`
	Description   string    `json:"description"`
	CategoryID    string    `json:"categoryId"`
	SubcategoryID string    `json:"subcategoryId,omitempty"`
	Collections   []string  `json:"collections,omitempty"`
	ProductCode   string    `json:"productCode,omitempty"`
	Price         float64   `json:"price"`
	OriginalPrice float64   `json:"originalPrice,omitempty"`
	Images        []string  `json:"images"`
	MetalType     string    `json:"metalType"`
	StockQuantity int       `json:"stockQuantity"`
	Featured      bool      `json:"featured"`
	Rating        float64   `json:"rating"`
	Reviews       int       `json:"reviews"`
	CreatedAt     time.Time `json:"createdAt,omitempty"`
	UpdatedAt     time.Time `json:"updatedAt,omitempty"`
}

// InStock reports whether at least one unit is purchasable.
func (p *Product) InStock() bool {
	return p.StockQuantity > 0
}

// InCollection reports whether the product carries the given collection tag.
func (p *Product) InCollection(tag string) bool {
	for _, c := range p.Collections {
		if c == tag {
			return true
		}
	}
	return false
}

// Newest returns the timestamp used for "newest" ordering. UpdatedAt wins
// when set, otherwise CreatedAt.
func (p *Product) Newest() time.Time {
	if !p.UpdatedAt.IsZero() {
		return p.UpdatedAt
	}
	return p.CreatedAt
}
