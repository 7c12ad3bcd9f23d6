package models

// Category groups products for browsing. Slug is unique and URL-safe.
type Category struct {
	ID            string        `json:"id"`
	Name          string        `json:"name"`
	Slug          string        `json:"slug"`
	Description   string        `json:"description,omitempty"`
	Image         string        `json:"image,omitempty"`
	Featured      bool          `json:"featured"`
	Subcategories []Subcategory `json:"subcategories,omitempty"`
}

// Subcategory is a nested refinement of a Category.
type Subcategory struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Slug        string `json:"slug"`
	Description string `json:"description,omitempty"`
}
