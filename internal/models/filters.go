package models

// SortKey selects the ordering applied after filtering.
type SortKey string

const (
	SortFeatured  SortKey = "featured"
	SortPriceAsc  SortKey = "price-asc"
	SortPriceDesc SortKey = "price-desc"
	SortNewest    SortKey = "newest"
)

// Valid reports whether the sort key is one of the supported values.
func (k SortKey) Valid() bool {
	switch k {
	case SortFeatured, SortPriceAsc, SortPriceDesc, SortNewest:
		return true
	}
	return false
}

// DefaultPriceCeiling is the upper bound applied when the caller does not
// narrow the price range.
const DefaultPriceCeiling = 1_000_000

// FilterSpec is the combination of criteria applied to the catalog. Zero
// values for Category, MetalType and Search mean "not filtered". The price
// range is inclusive on both ends; an inverted range (min > max) matches
// nothing rather than failing.
type FilterSpec struct {
	Category  string  `json:"category,omitempty"`
	PriceMin  float64 `json:"priceMin"`
	PriceMax  float64 `json:"priceMax"`
	MetalType string  `json:"metalType,omitempty"`
	Search    string  `json:"search,omitempty"`
	SortBy    SortKey `json:"sortBy"`
}

// DefaultFilterSpec returns the spec applied to an unfiltered catalog view.
func DefaultFilterSpec() FilterSpec {
	return FilterSpec{
		PriceMin: 0,
		PriceMax: DefaultPriceCeiling,
		SortBy:   SortFeatured,
	}
}
