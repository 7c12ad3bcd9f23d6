package models

// WishlistEntry is a saved product with denormalized display fields.
// Membership is a set keyed by product ID.
type WishlistEntry struct {
	EntryID   string  `json:"entryId"`
	ProductID string  `json:"productId"`
	Name      string  `json:"name"`
	Price     float64 `json:"price"`
	Image     string  `json:"image,omitempty"`
}

// Wishlist is the server's view of a user's wishlist after the latest reload.
type Wishlist struct {
	Entries []WishlistEntry `json:"entries"`
}

// Contains reports set membership by product ID.
func (w *Wishlist) Contains(productID string) bool {
	for _, e := range w.Entries {
		if e.ProductID == productID {
			return true
		}
	}
	return false
}
