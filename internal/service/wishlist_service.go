package service

import (
	"context"

	"github.com/teerthankarjewels/storefront_api/internal/models"
	"github.com/teerthankarjewels/storefront_api/internal/utils"
	"github.com/teerthankarjewels/storefront_api/pkg/commerce"
)

// wishlistAPI is the slice of the commerce client the wishlist needs.
type wishlistAPI interface {
	GetWishlist(ctx context.Context, token string) ([]commerce.WishlistItem, error)
	AddToWishlist(ctx context.Context, token, productID string) error
	RemoveFromWishlist(ctx context.Context, token, productID string) error
}

// WishlistService tracks wishlist membership with the same
// write-then-reload pattern as the cart: mutate remotely, then take the
// backend's snapshot as the new truth.
type WishlistService struct {
	api wishlistAPI
}

// NewWishlistService constructs a WishlistService.
func NewWishlistService(api wishlistAPI) *WishlistService {
	return &WishlistService{api: api}
}

// Load fetches the current wishlist from the backend.
func (s *WishlistService) Load(ctx context.Context, token string) (*models.Wishlist, error) {
	items, err := s.api.GetWishlist(ctx, token)
	if err != nil {
		return nil, utils.WrapNetwork(err)
	}
	return toWishlist(items), nil
}

// Add saves a product. Adding a product that is already saved is a no-op:
// membership is a set, so no duplicate remote call is issued.
func (s *WishlistService) Add(ctx context.Context, token, productID string) (*models.Wishlist, error) {
	wishlist, err := s.Load(ctx, token)
	if err != nil {
		return nil, err
	}
	if wishlist.Contains(productID) {
		return wishlist, nil
	}
	if err := s.api.AddToWishlist(ctx, token, productID); err != nil {
		return nil, utils.WrapNetwork(err)
	}
	return s.Load(ctx, token)
}

// Remove deletes a saved product.
func (s *WishlistService) Remove(ctx context.Context, token, productID string) (*models.Wishlist, error) {
	if err := s.api.RemoveFromWishlist(ctx, token, productID); err != nil {
		return nil, utils.WrapNetwork(err)
	}
	return s.Load(ctx, token)
}
