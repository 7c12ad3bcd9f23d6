package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/teerthankarjewels/storefront_api/internal/utils"
	"github.com/teerthankarjewels/storefront_api/pkg/commerce"
)

type fakeWishlistAPI struct {
	items    []commerce.WishlistItem
	addCalls int
	failLoad error
}

func (f *fakeWishlistAPI) GetWishlist(ctx context.Context, token string) ([]commerce.WishlistItem, error) {
	if f.failLoad != nil {
		return nil, f.failLoad
	}
	return append([]commerce.WishlistItem(nil), f.items...), nil
}

func (f *fakeWishlistAPI) AddToWishlist(ctx context.Context, token, productID string) error {
	f.addCalls++
	f.items = append(f.items, commerce.WishlistItem{
		ID:        commerce.FlexID(productID),
		ProductID: commerce.FlexID(productID),
		Product:   commerce.CartProduct{Name: "Item " + productID},
	})
	return nil
}

func (f *fakeWishlistAPI) RemoveFromWishlist(ctx context.Context, token, productID string) error {
	out := f.items[:0]
	for _, item := range f.items {
		if string(item.ProductID) != productID {
			out = append(out, item)
		}
	}
	f.items = out
	return nil
}

func TestWishlistAdd(t *testing.T) {
	api := &fakeWishlistAPI{}
	svc := NewWishlistService(api)

	wishlist, err := svc.Add(context.Background(), "tok", "p1")
	require.NoError(t, err)
	require.Len(t, wishlist.Entries, 1)
	assert.True(t, wishlist.Contains("p1"))
	assert.Equal(t, 1, api.addCalls)
}

func TestWishlistAddDuplicateIsNoOp(t *testing.T) {
	api := &fakeWishlistAPI{}
	svc := NewWishlistService(api)

	_, err := svc.Add(context.Background(), "tok", "p1")
	require.NoError(t, err)

	wishlist, err := svc.Add(context.Background(), "tok", "p1")
	require.NoError(t, err)
	assert.Len(t, wishlist.Entries, 1)
	// Duplicate add short-circuits before the remote call.
	assert.Equal(t, 1, api.addCalls)
}

func TestWishlistRemove(t *testing.T) {
	api := &fakeWishlistAPI{}
	svc := NewWishlistService(api)

	_, err := svc.Add(context.Background(), "tok", "p1")
	require.NoError(t, err)
	_, err = svc.Add(context.Background(), "tok", "p2")
	require.NoError(t, err)

	wishlist, err := svc.Remove(context.Background(), "tok", "p1")
	require.NoError(t, err)
	assert.False(t, wishlist.Contains("p1"))
	assert.True(t, wishlist.Contains("p2"))
}

func TestWishlistLoadFailureWrapsNetworkError(t *testing.T) {
	api := &fakeWishlistAPI{failLoad: errors.New("timeout")}
	svc := NewWishlistService(api)

	_, err := svc.Load(context.Background(), "tok")
	assert.ErrorIs(t, err, utils.ErrNetworkFailure)
}
