package service

import (
	"context"

	"github.com/rs/zerolog/log"

	"github.com/teerthankarjewels/storefront_api/internal/models"
	"github.com/teerthankarjewels/storefront_api/internal/utils"
	"github.com/teerthankarjewels/storefront_api/pkg/commerce"
)

// cartAPI is the slice of the commerce client the cart needs.
type cartAPI interface {
	GetCartItems(ctx context.Context, token string) ([]commerce.CartItem, error)
	AddCartItem(ctx context.Context, token string, req commerce.AddCartItemRequest) error
	UpdateCartItem(ctx context.Context, token, productID string, quantity int) error
	DeleteCartItem(ctx context.Context, token, productID string) error
}

// productLookup resolves live stock and price from the catalog snapshot.
type productLookup interface {
	GetProductByID(id string) (*models.Product, bool)
}

// CartService reconciles cart mutations against live stock. It keeps no
// state of its own: every operation is scoped by the caller's backend
// token, and every mutation is followed by a full reload so the returned
// cart is always the server's view, never local arithmetic. Two rapid
// mutations from the same user are not serialized against each other.
type CartService struct {
	api     cartAPI
	catalog productLookup
}

// NewCartService constructs a CartService.
func NewCartService(api cartAPI, catalog productLookup) *CartService {
	return &CartService{api: api, catalog: catalog}
}

// Load fetches the current cart from the backend.
func (s *CartService) Load(ctx context.Context, token string) (*models.Cart, error) {
	items, err := s.api.GetCartItems(ctx, token)
	if err != nil {
		return nil, utils.WrapNetwork(err)
	}
	return toCart(items), nil
}

// Add puts quantity units of a product into the cart. The request is
// rejected before any remote call when the cart already holds all the
// stock the catalog reports, so a failed add leaves the cart untouched.
func (s *CartService) Add(ctx context.Context, token, productID string, quantity int) (*models.Cart, error) {
	if quantity < 1 {
		return nil, &utils.ValidationError{Field: "quantity", Message: "must be at least 1"}
	}

	product, ok := s.catalog.GetProductByID(productID)
	if !ok {
		return nil, utils.ErrProductNotFound
	}

	cart, err := s.Load(ctx, token)
	if err != nil {
		return nil, err
	}

	current := cart.QuantityOf(productID)
	if current+quantity > product.StockQuantity {
		return nil, &utils.InsufficientStockError{
			ProductID: productID,
			Available: product.StockQuantity - current,
		}
	}

	err = s.api.AddCartItem(ctx, token, commerce.AddCartItemRequest{
		ProductID:  productID,
		Quantity:   quantity,
		TotalPrice: product.Price * float64(quantity),
	})
	if err != nil {
		return nil, utils.WrapNetwork(err)
	}

	return s.Load(ctx, token)
}

// UpdateQuantity sets the quantity of a cart line. A quantity below 1 is
// treated as removal; a quantity above live stock is rejected.
func (s *CartService) UpdateQuantity(ctx context.Context, token, productID string, quantity int) (*models.Cart, error) {
	if quantity < 1 {
		return s.Remove(ctx, token, productID)
	}

	product, ok := s.catalog.GetProductByID(productID)
	if !ok {
		return nil, utils.ErrProductNotFound
	}
	if quantity > product.StockQuantity {
		return nil, &utils.InsufficientStockError{
			ProductID: productID,
			Available: product.StockQuantity,
		}
	}

	if err := s.api.UpdateCartItem(ctx, token, productID, quantity); err != nil {
		return nil, utils.WrapNetwork(err)
	}
	return s.Load(ctx, token)
}

// Remove deletes a cart line.
func (s *CartService) Remove(ctx context.Context, token, productID string) (*models.Cart, error) {
	if err := s.api.DeleteCartItem(ctx, token, productID); err != nil {
		return nil, utils.WrapNetwork(err)
	}
	return s.Load(ctx, token)
}

// Clear removes every line, best effort: individual delete failures are
// logged and skipped, and the final reload decides what is left.
func (s *CartService) Clear(ctx context.Context, token string) (*models.Cart, error) {
	cart, err := s.Load(ctx, token)
	if err != nil {
		return nil, err
	}
	for _, line := range cart.Lines {
		if err := s.api.DeleteCartItem(ctx, token, line.ProductID); err != nil {
			log.Warn().Err(err).Str("product_id", line.ProductID).Msg("cart clear: delete failed")
		}
	}
	return s.Load(ctx, token)
}
