package commerce

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"time"

	"github.com/rs/zerolog/log"
)

// APIError is a failure reported by the commerce backend: either a non-2xx
// HTTP status or an envelope with status=false.
type APIError struct {
	HTTPStatus int
	Message    string
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("commerce api: %s (http %d)", e.Message, e.HTTPStatus)
	}
	return fmt.Sprintf("commerce api: http %d", e.HTTPStatus)
}

// Config holds the client settings.
type Config struct {
	BaseURL string
	Timeout time.Duration
}

// Client is a typed HTTP client for the commerce backend. It carries no
// credentials of its own; the caller's bearer token is passed per request.
type Client struct {
	httpClient *http.Client
	baseURL    string
	debug      bool
}

// NewClient constructs a commerce client with sane defaults.
func NewClient(cfg Config) *Client {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &Client{
		httpClient: &http.Client{Timeout: timeout},
		baseURL:    cfg.BaseURL,
		debug:      os.Getenv("ENV") == "development",
	}
}

// GetProducts fetches the full product list.
func (c *Client) GetProducts(ctx context.Context) ([]Product, error) {
	var products []Product
	if err := c.do(ctx, http.MethodGet, "/products", "", nil, &products); err != nil {
		return nil, err
	}
	return products, nil
}

// GetCategories fetches the full category list.
func (c *Client) GetCategories(ctx context.Context) ([]Category, error) {
	var categories []Category
	if err := c.do(ctx, http.MethodGet, "/categories", "", nil, &categories); err != nil {
		return nil, err
	}
	return categories, nil
}

// GetCartItems returns the caller's cart rows.
func (c *Client) GetCartItems(ctx context.Context, token string) ([]CartItem, error) {
	var items []CartItem
	if err := c.do(ctx, http.MethodGet, "/cart/getItems", token, nil, &items); err != nil {
		return nil, err
	}
	return items, nil
}

// AddCartItem adds a product to the caller's cart.
func (c *Client) AddCartItem(ctx context.Context, token string, req AddCartItemRequest) error {
	return c.do(ctx, http.MethodPost, "/cart/addItem", token, req, nil)
}

// UpdateCartItem sets the quantity of a cart line.
func (c *Client) UpdateCartItem(ctx context.Context, token, productID string, quantity int) error {
	body := map[string]int{"quantity": quantity}
	return c.do(ctx, http.MethodPut, "/cart/updateItem/"+url.PathEscape(productID), token, body, nil)
}

// DeleteCartItem removes a cart line.
func (c *Client) DeleteCartItem(ctx context.Context, token, productID string) error {
	return c.do(ctx, http.MethodDelete, "/cart/deleteItem/"+url.PathEscape(productID), token, nil, nil)
}

// GetWishlist returns the caller's wishlist rows.
func (c *Client) GetWishlist(ctx context.Context, token string) ([]WishlistItem, error) {
	var items []WishlistItem
	if err := c.do(ctx, http.MethodGet, "/wishlist/getWishlist", token, nil, &items); err != nil {
		return nil, err
	}
	return items, nil
}

// AddToWishlist saves a product to the caller's wishlist.
func (c *Client) AddToWishlist(ctx context.Context, token, productID string) error {
	body := map[string]string{"product_id": productID}
	return c.do(ctx, http.MethodPost, "/wishlist/addToWishlist", token, body, nil)
}

// RemoveFromWishlist removes a product from the caller's wishlist.
func (c *Client) RemoveFromWishlist(ctx context.Context, token, productID string) error {
	return c.do(ctx, http.MethodDelete, "/wishlist/removeWishlist/"+url.PathEscape(productID), token, nil, nil)
}

// PlaceOrder submits an order.
func (c *Client) PlaceOrder(ctx context.Context, token string, req PlaceOrderRequest) (*PlaceOrderResponse, error) {
	var resp PlaceOrderResponse
	if err := c.do(ctx, http.MethodPost, "/orders/placeOrder", token, req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// VerifyPayment asks the backend to verify a completed online payment.
func (c *Client) VerifyPayment(ctx context.Context, token string, req VerifyPaymentRequest) error {
	return c.do(ctx, http.MethodPost, "/orders/verifyPayment", token, req, nil)
}

// GetMyOrders returns the caller's order history.
func (c *Client) GetMyOrders(ctx context.Context, token string) ([]Order, error) {
	var orders []Order
	if err := c.do(ctx, http.MethodGet, "/orders/myOrders", token, nil, &orders); err != nil {
		return nil, err
	}
	return orders, nil
}

// GetOrderDetails returns a single order.
func (c *Client) GetOrderDetails(ctx context.Context, token, orderID string) (*Order, error) {
	var order Order
	if err := c.do(ctx, http.MethodGet, "/orders/details/"+url.PathEscape(orderID), token, nil, &order); err != nil {
		return nil, err
	}
	return &order, nil
}

// Login authenticates with email and password.
func (c *Client) Login(ctx context.Context, email, password string) (*LoginResult, error) {
	body := map[string]string{"email": email, "password": password}
	var result LoginResult
	if err := c.do(ctx, http.MethodPost, "/login", "", body, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// GoogleCallback exchanges a verified Google ID token for a backend session.
func (c *Client) GoogleCallback(ctx context.Context, credential string) (*LoginResult, error) {
	body := map[string]string{"credential": credential}
	var result LoginResult
	if err := c.do(ctx, http.MethodPost, "/auth/google/callback", "", body, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// GetProfile returns the caller's profile.
func (c *Client) GetProfile(ctx context.Context, token string) (*Profile, error) {
	var profile Profile
	if err := c.do(ctx, http.MethodGet, "/auth/me", token, nil, &profile); err != nil {
		return nil, err
	}
	return &profile, nil
}

// Logout invalidates the backend token.
func (c *Client) Logout(ctx context.Context, token string) error {
	return c.do(ctx, http.MethodPost, "/logout", token, nil, nil)
}

// ForwardPaymentWebhook relays a verified payment-gateway webhook body to
// the backend. The original signature header travels along so the backend
// can re-verify.
func (c *Client) ForwardPaymentWebhook(ctx context.Context, body []byte, signature string) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/orders/paymentWebhook", bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Razorpay-Signature", signature)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("webhook relay failed: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return &APIError{HTTPStatus: resp.StatusCode, Message: "webhook relay rejected"}
	}
	return nil
}

// do performs an HTTP request against the backend, unwraps the standard
// {status, message, data} envelope, and decodes data into result when
// result is non-nil.
func (c *Client) do(ctx context.Context, method, endpoint, token string, body, result any) error {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to marshal request: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+endpoint, reader)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	if c.debug {
		log.Debug().Str("method", method).Str("endpoint", c.baseURL+endpoint).Msg("[COMMERCE] Outgoing request")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		apiErr := &APIError{HTTPStatus: resp.StatusCode}
		var env envelope
		if json.Unmarshal(raw, &env) == nil {
			apiErr.Message = env.Message
		}
		return apiErr
	}

	var env envelope
	if err := json.Unmarshal(raw, &env); err != nil {
		return fmt.Errorf("failed to decode response envelope: %w", err)
	}
	if !env.Status {
		return &APIError{HTTPStatus: resp.StatusCode, Message: env.Message}
	}
	if result == nil {
		return nil
	}
	if len(env.Data) == 0 || string(env.Data) == "null" {
		return nil
	}
	if err := json.Unmarshal(env.Data, result); err != nil {
		return fmt.Errorf("failed to decode response data: %w", err)
	}
	return nil
}
