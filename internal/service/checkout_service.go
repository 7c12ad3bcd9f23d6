package service

import (
	"context"
	"regexp"

	razorpayutils "github.com/razorpay/razorpay-go/utils"
	"github.com/rs/zerolog/log"

	"github.com/teerthankarjewels/storefront_api/internal/config"
	"github.com/teerthankarjewels/storefront_api/internal/models"
	"github.com/teerthankarjewels/storefront_api/internal/utils"
	"github.com/teerthankarjewels/storefront_api/pkg/commerce"
)

// checkoutAPI is the slice of the commerce client checkout needs.
type checkoutAPI interface {
	PlaceOrder(ctx context.Context, token string, req commerce.PlaceOrderRequest) (*commerce.PlaceOrderResponse, error)
	VerifyPayment(ctx context.Context, token string, req commerce.VerifyPaymentRequest) error
	GetMyOrders(ctx context.Context, token string) ([]commerce.Order, error)
	GetOrderDetails(ctx context.Context, token, orderID string) (*commerce.Order, error)
}

// cartReconciler is what checkout needs from the cart.
type cartReconciler interface {
	Load(ctx context.Context, token string) (*models.Cart, error)
	Clear(ctx context.Context, token string) (*models.Cart, error)
}

// Indian mobile numbers: 10 digits starting 6-9.
var phonePattern = regexp.MustCompile(`^[6-9]\d{9}$`)

// CheckoutService validates the shipping form, prices the order from the
// reconciled cart, and hands it to the backend. COD orders confirm
// immediately; online payments come back as a payment intent that the
// client completes through the gateway widget and then verifies.
type CheckoutService struct {
	api      checkoutAPI
	cart     cartReconciler
	catalog  productLookup
	razorpay config.RazorpayConfig
	rules    config.CheckoutConfig
}

// NewCheckoutService constructs a CheckoutService.
func NewCheckoutService(api checkoutAPI, cart cartReconciler, catalog productLookup, razorpay config.RazorpayConfig, rules config.CheckoutConfig) *CheckoutService {
	return &CheckoutService{api: api, cart: cart, catalog: catalog, razorpay: razorpay, rules: rules}
}

// ShippingFee returns the shipping cost for a given subtotal.
func (s *CheckoutService) ShippingFee(subtotal float64) float64 {
	if subtotal >= s.rules.FreeShippingThreshold {
		return 0
	}
	return s.rules.ShippingFee
}

func validateCheckout(req *models.CheckoutRequest) error {
	required := []struct{ field, value string }{
		{"fullName", req.FullName},
		{"phone", req.Phone},
		{"address_line1", req.AddressLine1},
		{"city", req.City},
		{"state", req.State},
		{"pincode", req.Pincode},
	}
	for _, r := range required {
		if r.value == "" {
			return &utils.ValidationError{Field: r.field, Message: "is required"}
		}
	}
	if !phonePattern.MatchString(req.Phone) {
		return &utils.ValidationError{Field: "phone", Message: "must be a valid 10-digit Indian mobile number"}
	}
	switch req.PaymentMethod {
	case models.PaymentCOD, models.PaymentOnline:
	default:
		return &utils.ValidationError{Field: "payment_method", Message: "must be COD or ONLINE"}
	}
	return nil
}

// PlaceOrder validates the request, builds the order payload from the
// current cart, and submits it.
func (s *CheckoutService) PlaceOrder(ctx context.Context, token string, req models.CheckoutRequest) (*models.OrderConfirmation, error) {
	if err := validateCheckout(&req); err != nil {
		return nil, err
	}

	cart, err := s.cart.Load(ctx, token)
	if err != nil {
		return nil, err
	}
	if len(cart.Lines) == 0 {
		return nil, utils.ErrEmptyCart
	}

	subtotal := cart.Subtotal()
	shipping := s.ShippingFee(subtotal)
	total := subtotal + shipping

	items := make([]commerce.PlaceOrderItem, 0, len(cart.Lines))
	for _, line := range cart.Lines {
		item := commerce.PlaceOrderItem{
			ProductID: line.ProductID,
			Quantity:  line.Quantity,
		}
		if product, ok := s.catalog.GetProductByID(line.ProductID); ok {
			item.ProductCode = product.ProductCode
		}
		items = append(items, item)
	}

	resp, err := s.api.PlaceOrder(ctx, token, commerce.PlaceOrderRequest{
		FullName:      req.FullName,
		Phone:         req.Phone,
		AddressLine1:  req.AddressLine1,
		AddressLine2:  req.AddressLine2,
		City:          req.City,
		State:         req.State,
		Pincode:       req.Pincode,
		PaymentMethod: string(req.PaymentMethod),
		Shipping:      shipping,
		Items:         items,
		Subtotal:      subtotal,
		Total:         total,
	})
	if err != nil {
		return nil, utils.WrapNetwork(err)
	}

	confirmation := &models.OrderConfirmation{
		OrderID:  string(resp.OrderID),
		Message:  resp.Message,
		Subtotal: subtotal,
		Shipping: shipping,
		Total:    total,
	}

	if req.PaymentMethod == models.PaymentCOD {
		if _, err := s.cart.Clear(ctx, token); err != nil {
			log.Warn().Err(err).Msg("cart clear after COD order failed")
		}
		return confirmation, nil
	}

	if resp.RazorpayOrderID == "" {
		return nil, utils.WrapNetwork(&commerce.APIError{Message: "payment gateway order missing from backend response"})
	}
	confirmation.Payment = &models.PaymentIntent{
		RazorpayOrderID: resp.RazorpayOrderID,
		RazorpayKey:     resp.RazorpayKey,
		Amount:          int64(float64(resp.Amount)),
		Currency:        resp.Currency,
		Total:           total,
	}
	return confirmation, nil
}

// VerifyPayment checks the signed payment response. When a key secret is
// configured the signature is verified locally first, rejecting tampered
// responses before they reach the backend; the backend check remains
// authoritative. The cart is cleared once verification succeeds.
func (s *CheckoutService) VerifyPayment(ctx context.Context, token string, v models.PaymentVerification) error {
	if v.RazorpayOrderID == "" || v.RazorpayPaymentID == "" || v.RazorpaySignature == "" {
		return &utils.ValidationError{Field: "payment", Message: "order id, payment id and signature are required"}
	}

	if s.razorpay.KeySecret != "" {
		params := map[string]interface{}{
			"razorpay_order_id":   v.RazorpayOrderID,
			"razorpay_payment_id": v.RazorpayPaymentID,
		}
		if !razorpayutils.VerifyPaymentSignature(params, v.RazorpaySignature, s.razorpay.KeySecret) {
			return utils.ErrPaymentVerification
		}
	}

	err := s.api.VerifyPayment(ctx, token, commerce.VerifyPaymentRequest{
		RazorpayOrderID:   v.RazorpayOrderID,
		RazorpayPaymentID: v.RazorpayPaymentID,
		RazorpaySignature: v.RazorpaySignature,
	})
	if err != nil {
		return utils.WrapNetwork(err)
	}

	if _, err := s.cart.Clear(ctx, token); err != nil {
		log.Warn().Err(err).Msg("cart clear after payment failed")
	}
	return nil
}

// MyOrders returns the caller's order history.
func (s *CheckoutService) MyOrders(ctx context.Context, token string) ([]models.Order, error) {
	orders, err := s.api.GetMyOrders(ctx, token)
	if err != nil {
		return nil, utils.WrapNetwork(err)
	}
	return toOrders(orders), nil
}

// OrderDetails returns a single order.
func (s *CheckoutService) OrderDetails(ctx context.Context, token, orderID string) (*models.Order, error) {
	order, err := s.api.GetOrderDetails(ctx, token, orderID)
	if err != nil {
		return nil, utils.WrapNetwork(err)
	}
	out := toOrder(*order)
	return &out, nil
}
