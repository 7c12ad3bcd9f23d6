package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/teerthankarjewels/storefront_api/internal/config"
	"github.com/teerthankarjewels/storefront_api/internal/models"
	"github.com/teerthankarjewels/storefront_api/internal/utils"
	"github.com/teerthankarjewels/storefront_api/pkg/commerce"
)

type fakeCheckoutAPI struct {
	placed       *commerce.PlaceOrderRequest
	response     commerce.PlaceOrderResponse
	verifyCalled bool
	orders       []commerce.Order
}

func (f *fakeCheckoutAPI) PlaceOrder(ctx context.Context, token string, req commerce.PlaceOrderRequest) (*commerce.PlaceOrderResponse, error) {
	f.placed = &req
	return &f.response, nil
}

func (f *fakeCheckoutAPI) VerifyPayment(ctx context.Context, token string, req commerce.VerifyPaymentRequest) error {
	f.verifyCalled = true
	return nil
}

func (f *fakeCheckoutAPI) GetMyOrders(ctx context.Context, token string) ([]commerce.Order, error) {
	return f.orders, nil
}

func (f *fakeCheckoutAPI) GetOrderDetails(ctx context.Context, token, orderID string) (*commerce.Order, error) {
	for i := range f.orders {
		if string(f.orders[i].ID) == orderID {
			return &f.orders[i], nil
		}
	}
	return nil, &commerce.APIError{HTTPStatus: 404, Message: "order not found"}
}

type fakeCart struct {
	cart       models.Cart
	clearCalls int
}

func (f *fakeCart) Load(ctx context.Context, token string) (*models.Cart, error) {
	c := f.cart
	return &c, nil
}

func (f *fakeCart) Clear(ctx context.Context, token string) (*models.Cart, error) {
	f.clearCalls++
	f.cart = models.Cart{}
	return &models.Cart{}, nil
}

func checkoutRules() config.CheckoutConfig {
	return config.CheckoutConfig{FreeShippingThreshold: 999, ShippingFee: 98}
}

func validCheckoutRequest() models.CheckoutRequest {
	return models.CheckoutRequest{
		FullName:      "Asha Verma",
		Phone:         "9876543210",
		AddressLine1:  "12 MG Road",
		City:          "Pune",
		State:         "Maharashtra",
		Pincode:       "411001",
		PaymentMethod: models.PaymentCOD,
	}
}

func checkoutFixture(cart models.Cart) (*CheckoutService, *fakeCheckoutAPI, *fakeCart) {
	api := &fakeCheckoutAPI{response: commerce.PlaceOrderResponse{OrderID: "ord-1", Message: "placed"}}
	fc := &fakeCart{cart: cart}
	catalog := &stubCatalog{products: map[string]models.Product{
		"p1": {ID: "p1", ProductCode: "GR-01", Price: 1200, StockQuantity: 5},
	}}
	svc := NewCheckoutService(api, fc, catalog, config.RazorpayConfig{}, checkoutRules())
	return svc, api, fc
}

func singleLineCart(total float64) models.Cart {
	return models.Cart{Lines: []models.CartLine{
		{ItemID: "c1", ProductID: "p1", Quantity: 1, UnitPrice: total, TotalPrice: total},
	}}
}

func TestShippingFee(t *testing.T) {
	svc, _, _ := checkoutFixture(models.Cart{})

	assert.Equal(t, 98.0, svc.ShippingFee(998))
	assert.Equal(t, 0.0, svc.ShippingFee(999))
	assert.Equal(t, 0.0, svc.ShippingFee(2500))
}

func TestPlaceOrderEmptyCart(t *testing.T) {
	svc, _, _ := checkoutFixture(models.Cart{})

	_, err := svc.PlaceOrder(context.Background(), "tok", validCheckoutRequest())
	assert.ErrorIs(t, err, utils.ErrEmptyCart)
}

func TestPlaceOrderValidatesPhone(t *testing.T) {
	svc, _, _ := checkoutFixture(singleLineCart(1200))

	req := validCheckoutRequest()
	req.Phone = "1234567890" // must start 6-9

	_, err := svc.PlaceOrder(context.Background(), "tok", req)
	var verr *utils.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "phone", verr.Field)
}

func TestPlaceOrderValidatesRequiredFields(t *testing.T) {
	svc, _, _ := checkoutFixture(singleLineCart(1200))

	req := validCheckoutRequest()
	req.City = ""

	_, err := svc.PlaceOrder(context.Background(), "tok", req)
	var verr *utils.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "city", verr.Field)
}

func TestPlaceOrderRejectsUnknownPaymentMethod(t *testing.T) {
	svc, _, _ := checkoutFixture(singleLineCart(1200))

	req := validCheckoutRequest()
	req.PaymentMethod = "UPI"

	_, err := svc.PlaceOrder(context.Background(), "tok", req)
	var verr *utils.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "payment_method", verr.Field)
}

func TestPlaceOrderCODClearsCartAndPricesOrder(t *testing.T) {
	svc, api, fc := checkoutFixture(singleLineCart(1200))

	confirmation, err := svc.PlaceOrder(context.Background(), "tok", validCheckoutRequest())
	require.NoError(t, err)

	assert.Equal(t, "ord-1", confirmation.OrderID)
	assert.InDelta(t, 1200, confirmation.Subtotal, 0.001)
	assert.Zero(t, confirmation.Shipping) // over the free threshold
	assert.InDelta(t, 1200, confirmation.Total, 0.001)
	assert.Nil(t, confirmation.Payment)
	assert.Equal(t, 1, fc.clearCalls)

	require.NotNil(t, api.placed)
	require.Len(t, api.placed.Items, 1)
	assert.Equal(t, "GR-01", api.placed.Items[0].ProductCode)
}

func TestPlaceOrderAddsShippingUnderThreshold(t *testing.T) {
	svc, _, _ := checkoutFixture(singleLineCart(450))

	confirmation, err := svc.PlaceOrder(context.Background(), "tok", validCheckoutRequest())
	require.NoError(t, err)
	assert.InDelta(t, 98, confirmation.Shipping, 0.001)
	assert.InDelta(t, 548, confirmation.Total, 0.001)
}

func TestPlaceOrderOnlineReturnsPaymentIntent(t *testing.T) {
	svc, api, fc := checkoutFixture(singleLineCart(1200))
	api.response = commerce.PlaceOrderResponse{
		OrderID:         "ord-2",
		RazorpayOrderID: "order_abc",
		RazorpayKey:     "rzp_test_key",
		Amount:          120000,
		Currency:        "INR",
	}

	req := validCheckoutRequest()
	req.PaymentMethod = models.PaymentOnline

	confirmation, err := svc.PlaceOrder(context.Background(), "tok", req)
	require.NoError(t, err)
	require.NotNil(t, confirmation.Payment)
	assert.Equal(t, "order_abc", confirmation.Payment.RazorpayOrderID)
	assert.Equal(t, "INR", confirmation.Payment.Currency)
	// The cart survives until the payment is verified.
	assert.Zero(t, fc.clearCalls)
}

func TestPlaceOrderOnlineMissingGatewayOrder(t *testing.T) {
	svc, api, _ := checkoutFixture(singleLineCart(1200))
	api.response = commerce.PlaceOrderResponse{OrderID: "ord-3"}

	req := validCheckoutRequest()
	req.PaymentMethod = models.PaymentOnline

	_, err := svc.PlaceOrder(context.Background(), "tok", req)
	assert.ErrorIs(t, err, utils.ErrNetworkFailure)
}

func TestVerifyPaymentRequiresAllFields(t *testing.T) {
	svc, _, _ := checkoutFixture(singleLineCart(1200))

	err := svc.VerifyPayment(context.Background(), "tok", models.PaymentVerification{
		RazorpayOrderID: "order_abc",
	})
	var verr *utils.ValidationError
	assert.ErrorAs(t, err, &verr)
}

func TestVerifyPaymentClearsCart(t *testing.T) {
	svc, api, fc := checkoutFixture(singleLineCart(1200))

	err := svc.VerifyPayment(context.Background(), "tok", models.PaymentVerification{
		RazorpayOrderID:   "order_abc",
		RazorpayPaymentID: "pay_abc",
		RazorpaySignature: "sig",
	})
	require.NoError(t, err)
	assert.True(t, api.verifyCalled)
	assert.Equal(t, 1, fc.clearCalls)
}

func TestMyOrders(t *testing.T) {
	svc, api, _ := checkoutFixture(models.Cart{})
	api.orders = []commerce.Order{
		{ID: "ord-1", Status: "DELIVERED", Total: 1298},
		{ID: "ord-2", Status: "PENDING", Total: 450},
	}

	orders, err := svc.MyOrders(context.Background(), "tok")
	require.NoError(t, err)
	require.Len(t, orders, 2)
	assert.Equal(t, "ord-1", orders[0].ID)
}

func TestOrderDetailsNotFound(t *testing.T) {
	svc, _, _ := checkoutFixture(models.Cart{})

	_, err := svc.OrderDetails(context.Background(), "tok", "missing")
	assert.ErrorIs(t, err, utils.ErrNetworkFailure)
}
