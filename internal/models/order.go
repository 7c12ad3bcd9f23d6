package models

import "time"

// PaymentMethod is how an order is settled.
type PaymentMethod string

const (
	PaymentCOD    PaymentMethod = "COD"
	PaymentOnline PaymentMethod = "ONLINE"
)

// CheckoutRequest is the shipping form plus payment choice submitted at
// checkout. Field names follow the backend's order payload.
type CheckoutRequest struct {
	FullName      string        `json:"fullName"`
	Phone         string        `json:"phone"`
	AddressLine1  string        `json:"address_line1"`
	AddressLine2  string        `json:"address_line2,omitempty"`
	City          string        `json:"city"`
	State         string        `json:"state"`
	Pincode       string        `json:"pincode"`
	PaymentMethod PaymentMethod `json:"payment_method"`
}

// OrderItem is a single line of a placed order.
type OrderItem struct {
	ProductID   string  `json:"productId"`
	ProductCode string  `json:"productCode,omitempty"`
	Name        string  `json:"name,omitempty"`
	Quantity    int     `json:"quantity"`
	UnitPrice   float64 `json:"unitPrice,omitempty"`
}

// Order is an order-history record as reported by the backend.
type Order struct {
	ID            string        `json:"id"`
	Status        string        `json:"status"`
	PaymentMethod PaymentMethod `json:"paymentMethod"`
	Items         []OrderItem   `json:"items,omitempty"`
	Subtotal      float64       `json:"subtotal"`
	Shipping      float64       `json:"shipping"`
	Total         float64       `json:"total"`
	PlacedAt      time.Time     `json:"placedAt,omitempty"`
}

// PaymentIntent carries the gateway-side handle for an online payment. The
// client opens the payment widget with these values.
type PaymentIntent struct {
	RazorpayOrderID string  `json:"razorpayOrderId"`
	RazorpayKey     string  `json:"razorpayKey"`
	Amount          int64   `json:"amount"` // smallest currency unit
	Currency        string  `json:"currency"`
	Total           float64 `json:"total"`
}

// OrderConfirmation is the result of placing an order. For COD orders the
// order is confirmed immediately and Payment is nil; for online payments
// the caller must complete the payment flow described by Payment.
type OrderConfirmation struct {
	OrderID  string         `json:"orderId,omitempty"`
	Message  string         `json:"message,omitempty"`
	Subtotal float64        `json:"subtotal"`
	Shipping float64        `json:"shipping"`
	Total    float64        `json:"total"`
	Payment  *PaymentIntent `json:"payment,omitempty"`
}

// PaymentVerification is the signed payment response relayed by the client
// after the gateway widget completes.
type PaymentVerification struct {
	RazorpayOrderID   string `json:"razorpay_order_id"`
	RazorpayPaymentID string `json:"razorpay_payment_id"`
	RazorpaySignature string `json:"razorpay_signature"`
}
