package commerce

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// envelope is the backend's standard response wrapper.
type envelope struct {
	Status  bool            `json:"status"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

// FlexID decodes an identifier sent as either a JSON string or a number.
type FlexID string

func (f *FlexID) UnmarshalJSON(b []byte) error {
	if len(b) == 0 || string(b) == "null" {
		*f = ""
		return nil
	}
	if b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*f = FlexID(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return fmt.Errorf("id is neither string nor number: %s", b)
	}
	*f = FlexID(n.String())
	return nil
}

// FlexFloat decodes a decimal sent as either a JSON number or a numeric
// string. Anything else is a decode error, not a silent zero.
type FlexFloat float64

func (f *FlexFloat) UnmarshalJSON(b []byte) error {
	if len(b) == 0 || string(b) == "null" {
		*f = 0
		return nil
	}
	if b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		if s == "" {
			*f = 0
			return nil
		}
		v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
		if err != nil {
			return fmt.Errorf("invalid numeric string %q", s)
		}
		*f = FlexFloat(v)
		return nil
	}
	var v float64
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}
	*f = FlexFloat(v)
	return nil
}

// FlexInt decodes an integer sent as either a JSON number or a numeric string.
type FlexInt int

func (f *FlexInt) UnmarshalJSON(b []byte) error {
	var ff FlexFloat
	if err := ff.UnmarshalJSON(b); err != nil {
		return err
	}
	*f = FlexInt(ff)
	return nil
}

// FlexBool decodes a flag sent as a JSON bool, a 0/1 number, or a
// "0"/"1"/"true"/"false" string.
type FlexBool bool

func (f *FlexBool) UnmarshalJSON(b []byte) error {
	switch string(b) {
	case "null", "false", "0", `"0"`, `"false"`, `""`:
		*f = false
		return nil
	case "true", "1", `"1"`, `"true"`:
		*f = true
		return nil
	}
	return fmt.Errorf("invalid boolean value: %s", b)
}

// StringList decodes a list sent as a JSON array of strings, as a
// JSON-encoded array inside a string, or as a single plain string. Any
// other shape is a decode error.
type StringList []string

func (l *StringList) UnmarshalJSON(b []byte) error {
	if len(b) == 0 || string(b) == "null" {
		*l = nil
		return nil
	}
	if b[0] == '[' {
		var items []string
		if err := json.Unmarshal(b, &items); err != nil {
			return err
		}
		*l = cleanStrings(items)
		return nil
	}
	if b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		s = strings.TrimSpace(s)
		if s == "" {
			*l = nil
			return nil
		}
		// The backend sometimes double-encodes the array inside a string.
		if strings.HasPrefix(s, "[") {
			var items []string
			if err := json.Unmarshal([]byte(s), &items); err != nil {
				return fmt.Errorf("invalid encoded list %q: %w", s, err)
			}
			*l = cleanStrings(items)
			return nil
		}
		*l = []string{s}
		return nil
	}
	return fmt.Errorf("invalid list value: %s", b)
}

func cleanStrings(in []string) []string {
	out := make([]string, 0, len(in))
	for _, s := range in {
		s = strings.TrimSpace(s)
		if s != "" {
			out = append(out, s)
		}
	}
	return out
}

// FlexTime decodes timestamps in RFC3339 or "2006-01-02 15:04:05" form.
type FlexTime time.Time

func (t *FlexTime) UnmarshalJSON(b []byte) error {
	s := strings.Trim(string(b), `"`)
	if s == "" || s == "null" {
		*t = FlexTime(time.Time{})
		return nil
	}
	for _, layout := range []string{time.RFC3339, "2006-01-02 15:04:05", "2006-01-02"} {
		if parsed, err := time.Parse(layout, s); err == nil {
			*t = FlexTime(parsed)
			return nil
		}
	}
	return fmt.Errorf("invalid timestamp %q", s)
}

// Time returns the underlying time value.
func (t FlexTime) Time() time.Time { return time.Time(t) }

// Product is the backend's product record.
type Product struct {
	ID            FlexID     `json:"id"`
	Name          string     `json:"name"`
	Description   string     `json:"description"`
	CategoryID    FlexID     `json:"category_id"`
	SubcategoryID FlexID     `json:"subcategory_id"`
	Collections   StringList `json:"collections"`
	ProductCode   string     `json:"product_code"`
	Price         FlexFloat  `json:"price"`
	OriginalPrice FlexFloat  `json:"original_price"`
	Images        StringList `json:"images"`
	MetalType     string     `json:"metal_type"`
	Quantity      FlexInt    `json:"quantity"`
	Featured      FlexBool   `json:"featured"`
	Rating        FlexFloat  `json:"rating"`
	Reviews       FlexInt    `json:"reviews"`
	CreatedAt     FlexTime   `json:"created_at"`
	UpdatedAt     FlexTime   `json:"updated_at"`
}

// Category is the backend's category record.
type Category struct {
	ID            FlexID        `json:"id"`
	Name          string        `json:"name"`
	Slug          string        `json:"slug"`
	Description   string        `json:"description"`
	Image         string        `json:"image"`
	Featured      FlexBool      `json:"featured"`
	Subcategories []Subcategory `json:"subcategories"`
}

// Subcategory is a nested category refinement.
type Subcategory struct {
	ID          FlexID `json:"id"`
	Name        string `json:"name"`
	Slug        string `json:"slug"`
	Description string `json:"description"`
}

// CartItem is one backend cart row. The nested product carries only the
// display fields the cart needs.
type CartItem struct {
	ID         FlexID      `json:"id"`
	ProductID  FlexID      `json:"product_id"`
	Quantity   FlexInt     `json:"quantity"`
	TotalPrice FlexFloat   `json:"total_price"`
	Product    CartProduct `json:"product"`
}

// CartProduct is the product summary nested in cart and wishlist rows.
type CartProduct struct {
	Name   string     `json:"name"`
	Price  FlexFloat  `json:"price"`
	Images StringList `json:"images"`
}

// AddCartItemRequest is the POST /cart/addItem payload.
type AddCartItemRequest struct {
	ProductID  string  `json:"product_id"`
	Quantity   int     `json:"quantity"`
	TotalPrice float64 `json:"total_price"`
}

// WishlistItem is one backend wishlist row.
type WishlistItem struct {
	ID        FlexID      `json:"id"`
	ProductID FlexID      `json:"product_id"`
	Product   CartProduct `json:"product"`
}

// LoginResult is what the backend returns on successful authentication.
type LoginResult struct {
	Token  string `json:"token"`
	UserID FlexID `json:"user"`
}

// Profile is the backend's user record.
type Profile struct {
	ID    FlexID `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
	Phone string `json:"phone"`
}

// PlaceOrderItem is one order line in the placeOrder payload.
type PlaceOrderItem struct {
	ProductID   string `json:"product_id"`
	Quantity    int    `json:"quantity"`
	ProductCode string `json:"product_code"`
}

// PlaceOrderRequest is the POST /orders/placeOrder payload.
type PlaceOrderRequest struct {
	FullName      string           `json:"fullName"`
	Phone         string           `json:"phone"`
	AddressLine1  string           `json:"address_line1"`
	AddressLine2  string           `json:"address_line2,omitempty"`
	City          string           `json:"city"`
	State         string           `json:"state"`
	Pincode       string           `json:"pincode"`
	PaymentMethod string           `json:"payment_method"`
	Shipping      float64          `json:"shipping"`
	Items         []PlaceOrderItem `json:"items"`
	Subtotal      float64          `json:"subtotal"`
	Total         float64          `json:"total"`
}

// PlaceOrderResponse is the backend's reply to placeOrder. The razorpay
// fields are only present for online payments.
type PlaceOrderResponse struct {
	Message         string    `json:"message"`
	OrderID         FlexID    `json:"order_id"`
	RazorpayOrderID string    `json:"razorpay_order_id"`
	RazorpayKey     string    `json:"razorpay_key"`
	Amount          FlexFloat `json:"amount"`
	Currency        string    `json:"currency"`
}

// VerifyPaymentRequest is the POST /orders/verifyPayment payload.
type VerifyPaymentRequest struct {
	RazorpayOrderID   string `json:"razorpay_order_id"`
	RazorpayPaymentID string `json:"razorpay_payment_id"`
	RazorpaySignature string `json:"razorpay_signature"`
}

// Order is an order-history record.
type Order struct {
	ID            FlexID      `json:"id"`
	Status        string      `json:"status"`
	PaymentMethod string      `json:"payment_method"`
	Items         []OrderItem `json:"items"`
	Subtotal      FlexFloat   `json:"subtotal"`
	Shipping      FlexFloat   `json:"shipping"`
	Total         FlexFloat   `json:"total"`
	CreatedAt     FlexTime    `json:"created_at"`
}

// OrderItem is one line of an order-history record.
type OrderItem struct {
	ProductID   FlexID    `json:"product_id"`
	ProductCode string    `json:"product_code"`
	Name        string    `json:"name"`
	Quantity    FlexInt   `json:"quantity"`
	UnitPrice   FlexFloat `json:"price"`
}
