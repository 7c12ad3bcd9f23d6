package utils

import (
	"errors"
	"fmt"
)

// Common application errors used across services.
var (
	ErrNetworkFailure      = errors.New("NETWORK_FAILURE")
	ErrInsufficientStock   = errors.New("INSUFFICIENT_STOCK")
	ErrAuthRequired        = errors.New("AUTH_REQUIRED")
	ErrValidationFailure   = errors.New("VALIDATION_FAILURE")
	ErrProductNotFound     = errors.New("PRODUCT_NOT_FOUND")
	ErrCartItemNotFound    = errors.New("CART_ITEM_NOT_FOUND")
	ErrCatalogNotLoaded    = errors.New("CATALOG_NOT_LOADED")
	ErrSessionExpired      = errors.New("SESSION_EXPIRED")
	ErrPaymentVerification = errors.New("PAYMENT_VERIFICATION_FAILED")
	ErrEmptyCart           = errors.New("EMPTY_CART")
)

// WrapNetwork marks err as a NetworkFailure while keeping its message.
// Backend and transport failures share one user-facing bucket.
func WrapNetwork(err error) error {
	return fmt.Errorf("%w: %v", ErrNetworkFailure, err)
}

// InsufficientStockError rejects a cart mutation that would exceed the
// product's live stock. Available is how many more units the caller may
// still add (stock minus what is already in the cart).
type InsufficientStockError struct {
	ProductID string
	Available int
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("only %d item(s) available for product %s", e.Available, e.ProductID)
}

// Is makes errors.Is(err, ErrInsufficientStock) work for the typed error.
func (e *InsufficientStockError) Is(target error) bool {
	return target == ErrInsufficientStock
}

// ValidationError carries the field that failed a form check.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrValidationFailure
}
