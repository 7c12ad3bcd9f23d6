package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/teerthankarjewels/storefront_api/internal/utils"
	"github.com/teerthankarjewels/storefront_api/pkg/commerce"
)

// respondError maps a service error onto the HTTP envelope. Every error
// surfaces as a structured response; nothing propagates as a panic.
func respondError(c *gin.Context, err error) {
	var stockErr *utils.InsufficientStockError
	if errors.As(err, &stockErr) {
		utils.Error(c, 409, "INSUFFICIENT_STOCK", stockErr.Error())
		return
	}

	var validationErr *utils.ValidationError
	if errors.As(err, &validationErr) {
		utils.Error(c, 400, "VALIDATION_FAILURE", validationErr.Error())
		return
	}

	switch {
	case errors.Is(err, utils.ErrValidationFailure):
		utils.Error(c, 400, "VALIDATION_FAILURE", err.Error())
	case errors.Is(err, utils.ErrAuthRequired):
		utils.Error(c, 401, "AUTH_REQUIRED", "Please login to continue")
	case errors.Is(err, utils.ErrSessionExpired):
		utils.Error(c, 401, "SESSION_EXPIRED", "Session has expired, please login again")
	case errors.Is(err, utils.ErrProductNotFound):
		utils.Error(c, 404, "PRODUCT_NOT_FOUND", "Product not found")
	case errors.Is(err, utils.ErrCartItemNotFound):
		utils.Error(c, 404, "CART_ITEM_NOT_FOUND", "Cart item not found")
	case errors.Is(err, utils.ErrEmptyCart):
		utils.Error(c, 400, "EMPTY_CART", "Cart is empty")
	case errors.Is(err, utils.ErrCatalogNotLoaded):
		utils.Error(c, 503, "CATALOG_NOT_LOADED", "Catalog is not available yet, try again shortly")
	case errors.Is(err, utils.ErrPaymentVerification):
		utils.Error(c, 400, "PAYMENT_VERIFICATION_FAILED", "Payment signature verification failed")
	case errors.Is(err, utils.ErrNetworkFailure):
		utils.Error(c, 502, "NETWORK_FAILURE", "Upstream request failed")
	default:
		var apiErr *commerce.APIError
		if errors.As(err, &apiErr) {
			utils.Error(c, 502, "NETWORK_FAILURE", apiErr.Message)
			return
		}
		utils.Error(c, 500, "INTERNAL_ERROR", "Something went wrong")
	}
}
