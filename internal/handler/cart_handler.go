package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/teerthankarjewels/storefront_api/internal/middleware"
	"github.com/teerthankarjewels/storefront_api/internal/models"
	"github.com/teerthankarjewels/storefront_api/internal/service"
	"github.com/teerthankarjewels/storefront_api/internal/utils"
)

// CartHandler serves the authenticated cart endpoints. Every mutation
// returns the reconciled cart so the client never has to merge locally.
type CartHandler struct {
	cart *service.CartService
}

// NewCartHandler constructs a CartHandler.
func NewCartHandler(cart *service.CartService) *CartHandler {
	return &CartHandler{cart: cart}
}

func cartPayload(cart *models.Cart) gin.H {
	return gin.H{
		"cart":     cart,
		"count":    cart.Count(),
		"subtotal": cart.Subtotal(),
	}
}

// GetCart returns the current cart.
func (h *CartHandler) GetCart(c *gin.Context) {
	session := middleware.GetSession(c)
	cart, err := h.cart.Load(c.Request.Context(), session.BackendToken)
	if err != nil {
		respondError(c, err)
		return
	}
	utils.Success(c, 200, "Cart retrieved successfully", cartPayload(cart))
}

// AddItem adds a product to the cart.
func (h *CartHandler) AddItem(c *gin.Context) {
	var req struct {
		ProductID string `json:"productId" binding:"required"`
		Quantity  int    `json:"quantity"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, 400, "VALIDATION_FAILURE", "Invalid request body")
		return
	}
	if req.Quantity == 0 {
		req.Quantity = 1
	}

	session := middleware.GetSession(c)
	cart, err := h.cart.Add(c.Request.Context(), session.BackendToken, req.ProductID, req.Quantity)
	if err != nil {
		respondError(c, err)
		return
	}
	utils.Success(c, 200, "Added to cart", cartPayload(cart))
}

// UpdateItem sets the quantity of a cart line. Quantity below 1 removes
// the line.
func (h *CartHandler) UpdateItem(c *gin.Context) {
	var req struct {
		Quantity int `json:"quantity"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, 400, "VALIDATION_FAILURE", "Invalid request body")
		return
	}

	session := middleware.GetSession(c)
	cart, err := h.cart.UpdateQuantity(c.Request.Context(), session.BackendToken, c.Param("productId"), req.Quantity)
	if err != nil {
		respondError(c, err)
		return
	}
	utils.Success(c, 200, "Quantity updated", cartPayload(cart))
}

// RemoveItem deletes a cart line.
func (h *CartHandler) RemoveItem(c *gin.Context) {
	session := middleware.GetSession(c)
	cart, err := h.cart.Remove(c.Request.Context(), session.BackendToken, c.Param("productId"))
	if err != nil {
		respondError(c, err)
		return
	}
	utils.Success(c, 200, "Item removed", cartPayload(cart))
}

// Clear empties the cart.
func (h *CartHandler) Clear(c *gin.Context) {
	session := middleware.GetSession(c)
	cart, err := h.cart.Clear(c.Request.Context(), session.BackendToken)
	if err != nil {
		respondError(c, err)
		return
	}
	utils.Success(c, 200, "Cart cleared", cartPayload(cart))
}
