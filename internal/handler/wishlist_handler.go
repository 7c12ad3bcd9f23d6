package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/teerthankarjewels/storefront_api/internal/middleware"
	"github.com/teerthankarjewels/storefront_api/internal/service"
	"github.com/teerthankarjewels/storefront_api/internal/utils"
)

// WishlistHandler serves the authenticated wishlist endpoints.
type WishlistHandler struct {
	wishlist *service.WishlistService
}

// NewWishlistHandler constructs a WishlistHandler.
func NewWishlistHandler(wishlist *service.WishlistService) *WishlistHandler {
	return &WishlistHandler{wishlist: wishlist}
}

// GetWishlist returns the current wishlist.
func (h *WishlistHandler) GetWishlist(c *gin.Context) {
	session := middleware.GetSession(c)
	wishlist, err := h.wishlist.Load(c.Request.Context(), session.BackendToken)
	if err != nil {
		respondError(c, err)
		return
	}
	utils.Success(c, 200, "Wishlist retrieved successfully", gin.H{
		"wishlist": wishlist,
		"total":    len(wishlist.Entries),
	})
}

// AddItem saves a product. Saving an already-saved product is a no-op.
func (h *WishlistHandler) AddItem(c *gin.Context) {
	var req struct {
		ProductID string `json:"productId" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, 400, "VALIDATION_FAILURE", "Invalid request body")
		return
	}

	session := middleware.GetSession(c)
	wishlist, err := h.wishlist.Add(c.Request.Context(), session.BackendToken, req.ProductID)
	if err != nil {
		respondError(c, err)
		return
	}
	utils.Success(c, 200, "Added to wishlist", gin.H{
		"wishlist": wishlist,
		"total":    len(wishlist.Entries),
	})
}

// RemoveItem removes a saved product.
func (h *WishlistHandler) RemoveItem(c *gin.Context) {
	session := middleware.GetSession(c)
	wishlist, err := h.wishlist.Remove(c.Request.Context(), session.BackendToken, c.Param("productId"))
	if err != nil {
		respondError(c, err)
		return
	}
	utils.Success(c, 200, "Removed from wishlist", gin.H{
		"wishlist": wishlist,
		"total":    len(wishlist.Entries),
	})
}
