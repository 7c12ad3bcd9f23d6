package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/teerthankarjewels/storefront_api/internal/middleware"
	"github.com/teerthankarjewels/storefront_api/internal/models"
	"github.com/teerthankarjewels/storefront_api/internal/service"
	"github.com/teerthankarjewels/storefront_api/internal/utils"
)

// OrderHandler serves checkout and order history endpoints.
type OrderHandler struct {
	checkout *service.CheckoutService
}

// NewOrderHandler constructs an OrderHandler.
func NewOrderHandler(checkout *service.CheckoutService) *OrderHandler {
	return &OrderHandler{checkout: checkout}
}

// Checkout places an order from the current cart.
func (h *OrderHandler) Checkout(c *gin.Context) {
	var req models.CheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, 400, "VALIDATION_FAILURE", "Invalid request body")
		return
	}

	session := middleware.GetSession(c)
	confirmation, err := h.checkout.PlaceOrder(c.Request.Context(), session.BackendToken, req)
	if err != nil {
		respondError(c, err)
		return
	}
	utils.Success(c, 200, "Order placed successfully", confirmation)
}

// VerifyPayment confirms a completed online payment.
func (h *OrderHandler) VerifyPayment(c *gin.Context) {
	var req models.PaymentVerification
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, 400, "VALIDATION_FAILURE", "Invalid request body")
		return
	}

	session := middleware.GetSession(c)
	if err := h.checkout.VerifyPayment(c.Request.Context(), session.BackendToken, req); err != nil {
		respondError(c, err)
		return
	}
	utils.Success(c, 200, "Payment verified successfully", gin.H{"verified": true})
}

// MyOrders returns the caller's order history.
func (h *OrderHandler) MyOrders(c *gin.Context) {
	session := middleware.GetSession(c)
	orders, err := h.checkout.MyOrders(c.Request.Context(), session.BackendToken)
	if err != nil {
		respondError(c, err)
		return
	}
	utils.Success(c, 200, "Orders retrieved successfully", gin.H{
		"orders": orders,
		"total":  len(orders),
	})
}

// OrderDetails returns a single order.
func (h *OrderHandler) OrderDetails(c *gin.Context) {
	session := middleware.GetSession(c)
	order, err := h.checkout.OrderDetails(c.Request.Context(), session.BackendToken, c.Param("orderId"))
	if err != nil {
		respondError(c, err)
		return
	}
	utils.Success(c, 200, "Order retrieved successfully", order)
}
