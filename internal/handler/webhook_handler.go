package handler

import (
	"io"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/teerthankarjewels/storefront_api/internal/config"
	"github.com/teerthankarjewels/storefront_api/internal/utils"
	"github.com/teerthankarjewels/storefront_api/pkg/commerce"
)

// WebhookHandler receives payment gateway callbacks and relays them to the
// backend after checking the signature.
type WebhookHandler struct {
	commerce *commerce.Client
	razorpay config.RazorpayConfig
}

// NewWebhookHandler constructs a WebhookHandler.
func NewWebhookHandler(client *commerce.Client, razorpay config.RazorpayConfig) *WebhookHandler {
	return &WebhookHandler{commerce: client, razorpay: razorpay}
}

// RazorpayWebhook verifies the X-Razorpay-Signature header against the raw
// body and forwards the event. The raw body is relayed untouched so the
// backend can re-verify the same signature.
func (h *WebhookHandler) RazorpayWebhook(c *gin.Context) {
	body, err := io.ReadAll(c.Request.Body)
	if err != nil {
		utils.Error(c, 400, "VALIDATION_FAILURE", "Unable to read webhook body")
		return
	}

	signature := c.GetHeader("X-Razorpay-Signature")
	if signature == "" {
		utils.Error(c, 400, "VALIDATION_FAILURE", "Missing webhook signature")
		return
	}

	if h.razorpay.WebhookSecret != "" && !utils.VerifySignature(body, signature, h.razorpay.WebhookSecret) {
		log.Warn().Str("ip", c.ClientIP()).Msg("webhook signature mismatch")
		utils.Error(c, 400, "PAYMENT_VERIFICATION_FAILED", "Invalid webhook signature")
		return
	}

	if err := h.commerce.ForwardPaymentWebhook(c.Request.Context(), body, signature); err != nil {
		log.Error().Err(err).Msg("webhook relay failed")
		utils.Error(c, 502, "NETWORK_FAILURE", "Webhook relay failed")
		return
	}

	utils.Success(c, 200, "Webhook processed", nil)
}
