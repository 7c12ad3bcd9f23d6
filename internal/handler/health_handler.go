package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/teerthankarjewels/storefront_api/internal/service"
	"github.com/teerthankarjewels/storefront_api/internal/utils"
)

// HealthHandler reports service status.
type HealthHandler struct {
	catalog *service.CatalogService
}

// NewHealthHandler constructs a HealthHandler.
func NewHealthHandler(catalog *service.CatalogService) *HealthHandler {
	return &HealthHandler{catalog: catalog}
}

// Health returns liveness plus catalog snapshot state.
func (h *HealthHandler) Health(c *gin.Context) {
	loaded, loadErr := h.catalog.Status()
	utils.Success(c, 200, "OK", gin.H{
		"status":         "up",
		"catalog_loaded": loaded,
		"catalog_error":  loadErr,
		"products":       len(h.catalog.Products()),
	})
}
