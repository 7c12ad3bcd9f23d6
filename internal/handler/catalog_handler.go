package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/teerthankarjewels/storefront_api/internal/models"
	"github.com/teerthankarjewels/storefront_api/internal/service"
	"github.com/teerthankarjewels/storefront_api/internal/utils"
)

// CatalogHandler serves product and category browsing endpoints off the
// in-memory catalog snapshot.
type CatalogHandler struct {
	catalog *service.CatalogService
}

// NewCatalogHandler constructs a CatalogHandler.
func NewCatalogHandler(catalog *service.CatalogService) *CatalogHandler {
	return &CatalogHandler{catalog: catalog}
}

// GetProducts returns the filtered, sorted product list.
// Query params: search, category, metal_type, price_min, price_max, sort.
func (h *CatalogHandler) GetProducts(c *gin.Context) {
	spec := models.DefaultFilterSpec()
	spec.Search = c.Query("search")
	spec.Category = c.Query("category")
	spec.MetalType = c.Query("metal_type")

	if v := c.Query("price_min"); v != "" {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil || f < 0 {
			utils.Error(c, 400, "VALIDATION_FAILURE", "price_min must be a non-negative number")
			return
		}
		spec.PriceMin = f
	}
	if v := c.Query("price_max"); v != "" {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil || f < 0 {
			utils.Error(c, 400, "VALIDATION_FAILURE", "price_max must be a non-negative number")
			return
		}
		spec.PriceMax = f
	}
	if v := c.Query("sort"); v != "" {
		key := models.SortKey(v)
		if !key.Valid() {
			utils.Error(c, 400, "VALIDATION_FAILURE", "sort must be one of featured, price-asc, price-desc, newest")
			return
		}
		spec.SortBy = key
	}

	products, err := h.catalog.Browse(spec)
	if err != nil {
		respondError(c, err)
		return
	}

	utils.Success(c, 200, "Products retrieved successfully", gin.H{
		"products": products,
		"total":    len(products),
		"filters":  spec,
	})
}

// GetProduct returns a single product by ID.
func (h *CatalogHandler) GetProduct(c *gin.Context) {
	product, ok := h.catalog.GetProductByID(c.Param("productId"))
	if !ok {
		respondError(c, utils.ErrProductNotFound)
		return
	}
	utils.Success(c, 200, "Product retrieved successfully", gin.H{"product": product})
}

// GetCategories returns the category list.
func (h *CatalogHandler) GetCategories(c *gin.Context) {
	utils.Success(c, 200, "Categories retrieved successfully", gin.H{
		"categories": h.catalog.Categories(),
	})
}

// GetCategoryProducts returns products in a category, optionally narrowed
// to a subcategory.
func (h *CatalogHandler) GetCategoryProducts(c *gin.Context) {
	categoryID := c.Param("categoryId")
	var products []models.Product
	if sub := c.Query("subcategory"); sub != "" {
		products = h.catalog.GetProductsBySubcategory(categoryID, sub)
	} else {
		products = h.catalog.GetProductsByCategory(categoryID)
	}
	utils.Success(c, 200, "Products retrieved successfully", gin.H{
		"products":      products,
		"total":         len(products),
		"subcategories": h.catalog.GetSubcategories(categoryID),
	})
}

// GetFeatured returns featured products.
func (h *CatalogHandler) GetFeatured(c *gin.Context) {
	products := h.catalog.GetFeaturedProducts()
	utils.Success(c, 200, "Featured products retrieved successfully", gin.H{
		"products": products,
		"total":    len(products),
	})
}

// Refresh re-fetches the catalog from the backend. This is the
// user-triggered refetch path; there is no automatic retry on failure.
func (h *CatalogHandler) Refresh(c *gin.Context) {
	if err := h.catalog.LoadAll(c.Request.Context()); err != nil {
		respondError(c, err)
		return
	}
	utils.Success(c, 200, "Catalog refreshed successfully", nil)
}
