package service

import (
	"context"
	"sync"

	"github.com/rs/zerolog/log"

	"github.com/teerthankarjewels/storefront_api/internal/models"
	"github.com/teerthankarjewels/storefront_api/internal/utils"
	"github.com/teerthankarjewels/storefront_api/pkg/commerce"
)

// catalogAPI is the slice of the commerce client the catalog needs.
type catalogAPI interface {
	GetProducts(ctx context.Context) ([]commerce.Product, error)
	GetCategories(ctx context.Context) ([]commerce.Category, error)
}

// CatalogService holds the in-memory product and category snapshot. The
// snapshot is the read-only source of truth for browsing; it is replaced
// wholesale by LoadAll and never patched in place. Lookups are linear
// scans, which is fine at catalog sizes of a few thousand items.
type CatalogService struct {
	api catalogAPI

	mu         sync.RWMutex
	products   []models.Product
	categories []models.Category
	loaded     bool
	loadFailed bool
}

// NewCatalogService constructs a CatalogService with an empty snapshot.
func NewCatalogService(api catalogAPI) *CatalogService {
	return &CatalogService{api: api}
}

// LoadAll fetches products and categories in parallel and swaps in the new
// snapshot atomically. On failure the previous snapshot is kept and the
// error flag is raised; there is no retry here — refresh is caller-driven.
func (s *CatalogService) LoadAll(ctx context.Context) error {
	var (
		wg         sync.WaitGroup
		products   []commerce.Product
		categories []commerce.Category
		perr, cerr error
	)

	wg.Add(2)
	go func() {
		defer wg.Done()
		products, perr = s.api.GetProducts(ctx)
	}()
	go func() {
		defer wg.Done()
		categories, cerr = s.api.GetCategories(ctx)
	}()
	wg.Wait()

	if perr != nil || cerr != nil {
		err := perr
		if err == nil {
			err = cerr
		}
		s.mu.Lock()
		s.loadFailed = true
		s.mu.Unlock()
		log.Error().Err(err).Msg("catalog load failed")
		return utils.WrapNetwork(err)
	}

	s.mu.Lock()
	s.products = toProducts(products)
	s.categories = toCategories(categories)
	s.loaded = true
	s.loadFailed = false
	s.mu.Unlock()

	log.Info().Int("products", len(products)).Int("categories", len(categories)).Msg("catalog snapshot loaded")
	return nil
}

// Status reports whether a snapshot has ever been loaded and whether the
// most recent load failed.
func (s *CatalogService) Status() (loaded, isError bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loaded, s.loadFailed
}

// Products returns a copy of the product snapshot.
func (s *CatalogService) Products() []models.Product {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Product, len(s.products))
	copy(out, s.products)
	return out
}

// Categories returns a copy of the category snapshot.
func (s *CatalogService) Categories() []models.Category {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Category, len(s.categories))
	copy(out, s.categories)
	return out
}

// Browse applies the filter spec to the product snapshot.
func (s *CatalogService) Browse(spec models.FilterSpec) ([]models.Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if !s.loaded {
		return nil, utils.ErrCatalogNotLoaded
	}
	return ApplyFilters(s.products, spec), nil
}

// GetProductByID returns the product with the given ID.
func (s *CatalogService) GetProductByID(id string) (*models.Product, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for i := range s.products {
		if s.products[i].ID == id {
			p := s.products[i]
			return &p, true
		}
	}
	return nil, false
}

// GetProductsByCategory returns products whose category matches the ID or
// whose collection tags include it.
func (s *CatalogService) GetProductsByCategory(categoryID string) []models.Product {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []models.Product
	for _, p := range s.products {
		if p.CategoryID == categoryID || p.InCollection(categoryID) {
			out = append(out, p)
		}
	}
	return out
}

// GetProductsBySubcategory returns products in a category/subcategory pair.
func (s *CatalogService) GetProductsBySubcategory(categoryID, subcategoryID string) []models.Product {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []models.Product
	for _, p := range s.products {
		if p.CategoryID == categoryID && p.SubcategoryID == subcategoryID {
			out = append(out, p)
		}
	}
	return out
}

// GetSubcategories returns the subcategories of the given category.
func (s *CatalogService) GetSubcategories(categoryID string) []models.Subcategory {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, c := range s.categories {
		if c.ID == categoryID {
			out := make([]models.Subcategory, len(c.Subcategories))
			copy(out, c.Subcategories)
			return out
		}
	}
	return nil
}

// GetFeaturedProducts returns products flagged as featured.
func (s *CatalogService) GetFeaturedProducts() []models.Product {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []models.Product
	for _, p := range s.products {
		if p.Featured {
			out = append(out, p)
		}
	}
	return out
}
