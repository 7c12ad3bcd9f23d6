package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/teerthankarjewels/storefront_api/internal/models"
)

func sampleProducts() []models.Product {
	return []models.Product{
		{ID: "p1", Name: "Gold Ring", Description: "Classic band", CategoryID: "rings", Price: 1200, MetalType: "gold", StockQuantity: 5, Featured: false, CreatedAt: time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)},
		{ID: "p2", Name: "Silver Necklace", Description: "Delicate chain", CategoryID: "necklaces", Price: 450, MetalType: "silver", StockQuantity: 3, Featured: true, CreatedAt: time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)},
		{ID: "p3", Name: "Gold Necklace", Description: "Statement piece", CategoryID: "necklaces", Collections: []string{"bridal"}, Price: 2200, MetalType: "gold", StockQuantity: 2, Featured: true, CreatedAt: time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC)},
		{ID: "p4", Name: "Rose Gold Earrings", Description: "Everyday studs", CategoryID: "earrings", Price: 450, MetalType: "rose-gold", StockQuantity: 0, Featured: false, CreatedAt: time.Date(2025, 4, 1, 0, 0, 0, 0, time.UTC)},
	}
}

func ids(products []models.Product) []string {
	out := make([]string, len(products))
	for i, p := range products {
		out[i] = p.ID
	}
	return out
}

func TestApplyFiltersDefaultSpecFeaturedFirst(t *testing.T) {
	products := sampleProducts()
	got := ApplyFilters(products, models.DefaultFilterSpec())

	// Featured products float to the front, prior order kept within each group.
	assert.Equal(t, []string{"p2", "p3", "p1", "p4"}, ids(got))
}

func TestApplyFiltersCombinesPredicates(t *testing.T) {
	spec := models.DefaultFilterSpec()
	spec.Category = "necklaces"
	spec.MetalType = "gold"

	got := ApplyFilters(sampleProducts(), spec)
	require.Len(t, got, 1)
	assert.Equal(t, "p3", got[0].ID)
}

func TestApplyFiltersSearchMatchesNameOrDescription(t *testing.T) {
	spec := models.DefaultFilterSpec()
	spec.Search = "CHAIN"

	got := ApplyFilters(sampleProducts(), spec)
	require.Len(t, got, 1)
	assert.Equal(t, "p2", got[0].ID)
}

func TestApplyFiltersCategoryMatchesCollectionTag(t *testing.T) {
	spec := models.DefaultFilterSpec()
	spec.Category = "bridal"

	got := ApplyFilters(sampleProducts(), spec)
	require.Len(t, got, 1)
	assert.Equal(t, "p3", got[0].ID)
}

func TestApplyFiltersPriceRangeInclusive(t *testing.T) {
	spec := models.DefaultFilterSpec()
	spec.PriceMin = 450
	spec.PriceMax = 1200

	got := ApplyFilters(sampleProducts(), spec)
	assert.Equal(t, []string{"p2", "p1", "p4"}, ids(got))
}

func TestApplyFiltersInvertedPriceRangeEmpty(t *testing.T) {
	spec := models.DefaultFilterSpec()
	spec.PriceMin = 2000
	spec.PriceMax = 100

	got := ApplyFilters(sampleProducts(), spec)
	assert.Empty(t, got)
}

func TestApplyFiltersSortPriceAscAndDesc(t *testing.T) {
	products := sampleProducts()

	spec := models.DefaultFilterSpec()
	spec.SortBy = models.SortPriceAsc
	asc := ApplyFilters(products, spec)
	assert.Equal(t, []string{"p2", "p4", "p1", "p3"}, ids(asc))

	spec.SortBy = models.SortPriceDesc
	desc := ApplyFilters(products, spec)
	assert.Equal(t, []string{"p3", "p1", "p2", "p4"}, ids(desc))
}

func TestApplyFiltersSortPriceAscStableOnTies(t *testing.T) {
	// p2 and p4 share a price; input order decides.
	spec := models.DefaultFilterSpec()
	spec.SortBy = models.SortPriceAsc

	got := ApplyFilters(sampleProducts(), spec)
	assert.Equal(t, "p2", got[0].ID)
	assert.Equal(t, "p4", got[1].ID)
}

func TestApplyFiltersSortNewest(t *testing.T) {
	spec := models.DefaultFilterSpec()
	spec.SortBy = models.SortNewest

	got := ApplyFilters(sampleProducts(), spec)
	assert.Equal(t, []string{"p4", "p2", "p3", "p1"}, ids(got))
}

func TestApplyFiltersIdempotent(t *testing.T) {
	spec := models.DefaultFilterSpec()
	spec.SortBy = models.SortPriceAsc

	first := ApplyFilters(sampleProducts(), spec)
	second := ApplyFilters(first, spec)
	assert.Equal(t, ids(first), ids(second))
}

func TestApplyFiltersDoesNotMutateInput(t *testing.T) {
	products := sampleProducts()
	spec := models.DefaultFilterSpec()
	spec.SortBy = models.SortPriceDesc

	_ = ApplyFilters(products, spec)
	assert.Equal(t, []string{"p1", "p2", "p3", "p4"}, ids(products))
}
