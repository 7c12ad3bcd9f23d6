package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/teerthankarjewels/storefront_api/internal/models"
	"github.com/teerthankarjewels/storefront_api/internal/utils"
	"github.com/teerthankarjewels/storefront_api/pkg/commerce"
)

type fakeCatalogAPI struct {
	products   []commerce.Product
	categories []commerce.Category
	fail       error
}

func (f *fakeCatalogAPI) GetProducts(ctx context.Context) ([]commerce.Product, error) {
	if f.fail != nil {
		return nil, f.fail
	}
	return f.products, nil
}

func (f *fakeCatalogAPI) GetCategories(ctx context.Context) ([]commerce.Category, error) {
	if f.fail != nil {
		return nil, f.fail
	}
	return f.categories, nil
}

func catalogAPIFixture() *fakeCatalogAPI {
	return &fakeCatalogAPI{
		products: []commerce.Product{
			{ID: "p1", Name: "Gold Ring", CategoryID: "rings", SubcategoryID: "bands", Price: 1200, MetalType: "gold", Quantity: 5},
			{ID: "p2", Name: "Silver Necklace", CategoryID: "necklaces", Price: 450, MetalType: "silver", Quantity: 3, Featured: true},
			{ID: "p3", Name: "Bridal Set", CategoryID: "sets", Collections: commerce.StringList{"bridal"}, Price: 5400, MetalType: "gold", Quantity: 1},
		},
		categories: []commerce.Category{
			{ID: "rings", Name: "Rings", Subcategories: []commerce.Subcategory{{ID: "bands", Name: "Bands"}}},
			{ID: "necklaces", Name: "Necklaces"},
		},
	}
}

func TestCatalogBrowseBeforeLoad(t *testing.T) {
	svc := NewCatalogService(catalogAPIFixture())

	_, err := svc.Browse(models.DefaultFilterSpec())
	assert.ErrorIs(t, err, utils.ErrCatalogNotLoaded)
}

func TestCatalogLoadAllAndBrowse(t *testing.T) {
	svc := NewCatalogService(catalogAPIFixture())
	require.NoError(t, svc.LoadAll(context.Background()))

	loaded, loadErr := svc.Status()
	assert.True(t, loaded)
	assert.False(t, loadErr)

	got, err := svc.Browse(models.DefaultFilterSpec())
	require.NoError(t, err)
	require.Len(t, got, 3)
	// Default sort puts the featured product first.
	assert.Equal(t, "p2", got[0].ID)
}

func TestCatalogLoadFailureKeepsPreviousSnapshot(t *testing.T) {
	api := catalogAPIFixture()
	svc := NewCatalogService(api)
	require.NoError(t, svc.LoadAll(context.Background()))

	api.fail = errors.New("backend down")
	err := svc.LoadAll(context.Background())
	assert.ErrorIs(t, err, utils.ErrNetworkFailure)

	// Stale snapshot still serves reads, with the error flag raised.
	loaded, loadErr := svc.Status()
	assert.True(t, loaded)
	assert.True(t, loadErr)
	assert.Len(t, svc.Products(), 3)
}

func TestCatalogRecoversAfterFailedLoad(t *testing.T) {
	api := catalogAPIFixture()
	svc := NewCatalogService(api)

	api.fail = errors.New("backend down")
	require.Error(t, svc.LoadAll(context.Background()))

	api.fail = nil
	require.NoError(t, svc.LoadAll(context.Background()))
	loaded, loadErr := svc.Status()
	assert.True(t, loaded)
	assert.False(t, loadErr)
}

func TestCatalogGetProductByID(t *testing.T) {
	svc := NewCatalogService(catalogAPIFixture())
	require.NoError(t, svc.LoadAll(context.Background()))

	p, ok := svc.GetProductByID("p1")
	require.True(t, ok)
	assert.Equal(t, "Gold Ring", p.Name)
	assert.Equal(t, 5, p.StockQuantity)

	_, ok = svc.GetProductByID("ghost")
	assert.False(t, ok)
}

func TestCatalogGetProductsByCategoryMatchesCollections(t *testing.T) {
	svc := NewCatalogService(catalogAPIFixture())
	require.NoError(t, svc.LoadAll(context.Background()))

	byID := svc.GetProductsByCategory("rings")
	require.Len(t, byID, 1)
	assert.Equal(t, "p1", byID[0].ID)

	byTag := svc.GetProductsByCategory("bridal")
	require.Len(t, byTag, 1)
	assert.Equal(t, "p3", byTag[0].ID)
}

func TestCatalogSubcategories(t *testing.T) {
	svc := NewCatalogService(catalogAPIFixture())
	require.NoError(t, svc.LoadAll(context.Background()))

	subs := svc.GetSubcategories("rings")
	require.Len(t, subs, 1)
	assert.Equal(t, "bands", subs[0].ID)

	products := svc.GetProductsBySubcategory("rings", "bands")
	require.Len(t, products, 1)
	assert.Equal(t, "p1", products[0].ID)

	assert.Nil(t, svc.GetSubcategories("ghost"))
}

func TestCatalogFeaturedProducts(t *testing.T) {
	svc := NewCatalogService(catalogAPIFixture())
	require.NoError(t, svc.LoadAll(context.Background()))

	featured := svc.GetFeaturedProducts()
	require.Len(t, featured, 1)
	assert.Equal(t, "p2", featured[0].ID)
}
