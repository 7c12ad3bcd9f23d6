package service

import (
	"sort"
	"strings"

	"github.com/teerthankarjewels/storefront_api/internal/models"
)

// ApplyFilters returns the ordered subset of products matching the spec.
// All active predicates combine with AND; sorting is stable, so equal keys
// keep their prior order and reapplying the same spec yields an identical
// sequence. The input slice is never mutated.
func ApplyFilters(products []models.Product, spec models.FilterSpec) []models.Product {
	filtered := make([]models.Product, 0, len(products))
	for _, p := range products {
		if matchesSpec(&p, &spec) {
			filtered = append(filtered, p)
		}
	}
	sortProducts(filtered, spec.SortBy)
	return filtered
}

func matchesSpec(p *models.Product, spec *models.FilterSpec) bool {
	if spec.Search != "" {
		q := strings.ToLower(spec.Search)
		name := strings.ToLower(p.Name)
		desc := strings.ToLower(p.Description)
		if !strings.Contains(name, q) && !strings.Contains(desc, q) {
			return false
		}
	}

	if spec.Category != "" {
		if p.CategoryID != spec.Category && !p.InCollection(spec.Category) {
			return false
		}
	}

	// Inclusive on both ends; an inverted range matches nothing.
	if p.Price < spec.PriceMin || p.Price > spec.PriceMax {
		return false
	}

	if spec.MetalType != "" && p.MetalType != spec.MetalType {
		return false
	}

	return true
}

func sortProducts(products []models.Product, key models.SortKey) {
	switch key {
	case models.SortPriceAsc:
		sort.SliceStable(products, func(i, j int) bool {
			return products[i].Price < products[j].Price
		})
	case models.SortPriceDesc:
		sort.SliceStable(products, func(i, j int) bool {
			return products[i].Price > products[j].Price
		})
	case models.SortNewest:
		sort.SliceStable(products, func(i, j int) bool {
			return products[i].Newest().After(products[j].Newest())
		})
	default:
		// featured first, otherwise keep prior order
		sort.SliceStable(products, func(i, j int) bool {
			return products[i].Featured && !products[j].Featured
		})
	}
}
