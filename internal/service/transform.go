package service

import (
	"github.com/teerthankarjewels/storefront_api/internal/models"
	"github.com/teerthankarjewels/storefront_api/pkg/commerce"
)

// Transformations from backend wire records to domain models. Decoding
// quirks (string-encoded lists, numeric strings, 0/1 flags) are already
// resolved by the typed decode in pkg/commerce; what remains here is field
// mapping and derived values.

func toProduct(p commerce.Product) models.Product {
	return models.Product{
		ID:            string(p.ID),
		Name:          p.Name,
		Description:   p.Description,
		CategoryID:    string(p.CategoryID),
		SubcategoryID: string(p.SubcategoryID),
		Collections:   p.Collections,
		ProductCode:   p.ProductCode,
		Price:         float64(p.Price),
		OriginalPrice: float64(p.OriginalPrice),
		Images:        p.Images,
		MetalType:     p.MetalType,
		StockQuantity: int(p.Quantity),
		Featured:      bool(p.Featured),
		Rating:        float64(p.Rating),
		Reviews:       int(p.Reviews),
		CreatedAt:     p.CreatedAt.Time(),
		UpdatedAt:     p.UpdatedAt.Time(),
	}
}

func toProducts(in []commerce.Product) []models.Product {
	out := make([]models.Product, 0, len(in))
	for _, p := range in {
		out = append(out, toProduct(p))
	}
	return out
}

func toCategory(c commerce.Category) models.Category {
	subs := make([]models.Subcategory, 0, len(c.Subcategories))
	for _, s := range c.Subcategories {
		subs = append(subs, models.Subcategory{
			ID:          string(s.ID),
			Name:        s.Name,
			Slug:        s.Slug,
			Description: s.Description,
		})
	}
	return models.Category{
		ID:            string(c.ID),
		Name:          c.Name,
		Slug:          c.Slug,
		Description:   c.Description,
		Image:         c.Image,
		Featured:      bool(c.Featured),
		Subcategories: subs,
	}
}

func toCategories(in []commerce.Category) []models.Category {
	out := make([]models.Category, 0, len(in))
	for _, c := range in {
		out = append(out, toCategory(c))
	}
	return out
}

func toCartLine(item commerce.CartItem) models.CartLine {
	quantity := int(item.Quantity)
	total := float64(item.TotalPrice)
	var unit float64
	if quantity > 0 {
		unit = total / float64(quantity)
	}
	return models.CartLine{
		ItemID:     string(item.ID),
		ProductID:  string(item.ProductID),
		Name:       item.Product.Name,
		Images:     item.Product.Images,
		Quantity:   quantity,
		UnitPrice:  unit,
		TotalPrice: total,
	}
}

func toCart(items []commerce.CartItem) *models.Cart {
	lines := make([]models.CartLine, 0, len(items))
	for _, item := range items {
		lines = append(lines, toCartLine(item))
	}
	return &models.Cart{Lines: lines}
}

func toWishlist(items []commerce.WishlistItem) *models.Wishlist {
	entries := make([]models.WishlistEntry, 0, len(items))
	for _, item := range items {
		var image string
		if len(item.Product.Images) > 0 {
			image = item.Product.Images[0]
		}
		entries = append(entries, models.WishlistEntry{
			EntryID:   string(item.ID),
			ProductID: string(item.ProductID),
			Name:      item.Product.Name,
			Price:     float64(item.Product.Price),
			Image:     image,
		})
	}
	return &models.Wishlist{Entries: entries}
}

func toOrder(o commerce.Order) models.Order {
	items := make([]models.OrderItem, 0, len(o.Items))
	for _, it := range o.Items {
		items = append(items, models.OrderItem{
			ProductID:   string(it.ProductID),
			ProductCode: it.ProductCode,
			Name:        it.Name,
			Quantity:    int(it.Quantity),
			UnitPrice:   float64(it.UnitPrice),
		})
	}
	return models.Order{
		ID:            string(o.ID),
		Status:        o.Status,
		PaymentMethod: models.PaymentMethod(o.PaymentMethod),
		Items:         items,
		Subtotal:      float64(o.Subtotal),
		Shipping:      float64(o.Shipping),
		Total:         float64(o.Total),
		PlacedAt:      o.CreatedAt.Time(),
	}
}

func toOrders(in []commerce.Order) []models.Order {
	out := make([]models.Order, 0, len(in))
	for _, o := range in {
		out = append(out, toOrder(o))
	}
	return out
}

func toUser(p *commerce.Profile) models.User {
	return models.User{
		ID:    string(p.ID),
		Email: p.Email,
		Name:  p.Name,
		Phone: p.Phone,
	}
}
