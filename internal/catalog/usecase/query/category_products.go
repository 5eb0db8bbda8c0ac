package query

import (
	"fmt"

	"github.com/tair/storefront/internal/catalog/domain"
)

// CategoryProductsQuery represents the query for a category page. When
// SubcategorySlug is set, results are narrowed to that subcategory.
type CategoryProductsQuery struct {
	CategorySlug    string
	SubcategorySlug string
}

// CategoryProductsHandler handles category page lookups
type CategoryProductsHandler struct {
	catalog domain.Catalog
}

// NewCategoryProductsHandler creates a new category products handler
func NewCategoryProductsHandler(catalog domain.Catalog) *CategoryProductsHandler {
	return &CategoryProductsHandler{catalog: catalog}
}

// Handle resolves the slug to the category's display name, then keeps
// products whose category name matches exactly. Products store the
// human-readable name, so the slug must be resolved before comparing;
// matching is case-sensitive equality, unlike the listing filter's
// substring contract.
func (h *CategoryProductsHandler) Handle(q CategoryProductsQuery) ([]domain.Product, error) {
	category, err := h.catalog.FindCategoryBySlug(q.CategorySlug)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve category %q: %w", q.CategorySlug, err)
	}

	subcategoryName := ""
	if q.SubcategorySlug != "" {
		sub, ok := category.FindSubcategory(q.SubcategorySlug)
		if !ok {
			return nil, fmt.Errorf("failed to resolve subcategory %q: %w", q.SubcategorySlug, domain.ErrCategoryNotFound)
		}
		subcategoryName = sub.Name
	}

	products := h.catalog.All()
	out := products[:0]
	for _, p := range products {
		if p.Category != category.Name {
			continue
		}
		if subcategoryName != "" && p.Subcategory != subcategoryName {
			continue
		}
		out = append(out, p)
	}

	return out, nil
}
