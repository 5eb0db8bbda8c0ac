package query

import (
	"sort"
	"strings"

	"github.com/tair/storefront/internal/catalog/domain"
)

// SortOption selects the listing sort order
type SortOption string

const (
	SortFeatured    SortOption = "featured"
	SortPriceLow    SortOption = "price-low"
	SortPriceHigh   SortOption = "price-high"
	SortNewest      SortOption = "newest"
	SortBestSelling SortOption = "best-selling"
	SortTopRated    SortOption = "top-rated"
)

// ListProductsQuery carries the listing filter criteria. The zero value is
// the reset state: no category restriction, full price range, no rating
// floor, both flags off, empty search, featured order.
type ListProductsQuery struct {
	Search     string
	Categories []string
	MinPrice   *float64
	MaxPrice   *float64
	MinRating  *float64
	OnSaleOnly bool
	NewOnly    bool
	Sort       SortOption
}

// ListProductsHandler handles the product listing query
type ListProductsHandler struct {
	catalog domain.Catalog
}

// NewListProductsHandler creates a new list products handler
func NewListProductsHandler(catalog domain.Catalog) *ListProductsHandler {
	return &ListProductsHandler{catalog: catalog}
}

// Handle projects the catalog through the filter criteria and sort order.
// It is a pure projection: identical inputs always produce identical
// ordered output. Filters are applied in a fixed order so intermediate
// list lengths are deterministic; an empty result is a valid outcome.
func (h *ListProductsHandler) Handle(q ListProductsQuery) ([]domain.Product, error) {
	result := h.catalog.All()

	if q.Search != "" {
		result = keep(result, func(p domain.Product) bool {
			return p.Matches(q.Search)
		})
	}

	// Category filter is a loose contract: any selected string matching
	// the category or subcategory name as a case-insensitive substring.
	// The category-page lookup uses exact name equality instead; the two
	// are intentionally different.
	if len(q.Categories) > 0 {
		result = keep(result, func(p domain.Product) bool {
			for _, cat := range q.Categories {
				needle := strings.ToLower(cat)
				if strings.Contains(strings.ToLower(p.Category), needle) {
					return true
				}
				if p.Subcategory != "" && strings.Contains(strings.ToLower(p.Subcategory), needle) {
					return true
				}
			}
			return false
		})
	}

	min, max := h.priceBounds(q)
	result = keep(result, func(p domain.Product) bool {
		return p.Price >= min && p.Price <= max
	})

	if q.MinRating != nil {
		result = keep(result, func(p domain.Product) bool {
			return p.Rating >= *q.MinRating
		})
	}

	if q.OnSaleOnly {
		result = keep(result, func(p domain.Product) bool {
			return p.Discounted()
		})
	}

	if q.NewOnly {
		result = keep(result, func(p domain.Product) bool {
			return p.New
		})
	}

	sortProducts(result, q.Sort)

	return result, nil
}

// priceBounds widens unset bounds to the catalog's full price range
func (h *ListProductsHandler) priceBounds(q ListProductsQuery) (float64, float64) {
	catalogMin, catalogMax := h.catalog.PriceRange()
	min, max := catalogMin, catalogMax
	if q.MinPrice != nil {
		min = *q.MinPrice
	}
	if q.MaxPrice != nil {
		max = *q.MaxPrice
	}
	return min, max
}

func keep(products []domain.Product, pred func(domain.Product) bool) []domain.Product {
	out := products[:0]
	for _, p := range products {
		if pred(p) {
			out = append(out, p)
		}
	}
	return out
}

// sortProducts orders the list in place. All orders are stable: ties keep
// their catalog-relative order. Featured is the catalog order itself.
func sortProducts(products []domain.Product, order SortOption) {
	switch order {
	case SortPriceLow:
		sort.SliceStable(products, func(i, j int) bool {
			return products[i].Price < products[j].Price
		})
	case SortPriceHigh:
		sort.SliceStable(products, func(i, j int) bool {
			return products[i].Price > products[j].Price
		})
	case SortNewest:
		// Higher ids are newer
		sort.SliceStable(products, func(i, j int) bool {
			return products[i].ID > products[j].ID
		})
	case SortBestSelling:
		// Stable partition, not a keyed sort: best sellers first in
		// their original relative order, then everything else.
		best := make([]domain.Product, 0, len(products))
		rest := make([]domain.Product, 0, len(products))
		for _, p := range products {
			if p.BestSeller {
				best = append(best, p)
			} else {
				rest = append(rest, p)
			}
		}
		copy(products, append(best, rest...))
	case SortTopRated:
		sort.SliceStable(products, func(i, j int) bool {
			return products[i].Rating > products[j].Rating
		})
	default:
		// featured: catalog order preserved
	}
}
