package query

import (
	"github.com/tair/storefront/internal/catalog/domain"
)

// SearchProductsQuery represents a free-text catalog search
type SearchProductsQuery struct {
	Query string
}

// SearchProductsHandler handles free-text search
type SearchProductsHandler struct {
	catalog domain.Catalog
}

// NewSearchProductsHandler creates a new search handler
func NewSearchProductsHandler(catalog domain.Catalog) *SearchProductsHandler {
	return &SearchProductsHandler{catalog: catalog}
}

// Handle keeps products where any searchable field contains the query as
// a case-insensitive substring. An empty query matches the whole catalog.
func (h *SearchProductsHandler) Handle(q SearchProductsQuery) ([]domain.Product, error) {
	products := h.catalog.All()
	if q.Query == "" {
		return products, nil
	}

	out := products[:0]
	for _, p := range products {
		if p.Matches(q.Query) {
			out = append(out, p)
		}
	}

	return out, nil
}
