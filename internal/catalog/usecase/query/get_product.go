package query

import (
	"fmt"

	"github.com/tair/storefront/internal/catalog/domain"
)

// GetProductQuery represents the query to get a single product
type GetProductQuery struct {
	ID uint
}

// GetProductHandler handles get product query
type GetProductHandler struct {
	catalog domain.Catalog
}

// NewGetProductHandler creates a new get product handler
func NewGetProductHandler(catalog domain.Catalog) *GetProductHandler {
	return &GetProductHandler{catalog: catalog}
}

// Handle executes the get product query
func (h *GetProductHandler) Handle(q GetProductQuery) (*domain.Product, error) {
	product, err := h.catalog.FindByID(q.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to get product %d: %w", q.ID, err)
	}
	return product, nil
}

// Related resolves the product's related-product ids, skipping ids that
// are not present in the catalog.
func (h *GetProductHandler) Related(product *domain.Product) []domain.Product {
	related := make([]domain.Product, 0, len(product.RelatedIDs))
	for _, id := range product.RelatedIDs {
		if p, err := h.catalog.FindByID(id); err == nil {
			related = append(related, *p)
		}
	}
	return related
}
