package query

import (
	"fmt"

	"github.com/tair/storefront/internal/catalog/domain"
)

// Collection names the derived catalog views
type Collection string

const (
	CollectionFeatured    Collection = "featured"
	CollectionNewArrivals Collection = "new-arrivals"
	CollectionBestSellers Collection = "best-sellers"
	CollectionSale        Collection = "sale"
)

// GetCollectionQuery represents the query for a derived catalog view
type GetCollectionQuery struct {
	Collection Collection
}

// GetCollectionHandler handles derived view queries
type GetCollectionHandler struct {
	catalog domain.Catalog
}

// NewGetCollectionHandler creates a new collection handler
func NewGetCollectionHandler(catalog domain.Catalog) *GetCollectionHandler {
	return &GetCollectionHandler{catalog: catalog}
}

// Handle executes the collection query. The sale view keeps products that
// carry an original price at all; whether the discount is real is the
// listing filter's concern, not this view's.
func (h *GetCollectionHandler) Handle(q GetCollectionQuery) ([]domain.Product, error) {
	var pred func(domain.Product) bool

	switch q.Collection {
	case CollectionFeatured:
		pred = func(p domain.Product) bool { return p.Featured }
	case CollectionNewArrivals:
		pred = func(p domain.Product) bool { return p.New }
	case CollectionBestSellers:
		pred = func(p domain.Product) bool { return p.BestSeller }
	case CollectionSale:
		pred = func(p domain.Product) bool { return p.OnSale() }
	default:
		return nil, fmt.Errorf("unknown collection %q", q.Collection)
	}

	products := h.catalog.All()
	out := products[:0]
	for _, p := range products {
		if pred(p) {
			out = append(out, p)
		}
	}

	return out, nil
}
