package query

import (
	"github.com/tair/storefront/internal/catalog/domain"
)

// ListCategoriesQuery represents the query to list all categories
type ListCategoriesQuery struct{}

// ListCategoriesHandler handles list categories query
type ListCategoriesHandler struct {
	catalog domain.Catalog
}

// NewListCategoriesHandler creates a new list categories handler
func NewListCategoriesHandler(catalog domain.Catalog) *ListCategoriesHandler {
	return &ListCategoriesHandler{catalog: catalog}
}

// Handle executes the list categories query
func (h *ListCategoriesHandler) Handle(_ ListCategoriesQuery) ([]domain.Category, error) {
	return h.catalog.Categories(), nil
}
