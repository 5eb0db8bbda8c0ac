package query

import (
	"context"

	catalog "github.com/tair/storefront/internal/catalog/domain"
	"github.com/tair/storefront/internal/shop/domain"
)

// GetWishlistQuery represents the query for a session's wishlist
type GetWishlistQuery struct {
	SessionID string
}

// WishlistView is the wishlist resolved against the catalog
type WishlistView struct {
	Items []catalog.Product `json:"items"`
	Count int               `json:"count"`
}

// GetWishlistHandler handles the get wishlist query
type GetWishlistHandler struct {
	shop    domain.ShopRepository
	catalog catalog.Catalog
}

// NewGetWishlistHandler creates a new get wishlist handler
func NewGetWishlistHandler(shop domain.ShopRepository, cat catalog.Catalog) *GetWishlistHandler {
	return &GetWishlistHandler{shop: shop, catalog: cat}
}

// Handle resolves the wishlist entries against the catalog, skipping ids
// the catalog no longer knows
func (h *GetWishlistHandler) Handle(ctx context.Context, q GetWishlistQuery) (*WishlistView, error) {
	wishlist := h.shop.Wishlist(ctx, q.SessionID)

	view := &WishlistView{Items: make([]catalog.Product, 0, len(wishlist))}
	for _, item := range wishlist {
		if product, err := h.catalog.FindByID(item.ProductID); err == nil {
			view.Items = append(view.Items, *product)
		}
	}
	view.Count = len(view.Items)

	return view, nil
}
