package query

import (
	"context"

	"github.com/tair/storefront/internal/shop/domain"
)

// ProductStatusQuery asks whether a product is in the session's cart or
// wishlist
type ProductStatusQuery struct {
	SessionID string
	ProductID uint
}

// ProductStatus reports cart and wishlist membership for one product
type ProductStatus struct {
	ProductID  uint `json:"product_id"`
	InCart     bool `json:"in_cart"`
	InWishlist bool `json:"in_wishlist"`
}

// ProductStatusHandler handles membership queries
type ProductStatusHandler struct {
	shop domain.ShopRepository
}

// NewProductStatusHandler creates a new product status handler
func NewProductStatusHandler(shop domain.ShopRepository) *ProductStatusHandler {
	return &ProductStatusHandler{shop: shop}
}

// Handle executes the membership query. Unknown product ids simply report
// false on both counts.
func (h *ProductStatusHandler) Handle(ctx context.Context, q ProductStatusQuery) (*ProductStatus, error) {
	return &ProductStatus{
		ProductID:  q.ProductID,
		InCart:     domain.InCart(h.shop.Cart(ctx, q.SessionID), q.ProductID),
		InWishlist: domain.InWishlist(h.shop.Wishlist(ctx, q.SessionID), q.ProductID),
	}, nil
}
