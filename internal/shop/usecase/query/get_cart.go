package query

import (
	"context"

	catalog "github.com/tair/storefront/internal/catalog/domain"
	"github.com/tair/storefront/internal/shop/domain"
)

// GetCartQuery represents the query for a session's cart
type GetCartQuery struct {
	SessionID string
}

// CartLine is a cart line resolved against the catalog
type CartLine struct {
	Product  catalog.Product `json:"product"`
	Quantity int             `json:"quantity"`
	Subtotal float64         `json:"subtotal"`
}

// CartView is the cart with derived aggregates. Total is the sum of
// price times quantity; Count is the sum of quantities, not line count.
type CartView struct {
	Items []CartLine `json:"items"`
	Total float64    `json:"total"`
	Count int        `json:"count"`
}

// GetCartHandler handles the get cart query
type GetCartHandler struct {
	shop    domain.ShopRepository
	catalog catalog.Catalog
}

// NewGetCartHandler creates a new get cart handler
func NewGetCartHandler(shop domain.ShopRepository, cat catalog.Catalog) *GetCartHandler {
	return &GetCartHandler{shop: shop, catalog: cat}
}

// Handle resolves the cart lines against the catalog. Lines whose product
// id is no longer in the catalog are skipped rather than failing the view.
func (h *GetCartHandler) Handle(ctx context.Context, q GetCartQuery) (*CartView, error) {
	cart := h.shop.Cart(ctx, q.SessionID)

	view := &CartView{Items: make([]CartLine, 0, len(cart))}
	for _, item := range cart {
		product, err := h.catalog.FindByID(item.ProductID)
		if err != nil {
			continue
		}
		view.Items = append(view.Items, CartLine{
			Product:  *product,
			Quantity: item.Quantity,
			Subtotal: product.Price * float64(item.Quantity),
		})
	}

	view.Total = domain.CartTotal(cart, func(id uint) (float64, bool) {
		product, err := h.catalog.FindByID(id)
		if err != nil {
			return 0, false
		}
		return product.Price, true
	})
	view.Count = domain.CartCount(cart)

	return view, nil
}
