package command

import (
	"context"
	"fmt"

	catalog "github.com/tair/storefront/internal/catalog/domain"
	"github.com/tair/storefront/internal/notify"
	"github.com/tair/storefront/internal/shop/domain"
)

// AddToCartCommand represents the command to add a product to the cart.
// A quantity below 1 defaults to 1.
type AddToCartCommand struct {
	SessionID string
	ProductID uint
	Quantity  int
}

// AddToCartHandler handles the add to cart command
type AddToCartHandler struct {
	shop     domain.ShopRepository
	catalog  catalog.Catalog
	notifier notify.Notifier
}

// NewAddToCartHandler creates a new add to cart handler
func NewAddToCartHandler(shop domain.ShopRepository, cat catalog.Catalog, notifier notify.Notifier) *AddToCartHandler {
	return &AddToCartHandler{shop: shop, catalog: cat, notifier: notifier}
}

// Handle merges the quantity into the product's cart line, appending a new
// line when absent. No stock limit is enforced here; stock checks belong
// to the caller.
func (h *AddToCartHandler) Handle(ctx context.Context, cmd AddToCartCommand) (*domain.Event, error) {
	if cmd.Quantity < 1 {
		cmd.Quantity = 1
	}

	product, err := h.catalog.FindByID(cmd.ProductID)
	if err != nil {
		return nil, fmt.Errorf("failed to add product %d to cart: %w", cmd.ProductID, err)
	}

	h.shop.UpdateCart(ctx, cmd.SessionID, func(cart []domain.CartItem) []domain.CartItem {
		return domain.AddItem(cart, cmd.ProductID, cmd.Quantity)
	})

	event := domain.CartItemAdded(cmd.SessionID, cmd.ProductID, product.Name, cmd.Quantity)
	h.notifier.Notify(ctx, event)
	return &event, nil
}
