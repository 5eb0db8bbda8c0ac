package command

import (
	"context"
	"fmt"

	catalog "github.com/tair/storefront/internal/catalog/domain"
	"github.com/tair/storefront/internal/notify"
	"github.com/tair/storefront/internal/shop/domain"
)

// ToggleWishlistCommand represents the wishlist add operation, which
// carries toggle semantics: adding an already-wished product removes it.
type ToggleWishlistCommand struct {
	SessionID string
	ProductID uint
}

// ToggleWishlistHandler handles the wishlist toggle command
type ToggleWishlistHandler struct {
	shop     domain.ShopRepository
	catalog  catalog.Catalog
	notifier notify.Notifier
}

// NewToggleWishlistHandler creates a new toggle wishlist handler
func NewToggleWishlistHandler(shop domain.ShopRepository, cat catalog.Catalog, notifier notify.Notifier) *ToggleWishlistHandler {
	return &ToggleWishlistHandler{shop: shop, catalog: cat, notifier: notifier}
}

// Handle flips the product's wishlist membership and notifies with the
// matching added/removed message
func (h *ToggleWishlistHandler) Handle(ctx context.Context, cmd ToggleWishlistCommand) (*domain.Event, error) {
	product, err := h.catalog.FindByID(cmd.ProductID)
	if err != nil {
		return nil, fmt.Errorf("failed to toggle product %d on wishlist: %w", cmd.ProductID, err)
	}

	added := false
	h.shop.UpdateWishlist(ctx, cmd.SessionID, func(wishlist []domain.WishlistItem) []domain.WishlistItem {
		next, wasAdded := domain.ToggleWishlist(wishlist, cmd.ProductID)
		added = wasAdded
		return next
	})

	var event domain.Event
	if added {
		event = domain.WishlistItemAdded(cmd.SessionID, cmd.ProductID, product.Name)
	} else {
		event = domain.WishlistItemToggledOff(cmd.SessionID, cmd.ProductID, product.Name)
	}
	h.notifier.Notify(ctx, event)
	return &event, nil
}
