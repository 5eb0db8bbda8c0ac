package command

import (
	"context"

	"github.com/tair/storefront/internal/notify"
	"github.com/tair/storefront/internal/shop/domain"
)

// ClearWishlistCommand represents the command to empty the wishlist
type ClearWishlistCommand struct {
	SessionID string
}

// ClearWishlistHandler handles the clear wishlist command
type ClearWishlistHandler struct {
	shop     domain.ShopRepository
	notifier notify.Notifier
}

// NewClearWishlistHandler creates a new clear wishlist handler
func NewClearWishlistHandler(shop domain.ShopRepository, notifier notify.Notifier) *ClearWishlistHandler {
	return &ClearWishlistHandler{shop: shop, notifier: notifier}
}

// Handle empties the wishlist collection
func (h *ClearWishlistHandler) Handle(ctx context.Context, cmd ClearWishlistCommand) (*domain.Event, error) {
	h.shop.UpdateWishlist(ctx, cmd.SessionID, func([]domain.WishlistItem) []domain.WishlistItem {
		return nil
	})

	event := domain.WishlistCleared(cmd.SessionID)
	h.notifier.Notify(ctx, event)
	return &event, nil
}
