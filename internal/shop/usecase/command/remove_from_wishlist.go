package command

import (
	"context"

	"github.com/tair/storefront/internal/notify"
	"github.com/tair/storefront/internal/shop/domain"
)

// RemoveFromWishlistCommand represents the command to remove a wishlist
// entry directly, without toggle semantics
type RemoveFromWishlistCommand struct {
	SessionID string
	ProductID uint
}

// RemoveFromWishlistHandler handles the remove from wishlist command
type RemoveFromWishlistHandler struct {
	shop     domain.ShopRepository
	notifier notify.Notifier
}

// NewRemoveFromWishlistHandler creates a new remove from wishlist handler
func NewRemoveFromWishlistHandler(shop domain.ShopRepository, notifier notify.Notifier) *RemoveFromWishlistHandler {
	return &RemoveFromWishlistHandler{shop: shop, notifier: notifier}
}

// Handle removes the entry if present; removing an absent product is a
// no-op that still notifies
func (h *RemoveFromWishlistHandler) Handle(ctx context.Context, cmd RemoveFromWishlistCommand) (*domain.Event, error) {
	h.shop.UpdateWishlist(ctx, cmd.SessionID, func(wishlist []domain.WishlistItem) []domain.WishlistItem {
		return domain.RemoveWishlistItem(wishlist, cmd.ProductID)
	})

	event := domain.WishlistItemRemoved(cmd.SessionID, cmd.ProductID)
	h.notifier.Notify(ctx, event)
	return &event, nil
}
