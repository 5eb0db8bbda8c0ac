package command

import (
	"context"

	"github.com/tair/storefront/internal/notify"
	"github.com/tair/storefront/internal/shop/domain"
)

// RemoveFromCartCommand represents the command to remove a cart line
type RemoveFromCartCommand struct {
	SessionID string
	ProductID uint
}

// RemoveFromCartHandler handles the remove from cart command
type RemoveFromCartHandler struct {
	shop     domain.ShopRepository
	notifier notify.Notifier
}

// NewRemoveFromCartHandler creates a new remove from cart handler
func NewRemoveFromCartHandler(shop domain.ShopRepository, notifier notify.Notifier) *RemoveFromCartHandler {
	return &RemoveFromCartHandler{shop: shop, notifier: notifier}
}

// Handle removes the product's line. Removing an absent product is a
// no-op that still notifies; the caller never sees an error.
func (h *RemoveFromCartHandler) Handle(ctx context.Context, cmd RemoveFromCartCommand) (*domain.Event, error) {
	h.shop.UpdateCart(ctx, cmd.SessionID, func(cart []domain.CartItem) []domain.CartItem {
		return domain.RemoveItem(cart, cmd.ProductID)
	})

	event := domain.CartItemRemoved(cmd.SessionID, cmd.ProductID)
	h.notifier.Notify(ctx, event)
	return &event, nil
}
