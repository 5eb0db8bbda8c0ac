package command

import (
	"context"

	"github.com/tair/storefront/internal/notify"
	"github.com/tair/storefront/internal/shop/domain"
)

// ClearCartCommand represents the command to empty the cart
type ClearCartCommand struct {
	SessionID string
}

// ClearCartHandler handles the clear cart command
type ClearCartHandler struct {
	shop     domain.ShopRepository
	notifier notify.Notifier
}

// NewClearCartHandler creates a new clear cart handler
func NewClearCartHandler(shop domain.ShopRepository, notifier notify.Notifier) *ClearCartHandler {
	return &ClearCartHandler{shop: shop, notifier: notifier}
}

// Handle empties the cart collection
func (h *ClearCartHandler) Handle(ctx context.Context, cmd ClearCartCommand) (*domain.Event, error) {
	h.shop.UpdateCart(ctx, cmd.SessionID, func([]domain.CartItem) []domain.CartItem {
		return nil
	})

	event := domain.CartCleared(cmd.SessionID)
	h.notifier.Notify(ctx, event)
	return &event, nil
}
