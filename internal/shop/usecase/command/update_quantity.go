package command

import (
	"context"

	"github.com/tair/storefront/internal/notify"
	"github.com/tair/storefront/internal/shop/domain"
)

// UpdateQuantityCommand represents the command to set a cart line's
// quantity. The quantity replaces the current value, it does not add.
type UpdateQuantityCommand struct {
	SessionID string
	ProductID uint
	Quantity  int
}

// UpdateQuantityHandler handles the update quantity command
type UpdateQuantityHandler struct {
	shop     domain.ShopRepository
	notifier notify.Notifier
}

// NewUpdateQuantityHandler creates a new update quantity handler
func NewUpdateQuantityHandler(shop domain.ShopRepository, notifier notify.Notifier) *UpdateQuantityHandler {
	return &UpdateQuantityHandler{shop: shop, notifier: notifier}
}

// Handle sets the line's quantity. A quantity of zero or less behaves
// exactly as a removal, including its notification; a plain quantity
// change emits none. Unknown product ids are a silent no-op.
func (h *UpdateQuantityHandler) Handle(ctx context.Context, cmd UpdateQuantityCommand) (*domain.Event, error) {
	h.shop.UpdateCart(ctx, cmd.SessionID, func(cart []domain.CartItem) []domain.CartItem {
		return domain.SetItemQuantity(cart, cmd.ProductID, cmd.Quantity)
	})

	if cmd.Quantity <= 0 {
		event := domain.CartItemRemoved(cmd.SessionID, cmd.ProductID)
		h.notifier.Notify(ctx, event)
		return &event, nil
	}

	return nil, nil
}
