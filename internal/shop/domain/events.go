package domain

import "fmt"

// EventType identifies a shop state mutation
type EventType string

const (
	EventCartItemAdded       EventType = "cart.item_added"
	EventCartItemRemoved     EventType = "cart.item_removed"
	EventCartCleared         EventType = "cart.cleared"
	EventWishlistItemAdded   EventType = "wishlist.item_added"
	EventWishlistItemRemoved EventType = "wishlist.item_removed"
	EventWishlistCleared     EventType = "wishlist.cleared"
)

// Event describes a completed shop mutation. Commands return events;
// notification adapters turn them into user-visible messages, so the
// state transitions stay free of UI concerns.
type Event struct {
	Type        EventType `json:"type"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	SessionID   string    `json:"session_id"`
	ProductID   uint      `json:"product_id,omitempty"`
	Quantity    int       `json:"quantity,omitempty"`
}

// CartItemAdded builds the event for a product added to the cart
func CartItemAdded(sessionID string, productID uint, productName string, quantity int) Event {
	return Event{
		Type:        EventCartItemAdded,
		Title:       "Added to cart",
		Description: fmt.Sprintf("%s added to your cart.", productName),
		SessionID:   sessionID,
		ProductID:   productID,
		Quantity:    quantity,
	}
}

// CartItemRemoved builds the event for a cart line removal
func CartItemRemoved(sessionID string, productID uint) Event {
	return Event{
		Type:        EventCartItemRemoved,
		Title:       "Removed from cart",
		Description: "Item removed from your cart.",
		SessionID:   sessionID,
		ProductID:   productID,
	}
}

// CartCleared builds the event for an emptied cart
func CartCleared(sessionID string) Event {
	return Event{
		Type:        EventCartCleared,
		Title:       "Cart cleared",
		Description: "All items have been removed from your cart.",
		SessionID:   sessionID,
	}
}

// WishlistItemAdded builds the event for a product added to the wishlist
func WishlistItemAdded(sessionID string, productID uint, productName string) Event {
	return Event{
		Type:        EventWishlistItemAdded,
		Title:       "Added to wishlist",
		Description: fmt.Sprintf("%s added to your wishlist.", productName),
		SessionID:   sessionID,
		ProductID:   productID,
	}
}

// WishlistItemToggledOff builds the event for a toggle that removed the
// product; the description names the product, unlike a direct removal.
func WishlistItemToggledOff(sessionID string, productID uint, productName string) Event {
	return Event{
		Type:        EventWishlistItemRemoved,
		Title:       "Removed from wishlist",
		Description: fmt.Sprintf("%s removed from your wishlist.", productName),
		SessionID:   sessionID,
		ProductID:   productID,
	}
}

// WishlistItemRemoved builds the event for a direct wishlist removal
func WishlistItemRemoved(sessionID string, productID uint) Event {
	return Event{
		Type:        EventWishlistItemRemoved,
		Title:       "Removed from wishlist",
		Description: "Item removed from your wishlist.",
		SessionID:   sessionID,
		ProductID:   productID,
	}
}

// WishlistCleared builds the event for an emptied wishlist
func WishlistCleared(sessionID string) Event {
	return Event{
		Type:        EventWishlistCleared,
		Title:       "Wishlist cleared",
		Description: "All items have been removed from your wishlist.",
		SessionID:   sessionID,
	}
}
