package domain

import "context"

// ShopRepository holds per-session cart and wishlist state. Update calls
// apply a transition atomically: no reader observes a half-applied
// collection. Persistence is best-effort behind this contract: a failing
// durable store never surfaces as an error, and the in-memory state stays
// authoritative for the rest of the session.
type ShopRepository interface {
	Cart(ctx context.Context, sessionID string) []CartItem
	Wishlist(ctx context.Context, sessionID string) []WishlistItem
	UpdateCart(ctx context.Context, sessionID string, apply func([]CartItem) []CartItem) []CartItem
	UpdateWishlist(ctx context.Context, sessionID string, apply func([]WishlistItem) []WishlistItem) []WishlistItem
}
