package domain

// WishlistItem is a wishlist entry. The wishlist is a set keyed by product
// id, kept in insertion order.
type WishlistItem struct {
	ProductID uint `json:"product_id"`
}

// ToggleWishlist returns the wishlist with the product's membership
// flipped: absent products are appended, present ones removed. The second
// return value reports whether the product was added. This toggle-on-add
// contract is deliberate and differs from the cart's pure-add behavior.
func ToggleWishlist(wishlist []WishlistItem, productID uint) ([]WishlistItem, bool) {
	if InWishlist(wishlist, productID) {
		return RemoveWishlistItem(wishlist, productID), false
	}

	out := make([]WishlistItem, len(wishlist))
	copy(out, wishlist)
	return append(out, WishlistItem{ProductID: productID}), true
}

// RemoveWishlistItem returns the wishlist without the product's entry.
// Removing an absent product is a no-op.
func RemoveWishlistItem(wishlist []WishlistItem, productID uint) []WishlistItem {
	out := make([]WishlistItem, 0, len(wishlist))
	for _, item := range wishlist {
		if item.ProductID != productID {
			out = append(out, item)
		}
	}
	return out
}

// InWishlist reports wishlist membership for a product id
func InWishlist(wishlist []WishlistItem, productID uint) bool {
	for _, item := range wishlist {
		if item.ProductID == productID {
			return true
		}
	}
	return false
}
