package domain

// CartItem is a cart line: one product with its quantity. A cart holds at
// most one line per product id; adding an already-present product grows
// the line instead of duplicating it.
type CartItem struct {
	ProductID uint `json:"product_id"`
	Quantity  int  `json:"quantity"`
}

// AddItem returns the cart with quantity merged into the product's line,
// appending a new line when the product is not in the cart yet. Line order
// is insertion order. quantity is expected to be at least 1.
func AddItem(cart []CartItem, productID uint, quantity int) []CartItem {
	out := make([]CartItem, len(cart))
	copy(out, cart)

	for i := range out {
		if out[i].ProductID == productID {
			out[i].Quantity += quantity
			return out
		}
	}
	return append(out, CartItem{ProductID: productID, Quantity: quantity})
}

// RemoveItem returns the cart without the product's line. Removing an
// absent product is a no-op, not an error.
func RemoveItem(cart []CartItem, productID uint) []CartItem {
	out := make([]CartItem, 0, len(cart))
	for _, item := range cart {
		if item.ProductID != productID {
			out = append(out, item)
		}
	}
	return out
}

// SetItemQuantity returns the cart with the line's quantity replaced.
// A quantity of zero or less removes the line entirely. Setting an absent
// product is a no-op.
func SetItemQuantity(cart []CartItem, productID uint, quantity int) []CartItem {
	if quantity <= 0 {
		return RemoveItem(cart, productID)
	}

	out := make([]CartItem, len(cart))
	copy(out, cart)
	for i := range out {
		if out[i].ProductID == productID {
			out[i].Quantity = quantity
			break
		}
	}
	return out
}

// InCart reports cart membership for a product id
func InCart(cart []CartItem, productID uint) bool {
	for _, item := range cart {
		if item.ProductID == productID {
			return true
		}
	}
	return false
}

// CartCount is the sum of line quantities, not the line count
func CartCount(cart []CartItem) int {
	count := 0
	for _, item := range cart {
		count += item.Quantity
	}
	return count
}

// CartTotal sums price times quantity over the cart. priceOf resolves a
// product id to its current price; lines whose product cannot be resolved
// contribute nothing.
func CartTotal(cart []CartItem, priceOf func(productID uint) (float64, bool)) float64 {
	total := 0.0
	for _, item := range cart {
		if price, ok := priceOf(item.ProductID); ok {
			total += price * float64(item.Quantity)
		}
	}
	return total
}
