package domain

import (
	"reflect"
	"testing"
)

func TestAddItem(t *testing.T) {
	tests := []struct {
		name      string
		cart      []CartItem
		productID uint
		quantity  int
		want      []CartItem
	}{
		{
			name:      "add to empty cart",
			cart:      nil,
			productID: 1,
			quantity:  1,
			want:      []CartItem{{ProductID: 1, Quantity: 1}},
		},
		{
			name:      "add new product appends a line",
			cart:      []CartItem{{ProductID: 1, Quantity: 2}},
			productID: 3,
			quantity:  1,
			want:      []CartItem{{ProductID: 1, Quantity: 2}, {ProductID: 3, Quantity: 1}},
		},
		{
			name:      "add present product merges quantities",
			cart:      []CartItem{{ProductID: 1, Quantity: 1}, {ProductID: 2, Quantity: 1}},
			productID: 1,
			quantity:  2,
			want:      []CartItem{{ProductID: 1, Quantity: 3}, {ProductID: 2, Quantity: 1}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := AddItem(tt.cart, tt.productID, tt.quantity)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("AddItem() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestAddItemTwiceGrowsOneLine(t *testing.T) {
	cart := AddItem(nil, 7, 1)
	cart = AddItem(cart, 7, 1)

	if len(cart) != 1 {
		t.Fatalf("expected a single line, got %d", len(cart))
	}
	if cart[0].Quantity != 2 {
		t.Errorf("expected quantity 2, got %d", cart[0].Quantity)
	}
	if CartCount(cart) != 2 {
		t.Errorf("expected count 2, got %d", CartCount(cart))
	}
}

func TestAddItemDoesNotMutateInput(t *testing.T) {
	cart := []CartItem{{ProductID: 1, Quantity: 1}}
	AddItem(cart, 1, 5)

	if cart[0].Quantity != 1 {
		t.Errorf("input cart mutated, quantity = %d", cart[0].Quantity)
	}
}

func TestRemoveItem(t *testing.T) {
	cart := []CartItem{{ProductID: 1, Quantity: 2}, {ProductID: 2, Quantity: 1}}

	got := RemoveItem(cart, 1)
	want := []CartItem{{ProductID: 2, Quantity: 1}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("RemoveItem() = %v, want %v", got, want)
	}

	// Absent product is a no-op
	got = RemoveItem(cart, 99)
	if !reflect.DeepEqual(got, cart) {
		t.Errorf("RemoveItem(absent) = %v, want %v", got, cart)
	}
}

func TestSetItemQuantity(t *testing.T) {
	cart := []CartItem{{ProductID: 1, Quantity: 2}, {ProductID: 2, Quantity: 1}}

	tests := []struct {
		name      string
		productID uint
		quantity  int
		want      []CartItem
	}{
		{
			name:      "replace quantity",
			productID: 1,
			quantity:  5,
			want:      []CartItem{{ProductID: 1, Quantity: 5}, {ProductID: 2, Quantity: 1}},
		},
		{
			name:      "zero removes the line",
			productID: 1,
			quantity:  0,
			want:      []CartItem{{ProductID: 2, Quantity: 1}},
		},
		{
			name:      "negative removes the line",
			productID: 1,
			quantity:  -5,
			want:      []CartItem{{ProductID: 2, Quantity: 1}},
		},
		{
			name:      "absent product is a no-op",
			productID: 99,
			quantity:  3,
			want:      cart,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SetItemQuantity(cart, tt.productID, tt.quantity)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("SetItemQuantity() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestCartCountSumsQuantities(t *testing.T) {
	cart := []CartItem{
		{ProductID: 1, Quantity: 3},
		{ProductID: 2, Quantity: 2},
	}
	if got := CartCount(cart); got != 5 {
		t.Errorf("CartCount() = %d, want 5", got)
	}
	if got := CartCount(nil); got != 0 {
		t.Errorf("CartCount(nil) = %d, want 0", got)
	}
}

func TestCartTotal(t *testing.T) {
	prices := map[uint]float64{1: 10.0, 2: 2.5}
	priceOf := func(id uint) (float64, bool) {
		p, ok := prices[id]
		return p, ok
	}

	cart := []CartItem{
		{ProductID: 1, Quantity: 2},
		{ProductID: 2, Quantity: 4},
		{ProductID: 99, Quantity: 1}, // unresolvable, contributes nothing
	}

	if got := CartTotal(cart, priceOf); got != 30.0 {
		t.Errorf("CartTotal() = %f, want 30.0", got)
	}
}

func TestInCart(t *testing.T) {
	cart := []CartItem{{ProductID: 1, Quantity: 1}}
	if !InCart(cart, 1) {
		t.Error("expected product 1 in cart")
	}
	if InCart(cart, 2) {
		t.Error("did not expect product 2 in cart")
	}
}
