package domain

import (
	"reflect"
	"testing"
)

func TestToggleWishlistAddsWhenAbsent(t *testing.T) {
	wishlist, added := ToggleWishlist(nil, 4)

	if !added {
		t.Error("expected toggle of absent product to report added")
	}
	if !InWishlist(wishlist, 4) {
		t.Error("expected product 4 in wishlist after toggle")
	}
}

func TestToggleWishlistRemovesWhenPresent(t *testing.T) {
	wishlist := []WishlistItem{{ProductID: 4}, {ProductID: 7}}

	got, added := ToggleWishlist(wishlist, 4)
	if added {
		t.Error("expected toggle of present product to report removed")
	}
	want := []WishlistItem{{ProductID: 7}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("ToggleWishlist() = %v, want %v", got, want)
	}
}

func TestToggleTwiceRestoresMembership(t *testing.T) {
	wishlist := []WishlistItem{{ProductID: 1}}

	once, _ := ToggleWishlist(wishlist, 2)
	twice, _ := ToggleWishlist(once, 2)

	if InWishlist(twice, 2) {
		t.Error("expected product 2 absent after toggling twice")
	}
	if !InWishlist(twice, 1) {
		t.Error("expected product 1 untouched")
	}
}

func TestRemoveWishlistItem(t *testing.T) {
	wishlist := []WishlistItem{{ProductID: 1}, {ProductID: 2}}

	got := RemoveWishlistItem(wishlist, 1)
	want := []WishlistItem{{ProductID: 2}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("RemoveWishlistItem() = %v, want %v", got, want)
	}

	// Absent product is a no-op
	got = RemoveWishlistItem(wishlist, 42)
	if !reflect.DeepEqual(got, wishlist) {
		t.Errorf("RemoveWishlistItem(absent) = %v, want %v", got, wishlist)
	}
}

func TestToggleWishlistDoesNotMutateInput(t *testing.T) {
	wishlist := []WishlistItem{{ProductID: 1}}
	ToggleWishlist(wishlist, 2)

	if len(wishlist) != 1 {
		t.Errorf("input wishlist mutated, len = %d", len(wishlist))
	}
}
