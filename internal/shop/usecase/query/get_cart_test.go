package query

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	catalogRepo "github.com/tair/storefront/internal/catalog/repository"
	"github.com/tair/storefront/internal/shop/domain"
	"github.com/tair/storefront/internal/shop/repository"
	"github.com/tair/storefront/pkg/kv"
)

const session = "7c1e2a3b-4d5f-4a6b-8c7d-9e0f1a2b3c4d"

func newShop() domain.ShopRepository {
	return repository.NewSessionStore(kv.NewMemoryStore())
}

func TestGetCartAggregates(t *testing.T) {
	shop := newShop()
	catalog := catalogRepo.NewSampleCatalog()
	h := NewGetCartHandler(shop, catalog)
	ctx := context.Background()

	shop.UpdateCart(ctx, session, func(cart []domain.CartItem) []domain.CartItem {
		cart = domain.AddItem(cart, 1, 2)  // 299.99 each
		cart = domain.AddItem(cart, 12, 1) // 49.99
		return cart
	})

	view, err := h.Handle(ctx, GetCartQuery{SessionID: session})
	require.NoError(t, err)

	require.Len(t, view.Items, 2)
	assert.Equal(t, 3, view.Count)
	assert.InDelta(t, 2*299.99+49.99, view.Total, 0.001)
	assert.InDelta(t, 2*299.99, view.Items[0].Subtotal, 0.001)
}

func TestGetCartSkipsUnknownProducts(t *testing.T) {
	shop := newShop()
	catalog := catalogRepo.NewSampleCatalog()
	h := NewGetCartHandler(shop, catalog)
	ctx := context.Background()

	shop.UpdateCart(ctx, session, func(cart []domain.CartItem) []domain.CartItem {
		cart = domain.AddItem(cart, 1, 1)
		cart = domain.AddItem(cart, 999, 4) // no longer in the catalog
		return cart
	})

	view, err := h.Handle(ctx, GetCartQuery{SessionID: session})
	require.NoError(t, err)

	require.Len(t, view.Items, 1)
	assert.InDelta(t, 299.99, view.Total, 0.001)
}

func TestGetCartEmptySession(t *testing.T) {
	h := NewGetCartHandler(newShop(), catalogRepo.NewSampleCatalog())

	view, err := h.Handle(context.Background(), GetCartQuery{SessionID: session})
	require.NoError(t, err)

	assert.Empty(t, view.Items)
	assert.Zero(t, view.Total)
	assert.Zero(t, view.Count)
}

func TestGetWishlist(t *testing.T) {
	shop := newShop()
	catalog := catalogRepo.NewSampleCatalog()
	h := NewGetWishlistHandler(shop, catalog)
	ctx := context.Background()

	shop.UpdateWishlist(ctx, session, func(wishlist []domain.WishlistItem) []domain.WishlistItem {
		wishlist, _ = domain.ToggleWishlist(wishlist, 4)
		wishlist, _ = domain.ToggleWishlist(wishlist, 11)
		return wishlist
	})

	view, err := h.Handle(ctx, GetWishlistQuery{SessionID: session})
	require.NoError(t, err)

	require.Len(t, view.Items, 2)
	assert.Equal(t, 2, view.Count)
	assert.Equal(t, uint(4), view.Items[0].ID)
	assert.Equal(t, uint(11), view.Items[1].ID)
}

func TestProductStatus(t *testing.T) {
	shop := newShop()
	h := NewProductStatusHandler(shop)
	ctx := context.Background()

	shop.UpdateCart(ctx, session, func(cart []domain.CartItem) []domain.CartItem {
		return domain.AddItem(cart, 1, 1)
	})
	shop.UpdateWishlist(ctx, session, func(wishlist []domain.WishlistItem) []domain.WishlistItem {
		next, _ := domain.ToggleWishlist(wishlist, 2)
		return next
	})

	status, err := h.Handle(ctx, ProductStatusQuery{SessionID: session, ProductID: 1})
	require.NoError(t, err)
	assert.True(t, status.InCart)
	assert.False(t, status.InWishlist)

	status, err = h.Handle(ctx, ProductStatusQuery{SessionID: session, ProductID: 2})
	require.NoError(t, err)
	assert.False(t, status.InCart)
	assert.True(t, status.InWishlist)

	status, err = h.Handle(ctx, ProductStatusQuery{SessionID: session, ProductID: 999})
	require.NoError(t, err)
	assert.False(t, status.InCart)
	assert.False(t, status.InWishlist)
}
