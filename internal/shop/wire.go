//go:build wireinject
// +build wireinject

package shop

import (
	"github.com/google/wire"

	catalog "github.com/tair/storefront/internal/catalog/domain"
	"github.com/tair/storefront/internal/notify"
	"github.com/tair/storefront/internal/shop/delivery/http"
	"github.com/tair/storefront/internal/shop/domain"
	"github.com/tair/storefront/internal/shop/repository"
	"github.com/tair/storefront/internal/shop/usecase/command"
	"github.com/tair/storefront/internal/shop/usecase/query"
	"github.com/tair/storefront/pkg/kv"
)

// ProvideShopRepository provides the session-scoped shop state repository
func ProvideShopRepository(store kv.Store) domain.ShopRepository {
	return repository.NewSessionStore(store)
}

// Command Handlers Providers
func ProvideAddToCartHandler(shop domain.ShopRepository, cat catalog.Catalog, notifier notify.Notifier) *command.AddToCartHandler {
	return command.NewAddToCartHandler(shop, cat, notifier)
}

func ProvideRemoveFromCartHandler(shop domain.ShopRepository, notifier notify.Notifier) *command.RemoveFromCartHandler {
	return command.NewRemoveFromCartHandler(shop, notifier)
}

func ProvideUpdateQuantityHandler(shop domain.ShopRepository, notifier notify.Notifier) *command.UpdateQuantityHandler {
	return command.NewUpdateQuantityHandler(shop, notifier)
}

func ProvideClearCartHandler(shop domain.ShopRepository, notifier notify.Notifier) *command.ClearCartHandler {
	return command.NewClearCartHandler(shop, notifier)
}

func ProvideToggleWishlistHandler(shop domain.ShopRepository, cat catalog.Catalog, notifier notify.Notifier) *command.ToggleWishlistHandler {
	return command.NewToggleWishlistHandler(shop, cat, notifier)
}

func ProvideRemoveFromWishlistHandler(shop domain.ShopRepository, notifier notify.Notifier) *command.RemoveFromWishlistHandler {
	return command.NewRemoveFromWishlistHandler(shop, notifier)
}

func ProvideClearWishlistHandler(shop domain.ShopRepository, notifier notify.Notifier) *command.ClearWishlistHandler {
	return command.NewClearWishlistHandler(shop, notifier)
}

// Query Handlers Providers
func ProvideGetCartHandler(shop domain.ShopRepository, cat catalog.Catalog) *query.GetCartHandler {
	return query.NewGetCartHandler(shop, cat)
}

func ProvideGetWishlistHandler(shop domain.ShopRepository, cat catalog.Catalog) *query.GetWishlistHandler {
	return query.NewGetWishlistHandler(shop, cat)
}

func ProvideProductStatusHandler(shop domain.ShopRepository) *query.ProductStatusHandler {
	return query.NewProductStatusHandler(shop)
}

// Wire sets
var RepositorySet = wire.NewSet(
	ProvideShopRepository,
)

var CommandHandlerSet = wire.NewSet(
	ProvideAddToCartHandler,
	ProvideRemoveFromCartHandler,
	ProvideUpdateQuantityHandler,
	ProvideClearCartHandler,
	ProvideToggleWishlistHandler,
	ProvideRemoveFromWishlistHandler,
	ProvideClearWishlistHandler,
)

var QueryHandlerSet = wire.NewSet(
	ProvideGetCartHandler,
	ProvideGetWishlistHandler,
	ProvideProductStatusHandler,
)

var AllHandlersSet = wire.NewSet(
	RepositorySet,
	CommandHandlerSet,
	QueryHandlerSet,
)

// InitializeHTTPHandler initializes HTTP handler with all dependencies
func InitializeHTTPHandler(store kv.Store, cat catalog.Catalog, notifier notify.Notifier) (*http.ShopHandler, error) {
	wire.Build(
		AllHandlersSet,
		http.NewShopHandlerWithDI,
	)
	return nil, nil
}
