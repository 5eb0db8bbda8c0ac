//go:build wireinject
// +build wireinject

package catalog

import (
	"github.com/google/wire"

	"github.com/tair/storefront/internal/catalog/delivery/http"
	"github.com/tair/storefront/internal/catalog/domain"
	"github.com/tair/storefront/internal/catalog/repository"
	"github.com/tair/storefront/internal/catalog/usecase/query"
)

// ProvideCatalog provides the static product catalog
func ProvideCatalog() domain.Catalog {
	return repository.NewSampleCatalog()
}

// Query Handlers Providers
func ProvideListProductsHandler(catalog domain.Catalog) *query.ListProductsHandler {
	return query.NewListProductsHandler(catalog)
}

func ProvideGetProductHandler(catalog domain.Catalog) *query.GetProductHandler {
	return query.NewGetProductHandler(catalog)
}

func ProvideSearchProductsHandler(catalog domain.Catalog) *query.SearchProductsHandler {
	return query.NewSearchProductsHandler(catalog)
}

func ProvideCategoryProductsHandler(catalog domain.Catalog) *query.CategoryProductsHandler {
	return query.NewCategoryProductsHandler(catalog)
}

func ProvideGetCollectionHandler(catalog domain.Catalog) *query.GetCollectionHandler {
	return query.NewGetCollectionHandler(catalog)
}

func ProvideListCategoriesHandler(catalog domain.Catalog) *query.ListCategoriesHandler {
	return query.NewListCategoriesHandler(catalog)
}

// Wire sets
var CatalogSet = wire.NewSet(
	ProvideCatalog,
)

var QueryHandlerSet = wire.NewSet(
	ProvideListProductsHandler,
	ProvideGetProductHandler,
	ProvideSearchProductsHandler,
	ProvideCategoryProductsHandler,
	ProvideGetCollectionHandler,
	ProvideListCategoriesHandler,
)

// InitializeHTTPHandler initializes HTTP handler with all dependencies
func InitializeHTTPHandler() (*http.CatalogHandler, error) {
	wire.Build(
		CatalogSet,
		QueryHandlerSet,
		http.NewCatalogHandlerWithDI,
	)
	return nil, nil
}
