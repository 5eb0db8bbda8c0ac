package repository

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/tair/storefront/internal/catalog/domain"
)

var tracer = otel.Tracer("catalog-repository")

// StaticCatalogWithTracing wraps StaticCatalog with tracing spans for the
// context-aware lookups used by the HTTP layer.
type StaticCatalogWithTracing struct {
	*StaticCatalog
}

// NewStaticCatalogWithTracing creates a traced catalog over the sample data
func NewStaticCatalogWithTracing(catalog *StaticCatalog) *StaticCatalogWithTracing {
	return &StaticCatalogWithTracing{StaticCatalog: catalog}
}

// FindByIDWithContext looks up a product with a tracing span
func (c *StaticCatalogWithTracing) FindByIDWithContext(ctx context.Context, id uint) (*domain.Product, error) {
	_, span := tracer.Start(ctx, "catalog.FindByID",
		trace.WithAttributes(
			attribute.Int("product.id", int(id)),
		),
	)
	defer span.End()

	product, err := c.StaticCatalog.FindByID(id)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}

	span.SetAttributes(
		attribute.String("product.name", product.Name),
		attribute.String("product.category", product.Category),
		attribute.Float64("product.price", product.Price),
	)
	return product, nil
}

// FindCategoryBySlugWithContext resolves a category with a tracing span
func (c *StaticCatalogWithTracing) FindCategoryBySlugWithContext(ctx context.Context, slug string) (*domain.Category, error) {
	_, span := tracer.Start(ctx, "catalog.FindCategoryBySlug",
		trace.WithAttributes(
			attribute.String("category.slug", slug),
		),
	)
	defer span.End()

	category, err := c.StaticCatalog.FindCategoryBySlug(slug)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}

	span.SetAttributes(attribute.String("category.name", category.Name))
	return category, nil
}

// AllWithContext returns the full catalog with a tracing span
func (c *StaticCatalogWithTracing) AllWithContext(ctx context.Context) []domain.Product {
	_, span := tracer.Start(ctx, "catalog.All")
	defer span.End()

	products := c.StaticCatalog.All()
	span.SetAttributes(attribute.Int("catalog.size", len(products)))
	return products
}
