package repository

import (
	"github.com/tair/storefront/internal/catalog/domain"
)

// StaticCatalog serves the fixed product and category lists supplied at
// startup. It never mutates them; accessors that return slices hand out
// copies so callers can filter and sort freely.
type StaticCatalog struct {
	products   []domain.Product
	categories []domain.Category
	byID       map[uint]int
	bySlug     map[string]int
	minPrice   float64
	maxPrice   float64
}

// NewStaticCatalog indexes the given product and category lists
func NewStaticCatalog(products []domain.Product, categories []domain.Category) *StaticCatalog {
	c := &StaticCatalog{
		products:   products,
		categories: categories,
		byID:       make(map[uint]int, len(products)),
		bySlug:     make(map[string]int, len(categories)),
	}

	for i := range products {
		c.byID[products[i].ID] = i
		if i == 0 {
			c.minPrice, c.maxPrice = products[i].Price, products[i].Price
			continue
		}
		if products[i].Price < c.minPrice {
			c.minPrice = products[i].Price
		}
		if products[i].Price > c.maxPrice {
			c.maxPrice = products[i].Price
		}
	}
	for i := range categories {
		c.bySlug[categories[i].Slug] = i
	}

	return c
}

// NewSampleCatalog builds the catalog from the bundled sample data
func NewSampleCatalog() *StaticCatalog {
	return NewStaticCatalog(sampleProducts(), sampleCategories())
}

// All returns the products in catalog order
func (c *StaticCatalog) All() []domain.Product {
	out := make([]domain.Product, len(c.products))
	copy(out, c.products)
	return out
}

func (c *StaticCatalog) FindByID(id uint) (*domain.Product, error) {
	i, ok := c.byID[id]
	if !ok {
		return nil, domain.ErrProductNotFound
	}
	p := c.products[i]
	return &p, nil
}

func (c *StaticCatalog) Categories() []domain.Category {
	out := make([]domain.Category, len(c.categories))
	copy(out, c.categories)
	return out
}

func (c *StaticCatalog) FindCategoryBySlug(slug string) (*domain.Category, error) {
	i, ok := c.bySlug[slug]
	if !ok {
		return nil, domain.ErrCategoryNotFound
	}
	cat := c.categories[i]
	return &cat, nil
}

func (c *StaticCatalog) Count() int {
	return len(c.products)
}

// PriceRange returns the lowest and highest product price in the catalog.
// An empty catalog yields (0, 0).
func (c *StaticCatalog) PriceRange() (min, max float64) {
	return c.minPrice, c.maxPrice
}
