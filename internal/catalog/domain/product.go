package domain

import (
	"strings"
	"time"
)

// Product represents a catalog product. The catalog is fixed at startup and
// products are read-only for the lifetime of the process.
type Product struct {
	ID            uint              `json:"id"`
	Name          string            `json:"name"`
	Description   string            `json:"description"`
	Price         float64           `json:"price"`
	OriginalPrice *float64          `json:"original_price,omitempty"`
	Category      string            `json:"category"`
	Subcategory   string            `json:"subcategory,omitempty"`
	Tags          []string          `json:"tags"`
	Image         string            `json:"image"`
	Images        []string          `json:"images"`
	Rating        float64           `json:"rating"`
	Reviews       int               `json:"reviews"`
	Stock         int               `json:"stock"`
	Featured      bool              `json:"featured"`
	New           bool              `json:"new"`
	BestSeller    bool              `json:"best_seller"`
	Specs         map[string]string `json:"specifications,omitempty"`
	Options       []ProductOption   `json:"options,omitempty"`
	RelatedIDs    []uint            `json:"related_products,omitempty"`
	CreatedAt     time.Time         `json:"created_at"`
}

// ProductOption is a named choice group, e.g. Color: Black/White
type ProductOption struct {
	Name   string   `json:"name"`
	Values []string `json:"values"`
}

// IsAvailable checks if product is in stock
func (p *Product) IsAvailable() bool {
	return p.Stock > 0
}

// OnSale reports whether the product carries an original price. Field
// presence is the sale signal here; the listing filter applies the stricter
// original-greater-than-current test instead.
func (p *Product) OnSale() bool {
	return p.OriginalPrice != nil
}

// Discounted reports whether the original price is strictly above the
// current price.
func (p *Product) Discounted() bool {
	return p.OriginalPrice != nil && *p.OriginalPrice > p.Price
}

// Matches reports whether any of the product's searchable fields contain
// the query as a case-insensitive substring. Searchable fields are name,
// description, category, subcategory and tags.
func (p *Product) Matches(query string) bool {
	q := strings.ToLower(query)
	if strings.Contains(strings.ToLower(p.Name), q) ||
		strings.Contains(strings.ToLower(p.Description), q) ||
		strings.Contains(strings.ToLower(p.Category), q) {
		return true
	}
	if p.Subcategory != "" && strings.Contains(strings.ToLower(p.Subcategory), q) {
		return true
	}
	for _, tag := range p.Tags {
		if strings.Contains(strings.ToLower(tag), q) {
			return true
		}
	}
	return false
}

// Catalog defines read access to the fixed product list. Implementations
// must return products in catalog order; callers rely on that order as the
// "featured" sort.
type Catalog interface {
	All() []Product
	FindByID(id uint) (*Product, error)
	Categories() []Category
	FindCategoryBySlug(slug string) (*Category, error)
	Count() int
	PriceRange() (min, max float64)
}
