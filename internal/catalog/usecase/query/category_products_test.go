package query

import (
	"errors"
	"reflect"
	"testing"

	"github.com/tair/storefront/internal/catalog/domain"
	"github.com/tair/storefront/internal/catalog/repository"
)

func TestCategoryProducts(t *testing.T) {
	h := NewCategoryProductsHandler(repository.NewSampleCatalog())

	tests := []struct {
		name    string
		query   CategoryProductsQuery
		want    []uint
		wantErr bool
	}{
		{
			name:  "category by slug",
			query: CategoryProductsQuery{CategorySlug: "electronics"},
			want:  []uint{1, 2, 3, 5, 8, 9},
		},
		{
			name:  "narrowed to subcategory",
			query: CategoryProductsQuery{CategorySlug: "electronics", SubcategorySlug: "audio"},
			want:  []uint{1, 8},
		},
		{
			name:  "category with no products is empty, not an error",
			query: CategoryProductsQuery{CategorySlug: "books"},
			want:  []uint{},
		},
		{
			name:    "unknown category slug",
			query:   CategoryProductsQuery{CategorySlug: "vehicles"},
			wantErr: true,
		},
		{
			name:    "unknown subcategory slug",
			query:   CategoryProductsQuery{CategorySlug: "electronics", SubcategorySlug: "drones"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			products, err := h.Handle(tt.query)
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected an error")
				}
				if !errors.Is(err, domain.ErrCategoryNotFound) {
					t.Errorf("expected ErrCategoryNotFound, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("Handle() error = %v", err)
			}
			if !reflect.DeepEqual(ids(products), tt.want) {
				t.Errorf("ids = %v, want %v", ids(products), tt.want)
			}
		})
	}
}

func TestCollections(t *testing.T) {
	h := NewGetCollectionHandler(repository.NewSampleCatalog())

	tests := []struct {
		name       string
		collection Collection
		want       []uint
	}{
		{
			name:       "featured",
			collection: CollectionFeatured,
			want:       []uint{1, 2, 3, 4, 5, 9},
		},
		{
			name:       "new arrivals",
			collection: CollectionNewArrivals,
			want:       []uint{1, 3, 6, 7, 11},
		},
		{
			name:       "best sellers",
			collection: CollectionBestSellers,
			want:       []uint{1, 2, 3, 5, 8, 10, 12},
		},
		{
			// The sale view keys on the original price being present,
			// not on it exceeding the current price.
			name:       "sale",
			collection: CollectionSale,
			want:       []uint{2, 5, 8, 9},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			products, err := h.Handle(GetCollectionQuery{Collection: tt.collection})
			if err != nil {
				t.Fatalf("Handle() error = %v", err)
			}
			if !reflect.DeepEqual(ids(products), tt.want) {
				t.Errorf("ids = %v, want %v", ids(products), tt.want)
			}
		})
	}
}

func TestUnknownCollection(t *testing.T) {
	h := NewGetCollectionHandler(repository.NewSampleCatalog())

	if _, err := h.Handle(GetCollectionQuery{Collection: "trending"}); err == nil {
		t.Error("expected an error for an unknown collection")
	}
}

func TestGetProduct(t *testing.T) {
	h := NewGetProductHandler(repository.NewSampleCatalog())

	product, err := h.Handle(GetProductQuery{ID: 1})
	if err != nil {
		t.Fatalf("Handle() error = %v", err)
	}
	if product.Name != "Premium Wireless Headphones" {
		t.Errorf("unexpected product: %s", product.Name)
	}

	related := h.Related(product)
	for _, r := range related {
		if r.ID == product.ID {
			t.Error("product related to itself")
		}
	}

	if _, err := h.Handle(GetProductQuery{ID: 999}); !errors.Is(err, domain.ErrProductNotFound) {
		t.Errorf("expected ErrProductNotFound, got %v", err)
	}
}

func TestSearchProducts(t *testing.T) {
	h := NewSearchProductsHandler(repository.NewSampleCatalog())

	products, err := h.Handle(SearchProductsQuery{Query: "yoga"})
	if err != nil {
		t.Fatalf("Handle() error = %v", err)
	}
	if !reflect.DeepEqual(ids(products), []uint{6}) {
		t.Errorf("ids = %v, want [6]", ids(products))
	}

	// Empty query is the whole catalog
	all, err := h.Handle(SearchProductsQuery{})
	if err != nil {
		t.Fatalf("Handle() error = %v", err)
	}
	if len(all) != 12 {
		t.Errorf("expected 12 products, got %d", len(all))
	}
}
