package query

import (
	"reflect"
	"testing"

	"github.com/tair/storefront/internal/catalog/domain"
	"github.com/tair/storefront/internal/catalog/repository"
)

func newHandler() *ListProductsHandler {
	return NewListProductsHandler(repository.NewSampleCatalog())
}

func ids(products []domain.Product) []uint {
	out := make([]uint, len(products))
	for i, p := range products {
		out[i] = p.ID
	}
	return out
}

func fp(v float64) *float64 { return &v }

func TestListProductsZeroValueReturnsFullCatalog(t *testing.T) {
	h := newHandler()

	products, err := h.Handle(ListProductsQuery{})
	if err != nil {
		t.Fatalf("Handle() error = %v", err)
	}
	if len(products) != 12 {
		t.Fatalf("expected 12 products, got %d", len(products))
	}

	// Featured order is catalog order
	want := []uint{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12}
	if !reflect.DeepEqual(ids(products), want) {
		t.Errorf("order = %v, want %v", ids(products), want)
	}
}

func TestListProductsFiltersCompose(t *testing.T) {
	h := newHandler()

	// Electronics has nothing at or below 50, so the conjunction is empty
	products, err := h.Handle(ListProductsQuery{
		Categories: []string{"electronics"},
		MaxPrice:   fp(50),
	})
	if err != nil {
		t.Fatalf("Handle() error = %v", err)
	}
	if len(products) != 0 {
		t.Errorf("expected empty result, got %v", ids(products))
	}
}

func TestListProductsCategorySubstringMatch(t *testing.T) {
	h := newHandler()

	tests := []struct {
		name       string
		categories []string
		want       []uint
	}{
		{
			name:       "case-insensitive category name",
			categories: []string{"ELECTRONICS"},
			want:       []uint{1, 2, 3, 5, 8, 9},
		},
		{
			name:       "substring of subcategory",
			categories: []string{"audio"},
			want:       []uint{1, 8},
		},
		{
			name:       "multiple selections union",
			categories: []string{"sports", "fashion"},
			want:       []uint{4, 6, 7, 10, 11, 12},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			products, err := h.Handle(ListProductsQuery{Categories: tt.categories})
			if err != nil {
				t.Fatalf("Handle() error = %v", err)
			}
			if !reflect.DeepEqual(ids(products), tt.want) {
				t.Errorf("ids = %v, want %v", ids(products), tt.want)
			}
		})
	}
}

func TestListProductsPriceBounds(t *testing.T) {
	h := newHandler()

	products, err := h.Handle(ListProductsQuery{MinPrice: fp(100), MaxPrice: fp(200)})
	if err != nil {
		t.Fatalf("Handle() error = %v", err)
	}

	want := []uint{7, 8, 10, 11}
	if !reflect.DeepEqual(ids(products), want) {
		t.Errorf("ids = %v, want %v", ids(products), want)
	}
}

func TestListProductsRatingFloor(t *testing.T) {
	h := newHandler()

	products, err := h.Handle(ListProductsQuery{MinRating: fp(4.8)})
	if err != nil {
		t.Fatalf("Handle() error = %v", err)
	}

	want := []uint{1, 3, 5, 10}
	if !reflect.DeepEqual(ids(products), want) {
		t.Errorf("ids = %v, want %v", ids(products), want)
	}
}

func TestListProductsOnSaleOnly(t *testing.T) {
	h := newHandler()

	products, err := h.Handle(ListProductsQuery{OnSaleOnly: true})
	if err != nil {
		t.Fatalf("Handle() error = %v", err)
	}

	// Only products whose original price strictly exceeds the current one
	want := []uint{2, 5, 8, 9}
	if !reflect.DeepEqual(ids(products), want) {
		t.Errorf("ids = %v, want %v", ids(products), want)
	}
}

func TestListProductsNewOnly(t *testing.T) {
	h := newHandler()

	products, err := h.Handle(ListProductsQuery{NewOnly: true})
	if err != nil {
		t.Fatalf("Handle() error = %v", err)
	}

	want := []uint{1, 3, 6, 7, 11}
	if !reflect.DeepEqual(ids(products), want) {
		t.Errorf("ids = %v, want %v", ids(products), want)
	}
}

func TestListProductsSearch(t *testing.T) {
	h := newHandler()

	products, err := h.Handle(ListProductsQuery{Search: "cashmere"})
	if err != nil {
		t.Fatalf("Handle() error = %v", err)
	}

	if !reflect.DeepEqual(ids(products), []uint{10}) {
		t.Errorf("ids = %v, want [10]", ids(products))
	}
}

func TestListProductsSortOrders(t *testing.T) {
	h := newHandler()

	tests := []struct {
		name string
		sort SortOption
		want []uint
	}{
		{
			name: "price low to high",
			sort: SortPriceLow,
			want: []uint{12, 6, 7, 8, 11, 10, 2, 1, 4, 9, 3, 5},
		},
		{
			name: "price high to low",
			sort: SortPriceHigh,
			want: []uint{5, 3, 9, 4, 1, 2, 10, 11, 8, 7, 6, 12},
		},
		{
			name: "newest is descending id",
			sort: SortNewest,
			want: []uint{12, 11, 10, 9, 8, 7, 6, 5, 4, 3, 2, 1},
		},
		{
			name: "best selling is a stable partition",
			sort: SortBestSelling,
			want: []uint{1, 2, 3, 5, 8, 10, 12, 4, 6, 7, 9, 11},
		},
		{
			name: "top rated keeps catalog order for ties",
			sort: SortTopRated,
			want: []uint{3, 5, 1, 10, 4, 8, 12, 2, 6, 11, 7, 9},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			products, err := h.Handle(ListProductsQuery{Sort: tt.sort})
			if err != nil {
				t.Fatalf("Handle() error = %v", err)
			}
			if !reflect.DeepEqual(ids(products), tt.want) {
				t.Errorf("ids = %v, want %v", ids(products), tt.want)
			}
		})
	}
}

func TestListProductsIsDeterministic(t *testing.T) {
	h := newHandler()
	q := ListProductsQuery{
		Categories: []string{"electronics"},
		MinPrice:   fp(100),
		Sort:       SortPriceLow,
	}

	first, err := h.Handle(q)
	if err != nil {
		t.Fatalf("Handle() error = %v", err)
	}
	second, err := h.Handle(q)
	if err != nil {
		t.Fatalf("Handle() error = %v", err)
	}

	if !reflect.DeepEqual(ids(first), ids(second)) {
		t.Errorf("same query produced different orders: %v vs %v", ids(first), ids(second))
	}
}

func TestListProductsResetRestoresFullListing(t *testing.T) {
	h := newHandler()

	// Apply a narrow filter, then the zero value again
	narrow, err := h.Handle(ListProductsQuery{Categories: []string{"sports"}})
	if err != nil {
		t.Fatalf("Handle() error = %v", err)
	}
	if len(narrow) != 1 {
		t.Fatalf("expected 1 sports product, got %d", len(narrow))
	}

	reset, err := h.Handle(ListProductsQuery{})
	if err != nil {
		t.Fatalf("Handle() error = %v", err)
	}
	if len(reset) != 12 {
		t.Errorf("expected full catalog after reset, got %d", len(reset))
	}
}
