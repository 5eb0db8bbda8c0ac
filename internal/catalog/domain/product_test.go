package domain

import "testing"

func sample() Product {
	original := 179.99
	return Product{
		ID:            8,
		Name:          "Wireless Earbuds Pro",
		Description:   "True wireless earbuds with immersive sound.",
		Price:         149.99,
		OriginalPrice: &original,
		Category:      "Electronics",
		Subcategory:   "Audio",
		Tags:          []string{"wireless", "earbuds"},
	}
}

func TestMatches(t *testing.T) {
	p := sample()

	tests := []struct {
		query string
		want  bool
	}{
		{"earbuds", true},
		{"EARBUDS", true},   // case-insensitive
		{"immersive", true}, // description
		{"electron", true},  // category substring
		{"audio", true},     // subcategory
		{"wireless", true},  // tag
		{"headphones", false},
		{"", true}, // empty query matches everything
	}

	for _, tt := range tests {
		if got := p.Matches(tt.query); got != tt.want {
			t.Errorf("Matches(%q) = %v, want %v", tt.query, got, tt.want)
		}
	}
}

func TestOnSaleVersusDiscounted(t *testing.T) {
	p := sample()
	if !p.OnSale() || !p.Discounted() {
		t.Error("expected a cheaper current price to be both on sale and discounted")
	}

	// Original price equal to the current price: listed as sale
	// merchandise but not an actual discount.
	samePrice := p.Price
	p.OriginalPrice = &samePrice
	if !p.OnSale() {
		t.Error("expected OnSale with an original price present")
	}
	if p.Discounted() {
		t.Error("expected Discounted to require a strictly higher original price")
	}

	p.OriginalPrice = nil
	if p.OnSale() || p.Discounted() {
		t.Error("expected neither without an original price")
	}
}

func TestIsAvailable(t *testing.T) {
	p := sample()
	p.Stock = 3
	if !p.IsAvailable() {
		t.Error("expected available with stock")
	}
	p.Stock = 0
	if p.IsAvailable() {
		t.Error("expected unavailable without stock")
	}
}

func TestFindSubcategory(t *testing.T) {
	c := Category{
		Name: "Electronics",
		Slug: "electronics",
		Subcategories: []Subcategory{
			{ID: 101, Name: "Audio", Slug: "audio"},
		},
	}

	sub, ok := c.FindSubcategory("audio")
	if !ok || sub.Name != "Audio" {
		t.Errorf("FindSubcategory(audio) = %v, %v", sub, ok)
	}
	if _, ok := c.FindSubcategory("drones"); ok {
		t.Error("expected miss for unknown slug")
	}
}
