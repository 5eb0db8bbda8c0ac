package domain

// Category groups products under a display name. Products reference the
// display name, not the slug; lookups by slug must resolve the name first.
type Category struct {
	ID            uint          `json:"id"`
	Name          string        `json:"name"`
	Slug          string        `json:"slug"`
	Description   string        `json:"description"`
	Image         string        `json:"image"`
	Subcategories []Subcategory `json:"subcategories"`
}

// Subcategory is a nested category entry
type Subcategory struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
	Slug string `json:"slug"`
}

// FindSubcategory resolves a subcategory by slug
func (c *Category) FindSubcategory(slug string) (*Subcategory, bool) {
	for i := range c.Subcategories {
		if c.Subcategories[i].Slug == slug {
			return &c.Subcategories[i], true
		}
	}
	return nil, false
}
