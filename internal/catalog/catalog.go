package catalog

import "strings"

// MaxSearchResults caps the number of suggestions returned by Search.
const MaxSearchResults = 10

// Catalog is an ordered product list with case-insensitive unique names.
// It is an immutable-by-convention snapshot: load, add and import build a
// new catalog (or Append to one) and the owner swaps the whole handle.
type Catalog struct {
	products []Product
	index    map[string]struct{}
}

// New builds a catalog from one or more layers in precedence order. Records
// are normalized; duplicates (case-insensitive name) keep the earliest
// occurrence; records without a usable name are dropped.
func New(layers ...[]Product) *Catalog {
	c := &Catalog{index: make(map[string]struct{})}
	for _, layer := range layers {
		for _, p := range layer {
			c.Append(p)
		}
	}
	return c
}

// Append adds a product unless its name is already present
// (case-insensitive) or unusable. It reports whether the insert happened.
func (c *Catalog) Append(p Product) bool {
	p = p.normalized()
	if !p.HasValidName() {
		return false
	}
	key := p.Key()
	if _, exists := c.index[key]; exists {
		return false
	}
	c.products = append(c.products, p)
	c.index[key] = struct{}{}
	return true
}

// Contains reports whether a product with the given name exists,
// case-insensitively.
func (c *Catalog) Contains(name string) bool {
	_, ok := c.index[strings.ToLower(strings.TrimSpace(name))]
	return ok
}

// Len returns the number of products.
func (c *Catalog) Len() int {
	return len(c.products)
}

// Products returns a copy of the product list in catalog order.
func (c *Catalog) Products() []Product {
	out := make([]Product, len(c.products))
	copy(out, c.products)
	return out
}

// Search returns up to MaxSearchResults products whose name or category
// contains the query as a case-insensitive substring, preserving catalog
// order. Queries shorter than MinNameLength after trimming return nothing.
func (c *Catalog) Search(query string) []Product {
	term := strings.ToLower(strings.TrimSpace(query))
	if len([]rune(term)) < MinNameLength {
		return nil
	}

	var results []Product
	for _, p := range c.products {
		if strings.Contains(strings.ToLower(p.Name), term) ||
			(p.Category != "" && strings.Contains(strings.ToLower(p.Category), term)) {
			results = append(results, p)
			if len(results) == MaxSearchResults {
				break
			}
		}
	}
	return results
}
