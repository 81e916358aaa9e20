// Package catalog maintains the product-to-commission lookup table: the
// canonical record shape, built-in defaults, merging of catalog layers with
// first-wins deduplication, substring search, normalization of heterogeneous
// tabular rows, and import parsing.
package catalog

import "strings"

// Warehouse (fulfillment model) values as they appear in Wildberries
// commission tables.
const (
	WarehouseFBO = "ФБО" // platform-operated warehouse
	WarehouseFBS = "ФБС" // seller-operated fulfillment
)

// DefaultCommission is substituted whenever a commission value is missing or
// unparseable. Downstream consumers treat "missing" and "exactly 15.0" as
// the same thing, so the value must stay exact.
const DefaultCommission = 15.0

// MinNameLength is the minimum usable product name length.
const MinNameLength = 2

// Product is one row of the commission lookup table. The JSON field names
// match the on-disk products.json shape and the persisted layer format.
type Product struct {
	Name       string  `json:"name"`
	Commission float64 `json:"commission"`
	Warehouse  string  `json:"warehouse"`
	Category   string  `json:"category,omitempty"`
}

// Key returns the case-insensitive identity of the product.
func (p Product) Key() string {
	return strings.ToLower(strings.TrimSpace(p.Name))
}

// HasValidName reports whether the trimmed name meets the minimum length.
func (p Product) HasValidName() bool {
	return len([]rune(strings.TrimSpace(p.Name))) >= MinNameLength
}

// normalized returns a copy with trimmed strings and defaulted warehouse.
func (p Product) normalized() Product {
	p.Name = strings.TrimSpace(p.Name)
	p.Warehouse = strings.TrimSpace(p.Warehouse)
	if p.Warehouse == "" {
		p.Warehouse = WarehouseFBO
	}
	p.Category = strings.TrimSpace(p.Category)
	return p
}
