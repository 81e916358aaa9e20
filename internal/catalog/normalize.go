package catalog

import (
	"strconv"
	"strings"
)

// Row is one row of tabular input. Exactly one representation is set:
// positional Cells, or labeled Fields with Keys preserving the source's
// column order (JSON insertion order, spreadsheet header order).
type Row struct {
	Cells  []string
	Keys   []string
	Fields map[string]string
}

// IsPositional reports whether the row is a bare cell sequence.
func (r Row) IsPositional() bool {
	return r.Cells != nil
}

// value returns the labeled field for key, or "" when absent.
func (r Row) value(key string) string {
	return r.Fields[key]
}

// nth returns the n-th field value by insertion order, or "" when the row
// has fewer fields.
func (r Row) nth(n int) string {
	if n >= len(r.Keys) {
		return ""
	}
	return r.Fields[r.Keys[n]]
}

// rowShape tags the layout of an input batch. The shape is decided once per
// batch from the first row, not per row: real spreadsheets do not mix
// layouts within a sheet.
type rowShape int

const (
	shapePositional rowShape = iota // bare cell sequences
	shapeLabeled                    // keyed by spreadsheet column letters A..E
	shapeFreeform                   // keyed by arbitrary/localized headers
)

// Header aliases tried when order-based extraction yields nothing usable.
// Both the Russian source-file conventions and their English counterparts
// are supported.
var (
	nameAliases       = []string{"Название", "Название товара", "Товар", "Name", "Product"}
	commissionAliases = []string{"Комиссия", "Комиссия ВБ", "%", "Commission"}
	warehouseAliases  = []string{"Склад", "Тип склада", "Warehouse"}
	categoryAliases   = []string{"Категория", "Category"}
)

// NormalizeRows converts heterogeneous tabular rows into canonical products.
// Rows that yield no usable name after every extraction attempt are
// discarded. Commission falls back to DefaultCommission whenever parsing
// fails or yields a non-positive number.
func NormalizeRows(rows []Row) []Product {
	if len(rows) == 0 {
		return nil
	}

	extractors := extractorsFor(detectShape(rows[0]))

	var products []Product
	for _, row := range rows {
		for _, extract := range extractors {
			p, ok := extract(row)
			if !ok {
				continue
			}
			products = append(products, p.normalized())
			break
		}
	}
	return products
}

func detectShape(first Row) rowShape {
	if first.IsPositional() {
		return shapePositional
	}
	for _, key := range first.Keys {
		if len(key) != 1 || key[0] < 'A' || key[0] > 'Z' {
			return shapeFreeform
		}
	}
	if len(first.Keys) == 0 {
		return shapeFreeform
	}
	return shapeLabeled
}

// extractor attempts to pull a product out of one row. It reports false
// when the row gives no usable name, letting the next strategy try.
type extractor func(Row) (Product, bool)

// extractorsFor returns the ordered strategy list for a batch shape. The
// alias-based extractor is the last resort for labeled and freeform rows.
func extractorsFor(shape rowShape) []extractor {
	switch shape {
	case shapePositional:
		return []extractor{extractPositional}
	case shapeLabeled:
		return []extractor{extractLabeled, extractAliased}
	default:
		return []extractor{extractOrdered, extractAliased}
	}
}

// extractLabeled reads spreadsheet-letter columns: name from B, commission
// from C, warehouse from D, category from E.
func extractLabeled(r Row) (Product, bool) {
	p := Product{
		Name:       r.value("B"),
		Commission: parseCommission(r.value("C")),
		Warehouse:  r.value("D"),
		Category:   r.value("E"),
	}
	return p, p.HasValidName()
}

// extractPositional applies the same column mapping by index.
func extractPositional(r Row) (Product, bool) {
	cell := func(i int) string {
		if i >= len(r.Cells) {
			return ""
		}
		return r.Cells[i]
	}
	p := Product{
		Name:       cell(1),
		Commission: parseCommission(cell(2)),
		Warehouse:  cell(3),
		Category:   cell(4),
	}
	return p, p.HasValidName()
}

// extractOrdered treats a freeform mapping like a headed sheet row: the 2nd
// value in insertion order is the name, the 3rd the commission. Warehouse
// and category are not guessable from arbitrary headers and keep their
// defaults. When the commission stays at its default, a header-alias lookup
// gets one more try.
func extractOrdered(r Row) (Product, bool) {
	p := Product{
		Name:       r.nth(1),
		Commission: parseCommission(r.nth(2)),
	}
	if !p.HasValidName() {
		return Product{}, false
	}
	if p.Commission == DefaultCommission {
		if c, ok := lookupAliased(r, commissionAliases); ok {
			p.Commission = c
		}
	}
	return p, true
}

// extractAliased resolves every field through known header aliases.
func extractAliased(r Row) (Product, bool) {
	p := Product{Commission: DefaultCommission}
	for _, key := range nameAliases {
		if v := strings.TrimSpace(r.value(key)); v != "" {
			p.Name = v
			break
		}
	}
	if !p.HasValidName() {
		return Product{}, false
	}
	if c, ok := lookupAliased(r, commissionAliases); ok {
		p.Commission = c
	}
	for _, key := range warehouseAliases {
		if v := strings.TrimSpace(r.value(key)); v != "" {
			p.Warehouse = v
			break
		}
	}
	for _, key := range categoryAliases {
		if v := strings.TrimSpace(r.value(key)); v != "" {
			p.Category = v
			break
		}
	}
	return p, true
}

// lookupAliased finds the first alias key holding a parseable positive
// commission.
func lookupAliased(r Row, aliases []string) (float64, bool) {
	for _, key := range aliases {
		v := strings.TrimSpace(r.value(key))
		if v == "" {
			continue
		}
		if c, err := strconv.ParseFloat(v, 64); err == nil && c > 0 {
			return c, true
		}
	}
	return 0, false
}

// parseCommission parses a commission cell, substituting DefaultCommission
// for missing, unparseable, or non-positive values.
func parseCommission(s string) float64 {
	s = strings.TrimSpace(s)
	if s == "" {
		return DefaultCommission
	}
	// Tolerate a decimal comma and a trailing percent sign, both common in
	// exported Russian spreadsheets.
	s = strings.TrimSuffix(s, "%")
	s = strings.ReplaceAll(s, ",", ".")
	c, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || c <= 0 {
		return DefaultCommission
	}
	return c
}
