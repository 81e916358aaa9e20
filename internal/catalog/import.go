package catalog

import (
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Format identifies the payload encoding of an explicit import.
type Format string

const (
	FormatJSON Format = "json"
	FormatCSV  Format = "csv"
)

// ImportResult reports the outcome of an import batch. Rejected counts
// invalid rows and duplicates; a batch is never all-or-nothing.
type ImportResult struct {
	Accepted []Product `json:"accepted"`
	Rejected int       `json:"rejected"`
}

// ErrEmptyImport is returned when the payload contains no rows at all.
var ErrEmptyImport = errors.New("import payload is empty")

// ParseImport parses a user-supplied import payload into candidate
// products. Syntactically malformed payloads return an error with a message
// fit for the user; rows that parse but cannot form a complete candidate
// come back with their defects intact so validation can count them.
func ParseImport(raw string, format Format) ([]Product, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, ErrEmptyImport
	}

	switch format {
	case FormatCSV:
		return parseCSVImport(raw)
	case FormatJSON:
		return parseJSONImport(raw)
	default:
		return nil, fmt.Errorf("unknown import format %q", format)
	}
}

// ValidateImported applies the import acceptance rules to one candidate:
// usable name, commission within (0, 100], and a known warehouse value
// after defaulting blanks. It returns the normalized product and whether it
// passed.
func ValidateImported(p Product) (Product, bool) {
	p = p.normalized()
	if !p.HasValidName() {
		return p, false
	}
	if p.Commission <= 0 || p.Commission > 100 {
		return p, false
	}
	if p.Warehouse != WarehouseFBO && p.Warehouse != WarehouseFBS {
		return p, false
	}
	return p, true
}

func parseCSVImport(raw string) ([]Product, error) {
	reader := csv.NewReader(strings.NewReader(raw))
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	lines, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("malformed CSV: %w", err)
	}
	if len(lines) == 0 {
		return nil, ErrEmptyImport
	}

	var products []Product
	for i, fields := range lines {
		if i == 0 && isHeaderLine(fields) {
			continue
		}
		field := func(n int) string {
			if n >= len(fields) {
				return ""
			}
			return strings.TrimSpace(fields[n])
		}
		// Expected layout: name, commission, warehouse[, category]. A short
		// line still produces a candidate so validation counts it as
		// rejected instead of aborting the batch.
		commission, _ := strconv.ParseFloat(strings.ReplaceAll(field(1), ",", "."), 64)
		if len(fields) < 3 {
			commission = 0
		}
		products = append(products, Product{
			Name:       field(0),
			Commission: commission,
			Warehouse:  field(2),
			Category:   field(3),
		})
	}
	return products, nil
}

func isHeaderLine(fields []string) bool {
	if len(fields) == 0 {
		return false
	}
	first := strings.ToLower(strings.TrimSpace(fields[0]))
	return strings.Contains(first, "name") || strings.Contains(first, "назван")
}

func parseJSONImport(raw string) ([]Product, error) {
	var rows []map[string]any
	if err := json.Unmarshal([]byte(raw), &rows); err != nil {
		return nil, fmt.Errorf("malformed JSON, expected an array of products: %w", err)
	}
	if len(rows) == 0 {
		return nil, ErrEmptyImport
	}

	products := make([]Product, 0, len(rows))
	for _, row := range rows {
		products = append(products, productFromMap(row))
	}
	return products, nil
}

// Key aliases accepted in JSON imports, covering the export shapes this
// tool has produced over time plus the Russian spreadsheet conventions.
var (
	jsonNameKeys       = []string{"name", "Название", "product_name"}
	jsonCommissionKeys = []string{"commission", "Комиссия", "commission_rate", "%"}
	jsonWarehouseKeys  = []string{"warehouse", "Склад", "warehouse_type"}
	jsonCategoryKeys   = []string{"category", "Категория", "product_category"}
)

func productFromMap(row map[string]any) Product {
	return Product{
		Name:       firstString(row, jsonNameKeys),
		Commission: firstNumber(row, jsonCommissionKeys),
		Warehouse:  firstString(row, jsonWarehouseKeys),
		Category:   firstString(row, jsonCategoryKeys),
	}
}

func firstString(row map[string]any, keys []string) string {
	for _, key := range keys {
		if v, ok := row[key]; ok {
			if s, ok := v.(string); ok && strings.TrimSpace(s) != "" {
				return s
			}
		}
	}
	return ""
}

func firstNumber(row map[string]any, keys []string) float64 {
	for _, key := range keys {
		v, ok := row[key]
		if !ok {
			continue
		}
		switch n := v.(type) {
		case float64:
			if n > 0 {
				return n
			}
		case string:
			s := strings.ReplaceAll(strings.TrimSpace(n), ",", ".")
			if f, err := strconv.ParseFloat(s, 64); err == nil && f > 0 {
				return f
			}
		}
	}
	return 0
}
