// Package sources assembles the live catalog from its layered origins and
// carries the add/import/upload operations that combine the catalog with
// persistence.
package sources

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"path"
	"strings"
	"time"

	"github.com/Kreemchek/unitka20/internal/catalog"
	"github.com/Kreemchek/unitka20/internal/database"
	"github.com/Kreemchek/unitka20/internal/tabular"
)

// Well-known bundled files probed at load time.
const (
	bundledJSONFile     = "products.json"
	bundledWorkbookFile = "commission.xlsx"
)

// Service loads and mutates the product catalog.
type Service struct {
	db         *database.DB
	httpClient *http.Client
	baseURL    string // where the bundled data files are published; empty disables remote fetch
}

// NewService creates a catalog source service. baseURL may be empty when no
// remote data files are published.
func NewService(db *database.DB, baseURL string) *Service {
	return &Service{
		db:         db,
		httpClient: &http.Client{Timeout: 30 * time.Second},
		baseURL:    strings.TrimRight(baseURL, "/"),
	}
}

// LoadCatalog walks the source precedence chain and returns the first
// non-empty catalog. Every failure is a fall-through, never an error; the
// worst case is the built-in defaults.
func (s *Service) LoadCatalog(ctx context.Context) *catalog.Catalog {
	loaders := []struct {
		name string
		load func(context.Context) ([][]catalog.Product, error)
	}{
		{bundledJSONFile, s.loadBundledJSON},
		{bundledWorkbookFile, s.loadBundledWorkbook},
		{"saved external catalog", s.loadSavedExternal},
		{"user additions", s.loadUserMerged},
	}

	for _, source := range loaders {
		layers, err := source.load(ctx)
		if err != nil {
			log.Printf("Catalog source %s unavailable: %v", source.name, err)
			continue
		}
		c := catalog.New(layers...)
		if c.Len() == 0 {
			continue
		}
		log.Printf("Loaded %d products from %s", c.Len(), source.name)
		return c
	}

	log.Printf("Using built-in catalog (%d products)", len(catalog.DefaultProducts))
	return catalog.New(catalog.DefaultProducts)
}

// loadBundledJSON fetches the published products.json and persists it as
// the external replacement layer.
func (s *Service) loadBundledJSON(ctx context.Context) ([][]catalog.Product, error) {
	body, err := s.fetch(ctx, bundledJSONFile)
	if err != nil {
		return nil, err
	}

	var products []catalog.Product
	if err := json.Unmarshal(body, &products); err != nil {
		return nil, fmt.Errorf("failed to decode %s: %w", bundledJSONFile, err)
	}
	if len(products) == 0 {
		return nil, fmt.Errorf("%s is empty", bundledJSONFile)
	}

	if err := s.db.ReplaceLayer(database.LayerExternal, products); err != nil {
		log.Printf("Failed to persist external catalog: %v", err)
	}
	return [][]catalog.Product{products}, nil
}

// loadBundledWorkbook fetches the published commission.xlsx, runs its first
// sheet through the normalizer, and persists the result.
func (s *Service) loadBundledWorkbook(ctx context.Context) ([][]catalog.Product, error) {
	body, err := s.fetch(ctx, bundledWorkbookFile)
	if err != nil {
		return nil, err
	}

	rows, err := tabular.ParseWorkbook(body)
	if err != nil {
		return nil, err
	}
	products := catalog.NormalizeRows(rows)
	if len(products) == 0 {
		return nil, fmt.Errorf("%s yielded no valid products", bundledWorkbookFile)
	}

	if err := s.db.ReplaceLayer(database.LayerExternal, products); err != nil {
		log.Printf("Failed to persist external catalog: %v", err)
	}
	return [][]catalog.Product{products}, nil
}

func (s *Service) loadSavedExternal(ctx context.Context) ([][]catalog.Product, error) {
	products, err := s.db.GetLayer(database.LayerExternal)
	if err != nil {
		return nil, err
	}
	return [][]catalog.Product{products}, nil
}

// loadUserMerged layers built-in defaults under the user's own additions.
// Defaults come first: on a name clash the default record wins, same as
// every other first-wins merge.
func (s *Service) loadUserMerged(ctx context.Context) ([][]catalog.Product, error) {
	user, err := s.db.GetLayer(database.LayerUser)
	if err != nil {
		return nil, err
	}
	return [][]catalog.Product{catalog.DefaultProducts, user}, nil
}

func (s *Service) fetch(ctx context.Context, file string) ([]byte, error) {
	if s.baseURL == "" {
		return nil, fmt.Errorf("no data URL configured")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.baseURL+"/"+file, nil)
	if err != nil {
		return nil, err
	}
	resp, err := s.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%s: HTTP %d", file, resp.StatusCode)
	}
	return io.ReadAll(resp.Body)
}

// AddProduct appends one record to the persisted user layer iff no record
// in the merged catalog or the user layer already carries the name
// (case-insensitive). It reports whether the insert happened; the caller
// reloads the catalog afterwards.
func (s *Service) AddProduct(cat *catalog.Catalog, p catalog.Product) (bool, error) {
	p, ok := catalog.ValidateImported(p)
	if !ok {
		return false, fmt.Errorf("invalid product: name of 2+ characters, commission in (0, 100] and a known warehouse are required")
	}
	if cat.Contains(p.Name) {
		return false, nil
	}
	// While an external layer is live the merged catalog does not include
	// the user layer, so the persisted additions are checked directly.
	user, err := s.db.GetLayer(database.LayerUser)
	if err != nil {
		return false, err
	}
	for _, existing := range user {
		if existing.Key() == p.Key() {
			return false, nil
		}
	}
	if err := s.db.AppendToLayer(database.LayerUser, p); err != nil {
		return false, err
	}
	return true, nil
}

// ImportProducts parses an explicit import payload and routes every valid,
// non-duplicate row through AddProduct. Invalid rows and duplicates are
// counted, not fatal; only a syntactically malformed payload returns an
// error.
func (s *Service) ImportProducts(cat *catalog.Catalog, raw string, format catalog.Format) (catalog.ImportResult, error) {
	candidates, err := catalog.ParseImport(raw, format)
	if err != nil {
		return catalog.ImportResult{}, err
	}

	// The live catalog is not touched here; the caller reloads after a
	// successful batch. Duplicates within the batch are tracked locally.
	seen := make(map[string]struct{})

	var result catalog.ImportResult
	for _, candidate := range candidates {
		p, ok := catalog.ValidateImported(candidate)
		if !ok {
			result.Rejected++
			continue
		}
		if _, dup := seen[p.Key()]; dup || cat.Contains(p.Name) {
			result.Rejected++
			continue
		}
		seen[p.Key()] = struct{}{}
		if err := s.db.AppendToLayer(database.LayerUser, p); err != nil {
			log.Printf("Failed to persist imported product %q: %v", p.Name, err)
			result.Rejected++
			continue
		}
		result.Accepted = append(result.Accepted, p)
	}
	return result, nil
}

// ReplaceFromUpload parses an uploaded catalog file (xlsx, CSV or JSON) and
// installs it as the external replacement layer. It returns the number of
// products accepted.
func (s *Service) ReplaceFromUpload(filename string, data []byte) (int, error) {
	products, err := parseUpload(filename, data)
	if err != nil {
		return 0, err
	}

	// Upload tolerates looser rows than explicit import: commission falls
	// back to the default, any non-blank warehouse string passes through,
	// only the name gates acceptance.
	valid := make([]catalog.Product, 0, len(products))
	for _, p := range products {
		p.Name = strings.TrimSpace(p.Name)
		if !p.HasValidName() {
			continue
		}
		if p.Commission <= 0 {
			p.Commission = catalog.DefaultCommission
		}
		if strings.TrimSpace(p.Warehouse) == "" {
			p.Warehouse = catalog.WarehouseFBO
		}
		valid = append(valid, p)
	}
	if len(valid) == 0 {
		return 0, fmt.Errorf("file contains no valid products")
	}

	if err := s.db.ReplaceLayer(database.LayerExternal, valid); err != nil {
		return 0, err
	}
	return len(valid), nil
}

func parseUpload(filename string, data []byte) ([]catalog.Product, error) {
	switch strings.ToLower(path.Ext(filename)) {
	case ".xlsx", ".xls":
		rows, err := tabular.ParseWorkbook(data)
		if err != nil {
			return nil, err
		}
		return catalog.NormalizeRows(rows), nil
	case ".csv":
		return catalog.ParseImport(string(data), catalog.FormatCSV)
	default:
		// Plain JSON catalogs use the flexible key aliases. Spreadsheet
		// exports (arrays, or objects keyed by column letters) yield no
		// usable names that way and go through the normalizer instead.
		if products, err := catalog.ParseImport(string(data), catalog.FormatJSON); err == nil {
			usable := products[:0:0]
			for _, p := range products {
				if p.HasValidName() {
					usable = append(usable, p)
				}
			}
			if len(usable) > 0 {
				return usable, nil
			}
		}
		rows, err := tabular.ParseJSONRows(data)
		if err != nil {
			return nil, err
		}
		return catalog.NormalizeRows(rows), nil
	}
}
