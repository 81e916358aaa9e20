package sources

import (
	"context"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/Kreemchek/unitka20/internal/catalog"
	"github.com/Kreemchek/unitka20/internal/database"
)

func openTestDB(t *testing.T) *database.DB {
	t.Helper()
	db, err := database.Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return db
}

func TestLoadCatalogFromBundledJSON(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/products.json" {
			http.NotFound(w, r)
			return
		}
		w.Write([]byte(`[{"name":"Внешний товар","commission":9.5,"warehouse":"ФБО","category":"Тест"}]`))
	}))
	defer srv.Close()

	db := openTestDB(t)
	svc := NewService(db, srv.URL)

	cat := svc.LoadCatalog(context.Background())
	if cat.Len() != 1 {
		t.Fatalf("len = %d, want 1", cat.Len())
	}
	if !cat.Contains("Внешний товар") {
		t.Fatal("external product missing")
	}

	// The remote catalog must be persisted as the external layer.
	saved, err := db.GetLayer(database.LayerExternal)
	if err != nil {
		t.Fatal(err)
	}
	if len(saved) != 1 || saved[0].Name != "Внешний товар" {
		t.Fatalf("persisted layer = %+v", saved)
	}
}

func TestLoadCatalogFallsBackToSavedExternal(t *testing.T) {
	// Remote entirely unavailable; a previously persisted external layer
	// must win over defaults.
	db := openTestDB(t)
	if err := db.ReplaceLayer(database.LayerExternal, []catalog.Product{
		{Name: "Сохранённый товар", Commission: 11, Warehouse: "ФБО"},
	}); err != nil {
		t.Fatal(err)
	}

	svc := NewService(db, "")
	cat := svc.LoadCatalog(context.Background())
	if cat.Len() != 1 || !cat.Contains("Сохранённый товар") {
		t.Fatalf("catalog = %+v", cat.Products())
	}
}

func TestLoadCatalogMergesDefaultsAndUserLayer(t *testing.T) {
	db := openTestDB(t)
	if err := db.AppendToLayer(database.LayerUser, catalog.Product{
		Name: "Товар пользователя", Commission: 22, Warehouse: "ФБС",
	}); err != nil {
		t.Fatal(err)
	}

	svc := NewService(db, "")
	cat := svc.LoadCatalog(context.Background())

	if cat.Len() != len(catalog.DefaultProducts)+1 {
		t.Fatalf("len = %d, want defaults+1", cat.Len())
	}
	if !cat.Contains("Товар пользователя") {
		t.Fatal("user addition missing")
	}
	// Defaults come first in the merged order.
	if cat.Products()[0].Name != catalog.DefaultProducts[0].Name {
		t.Errorf("first product = %q", cat.Products()[0].Name)
	}
}

func TestLoadCatalogDefaultsWhenEmpty(t *testing.T) {
	db := openTestDB(t)
	svc := NewService(db, "")

	cat := svc.LoadCatalog(context.Background())
	if cat.Len() != len(catalog.DefaultProducts) {
		t.Fatalf("len = %d, want %d", cat.Len(), len(catalog.DefaultProducts))
	}
}

func TestLoadCatalogIdempotent(t *testing.T) {
	db := openTestDB(t)
	svc := NewService(db, "")

	first := svc.LoadCatalog(context.Background())
	second := svc.LoadCatalog(context.Background())

	a, b := first.Products(), second.Products()
	if len(a) != len(b) {
		t.Fatalf("len %d != %d", len(a), len(b))
	}
	for i := range a {
		if a[i] != b[i] {
			t.Errorf("record %d differs: %+v vs %+v", i, a[i], b[i])
		}
	}
}

func TestAddProduct(t *testing.T) {
	db := openTestDB(t)
	svc := NewService(db, "")
	cat := svc.LoadCatalog(context.Background())

	added, err := svc.AddProduct(cat, catalog.Product{Name: "Гамак", Commission: 16, Warehouse: "ФБО"})
	if err != nil || !added {
		t.Fatalf("first add: %v, %v", added, err)
	}

	// Reload: the addition must come back from the user layer.
	cat = svc.LoadCatalog(context.Background())
	if !cat.Contains("гамак") {
		t.Fatal("reload lost the addition")
	}

	added, err = svc.AddProduct(cat, catalog.Product{Name: "ГАМАК", Commission: 20, Warehouse: "ФБО"})
	if err != nil {
		t.Fatal(err)
	}
	if added {
		t.Fatal("case-variant duplicate must be refused")
	}
}

func TestAddProductDuplicateInUserLayerWhileExternalLive(t *testing.T) {
	db := openTestDB(t)
	svc := NewService(db, "")

	if err := db.AppendToLayer(database.LayerUser, catalog.Product{
		Name: "Гамак", Commission: 16, Warehouse: "ФБО",
	}); err != nil {
		t.Fatal(err)
	}
	if err := db.ReplaceLayer(database.LayerExternal, []catalog.Product{
		{Name: "Внешний товар", Commission: 9, Warehouse: "ФБО"},
	}); err != nil {
		t.Fatal(err)
	}

	// The external layer wins the chain, so the live catalog does not
	// contain the earlier user addition.
	cat := svc.LoadCatalog(context.Background())
	if cat.Contains("Гамак") {
		t.Fatal("precondition: external-only catalog expected")
	}

	added, err := svc.AddProduct(cat, catalog.Product{Name: "ГАМАК", Commission: 20, Warehouse: "ФБО"})
	if err != nil {
		t.Fatalf("duplicate must be refused, not errored: %v", err)
	}
	if added {
		t.Fatal("persisted user-layer duplicate was added again")
	}

	user, err := db.GetLayer(database.LayerUser)
	if err != nil {
		t.Fatal(err)
	}
	if len(user) != 1 {
		t.Fatalf("user layer = %+v", user)
	}
}

func TestAddProductRejectsInvalid(t *testing.T) {
	db := openTestDB(t)
	svc := NewService(db, "")
	cat := catalog.New(nil)

	if _, err := svc.AddProduct(cat, catalog.Product{Name: "Х", Commission: 15}); err == nil {
		t.Fatal("expected validation error")
	}
	if _, err := svc.AddProduct(cat, catalog.Product{Name: "Ваза", Commission: 120}); err == nil {
		t.Fatal("expected commission validation error")
	}
}

func TestImportProducts(t *testing.T) {
	db := openTestDB(t)
	svc := NewService(db, "")
	cat := catalog.New([]catalog.Product{
		{Name: "Существующий", Commission: 10, Warehouse: "ФБО"},
	})

	raw := `[
		{"name": "Существующий", "commission": 12},
		{"name": "Новый товар", "commission": 14, "warehouse": "ФБС"},
		{"name": "Новый товар", "commission": 14},
		{"name": "Б", "commission": 14},
		{"name": "Без комиссии"}
	]`

	result, err := svc.ImportProducts(cat, raw, catalog.FormatJSON)
	if err != nil {
		t.Fatalf("ImportProducts: %v", err)
	}
	if len(result.Accepted) != 1 || result.Accepted[0].Name != "Новый товар" {
		t.Fatalf("accepted = %+v", result.Accepted)
	}
	if result.Rejected != 4 {
		t.Errorf("rejected = %d, want 4 (duplicate, batch duplicate, short name, no commission)", result.Rejected)
	}

	// The input catalog handle must stay untouched.
	if cat.Len() != 1 {
		t.Errorf("caller's catalog mutated: len = %d", cat.Len())
	}

	user, err := db.GetLayer(database.LayerUser)
	if err != nil {
		t.Fatal(err)
	}
	if len(user) != 1 || user[0].Name != "Новый товар" {
		t.Fatalf("user layer = %+v", user)
	}
}

func TestImportProductsMalformed(t *testing.T) {
	db := openTestDB(t)
	svc := NewService(db, "")

	if _, err := svc.ImportProducts(catalog.New(nil), "{broken", catalog.FormatJSON); err == nil {
		t.Fatal("expected malformed payload error")
	}
}

func TestReplaceFromUploadCSV(t *testing.T) {
	db := openTestDB(t)
	svc := NewService(db, "")

	count, err := svc.ReplaceFromUpload("catalog.csv", []byte("Шапка зимняя,17.5,ФБО\nПерчатки,16,ФБС\n"))
	if err != nil {
		t.Fatalf("ReplaceFromUpload: %v", err)
	}
	if count != 2 {
		t.Fatalf("count = %d, want 2", count)
	}

	// The upload becomes the whole catalog on next load.
	cat := svc.LoadCatalog(context.Background())
	if cat.Len() != 2 || !cat.Contains("Шапка зимняя") {
		t.Fatalf("catalog after upload = %+v", cat.Products())
	}
}

func TestReplaceFromUploadKeepsNonstandardWarehouse(t *testing.T) {
	db := openTestDB(t)
	svc := NewService(db, "")

	// File loads are looser than explicit import: any non-blank warehouse
	// string passes through unchanged.
	raw := "Футболка мужская,15.5,фбо\nДжинсы женские,16.0,склад продавца\n"
	count, err := svc.ReplaceFromUpload("catalog.csv", []byte(raw))
	if err != nil {
		t.Fatalf("ReplaceFromUpload: %v", err)
	}
	if count != 2 {
		t.Fatalf("count = %d, want 2", count)
	}

	saved, err := db.GetLayer(database.LayerExternal)
	if err != nil {
		t.Fatal(err)
	}
	if saved[0].Warehouse != "фбо" {
		t.Errorf("warehouse[0] = %q, want the row's own value", saved[0].Warehouse)
	}
	if saved[1].Warehouse != "склад продавца" {
		t.Errorf("warehouse[1] = %q, want the row's own value", saved[1].Warehouse)
	}
}

func TestReplaceFromUploadJSONSheetExport(t *testing.T) {
	db := openTestDB(t)
	svc := NewService(db, "")

	// sheet_to_json style export: objects keyed by column letters.
	raw := `[{"A":"1","B":"Ночник детский","C":"18","D":"","E":"Детские товары"}]`
	count, err := svc.ReplaceFromUpload("export.json", []byte(raw))
	if err != nil {
		t.Fatalf("ReplaceFromUpload: %v", err)
	}
	if count != 1 {
		t.Fatalf("count = %d, want 1", count)
	}

	saved, err := db.GetLayer(database.LayerExternal)
	if err != nil {
		t.Fatal(err)
	}
	if saved[0].Name != "Ночник детский" || saved[0].Commission != 18 || saved[0].Warehouse != "ФБО" {
		t.Fatalf("saved = %+v", saved[0])
	}
}

func TestReplaceFromUploadNoValidRows(t *testing.T) {
	db := openTestDB(t)
	svc := NewService(db, "")

	if _, err := svc.ReplaceFromUpload("bad.csv", []byte("x\n")); err == nil {
		t.Fatal("expected error for a file with no valid products")
	}
}
