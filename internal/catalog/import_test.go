package catalog

import (
	"strings"
	"testing"
)

func TestParseImportJSON(t *testing.T) {
	raw := `[
		{"name": "Гирлянда", "commission": 18.5, "warehouse": "ФБС", "category": "Дом"},
		{"Название": "Свеча ароматическая", "Комиссия": "12,5"},
		{"product_name": "Плед", "commission_rate": 17, "warehouse_type": "ФБО"}
	]`

	got, err := ParseImport(raw, FormatJSON)
	if err != nil {
		t.Fatalf("ParseImport: %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("got %d candidates, want 3", len(got))
	}
	if got[0].Name != "Гирлянда" || got[0].Commission != 18.5 || got[0].Warehouse != "ФБС" || got[0].Category != "Дом" {
		t.Errorf("candidate 0 = %+v", got[0])
	}
	if got[1].Name != "Свеча ароматическая" || got[1].Commission != 12.5 {
		t.Errorf("candidate 1 (russian keys) = %+v", got[1])
	}
	if got[2].Name != "Плед" || got[2].Commission != 17 || got[2].Warehouse != "ФБО" {
		t.Errorf("candidate 2 (export aliases) = %+v", got[2])
	}
}

func TestParseImportJSONMalformed(t *testing.T) {
	for _, raw := range []string{"{", `{"name": "не массив"}`, "null"} {
		got, err := ParseImport(raw, FormatJSON)
		if raw == "null" {
			// Decodes to an empty batch rather than a syntax error.
			if err != ErrEmptyImport {
				t.Errorf("ParseImport(null) err = %v, want ErrEmptyImport", err)
			}
			continue
		}
		if err == nil {
			t.Errorf("ParseImport(%q) = %v, want error", raw, got)
		}
	}
}

func TestParseImportCSV(t *testing.T) {
	raw := strings.Join([]string{
		"Название,Комиссия,Склад",
		"Гамак садовый,16.5,ФБО,Сад",
		"Качели,17,ФБС",
		"КороткаяСтрока",
	}, "\n")

	got, err := ParseImport(raw, FormatCSV)
	if err != nil {
		t.Fatalf("ParseImport: %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("got %d candidates, want 3 (header skipped)", len(got))
	}
	if got[0].Name != "Гамак садовый" || got[0].Commission != 16.5 || got[0].Category != "Сад" {
		t.Errorf("candidate 0 = %+v", got[0])
	}
	if got[1].Warehouse != "ФБС" {
		t.Errorf("candidate 1 = %+v", got[1])
	}
	// The short line survives parsing but must fail validation.
	if _, ok := ValidateImported(got[2]); ok {
		t.Errorf("short line validated: %+v", got[2])
	}
}

func TestParseImportEmpty(t *testing.T) {
	if _, err := ParseImport("   ", FormatCSV); err != ErrEmptyImport {
		t.Errorf("err = %v, want ErrEmptyImport", err)
	}
}

func TestValidateImported(t *testing.T) {
	tests := []struct {
		name string
		in   Product
		ok   bool
	}{
		{"valid", Product{Name: "Кружка", Commission: 15, Warehouse: "ФБО"}, true},
		{"valid fbs", Product{Name: "Кружка", Commission: 0.5, Warehouse: "ФБС"}, true},
		{"blank warehouse defaults", Product{Name: "Кружка", Commission: 15}, true},
		{"short name", Product{Name: "К", Commission: 15}, false},
		{"commission absent", Product{Name: "Кружка"}, false},
		{"commission above 100", Product{Name: "Кружка", Commission: 101}, false},
		{"unknown warehouse", Product{Name: "Кружка", Commission: 15, Warehouse: "FBX"}, false},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			p, ok := ValidateImported(tc.in)
			if ok != tc.ok {
				t.Fatalf("ok = %v, want %v (%+v)", ok, tc.ok, p)
			}
			if ok && p.Warehouse == "" {
				t.Error("warehouse not defaulted")
			}
		})
	}
}
