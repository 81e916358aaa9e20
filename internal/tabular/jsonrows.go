package tabular

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/Kreemchek/unitka20/internal/catalog"
)

// ParseJSONRows decodes a JSON array of rows into normalizer input. Array
// elements that are themselves arrays become positional rows; objects
// become labeled rows with key order preserved. encoding/json maps discard
// ordering, so objects are walked with the token stream instead; the
// normalizer's "2nd value by insertion order" heuristic depends on it.
func ParseJSONRows(data []byte) ([]catalog.Row, error) {
	dec := json.NewDecoder(strings.NewReader(string(data)))
	dec.UseNumber()

	tok, err := dec.Token()
	if err != nil {
		return nil, fmt.Errorf("malformed JSON: %w", err)
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '[' {
		return nil, fmt.Errorf("expected a JSON array of rows")
	}

	var rows []catalog.Row
	for dec.More() {
		row, err := decodeRow(dec)
		if err != nil {
			return nil, err
		}
		rows = append(rows, row)
	}
	if _, err := dec.Token(); err != nil {
		return nil, fmt.Errorf("malformed JSON: %w", err)
	}
	return rows, nil
}

func decodeRow(dec *json.Decoder) (catalog.Row, error) {
	tok, err := dec.Token()
	if err != nil {
		return catalog.Row{}, fmt.Errorf("malformed JSON row: %w", err)
	}

	delim, ok := tok.(json.Delim)
	if !ok {
		return catalog.Row{}, fmt.Errorf("row must be an array or object, got %v", tok)
	}

	switch delim {
	case '[':
		return decodePositionalRow(dec)
	case '{':
		return decodeLabeledRow(dec)
	default:
		return catalog.Row{}, fmt.Errorf("row must be an array or object")
	}
}

func decodePositionalRow(dec *json.Decoder) (catalog.Row, error) {
	row := catalog.Row{Cells: []string{}}
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return catalog.Row{}, fmt.Errorf("malformed JSON row: %w", err)
		}
		row.Cells = append(row.Cells, scalarToString(tok))
	}
	if _, err := dec.Token(); err != nil { // closing ]
		return catalog.Row{}, fmt.Errorf("malformed JSON row: %w", err)
	}
	return row, nil
}

func decodeLabeledRow(dec *json.Decoder) (catalog.Row, error) {
	row := catalog.Row{Fields: map[string]string{}}
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return catalog.Row{}, fmt.Errorf("malformed JSON row: %w", err)
		}
		key, ok := keyTok.(string)
		if !ok {
			return catalog.Row{}, fmt.Errorf("object key must be a string")
		}

		valTok, err := dec.Token()
		if err != nil {
			return catalog.Row{}, fmt.Errorf("malformed JSON row: %w", err)
		}
		if delim, isDelim := valTok.(json.Delim); isDelim {
			// Nested structures carry no cell value; skip them wholesale.
			if err := skipValue(dec, delim); err != nil {
				return catalog.Row{}, err
			}
			continue
		}

		if _, seen := row.Fields[key]; !seen {
			row.Keys = append(row.Keys, key)
		}
		row.Fields[key] = scalarToString(valTok)
	}
	if _, err := dec.Token(); err != nil { // closing }
		return catalog.Row{}, fmt.Errorf("malformed JSON row: %w", err)
	}
	return row, nil
}

func skipValue(dec *json.Decoder, open json.Delim) error {
	depth := 1
	for depth > 0 {
		tok, err := dec.Token()
		if err != nil {
			return fmt.Errorf("malformed JSON row: %w", err)
		}
		if delim, ok := tok.(json.Delim); ok {
			switch delim {
			case '[', '{':
				depth++
			case ']', '}':
				depth--
			}
		}
	}
	return nil
}

func scalarToString(tok json.Token) string {
	switch v := tok.(type) {
	case nil:
		return ""
	case string:
		return v
	case json.Number:
		return v.String()
	case bool:
		return strconv.FormatBool(v)
	default:
		return fmt.Sprint(v)
	}
}
