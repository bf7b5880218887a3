package codec

import (
	"encoding/json"
	"fmt"
	"os"
)

// EncodeJSON renders the document as 4-space-indented UTF-8 JSON.
func EncodeJSON(doc *Document) ([]byte, error) {
	out, err := json.MarshalIndent(doc, "", "    ")
	if err != nil {
		return nil, fmt.Errorf("encode json: %w", err)
	}
	return append(out, '\n'), nil
}

// DecodeJSON parses JSON produced by EncodeJSON back into a document.
// Malformed input surfaces as an error; nothing is recovered internally.
func DecodeJSON(data []byte) (*Document, error) {
	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("decode json: %w", err)
	}
	return &doc, nil
}

// WriteJSONFile encodes the document and writes it to path. A failed
// write gives no guarantee about file completeness.
func WriteJSONFile(path string, doc *Document) error {
	data, err := EncodeJSON(doc)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}

// ReadJSONFile reads and decodes the JSON document at path.
func ReadJSONFile(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return DecodeJSON(data)
}
