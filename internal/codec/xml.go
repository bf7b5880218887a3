package codec

import (
	"encoding/xml"
	"fmt"
	"os"
)

// xmlHeader declares the text encoding up front; the standard xml.Header
// omits the encoding attribute.
const xmlHeader = `<?xml version="1.0" encoding="UTF-8"?>` + "\n"

// EncodeXML renders the document as an indented tagged-element tree with
// an <events> root and a UTF-8 XML declaration. Booleans serialize as the
// lowercase words true/false, numbers as their decimal text form.
func EncodeXML(doc *Document) ([]byte, error) {
	body, err := xml.MarshalIndent(doc, "", "    ")
	if err != nil {
		return nil, fmt.Errorf("encode xml: %w", err)
	}
	out := make([]byte, 0, len(xmlHeader)+len(body)+1)
	out = append(out, xmlHeader...)
	out = append(out, body...)
	out = append(out, '\n')
	return out, nil
}

// DecodeXML parses a tagged-element document back into a Document,
// converting leaf text by field type: row/number/capacity to int, price
// to float and the booking flags to bool. The bool fields accept the
// strconv.ParseBool spellings ("1", "t", "TRUE", ...) in addition to
// the lowercase true/false this package writes; anything else errors
// rather than silently reading false. Missing or mistyped elements
// surface as an error.
func DecodeXML(data []byte) (*Document, error) {
	var doc Document
	if err := xml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("decode xml: %w", err)
	}
	return &doc, nil
}

// WriteXMLFile encodes the document and writes it to path.
func WriteXMLFile(path string, doc *Document) error {
	data, err := EncodeXML(doc)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}

// ReadXMLFile reads and decodes the XML document at path.
func ReadXMLFile(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return DecodeXML(data)
}
