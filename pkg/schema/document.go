package schema

import (
	"encoding/json"
	"errors"
	"fmt"
)

// Document wraps a schema payload, its decoded JSON value, and its origin.
// Documents are value types; once constructed they are never mutated.
type Document struct {
	source Source
	raw    []byte
	root   any
}

// NewDocument constructs a Document, decoding the raw JSON payload. The
// decoded root may be any JSON value: callers hand it over to Index, which
// tolerates arbitrary shapes.
func NewDocument(src Source, raw []byte) (Document, error) {
	if src == nil {
		return Document{}, errors.New("schema: source is required")
	}
	if len(raw) == 0 {
		return Document{}, errors.New("schema: raw document is empty")
	}

	var root any
	if err := json.Unmarshal(raw, &root); err != nil {
		return Document{}, &InvalidSchemaError{
			msg: fmt.Sprintf("schema file contains invalid JSON: %v", err),
		}
	}

	clone := append([]byte(nil), raw...)
	return Document{source: src, raw: clone, root: root}, nil
}

// MustNewDocument panics if the document cannot be created. Useful for tests.
func MustNewDocument(src Source, raw []byte) Document {
	doc, err := NewDocument(src, raw)
	if err != nil {
		panic(err)
	}
	return doc
}

// Source returns the origin metadata for the document.
func (d Document) Source() Source {
	return d.source
}

// Raw returns a defensive copy of the payload.
func (d Document) Raw() []byte {
	return append([]byte(nil), d.raw...)
}

// Root returns the decoded JSON value. Callers must treat it as read-only.
func (d Document) Root() any {
	return d.root
}

// Location returns the string identifier for the origin.
func (d Document) Location() string {
	if d.source == nil {
		return ""
	}
	return d.source.Location()
}

// IsOpenAPI reports whether the document looks like a full OpenAPI document
// rather than a bare JSON Schema.
func (d Document) IsOpenAPI() bool {
	obj, ok := d.root.(map[string]any)
	if !ok {
		return false
	}
	_, ok = obj["openapi"]
	return ok
}
