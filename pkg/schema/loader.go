package schema

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"net/http"
	"os"
	"time"

	"github.com/getkin/kin-openapi/openapi3"
)

// InvalidSchemaError reports a schema document that could not be loaded or
// does not validate: missing file, malformed JSON, or a structurally invalid
// schema.
type InvalidSchemaError struct {
	msg string
}

func (e *InvalidSchemaError) Error() string {
	return e.msg
}

// Loader fetches schema documents from files, fs.FS entries, or URLs and
// validates them before handing them to the indexer.
type Loader struct {
	fs        fs.FS
	http      *http.Client
	allowHTTP bool
	timeout   time.Duration
}

// LoaderOption configures a Loader.
type LoaderOption func(*Loader)

// WithFS supplies the fs.FS used for SourceKindFS documents.
func WithFS(files fs.FS) LoaderOption {
	return func(l *Loader) {
		l.fs = files
	}
}

// WithHTTPClient enables URL sources using the supplied client.
func WithHTTPClient(client *http.Client) LoaderOption {
	return func(l *Loader) {
		l.http = client
		l.allowHTTP = client != nil
	}
}

// WithRequestTimeout bounds URL fetches when the default HTTP client is used.
func WithRequestTimeout(timeout time.Duration) LoaderOption {
	return func(l *Loader) {
		l.timeout = timeout
	}
}

// NewLoader constructs a Loader from the supplied options.
func NewLoader(options ...LoaderOption) *Loader {
	loader := &Loader{}
	for _, opt := range options {
		if opt != nil {
			opt(loader)
		}
	}
	if loader.http == nil && loader.allowHTTP {
		loader.http = &http.Client{Timeout: loader.timeout}
	}
	return loader
}

// Load fetches, decodes, and validates the schema document identified by src.
// All failures are reported as *InvalidSchemaError so callers can distinguish
// schema problems from their own I/O errors.
func (l *Loader) Load(ctx context.Context, src Source) (Document, error) {
	if src == nil {
		return Document{}, errors.New("schema: source is nil")
	}

	data, err := l.read(ctx, src)
	if err != nil {
		return Document{}, err
	}

	doc, err := NewDocument(src, data)
	if err != nil {
		return Document{}, err
	}

	if err := l.validate(ctx, doc); err != nil {
		return Document{}, err
	}
	return doc, nil
}

// Component extracts a named component schema from a full OpenAPI document
// and returns it as a standalone Document ready for indexing.
func (l *Loader) Component(ctx context.Context, doc Document, name string) (Document, error) {
	spec, err := openAPILoader(ctx).LoadFromData(doc.Raw())
	if err != nil {
		return Document{}, &InvalidSchemaError{
			msg: fmt.Sprintf("schema file is not a valid OpenAPI document: %v", err),
		}
	}
	if spec.Components == nil || spec.Components.Schemas == nil {
		return Document{}, &InvalidSchemaError{
			msg: fmt.Sprintf("OpenAPI document %s declares no component schemas", doc.Location()),
		}
	}
	ref, ok := spec.Components.Schemas[name]
	if !ok || ref == nil || ref.Value == nil {
		return Document{}, &InvalidSchemaError{
			msg: fmt.Sprintf("component schema %q not found in %s", name, doc.Location()),
		}
	}

	raw, err := ref.Value.MarshalJSON()
	if err != nil {
		return Document{}, fmt.Errorf("schema: marshal component %q: %w", name, err)
	}
	return NewDocument(doc.Source(), raw)
}

// ValidateData checks input data against the document's schema. The generate
// command uses this before rendering user templates.
func ValidateData(ctx context.Context, doc Document, data any) error {
	var sch openapi3.Schema
	if err := sch.UnmarshalJSON(doc.Raw()); err != nil {
		return &InvalidSchemaError{
			msg: fmt.Sprintf("schema file is not a valid JSON Schema document: %v", err),
		}
	}
	if err := sch.VisitJSON(data); err != nil {
		return fmt.Errorf("input data validation failed: %w", err)
	}
	return nil
}

func (l *Loader) read(ctx context.Context, src Source) ([]byte, error) {
	switch src.Kind() {
	case SourceKindFile:
		data, err := os.ReadFile(src.Location())
		if errors.Is(err, fs.ErrNotExist) {
			return nil, &InvalidSchemaError{
				msg: fmt.Sprintf("schema file not found: %s", src.Location()),
			}
		}
		if err != nil {
			return nil, &InvalidSchemaError{
				msg: fmt.Sprintf("error reading schema file: %v", err),
			}
		}
		return data, nil
	case SourceKindFS:
		if l.fs == nil {
			return nil, errors.New("schema: fs.FS support not configured")
		}
		data, err := fs.ReadFile(l.fs, src.Location())
		if errors.Is(err, fs.ErrNotExist) {
			return nil, &InvalidSchemaError{
				msg: fmt.Sprintf("schema file not found: %s", src.Location()),
			}
		}
		if err != nil {
			return nil, &InvalidSchemaError{
				msg: fmt.Sprintf("error reading schema file: %v", err),
			}
		}
		return data, nil
	case SourceKindURL:
		if !l.allowHTTP || l.http == nil {
			return nil, errors.New("schema: http support not configured")
		}
		return l.fetch(ctx, src.Location())
	default:
		return nil, fmt.Errorf("schema: unsupported source kind %q", src.Kind())
	}
}

func (l *Loader) fetch(ctx context.Context, rawURL string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, fmt.Errorf("schema: build request: %w", err)
	}
	resp, err := l.http.Do(req)
	if err != nil {
		return nil, &InvalidSchemaError{
			msg: fmt.Sprintf("error reading schema file: %v", err),
		}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, &InvalidSchemaError{
			msg: fmt.Sprintf("schema file not found: %s (status %d)", rawURL, resp.StatusCode),
		}
	}
	return io.ReadAll(resp.Body)
}

func (l *Loader) validate(ctx context.Context, doc Document) error {
	if doc.IsOpenAPI() {
		spec, err := openAPILoader(ctx).LoadFromData(doc.Raw())
		if err != nil {
			return &InvalidSchemaError{
				msg: fmt.Sprintf("schema file is not a valid OpenAPI document: %v", err),
			}
		}
		if err := spec.Validate(ctx, openapi3.DisableExamplesValidation()); err != nil {
			return &InvalidSchemaError{
				msg: fmt.Sprintf("schema file is not a valid OpenAPI document: %v", err),
			}
		}
		return nil
	}

	// Bare JSON Schema: structural validation only. Plain maps such as
	// {"user": {"name": "string"}} carry no schema keywords and pass, which
	// matches the indexer's tolerance for general objects.
	obj, ok := doc.Root().(map[string]any)
	if !ok {
		return nil
	}
	if _, hasType := obj["type"]; !hasType {
		if _, hasProps := obj["properties"]; !hasProps {
			return nil
		}
	}

	var sch openapi3.Schema
	if err := sch.UnmarshalJSON(doc.Raw()); err != nil {
		return &InvalidSchemaError{
			msg: fmt.Sprintf("schema file is not a valid JSON Schema document: %v", err),
		}
	}
	if err := sch.Validate(ctx); err != nil {
		return &InvalidSchemaError{
			msg: fmt.Sprintf("schema file is not a valid JSON Schema document: %v", err),
		}
	}
	return nil
}

func openAPILoader(ctx context.Context) *openapi3.Loader {
	return &openapi3.Loader{Context: ctx, IsExternalRefsAllowed: false}
}
