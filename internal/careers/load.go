package careers

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

//go:embed catalog.schema.json
var catalogSchema string

// SchemaError lists the violations of a catalog document against the schema.
type SchemaError struct {
	Violations []string
}

func (e *SchemaError) Error() string {
	return "catalog does not match schema: " + strings.Join(e.Violations, "; ")
}

// Load reads a JSON catalog file. An empty path returns the built-in catalog.
func Load(path string) (*Catalog, error) {
	path = strings.TrimSpace(path)
	if path == "" {
		return Default(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading catalog %q: %w", path, err)
	}

	c, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("catalog %q: %w", path, err)
	}

	return c, nil
}

// Parse validates a JSON catalog document against the embedded schema and
// decodes it, keeping the document order.
func Parse(data []byte) (*Catalog, error) {
	result, err := gojsonschema.Validate(
		gojsonschema.NewStringLoader(catalogSchema),
		gojsonschema.NewBytesLoader(data),
	)
	if err != nil {
		return nil, fmt.Errorf("validating catalog: %w", err)
	}

	if !result.Valid() {
		violations := make([]string, 0, len(result.Errors()))
		for _, desc := range result.Errors() {
			violations = append(violations, fmt.Sprintf("%s: %s", desc.Field(), desc.Description()))
		}
		return nil, &SchemaError{Violations: violations}
	}

	var profiles []Profile
	if err := json.Unmarshal(data, &profiles); err != nil {
		return nil, fmt.Errorf("decoding catalog: %w", err)
	}

	return NewCatalog(profiles)
}
