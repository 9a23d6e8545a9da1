package consolidate

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

// rawFileSchema is the structural gate every scraped JSON file must pass
// before record-level validation: a single record object or a list of record
// objects. Field-level constraints stay in internal/record; this only keeps
// junk payloads (bare strings, numbers, null) out of the pipeline.
const rawFileSchema = `{
	"$schema": "http://json-schema.org/draft-07/schema#",
	"oneOf": [
		{"type": "object"},
		{"type": "array", "items": {"type": "object"}}
	]
}`

func compileFileSchema() (*jsonschema.Schema, error) {
	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource("raw_file.json", strings.NewReader(rawFileSchema)); err != nil {
		return nil, fmt.Errorf("add schema: %w", err)
	}
	schema, err := compiler.Compile("raw_file.json")
	if err != nil {
		return nil, fmt.Errorf("compile schema: %w", err)
	}
	return schema, nil
}

// checkFileShape validates raw JSON bytes against the file schema.
func checkFileShape(schema *jsonschema.Schema, data []byte) error {
	var v any
	if err := json.Unmarshal(data, &v); err != nil {
		return fmt.Errorf("unmarshal: %w", err)
	}
	if err := schema.Validate(v); err != nil {
		return fmt.Errorf("json does not match schema: %w", err)
	}
	return nil
}
