package codec

import (
	"fmt"
	"sync"

	"github.com/xeipuuv/gojsonschema"

	"github.com/jeanpaul/rolodex/internal/book"
)

// bookSchema describes the persisted JSON layout: an object keyed by
// contact name, each value holding a phones array and a nullable birthday.
// Structural problems are reported before any field-level validation runs.
const bookSchema = `{
	"type": "object",
	"additionalProperties": {
		"type": "object",
		"required": ["phones"],
		"properties": {
			"phones": {"type": "array", "items": {"type": "string"}},
			"birthday": {"type": ["string", "null"]}
		},
		"additionalProperties": false
	}
}`

var (
	schemaOnce     sync.Once
	compiledSchema *gojsonschema.Schema
	schemaErr      error
)

func validateShape(data []byte) error {
	schemaOnce.Do(func() {
		compiledSchema, schemaErr = gojsonschema.NewSchema(gojsonschema.NewStringLoader(bookSchema))
	})
	if schemaErr != nil {
		return fmt.Errorf("compile book schema: %w", schemaErr)
	}

	result, err := compiledSchema.Validate(gojsonschema.NewBytesLoader(data))
	if err != nil {
		return fmt.Errorf("%w: %v", book.ErrFormat, err)
	}
	if result.Valid() {
		return nil
	}
	return fmt.Errorf("%w: %s", book.ErrFormat, firstSchemaError(result))
}

func firstSchemaError(result *gojsonschema.Result) string {
	errs := result.Errors()
	if len(errs) == 0 {
		return "schema validation failed"
	}
	s := errs[0].String()
	if len(errs) > 1 {
		s += fmt.Sprintf(" (and %d more)", len(errs)-1)
	}
	return s
}
