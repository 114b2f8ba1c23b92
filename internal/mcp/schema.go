package mcp

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

// FieldError is one schema violation in tool arguments.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ArgumentError reports tool arguments that do not match the tool's input schema.
type ArgumentError struct {
	Tool   string
	Errors []FieldError
}

func (e *ArgumentError) Error() string {
	parts := make([]string, 0, len(e.Errors))
	for _, fe := range e.Errors {
		parts = append(parts, fe.Field+": "+fe.Message)
	}
	return fmt.Sprintf("invalid arguments for %s: %s", e.Tool, strings.Join(parts, "; "))
}

// argValidator holds one compiled schema per tool.
type argValidator struct {
	schemas map[string]*gojsonschema.Schema
}

func newArgValidator(tools []Tool) (*argValidator, error) {
	v := &argValidator{schemas: make(map[string]*gojsonschema.Schema, len(tools))}
	for _, tool := range tools {
		schema, err := gojsonschema.NewSchema(gojsonschema.NewGoLoader(tool.InputSchema))
		if err != nil {
			return nil, fmt.Errorf("compile schema for %s: %w", tool.Name, err)
		}
		v.schemas[tool.Name] = schema
	}
	return v, nil
}

// validate checks raw arguments against the named tool's schema. Missing
// arguments are validated as an empty object.
func (v *argValidator) validate(tool string, arguments []byte) error {
	schema, ok := v.schemas[tool]
	if !ok {
		return nil
	}

	arguments = bytes.TrimSpace(arguments)
	if len(arguments) == 0 || bytes.Equal(arguments, []byte("null")) {
		arguments = []byte("{}")
	}

	result, err := schema.Validate(gojsonschema.NewBytesLoader(arguments))
	if err != nil {
		return &ArgumentError{Tool: tool, Errors: []FieldError{{Field: "(root)", Message: err.Error()}}}
	}
	if result.Valid() {
		return nil
	}

	argErr := &ArgumentError{Tool: tool, Errors: make([]FieldError, 0, len(result.Errors()))}
	for _, desc := range result.Errors() {
		field := desc.Field()
		if field == "" {
			field = "(root)"
		}
		argErr.Errors = append(argErr.Errors, FieldError{Field: field, Message: desc.Description()})
	}
	return argErr
}
