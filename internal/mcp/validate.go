package mcp

import (
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/xeipuuv/gojsonschema"
)

// argumentValidator checks call arguments against each tool's declared input
// schema.
type argumentValidator struct {
	schemas map[string]*gojsonschema.Schema
}

func newArgumentValidator(tools []mcp.Tool) (*argumentValidator, error) {
	v := &argumentValidator{schemas: make(map[string]*gojsonschema.Schema, len(tools))}
	for _, tool := range tools {
		schema, err := gojsonschema.NewSchema(gojsonschema.NewGoLoader(schemaDocument(tool.InputSchema)))
		if err != nil {
			return nil, fmt.Errorf("invalid input schema for tool %s: %w", tool.Name, err)
		}
		v.schemas[tool.Name] = schema
	}
	return v, nil
}

func schemaDocument(s mcp.ToolInputSchema) map[string]any {
	doc := map[string]any{
		"type":       s.Type,
		"properties": s.Properties,
	}
	if len(s.Required) > 0 {
		doc["required"] = s.Required
	}
	return doc
}

// validate returns nil for tools it has no schema for.
func (v *argumentValidator) validate(name string, args map[string]any) error {
	schema, ok := v.schemas[name]
	if !ok {
		return nil
	}
	if args == nil {
		args = map[string]any{}
	}

	result, err := schema.Validate(gojsonschema.NewGoLoader(args))
	if err != nil {
		return fmt.Errorf("failed to validate arguments: %w", err)
	}
	if result.Valid() {
		return nil
	}

	msgs := make([]string, 0, len(result.Errors()))
	for _, e := range result.Errors() {
		msgs = append(msgs, e.String())
	}
	return fmt.Errorf("invalid arguments: %s", strings.Join(msgs, "; "))
}
