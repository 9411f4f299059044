package mcp

import (
	"bytes"
	"encoding/json"
	"strings"
)

// formatJSON pretty-prints v with two-space indentation. HTML characters and
// non-ASCII text are written as-is.
func formatJSON(v any) (string, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return "", err
	}
	return strings.TrimSuffix(buf.String(), "\n"), nil
}
