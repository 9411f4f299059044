package mcp

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
)

// arguments wraps decoded tool call arguments. JSON null counts as absent.
type arguments map[string]any

func (a arguments) lookup(key string) (any, bool) {
	v, ok := a[key]
	if !ok || v == nil {
		return nil, false
	}
	return v, true
}

func (a arguments) requireString(key string) (string, error) {
	v, ok := a.lookup(key)
	if !ok {
		return "", fmt.Errorf("missing required argument %q", key)
	}
	s, ok := v.(string)
	if !ok {
		return "", fmt.Errorf("argument %q must be a string", key)
	}
	return s, nil
}

func (a arguments) optionalInt(key string) (*int, error) {
	v, ok := a.lookup(key)
	if !ok {
		return nil, nil
	}
	n, err := toInt64(v)
	if err != nil {
		return nil, fmt.Errorf("argument %q %w", key, err)
	}
	i := int(n)
	return &i, nil
}

func (a arguments) optionalInt64(key string) (*int64, error) {
	v, ok := a.lookup(key)
	if !ok {
		return nil, nil
	}
	n, err := toInt64(v)
	if err != nil {
		return nil, fmt.Errorf("argument %q %w", key, err)
	}
	return &n, nil
}

func (a arguments) intOr(key string, def int) (int, error) {
	n, err := a.optionalInt(key)
	if err != nil || n == nil {
		return def, err
	}
	return *n, nil
}

func (a arguments) optionalBool(key string) (*bool, error) {
	v, ok := a.lookup(key)
	if !ok {
		return nil, nil
	}
	b, ok := v.(bool)
	if !ok {
		return nil, fmt.Errorf("argument %q must be a boolean", key)
	}
	return &b, nil
}

func (a arguments) optionalObject(key string) (map[string]any, error) {
	v, ok := a.lookup(key)
	if !ok {
		return nil, nil
	}
	m, ok := v.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("argument %q must be an object", key)
	}
	return m, nil
}

func toInt64(v any) (int64, error) {
	switch x := v.(type) {
	case float64:
		if x != math.Trunc(x) || x >= 1<<63 || x < -(1<<63) {
			return 0, fmt.Errorf("must be an integer")
		}
		return int64(x), nil
	case int:
		return int64(x), nil
	case int64:
		return x, nil
	case json.Number:
		n, err := x.Int64()
		if err != nil {
			return 0, fmt.Errorf("must be an integer")
		}
		return n, nil
	case string:
		n, err := strconv.ParseInt(x, 10, 64)
		if err != nil {
			return 0, fmt.Errorf("must be an integer")
		}
		return n, nil
	}
	return 0, fmt.Errorf("must be an integer")
}
