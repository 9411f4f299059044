package intigriti

import (
	"encoding/json"
	"fmt"
	"math"
	"net/url"
	"strconv"
)

// EncodeParams converts loosely typed query parameters, as they arrive from
// decoded JSON, into url.Values. Lists become repeated keys and nil becomes
// an empty value.
func EncodeParams(params map[string]any) url.Values {
	if len(params) == 0 {
		return nil
	}
	v := url.Values{}
	for key, val := range params {
		if list, ok := val.([]any); ok {
			for _, item := range list {
				v.Add(key, formatParam(item))
			}
			continue
		}
		v.Add(key, formatParam(val))
	}
	return v
}

func formatParam(val any) string {
	switch x := val.(type) {
	case nil:
		return ""
	case string:
		return x
	case bool:
		return strconv.FormatBool(x)
	case json.Number:
		return x.String()
	case int:
		return strconv.Itoa(x)
	case int64:
		return strconv.FormatInt(x, 10)
	case float64:
		if x == math.Trunc(x) && math.Abs(x) < 1<<53 {
			return strconv.FormatInt(int64(x), 10)
		}
		return strconv.FormatFloat(x, 'f', -1, 64)
	default:
		return fmt.Sprint(x)
	}
}
