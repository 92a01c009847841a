package rule

import "encoding/json"

// IntParam reads a numeric condition parameter, tolerating the numeric
// types YAML and JSON decoding actually produce. Missing or non-numeric
// values fall back to def - malformed configuration is never an error.
func (c Condition) IntParam(key string, def int) int {
	raw, ok := c.Parameters[key]
	if !ok {
		return def
	}
	switch v := raw.(type) {
	case int:
		return v
	case int64:
		return int(v)
	case float64:
		return int(v)
	case json.Number:
		if n, err := v.Int64(); err == nil {
			return int(n)
		}
		return def
	default:
		return def
	}
}

// StringParam reads a string condition parameter with a fallback default.
func (c Condition) StringParam(key, def string) string {
	if v, ok := c.Parameters[key].(string); ok && v != "" {
		return v
	}
	return def
}
