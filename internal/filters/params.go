package filters

// Params holds decode parameters from a stream's /DecodeParms dictionary,
// translated to Go primitive types.
type Params map[string]any

// Int returns the integer parameter stored under key, or def if the
// parameter is absent or not numeric.
func (p Params) Int(key string, def int) int {
	if p == nil {
		return def
	}
	switch v := p[key].(type) {
	case int:
		return v
	case int32:
		return int(v)
	case int64:
		return int(v)
	case float64:
		return int(v)
	}
	return def
}

// Bool returns the boolean parameter stored under key, or def if the
// parameter is absent or not a boolean.
func (p Params) Bool(key string, def bool) bool {
	if p == nil {
		return def
	}
	if v, ok := p[key].(bool); ok {
		return v
	}
	return def
}
