package sanitizer

// Fields maps payload keys to the string transform applied to them.
type Fields map[string]func(string) string

// Data rewrites the string values of data named in fields in place. Lists of
// strings are cleaned element by element; other value types and absent keys
// are left untouched so validation still reports them.
func Data(data map[string]any, fields Fields) {
	if data == nil {
		return
	}
	for key, fn := range fields {
		v, ok := data[key]
		if !ok || fn == nil {
			continue
		}
		data[key] = apply(v, fn)
	}
}

// Values applies fn to every top-level value of data, e.g. EmptyToNil.
func Values(data map[string]any, fn func(any) any) {
	for key, v := range data {
		data[key] = fn(v)
	}
}

func apply(v any, fn func(string) string) any {
	switch val := v.(type) {
	case string:
		return fn(val)
	case []string:
		out := make([]string, len(val))
		for i, s := range val {
			out[i] = fn(s)
		}
		return out
	case []any:
		out := make([]any, len(val))
		for i, item := range val {
			out[i] = apply(item, fn)
		}
		return out
	default:
		return v
	}
}
