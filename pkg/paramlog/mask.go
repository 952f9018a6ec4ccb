package paramlog

import "slices"

// Mask returns a copy of params where every value stored under one of keys,
// at any depth, is replaced by text.
func Mask(params map[string]any, keys []string, text string) map[string]any {
	out := make(map[string]any, len(params))
	for k, v := range params {
		if slices.Contains(keys, k) {
			out[k] = text
			continue
		}
		out[k] = maskValue(v, keys, text)
	}
	return out
}

func maskValue(v any, keys []string, text string) any {
	switch t := v.(type) {
	case map[string]any:
		return Mask(t, keys, text)
	case []any:
		list := make([]any, len(t))
		for i, item := range t {
			list[i] = maskValue(item, keys, text)
		}
		return list
	}
	return v
}
