package values

import (
	"math"
	"mime/multipart"
	"strconv"
	"strings"

	"github.com/goccy/go-json"
)

// ToFloat reports whether v is numeric and returns it as float64.
// Numbers, json.Number and numeric strings are accepted; booleans are not.
func ToFloat(v any) (float64, bool) {
	var f float64
	switch n := v.(type) {
	case int:
		return float64(n), true
	case int8:
		return float64(n), true
	case int16:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case uint:
		return float64(n), true
	case uint8:
		return float64(n), true
	case uint16:
		return float64(n), true
	case uint32:
		return float64(n), true
	case uint64:
		return float64(n), true
	case float32:
		f = float64(n)
	case float64:
		f = n
	case json.Number:
		parsed, err := n.Float64()
		if err != nil {
			return 0, false
		}
		f = parsed
	case string:
		parsed, err := strconv.ParseFloat(strings.TrimSpace(n), 64)
		if err != nil {
			return 0, false
		}
		f = parsed
	default:
		return 0, false
	}
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	return f, true
}

// ToInt reports whether v is numeric and returns it as int.
// Fractions are truncated toward zero.
func ToInt(v any) (int, bool) {
	switch n := v.(type) {
	case int:
		return n, true
	case int64:
		return int(n), true
	case json.Number:
		if i, err := n.Int64(); err == nil {
			return int(i), true
		}
	case string:
		if i, err := strconv.ParseInt(strings.TrimSpace(n), 10, 64); err == nil {
			return int(i), true
		}
	}
	f, ok := ToFloat(v)
	if !ok || f > math.MaxInt64 || f < math.MinInt64 {
		return 0, false
	}
	return int(f), true
}

// IsInteger reports whether v is a whole number, including integral strings.
func IsInteger(v any) bool {
	switch n := v.(type) {
	case int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64:
		return true
	case json.Number:
		_, err := n.Int64()
		return err == nil
	case string:
		_, err := strconv.ParseInt(strings.TrimSpace(n), 10, 64)
		return err == nil
	}
	f, ok := ToFloat(v)
	return ok && f == math.Trunc(f)
}

// IsFile reports whether v is a single uploaded file.
func IsFile(v any) bool {
	fh, ok := v.(*multipart.FileHeader)
	return ok && fh != nil
}

// ToFiles converts multi-file values to a map. Slices are keyed by index.
// A single file or a collection containing anything but files is rejected.
func ToFiles(v any) (map[string]*multipart.FileHeader, bool) {
	out := make(map[string]*multipart.FileHeader)
	switch files := v.(type) {
	case []*multipart.FileHeader:
		for i, fh := range files {
			if fh == nil {
				return nil, false
			}
			out[strconv.Itoa(i)] = fh
		}
	case []any:
		for i, item := range files {
			fh, ok := item.(*multipart.FileHeader)
			if !ok || fh == nil {
				return nil, false
			}
			out[strconv.Itoa(i)] = fh
		}
	case map[string]*multipart.FileHeader:
		for k, fh := range files {
			if fh == nil {
				return nil, false
			}
			out[k] = fh
		}
	case map[string]any:
		for k, item := range files {
			fh, ok := item.(*multipart.FileHeader)
			if !ok || fh == nil {
				return nil, false
			}
			out[k] = fh
		}
	default:
		return nil, false
	}
	if len(out) == 0 {
		return nil, false
	}
	return out, true
}

// ToSlice returns list values as []any.
func ToSlice(v any) ([]any, bool) {
	switch s := v.(type) {
	case []any:
		return s, true
	case []string:
		return toAny(s), true
	case []int:
		return toAny(s), true
	case []float64:
		return toAny(s), true
	case []bool:
		return toAny(s), true
	case []map[string]any:
		return toAny(s), true
	case []*multipart.FileHeader:
		return toAny(s), true
	}
	return nil, false
}

// ToMap returns associative values as map[string]any.
func ToMap(v any) (map[string]any, bool) {
	switch m := v.(type) {
	case map[string]any:
		return m, true
	case map[string]string:
		out := make(map[string]any, len(m))
		for k, s := range m {
			out[k] = s
		}
		return out, true
	}
	return nil, false
}

func toAny[T any](in []T) []any {
	out := make([]any, len(in))
	for i, v := range in {
		out[i] = v
	}
	return out
}
