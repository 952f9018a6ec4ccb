package values

import (
	"cmp"
	"maps"
	"mime/multipart"
	"slices"
	"strconv"
	"strings"
)

// Map is an immutable snapshot of validated data.
type Map struct {
	data map[string]any
}

// New snapshots data. Later changes to data's top level are not observed.
func New(data map[string]any) *Map {
	return &Map{data: maps.Clone(data)}
}

// Bind returns the raw value for key. Direct keys win over dot paths.
func (m *Map) Bind(key string) (any, bool) {
	if m == nil {
		return nil, false
	}
	if v, ok := m.data[key]; ok {
		return v, true
	}
	if !strings.Contains(key, ".") {
		return nil, false
	}
	return lookup(m.data, strings.Split(key, "."))
}

// Has reports whether key is present, even with a nil value.
func (m *Map) Has(key string) bool {
	_, ok := m.Bind(key)
	return ok
}

// Keys returns the top-level keys in sorted order.
func (m *Map) Keys() []string {
	if m == nil {
		return nil
	}
	return slices.Sorted(maps.Keys(m.data))
}

// All returns a shallow copy of the data.
func (m *Map) All() map[string]any {
	if m == nil {
		return map[string]any{}
	}
	return maps.Clone(m.data)
}

// Len returns the number of top-level keys.
func (m *Map) Len() int {
	if m == nil {
		return 0
	}
	return len(m.data)
}

func lookup(data map[string]any, parts []string) (any, bool) {
	var current any = data
	for _, part := range parts {
		switch node := current.(type) {
		case map[string]any:
			v, ok := node[part]
			if !ok {
				return nil, false
			}
			current = v
		case []any:
			idx, err := strconv.Atoi(part)
			if err != nil || idx < 0 || idx >= len(node) {
				return nil, false
			}
			current = node[idx]
		case []*multipart.FileHeader:
			idx, err := strconv.Atoi(part)
			if err != nil || idx < 0 || idx >= len(node) {
				return nil, false
			}
			current = node[idx]
		default:
			return nil, false
		}
	}
	return current, true
}

func ptr[T any](v T) *T {
	return &v
}

// NullableString returns string values only; other scalars yield nil.
func (m *Map) NullableString(key string) *string {
	v, _ := m.Bind(key)
	if s, ok := v.(string); ok {
		return ptr(s)
	}
	return nil
}

// NullableInt accepts numbers and numeric strings.
func (m *Map) NullableInt(key string) *int {
	v, ok := m.Bind(key)
	if !ok {
		return nil
	}
	if i, ok := ToInt(v); ok {
		return ptr(i)
	}
	return nil
}

// NullableFloat accepts numbers and numeric strings.
func (m *Map) NullableFloat(key string) *float64 {
	v, ok := m.Bind(key)
	if !ok {
		return nil
	}
	if f, ok := ToFloat(v); ok {
		return ptr(f)
	}
	return nil
}

// NullableBool accepts only boolean values.
func (m *Map) NullableBool(key string) *bool {
	v, _ := m.Bind(key)
	if b, ok := v.(bool); ok {
		return ptr(b)
	}
	return nil
}

// NullableBoolLoose also accepts the integers 1 and 0.
func (m *Map) NullableBoolLoose(key string) *bool {
	if b := m.NullableBool(key); b != nil {
		return b
	}
	v, _ := m.Bind(key)
	if _, isString := v.(string); isString || !IsInteger(v) {
		return nil
	}
	switch i, _ := ToInt(v); i {
	case 1:
		return ptr(true)
	case 0:
		return ptr(false)
	}
	return nil
}

// NullableArray returns list values. An associative value yields its values
// ordered by key, integer keys first in numeric order.
func (m *Map) NullableArray(key string) []any {
	v, _ := m.Bind(key)
	if s, ok := ToSlice(v); ok {
		return s
	}
	if o, ok := ToMap(v); ok {
		keys := slices.SortedFunc(maps.Keys(o), compareKeys)
		out := make([]any, 0, len(keys))
		for _, k := range keys {
			out = append(out, o[k])
		}
		return out
	}
	return nil
}

func compareKeys(a, b string) int {
	ai, aerr := strconv.Atoi(a)
	bi, berr := strconv.Atoi(b)
	switch {
	case aerr == nil && berr == nil:
		return cmp.Compare(ai, bi)
	case aerr == nil:
		return -1
	case berr == nil:
		return 1
	}
	return strings.Compare(a, b)
}

// NullableObject returns associative values.
func (m *Map) NullableObject(key string) map[string]any {
	v, _ := m.Bind(key)
	if o, ok := ToMap(v); ok {
		return o
	}
	return nil
}

// NullableFile returns a single uploaded file. Multi-file values yield nil.
func (m *Map) NullableFile(key string) *multipart.FileHeader {
	v, _ := m.Bind(key)
	if fh, ok := v.(*multipart.FileHeader); ok {
		return fh
	}
	return nil
}

// NullableFiles returns multi-file values keyed by name or index.
// A single file yields nil.
func (m *Map) NullableFiles(key string) map[string]*multipart.FileHeader {
	v, _ := m.Bind(key)
	if files, ok := ToFiles(v); ok {
		return files
	}
	return nil
}
