package values

import "fmt"

// ParseFunc tries to convert a raw value into T. It must not panic.
type ParseFunc[T any] = func(raw any) (T, bool)

// NullableEnum binds key through parse; nil when absent or unparsable.
func NullableEnum[T any](m *Map, key string, parse ParseFunc[T]) *T {
	raw, ok := m.Bind(key)
	if !ok || raw == nil || parse == nil {
		return nil
	}
	v, ok := parse(raw)
	if !ok {
		return nil
	}
	return &v
}

// Enum is NullableEnum with a default.
func Enum[T any](m *Map, key string, parse ParseFunc[T], def T) T {
	return orDefault(NullableEnum(m, key, parse), def)
}

// RequiredEnum is NullableEnum returning ErrRequired on failure.
func RequiredEnum[T any](m *Map, key string, parse ParseFunc[T]) (T, error) {
	return must(key, NullableEnum(m, key, parse))
}

// OneOf builds a ParseFunc matching the raw value's string form against cases.
func OneOf[T comparable](cases ...T) ParseFunc[T] {
	lookup := make(map[string]T, len(cases))
	for _, c := range cases {
		lookup[fmt.Sprint(c)] = c
	}
	return func(raw any) (T, bool) {
		v, ok := lookup[fmt.Sprint(raw)]
		return v, ok
	}
}
