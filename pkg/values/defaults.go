package values

import "mime/multipart"

func orDefault[T any](v *T, def T) T {
	if v == nil {
		return def
	}
	return *v
}

// String returns the string at key or def.
func (m *Map) String(key, def string) string {
	return orDefault(m.NullableString(key), def)
}

// Int returns the integer at key or def.
func (m *Map) Int(key string, def int) int {
	return orDefault(m.NullableInt(key), def)
}

// Float returns the number at key or def.
func (m *Map) Float(key string, def float64) float64 {
	return orDefault(m.NullableFloat(key), def)
}

// Bool returns the boolean at key or def.
func (m *Map) Bool(key string, def bool) bool {
	return orDefault(m.NullableBool(key), def)
}

// BoolLoose is Bool accepting 1 and 0.
func (m *Map) BoolLoose(key string, def bool) bool {
	return orDefault(m.NullableBoolLoose(key), def)
}

// Array returns the list at key or def.
func (m *Map) Array(key string, def []any) []any {
	if v := m.NullableArray(key); v != nil {
		return v
	}
	return def
}

// Object returns the associative value at key or def.
func (m *Map) Object(key string, def map[string]any) map[string]any {
	if v := m.NullableObject(key); v != nil {
		return v
	}
	return def
}

// File returns the uploaded file at key or def.
func (m *Map) File(key string, def *multipart.FileHeader) *multipart.FileHeader {
	if v := m.NullableFile(key); v != nil {
		return v
	}
	return def
}

// Files returns the uploaded files at key or def.
func (m *Map) Files(key string, def map[string]*multipart.FileHeader) map[string]*multipart.FileHeader {
	if v := m.NullableFiles(key); v != nil {
		return v
	}
	return def
}
