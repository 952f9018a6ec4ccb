package values

import "mime/multipart"

func must[T any](key string, v *T) (T, error) {
	if v == nil {
		var zero T
		return zero, required(key)
	}
	return *v, nil
}

// RequiredString returns the string at key or a *RequiredError.
func (m *Map) RequiredString(key string) (string, error) {
	return must(key, m.NullableString(key))
}

// RequiredInt returns the integer at key or a *RequiredError.
func (m *Map) RequiredInt(key string) (int, error) {
	return must(key, m.NullableInt(key))
}

// RequiredFloat returns the number at key or a *RequiredError.
func (m *Map) RequiredFloat(key string) (float64, error) {
	return must(key, m.NullableFloat(key))
}

// RequiredBool returns the boolean at key or a *RequiredError.
func (m *Map) RequiredBool(key string) (bool, error) {
	return must(key, m.NullableBool(key))
}

// RequiredArray returns the list at key or a *RequiredError.
func (m *Map) RequiredArray(key string) ([]any, error) {
	if v := m.NullableArray(key); v != nil {
		return v, nil
	}
	return nil, required(key)
}

// RequiredObject returns the associative value at key or a *RequiredError.
func (m *Map) RequiredObject(key string) (map[string]any, error) {
	if v := m.NullableObject(key); v != nil {
		return v, nil
	}
	return nil, required(key)
}

// RequiredFile returns the uploaded file at key or a *RequiredError.
func (m *Map) RequiredFile(key string) (*multipart.FileHeader, error) {
	if v := m.NullableFile(key); v != nil {
		return v, nil
	}
	return nil, required(key)
}

// RequiredFiles returns the uploaded files at key or a *RequiredError.
func (m *Map) RequiredFiles(key string) (map[string]*multipart.FileHeader, error) {
	if v := m.NullableFiles(key); v != nil {
		return v, nil
	}
	return nil, required(key)
}
