// Package entity provides a read-only data holder built from validated input.
package entity

import (
	"mime/multipart"

	"github.com/dmitrymomot/formrequest/pkg/values"
)

// Entity is an immutable snapshot of request data with typed getters.
type Entity struct {
	*values.Map
}

// New snapshots data.
func New(data map[string]any) *Entity {
	return &Entity{Map: values.New(data)}
}

// Get returns the raw value for name, or nil.
func (e *Entity) Get(name string) any {
	v, _ := e.Bind(name)
	return v
}

// File returns the single uploaded file stored under name, or nil.
func (e *Entity) File(name string) *multipart.FileHeader {
	return e.NullableFile(name)
}

// Files returns the uploaded files stored under name, or nil.
func (e *Entity) Files(name string) map[string]*multipart.FileHeader {
	return e.NullableFiles(name)
}
