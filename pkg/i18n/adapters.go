package i18n

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
)

// TranslationAdapter loads catalogs from a storage.
type TranslationAdapter interface {
	Load(ctx context.Context) (Catalog, error)
}

// MapAdapter serves an in-memory catalog.
type MapAdapter struct {
	Data Catalog
}

func (a *MapAdapter) Load(_ context.Context) (Catalog, error) {
	if a.Data == nil {
		return Catalog{}, nil
	}
	return a.Data, nil
}

// FileAdapter loads a single catalog file.
type FileAdapter struct {
	path string
}

func NewFileAdapter(path string) *FileAdapter {
	return &FileAdapter{path: path}
}

func (a *FileAdapter) Load(ctx context.Context) (Catalog, error) {
	if err := ctx.Err(); err != nil {
		return nil, errors.Join(ErrLoadingCancelled, err)
	}
	parser := ParserForFile(a.path)
	if parser == nil {
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFile, a.path)
	}
	content, err := os.ReadFile(a.path)
	if err != nil {
		return nil, errors.Join(ErrFailedToReadFile, err)
	}
	return parser.Parse(content)
}

// FSAdapter loads every supported file at the root of a file system.
// Use os.DirFS for directories and embed.FS for embedded catalogs.
type FSAdapter struct {
	fsys fs.FS
}

func NewFSAdapter(fsys fs.FS) *FSAdapter {
	return &FSAdapter{fsys: fsys}
}

func (a *FSAdapter) Load(ctx context.Context) (Catalog, error) {
	entries, err := fs.ReadDir(a.fsys, ".")
	if err != nil {
		return nil, errors.Join(ErrFailedToReadFSRoot, err)
	}

	out := make(Catalog)
	for _, entry := range entries {
		if err := ctx.Err(); err != nil {
			return nil, errors.Join(ErrLoadingCancelled, err)
		}
		if entry.IsDir() {
			continue
		}
		parser := ParserForFile(entry.Name())
		if parser == nil {
			continue
		}
		content, err := fs.ReadFile(a.fsys, path.Clean(entry.Name()))
		if err != nil {
			return nil, errors.Join(ErrFailedToReadFile, err)
		}
		catalog, err := parser.Parse(content)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", entry.Name(), err)
		}
		out.merge(catalog)
	}
	return out, nil
}

func (c Catalog) merge(other Catalog) {
	for lang, tree := range other {
		if c[lang] == nil {
			c[lang] = make(map[string]any, len(tree))
		}
		mergeTree(c[lang], tree)
	}
}

func mergeTree(dst, src map[string]any) {
	for k, v := range src {
		sub, ok := v.(map[string]any)
		existing, exists := dst[k].(map[string]any)
		if ok && exists {
			mergeTree(existing, sub)
			continue
		}
		dst[k] = v
	}
}
