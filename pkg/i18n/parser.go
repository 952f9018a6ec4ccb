package i18n

import (
	"errors"
	"fmt"
	"path"
	"strings"

	"github.com/goccy/go-json"
	"gopkg.in/yaml.v3"
)

// Catalog maps languages to nested translation trees.
type Catalog map[string]map[string]any

// Parser decodes catalog files.
type Parser interface {
	Parse(content []byte) (Catalog, error)
	SupportsFileExtension(ext string) bool
}

// YAMLParser decodes YAML catalogs.
type YAMLParser struct{}

func (YAMLParser) Parse(content []byte) (Catalog, error) {
	var data map[string]any
	if err := yaml.Unmarshal(content, &data); err != nil {
		return nil, errors.Join(ErrFailedToParseYAML, err)
	}
	return toCatalog(data)
}

func (YAMLParser) SupportsFileExtension(ext string) bool {
	ext = strings.TrimPrefix(ext, ".")
	return strings.EqualFold(ext, "yaml") || strings.EqualFold(ext, "yml")
}

// JSONParser decodes JSON catalogs.
type JSONParser struct{}

func (JSONParser) Parse(content []byte) (Catalog, error) {
	var data map[string]any
	if err := json.Unmarshal(content, &data); err != nil {
		return nil, errors.Join(ErrFailedToParseJSON, err)
	}
	return toCatalog(data)
}

func (JSONParser) SupportsFileExtension(ext string) bool {
	return strings.EqualFold(strings.TrimPrefix(ext, "."), "json")
}

// ParserForFile picks a parser by file extension; nil when unsupported.
func ParserForFile(name string) Parser {
	ext := path.Ext(name)
	for _, p := range []Parser{YAMLParser{}, JSONParser{}} {
		if p.SupportsFileExtension(ext) {
			return p
		}
	}
	return nil
}

func toCatalog(data map[string]any) (Catalog, error) {
	out := make(Catalog, len(data))
	for lang, v := range data {
		tree, ok := v.(map[string]any)
		if !ok {
			return nil, fmt.Errorf("%w: language %q has %T", ErrInvalidCatalog, lang, v)
		}
		out[lang] = tree
	}
	return out, nil
}
