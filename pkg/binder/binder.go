package binder

import (
	"bytes"
	"fmt"
	"io"
	"maps"
	"mime"
	"net/http"
	"net/url"
	"path/filepath"
	"strings"

	"github.com/goccy/go-json"
)

const (
	// DefaultMaxJSONSize is the default maximum size for JSON request bodies (1MB).
	DefaultMaxJSONSize = 1 << 20
	// DefaultMaxMemory is the default maximum memory used for parsing multipart forms (10MB).
	DefaultMaxMemory = 10 << 20
)

type options struct {
	maxJSONSize int64
	maxMemory   int64
	skipQuery   bool
}

// Option configures Collect.
type Option func(*options)

// WithMaxJSONSize overrides DefaultMaxJSONSize.
func WithMaxJSONSize(n int64) Option {
	return func(o *options) {
		if n > 0 {
			o.maxJSONSize = n
		}
	}
}

// WithMaxMemory overrides DefaultMaxMemory.
func WithMaxMemory(n int64) Option {
	return func(o *options) {
		if n > 0 {
			o.maxMemory = n
		}
	}
}

// WithoutQuery collects the body only.
func WithoutQuery() Option {
	return func(o *options) {
		o.skipQuery = true
	}
}

// Collect returns the request parameters: the query string overlaid with the
// body. Requests without a body or content type yield the query alone.
func Collect(r *http.Request, opts ...Option) (map[string]any, error) {
	o := options{maxJSONSize: DefaultMaxJSONSize, maxMemory: DefaultMaxMemory}
	for _, opt := range opts {
		opt(&o)
	}

	data := make(map[string]any)
	if !o.skipQuery {
		query, err := Query(r)
		if err != nil {
			return nil, err
		}
		maps.Copy(data, query)
	}

	if r.Body == nil || r.Body == http.NoBody {
		return data, nil
	}
	contentType := r.Header.Get("Content-Type")
	if contentType == "" {
		return data, nil
	}

	mediaType, params, err := mime.ParseMediaType(contentType)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnsupportedMediaType, err)
	}

	var body map[string]any
	switch {
	case mediaType == "application/json" || strings.HasSuffix(mediaType, "+json"):
		body, err = JSON(r, o.maxJSONSize)
	case mediaType == "application/x-www-form-urlencoded":
		body, err = Form(r)
	case mediaType == "multipart/form-data":
		if !validBoundary(params["boundary"]) {
			return nil, fmt.Errorf("%w: invalid boundary parameter", ErrFailedToParseForm)
		}
		body, err = Multipart(r, o.maxMemory)
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedMediaType, mediaType)
	}
	if err != nil {
		return nil, err
	}

	maps.Copy(data, body)
	return data, nil
}

// Query parses the URL query into nested values.
func Query(r *http.Request) (map[string]any, error) {
	values, err := url.ParseQuery(r.URL.RawQuery)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFailedToParseQuery, err)
	}
	return Expand(values, nil), nil
}

// JSON decodes a JSON object body. An empty body yields an empty map.
func JSON(r *http.Request, limit int64) (map[string]any, error) {
	body, err := io.ReadAll(io.LimitReader(r.Body, limit+1))
	if err != nil {
		return nil, fmt.Errorf("%w: failed to read request body: %v", ErrFailedToParseJSON, err)
	}
	if int64(len(body)) > limit {
		return nil, fmt.Errorf("%w: max %d bytes", ErrBodyTooLarge, limit)
	}
	if len(bytes.TrimSpace(body)) == 0 {
		return map[string]any{}, nil
	}

	dec := json.NewDecoder(bytes.NewReader(body))
	dec.UseNumber()

	var data map[string]any
	if err := dec.Decode(&data); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFailedToParseJSON, err)
	}
	var extra json.RawMessage
	if err := dec.Decode(&extra); err != io.EOF {
		return nil, fmt.Errorf("%w: unexpected data after JSON object", ErrFailedToParseJSON)
	}
	if data == nil {
		data = map[string]any{}
	}
	return data, nil
}

// Form parses an urlencoded body.
func Form(r *http.Request) (map[string]any, error) {
	if err := r.ParseForm(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFailedToParseForm, err)
	}
	return Expand(r.PostForm, nil), nil
}

// Multipart parses a multipart body including uploaded files.
func Multipart(r *http.Request, maxMemory int64) (map[string]any, error) {
	if err := r.ParseMultipartForm(maxMemory); err != nil {
		if strings.Contains(err.Error(), "too large") {
			return nil, fmt.Errorf("%w: %v", ErrBodyTooLarge, err)
		}
		return nil, fmt.Errorf("%w: %v", ErrFailedToParseForm, err)
	}
	if r.MultipartForm == nil {
		return map[string]any{}, nil
	}

	files := r.MultipartForm.File
	for _, headers := range files {
		for _, fh := range headers {
			fh.Filename = sanitizeFilename(fh.Filename)
		}
	}
	return Expand(r.MultipartForm.Value, files), nil
}

// validBoundary checks the RFC 2046 boundary grammar.
func validBoundary(boundary string) bool {
	if boundary == "" || len(boundary) > 70 || strings.HasSuffix(boundary, " ") {
		return false
	}
	for _, c := range boundary {
		switch {
		case c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z', c >= '0' && c <= '9':
		case strings.ContainsRune("'()+_,-./:=? ", c):
		default:
			return false
		}
	}
	return true
}

// sanitizeFilename removes path components and null bytes from a filename.
func sanitizeFilename(filename string) string {
	filename = strings.ReplaceAll(filename, "\\", "/")
	filename = filepath.Base(filename)
	filename = strings.ReplaceAll(filename, "\x00", "")

	if filename == "." || filename == ".." || filename == "" || filename == "/" {
		filename = "unnamed"
	}
	return filename
}
