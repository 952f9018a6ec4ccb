package binder_test

import (
	"bytes"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/formrequest/pkg/binder"
)

func TestCollect(t *testing.T) {
	t.Parallel()

	t.Run("query only", func(t *testing.T) {
		t.Parallel()
		req := httptest.NewRequest(http.MethodGet, "/items?page=2&tags[]=a&tags[]=b", nil)

		data, err := binder.Collect(req)
		require.NoError(t, err)
		assert.Equal(t, "2", data["page"])
		assert.Equal(t, []any{"a", "b"}, data["tags"])
	})

	t.Run("JSON body keeps numbers", func(t *testing.T) {
		t.Parallel()
		req := httptest.NewRequest(http.MethodPost, "/users?source=web", strings.NewReader(`{"name":"Alice","age":30,"tags":["x"]}`))
		req.Header.Set("Content-Type", "application/json; charset=utf-8")

		data, err := binder.Collect(req)
		require.NoError(t, err)
		assert.Equal(t, "Alice", data["name"])
		assert.Equal(t, json.Number("30"), data["age"])
		assert.Equal(t, []any{"x"}, data["tags"])
		assert.Equal(t, "web", data["source"])
	})

	t.Run("body wins over query", func(t *testing.T) {
		t.Parallel()
		req := httptest.NewRequest(http.MethodPost, "/users?name=query", strings.NewReader(`{"name":"body"}`))
		req.Header.Set("Content-Type", "application/json")

		data, err := binder.Collect(req)
		require.NoError(t, err)
		assert.Equal(t, "body", data["name"])
	})

	t.Run("empty JSON body", func(t *testing.T) {
		t.Parallel()
		req := httptest.NewRequest(http.MethodPost, "/users", strings.NewReader("  "))
		req.Header.Set("Content-Type", "application/json")

		data, err := binder.Collect(req)
		require.NoError(t, err)
		assert.Empty(t, data)
	})

	t.Run("invalid JSON", func(t *testing.T) {
		t.Parallel()
		req := httptest.NewRequest(http.MethodPost, "/users", strings.NewReader(`{"name":`))
		req.Header.Set("Content-Type", "application/json")

		_, err := binder.Collect(req)
		assert.ErrorIs(t, err, binder.ErrFailedToParseJSON)
	})

	t.Run("trailing JSON data", func(t *testing.T) {
		t.Parallel()
		req := httptest.NewRequest(http.MethodPost, "/users", strings.NewReader(`{"a":1}{"b":2}`))
		req.Header.Set("Content-Type", "application/json")

		_, err := binder.Collect(req)
		assert.ErrorIs(t, err, binder.ErrFailedToParseJSON)
	})

	t.Run("JSON size limit", func(t *testing.T) {
		t.Parallel()
		req := httptest.NewRequest(http.MethodPost, "/users", strings.NewReader(`{"name":"0123456789"}`))
		req.Header.Set("Content-Type", "application/json")

		_, err := binder.Collect(req, binder.WithMaxJSONSize(8))
		assert.ErrorIs(t, err, binder.ErrBodyTooLarge)
	})

	t.Run("urlencoded form", func(t *testing.T) {
		t.Parallel()
		form := url.Values{
			"user[name]":   {"Bob"},
			"user[email]":  {"bob@example.com"},
			"items[0][id]": {"1"},
			"items[1][id]": {"2"},
			"roles":        {"admin", "editor"},
			"remember":     {"on"},
		}
		req := httptest.NewRequest(http.MethodPost, "/login", strings.NewReader(form.Encode()))
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

		data, err := binder.Collect(req)
		require.NoError(t, err)
		assert.Equal(t, map[string]any{"name": "Bob", "email": "bob@example.com"}, data["user"])
		assert.Equal(t, []any{map[string]any{"id": "1"}, map[string]any{"id": "2"}}, data["items"])
		assert.Equal(t, []any{"admin", "editor"}, data["roles"])
		assert.Equal(t, "on", data["remember"])
	})

	t.Run("multipart with files", func(t *testing.T) {
		t.Parallel()
		var body bytes.Buffer
		w := multipart.NewWriter(&body)
		require.NoError(t, w.WriteField("title", "Holiday"))
		part, err := w.CreateFormFile("avatar", "../../etc/passwd")
		require.NoError(t, err)
		_, _ = part.Write([]byte("content"))
		for _, name := range []string{"a.txt", "b.txt"} {
			part, err := w.CreateFormFile("photos[]", name)
			require.NoError(t, err)
			_, _ = part.Write([]byte(name))
		}
		require.NoError(t, w.Close())

		req := httptest.NewRequest(http.MethodPost, "/upload", &body)
		req.Header.Set("Content-Type", w.FormDataContentType())

		data, err := binder.Collect(req)
		require.NoError(t, err)
		assert.Equal(t, "Holiday", data["title"])

		avatar, ok := data["avatar"].(*multipart.FileHeader)
		require.True(t, ok)
		assert.Equal(t, "passwd", avatar.Filename)

		photos, ok := data["photos"].([]any)
		require.True(t, ok)
		require.Len(t, photos, 2)
		assert.Equal(t, "a.txt", photos[0].(*multipart.FileHeader).Filename)
	})

	t.Run("unsupported media type", func(t *testing.T) {
		t.Parallel()
		req := httptest.NewRequest(http.MethodPost, "/users", strings.NewReader("<xml/>"))
		req.Header.Set("Content-Type", "application/xml")

		_, err := binder.Collect(req)
		assert.ErrorIs(t, err, binder.ErrUnsupportedMediaType)
	})

	t.Run("invalid boundary", func(t *testing.T) {
		t.Parallel()
		req := httptest.NewRequest(http.MethodPost, "/upload", strings.NewReader("x"))
		req.Header.Set("Content-Type", `multipart/form-data; boundary="bad<boundary>"`)

		_, err := binder.Collect(req)
		assert.ErrorIs(t, err, binder.ErrFailedToParseForm)
	})
}

func TestExpand(t *testing.T) {
	t.Parallel()

	got := binder.Expand(map[string][]string{
		"a[b][c]":   {"1"},
		"list[]":    {"x", "y"},
		"sparse[3]": {"z"},
		"broken[":   {"v"},
	}, nil)

	assert.Equal(t, map[string]any{"b": map[string]any{"c": "1"}}, got["a"])
	assert.Equal(t, []any{"x", "y"}, got["list"])
	assert.Equal(t, map[string]any{"3": "z"}, got["sparse"])
	assert.Equal(t, "v", got["broken["])
}

func TestRoute(t *testing.T) {
	t.Parallel()

	var captured map[string]any
	var page any
	var pagePresent, missingPresent bool

	r := chi.NewRouter()
	r.Get("/teams/{team}/members", func(w http.ResponseWriter, req *http.Request) {
		route := binder.Route(req)
		captured = route.Params()
		page, pagePresent = route.Input("page")
		_, missingPresent = route.Input("missing")
		w.WriteHeader(http.StatusNoContent)
	})

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/teams/acme/members?page=3", nil))
	require.Equal(t, http.StatusNoContent, rec.Code)

	assert.Equal(t, map[string]any{"team": "acme"}, captured)
	assert.True(t, pagePresent)
	assert.Equal(t, "3", page)
	assert.False(t, missingPresent)

	t.Run("without chi context", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/?ids=1&ids=2", nil)
		v, ok := binder.Route(req).Input("ids")
		assert.True(t, ok)
		assert.Equal(t, []any{"1", "2"}, v)
		assert.Empty(t, binder.Route(req).Params())
	})
}
