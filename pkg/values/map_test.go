package values_test

import (
	"mime/multipart"
	"testing"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/formrequest/pkg/values"
)

func TestMap_Bind(t *testing.T) {
	src := map[string]any{
		"name": "Alice",
		"user": map[string]any{
			"address": map[string]any{"city": "Kyiv"},
		},
		"items":    []any{map[string]any{"sku": "A-1"}},
		"dot.key":  "direct",
		"nullable": nil,
	}
	m := values.New(src)

	t.Run("direct key", func(t *testing.T) {
		v, ok := m.Bind("name")
		assert.True(t, ok)
		assert.Equal(t, "Alice", v)
	})

	t.Run("dot path", func(t *testing.T) {
		v, ok := m.Bind("user.address.city")
		assert.True(t, ok)
		assert.Equal(t, "Kyiv", v)

		v, ok = m.Bind("items.0.sku")
		assert.True(t, ok)
		assert.Equal(t, "A-1", v)
	})

	t.Run("direct key wins over path", func(t *testing.T) {
		v, _ := m.Bind("dot.key")
		assert.Equal(t, "direct", v)
	})

	t.Run("absent", func(t *testing.T) {
		_, ok := m.Bind("missing")
		assert.False(t, ok)
		_, ok = m.Bind("items.5.sku")
		assert.False(t, ok)
	})

	t.Run("nil value is present", func(t *testing.T) {
		assert.True(t, m.Has("nullable"))
	})

	t.Run("snapshot ignores later writes", func(t *testing.T) {
		src["late"] = 1
		assert.False(t, m.Has("late"))
		assert.Equal(t, 5, m.Len())
	})

	t.Run("nil map", func(t *testing.T) {
		var nilMap *values.Map
		_, ok := nilMap.Bind("x")
		assert.False(t, ok)
		assert.Nil(t, nilMap.NullableInt("x"))
	})
}

func TestMap_NullableInt(t *testing.T) {
	m := values.New(map[string]any{
		"str":    "42",
		"bad":    "abc",
		"float":  7.9,
		"number": json.Number("12"),
		"bool":   true,
	})

	assert.Equal(t, 42, *m.NullableInt("str"))
	assert.Nil(t, m.NullableInt("bad"))
	assert.Nil(t, m.NullableInt("absent"))
	assert.Equal(t, 7, *m.NullableInt("float"))
	assert.Equal(t, 12, *m.NullableInt("number"))
	assert.Nil(t, m.NullableInt("bool"))
}

func TestMap_NullableString(t *testing.T) {
	m := values.New(map[string]any{"s": "x", "n": 5})
	assert.Equal(t, "x", *m.NullableString("s"))
	assert.Nil(t, m.NullableString("n"))
	assert.Nil(t, m.NullableString("absent"))
}

func TestMap_NullableFloat(t *testing.T) {
	m := values.New(map[string]any{"s": "1.5", "i": 2, "bad": "NaN"})
	assert.InDelta(t, 1.5, *m.NullableFloat("s"), 0.0001)
	assert.InDelta(t, 2.0, *m.NullableFloat("i"), 0.0001)
	assert.Nil(t, m.NullableFloat("bad"))
}

func TestMap_Bool(t *testing.T) {
	m := values.New(map[string]any{
		"t":   true,
		"one": 1,
		"n":   json.Number("0"),
		"s":   "1",
	})

	t.Run("strict", func(t *testing.T) {
		assert.True(t, *m.NullableBool("t"))
		assert.Nil(t, m.NullableBool("one"))
		assert.False(t, m.Bool("one", false))
	})

	t.Run("loose accepts 1 and 0", func(t *testing.T) {
		assert.True(t, *m.NullableBoolLoose("one"))
		assert.False(t, *m.NullableBoolLoose("n"))
		assert.Nil(t, m.NullableBoolLoose("s"))
		assert.True(t, m.BoolLoose("absent", true))
	})
}

func TestMap_Defaults(t *testing.T) {
	m := values.New(map[string]any{"x": "7", "name": "Bob", "tags": []any{"a"}})

	assert.Equal(t, 5, m.Int("absent", 5))
	assert.Equal(t, 7, m.Int("x", 5))
	assert.Equal(t, "Bob", m.String("name", "anon"))
	assert.Equal(t, "anon", m.String("x2", "anon"))
	assert.InDelta(t, 7.0, m.Float("x", 0), 0.0001)
	assert.Equal(t, []any{"a"}, m.Array("tags", nil))
	assert.Equal(t, map[string]any{"k": 1}, m.Object("name", map[string]any{"k": 1}))
}

func TestMap_Array(t *testing.T) {
	m := values.New(map[string]any{
		"tags":   []string{"a", "b"},
		"ids":    map[string]any{"10": "c", "2": "b", "0": "a"},
		"labels": map[string]string{"b": "y", "a": "x", "1": "first"},
		"name":   "Bob",
	})

	assert.Equal(t, []any{"a", "b"}, m.NullableArray("tags"))
	assert.Equal(t, []any{"a", "b", "c"}, m.NullableArray("ids"))
	assert.Equal(t, []any{"first", "x", "y"}, m.Array("labels", nil))
	assert.Nil(t, m.NullableArray("name"))
	assert.Equal(t, []any{"d"}, m.Array("absent", []any{"d"}))

	ids, err := m.RequiredArray("ids")
	require.NoError(t, err)
	assert.Len(t, ids, 3)
}

func TestMap_Required(t *testing.T) {
	m := values.New(map[string]any{"age": "30"})

	age, err := m.RequiredInt("age")
	require.NoError(t, err)
	assert.Equal(t, 30, age)

	_, err = m.RequiredString("name")
	require.ErrorIs(t, err, values.ErrRequired)

	var reqErr *values.RequiredError
	require.ErrorAs(t, err, &reqErr)
	assert.Equal(t, "name", reqErr.Key)

	_, err = m.RequiredFiles("age")
	assert.ErrorIs(t, err, values.ErrRequired)
}

func TestMap_Files(t *testing.T) {
	single := &multipart.FileHeader{Filename: "a.png"}
	other := &multipart.FileHeader{Filename: "b.png"}
	m := values.New(map[string]any{
		"avatar":  single,
		"gallery": []*multipart.FileHeader{single, other},
		"named":   map[string]any{"front": single, "back": other},
		"mixed":   []any{single, "x"},
	})

	t.Run("single file", func(t *testing.T) {
		assert.Same(t, single, m.NullableFile("avatar"))
		assert.Nil(t, m.NullableFiles("avatar"))
	})

	t.Run("file list keyed by index", func(t *testing.T) {
		files := m.NullableFiles("gallery")
		require.Len(t, files, 2)
		assert.Same(t, other, files["1"])
		assert.Nil(t, m.NullableFile("gallery"))
	})

	t.Run("named files", func(t *testing.T) {
		files := m.Files("named", nil)
		assert.Same(t, single, files["front"])
	})

	t.Run("element through dot path", func(t *testing.T) {
		assert.Same(t, other, m.NullableFile("gallery.1"))
	})

	t.Run("mixed collection rejected", func(t *testing.T) {
		assert.Nil(t, m.NullableFiles("mixed"))
	})
}
